package sanitizer

import (
	"html"
	"strings"
	"unicode/utf8"
)

// EscapeAmpersand replaces every "&" that does not start an entity reference
// with "&amp;". Existing references such as "&amp;", "&#65;" or "&#x1F600;"
// are left untouched, so the function never double-escapes.
//
// An ampersand is kept when it is followed by an optional "#", an optional
// "x" or "X", then either a run of hex digits or one to eight word characters,
// and finally ";". The tail is only inspected, never rewritten.
func EscapeAmpersand(s string) string {
	if !strings.Contains(s, "&") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 8)

	for i := 0; i < len(s); i++ {
		if s[i] == '&' && !hasEntityTail(s[i+1:]) {
			b.WriteString("&amp;")
			continue
		}
		b.WriteByte(s[i])
	}

	return b.String()
}

// EscapeAmpersandValue is EscapeAmpersand for values; null becomes "".
func EscapeAmpersandValue(v Value) string {
	return EscapeAmpersand(v.String())
}

// hasEntityTail tries every combination of the optional "#" and "x" prefixes.
func hasEntityTail(s string) bool {
	if strings.HasPrefix(s, "#") && hasEntityBodyAfterHash(s[1:]) {
		return true
	}
	return hasEntityBodyAfterHash(s)
}

func hasEntityBodyAfterHash(s string) bool {
	if len(s) > 0 && (s[0] == 'x' || s[0] == 'X') && isEntityBody(s[1:]) {
		return true
	}
	return isEntityBody(s)
}

func isEntityBody(s string) bool {
	if n := leadingBytes(s, isHexDigit); n > 0 && n < len(s) && s[n] == ';' {
		return true
	}
	n := leadingBytes(s, isWordByte)
	return n > 0 && n <= 8 && n < len(s) && s[n] == ';'
}

func leadingBytes(s string, accept func(byte) bool) int {
	n := 0
	for n < len(s) && accept(s[n]) {
		n++
	}
	return n
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isWordByte(c byte) bool {
	return c == '_' || (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// EscapeDollar replaces every "$" with "&#36;".
func EscapeDollar(s string) string {
	return strings.ReplaceAll(s, "$", "&#36;")
}

// RewriteLinkTargets replaces target="_blank" and target="_top" with
// rel="external", ignoring case. It is a literal substitution, not an HTML
// rewrite.
func RewriteLinkTargets(s string) string {
	return linkTargetRegex.ReplaceAllLiteralString(s, `rel="external"`)
}

var xmlPipeline = Compose(EscapeAmpersand, EscapeDollar)

// ToXML makes text safe for XML character data: bare ampersands and dollar
// signs are escaped, existing entity references are kept.
func ToXML(s string) string {
	return xmlPipeline(s)
}

// ToXHTML is ToXML followed by RewriteLinkTargets.
func ToXHTML(s string) string {
	return Apply(s, ToXML, RewriteLinkTargets)
}

// ToEntities converts & < > " ' and every character that has an HTML 4.01
// named reference into entities: "café" becomes "caf&eacute;". References
// that are already valid, such as "&amp;", "&eacute;" or "&#233;", are kept
// as they are. Characters without a name stay UTF-8 and invalid UTF-8 is
// dropped.
func ToEntities(s string) string {
	s = strings.ToValidUTF8(s, "")

	var b strings.Builder
	b.Grow(len(s) + len(s)/4)

	for i := 0; i < len(s); {
		c := s[i]
		if c >= utf8.RuneSelf {
			r, size := utf8.DecodeRuneInString(s[i:])
			if name, ok := entityNameByRune[r]; ok {
				b.WriteString("&" + name + ";")
			} else {
				b.WriteString(s[i : i+size])
			}
			i += size
			continue
		}

		switch c {
		case '&':
			if n := entitySpan(s[i:]); n > 0 && isKnownEntity(s[i:i+n]) {
				b.WriteString(s[i : i+n])
				i += n
				continue
			}
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '"':
			b.WriteString("&quot;")
		case '\'':
			b.WriteString("&#039;")
		default:
			b.WriteByte(c)
		}
		i++
	}

	return b.String()
}

// FromEntities decodes complete named, decimal and hexadecimal references.
// References without the closing ";" and unknown names are left as they are,
// so "a &lt b" is returned unchanged.
func FromEntities(s string) string {
	if !strings.Contains(s, "&") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); {
		if n := entitySpan(s[i:]); n > 0 {
			if decoded, ok := decodeEntity(s[i : i+n]); ok {
				b.WriteString(decoded)
				i += n
				continue
			}
		}
		b.WriteByte(s[i])
		i++
	}

	return b.String()
}

// entitySpan returns the length of the reference at the start of s, from "&"
// through ";", or 0 when s does not start with one.
func entitySpan(s string) int {
	if s == "" || s[0] != '&' || !hasEntityTail(s[1:]) {
		return 0
	}
	return strings.IndexByte(s, ';') + 1
}

// decodeEntity decodes a single complete reference. A reference that only
// decodes through a shorter legacy name, like "&ltx;" or "&#12a;", leaves
// part of its name and the ";" behind and is rejected.
func decodeEntity(ref string) (string, bool) {
	decoded := html.UnescapeString(ref)
	if decoded == ref || (len(decoded) > 1 && strings.HasSuffix(decoded, ";")) {
		return "", false
	}
	return decoded, true
}

// isKnownEntity reports whether ToEntities may keep ref without encoding its
// ampersand: numeric references must decode and names must be HTML 4.01 ones.
func isKnownEntity(ref string) bool {
	name := ref[1 : len(ref)-1]
	if strings.HasPrefix(name, "#") {
		_, ok := decodeEntity(ref)
		return ok
	}
	_, ok := html401Entities[name]
	return ok
}
