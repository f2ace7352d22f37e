package translit

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// fallback maps runes that survive NFKD decomposition to ASCII.
// Covers major European languages and common typography, not exhaustive.
var fallback = map[rune]string{
	// letters without a decomposition
	'ß': "ss", 'ẞ': "SS",
	'æ': "ae", 'Æ': "AE",
	'œ': "oe", 'Œ': "OE",
	'ø': "o", 'Ø': "O",
	'ł': "l", 'Ł': "L",
	'đ': "d", 'Đ': "D",
	'ð': "d", 'Ð': "D",
	'þ': "th", 'Þ': "TH",
	'ħ': "h", 'Ħ': "H",
	'ı': "i",
	'ŀ': "l", 'Ŀ': "L",
	'ŋ': "ng", 'Ŋ': "NG",
	// quotes and dashes
	'‘': "'", '’': "'", '‚': "'", '‛': "'",
	'“': `"`, '”': `"`, '„': `"`, '‟': `"`,
	'«': "<<", '»': ">>", '‹': "<", '›': ">",
	'‐': "-", '‑': "-", '‒': "-", '–': "-", '—': "-", '―': "-",
	// symbols
	'€': "EUR", '£': "GBP", '¥': "JPY",
	'©': "(C)", '®': "(R)",
	'×': "x", '÷': "/",
	'·': ".", '•': "*",
}

// ToASCII returns s folded to ASCII. Runes without an approximation are
// dropped. ToASCII never fails: if the normalization chain reports an error
// the input is returned unchanged.
func ToASCII(s string) string {
	if IsASCII(s) {
		return s
	}

	// transform.Chain keeps internal buffers, so it is built per call.
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))
	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}

	var b strings.Builder
	b.Grow(len(folded))

	for _, r := range folded {
		if r < utf8.RuneSelf {
			b.WriteRune(r)
			continue
		}
		if repl, ok := fallback[r]; ok {
			b.WriteString(repl)
		}
	}

	return b.String()
}

// IsASCII reports whether s consists of ASCII bytes only.
func IsASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
