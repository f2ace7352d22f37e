package sanitizer

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/dmitrymomot/bili/pkg/translit"
)

// strictPolicy strips every tag. bluemonday policies are safe for concurrent
// use as long as nothing mutates them after construction.
var strictPolicy = bluemonday.StrictPolicy()

var htmlSpecialCharsReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

var lineBreakReplacer = strings.NewReplacer(
	"<br />", "\n",
	"<br/>", "\n",
	"<br>", "\n",
)

// ToFilename keeps letters, digits, underscores, spaces and - . % ~ , ; : ( ) [ ] |
// and removes everything else, including path separators.
func ToFilename(s string) string {
	return unsafeFilenameRegex.ReplaceAllString(s, "")
}

// BR2NL turns <br>, <br/> and <br /> into newlines.
func BR2NL(s string) string {
	return lineBreakReplacer.Replace(s)
}

// ToString trims the input and escapes & < > " and '.
func ToString(s string) string {
	return htmlSpecialCharsReplacer.Replace(strings.TrimSpace(s))
}

// strictTextEscaper protects ampersands and carriage returns, which the HTML
// tokenizer behind StrictPolicy would otherwise decode or fold into "\n".
var strictTextEscaper = strings.NewReplacer(
	"&", "&amp;",
	"\r", "&#13;",
)

// strictTextReplacer undoes the escaping StrictPolicy applies to text, except
// for quotes. It runs in a single pass, so "&amp;lt;" becomes "&lt;".
var strictTextReplacer = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&#13;", "\r",
)

// FilterString removes NUL bytes and markup from a value and encodes quotes as
// &#39; and &#34;. Ampersands and existing references are left alone, and a
// stray "<" removes everything up to the next ">" or the end of the text, so
// "5 < 6" becomes "5 ". Null becomes "".
func FilterString(v Value) string {
	if v.IsNull() {
		return ""
	}

	s := strictTextEscaper.Replace(RemoveNullBytes(v.String()))
	s = strictTextReplacer.Replace(strictPolicy.Sanitize(s))
	return strayTagRegex.ReplaceAllString(s, "")
}

// RemoveNullBytes removes null bytes that could cause issues in C-based systems.
func RemoveNullBytes(s string) string {
	return strings.ReplaceAll(s, "\x00", "")
}

// ToASCII folds text to printable ASCII, approximating accented and special
// letters and dropping what has no approximation.
func ToASCII(s string) string {
	return translit.ToASCII(s)
}
