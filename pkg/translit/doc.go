// Package translit folds Unicode text to printable ASCII.
//
// ToASCII decomposes the input with NFKD, drops combining marks, maps the
// letters that have no decomposition (ß, æ, ø, ł, …) through a small table and
// removes whatever is left outside ASCII:
//
//	translit.ToASCII("Crème brûlée") // "Creme brulee"
//	translit.ToASCII("Straße")       // "Strasse"
//	translit.ToASCII("日本")          // ""
//
// The fold is lossy and best-effort. It is meant for slugs, filenames and
// search keys, not for faithful romanization.
package translit
