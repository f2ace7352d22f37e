package sanitizer

import (
	"html"
	"unicode/utf8"
)

// html401EntityNames lists the named character references of HTML 4.01.
var html401EntityNames = []string{
	// markup-significant
	"quot", "amp", "lt", "gt",

	// ISO 8859-1
	"nbsp", "iexcl", "cent", "pound", "curren", "yen", "brvbar", "sect",
	"uml", "copy", "ordf", "laquo", "not", "shy", "reg", "macr",
	"deg", "plusmn", "sup2", "sup3", "acute", "micro", "para", "middot",
	"cedil", "sup1", "ordm", "raquo", "frac14", "frac12", "frac34", "iquest",
	"Agrave", "Aacute", "Acirc", "Atilde", "Auml", "Aring", "AElig", "Ccedil",
	"Egrave", "Eacute", "Ecirc", "Euml", "Igrave", "Iacute", "Icirc", "Iuml",
	"ETH", "Ntilde", "Ograve", "Oacute", "Ocirc", "Otilde", "Ouml", "times",
	"Oslash", "Ugrave", "Uacute", "Ucirc", "Uuml", "Yacute", "THORN", "szlig",
	"agrave", "aacute", "acirc", "atilde", "auml", "aring", "aelig", "ccedil",
	"egrave", "eacute", "ecirc", "euml", "igrave", "iacute", "icirc", "iuml",
	"eth", "ntilde", "ograve", "oacute", "ocirc", "otilde", "ouml", "divide",
	"oslash", "ugrave", "uacute", "ucirc", "uuml", "yacute", "thorn", "yuml",

	// symbols, mathematical symbols and Greek letters
	"fnof",
	"Alpha", "Beta", "Gamma", "Delta", "Epsilon", "Zeta", "Eta", "Theta",
	"Iota", "Kappa", "Lambda", "Mu", "Nu", "Xi", "Omicron", "Pi",
	"Rho", "Sigma", "Tau", "Upsilon", "Phi", "Chi", "Psi", "Omega",
	"alpha", "beta", "gamma", "delta", "epsilon", "zeta", "eta", "theta",
	"iota", "kappa", "lambda", "mu", "nu", "xi", "omicron", "pi",
	"rho", "sigmaf", "sigma", "tau", "upsilon", "phi", "chi", "psi",
	"omega", "thetasym", "upsih", "piv",
	"bull", "hellip", "prime", "Prime", "oline", "frasl",
	"weierp", "image", "real", "trade", "alefsym",
	"larr", "uarr", "rarr", "darr", "harr", "crarr",
	"lArr", "uArr", "rArr", "dArr", "hArr",
	"forall", "part", "exist", "empty", "nabla", "isin", "notin", "ni",
	"prod", "sum", "minus", "lowast", "radic", "prop", "infin", "ang",
	"and", "or", "cap", "cup", "int", "there4", "sim", "cong",
	"asymp", "ne", "equiv", "le", "ge", "sub", "sup", "nsub",
	"sube", "supe", "oplus", "otimes", "perp", "sdot",
	"lceil", "rceil", "lfloor", "rfloor", "lang", "rang",
	"loz", "spades", "clubs", "hearts", "diams",

	// Latin Extended and general punctuation
	"OElig", "oelig", "Scaron", "scaron", "Yuml", "circ", "tilde",
	"ensp", "emsp", "thinsp", "zwnj", "zwj", "lrm", "rlm",
	"ndash", "mdash", "lsquo", "rsquo", "sbquo", "ldquo", "rdquo", "bdquo",
	"dagger", "Dagger", "permil", "lsaquo", "rsaquo", "euro",
}

var html401Entities, entityNameByRune = buildEntityTables(html401EntityNames)

// buildEntityTables resolves every name to its character and returns the
// name lookup together with the reverse lookup for non-ASCII characters.
func buildEntityTables(names []string) (map[string]rune, map[rune]string) {
	byName := make(map[string]rune, len(names))
	byRune := make(map[rune]string, len(names))

	for _, name := range names {
		decoded := html.UnescapeString("&" + name + ";")
		r, size := utf8.DecodeRuneInString(decoded)
		if r == utf8.RuneError || size != len(decoded) {
			continue
		}
		byName[name] = r
		if r >= utf8.RuneSelf {
			byRune[r] = name
		}
	}

	return byName, byRune
}
