package sanitizer

import "regexp"

// Pre-compiled regular expressions for performance
var (
	// Leading numeric prefix, whitespace allowed in front
	numericPrefixRegex = regexp.MustCompile(`^[ \t\n\r\v\f]*([+-]?(?:[0-9]+(?:\.[0-9]*)?|\.[0-9]+)(?:[eE][+-]?[0-9]+)?)`)

	// Whole-string numeric check with surrounding whitespace
	numericRegex = regexp.MustCompile(`^[ \t\n\r\v\f]*[+-]?(?:[0-9]+(?:\.[0-9]*)?|\.[0-9]+)(?:[eE][+-]?[0-9]+)?[ \t\n\r\v\f]*$`)

	// XHTML link targets
	linkTargetRegex = regexp.MustCompile(`(?i)target="_(?:blank|top)"`)

	// Opening angle bracket left in text, up to and including the next ">"
	strayTagRegex = regexp.MustCompile(`<[^>]*>?`)

	// Filename whitelist
	unsafeFilenameRegex = regexp.MustCompile(`[^\p{L}\p{M}\p{N}_\-.%~,;: ()\[\]|]`)
)
