package slug

import (
	"crypto/rand"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/bili/pkg/sanitizer"
	"github.com/dmitrymomot/bili/pkg/translit"
)

var (
	disallowedRegex = regexp.MustCompile(`[^\w\s\v\d-]`)
	hyphenRunRegex  = regexp.MustCompile(`-{2,}`)
)

// trimCutset matches the whitespace trimmed from both ends of a slug.
const trimCutset = " \t\n\r\x00\v"

// Option configures the slug generation behavior.
type Option func(*config)

// config holds the configuration for slug generation.
type config struct {
	customReplace map[string]string
	maxLength     int
	suffixLength  int
}

// MaxLength sets the maximum length of the generated slug.
// A trailing hyphen left by truncation is removed.
func MaxLength(n int) Option {
	return func(c *config) {
		c.maxLength = n
	}
}

// CustomReplace sets custom string replacements to apply before slugification.
// For example: {"&": "and", "@": "at"}
func CustomReplace(replacements map[string]string) Option {
	return func(c *config) {
		c.customReplace = replacements
	}
}

// WithSuffix adds a random lowercase alphanumeric suffix to reduce collision
// possibility. Example: "hello-world-x7g3k2" (with length=6)
func WithSuffix(length int) Option {
	return func(c *config) {
		c.suffixLength = length
	}
}

// Make creates a URL-safe slug from the input string.
//
// The steps run strictly in this order:
//
//  1. decode HTML entity references,
//  2. fold to ASCII,
//  3. lowercase and trim,
//  4. replace every space with a hyphen,
//  5. remove everything except word characters, whitespace and hyphens,
//  6. collapse runs of hyphens.
//
// Input made only of punctuation yields an empty slug. Whether an empty slug
// is acceptable is up to the caller.
func Make(s string, opts ...Option) string {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	// Apply custom replacements first
	for old, new := range cfg.customReplace {
		s = strings.ReplaceAll(s, old, new)
	}

	s = sanitizer.FromEntities(s)
	s = translit.ToASCII(s)
	s = strings.Trim(cases.Lower(language.Und).String(s), trimCutset)
	s = strings.ReplaceAll(s, " ", "-")
	s = disallowedRegex.ReplaceAllString(s, "")
	s = hyphenRunRegex.ReplaceAllString(s, "-")

	if cfg.maxLength > 0 {
		s = truncate(s, cfg.maxLength)
	}

	if cfg.suffixLength > 0 {
		s = appendSuffix(s, cfg)
	}

	return s
}

// truncate cuts s to n bytes; s is ASCII at this point.
func truncate(s string, n int) string {
	if len(s) > n {
		s = strings.TrimSuffix(s[:n], "-")
	}
	return s
}

func appendSuffix(s string, cfg *config) string {
	suffixLen := cfg.suffixLength
	if cfg.maxLength > 0 && suffixLen > cfg.maxLength {
		suffixLen = cfg.maxLength
	}
	suffix := generateSuffix(suffixLen)

	// Ensure total length doesn't exceed maxLength
	if cfg.maxLength > 0 && len(s)+1+suffixLen > cfg.maxLength {
		room := cfg.maxLength - 1 - suffixLen
		if room <= 0 {
			return suffix
		}
		s = truncate(s, room)
	}

	if s == "" {
		return suffix
	}
	return s + "-" + suffix
}

// generateSuffix creates a random lowercase alphanumeric suffix of the specified length.
func generateSuffix(length int) string {
	const charset = "abcdefghijklmnopqrstuvwxyz0123456789"

	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		// Fallback to deterministic suffix on rand.Read failure
		for i := range b {
			b[i] = charset[i%len(charset)]
		}
		return string(b)
	}

	for i := range b {
		b[i] = charset[b[i]%byte(len(charset))]
	}

	return string(b)
}
