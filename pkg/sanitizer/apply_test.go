package sanitizer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/bili/pkg/sanitizer"
)

func TestApply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		input      string
		transforms []func(string) string
		expected   string
	}{
		{
			name:       "applies single transform",
			input:      "a & b",
			transforms: []func(string) string{sanitizer.EscapeAmpersand},
			expected:   "a &amp; b",
		},
		{
			name:  "applies multiple transforms in sequence",
			input: "Tom & Jerry<br>$5",
			transforms: []func(string) string{
				sanitizer.BR2NL,
				sanitizer.ToXML,
			},
			expected: "Tom &amp; Jerry\n&#36;5",
		},
		{
			name:  "order matters",
			input: "$",
			transforms: []func(string) string{
				sanitizer.EscapeDollar,
				func(s string) string { return strings.ReplaceAll(s, "&", "&amp;") },
			},
			expected: "&amp;#36;",
		},
		{
			name:       "handles empty transforms slice",
			input:      "hello world",
			transforms: []func(string) string{},
			expected:   "hello world",
		},
		{
			name:  "handles empty input",
			input: "",
			transforms: []func(string) string{
				sanitizer.ToXHTML,
			},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := sanitizer.Apply(tt.input, tt.transforms...)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestApplyWithNumbers(t *testing.T) {
	t.Parallel()

	double := func(f float64) float64 { return f * 2 }
	result := sanitizer.Apply(1.5, double, double)
	assert.Equal(t, 6.0, result)
}

func TestCompose(t *testing.T) {
	t.Parallel()

	clean := sanitizer.Compose(sanitizer.BR2NL, sanitizer.ToXML)
	assert.Equal(t, "a\n&amp; b", clean("a<br/>& b"))
	assert.Equal(t, "x", clean("x"))

	identity := sanitizer.Compose[string]()
	assert.Equal(t, "same", identity("same"))
}
