package translit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/bili/pkg/translit"
)

func TestToASCII(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain ascii is unchanged",
			input:    "Hello, World!",
			expected: "Hello, World!",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "french accents",
			input:    "Crème brûlée à la façon",
			expected: "Creme brulee a la facon",
		},
		{
			name:     "german sharp s and umlauts",
			input:    "Straße Über Größe",
			expected: "Strasse Uber Grosse",
		},
		{
			name:     "nordic letters",
			input:    "Ærø Østerbro",
			expected: "AEro Osterbro",
		},
		{
			name:     "polish and croatian letters",
			input:    "Łódź Đakovo",
			expected: "Lodz Dakovo",
		},
		{
			name:     "ligatures and compatibility forms",
			input:    "ﬁne x²",
			expected: "fine x2",
		},
		{
			name:     "typographic quotes and dashes",
			input:    "“Quoted” – it’s",
			expected: `"Quoted" - it's`,
		},
		{
			name:     "currency",
			input:    "10€",
			expected: "10EUR",
		},
		{
			name:     "unmappable characters are dropped",
			input:    "Tokyo 東京",
			expected: "Tokyo ",
		},
		{
			name:     "emoji are dropped",
			input:    "ok 👍",
			expected: "ok ",
		},
		{
			name:     "invalid utf-8 is dropped",
			input:    "a\xffb",
			expected: "ab",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := translit.ToASCII(tt.input)
			assert.Equal(t, tt.expected, result)
			assert.True(t, translit.IsASCII(result))
		})
	}
}

func TestIsASCII(t *testing.T) {
	t.Parallel()

	assert.True(t, translit.IsASCII(""))
	assert.True(t, translit.IsASCII("abc 123 ~"))
	assert.False(t, translit.IsASCII("café"))
	assert.False(t, translit.IsASCII("\xff"))
}
