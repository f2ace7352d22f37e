package sanitizer_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/bili/pkg/sanitizer"
)

func TestValueString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    sanitizer.Value
		expected string
	}{
		{name: "text", input: sanitizer.Text("a,b"), expected: "a,b"},
		{name: "int", input: sanitizer.Int(-42), expected: "-42"},
		{name: "float", input: sanitizer.Float(1541045.45), expected: "1541045.45"},
		{name: "whole float", input: sanitizer.Float(3), expected: "3"},
		{name: "large float", input: sanitizer.Float(1e14), expected: "1.0E+14"},
		{name: "largest plain float", input: sanitizer.Float(99999999999999), expected: "99999999999999"},
		{name: "fifteen digit float", input: sanitizer.Float(123456789012345), expected: "1.23456789012345E+14"},
		{name: "large float with fraction digits", input: sanitizer.Float(1.5e20), expected: "1.5E+20"},
		{name: "tiny float", input: sanitizer.Float(0.00001), expected: "1.0E-5"},
		{name: "small float", input: sanitizer.Float(0.0001), expected: "0.0001"},
		{name: "zero value is null", input: sanitizer.Value{}, expected: ""},
		{name: "null", input: sanitizer.Null(), expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tt.input.String())
		})
	}
}

func TestFormatNumber(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0", sanitizer.FormatNumber(0))
	assert.Equal(t, "-2.5", sanitizer.FormatNumber(-2.5))
	assert.Equal(t, "99999999", sanitizer.FormatNumber(99999999))
	assert.Equal(t, "-1.2345678901234567E+19", sanitizer.FormatNumber(-1.2345678901234567e19))
	assert.Equal(t, "INF", sanitizer.FormatNumber(math.Inf(1)))
	assert.Equal(t, "-INF", sanitizer.FormatNumber(math.Inf(-1)))
	assert.Equal(t, "NAN", sanitizer.FormatNumber(math.NaN()))
}

func TestFromAny(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    any
		expected sanitizer.Value
	}{
		{name: "nil", input: nil, expected: sanitizer.Null()},
		{name: "string", input: "1,5", expected: sanitizer.Text("1,5")},
		{name: "int", input: 7, expected: sanitizer.Int(7)},
		{name: "int8", input: int8(-3), expected: sanitizer.Int(-3)},
		{name: "uint16", input: uint16(65535), expected: sanitizer.Int(65535)},
		{name: "uint64 in range", input: uint64(10), expected: sanitizer.Int(10)},
		{name: "uint64 out of int64 range", input: uint64(math.MaxUint64), expected: sanitizer.Float(float64(uint64(math.MaxUint64)))},
		{name: "float32", input: float32(0.5), expected: sanitizer.Float(0.5)},
		{name: "float64", input: 2.25, expected: sanitizer.Float(2.25)},
		{name: "value", input: sanitizer.Text("x"), expected: sanitizer.Text("x")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			v, err := sanitizer.FromAny(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, v)
		})
	}
}

func TestFromAnyInvalidShape(t *testing.T) {
	t.Parallel()

	for _, input := range []any{
		struct{}{},
		[]string{"a"},
		map[string]int{"a": 1},
		true,
		new(int),
	} {
		_, err := sanitizer.FromAny(input)
		require.Error(t, err)
		assert.ErrorIs(t, err, sanitizer.ErrInvalidInputShape)
	}
}

func TestValueKind(t *testing.T) {
	t.Parallel()

	assert.Equal(t, sanitizer.KindText, sanitizer.Text("").Kind())
	assert.Equal(t, sanitizer.KindInt, sanitizer.Int(0).Kind())
	assert.Equal(t, sanitizer.KindFloat, sanitizer.Float(0).Kind())
	assert.Equal(t, sanitizer.KindNull, sanitizer.Null().Kind())
	assert.True(t, sanitizer.Null().IsNull())
	assert.False(t, sanitizer.Text("").IsNull())
	assert.Equal(t, "float", sanitizer.KindFloat.String())
	assert.Equal(t, []sanitizer.Value{sanitizer.Text("a"), sanitizer.Text("b")}, sanitizer.Texts("a", "b"))
}
