package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/bili/pkg/sanitizer"
)

func TestToIntegers(t *testing.T) {
	t.Parallel()

	input := []sanitizer.Value{
		sanitizer.Int(1),
		sanitizer.Text("a"),
		sanitizer.Text("3"),
		sanitizer.Text("4.9"),
		sanitizer.Text("12abc"),
		sanitizer.Text("0"),
		sanitizer.Text("-5"),
		sanitizer.Text("-5x"),
		sanitizer.Null(),
	}

	t.Run("discard invalid", func(t *testing.T) {
		t.Parallel()

		result := sanitizer.ToIntegers(input, sanitizer.DiscardInvalid)
		assert.Equal(t, []int64{1, 3, 4, 12, 0, -5}, result)
	})

	t.Run("keep invalid", func(t *testing.T) {
		t.Parallel()

		result := sanitizer.ToIntegers(input, sanitizer.KeepInvalid)
		assert.Equal(t, []int64{1, 0, 3, 4, 12, 0, -5, -5, 0}, result)
	})

	t.Run("mixed input", func(t *testing.T) {
		t.Parallel()

		values := []sanitizer.Value{sanitizer.Int(1), sanitizer.Text("a"), sanitizer.Text("3")}
		assert.Equal(t, []int64{1, 3}, sanitizer.ToIntegers(values, sanitizer.DiscardInvalid))
		assert.Equal(t, []int64{1, 0, 3}, sanitizer.ToIntegers(values, sanitizer.KeepInvalid))
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, sanitizer.ToIntegers(nil, sanitizer.DiscardInvalid))
	})
}

func TestToIntegersNeverGrows(t *testing.T) {
	t.Parallel()

	input := sanitizer.Texts("x", "1", "", "y", "2.5", " 3 ")
	result := sanitizer.ToIntegers(input, sanitizer.DiscardInvalid)
	assert.LessOrEqual(t, len(result), len(input))
	assert.Equal(t, []int64{1, 2, 3}, result)
}

func TestToIntegerMap(t *testing.T) {
	t.Parallel()

	input := map[string]sanitizer.Value{
		"a": sanitizer.Text("10"),
		"b": sanitizer.Text("nope"),
		"c": sanitizer.Float(2.7),
	}

	assert.Equal(t, map[string]int64{"a": 10, "c": 2}, sanitizer.ToIntegerMap(input, sanitizer.DiscardInvalid))
	assert.Equal(t, map[string]int64{"a": 10, "b": 0, "c": 2}, sanitizer.ToIntegerMap(input, sanitizer.KeepInvalid))
}

func TestToNumerics(t *testing.T) {
	t.Parallel()

	input := []sanitizer.Value{
		sanitizer.Text("007"),
		sanitizer.Text("x"),
		sanitizer.Float(1.5),
		sanitizer.Text("9 lives"),
	}

	assert.Equal(t,
		[]sanitizer.Value{sanitizer.Text("007"), sanitizer.Float(1.5), sanitizer.Int(9)},
		sanitizer.ToNumerics(input, sanitizer.DiscardInvalid),
	)
	assert.Equal(t,
		[]sanitizer.Value{sanitizer.Text("007"), sanitizer.Int(0), sanitizer.Float(1.5), sanitizer.Int(9)},
		sanitizer.ToNumerics(input, sanitizer.KeepInvalid),
	)
}

func TestToNumericMap(t *testing.T) {
	t.Parallel()

	input := map[int]sanitizer.Value{
		1: sanitizer.Text("0012"),
		2: sanitizer.Text("-"),
	}

	assert.Equal(t, map[int]sanitizer.Value{1: sanitizer.Text("0012")}, sanitizer.ToNumericMap(input, sanitizer.DiscardInvalid))
	assert.Equal(t, map[int]sanitizer.Value{1: sanitizer.Text("0012"), 2: sanitizer.Int(0)}, sanitizer.ToNumericMap(input, sanitizer.KeepInvalid))
}

func TestTransformSlice(t *testing.T) {
	t.Parallel()

	result := sanitizer.TransformSlice([]string{"1", "x"}, func(s string) sanitizer.Value { return sanitizer.Text(s) })
	assert.Equal(t, sanitizer.Texts("1", "x"), result)
}
