package sanitizer

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind identifies the scalar shape held by a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindText
	KindInt
	KindFloat
)

// String returns a lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	default:
		return "null"
	}
}

// Value is a scalar input: text, integer, float or null.
// The zero Value is null.
type Value struct {
	text string
	i    int64
	f    float64
	kind Kind
}

func Text(s string) Value { return Value{kind: KindText, text: s} }

func Int(i int64) Value { return Value{kind: KindInt, i: i} }

func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

func Null() Value { return Value{} }

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsNull() bool { return v.kind == KindNull }

// String coerces the value to text. Integers use base 10, floats use
// FormatNumber and null becomes an empty string.
func (v Value) String() string {
	switch v.kind {
	case KindText:
		return v.text
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return FormatNumber(v.f)
	default:
		return ""
	}
}

// Texts wraps every string into a text Value.
func Texts(ss ...string) []Value {
	values := make([]Value, len(ss))
	for i, s := range ss {
		values[i] = Text(s)
	}
	return values
}

// FromAny converts a dynamically typed scalar into a Value.
// Anything other than nil, a string, a Go integer or float kind, or a Value
// fails with ErrInvalidInputShape.
func FromAny(x any) (Value, error) {
	switch t := x.(type) {
	case nil:
		return Null(), nil
	case Value:
		return t, nil
	case string:
		return Text(t), nil
	case int:
		return Int(int64(t)), nil
	case int8:
		return Int(int64(t)), nil
	case int16:
		return Int(int64(t)), nil
	case int32:
		return Int(int64(t)), nil
	case int64:
		return Int(t), nil
	case uint:
		return fromUnsigned(uint64(t)), nil
	case uint8:
		return Int(int64(t)), nil
	case uint16:
		return Int(int64(t)), nil
	case uint32:
		return Int(int64(t)), nil
	case uint64:
		return fromUnsigned(t), nil
	case float32:
		return Float(float64(t)), nil
	case float64:
		return Float(t), nil
	default:
		return Value{}, fmt.Errorf("%w: %T", ErrInvalidInputShape, x)
	}
}

func fromUnsigned(u uint64) Value {
	if u > math.MaxInt64 {
		return Float(float64(u))
	}
	return Int(int64(u))
}

// FormatNumber renders a float the way it is coerced to text everywhere in
// this package: plain decimal notation for magnitudes in [1e-4, 1e14) and
// exponent notation (1.0E+14, 1.5E-5) outside of it. The switch points are
// those of a %.14G conversion, but the digits are the shortest ones that
// round-trip, so no precision is lost.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NAN"
	case math.IsInf(f, 1):
		return "INF"
	case math.IsInf(f, -1):
		return "-INF"
	}

	abs := math.Abs(f)
	if f == 0 || (abs >= 1e-4 && abs < 1e14) {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}

	mantissa, exp, _ := strings.Cut(strconv.FormatFloat(f, 'E', -1, 64), "E")
	if !strings.Contains(mantissa, ".") {
		mantissa += ".0"
	}
	return mantissa + "E" + exp[:1] + strings.TrimLeft(exp[1:], "0")
}
