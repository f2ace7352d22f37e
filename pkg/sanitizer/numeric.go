package sanitizer

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// DefaultMaxIntegerDigits is the integer width used by most storage columns
// ClampFloatLength is applied to.
const DefaultMaxIntegerDigits = 8

// ParseNumber reads the leading numeric prefix of s as a float.
// Leading whitespace is skipped and trailing garbage is ignored: "12abc" is 12,
// "abc" is 0. Values out of float64 range become ±Inf.
func ParseNumber(s string) float64 {
	m := numericPrefixRegex.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	f, err := strconv.ParseFloat(m[1], 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0
	}
	return f
}

// IsNumeric reports whether s is a complete decimal number, optionally signed,
// with an optional exponent and surrounding whitespace.
func IsNumeric(s string) bool {
	return numericRegex.MatchString(s)
}

// ToInteger coerces a value to an integer. Text is read by its leading numeric
// prefix and truncated; integer-only prefixes are parsed exactly. Results out
// of the int64 range saturate, NaN and ±Inf become 0.
func ToInteger(v Value) int64 {
	switch v.Kind() {
	case KindInt:
		return v.i
	case KindFloat:
		return truncateToInt64(v.f)
	case KindText:
		m := numericPrefixRegex.FindStringSubmatch(v.text)
		if m == nil {
			return 0
		}
		if !strings.ContainsAny(m[1], ".eE") {
			i, err := strconv.ParseInt(m[1], 10, 64)
			if err == nil {
				return i
			}
			if strings.HasPrefix(m[1], "-") {
				return math.MinInt64
			}
			return math.MaxInt64
		}
		return truncateToInt64(ParseNumber(m[1]))
	default:
		return 0
	}
}

func truncateToInt64(f float64) int64 {
	switch {
	case math.IsNaN(f), math.IsInf(f, 0):
		return 0
	case f >= math.MaxInt64:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	default:
		return int64(f)
	}
}

// ToNumeric returns the value itself when it is numeric and its integer
// coercion otherwise. Numeric text is kept as is, so leading zeros survive.
func ToNumeric(v Value) Value {
	if isNumericValue(v) {
		return v
	}
	return Int(ToInteger(v))
}

func isNumericValue(v Value) bool {
	switch v.Kind() {
	case KindInt, KindFloat:
		return true
	case KindText:
		return IsNumeric(v.text)
	default:
		return false
	}
}

// ClampFloatLength bounds the number of integer digits of a value for fixed
// width storage. The value is normalized with NormalizeDecimal first. When its
// integer part has more than maxIntegerDigits digits the largest number of that
// width (10^maxIntegerDigits - 1) is returned with the sign of the input and
// without a fraction; otherwise the normalized value is returned unchanged.
//
//	ClampFloatLength(sanitizer.Float(234234234.23234234), 8) // 99999999
//	ClampFloatLength(sanitizer.Float(99348871.3434344), 8)   // 99348871.3434344
func ClampFloatLength(v Value, maxIntegerDigits int) float64 {
	f := NormalizeDecimal(v, ZeroFallback).Number
	if math.IsNaN(f) {
		return f
	}

	if maxIntegerDigits < 1 {
		return 0
	}
	if integerDigits(f) <= maxIntegerDigits {
		return f
	}

	return math.Copysign(math.Pow10(maxIntegerDigits)-1, f)
}

// integerDigits counts the digits of the integer part of f, ignoring the sign.
func integerDigits(f float64) int {
	if math.IsInf(f, 0) {
		return math.MaxInt
	}
	return len(strconv.FormatFloat(math.Trunc(math.Abs(f)), 'f', 0, 64))
}
