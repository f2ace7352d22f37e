package sanitizer

import (
	"math"
	"strings"
)

// ParseFailurePolicy decides what NormalizeDecimal returns when the input
// cannot be converted with confidence.
type ParseFailurePolicy uint8

const (
	// ZeroFallback always returns a number; unparsable text becomes 0.
	ZeroFallback ParseFailurePolicy = iota
	// PassThrough returns the separator-normalized text instead of the number
	// when parsing produced 0 from more than one character of input, or when the
	// number would only be representable in exponent notation.
	PassThrough
)

// Decimal is the result of NormalizeDecimal.
type Decimal struct {
	// Text is the input after separator normalization.
	Text string
	// Number is the parsed value. It is still set when Verbatim is true.
	Number float64
	// Verbatim reports that the PassThrough policy kept Text as the result.
	Verbatim bool
}

func (d Decimal) Float() float64 { return d.Number }

// String returns Text for verbatim results and the formatted number otherwise.
func (d Decimal) String() string {
	if d.Verbatim {
		return d.Text
	}
	return FormatNumber(d.Number)
}

// NormalizeDecimal converts a human formatted number into a machine readable
// decimal. Both "1.541.045,45" and "1,541,045.45" yield 1541045.45.
//
// The comma is taken as the decimal separator when it is present and either
// no dot exists or the first dot precedes the first comma. In that case all
// dots are dropped and commas become dots; otherwise all commas are dropped.
func NormalizeDecimal(v Value, policy ParseFailurePolicy) Decimal {
	if f, ok := nonFinite(v); ok {
		return Decimal{Text: v.String(), Number: f}
	}

	text := v.String()
	if commaIsDecimal(text) {
		text = decimalCommaReplacer.Replace(text)
	} else {
		text = strings.ReplaceAll(text, ",", "")
	}

	result := Decimal{Text: text, Number: ParseNumber(text)}

	if policy == PassThrough {
		if result.Number == 0 && len(text) > 1 {
			result.Verbatim = true
		}
		if strings.Contains(strings.ToLower(FormatNumber(result.Number)), "e+") {
			result.Verbatim = true
		}
	}

	return result
}

// NormalizeFloat applies the same separator disambiguation as NormalizeDecimal
// but always returns the parsed float.
func NormalizeFloat(v Value) float64 {
	if f, ok := nonFinite(v); ok {
		return f
	}

	text := v.String()
	if commaIsDecimal(text) {
		text = decimalCommaReplacer.Replace(text)
	} else {
		text = strings.ReplaceAll(text, ",", "")
	}
	return ParseNumber(text)
}

var decimalCommaReplacer = strings.NewReplacer(".", "", ",", ".")

// commaIsDecimal treats a missing dot as sitting at position 0, so a comma
// at the very start of s is never the decimal separator.
func commaIsDecimal(s string) bool {
	comma := strings.IndexByte(s, ',')
	if comma < 0 {
		return false
	}
	dot := strings.IndexByte(s, '.')
	if dot < 0 {
		return comma > 0
	}
	return dot < comma
}

// nonFinite reports NaN and ±Inf floats, which do not survive the text round trip.
func nonFinite(v Value) (float64, bool) {
	if v.Kind() != KindFloat || (!math.IsNaN(v.f) && !math.IsInf(v.f, 0)) {
		return 0, false
	}
	return v.f, true
}
