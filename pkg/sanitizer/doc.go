// Package sanitizer provides stateless helpers that make untrusted or loosely
// formatted input safe for markup, URLs, filenames and numeric storage fields.
//
// The functions are grouped conceptually into several areas:
//
//   - Numbers – NormalizeDecimal and NormalizeFloat read numbers written with
//     either "." or "," as the decimal separator ("1.541.045,45" and
//     "1,541,045.45" both become 1541045.45). ClampFloatLength bounds the
//     integer width of a value for fixed width columns.
//
//   - Entities – EscapeAmpersand escapes bare ampersands without touching
//     existing entity references. ToXML and ToXHTML build on it; ToEntities and
//     FromEntities convert between text and named or numeric references.
//
//   - Strings – filename whitelisting, <br> to newline conversion, tag
//     stripping and ASCII folding.
//
//   - Sequences – ToIntegers, ToNumerics and their map variants coerce every
//     element and either drop or keep the invalid ones, see InvalidPolicy.
//
// # Values
//
// Inputs that may be text, a number or absent are modelled by Value. Build one
// with Text, Int, Float or Null, or convert a dynamically typed input with
// FromAny, which is the only function in the package that returns an error:
//
//	v, err := sanitizer.FromAny(row["price"])
//	if err != nil {
//	    return err // errors.Is(err, sanitizer.ErrInvalidInputShape)
//	}
//	price := sanitizer.ClampFloatLength(v, sanitizer.DefaultMaxIntegerDigits)
//
// # Fallbacks
//
// Every other helper is total. Unparsable numbers become 0 unless the
// PassThrough policy asks for the text to be returned, null text is treated as
// empty, over-long integer parts are clamped and unmappable characters are
// dropped.
//
// # Pipelines
//
// Apply and Compose chain transforms of the same type:
//
//	clean := sanitizer.Compose(sanitizer.BR2NL, sanitizer.ToXML)
//	safe := clean("Tom & Jerry<br>$5") // "Tom &amp; Jerry\n&#36;5"
//
// All helpers are safe for concurrent use.
package sanitizer
