package sanitizer

import "errors"

// ErrInvalidInputShape is returned by FromAny when the input is not one of the
// supported scalar shapes (text, integer, float or nil).
var ErrInvalidInputShape = errors.New("sanitizer: invalid input shape")
