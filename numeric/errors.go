package numeric

import "errors"

// ErrUnsupportedBitWidth indicates that a bit string was requested for a width
// outside of 8, 16, 32, 64 and 128.
//
// It is wrapped together with the offending width.
var ErrUnsupportedBitWidth = errors.New("unsupported bit width")

// ErrMalformedBits indicates that a bit string passed to [ParseBits] has the
// wrong number of digits or contains characters other than '0', '1' and
// spaces.
var ErrMalformedBits = errors.New("malformed bit string")
