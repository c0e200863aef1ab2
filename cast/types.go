package cast

import (
	"go.dw1.io/safemath"

	"go.dw1.io/fhecore/numeric"
)

// Integer is an alias for [safemath.Integer].
type Integer = safemath.Integer

// Type is the set of targets supported by [To]: the leaves of package
// numeric.
type Type = numeric.Type

// ErrTruncation is returned when a value does not fit the target type, or
// when a fractional value is converted to an integer leaf. It is
// [safemath.ErrTruncation], so either can be matched with errors.Is.
var ErrTruncation = safemath.ErrTruncation
