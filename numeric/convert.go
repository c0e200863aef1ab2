package numeric

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Type is the closed set of leaf types.
type Type interface {
	I8 | I16 | I32 | I64 | I128 | Int |
		U8 | U16 | U32 | U64 | U128 | Uint |
		F32 | F64
}

// CastFrom converts from into T using T's native total conversion rule:
//
//   - integer to integer: two's-complement truncation or sign/zero
//     extension, which makes signed/unsigned pairs reinterpret bits;
//   - integer to float: round to nearest, ties to even, in one step;
//   - float to integer: truncate toward zero and saturate at T's bounds,
//     NaN converts to zero;
//   - float to float: native conversion, so F64 to F32 rounds and
//     overflows to an infinity.
//
// CastFrom never panics.
func CastFrom[T, F Type](from F) T {
	return encode[T](decode(from))
}

// CastInto is the mirror of [CastFrom] for call sites that read better with
// the source first; it forwards to CastFrom.
func CastInto[T, F Type](from F) T {
	return CastFrom[T](from)
}

type kind uint8

const (
	kindSigned kind = iota
	kindUnsigned
	kindFloat
)

// scalar is a source value widened to 128 bits of two's complement, or to a
// float64 for float sources.
type scalar struct {
	kind   kind
	wide   bool
	hi, lo uint64
	f      float64
}

func fromInt64(v int64) scalar {
	return scalar{kind: kindSigned, hi: uint64(v >> 63), lo: uint64(v)}
}

func fromUint64(v uint64) scalar {
	return scalar{kind: kindUnsigned, lo: v}
}

func decode[F Type](v F) scalar {
	switch x := any(v).(type) {
	case I8:
		return fromInt64(int64(x))
	case I16:
		return fromInt64(int64(x))
	case I32:
		return fromInt64(int64(x))
	case I64:
		return fromInt64(int64(x))
	case Int:
		return fromInt64(int64(x))
	case I128:
		hi, lo := x.Raw()
		return scalar{kind: kindSigned, wide: true, hi: hi, lo: lo}
	case U8:
		return fromUint64(uint64(x))
	case U16:
		return fromUint64(uint64(x))
	case U32:
		return fromUint64(uint64(x))
	case U64:
		return fromUint64(uint64(x))
	case Uint:
		return fromUint64(uint64(x))
	case U128:
		hi, lo := x.Raw()
		return scalar{kind: kindUnsigned, wide: true, hi: hi, lo: lo}
	case F32:
		return scalar{kind: kindFloat, f: float64(x)}
	case F64:
		return scalar{kind: kindFloat, f: float64(x)}
	}
	panic(fmt.Sprintf("numeric: unhandled leaf type %T", v))
}

func (s scalar) asFloat64() float64 {
	switch {
	case s.wide && s.kind == kindSigned:
		return i128Float64(s.hi, s.lo)
	case s.wide:
		return u128Float64(s.hi, s.lo)
	case s.kind == kindSigned:
		return float64(int64(s.lo))
	}
	return float64(s.lo)
}

func (s scalar) asFloat32() float32 {
	switch {
	case s.wide && s.kind == kindSigned:
		return i128Float32(s.hi, s.lo)
	case s.wide:
		return u128Float32(s.hi, s.lo)
	case s.kind == kindSigned:
		return float32(int64(s.lo))
	}
	return float32(s.lo)
}

func encode[T Type](s scalar) T {
	var t T
	if s.kind == kindFloat {
		return any(t).(interface{ FromFloat64(float64) T }).FromFloat64(s.f)
	}

	var out any
	switch any(t).(type) {
	case I8:
		out = I8(s.lo)
	case I16:
		out = I16(s.lo)
	case I32:
		out = I32(s.lo)
	case I64:
		out = I64(s.lo)
	case Int:
		out = Int(s.lo)
	case I128:
		out = I128FromRaw(s.hi, s.lo)
	case U8:
		out = U8(s.lo)
	case U16:
		out = U16(s.lo)
	case U32:
		out = U32(s.lo)
	case U64:
		out = U64(s.lo)
	case Uint:
		out = Uint(s.lo)
	case U128:
		out = U128FromRaw(s.hi, s.lo)
	case F32:
		out = F32(s.asFloat32())
	case F64:
		out = F64(s.asFloat64())
	}
	return out.(T)
}

// BitsOf returns the raw bit pattern of x, zero-extended to 128 bits. Signed
// values are not sign-extended: BitsOf(I8(-1)) is (0, 0xff). Floats return
// their IEEE-754 encoding.
func BitsOf[T Type](x T) (hi, lo uint64) {
	switch v := any(x).(type) {
	case I8:
		return 0, uint64(uint8(v))
	case I16:
		return 0, uint64(uint16(v))
	case I32:
		return 0, uint64(uint32(v))
	case I64:
		return 0, uint64(v)
	case Int:
		return 0, uint64(uint(v))
	case I128:
		return v.Raw()
	case U8:
		return 0, uint64(v)
	case U16:
		return 0, uint64(v)
	case U32:
		return 0, uint64(v)
	case U64:
		return 0, uint64(v)
	case Uint:
		return 0, uint64(v)
	case U128:
		return v.Raw()
	case F32:
		return 0, uint64(math.Float32bits(float32(v)))
	case F64:
		return 0, math.Float64bits(float64(v))
	}
	return 0, 0
}

// FromBits is the inverse of [BitsOf]. Bits above T's width are ignored.
func FromBits[T Type](hi, lo uint64) T {
	var t T
	switch any(t).(type) {
	case F32:
		return any(F32(math.Float32frombits(uint32(lo)))).(T)
	case F64:
		return any(F64(math.Float64frombits(lo))).(T)
	}
	// Integers reinterpret the truncated pattern.
	return encode[T](scalar{kind: kindUnsigned, wide: true, hi: hi, lo: lo})
}

// ParseBits parses a bit string as produced by BitString or BitsString back
// into a T. Spaces are ignored; the remaining digits must number exactly
// Bits() and be '0' or '1'.
func ParseBits[T Type](s string) (T, error) {
	var t T
	width := any(t).(interface{ Bits() int }).Bits()

	digits := strings.ReplaceAll(s, " ", "")
	if len(digits) != width {
		return t, fmt.Errorf("%w: %d digits for a %d-bit type", ErrMalformedBits, len(digits), width)
	}

	var hi, lo uint64
	var err error
	if width > 64 {
		hi, err = strconv.ParseUint(digits[:width-64], 2, 64)
		if err == nil {
			lo, err = strconv.ParseUint(digits[width-64:], 2, 64)
		}
	} else {
		lo, err = strconv.ParseUint(digits, 2, 64)
	}
	if err != nil {
		return t, fmt.Errorf("%w: %q", ErrMalformedBits, s)
	}

	return FromBits[T](hi, lo), nil
}
