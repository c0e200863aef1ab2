package cast

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/spf13/cast"
	"go.dw1.io/safemath"

	"go.dw1.io/fhecore/numeric"
)

// To converts v to the leaf type T.
//
// v may be any Go integer or float, a numeric leaf, a string, a bool, a
// [json.Number] or anything else [cast] accepts for numbers. Integer targets
// reject values that are out of range or have a fractional part with an
// error wrapping [ErrTruncation]. Float targets follow native float
// conversion, so out-of-range values become infinities.
func To[T Type](v any) (T, error) {
	var zero T
	v = unwrap(v)

	switch any(zero).(type) {
	case numeric.I8:
		return toInt[T, int8](v)
	case numeric.I16:
		return toInt[T, int16](v)
	case numeric.I32:
		return toInt[T, int32](v)
	case numeric.I64:
		return toInt[T, int64](v)
	case numeric.Int:
		return toInt[T, int](v)
	case numeric.U8:
		return toInt[T, uint8](v)
	case numeric.U16:
		return toInt[T, uint16](v)
	case numeric.U32:
		return toInt[T, uint32](v)
	case numeric.U64:
		return toInt[T, uint64](v)
	case numeric.Uint:
		return toInt[T, uint](v)
	case numeric.I128, numeric.U128:
		return toWide[T](v)
	case numeric.F32:
		return toFloat[T, float32](v)
	case numeric.F64:
		return toFloat[T, float64](v)
	}

	return zero, fmt.Errorf("unsupported conversion to %T from %T", zero, v)
}

// ToMust converts v to type T and panics on error.
func ToMust[T Type](v any) T {
	to, err := To[T](v)
	if err != nil {
		panic(err)
	}

	return to
}

// Slice converts every element of vs with [To]. Elements that fail are left
// as the zero value and their errors are joined, each prefixed with the
// element index.
func Slice[T Type](vs []any) ([]T, error) {
	out := make([]T, len(vs))

	var errs []error
	for i, v := range vs {
		to, err := To[T](v)
		if err != nil {
			errs = append(errs, fmt.Errorf("element %d: %w", i, err))
			continue
		}
		out[i] = to
	}

	return out, errors.Join(errs...)
}

// toInt converts to the primitive integer I using safemath to avoid
// overflow/underflow and then re-types the result as the leaf T.
func toInt[T Type, I Integer](v any) (T, error) {
	var zero T

	src, err := integral(v)
	if err != nil {
		return zero, err
	}

	converted, err := safemath.ConvertAny[I](src)
	if err != nil {
		return zero, err
	}

	return numeric.FromBits[T](0, uint64(converted)), nil
}

// toFloat converts to the primitive float B using spf13/cast and re-types
// the result as the leaf T.
func toFloat[T Type, B float32 | float64](v any) (T, error) {
	var zero T

	if b, ok := v.(*big.Int); ok {
		return numeric.CastFrom[T](numeric.F64(bigFloat[B](b))), nil
	}

	converted, err := cast.ToE[B](v)
	if err != nil {
		return zero, err
	}

	return numeric.CastFrom[T](numeric.F64(converted)), nil
}

// bigFloat rounds b to the nearest B in one step.
func bigFloat[B float32 | float64](b *big.Int) B {
	f := new(big.Float).SetInt(b)
	if _, ok := any(B(0)).(float32); ok {
		f32, _ := f.Float32()
		return B(f32)
	}
	f64, _ := f.Float64()
	return B(f64)
}

var (
	two128    = new(big.Int).Lsh(big.NewInt(1), 128)
	mask64    = new(big.Int).SetUint64(math.MaxUint64)
	minI128   = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
	maxI128   = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
	maxU128   = new(big.Int).Sub(two128, big.NewInt(1))
	bigZero   = new(big.Int)
	errNoWide = errors.New("not an integer")
)

// toWide converts to a 128-bit leaf through math/big.
func toWide[T Type](v any) (T, error) {
	var zero T

	b, err := bigOf(v)
	if err != nil {
		return zero, err
	}

	lo, hi := bigZero, maxU128
	if _, ok := any(zero).(numeric.I128); ok {
		lo, hi = minI128, maxI128
	}
	if b.Cmp(lo) < 0 || b.Cmp(hi) > 0 {
		return zero, fmt.Errorf("%w: %s overflows %T", ErrTruncation, b, zero)
	}

	bits := new(big.Int).Set(b)
	if bits.Sign() < 0 {
		bits.Add(bits, two128)
	}
	h := new(big.Int).Rsh(bits, 64).Uint64()
	l := new(big.Int).And(bits, mask64).Uint64()

	return numeric.FromBits[T](h, l), nil
}

// bigOf returns v as an arbitrary precision integer.
func bigOf(v any) (*big.Int, error) {
	switch x := v.(type) {
	case *big.Int:
		return x, nil
	case int, int8, int16, int32, int64:
		i, err := cast.ToE[int64](x)
		return big.NewInt(i), err
	case uint, uint8, uint16, uint32, uint64, uintptr:
		u, err := cast.ToE[uint64](x)
		return new(big.Int).SetUint64(u), err
	case float32:
		return bigOfFloat(float64(x))
	case float64:
		return bigOfFloat(x)
	case string:
		return bigOfString(x)
	case json.Number:
		return bigOfString(string(x))
	}

	i, err := cast.ToE[int64](v)
	if err != nil {
		return nil, err
	}
	return big.NewInt(i), nil
}

func bigOfFloat(f float64) (*big.Int, error) {
	if !isWhole(f) {
		return nil, fmt.Errorf("%w: %v is not an integer", ErrTruncation, f)
	}
	b, _ := new(big.Float).SetFloat64(f).Int(nil)
	return b, nil
}

func bigOfString(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if b, ok := new(big.Int).SetString(s, 0); ok {
		return b, nil
	}
	// A zero fraction keeps every digit of the integer part.
	if whole, frac, ok := strings.Cut(s, "."); ok && frac != "" && strings.Trim(frac, "0") == "" {
		if b, ok := new(big.Int).SetString(whole, 10); ok {
			return b, nil
		}
	}
	if f, err := cast.ToE[float64](s); err == nil {
		return bigOfFloat(f)
	}
	return nil, fmt.Errorf("unable to cast %q to a 128-bit integer: %w", s, errNoWide)
}

// integral reduces v to a Go integer that safemath can range check.
func integral(v any) (any, error) {
	if isIntVal(v) {
		return v, nil
	}

	switch x := v.(type) {
	case float32:
		return integralFloat(float64(x))
	case float64:
		return integralFloat(x)
	case *big.Int:
		if x.IsInt64() {
			return x.Int64(), nil
		}
		if x.IsUint64() {
			return x.Uint64(), nil
		}
		return nil, fmt.Errorf("%w: %s overflows 64 bits", ErrTruncation, x)
	case string, json.Number:
		// cast drops the fractional digits of decimal strings.
		if f, err := cast.ToE[float64](x); err == nil && !isWhole(f) {
			return nil, fmt.Errorf("%w: %q is not an integer", ErrTruncation, x)
		}
	}

	i, err := cast.ToE[int64](v)
	if err == nil {
		return i, nil
	}
	// Values above MaxInt64 only parse as unsigned.
	if u, uerr := cast.ToE[uint64](v); uerr == nil {
		return u, nil
	}
	return nil, err
}

func integralFloat(f float64) (any, error) {
	switch {
	case !isWhole(f):
		return nil, fmt.Errorf("%w: %v is not an integer", ErrTruncation, f)
	case f >= -0x1p63 && f < 0x1p63:
		return int64(f), nil
	case f >= 0 && f < 0x1p64:
		return uint64(f), nil
	}
	return nil, fmt.Errorf("%w: %v overflows 64 bits", ErrTruncation, f)
}

func isWhole(f float64) bool {
	return !math.IsInf(f, 0) && f == math.Trunc(f)
}

// unwrap replaces a numeric leaf by its primitive value, or by a *big.Int
// for the 128-bit leaves.
func unwrap(v any) any {
	switch x := v.(type) {
	case numeric.I8:
		return int8(x)
	case numeric.I16:
		return int16(x)
	case numeric.I32:
		return int32(x)
	case numeric.I64:
		return int64(x)
	case numeric.Int:
		return int(x)
	case numeric.U8:
		return uint8(x)
	case numeric.U16:
		return uint16(x)
	case numeric.U32:
		return uint32(x)
	case numeric.U64:
		return uint64(x)
	case numeric.Uint:
		return uint(x)
	case numeric.F32:
		return float32(x)
	case numeric.F64:
		return float64(x)
	case numeric.I128:
		b := wide(x.Raw())
		if b.Cmp(maxI128) > 0 {
			b.Sub(b, two128)
		}
		return b
	case numeric.U128:
		return wide(x.Raw())
	}
	return v
}

func wide(hi, lo uint64) *big.Int {
	b := new(big.Int).SetUint64(hi)
	b.Lsh(b, 64)
	return b.Or(b, new(big.Int).SetUint64(lo))
}

// isIntVal reports whether v's dynamic type is one of the integer types
// eligible for safemath conversions.
func isIntVal(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr:
		return true
	default:
		return false
	}
}
