package numeric

import (
	"fmt"
	"math"
	"math/bits"
	"strconv"
	"strings"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Kernels shared by the generated leaf methods. They are written once over
// the primitive type sets and instantiated with the leaf types.

func wrappingAbs[S constraints.Signed](x S) S {
	if x < 0 {
		return -x
	}
	return x
}

// floatToSigned truncates f toward zero and saturates it to [lo, hi].
func floatToSigned[S constraints.Signed](f float64, lo, hi S) S {
	switch {
	case f != f:
		return 0
	case f <= float64(lo):
		return lo
	case f >= float64(hi):
		return hi
	}
	return S(f)
}

// floatToUnsigned truncates f toward zero and saturates it to [0, hi].
func floatToUnsigned[U constraints.Unsigned](f float64, hi U) U {
	switch {
	case f != f, f <= 0:
		return 0
	case f >= float64(hi):
		return hi
	}
	return U(f)
}

func powi[F constraints.Float](x F, n int32) F {
	return F(math.Pow(float64(x), float64(n)))
}

// fract is x - floor(x). The subtraction is exact for |x| >= 1; for small
// negative x it rounds, and a result that rounds up to 1 is pulled back
// below it.
func fract[F constraints.Float](x F) F {
	r := x - F(math.Floor(float64(x)))
	if r >= 1 {
		r = below(F(1))
	}
	return r
}

func remEuclid[F constraints.Float](x, rhs F) F {
	r := F(math.Mod(float64(x), float64(rhs)))
	if !(r < 0) {
		return r
	}
	a := F(math.Abs(float64(rhs)))
	r = F(r + a)
	if r >= a && !math.IsInf(float64(a), 0) {
		// r+a rounded up to |rhs|; step back to the largest value below it.
		r = below(a)
	}
	return r
}

func below[F constraints.Float](a F) F {
	if unsafe.Sizeof(a) == 4 {
		return F(math.Nextafter32(float32(a), 0))
	}
	return F(math.Nextafter(float64(a), 0))
}

// padBinary formats the low width bits of v in base 2, left-padded with
// zeros. v must not have bits set above width.
func padBinary(v uint64, width int) string {
	s := strconv.FormatUint(v, 2)
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

// floatBitString renders raw as "S E..E M..M" with expBits exponent digits.
func floatBitString(raw uint64, width, expBits int) string {
	s := padBinary(raw, width)
	return s[:1] + " " + s[1:1+expBits] + " " + s[1+expBits:]
}

// groupedBits renders the width low bits of hi:lo, split into groups of
// breakEvery digits from the most significant end.
func groupedBits(hi, lo uint64, width, breakEvery int) (string, error) {
	var s string
	switch width {
	case 8, 16, 32, 64:
		s = padBinary(lo, width)
	case 128:
		s = padBinary(hi, 64) + padBinary(lo, 64)
	default:
		return "", fmt.Errorf("%w: %d", ErrUnsupportedBitWidth, width)
	}

	if breakEvery <= 0 {
		return s, nil
	}
	groups := width / breakEvery
	if groups < 2 {
		return s, nil
	}

	var b strings.Builder
	b.Grow(width + groups - 1)
	for i := range groups - 1 {
		b.WriteString(s[i*breakEvery : (i+1)*breakEvery])
		b.WriteByte(' ')
	}
	b.WriteString(s[(groups-1)*breakEvery:])
	return b.String(), nil
}

// neg128 negates a two's-complement 128-bit value.
func neg128(hi, lo uint64) (uint64, uint64) {
	hi, lo = ^hi, ^lo+1
	if lo == 0 {
		hi++
	}
	return hi, lo
}

// top64 returns the 64 most significant bits of hi:lo, which must have hi
// != 0, and the exponent that scales them back. Nonzero bits shifted out
// are folded into bit 0 so that converting top rounds the same way the
// full value would.
func top64(hi, lo uint64) (top uint64, exp int) {
	n := uint(bits.LeadingZeros64(hi))
	top = hi<<n | lo>>(64-n)
	if lo<<n != 0 {
		top |= 1
	}
	return top, 64 - int(n)
}

// u128Float64 rounds hi:lo to the nearest float64, ties to even.
func u128Float64(hi, lo uint64) float64 {
	if hi == 0 {
		return float64(lo)
	}
	top, exp := top64(hi, lo)
	return math.Ldexp(float64(top), exp)
}

// u128Float32 rounds hi:lo to the nearest float32 in a single step. Values
// that round past MaxFloat32 become +Inf.
func u128Float32(hi, lo uint64) float32 {
	if hi == 0 {
		return float32(lo)
	}
	top, exp := top64(hi, lo)
	return float32(math.Ldexp(float64(float32(top)), exp))
}

func i128Float64(hi, lo uint64) float64 {
	if int64(hi) >= 0 {
		return u128Float64(hi, lo)
	}
	return -u128Float64(neg128(hi, lo))
}

func i128Float32(hi, lo uint64) float32 {
	if int64(hi) >= 0 {
		return u128Float32(hi, lo)
	}
	return -u128Float32(neg128(hi, lo))
}
