package numeric

import (
	"math"

	num "github.com/shabbyrobe/go-num"
)

// I128 is a 128-bit two's-complement signed integer. Arithmetic wraps on
// overflow like the narrower signed leaves.
type I128 num.I128

// U128 is a 128-bit unsigned integer.
type U128 num.U128

// I128FromRaw builds an I128 from its high and low 64-bit halves.
func I128FromRaw(hi, lo uint64) I128 { return I128(num.I128FromRaw(hi, lo)) }

// U128FromRaw builds a U128 from its high and low 64-bit halves.
func U128FromRaw(hi, lo uint64) U128 { return U128(num.U128FromRaw(hi, lo)) }

// I128From64 sign-extends v.
func I128From64(v int64) I128 { return I128FromRaw(uint64(v>>63), uint64(v)) }

// U128From64 zero-extends v.
func U128From64(v uint64) U128 { return U128FromRaw(0, v) }

// Raw returns the high and low halves of the two's-complement bits.
func (x I128) Raw() (hi, lo uint64) { return num.I128(x).Raw() }

// Raw returns the high and low halves.
func (x U128) Raw() (hi, lo uint64) { return num.U128(x).Raw() }

// unsigned and signed reinterpret the bits without going through the cast
// dispatch.
func (x I128) unsigned() U128 { return U128FromRaw(x.Raw()) }
func (x U128) signed() I128   { return I128FromRaw(x.Raw()) }

func (x I128) String() string { return num.I128(x).String() }
func (x U128) String() string { return num.U128(x).String() }

func (I128) Bits() int             { return 128 }
func (I128) Zero() I128            { return I128FromRaw(0, 0) }
func (I128) One() I128             { return I128FromRaw(0, 1) }
func (I128) Two() I128             { return I128FromRaw(0, 2) }
func (I128) Min() I128             { return I128FromRaw(1<<63, 0) }
func (I128) Max() I128             { return I128FromRaw(1<<63-1, math.MaxUint64) }
func (I128) UnsignedWitness() U128 { return U128{} }

func (x I128) Less(y I128) bool {
	xh, xl := x.Raw()
	yh, yl := y.Raw()
	if xh != yh {
		return int64(xh) < int64(yh)
	}
	return xl < yl
}

func (x I128) Add(y I128) I128 { return I128(num.I128(x).Add(num.I128(y))) }
func (x I128) Sub(y I128) I128 { return I128(num.I128(x).Sub(num.I128(y))) }
func (x I128) Mul(y I128) I128 { return I128(num.I128(x).Mul(num.I128(y))) }
func (x I128) Div(y I128) I128 { return I128(num.I128(x).Quo(num.I128(y))) }
func (x I128) Rem(y I128) I128 { return I128(num.I128(x).Rem(num.I128(y))) }

// Neg wraps: the negation of Min is Min.
func (x I128) Neg() I128 { return I128FromRaw(neg128(x.Raw())) }

func (x I128) And(y I128) I128 { return x.unsigned().And(y.unsigned()).signed() }
func (x I128) Or(y I128) I128  { return x.unsigned().Or(y.unsigned()).signed() }
func (x I128) Xor(y I128) I128 { return x.unsigned().Xor(y.unsigned()).signed() }
func (x I128) Not() I128       { return x.unsigned().Not().signed() }
func (x I128) Shl(n uint) I128 { return x.unsigned().Shl(n).signed() }

// Shr is an arithmetic shift.
func (x I128) Shr(n uint) I128 {
	hi, lo := x.Raw()
	s := int64(hi)
	switch {
	case n >= 128:
		return I128FromRaw(uint64(s>>63), uint64(s>>63))
	case n >= 64:
		return I128FromRaw(uint64(s>>63), uint64(s>>(n-64)))
	case n == 0:
		return x
	}
	return I128FromRaw(uint64(s>>n), lo>>n|hi<<(64-n))
}

func (x *I128) AddAssign(y I128) { *x = x.Add(y) }
func (x *I128) SubAssign(y I128) { *x = x.Sub(y) }
func (x *I128) MulAssign(y I128) { *x = x.Mul(y) }
func (x *I128) DivAssign(y I128) { *x = x.Div(y) }
func (x *I128) RemAssign(y I128) { *x = x.Rem(y) }
func (x *I128) AndAssign(y I128) { *x = x.And(y) }
func (x *I128) OrAssign(y I128)  { *x = x.Or(y) }
func (x *I128) XorAssign(y I128) { *x = x.Xor(y) }
func (x *I128) ShlAssign(n uint) { *x = x.Shl(n) }
func (x *I128) ShrAssign(n uint) { *x = x.Shr(n) }

func (x I128) IntoUnsigned() U128 { return CastFrom[U128](x) }

func (x I128) BitsString(breakEvery int) (string, error) {
	hi, lo := x.Raw()
	return groupedBits(hi, lo, 128, breakEvery)
}

func (x I128) WrappingAbs() I128 {
	if hi, _ := x.Raw(); int64(hi) < 0 {
		return x.Neg()
	}
	return x
}

func (x I128) Float64() float64 { return i128Float64(x.Raw()) }

func (I128) FromFloat64(f float64) I128 {
	switch {
	case f != f:
		return I128{}
	case f >= 0x1p127:
		return I128{}.Max()
	case f <= -0x1p127:
		return I128{}.Min()
	case f < 0:
		return U128{}.FromFloat64(-f).signed().Neg()
	}
	return U128{}.FromFloat64(f).signed()
}

func (U128) Bits() int           { return 128 }
func (U128) Zero() U128          { return U128FromRaw(0, 0) }
func (U128) One() U128           { return U128FromRaw(0, 1) }
func (U128) Two() U128           { return U128FromRaw(0, 2) }
func (U128) Min() U128           { return U128FromRaw(0, 0) }
func (U128) Max() U128           { return U128FromRaw(math.MaxUint64, math.MaxUint64) }
func (U128) SignedWitness() I128 { return I128{} }

func (x U128) Less(y U128) bool {
	xh, xl := x.Raw()
	yh, yl := y.Raw()
	if xh != yh {
		return xh < yh
	}
	return xl < yl
}

func (x U128) Add(y U128) U128 { return U128(num.U128(x).Add(num.U128(y))) }
func (x U128) Sub(y U128) U128 { return U128(num.U128(x).Sub(num.U128(y))) }
func (x U128) Mul(y U128) U128 { return U128(num.U128(x).Mul(num.U128(y))) }
func (x U128) Div(y U128) U128 { return U128(num.U128(x).Quo(num.U128(y))) }
func (x U128) Rem(y U128) U128 { return U128(num.U128(x).Rem(num.U128(y))) }

func (x U128) And(y U128) U128 {
	xh, xl := x.Raw()
	yh, yl := y.Raw()
	return U128FromRaw(xh&yh, xl&yl)
}

func (x U128) Or(y U128) U128 {
	xh, xl := x.Raw()
	yh, yl := y.Raw()
	return U128FromRaw(xh|yh, xl|yl)
}

func (x U128) Xor(y U128) U128 {
	xh, xl := x.Raw()
	yh, yl := y.Raw()
	return U128FromRaw(xh^yh, xl^yl)
}

func (x U128) Not() U128 {
	hi, lo := x.Raw()
	return U128FromRaw(^hi, ^lo)
}

func (x U128) Shl(n uint) U128 {
	if n >= 128 {
		return U128{}
	}
	return U128(num.U128(x).Lsh(n))
}

func (x U128) Shr(n uint) U128 {
	if n >= 128 {
		return U128{}
	}
	return U128(num.U128(x).Rsh(n))
}

func (x *U128) AddAssign(y U128) { *x = x.Add(y) }
func (x *U128) SubAssign(y U128) { *x = x.Sub(y) }
func (x *U128) MulAssign(y U128) { *x = x.Mul(y) }
func (x *U128) DivAssign(y U128) { *x = x.Div(y) }
func (x *U128) RemAssign(y U128) { *x = x.Rem(y) }
func (x *U128) AndAssign(y U128) { *x = x.And(y) }
func (x *U128) OrAssign(y U128)  { *x = x.Or(y) }
func (x *U128) XorAssign(y U128) { *x = x.Xor(y) }
func (x *U128) ShlAssign(n uint) { *x = x.Shl(n) }
func (x *U128) ShrAssign(n uint) { *x = x.Shr(n) }

func (x U128) IntoSigned() I128 { return CastFrom[I128](x) }

func (x U128) BitsString(breakEvery int) (string, error) {
	hi, lo := x.Raw()
	return groupedBits(hi, lo, 128, breakEvery)
}

func (x U128) Float64() float64 { return u128Float64(x.Raw()) }

func (U128) FromFloat64(f float64) U128 {
	switch {
	case f != f, f <= 0:
		return U128{}
	case f >= 0x1p128:
		return U128{}.Max()
	}
	if f < 0x1p64 {
		return U128FromRaw(0, uint64(f))
	}
	// f is an integer here and the split below is exact.
	hi := math.Floor(f / 0x1p64)
	return U128FromRaw(uint64(hi), uint64(f-hi*0x1p64))
}
