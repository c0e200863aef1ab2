package numeric

// Numeric is implemented by every leaf type. The receiver of Bits, Zero, One,
// Two and Max is never read; they behave as per-type constants.
type Numeric[T any] interface {
	comparable

	// Bits returns the storage width of T in bits.
	Bits() int
	Zero() T
	One() T
	Two() T
	// Max returns the largest value representable by T.
	Max() T

	// Less reports whether the receiver orders before y under T's native
	// ordering.
	Less(y T) bool
}

// Arithmetic is closure of T under the basic arithmetic operators.
type Arithmetic[T any] interface {
	Add(y T) T
	Sub(y T) T
	Mul(y T) T
	Div(y T) T
	Rem(y T) T
}

// ArithmeticAssign is satisfied by *T when T has in-place arithmetic.
type ArithmeticAssign[T any] interface {
	*T
	AddAssign(y T)
	SubAssign(y T)
	MulAssign(y T)
	DivAssign(y T)
	RemAssign(y T)
}

// Bitwise is closure of T under the bitwise operators. Shift amounts are
// unsigned; shifting by Bits() or more clears the value (or fills it with
// the sign bit for Shr on negative signed values).
type Bitwise[T any] interface {
	And(y T) T
	Or(y T) T
	Xor(y T) T
	Not() T
	Shl(n uint) T
	Shr(n uint) T
}

// BitwiseAssign is satisfied by *T when T has in-place bitwise operators.
type BitwiseAssign[T any] interface {
	*T
	AndAssign(y T)
	OrAssign(y T)
	XorAssign(y T)
	ShlAssign(n uint)
	ShrAssign(n uint)
}

// FloatingPoint is implemented by [F32] and [F64]. All operations follow the
// native IEEE-754 semantics; NaN and infinities propagate.
type FloatingPoint[T any] interface {
	Numeric[T]
	Arithmetic[T]
	Neg() T

	// MantissaDigits returns the number of significant binary digits.
	MantissaDigits() int

	// Powi raises the receiver to an integer power. Powi(0) is One for
	// every receiver, NaN included.
	Powi(n int32) T
	// Round rounds half away from zero.
	Round() T
	// Fract returns the receiver minus its Floor. It lies in [0, 1) for
	// finite receivers and x.Floor() + x.Fract() equals x up to rounding
	// (exactly when |x| >= 1 or x >= 0).
	Fract() T
	// RemEuclid returns the remainder of the Euclidean division by rhs. It
	// lies in [0, |rhs|) for finite operands, unlike Rem whose sign follows
	// the dividend.
	RemEuclid(rhs T) T
	Sqrt() T
	Ln() T
	Abs() T
	Floor() T

	// BitString renders the raw IEEE-754 bits as "S EEE...E MMM...M".
	BitString() string

	Float64() float64
	FromFloat64(f float64) T
}

// Integer gathers what signed and unsigned integer leaves share.
type Integer[T any] interface {
	Numeric[T]
	Arithmetic[T]
	Bitwise[T]

	// Min returns the smallest value representable by T.
	Min() T

	// BitsString renders the two's-complement bits of the receiver,
	// zero-padded to Bits(), with a space before every breakEvery-th digit
	// counted from the most significant end. A trailing group shorter than
	// breakEvery is not split and breakEvery <= 0 disables grouping.
	BitsString(breakEvery int) (string, error)

	// Float64 converts to the nearest float64.
	Float64() float64
	// FromFloat64 truncates f toward zero, saturating at Min and Max. NaN
	// converts to zero.
	FromFloat64(f float64) T
}

// SignedNumeric marks a signed type T and names its same-width unsigned
// counterpart U.
type SignedNumeric[T, U any] interface {
	Numeric[T]

	// UnsignedWitness returns the zero value of the unsigned counterpart.
	UnsignedWitness() U
}

// SignedInteger is implemented by [I8], [I16], [I32], [I64], [I128] and [Int],
// paired with [U8], [U16], [U32], [U64], [U128] and [Uint] respectively.
//
// Generic code that needs both sides declares both constraints:
//
//	func f[S SignedInteger[S, U], U UnsignedInteger[U, S]](x S)
type SignedInteger[T, U any] interface {
	SignedNumeric[T, U]
	Integer[T]
	Neg() T

	// IntoUnsigned reinterprets the two's-complement bits as U, so -1
	// becomes U's Max.
	IntoUnsigned() U

	// WrappingAbs returns the absolute value, wrapping at Min: Min maps to
	// itself.
	WrappingAbs() T
}

// UnsignedInteger is the unsigned counterpart of [SignedInteger].
type UnsignedInteger[T, S any] interface {
	Integer[T]

	// SignedWitness returns the zero value of the signed counterpart.
	SignedWitness() S

	// IntoSigned reinterprets the bits as S, so Max becomes -1.
	IntoSigned() S
}

// Bits returns the width of T in bits.
func Bits[T Numeric[T]]() int {
	var t T
	return t.Bits()
}

// Zero returns the zero of T.
func Zero[T Numeric[T]]() T {
	var t T
	return t.Zero()
}

// One returns the one of T.
func One[T Numeric[T]]() T {
	var t T
	return t.One()
}

// Two returns the two of T.
func Two[T Numeric[T]]() T {
	var t T
	return t.Two()
}

// Max returns the largest value of T.
func Max[T Numeric[T]]() T {
	var t T
	return t.Max()
}

// Compile-time contract checks for every leaf.
var (
	_ = signedLeaf[I8, U8, *I8]
	_ = signedLeaf[I16, U16, *I16]
	_ = signedLeaf[I32, U32, *I32]
	_ = signedLeaf[I64, U64, *I64]
	_ = signedLeaf[I128, U128, *I128]
	_ = signedLeaf[Int, Uint, *Int]

	_ = unsignedLeaf[U8, I8, *U8]
	_ = unsignedLeaf[U16, I16, *U16]
	_ = unsignedLeaf[U32, I32, *U32]
	_ = unsignedLeaf[U64, I64, *U64]
	_ = unsignedLeaf[U128, I128, *U128]
	_ = unsignedLeaf[Uint, Int, *Uint]

	_ = floatLeaf[F32, *F32]
	_ = floatLeaf[F64, *F64]
)

func signedLeaf[T SignedInteger[T, U], U UnsignedInteger[U, T], P interface {
	ArithmeticAssign[T]
	BitwiseAssign[T]
}]() {
}

func unsignedLeaf[T UnsignedInteger[T, S], S SignedInteger[S, T], P interface {
	ArithmeticAssign[T]
	BitwiseAssign[T]
}]() {
}

func floatLeaf[T FloatingPoint[T], P ArithmeticAssign[T]]() {}
