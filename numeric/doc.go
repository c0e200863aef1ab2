// Package numeric provides the numeric contracts that generic FHE code is
// written against, and one leaf type per machine width that implements them.
//
// The leaves are [I8], [I16], [I32], [I64], [I128] and [Int] (pointer width)
// for signed integers, [U8], [U16], [U32], [U64], [U128] and [Uint] for
// unsigned integers, and [F32], [F64] for IEEE-754 floats. The 128-bit leaves
// are backed by the two's-complement types of [num].
//
// Contracts are self-typed generic interfaces used as constraints:
//
//	func Scale[T numeric.FloatingPoint[T]](xs []T, k T) {
//		for i := range xs {
//			xs[i] = xs[i].Mul(k)
//		}
//	}
//
// Per-type constants such as the bit width or the maximum value are methods
// whose receiver is ignored, so generic code reads them from the zero value
// (see [Bits], [Max]). Signed integers and their unsigned counterpart are
// paired through a second type parameter, e.g. [SignedInteger][I8, U8].
//
// Conversions between leaves go through [CastFrom] and [CastInto], which are
// total: narrowing truncates, float to integer saturates, and nothing panics.
//
// [num]: https://pkg.go.dev/github.com/shabbyrobe/go-num
package numeric

//go:generate go run go.dw1.io/fhecore/cmd/numgen -o zz_generated.go
