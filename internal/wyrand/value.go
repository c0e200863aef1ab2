package wyrand

import (
	"math"
	"math/rand/v2"

	"go.dw1.io/fhecore/numeric"
)

// Value draws a uniformly random bit pattern of T from src. Float patterns
// include NaNs and infinities; use [Finite] to exclude them.
func Value[T numeric.Type](src rand.Source) T {
	hi, lo := src.Uint64(), src.Uint64()
	return numeric.FromBits[T](hi, lo)
}

// Values draws n values of T.
func Values[T numeric.Type](src rand.Source, n int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = Value[T](src)
	}
	return out
}

// Finite draws a random finite float whose magnitude does not exceed limit.
// A limit of zero or less means no limit.
func Finite[T numeric.F32 | numeric.F64](src rand.Source, limit float64) T {
	for {
		v := Value[T](src)
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			continue
		}
		if limit > 0 && math.Abs(f) > limit {
			continue
		}
		return v
	}
}
