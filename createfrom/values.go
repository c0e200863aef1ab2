package createfrom

import (
	"fmt"

	"go.dw1.io/fhecore/numeric"
)

// Values is a list of numeric leaves decoded from untyped memory.
type Values[T numeric.Type] struct {
	vals []T
}

var (
	_ FromView[byte, Layout, Values[numeric.U32]] = Values[numeric.U32]{}
	_ FromMut[byte, Layout, Values[numeric.F64]]  = Values[numeric.F64]{}
)

// ValuesOf wraps vals. The slice is not copied.
func ValuesOf[T numeric.Type](vals ...T) Values[T] { return Values[T]{vals: vals} }

func width[T numeric.Type]() int {
	var t T
	return any(t).(interface{ Bits() int }).Bits() / 8
}

// CreateFromView decodes the values laid out in in according to l. Integer
// leaves are read as two's complement, floats as IEEE-754.
//
// It panics unless l.Stride is zero or at least the width of T, and the
// l.Count values fit in in.
func (Values[T]) CreateFromView(in View[byte], l Layout) Values[T] {
	w := width[T]()
	stride, count := l.resolve(in.Len(), w)

	vals := make([]T, count)
	for i := range vals {
		off := i * stride
		vals[i] = numeric.FromBits[T](l.Endian.get(in.s[off : off+w]))
	}
	return Values[T]{vals: vals}
}

// CreateFromMut decodes like [Values.CreateFromView] and then zeroes the
// bytes it read. Padding between strided values is left untouched.
func (v Values[T]) CreateFromMut(in Mut[byte], l Layout) Values[T] {
	out := v.CreateFromView(in.View, l)

	w := width[T]()
	stride, _ := l.resolve(in.Len(), w)
	for i := range out.vals {
		off := i * stride
		clear(in.s[off : off+w])
	}
	return out
}

// Store encodes the values into dst according to l. A zero l.Count stores
// every value.
//
// It panics under the same conditions as [Values.CreateFromView], or when
// l.Count exceeds Len.
func (v Values[T]) Store(dst Mut[byte], l Layout) {
	if l.Count == 0 {
		l.Count = len(v.vals)
	}
	if l.Count == 0 {
		return
	}
	if l.Count > len(v.vals) {
		panic(fmt.Sprintf("createfrom: storing %d of %d values", l.Count, len(v.vals)))
	}

	w := width[T]()
	stride, count := l.resolve(dst.Len(), w)
	for i, x := range v.vals[:count] {
		off := i * stride
		hi, lo := numeric.BitsOf(x)
		l.Endian.put(dst.s[off:off+w], hi, lo)
	}
}

// Len returns the number of values.
func (v Values[T]) Len() int { return len(v.vals) }

// At returns value i.
func (v Values[T]) At(i int) T { return v.vals[i] }

// Slice returns the values. The slice aliases v.
func (v Values[T]) Slice() []T { return v.vals }
