package createfrom

// Metadata is the constraint on the interpretation metadata: plain values
// that are cheap to copy.
type Metadata interface {
	comparable
}

// FromView is implemented by types that can be built from a read-only
// window of E. The receiver is ignored; implementations are called on the
// zero value.
type FromView[E any, M Metadata, T any] interface {
	CreateFromView(in View[E], meta M) T
}

// FromMut is implemented by types that can be built from a mutable window
// of E. An implementation may write to the window while building, for
// example to consume or wipe its contents.
type FromMut[E any, M Metadata, T any] interface {
	CreateFromMut(in Mut[E], meta M) T
}

// NewFromView builds a T from in and meta.
func NewFromView[T FromView[E, M, T], E any, M Metadata](in View[E], meta M) T {
	var t T
	return t.CreateFromView(in, meta)
}

// NewFromMut builds a T from in and meta.
func NewFromMut[T FromMut[E, M, T], E any, M Metadata](in Mut[E], meta M) T {
	var t T
	return t.CreateFromMut(in, meta)
}

// NoMetadata is the metadata of implementations that need none.
type NoMetadata struct{}

// Dummy ignores both its input and its metadata. It is the degenerate
// implementation of both shapes, for tests and placeholders.
type Dummy[E any] struct{}

// CreateFromView returns Dummy without reading in.
func (Dummy[E]) CreateFromView(View[E], NoMetadata) Dummy[E] { return Dummy[E]{} }

// CreateFromMut returns Dummy without touching in.
func (Dummy[E]) CreateFromMut(Mut[E], NoMetadata) Dummy[E] { return Dummy[E]{} }

var (
	_ FromView[byte, NoMetadata, Dummy[byte]] = Dummy[byte]{}
	_ FromMut[byte, NoMetadata, Dummy[byte]]  = Dummy[byte]{}
)
