// Package createfrom defines the raw-construction contract: building a
// value from a contiguous buffer of elements plus a small metadata value
// that says how to read it.
//
// The buffer comes in two shapes, a read-only [View] and a mutable [Mut].
// A type implements [FromView], [FromMut] or both, possibly with different
// metadata for each shape:
//
//	p := createfrom.NewFromView[createfrom.Polynomials[int64]](
//		createfrom.ViewOf(coeffs), createfrom.PolynomialSize(1024))
//
// The contract itself does not tie the buffer length to the metadata. Each
// implementation documents its preconditions and panics when they are not
// met, the way slice indexing does. Implementations never keep the window
// after returning; anything they hold on to is copied out first.
package createfrom
