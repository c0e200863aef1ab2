package createfrom

// View is a read-only window over a contiguous run of elements.
type View[E any] struct {
	s []E
}

// ViewOf returns a View over s.
func ViewOf[E any](s []E) View[E] { return View[E]{s: s} }

// Len returns the number of elements in the window.
func (v View[E]) Len() int { return len(v.s) }

// At returns the element at index i. It panics if i is out of range.
func (v View[E]) At(i int) E { return v.s[i] }

// Slice returns the sub-window [i:j].
func (v View[E]) Slice(i, j int) View[E] { return View[E]{s: v.s[i:j:j]} }

// CopyTo copies the window into dst and returns the number of elements
// copied.
func (v View[E]) CopyTo(dst []E) int { return copy(dst, v.s) }

// Clone returns a copy of the elements.
func (v View[E]) Clone() []E {
	out := make([]E, len(v.s))
	copy(out, v.s)
	return out
}

// Mut is a mutable window over a contiguous run of elements. It reads like
// a [View].
type Mut[E any] struct {
	View[E]
}

// MutOf returns a Mut over s. Writes through the Mut are visible in s.
func MutOf[E any](s []E) Mut[E] { return Mut[E]{View[E]{s: s}} }

// Set stores e at index i. It panics if i is out of range.
func (m Mut[E]) Set(i int, e E) { m.s[i] = e }

// Slice returns the mutable sub-window [i:j].
func (m Mut[E]) Slice(i, j int) Mut[E] { return Mut[E]{m.View.Slice(i, j)} }

// CopyFrom copies src into the window and returns the number of elements
// copied.
func (m Mut[E]) CopyFrom(src []E) int { return copy(m.s, src) }

// Clear resets every element to its zero value.
func (m Mut[E]) Clear() { clear(m.s) }

// ReadOnly returns the window as a View.
func (m Mut[E]) ReadOnly() View[E] { return m.View }
