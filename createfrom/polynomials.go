package createfrom

import "fmt"

// PolynomialSize is the number of coefficients of each polynomial.
type PolynomialSize int

// PolynomialCount is the number of polynomials in a buffer.
type PolynomialCount int

// Polynomials is a list of polynomials of equal size stored back to back in
// one coefficient slice.
type Polynomials[E any] struct {
	coeffs []E
	size   int
}

var (
	_ FromView[int64, PolynomialSize, Polynomials[int64]] = Polynomials[int64]{}
	_ FromMut[int64, PolynomialCount, Polynomials[int64]] = Polynomials[int64]{}
)

// CreateFromView copies in as polynomials of size coefficients each.
//
// It panics unless size is positive and divides in.Len().
func (Polynomials[E]) CreateFromView(in View[E], size PolynomialSize) Polynomials[E] {
	n := in.Len()
	if size <= 0 || n%int(size) != 0 {
		panic(fmt.Sprintf("createfrom: %d coefficients do not split into polynomials of size %d", n, size))
	}
	return Polynomials[E]{coeffs: in.Clone(), size: int(size)}
}

// CreateFromMut moves the coefficients of in into count polynomials and
// resets in to zero values.
//
// It panics unless count is positive and divides in.Len().
func (Polynomials[E]) CreateFromMut(in Mut[E], count PolynomialCount) Polynomials[E] {
	n := in.Len()
	if count <= 0 || n%int(count) != 0 {
		panic(fmt.Sprintf("createfrom: %d coefficients do not split into %d polynomials", n, count))
	}
	p := Polynomials[E]{coeffs: in.Clone(), size: n / int(count)}
	in.Clear()
	return p
}

// Len returns the number of polynomials.
func (p Polynomials[E]) Len() int {
	if p.size == 0 {
		return 0
	}
	return len(p.coeffs) / p.size
}

// Size returns the number of coefficients per polynomial.
func (p Polynomials[E]) Size() int { return p.size }

// At returns the coefficients of polynomial i. The slice aliases p, so
// writes update the polynomial in place.
func (p Polynomials[E]) At(i int) []E {
	lo := i * p.size
	return p.coeffs[lo : lo+p.size : lo+p.size]
}

// Coefficients returns every coefficient, polynomial after polynomial.
func (p Polynomials[E]) Coefficients() []E { return p.coeffs }
