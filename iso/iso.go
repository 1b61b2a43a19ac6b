// Package iso provides isomorphisms: bidirectional pure transformations
// between two equivalent representations. A true isomorphism satisfies
// backward(forward(x)) == x and forward(backward(y)) == y; the type does
// not and cannot enforce this.
package iso

import "github.com/rgrinberg/fclabels/lens"

// Iso is a pair of mutually inverse pure functions.
type Iso[A, B any] struct {
	forward  func(A) B
	backward func(B) A
}

// New creates an isomorphism from a forward and a backward function.
// Supplying functions that are not mutual inverses breaks the laws of
// every lens later derived from the Iso.
func New[A, B any](forward func(A) B, backward func(B) A) Iso[A, B] {
	return Iso[A, B]{forward: forward, backward: backward}
}

// Forward applies the forward transformation.
func (i Iso[A, B]) Forward(a A) B {
	return i.forward(a)
}

// Backward applies the backward transformation.
func (i Iso[A, B]) Backward(b B) A {
	return i.backward(b)
}

// Invert swaps the two directions. Invert is its own inverse:
// i.Invert().Invert() behaves identically to i.
func (i Iso[A, B]) Invert() Iso[B, A] {
	return Iso[B, A]{forward: i.backward, backward: i.forward}
}

// Compose chains two isomorphisms: forward runs outer then inner,
// backward runs inner then outer.
func Compose[A, B, C any](outer Iso[A, B], inner Iso[B, C]) Iso[A, C] {
	return Iso[A, C]{
		forward:  func(a A) C { return inner.forward(outer.forward(a)) },
		backward: func(c C) A { return outer.backward(inner.backward(c)) },
	}
}

// Lens converts the isomorphism into a total lens: the getter is the
// forward map and the setter discards the old value, mapping the new one
// back with the backward map.
func (i Iso[A, B]) Lens() lens.Lens[A, B] {
	return lens.New(i.forward, func(_ A, b B) A {
		return i.backward(b)
	})
}
