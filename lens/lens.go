// Package lens exposes the three context surfaces of the accessor algebra:
// Lens for accessors that always succeed, Partial for accessors whose focus
// may be structurally absent, and Failing for accessors that report why a
// focus was unavailable. All three wrap the same point.Point core, so they
// compose with the same algebra and obey the same laws.
package lens

import (
	"github.com/rgrinberg/fclabels/functional"
	"github.com/rgrinberg/fclabels/point"
)

// Lens provides total access to a part of a data structure: both reading
// and updating the focus always succeed.
type Lens[S, A any] struct {
	p point.Point[S, S, A, A]
}

// New creates a lens from get and set functions.
func New[S, A any](get func(S) A, set func(S, A) S) Lens[S, A] {
	return Lens[S, A]{p: point.FromGetSet(get, set)}
}

// Get retrieves the focused value.
func (l Lens[S, A]) Get(source S) A {
	// total context: the underlying point cannot fail
	v, _ := l.p.Get(source)
	return v
}

// Set returns a new structure with the focused value replaced.
func (l Lens[S, A]) Set(source S, value A) S {
	s, _ := l.p.Set(value, source)
	return s
}

// Modify applies a function to the focused value.
func (l Lens[S, A]) Modify(source S, fn func(A) A) S {
	s, _ := l.p.Modify(func(a A) (A, error) { return fn(a), nil }, source)
	return s
}

// Point returns the underlying generalized accessor.
func (l Lens[S, A]) Point() point.Point[S, S, A, A] {
	return l.p
}

// Partial embeds the lens into the partial context, so it can compose with
// accessors that may miss.
func (l Lens[S, A]) Partial() Partial[S, A] {
	return Partial[S, A]{p: l.p}
}

// Failing embeds the lens into the failing context.
func (l Lens[S, A]) Failing() Failing[S, A] {
	return Failing[S, A]{p: l.p}
}

// Identity creates a lens focusing the whole structure on itself.
func Identity[S any]() Lens[S, S] {
	return Lens[S, S]{p: point.Identity[S]()}
}

// Compose creates a lens focusing inner's target through outer's target.
func Compose[S, A, B any](outer Lens[S, A], inner Lens[A, B]) Lens[S, B] {
	return Lens[S, B]{p: point.Compose(outer.p, inner.p)}
}

// Product combines two lenses over the same structure into one focusing
// both parts simultaneously. The two foci must be independent.
func Product[S, A, B any](first Lens[S, A], second Lens[S, B]) Lens[S, functional.Pair[A, B]] {
	return Lens[S, functional.Pair[A, B]]{p: point.Product(first.p, second.p)}
}

// Const creates a lens whose getter always returns value and whose setter
// leaves the structure untouched. It is the identity element of Product.
func Const[S, A any](value A) Lens[S, A] {
	return Lens[S, A]{p: point.Pure[S, A, A](value)}
}
