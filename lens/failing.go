package lens

import (
	"github.com/rgrinberg/fclabels/functional"
	"github.com/rgrinberg/fclabels/point"
)

// Failing provides access to a part of a data structure that may be
// unavailable, carrying a diagnostic error when it is. Composition
// propagates the first error encountered unchanged; errors are never
// merged or accumulated.
type Failing[S, A any] struct {
	p point.Point[S, S, A, A]
}

// NewFailing creates a failing lens from Result-returning get and set
// functions.
func NewFailing[S, A any](get func(S) functional.Result[A], set func(S, A) functional.Result[S]) Failing[S, A] {
	return Failing[S, A]{p: point.New(
		func(s S) (A, error) {
			return get(s).Get()
		},
		func(update func(A) (A, error), s S) (S, error) {
			var zero S
			a, err := get(s).Get()
			if err != nil {
				return zero, err
			}
			i, err := update(a)
			if err != nil {
				return zero, err
			}
			return set(s, i).Get()
		},
	)}
}

// Get attempts to retrieve the focused value.
func (l Failing[S, A]) Get(source S) functional.Result[A] {
	return functional.ResultOf(l.p.Get(source))
}

// Set replaces the focused value, reporting why when it cannot.
func (l Failing[S, A]) Set(source S, value A) functional.Result[S] {
	return functional.ResultOf(l.p.Set(value, source))
}

// Modify applies an update function, itself allowed to fail, to the
// focused value.
func (l Failing[S, A]) Modify(source S, fn func(A) functional.Result[A]) functional.Result[S] {
	return functional.ResultOf(l.p.Modify(func(a A) (A, error) {
		return fn(a).Get()
	}, source))
}

// Point returns the underlying generalized accessor.
func (l Failing[S, A]) Point() point.Point[S, S, A, A] {
	return l.p
}

// ComposeFailing creates a failing lens focusing inner's target through
// outer's target, propagating the first error encountered.
func ComposeFailing[S, A, B any](outer Failing[S, A], inner Failing[A, B]) Failing[S, B] {
	return Failing[S, B]{p: point.Compose(outer.p, inner.p)}
}

// ProductFailing combines two failing lenses over the same structure into
// one focusing both parts at once; the first error wins.
func ProductFailing[S, A, B any](first Failing[S, A], second Failing[S, B]) Failing[S, functional.Pair[A, B]] {
	return Failing[S, functional.Pair[A, B]]{p: point.Product(first.p, second.p)}
}
