package lens

import (
	"errors"

	"github.com/rgrinberg/fclabels/functional"
	"github.com/rgrinberg/fclabels/point"
)

// Partial provides access to a part of a data structure that may be absent,
// such as one case of a sum type or the head of a sequence. Absence is
// silent: no diagnostic travels with a miss.
type Partial[S, A any] struct {
	p point.Point[S, S, A, A]
}

// NewPartial creates a partial lens from Option-returning get and set
// functions. A None from either means the focus does not exist in the
// given structure.
func NewPartial[S, A any](get func(S) functional.Option[A], set func(S, A) functional.Option[S]) Partial[S, A] {
	return Partial[S, A]{p: point.New(
		func(s S) (A, error) {
			o := get(s)
			if o.IsNone() {
				var zero A
				return zero, point.ErrNoFocus
			}
			return o.Unwrap(), nil
		},
		func(update func(A) (A, error), s S) (S, error) {
			var zero S
			o := get(s)
			if o.IsNone() {
				return zero, point.ErrNoFocus
			}
			a, err := update(o.Unwrap())
			if err != nil {
				// the partial context carries no error values, only absence
				return zero, point.ErrNoFocus
			}
			out := set(s, a)
			if out.IsNone() {
				return zero, point.ErrNoFocus
			}
			return out.Unwrap(), nil
		},
	)}
}

// Get attempts to retrieve the focused value.
func (l Partial[S, A]) Get(source S) functional.Option[A] {
	v, err := l.p.Get(source)
	if err != nil {
		return functional.None[A]()
	}
	return functional.Some(v)
}

// Set replaces the focused value, returning None when the focus is absent.
func (l Partial[S, A]) Set(source S, value A) functional.Option[S] {
	s, err := l.p.Set(value, source)
	if err != nil {
		return functional.None[S]()
	}
	return functional.Some(s)
}

// Modify applies a function to the focused value, returning None when the
// focus is absent.
func (l Partial[S, A]) Modify(source S, fn func(A) A) functional.Option[S] {
	s, err := l.p.Modify(func(a A) (A, error) { return fn(a), nil }, source)
	if err != nil {
		return functional.None[S]()
	}
	return functional.Some(s)
}

// ModifyOption applies an update function that may itself miss.
func (l Partial[S, A]) ModifyOption(source S, fn func(A) functional.Option[A]) functional.Option[S] {
	s, err := l.p.Modify(func(a A) (A, error) {
		o := fn(a)
		if o.IsNone() {
			var zero A
			return zero, point.ErrNoFocus
		}
		return o.Unwrap(), nil
	}, source)
	if err != nil {
		return functional.None[S]()
	}
	return functional.Some(s)
}

// SetOr replaces the focused value, returning the source unchanged when
// the focus is absent.
func (l Partial[S, A]) SetOr(source S, value A) S {
	return l.Set(source, value).UnwrapOr(source)
}

// ModifyOr applies a function to the focused value, returning the source
// unchanged when the focus is absent.
func (l Partial[S, A]) ModifyOr(source S, fn func(A) A) S {
	return l.Modify(source, fn).UnwrapOr(source)
}

// Point returns the underlying generalized accessor.
func (l Partial[S, A]) Point() point.Point[S, S, A, A] {
	return l.p
}

// FailWith embeds the partial lens into the failing context, reporting err
// wherever the partial lens would silently miss.
func (l Partial[S, A]) FailWith(err error) Failing[S, A] {
	p := l.p
	return Failing[S, A]{p: point.New(
		func(s S) (A, error) {
			a, gerr := p.Get(s)
			if gerr != nil {
				var zero A
				return zero, err
			}
			return a, nil
		},
		func(update func(A) (A, error), s S) (S, error) {
			out, merr := p.Modify(update, s)
			if merr != nil {
				var zero S
				if errors.Is(merr, point.ErrNoFocus) {
					return zero, err
				}
				return zero, merr
			}
			return out, nil
		},
	)}
}

// ComposePartial creates a partial lens focusing inner's target through
// outer's target, missing as soon as either stage misses.
func ComposePartial[S, A, B any](outer Partial[S, A], inner Partial[A, B]) Partial[S, B] {
	return Partial[S, B]{p: point.Compose(outer.p, inner.p)}
}

// ProductPartial combines two partial lenses over the same structure into
// one focusing both parts at once; it misses unless both foci exist.
func ProductPartial[S, A, B any](first Partial[S, A], second Partial[S, B]) Partial[S, functional.Pair[A, B]] {
	return Partial[S, functional.Pair[A, B]]{p: point.Product(first.p, second.p)}
}

// Choice combines two partial lenses with first-success-wins semantics:
// the result behaves as first wherever first's getter finds a focus and
// falls back to second otherwise. second's getter is never evaluated when
// first succeeds. Choice exists only in the partial context; the total
// context cannot miss and the failing context has no defined policy for
// merging two errors.
func Choice[S, A any](first, second Partial[S, A]) Partial[S, A] {
	fp, sp := first.p, second.p
	return Partial[S, A]{p: point.New(
		func(s S) (A, error) {
			a, err := fp.Get(s)
			if err == nil {
				return a, nil
			}
			return sp.Get(s)
		},
		func(update func(A) (A, error), s S) (S, error) {
			out, err := fp.Modify(update, s)
			if err == nil {
				return out, nil
			}
			return sp.Modify(update, s)
		},
	)}
}
