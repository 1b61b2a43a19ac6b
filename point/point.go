// Package point implements the generalized accessor the rest of the module
// is built from. A Point pairs a getter with a modifier over one uniform
// computation shape, func(X) (Y, error):
//
//   - the total context never returns a non-nil error,
//   - the partial context fails only with ErrNoFocus,
//   - the failing context carries arbitrary caller errors.
//
// Composition, product combination, and the constant point are written once
// here against that shape; the lens package layers the three typed surfaces
// on top.
package point

// Point is a getter/modifier pair focusing on a part of a larger structure.
// The getter reads the focus O out of an outer value F. The modifier takes
// an update function from the old focus O to the new focus I and produces
// the updated outer value G. Focus and outer types may change across an
// update, which is why four parameters exist; the common case is
// Point[S, S, A, A].
//
// Constructors must uphold two contracts that New cannot check:
// the get/modify pair satisfies the round-trip laws for its context, and
// the modifier propagates any error from its update function without
// mutating anything. Violations are caller bugs, not detected conditions.
type Point[F, G, O, I any] struct {
	get    func(F) (O, error)
	modify func(func(O) (I, error), F) (G, error)
}

// New creates a Point from a getter and a modifier. No validation of the
// round-trip laws is performed.
func New[F, G, O, I any](get func(F) (O, error), modify func(func(O) (I, error), F) (G, error)) Point[F, G, O, I] {
	return Point[F, G, O, I]{get: get, modify: modify}
}

// Get reads the focused value out of source.
func (p Point[F, G, O, I]) Get(source F) (O, error) {
	return p.get(source)
}

// Modify rewrites the focus through update, which receives the old focus
// and may itself fail in the Point's context. On failure the zero G is
// returned alongside the error; no partial mutation is observable.
func (p Point[F, G, O, I]) Modify(update func(O) (I, error), source F) (G, error) {
	return p.modify(update, source)
}

// Set replaces the focus with value, ignoring the old focus.
func (p Point[F, G, O, I]) Set(value I, source F) (G, error) {
	return p.modify(func(O) (I, error) { return value, nil }, source)
}

// Identity creates a Point whose focus is the whole structure.
func Identity[S any]() Point[S, S, S, S] {
	return Point[S, S, S, S]{
		get: func(s S) (S, error) { return s, nil },
		modify: func(update func(S) (S, error), s S) (S, error) {
			return update(s)
		},
	}
}

// Compose focuses inner's target through outer's target first. The getter
// short-circuits: when outer's getter fails, inner never runs. The modifier
// rewrites the outer focus by running inner's modifier on it, so a failure
// at any stage propagates before any update is applied.
//
// Compose is associative: Compose(Compose(a, b), c) and
// Compose(a, Compose(b, c)) have identical get and modify behavior.
func Compose[F, G, A, B, O, I any](outer Point[F, G, A, B], inner Point[A, B, O, I]) Point[F, G, O, I] {
	return Point[F, G, O, I]{
		get: func(f F) (O, error) {
			a, err := outer.get(f)
			if err != nil {
				var zero O
				return zero, err
			}
			return inner.get(a)
		},
		modify: func(update func(O) (I, error), f F) (G, error) {
			return outer.modify(func(a A) (B, error) {
				return inner.modify(update, a)
			}, f)
		},
	}
}

// Total lifts an ordinary getter and modifier, neither of which can fail,
// into a Point. The lifted modifier still propagates failures of effectful
// update functions handed to it by other contexts.
func Total[F, G, O, I any](get func(F) O, modify func(func(O) I, F) G) Point[F, G, O, I] {
	return Point[F, G, O, I]{
		get: func(f F) (O, error) { return get(f), nil },
		modify: func(update func(O) (I, error), f F) (G, error) {
			o := get(f)
			i, err := update(o)
			if err != nil {
				var zero G
				return zero, err
			}
			return modify(func(O) I { return i }, f), nil
		},
	}
}

// FromGetSet lifts a total get/set pair in the style of an ordinary lens
// into a Point over a single structure type.
func FromGetSet[S, A any](get func(S) A, set func(S, A) S) Point[S, S, A, A] {
	return Total[S, S, A, A](get, func(update func(A) A, s S) S {
		return set(s, update(get(s)))
	})
}
