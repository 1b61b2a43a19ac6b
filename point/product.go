package point

import "github.com/rgrinberg/fclabels/functional"

// Product combines two Points over the same outer type into one focusing
// both parts at once. The getter pairs the two gets, failing as soon as
// either fails. The modifier reads both old foci, applies the pairwise
// update once, then applies first's modifier and then second's, threading
// the structure through both; that left-to-right order is fixed. Both
// updates must succeed for the combined update to succeed.
//
// The two Points are assumed independent: each focus must survive the
// other's update untouched. Overlapping foci break the round-trip laws of
// the result, exactly as any other law-violating constructor call would.
func Product[F, O1, I1, O2, I2 any](
	first Point[F, F, O1, I1],
	second Point[F, F, O2, I2],
) Point[F, F, functional.Pair[O1, O2], functional.Pair[I1, I2]] {
	return Point[F, F, functional.Pair[O1, O2], functional.Pair[I1, I2]]{
		get: func(f F) (functional.Pair[O1, O2], error) {
			var zero functional.Pair[O1, O2]
			o1, err := first.get(f)
			if err != nil {
				return zero, err
			}
			o2, err := second.get(f)
			if err != nil {
				return zero, err
			}
			return functional.NewPair(o1, o2), nil
		},
		modify: func(update func(functional.Pair[O1, O2]) (functional.Pair[I1, I2], error), f F) (F, error) {
			var zero F
			o1, err := first.get(f)
			if err != nil {
				return zero, err
			}
			o2, err := second.get(f)
			if err != nil {
				return zero, err
			}
			updated, err := update(functional.NewPair(o1, o2))
			if err != nil {
				return zero, err
			}
			f1, err := first.Set(updated.First, f)
			if err != nil {
				return zero, err
			}
			return second.Set(updated.Second, f1)
		},
	}
}

// Pure creates a constant Point: its getter ignores the structure and
// returns value, and its modifier returns the structure unchanged without
// invoking the update function. Pure is the identity element of Product.
func Pure[F, I, O any](value O) Point[F, F, O, I] {
	return Point[F, F, O, I]{
		get: func(F) (O, error) { return value, nil },
		modify: func(_ func(O) (I, error), f F) (F, error) {
			return f, nil
		},
	}
}
