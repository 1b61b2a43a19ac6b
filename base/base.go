// Package base provides ready-made lenses for common shapes: pair
// components, the two cases of a binary sum, the presence case of an
// optional value, the head and tail of a slice, keyed and indexed
// collection access, and a string<->int parse lens. It is an ordinary
// client of the core packages and uses no capability a caller could not
// reach through the public constructors.
package base

import (
	"strconv"

	"github.com/rgrinberg/fclabels/functional"
	"github.com/rgrinberg/fclabels/lens"
)

// First creates a lens for the first element of a pair.
func First[A, B any]() lens.Lens[functional.Pair[A, B], A] {
	return lens.New(
		func(p functional.Pair[A, B]) A { return p.First },
		func(p functional.Pair[A, B], a A) functional.Pair[A, B] {
			return functional.NewPair(a, p.Second)
		},
	)
}

// Second creates a lens for the second element of a pair.
func Second[A, B any]() lens.Lens[functional.Pair[A, B], B] {
	return lens.New(
		func(p functional.Pair[A, B]) B { return p.Second },
		func(p functional.Pair[A, B], b B) functional.Pair[A, B] {
			return functional.NewPair(p.First, b)
		},
	)
}

// Left creates a partial lens for the left case of a binary sum. It misses
// on Right values, so setting through it leaves a Right untouched.
func Left[L, R any]() lens.Partial[functional.Either[L, R], L] {
	return lens.NewPartial(
		func(e functional.Either[L, R]) functional.Option[L] {
			if e.IsLeft() {
				return functional.Some(e.LeftValue())
			}
			return functional.None[L]()
		},
		func(e functional.Either[L, R], l L) functional.Option[functional.Either[L, R]] {
			if e.IsLeft() {
				return functional.Some(functional.Left[L, R](l))
			}
			return functional.None[functional.Either[L, R]]()
		},
	)
}

// Right creates a partial lens for the right case of a binary sum.
func Right[L, R any]() lens.Partial[functional.Either[L, R], R] {
	return lens.NewPartial(
		func(e functional.Either[L, R]) functional.Option[R] {
			if e.IsRight() {
				return functional.Some(e.RightValue())
			}
			return functional.None[R]()
		},
		func(e functional.Either[L, R], r R) functional.Option[functional.Either[L, R]] {
			if e.IsRight() {
				return functional.Some(functional.Right[L](r))
			}
			return functional.None[functional.Either[L, R]]()
		},
	)
}

// Some creates a partial lens for the presence case of an optional value.
// It misses on None; setting through it never conjures a value into an
// empty Option.
func Some[T any]() lens.Partial[functional.Option[T], T] {
	return lens.NewPartial(
		func(o functional.Option[T]) functional.Option[T] { return o },
		func(o functional.Option[T], t T) functional.Option[functional.Option[T]] {
			if o.IsSome() {
				return functional.Some(functional.Some(t))
			}
			return functional.None[functional.Option[T]]()
		},
	)
}

// Head creates a partial lens for the first element of a slice. An empty
// slice has no head, so the lens misses rather than faulting.
func Head[T any]() lens.Partial[[]T, T] {
	return SliceAt[T](0)
}

// Tail creates a partial lens for everything after the first element.
// Setting the tail keeps the head and replaces the rest.
func Tail[T any]() lens.Partial[[]T, []T] {
	return lens.NewPartial(
		func(s []T) functional.Option[[]T] {
			if len(s) == 0 {
				return functional.None[[]T]()
			}
			return functional.Some(s[1:])
		},
		func(s []T, tail []T) functional.Option[[]T] {
			if len(s) == 0 {
				return functional.None[[]T]()
			}
			result := make([]T, 0, 1+len(tail))
			result = append(result, s[0])
			result = append(result, tail...)
			return functional.Some(result)
		},
	)
}

// SliceAt creates a partial lens for the slice element at index, missing
// when the index is out of range. Updates copy the slice.
func SliceAt[T any](index int) lens.Partial[[]T, T] {
	return lens.NewPartial(
		func(s []T) functional.Option[T] {
			if index < 0 || index >= len(s) {
				return functional.None[T]()
			}
			return functional.Some(s[index])
		},
		func(s []T, v T) functional.Option[[]T] {
			if index < 0 || index >= len(s) {
				return functional.None[[]T]()
			}
			result := make([]T, len(s))
			copy(result, s)
			result[index] = v
			return functional.Some(result)
		},
	)
}

// MapAt creates a partial lens for the map value at key, missing when the
// key is absent. Updates copy the map.
func MapAt[K comparable, V any](key K) lens.Partial[map[K]V, V] {
	return lens.NewPartial(
		func(m map[K]V) functional.Option[V] {
			if v, ok := m[key]; ok {
				return functional.Some(v)
			}
			return functional.None[V]()
		},
		func(m map[K]V, v V) functional.Option[map[K]V] {
			if _, ok := m[key]; !ok {
				return functional.None[map[K]V]()
			}
			result := make(map[K]V, len(m))
			for k, val := range m {
				result[k] = val
			}
			result[key] = v
			return functional.Some(result)
		},
	)
}

// ParseInt creates a partial lens between decimal strings and ints. The
// getter parses and misses on malformed input; the setter formats, which
// cannot fail, but updating still requires the original string to parse.
func ParseInt() lens.Partial[string, int] {
	return lens.NewPartial(
		func(s string) functional.Option[int] {
			n, err := strconv.Atoi(s)
			if err != nil {
				return functional.None[int]()
			}
			return functional.Some(n)
		},
		func(_ string, n int) functional.Option[string] {
			return functional.Some(strconv.Itoa(n))
		},
	)
}
