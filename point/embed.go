package point

import "errors"

// ErrNoFocus is the partial context's failure value. It signals that the
// focus is structurally absent (wrong sum case, empty sequence) and carries
// no further information; the partial surface discards any other error down
// to this one.
var ErrNoFocus = errors.New("point: no focus")

// Fail produces a computation that ignores its input and immediately fails
// with err. This is the failure-embedding capability of the partial and
// failing contexts; the total context has no equivalent because its surface
// exposes no error path.
func Fail[A, B any](err error) func(A) (B, error) {
	return func(A) (B, error) {
		var zero B
		return zero, err
	}
}

// NoFocus is Fail specialized to the partial context's sentinel.
func NoFocus[A, B any]() func(A) (B, error) {
	return Fail[A, B](ErrNoFocus)
}
