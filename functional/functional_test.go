package functional

import (
	"errors"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestOptionMapPreservesStructure(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("Map on Some returns Some(fn(value))", prop.ForAll(
		func(n int) bool {
			fn := func(x int) int { return x * 2 }
			mapped := MapOption(Some(n), fn)
			return mapped.IsSome() && mapped.Unwrap() == fn(n)
		},
		gen.Int(),
	))

	properties.Property("Map on None returns None", prop.ForAll(
		func(n int) bool {
			return MapOption(None[int](), func(x int) int { return x * 2 }).IsNone()
		},
		gen.Int(),
	))

	properties.TestingRun(t)
}

func TestOptionBasicOperations(t *testing.T) {
	t.Run("Some creates present option", func(t *testing.T) {
		o := Some(42)
		if !o.IsSome() || o.IsNone() {
			t.Error("expected present option")
		}
		if o.Unwrap() != 42 {
			t.Errorf("expected 42, got %d", o.Unwrap())
		}
	})

	t.Run("UnwrapOr returns default on None", func(t *testing.T) {
		if None[int]().UnwrapOr(7) != 7 {
			t.Error("expected 7")
		}
	})

	t.Run("Filter drops non-matching values", func(t *testing.T) {
		even := func(n int) bool { return n%2 == 0 }
		if Some(3).Filter(even).IsSome() {
			t.Error("expected None")
		}
		if Some(4).Filter(even).IsNone() {
			t.Error("expected Some")
		}
	})

	t.Run("pointer round-trip", func(t *testing.T) {
		n := 5
		if got := FromPtr(&n).ToPtr(); got == nil || *got != 5 {
			t.Error("expected 5")
		}
		if FromPtr[int](nil).ToPtr() != nil {
			t.Error("expected nil")
		}
	})
}

func TestEitherSwapInvolution(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("Swap twice is the identity", prop.ForAll(
		func(n int, isRight bool) bool {
			var e Either[int, int]
			if isRight {
				e = Right[int](n)
			} else {
				e = Left[int, int](n)
			}
			return e.Swap().Swap() == e
		},
		gen.Int(),
		gen.Bool(),
	))

	properties.TestingRun(t)
}

func TestEitherMatch(t *testing.T) {
	t.Run("MatchEither dispatches on the case", func(t *testing.T) {
		l := Left[string, int]("err")
		r := Right[string](3)

		got := MatchEither(l, func(s string) string { return "left:" + s }, func(int) string { return "right" })
		if got != "left:err" {
			t.Errorf("unexpected: %s", got)
		}
		got = MatchEither(r, func(string) string { return "left" }, func(n int) string { return "right" })
		if got != "right" {
			t.Errorf("unexpected: %s", got)
		}
	})

	t.Run("MapEitherRight leaves Left untouched", func(t *testing.T) {
		e := MapEitherRight(Left[string, int]("err"), func(n int) int { return n + 1 })
		if !e.IsLeft() || e.LeftValue() != "err" {
			t.Error("expected untouched Left")
		}
	})
}

func TestResult(t *testing.T) {
	boom := errors.New("boom")

	t.Run("Ok carries the value", func(t *testing.T) {
		r := Ok(3)
		if r.IsErr() || r.Unwrap() != 3 || r.Error() != nil {
			t.Error("unexpected Ok state")
		}
	})

	t.Run("Err carries the error", func(t *testing.T) {
		r := Err[int](boom)
		if r.IsOk() || !errors.Is(r.UnwrapErr(), boom) {
			t.Error("unexpected Err state")
		}
	})

	t.Run("ResultOf follows the error convention", func(t *testing.T) {
		if ResultOf(3, nil).IsErr() {
			t.Error("expected Ok")
		}
		if ResultOf(0, boom).IsOk() {
			t.Error("expected Err")
		}
	})

	t.Run("conversions between Option and Result", func(t *testing.T) {
		if OptionToResult(Some(1), boom).IsErr() {
			t.Error("expected Ok")
		}
		if !errors.Is(OptionToResult(None[int](), boom).UnwrapErr(), boom) {
			t.Error("expected boom")
		}
		if ResultToOption(Err[int](boom)).IsSome() {
			t.Error("expected None")
		}
	})
}

func TestPair(t *testing.T) {
	p := NewPair(1, "a")

	a, b := p.Unpack()
	if a != 1 || b != "a" {
		t.Error("unexpected unpack")
	}

	if p.Swap() != NewPair("a", 1) {
		t.Error("unexpected swap")
	}

	mapped := MapBoth(p, func(n int) int { return n + 1 }, func(s string) string { return s + "b" })
	if mapped != NewPair(2, "ab") {
		t.Error("unexpected map")
	}
}
