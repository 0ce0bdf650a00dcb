// Package fixed builds fixed-size arrays by repeatedly producing
// candidate inputs, testing them against an optional predicate, and
// materializing accepted candidates into values, one slot at a time.
//
// There are two families of constructors. Repeat and Enumerate are
// driven by a bare counter and cannot fail: they always return (or
// fill) exactly n values, retrying rejected candidates with the next
// counter value for as long as it takes. From, FromPairs, Zip, Zip3
// and ZipAll draw their candidates from one or more iter.Seq values
// zipped in lock-step; if any of those sequences runs out before all
// slots are committed, construction fails with an error rooted in
// ErrExhausted, and no partially filled array is ever returned.
//
// Go cannot abstract over array length, so the Fill* variants write
// into a caller-owned slice, usually the full slice of an array:
//
//	var arr [3]int
//	fixed.FillEnumerate(arr[:], func(x int) int { return x * 2 })
//
// Value functions run exactly once per committed slot, and their
// results are never copied between slots, so values that must not be
// duplicated (mutexes, handles) are safe to produce.
//
// Construction is synchronous and single-threaded. Sequences in a zip
// are always advanced left to right, one value each per attempt; when
// one of them is exhausted, values already pulled from the sequences
// to its left during that attempt are discarded.
package fixed

import (
	"errors"
	"fmt"

	"github.com/tychoish/fixed/ers"
)

// ErrExhausted is the root of every error returned when an external
// sequence runs out before all slots are filled. It is the only error
// construction produces.
const ErrExhausted ers.Error = ers.ErrExhausted

// ExhaustedError reports how far a construction got before its
// sequences ran out. It unwraps to ErrExhausted.
type ExhaustedError struct {
	Size   int
	Filled int
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("%s: filled %d of %d slots", ErrExhausted, e.Filled, e.Size)
}

func (e *ExhaustedError) Unwrap() error { return ErrExhausted }

// Must converts the failure of a fallible construction into a panic.
func Must[T any](out []T, err error) []T {
	if err != nil {
		panic(err)
	}
	return out
}

func invariant(cond bool, tmpl string, args ...any) {
	if !cond {
		panic(errors.Join(ers.ErrInvariantViolation, ers.ErrInvalidInput, fmt.Errorf(tmpl, args...)))
	}
}

func alloc[T any](n int) []T {
	invariant(n >= 0, "size %d is negative", n)
	return make([]T, n)
}

func build[C, T any](n int, next Source[C], where Predicate[C], op func(C) T) ([]T, error) {
	out := alloc[T](n)
	if err := Construct(out, next, where, op); err != nil {
		return nil, err
	}
	return out, nil
}
