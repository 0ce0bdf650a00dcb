// Package irt, for iterator tools, provides a small collection of
// stateless constructors and adapters for iter.Seq and iter.Seq2
// values. They are the external sequences most construction calls
// draw from: unbounded counters, bounded ranges, literal values,
// cycles and pairs.
//
// Every sequence here is re-iterable: ranging over it twice produces
// the same values twice, unless the sequence wraps a source that is
// itself single-use.
package irt

import (
	"iter"
	"slices"
)

// Number describes the built-in numeric types that Step can count
// with.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Count produces an unbounded sequence of integers beginning at start
// and increasing by one.
func Count(start int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for next := start; yield(next); next++ {
			continue
		}
	}
}

// Range produces the integers in the half-open interval [start, end).
// When end is not greater than start the sequence is empty.
func Range(start, end int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for next := start; next < end; next++ {
			if !yield(next) {
				return
			}
		}
	}
}

// Step produces start, start+by, start+2*by, ... without bound. A
// zero step repeats start forever.
func Step[N Number](start, by N) iter.Seq[N] {
	return func(yield func(N) bool) {
		for next := start; yield(next); next += by {
			continue
		}
	}
}

func Slice[T any](sl []T) iter.Seq[T]    { return slices.Values(sl) }
func Args[T any](items ...T) iter.Seq[T] { return Slice(items) }

// Collect consumes the sequence and returns its values in a new
// slice. Unbounded sequences must be limited (e.g. with Take) first.
func Collect[T any](seq iter.Seq[T]) []T { return slices.Collect(seq) }

// Cycle repeats the values of seq forever. If a full pass over seq
// produces nothing, the cycle ends rather than spinning.
func Cycle[T any](seq iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			count := 0
			for value := range seq {
				count++
				if !yield(value) {
					return
				}
			}
			if count == 0 {
				return
			}
		}
	}
}

// Repeat produces value count times.
func Repeat[T any](value T, count int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < count; i++ {
			if !yield(value) {
				return
			}
		}
	}
}

// Take limits seq to at most num values. seq is not advanced past the
// num-th value.
func Take[T any](seq iter.Seq[T], num int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if num <= 0 {
			return
		}
		count := 0
		for value := range seq {
			count++
			if !yield(value) || count >= num {
				return
			}
		}
	}
}

// Tap calls op with every value seq produces, before passing the
// value along.
func Tap[T any](seq iter.Seq[T], op func(T)) iter.Seq[T] {
	return func(yield func(T) bool) {
		for value := range seq {
			op(value)
			if !yield(value) {
				return
			}
		}
	}
}

// Convert produces op(v) for every value v of seq.
func Convert[A, B any](seq iter.Seq[A], op func(A) B) iter.Seq[B] {
	return func(yield func(B) bool) {
		for value := range seq {
			if !yield(op(value)) {
				return
			}
		}
	}
}

// Keep produces only the values of seq for which prd returns true.
func Keep[T any](seq iter.Seq[T], prd func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for value := range seq {
			if prd(value) && !yield(value) {
				return
			}
		}
	}
}
