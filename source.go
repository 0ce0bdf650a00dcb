package fixed

import "iter"

// Source produces the candidate for a single construction attempt. A
// false second value signals that the source is exhausted; exhausted
// sources are not called again by Construct.
//
// Sources are the only place where cursor state advances: a rejected
// candidate is never pushed back, the next attempt simply calls the
// source again.
type Source[C any] func() (C, bool)

// Pair is the candidate produced by zipping two sources, or by pulling
// from an iter.Seq2.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Triple is the candidate produced by zipping three sources.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// Counter returns a source of the integers 0, 1, 2, ... that never
// exhausts. Every call consumes a value, whether or not the
// candidate is later accepted.
func Counter() Source[int] {
	var next int
	return func() (int, bool) { val := next; next++; return val, true }
}

// Pull converts a sequence into a source. The returned stop function
// must be called to release the sequence once construction is done.
func Pull[A any](seq iter.Seq[A]) (Source[A], func()) {
	next, stop := iter.Pull(seq)
	return next, stop
}

// PullPairs converts a sequence of pairs into a source of Pair
// candidates. The returned stop function must be called to release
// the sequence.
func PullPairs[A, B any](seq iter.Seq2[A, B]) (Source[Pair[A, B]], func()) {
	next, stop := iter.Pull2(seq)
	return func() (Pair[A, B], bool) {
		a, b, ok := next()
		if !ok {
			return Pair[A, B]{}, false
		}
		return Pair[A, B]{First: a, Second: b}, true
	}, stop
}

// Lockstep advances both sources once per attempt, first a and then b. If
// a is exhausted, b is not advanced; if b is exhausted, the value
// already taken from a is dropped.
func Lockstep[A, B any](a Source[A], b Source[B]) Source[Pair[A, B]] {
	return func() (out Pair[A, B], ok bool) {
		if out.First, ok = a(); !ok {
			return Pair[A, B]{}, false
		}
		if out.Second, ok = b(); !ok {
			return Pair[A, B]{}, false
		}
		return out, true
	}
}

// Lockstep3 is Lockstep for three sources.
func Lockstep3[A, B, C any](a Source[A], b Source[B], c Source[C]) Source[Triple[A, B, C]] {
	return func() (out Triple[A, B, C], ok bool) {
		if out.First, ok = a(); !ok {
			return Triple[A, B, C]{}, false
		}
		if out.Second, ok = b(); !ok {
			return Triple[A, B, C]{}, false
		}
		if out.Third, ok = c(); !ok {
			return Triple[A, B, C]{}, false
		}
		return out, true
	}
}

// LockstepN advances every source once per attempt, in order, and produces
// a new slice of the values for each successful attempt. The first
// exhausted source ends the attempt; sources after it are not
// advanced. With no sources, LockstepN never exhausts and produces empty
// slices.
func LockstepN[A any](srcs ...Source[A]) Source[[]A] {
	return func() ([]A, bool) {
		out := make([]A, len(srcs))
		for idx, src := range srcs {
			val, ok := src()
			if !ok {
				return nil, false
			}
			out[idx] = val
		}
		return out, true
	}
}

// PullAll converts every sequence into a source, and returns a single
// stop function that releases all of them, last to first.
func PullAll[A any](seqs []iter.Seq[A]) ([]Source[A], func()) {
	srcs := make([]Source[A], 0, len(seqs))
	stops := make([]func(), 0, len(seqs))
	for _, seq := range seqs {
		src, stop := Pull(seq)
		srcs = append(srcs, src)
		stops = append(stops, stop)
	}

	return srcs, func() {
		for idx := len(stops) - 1; idx >= 0; idx-- {
			stops[idx]()
		}
	}
}
