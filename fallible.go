package fixed

import "iter"

// From returns n values, op(x) for each of the first n values x of
// seq that satisfy every condition. If seq ends first, From returns
// an error rooted in ErrExhausted and no values.
//
// Rejected values are consumed: From never pulls a value from seq
// twice.
func From[A, T any](n int, seq iter.Seq[A], op func(A) T, where ...func(A) bool) ([]T, error) {
	invariant(op != nil, "from requires a value function")
	next, stop := Pull(seq)
	defer stop()

	return build(n, next, Where(where...), op)
}

// FillFrom is the in-place form of From. On failure every slot of dst
// holds its zero value.
func FillFrom[A, T any](dst []T, seq iter.Seq[A], op func(A) T, where ...func(A) bool) error {
	invariant(op != nil, "from requires a value function")
	next, stop := Pull(seq)
	defer stop()

	return Construct(dst, next, Where(where...), op)
}

// FromPairs is From for sequences of pairs: each pair is passed to
// the conditions and to op as two arguments.
func FromPairs[A, B, T any](n int, seq iter.Seq2[A, B], op func(A, B) T, where ...func(A, B) bool) ([]T, error) {
	invariant(op != nil, "from requires a value function")
	next, stop := PullPairs(seq)
	defer stop()

	return build(n, next, wherePair(where), spreadPair(op))
}

// Zip returns n values built from the sequences a and b advanced in
// lock-step. Every attempt takes one value from a and then one value
// from b; pairs that fail a condition are consumed and skipped. When
// either sequence ends before n pairs are accepted, Zip returns an
// error rooted in ErrExhausted.
//
// If b ends, the value taken from a during that attempt is lost; the
// sequences are not rewound.
func Zip[A, B, T any](n int, a iter.Seq[A], b iter.Seq[B], op func(A, B) T, where ...func(A, B) bool) ([]T, error) {
	invariant(op != nil, "zip requires a value function")
	nextA, stopA := Pull(a)
	defer stopA()
	nextB, stopB := Pull(b)
	defer stopB()

	return build(n, Lockstep(nextA, nextB), wherePair(where), spreadPair(op))
}

// FillZip is the in-place form of Zip.
func FillZip[A, B, T any](dst []T, a iter.Seq[A], b iter.Seq[B], op func(A, B) T, where ...func(A, B) bool) error {
	invariant(op != nil, "zip requires a value function")
	nextA, stopA := Pull(a)
	defer stopA()
	nextB, stopB := Pull(b)
	defer stopB()

	return Construct(dst, Lockstep(nextA, nextB), wherePair(where), spreadPair(op))
}

// Zip3 is Zip for three sequences, advanced in the order a, b, c.
func Zip3[A, B, C, T any](
	n int,
	a iter.Seq[A],
	b iter.Seq[B],
	c iter.Seq[C],
	op func(A, B, C) T,
	where ...func(A, B, C) bool,
) ([]T, error) {
	invariant(op != nil, "zip requires a value function")
	nextA, stopA := Pull(a)
	defer stopA()
	nextB, stopB := Pull(b)
	defer stopB()
	nextC, stopC := Pull(c)
	defer stopC()

	return build(n, Lockstep3(nextA, nextB, nextC), whereTriple(where), spreadTriple(op))
}

// ZipAll zips any number of sequences of the same type. Every attempt
// takes one value from each sequence, in order, and passes them to
// the conditions and op as a slice; the slice is not reused between
// attempts. At least one sequence is required.
func ZipAll[A, T any](n int, seqs []iter.Seq[A], op func([]A) T, where ...func([]A) bool) ([]T, error) {
	invariant(op != nil, "zip requires a value function")
	invariant(len(seqs) > 0, "zip requires at least one sequence")
	srcs, stop := PullAll(seqs)
	defer stop()

	return build(n, LockstepN(srcs...), Where(where...), op)
}
