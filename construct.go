package fixed

// Construct fills every slot of dst, left to right. For each slot it
// takes candidates from next until one passes where, then stores
// op(candidate) in the slot. op is called exactly once per slot and
// never for a rejected candidate.
//
// If next is exhausted before the last slot is committed, Construct
// resets every slot of dst to its zero value and returns an
// *ExhaustedError. An empty dst returns nil without calling next.
//
// There is no limit on the number of rejected candidates: a source
// that never exhausts combined with a predicate that never passes
// does not return.
func Construct[C, T any](dst []T, next Source[C], where Predicate[C], op func(C) T) error {
	invariant(next != nil, "construction requires a source")
	invariant(op != nil, "construction requires a value function")

	for idx := range dst {
		cand, ok := accept(next, where)
		if !ok {
			clear(dst)
			return &ExhaustedError{Size: len(dst), Filled: idx}
		}

		dst[idx] = op(cand)
	}

	return nil
}

// accept advances the source until a candidate passes the predicate
// or the source is exhausted.
func accept[C any](next Source[C], where Predicate[C]) (C, bool) {
	for {
		cand, ok := next()
		if !ok || where.Check(cand) {
			return cand, ok
		}
	}
}
