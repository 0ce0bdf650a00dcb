package fixed

// Predicate decides whether a candidate is accepted. A nil Predicate
// accepts every candidate.
type Predicate[C any] func(C) bool

// Check reports whether the candidate passes the predicate.
func (p Predicate[C]) Check(cand C) bool { return p == nil || p(cand) }

// Where combines conditions into a single predicate that accepts a
// candidate only when every condition holds. Conditions are evaluated
// in order and evaluation stops at the first one that fails. Nil
// conditions are ignored, and Where without conditions returns a nil
// (accept everything) predicate.
func Where[C any](conds ...func(C) bool) Predicate[C] {
	active := make([]func(C) bool, 0, len(conds))
	for _, cond := range conds {
		if cond != nil {
			active = append(active, cond)
		}
	}

	switch len(active) {
	case 0:
		return nil
	case 1:
		return active[0]
	default:
		return func(cand C) bool {
			for _, cond := range active {
				if !cond(cand) {
					return false
				}
			}
			return true
		}
	}
}

func wherePair[A, B any](conds []func(A, B) bool) Predicate[Pair[A, B]] {
	out := make([]func(Pair[A, B]) bool, 0, len(conds))
	for _, cond := range conds {
		if cond != nil {
			out = append(out, spreadPair(cond))
		}
	}
	return Where(out...)
}

func whereTriple[A, B, C any](conds []func(A, B, C) bool) Predicate[Triple[A, B, C]] {
	out := make([]func(Triple[A, B, C]) bool, 0, len(conds))
	for _, cond := range conds {
		if cond != nil {
			out = append(out, spreadTriple(cond))
		}
	}
	return Where(out...)
}

func spreadPair[A, B, T any](op func(A, B) T) func(Pair[A, B]) T {
	return func(in Pair[A, B]) T { return op(in.First, in.Second) }
}

func spreadTriple[A, B, C, T any](op func(A, B, C) T) func(Triple[A, B, C]) T {
	return func(in Triple[A, B, C]) T { return op(in.First, in.Second, in.Third) }
}
