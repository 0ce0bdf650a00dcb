package irt

import "iter"

// KV is a generic pair type that holds two values of potentially different types.
type KV[A, B any] struct {
	Key   A
	Value B
}

// MakeKV creates a KV from two values.
func MakeKV[A, B any](a A, b B) KV[A, B] { return KV[A, B]{Key: a, Value: b} }

// Split returns the Key and Value as separate return values.
func (e KV[A, B]) Split() (A, B) { return e.Key, e.Value }

// KVargs takes a variadic sequence of KV args and returns a pair iterator.
func KVargs[A, B any](elems ...KV[A, B]) iter.Seq2[A, B] { return KVsplit(Slice(elems)) }

// KVsplit converts an iter.Seq of KV pairs into an iter.Seq2.
func KVsplit[A, B any](seq iter.Seq[KV[A, B]]) iter.Seq2[A, B] {
	return func(yield func(A, B) bool) {
		for elem := range seq {
			if !yield(elem.Split()) {
				return
			}
		}
	}
}

// KVjoin converts an iter.Seq2 into an iter.Seq of KV pairs.
func KVjoin[A, B any](seq iter.Seq2[A, B]) iter.Seq[KV[A, B]] {
	return func(yield func(KV[A, B]) bool) {
		for a, b := range seq {
			if !yield(MakeKV(a, b)) {
				return
			}
		}
	}
}
