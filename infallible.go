package fixed

// Repeat returns n values, calling op once for each of them.
func Repeat[T any](n int, op func() T) []T {
	out := alloc[T](n)
	FillRepeat(out, op)
	return out
}

// FillRepeat stores the result of a separate call to op in every slot
// of dst.
func FillRepeat[T any](dst []T, op func() T) {
	invariant(op != nil, "repeat requires a value function")
	FillEnumerate(dst, func(int) T { return op() })
}

// Enumerate returns n values, produced by calling op with a counter
// that starts at 0. When conditions are given, a counter value that
// fails any of them is skipped and the next value is tried for the
// same slot, so the i-th element is op(x) for the i-th value of x
// that satisfies every condition.
//
// Enumerate does not return if the conditions pass for fewer than n
// counter values.
func Enumerate[T any](n int, op func(int) T, where ...func(int) bool) []T {
	out := alloc[T](n)
	FillEnumerate(out, op, where...)
	return out
}

// FillEnumerate is the in-place form of Enumerate: it fills every
// slot of dst.
func FillEnumerate[T any](dst []T, op func(int) T, where ...func(int) bool) {
	err := Construct(dst, Counter(), Where(where...), op)
	invariant(err == nil, "counter exhausted: %v", err)
}
