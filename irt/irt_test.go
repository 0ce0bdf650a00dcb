package irt

import (
	"iter"
	"testing"

	"github.com/tychoish/fixed/assert"
	"github.com/tychoish/fixed/assert/check"
)

func TestSequences(t *testing.T) {
	t.Run("Count", func(t *testing.T) {
		assert.EqualItems(t, Collect(Take(Count(1), 4)), []int{1, 2, 3, 4})
		assert.EqualItems(t, Collect(Take(Count(-2), 3)), []int{-2, -1, 0})
	})
	t.Run("Range", func(t *testing.T) {
		tests := []struct {
			name       string
			start, end int
			expected   []int
		}{
			{name: "Simple", start: 1, end: 4, expected: []int{1, 2, 3}},
			{name: "Empty", start: 3, end: 3, expected: []int{}},
			{name: "Inverted", start: 5, end: 1, expected: []int{}},
			{name: "Negative", start: -2, end: 1, expected: []int{-2, -1, 0}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				check.EqualItems(t, Collect(Range(tt.start, tt.end)), tt.expected)
			})
		}
	})
	t.Run("Step", func(t *testing.T) {
		check.EqualItems(t, Collect(Take(Step(0, 5), 3)), []int{0, 5, 10})
		check.EqualItems(t, Collect(Take(Step(1.5, 0.5), 3)), []float64{1.5, 2.0, 2.5})
		check.EqualItems(t, Collect(Take(Step(7, 0), 3)), []int{7, 7, 7})
	})
	t.Run("Slice", func(t *testing.T) {
		check.EqualItems(t, Collect(Args("a", "b")), []string{"a", "b"})
		check.EqualItems(t, Collect(Slice([]int{})), []int{})
	})
	t.Run("Cycle", func(t *testing.T) {
		check.EqualItems(t, Collect(Take(Cycle(Range(1, 3)), 5)), []int{1, 2, 1, 2, 1})
		check.EqualItems(t, Collect(Cycle(Range(0, 0))), []int{})
	})
	t.Run("Repeat", func(t *testing.T) {
		check.EqualItems(t, Collect(Repeat("x", 3)), []string{"x", "x", "x"})
		check.EqualItems(t, Collect(Repeat("x", 0)), []string{})
	})
	t.Run("Take", func(t *testing.T) {
		check.EqualItems(t, Collect(Take(Range(0, 10), 0)), []int{})
		check.EqualItems(t, Collect(Take(Range(0, 2), 5)), []int{0, 1})

		pulled := 0
		seq := Tap(Count(0), func(int) { pulled++ })
		check.EqualItems(t, Collect(Take(seq, 3)), []int{0, 1, 2})
		check.Equal(t, pulled, 3)
	})
	t.Run("Tap", func(t *testing.T) {
		var seen []int
		out := Collect(Tap(Range(0, 3), func(in int) { seen = append(seen, in) }))
		check.EqualItems(t, out, []int{0, 1, 2})
		check.EqualItems(t, seen, []int{0, 1, 2})
	})
	t.Run("Convert", func(t *testing.T) {
		out := Collect(Convert(Range(1, 4), func(in int) int { return in * in }))
		check.EqualItems(t, out, []int{1, 4, 9})
	})
	t.Run("Keep", func(t *testing.T) {
		out := Collect(Take(Keep(Count(0), func(in int) bool { return in%3 == 0 }), 3))
		check.EqualItems(t, out, []int{0, 3, 6})
	})
	t.Run("EarlyExit", func(t *testing.T) {
		for name, seq := range map[string]iter.Seq[int]{
			"Count":   Count(0),
			"Range":   Range(0, 100),
			"Step":    Step(0, 2),
			"Cycle":   Cycle(Args(1, 2)),
			"Repeat":  Repeat(1, 100),
			"Take":    Take(Count(0), 100),
			"Tap":     Tap(Count(0), func(int) {}),
			"Convert": Convert(Count(0), func(in int) int { return in }),
			"Keep":    Keep(Count(0), func(int) bool { return true }),
		} {
			t.Run(name, func(t *testing.T) {
				count := 0
				for range seq {
					count++
					if count == 2 {
						break
					}
				}
				check.Equal(t, count, 2)
			})
		}
	})
}

func TestKV(t *testing.T) {
	t.Run("Split", func(t *testing.T) {
		key, value := MakeKV("one", 1).Split()
		check.Equal(t, key, "one")
		check.Equal(t, value, 1)
	})
	t.Run("Args", func(t *testing.T) {
		var keys []int
		var values []string
		for k, v := range KVargs(MakeKV(1, "a"), MakeKV(2, "b")) {
			keys = append(keys, k)
			values = append(values, v)
		}
		check.EqualItems(t, keys, []int{1, 2})
		check.EqualItems(t, values, []string{"a", "b"})
	})
	t.Run("RoundTrip", func(t *testing.T) {
		in := []KV[int, string]{MakeKV(1, "a"), MakeKV(2, "b"), MakeKV(3, "c")}
		check.EqualItems(t, Collect(KVjoin(KVsplit(Slice(in)))), in)
	})
	t.Run("EarlyExit", func(t *testing.T) {
		count := 0
		for range KVargs(MakeKV(1, "a"), MakeKV(2, "b"), MakeKV(3, "c")) {
			count++
			break
		}
		check.Equal(t, count, 1)

		for range KVjoin(KVargs(MakeKV(1, "a"), MakeKV(2, "b"))) {
			count++
			break
		}
		check.Equal(t, count, 2)
	})
}
