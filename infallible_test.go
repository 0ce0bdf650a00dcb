package fixed

import (
	"sync"
	"testing"

	"github.com/tychoish/fixed/assert"
	"github.com/tychoish/fixed/assert/check"
	"github.com/tychoish/fixed/ers"
)

func TestRepeat(t *testing.T) {
	t.Run("EvaluatesEveryTime", func(t *testing.T) {
		count := 0
		assert.EqualItems(t, Repeat(2, func() int { count++; return count }), []int{1, 2})
		check.Equal(t, count, 2)
	})
	t.Run("Constant", func(t *testing.T) {
		assert.EqualItems(t, Repeat(2, func() int { return 1 }), []int{1, 1})
	})
	t.Run("Zero", func(t *testing.T) {
		out := Repeat(0, func() int { t.Fatal("should not be called"); return 0 })
		check.Equal(t, len(out), 0)
		check.True(t, out != nil)
	})
	t.Run("DistinctValues", func(t *testing.T) {
		out := Repeat(3, func() *sync.Mutex { return &sync.Mutex{} })
		assert.Equal(t, len(out), 3)
		check.True(t, out[0] != out[1])
		check.True(t, out[1] != out[2])

		// each value is independent of the others
		out[0].Lock()
		check.True(t, out[1].TryLock())
		out[1].Unlock()
		out[0].Unlock()
	})
	t.Run("Fill", func(t *testing.T) {
		var arr [4]string
		FillRepeat(arr[:], func() string { return "x" })
		check.Equal(t, arr, [4]string{"x", "x", "x", "x"})
	})
	t.Run("Preconditions", func(t *testing.T) {
		check.Panic(t, func() { Repeat[int](1, nil) })
		check.Panic(t, func() { Repeat(-1, func() int { return 0 }) })
	})
}

func TestEnumerate(t *testing.T) {
	t.Run("Index", func(t *testing.T) {
		assert.EqualItems(t, Enumerate(3, func(x int) int { return x + 1 }), []int{1, 2, 3})
		assert.EqualItems(t, Enumerate(3, func(x int) int { return x * 2 }), []int{0, 2, 4})
	})
	t.Run("Where", func(t *testing.T) {
		assert.EqualItems(t, Enumerate(3, func(x int) int { return x * 2 }, isOdd), []int{2, 6, 10})
		assert.EqualItems(t, Enumerate(3, func(x int) int { return x + 1 }, isOdd), []int{2, 4, 6})
	})
	t.Run("MultipleConditions", func(t *testing.T) {
		out := Enumerate(3, func(x int) int { return x }, isOdd, func(x int) bool { return x%3 == 0 })
		assert.EqualItems(t, out, []int{3, 9, 15})
	})
	t.Run("ElementIsOpOfIndex", func(t *testing.T) {
		op := func(x int) int { return x*x - 3*x + 7 }
		for n := range 20 {
			out := Enumerate(n, op)
			assert.Equal(t, len(out), n)
			for idx, val := range out {
				check.Equal(t, val, op(idx))
			}
		}
	})
	t.Run("CounterValuesNeverSkipped", func(t *testing.T) {
		prd := func(x int) bool { return x%7 == 3 || x%5 == 1 }
		for n := range 15 {
			var tested, committed []int
			out := Enumerate(n,
				func(x int) int { committed = append(committed, x); return x },
				func(x int) bool { tested = append(tested, x); return prd(x) },
			)
			assert.Equal(t, len(out), n)
			assert.EqualItems(t, out, committed)

			for idx := range tested {
				// every counter value is tested, in order, exactly once
				check.Equal(t, tested[idx], idx)
			}

			for idx := 1; idx < len(committed); idx++ {
				check.True(t, committed[idx] > committed[idx-1])
			}

			accepted := map[int]bool{}
			for _, x := range committed {
				accepted[x] = true
			}
			for _, x := range tested {
				check.Equal(t, prd(x), accepted[x])
			}
		}
	})
	t.Run("AlwaysTrueIsNoop", func(t *testing.T) {
		op := func(x int) string { return string(rune('a' + x)) }
		check.EqualItems(t,
			Enumerate(5, op, func(int) bool { return true }),
			Enumerate(5, op),
		)
	})
	t.Run("Fill", func(t *testing.T) {
		var arr [3]int
		FillEnumerate(arr[:], func(x int) int { return x * 10 }, isEven)
		check.Equal(t, arr, [3]int{0, 20, 40})
	})
	t.Run("Preconditions", func(t *testing.T) {
		defer func() { check.True(t, ers.IsInvariantViolation(recover())) }()
		Enumerate(-2, func(x int) int { return x })
	})
}
