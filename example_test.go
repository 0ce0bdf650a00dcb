package fixed_test

import (
	"errors"
	"fmt"

	"github.com/tychoish/fixed"
	"github.com/tychoish/fixed/irt"
)

func ExampleEnumerate() {
	fmt.Println(fixed.Enumerate(3, func(x int) int { return x + 1 }))
	fmt.Println(fixed.Enumerate(3, func(x int) int { return x + 1 }, func(x int) bool { return x&1 == 1 }))
	// Output:
	// [1 2 3]
	// [2 4 6]
}

func ExampleFillEnumerate() {
	var arr [4]string
	fixed.FillEnumerate(arr[:], func(x int) string { return fmt.Sprint("slot-", x) })
	fmt.Println(arr)
	// Output: [slot-0 slot-1 slot-2 slot-3]
}

func ExampleFrom() {
	out, err := fixed.From(3, irt.Count(1), func(x int) int { return x / 2 })
	fmt.Println(out, err)

	out, err = fixed.From(3, irt.Range(1, 3), func(x int) int { return x / 2 })
	fmt.Println(out, errors.Is(err, fixed.ErrExhausted))
	// Output:
	// [0 1 1] <nil>
	// [] true
}

func ExampleZip() {
	out, err := fixed.Zip(3, irt.Count(1), irt.Count(2),
		func(x, y int) int { return x + y },
		func(x, y int) bool { return x*y > 10 },
	)
	fmt.Println(out, err)
	// Output: [7 9 11] <nil>
}

func ExampleFromPairs() {
	pairs := irt.KVargs(irt.MakeKV(1, 2), irt.MakeKV(3, 4), irt.MakeKV(5, 6))
	out, err := fixed.FromPairs(3, pairs, func(x, y int) int { return x + y })
	fmt.Println(out, err)
	// Output: [3 7 11] <nil>
}
