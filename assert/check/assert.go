// Package check provides the same assertions as the assert package,
// except that failing checks mark the test as failed and let it
// continue rather than aborting at the failure line.
package check

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// True causes a test to fail if the condition is false.
func True(t testing.TB, cond bool) {
	t.Helper()
	if !cond {
		t.Error("assertion failure")
	}
}

// Equal causes a test to fail if the two (comparable) values are not
// equal. Be aware that two different pointers and objects passed as
// interfaces that are implemented by pointer receivers are comparable
// as equal and will fail this assertion even if their *values* are
// equal.
func Equal[T comparable](t testing.TB, valOne, valTwo T) {
	t.Helper()
	if valOne != valTwo {
		t.Errorf("unequal: <%v> != <%v>", valOne, valTwo)
	}
}

// NotEqual causes a test to fail if two (comparable) values are not
// equal.
func NotEqual[T comparable](t testing.TB, valOne, valTwo T) {
	t.Helper()
	if valOne == valTwo {
		t.Errorf("equal: <%v>", valOne)
	}
}

// Equivalent compares two values of any type with go-cmp and fails
// the test, printing the diff, when they differ. Use it for slices,
// maps and structs that are not comparable with ==.
func Equivalent[T any](t testing.TB, valOne, valTwo T, opts ...cmp.Option) {
	t.Helper()
	if diff := cmp.Diff(valOne, valTwo, opts...); diff != "" {
		t.Errorf("values are not equivalent (-one +two):\n%s", diff)
	}
}

// Zero fails a test if the value is not the zero-value for its type.
func Zero[T comparable](t testing.TB, val T) {
	t.Helper()

	var zero T
	if zero != val {
		t.Errorf("expected zero for value of type %T <%v>", val, val)
	}
}

// NotZero fails a test if the value is the zero for its type.
func NotZero[T comparable](t testing.TB, val T) {
	t.Helper()
	var zero T
	if zero == val {
		t.Errorf("expected non-zero for value of type %T", val)
	}
}

// Error fails the test if the error is nil.
func Error(t testing.TB, err error) {
	t.Helper()
	if err == nil {
		t.Error("expected non-nil error")
	}
}

// NotError fails the test if the error is non-nil.
func NotError(t testing.TB, err error) {
	t.Helper()
	if err != nil {
		t.Error(err)
	}
}

// ErrorIs is an assertion form of errors.Is, and fails the test if
// the error (or its wrapped values) are not equal to the target
// error.
func ErrorIs(t testing.TB, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Errorf("error <%v>, is not <%v>", err, target)
	}
}

// NotErrorIs is an assertion form of !errors.Is, and fails the test if
// the error (or its wrapped values) are  equal to the target
// error.
func NotErrorIs(t testing.TB, err, target error) {
	t.Helper()
	if errors.Is(err, target) {
		t.Errorf("error <%v>, is <%v>", err, target)
	}
}

// Panic asserts that the function raises a panic.
func Panic(t testing.TB, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		if r := recover(); r == nil {
			t.Error("expected a panic but got none")
		}
	}()
	fn()
}

// NotPanic asserts that the function does not panic.
func NotPanic(t testing.TB, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		if r := recover(); r != nil {
			t.Error("panic: ", r)
		}
	}()
	fn()
}

// PanicValue asserts that the function raises a panic and that the
// value, as returned by recover() is equal to the value provided.
func PanicValue[T comparable](t testing.TB, fn func(), value T) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Error("expected a panic but got none")
			return
		}
		pval, ok := r.(T)
		if !ok {
			t.Errorf("panic [%v], not of expected type %T", r, value)
			return
		}
		Equal(t, pval, value)
	}()

	fn()
}

// EqualItems compares the values in two slices and creates an error
// if all items are not equal.
func EqualItems[T comparable](t testing.TB, one, two []T) {
	t.Helper()
	if len(one) != len(two) {
		t.Errorf("slices are of different lengths [%d vs %d]", len(one), len(two))
		return
	}

	for idx := range one {
		if one[idx] != two[idx] {
			t.Errorf("items at index %d [%v vs %v] are not equal", idx, one[idx], two[idx])
		}
	}
}

// Substring asserts that the substring is present in the string.
func Substring(t testing.TB, str, substr string) {
	t.Helper()
	if !strings.Contains(str, substr) {
		t.Errorf("expected %q to contain substring %q", str, substr)
	}
}
