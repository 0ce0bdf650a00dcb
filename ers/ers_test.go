package ers

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/tychoish/fixed/assert"
	"github.com/tychoish/fixed/assert/check"
)

func TestErrors(t *testing.T) {
	t.Run("Ok", func(t *testing.T) {
		var err error
		check.True(t, Ok(err))
		err = errors.New("hi")
		check.True(t, !Ok(err))
	})
	t.Run("Constant", func(t *testing.T) {
		const expected Error = "hello"
		check.Equal(t, expected.Error(), "hello")
		check.True(t, errors.Is(expected, Error("hello")))
		check.True(t, !errors.Is(expected, Error("world")))
		check.True(t, !errors.Is(expected, errors.New("hello")))
		check.True(t, Error("").Is(nil))
		check.True(t, !expected.Is(nil))

		var err error = fmt.Errorf("wrapped: %w", Error("hello"))
		check.ErrorIs(t, err, expected)
	})
	t.Run("Is", func(t *testing.T) {
		check.True(t, Is(ErrInvalidInput, io.EOF, ErrInvalidInput))
		check.True(t, !Is(ErrInvalidInput, io.EOF))
		check.True(t, !Is(nil, io.EOF))
		check.True(t, !Is(ErrInvalidInput))
	})
	t.Run("Wrap", func(t *testing.T) {
		check.NotError(t, Wrap(nil, "hello"))
		check.NotError(t, Wrapf(nil, "hello %s %s", "args", "argsd"))
		const expected Error = "hello"
		err := Wrap(expected, "hello")
		assert.Equal(t, err.Error(), "hello: hello")
		assert.ErrorIs(t, err, expected)

		err = Wrapf(expected, "hello %s", "world")
		assert.Equal(t, err.Error(), "hello world: hello")
		assert.ErrorIs(t, err, expected)
	})
	t.Run("Whenf", func(t *testing.T) {
		check.NotError(t, Whenf(false, "hello %d", 1))
		err := Whenf(true, "hello %d", 1)
		assert.Error(t, err)
		check.Equal(t, err.Error(), "hello 1")
	})
	t.Run("InvariantViolation", func(t *testing.T) {
		check.True(t, !IsInvariantViolation(nil))
		check.True(t, !IsInvariantViolation("hello"))
		check.True(t, !IsInvariantViolation(io.EOF))
		check.True(t, IsInvariantViolation(ErrInvariantViolation))
		check.True(t, IsInvariantViolation(fmt.Errorf("negative size: %w", ErrInvariantViolation)))
	})
}
