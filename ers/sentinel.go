package ers

// ErrExhausted is the root of every error produced when an external
// sequence runs out of items before a construction could fill all of
// its slots.
const ErrExhausted Error = Error("sequence exhausted")

// ErrInvalidInput indicates malformed input. These errors are not
// generally retriable.
const ErrInvalidInput Error = Error("invalid input")

// ErrInvariantViolation is the root error of the error object that is
// the content of panics produced when a precondition does not hold.
const ErrInvariantViolation Error = Error("invariant violation")

// ErrMalformedConfiguration indicates a configuration object that has
// failed validation.
const ErrMalformedConfiguration Error = Error("malformed configuration")

// IsInvariantViolation returns true if the argument is or resolves to
// ErrInvariantViolation.
func IsInvariantViolation(r any) bool {
	err, _ := r.(error)

	if r == nil || Ok(err) {
		return false
	}

	return Is(err, ErrInvariantViolation)
}
