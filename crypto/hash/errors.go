package hash

import (
	"errors"
	"fmt"
)

// NullInputError indicates that a required context or argument is absent.
type NullInputError struct {
	error
}

func newNullInputErrorf(msg string, args ...interface{}) error {
	return NullInputError{
		error: fmt.Errorf(msg, args...),
	}
}

func (e NullInputError) Unwrap() error {
	return e.error
}

// IsNullInputError returns whether the given error is a NullInputError
func IsNullInputError(err error) bool {
	return errors.As(err, &NullInputError{})
}

// StateError indicates that Update or Final was called on a context which is
// no longer active. When the context is corrupted, the error wraps the cause
// that corrupted it.
type StateError struct {
	Op     string
	Status Status
	Cause  error
}

func (e StateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s on %s context: %v", e.Op, e.Status, e.Cause)
	}
	return fmt.Sprintf("%s on %s context", e.Op, e.Status)
}

func (e StateError) Unwrap() error {
	return e.Cause
}

// IsStateError returns whether the given error is a StateError
func IsStateError(err error) bool {
	var e StateError
	return errors.As(err, &e)
}

// OverflowError indicates that the message is too long for the 64-bit bit-length counter.
type OverflowError struct {
	// Bits is the counter value before the rejected update.
	Bits uint64
	// Added is the number of bytes the rejected update tried to absorb.
	Added uint64
}

func (e OverflowError) Error() string {
	return fmt.Sprintf("message too long: %d bits already absorbed, %d more bytes overflow the 64-bit length counter", e.Bits, e.Added)
}

// IsOverflowError returns whether the given error is an OverflowError
func IsOverflowError(err error) bool {
	var e OverflowError
	return errors.As(err, &e)
}

// InvalidInputsError is returned when an input to a constructor or helper is not valid.
type InvalidInputsError struct {
	error
}

// NewInvalidInputsErrorf constructs a new InvalidInputsError
func NewInvalidInputsErrorf(msg string, args ...interface{}) error {
	return InvalidInputsError{
		error: fmt.Errorf(msg, args...),
	}
}

func (e InvalidInputsError) Unwrap() error {
	return e.error
}

// IsInvalidInputsError returns whether the given error is an InvalidInputsError
func IsInvalidInputsError(err error) bool {
	return errors.As(err, &InvalidInputsError{})
}
