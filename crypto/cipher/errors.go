package cipher

import (
	"errors"
	"fmt"
)

// InvalidInputsError is returned when a key, block or option is not valid.
type InvalidInputsError struct {
	error
}

func invalidInputsErrorf(msg string, args ...interface{}) error {
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
