package errors

import "fmt"

// CatError is the structured error type for codecat. It carries a
// stable code so callers and tests can match errors without string
// comparison.
type CatError struct {
	// Code is the stable error code (e.g. "ERR_401_ROOT_MISSING").
	Code string

	// Message is the human-readable error message.
	Message string

	// Category is derived from the code.
	Category Category

	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *CatError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for error chain support.
func (e *CatError) Unwrap() error {
	return e.Cause
}

// Is matches CatErrors by code, enabling errors.Is across wrapping.
func (e *CatError) Is(target error) bool {
	if t, ok := target.(*CatError); ok {
		return e.Code == t.Code
	}
	return false
}

// New creates a CatError with the given code, message, and optional
// cause.
func New(code, message string, cause error) *CatError {
	return &CatError{
		Code:     code,
		Message:  message,
		Category: categoryFromCode(code),
		Cause:    cause,
	}
}

// Wrap creates a CatError from an existing error, adopting its message.
func Wrap(code string, err error) *CatError {
	if err == nil {
		return nil
	}
	return New(code, err.Error(), err)
}

// ValidationError creates a validation error without a cause.
func ValidationError(code, message string) *CatError {
	return New(code, message, nil)
}
