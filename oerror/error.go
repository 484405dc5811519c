package oerror

import "fmt"

// StrideError is the error type returned by stride packages at their edges (configuration,
// setup). The movement path itself never returns errors.
type StrideError struct {
	Err string
}

// New creates a new StrideError with a message formatted using the arguments passed.
func New(format string, args ...any) *StrideError {
	return &StrideError{Err: fmt.Sprintf(format, args...)}
}

func (e *StrideError) Error() string {
	return e.Err
}
