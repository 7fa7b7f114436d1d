package suitekit

import (
	"errors"
	"fmt"
)

// The service distinguishes two terminal error kinds: a RuntimeError means
// the run itself could not be carried out (an unconstructible test class, a
// bad timeout unit, a fixture failure), while a TestFailureError means the
// run completed and some tests did not pass. The command maps them to exit
// codes 2 and 1 respectively.

type RuntimeError struct {
	Err error
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("runtime error: %v", e.Err)
}

func (e *RuntimeError) Unwrap() error {
	return e.Err
}

func NewRuntimeError(err error) *RuntimeError {
	return &RuntimeError{Err: err}
}

// IsRuntimeError reports whether err is or wraps a RuntimeError.
func IsRuntimeError(err error) bool {
	var runtimeErr *RuntimeError
	return err != nil && errors.As(err, &runtimeErr)
}

type TestFailureError struct {
	Message string
}

func (e *TestFailureError) Error() string {
	return fmt.Sprintf("test failure: %s", e.Message)
}

func NewTestFailureError(message string) *TestFailureError {
	return &TestFailureError{Message: message}
}

// IsTestFailureError reports whether err is or wraps a TestFailureError.
func IsTestFailureError(err error) bool {
	var testErr *TestFailureError
	return err != nil && errors.As(err, &testErr)
}
