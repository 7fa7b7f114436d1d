// Package check is the assertion collaborator of the suitekit engine. Its
// helpers return a typed *FailureError carrying the expected and actual
// values; the engine classifies that signal, it never constructs it.
package check

import (
	"fmt"
	"reflect"
)

// FailureError is the typed failure signal raised when an assertion does not
// hold. The runner classifies it into an assertion-failure outcome.
type FailureError struct {
	Expected any
	Actual   any
}

func (e *FailureError) Error() string {
	return fmt.Sprintf("assertion failed: expected = [%v]; actual = [%v]", e.Expected, e.Actual)
}

// Equal returns a FailureError when expected and actual are not deeply equal.
func Equal(expected, actual any) error {
	if reflect.DeepEqual(expected, actual) {
		return nil
	}
	return &FailureError{Expected: expected, Actual: actual}
}

// NotEqual returns a FailureError when expected and actual are deeply equal.
func NotEqual(expected, actual any) error {
	if !reflect.DeepEqual(expected, actual) {
		return nil
	}
	return &FailureError{Expected: fmt.Sprintf("not %v", expected), Actual: actual}
}

// True returns a FailureError when the condition is false.
func True(condition bool) error {
	if condition {
		return nil
	}
	return &FailureError{Expected: true, Actual: false}
}
