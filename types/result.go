package types

import (
	"fmt"
	"time"
)

// TestStatus represents the possible classified outcomes of a test invocation
type TestStatus string

const (
	TestStatusPass    TestStatus = "pass"
	TestStatusFail    TestStatus = "fail"
	TestStatusTimeout TestStatus = "timeout"
	TestStatusError   TestStatus = "error"
)

// TestResult captures the classified outcome of a single test invocation.
// Exactly one is produced per test method per class run; it is immutable once
// emitted to the reporting sinks.
type TestResult struct {
	Class       string
	Method      string
	Description string
	Status      TestStatus
	Duration    time.Duration

	// Expected and Actual are set for assertion failures.
	Expected string
	Actual   string

	// Limit is the normalized deadline, set for timeout failures.
	Limit time.Duration

	// Error carries the underlying failure for everything but a pass.
	Error error
}

// DisplayName returns a formatted display name for the result
func (r *TestResult) DisplayName() string {
	if r.Description != "" {
		return fmt.Sprintf("%s.%s (%s)", r.Class, r.Method, r.Description)
	}
	return fmt.Sprintf("%s.%s", r.Class, r.Method)
}

// Detail renders the failure context of the result, empty for a pass.
func (r *TestResult) Detail() string {
	switch r.Status {
	case TestStatusFail:
		return fmt.Sprintf("expected = [%s]; actual = [%s]", r.Expected, r.Actual)
	case TestStatusTimeout:
		return fmt.Sprintf("exceeded %s", r.Limit)
	case TestStatusError:
		if r.Error != nil {
			return r.Error.Error()
		}
		return "unhandled error"
	default:
		return ""
	}
}
