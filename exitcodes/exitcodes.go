// Package exitcodes defines the process exit codes of a suitekit run.
package exitcodes

const (
	// Success indicates every test passed.
	Success = 0
	// TestFailure indicates at least one test failed, timed out or errored.
	TestFailure = 1
	// RuntimeErr indicates a runtime or configuration error outside the tests.
	RuntimeErr = 2
)
