// Package reporting defines the reporter surface the lifecycle executor
// emits outcomes to, and the built-in sinks: a go-pretty console table and a
// plain-text summary file.
package reporting

import "github.com/suitekit/suitekit/types"

// Sink receives one classified outcome per test invocation and is completed
// once at the end of the run. Implementations decide formatting and output
// destination; the engine never writes to the console directly.
type Sink interface {
	// Consume records a single test result for the given run.
	Consume(result *types.TestResult, runID string) error
	// Complete finalizes the sink's output for the given run.
	Complete(runID string) error
}
