package runner

import (
	"fmt"
	"time"

	"github.com/suitekit/suitekit/types"
)

// ResultStats tracks test statistics at each level
type ResultStats struct {
	Total     int
	Passed    int
	Failed    int
	TimedOut  int
	Errored   int
	StartTime time.Time
	EndTime   time.Time
}

func (s *ResultStats) record(status types.TestStatus) {
	s.Total++
	switch status {
	case types.TestStatusPass:
		s.Passed++
	case types.TestStatusFail:
		s.Failed++
	case types.TestStatusTimeout:
		s.TimedOut++
	case types.TestStatusError:
		s.Errored++
	}
}

func (s *ResultStats) merge(other ResultStats) {
	s.Total += other.Total
	s.Passed += other.Passed
	s.Failed += other.Failed
	s.TimedOut += other.TimedOut
	s.Errored += other.Errored
}

// ClassResult captures the results of one class run. Err is set when the run
// was aborted by a fatal configuration error (unconstructible class, invalid
// timeout unit, fixture failure); such classes carry no outcome for the tests
// that never ran.
type ClassResult struct {
	Name     string
	Tests    []*types.TestResult
	Status   types.TestStatus
	Duration time.Duration
	Stats    ResultStats
	Err      error
}

// RunnerResult captures the complete test run results
type RunnerResult struct {
	RunID    string
	Classes  []*ClassResult
	Status   types.TestStatus
	Duration time.Duration
	Stats    ResultStats
}

// FatalErrors returns the fatal configuration errors of the run, one per
// aborted class.
func (r *RunnerResult) FatalErrors() []error {
	var errs []error
	for _, c := range r.Classes {
		if c.Err != nil {
			errs = append(errs, fmt.Errorf("class %s: %w", c.Name, c.Err))
		}
	}
	return errs
}

// String implements the Stringer interface for RunnerResult
func (r *RunnerResult) String() string {
	return fmt.Sprintf("run %s: %s (%d tests, %d passed, %d failed, %d timed out, %d errored, %d classes aborted) in %s",
		r.RunID, r.Status, r.Stats.Total, r.Stats.Passed, r.Stats.Failed, r.Stats.TimedOut, r.Stats.Errored,
		len(r.FatalErrors()), r.Duration.Round(time.Millisecond))
}

// aggregateStatus folds one test status into a running aggregate. Error
// dominates, then fail/timeout, then pass.
func aggregateStatus(current, next types.TestStatus) types.TestStatus {
	if current == types.TestStatusError || next == types.TestStatusError {
		return types.TestStatusError
	}
	if current == types.TestStatusPass {
		return next
	}
	if next == types.TestStatusPass {
		return current
	}
	// Both are fail or timeout; fail wins for the aggregate.
	if current == types.TestStatusFail || next == types.TestStatusFail {
		return types.TestStatusFail
	}
	return current
}
