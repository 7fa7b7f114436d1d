package suitekit

import (
	"github.com/suitekit/suitekit/metrics"
	"github.com/suitekit/suitekit/runner"
)

// MetricsReporter publishes run-level outcomes after each run completes.
// Per-test metrics are recorded by the runner as results are produced.
type MetricsReporter interface {
	ReportResults(runID string, result *runner.RunnerResult)
}

// DefaultMetricsReporter feeds the prometheus run gauges. Failed, timed-out
// and errored tests all count as not-passed for the run totals.
type DefaultMetricsReporter struct{}

func NewDefaultMetricsReporter() *DefaultMetricsReporter {
	return &DefaultMetricsReporter{}
}

func (r *DefaultMetricsReporter) ReportResults(runID string, result *runner.RunnerResult) {
	metrics.RecordRun(
		runID,
		result.Status,
		result.Stats.Total,
		result.Stats.Passed,
		result.Stats.Failed+result.Stats.TimedOut+result.Stats.Errored,
		result.Duration,
	)
}
