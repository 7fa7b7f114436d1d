package suitekit

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/suitekit/suitekit/reporting"
	"github.com/suitekit/suitekit/runner"
	"github.com/suitekit/suitekit/types"
)

// ResultFormatter is responsible for formatting and displaying test results.
type ResultFormatter interface {
	FormatResults(result *runner.RunnerResult) error
}

// ConsoleResultFormatter implements the ResultFormatter interface.
type ConsoleResultFormatter struct {
	logger zerolog.Logger
	out    io.Writer
}

// NewConsoleResultFormatter creates a new ConsoleResultFormatter.
func NewConsoleResultFormatter(logger zerolog.Logger) *ConsoleResultFormatter {
	return &ConsoleResultFormatter{
		logger: logger,
		out:    os.Stdout,
	}
}

// FormatResults renders the run's result table and any class-level fatal
// errors to the console.
func (f *ConsoleResultFormatter) FormatResults(result *runner.RunnerResult) error {
	f.logger.Info().Msg("Printing results...")

	var results []*types.TestResult
	for _, class := range result.Classes {
		results = append(results, class.Tests...)
	}

	table := reporting.NewTableFormatter("Suitekit Test Results")
	if err := table.Format(f.out, results, result.Duration); err != nil {
		return err
	}

	// Fatal configuration errors are reported at class granularity, apart
	// from the per-test outcomes.
	for _, err := range result.FatalErrors() {
		fmt.Fprintf(f.out, "FATAL: %v\n", err)
	}

	fmt.Fprintln(f.out, result.String())
	return nil
}
