package suitekit

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/suitekit/suitekit/runner"
)

// TestExecutor is responsible for running tests.
type TestExecutor interface {
	RunTests(ctx context.Context) (*runner.RunnerResult, error)
}

// DefaultTestExecutor implements the TestExecutor interface.
type DefaultTestExecutor struct {
	runner runner.TestRunner
	logger zerolog.Logger
}

// NewDefaultTestExecutor creates a new DefaultTestExecutor.
func NewDefaultTestExecutor(testRunner runner.TestRunner, logger zerolog.Logger) *DefaultTestExecutor {
	return &DefaultTestExecutor{
		runner: testRunner,
		logger: logger,
	}
}

// RunTests runs all registered classes and returns the results.
func (e *DefaultTestExecutor) RunTests(ctx context.Context) (*runner.RunnerResult, error) {
	e.logger.Info().Msg("Running all tests...")
	result, err := e.runner.RunAllTests(ctx)
	if err != nil {
		e.logger.Error().Err(err).Msg("Error running tests")
		return nil, err
	}
	e.logger.Info().Str("run_id", result.RunID).Str("status", string(result.Status)).Msg("Test run completed")
	return result, nil
}
