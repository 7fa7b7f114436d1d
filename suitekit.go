package suitekit

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/suitekit/suitekit/registry"
	"github.com/suitekit/suitekit/reporting"
	"github.com/suitekit/suitekit/runner"
	"github.com/suitekit/suitekit/types"
)

// Service runs registered test classes once or on an interval, reporting
// each run's outcomes to the console, the summary sinks and metrics.
type Service struct {
	config    *Config
	version   string
	registry  *registry.Registry
	executor  TestExecutor
	scheduler TestScheduler
	formatter ResultFormatter
	reporter  MetricsReporter
	result    *runner.RunnerResult

	running atomic.Bool

	shutdownCallback func(error) // Callback to signal application shutdown
}

// New creates a Service that will run the given test classes.
func New(ctx context.Context, config *Config, version string, shutdownCallback func(error), classes ...types.Class) (*Service, error) {
	if config == nil {
		return nil, errors.New("config is required")
	}

	config.Log.Debug().
		Str("outDir", config.OutDir).
		Dur("runInterval", config.RunInterval).
		Bool("runOnce", config.RunOnce).
		Dur("defaultTimeout", config.DefaultTimeout).
		Msg("Creating suitekit service")

	reg := registry.NewRegistry(registry.Config{
		Log:            config.Log,
		DefaultTimeout: config.DefaultTimeout,
	})
	reg.RegisterAll(classes...)

	var sinks []reporting.Sink
	if config.ReportText {
		sinks = append(sinks, reporting.NewTextSummarySink(config.OutDir))
	}

	testRunner, err := runner.NewTestRunner(runner.Config{
		Registry: reg,
		Log:      config.Log,
		Sinks:    sinks,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create test runner: %w", err)
	}

	s := &Service{
		config:           config,
		version:          version,
		registry:         reg,
		executor:         NewDefaultTestExecutor(testRunner, config.Log),
		scheduler:        NewDefaultTestScheduler(config.RunInterval, config.RunOnce, config.Log),
		formatter:        NewConsoleResultFormatter(config.Log),
		reporter:         NewDefaultMetricsReporter(),
		shutdownCallback: shutdownCallback,
	}
	config.Log.Info().Int("classes", len(classes)).Msg("created registry and test runner")
	return s, nil
}

// Start runs the test classes. In run-once mode it returns once the single
// run finished: a RuntimeError when any class was aborted by a fatal
// configuration error, a TestFailureError when any test failed, nil when
// everything passed. In interval mode it returns after scheduling the
// periodic runs.
func (s *Service) Start(ctx context.Context) error {
	s.running.Store(true)

	if s.config.RunOnce {
		s.config.Log.Info().Msg("Starting suitekit in run-once mode")
	} else {
		s.config.Log.Info().Dur("interval", s.config.RunInterval).Msg("Starting suitekit in continuous mode")
	}

	s.scheduler.RegisterCallback(func() error {
		return s.runTests(ctx)
	})

	if err := s.scheduler.Start(ctx); err != nil {
		s.running.Store(false)
		return err
	}

	if s.config.RunOnce {
		s.running.Store(false)
		s.config.Log.Info().Msg("Tests completed, exiting (run-once mode)")

		if s.result != nil {
			// Aborted classes mean the run itself was broken, not that tests
			// failed; they take the runtime-error exit path even when other
			// classes also had failing tests.
			if fatals := s.result.FatalErrors(); len(fatals) > 0 {
				return NewRuntimeError(fmt.Errorf("%s: %w", s.result.String(), errors.Join(fatals...)))
			}
			if s.result.Status != types.TestStatusPass {
				return NewTestFailureError(s.result.String())
			}
		}
		if s.shutdownCallback != nil {
			go s.shutdownCallback(nil)
		}
	}
	return nil
}

// runTests runs all tests once and processes the results.
func (s *Service) runTests(ctx context.Context) error {
	result, err := s.executor.RunTests(ctx)
	if err != nil {
		// This is a runtime error (not a test failure)
		return NewRuntimeError(err)
	}
	s.result = result

	if s.config.ReportTable {
		if err := s.formatter.FormatResults(result); err != nil {
			s.config.Log.Error().Err(err).Msg("failed to format results")
		}
	}
	s.reporter.ReportResults(result.RunID, result)

	s.config.Log.Info().Str("run_id", result.RunID).Str("status", string(result.Status)).Msg("Test run completed")
	return nil
}

// Result returns the most recent run's result.
func (s *Service) Result() *runner.RunnerResult {
	return s.result
}

// Stop stops the suitekit service.
func (s *Service) Stop(ctx context.Context) error {
	s.config.Log.Info().Msg("Stopping suitekit")

	if !s.running.Load() {
		s.config.Log.Debug().Msg("Service already stopped, nothing to do")
		return nil
	}
	s.running.Store(false)

	if err := s.scheduler.Stop(); err != nil {
		return err
	}

	s.config.Log.Info().Msg("suitekit stopped successfully")
	return nil
}

// Stopped returns true if the service is stopped.
func (s *Service) Stopped() bool {
	return !s.running.Load()
}
