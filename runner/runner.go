// Package runner implements the suitekit execution engine: discovery of
// annotated methods, lifecycle sequencing, deadline-bounded invocation and
// outcome classification.
package runner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/suitekit/suitekit/metrics"
	"github.com/suitekit/suitekit/registry"
	"github.com/suitekit/suitekit/reporting"
	"github.com/suitekit/suitekit/types"
)

// FixtureError is the fatal error raised when a lifecycle hook fails.
// Fixture failures are not classified as test outcomes; they abort the
// affected class's run immediately.
type FixtureError struct {
	Class  string
	Phase  string
	Method string
	Err    error
}

func (e *FixtureError) Error() string {
	return fmt.Sprintf("%s hook %s.%s failed: %v", e.Phase, e.Class, e.Method, e.Err)
}

// Unwrap implements the errors.Unwrap interface
func (e *FixtureError) Unwrap() error {
	return e.Err
}

// TestRunner defines the interface for running registered test classes
type TestRunner interface {
	// RunAllTests executes every registered class sequentially in
	// registration order. A class's fatal configuration error is recorded on
	// its ClassResult and does not prevent subsequent classes from running.
	RunAllTests(ctx context.Context) (*RunnerResult, error)
	// RunClass executes a single class end-to-end. It returns an error only
	// for fatal configuration failures; test-level failures are classified
	// into the ClassResult.
	RunClass(ctx context.Context, class types.Class) (*ClassResult, error)
}

// runner struct implements TestRunner interface
type runner struct {
	registry       *registry.Registry
	log            zerolog.Logger
	sinks          []reporting.Sink
	defaultTimeout time.Duration
	runID          string
	tracer         trace.Tracer
}

// Config holds configuration for creating a new runner
type Config struct {
	Registry *registry.Registry
	Log      zerolog.Logger
	Sinks    []reporting.Sink

	// DefaultTimeout applies to tests without an explicit TimeoutSpec.
	// Zero leaves such tests unbounded.
	DefaultTimeout time.Duration
}

// NewTestRunner creates a new test runner instance
func NewTestRunner(cfg Config) (TestRunner, error) {
	if cfg.Registry == nil {
		return nil, errors.New("registry is required")
	}

	defaultTimeout := cfg.DefaultTimeout
	if defaultTimeout == 0 {
		defaultTimeout = cfg.Registry.DefaultTimeout()
	}

	return &runner{
		registry:       cfg.Registry,
		log:            cfg.Log,
		sinks:          cfg.Sinks,
		defaultTimeout: defaultTimeout,
		tracer:         otel.Tracer("suitekit/runner"),
	}, nil
}

// RunAllTests implements the TestRunner interface
func (r *runner) RunAllTests(ctx context.Context) (*RunnerResult, error) {
	r.runID = uuid.New().String()
	ctx, span := r.tracer.Start(ctx, "test run")
	defer span.End()

	result := &RunnerResult{
		RunID:  r.runID,
		Status: types.TestStatusPass,
	}
	result.Stats.StartTime = time.Now()

	classes := r.registry.Classes()
	r.log.Info().Str("run_id", r.runID).Int("classes", len(classes)).Msg("starting test run")

	for _, class := range classes {
		classResult, err := r.RunClass(ctx, class)
		if err != nil {
			r.log.Error().Err(err).Str("class", class.Name).Msg("class run aborted")
			metrics.RecordErrorDetails("class_aborted", err)
			if classResult == nil {
				classResult = &ClassResult{Name: class.Name}
			}
			classResult.Status = types.TestStatusError
			classResult.Err = err
		}

		result.Classes = append(result.Classes, classResult)
		result.Stats.merge(classResult.Stats)
		result.Status = aggregateStatus(result.Status, classResult.Status)
	}

	result.Stats.EndTime = time.Now()
	result.Duration = result.Stats.EndTime.Sub(result.Stats.StartTime)

	for _, sink := range r.sinks {
		if err := sink.Complete(r.runID); err != nil {
			r.log.Error().Err(err).Msg("failed to complete reporting sink")
		}
	}

	r.log.Info().Str("run_id", r.runID).Str("status", string(result.Status)).
		Int("total", result.Stats.Total).Int("passed", result.Stats.Passed).
		Msg("test run completed")

	return result, nil
}

// RunClass implements the TestRunner interface. The class run is a fixed
// sequence: construct the instance, run every before-all hook once, bracket
// each test with the before-each and after-each hooks, then run every
// after-all hook once regardless of how many tests failed.
func (r *runner) RunClass(ctx context.Context, class types.Class) (*ClassResult, error) {
	ctx, span := r.tracer.Start(ctx, fmt.Sprintf("class %s", class.Name))
	defer span.End()

	result := &ClassResult{
		Name:   class.Name,
		Status: types.TestStatusPass,
	}
	result.Stats.StartTime = time.Now()

	inst, err := newInstance(class)
	if err != nil {
		return result, err
	}

	plan, err := Discover(class.Name, inst)
	if err != nil {
		return result, err
	}

	r.log.Debug().Str("class", class.Name).
		Int("tests", len(plan.Tests)).
		Int("before_all", len(plan.BeforeAll)).
		Int("after_all", len(plan.AfterAll)).
		Msg("discovered test class")

	if err := r.invokeHooks(ctx, class.Name, "before-all", plan.BeforeAll); err != nil {
		return result, err
	}

	for _, test := range plan.Tests {
		if err := r.invokeHooks(ctx, class.Name, "before-each", plan.BeforeEach); err != nil {
			return result, err
		}

		testResult := r.runTest(ctx, class.Name, test)

		if err := r.invokeHooks(ctx, class.Name, "after-each", plan.AfterEach); err != nil {
			return result, err
		}

		r.report(testResult)
		result.Tests = append(result.Tests, testResult)
		result.Stats.record(testResult.Status)
		result.Status = aggregateStatus(result.Status, testResult.Status)
	}

	if err := r.invokeHooks(ctx, class.Name, "after-all", plan.AfterAll); err != nil {
		return result, err
	}

	result.Stats.EndTime = time.Now()
	result.Duration = result.Stats.EndTime.Sub(result.Stats.StartTime)
	return result, nil
}

// runTest invokes a single test handle, through the deadline guard when a
// limit applies, and classifies its result.
func (r *runner) runTest(ctx context.Context, class string, h MethodHandle) *types.TestResult {
	ctx, span := r.tracer.Start(ctx, fmt.Sprintf("test %s", h.Name))
	defer span.End()

	limit := h.Limit
	if limit == 0 {
		limit = r.defaultTimeout
	}

	r.log.Debug().Str("class", class).Str("test", h.Name).
		Dur("timeout", limit).Msg("running test")

	start := time.Now()
	var err error
	if limit > 0 {
		bounded := h
		bounded.Limit = limit
		err = runWithDeadline(ctx, bounded)
	} else {
		err = h.Invoke(ctx)
	}

	return classify(class, h, limit, err, time.Since(start))
}

// invokeHooks runs lifecycle hooks in discovery order. Any hook failure is
// fatal for the class's remaining run.
func (r *runner) invokeHooks(ctx context.Context, class, phase string, hooks []MethodHandle) error {
	for _, hook := range hooks {
		r.log.Debug().Str("class", class).Str("phase", phase).Str("hook", hook.Name).Msg("running hook")
		if err := hook.Invoke(ctx); err != nil {
			return &FixtureError{Class: class, Phase: phase, Method: hook.Name, Err: err}
		}
	}
	return nil
}

// report emits one classified outcome to every sink and the metrics layer.
func (r *runner) report(result *types.TestResult) {
	switch result.Status {
	case types.TestStatusPass:
		r.log.Info().Str("test", result.DisplayName()).Dur("duration", result.Duration).Msg("test passed")
	default:
		r.log.Warn().Str("test", result.DisplayName()).Str("status", string(result.Status)).
			Str("detail", result.Detail()).Msg("test failed")
	}

	for _, sink := range r.sinks {
		if err := sink.Consume(result, r.runID); err != nil {
			r.log.Error().Err(err).Str("test", result.DisplayName()).Msg("failed to report test result")
		}
	}

	metrics.RecordTest(r.runID, result.Class, result.Method, result.Status)
}
