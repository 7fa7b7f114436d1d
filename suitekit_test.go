package suitekit

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suitekit/suitekit/runner"
	"github.com/suitekit/suitekit/types"
)

// trackedExecutor counts executions and returns a canned result.
type trackedExecutor struct {
	execCount atomic.Int32
	execCh    chan struct{}
	result    *runner.RunnerResult
	err       error
}

func newTrackedExecutor(result *runner.RunnerResult, err error) *trackedExecutor {
	return &trackedExecutor{
		execCh: make(chan struct{}, 100),
		result: result,
		err:    err,
	}
}

func (e *trackedExecutor) RunTests(ctx context.Context) (*runner.RunnerResult, error) {
	e.execCount.Add(1)
	select {
	case e.execCh <- struct{}{}:
	default:
	}
	return e.result, e.err
}

// waitForExecutions waits for at least n executions to occur.
func (e *trackedExecutor) waitForExecutions(t *testing.T, n int, timeout time.Duration) {
	t.Helper()
	deadline := time.After(timeout)
	for i := 0; i < n; i++ {
		select {
		case <-e.execCh:
		case <-deadline:
			t.Fatalf("timed out waiting for %d executions, saw %d", n, e.execCount.Load())
		}
	}
}

func passingResult() *runner.RunnerResult {
	return &runner.RunnerResult{
		RunID:  "run-1",
		Status: types.TestStatusPass,
		Stats:  runner.ResultStats{Total: 1, Passed: 1},
	}
}

func failingResult() *runner.RunnerResult {
	return &runner.RunnerResult{
		RunID:  "run-2",
		Status: types.TestStatusFail,
		Stats:  runner.ResultStats{Total: 1, Failed: 1},
	}
}

func abortedResult() *runner.RunnerResult {
	return &runner.RunnerResult{
		RunID:  "run-3",
		Status: types.TestStatusError,
		Classes: []*runner.ClassResult{
			{Name: "broken", Status: types.TestStatusError, Err: errors.New("failed to construct instance")},
		},
	}
}

func newTestService(t *testing.T, cfg *Config, exec TestExecutor) *Service {
	t.Helper()
	if cfg.RunInterval == 0 {
		cfg.RunOnce = true
	}
	s, err := New(context.Background(), cfg, "v0.0.0-test", nil)
	require.NoError(t, err)
	s.executor = exec
	s.scheduler = NewDefaultTestScheduler(cfg.RunInterval, cfg.RunOnce, cfg.Log)
	return s
}

func TestNewRequiresConfig(t *testing.T) {
	_, err := New(context.Background(), nil, "v0.0.0", nil)
	require.Error(t, err)
}

func TestServiceRunOncePass(t *testing.T) {
	exec := newTrackedExecutor(passingResult(), nil)
	s := newTestService(t, &Config{Log: zerolog.Nop()}, exec)

	err := s.Start(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(1), exec.execCount.Load())
	assert.True(t, s.Stopped())
	assert.Equal(t, "run-1", s.Result().RunID)
}

func TestServiceRunOnceTestFailure(t *testing.T) {
	exec := newTrackedExecutor(failingResult(), nil)
	s := newTestService(t, &Config{Log: zerolog.Nop()}, exec)

	err := s.Start(context.Background())
	require.Error(t, err)
	assert.True(t, IsTestFailureError(err))
}

func TestServiceRunOnceRuntimeError(t *testing.T) {
	exec := newTrackedExecutor(nil, errors.New("registry exploded"))
	s := newTestService(t, &Config{Log: zerolog.Nop()}, exec)

	err := s.Start(context.Background())
	require.Error(t, err)
	assert.True(t, IsRuntimeError(err))
	assert.False(t, IsTestFailureError(err))
}

func TestServiceRunOnceAbortedClassIsRuntimeError(t *testing.T) {
	exec := newTrackedExecutor(abortedResult(), nil)
	s := newTestService(t, &Config{Log: zerolog.Nop()}, exec)

	err := s.Start(context.Background())
	require.Error(t, err)
	assert.True(t, IsRuntimeError(err))
	assert.False(t, IsTestFailureError(err))
	assert.Contains(t, err.Error(), "failed to construct instance")
}

func TestServiceRunOnceAbortedClassOutranksTestFailures(t *testing.T) {
	result := abortedResult()
	result.Classes = append(result.Classes, &runner.ClassResult{
		Name:   "flaky",
		Status: types.TestStatusFail,
		Stats:  runner.ResultStats{Total: 1, Failed: 1},
	})
	result.Stats = runner.ResultStats{Total: 1, Failed: 1}

	exec := newTrackedExecutor(result, nil)
	s := newTestService(t, &Config{Log: zerolog.Nop()}, exec)

	err := s.Start(context.Background())
	require.Error(t, err)
	assert.True(t, IsRuntimeError(err))
}

func TestServiceContinuousMode(t *testing.T) {
	exec := newTrackedExecutor(passingResult(), nil)
	s := newTestService(t, &Config{Log: zerolog.Nop(), RunInterval: 10 * time.Millisecond}, exec)

	require.NoError(t, s.Start(context.Background()))
	exec.waitForExecutions(t, 3, 5*time.Second)

	require.NoError(t, s.Stop(context.Background()))
	assert.True(t, s.Stopped())

	// No further runs after Stop.
	count := exec.execCount.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, count, exec.execCount.Load())
}

func TestServiceStopIsIdempotent(t *testing.T) {
	exec := newTrackedExecutor(passingResult(), nil)
	s := newTestService(t, &Config{Log: zerolog.Nop()}, exec)

	require.NoError(t, s.Start(context.Background()))
	require.NoError(t, s.Stop(context.Background()))
	require.NoError(t, s.Stop(context.Background()))
}
