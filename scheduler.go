package suitekit

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// TestScheduler is responsible for scheduling periodic test runs.
type TestScheduler interface {
	Start(ctx context.Context) error
	Stop() error
	RegisterCallback(func() error)
	Stopped() bool
}

// DefaultTestScheduler implements the TestScheduler interface.
type DefaultTestScheduler struct {
	interval time.Duration
	runOnce  bool
	logger   zerolog.Logger
	callback func() error

	running atomic.Bool
	done    chan struct{}
	wg      sync.WaitGroup
}

// NewDefaultTestScheduler creates a new DefaultTestScheduler.
func NewDefaultTestScheduler(interval time.Duration, runOnce bool, logger zerolog.Logger) *DefaultTestScheduler {
	return &DefaultTestScheduler{
		interval: interval,
		runOnce:  runOnce,
		logger:   logger,
		done:     make(chan struct{}),
	}
}

// RegisterCallback registers the callback to be called when tests should run.
func (s *DefaultTestScheduler) RegisterCallback(callback func() error) {
	s.callback = callback
}

// Start runs the callback immediately, then at every interval until Stop is
// called or the context is cancelled. In run-once mode the first run is the
// only run and its error is returned directly.
func (s *DefaultTestScheduler) Start(ctx context.Context) error {
	if s.callback == nil {
		return errors.New("no callback registered")
	}
	s.running.Store(true)

	if err := s.callback(); err != nil {
		if s.runOnce {
			s.running.Store(false)
			return err
		}
		s.logger.Error().Err(err).Msg("test run failed")
	}

	if s.runOnce {
		s.running.Store(false)
		return nil
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.logger.Debug().Dur("interval", s.interval).Msg("starting periodic test runner")

		for {
			select {
			case <-time.After(s.interval):
				if !s.running.Load() {
					s.logger.Debug().Msg("scheduler stopped, exiting periodic test runner")
					return
				}
				s.logger.Info().Msg("running periodic tests")
				if err := s.callback(); err != nil {
					s.logger.Error().Err(err).Msg("error running periodic tests")
				}

			case <-s.done:
				s.logger.Debug().Msg("done signal received, stopping periodic test runner")
				return

			case <-ctx.Done():
				s.logger.Debug().Msg("context canceled, stopping periodic test runner")
				s.running.Store(false)
				return
			}
		}
	}()
	return nil
}

// Stop stops the scheduler and waits for the periodic runner to exit.
func (s *DefaultTestScheduler) Stop() error {
	if !s.running.Load() {
		return nil
	}
	s.running.Store(false)
	close(s.done)
	s.wg.Wait()
	return nil
}

// Stopped returns true if the scheduler is not running.
func (s *DefaultTestScheduler) Stopped() bool {
	return !s.running.Load()
}
