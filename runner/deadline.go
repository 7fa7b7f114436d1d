package runner

import (
	"context"
	"errors"

	"github.com/suitekit/suitekit/types"
)

// runWithDeadline bounds the visible duration of a test invocation. The body
// runs on its own goroutine while the caller waits on its completion channel
// or the deadline, whichever comes first.
//
// Cancellation semantics: the invocation context is cancelled at the deadline,
// so context-aware bodies stop promptly. A body that ignores its context keeps
// running in the background after the guard returns; its late result is
// discarded.
func runWithDeadline(ctx context.Context, h MethodHandle) error {
	ctx, cancel := context.WithTimeout(ctx, h.Limit)
	defer cancel()

	// Buffered so the abandoned goroutine can finish without a receiver.
	done := make(chan error, 1)
	go func() {
		done <- h.Invoke(ctx)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return &types.TimeoutError{Limit: h.Limit}
		}
		// Parent context cancelled: the run is being shut down, not timed out.
		return ctx.Err()
	}
}
