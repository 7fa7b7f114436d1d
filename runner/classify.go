package runner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/suitekit/suitekit/check"
	"github.com/suitekit/suitekit/types"
)

// classify maps the result of a single test invocation to exactly one
// outcome: a normal return is a pass, the typed assertion-failure signal is a
// fail with expected/actual context, a timeout signal is a timeout with the
// configured limit, and anything else is an unhandled error. Unhandled errors
// are reported rather than dropped so no failure is ever lost silently.
func classify(class string, h MethodHandle, limit time.Duration, err error, duration time.Duration) *types.TestResult {
	result := &types.TestResult{
		Class:       class,
		Method:      h.Name,
		Description: h.Description,
		Status:      types.TestStatusPass,
		Duration:    duration,
	}
	if err == nil {
		return result
	}

	var failure *check.FailureError
	var timeout *types.TimeoutError
	switch {
	case errors.As(err, &failure):
		result.Status = types.TestStatusFail
		result.Expected = fmt.Sprintf("%v", failure.Expected)
		result.Actual = fmt.Sprintf("%v", failure.Actual)
		result.Error = err
	case errors.As(err, &timeout):
		result.Status = types.TestStatusTimeout
		result.Limit = timeout.Limit
		result.Error = err
	case errors.Is(err, context.DeadlineExceeded):
		// A context-aware body that returned its own deadline error raced the
		// guard and won; it still timed out.
		result.Status = types.TestStatusTimeout
		result.Limit = limit
		result.Error = err
	default:
		result.Status = types.TestStatusError
		result.Error = err
	}
	return result
}
