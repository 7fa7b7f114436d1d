package suitekit

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRuntimeError(t *testing.T) {
	base := errors.New("bad unit")
	err := NewRuntimeError(base)

	assert.True(t, IsRuntimeError(err))
	assert.True(t, IsRuntimeError(fmt.Errorf("wrapped: %w", err)))
	assert.False(t, IsRuntimeError(base))
	assert.False(t, IsRuntimeError(nil))
	assert.ErrorIs(t, err, base)
}

func TestTestFailureError(t *testing.T) {
	err := NewTestFailureError("2 tests failed")

	assert.True(t, IsTestFailureError(err))
	assert.True(t, IsTestFailureError(fmt.Errorf("wrapped: %w", err)))
	assert.False(t, IsTestFailureError(errors.New("other")))
	assert.Contains(t, err.Error(), "2 tests failed")
}
