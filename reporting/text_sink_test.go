package reporting

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suitekit/suitekit/types"
)

func TestTextSummarySink(t *testing.T) {
	tmpDir := t.TempDir()
	sink := NewTextSummarySink(tmpDir)

	for _, res := range sampleResults() {
		require.NoError(t, sink.Consume(res, "run-1"))
	}
	require.NoError(t, sink.Complete("run-1"))

	data, err := os.ReadFile(filepath.Join(tmpDir, "testrun-run-1", "summary.log"))
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, "[pass] CalcSuite.TestAdd")
	assert.Contains(t, out, "[fail] CalcSuite.TestDiv (division check)")
	assert.Contains(t, out, "expected = [5]; actual = [4]")
	assert.Contains(t, out, "[timeout] SlowSuite.TestSleep")
	assert.Contains(t, out, "exceeded 100ms")
}

func TestTextSummarySinkEmptyRun(t *testing.T) {
	tmpDir := t.TempDir()
	sink := NewTextSummarySink(tmpDir)

	require.NoError(t, sink.Complete("run-2"))

	data, err := os.ReadFile(filepath.Join(tmpDir, "testrun-run-2", "summary.log"))
	require.NoError(t, err)
	assert.Empty(t, string(data))
}

func TestTextSummarySinkPrunesCompletedRuns(t *testing.T) {
	tmpDir := t.TempDir()
	sink := NewTextSummarySink(tmpDir)

	for _, res := range sampleResults() {
		require.NoError(t, sink.Consume(res, "run-1"))
	}
	require.NoError(t, sink.Complete("run-1"))
	assert.Empty(t, sink.results)

	// A later run starts from a clean buffer.
	require.NoError(t, sink.Consume(sampleResults()[0], "run-2"))
	require.NoError(t, sink.Complete("run-2"))

	data, err := os.ReadFile(filepath.Join(tmpDir, "testrun-run-2", "summary.log"))
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), "\n"))
}

func TestFormatLine(t *testing.T) {
	res := &types.TestResult{
		Class:    "CalcSuite",
		Method:   "TestDiv",
		Status:   types.TestStatusFail,
		Expected: "5",
		Actual:   "4",
		Duration: 3 * time.Millisecond,
	}
	assert.Equal(t, "[fail] CalcSuite.TestDiv (3ms): expected = [5]; actual = [4]", FormatLine(res))
}
