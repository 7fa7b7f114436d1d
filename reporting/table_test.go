package reporting

import (
	"bytes"
	"testing"
	"time"

	"github.com/acarl005/stripansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suitekit/suitekit/types"
)

func sampleResults() []*types.TestResult {
	return []*types.TestResult{
		{
			Class:    "CalcSuite",
			Method:   "TestAdd",
			Status:   types.TestStatusPass,
			Duration: 12 * time.Millisecond,
		},
		{
			Class:       "CalcSuite",
			Method:      "TestDiv",
			Description: "division check",
			Status:      types.TestStatusFail,
			Expected:    "5",
			Actual:      "4",
			Duration:    3 * time.Millisecond,
		},
		{
			Class:    "SlowSuite",
			Method:   "TestSleep",
			Status:   types.TestStatusTimeout,
			Limit:    100 * time.Millisecond,
			Duration: 104 * time.Millisecond,
		},
	}
}

func TestTableFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := NewTableFormatter("Suitekit Results")
	require.NoError(t, f.Format(&buf, sampleResults(), 200*time.Millisecond))

	out := stripansi.Strip(buf.String())

	assert.Contains(t, out, "Suitekit Results")
	assert.Contains(t, out, "CalcSuite")
	assert.Contains(t, out, "TestAdd")
	assert.Contains(t, out, "TestDiv")
	assert.Contains(t, out, "division check")
	assert.Contains(t, out, "expected = [5]; actual = [4]")
	assert.Contains(t, out, "exceeded 100ms")
	assert.Contains(t, out, "3 tests")
	assert.Contains(t, out, "1 passed")
	assert.Contains(t, out, "1 failed, 1 timed out, 0 errored")
}

func TestTableFormatterEmptyRun(t *testing.T) {
	var buf bytes.Buffer
	f := NewTableFormatter("Suitekit Results")
	require.NoError(t, f.Format(&buf, nil, 0))

	out := stripansi.Strip(buf.String())
	assert.Contains(t, out, "0 tests")
}
