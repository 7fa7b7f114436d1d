package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeoutSpecNormalize(t *testing.T) {
	tests := []struct {
		name    string
		spec    TimeoutSpec
		want    time.Duration
		wantErr bool
	}{
		{
			name: "milliseconds",
			spec: TimeoutSpec{Time: 50, Unit: UnitMilliseconds},
			want: 50 * time.Millisecond,
		},
		{
			name: "seconds",
			spec: TimeoutSpec{Time: 3, Unit: UnitSeconds},
			want: 3000 * time.Millisecond,
		},
		{
			name: "minutes",
			spec: TimeoutSpec{Time: 2, Unit: UnitMinutes},
			want: 120000 * time.Millisecond,
		},
		{
			name:    "unrecognized unit",
			spec:    TimeoutSpec{Time: 5, Unit: "hours"},
			wantErr: true,
		},
		{
			name:    "zero duration",
			spec:    TimeoutSpec{Time: 0, Unit: UnitSeconds},
			wantErr: true,
		},
		{
			name:    "negative duration",
			spec:    TimeoutSpec{Time: -1, Unit: UnitMilliseconds},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.spec.Normalize()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTestResultDetail(t *testing.T) {
	fail := &TestResult{Status: TestStatusFail, Expected: "5", Actual: "4"}
	assert.Equal(t, "expected = [5]; actual = [4]", fail.Detail())

	timeout := &TestResult{Status: TestStatusTimeout, Limit: 100 * time.Millisecond}
	assert.Equal(t, "exceeded 100ms", timeout.Detail())

	pass := &TestResult{Status: TestStatusPass}
	assert.Empty(t, pass.Detail())
}

func TestClassOf(t *testing.T) {
	class := ClassOf[namedSuite]()
	require.Equal(t, "namedSuite", class.Name)
	require.NotNil(t, class.New)

	inst := class.New()
	require.NotNil(t, inst)
	assert.Contains(t, inst.Annotations(), "TestNothing")
}

type namedSuite struct{}

func (s *namedSuite) Annotations() AnnotationSet {
	return AnnotationSet{"TestNothing": {Test: true}}
}

func (s *namedSuite) TestNothing() {}
