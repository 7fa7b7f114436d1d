package types

import (
	"fmt"
	"time"
)

// TimeUnit is the unit of a TimeoutSpec duration.
type TimeUnit string

// String implements the Stringer interface for TimeUnit
func (u TimeUnit) String() string {
	return string(u)
}

// TimeUnit enum values
const (
	UnitMilliseconds TimeUnit = "milliseconds"
	UnitSeconds      TimeUnit = "seconds"
	UnitMinutes      TimeUnit = "minutes"
)

// TimeoutSpec bounds how long a test invocation may run before it is reported
// as timed out. Time must be positive and Unit one of the recognized values;
// anything else is a configuration error surfaced at discovery time.
type TimeoutSpec struct {
	Time int64
	Unit TimeUnit
}

// Normalize converts the spec to a duration with millisecond resolution.
func (s TimeoutSpec) Normalize() (time.Duration, error) {
	if s.Time <= 0 {
		return 0, fmt.Errorf("timeout must be positive, got %d", s.Time)
	}
	switch s.Unit {
	case UnitMilliseconds:
		return time.Duration(s.Time) * time.Millisecond, nil
	case UnitSeconds:
		return time.Duration(s.Time) * time.Second, nil
	case UnitMinutes:
		return time.Duration(s.Time) * time.Minute, nil
	default:
		return 0, fmt.Errorf("unrecognized timeout unit %q", s.Unit)
	}
}

// TimeoutError is the signal produced when a test's visible duration exceeded
// its configured limit.
type TimeoutError struct {
	Limit time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("execution exceeded maximum time of %s", e.Limit)
}
