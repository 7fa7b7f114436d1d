package main

import (
	"time"

	"github.com/suitekit/suitekit/check"
	"github.com/suitekit/suitekit/types"
)

// demoClasses returns the example suites the demo binary runs.
func demoClasses() []types.Class {
	return []types.Class{
		types.ClassOf[CalcSuite](),
		types.ClassOf[ClockSuite](),
	}
}

// CalcSuite exercises assertions and lifecycle hooks.
type CalcSuite struct {
	a, b int
}

func (s *CalcSuite) Annotations() types.AnnotationSet {
	return types.AnnotationSet{
		"Reset":       {BeforeEach: true},
		"TestAdd":     {Test: true, Description: "addition works"},
		"TestCompare": {Test: true},
	}
}

func (s *CalcSuite) Reset() {
	s.a, s.b = 2, 3
}

func (s *CalcSuite) TestAdd() error {
	return check.Equal(5, s.a+s.b)
}

func (s *CalcSuite) TestCompare() error {
	return check.True(s.b > s.a)
}

// ClockSuite exercises the deadline guard.
type ClockSuite struct{}

func (s *ClockSuite) Annotations() types.AnnotationSet {
	return types.AnnotationSet{
		"TestQuick": {
			Test:        true,
			Timeout:     &types.TimeoutSpec{Time: 2, Unit: types.UnitSeconds},
			Description: "finishes well within its deadline",
		},
	}
}

func (s *ClockSuite) TestQuick() {
	time.Sleep(10 * time.Millisecond)
}
