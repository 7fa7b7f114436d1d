package runner

import (
	"fmt"

	"github.com/suitekit/suitekit/types"
)

// newInstance constructs the single suite instance for a class run via its
// zero-argument constructor. A missing constructor, a nil result, or a panic
// inside the constructor aborts the class run with no partial results.
func newInstance(class types.Class) (inst types.Suite, err error) {
	if class.New == nil {
		return nil, fmt.Errorf("class %s has no constructor", class.Name)
	}
	defer func() {
		if r := recover(); r != nil {
			inst = nil
			err = fmt.Errorf("constructor of class %s panicked: %v", class.Name, r)
		}
	}()
	inst = class.New()
	if inst == nil {
		return nil, fmt.Errorf("constructor of class %s returned nil", class.Name)
	}
	return inst, nil
}
