package runner

import (
	"context"
	"fmt"
	"reflect"
	"time"

	"github.com/suitekit/suitekit/types"
)

// MethodHandle is a callable bound to a suite instance, carrying the modifier
// tags from its annotation. Limit is the normalized deadline, zero when the
// method carries no TimeoutSpec.
type MethodHandle struct {
	Name        string
	Description string
	Limit       time.Duration

	call func(ctx context.Context) error
}

// Invoke calls the bound method, converting a panic in the body into an error.
func (h MethodHandle) Invoke(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in %s: %v", h.Name, r)
		}
	}()
	return h.call(ctx)
}

// Plan partitions a suite's annotated methods by lifecycle role. Each slice
// preserves the order of the underlying method enumeration, which in Go is
// alphabetical by method name, not declaration order.
type Plan struct {
	BeforeAll  []MethodHandle
	BeforeEach []MethodHandle
	Tests      []MethodHandle
	AfterEach  []MethodHandle
	AfterAll   []MethodHandle
}

// Discover scans the exported methods of a suite instance and partitions them
// by the role tags in its annotation set. Exported methods without an
// annotation, and annotations without a role tag, are ignored. An annotated
// method with an unsupported signature or an invalid TimeoutSpec is a fatal
// configuration error for the class.
func Discover(class string, inst types.Suite) (*Plan, error) {
	annotations := inst.Annotations()
	v := reflect.ValueOf(inst)
	t := v.Type()

	plan := &Plan{}
	for i := 0; i < t.NumMethod(); i++ {
		m := t.Method(i)
		ann, ok := annotations[m.Name]
		if !ok || !ann.HasRole() {
			continue
		}

		call, err := bindMethod(v.Method(i))
		if err != nil {
			return nil, fmt.Errorf("method %s.%s: %w", class, m.Name, err)
		}

		handle := MethodHandle{
			Name:        m.Name,
			Description: ann.Description,
			call:        call,
		}
		if ann.Timeout != nil {
			limit, err := ann.Timeout.Normalize()
			if err != nil {
				return nil, fmt.Errorf("method %s.%s: %w", class, m.Name, err)
			}
			handle.Limit = limit
		}

		if ann.BeforeAll {
			plan.BeforeAll = append(plan.BeforeAll, handle)
		}
		if ann.BeforeEach {
			plan.BeforeEach = append(plan.BeforeEach, handle)
		}
		if ann.Test {
			plan.Tests = append(plan.Tests, handle)
		}
		if ann.AfterEach {
			plan.AfterEach = append(plan.AfterEach, handle)
		}
		if ann.AfterAll {
			plan.AfterAll = append(plan.AfterAll, handle)
		}
	}

	return plan, nil
}

// bindMethod adapts the supported method shapes to a single callable form.
func bindMethod(fn reflect.Value) (func(context.Context) error, error) {
	switch f := fn.Interface().(type) {
	case func():
		return func(context.Context) error { f(); return nil }, nil
	case func() error:
		return func(context.Context) error { return f() }, nil
	case func(context.Context):
		return func(ctx context.Context) error { f(ctx); return nil }, nil
	case func(context.Context) error:
		return f, nil
	default:
		return nil, fmt.Errorf("unsupported method signature %s", fn.Type())
	}
}
