// Package types contains shared types used across the suitekit testing framework
package types

import "reflect"

// Annotation tags one method of a test-bearing type with its lifecycle roles.
// A single annotation may set several tags at once, e.g. Test plus a Timeout
// and a Description.
type Annotation struct {
	Test       bool
	BeforeEach bool
	BeforeAll  bool
	AfterEach  bool
	AfterAll   bool

	Timeout     *TimeoutSpec
	Description string
}

// HasRole reports whether the annotation carries at least one lifecycle role.
// Annotations with only modifiers (timeout, description) bind to nothing.
func (a Annotation) HasRole() bool {
	return a.Test || a.BeforeEach || a.BeforeAll || a.AfterEach || a.AfterAll
}

// AnnotationSet maps exported method names to their annotations.
type AnnotationSet map[string]Annotation

// Suite is the capability interface a test-bearing type implements to expose
// its role table. The engine never needs to know method names in advance;
// discovery matches the set against the type's exported methods.
type Suite interface {
	Annotations() AnnotationSet
}

// Class identifies a test-bearing type. New is its zero-argument constructor;
// exactly one instance is created per class run. A nil New, a New that returns
// nil, or a New that panics is a fatal configuration error for the class.
type Class struct {
	Name string
	New  func() Suite
}

// ClassOf builds a Class for a suite type with a pointer receiver, using the
// type name as the class name.
func ClassOf[S any, PS interface {
	*S
	Suite
}]() Class {
	var zero S
	return Class{
		Name: reflect.TypeOf(zero).Name(),
		New:  func() Suite { return PS(new(S)) },
	}
}
