// Package model defines the release independent contract of the FHIR object model.
//
// Release specific packages (e.g. [github.com/damedic/fhir-model-go/model/r4]) provide
// the concrete node types. Every node is immutable once built and can be traversed
// with a [Visitor].
package model

import (
	"fmt"
	"reflect"
)

// Element is any node in the FHIR model.
//
// This includes Resources, Datatypes, Primitives and BackboneElements.
type Element interface {
	// TypeName returns the FHIR type name of the node,
	// e.g. "CodeableConcept", "dateTime" or "CodeSystem.filter" for backbone elements.
	TypeName() string
	// HasChildren reports whether any field of the node, including id and extensions, is populated.
	HasChildren() bool
	// Accept walks the node and its children depth-first.
	//
	// name is the element name the node is reachable under in its parent,
	// index is the position within a repeated field or -1.
	Accept(name string, index int, v Visitor)
	fmt.Stringer
}

// Resource is any FHIR Resource.
type Resource interface {
	Element
	ResourceType() string
	ResourceId() (string, bool)
}

// IsNil reports whether e is nil or a typed nil pointer such as (*r4.Coding)(nil).
func IsNil(e Element) bool {
	if e == nil {
		return true
	}
	v := reflect.ValueOf(e)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
