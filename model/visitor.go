package model

import "github.com/iancoleman/strcase"

// Visitor receives callbacks while a node tree is walked by [Element.Accept].
//
// For every node the order of calls is
//
//	PreVisit -> VisitStart -> Visit -> children... -> VisitEnd -> PostVisit
//
// If PreVisit returns false, the node and its whole subtree are skipped and no further
// callback is made for it. If Visit returns false, the children are not descended into,
// but VisitEnd and PostVisit are still called.
//
// Children are visited in the declaration order of the FHIR definition.
// Repeated fields are framed by VisitListStart and VisitListEnd and are only announced
// when they are not empty. Raw values of primitives and element ids are reported via VisitValue.
//
// A Visitor holding state must not be shared between concurrent traversals.
type Visitor interface {
	PreVisit(e Element) bool
	VisitStart(name string, index int, e Element)
	Visit(name string, index int, e Element) bool
	VisitEnd(name string, index int, e Element)
	PostVisit(e Element)

	VisitListStart(name string, n int, typeName string)
	VisitListEnd(name string, n int, typeName string)

	// VisitValue reports a raw value. Values are one of
	// string, bool, int32, int64, uint32, *apd.Decimal or []byte.
	VisitValue(name string, value any)
}

// AcceptList walks a repeated field.
//
// typeName is the declared type of the field, which for polymorphic lists
// (e.g. contained resources) differs from the runtime type of the elements.
func AcceptList[E Element](v Visitor, name, typeName string, elems []E) {
	if len(elems) == 0 {
		return
	}
	v.VisitListStart(name, len(elems), typeName)
	for i, e := range elems {
		e.Accept(name, i, v)
	}
	v.VisitListEnd(name, len(elems), typeName)
}

// AcceptChoice walks a choice field.
//
// The value is announced under its type qualified element name,
// see [ChoiceElementName].
func AcceptChoice(v Visitor, name string, e Element) {
	if e == nil {
		return
	}
	e.Accept(ChoiceElementName(name, e), -1, v)
}

// ChoiceElementName returns the element name a choice value is known by,
// e.g. "value" holding a dateTime becomes "valueDateTime".
func ChoiceElementName(name string, e Element) string {
	return name + strcase.ToCamel(e.TypeName())
}
