// Package validation implements the checks run when a node of the object model is built.
//
// The functions return nil on success and an [*Error] otherwise. Builders collect the results
// and combine them with [Join], so that a single Build reports every violated constraint at once.
package validation

import (
	"fmt"
	"slices"
	"strings"

	"github.com/damedic/fhir-model-go/model"
)

// RequireNonNull checks that a required single valued field is set.
func RequireNonNull[T any](v *T, field string) error {
	if v == nil {
		return newError(ErrMissingRequiredField, field, "")
	}
	return nil
}

// RequireNonEmpty checks that a required repeated field holds at least one element.
func RequireNonEmpty[E any](s []E, field string) error {
	if len(s) == 0 {
		return newError(ErrMissingRequiredField, field, "")
	}
	return nil
}

// RequireNoNilElements checks that a repeated field does not hold nil entries.
func RequireNoNilElements[E any](s []*E, field string) error {
	for i, e := range s {
		if e == nil {
			return newError(ErrInvalidValue, field, "nil element at index %d", i)
		}
	}
	return nil
}

// Prohibited checks that a field is absent in the given context,
// e.g. a Quantity that is used as SimpleQuantity must not carry a comparator.
func Prohibited[T any](v *T, field string) error {
	if v != nil {
		return newError(ErrProhibitedElement, field, "")
	}
	return nil
}

type valuer interface {
	HasValue() bool
}

// RequireValueOrChildren checks that a node has a primitive value or at least one child.
func RequireValueOrChildren(e model.Element) error {
	if v, ok := e.(valuer); ok && v.HasValue() {
		return nil
	}
	if e.HasChildren() {
		return nil
	}
	return newError(ErrVacuousElement, "", "")
}

// ChoiceElement checks that the value of a choice field is one of the permitted types.
//
// T is the sealed interface of the field, allowed lists the permitted type names for the error message.
// An absent value (nil or a nil pointer) yields the zero value of T.
func ChoiceElement[T any](e model.Element, field string, allowed ...string) (T, error) {
	var zero T
	if model.IsNil(e) {
		return zero, nil
	}
	t, ok := e.(T)
	if !ok {
		return zero, newError(ErrInvalidChoiceType, field,
			"%s is not one of %s", e.TypeName(), strings.Join(allowed, ", "))
	}
	return t, nil
}

// RequireChoiceElement is like [ChoiceElement], but the value must be present.
func RequireChoiceElement[T any](e model.Element, field string, allowed ...string) (T, error) {
	if model.IsNil(e) {
		var zero T
		return zero, newError(ErrMissingRequiredField, field, "")
	}
	return ChoiceElement[T](e, field, allowed...)
}


// Coding is implemented by the coded datatypes a value set binding is checked against.
type Coding interface {
	// SystemAndCode returns the system and code, ok is false unless both have a value.
	SystemAndCode() (system, code string, ok bool)
}

// CheckValueSetBinding checks a required binding of a CodeableConcept.
//
// If any of the codings carries both a system and a code, one of them must be
// from the bound system and one of the permitted codes.
// Codings without system or code are not checked.
func CheckValueSetBinding[C Coding](codings []C, field, valueSet, system string, codes ...string) error {
	if len(codes) == 0 {
		return nil
	}
	var checked bool
	for _, c := range codings {
		s, code, ok := c.SystemAndCode()
		if !ok {
			continue
		}
		checked = true
		if s == system && slices.Contains(codes, code) {
			return nil
		}
	}
	if !checked {
		return nil
	}
	return newError(ErrValueSetBinding, field,
		"no coding with a valid system and code combination for value set %s", valueSet)
}

func quoteAll(s []string) string {
	q := make([]string, len(s))
	for i, e := range s {
		q[i] = fmt.Sprintf("%q", e)
	}
	return strings.Join(q, ", ")
}
