package r4

import (
	"errors"

	"github.com/damedic/fhir-model-go/model/validation"
)

// Literal returns the literal reference, see [validation.Referencer].
func (r *Reference) Literal() (string, bool) {
	if r == nil || r.reference == nil {
		return "", false
	}
	return r.reference.Value()
}

// TargetType returns the type the reference refers to, see [validation.Referencer].
func (r *Reference) TargetType() (string, bool) {
	if r == nil || r.typ == nil {
		return "", false
	}
	return r.typ.Value()
}

// SystemAndCode returns system and code if both have a value.
func (r *Coding) SystemAndCode() (system, code string, ok bool) {
	if r == nil || r.system == nil || r.code == nil {
		return "", "", false
	}
	system, hasSystem := r.system.Value()
	code, hasCode := r.code.Value()
	return system, code, hasSystem && hasCode
}

func checkReference(r *Reference, field string, allowed ...string) error {
	return validation.CheckReferenceType(r, field, IsResourceType, allowed...)
}

func checkReferences(refs []*Reference, field string, allowed ...string) error {
	var errs []error
	for _, r := range refs {
		errs = append(errs, checkReference(r, field, allowed...))
	}
	return errors.Join(errs...)
}

func checkBinding(cc *CodeableConcept, field, valueSet, system string, codes ...string) error {
	if cc == nil {
		return nil
	}
	return validation.CheckValueSetBinding(cc.coding, field, valueSet, system, codes...)
}
