package r4

import (
	"github.com/damedic/fhir-model-go/model"
	"github.com/damedic/fhir-model-go/model/validation"
	"github.com/damedic/fhir-model-go/model/visit"
)

// Identifier is an identifier intended for computation.
type Identifier struct {
	element
	use      *Coded[IdentifierUse]
	typ      *CodeableConcept
	system   *Uri
	value    *String
	period   *Period
	assigner *Reference
}

func (r *Identifier) TypeName() string {
	return "Identifier"
}

func (r *Identifier) Use() *Coded[IdentifierUse] {
	return r.use
}

// Type is the description of the identifier.
func (r *Identifier) Type() *CodeableConcept {
	return r.typ
}

// System is the namespace for the identifier value.
func (r *Identifier) System() *Uri {
	return r.system
}

func (r *Identifier) Value() *String {
	return r.value
}

// Period is the time period when the identifier is or was valid.
func (r *Identifier) Period() *Period {
	return r.period
}

func (r *Identifier) Assigner() *Reference {
	return r.assigner
}

func (r *Identifier) HasChildren() bool {
	return r.hasBaseChildren() ||
		r.use != nil ||
		r.typ != nil ||
		r.system != nil ||
		r.value != nil ||
		r.period != nil ||
		r.assigner != nil
}

func (r *Identifier) Accept(name string, index int, v model.Visitor) {
	if !v.PreVisit(r) {
		return
	}
	v.VisitStart(name, index, r)
	if v.Visit(name, index, r) {
		r.visitBase(v)
		if r.use != nil {
			r.use.Accept("use", -1, v)
		}
		if r.typ != nil {
			r.typ.Accept("type", -1, v)
		}
		if r.system != nil {
			r.system.Accept("system", -1, v)
		}
		if r.value != nil {
			r.value.Accept("value", -1, v)
		}
		if r.period != nil {
			r.period.Accept("period", -1, v)
		}
		if r.assigner != nil {
			r.assigner.Accept("assigner", -1, v)
		}
	}
	v.VisitEnd(name, index, r)
	v.PostVisit(r)
}

func (r *Identifier) String() string {
	return visit.Sprint(r)
}

// ToBuilder returns a builder initialized with the contents of r.
func (r *Identifier) ToBuilder() *IdentifierBuilder {
	b := NewIdentifierBuilder()
	b.initBase(&r.element)
	b.use = r.use
	b.typ = r.typ
	b.system = r.system
	b.value = r.value
	b.period = r.period
	b.assigner = r.assigner
	return b
}

// IdentifierBuilder builds [Identifier] nodes.
type IdentifierBuilder struct {
	elementBuilder[IdentifierBuilder]
	use      *Coded[IdentifierUse]
	typ      *CodeableConcept
	system   *Uri
	value    *String
	period   *Period
	assigner *Reference
}

func NewIdentifierBuilder() *IdentifierBuilder {
	b := &IdentifierBuilder{}
	b.self = b
	return b
}

func (b *IdentifierBuilder) Use(v *Coded[IdentifierUse]) *IdentifierBuilder {
	b.use = v
	return b
}

func (b *IdentifierBuilder) Type(v *CodeableConcept) *IdentifierBuilder {
	b.typ = v
	return b
}

func (b *IdentifierBuilder) System(v *Uri) *IdentifierBuilder {
	b.system = v
	return b
}

func (b *IdentifierBuilder) Value(v *String) *IdentifierBuilder {
	b.value = v
	return b
}

func (b *IdentifierBuilder) Period(v *Period) *IdentifierBuilder {
	b.period = v
	return b
}

func (b *IdentifierBuilder) Assigner(v *Reference) *IdentifierBuilder {
	b.assigner = v
	return b
}

// Build validates the builder contents and returns the node.
func (b *IdentifierBuilder) Build() (*Identifier, error) {
	opts := b.options()
	base, errs := b.buildBase()
	if opts.ReferenceTypes {
		errs = append(errs, checkReference(b.assigner, "assigner", "Organization"))
	}
	r := &Identifier{
		element:  base,
		use:      b.use,
		typ:      b.typ,
		system:   b.system,
		value:    b.value,
		period:   b.period,
		assigner: b.assigner,
	}
	errs = append(errs, validation.RequireValueOrChildren(r))
	if err := validation.Join("Identifier", errs...); err != nil {
		return nil, err
	}
	return r, nil
}
