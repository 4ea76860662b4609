package r4

import (
	"github.com/damedic/fhir-model-go/model"
	"github.com/damedic/fhir-model-go/model/validation"
	"github.com/damedic/fhir-model-go/model/visit"
)

// Reference is a reference from one resource to another.
type Reference struct {
	element
	reference  *String
	typ        *Uri
	identifier *Identifier
	display    *String
}

func (r *Reference) TypeName() string {
	return "Reference"
}

// Reference is the literal reference, relative, internal or absolute URL.
func (r *Reference) Reference() *String {
	return r.reference
}

// Type is the type the reference refers to (e.g. "Patient").
func (r *Reference) Type() *Uri {
	return r.typ
}

// Identifier is the logical reference, when the literal reference is not known.
func (r *Reference) Identifier() *Identifier {
	return r.identifier
}

func (r *Reference) Display() *String {
	return r.display
}

func (r *Reference) HasChildren() bool {
	return r.hasBaseChildren() ||
		r.reference != nil ||
		r.typ != nil ||
		r.identifier != nil ||
		r.display != nil
}

func (r *Reference) Accept(name string, index int, v model.Visitor) {
	if !v.PreVisit(r) {
		return
	}
	v.VisitStart(name, index, r)
	if v.Visit(name, index, r) {
		r.visitBase(v)
		if r.reference != nil {
			r.reference.Accept("reference", -1, v)
		}
		if r.typ != nil {
			r.typ.Accept("type", -1, v)
		}
		if r.identifier != nil {
			r.identifier.Accept("identifier", -1, v)
		}
		if r.display != nil {
			r.display.Accept("display", -1, v)
		}
	}
	v.VisitEnd(name, index, r)
	v.PostVisit(r)
}

func (r *Reference) String() string {
	return visit.Sprint(r)
}

// ToBuilder returns a builder initialized with the contents of r.
func (r *Reference) ToBuilder() *ReferenceBuilder {
	b := NewReferenceBuilder()
	b.initBase(&r.element)
	b.reference = r.reference
	b.typ = r.typ
	b.identifier = r.identifier
	b.display = r.display
	return b
}

// ReferenceBuilder builds [Reference] nodes.
type ReferenceBuilder struct {
	elementBuilder[ReferenceBuilder]
	reference  *String
	typ        *Uri
	identifier *Identifier
	display    *String
}

func NewReferenceBuilder() *ReferenceBuilder {
	b := &ReferenceBuilder{}
	b.self = b
	return b
}

func (b *ReferenceBuilder) Reference(v *String) *ReferenceBuilder {
	b.reference = v
	return b
}

func (b *ReferenceBuilder) Type(v *Uri) *ReferenceBuilder {
	b.typ = v
	return b
}

func (b *ReferenceBuilder) Identifier(v *Identifier) *ReferenceBuilder {
	b.identifier = v
	return b
}

func (b *ReferenceBuilder) Display(v *String) *ReferenceBuilder {
	b.display = v
	return b
}

// Build validates the builder contents and returns the node.
func (b *ReferenceBuilder) Build() (*Reference, error) {
	base, errs := b.buildBase()
	r := &Reference{
		element:    base,
		reference:  b.reference,
		typ:        b.typ,
		identifier: b.identifier,
		display:    b.display,
	}
	errs = append(errs, validation.RequireValueOrChildren(r))
	if err := validation.Join("Reference", errs...); err != nil {
		return nil, err
	}
	return r, nil
}
