package r4

import (
	"github.com/damedic/fhir-model-go/model"
	"github.com/damedic/fhir-model-go/model/validation"
	"github.com/damedic/fhir-model-go/model/visit"
)

// Narrative is a human readable summary of a resource.
type Narrative struct {
	element
	status *Coded[NarrativeStatus]
	div    *Xhtml
}

func (r *Narrative) TypeName() string {
	return "Narrative"
}

func (r *Narrative) Status() *Coded[NarrativeStatus] {
	return r.status
}

// Div returns the limited xhtml content.
func (r *Narrative) Div() *Xhtml {
	return r.div
}

func (r *Narrative) HasChildren() bool {
	return r.hasBaseChildren() ||
		r.status != nil ||
		r.div != nil
}

func (r *Narrative) Accept(name string, index int, v model.Visitor) {
	if !v.PreVisit(r) {
		return
	}
	v.VisitStart(name, index, r)
	if v.Visit(name, index, r) {
		r.visitBase(v)
		if r.status != nil {
			r.status.Accept("status", -1, v)
		}
		if r.div != nil {
			r.div.Accept("div", -1, v)
		}
	}
	v.VisitEnd(name, index, r)
	v.PostVisit(r)
}

func (r *Narrative) String() string {
	return visit.Sprint(r)
}

// ToBuilder returns a builder initialized with the contents of r.
func (r *Narrative) ToBuilder() *NarrativeBuilder {
	b := NewNarrativeBuilder(r.status, r.div)
	b.initBase(&r.element)
	return b
}

// NarrativeBuilder builds [Narrative] nodes.
type NarrativeBuilder struct {
	elementBuilder[NarrativeBuilder]
	status *Coded[NarrativeStatus]
	div    *Xhtml
}

// NewNarrativeBuilder returns a builder for [Narrative] with the required elements set.
func NewNarrativeBuilder(status *Coded[NarrativeStatus], div *Xhtml) *NarrativeBuilder {
	b := &NarrativeBuilder{
		status: status,
		div:    div,
	}
	b.self = b
	return b
}

func (b *NarrativeBuilder) Status(v *Coded[NarrativeStatus]) *NarrativeBuilder {
	b.status = v
	return b
}

func (b *NarrativeBuilder) Div(v *Xhtml) *NarrativeBuilder {
	b.div = v
	return b
}

// Build validates the builder contents and returns the node.
func (b *NarrativeBuilder) Build() (*Narrative, error) {
	base, errs := b.buildBase()
	errs = append(errs,
		validation.RequireNonNull(b.status, "status"),
		validation.RequireNonNull(b.div, "div"),
	)
	r := &Narrative{
		element: base,
		status:  b.status,
		div:     b.div,
	}
	errs = append(errs, validation.RequireValueOrChildren(r))
	if err := validation.Join("Narrative", errs...); err != nil {
		return nil, err
	}
	return r, nil
}
