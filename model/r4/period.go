package r4

import (
	"github.com/damedic/fhir-model-go/model"
	"github.com/damedic/fhir-model-go/model/validation"
	"github.com/damedic/fhir-model-go/model/visit"
)

// Period is a time period defined by a start and end date and optionally time.
type Period struct {
	element
	start *DateTime
	end   *DateTime
}

func (r *Period) TypeName() string {
	return "Period"
}

func (r *Period) Start() *DateTime {
	return r.start
}

func (r *Period) End() *DateTime {
	return r.end
}

func (r *Period) HasChildren() bool {
	return r.hasBaseChildren() ||
		r.start != nil ||
		r.end != nil
}

func (r *Period) Accept(name string, index int, v model.Visitor) {
	if !v.PreVisit(r) {
		return
	}
	v.VisitStart(name, index, r)
	if v.Visit(name, index, r) {
		r.visitBase(v)
		if r.start != nil {
			r.start.Accept("start", -1, v)
		}
		if r.end != nil {
			r.end.Accept("end", -1, v)
		}
	}
	v.VisitEnd(name, index, r)
	v.PostVisit(r)
}

func (r *Period) String() string {
	return visit.Sprint(r)
}

// ToBuilder returns a builder initialized with the contents of r.
func (r *Period) ToBuilder() *PeriodBuilder {
	b := NewPeriodBuilder()
	b.initBase(&r.element)
	b.start = r.start
	b.end = r.end
	return b
}

// PeriodBuilder builds [Period] nodes.
type PeriodBuilder struct {
	elementBuilder[PeriodBuilder]
	start *DateTime
	end   *DateTime
}

func NewPeriodBuilder() *PeriodBuilder {
	b := &PeriodBuilder{}
	b.self = b
	return b
}

func (b *PeriodBuilder) Start(v *DateTime) *PeriodBuilder {
	b.start = v
	return b
}

func (b *PeriodBuilder) End(v *DateTime) *PeriodBuilder {
	b.end = v
	return b
}

// Build validates the builder contents and returns the node.
func (b *PeriodBuilder) Build() (*Period, error) {
	base, errs := b.buildBase()
	r := &Period{
		element: base,
		start:   b.start,
		end:     b.end,
	}
	errs = append(errs, validation.RequireValueOrChildren(r))
	if err := validation.Join("Period", errs...); err != nil {
		return nil, err
	}
	return r, nil
}
