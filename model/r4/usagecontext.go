package r4

import (
	"github.com/damedic/fhir-model-go/model"
	"github.com/damedic/fhir-model-go/model/validation"
	"github.com/damedic/fhir-model-go/model/visit"
)

// UsageContext describes the context in which content was intended for use.
type UsageContext struct {
	element
	code  *Coding
	value UsageContextValue
}

// UsageContextValue is the type of UsageContext.value[x]: one of CodeableConcept, Quantity, Range,
// Reference.
type UsageContextValue interface {
	model.Element
	isUsageContextValue()
}

func (r *CodeableConcept) isUsageContextValue() {}
func (r *Quantity) isUsageContextValue()        {}
func (r *Range) isUsageContextValue()           {}
func (r *Reference) isUsageContextValue()       {}

func (r *UsageContext) TypeName() string {
	return "UsageContext"
}

// Code identifies the type of context being specified.
func (r *UsageContext) Code() *Coding {
	return r.code
}

func (r *UsageContext) Value() UsageContextValue {
	return r.value
}

func (r *UsageContext) HasChildren() bool {
	return r.hasBaseChildren() ||
		r.code != nil ||
		r.value != nil
}

func (r *UsageContext) Accept(name string, index int, v model.Visitor) {
	if !v.PreVisit(r) {
		return
	}
	v.VisitStart(name, index, r)
	if v.Visit(name, index, r) {
		r.visitBase(v)
		if r.code != nil {
			r.code.Accept("code", -1, v)
		}
		model.AcceptChoice(v, "value", r.value)
	}
	v.VisitEnd(name, index, r)
	v.PostVisit(r)
}

func (r *UsageContext) String() string {
	return visit.Sprint(r)
}

// ToBuilder returns a builder initialized with the contents of r.
func (r *UsageContext) ToBuilder() *UsageContextBuilder {
	b := NewUsageContextBuilder(r.code, r.value)
	b.initBase(&r.element)
	return b
}

// UsageContextBuilder builds [UsageContext] nodes.
type UsageContextBuilder struct {
	elementBuilder[UsageContextBuilder]
	code  *Coding
	value model.Element
}

// NewUsageContextBuilder returns a builder for [UsageContext] with the required elements set.
func NewUsageContextBuilder(code *Coding, value UsageContextValue) *UsageContextBuilder {
	b := &UsageContextBuilder{
		code:  code,
		value: value,
	}
	b.self = b
	return b
}

func (b *UsageContextBuilder) Code(v *Coding) *UsageContextBuilder {
	b.code = v
	return b
}

func (b *UsageContextBuilder) Value(v UsageContextValue) *UsageContextBuilder {
	b.value = v
	return b
}

// ValueElement sets value without static type check, Build fails unless it is one of CodeableConcept, Quantity, Range, Reference.
func (b *UsageContextBuilder) ValueElement(v model.Element) *UsageContextBuilder {
	b.value = v
	return b
}

// Build validates the builder contents and returns the node.
func (b *UsageContextBuilder) Build() (*UsageContext, error) {
	opts := b.options()
	base, errs := b.buildBase()
	value, err := validation.RequireChoiceElement[UsageContextValue](b.value, "value", "CodeableConcept", "Quantity", "Range", "Reference")
	errs = append(errs, err)
	errs = append(errs,
		validation.RequireNonNull(b.code, "code"),
	)
	if opts.ReferenceTypes {
		if ref, ok := value.(*Reference); ok {
			errs = append(errs, checkReference(ref, "value", "PlanDefinition", "ResearchStudy", "InsurancePlan", "HealthcareService", "Group", "Location", "Organization"))
		}
	}
	r := &UsageContext{
		element: base,
		code:    b.code,
		value:   value,
	}
	errs = append(errs, validation.RequireValueOrChildren(r))
	if err := validation.Join("UsageContext", errs...); err != nil {
		return nil, err
	}
	return r, nil
}
