package r4

import (
	"github.com/damedic/fhir-model-go/model"
	"github.com/damedic/fhir-model-go/model/validation"
	"github.com/damedic/fhir-model-go/model/visit"
)

// ContactPoint holds the details for all kinds of technology mediated contact points for a person
// or organization.
type ContactPoint struct {
	element
	system *Coded[ContactPointSystem]
	value  *String
	use    *Coded[ContactPointUse]
	rank   *PositiveInt
	period *Period
}

func (r *ContactPoint) TypeName() string {
	return "ContactPoint"
}

func (r *ContactPoint) System() *Coded[ContactPointSystem] {
	return r.system
}

func (r *ContactPoint) Value() *String {
	return r.value
}

func (r *ContactPoint) Use() *Coded[ContactPointUse] {
	return r.use
}

// Rank specifies a preferred order in which to use a set of contacts, 1 is the highest.
func (r *ContactPoint) Rank() *PositiveInt {
	return r.rank
}

func (r *ContactPoint) Period() *Period {
	return r.period
}

func (r *ContactPoint) HasChildren() bool {
	return r.hasBaseChildren() ||
		r.system != nil ||
		r.value != nil ||
		r.use != nil ||
		r.rank != nil ||
		r.period != nil
}

func (r *ContactPoint) Accept(name string, index int, v model.Visitor) {
	if !v.PreVisit(r) {
		return
	}
	v.VisitStart(name, index, r)
	if v.Visit(name, index, r) {
		r.visitBase(v)
		if r.system != nil {
			r.system.Accept("system", -1, v)
		}
		if r.value != nil {
			r.value.Accept("value", -1, v)
		}
		if r.use != nil {
			r.use.Accept("use", -1, v)
		}
		if r.rank != nil {
			r.rank.Accept("rank", -1, v)
		}
		if r.period != nil {
			r.period.Accept("period", -1, v)
		}
	}
	v.VisitEnd(name, index, r)
	v.PostVisit(r)
}

func (r *ContactPoint) String() string {
	return visit.Sprint(r)
}

// ToBuilder returns a builder initialized with the contents of r.
func (r *ContactPoint) ToBuilder() *ContactPointBuilder {
	b := NewContactPointBuilder()
	b.initBase(&r.element)
	b.system = r.system
	b.value = r.value
	b.use = r.use
	b.rank = r.rank
	b.period = r.period
	return b
}

// ContactPointBuilder builds [ContactPoint] nodes.
type ContactPointBuilder struct {
	elementBuilder[ContactPointBuilder]
	system *Coded[ContactPointSystem]
	value  *String
	use    *Coded[ContactPointUse]
	rank   *PositiveInt
	period *Period
}

func NewContactPointBuilder() *ContactPointBuilder {
	b := &ContactPointBuilder{}
	b.self = b
	return b
}

func (b *ContactPointBuilder) System(v *Coded[ContactPointSystem]) *ContactPointBuilder {
	b.system = v
	return b
}

func (b *ContactPointBuilder) Value(v *String) *ContactPointBuilder {
	b.value = v
	return b
}

func (b *ContactPointBuilder) Use(v *Coded[ContactPointUse]) *ContactPointBuilder {
	b.use = v
	return b
}

func (b *ContactPointBuilder) Rank(v *PositiveInt) *ContactPointBuilder {
	b.rank = v
	return b
}

func (b *ContactPointBuilder) Period(v *Period) *ContactPointBuilder {
	b.period = v
	return b
}

// Build validates the builder contents and returns the node.
func (b *ContactPointBuilder) Build() (*ContactPoint, error) {
	base, errs := b.buildBase()
	r := &ContactPoint{
		element: base,
		system:  b.system,
		value:   b.value,
		use:     b.use,
		rank:    b.rank,
		period:  b.period,
	}
	errs = append(errs, validation.RequireValueOrChildren(r))
	if err := validation.Join("ContactPoint", errs...); err != nil {
		return nil, err
	}
	return r, nil
}

// ContactDetail specifies contact information for a person or organization.
type ContactDetail struct {
	element
	name    *String
	telecom []*ContactPoint
}

func (r *ContactDetail) TypeName() string {
	return "ContactDetail"
}

func (r *ContactDetail) Name() *String {
	return r.name
}

func (r *ContactDetail) Telecom() []*ContactPoint {
	return cloneList(r.telecom)
}

func (r *ContactDetail) HasChildren() bool {
	return r.hasBaseChildren() ||
		r.name != nil ||
		len(r.telecom) > 0
}

func (r *ContactDetail) Accept(name string, index int, v model.Visitor) {
	if !v.PreVisit(r) {
		return
	}
	v.VisitStart(name, index, r)
	if v.Visit(name, index, r) {
		r.visitBase(v)
		if r.name != nil {
			r.name.Accept("name", -1, v)
		}
		model.AcceptList(v, "telecom", "ContactPoint", r.telecom)
	}
	v.VisitEnd(name, index, r)
	v.PostVisit(r)
}

func (r *ContactDetail) String() string {
	return visit.Sprint(r)
}

// ToBuilder returns a builder initialized with the contents of r.
func (r *ContactDetail) ToBuilder() *ContactDetailBuilder {
	b := NewContactDetailBuilder()
	b.initBase(&r.element)
	b.name = r.name
	b.telecom = cloneList(r.telecom)
	return b
}

// ContactDetailBuilder builds [ContactDetail] nodes.
type ContactDetailBuilder struct {
	elementBuilder[ContactDetailBuilder]
	name    *String
	telecom []*ContactPoint
}

func NewContactDetailBuilder() *ContactDetailBuilder {
	b := &ContactDetailBuilder{}
	b.self = b
	return b
}

func (b *ContactDetailBuilder) Name(v *String) *ContactDetailBuilder {
	b.name = v
	return b
}

func (b *ContactDetailBuilder) Telecom(v ...*ContactPoint) *ContactDetailBuilder {
	b.telecom = append(b.telecom, v...)
	return b
}

func (b *ContactDetailBuilder) SetTelecom(v []*ContactPoint) *ContactDetailBuilder {
	b.telecom = cloneList(v)
	return b
}

// Build validates the builder contents and returns the node.
func (b *ContactDetailBuilder) Build() (*ContactDetail, error) {
	base, errs := b.buildBase()
	errs = append(errs,
		validation.RequireNoNilElements(b.telecom, "telecom"),
	)
	r := &ContactDetail{
		element: base,
		name:    b.name,
		telecom: cloneList(b.telecom),
	}
	errs = append(errs, validation.RequireValueOrChildren(r))
	if err := validation.Join("ContactDetail", errs...); err != nil {
		return nil, err
	}
	return r, nil
}
