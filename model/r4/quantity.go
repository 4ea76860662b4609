package r4

import (
	"github.com/damedic/fhir-model-go/model"
	"github.com/damedic/fhir-model-go/model/validation"
	"github.com/damedic/fhir-model-go/model/visit"
)

// Quantity is a measured amount (or an amount that can potentially be measured).
type Quantity struct {
	element
	value      *Decimal
	comparator *Coded[QuantityComparator]
	unit       *String
	system     *Uri
	code       *Code
}

func (r *Quantity) TypeName() string {
	return "Quantity"
}

// Value returns the numerical value, with implicit precision.
func (r *Quantity) Value() *Decimal {
	return r.value
}

func (r *Quantity) Comparator() *Coded[QuantityComparator] {
	return r.comparator
}

// Unit is the unit representation for display.
func (r *Quantity) Unit() *String {
	return r.unit
}

// System is the system that defines the coded unit form.
func (r *Quantity) System() *Uri {
	return r.system
}

// Code is the coded form of the unit.
func (r *Quantity) Code() *Code {
	return r.code
}

func (r *Quantity) HasChildren() bool {
	return r.hasBaseChildren() ||
		r.value != nil ||
		r.comparator != nil ||
		r.unit != nil ||
		r.system != nil ||
		r.code != nil
}

func (r *Quantity) Accept(name string, index int, v model.Visitor) {
	if !v.PreVisit(r) {
		return
	}
	v.VisitStart(name, index, r)
	if v.Visit(name, index, r) {
		r.visitBase(v)
		if r.value != nil {
			r.value.Accept("value", -1, v)
		}
		if r.comparator != nil {
			r.comparator.Accept("comparator", -1, v)
		}
		if r.unit != nil {
			r.unit.Accept("unit", -1, v)
		}
		if r.system != nil {
			r.system.Accept("system", -1, v)
		}
		if r.code != nil {
			r.code.Accept("code", -1, v)
		}
	}
	v.VisitEnd(name, index, r)
	v.PostVisit(r)
}

func (r *Quantity) String() string {
	return visit.Sprint(r)
}

// ToBuilder returns a builder initialized with the contents of r.
func (r *Quantity) ToBuilder() *QuantityBuilder {
	b := NewQuantityBuilder()
	b.initBase(&r.element)
	b.value = r.value
	b.comparator = r.comparator
	b.unit = r.unit
	b.system = r.system
	b.code = r.code
	return b
}

// QuantityBuilder builds [Quantity] nodes.
type QuantityBuilder struct {
	elementBuilder[QuantityBuilder]
	value      *Decimal
	comparator *Coded[QuantityComparator]
	unit       *String
	system     *Uri
	code       *Code
}

func NewQuantityBuilder() *QuantityBuilder {
	b := &QuantityBuilder{}
	b.self = b
	return b
}

func (b *QuantityBuilder) Value(v *Decimal) *QuantityBuilder {
	b.value = v
	return b
}

func (b *QuantityBuilder) Comparator(v *Coded[QuantityComparator]) *QuantityBuilder {
	b.comparator = v
	return b
}

func (b *QuantityBuilder) Unit(v *String) *QuantityBuilder {
	b.unit = v
	return b
}

func (b *QuantityBuilder) System(v *Uri) *QuantityBuilder {
	b.system = v
	return b
}

func (b *QuantityBuilder) Code(v *Code) *QuantityBuilder {
	b.code = v
	return b
}

// Build validates the builder contents and returns the node.
func (b *QuantityBuilder) Build() (*Quantity, error) {
	base, errs := b.buildBase()
	r := &Quantity{
		element:    base,
		value:      b.value,
		comparator: b.comparator,
		unit:       b.unit,
		system:     b.system,
		code:       b.code,
	}
	errs = append(errs, validation.RequireValueOrChildren(r))
	if err := validation.Join("Quantity", errs...); err != nil {
		return nil, err
	}
	return r, nil
}

// Duration is a length of time.
type Duration struct {
	element
	value      *Decimal
	comparator *Coded[QuantityComparator]
	unit       *String
	system     *Uri
	code       *Code
}

func (r *Duration) TypeName() string {
	return "Duration"
}

func (r *Duration) Value() *Decimal {
	return r.value
}

func (r *Duration) Comparator() *Coded[QuantityComparator] {
	return r.comparator
}

func (r *Duration) Unit() *String {
	return r.unit
}

func (r *Duration) System() *Uri {
	return r.system
}

func (r *Duration) Code() *Code {
	return r.code
}

func (r *Duration) HasChildren() bool {
	return r.hasBaseChildren() ||
		r.value != nil ||
		r.comparator != nil ||
		r.unit != nil ||
		r.system != nil ||
		r.code != nil
}

func (r *Duration) Accept(name string, index int, v model.Visitor) {
	if !v.PreVisit(r) {
		return
	}
	v.VisitStart(name, index, r)
	if v.Visit(name, index, r) {
		r.visitBase(v)
		if r.value != nil {
			r.value.Accept("value", -1, v)
		}
		if r.comparator != nil {
			r.comparator.Accept("comparator", -1, v)
		}
		if r.unit != nil {
			r.unit.Accept("unit", -1, v)
		}
		if r.system != nil {
			r.system.Accept("system", -1, v)
		}
		if r.code != nil {
			r.code.Accept("code", -1, v)
		}
	}
	v.VisitEnd(name, index, r)
	v.PostVisit(r)
}

func (r *Duration) String() string {
	return visit.Sprint(r)
}

// ToBuilder returns a builder initialized with the contents of r.
func (r *Duration) ToBuilder() *DurationBuilder {
	b := NewDurationBuilder()
	b.initBase(&r.element)
	b.value = r.value
	b.comparator = r.comparator
	b.unit = r.unit
	b.system = r.system
	b.code = r.code
	return b
}

// DurationBuilder builds [Duration] nodes.
type DurationBuilder struct {
	elementBuilder[DurationBuilder]
	value      *Decimal
	comparator *Coded[QuantityComparator]
	unit       *String
	system     *Uri
	code       *Code
}

func NewDurationBuilder() *DurationBuilder {
	b := &DurationBuilder{}
	b.self = b
	return b
}

func (b *DurationBuilder) Value(v *Decimal) *DurationBuilder {
	b.value = v
	return b
}

func (b *DurationBuilder) Comparator(v *Coded[QuantityComparator]) *DurationBuilder {
	b.comparator = v
	return b
}

func (b *DurationBuilder) Unit(v *String) *DurationBuilder {
	b.unit = v
	return b
}

func (b *DurationBuilder) System(v *Uri) *DurationBuilder {
	b.system = v
	return b
}

func (b *DurationBuilder) Code(v *Code) *DurationBuilder {
	b.code = v
	return b
}

// Build validates the builder contents and returns the node.
func (b *DurationBuilder) Build() (*Duration, error) {
	base, errs := b.buildBase()
	r := &Duration{
		element:    base,
		value:      b.value,
		comparator: b.comparator,
		unit:       b.unit,
		system:     b.system,
		code:       b.code,
	}
	errs = append(errs, validation.RequireValueOrChildren(r))
	if err := validation.Join("Duration", errs...); err != nil {
		return nil, err
	}
	return r, nil
}

// Money is an amount of economic utility in some recognized currency.
type Money struct {
	element
	value    *Decimal
	currency *Code
}

func (r *Money) TypeName() string {
	return "Money"
}

func (r *Money) Value() *Decimal {
	return r.value
}

// Currency is the ISO 4217 currency code.
func (r *Money) Currency() *Code {
	return r.currency
}

func (r *Money) HasChildren() bool {
	return r.hasBaseChildren() ||
		r.value != nil ||
		r.currency != nil
}

func (r *Money) Accept(name string, index int, v model.Visitor) {
	if !v.PreVisit(r) {
		return
	}
	v.VisitStart(name, index, r)
	if v.Visit(name, index, r) {
		r.visitBase(v)
		if r.value != nil {
			r.value.Accept("value", -1, v)
		}
		if r.currency != nil {
			r.currency.Accept("currency", -1, v)
		}
	}
	v.VisitEnd(name, index, r)
	v.PostVisit(r)
}

func (r *Money) String() string {
	return visit.Sprint(r)
}

// ToBuilder returns a builder initialized with the contents of r.
func (r *Money) ToBuilder() *MoneyBuilder {
	b := NewMoneyBuilder()
	b.initBase(&r.element)
	b.value = r.value
	b.currency = r.currency
	return b
}

// MoneyBuilder builds [Money] nodes.
type MoneyBuilder struct {
	elementBuilder[MoneyBuilder]
	value    *Decimal
	currency *Code
}

func NewMoneyBuilder() *MoneyBuilder {
	b := &MoneyBuilder{}
	b.self = b
	return b
}

func (b *MoneyBuilder) Value(v *Decimal) *MoneyBuilder {
	b.value = v
	return b
}

func (b *MoneyBuilder) Currency(v *Code) *MoneyBuilder {
	b.currency = v
	return b
}

// Build validates the builder contents and returns the node.
func (b *MoneyBuilder) Build() (*Money, error) {
	base, errs := b.buildBase()
	r := &Money{
		element:  base,
		value:    b.value,
		currency: b.currency,
	}
	errs = append(errs, validation.RequireValueOrChildren(r))
	if err := validation.Join("Money", errs...); err != nil {
		return nil, err
	}
	return r, nil
}

// Range is a set of ordered quantities defined by a low and high limit.
//
// Both limits are simple quantities and must not carry a comparator.
type Range struct {
	element
	low  *Quantity
	high *Quantity
}

func (r *Range) TypeName() string {
	return "Range"
}

func (r *Range) Low() *Quantity {
	return r.low
}

func (r *Range) High() *Quantity {
	return r.high
}

func (r *Range) HasChildren() bool {
	return r.hasBaseChildren() ||
		r.low != nil ||
		r.high != nil
}

func (r *Range) Accept(name string, index int, v model.Visitor) {
	if !v.PreVisit(r) {
		return
	}
	v.VisitStart(name, index, r)
	if v.Visit(name, index, r) {
		r.visitBase(v)
		if r.low != nil {
			r.low.Accept("low", -1, v)
		}
		if r.high != nil {
			r.high.Accept("high", -1, v)
		}
	}
	v.VisitEnd(name, index, r)
	v.PostVisit(r)
}

func (r *Range) String() string {
	return visit.Sprint(r)
}

// ToBuilder returns a builder initialized with the contents of r.
func (r *Range) ToBuilder() *RangeBuilder {
	b := NewRangeBuilder()
	b.initBase(&r.element)
	b.low = r.low
	b.high = r.high
	return b
}

// RangeBuilder builds [Range] nodes.
type RangeBuilder struct {
	elementBuilder[RangeBuilder]
	low  *Quantity
	high *Quantity
}

func NewRangeBuilder() *RangeBuilder {
	b := &RangeBuilder{}
	b.self = b
	return b
}

func (b *RangeBuilder) Low(v *Quantity) *RangeBuilder {
	b.low = v
	return b
}

func (b *RangeBuilder) High(v *Quantity) *RangeBuilder {
	b.high = v
	return b
}

// Build validates the builder contents and returns the node.
func (b *RangeBuilder) Build() (*Range, error) {
	base, errs := b.buildBase()
	if b.low != nil {
		errs = append(errs, validation.Prohibited(b.low.comparator, "low.comparator"))
	}
	if b.high != nil {
		errs = append(errs, validation.Prohibited(b.high.comparator, "high.comparator"))
	}
	r := &Range{
		element: base,
		low:     b.low,
		high:    b.high,
	}
	errs = append(errs, validation.RequireValueOrChildren(r))
	if err := validation.Join("Range", errs...); err != nil {
		return nil, err
	}
	return r, nil
}
