package r4

import (
	"bytes"

	"github.com/cockroachdb/apd/v3"

	"github.com/damedic/fhir-model-go/model"
	"github.com/damedic/fhir-model-go/model/validation"
	"github.com/damedic/fhir-model-go/model/visit"
)

// Base64Binary is a stream of bytes, base64 encoded when serialized.
type Base64Binary struct {
	element
	value []byte
}

func (r *Base64Binary) TypeName() string {
	return "base64Binary"
}

func (r *Base64Binary) Value() (v []byte, ok bool) {
	if r.value == nil {
		return v, false
	}
	return bytes.Clone(r.value), true
}

func (r *Base64Binary) HasValue() bool {
	return r.value != nil
}

func (r *Base64Binary) HasChildren() bool {
	return r.hasBaseChildren()
}

func (r *Base64Binary) Accept(name string, index int, v model.Visitor) {
	if !v.PreVisit(r) {
		return
	}
	v.VisitStart(name, index, r)
	if v.Visit(name, index, r) {
		r.visitBase(v)
		if r.value != nil {
			v.VisitValue("value", bytes.Clone(r.value))
		}
	}
	v.VisitEnd(name, index, r)
	v.PostVisit(r)
}

func (r *Base64Binary) String() string {
	return visit.Sprint(r)
}

// ToBuilder returns a builder initialized with the contents of r.
func (r *Base64Binary) ToBuilder() *Base64BinaryBuilder {
	b := NewBase64BinaryBuilder()
	b.initBase(&r.element)
	b.value = r.value
	return b
}

// NewBase64Binary returns a base64Binary holding v.
func NewBase64Binary(v []byte) (*Base64Binary, error) {
	return NewBase64BinaryBuilder().Value(v).Build()
}

type Base64BinaryBuilder struct {
	elementBuilder[Base64BinaryBuilder]
	value []byte
}

func NewBase64BinaryBuilder() *Base64BinaryBuilder {
	b := &Base64BinaryBuilder{}
	b.self = b
	return b
}

func (b *Base64BinaryBuilder) Value(v []byte) *Base64BinaryBuilder {
	b.value = bytes.Clone(v)
	return b
}

func (b *Base64BinaryBuilder) Build() (*Base64Binary, error) {
	base, errs := b.buildBase()
	if b.value != nil {
		errs = append(errs, validation.CheckBase64Binary(b.value))
	}
	r := &Base64Binary{
		element: base,
		value:   b.value,
	}
	errs = append(errs, validation.RequireValueOrChildren(r))
	if err := validation.Join("base64Binary", errs...); err != nil {
		return nil, err
	}
	return r, nil
}

// Boolean is true or false.
type Boolean struct {
	element
	value *bool
}

func (r *Boolean) TypeName() string {
	return "boolean"
}

func (r *Boolean) Value() (v bool, ok bool) {
	if r.value == nil {
		return v, false
	}
	return *r.value, true
}

func (r *Boolean) HasValue() bool {
	return r.value != nil
}

func (r *Boolean) HasChildren() bool {
	return r.hasBaseChildren()
}

func (r *Boolean) Accept(name string, index int, v model.Visitor) {
	if !v.PreVisit(r) {
		return
	}
	v.VisitStart(name, index, r)
	if v.Visit(name, index, r) {
		r.visitBase(v)
		if r.value != nil {
			v.VisitValue("value", *r.value)
		}
	}
	v.VisitEnd(name, index, r)
	v.PostVisit(r)
}

func (r *Boolean) String() string {
	return visit.Sprint(r)
}

// ToBuilder returns a builder initialized with the contents of r.
func (r *Boolean) ToBuilder() *BooleanBuilder {
	b := NewBooleanBuilder()
	b.initBase(&r.element)
	b.value = r.value
	return b
}

// NewBoolean returns a boolean holding v.
func NewBoolean(v bool) (*Boolean, error) {
	return NewBooleanBuilder().Value(v).Build()
}

type BooleanBuilder struct {
	elementBuilder[BooleanBuilder]
	value *bool
}

func NewBooleanBuilder() *BooleanBuilder {
	b := &BooleanBuilder{}
	b.self = b
	return b
}

func (b *BooleanBuilder) Value(v bool) *BooleanBuilder {
	b.value = &v
	return b
}

func (b *BooleanBuilder) Build() (*Boolean, error) {
	base, errs := b.buildBase()
	r := &Boolean{
		element: base,
		value:   b.value,
	}
	errs = append(errs, validation.RequireValueOrChildren(r))
	if err := validation.Join("boolean", errs...); err != nil {
		return nil, err
	}
	return r, nil
}

// Canonical is a URI that refers to a resource by its canonical URL, optionally followed by
// |version.
type Canonical struct {
	element
	value *string
}

func (r *Canonical) TypeName() string {
	return "canonical"
}

func (r *Canonical) Value() (v string, ok bool) {
	if r.value == nil {
		return v, false
	}
	return *r.value, true
}

func (r *Canonical) HasValue() bool {
	return r.value != nil
}

func (r *Canonical) HasChildren() bool {
	return r.hasBaseChildren()
}

func (r *Canonical) Accept(name string, index int, v model.Visitor) {
	if !v.PreVisit(r) {
		return
	}
	v.VisitStart(name, index, r)
	if v.Visit(name, index, r) {
		r.visitBase(v)
		if r.value != nil {
			v.VisitValue("value", *r.value)
		}
	}
	v.VisitEnd(name, index, r)
	v.PostVisit(r)
}

func (r *Canonical) String() string {
	return visit.Sprint(r)
}

// ToBuilder returns a builder initialized with the contents of r.
func (r *Canonical) ToBuilder() *CanonicalBuilder {
	b := NewCanonicalBuilder()
	b.initBase(&r.element)
	b.value = r.value
	return b
}

// NewCanonical returns a canonical holding v.
func NewCanonical(v string) (*Canonical, error) {
	return NewCanonicalBuilder().Value(v).Build()
}

type CanonicalBuilder struct {
	elementBuilder[CanonicalBuilder]
	value *string
}

func NewCanonicalBuilder() *CanonicalBuilder {
	b := &CanonicalBuilder{}
	b.self = b
	return b
}

func (b *CanonicalBuilder) Value(v string) *CanonicalBuilder {
	b.value = &v
	return b
}

func (b *CanonicalBuilder) Build() (*Canonical, error) {
	base, errs := b.buildBase()
	if b.value != nil {
		errs = append(errs, validation.CheckUri(*b.value))
	}
	r := &Canonical{
		element: base,
		value:   b.value,
	}
	errs = append(errs, validation.RequireValueOrChildren(r))
	if err := validation.Join("canonical", errs...); err != nil {
		return nil, err
	}
	return r, nil
}

// Code is a string taken from a set of controlled strings defined elsewhere.
//
// Codes bound to a required value set of this package are represented by [Coded] instead.
type Code struct {
	element
	value *string
}

func (r *Code) TypeName() string {
	return "code"
}

func (r *Code) Value() (v string, ok bool) {
	if r.value == nil {
		return v, false
	}
	return *r.value, true
}

func (r *Code) HasValue() bool {
	return r.value != nil
}

func (r *Code) HasChildren() bool {
	return r.hasBaseChildren()
}

func (r *Code) Accept(name string, index int, v model.Visitor) {
	if !v.PreVisit(r) {
		return
	}
	v.VisitStart(name, index, r)
	if v.Visit(name, index, r) {
		r.visitBase(v)
		if r.value != nil {
			v.VisitValue("value", *r.value)
		}
	}
	v.VisitEnd(name, index, r)
	v.PostVisit(r)
}

func (r *Code) String() string {
	return visit.Sprint(r)
}

// ToBuilder returns a builder initialized with the contents of r.
func (r *Code) ToBuilder() *CodeBuilder {
	b := NewCodeBuilder()
	b.initBase(&r.element)
	b.value = r.value
	return b
}

// NewCode returns a code holding v.
func NewCode(v string) (*Code, error) {
	return NewCodeBuilder().Value(v).Build()
}

type CodeBuilder struct {
	elementBuilder[CodeBuilder]
	value *string
}

func NewCodeBuilder() *CodeBuilder {
	b := &CodeBuilder{}
	b.self = b
	return b
}

func (b *CodeBuilder) Value(v string) *CodeBuilder {
	b.value = &v
	return b
}

func (b *CodeBuilder) Build() (*Code, error) {
	base, errs := b.buildBase()
	if b.value != nil {
		errs = append(errs, validation.CheckCode(*b.value))
	}
	r := &Code{
		element: base,
		value:   b.value,
	}
	errs = append(errs, validation.RequireValueOrChildren(r))
	if err := validation.Join("code", errs...); err != nil {
		return nil, err
	}
	return r, nil
}

// Date is a date or partial date (year or year and month) without a time zone.
type Date struct {
	element
	value *string
}

func (r *Date) TypeName() string {
	return "date"
}

func (r *Date) Value() (v string, ok bool) {
	if r.value == nil {
		return v, false
	}
	return *r.value, true
}

func (r *Date) HasValue() bool {
	return r.value != nil
}

func (r *Date) HasChildren() bool {
	return r.hasBaseChildren()
}

func (r *Date) Accept(name string, index int, v model.Visitor) {
	if !v.PreVisit(r) {
		return
	}
	v.VisitStart(name, index, r)
	if v.Visit(name, index, r) {
		r.visitBase(v)
		if r.value != nil {
			v.VisitValue("value", *r.value)
		}
	}
	v.VisitEnd(name, index, r)
	v.PostVisit(r)
}

func (r *Date) String() string {
	return visit.Sprint(r)
}

// ToBuilder returns a builder initialized with the contents of r.
func (r *Date) ToBuilder() *DateBuilder {
	b := NewDateBuilder()
	b.initBase(&r.element)
	b.value = r.value
	return b
}

// NewDate returns a date holding v.
func NewDate(v string) (*Date, error) {
	return NewDateBuilder().Value(v).Build()
}

type DateBuilder struct {
	elementBuilder[DateBuilder]
	value *string
}

func NewDateBuilder() *DateBuilder {
	b := &DateBuilder{}
	b.self = b
	return b
}

func (b *DateBuilder) Value(v string) *DateBuilder {
	b.value = &v
	return b
}

func (b *DateBuilder) Build() (*Date, error) {
	base, errs := b.buildBase()
	if b.value != nil {
		errs = append(errs, validation.CheckDate(*b.value))
	}
	r := &Date{
		element: base,
		value:   b.value,
	}
	errs = append(errs, validation.RequireValueOrChildren(r))
	if err := validation.Join("date", errs...); err != nil {
		return nil, err
	}
	return r, nil
}

// DateTime is a date, date-time or partial date. If hours and minutes are specified, a time zone is
// required.
type DateTime struct {
	element
	value *string
}

func (r *DateTime) TypeName() string {
	return "dateTime"
}

func (r *DateTime) Value() (v string, ok bool) {
	if r.value == nil {
		return v, false
	}
	return *r.value, true
}

func (r *DateTime) HasValue() bool {
	return r.value != nil
}

func (r *DateTime) HasChildren() bool {
	return r.hasBaseChildren()
}

func (r *DateTime) Accept(name string, index int, v model.Visitor) {
	if !v.PreVisit(r) {
		return
	}
	v.VisitStart(name, index, r)
	if v.Visit(name, index, r) {
		r.visitBase(v)
		if r.value != nil {
			v.VisitValue("value", *r.value)
		}
	}
	v.VisitEnd(name, index, r)
	v.PostVisit(r)
}

func (r *DateTime) String() string {
	return visit.Sprint(r)
}

// ToBuilder returns a builder initialized with the contents of r.
func (r *DateTime) ToBuilder() *DateTimeBuilder {
	b := NewDateTimeBuilder()
	b.initBase(&r.element)
	b.value = r.value
	return b
}

// NewDateTime returns a dateTime holding v.
func NewDateTime(v string) (*DateTime, error) {
	return NewDateTimeBuilder().Value(v).Build()
}

type DateTimeBuilder struct {
	elementBuilder[DateTimeBuilder]
	value *string
}

func NewDateTimeBuilder() *DateTimeBuilder {
	b := &DateTimeBuilder{}
	b.self = b
	return b
}

func (b *DateTimeBuilder) Value(v string) *DateTimeBuilder {
	b.value = &v
	return b
}

func (b *DateTimeBuilder) Build() (*DateTime, error) {
	base, errs := b.buildBase()
	if b.value != nil {
		errs = append(errs, validation.CheckDateTime(*b.value))
	}
	r := &DateTime{
		element: base,
		value:   b.value,
	}
	errs = append(errs, validation.RequireValueOrChildren(r))
	if err := validation.Join("dateTime", errs...); err != nil {
		return nil, err
	}
	return r, nil
}

// Decimal is a rational number with implicit precision.
//
// The value keeps its scale, 1.0 and 1.00 are different values.
type Decimal struct {
	element
	value *apd.Decimal
}

func (r *Decimal) TypeName() string {
	return "decimal"
}

func (r *Decimal) Value() (v *apd.Decimal, ok bool) {
	if r.value == nil {
		return v, false
	}
	return copyDecimal(r.value), true
}

func (r *Decimal) HasValue() bool {
	return r.value != nil
}

func (r *Decimal) HasChildren() bool {
	return r.hasBaseChildren()
}

func (r *Decimal) Accept(name string, index int, v model.Visitor) {
	if !v.PreVisit(r) {
		return
	}
	v.VisitStart(name, index, r)
	if v.Visit(name, index, r) {
		r.visitBase(v)
		if r.value != nil {
			v.VisitValue("value", copyDecimal(r.value))
		}
	}
	v.VisitEnd(name, index, r)
	v.PostVisit(r)
}

func (r *Decimal) String() string {
	return visit.Sprint(r)
}

// ToBuilder returns a builder initialized with the contents of r.
func (r *Decimal) ToBuilder() *DecimalBuilder {
	b := NewDecimalBuilder()
	b.initBase(&r.element)
	b.value = r.value
	return b
}

// NewDecimal returns a decimal holding v.
func NewDecimal(v *apd.Decimal) (*Decimal, error) {
	return NewDecimalBuilder().Value(v).Build()
}

type DecimalBuilder struct {
	elementBuilder[DecimalBuilder]
	value *apd.Decimal
}

func NewDecimalBuilder() *DecimalBuilder {
	b := &DecimalBuilder{}
	b.self = b
	return b
}

func (b *DecimalBuilder) Value(v *apd.Decimal) *DecimalBuilder {
	b.value = copyDecimal(v)
	return b
}

func (b *DecimalBuilder) Build() (*Decimal, error) {
	base, errs := b.buildBase()
	if b.value != nil {
		errs = append(errs, validation.CheckDecimal(b.value))
	}
	r := &Decimal{
		element: base,
		value:   b.value,
	}
	errs = append(errs, validation.RequireValueOrChildren(r))
	if err := validation.Join("decimal", errs...); err != nil {
		return nil, err
	}
	return r, nil
}

// Id is any combination of letters, numerals, "-" and ".", with a length limit of 64 characters.
type Id struct {
	element
	value *string
}

func (r *Id) TypeName() string {
	return "id"
}

func (r *Id) Value() (v string, ok bool) {
	if r.value == nil {
		return v, false
	}
	return *r.value, true
}

func (r *Id) HasValue() bool {
	return r.value != nil
}

func (r *Id) HasChildren() bool {
	return r.hasBaseChildren()
}

func (r *Id) Accept(name string, index int, v model.Visitor) {
	if !v.PreVisit(r) {
		return
	}
	v.VisitStart(name, index, r)
	if v.Visit(name, index, r) {
		r.visitBase(v)
		if r.value != nil {
			v.VisitValue("value", *r.value)
		}
	}
	v.VisitEnd(name, index, r)
	v.PostVisit(r)
}

func (r *Id) String() string {
	return visit.Sprint(r)
}

// ToBuilder returns a builder initialized with the contents of r.
func (r *Id) ToBuilder() *IdBuilder {
	b := NewIdBuilder()
	b.initBase(&r.element)
	b.value = r.value
	return b
}

// NewId returns an id holding v.
func NewId(v string) (*Id, error) {
	return NewIdBuilder().Value(v).Build()
}

type IdBuilder struct {
	elementBuilder[IdBuilder]
	value *string
}

func NewIdBuilder() *IdBuilder {
	b := &IdBuilder{}
	b.self = b
	return b
}

func (b *IdBuilder) Value(v string) *IdBuilder {
	b.value = &v
	return b
}

func (b *IdBuilder) Build() (*Id, error) {
	base, errs := b.buildBase()
	if b.value != nil {
		errs = append(errs, validation.CheckId(*b.value))
	}
	r := &Id{
		element: base,
		value:   b.value,
	}
	errs = append(errs, validation.RequireValueOrChildren(r))
	if err := validation.Join("id", errs...); err != nil {
		return nil, err
	}
	return r, nil
}

// Instant is a point in time with at least second precision and a time zone.
type Instant struct {
	element
	value *string
}

func (r *Instant) TypeName() string {
	return "instant"
}

func (r *Instant) Value() (v string, ok bool) {
	if r.value == nil {
		return v, false
	}
	return *r.value, true
}

func (r *Instant) HasValue() bool {
	return r.value != nil
}

func (r *Instant) HasChildren() bool {
	return r.hasBaseChildren()
}

func (r *Instant) Accept(name string, index int, v model.Visitor) {
	if !v.PreVisit(r) {
		return
	}
	v.VisitStart(name, index, r)
	if v.Visit(name, index, r) {
		r.visitBase(v)
		if r.value != nil {
			v.VisitValue("value", *r.value)
		}
	}
	v.VisitEnd(name, index, r)
	v.PostVisit(r)
}

func (r *Instant) String() string {
	return visit.Sprint(r)
}

// ToBuilder returns a builder initialized with the contents of r.
func (r *Instant) ToBuilder() *InstantBuilder {
	b := NewInstantBuilder()
	b.initBase(&r.element)
	b.value = r.value
	return b
}

// NewInstant returns an instant holding v.
func NewInstant(v string) (*Instant, error) {
	return NewInstantBuilder().Value(v).Build()
}

type InstantBuilder struct {
	elementBuilder[InstantBuilder]
	value *string
}

func NewInstantBuilder() *InstantBuilder {
	b := &InstantBuilder{}
	b.self = b
	return b
}

func (b *InstantBuilder) Value(v string) *InstantBuilder {
	b.value = &v
	return b
}

func (b *InstantBuilder) Build() (*Instant, error) {
	base, errs := b.buildBase()
	if b.value != nil {
		errs = append(errs, validation.CheckInstant(*b.value))
	}
	r := &Instant{
		element: base,
		value:   b.value,
	}
	errs = append(errs, validation.RequireValueOrChildren(r))
	if err := validation.Join("instant", errs...); err != nil {
		return nil, err
	}
	return r, nil
}

// Integer is a signed 32 bit integer.
type Integer struct {
	element
	value *int32
}

func (r *Integer) TypeName() string {
	return "integer"
}

func (r *Integer) Value() (v int32, ok bool) {
	if r.value == nil {
		return v, false
	}
	return *r.value, true
}

func (r *Integer) HasValue() bool {
	return r.value != nil
}

func (r *Integer) HasChildren() bool {
	return r.hasBaseChildren()
}

func (r *Integer) Accept(name string, index int, v model.Visitor) {
	if !v.PreVisit(r) {
		return
	}
	v.VisitStart(name, index, r)
	if v.Visit(name, index, r) {
		r.visitBase(v)
		if r.value != nil {
			v.VisitValue("value", *r.value)
		}
	}
	v.VisitEnd(name, index, r)
	v.PostVisit(r)
}

func (r *Integer) String() string {
	return visit.Sprint(r)
}

// ToBuilder returns a builder initialized with the contents of r.
func (r *Integer) ToBuilder() *IntegerBuilder {
	b := NewIntegerBuilder()
	b.initBase(&r.element)
	b.value = r.value
	return b
}

// NewInteger returns an integer holding v.
func NewInteger(v int32) (*Integer, error) {
	return NewIntegerBuilder().Value(v).Build()
}

type IntegerBuilder struct {
	elementBuilder[IntegerBuilder]
	value *int32
}

func NewIntegerBuilder() *IntegerBuilder {
	b := &IntegerBuilder{}
	b.self = b
	return b
}

func (b *IntegerBuilder) Value(v int32) *IntegerBuilder {
	b.value = &v
	return b
}

func (b *IntegerBuilder) Build() (*Integer, error) {
	base, errs := b.buildBase()
	r := &Integer{
		element: base,
		value:   b.value,
	}
	errs = append(errs, validation.RequireValueOrChildren(r))
	if err := validation.Join("integer", errs...); err != nil {
		return nil, err
	}
	return r, nil
}

// Markdown is a string that may contain GitHub Flavored Markdown syntax.
type Markdown struct {
	element
	value *string
}

func (r *Markdown) TypeName() string {
	return "markdown"
}

func (r *Markdown) Value() (v string, ok bool) {
	if r.value == nil {
		return v, false
	}
	return *r.value, true
}

func (r *Markdown) HasValue() bool {
	return r.value != nil
}

func (r *Markdown) HasChildren() bool {
	return r.hasBaseChildren()
}

func (r *Markdown) Accept(name string, index int, v model.Visitor) {
	if !v.PreVisit(r) {
		return
	}
	v.VisitStart(name, index, r)
	if v.Visit(name, index, r) {
		r.visitBase(v)
		if r.value != nil {
			v.VisitValue("value", *r.value)
		}
	}
	v.VisitEnd(name, index, r)
	v.PostVisit(r)
}

func (r *Markdown) String() string {
	return visit.Sprint(r)
}

// ToBuilder returns a builder initialized with the contents of r.
func (r *Markdown) ToBuilder() *MarkdownBuilder {
	b := NewMarkdownBuilder()
	b.initBase(&r.element)
	b.value = r.value
	return b
}

// NewMarkdown returns a markdown holding v.
func NewMarkdown(v string) (*Markdown, error) {
	return NewMarkdownBuilder().Value(v).Build()
}

type MarkdownBuilder struct {
	elementBuilder[MarkdownBuilder]
	value *string
}

func NewMarkdownBuilder() *MarkdownBuilder {
	b := &MarkdownBuilder{}
	b.self = b
	return b
}

func (b *MarkdownBuilder) Value(v string) *MarkdownBuilder {
	b.value = &v
	return b
}

func (b *MarkdownBuilder) Build() (*Markdown, error) {
	base, errs := b.buildBase()
	if b.value != nil {
		errs = append(errs, validation.CheckString(*b.value))
	}
	r := &Markdown{
		element: base,
		value:   b.value,
	}
	errs = append(errs, validation.RequireValueOrChildren(r))
	if err := validation.Join("markdown", errs...); err != nil {
		return nil, err
	}
	return r, nil
}

// Oid is an OID represented as a URI (urn:oid:1.2.3).
type Oid struct {
	element
	value *string
}

func (r *Oid) TypeName() string {
	return "oid"
}

func (r *Oid) Value() (v string, ok bool) {
	if r.value == nil {
		return v, false
	}
	return *r.value, true
}

func (r *Oid) HasValue() bool {
	return r.value != nil
}

func (r *Oid) HasChildren() bool {
	return r.hasBaseChildren()
}

func (r *Oid) Accept(name string, index int, v model.Visitor) {
	if !v.PreVisit(r) {
		return
	}
	v.VisitStart(name, index, r)
	if v.Visit(name, index, r) {
		r.visitBase(v)
		if r.value != nil {
			v.VisitValue("value", *r.value)
		}
	}
	v.VisitEnd(name, index, r)
	v.PostVisit(r)
}

func (r *Oid) String() string {
	return visit.Sprint(r)
}

// ToBuilder returns a builder initialized with the contents of r.
func (r *Oid) ToBuilder() *OidBuilder {
	b := NewOidBuilder()
	b.initBase(&r.element)
	b.value = r.value
	return b
}

// NewOid returns an oid holding v.
func NewOid(v string) (*Oid, error) {
	return NewOidBuilder().Value(v).Build()
}

type OidBuilder struct {
	elementBuilder[OidBuilder]
	value *string
}

func NewOidBuilder() *OidBuilder {
	b := &OidBuilder{}
	b.self = b
	return b
}

func (b *OidBuilder) Value(v string) *OidBuilder {
	b.value = &v
	return b
}

func (b *OidBuilder) Build() (*Oid, error) {
	base, errs := b.buildBase()
	if b.value != nil {
		errs = append(errs, validation.CheckOid(*b.value))
	}
	r := &Oid{
		element: base,
		value:   b.value,
	}
	errs = append(errs, validation.RequireValueOrChildren(r))
	if err := validation.Join("oid", errs...); err != nil {
		return nil, err
	}
	return r, nil
}

// PositiveInt is an integer with a value that is positive (e.g. >0).
type PositiveInt struct {
	element
	value *uint32
}

func (r *PositiveInt) TypeName() string {
	return "positiveInt"
}

func (r *PositiveInt) Value() (v uint32, ok bool) {
	if r.value == nil {
		return v, false
	}
	return *r.value, true
}

func (r *PositiveInt) HasValue() bool {
	return r.value != nil
}

func (r *PositiveInt) HasChildren() bool {
	return r.hasBaseChildren()
}

func (r *PositiveInt) Accept(name string, index int, v model.Visitor) {
	if !v.PreVisit(r) {
		return
	}
	v.VisitStart(name, index, r)
	if v.Visit(name, index, r) {
		r.visitBase(v)
		if r.value != nil {
			v.VisitValue("value", *r.value)
		}
	}
	v.VisitEnd(name, index, r)
	v.PostVisit(r)
}

func (r *PositiveInt) String() string {
	return visit.Sprint(r)
}

// ToBuilder returns a builder initialized with the contents of r.
func (r *PositiveInt) ToBuilder() *PositiveIntBuilder {
	b := NewPositiveIntBuilder()
	b.initBase(&r.element)
	b.value = r.value
	return b
}

// NewPositiveInt returns a positiveInt holding v.
func NewPositiveInt(v uint32) (*PositiveInt, error) {
	return NewPositiveIntBuilder().Value(v).Build()
}

type PositiveIntBuilder struct {
	elementBuilder[PositiveIntBuilder]
	value *uint32
}

func NewPositiveIntBuilder() *PositiveIntBuilder {
	b := &PositiveIntBuilder{}
	b.self = b
	return b
}

func (b *PositiveIntBuilder) Value(v uint32) *PositiveIntBuilder {
	b.value = &v
	return b
}

func (b *PositiveIntBuilder) Build() (*PositiveInt, error) {
	base, errs := b.buildBase()
	if b.value != nil {
		errs = append(errs, validation.CheckPositiveInt(*b.value))
	}
	r := &PositiveInt{
		element: base,
		value:   b.value,
	}
	errs = append(errs, validation.RequireValueOrChildren(r))
	if err := validation.Join("positiveInt", errs...); err != nil {
		return nil, err
	}
	return r, nil
}

// String is a sequence of Unicode characters.
type String struct {
	element
	value *string
}

func (r *String) TypeName() string {
	return "string"
}

// Value returns the primitive value, ok is false if the element only carries extensions.
func (r *String) Value() (v string, ok bool) {
	if r.value == nil {
		return v, false
	}
	return *r.value, true
}

func (r *String) HasValue() bool {
	return r.value != nil
}

func (r *String) HasChildren() bool {
	return r.hasBaseChildren()
}

func (r *String) Accept(name string, index int, v model.Visitor) {
	if !v.PreVisit(r) {
		return
	}
	v.VisitStart(name, index, r)
	if v.Visit(name, index, r) {
		r.visitBase(v)
		if r.value != nil {
			v.VisitValue("value", *r.value)
		}
	}
	v.VisitEnd(name, index, r)
	v.PostVisit(r)
}

func (r *String) String() string {
	return visit.Sprint(r)
}

// ToBuilder returns a builder initialized with the contents of r.
func (r *String) ToBuilder() *StringBuilder {
	b := NewStringBuilder()
	b.initBase(&r.element)
	b.value = r.value
	return b
}

// NewString returns a string holding v.
func NewString(v string) (*String, error) {
	return NewStringBuilder().Value(v).Build()
}

type StringBuilder struct {
	elementBuilder[StringBuilder]
	value *string
}

func NewStringBuilder() *StringBuilder {
	b := &StringBuilder{}
	b.self = b
	return b
}

func (b *StringBuilder) Value(v string) *StringBuilder {
	b.value = &v
	return b
}

func (b *StringBuilder) Build() (*String, error) {
	base, errs := b.buildBase()
	if b.value != nil {
		errs = append(errs, validation.CheckString(*b.value))
	}
	r := &String{
		element: base,
		value:   b.value,
	}
	errs = append(errs, validation.RequireValueOrChildren(r))
	if err := validation.Join("string", errs...); err != nil {
		return nil, err
	}
	return r, nil
}

// Time is a time during the day, with no date specified.
type Time struct {
	element
	value *string
}

func (r *Time) TypeName() string {
	return "time"
}

func (r *Time) Value() (v string, ok bool) {
	if r.value == nil {
		return v, false
	}
	return *r.value, true
}

func (r *Time) HasValue() bool {
	return r.value != nil
}

func (r *Time) HasChildren() bool {
	return r.hasBaseChildren()
}

func (r *Time) Accept(name string, index int, v model.Visitor) {
	if !v.PreVisit(r) {
		return
	}
	v.VisitStart(name, index, r)
	if v.Visit(name, index, r) {
		r.visitBase(v)
		if r.value != nil {
			v.VisitValue("value", *r.value)
		}
	}
	v.VisitEnd(name, index, r)
	v.PostVisit(r)
}

func (r *Time) String() string {
	return visit.Sprint(r)
}

// ToBuilder returns a builder initialized with the contents of r.
func (r *Time) ToBuilder() *TimeBuilder {
	b := NewTimeBuilder()
	b.initBase(&r.element)
	b.value = r.value
	return b
}

// NewTime returns a time holding v.
func NewTime(v string) (*Time, error) {
	return NewTimeBuilder().Value(v).Build()
}

type TimeBuilder struct {
	elementBuilder[TimeBuilder]
	value *string
}

func NewTimeBuilder() *TimeBuilder {
	b := &TimeBuilder{}
	b.self = b
	return b
}

func (b *TimeBuilder) Value(v string) *TimeBuilder {
	b.value = &v
	return b
}

func (b *TimeBuilder) Build() (*Time, error) {
	base, errs := b.buildBase()
	if b.value != nil {
		errs = append(errs, validation.CheckTime(*b.value))
	}
	r := &Time{
		element: base,
		value:   b.value,
	}
	errs = append(errs, validation.RequireValueOrChildren(r))
	if err := validation.Join("time", errs...); err != nil {
		return nil, err
	}
	return r, nil
}

// UnsignedInt is an integer with a value that is not negative (e.g. >= 0).
type UnsignedInt struct {
	element
	value *uint32
}

func (r *UnsignedInt) TypeName() string {
	return "unsignedInt"
}

func (r *UnsignedInt) Value() (v uint32, ok bool) {
	if r.value == nil {
		return v, false
	}
	return *r.value, true
}

func (r *UnsignedInt) HasValue() bool {
	return r.value != nil
}

func (r *UnsignedInt) HasChildren() bool {
	return r.hasBaseChildren()
}

func (r *UnsignedInt) Accept(name string, index int, v model.Visitor) {
	if !v.PreVisit(r) {
		return
	}
	v.VisitStart(name, index, r)
	if v.Visit(name, index, r) {
		r.visitBase(v)
		if r.value != nil {
			v.VisitValue("value", *r.value)
		}
	}
	v.VisitEnd(name, index, r)
	v.PostVisit(r)
}

func (r *UnsignedInt) String() string {
	return visit.Sprint(r)
}

// ToBuilder returns a builder initialized with the contents of r.
func (r *UnsignedInt) ToBuilder() *UnsignedIntBuilder {
	b := NewUnsignedIntBuilder()
	b.initBase(&r.element)
	b.value = r.value
	return b
}

// NewUnsignedInt returns an unsignedInt holding v.
func NewUnsignedInt(v uint32) (*UnsignedInt, error) {
	return NewUnsignedIntBuilder().Value(v).Build()
}

type UnsignedIntBuilder struct {
	elementBuilder[UnsignedIntBuilder]
	value *uint32
}

func NewUnsignedIntBuilder() *UnsignedIntBuilder {
	b := &UnsignedIntBuilder{}
	b.self = b
	return b
}

func (b *UnsignedIntBuilder) Value(v uint32) *UnsignedIntBuilder {
	b.value = &v
	return b
}

func (b *UnsignedIntBuilder) Build() (*UnsignedInt, error) {
	base, errs := b.buildBase()
	if b.value != nil {
		errs = append(errs, validation.CheckUnsignedInt(*b.value))
	}
	r := &UnsignedInt{
		element: base,
		value:   b.value,
	}
	errs = append(errs, validation.RequireValueOrChildren(r))
	if err := validation.Join("unsignedInt", errs...); err != nil {
		return nil, err
	}
	return r, nil
}

// Uri is a string that identifies a resource.
type Uri struct {
	element
	value *string
}

func (r *Uri) TypeName() string {
	return "uri"
}

func (r *Uri) Value() (v string, ok bool) {
	if r.value == nil {
		return v, false
	}
	return *r.value, true
}

func (r *Uri) HasValue() bool {
	return r.value != nil
}

func (r *Uri) HasChildren() bool {
	return r.hasBaseChildren()
}

func (r *Uri) Accept(name string, index int, v model.Visitor) {
	if !v.PreVisit(r) {
		return
	}
	v.VisitStart(name, index, r)
	if v.Visit(name, index, r) {
		r.visitBase(v)
		if r.value != nil {
			v.VisitValue("value", *r.value)
		}
	}
	v.VisitEnd(name, index, r)
	v.PostVisit(r)
}

func (r *Uri) String() string {
	return visit.Sprint(r)
}

// ToBuilder returns a builder initialized with the contents of r.
func (r *Uri) ToBuilder() *UriBuilder {
	b := NewUriBuilder()
	b.initBase(&r.element)
	b.value = r.value
	return b
}

// NewUri returns an uri holding v.
func NewUri(v string) (*Uri, error) {
	return NewUriBuilder().Value(v).Build()
}

type UriBuilder struct {
	elementBuilder[UriBuilder]
	value *string
}

func NewUriBuilder() *UriBuilder {
	b := &UriBuilder{}
	b.self = b
	return b
}

func (b *UriBuilder) Value(v string) *UriBuilder {
	b.value = &v
	return b
}

func (b *UriBuilder) Build() (*Uri, error) {
	base, errs := b.buildBase()
	if b.value != nil {
		errs = append(errs, validation.CheckUri(*b.value))
	}
	r := &Uri{
		element: base,
		value:   b.value,
	}
	errs = append(errs, validation.RequireValueOrChildren(r))
	if err := validation.Join("uri", errs...); err != nil {
		return nil, err
	}
	return r, nil
}

// Url is a URI that is a literal reference.
type Url struct {
	element
	value *string
}

func (r *Url) TypeName() string {
	return "url"
}

func (r *Url) Value() (v string, ok bool) {
	if r.value == nil {
		return v, false
	}
	return *r.value, true
}

func (r *Url) HasValue() bool {
	return r.value != nil
}

func (r *Url) HasChildren() bool {
	return r.hasBaseChildren()
}

func (r *Url) Accept(name string, index int, v model.Visitor) {
	if !v.PreVisit(r) {
		return
	}
	v.VisitStart(name, index, r)
	if v.Visit(name, index, r) {
		r.visitBase(v)
		if r.value != nil {
			v.VisitValue("value", *r.value)
		}
	}
	v.VisitEnd(name, index, r)
	v.PostVisit(r)
}

func (r *Url) String() string {
	return visit.Sprint(r)
}

// ToBuilder returns a builder initialized with the contents of r.
func (r *Url) ToBuilder() *UrlBuilder {
	b := NewUrlBuilder()
	b.initBase(&r.element)
	b.value = r.value
	return b
}

// NewUrl returns an url holding v.
func NewUrl(v string) (*Url, error) {
	return NewUrlBuilder().Value(v).Build()
}

type UrlBuilder struct {
	elementBuilder[UrlBuilder]
	value *string
}

func NewUrlBuilder() *UrlBuilder {
	b := &UrlBuilder{}
	b.self = b
	return b
}

func (b *UrlBuilder) Value(v string) *UrlBuilder {
	b.value = &v
	return b
}

func (b *UrlBuilder) Build() (*Url, error) {
	base, errs := b.buildBase()
	if b.value != nil {
		errs = append(errs, validation.CheckUri(*b.value))
	}
	r := &Url{
		element: base,
		value:   b.value,
	}
	errs = append(errs, validation.RequireValueOrChildren(r))
	if err := validation.Join("url", errs...); err != nil {
		return nil, err
	}
	return r, nil
}

// Uuid is a UUID expressed as a URI (urn:uuid:...).
type Uuid struct {
	element
	value *string
}

func (r *Uuid) TypeName() string {
	return "uuid"
}

func (r *Uuid) Value() (v string, ok bool) {
	if r.value == nil {
		return v, false
	}
	return *r.value, true
}

func (r *Uuid) HasValue() bool {
	return r.value != nil
}

func (r *Uuid) HasChildren() bool {
	return r.hasBaseChildren()
}

func (r *Uuid) Accept(name string, index int, v model.Visitor) {
	if !v.PreVisit(r) {
		return
	}
	v.VisitStart(name, index, r)
	if v.Visit(name, index, r) {
		r.visitBase(v)
		if r.value != nil {
			v.VisitValue("value", *r.value)
		}
	}
	v.VisitEnd(name, index, r)
	v.PostVisit(r)
}

func (r *Uuid) String() string {
	return visit.Sprint(r)
}

// ToBuilder returns a builder initialized with the contents of r.
func (r *Uuid) ToBuilder() *UuidBuilder {
	b := NewUuidBuilder()
	b.initBase(&r.element)
	b.value = r.value
	return b
}

// NewUuid returns an uuid holding v.
func NewUuid(v string) (*Uuid, error) {
	return NewUuidBuilder().Value(v).Build()
}

type UuidBuilder struct {
	elementBuilder[UuidBuilder]
	value *string
}

func NewUuidBuilder() *UuidBuilder {
	b := &UuidBuilder{}
	b.self = b
	return b
}

func (b *UuidBuilder) Value(v string) *UuidBuilder {
	b.value = &v
	return b
}

func (b *UuidBuilder) Build() (*Uuid, error) {
	base, errs := b.buildBase()
	if b.value != nil {
		errs = append(errs, validation.CheckUuid(*b.value))
	}
	r := &Uuid{
		element: base,
		value:   b.value,
	}
	errs = append(errs, validation.RequireValueOrChildren(r))
	if err := validation.Join("uuid", errs...); err != nil {
		return nil, err
	}
	return r, nil
}

// Xhtml is the limited XHTML content of a narrative.
type Xhtml struct {
	element
	value *string
}

func (r *Xhtml) TypeName() string {
	return "xhtml"
}

func (r *Xhtml) Value() (v string, ok bool) {
	if r.value == nil {
		return v, false
	}
	return *r.value, true
}

func (r *Xhtml) HasValue() bool {
	return r.value != nil
}

func (r *Xhtml) HasChildren() bool {
	return r.hasBaseChildren()
}

func (r *Xhtml) Accept(name string, index int, v model.Visitor) {
	if !v.PreVisit(r) {
		return
	}
	v.VisitStart(name, index, r)
	if v.Visit(name, index, r) {
		r.visitBase(v)
		if r.value != nil {
			v.VisitValue("value", *r.value)
		}
	}
	v.VisitEnd(name, index, r)
	v.PostVisit(r)
}

func (r *Xhtml) String() string {
	return visit.Sprint(r)
}

// ToBuilder returns a builder initialized with the contents of r.
func (r *Xhtml) ToBuilder() *XhtmlBuilder {
	b := NewXhtmlBuilder()
	b.initBase(&r.element)
	b.value = r.value
	return b
}

// NewXhtml returns a xhtml holding v.
func NewXhtml(v string) (*Xhtml, error) {
	return NewXhtmlBuilder().Value(v).Build()
}

type XhtmlBuilder struct {
	elementBuilder[XhtmlBuilder]
	value *string
}

func NewXhtmlBuilder() *XhtmlBuilder {
	b := &XhtmlBuilder{}
	b.self = b
	return b
}

func (b *XhtmlBuilder) Value(v string) *XhtmlBuilder {
	b.value = &v
	return b
}

func (b *XhtmlBuilder) Build() (*Xhtml, error) {
	base, errs := b.buildBase()
	if b.value != nil {
		errs = append(errs, validation.CheckXhtml(*b.value))
	}
	r := &Xhtml{
		element: base,
		value:   b.value,
	}
	errs = append(errs, validation.RequireValueOrChildren(r))
	if err := validation.Join("xhtml", errs...); err != nil {
		return nil, err
	}
	return r, nil
}
