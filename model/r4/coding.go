package r4

import (
	"github.com/damedic/fhir-model-go/model"
	"github.com/damedic/fhir-model-go/model/validation"
	"github.com/damedic/fhir-model-go/model/visit"
)

// Coding is a reference to a code defined by a terminology system.
type Coding struct {
	element
	system       *Uri
	version      *String
	code         *Code
	display      *String
	userSelected *Boolean
}

func (r *Coding) TypeName() string {
	return "Coding"
}

// System is the identity of the terminology system.
func (r *Coding) System() *Uri {
	return r.system
}

func (r *Coding) Version() *String {
	return r.version
}

func (r *Coding) Code() *Code {
	return r.code
}

func (r *Coding) Display() *String {
	return r.display
}

// UserSelected tells whether this coding was chosen directly by the user.
func (r *Coding) UserSelected() *Boolean {
	return r.userSelected
}

func (r *Coding) HasChildren() bool {
	return r.hasBaseChildren() ||
		r.system != nil ||
		r.version != nil ||
		r.code != nil ||
		r.display != nil ||
		r.userSelected != nil
}

func (r *Coding) Accept(name string, index int, v model.Visitor) {
	if !v.PreVisit(r) {
		return
	}
	v.VisitStart(name, index, r)
	if v.Visit(name, index, r) {
		r.visitBase(v)
		if r.system != nil {
			r.system.Accept("system", -1, v)
		}
		if r.version != nil {
			r.version.Accept("version", -1, v)
		}
		if r.code != nil {
			r.code.Accept("code", -1, v)
		}
		if r.display != nil {
			r.display.Accept("display", -1, v)
		}
		if r.userSelected != nil {
			r.userSelected.Accept("userSelected", -1, v)
		}
	}
	v.VisitEnd(name, index, r)
	v.PostVisit(r)
}

func (r *Coding) String() string {
	return visit.Sprint(r)
}

// ToBuilder returns a builder initialized with the contents of r.
func (r *Coding) ToBuilder() *CodingBuilder {
	b := NewCodingBuilder()
	b.initBase(&r.element)
	b.system = r.system
	b.version = r.version
	b.code = r.code
	b.display = r.display
	b.userSelected = r.userSelected
	return b
}

// CodingBuilder builds [Coding] nodes.
type CodingBuilder struct {
	elementBuilder[CodingBuilder]
	system       *Uri
	version      *String
	code         *Code
	display      *String
	userSelected *Boolean
}

func NewCodingBuilder() *CodingBuilder {
	b := &CodingBuilder{}
	b.self = b
	return b
}

func (b *CodingBuilder) System(v *Uri) *CodingBuilder {
	b.system = v
	return b
}

func (b *CodingBuilder) Version(v *String) *CodingBuilder {
	b.version = v
	return b
}

func (b *CodingBuilder) Code(v *Code) *CodingBuilder {
	b.code = v
	return b
}

func (b *CodingBuilder) Display(v *String) *CodingBuilder {
	b.display = v
	return b
}

func (b *CodingBuilder) UserSelected(v *Boolean) *CodingBuilder {
	b.userSelected = v
	return b
}

// Build validates the builder contents and returns the node.
func (b *CodingBuilder) Build() (*Coding, error) {
	base, errs := b.buildBase()
	r := &Coding{
		element:      base,
		system:       b.system,
		version:      b.version,
		code:         b.code,
		display:      b.display,
		userSelected: b.userSelected,
	}
	errs = append(errs, validation.RequireValueOrChildren(r))
	if err := validation.Join("Coding", errs...); err != nil {
		return nil, err
	}
	return r, nil
}

// CodeableConcept is a concept that may be defined by a formal reference to a terminology or
// ontology or may be provided by text.
type CodeableConcept struct {
	element
	coding []*Coding
	text   *String
}

func (r *CodeableConcept) TypeName() string {
	return "CodeableConcept"
}

func (r *CodeableConcept) Coding() []*Coding {
	return cloneList(r.coding)
}

// Text is the plain text representation of the concept.
func (r *CodeableConcept) Text() *String {
	return r.text
}

func (r *CodeableConcept) HasChildren() bool {
	return r.hasBaseChildren() ||
		len(r.coding) > 0 ||
		r.text != nil
}

func (r *CodeableConcept) Accept(name string, index int, v model.Visitor) {
	if !v.PreVisit(r) {
		return
	}
	v.VisitStart(name, index, r)
	if v.Visit(name, index, r) {
		r.visitBase(v)
		model.AcceptList(v, "coding", "Coding", r.coding)
		if r.text != nil {
			r.text.Accept("text", -1, v)
		}
	}
	v.VisitEnd(name, index, r)
	v.PostVisit(r)
}

func (r *CodeableConcept) String() string {
	return visit.Sprint(r)
}

// ToBuilder returns a builder initialized with the contents of r.
func (r *CodeableConcept) ToBuilder() *CodeableConceptBuilder {
	b := NewCodeableConceptBuilder()
	b.initBase(&r.element)
	b.coding = cloneList(r.coding)
	b.text = r.text
	return b
}

// CodeableConceptBuilder builds [CodeableConcept] nodes.
type CodeableConceptBuilder struct {
	elementBuilder[CodeableConceptBuilder]
	coding []*Coding
	text   *String
}

func NewCodeableConceptBuilder() *CodeableConceptBuilder {
	b := &CodeableConceptBuilder{}
	b.self = b
	return b
}

func (b *CodeableConceptBuilder) Coding(v ...*Coding) *CodeableConceptBuilder {
	b.coding = append(b.coding, v...)
	return b
}

func (b *CodeableConceptBuilder) SetCoding(v []*Coding) *CodeableConceptBuilder {
	b.coding = cloneList(v)
	return b
}

func (b *CodeableConceptBuilder) Text(v *String) *CodeableConceptBuilder {
	b.text = v
	return b
}

// Build validates the builder contents and returns the node.
func (b *CodeableConceptBuilder) Build() (*CodeableConcept, error) {
	base, errs := b.buildBase()
	errs = append(errs,
		validation.RequireNoNilElements(b.coding, "coding"),
	)
	r := &CodeableConcept{
		element: base,
		coding:  cloneList(b.coding),
		text:    b.text,
	}
	errs = append(errs, validation.RequireValueOrChildren(r))
	if err := validation.Join("CodeableConcept", errs...); err != nil {
		return nil, err
	}
	return r, nil
}
