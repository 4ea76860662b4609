package r4

import (
	"github.com/damedic/fhir-model-go/model"
	"github.com/damedic/fhir-model-go/model/validation"
	"github.com/damedic/fhir-model-go/utils/ptr"
)

// element holds what every element has in common.
type element struct {
	id        *string
	extension []*Extension
}

// Id returns the id used for references between elements within a resource.
func (r *element) Id() (string, bool) {
	return ptr.Deref(r.id), r.id != nil
}

// Extension returns additional content defined by implementations.
func (r *element) Extension() []*Extension {
	return cloneList(r.extension)
}

func (r *element) hasBaseChildren() bool {
	return r.id != nil || len(r.extension) > 0
}

func (r *element) visitBase(v model.Visitor) {
	if r.id != nil {
		v.VisitValue("id", *r.id)
	}
	model.AcceptList(v, "extension", "Extension", r.extension)
}

// backboneElement is the base of elements nested inside resources and of some datatypes.
type backboneElement struct {
	element
	modifierExtension []*Extension
}

// ModifierExtension returns extensions that change the meaning of the element.
func (r *backboneElement) ModifierExtension() []*Extension {
	return cloneList(r.modifierExtension)
}

func (r *backboneElement) hasBaseChildren() bool {
	return r.element.hasBaseChildren() || len(r.modifierExtension) > 0
}

func (r *backboneElement) visitBase(v model.Visitor) {
	r.element.visitBase(v)
	model.AcceptList(v, "modifierExtension", "Extension", r.modifierExtension)
}

// elementBuilder is embedded by all element builders, B is the concrete builder.
type elementBuilder[B any] struct {
	self       *B
	id         *string
	extension  []*Extension
	validation []validation.Option
}

// Id sets the element id.
func (b *elementBuilder[B]) Id(id string) *B {
	b.id = ptr.To(id)
	return b.self
}

// Extension appends extensions.
func (b *elementBuilder[B]) Extension(v ...*Extension) *B {
	b.extension = append(b.extension, v...)
	return b.self
}

// SetExtension replaces all extensions.
func (b *elementBuilder[B]) SetExtension(v []*Extension) *B {
	b.extension = cloneList(v)
	return b.self
}

// Validation configures the optional checks run by Build.
func (b *elementBuilder[B]) Validation(opts ...validation.Option) *B {
	b.validation = append(b.validation, opts...)
	return b.self
}

func (b *elementBuilder[B]) options() validation.Options {
	return validation.NewOptions(b.validation...)
}

func (b *elementBuilder[B]) initBase(e *element) {
	b.id = e.id
	b.extension = cloneList(e.extension)
}

func (b *elementBuilder[B]) buildBase() (element, []error) {
	errs := []error{validation.RequireNoNilElements(b.extension, "extension")}
	return element{
		id:        b.id,
		extension: cloneList(b.extension),
	}, errs
}

// backboneElementBuilder is embedded by builders of backbone elements, B is the concrete builder.
type backboneElementBuilder[B any] struct {
	elementBuilder[B]
	modifierExtension []*Extension
}

// ModifierExtension appends modifier extensions.
func (b *backboneElementBuilder[B]) ModifierExtension(v ...*Extension) *B {
	b.modifierExtension = append(b.modifierExtension, v...)
	return b.self
}

// SetModifierExtension replaces all modifier extensions.
func (b *backboneElementBuilder[B]) SetModifierExtension(v []*Extension) *B {
	b.modifierExtension = cloneList(v)
	return b.self
}

func (b *backboneElementBuilder[B]) initBase(e *backboneElement) {
	b.elementBuilder.initBase(&e.element)
	b.modifierExtension = cloneList(e.modifierExtension)
}

func (b *backboneElementBuilder[B]) buildBase() (backboneElement, []error) {
	base, errs := b.elementBuilder.buildBase()
	errs = append(errs, validation.RequireNoNilElements(b.modifierExtension, "modifierExtension"))
	return backboneElement{
		element:           base,
		modifierExtension: cloneList(b.modifierExtension),
	}, errs
}

// cloneList copies s, the result is never nil.
func cloneList[E any](s []E) []E {
	c := make([]E, len(s))
	copy(c, s)
	return c
}

// Must returns v or panics if err is not nil.
//
// Use it for nodes known to be valid, e.g. in tests:
//
//	s := r4.Must(r4.NewString("Hello"))
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
