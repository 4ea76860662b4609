package r4

import (
	"github.com/damedic/fhir-model-go/model"
	"github.com/damedic/fhir-model-go/model/validation"
	"github.com/damedic/fhir-model-go/model/visit"
)

// Extension is additional content defined by implementations.
//
// The url identifies the meaning of the extension, the value is any datatype.
// Complex extensions carry nested extensions instead of a value.
type Extension struct {
	element
	url   string
	value ExtensionValue
}

// ExtensionValue is the type of Extension.value[x], any datatype.
type ExtensionValue interface {
	model.Element
	isExtensionValue()
}

func (r *Extension) TypeName() string {
	return "Extension"
}

// Url returns the source of the definition of the extension.
func (r *Extension) Url() string {
	return r.url
}

func (r *Extension) Value() ExtensionValue {
	return r.value
}

func (r *Extension) HasChildren() bool {
	return r.hasBaseChildren() || r.value != nil
}

func (r *Extension) Accept(name string, index int, v model.Visitor) {
	if !v.PreVisit(r) {
		return
	}
	v.VisitStart(name, index, r)
	if v.Visit(name, index, r) {
		r.visitBase(v)
		v.VisitValue("url", r.url)
		model.AcceptChoice(v, "value", r.value)
	}
	v.VisitEnd(name, index, r)
	v.PostVisit(r)
}

func (r *Extension) String() string {
	return visit.Sprint(r)
}

// ToBuilder returns a builder initialized with the contents of r.
func (r *Extension) ToBuilder() *ExtensionBuilder {
	b := NewExtensionBuilder(r.url)
	b.initBase(&r.element)
	b.value = r.value
	return b
}

// ExtensionBuilder builds [Extension] nodes.
type ExtensionBuilder struct {
	elementBuilder[ExtensionBuilder]
	url   string
	value model.Element
}

// NewExtensionBuilder returns a builder for an extension defined at url.
func NewExtensionBuilder(url string) *ExtensionBuilder {
	b := &ExtensionBuilder{url: url}
	b.self = b
	return b
}

func (b *ExtensionBuilder) Url(url string) *ExtensionBuilder {
	b.url = url
	return b
}

func (b *ExtensionBuilder) Value(v ExtensionValue) *ExtensionBuilder {
	b.value = v
	return b
}

// ValueElement sets the value without static type check, Build fails if it is not a datatype.
func (b *ExtensionBuilder) ValueElement(v model.Element) *ExtensionBuilder {
	b.value = v
	return b
}

func (b *ExtensionBuilder) Build() (*Extension, error) {
	base, errs := b.buildBase()
	value, err := validation.ChoiceElement[ExtensionValue](b.value, "value", extensionValueTypes...)
	errs = append(errs, err)
	if b.url == "" {
		errs = append(errs, validation.RequireNonNull[string](nil, "url"))
	} else {
		errs = append(errs, validation.WithField("url", validation.CheckUri(b.url)))
	}
	r := &Extension{
		element: base,
		url:     b.url,
		value:   value,
	}
	errs = append(errs, validation.RequireValueOrChildren(r))
	if err := validation.Join("Extension", errs...); err != nil {
		return nil, err
	}
	return r, nil
}
