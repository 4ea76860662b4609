package r4

import (
	"fmt"
	"slices"

	"github.com/damedic/fhir-model-go/model"
	"github.com/damedic/fhir-model-go/model/validation"
	"github.com/damedic/fhir-model-go/model/visit"
	"github.com/damedic/fhir-model-go/utils/ptr"
)

// Coded is a code primitive restricted to the codes of a required value set.
//
// V is the string type enumerating the codes, e.g. [AdverseEventActuality].
// Values of V are trusted to be members of the value set, use the Parse functions
// (e.g. [ParseAdverseEventActuality]) to convert unchecked input.
type Coded[V ~string] struct {
	element
	value *V
}

// NewCoded returns a code holding v.
func NewCoded[V ~string](v V) *Coded[V] {
	return &Coded[V]{value: &v}
}

func (r *Coded[V]) TypeName() string {
	return "code"
}

// Value returns the code, ok is false if the element only carries extensions.
func (r *Coded[V]) Value() (v V, ok bool) {
	return ptr.Deref(r.value), r.value != nil
}

func (r *Coded[V]) HasValue() bool {
	return r.value != nil
}

func (r *Coded[V]) HasChildren() bool {
	return r.hasBaseChildren()
}

func (r *Coded[V]) Accept(name string, index int, v model.Visitor) {
	if !v.PreVisit(r) {
		return
	}
	v.VisitStart(name, index, r)
	if v.Visit(name, index, r) {
		r.visitBase(v)
		if r.value != nil {
			v.VisitValue("value", string(*r.value))
		}
	}
	v.VisitEnd(name, index, r)
	v.PostVisit(r)
}

func (r *Coded[V]) isExtensionValue() {}

func (r *Coded[V]) String() string {
	return visit.Sprint(r)
}

// ToBuilder returns a builder initialized with the contents of r.
func (r *Coded[V]) ToBuilder() *CodedBuilder[V] {
	return &CodedBuilder[V]{
		id:        r.id,
		extension: cloneList(r.extension),
		value:     r.value,
	}
}

// CodedBuilder builds [Coded] nodes, use it to attach an id or extensions to a code.
type CodedBuilder[V ~string] struct {
	id        *string
	extension []*Extension
	value     *V
}

func NewCodedBuilder[V ~string]() *CodedBuilder[V] {
	return &CodedBuilder[V]{}
}

func (b *CodedBuilder[V]) Id(id string) *CodedBuilder[V] {
	b.id = ptr.To(id)
	return b
}

func (b *CodedBuilder[V]) Extension(v ...*Extension) *CodedBuilder[V] {
	b.extension = append(b.extension, v...)
	return b
}

func (b *CodedBuilder[V]) SetExtension(v []*Extension) *CodedBuilder[V] {
	b.extension = cloneList(v)
	return b
}

func (b *CodedBuilder[V]) Value(v V) *CodedBuilder[V] {
	b.value = ptr.To(v)
	return b
}

func (b *CodedBuilder[V]) Build() (*Coded[V], error) {
	errs := []error{validation.RequireNoNilElements(b.extension, "extension")}
	if b.value != nil {
		errs = append(errs, validation.CheckCode(string(*b.value)))
	}
	r := &Coded[V]{
		element: element{
			id:        b.id,
			extension: cloneList(b.extension),
		},
		value: b.value,
	}
	errs = append(errs, validation.RequireValueOrChildren(r))
	if err := validation.Join("code", errs...); err != nil {
		return nil, err
	}
	return r, nil
}

func parseCoded[V ~string](valueSet string, s string, values []V) (*Coded[V], error) {
	if !slices.Contains(values, V(s)) {
		return nil, validation.Join("code", &validation.Error{
			Kind:   validation.ErrInvalidValue,
			Field:  "value",
			Detail: fmt.Sprintf("%q is not a code of value set %s", s, valueSet),
		})
	}
	return NewCoded(V(s)), nil
}
