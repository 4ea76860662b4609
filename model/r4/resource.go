package r4

import (
	"fmt"

	"github.com/damedic/fhir-model-go/model"
	"github.com/damedic/fhir-model-go/model/validation"
	"github.com/damedic/fhir-model-go/utils/ptr"
)

// domainResource holds what all resources in this package have in common.
type domainResource struct {
	id                *string
	meta              *Meta
	implicitRules     *Uri
	language          *Code
	text              *Narrative
	contained         []model.Resource
	extension         []*Extension
	modifierExtension []*Extension
}

// Id returns the logical id of the resource.
func (r *domainResource) Id() (string, bool) {
	return ptr.Deref(r.id), r.id != nil
}

func (r *domainResource) ResourceId() (string, bool) {
	return r.Id()
}

// Meta returns metadata maintained by the infrastructure.
func (r *domainResource) Meta() *Meta {
	return r.meta
}

// ImplicitRules returns a reference to rules followed when the resource was constructed.
func (r *domainResource) ImplicitRules() *Uri {
	return r.implicitRules
}

func (r *domainResource) Language() *Code {
	return r.language
}

// Text returns the human readable summary of the resource.
func (r *domainResource) Text() *Narrative {
	return r.text
}

// Contained returns the inline resources.
func (r *domainResource) Contained() []model.Resource {
	return cloneList(r.contained)
}

func (r *domainResource) Extension() []*Extension {
	return cloneList(r.extension)
}

func (r *domainResource) ModifierExtension() []*Extension {
	return cloneList(r.modifierExtension)
}

func (r *domainResource) hasBaseChildren() bool {
	return r.id != nil ||
		r.meta != nil ||
		r.implicitRules != nil ||
		r.language != nil ||
		r.text != nil ||
		len(r.contained) > 0 ||
		len(r.extension) > 0 ||
		len(r.modifierExtension) > 0
}

func (r *domainResource) visitBase(v model.Visitor) {
	if r.id != nil {
		v.VisitValue("id", *r.id)
	}
	if r.meta != nil {
		r.meta.Accept("meta", -1, v)
	}
	if r.implicitRules != nil {
		r.implicitRules.Accept("implicitRules", -1, v)
	}
	if r.language != nil {
		r.language.Accept("language", -1, v)
	}
	if r.text != nil {
		r.text.Accept("text", -1, v)
	}
	model.AcceptList(v, "contained", "Resource", r.contained)
	model.AcceptList(v, "extension", "Extension", r.extension)
	model.AcceptList(v, "modifierExtension", "Extension", r.modifierExtension)
}

// domainResourceBuilder is embedded by resource builders, B is the concrete builder.
type domainResourceBuilder[B any] struct {
	self              *B
	id                *string
	meta              *Meta
	implicitRules     *Uri
	language          *Code
	text              *Narrative
	contained         []model.Resource
	extension         []*Extension
	modifierExtension []*Extension
	validation        []validation.Option
}

// Id sets the logical id.
func (b *domainResourceBuilder[B]) Id(id string) *B {
	b.id = ptr.To(id)
	return b.self
}

func (b *domainResourceBuilder[B]) Meta(v *Meta) *B {
	b.meta = v
	return b.self
}

func (b *domainResourceBuilder[B]) ImplicitRules(v *Uri) *B {
	b.implicitRules = v
	return b.self
}

func (b *domainResourceBuilder[B]) Language(v *Code) *B {
	b.language = v
	return b.self
}

func (b *domainResourceBuilder[B]) Text(v *Narrative) *B {
	b.text = v
	return b.self
}

// Contained appends inline resources.
func (b *domainResourceBuilder[B]) Contained(v ...model.Resource) *B {
	b.contained = append(b.contained, v...)
	return b.self
}

// SetContained replaces all inline resources.
func (b *domainResourceBuilder[B]) SetContained(v []model.Resource) *B {
	b.contained = cloneList(v)
	return b.self
}

func (b *domainResourceBuilder[B]) Extension(v ...*Extension) *B {
	b.extension = append(b.extension, v...)
	return b.self
}

func (b *domainResourceBuilder[B]) SetExtension(v []*Extension) *B {
	b.extension = cloneList(v)
	return b.self
}

func (b *domainResourceBuilder[B]) ModifierExtension(v ...*Extension) *B {
	b.modifierExtension = append(b.modifierExtension, v...)
	return b.self
}

func (b *domainResourceBuilder[B]) SetModifierExtension(v []*Extension) *B {
	b.modifierExtension = cloneList(v)
	return b.self
}

// Validation configures the optional checks run by Build.
func (b *domainResourceBuilder[B]) Validation(opts ...validation.Option) *B {
	b.validation = append(b.validation, opts...)
	return b.self
}

func (b *domainResourceBuilder[B]) options() validation.Options {
	return validation.NewOptions(b.validation...)
}

func (b *domainResourceBuilder[B]) initBase(r *domainResource) {
	b.id = r.id
	b.meta = r.meta
	b.implicitRules = r.implicitRules
	b.language = r.language
	b.text = r.text
	b.contained = cloneList(r.contained)
	b.extension = cloneList(r.extension)
	b.modifierExtension = cloneList(r.modifierExtension)
}

func (b *domainResourceBuilder[B]) buildBase() (domainResource, []error) {
	var errs []error
	if b.id != nil {
		errs = append(errs, validation.WithField("id", validation.CheckId(*b.id)))
	}
	for i, c := range b.contained {
		if c == nil {
			errs = append(errs, &validation.Error{
				Kind:   validation.ErrInvalidValue,
				Field:  "contained",
				Detail: fmt.Sprintf("nil element at index %d", i),
			})
		}
	}
	errs = append(errs,
		validation.RequireNoNilElements(b.extension, "extension"),
		validation.RequireNoNilElements(b.modifierExtension, "modifierExtension"),
	)
	return domainResource{
		id:                b.id,
		meta:              b.meta,
		implicitRules:     b.implicitRules,
		language:          b.language,
		text:              b.text,
		contained:         cloneList(b.contained),
		extension:         cloneList(b.extension),
		modifierExtension: cloneList(b.modifierExtension),
	}, errs
}
