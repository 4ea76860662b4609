package r4

import (
	"github.com/damedic/fhir-model-go/model"
	"github.com/damedic/fhir-model-go/model/validation"
	"github.com/damedic/fhir-model-go/model/visit"
)

// Annotation is a text note which also contains information about who made the statement and when.
type Annotation struct {
	element
	author AnnotationAuthor
	time   *DateTime
	text   *Markdown
}

// AnnotationAuthor is the type of Annotation.author[x]: one of Reference, string.
type AnnotationAuthor interface {
	model.Element
	isAnnotationAuthor()
}

func (r *Reference) isAnnotationAuthor() {}
func (r *String) isAnnotationAuthor()    {}

func (r *Annotation) TypeName() string {
	return "Annotation"
}

func (r *Annotation) Author() AnnotationAuthor {
	return r.author
}

// Time returns when the annotation was made.
func (r *Annotation) Time() *DateTime {
	return r.time
}

func (r *Annotation) Text() *Markdown {
	return r.text
}

func (r *Annotation) HasChildren() bool {
	return r.hasBaseChildren() ||
		r.author != nil ||
		r.time != nil ||
		r.text != nil
}

func (r *Annotation) Accept(name string, index int, v model.Visitor) {
	if !v.PreVisit(r) {
		return
	}
	v.VisitStart(name, index, r)
	if v.Visit(name, index, r) {
		r.visitBase(v)
		model.AcceptChoice(v, "author", r.author)
		if r.time != nil {
			r.time.Accept("time", -1, v)
		}
		if r.text != nil {
			r.text.Accept("text", -1, v)
		}
	}
	v.VisitEnd(name, index, r)
	v.PostVisit(r)
}

func (r *Annotation) String() string {
	return visit.Sprint(r)
}

// ToBuilder returns a builder initialized with the contents of r.
func (r *Annotation) ToBuilder() *AnnotationBuilder {
	b := NewAnnotationBuilder(r.text)
	b.initBase(&r.element)
	b.author = r.author
	b.time = r.time
	return b
}

// AnnotationBuilder builds [Annotation] nodes.
type AnnotationBuilder struct {
	elementBuilder[AnnotationBuilder]
	author model.Element
	time   *DateTime
	text   *Markdown
}

// NewAnnotationBuilder returns a builder for [Annotation] with the required elements set.
func NewAnnotationBuilder(text *Markdown) *AnnotationBuilder {
	b := &AnnotationBuilder{
		text: text,
	}
	b.self = b
	return b
}

func (b *AnnotationBuilder) Author(v AnnotationAuthor) *AnnotationBuilder {
	b.author = v
	return b
}

// AuthorElement sets author without static type check, Build fails unless it is one of Reference, string.
func (b *AnnotationBuilder) AuthorElement(v model.Element) *AnnotationBuilder {
	b.author = v
	return b
}

func (b *AnnotationBuilder) Time(v *DateTime) *AnnotationBuilder {
	b.time = v
	return b
}

func (b *AnnotationBuilder) Text(v *Markdown) *AnnotationBuilder {
	b.text = v
	return b
}

// Build validates the builder contents and returns the node.
func (b *AnnotationBuilder) Build() (*Annotation, error) {
	opts := b.options()
	base, errs := b.buildBase()
	author, err := validation.ChoiceElement[AnnotationAuthor](b.author, "author", "Reference", "string")
	errs = append(errs, err)
	errs = append(errs,
		validation.RequireNonNull(b.text, "text"),
	)
	if opts.ReferenceTypes {
		if ref, ok := author.(*Reference); ok {
			errs = append(errs, checkReference(ref, "author", "Practitioner", "Patient", "RelatedPerson", "Organization"))
		}
	}
	r := &Annotation{
		element: base,
		author:  author,
		time:    b.time,
		text:    b.text,
	}
	errs = append(errs, validation.RequireValueOrChildren(r))
	if err := validation.Join("Annotation", errs...); err != nil {
		return nil, err
	}
	return r, nil
}
