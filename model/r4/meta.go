package r4

import (
	"github.com/damedic/fhir-model-go/model"
	"github.com/damedic/fhir-model-go/model/validation"
	"github.com/damedic/fhir-model-go/model/visit"
)

// Meta is the metadata about a resource, maintained by the infrastructure.
type Meta struct {
	element
	versionId   *Id
	lastUpdated *Instant
	source      *Uri
	profile     []*Canonical
	security    []*Coding
	tag         []*Coding
}

func (r *Meta) TypeName() string {
	return "Meta"
}

// VersionId returns the version specific identifier, changed each time the content changes.
func (r *Meta) VersionId() *Id {
	return r.versionId
}

func (r *Meta) LastUpdated() *Instant {
	return r.lastUpdated
}

// Source identifies where the resource comes from.
func (r *Meta) Source() *Uri {
	return r.source
}

// Profile returns the profiles the resource claims to conform to.
func (r *Meta) Profile() []*Canonical {
	return cloneList(r.profile)
}

func (r *Meta) Security() []*Coding {
	return cloneList(r.security)
}

func (r *Meta) Tag() []*Coding {
	return cloneList(r.tag)
}

func (r *Meta) HasChildren() bool {
	return r.hasBaseChildren() ||
		r.versionId != nil ||
		r.lastUpdated != nil ||
		r.source != nil ||
		len(r.profile) > 0 ||
		len(r.security) > 0 ||
		len(r.tag) > 0
}

func (r *Meta) Accept(name string, index int, v model.Visitor) {
	if !v.PreVisit(r) {
		return
	}
	v.VisitStart(name, index, r)
	if v.Visit(name, index, r) {
		r.visitBase(v)
		if r.versionId != nil {
			r.versionId.Accept("versionId", -1, v)
		}
		if r.lastUpdated != nil {
			r.lastUpdated.Accept("lastUpdated", -1, v)
		}
		if r.source != nil {
			r.source.Accept("source", -1, v)
		}
		model.AcceptList(v, "profile", "canonical", r.profile)
		model.AcceptList(v, "security", "Coding", r.security)
		model.AcceptList(v, "tag", "Coding", r.tag)
	}
	v.VisitEnd(name, index, r)
	v.PostVisit(r)
}

func (r *Meta) String() string {
	return visit.Sprint(r)
}

// ToBuilder returns a builder initialized with the contents of r.
func (r *Meta) ToBuilder() *MetaBuilder {
	b := NewMetaBuilder()
	b.initBase(&r.element)
	b.versionId = r.versionId
	b.lastUpdated = r.lastUpdated
	b.source = r.source
	b.profile = cloneList(r.profile)
	b.security = cloneList(r.security)
	b.tag = cloneList(r.tag)
	return b
}

// MetaBuilder builds [Meta] nodes.
type MetaBuilder struct {
	elementBuilder[MetaBuilder]
	versionId   *Id
	lastUpdated *Instant
	source      *Uri
	profile     []*Canonical
	security    []*Coding
	tag         []*Coding
}

func NewMetaBuilder() *MetaBuilder {
	b := &MetaBuilder{}
	b.self = b
	return b
}

func (b *MetaBuilder) VersionId(v *Id) *MetaBuilder {
	b.versionId = v
	return b
}

func (b *MetaBuilder) LastUpdated(v *Instant) *MetaBuilder {
	b.lastUpdated = v
	return b
}

func (b *MetaBuilder) Source(v *Uri) *MetaBuilder {
	b.source = v
	return b
}

func (b *MetaBuilder) Profile(v ...*Canonical) *MetaBuilder {
	b.profile = append(b.profile, v...)
	return b
}

func (b *MetaBuilder) SetProfile(v []*Canonical) *MetaBuilder {
	b.profile = cloneList(v)
	return b
}

func (b *MetaBuilder) Security(v ...*Coding) *MetaBuilder {
	b.security = append(b.security, v...)
	return b
}

func (b *MetaBuilder) SetSecurity(v []*Coding) *MetaBuilder {
	b.security = cloneList(v)
	return b
}

func (b *MetaBuilder) Tag(v ...*Coding) *MetaBuilder {
	b.tag = append(b.tag, v...)
	return b
}

func (b *MetaBuilder) SetTag(v []*Coding) *MetaBuilder {
	b.tag = cloneList(v)
	return b
}

// Build validates the builder contents and returns the node.
func (b *MetaBuilder) Build() (*Meta, error) {
	base, errs := b.buildBase()
	errs = append(errs,
		validation.RequireNoNilElements(b.profile, "profile"),
		validation.RequireNoNilElements(b.security, "security"),
		validation.RequireNoNilElements(b.tag, "tag"),
	)
	r := &Meta{
		element:     base,
		versionId:   b.versionId,
		lastUpdated: b.lastUpdated,
		source:      b.source,
		profile:     cloneList(b.profile),
		security:    cloneList(b.security),
		tag:         cloneList(b.tag),
	}
	errs = append(errs, validation.RequireValueOrChildren(r))
	if err := validation.Join("Meta", errs...); err != nil {
		return nil, err
	}
	return r, nil
}
