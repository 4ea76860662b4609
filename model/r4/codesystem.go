package r4

import (
	"github.com/damedic/fhir-model-go/model"
	"github.com/damedic/fhir-model-go/model/validation"
	"github.com/damedic/fhir-model-go/model/visit"
)

// CodeSystem declares the existence of and describes a code system or code system supplement and
// its key properties, and optionally defines a part or all of its content.
type CodeSystem struct {
	domainResource
	url              *Uri
	identifier       []*Identifier
	version          *String
	name             *String
	title            *String
	status           *Coded[PublicationStatus]
	experimental     *Boolean
	date             *DateTime
	publisher        *String
	contact          []*ContactDetail
	description      *Markdown
	useContext       []*UsageContext
	jurisdiction     []*CodeableConcept
	purpose          *Markdown
	copyright        *Markdown
	caseSensitive    *Boolean
	valueSet         *Canonical
	hierarchyMeaning *Coded[CodeSystemHierarchyMeaning]
	compositional    *Boolean
	versionNeeded    *Boolean
	content          *Coded[CodeSystemContentMode]
	supplements      *Canonical
	count            *UnsignedInt
	filter           []*CodeSystemFilter
	property         []*CodeSystemProperty
	concept          []*CodeSystemConcept
}

func (r *CodeSystem) TypeName() string {
	return "CodeSystem"
}

func (r *CodeSystem) ResourceType() string {
	return "CodeSystem"
}

// Url is the canonical identifier for the code system.
func (r *CodeSystem) Url() *Uri {
	return r.url
}

func (r *CodeSystem) Identifier() []*Identifier {
	return cloneList(r.identifier)
}

func (r *CodeSystem) Version() *String {
	return r.version
}

// Name is a computer friendly name.
func (r *CodeSystem) Name() *String {
	return r.name
}

func (r *CodeSystem) Title() *String {
	return r.title
}

func (r *CodeSystem) Status() *Coded[PublicationStatus] {
	return r.status
}

func (r *CodeSystem) Experimental() *Boolean {
	return r.experimental
}

func (r *CodeSystem) Date() *DateTime {
	return r.date
}

func (r *CodeSystem) Publisher() *String {
	return r.publisher
}

func (r *CodeSystem) Contact() []*ContactDetail {
	return cloneList(r.contact)
}

func (r *CodeSystem) Description() *Markdown {
	return r.description
}

func (r *CodeSystem) UseContext() []*UsageContext {
	return cloneList(r.useContext)
}

func (r *CodeSystem) Jurisdiction() []*CodeableConcept {
	return cloneList(r.jurisdiction)
}

func (r *CodeSystem) Purpose() *Markdown {
	return r.purpose
}

func (r *CodeSystem) Copyright() *Markdown {
	return r.copyright
}

func (r *CodeSystem) CaseSensitive() *Boolean {
	return r.caseSensitive
}

// ValueSet is the canonical reference to the value set with the entire code system.
func (r *CodeSystem) ValueSet() *Canonical {
	return r.valueSet
}

func (r *CodeSystem) HierarchyMeaning() *Coded[CodeSystemHierarchyMeaning] {
	return r.hierarchyMeaning
}

func (r *CodeSystem) Compositional() *Boolean {
	return r.compositional
}

func (r *CodeSystem) VersionNeeded() *Boolean {
	return r.versionNeeded
}

func (r *CodeSystem) Content() *Coded[CodeSystemContentMode] {
	return r.content
}

func (r *CodeSystem) Supplements() *Canonical {
	return r.supplements
}

// Count is the total number of concepts in the code system.
func (r *CodeSystem) Count() *UnsignedInt {
	return r.count
}

func (r *CodeSystem) Filter() []*CodeSystemFilter {
	return cloneList(r.filter)
}

func (r *CodeSystem) Property() []*CodeSystemProperty {
	return cloneList(r.property)
}

func (r *CodeSystem) Concept() []*CodeSystemConcept {
	return cloneList(r.concept)
}

func (r *CodeSystem) HasChildren() bool {
	return r.hasBaseChildren() ||
		r.url != nil ||
		len(r.identifier) > 0 ||
		r.version != nil ||
		r.name != nil ||
		r.title != nil ||
		r.status != nil ||
		r.experimental != nil ||
		r.date != nil ||
		r.publisher != nil ||
		len(r.contact) > 0 ||
		r.description != nil ||
		len(r.useContext) > 0 ||
		len(r.jurisdiction) > 0 ||
		r.purpose != nil ||
		r.copyright != nil ||
		r.caseSensitive != nil ||
		r.valueSet != nil ||
		r.hierarchyMeaning != nil ||
		r.compositional != nil ||
		r.versionNeeded != nil ||
		r.content != nil ||
		r.supplements != nil ||
		r.count != nil ||
		len(r.filter) > 0 ||
		len(r.property) > 0 ||
		len(r.concept) > 0
}

func (r *CodeSystem) Accept(name string, index int, v model.Visitor) {
	if !v.PreVisit(r) {
		return
	}
	v.VisitStart(name, index, r)
	if v.Visit(name, index, r) {
		r.visitBase(v)
		if r.url != nil {
			r.url.Accept("url", -1, v)
		}
		model.AcceptList(v, "identifier", "Identifier", r.identifier)
		if r.version != nil {
			r.version.Accept("version", -1, v)
		}
		if r.name != nil {
			r.name.Accept("name", -1, v)
		}
		if r.title != nil {
			r.title.Accept("title", -1, v)
		}
		if r.status != nil {
			r.status.Accept("status", -1, v)
		}
		if r.experimental != nil {
			r.experimental.Accept("experimental", -1, v)
		}
		if r.date != nil {
			r.date.Accept("date", -1, v)
		}
		if r.publisher != nil {
			r.publisher.Accept("publisher", -1, v)
		}
		model.AcceptList(v, "contact", "ContactDetail", r.contact)
		if r.description != nil {
			r.description.Accept("description", -1, v)
		}
		model.AcceptList(v, "useContext", "UsageContext", r.useContext)
		model.AcceptList(v, "jurisdiction", "CodeableConcept", r.jurisdiction)
		if r.purpose != nil {
			r.purpose.Accept("purpose", -1, v)
		}
		if r.copyright != nil {
			r.copyright.Accept("copyright", -1, v)
		}
		if r.caseSensitive != nil {
			r.caseSensitive.Accept("caseSensitive", -1, v)
		}
		if r.valueSet != nil {
			r.valueSet.Accept("valueSet", -1, v)
		}
		if r.hierarchyMeaning != nil {
			r.hierarchyMeaning.Accept("hierarchyMeaning", -1, v)
		}
		if r.compositional != nil {
			r.compositional.Accept("compositional", -1, v)
		}
		if r.versionNeeded != nil {
			r.versionNeeded.Accept("versionNeeded", -1, v)
		}
		if r.content != nil {
			r.content.Accept("content", -1, v)
		}
		if r.supplements != nil {
			r.supplements.Accept("supplements", -1, v)
		}
		if r.count != nil {
			r.count.Accept("count", -1, v)
		}
		model.AcceptList(v, "filter", "CodeSystem.filter", r.filter)
		model.AcceptList(v, "property", "CodeSystem.property", r.property)
		model.AcceptList(v, "concept", "CodeSystem.concept", r.concept)
	}
	v.VisitEnd(name, index, r)
	v.PostVisit(r)
}

func (r *CodeSystem) String() string {
	return visit.Sprint(r)
}

// ToBuilder returns a builder initialized with the contents of r.
func (r *CodeSystem) ToBuilder() *CodeSystemBuilder {
	b := NewCodeSystemBuilder(r.status, r.content)
	b.initBase(&r.domainResource)
	b.url = r.url
	b.identifier = cloneList(r.identifier)
	b.version = r.version
	b.name = r.name
	b.title = r.title
	b.experimental = r.experimental
	b.date = r.date
	b.publisher = r.publisher
	b.contact = cloneList(r.contact)
	b.description = r.description
	b.useContext = cloneList(r.useContext)
	b.jurisdiction = cloneList(r.jurisdiction)
	b.purpose = r.purpose
	b.copyright = r.copyright
	b.caseSensitive = r.caseSensitive
	b.valueSet = r.valueSet
	b.hierarchyMeaning = r.hierarchyMeaning
	b.compositional = r.compositional
	b.versionNeeded = r.versionNeeded
	b.supplements = r.supplements
	b.count = r.count
	b.filter = cloneList(r.filter)
	b.property = cloneList(r.property)
	b.concept = cloneList(r.concept)
	return b
}

// CodeSystemBuilder builds [CodeSystem] nodes.
type CodeSystemBuilder struct {
	domainResourceBuilder[CodeSystemBuilder]
	url              *Uri
	identifier       []*Identifier
	version          *String
	name             *String
	title            *String
	status           *Coded[PublicationStatus]
	experimental     *Boolean
	date             *DateTime
	publisher        *String
	contact          []*ContactDetail
	description      *Markdown
	useContext       []*UsageContext
	jurisdiction     []*CodeableConcept
	purpose          *Markdown
	copyright        *Markdown
	caseSensitive    *Boolean
	valueSet         *Canonical
	hierarchyMeaning *Coded[CodeSystemHierarchyMeaning]
	compositional    *Boolean
	versionNeeded    *Boolean
	content          *Coded[CodeSystemContentMode]
	supplements      *Canonical
	count            *UnsignedInt
	filter           []*CodeSystemFilter
	property         []*CodeSystemProperty
	concept          []*CodeSystemConcept
}

// NewCodeSystemBuilder returns a builder for [CodeSystem] with the required elements set.
func NewCodeSystemBuilder(status *Coded[PublicationStatus], content *Coded[CodeSystemContentMode]) *CodeSystemBuilder {
	b := &CodeSystemBuilder{
		status:  status,
		content: content,
	}
	b.self = b
	return b
}

func (b *CodeSystemBuilder) Url(v *Uri) *CodeSystemBuilder {
	b.url = v
	return b
}

func (b *CodeSystemBuilder) Identifier(v ...*Identifier) *CodeSystemBuilder {
	b.identifier = append(b.identifier, v...)
	return b
}

func (b *CodeSystemBuilder) SetIdentifier(v []*Identifier) *CodeSystemBuilder {
	b.identifier = cloneList(v)
	return b
}

func (b *CodeSystemBuilder) Version(v *String) *CodeSystemBuilder {
	b.version = v
	return b
}

func (b *CodeSystemBuilder) Name(v *String) *CodeSystemBuilder {
	b.name = v
	return b
}

func (b *CodeSystemBuilder) Title(v *String) *CodeSystemBuilder {
	b.title = v
	return b
}

func (b *CodeSystemBuilder) Status(v *Coded[PublicationStatus]) *CodeSystemBuilder {
	b.status = v
	return b
}

func (b *CodeSystemBuilder) Experimental(v *Boolean) *CodeSystemBuilder {
	b.experimental = v
	return b
}

func (b *CodeSystemBuilder) Date(v *DateTime) *CodeSystemBuilder {
	b.date = v
	return b
}

func (b *CodeSystemBuilder) Publisher(v *String) *CodeSystemBuilder {
	b.publisher = v
	return b
}

func (b *CodeSystemBuilder) Contact(v ...*ContactDetail) *CodeSystemBuilder {
	b.contact = append(b.contact, v...)
	return b
}

func (b *CodeSystemBuilder) SetContact(v []*ContactDetail) *CodeSystemBuilder {
	b.contact = cloneList(v)
	return b
}

func (b *CodeSystemBuilder) Description(v *Markdown) *CodeSystemBuilder {
	b.description = v
	return b
}

func (b *CodeSystemBuilder) UseContext(v ...*UsageContext) *CodeSystemBuilder {
	b.useContext = append(b.useContext, v...)
	return b
}

func (b *CodeSystemBuilder) SetUseContext(v []*UsageContext) *CodeSystemBuilder {
	b.useContext = cloneList(v)
	return b
}

func (b *CodeSystemBuilder) Jurisdiction(v ...*CodeableConcept) *CodeSystemBuilder {
	b.jurisdiction = append(b.jurisdiction, v...)
	return b
}

func (b *CodeSystemBuilder) SetJurisdiction(v []*CodeableConcept) *CodeSystemBuilder {
	b.jurisdiction = cloneList(v)
	return b
}

func (b *CodeSystemBuilder) Purpose(v *Markdown) *CodeSystemBuilder {
	b.purpose = v
	return b
}

func (b *CodeSystemBuilder) Copyright(v *Markdown) *CodeSystemBuilder {
	b.copyright = v
	return b
}

func (b *CodeSystemBuilder) CaseSensitive(v *Boolean) *CodeSystemBuilder {
	b.caseSensitive = v
	return b
}

func (b *CodeSystemBuilder) ValueSet(v *Canonical) *CodeSystemBuilder {
	b.valueSet = v
	return b
}

func (b *CodeSystemBuilder) HierarchyMeaning(v *Coded[CodeSystemHierarchyMeaning]) *CodeSystemBuilder {
	b.hierarchyMeaning = v
	return b
}

func (b *CodeSystemBuilder) Compositional(v *Boolean) *CodeSystemBuilder {
	b.compositional = v
	return b
}

func (b *CodeSystemBuilder) VersionNeeded(v *Boolean) *CodeSystemBuilder {
	b.versionNeeded = v
	return b
}

func (b *CodeSystemBuilder) Content(v *Coded[CodeSystemContentMode]) *CodeSystemBuilder {
	b.content = v
	return b
}

func (b *CodeSystemBuilder) Supplements(v *Canonical) *CodeSystemBuilder {
	b.supplements = v
	return b
}

func (b *CodeSystemBuilder) Count(v *UnsignedInt) *CodeSystemBuilder {
	b.count = v
	return b
}

func (b *CodeSystemBuilder) Filter(v ...*CodeSystemFilter) *CodeSystemBuilder {
	b.filter = append(b.filter, v...)
	return b
}

func (b *CodeSystemBuilder) SetFilter(v []*CodeSystemFilter) *CodeSystemBuilder {
	b.filter = cloneList(v)
	return b
}

func (b *CodeSystemBuilder) Property(v ...*CodeSystemProperty) *CodeSystemBuilder {
	b.property = append(b.property, v...)
	return b
}

func (b *CodeSystemBuilder) SetProperty(v []*CodeSystemProperty) *CodeSystemBuilder {
	b.property = cloneList(v)
	return b
}

func (b *CodeSystemBuilder) Concept(v ...*CodeSystemConcept) *CodeSystemBuilder {
	b.concept = append(b.concept, v...)
	return b
}

func (b *CodeSystemBuilder) SetConcept(v []*CodeSystemConcept) *CodeSystemBuilder {
	b.concept = cloneList(v)
	return b
}

// Build validates the builder contents and returns the node.
func (b *CodeSystemBuilder) Build() (*CodeSystem, error) {
	base, errs := b.buildBase()
	errs = append(errs,
		validation.RequireNoNilElements(b.identifier, "identifier"),
		validation.RequireNonNull(b.status, "status"),
		validation.RequireNoNilElements(b.contact, "contact"),
		validation.RequireNoNilElements(b.useContext, "useContext"),
		validation.RequireNoNilElements(b.jurisdiction, "jurisdiction"),
		validation.RequireNonNull(b.content, "content"),
		validation.RequireNoNilElements(b.filter, "filter"),
		validation.RequireNoNilElements(b.property, "property"),
		validation.RequireNoNilElements(b.concept, "concept"),
	)
	r := &CodeSystem{
		domainResource:   base,
		url:              b.url,
		identifier:       cloneList(b.identifier),
		version:          b.version,
		name:             b.name,
		title:            b.title,
		status:           b.status,
		experimental:     b.experimental,
		date:             b.date,
		publisher:        b.publisher,
		contact:          cloneList(b.contact),
		description:      b.description,
		useContext:       cloneList(b.useContext),
		jurisdiction:     cloneList(b.jurisdiction),
		purpose:          b.purpose,
		copyright:        b.copyright,
		caseSensitive:    b.caseSensitive,
		valueSet:         b.valueSet,
		hierarchyMeaning: b.hierarchyMeaning,
		compositional:    b.compositional,
		versionNeeded:    b.versionNeeded,
		content:          b.content,
		supplements:      b.supplements,
		count:            b.count,
		filter:           cloneList(b.filter),
		property:         cloneList(b.property),
		concept:          cloneList(b.concept),
	}
	if err := validation.Join("CodeSystem", errs...); err != nil {
		return nil, err
	}
	return r, nil
}

// CodeSystemFilter is a filter that can be used in a value set compose statement when selecting
// concepts using a filter.
type CodeSystemFilter struct {
	backboneElement
	code        *Code
	description *String
	operator    []*Coded[FilterOperator]
	value       *String
}

func (r *CodeSystemFilter) TypeName() string {
	return "CodeSystem.filter"
}

func (r *CodeSystemFilter) Code() *Code {
	return r.code
}

func (r *CodeSystemFilter) Description() *String {
	return r.description
}

// Operator returns the operators that can be used with the filter.
func (r *CodeSystemFilter) Operator() []*Coded[FilterOperator] {
	return cloneList(r.operator)
}

// Value describes what the value of the filter should be.
func (r *CodeSystemFilter) Value() *String {
	return r.value
}

func (r *CodeSystemFilter) HasChildren() bool {
	return r.hasBaseChildren() ||
		r.code != nil ||
		r.description != nil ||
		len(r.operator) > 0 ||
		r.value != nil
}

func (r *CodeSystemFilter) Accept(name string, index int, v model.Visitor) {
	if !v.PreVisit(r) {
		return
	}
	v.VisitStart(name, index, r)
	if v.Visit(name, index, r) {
		r.visitBase(v)
		if r.code != nil {
			r.code.Accept("code", -1, v)
		}
		if r.description != nil {
			r.description.Accept("description", -1, v)
		}
		model.AcceptList(v, "operator", "code", r.operator)
		if r.value != nil {
			r.value.Accept("value", -1, v)
		}
	}
	v.VisitEnd(name, index, r)
	v.PostVisit(r)
}

func (r *CodeSystemFilter) String() string {
	return visit.Sprint(r)
}

// ToBuilder returns a builder initialized with the contents of r.
func (r *CodeSystemFilter) ToBuilder() *CodeSystemFilterBuilder {
	b := NewCodeSystemFilterBuilder(r.code, r.operator, r.value)
	b.initBase(&r.backboneElement)
	b.description = r.description
	return b
}

// CodeSystemFilterBuilder builds [CodeSystemFilter] nodes.
type CodeSystemFilterBuilder struct {
	backboneElementBuilder[CodeSystemFilterBuilder]
	code        *Code
	description *String
	operator    []*Coded[FilterOperator]
	value       *String
}

// NewCodeSystemFilterBuilder returns a builder for [CodeSystemFilter] with the required elements set.
func NewCodeSystemFilterBuilder(code *Code, operator []*Coded[FilterOperator], value *String) *CodeSystemFilterBuilder {
	b := &CodeSystemFilterBuilder{
		code:     code,
		operator: cloneList(operator),
		value:    value,
	}
	b.self = b
	return b
}

func (b *CodeSystemFilterBuilder) Code(v *Code) *CodeSystemFilterBuilder {
	b.code = v
	return b
}

func (b *CodeSystemFilterBuilder) Description(v *String) *CodeSystemFilterBuilder {
	b.description = v
	return b
}

func (b *CodeSystemFilterBuilder) Operator(v ...*Coded[FilterOperator]) *CodeSystemFilterBuilder {
	b.operator = append(b.operator, v...)
	return b
}

func (b *CodeSystemFilterBuilder) SetOperator(v []*Coded[FilterOperator]) *CodeSystemFilterBuilder {
	b.operator = cloneList(v)
	return b
}

func (b *CodeSystemFilterBuilder) Value(v *String) *CodeSystemFilterBuilder {
	b.value = v
	return b
}

// Build validates the builder contents and returns the node.
func (b *CodeSystemFilterBuilder) Build() (*CodeSystemFilter, error) {
	base, errs := b.buildBase()
	errs = append(errs,
		validation.RequireNonNull(b.code, "code"),
		validation.RequireNonEmpty(b.operator, "operator"),
		validation.RequireNoNilElements(b.operator, "operator"),
		validation.RequireNonNull(b.value, "value"),
	)
	r := &CodeSystemFilter{
		backboneElement: base,
		code:            b.code,
		description:     b.description,
		operator:        cloneList(b.operator),
		value:           b.value,
	}
	errs = append(errs, validation.RequireValueOrChildren(r))
	if err := validation.Join("CodeSystem.filter", errs...); err != nil {
		return nil, err
	}
	return r, nil
}

// CodeSystemProperty is a property defined for concepts in the code system.
type CodeSystemProperty struct {
	backboneElement
	code        *Code
	uri         *Uri
	description *String
	typ         *Coded[PropertyType]
}

func (r *CodeSystemProperty) TypeName() string {
	return "CodeSystem.property"
}

func (r *CodeSystemProperty) Code() *Code {
	return r.code
}

func (r *CodeSystemProperty) Uri() *Uri {
	return r.uri
}

func (r *CodeSystemProperty) Description() *String {
	return r.description
}

func (r *CodeSystemProperty) Type() *Coded[PropertyType] {
	return r.typ
}

func (r *CodeSystemProperty) HasChildren() bool {
	return r.hasBaseChildren() ||
		r.code != nil ||
		r.uri != nil ||
		r.description != nil ||
		r.typ != nil
}

func (r *CodeSystemProperty) Accept(name string, index int, v model.Visitor) {
	if !v.PreVisit(r) {
		return
	}
	v.VisitStart(name, index, r)
	if v.Visit(name, index, r) {
		r.visitBase(v)
		if r.code != nil {
			r.code.Accept("code", -1, v)
		}
		if r.uri != nil {
			r.uri.Accept("uri", -1, v)
		}
		if r.description != nil {
			r.description.Accept("description", -1, v)
		}
		if r.typ != nil {
			r.typ.Accept("type", -1, v)
		}
	}
	v.VisitEnd(name, index, r)
	v.PostVisit(r)
}

func (r *CodeSystemProperty) String() string {
	return visit.Sprint(r)
}

// ToBuilder returns a builder initialized with the contents of r.
func (r *CodeSystemProperty) ToBuilder() *CodeSystemPropertyBuilder {
	b := NewCodeSystemPropertyBuilder(r.code, r.typ)
	b.initBase(&r.backboneElement)
	b.uri = r.uri
	b.description = r.description
	return b
}

// CodeSystemPropertyBuilder builds [CodeSystemProperty] nodes.
type CodeSystemPropertyBuilder struct {
	backboneElementBuilder[CodeSystemPropertyBuilder]
	code        *Code
	uri         *Uri
	description *String
	typ         *Coded[PropertyType]
}

// NewCodeSystemPropertyBuilder returns a builder for [CodeSystemProperty] with the required elements set.
func NewCodeSystemPropertyBuilder(code *Code, typ *Coded[PropertyType]) *CodeSystemPropertyBuilder {
	b := &CodeSystemPropertyBuilder{
		code: code,
		typ:  typ,
	}
	b.self = b
	return b
}

func (b *CodeSystemPropertyBuilder) Code(v *Code) *CodeSystemPropertyBuilder {
	b.code = v
	return b
}

func (b *CodeSystemPropertyBuilder) Uri(v *Uri) *CodeSystemPropertyBuilder {
	b.uri = v
	return b
}

func (b *CodeSystemPropertyBuilder) Description(v *String) *CodeSystemPropertyBuilder {
	b.description = v
	return b
}

func (b *CodeSystemPropertyBuilder) Type(v *Coded[PropertyType]) *CodeSystemPropertyBuilder {
	b.typ = v
	return b
}

// Build validates the builder contents and returns the node.
func (b *CodeSystemPropertyBuilder) Build() (*CodeSystemProperty, error) {
	base, errs := b.buildBase()
	errs = append(errs,
		validation.RequireNonNull(b.code, "code"),
		validation.RequireNonNull(b.typ, "type"),
	)
	r := &CodeSystemProperty{
		backboneElement: base,
		code:            b.code,
		uri:             b.uri,
		description:     b.description,
		typ:             b.typ,
	}
	errs = append(errs, validation.RequireValueOrChildren(r))
	if err := validation.Join("CodeSystem.property", errs...); err != nil {
		return nil, err
	}
	return r, nil
}

// CodeSystemConcept is a concept defined in the code system.
type CodeSystemConcept struct {
	backboneElement
	code        *Code
	display     *String
	definition  *String
	designation []*CodeSystemConceptDesignation
	property    []*CodeSystemConceptProperty
	concept     []*CodeSystemConcept
}

func (r *CodeSystemConcept) TypeName() string {
	return "CodeSystem.concept"
}

func (r *CodeSystemConcept) Code() *Code {
	return r.code
}

func (r *CodeSystemConcept) Display() *String {
	return r.display
}

func (r *CodeSystemConcept) Definition() *String {
	return r.definition
}

func (r *CodeSystemConcept) Designation() []*CodeSystemConceptDesignation {
	return cloneList(r.designation)
}

func (r *CodeSystemConcept) Property() []*CodeSystemConceptProperty {
	return cloneList(r.property)
}

// Concept returns the child concepts, defining a hierarchy.
func (r *CodeSystemConcept) Concept() []*CodeSystemConcept {
	return cloneList(r.concept)
}

func (r *CodeSystemConcept) HasChildren() bool {
	return r.hasBaseChildren() ||
		r.code != nil ||
		r.display != nil ||
		r.definition != nil ||
		len(r.designation) > 0 ||
		len(r.property) > 0 ||
		len(r.concept) > 0
}

func (r *CodeSystemConcept) Accept(name string, index int, v model.Visitor) {
	if !v.PreVisit(r) {
		return
	}
	v.VisitStart(name, index, r)
	if v.Visit(name, index, r) {
		r.visitBase(v)
		if r.code != nil {
			r.code.Accept("code", -1, v)
		}
		if r.display != nil {
			r.display.Accept("display", -1, v)
		}
		if r.definition != nil {
			r.definition.Accept("definition", -1, v)
		}
		model.AcceptList(v, "designation", "CodeSystem.concept.designation", r.designation)
		model.AcceptList(v, "property", "CodeSystem.concept.property", r.property)
		model.AcceptList(v, "concept", "CodeSystem.concept", r.concept)
	}
	v.VisitEnd(name, index, r)
	v.PostVisit(r)
}

func (r *CodeSystemConcept) String() string {
	return visit.Sprint(r)
}

// ToBuilder returns a builder initialized with the contents of r.
func (r *CodeSystemConcept) ToBuilder() *CodeSystemConceptBuilder {
	b := NewCodeSystemConceptBuilder(r.code)
	b.initBase(&r.backboneElement)
	b.display = r.display
	b.definition = r.definition
	b.designation = cloneList(r.designation)
	b.property = cloneList(r.property)
	b.concept = cloneList(r.concept)
	return b
}

// CodeSystemConceptBuilder builds [CodeSystemConcept] nodes.
type CodeSystemConceptBuilder struct {
	backboneElementBuilder[CodeSystemConceptBuilder]
	code        *Code
	display     *String
	definition  *String
	designation []*CodeSystemConceptDesignation
	property    []*CodeSystemConceptProperty
	concept     []*CodeSystemConcept
}

// NewCodeSystemConceptBuilder returns a builder for [CodeSystemConcept] with the required elements set.
func NewCodeSystemConceptBuilder(code *Code) *CodeSystemConceptBuilder {
	b := &CodeSystemConceptBuilder{
		code: code,
	}
	b.self = b
	return b
}

func (b *CodeSystemConceptBuilder) Code(v *Code) *CodeSystemConceptBuilder {
	b.code = v
	return b
}

func (b *CodeSystemConceptBuilder) Display(v *String) *CodeSystemConceptBuilder {
	b.display = v
	return b
}

func (b *CodeSystemConceptBuilder) Definition(v *String) *CodeSystemConceptBuilder {
	b.definition = v
	return b
}

func (b *CodeSystemConceptBuilder) Designation(v ...*CodeSystemConceptDesignation) *CodeSystemConceptBuilder {
	b.designation = append(b.designation, v...)
	return b
}

func (b *CodeSystemConceptBuilder) SetDesignation(v []*CodeSystemConceptDesignation) *CodeSystemConceptBuilder {
	b.designation = cloneList(v)
	return b
}

func (b *CodeSystemConceptBuilder) Property(v ...*CodeSystemConceptProperty) *CodeSystemConceptBuilder {
	b.property = append(b.property, v...)
	return b
}

func (b *CodeSystemConceptBuilder) SetProperty(v []*CodeSystemConceptProperty) *CodeSystemConceptBuilder {
	b.property = cloneList(v)
	return b
}

func (b *CodeSystemConceptBuilder) Concept(v ...*CodeSystemConcept) *CodeSystemConceptBuilder {
	b.concept = append(b.concept, v...)
	return b
}

func (b *CodeSystemConceptBuilder) SetConcept(v []*CodeSystemConcept) *CodeSystemConceptBuilder {
	b.concept = cloneList(v)
	return b
}

// Build validates the builder contents and returns the node.
func (b *CodeSystemConceptBuilder) Build() (*CodeSystemConcept, error) {
	base, errs := b.buildBase()
	errs = append(errs,
		validation.RequireNonNull(b.code, "code"),
		validation.RequireNoNilElements(b.designation, "designation"),
		validation.RequireNoNilElements(b.property, "property"),
		validation.RequireNoNilElements(b.concept, "concept"),
	)
	r := &CodeSystemConcept{
		backboneElement: base,
		code:            b.code,
		display:         b.display,
		definition:      b.definition,
		designation:     cloneList(b.designation),
		property:        cloneList(b.property),
		concept:         cloneList(b.concept),
	}
	errs = append(errs, validation.RequireValueOrChildren(r))
	if err := validation.Join("CodeSystem.concept", errs...); err != nil {
		return nil, err
	}
	return r, nil
}

// CodeSystemConceptDesignation is an additional representation of a concept, e.g. in another
// language.
type CodeSystemConceptDesignation struct {
	backboneElement
	language *Code
	use      *Coding
	value    *String
}

func (r *CodeSystemConceptDesignation) TypeName() string {
	return "CodeSystem.concept.designation"
}

func (r *CodeSystemConceptDesignation) Language() *Code {
	return r.language
}

func (r *CodeSystemConceptDesignation) Use() *Coding {
	return r.use
}

func (r *CodeSystemConceptDesignation) Value() *String {
	return r.value
}

func (r *CodeSystemConceptDesignation) HasChildren() bool {
	return r.hasBaseChildren() ||
		r.language != nil ||
		r.use != nil ||
		r.value != nil
}

func (r *CodeSystemConceptDesignation) Accept(name string, index int, v model.Visitor) {
	if !v.PreVisit(r) {
		return
	}
	v.VisitStart(name, index, r)
	if v.Visit(name, index, r) {
		r.visitBase(v)
		if r.language != nil {
			r.language.Accept("language", -1, v)
		}
		if r.use != nil {
			r.use.Accept("use", -1, v)
		}
		if r.value != nil {
			r.value.Accept("value", -1, v)
		}
	}
	v.VisitEnd(name, index, r)
	v.PostVisit(r)
}

func (r *CodeSystemConceptDesignation) String() string {
	return visit.Sprint(r)
}

// ToBuilder returns a builder initialized with the contents of r.
func (r *CodeSystemConceptDesignation) ToBuilder() *CodeSystemConceptDesignationBuilder {
	b := NewCodeSystemConceptDesignationBuilder(r.value)
	b.initBase(&r.backboneElement)
	b.language = r.language
	b.use = r.use
	return b
}

// CodeSystemConceptDesignationBuilder builds [CodeSystemConceptDesignation] nodes.
type CodeSystemConceptDesignationBuilder struct {
	backboneElementBuilder[CodeSystemConceptDesignationBuilder]
	language *Code
	use      *Coding
	value    *String
}

// NewCodeSystemConceptDesignationBuilder returns a builder for [CodeSystemConceptDesignation] with the required elements set.
func NewCodeSystemConceptDesignationBuilder(value *String) *CodeSystemConceptDesignationBuilder {
	b := &CodeSystemConceptDesignationBuilder{
		value: value,
	}
	b.self = b
	return b
}

func (b *CodeSystemConceptDesignationBuilder) Language(v *Code) *CodeSystemConceptDesignationBuilder {
	b.language = v
	return b
}

func (b *CodeSystemConceptDesignationBuilder) Use(v *Coding) *CodeSystemConceptDesignationBuilder {
	b.use = v
	return b
}

func (b *CodeSystemConceptDesignationBuilder) Value(v *String) *CodeSystemConceptDesignationBuilder {
	b.value = v
	return b
}

// Build validates the builder contents and returns the node.
func (b *CodeSystemConceptDesignationBuilder) Build() (*CodeSystemConceptDesignation, error) {
	base, errs := b.buildBase()
	errs = append(errs,
		validation.RequireNonNull(b.value, "value"),
	)
	r := &CodeSystemConceptDesignation{
		backboneElement: base,
		language:        b.language,
		use:             b.use,
		value:           b.value,
	}
	errs = append(errs, validation.RequireValueOrChildren(r))
	if err := validation.Join("CodeSystem.concept.designation", errs...); err != nil {
		return nil, err
	}
	return r, nil
}

// CodeSystemConceptProperty is a property value for a concept.
type CodeSystemConceptProperty struct {
	backboneElement
	code  *Code
	value CodeSystemConceptPropertyValue
}

// CodeSystemConceptPropertyValue is the type of CodeSystem.concept.property.value[x]: one of code,
// Coding, string, integer, boolean, dateTime, decimal.
type CodeSystemConceptPropertyValue interface {
	model.Element
	isCodeSystemConceptPropertyValue()
}

func (r *Code) isCodeSystemConceptPropertyValue()     {}
func (r *Coding) isCodeSystemConceptPropertyValue()   {}
func (r *String) isCodeSystemConceptPropertyValue()   {}
func (r *Integer) isCodeSystemConceptPropertyValue()  {}
func (r *Boolean) isCodeSystemConceptPropertyValue()  {}
func (r *DateTime) isCodeSystemConceptPropertyValue() {}
func (r *Decimal) isCodeSystemConceptPropertyValue()  {}

func (r *CodeSystemConceptProperty) TypeName() string {
	return "CodeSystem.concept.property"
}

// Code references a property of the code system.
func (r *CodeSystemConceptProperty) Code() *Code {
	return r.code
}

func (r *CodeSystemConceptProperty) Value() CodeSystemConceptPropertyValue {
	return r.value
}

func (r *CodeSystemConceptProperty) HasChildren() bool {
	return r.hasBaseChildren() ||
		r.code != nil ||
		r.value != nil
}

func (r *CodeSystemConceptProperty) Accept(name string, index int, v model.Visitor) {
	if !v.PreVisit(r) {
		return
	}
	v.VisitStart(name, index, r)
	if v.Visit(name, index, r) {
		r.visitBase(v)
		if r.code != nil {
			r.code.Accept("code", -1, v)
		}
		model.AcceptChoice(v, "value", r.value)
	}
	v.VisitEnd(name, index, r)
	v.PostVisit(r)
}

func (r *CodeSystemConceptProperty) String() string {
	return visit.Sprint(r)
}

// ToBuilder returns a builder initialized with the contents of r.
func (r *CodeSystemConceptProperty) ToBuilder() *CodeSystemConceptPropertyBuilder {
	b := NewCodeSystemConceptPropertyBuilder(r.code, r.value)
	b.initBase(&r.backboneElement)
	return b
}

// CodeSystemConceptPropertyBuilder builds [CodeSystemConceptProperty] nodes.
type CodeSystemConceptPropertyBuilder struct {
	backboneElementBuilder[CodeSystemConceptPropertyBuilder]
	code  *Code
	value model.Element
}

// NewCodeSystemConceptPropertyBuilder returns a builder for [CodeSystemConceptProperty] with the required elements set.
func NewCodeSystemConceptPropertyBuilder(code *Code, value CodeSystemConceptPropertyValue) *CodeSystemConceptPropertyBuilder {
	b := &CodeSystemConceptPropertyBuilder{
		code:  code,
		value: value,
	}
	b.self = b
	return b
}

func (b *CodeSystemConceptPropertyBuilder) Code(v *Code) *CodeSystemConceptPropertyBuilder {
	b.code = v
	return b
}

func (b *CodeSystemConceptPropertyBuilder) Value(v CodeSystemConceptPropertyValue) *CodeSystemConceptPropertyBuilder {
	b.value = v
	return b
}

// ValueElement sets value without static type check, Build fails unless it is one of code, Coding, string, integer, boolean, dateTime, decimal.
func (b *CodeSystemConceptPropertyBuilder) ValueElement(v model.Element) *CodeSystemConceptPropertyBuilder {
	b.value = v
	return b
}

// Build validates the builder contents and returns the node.
func (b *CodeSystemConceptPropertyBuilder) Build() (*CodeSystemConceptProperty, error) {
	base, errs := b.buildBase()
	value, err := validation.RequireChoiceElement[CodeSystemConceptPropertyValue](b.value, "value", "code", "Coding", "string", "integer", "boolean", "dateTime", "decimal")
	errs = append(errs, err)
	errs = append(errs,
		validation.RequireNonNull(b.code, "code"),
	)
	r := &CodeSystemConceptProperty{
		backboneElement: base,
		code:            b.code,
		value:           value,
	}
	errs = append(errs, validation.RequireValueOrChildren(r))
	if err := validation.Join("CodeSystem.concept.property", errs...); err != nil {
		return nil, err
	}
	return r, nil
}
