package r4

import (
	"github.com/damedic/fhir-model-go/model"
	"github.com/damedic/fhir-model-go/model/validation"
	"github.com/damedic/fhir-model-go/model/visit"
)

// CarePlan describes the intention of how one or more practitioners intend to deliver care for a
// particular patient, group or community for a period of time.
type CarePlan struct {
	domainResource
	identifier            []*Identifier
	instantiatesCanonical []*Canonical
	instantiatesUri       []*Uri
	basedOn               []*Reference
	replaces              []*Reference
	partOf                []*Reference
	status                *Coded[RequestStatus]
	intent                *Coded[CarePlanIntent]
	category              []*CodeableConcept
	title                 *String
	description           *String
	subject               *Reference
	encounter             *Reference
	period                *Period
	created               *DateTime
	author                *Reference
	contributor           []*Reference
	careTeam              []*Reference
	addresses             []*Reference
	supportingInfo        []*Reference
	goal                  []*Reference
	activity              []*CarePlanActivity
	note                  []*Annotation
}

func (r *CarePlan) TypeName() string {
	return "CarePlan"
}

func (r *CarePlan) ResourceType() string {
	return "CarePlan"
}

func (r *CarePlan) Identifier() []*Identifier {
	return cloneList(r.identifier)
}

func (r *CarePlan) InstantiatesCanonical() []*Canonical {
	return cloneList(r.instantiatesCanonical)
}

func (r *CarePlan) InstantiatesUri() []*Uri {
	return cloneList(r.instantiatesUri)
}

func (r *CarePlan) BasedOn() []*Reference {
	return cloneList(r.basedOn)
}

func (r *CarePlan) Replaces() []*Reference {
	return cloneList(r.replaces)
}

func (r *CarePlan) PartOf() []*Reference {
	return cloneList(r.partOf)
}

func (r *CarePlan) Status() *Coded[RequestStatus] {
	return r.status
}

func (r *CarePlan) Intent() *Coded[CarePlanIntent] {
	return r.intent
}

func (r *CarePlan) Category() []*CodeableConcept {
	return cloneList(r.category)
}

func (r *CarePlan) Title() *String {
	return r.title
}

func (r *CarePlan) Description() *String {
	return r.description
}

// Subject is who the care plan is for.
func (r *CarePlan) Subject() *Reference {
	return r.subject
}

func (r *CarePlan) Encounter() *Reference {
	return r.encounter
}

// Period is the time period the plan covers.
func (r *CarePlan) Period() *Period {
	return r.period
}

func (r *CarePlan) Created() *DateTime {
	return r.created
}

func (r *CarePlan) Author() *Reference {
	return r.author
}

func (r *CarePlan) Contributor() []*Reference {
	return cloneList(r.contributor)
}

func (r *CarePlan) CareTeam() []*Reference {
	return cloneList(r.careTeam)
}

// Addresses returns the health issues the plan addresses.
func (r *CarePlan) Addresses() []*Reference {
	return cloneList(r.addresses)
}

func (r *CarePlan) SupportingInfo() []*Reference {
	return cloneList(r.supportingInfo)
}

func (r *CarePlan) Goal() []*Reference {
	return cloneList(r.goal)
}

func (r *CarePlan) Activity() []*CarePlanActivity {
	return cloneList(r.activity)
}

func (r *CarePlan) Note() []*Annotation {
	return cloneList(r.note)
}

func (r *CarePlan) HasChildren() bool {
	return r.hasBaseChildren() ||
		len(r.identifier) > 0 ||
		len(r.instantiatesCanonical) > 0 ||
		len(r.instantiatesUri) > 0 ||
		len(r.basedOn) > 0 ||
		len(r.replaces) > 0 ||
		len(r.partOf) > 0 ||
		r.status != nil ||
		r.intent != nil ||
		len(r.category) > 0 ||
		r.title != nil ||
		r.description != nil ||
		r.subject != nil ||
		r.encounter != nil ||
		r.period != nil ||
		r.created != nil ||
		r.author != nil ||
		len(r.contributor) > 0 ||
		len(r.careTeam) > 0 ||
		len(r.addresses) > 0 ||
		len(r.supportingInfo) > 0 ||
		len(r.goal) > 0 ||
		len(r.activity) > 0 ||
		len(r.note) > 0
}

func (r *CarePlan) Accept(name string, index int, v model.Visitor) {
	if !v.PreVisit(r) {
		return
	}
	v.VisitStart(name, index, r)
	if v.Visit(name, index, r) {
		r.visitBase(v)
		model.AcceptList(v, "identifier", "Identifier", r.identifier)
		model.AcceptList(v, "instantiatesCanonical", "canonical", r.instantiatesCanonical)
		model.AcceptList(v, "instantiatesUri", "uri", r.instantiatesUri)
		model.AcceptList(v, "basedOn", "Reference", r.basedOn)
		model.AcceptList(v, "replaces", "Reference", r.replaces)
		model.AcceptList(v, "partOf", "Reference", r.partOf)
		if r.status != nil {
			r.status.Accept("status", -1, v)
		}
		if r.intent != nil {
			r.intent.Accept("intent", -1, v)
		}
		model.AcceptList(v, "category", "CodeableConcept", r.category)
		if r.title != nil {
			r.title.Accept("title", -1, v)
		}
		if r.description != nil {
			r.description.Accept("description", -1, v)
		}
		if r.subject != nil {
			r.subject.Accept("subject", -1, v)
		}
		if r.encounter != nil {
			r.encounter.Accept("encounter", -1, v)
		}
		if r.period != nil {
			r.period.Accept("period", -1, v)
		}
		if r.created != nil {
			r.created.Accept("created", -1, v)
		}
		if r.author != nil {
			r.author.Accept("author", -1, v)
		}
		model.AcceptList(v, "contributor", "Reference", r.contributor)
		model.AcceptList(v, "careTeam", "Reference", r.careTeam)
		model.AcceptList(v, "addresses", "Reference", r.addresses)
		model.AcceptList(v, "supportingInfo", "Reference", r.supportingInfo)
		model.AcceptList(v, "goal", "Reference", r.goal)
		model.AcceptList(v, "activity", "CarePlan.activity", r.activity)
		model.AcceptList(v, "note", "Annotation", r.note)
	}
	v.VisitEnd(name, index, r)
	v.PostVisit(r)
}

func (r *CarePlan) String() string {
	return visit.Sprint(r)
}

// ToBuilder returns a builder initialized with the contents of r.
func (r *CarePlan) ToBuilder() *CarePlanBuilder {
	b := NewCarePlanBuilder(r.status, r.intent, r.subject)
	b.initBase(&r.domainResource)
	b.identifier = cloneList(r.identifier)
	b.instantiatesCanonical = cloneList(r.instantiatesCanonical)
	b.instantiatesUri = cloneList(r.instantiatesUri)
	b.basedOn = cloneList(r.basedOn)
	b.replaces = cloneList(r.replaces)
	b.partOf = cloneList(r.partOf)
	b.category = cloneList(r.category)
	b.title = r.title
	b.description = r.description
	b.encounter = r.encounter
	b.period = r.period
	b.created = r.created
	b.author = r.author
	b.contributor = cloneList(r.contributor)
	b.careTeam = cloneList(r.careTeam)
	b.addresses = cloneList(r.addresses)
	b.supportingInfo = cloneList(r.supportingInfo)
	b.goal = cloneList(r.goal)
	b.activity = cloneList(r.activity)
	b.note = cloneList(r.note)
	return b
}

// CarePlanBuilder builds [CarePlan] nodes.
type CarePlanBuilder struct {
	domainResourceBuilder[CarePlanBuilder]
	identifier            []*Identifier
	instantiatesCanonical []*Canonical
	instantiatesUri       []*Uri
	basedOn               []*Reference
	replaces              []*Reference
	partOf                []*Reference
	status                *Coded[RequestStatus]
	intent                *Coded[CarePlanIntent]
	category              []*CodeableConcept
	title                 *String
	description           *String
	subject               *Reference
	encounter             *Reference
	period                *Period
	created               *DateTime
	author                *Reference
	contributor           []*Reference
	careTeam              []*Reference
	addresses             []*Reference
	supportingInfo        []*Reference
	goal                  []*Reference
	activity              []*CarePlanActivity
	note                  []*Annotation
}

// NewCarePlanBuilder returns a builder for [CarePlan] with the required elements set.
func NewCarePlanBuilder(status *Coded[RequestStatus], intent *Coded[CarePlanIntent], subject *Reference) *CarePlanBuilder {
	b := &CarePlanBuilder{
		status:  status,
		intent:  intent,
		subject: subject,
	}
	b.self = b
	return b
}

func (b *CarePlanBuilder) Identifier(v ...*Identifier) *CarePlanBuilder {
	b.identifier = append(b.identifier, v...)
	return b
}

func (b *CarePlanBuilder) SetIdentifier(v []*Identifier) *CarePlanBuilder {
	b.identifier = cloneList(v)
	return b
}

func (b *CarePlanBuilder) InstantiatesCanonical(v ...*Canonical) *CarePlanBuilder {
	b.instantiatesCanonical = append(b.instantiatesCanonical, v...)
	return b
}

func (b *CarePlanBuilder) SetInstantiatesCanonical(v []*Canonical) *CarePlanBuilder {
	b.instantiatesCanonical = cloneList(v)
	return b
}

func (b *CarePlanBuilder) InstantiatesUri(v ...*Uri) *CarePlanBuilder {
	b.instantiatesUri = append(b.instantiatesUri, v...)
	return b
}

func (b *CarePlanBuilder) SetInstantiatesUri(v []*Uri) *CarePlanBuilder {
	b.instantiatesUri = cloneList(v)
	return b
}

func (b *CarePlanBuilder) BasedOn(v ...*Reference) *CarePlanBuilder {
	b.basedOn = append(b.basedOn, v...)
	return b
}

func (b *CarePlanBuilder) SetBasedOn(v []*Reference) *CarePlanBuilder {
	b.basedOn = cloneList(v)
	return b
}

func (b *CarePlanBuilder) Replaces(v ...*Reference) *CarePlanBuilder {
	b.replaces = append(b.replaces, v...)
	return b
}

func (b *CarePlanBuilder) SetReplaces(v []*Reference) *CarePlanBuilder {
	b.replaces = cloneList(v)
	return b
}

func (b *CarePlanBuilder) PartOf(v ...*Reference) *CarePlanBuilder {
	b.partOf = append(b.partOf, v...)
	return b
}

func (b *CarePlanBuilder) SetPartOf(v []*Reference) *CarePlanBuilder {
	b.partOf = cloneList(v)
	return b
}

func (b *CarePlanBuilder) Status(v *Coded[RequestStatus]) *CarePlanBuilder {
	b.status = v
	return b
}

func (b *CarePlanBuilder) Intent(v *Coded[CarePlanIntent]) *CarePlanBuilder {
	b.intent = v
	return b
}

func (b *CarePlanBuilder) Category(v ...*CodeableConcept) *CarePlanBuilder {
	b.category = append(b.category, v...)
	return b
}

func (b *CarePlanBuilder) SetCategory(v []*CodeableConcept) *CarePlanBuilder {
	b.category = cloneList(v)
	return b
}

func (b *CarePlanBuilder) Title(v *String) *CarePlanBuilder {
	b.title = v
	return b
}

func (b *CarePlanBuilder) Description(v *String) *CarePlanBuilder {
	b.description = v
	return b
}

func (b *CarePlanBuilder) Subject(v *Reference) *CarePlanBuilder {
	b.subject = v
	return b
}

func (b *CarePlanBuilder) Encounter(v *Reference) *CarePlanBuilder {
	b.encounter = v
	return b
}

func (b *CarePlanBuilder) Period(v *Period) *CarePlanBuilder {
	b.period = v
	return b
}

func (b *CarePlanBuilder) Created(v *DateTime) *CarePlanBuilder {
	b.created = v
	return b
}

func (b *CarePlanBuilder) Author(v *Reference) *CarePlanBuilder {
	b.author = v
	return b
}

func (b *CarePlanBuilder) Contributor(v ...*Reference) *CarePlanBuilder {
	b.contributor = append(b.contributor, v...)
	return b
}

func (b *CarePlanBuilder) SetContributor(v []*Reference) *CarePlanBuilder {
	b.contributor = cloneList(v)
	return b
}

func (b *CarePlanBuilder) CareTeam(v ...*Reference) *CarePlanBuilder {
	b.careTeam = append(b.careTeam, v...)
	return b
}

func (b *CarePlanBuilder) SetCareTeam(v []*Reference) *CarePlanBuilder {
	b.careTeam = cloneList(v)
	return b
}

func (b *CarePlanBuilder) Addresses(v ...*Reference) *CarePlanBuilder {
	b.addresses = append(b.addresses, v...)
	return b
}

func (b *CarePlanBuilder) SetAddresses(v []*Reference) *CarePlanBuilder {
	b.addresses = cloneList(v)
	return b
}

func (b *CarePlanBuilder) SupportingInfo(v ...*Reference) *CarePlanBuilder {
	b.supportingInfo = append(b.supportingInfo, v...)
	return b
}

func (b *CarePlanBuilder) SetSupportingInfo(v []*Reference) *CarePlanBuilder {
	b.supportingInfo = cloneList(v)
	return b
}

func (b *CarePlanBuilder) Goal(v ...*Reference) *CarePlanBuilder {
	b.goal = append(b.goal, v...)
	return b
}

func (b *CarePlanBuilder) SetGoal(v []*Reference) *CarePlanBuilder {
	b.goal = cloneList(v)
	return b
}

func (b *CarePlanBuilder) Activity(v ...*CarePlanActivity) *CarePlanBuilder {
	b.activity = append(b.activity, v...)
	return b
}

func (b *CarePlanBuilder) SetActivity(v []*CarePlanActivity) *CarePlanBuilder {
	b.activity = cloneList(v)
	return b
}

func (b *CarePlanBuilder) Note(v ...*Annotation) *CarePlanBuilder {
	b.note = append(b.note, v...)
	return b
}

func (b *CarePlanBuilder) SetNote(v []*Annotation) *CarePlanBuilder {
	b.note = cloneList(v)
	return b
}

// Build validates the builder contents and returns the node.
func (b *CarePlanBuilder) Build() (*CarePlan, error) {
	opts := b.options()
	base, errs := b.buildBase()
	errs = append(errs,
		validation.RequireNoNilElements(b.identifier, "identifier"),
		validation.RequireNoNilElements(b.instantiatesCanonical, "instantiatesCanonical"),
		validation.RequireNoNilElements(b.instantiatesUri, "instantiatesUri"),
		validation.RequireNoNilElements(b.basedOn, "basedOn"),
		validation.RequireNoNilElements(b.replaces, "replaces"),
		validation.RequireNoNilElements(b.partOf, "partOf"),
		validation.RequireNonNull(b.status, "status"),
		validation.RequireNonNull(b.intent, "intent"),
		validation.RequireNoNilElements(b.category, "category"),
		validation.RequireNonNull(b.subject, "subject"),
		validation.RequireNoNilElements(b.contributor, "contributor"),
		validation.RequireNoNilElements(b.careTeam, "careTeam"),
		validation.RequireNoNilElements(b.addresses, "addresses"),
		validation.RequireNoNilElements(b.supportingInfo, "supportingInfo"),
		validation.RequireNoNilElements(b.goal, "goal"),
		validation.RequireNoNilElements(b.activity, "activity"),
		validation.RequireNoNilElements(b.note, "note"),
	)
	if opts.ReferenceTypes {
		errs = append(errs, checkReferences(b.basedOn, "basedOn", "CarePlan"))
		errs = append(errs, checkReferences(b.replaces, "replaces", "CarePlan"))
		errs = append(errs, checkReferences(b.partOf, "partOf", "CarePlan"))
		errs = append(errs, checkReference(b.subject, "subject", "Patient", "Group"))
		errs = append(errs, checkReference(b.encounter, "encounter", "Encounter"))
		errs = append(errs, checkReference(b.author, "author", "Patient", "Practitioner", "PractitionerRole", "Device", "RelatedPerson", "Organization", "CareTeam"))
		errs = append(errs, checkReferences(b.contributor, "contributor", "Patient", "Practitioner", "PractitionerRole", "Device", "RelatedPerson", "Organization", "CareTeam"))
		errs = append(errs, checkReferences(b.careTeam, "careTeam", "CareTeam"))
		errs = append(errs, checkReferences(b.addresses, "addresses", "Condition"))
		errs = append(errs, checkReferences(b.goal, "goal", "Goal"))
	}
	r := &CarePlan{
		domainResource:        base,
		identifier:            cloneList(b.identifier),
		instantiatesCanonical: cloneList(b.instantiatesCanonical),
		instantiatesUri:       cloneList(b.instantiatesUri),
		basedOn:               cloneList(b.basedOn),
		replaces:              cloneList(b.replaces),
		partOf:                cloneList(b.partOf),
		status:                b.status,
		intent:                b.intent,
		category:              cloneList(b.category),
		title:                 b.title,
		description:           b.description,
		subject:               b.subject,
		encounter:             b.encounter,
		period:                b.period,
		created:               b.created,
		author:                b.author,
		contributor:           cloneList(b.contributor),
		careTeam:              cloneList(b.careTeam),
		addresses:             cloneList(b.addresses),
		supportingInfo:        cloneList(b.supportingInfo),
		goal:                  cloneList(b.goal),
		activity:              cloneList(b.activity),
		note:                  cloneList(b.note),
	}
	if err := validation.Join("CarePlan", errs...); err != nil {
		return nil, err
	}
	return r, nil
}

// CarePlanActivity is an action that is planned to occur as part of a care plan.
type CarePlanActivity struct {
	backboneElement
	outcomeCodeableConcept []*CodeableConcept
	outcomeReference       []*Reference
	progress               []*Annotation
	reference              *Reference
	detail                 *CarePlanActivityDetail
}

func (r *CarePlanActivity) TypeName() string {
	return "CarePlan.activity"
}

func (r *CarePlanActivity) OutcomeCodeableConcept() []*CodeableConcept {
	return cloneList(r.outcomeCodeableConcept)
}

func (r *CarePlanActivity) OutcomeReference() []*Reference {
	return cloneList(r.outcomeReference)
}

func (r *CarePlanActivity) Progress() []*Annotation {
	return cloneList(r.progress)
}

func (r *CarePlanActivity) Reference() *Reference {
	return r.reference
}

func (r *CarePlanActivity) Detail() *CarePlanActivityDetail {
	return r.detail
}

func (r *CarePlanActivity) HasChildren() bool {
	return r.hasBaseChildren() ||
		len(r.outcomeCodeableConcept) > 0 ||
		len(r.outcomeReference) > 0 ||
		len(r.progress) > 0 ||
		r.reference != nil ||
		r.detail != nil
}

func (r *CarePlanActivity) Accept(name string, index int, v model.Visitor) {
	if !v.PreVisit(r) {
		return
	}
	v.VisitStart(name, index, r)
	if v.Visit(name, index, r) {
		r.visitBase(v)
		model.AcceptList(v, "outcomeCodeableConcept", "CodeableConcept", r.outcomeCodeableConcept)
		model.AcceptList(v, "outcomeReference", "Reference", r.outcomeReference)
		model.AcceptList(v, "progress", "Annotation", r.progress)
		if r.reference != nil {
			r.reference.Accept("reference", -1, v)
		}
		if r.detail != nil {
			r.detail.Accept("detail", -1, v)
		}
	}
	v.VisitEnd(name, index, r)
	v.PostVisit(r)
}

func (r *CarePlanActivity) String() string {
	return visit.Sprint(r)
}

// ToBuilder returns a builder initialized with the contents of r.
func (r *CarePlanActivity) ToBuilder() *CarePlanActivityBuilder {
	b := NewCarePlanActivityBuilder()
	b.initBase(&r.backboneElement)
	b.outcomeCodeableConcept = cloneList(r.outcomeCodeableConcept)
	b.outcomeReference = cloneList(r.outcomeReference)
	b.progress = cloneList(r.progress)
	b.reference = r.reference
	b.detail = r.detail
	return b
}

// CarePlanActivityBuilder builds [CarePlanActivity] nodes.
type CarePlanActivityBuilder struct {
	backboneElementBuilder[CarePlanActivityBuilder]
	outcomeCodeableConcept []*CodeableConcept
	outcomeReference       []*Reference
	progress               []*Annotation
	reference              *Reference
	detail                 *CarePlanActivityDetail
}

func NewCarePlanActivityBuilder() *CarePlanActivityBuilder {
	b := &CarePlanActivityBuilder{}
	b.self = b
	return b
}

func (b *CarePlanActivityBuilder) OutcomeCodeableConcept(v ...*CodeableConcept) *CarePlanActivityBuilder {
	b.outcomeCodeableConcept = append(b.outcomeCodeableConcept, v...)
	return b
}

func (b *CarePlanActivityBuilder) SetOutcomeCodeableConcept(v []*CodeableConcept) *CarePlanActivityBuilder {
	b.outcomeCodeableConcept = cloneList(v)
	return b
}

func (b *CarePlanActivityBuilder) OutcomeReference(v ...*Reference) *CarePlanActivityBuilder {
	b.outcomeReference = append(b.outcomeReference, v...)
	return b
}

func (b *CarePlanActivityBuilder) SetOutcomeReference(v []*Reference) *CarePlanActivityBuilder {
	b.outcomeReference = cloneList(v)
	return b
}

func (b *CarePlanActivityBuilder) Progress(v ...*Annotation) *CarePlanActivityBuilder {
	b.progress = append(b.progress, v...)
	return b
}

func (b *CarePlanActivityBuilder) SetProgress(v []*Annotation) *CarePlanActivityBuilder {
	b.progress = cloneList(v)
	return b
}

func (b *CarePlanActivityBuilder) Reference(v *Reference) *CarePlanActivityBuilder {
	b.reference = v
	return b
}

func (b *CarePlanActivityBuilder) Detail(v *CarePlanActivityDetail) *CarePlanActivityBuilder {
	b.detail = v
	return b
}

// Build validates the builder contents and returns the node.
func (b *CarePlanActivityBuilder) Build() (*CarePlanActivity, error) {
	opts := b.options()
	base, errs := b.buildBase()
	errs = append(errs,
		validation.RequireNoNilElements(b.outcomeCodeableConcept, "outcomeCodeableConcept"),
		validation.RequireNoNilElements(b.outcomeReference, "outcomeReference"),
		validation.RequireNoNilElements(b.progress, "progress"),
	)
	if opts.ReferenceTypes {
		errs = append(errs, checkReference(b.reference, "reference", "Appointment", "CommunicationRequest", "DeviceRequest", "MedicationRequest", "NutritionOrder", "Task", "ServiceRequest", "VisionPrescription", "RequestGroup"))
	}
	r := &CarePlanActivity{
		backboneElement:        base,
		outcomeCodeableConcept: cloneList(b.outcomeCodeableConcept),
		outcomeReference:       cloneList(b.outcomeReference),
		progress:               cloneList(b.progress),
		reference:              b.reference,
		detail:                 b.detail,
	}
	errs = append(errs, validation.RequireValueOrChildren(r))
	if err := validation.Join("CarePlan.activity", errs...); err != nil {
		return nil, err
	}
	return r, nil
}

// CarePlanActivityDetail is a simple summary of a planned activity suitable for a general care plan
// system (e.g. form driven) that does not know about specific resources such as procedure etc.
type CarePlanActivityDetail struct {
	backboneElement
	kind                  *Coded[CarePlanActivityKind]
	instantiatesCanonical []*Canonical
	instantiatesUri       []*Uri
	code                  *CodeableConcept
	reasonCode            []*CodeableConcept
	reasonReference       []*Reference
	goal                  []*Reference
	status                *Coded[CarePlanActivityStatus]
	statusReason          *CodeableConcept
	doNotPerform          *Boolean
	scheduled             CarePlanActivityDetailScheduled
	location              *Reference
	performer             []*Reference
	product               CarePlanActivityDetailProduct
	dailyAmount           *Quantity
	quantity              *Quantity
	description           *String
}

// CarePlanActivityDetailScheduled is the type of CarePlan.activity.detail.scheduled[x]: one of
// Timing, Period, string.
type CarePlanActivityDetailScheduled interface {
	model.Element
	isCarePlanActivityDetailScheduled()
}

func (r *Timing) isCarePlanActivityDetailScheduled() {}
func (r *Period) isCarePlanActivityDetailScheduled() {}
func (r *String) isCarePlanActivityDetailScheduled() {}

// CarePlanActivityDetailProduct is the type of CarePlan.activity.detail.product[x]: one of
// CodeableConcept, Reference.
type CarePlanActivityDetailProduct interface {
	model.Element
	isCarePlanActivityDetailProduct()
}

func (r *CodeableConcept) isCarePlanActivityDetailProduct() {}
func (r *Reference) isCarePlanActivityDetailProduct()       {}

func (r *CarePlanActivityDetail) TypeName() string {
	return "CarePlan.activity.detail"
}

func (r *CarePlanActivityDetail) Kind() *Coded[CarePlanActivityKind] {
	return r.kind
}

func (r *CarePlanActivityDetail) InstantiatesCanonical() []*Canonical {
	return cloneList(r.instantiatesCanonical)
}

func (r *CarePlanActivityDetail) InstantiatesUri() []*Uri {
	return cloneList(r.instantiatesUri)
}

func (r *CarePlanActivityDetail) Code() *CodeableConcept {
	return r.code
}

func (r *CarePlanActivityDetail) ReasonCode() []*CodeableConcept {
	return cloneList(r.reasonCode)
}

func (r *CarePlanActivityDetail) ReasonReference() []*Reference {
	return cloneList(r.reasonReference)
}

func (r *CarePlanActivityDetail) Goal() []*Reference {
	return cloneList(r.goal)
}

func (r *CarePlanActivityDetail) Status() *Coded[CarePlanActivityStatus] {
	return r.status
}

func (r *CarePlanActivityDetail) StatusReason() *CodeableConcept {
	return r.statusReason
}

func (r *CarePlanActivityDetail) DoNotPerform() *Boolean {
	return r.doNotPerform
}

func (r *CarePlanActivityDetail) Scheduled() CarePlanActivityDetailScheduled {
	return r.scheduled
}

func (r *CarePlanActivityDetail) Location() *Reference {
	return r.location
}

func (r *CarePlanActivityDetail) Performer() []*Reference {
	return cloneList(r.performer)
}

func (r *CarePlanActivityDetail) Product() CarePlanActivityDetailProduct {
	return r.product
}

func (r *CarePlanActivityDetail) DailyAmount() *Quantity {
	return r.dailyAmount
}

func (r *CarePlanActivityDetail) Quantity() *Quantity {
	return r.quantity
}

func (r *CarePlanActivityDetail) Description() *String {
	return r.description
}

func (r *CarePlanActivityDetail) HasChildren() bool {
	return r.hasBaseChildren() ||
		r.kind != nil ||
		len(r.instantiatesCanonical) > 0 ||
		len(r.instantiatesUri) > 0 ||
		r.code != nil ||
		len(r.reasonCode) > 0 ||
		len(r.reasonReference) > 0 ||
		len(r.goal) > 0 ||
		r.status != nil ||
		r.statusReason != nil ||
		r.doNotPerform != nil ||
		r.scheduled != nil ||
		r.location != nil ||
		len(r.performer) > 0 ||
		r.product != nil ||
		r.dailyAmount != nil ||
		r.quantity != nil ||
		r.description != nil
}

func (r *CarePlanActivityDetail) Accept(name string, index int, v model.Visitor) {
	if !v.PreVisit(r) {
		return
	}
	v.VisitStart(name, index, r)
	if v.Visit(name, index, r) {
		r.visitBase(v)
		if r.kind != nil {
			r.kind.Accept("kind", -1, v)
		}
		model.AcceptList(v, "instantiatesCanonical", "canonical", r.instantiatesCanonical)
		model.AcceptList(v, "instantiatesUri", "uri", r.instantiatesUri)
		if r.code != nil {
			r.code.Accept("code", -1, v)
		}
		model.AcceptList(v, "reasonCode", "CodeableConcept", r.reasonCode)
		model.AcceptList(v, "reasonReference", "Reference", r.reasonReference)
		model.AcceptList(v, "goal", "Reference", r.goal)
		if r.status != nil {
			r.status.Accept("status", -1, v)
		}
		if r.statusReason != nil {
			r.statusReason.Accept("statusReason", -1, v)
		}
		if r.doNotPerform != nil {
			r.doNotPerform.Accept("doNotPerform", -1, v)
		}
		model.AcceptChoice(v, "scheduled", r.scheduled)
		if r.location != nil {
			r.location.Accept("location", -1, v)
		}
		model.AcceptList(v, "performer", "Reference", r.performer)
		model.AcceptChoice(v, "product", r.product)
		if r.dailyAmount != nil {
			r.dailyAmount.Accept("dailyAmount", -1, v)
		}
		if r.quantity != nil {
			r.quantity.Accept("quantity", -1, v)
		}
		if r.description != nil {
			r.description.Accept("description", -1, v)
		}
	}
	v.VisitEnd(name, index, r)
	v.PostVisit(r)
}

func (r *CarePlanActivityDetail) String() string {
	return visit.Sprint(r)
}

// ToBuilder returns a builder initialized with the contents of r.
func (r *CarePlanActivityDetail) ToBuilder() *CarePlanActivityDetailBuilder {
	b := NewCarePlanActivityDetailBuilder(r.status)
	b.initBase(&r.backboneElement)
	b.kind = r.kind
	b.instantiatesCanonical = cloneList(r.instantiatesCanonical)
	b.instantiatesUri = cloneList(r.instantiatesUri)
	b.code = r.code
	b.reasonCode = cloneList(r.reasonCode)
	b.reasonReference = cloneList(r.reasonReference)
	b.goal = cloneList(r.goal)
	b.statusReason = r.statusReason
	b.doNotPerform = r.doNotPerform
	b.scheduled = r.scheduled
	b.location = r.location
	b.performer = cloneList(r.performer)
	b.product = r.product
	b.dailyAmount = r.dailyAmount
	b.quantity = r.quantity
	b.description = r.description
	return b
}

// CarePlanActivityDetailBuilder builds [CarePlanActivityDetail] nodes.
type CarePlanActivityDetailBuilder struct {
	backboneElementBuilder[CarePlanActivityDetailBuilder]
	kind                  *Coded[CarePlanActivityKind]
	instantiatesCanonical []*Canonical
	instantiatesUri       []*Uri
	code                  *CodeableConcept
	reasonCode            []*CodeableConcept
	reasonReference       []*Reference
	goal                  []*Reference
	status                *Coded[CarePlanActivityStatus]
	statusReason          *CodeableConcept
	doNotPerform          *Boolean
	scheduled             model.Element
	location              *Reference
	performer             []*Reference
	product               model.Element
	dailyAmount           *Quantity
	quantity              *Quantity
	description           *String
}

// NewCarePlanActivityDetailBuilder returns a builder for [CarePlanActivityDetail] with the required elements set.
func NewCarePlanActivityDetailBuilder(status *Coded[CarePlanActivityStatus]) *CarePlanActivityDetailBuilder {
	b := &CarePlanActivityDetailBuilder{
		status: status,
	}
	b.self = b
	return b
}

func (b *CarePlanActivityDetailBuilder) Kind(v *Coded[CarePlanActivityKind]) *CarePlanActivityDetailBuilder {
	b.kind = v
	return b
}

func (b *CarePlanActivityDetailBuilder) InstantiatesCanonical(v ...*Canonical) *CarePlanActivityDetailBuilder {
	b.instantiatesCanonical = append(b.instantiatesCanonical, v...)
	return b
}

func (b *CarePlanActivityDetailBuilder) SetInstantiatesCanonical(v []*Canonical) *CarePlanActivityDetailBuilder {
	b.instantiatesCanonical = cloneList(v)
	return b
}

func (b *CarePlanActivityDetailBuilder) InstantiatesUri(v ...*Uri) *CarePlanActivityDetailBuilder {
	b.instantiatesUri = append(b.instantiatesUri, v...)
	return b
}

func (b *CarePlanActivityDetailBuilder) SetInstantiatesUri(v []*Uri) *CarePlanActivityDetailBuilder {
	b.instantiatesUri = cloneList(v)
	return b
}

func (b *CarePlanActivityDetailBuilder) Code(v *CodeableConcept) *CarePlanActivityDetailBuilder {
	b.code = v
	return b
}

func (b *CarePlanActivityDetailBuilder) ReasonCode(v ...*CodeableConcept) *CarePlanActivityDetailBuilder {
	b.reasonCode = append(b.reasonCode, v...)
	return b
}

func (b *CarePlanActivityDetailBuilder) SetReasonCode(v []*CodeableConcept) *CarePlanActivityDetailBuilder {
	b.reasonCode = cloneList(v)
	return b
}

func (b *CarePlanActivityDetailBuilder) ReasonReference(v ...*Reference) *CarePlanActivityDetailBuilder {
	b.reasonReference = append(b.reasonReference, v...)
	return b
}

func (b *CarePlanActivityDetailBuilder) SetReasonReference(v []*Reference) *CarePlanActivityDetailBuilder {
	b.reasonReference = cloneList(v)
	return b
}

func (b *CarePlanActivityDetailBuilder) Goal(v ...*Reference) *CarePlanActivityDetailBuilder {
	b.goal = append(b.goal, v...)
	return b
}

func (b *CarePlanActivityDetailBuilder) SetGoal(v []*Reference) *CarePlanActivityDetailBuilder {
	b.goal = cloneList(v)
	return b
}

func (b *CarePlanActivityDetailBuilder) Status(v *Coded[CarePlanActivityStatus]) *CarePlanActivityDetailBuilder {
	b.status = v
	return b
}

func (b *CarePlanActivityDetailBuilder) StatusReason(v *CodeableConcept) *CarePlanActivityDetailBuilder {
	b.statusReason = v
	return b
}

func (b *CarePlanActivityDetailBuilder) DoNotPerform(v *Boolean) *CarePlanActivityDetailBuilder {
	b.doNotPerform = v
	return b
}

func (b *CarePlanActivityDetailBuilder) Scheduled(v CarePlanActivityDetailScheduled) *CarePlanActivityDetailBuilder {
	b.scheduled = v
	return b
}

// ScheduledElement sets scheduled without static type check, Build fails unless it is one of Timing, Period, string.
func (b *CarePlanActivityDetailBuilder) ScheduledElement(v model.Element) *CarePlanActivityDetailBuilder {
	b.scheduled = v
	return b
}

func (b *CarePlanActivityDetailBuilder) Location(v *Reference) *CarePlanActivityDetailBuilder {
	b.location = v
	return b
}

func (b *CarePlanActivityDetailBuilder) Performer(v ...*Reference) *CarePlanActivityDetailBuilder {
	b.performer = append(b.performer, v...)
	return b
}

func (b *CarePlanActivityDetailBuilder) SetPerformer(v []*Reference) *CarePlanActivityDetailBuilder {
	b.performer = cloneList(v)
	return b
}

func (b *CarePlanActivityDetailBuilder) Product(v CarePlanActivityDetailProduct) *CarePlanActivityDetailBuilder {
	b.product = v
	return b
}

// ProductElement sets product without static type check, Build fails unless it is one of CodeableConcept, Reference.
func (b *CarePlanActivityDetailBuilder) ProductElement(v model.Element) *CarePlanActivityDetailBuilder {
	b.product = v
	return b
}

func (b *CarePlanActivityDetailBuilder) DailyAmount(v *Quantity) *CarePlanActivityDetailBuilder {
	b.dailyAmount = v
	return b
}

func (b *CarePlanActivityDetailBuilder) Quantity(v *Quantity) *CarePlanActivityDetailBuilder {
	b.quantity = v
	return b
}

func (b *CarePlanActivityDetailBuilder) Description(v *String) *CarePlanActivityDetailBuilder {
	b.description = v
	return b
}

// Build validates the builder contents and returns the node.
func (b *CarePlanActivityDetailBuilder) Build() (*CarePlanActivityDetail, error) {
	opts := b.options()
	base, errs := b.buildBase()
	scheduled, err := validation.ChoiceElement[CarePlanActivityDetailScheduled](b.scheduled, "scheduled", "Timing", "Period", "string")
	errs = append(errs, err)
	product, err := validation.ChoiceElement[CarePlanActivityDetailProduct](b.product, "product", "CodeableConcept", "Reference")
	errs = append(errs, err)
	errs = append(errs,
		validation.RequireNoNilElements(b.instantiatesCanonical, "instantiatesCanonical"),
		validation.RequireNoNilElements(b.instantiatesUri, "instantiatesUri"),
		validation.RequireNoNilElements(b.reasonCode, "reasonCode"),
		validation.RequireNoNilElements(b.reasonReference, "reasonReference"),
		validation.RequireNoNilElements(b.goal, "goal"),
		validation.RequireNonNull(b.status, "status"),
		validation.RequireNoNilElements(b.performer, "performer"),
	)
	if b.dailyAmount != nil {
		errs = append(errs, validation.Prohibited(b.dailyAmount.comparator, "dailyAmount.comparator"))
	}
	if b.quantity != nil {
		errs = append(errs, validation.Prohibited(b.quantity.comparator, "quantity.comparator"))
	}
	if opts.ReferenceTypes {
		errs = append(errs, checkReferences(b.reasonReference, "reasonReference", "Condition", "Observation", "DiagnosticReport", "DocumentReference"))
		errs = append(errs, checkReferences(b.goal, "goal", "Goal"))
		errs = append(errs, checkReference(b.location, "location", "Location"))
		errs = append(errs, checkReferences(b.performer, "performer", "Practitioner", "PractitionerRole", "Organization", "RelatedPerson", "Patient", "CareTeam", "HealthcareService", "Device"))
		if ref, ok := product.(*Reference); ok {
			errs = append(errs, checkReference(ref, "product", "Medication", "Substance"))
		}
	}
	r := &CarePlanActivityDetail{
		backboneElement:       base,
		kind:                  b.kind,
		instantiatesCanonical: cloneList(b.instantiatesCanonical),
		instantiatesUri:       cloneList(b.instantiatesUri),
		code:                  b.code,
		reasonCode:            cloneList(b.reasonCode),
		reasonReference:       cloneList(b.reasonReference),
		goal:                  cloneList(b.goal),
		status:                b.status,
		statusReason:          b.statusReason,
		doNotPerform:          b.doNotPerform,
		scheduled:             scheduled,
		location:              b.location,
		performer:             cloneList(b.performer),
		product:               product,
		dailyAmount:           b.dailyAmount,
		quantity:              b.quantity,
		description:           b.description,
	}
	errs = append(errs, validation.RequireValueOrChildren(r))
	if err := validation.Join("CarePlan.activity.detail", errs...); err != nil {
		return nil, err
	}
	return r, nil
}
