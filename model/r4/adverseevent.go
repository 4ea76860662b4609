package r4

import (
	"github.com/damedic/fhir-model-go/model"
	"github.com/damedic/fhir-model-go/model/validation"
	"github.com/damedic/fhir-model-go/model/visit"
)

// AdverseEvent is an event that may have caused unintended physical injury to a subject.
//
// It records both actual events and potential events (near misses) that could have resulted in
// harm.
type AdverseEvent struct {
	domainResource
	identifier            *Identifier
	actuality             *Coded[AdverseEventActuality]
	category              []*CodeableConcept
	event                 *CodeableConcept
	subject               *Reference
	encounter             *Reference
	date                  *DateTime
	detected              *DateTime
	recordedDate          *DateTime
	resultingCondition    []*Reference
	location              *Reference
	seriousness           *CodeableConcept
	severity              *CodeableConcept
	outcome               *CodeableConcept
	recorder              *Reference
	contributor           []*Reference
	suspectEntity         []*AdverseEventSuspectEntity
	subjectMedicalHistory []*Reference
	referenceDocument     []*Reference
	study                 []*Reference
}

func (r *AdverseEvent) TypeName() string {
	return "AdverseEvent"
}

func (r *AdverseEvent) ResourceType() string {
	return "AdverseEvent"
}

// Identifier returns the business identifier for the event.
func (r *AdverseEvent) Identifier() *Identifier {
	return r.identifier
}

func (r *AdverseEvent) Actuality() *Coded[AdverseEventActuality] {
	return r.actuality
}

func (r *AdverseEvent) Category() []*CodeableConcept {
	return cloneList(r.category)
}

// Event is the type of the event itself in relation to the subject.
func (r *AdverseEvent) Event() *CodeableConcept {
	return r.event
}

func (r *AdverseEvent) Subject() *Reference {
	return r.subject
}

func (r *AdverseEvent) Encounter() *Reference {
	return r.encounter
}

// Date returns when the event occurred.
func (r *AdverseEvent) Date() *DateTime {
	return r.date
}

func (r *AdverseEvent) Detected() *DateTime {
	return r.detected
}

func (r *AdverseEvent) RecordedDate() *DateTime {
	return r.recordedDate
}

func (r *AdverseEvent) ResultingCondition() []*Reference {
	return cloneList(r.resultingCondition)
}

func (r *AdverseEvent) Location() *Reference {
	return r.location
}

func (r *AdverseEvent) Seriousness() *CodeableConcept {
	return r.seriousness
}

func (r *AdverseEvent) Severity() *CodeableConcept {
	return r.severity
}

func (r *AdverseEvent) Outcome() *CodeableConcept {
	return r.outcome
}

func (r *AdverseEvent) Recorder() *Reference {
	return r.recorder
}

func (r *AdverseEvent) Contributor() []*Reference {
	return cloneList(r.contributor)
}

func (r *AdverseEvent) SuspectEntity() []*AdverseEventSuspectEntity {
	return cloneList(r.suspectEntity)
}

func (r *AdverseEvent) SubjectMedicalHistory() []*Reference {
	return cloneList(r.subjectMedicalHistory)
}

func (r *AdverseEvent) ReferenceDocument() []*Reference {
	return cloneList(r.referenceDocument)
}

func (r *AdverseEvent) Study() []*Reference {
	return cloneList(r.study)
}

func (r *AdverseEvent) HasChildren() bool {
	return r.hasBaseChildren() ||
		r.identifier != nil ||
		r.actuality != nil ||
		len(r.category) > 0 ||
		r.event != nil ||
		r.subject != nil ||
		r.encounter != nil ||
		r.date != nil ||
		r.detected != nil ||
		r.recordedDate != nil ||
		len(r.resultingCondition) > 0 ||
		r.location != nil ||
		r.seriousness != nil ||
		r.severity != nil ||
		r.outcome != nil ||
		r.recorder != nil ||
		len(r.contributor) > 0 ||
		len(r.suspectEntity) > 0 ||
		len(r.subjectMedicalHistory) > 0 ||
		len(r.referenceDocument) > 0 ||
		len(r.study) > 0
}

func (r *AdverseEvent) Accept(name string, index int, v model.Visitor) {
	if !v.PreVisit(r) {
		return
	}
	v.VisitStart(name, index, r)
	if v.Visit(name, index, r) {
		r.visitBase(v)
		if r.identifier != nil {
			r.identifier.Accept("identifier", -1, v)
		}
		if r.actuality != nil {
			r.actuality.Accept("actuality", -1, v)
		}
		model.AcceptList(v, "category", "CodeableConcept", r.category)
		if r.event != nil {
			r.event.Accept("event", -1, v)
		}
		if r.subject != nil {
			r.subject.Accept("subject", -1, v)
		}
		if r.encounter != nil {
			r.encounter.Accept("encounter", -1, v)
		}
		if r.date != nil {
			r.date.Accept("date", -1, v)
		}
		if r.detected != nil {
			r.detected.Accept("detected", -1, v)
		}
		if r.recordedDate != nil {
			r.recordedDate.Accept("recordedDate", -1, v)
		}
		model.AcceptList(v, "resultingCondition", "Reference", r.resultingCondition)
		if r.location != nil {
			r.location.Accept("location", -1, v)
		}
		if r.seriousness != nil {
			r.seriousness.Accept("seriousness", -1, v)
		}
		if r.severity != nil {
			r.severity.Accept("severity", -1, v)
		}
		if r.outcome != nil {
			r.outcome.Accept("outcome", -1, v)
		}
		if r.recorder != nil {
			r.recorder.Accept("recorder", -1, v)
		}
		model.AcceptList(v, "contributor", "Reference", r.contributor)
		model.AcceptList(v, "suspectEntity", "AdverseEvent.suspectEntity", r.suspectEntity)
		model.AcceptList(v, "subjectMedicalHistory", "Reference", r.subjectMedicalHistory)
		model.AcceptList(v, "referenceDocument", "Reference", r.referenceDocument)
		model.AcceptList(v, "study", "Reference", r.study)
	}
	v.VisitEnd(name, index, r)
	v.PostVisit(r)
}

func (r *AdverseEvent) String() string {
	return visit.Sprint(r)
}

// ToBuilder returns a builder initialized with the contents of r.
func (r *AdverseEvent) ToBuilder() *AdverseEventBuilder {
	b := NewAdverseEventBuilder(r.actuality, r.subject)
	b.initBase(&r.domainResource)
	b.identifier = r.identifier
	b.category = cloneList(r.category)
	b.event = r.event
	b.encounter = r.encounter
	b.date = r.date
	b.detected = r.detected
	b.recordedDate = r.recordedDate
	b.resultingCondition = cloneList(r.resultingCondition)
	b.location = r.location
	b.seriousness = r.seriousness
	b.severity = r.severity
	b.outcome = r.outcome
	b.recorder = r.recorder
	b.contributor = cloneList(r.contributor)
	b.suspectEntity = cloneList(r.suspectEntity)
	b.subjectMedicalHistory = cloneList(r.subjectMedicalHistory)
	b.referenceDocument = cloneList(r.referenceDocument)
	b.study = cloneList(r.study)
	return b
}

// AdverseEventBuilder builds [AdverseEvent] nodes.
type AdverseEventBuilder struct {
	domainResourceBuilder[AdverseEventBuilder]
	identifier            *Identifier
	actuality             *Coded[AdverseEventActuality]
	category              []*CodeableConcept
	event                 *CodeableConcept
	subject               *Reference
	encounter             *Reference
	date                  *DateTime
	detected              *DateTime
	recordedDate          *DateTime
	resultingCondition    []*Reference
	location              *Reference
	seriousness           *CodeableConcept
	severity              *CodeableConcept
	outcome               *CodeableConcept
	recorder              *Reference
	contributor           []*Reference
	suspectEntity         []*AdverseEventSuspectEntity
	subjectMedicalHistory []*Reference
	referenceDocument     []*Reference
	study                 []*Reference
}

// NewAdverseEventBuilder returns a builder for [AdverseEvent] with the required elements set.
func NewAdverseEventBuilder(actuality *Coded[AdverseEventActuality], subject *Reference) *AdverseEventBuilder {
	b := &AdverseEventBuilder{
		actuality: actuality,
		subject:   subject,
	}
	b.self = b
	return b
}

func (b *AdverseEventBuilder) Identifier(v *Identifier) *AdverseEventBuilder {
	b.identifier = v
	return b
}

func (b *AdverseEventBuilder) Actuality(v *Coded[AdverseEventActuality]) *AdverseEventBuilder {
	b.actuality = v
	return b
}

func (b *AdverseEventBuilder) Category(v ...*CodeableConcept) *AdverseEventBuilder {
	b.category = append(b.category, v...)
	return b
}

func (b *AdverseEventBuilder) SetCategory(v []*CodeableConcept) *AdverseEventBuilder {
	b.category = cloneList(v)
	return b
}

func (b *AdverseEventBuilder) Event(v *CodeableConcept) *AdverseEventBuilder {
	b.event = v
	return b
}

func (b *AdverseEventBuilder) Subject(v *Reference) *AdverseEventBuilder {
	b.subject = v
	return b
}

func (b *AdverseEventBuilder) Encounter(v *Reference) *AdverseEventBuilder {
	b.encounter = v
	return b
}

func (b *AdverseEventBuilder) Date(v *DateTime) *AdverseEventBuilder {
	b.date = v
	return b
}

func (b *AdverseEventBuilder) Detected(v *DateTime) *AdverseEventBuilder {
	b.detected = v
	return b
}

func (b *AdverseEventBuilder) RecordedDate(v *DateTime) *AdverseEventBuilder {
	b.recordedDate = v
	return b
}

func (b *AdverseEventBuilder) ResultingCondition(v ...*Reference) *AdverseEventBuilder {
	b.resultingCondition = append(b.resultingCondition, v...)
	return b
}

func (b *AdverseEventBuilder) SetResultingCondition(v []*Reference) *AdverseEventBuilder {
	b.resultingCondition = cloneList(v)
	return b
}

func (b *AdverseEventBuilder) Location(v *Reference) *AdverseEventBuilder {
	b.location = v
	return b
}

func (b *AdverseEventBuilder) Seriousness(v *CodeableConcept) *AdverseEventBuilder {
	b.seriousness = v
	return b
}

func (b *AdverseEventBuilder) Severity(v *CodeableConcept) *AdverseEventBuilder {
	b.severity = v
	return b
}

func (b *AdverseEventBuilder) Outcome(v *CodeableConcept) *AdverseEventBuilder {
	b.outcome = v
	return b
}

func (b *AdverseEventBuilder) Recorder(v *Reference) *AdverseEventBuilder {
	b.recorder = v
	return b
}

func (b *AdverseEventBuilder) Contributor(v ...*Reference) *AdverseEventBuilder {
	b.contributor = append(b.contributor, v...)
	return b
}

func (b *AdverseEventBuilder) SetContributor(v []*Reference) *AdverseEventBuilder {
	b.contributor = cloneList(v)
	return b
}

func (b *AdverseEventBuilder) SuspectEntity(v ...*AdverseEventSuspectEntity) *AdverseEventBuilder {
	b.suspectEntity = append(b.suspectEntity, v...)
	return b
}

func (b *AdverseEventBuilder) SetSuspectEntity(v []*AdverseEventSuspectEntity) *AdverseEventBuilder {
	b.suspectEntity = cloneList(v)
	return b
}

func (b *AdverseEventBuilder) SubjectMedicalHistory(v ...*Reference) *AdverseEventBuilder {
	b.subjectMedicalHistory = append(b.subjectMedicalHistory, v...)
	return b
}

func (b *AdverseEventBuilder) SetSubjectMedicalHistory(v []*Reference) *AdverseEventBuilder {
	b.subjectMedicalHistory = cloneList(v)
	return b
}

func (b *AdverseEventBuilder) ReferenceDocument(v ...*Reference) *AdverseEventBuilder {
	b.referenceDocument = append(b.referenceDocument, v...)
	return b
}

func (b *AdverseEventBuilder) SetReferenceDocument(v []*Reference) *AdverseEventBuilder {
	b.referenceDocument = cloneList(v)
	return b
}

func (b *AdverseEventBuilder) Study(v ...*Reference) *AdverseEventBuilder {
	b.study = append(b.study, v...)
	return b
}

func (b *AdverseEventBuilder) SetStudy(v []*Reference) *AdverseEventBuilder {
	b.study = cloneList(v)
	return b
}

// Build validates the builder contents and returns the node.
func (b *AdverseEventBuilder) Build() (*AdverseEvent, error) {
	opts := b.options()
	base, errs := b.buildBase()
	errs = append(errs,
		validation.RequireNonNull(b.actuality, "actuality"),
		validation.RequireNoNilElements(b.category, "category"),
		validation.RequireNonNull(b.subject, "subject"),
		validation.RequireNoNilElements(b.resultingCondition, "resultingCondition"),
		validation.RequireNoNilElements(b.contributor, "contributor"),
		validation.RequireNoNilElements(b.suspectEntity, "suspectEntity"),
		validation.RequireNoNilElements(b.subjectMedicalHistory, "subjectMedicalHistory"),
		validation.RequireNoNilElements(b.referenceDocument, "referenceDocument"),
		validation.RequireNoNilElements(b.study, "study"),
	)
	if opts.ReferenceTypes {
		errs = append(errs, checkReference(b.subject, "subject", "Patient", "Group", "Practitioner", "RelatedPerson"))
		errs = append(errs, checkReference(b.encounter, "encounter", "Encounter"))
		errs = append(errs, checkReferences(b.resultingCondition, "resultingCondition", "Condition"))
		errs = append(errs, checkReference(b.location, "location", "Location"))
		errs = append(errs, checkReference(b.recorder, "recorder", "Patient", "Practitioner", "PractitionerRole", "RelatedPerson"))
		errs = append(errs, checkReferences(b.contributor, "contributor", "Practitioner", "PractitionerRole", "Device"))
		errs = append(errs, checkReferences(b.subjectMedicalHistory, "subjectMedicalHistory", "Condition", "Observation", "AllergyIntolerance", "FamilyMemberHistory", "Immunization", "Procedure", "Media", "DocumentReference"))
		errs = append(errs, checkReferences(b.referenceDocument, "referenceDocument", "DocumentReference"))
		errs = append(errs, checkReferences(b.study, "study", "ResearchStudy"))
	}
	if opts.ValueSetBindings {
		errs = append(errs, checkBinding(b.severity, "severity", "http://hl7.org/fhir/ValueSet/adverse-event-severity", "http://terminology.hl7.org/CodeSystem/adverse-event-severity", "mild", "moderate", "severe"))
		errs = append(errs, checkBinding(b.outcome, "outcome", "http://hl7.org/fhir/ValueSet/adverse-event-outcome", "http://terminology.hl7.org/CodeSystem/adverse-event-outcome", "resolved", "recovering", "ongoing", "resolvedWithSequelae", "fatal", "unknown"))
	}
	r := &AdverseEvent{
		domainResource:        base,
		identifier:            b.identifier,
		actuality:             b.actuality,
		category:              cloneList(b.category),
		event:                 b.event,
		subject:               b.subject,
		encounter:             b.encounter,
		date:                  b.date,
		detected:              b.detected,
		recordedDate:          b.recordedDate,
		resultingCondition:    cloneList(b.resultingCondition),
		location:              b.location,
		seriousness:           b.seriousness,
		severity:              b.severity,
		outcome:               b.outcome,
		recorder:              b.recorder,
		contributor:           cloneList(b.contributor),
		suspectEntity:         cloneList(b.suspectEntity),
		subjectMedicalHistory: cloneList(b.subjectMedicalHistory),
		referenceDocument:     cloneList(b.referenceDocument),
		study:                 cloneList(b.study),
	}
	if err := validation.Join("AdverseEvent", errs...); err != nil {
		return nil, err
	}
	return r, nil
}

// AdverseEventSuspectEntity describes an entity that is suspected to have caused the event.
type AdverseEventSuspectEntity struct {
	backboneElement
	instance  *Reference
	causality []*AdverseEventSuspectEntityCausality
}

func (r *AdverseEventSuspectEntity) TypeName() string {
	return "AdverseEvent.suspectEntity"
}

func (r *AdverseEventSuspectEntity) Instance() *Reference {
	return r.instance
}

func (r *AdverseEventSuspectEntity) Causality() []*AdverseEventSuspectEntityCausality {
	return cloneList(r.causality)
}

func (r *AdverseEventSuspectEntity) HasChildren() bool {
	return r.hasBaseChildren() ||
		r.instance != nil ||
		len(r.causality) > 0
}

func (r *AdverseEventSuspectEntity) Accept(name string, index int, v model.Visitor) {
	if !v.PreVisit(r) {
		return
	}
	v.VisitStart(name, index, r)
	if v.Visit(name, index, r) {
		r.visitBase(v)
		if r.instance != nil {
			r.instance.Accept("instance", -1, v)
		}
		model.AcceptList(v, "causality", "AdverseEvent.suspectEntity.causality", r.causality)
	}
	v.VisitEnd(name, index, r)
	v.PostVisit(r)
}

func (r *AdverseEventSuspectEntity) String() string {
	return visit.Sprint(r)
}

// ToBuilder returns a builder initialized with the contents of r.
func (r *AdverseEventSuspectEntity) ToBuilder() *AdverseEventSuspectEntityBuilder {
	b := NewAdverseEventSuspectEntityBuilder(r.instance)
	b.initBase(&r.backboneElement)
	b.causality = cloneList(r.causality)
	return b
}

// AdverseEventSuspectEntityBuilder builds [AdverseEventSuspectEntity] nodes.
type AdverseEventSuspectEntityBuilder struct {
	backboneElementBuilder[AdverseEventSuspectEntityBuilder]
	instance  *Reference
	causality []*AdverseEventSuspectEntityCausality
}

// NewAdverseEventSuspectEntityBuilder returns a builder for [AdverseEventSuspectEntity] with the required elements set.
func NewAdverseEventSuspectEntityBuilder(instance *Reference) *AdverseEventSuspectEntityBuilder {
	b := &AdverseEventSuspectEntityBuilder{
		instance: instance,
	}
	b.self = b
	return b
}

func (b *AdverseEventSuspectEntityBuilder) Instance(v *Reference) *AdverseEventSuspectEntityBuilder {
	b.instance = v
	return b
}

func (b *AdverseEventSuspectEntityBuilder) Causality(v ...*AdverseEventSuspectEntityCausality) *AdverseEventSuspectEntityBuilder {
	b.causality = append(b.causality, v...)
	return b
}

func (b *AdverseEventSuspectEntityBuilder) SetCausality(v []*AdverseEventSuspectEntityCausality) *AdverseEventSuspectEntityBuilder {
	b.causality = cloneList(v)
	return b
}

// Build validates the builder contents and returns the node.
func (b *AdverseEventSuspectEntityBuilder) Build() (*AdverseEventSuspectEntity, error) {
	opts := b.options()
	base, errs := b.buildBase()
	errs = append(errs,
		validation.RequireNonNull(b.instance, "instance"),
		validation.RequireNoNilElements(b.causality, "causality"),
	)
	if opts.ReferenceTypes {
		errs = append(errs, checkReference(b.instance, "instance", "Immunization", "Procedure", "Substance", "Medication", "MedicationAdministration", "MedicationStatement", "Device"))
	}
	r := &AdverseEventSuspectEntity{
		backboneElement: base,
		instance:        b.instance,
		causality:       cloneList(b.causality),
	}
	errs = append(errs, validation.RequireValueOrChildren(r))
	if err := validation.Join("AdverseEvent.suspectEntity", errs...); err != nil {
		return nil, err
	}
	return r, nil
}

type AdverseEventSuspectEntityCausality struct {
	backboneElement
	assessment         *CodeableConcept
	productRelatedness *String
	author             *Reference
	method             *CodeableConcept
}

func (r *AdverseEventSuspectEntityCausality) TypeName() string {
	return "AdverseEvent.suspectEntity.causality"
}

func (r *AdverseEventSuspectEntityCausality) Assessment() *CodeableConcept {
	return r.assessment
}

func (r *AdverseEventSuspectEntityCausality) ProductRelatedness() *String {
	return r.productRelatedness
}

func (r *AdverseEventSuspectEntityCausality) Author() *Reference {
	return r.author
}

func (r *AdverseEventSuspectEntityCausality) Method() *CodeableConcept {
	return r.method
}

func (r *AdverseEventSuspectEntityCausality) HasChildren() bool {
	return r.hasBaseChildren() ||
		r.assessment != nil ||
		r.productRelatedness != nil ||
		r.author != nil ||
		r.method != nil
}

func (r *AdverseEventSuspectEntityCausality) Accept(name string, index int, v model.Visitor) {
	if !v.PreVisit(r) {
		return
	}
	v.VisitStart(name, index, r)
	if v.Visit(name, index, r) {
		r.visitBase(v)
		if r.assessment != nil {
			r.assessment.Accept("assessment", -1, v)
		}
		if r.productRelatedness != nil {
			r.productRelatedness.Accept("productRelatedness", -1, v)
		}
		if r.author != nil {
			r.author.Accept("author", -1, v)
		}
		if r.method != nil {
			r.method.Accept("method", -1, v)
		}
	}
	v.VisitEnd(name, index, r)
	v.PostVisit(r)
}

func (r *AdverseEventSuspectEntityCausality) String() string {
	return visit.Sprint(r)
}

// ToBuilder returns a builder initialized with the contents of r.
func (r *AdverseEventSuspectEntityCausality) ToBuilder() *AdverseEventSuspectEntityCausalityBuilder {
	b := NewAdverseEventSuspectEntityCausalityBuilder()
	b.initBase(&r.backboneElement)
	b.assessment = r.assessment
	b.productRelatedness = r.productRelatedness
	b.author = r.author
	b.method = r.method
	return b
}

// AdverseEventSuspectEntityCausalityBuilder builds [AdverseEventSuspectEntityCausality] nodes.
type AdverseEventSuspectEntityCausalityBuilder struct {
	backboneElementBuilder[AdverseEventSuspectEntityCausalityBuilder]
	assessment         *CodeableConcept
	productRelatedness *String
	author             *Reference
	method             *CodeableConcept
}

func NewAdverseEventSuspectEntityCausalityBuilder() *AdverseEventSuspectEntityCausalityBuilder {
	b := &AdverseEventSuspectEntityCausalityBuilder{}
	b.self = b
	return b
}

func (b *AdverseEventSuspectEntityCausalityBuilder) Assessment(v *CodeableConcept) *AdverseEventSuspectEntityCausalityBuilder {
	b.assessment = v
	return b
}

func (b *AdverseEventSuspectEntityCausalityBuilder) ProductRelatedness(v *String) *AdverseEventSuspectEntityCausalityBuilder {
	b.productRelatedness = v
	return b
}

func (b *AdverseEventSuspectEntityCausalityBuilder) Author(v *Reference) *AdverseEventSuspectEntityCausalityBuilder {
	b.author = v
	return b
}

func (b *AdverseEventSuspectEntityCausalityBuilder) Method(v *CodeableConcept) *AdverseEventSuspectEntityCausalityBuilder {
	b.method = v
	return b
}

// Build validates the builder contents and returns the node.
func (b *AdverseEventSuspectEntityCausalityBuilder) Build() (*AdverseEventSuspectEntityCausality, error) {
	opts := b.options()
	base, errs := b.buildBase()
	if opts.ReferenceTypes {
		errs = append(errs, checkReference(b.author, "author", "Practitioner", "PractitionerRole"))
	}
	r := &AdverseEventSuspectEntityCausality{
		backboneElement:    base,
		assessment:         b.assessment,
		productRelatedness: b.productRelatedness,
		author:             b.author,
		method:             b.method,
	}
	errs = append(errs, validation.RequireValueOrChildren(r))
	if err := validation.Join("AdverseEvent.suspectEntity.causality", errs...); err != nil {
		return nil, err
	}
	return r, nil
}
