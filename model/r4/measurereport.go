package r4

import (
	"github.com/damedic/fhir-model-go/model"
	"github.com/damedic/fhir-model-go/model/validation"
	"github.com/damedic/fhir-model-go/model/visit"
)

// MeasureReport contains the results of the calculation of a measure.
type MeasureReport struct {
	domainResource
	identifier          []*Identifier
	status              *Coded[MeasureReportStatus]
	typ                 *Coded[MeasureReportType]
	measure             *Canonical
	subject             *Reference
	date                *DateTime
	reporter            *Reference
	period              *Period
	improvementNotation *CodeableConcept
	group               []*MeasureReportGroup
	evaluatedResource   []*Reference
}

func (r *MeasureReport) TypeName() string {
	return "MeasureReport"
}

func (r *MeasureReport) ResourceType() string {
	return "MeasureReport"
}

func (r *MeasureReport) Identifier() []*Identifier {
	return cloneList(r.identifier)
}

func (r *MeasureReport) Status() *Coded[MeasureReportStatus] {
	return r.status
}

func (r *MeasureReport) Type() *Coded[MeasureReportType] {
	return r.typ
}

// Measure is the canonical reference to the measure that was calculated.
func (r *MeasureReport) Measure() *Canonical {
	return r.measure
}

func (r *MeasureReport) Subject() *Reference {
	return r.subject
}

func (r *MeasureReport) Date() *DateTime {
	return r.date
}

func (r *MeasureReport) Reporter() *Reference {
	return r.reporter
}

func (r *MeasureReport) Period() *Period {
	return r.period
}

func (r *MeasureReport) ImprovementNotation() *CodeableConcept {
	return r.improvementNotation
}

func (r *MeasureReport) Group() []*MeasureReportGroup {
	return cloneList(r.group)
}

func (r *MeasureReport) EvaluatedResource() []*Reference {
	return cloneList(r.evaluatedResource)
}

func (r *MeasureReport) HasChildren() bool {
	return r.hasBaseChildren() ||
		len(r.identifier) > 0 ||
		r.status != nil ||
		r.typ != nil ||
		r.measure != nil ||
		r.subject != nil ||
		r.date != nil ||
		r.reporter != nil ||
		r.period != nil ||
		r.improvementNotation != nil ||
		len(r.group) > 0 ||
		len(r.evaluatedResource) > 0
}

func (r *MeasureReport) Accept(name string, index int, v model.Visitor) {
	if !v.PreVisit(r) {
		return
	}
	v.VisitStart(name, index, r)
	if v.Visit(name, index, r) {
		r.visitBase(v)
		model.AcceptList(v, "identifier", "Identifier", r.identifier)
		if r.status != nil {
			r.status.Accept("status", -1, v)
		}
		if r.typ != nil {
			r.typ.Accept("type", -1, v)
		}
		if r.measure != nil {
			r.measure.Accept("measure", -1, v)
		}
		if r.subject != nil {
			r.subject.Accept("subject", -1, v)
		}
		if r.date != nil {
			r.date.Accept("date", -1, v)
		}
		if r.reporter != nil {
			r.reporter.Accept("reporter", -1, v)
		}
		if r.period != nil {
			r.period.Accept("period", -1, v)
		}
		if r.improvementNotation != nil {
			r.improvementNotation.Accept("improvementNotation", -1, v)
		}
		model.AcceptList(v, "group", "MeasureReport.group", r.group)
		model.AcceptList(v, "evaluatedResource", "Reference", r.evaluatedResource)
	}
	v.VisitEnd(name, index, r)
	v.PostVisit(r)
}

func (r *MeasureReport) String() string {
	return visit.Sprint(r)
}

// ToBuilder returns a builder initialized with the contents of r.
func (r *MeasureReport) ToBuilder() *MeasureReportBuilder {
	b := NewMeasureReportBuilder(r.status, r.typ, r.measure, r.period)
	b.initBase(&r.domainResource)
	b.identifier = cloneList(r.identifier)
	b.subject = r.subject
	b.date = r.date
	b.reporter = r.reporter
	b.improvementNotation = r.improvementNotation
	b.group = cloneList(r.group)
	b.evaluatedResource = cloneList(r.evaluatedResource)
	return b
}

// MeasureReportBuilder builds [MeasureReport] nodes.
type MeasureReportBuilder struct {
	domainResourceBuilder[MeasureReportBuilder]
	identifier          []*Identifier
	status              *Coded[MeasureReportStatus]
	typ                 *Coded[MeasureReportType]
	measure             *Canonical
	subject             *Reference
	date                *DateTime
	reporter            *Reference
	period              *Period
	improvementNotation *CodeableConcept
	group               []*MeasureReportGroup
	evaluatedResource   []*Reference
}

// NewMeasureReportBuilder returns a builder for [MeasureReport] with the required elements set.
func NewMeasureReportBuilder(status *Coded[MeasureReportStatus], typ *Coded[MeasureReportType], measure *Canonical, period *Period) *MeasureReportBuilder {
	b := &MeasureReportBuilder{
		status:  status,
		typ:     typ,
		measure: measure,
		period:  period,
	}
	b.self = b
	return b
}

func (b *MeasureReportBuilder) Identifier(v ...*Identifier) *MeasureReportBuilder {
	b.identifier = append(b.identifier, v...)
	return b
}

func (b *MeasureReportBuilder) SetIdentifier(v []*Identifier) *MeasureReportBuilder {
	b.identifier = cloneList(v)
	return b
}

func (b *MeasureReportBuilder) Status(v *Coded[MeasureReportStatus]) *MeasureReportBuilder {
	b.status = v
	return b
}

func (b *MeasureReportBuilder) Type(v *Coded[MeasureReportType]) *MeasureReportBuilder {
	b.typ = v
	return b
}

func (b *MeasureReportBuilder) Measure(v *Canonical) *MeasureReportBuilder {
	b.measure = v
	return b
}

func (b *MeasureReportBuilder) Subject(v *Reference) *MeasureReportBuilder {
	b.subject = v
	return b
}

func (b *MeasureReportBuilder) Date(v *DateTime) *MeasureReportBuilder {
	b.date = v
	return b
}

func (b *MeasureReportBuilder) Reporter(v *Reference) *MeasureReportBuilder {
	b.reporter = v
	return b
}

func (b *MeasureReportBuilder) Period(v *Period) *MeasureReportBuilder {
	b.period = v
	return b
}

func (b *MeasureReportBuilder) ImprovementNotation(v *CodeableConcept) *MeasureReportBuilder {
	b.improvementNotation = v
	return b
}

func (b *MeasureReportBuilder) Group(v ...*MeasureReportGroup) *MeasureReportBuilder {
	b.group = append(b.group, v...)
	return b
}

func (b *MeasureReportBuilder) SetGroup(v []*MeasureReportGroup) *MeasureReportBuilder {
	b.group = cloneList(v)
	return b
}

func (b *MeasureReportBuilder) EvaluatedResource(v ...*Reference) *MeasureReportBuilder {
	b.evaluatedResource = append(b.evaluatedResource, v...)
	return b
}

func (b *MeasureReportBuilder) SetEvaluatedResource(v []*Reference) *MeasureReportBuilder {
	b.evaluatedResource = cloneList(v)
	return b
}

// Build validates the builder contents and returns the node.
func (b *MeasureReportBuilder) Build() (*MeasureReport, error) {
	opts := b.options()
	base, errs := b.buildBase()
	errs = append(errs,
		validation.RequireNoNilElements(b.identifier, "identifier"),
		validation.RequireNonNull(b.status, "status"),
		validation.RequireNonNull(b.typ, "type"),
		validation.RequireNonNull(b.measure, "measure"),
		validation.RequireNonNull(b.period, "period"),
		validation.RequireNoNilElements(b.group, "group"),
		validation.RequireNoNilElements(b.evaluatedResource, "evaluatedResource"),
	)
	if opts.ReferenceTypes {
		errs = append(errs, checkReference(b.subject, "subject", "Patient", "Practitioner", "PractitionerRole", "Location", "Device", "RelatedPerson", "Group"))
		errs = append(errs, checkReference(b.reporter, "reporter", "Practitioner", "PractitionerRole", "Location", "Organization"))
	}
	if opts.ValueSetBindings {
		errs = append(errs, checkBinding(b.improvementNotation, "improvementNotation", "http://hl7.org/fhir/ValueSet/measure-improvement-notation", "http://terminology.hl7.org/CodeSystem/measure-improvement-notation", "increase", "decrease"))
	}
	r := &MeasureReport{
		domainResource:      base,
		identifier:          cloneList(b.identifier),
		status:              b.status,
		typ:                 b.typ,
		measure:             b.measure,
		subject:             b.subject,
		date:                b.date,
		reporter:            b.reporter,
		period:              b.period,
		improvementNotation: b.improvementNotation,
		group:               cloneList(b.group),
		evaluatedResource:   cloneList(b.evaluatedResource),
	}
	if err := validation.Join("MeasureReport", errs...); err != nil {
		return nil, err
	}
	return r, nil
}

// MeasureReportGroup holds the results of the calculation, one for each population group in the
// measure.
type MeasureReportGroup struct {
	backboneElement
	code         *CodeableConcept
	population   []*MeasureReportGroupPopulation
	measureScore *Quantity
	stratifier   []*MeasureReportGroupStratifier
}

func (r *MeasureReportGroup) TypeName() string {
	return "MeasureReport.group"
}

func (r *MeasureReportGroup) Code() *CodeableConcept {
	return r.code
}

func (r *MeasureReportGroup) Population() []*MeasureReportGroupPopulation {
	return cloneList(r.population)
}

func (r *MeasureReportGroup) MeasureScore() *Quantity {
	return r.measureScore
}

func (r *MeasureReportGroup) Stratifier() []*MeasureReportGroupStratifier {
	return cloneList(r.stratifier)
}

func (r *MeasureReportGroup) HasChildren() bool {
	return r.hasBaseChildren() ||
		r.code != nil ||
		len(r.population) > 0 ||
		r.measureScore != nil ||
		len(r.stratifier) > 0
}

func (r *MeasureReportGroup) Accept(name string, index int, v model.Visitor) {
	if !v.PreVisit(r) {
		return
	}
	v.VisitStart(name, index, r)
	if v.Visit(name, index, r) {
		r.visitBase(v)
		if r.code != nil {
			r.code.Accept("code", -1, v)
		}
		model.AcceptList(v, "population", "MeasureReport.group.population", r.population)
		if r.measureScore != nil {
			r.measureScore.Accept("measureScore", -1, v)
		}
		model.AcceptList(v, "stratifier", "MeasureReport.group.stratifier", r.stratifier)
	}
	v.VisitEnd(name, index, r)
	v.PostVisit(r)
}

func (r *MeasureReportGroup) String() string {
	return visit.Sprint(r)
}

// ToBuilder returns a builder initialized with the contents of r.
func (r *MeasureReportGroup) ToBuilder() *MeasureReportGroupBuilder {
	b := NewMeasureReportGroupBuilder()
	b.initBase(&r.backboneElement)
	b.code = r.code
	b.population = cloneList(r.population)
	b.measureScore = r.measureScore
	b.stratifier = cloneList(r.stratifier)
	return b
}

// MeasureReportGroupBuilder builds [MeasureReportGroup] nodes.
type MeasureReportGroupBuilder struct {
	backboneElementBuilder[MeasureReportGroupBuilder]
	code         *CodeableConcept
	population   []*MeasureReportGroupPopulation
	measureScore *Quantity
	stratifier   []*MeasureReportGroupStratifier
}

func NewMeasureReportGroupBuilder() *MeasureReportGroupBuilder {
	b := &MeasureReportGroupBuilder{}
	b.self = b
	return b
}

func (b *MeasureReportGroupBuilder) Code(v *CodeableConcept) *MeasureReportGroupBuilder {
	b.code = v
	return b
}

func (b *MeasureReportGroupBuilder) Population(v ...*MeasureReportGroupPopulation) *MeasureReportGroupBuilder {
	b.population = append(b.population, v...)
	return b
}

func (b *MeasureReportGroupBuilder) SetPopulation(v []*MeasureReportGroupPopulation) *MeasureReportGroupBuilder {
	b.population = cloneList(v)
	return b
}

func (b *MeasureReportGroupBuilder) MeasureScore(v *Quantity) *MeasureReportGroupBuilder {
	b.measureScore = v
	return b
}

func (b *MeasureReportGroupBuilder) Stratifier(v ...*MeasureReportGroupStratifier) *MeasureReportGroupBuilder {
	b.stratifier = append(b.stratifier, v...)
	return b
}

func (b *MeasureReportGroupBuilder) SetStratifier(v []*MeasureReportGroupStratifier) *MeasureReportGroupBuilder {
	b.stratifier = cloneList(v)
	return b
}

// Build validates the builder contents and returns the node.
func (b *MeasureReportGroupBuilder) Build() (*MeasureReportGroup, error) {
	base, errs := b.buildBase()
	errs = append(errs,
		validation.RequireNoNilElements(b.population, "population"),
		validation.RequireNoNilElements(b.stratifier, "stratifier"),
	)
	r := &MeasureReportGroup{
		backboneElement: base,
		code:            b.code,
		population:      cloneList(b.population),
		measureScore:    b.measureScore,
		stratifier:      cloneList(b.stratifier),
	}
	errs = append(errs, validation.RequireValueOrChildren(r))
	if err := validation.Join("MeasureReport.group", errs...); err != nil {
		return nil, err
	}
	return r, nil
}

type MeasureReportGroupPopulation struct {
	backboneElement
	code           *CodeableConcept
	count          *Integer
	subjectResults *Reference
}

func (r *MeasureReportGroupPopulation) TypeName() string {
	return "MeasureReport.group.population"
}

func (r *MeasureReportGroupPopulation) Code() *CodeableConcept {
	return r.code
}

func (r *MeasureReportGroupPopulation) Count() *Integer {
	return r.count
}

func (r *MeasureReportGroupPopulation) SubjectResults() *Reference {
	return r.subjectResults
}

func (r *MeasureReportGroupPopulation) HasChildren() bool {
	return r.hasBaseChildren() ||
		r.code != nil ||
		r.count != nil ||
		r.subjectResults != nil
}

func (r *MeasureReportGroupPopulation) Accept(name string, index int, v model.Visitor) {
	if !v.PreVisit(r) {
		return
	}
	v.VisitStart(name, index, r)
	if v.Visit(name, index, r) {
		r.visitBase(v)
		if r.code != nil {
			r.code.Accept("code", -1, v)
		}
		if r.count != nil {
			r.count.Accept("count", -1, v)
		}
		if r.subjectResults != nil {
			r.subjectResults.Accept("subjectResults", -1, v)
		}
	}
	v.VisitEnd(name, index, r)
	v.PostVisit(r)
}

func (r *MeasureReportGroupPopulation) String() string {
	return visit.Sprint(r)
}

// ToBuilder returns a builder initialized with the contents of r.
func (r *MeasureReportGroupPopulation) ToBuilder() *MeasureReportGroupPopulationBuilder {
	b := NewMeasureReportGroupPopulationBuilder()
	b.initBase(&r.backboneElement)
	b.code = r.code
	b.count = r.count
	b.subjectResults = r.subjectResults
	return b
}

// MeasureReportGroupPopulationBuilder builds [MeasureReportGroupPopulation] nodes.
type MeasureReportGroupPopulationBuilder struct {
	backboneElementBuilder[MeasureReportGroupPopulationBuilder]
	code           *CodeableConcept
	count          *Integer
	subjectResults *Reference
}

func NewMeasureReportGroupPopulationBuilder() *MeasureReportGroupPopulationBuilder {
	b := &MeasureReportGroupPopulationBuilder{}
	b.self = b
	return b
}

func (b *MeasureReportGroupPopulationBuilder) Code(v *CodeableConcept) *MeasureReportGroupPopulationBuilder {
	b.code = v
	return b
}

func (b *MeasureReportGroupPopulationBuilder) Count(v *Integer) *MeasureReportGroupPopulationBuilder {
	b.count = v
	return b
}

func (b *MeasureReportGroupPopulationBuilder) SubjectResults(v *Reference) *MeasureReportGroupPopulationBuilder {
	b.subjectResults = v
	return b
}

// Build validates the builder contents and returns the node.
func (b *MeasureReportGroupPopulationBuilder) Build() (*MeasureReportGroupPopulation, error) {
	opts := b.options()
	base, errs := b.buildBase()
	if opts.ReferenceTypes {
		errs = append(errs, checkReference(b.subjectResults, "subjectResults", "List"))
	}
	r := &MeasureReportGroupPopulation{
		backboneElement: base,
		code:            b.code,
		count:           b.count,
		subjectResults:  b.subjectResults,
	}
	errs = append(errs, validation.RequireValueOrChildren(r))
	if err := validation.Join("MeasureReport.group.population", errs...); err != nil {
		return nil, err
	}
	return r, nil
}

// MeasureReportGroupStratifier holds the results of a stratification of the group.
type MeasureReportGroupStratifier struct {
	backboneElement
	code    []*CodeableConcept
	stratum []*MeasureReportGroupStratifierStratum
}

func (r *MeasureReportGroupStratifier) TypeName() string {
	return "MeasureReport.group.stratifier"
}

func (r *MeasureReportGroupStratifier) Code() []*CodeableConcept {
	return cloneList(r.code)
}

func (r *MeasureReportGroupStratifier) Stratum() []*MeasureReportGroupStratifierStratum {
	return cloneList(r.stratum)
}

func (r *MeasureReportGroupStratifier) HasChildren() bool {
	return r.hasBaseChildren() ||
		len(r.code) > 0 ||
		len(r.stratum) > 0
}

func (r *MeasureReportGroupStratifier) Accept(name string, index int, v model.Visitor) {
	if !v.PreVisit(r) {
		return
	}
	v.VisitStart(name, index, r)
	if v.Visit(name, index, r) {
		r.visitBase(v)
		model.AcceptList(v, "code", "CodeableConcept", r.code)
		model.AcceptList(v, "stratum", "MeasureReport.group.stratifier.stratum", r.stratum)
	}
	v.VisitEnd(name, index, r)
	v.PostVisit(r)
}

func (r *MeasureReportGroupStratifier) String() string {
	return visit.Sprint(r)
}

// ToBuilder returns a builder initialized with the contents of r.
func (r *MeasureReportGroupStratifier) ToBuilder() *MeasureReportGroupStratifierBuilder {
	b := NewMeasureReportGroupStratifierBuilder()
	b.initBase(&r.backboneElement)
	b.code = cloneList(r.code)
	b.stratum = cloneList(r.stratum)
	return b
}

// MeasureReportGroupStratifierBuilder builds [MeasureReportGroupStratifier] nodes.
type MeasureReportGroupStratifierBuilder struct {
	backboneElementBuilder[MeasureReportGroupStratifierBuilder]
	code    []*CodeableConcept
	stratum []*MeasureReportGroupStratifierStratum
}

func NewMeasureReportGroupStratifierBuilder() *MeasureReportGroupStratifierBuilder {
	b := &MeasureReportGroupStratifierBuilder{}
	b.self = b
	return b
}

func (b *MeasureReportGroupStratifierBuilder) Code(v ...*CodeableConcept) *MeasureReportGroupStratifierBuilder {
	b.code = append(b.code, v...)
	return b
}

func (b *MeasureReportGroupStratifierBuilder) SetCode(v []*CodeableConcept) *MeasureReportGroupStratifierBuilder {
	b.code = cloneList(v)
	return b
}

func (b *MeasureReportGroupStratifierBuilder) Stratum(v ...*MeasureReportGroupStratifierStratum) *MeasureReportGroupStratifierBuilder {
	b.stratum = append(b.stratum, v...)
	return b
}

func (b *MeasureReportGroupStratifierBuilder) SetStratum(v []*MeasureReportGroupStratifierStratum) *MeasureReportGroupStratifierBuilder {
	b.stratum = cloneList(v)
	return b
}

// Build validates the builder contents and returns the node.
func (b *MeasureReportGroupStratifierBuilder) Build() (*MeasureReportGroupStratifier, error) {
	base, errs := b.buildBase()
	errs = append(errs,
		validation.RequireNoNilElements(b.code, "code"),
		validation.RequireNoNilElements(b.stratum, "stratum"),
	)
	r := &MeasureReportGroupStratifier{
		backboneElement: base,
		code:            cloneList(b.code),
		stratum:         cloneList(b.stratum),
	}
	errs = append(errs, validation.RequireValueOrChildren(r))
	if err := validation.Join("MeasureReport.group.stratifier", errs...); err != nil {
		return nil, err
	}
	return r, nil
}

type MeasureReportGroupStratifierStratum struct {
	backboneElement
	value        *CodeableConcept
	component    []*MeasureReportGroupStratifierStratumComponent
	population   []*MeasureReportGroupStratifierStratumPopulation
	measureScore *Quantity
}

func (r *MeasureReportGroupStratifierStratum) TypeName() string {
	return "MeasureReport.group.stratifier.stratum"
}

func (r *MeasureReportGroupStratifierStratum) Value() *CodeableConcept {
	return r.value
}

func (r *MeasureReportGroupStratifierStratum) Component() []*MeasureReportGroupStratifierStratumComponent {
	return cloneList(r.component)
}

func (r *MeasureReportGroupStratifierStratum) Population() []*MeasureReportGroupStratifierStratumPopulation {
	return cloneList(r.population)
}

func (r *MeasureReportGroupStratifierStratum) MeasureScore() *Quantity {
	return r.measureScore
}

func (r *MeasureReportGroupStratifierStratum) HasChildren() bool {
	return r.hasBaseChildren() ||
		r.value != nil ||
		len(r.component) > 0 ||
		len(r.population) > 0 ||
		r.measureScore != nil
}

func (r *MeasureReportGroupStratifierStratum) Accept(name string, index int, v model.Visitor) {
	if !v.PreVisit(r) {
		return
	}
	v.VisitStart(name, index, r)
	if v.Visit(name, index, r) {
		r.visitBase(v)
		if r.value != nil {
			r.value.Accept("value", -1, v)
		}
		model.AcceptList(v, "component", "MeasureReport.group.stratifier.stratum.component", r.component)
		model.AcceptList(v, "population", "MeasureReport.group.stratifier.stratum.population", r.population)
		if r.measureScore != nil {
			r.measureScore.Accept("measureScore", -1, v)
		}
	}
	v.VisitEnd(name, index, r)
	v.PostVisit(r)
}

func (r *MeasureReportGroupStratifierStratum) String() string {
	return visit.Sprint(r)
}

// ToBuilder returns a builder initialized with the contents of r.
func (r *MeasureReportGroupStratifierStratum) ToBuilder() *MeasureReportGroupStratifierStratumBuilder {
	b := NewMeasureReportGroupStratifierStratumBuilder()
	b.initBase(&r.backboneElement)
	b.value = r.value
	b.component = cloneList(r.component)
	b.population = cloneList(r.population)
	b.measureScore = r.measureScore
	return b
}

// MeasureReportGroupStratifierStratumBuilder builds [MeasureReportGroupStratifierStratum] nodes.
type MeasureReportGroupStratifierStratumBuilder struct {
	backboneElementBuilder[MeasureReportGroupStratifierStratumBuilder]
	value        *CodeableConcept
	component    []*MeasureReportGroupStratifierStratumComponent
	population   []*MeasureReportGroupStratifierStratumPopulation
	measureScore *Quantity
}

func NewMeasureReportGroupStratifierStratumBuilder() *MeasureReportGroupStratifierStratumBuilder {
	b := &MeasureReportGroupStratifierStratumBuilder{}
	b.self = b
	return b
}

func (b *MeasureReportGroupStratifierStratumBuilder) Value(v *CodeableConcept) *MeasureReportGroupStratifierStratumBuilder {
	b.value = v
	return b
}

func (b *MeasureReportGroupStratifierStratumBuilder) Component(v ...*MeasureReportGroupStratifierStratumComponent) *MeasureReportGroupStratifierStratumBuilder {
	b.component = append(b.component, v...)
	return b
}

func (b *MeasureReportGroupStratifierStratumBuilder) SetComponent(v []*MeasureReportGroupStratifierStratumComponent) *MeasureReportGroupStratifierStratumBuilder {
	b.component = cloneList(v)
	return b
}

func (b *MeasureReportGroupStratifierStratumBuilder) Population(v ...*MeasureReportGroupStratifierStratumPopulation) *MeasureReportGroupStratifierStratumBuilder {
	b.population = append(b.population, v...)
	return b
}

func (b *MeasureReportGroupStratifierStratumBuilder) SetPopulation(v []*MeasureReportGroupStratifierStratumPopulation) *MeasureReportGroupStratifierStratumBuilder {
	b.population = cloneList(v)
	return b
}

func (b *MeasureReportGroupStratifierStratumBuilder) MeasureScore(v *Quantity) *MeasureReportGroupStratifierStratumBuilder {
	b.measureScore = v
	return b
}

// Build validates the builder contents and returns the node.
func (b *MeasureReportGroupStratifierStratumBuilder) Build() (*MeasureReportGroupStratifierStratum, error) {
	base, errs := b.buildBase()
	errs = append(errs,
		validation.RequireNoNilElements(b.component, "component"),
		validation.RequireNoNilElements(b.population, "population"),
	)
	r := &MeasureReportGroupStratifierStratum{
		backboneElement: base,
		value:           b.value,
		component:       cloneList(b.component),
		population:      cloneList(b.population),
		measureScore:    b.measureScore,
	}
	errs = append(errs, validation.RequireValueOrChildren(r))
	if err := validation.Join("MeasureReport.group.stratifier.stratum", errs...); err != nil {
		return nil, err
	}
	return r, nil
}

type MeasureReportGroupStratifierStratumComponent struct {
	backboneElement
	code  *CodeableConcept
	value *CodeableConcept
}

func (r *MeasureReportGroupStratifierStratumComponent) TypeName() string {
	return "MeasureReport.group.stratifier.stratum.component"
}

func (r *MeasureReportGroupStratifierStratumComponent) Code() *CodeableConcept {
	return r.code
}

func (r *MeasureReportGroupStratifierStratumComponent) Value() *CodeableConcept {
	return r.value
}

func (r *MeasureReportGroupStratifierStratumComponent) HasChildren() bool {
	return r.hasBaseChildren() ||
		r.code != nil ||
		r.value != nil
}

func (r *MeasureReportGroupStratifierStratumComponent) Accept(name string, index int, v model.Visitor) {
	if !v.PreVisit(r) {
		return
	}
	v.VisitStart(name, index, r)
	if v.Visit(name, index, r) {
		r.visitBase(v)
		if r.code != nil {
			r.code.Accept("code", -1, v)
		}
		if r.value != nil {
			r.value.Accept("value", -1, v)
		}
	}
	v.VisitEnd(name, index, r)
	v.PostVisit(r)
}

func (r *MeasureReportGroupStratifierStratumComponent) String() string {
	return visit.Sprint(r)
}

// ToBuilder returns a builder initialized with the contents of r.
func (r *MeasureReportGroupStratifierStratumComponent) ToBuilder() *MeasureReportGroupStratifierStratumComponentBuilder {
	b := NewMeasureReportGroupStratifierStratumComponentBuilder(r.code, r.value)
	b.initBase(&r.backboneElement)
	return b
}

// MeasureReportGroupStratifierStratumComponentBuilder builds [MeasureReportGroupStratifierStratumComponent] nodes.
type MeasureReportGroupStratifierStratumComponentBuilder struct {
	backboneElementBuilder[MeasureReportGroupStratifierStratumComponentBuilder]
	code  *CodeableConcept
	value *CodeableConcept
}

// NewMeasureReportGroupStratifierStratumComponentBuilder returns a builder for [MeasureReportGroupStratifierStratumComponent] with the required elements set.
func NewMeasureReportGroupStratifierStratumComponentBuilder(code *CodeableConcept, value *CodeableConcept) *MeasureReportGroupStratifierStratumComponentBuilder {
	b := &MeasureReportGroupStratifierStratumComponentBuilder{
		code:  code,
		value: value,
	}
	b.self = b
	return b
}

func (b *MeasureReportGroupStratifierStratumComponentBuilder) Code(v *CodeableConcept) *MeasureReportGroupStratifierStratumComponentBuilder {
	b.code = v
	return b
}

func (b *MeasureReportGroupStratifierStratumComponentBuilder) Value(v *CodeableConcept) *MeasureReportGroupStratifierStratumComponentBuilder {
	b.value = v
	return b
}

// Build validates the builder contents and returns the node.
func (b *MeasureReportGroupStratifierStratumComponentBuilder) Build() (*MeasureReportGroupStratifierStratumComponent, error) {
	base, errs := b.buildBase()
	errs = append(errs,
		validation.RequireNonNull(b.code, "code"),
		validation.RequireNonNull(b.value, "value"),
	)
	r := &MeasureReportGroupStratifierStratumComponent{
		backboneElement: base,
		code:            b.code,
		value:           b.value,
	}
	errs = append(errs, validation.RequireValueOrChildren(r))
	if err := validation.Join("MeasureReport.group.stratifier.stratum.component", errs...); err != nil {
		return nil, err
	}
	return r, nil
}

type MeasureReportGroupStratifierStratumPopulation struct {
	backboneElement
	code           *CodeableConcept
	count          *Integer
	subjectResults *Reference
}

func (r *MeasureReportGroupStratifierStratumPopulation) TypeName() string {
	return "MeasureReport.group.stratifier.stratum.population"
}

func (r *MeasureReportGroupStratifierStratumPopulation) Code() *CodeableConcept {
	return r.code
}

func (r *MeasureReportGroupStratifierStratumPopulation) Count() *Integer {
	return r.count
}

func (r *MeasureReportGroupStratifierStratumPopulation) SubjectResults() *Reference {
	return r.subjectResults
}

func (r *MeasureReportGroupStratifierStratumPopulation) HasChildren() bool {
	return r.hasBaseChildren() ||
		r.code != nil ||
		r.count != nil ||
		r.subjectResults != nil
}

func (r *MeasureReportGroupStratifierStratumPopulation) Accept(name string, index int, v model.Visitor) {
	if !v.PreVisit(r) {
		return
	}
	v.VisitStart(name, index, r)
	if v.Visit(name, index, r) {
		r.visitBase(v)
		if r.code != nil {
			r.code.Accept("code", -1, v)
		}
		if r.count != nil {
			r.count.Accept("count", -1, v)
		}
		if r.subjectResults != nil {
			r.subjectResults.Accept("subjectResults", -1, v)
		}
	}
	v.VisitEnd(name, index, r)
	v.PostVisit(r)
}

func (r *MeasureReportGroupStratifierStratumPopulation) String() string {
	return visit.Sprint(r)
}

// ToBuilder returns a builder initialized with the contents of r.
func (r *MeasureReportGroupStratifierStratumPopulation) ToBuilder() *MeasureReportGroupStratifierStratumPopulationBuilder {
	b := NewMeasureReportGroupStratifierStratumPopulationBuilder()
	b.initBase(&r.backboneElement)
	b.code = r.code
	b.count = r.count
	b.subjectResults = r.subjectResults
	return b
}

// MeasureReportGroupStratifierStratumPopulationBuilder builds [MeasureReportGroupStratifierStratumPopulation] nodes.
type MeasureReportGroupStratifierStratumPopulationBuilder struct {
	backboneElementBuilder[MeasureReportGroupStratifierStratumPopulationBuilder]
	code           *CodeableConcept
	count          *Integer
	subjectResults *Reference
}

func NewMeasureReportGroupStratifierStratumPopulationBuilder() *MeasureReportGroupStratifierStratumPopulationBuilder {
	b := &MeasureReportGroupStratifierStratumPopulationBuilder{}
	b.self = b
	return b
}

func (b *MeasureReportGroupStratifierStratumPopulationBuilder) Code(v *CodeableConcept) *MeasureReportGroupStratifierStratumPopulationBuilder {
	b.code = v
	return b
}

func (b *MeasureReportGroupStratifierStratumPopulationBuilder) Count(v *Integer) *MeasureReportGroupStratifierStratumPopulationBuilder {
	b.count = v
	return b
}

func (b *MeasureReportGroupStratifierStratumPopulationBuilder) SubjectResults(v *Reference) *MeasureReportGroupStratifierStratumPopulationBuilder {
	b.subjectResults = v
	return b
}

// Build validates the builder contents and returns the node.
func (b *MeasureReportGroupStratifierStratumPopulationBuilder) Build() (*MeasureReportGroupStratifierStratumPopulation, error) {
	opts := b.options()
	base, errs := b.buildBase()
	if opts.ReferenceTypes {
		errs = append(errs, checkReference(b.subjectResults, "subjectResults", "List"))
	}
	r := &MeasureReportGroupStratifierStratumPopulation{
		backboneElement: base,
		code:            b.code,
		count:           b.count,
		subjectResults:  b.subjectResults,
	}
	errs = append(errs, validation.RequireValueOrChildren(r))
	if err := validation.Join("MeasureReport.group.stratifier.stratum.population", errs...); err != nil {
		return nil, err
	}
	return r, nil
}
