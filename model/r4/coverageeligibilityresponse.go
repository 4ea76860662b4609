package r4

import (
	"github.com/damedic/fhir-model-go/model"
	"github.com/damedic/fhir-model-go/model/validation"
	"github.com/damedic/fhir-model-go/model/visit"
)

// CoverageEligibilityResponse provides eligibility and plan details from the processing of a
// CoverageEligibilityRequest.
type CoverageEligibilityResponse struct {
	domainResource
	identifier  []*Identifier
	status      *Coded[FinancialResourceStatusCodes]
	purpose     []*Coded[EligibilityResponsePurpose]
	patient     *Reference
	serviced    CoverageEligibilityResponseServiced
	created     *DateTime
	requestor   *Reference
	request     *Reference
	outcome     *Coded[RemittanceOutcome]
	disposition *String
	insurer     *Reference
	insurance   []*CoverageEligibilityResponseInsurance
	preAuthRef  *String
	form        *CodeableConcept
	error       []*CoverageEligibilityResponseError
}

// CoverageEligibilityResponseServiced is the type of CoverageEligibilityResponse.serviced[x]: one
// of date, Period.
type CoverageEligibilityResponseServiced interface {
	model.Element
	isCoverageEligibilityResponseServiced()
}

func (r *Date) isCoverageEligibilityResponseServiced()   {}
func (r *Period) isCoverageEligibilityResponseServiced() {}

func (r *CoverageEligibilityResponse) TypeName() string {
	return "CoverageEligibilityResponse"
}

func (r *CoverageEligibilityResponse) ResourceType() string {
	return "CoverageEligibilityResponse"
}

func (r *CoverageEligibilityResponse) Identifier() []*Identifier {
	return cloneList(r.identifier)
}

func (r *CoverageEligibilityResponse) Status() *Coded[FinancialResourceStatusCodes] {
	return r.status
}

func (r *CoverageEligibilityResponse) Purpose() []*Coded[EligibilityResponsePurpose] {
	return cloneList(r.purpose)
}

func (r *CoverageEligibilityResponse) Patient() *Reference {
	return r.patient
}

// Serviced is the date or dates when the enclosed services were performed or completed.
func (r *CoverageEligibilityResponse) Serviced() CoverageEligibilityResponseServiced {
	return r.serviced
}

func (r *CoverageEligibilityResponse) Created() *DateTime {
	return r.created
}

func (r *CoverageEligibilityResponse) Requestor() *Reference {
	return r.requestor
}

func (r *CoverageEligibilityResponse) Request() *Reference {
	return r.request
}

func (r *CoverageEligibilityResponse) Outcome() *Coded[RemittanceOutcome] {
	return r.outcome
}

func (r *CoverageEligibilityResponse) Disposition() *String {
	return r.disposition
}

func (r *CoverageEligibilityResponse) Insurer() *Reference {
	return r.insurer
}

func (r *CoverageEligibilityResponse) Insurance() []*CoverageEligibilityResponseInsurance {
	return cloneList(r.insurance)
}

func (r *CoverageEligibilityResponse) PreAuthRef() *String {
	return r.preAuthRef
}

func (r *CoverageEligibilityResponse) Form() *CodeableConcept {
	return r.form
}

// Error returns the errors encountered during processing.
func (r *CoverageEligibilityResponse) Error() []*CoverageEligibilityResponseError {
	return cloneList(r.error)
}

func (r *CoverageEligibilityResponse) HasChildren() bool {
	return r.hasBaseChildren() ||
		len(r.identifier) > 0 ||
		r.status != nil ||
		len(r.purpose) > 0 ||
		r.patient != nil ||
		r.serviced != nil ||
		r.created != nil ||
		r.requestor != nil ||
		r.request != nil ||
		r.outcome != nil ||
		r.disposition != nil ||
		r.insurer != nil ||
		len(r.insurance) > 0 ||
		r.preAuthRef != nil ||
		r.form != nil ||
		len(r.error) > 0
}

func (r *CoverageEligibilityResponse) Accept(name string, index int, v model.Visitor) {
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
		model.AcceptList(v, "purpose", "code", r.purpose)
		if r.patient != nil {
			r.patient.Accept("patient", -1, v)
		}
		model.AcceptChoice(v, "serviced", r.serviced)
		if r.created != nil {
			r.created.Accept("created", -1, v)
		}
		if r.requestor != nil {
			r.requestor.Accept("requestor", -1, v)
		}
		if r.request != nil {
			r.request.Accept("request", -1, v)
		}
		if r.outcome != nil {
			r.outcome.Accept("outcome", -1, v)
		}
		if r.disposition != nil {
			r.disposition.Accept("disposition", -1, v)
		}
		if r.insurer != nil {
			r.insurer.Accept("insurer", -1, v)
		}
		model.AcceptList(v, "insurance", "CoverageEligibilityResponse.insurance", r.insurance)
		if r.preAuthRef != nil {
			r.preAuthRef.Accept("preAuthRef", -1, v)
		}
		if r.form != nil {
			r.form.Accept("form", -1, v)
		}
		model.AcceptList(v, "error", "CoverageEligibilityResponse.error", r.error)
	}
	v.VisitEnd(name, index, r)
	v.PostVisit(r)
}

func (r *CoverageEligibilityResponse) String() string {
	return visit.Sprint(r)
}

// ToBuilder returns a builder initialized with the contents of r.
func (r *CoverageEligibilityResponse) ToBuilder() *CoverageEligibilityResponseBuilder {
	b := NewCoverageEligibilityResponseBuilder(r.status, r.purpose, r.patient, r.created, r.request, r.outcome, r.insurer)
	b.initBase(&r.domainResource)
	b.identifier = cloneList(r.identifier)
	b.serviced = r.serviced
	b.requestor = r.requestor
	b.disposition = r.disposition
	b.insurance = cloneList(r.insurance)
	b.preAuthRef = r.preAuthRef
	b.form = r.form
	b.error = cloneList(r.error)
	return b
}

// CoverageEligibilityResponseBuilder builds [CoverageEligibilityResponse] nodes.
type CoverageEligibilityResponseBuilder struct {
	domainResourceBuilder[CoverageEligibilityResponseBuilder]
	identifier  []*Identifier
	status      *Coded[FinancialResourceStatusCodes]
	purpose     []*Coded[EligibilityResponsePurpose]
	patient     *Reference
	serviced    model.Element
	created     *DateTime
	requestor   *Reference
	request     *Reference
	outcome     *Coded[RemittanceOutcome]
	disposition *String
	insurer     *Reference
	insurance   []*CoverageEligibilityResponseInsurance
	preAuthRef  *String
	form        *CodeableConcept
	error       []*CoverageEligibilityResponseError
}

// NewCoverageEligibilityResponseBuilder returns a builder for [CoverageEligibilityResponse] with the required elements set.
func NewCoverageEligibilityResponseBuilder(status *Coded[FinancialResourceStatusCodes], purpose []*Coded[EligibilityResponsePurpose], patient *Reference, created *DateTime, request *Reference, outcome *Coded[RemittanceOutcome], insurer *Reference) *CoverageEligibilityResponseBuilder {
	b := &CoverageEligibilityResponseBuilder{
		status:  status,
		purpose: cloneList(purpose),
		patient: patient,
		created: created,
		request: request,
		outcome: outcome,
		insurer: insurer,
	}
	b.self = b
	return b
}

func (b *CoverageEligibilityResponseBuilder) Identifier(v ...*Identifier) *CoverageEligibilityResponseBuilder {
	b.identifier = append(b.identifier, v...)
	return b
}

func (b *CoverageEligibilityResponseBuilder) SetIdentifier(v []*Identifier) *CoverageEligibilityResponseBuilder {
	b.identifier = cloneList(v)
	return b
}

func (b *CoverageEligibilityResponseBuilder) Status(v *Coded[FinancialResourceStatusCodes]) *CoverageEligibilityResponseBuilder {
	b.status = v
	return b
}

func (b *CoverageEligibilityResponseBuilder) Purpose(v ...*Coded[EligibilityResponsePurpose]) *CoverageEligibilityResponseBuilder {
	b.purpose = append(b.purpose, v...)
	return b
}

func (b *CoverageEligibilityResponseBuilder) SetPurpose(v []*Coded[EligibilityResponsePurpose]) *CoverageEligibilityResponseBuilder {
	b.purpose = cloneList(v)
	return b
}

func (b *CoverageEligibilityResponseBuilder) Patient(v *Reference) *CoverageEligibilityResponseBuilder {
	b.patient = v
	return b
}

func (b *CoverageEligibilityResponseBuilder) Serviced(v CoverageEligibilityResponseServiced) *CoverageEligibilityResponseBuilder {
	b.serviced = v
	return b
}

// ServicedElement sets serviced without static type check, Build fails unless it is one of date, Period.
func (b *CoverageEligibilityResponseBuilder) ServicedElement(v model.Element) *CoverageEligibilityResponseBuilder {
	b.serviced = v
	return b
}

func (b *CoverageEligibilityResponseBuilder) Created(v *DateTime) *CoverageEligibilityResponseBuilder {
	b.created = v
	return b
}

func (b *CoverageEligibilityResponseBuilder) Requestor(v *Reference) *CoverageEligibilityResponseBuilder {
	b.requestor = v
	return b
}

func (b *CoverageEligibilityResponseBuilder) Request(v *Reference) *CoverageEligibilityResponseBuilder {
	b.request = v
	return b
}

func (b *CoverageEligibilityResponseBuilder) Outcome(v *Coded[RemittanceOutcome]) *CoverageEligibilityResponseBuilder {
	b.outcome = v
	return b
}

func (b *CoverageEligibilityResponseBuilder) Disposition(v *String) *CoverageEligibilityResponseBuilder {
	b.disposition = v
	return b
}

func (b *CoverageEligibilityResponseBuilder) Insurer(v *Reference) *CoverageEligibilityResponseBuilder {
	b.insurer = v
	return b
}

func (b *CoverageEligibilityResponseBuilder) Insurance(v ...*CoverageEligibilityResponseInsurance) *CoverageEligibilityResponseBuilder {
	b.insurance = append(b.insurance, v...)
	return b
}

func (b *CoverageEligibilityResponseBuilder) SetInsurance(v []*CoverageEligibilityResponseInsurance) *CoverageEligibilityResponseBuilder {
	b.insurance = cloneList(v)
	return b
}

func (b *CoverageEligibilityResponseBuilder) PreAuthRef(v *String) *CoverageEligibilityResponseBuilder {
	b.preAuthRef = v
	return b
}

func (b *CoverageEligibilityResponseBuilder) Form(v *CodeableConcept) *CoverageEligibilityResponseBuilder {
	b.form = v
	return b
}

func (b *CoverageEligibilityResponseBuilder) Error(v ...*CoverageEligibilityResponseError) *CoverageEligibilityResponseBuilder {
	b.error = append(b.error, v...)
	return b
}

func (b *CoverageEligibilityResponseBuilder) SetError(v []*CoverageEligibilityResponseError) *CoverageEligibilityResponseBuilder {
	b.error = cloneList(v)
	return b
}

// Build validates the builder contents and returns the node.
func (b *CoverageEligibilityResponseBuilder) Build() (*CoverageEligibilityResponse, error) {
	opts := b.options()
	base, errs := b.buildBase()
	serviced, err := validation.ChoiceElement[CoverageEligibilityResponseServiced](b.serviced, "serviced", "date", "Period")
	errs = append(errs, err)
	errs = append(errs,
		validation.RequireNoNilElements(b.identifier, "identifier"),
		validation.RequireNonNull(b.status, "status"),
		validation.RequireNonEmpty(b.purpose, "purpose"),
		validation.RequireNoNilElements(b.purpose, "purpose"),
		validation.RequireNonNull(b.patient, "patient"),
		validation.RequireNonNull(b.created, "created"),
		validation.RequireNonNull(b.request, "request"),
		validation.RequireNonNull(b.outcome, "outcome"),
		validation.RequireNonNull(b.insurer, "insurer"),
		validation.RequireNoNilElements(b.insurance, "insurance"),
		validation.RequireNoNilElements(b.error, "error"),
	)
	if opts.ReferenceTypes {
		errs = append(errs, checkReference(b.patient, "patient", "Patient"))
		errs = append(errs, checkReference(b.requestor, "requestor", "Practitioner", "PractitionerRole", "Organization"))
		errs = append(errs, checkReference(b.request, "request", "CoverageEligibilityRequest"))
		errs = append(errs, checkReference(b.insurer, "insurer", "Organization"))
	}
	r := &CoverageEligibilityResponse{
		domainResource: base,
		identifier:     cloneList(b.identifier),
		status:         b.status,
		purpose:        cloneList(b.purpose),
		patient:        b.patient,
		serviced:       serviced,
		created:        b.created,
		requestor:      b.requestor,
		request:        b.request,
		outcome:        b.outcome,
		disposition:    b.disposition,
		insurer:        b.insurer,
		insurance:      cloneList(b.insurance),
		preAuthRef:     b.preAuthRef,
		form:           b.form,
		error:          cloneList(b.error),
	}
	if err := validation.Join("CoverageEligibilityResponse", errs...); err != nil {
		return nil, err
	}
	return r, nil
}

// CoverageEligibilityResponseInsurance holds financial instruments for reimbursement for the health
// care products and services.
type CoverageEligibilityResponseInsurance struct {
	backboneElement
	coverage      *Reference
	inforce       *Boolean
	benefitPeriod *Period
	item          []*CoverageEligibilityResponseInsuranceItem
}

func (r *CoverageEligibilityResponseInsurance) TypeName() string {
	return "CoverageEligibilityResponse.insurance"
}

func (r *CoverageEligibilityResponseInsurance) Coverage() *Reference {
	return r.coverage
}

func (r *CoverageEligibilityResponseInsurance) Inforce() *Boolean {
	return r.inforce
}

func (r *CoverageEligibilityResponseInsurance) BenefitPeriod() *Period {
	return r.benefitPeriod
}

func (r *CoverageEligibilityResponseInsurance) Item() []*CoverageEligibilityResponseInsuranceItem {
	return cloneList(r.item)
}

func (r *CoverageEligibilityResponseInsurance) HasChildren() bool {
	return r.hasBaseChildren() ||
		r.coverage != nil ||
		r.inforce != nil ||
		r.benefitPeriod != nil ||
		len(r.item) > 0
}

func (r *CoverageEligibilityResponseInsurance) Accept(name string, index int, v model.Visitor) {
	if !v.PreVisit(r) {
		return
	}
	v.VisitStart(name, index, r)
	if v.Visit(name, index, r) {
		r.visitBase(v)
		if r.coverage != nil {
			r.coverage.Accept("coverage", -1, v)
		}
		if r.inforce != nil {
			r.inforce.Accept("inforce", -1, v)
		}
		if r.benefitPeriod != nil {
			r.benefitPeriod.Accept("benefitPeriod", -1, v)
		}
		model.AcceptList(v, "item", "CoverageEligibilityResponse.insurance.item", r.item)
	}
	v.VisitEnd(name, index, r)
	v.PostVisit(r)
}

func (r *CoverageEligibilityResponseInsurance) String() string {
	return visit.Sprint(r)
}

// ToBuilder returns a builder initialized with the contents of r.
func (r *CoverageEligibilityResponseInsurance) ToBuilder() *CoverageEligibilityResponseInsuranceBuilder {
	b := NewCoverageEligibilityResponseInsuranceBuilder(r.coverage)
	b.initBase(&r.backboneElement)
	b.inforce = r.inforce
	b.benefitPeriod = r.benefitPeriod
	b.item = cloneList(r.item)
	return b
}

// CoverageEligibilityResponseInsuranceBuilder builds [CoverageEligibilityResponseInsurance] nodes.
type CoverageEligibilityResponseInsuranceBuilder struct {
	backboneElementBuilder[CoverageEligibilityResponseInsuranceBuilder]
	coverage      *Reference
	inforce       *Boolean
	benefitPeriod *Period
	item          []*CoverageEligibilityResponseInsuranceItem
}

// NewCoverageEligibilityResponseInsuranceBuilder returns a builder for [CoverageEligibilityResponseInsurance] with the required elements set.
func NewCoverageEligibilityResponseInsuranceBuilder(coverage *Reference) *CoverageEligibilityResponseInsuranceBuilder {
	b := &CoverageEligibilityResponseInsuranceBuilder{
		coverage: coverage,
	}
	b.self = b
	return b
}

func (b *CoverageEligibilityResponseInsuranceBuilder) Coverage(v *Reference) *CoverageEligibilityResponseInsuranceBuilder {
	b.coverage = v
	return b
}

func (b *CoverageEligibilityResponseInsuranceBuilder) Inforce(v *Boolean) *CoverageEligibilityResponseInsuranceBuilder {
	b.inforce = v
	return b
}

func (b *CoverageEligibilityResponseInsuranceBuilder) BenefitPeriod(v *Period) *CoverageEligibilityResponseInsuranceBuilder {
	b.benefitPeriod = v
	return b
}

func (b *CoverageEligibilityResponseInsuranceBuilder) Item(v ...*CoverageEligibilityResponseInsuranceItem) *CoverageEligibilityResponseInsuranceBuilder {
	b.item = append(b.item, v...)
	return b
}

func (b *CoverageEligibilityResponseInsuranceBuilder) SetItem(v []*CoverageEligibilityResponseInsuranceItem) *CoverageEligibilityResponseInsuranceBuilder {
	b.item = cloneList(v)
	return b
}

// Build validates the builder contents and returns the node.
func (b *CoverageEligibilityResponseInsuranceBuilder) Build() (*CoverageEligibilityResponseInsurance, error) {
	opts := b.options()
	base, errs := b.buildBase()
	errs = append(errs,
		validation.RequireNonNull(b.coverage, "coverage"),
		validation.RequireNoNilElements(b.item, "item"),
	)
	if opts.ReferenceTypes {
		errs = append(errs, checkReference(b.coverage, "coverage", "Coverage"))
	}
	r := &CoverageEligibilityResponseInsurance{
		backboneElement: base,
		coverage:        b.coverage,
		inforce:         b.inforce,
		benefitPeriod:   b.benefitPeriod,
		item:            cloneList(b.item),
	}
	errs = append(errs, validation.RequireValueOrChildren(r))
	if err := validation.Join("CoverageEligibilityResponse.insurance", errs...); err != nil {
		return nil, err
	}
	return r, nil
}

// CoverageEligibilityResponseInsuranceItem describes the benefits for a category or service.
type CoverageEligibilityResponseInsuranceItem struct {
	backboneElement
	category                *CodeableConcept
	productOrService        *CodeableConcept
	modifier                []*CodeableConcept
	provider                *Reference
	excluded                *Boolean
	name                    *String
	description             *String
	network                 *CodeableConcept
	unit                    *CodeableConcept
	term                    *CodeableConcept
	benefit                 []*CoverageEligibilityResponseInsuranceItemBenefit
	authorizationRequired   *Boolean
	authorizationSupporting []*CodeableConcept
	authorizationUrl        *Uri
}

func (r *CoverageEligibilityResponseInsuranceItem) TypeName() string {
	return "CoverageEligibilityResponse.insurance.item"
}

func (r *CoverageEligibilityResponseInsuranceItem) Category() *CodeableConcept {
	return r.category
}

func (r *CoverageEligibilityResponseInsuranceItem) ProductOrService() *CodeableConcept {
	return r.productOrService
}

func (r *CoverageEligibilityResponseInsuranceItem) Modifier() []*CodeableConcept {
	return cloneList(r.modifier)
}

func (r *CoverageEligibilityResponseInsuranceItem) Provider() *Reference {
	return r.provider
}

func (r *CoverageEligibilityResponseInsuranceItem) Excluded() *Boolean {
	return r.excluded
}

func (r *CoverageEligibilityResponseInsuranceItem) Name() *String {
	return r.name
}

func (r *CoverageEligibilityResponseInsuranceItem) Description() *String {
	return r.description
}

func (r *CoverageEligibilityResponseInsuranceItem) Network() *CodeableConcept {
	return r.network
}

func (r *CoverageEligibilityResponseInsuranceItem) Unit() *CodeableConcept {
	return r.unit
}

func (r *CoverageEligibilityResponseInsuranceItem) Term() *CodeableConcept {
	return r.term
}

func (r *CoverageEligibilityResponseInsuranceItem) Benefit() []*CoverageEligibilityResponseInsuranceItemBenefit {
	return cloneList(r.benefit)
}

func (r *CoverageEligibilityResponseInsuranceItem) AuthorizationRequired() *Boolean {
	return r.authorizationRequired
}

func (r *CoverageEligibilityResponseInsuranceItem) AuthorizationSupporting() []*CodeableConcept {
	return cloneList(r.authorizationSupporting)
}

func (r *CoverageEligibilityResponseInsuranceItem) AuthorizationUrl() *Uri {
	return r.authorizationUrl
}

func (r *CoverageEligibilityResponseInsuranceItem) HasChildren() bool {
	return r.hasBaseChildren() ||
		r.category != nil ||
		r.productOrService != nil ||
		len(r.modifier) > 0 ||
		r.provider != nil ||
		r.excluded != nil ||
		r.name != nil ||
		r.description != nil ||
		r.network != nil ||
		r.unit != nil ||
		r.term != nil ||
		len(r.benefit) > 0 ||
		r.authorizationRequired != nil ||
		len(r.authorizationSupporting) > 0 ||
		r.authorizationUrl != nil
}

func (r *CoverageEligibilityResponseInsuranceItem) Accept(name string, index int, v model.Visitor) {
	if !v.PreVisit(r) {
		return
	}
	v.VisitStart(name, index, r)
	if v.Visit(name, index, r) {
		r.visitBase(v)
		if r.category != nil {
			r.category.Accept("category", -1, v)
		}
		if r.productOrService != nil {
			r.productOrService.Accept("productOrService", -1, v)
		}
		model.AcceptList(v, "modifier", "CodeableConcept", r.modifier)
		if r.provider != nil {
			r.provider.Accept("provider", -1, v)
		}
		if r.excluded != nil {
			r.excluded.Accept("excluded", -1, v)
		}
		if r.name != nil {
			r.name.Accept("name", -1, v)
		}
		if r.description != nil {
			r.description.Accept("description", -1, v)
		}
		if r.network != nil {
			r.network.Accept("network", -1, v)
		}
		if r.unit != nil {
			r.unit.Accept("unit", -1, v)
		}
		if r.term != nil {
			r.term.Accept("term", -1, v)
		}
		model.AcceptList(v, "benefit", "CoverageEligibilityResponse.insurance.item.benefit", r.benefit)
		if r.authorizationRequired != nil {
			r.authorizationRequired.Accept("authorizationRequired", -1, v)
		}
		model.AcceptList(v, "authorizationSupporting", "CodeableConcept", r.authorizationSupporting)
		if r.authorizationUrl != nil {
			r.authorizationUrl.Accept("authorizationUrl", -1, v)
		}
	}
	v.VisitEnd(name, index, r)
	v.PostVisit(r)
}

func (r *CoverageEligibilityResponseInsuranceItem) String() string {
	return visit.Sprint(r)
}

// ToBuilder returns a builder initialized with the contents of r.
func (r *CoverageEligibilityResponseInsuranceItem) ToBuilder() *CoverageEligibilityResponseInsuranceItemBuilder {
	b := NewCoverageEligibilityResponseInsuranceItemBuilder()
	b.initBase(&r.backboneElement)
	b.category = r.category
	b.productOrService = r.productOrService
	b.modifier = cloneList(r.modifier)
	b.provider = r.provider
	b.excluded = r.excluded
	b.name = r.name
	b.description = r.description
	b.network = r.network
	b.unit = r.unit
	b.term = r.term
	b.benefit = cloneList(r.benefit)
	b.authorizationRequired = r.authorizationRequired
	b.authorizationSupporting = cloneList(r.authorizationSupporting)
	b.authorizationUrl = r.authorizationUrl
	return b
}

// CoverageEligibilityResponseInsuranceItemBuilder builds [CoverageEligibilityResponseInsuranceItem] nodes.
type CoverageEligibilityResponseInsuranceItemBuilder struct {
	backboneElementBuilder[CoverageEligibilityResponseInsuranceItemBuilder]
	category                *CodeableConcept
	productOrService        *CodeableConcept
	modifier                []*CodeableConcept
	provider                *Reference
	excluded                *Boolean
	name                    *String
	description             *String
	network                 *CodeableConcept
	unit                    *CodeableConcept
	term                    *CodeableConcept
	benefit                 []*CoverageEligibilityResponseInsuranceItemBenefit
	authorizationRequired   *Boolean
	authorizationSupporting []*CodeableConcept
	authorizationUrl        *Uri
}

func NewCoverageEligibilityResponseInsuranceItemBuilder() *CoverageEligibilityResponseInsuranceItemBuilder {
	b := &CoverageEligibilityResponseInsuranceItemBuilder{}
	b.self = b
	return b
}

func (b *CoverageEligibilityResponseInsuranceItemBuilder) Category(v *CodeableConcept) *CoverageEligibilityResponseInsuranceItemBuilder {
	b.category = v
	return b
}

func (b *CoverageEligibilityResponseInsuranceItemBuilder) ProductOrService(v *CodeableConcept) *CoverageEligibilityResponseInsuranceItemBuilder {
	b.productOrService = v
	return b
}

func (b *CoverageEligibilityResponseInsuranceItemBuilder) Modifier(v ...*CodeableConcept) *CoverageEligibilityResponseInsuranceItemBuilder {
	b.modifier = append(b.modifier, v...)
	return b
}

func (b *CoverageEligibilityResponseInsuranceItemBuilder) SetModifier(v []*CodeableConcept) *CoverageEligibilityResponseInsuranceItemBuilder {
	b.modifier = cloneList(v)
	return b
}

func (b *CoverageEligibilityResponseInsuranceItemBuilder) Provider(v *Reference) *CoverageEligibilityResponseInsuranceItemBuilder {
	b.provider = v
	return b
}

func (b *CoverageEligibilityResponseInsuranceItemBuilder) Excluded(v *Boolean) *CoverageEligibilityResponseInsuranceItemBuilder {
	b.excluded = v
	return b
}

func (b *CoverageEligibilityResponseInsuranceItemBuilder) Name(v *String) *CoverageEligibilityResponseInsuranceItemBuilder {
	b.name = v
	return b
}

func (b *CoverageEligibilityResponseInsuranceItemBuilder) Description(v *String) *CoverageEligibilityResponseInsuranceItemBuilder {
	b.description = v
	return b
}

func (b *CoverageEligibilityResponseInsuranceItemBuilder) Network(v *CodeableConcept) *CoverageEligibilityResponseInsuranceItemBuilder {
	b.network = v
	return b
}

func (b *CoverageEligibilityResponseInsuranceItemBuilder) Unit(v *CodeableConcept) *CoverageEligibilityResponseInsuranceItemBuilder {
	b.unit = v
	return b
}

func (b *CoverageEligibilityResponseInsuranceItemBuilder) Term(v *CodeableConcept) *CoverageEligibilityResponseInsuranceItemBuilder {
	b.term = v
	return b
}

func (b *CoverageEligibilityResponseInsuranceItemBuilder) Benefit(v ...*CoverageEligibilityResponseInsuranceItemBenefit) *CoverageEligibilityResponseInsuranceItemBuilder {
	b.benefit = append(b.benefit, v...)
	return b
}

func (b *CoverageEligibilityResponseInsuranceItemBuilder) SetBenefit(v []*CoverageEligibilityResponseInsuranceItemBenefit) *CoverageEligibilityResponseInsuranceItemBuilder {
	b.benefit = cloneList(v)
	return b
}

func (b *CoverageEligibilityResponseInsuranceItemBuilder) AuthorizationRequired(v *Boolean) *CoverageEligibilityResponseInsuranceItemBuilder {
	b.authorizationRequired = v
	return b
}

func (b *CoverageEligibilityResponseInsuranceItemBuilder) AuthorizationSupporting(v ...*CodeableConcept) *CoverageEligibilityResponseInsuranceItemBuilder {
	b.authorizationSupporting = append(b.authorizationSupporting, v...)
	return b
}

func (b *CoverageEligibilityResponseInsuranceItemBuilder) SetAuthorizationSupporting(v []*CodeableConcept) *CoverageEligibilityResponseInsuranceItemBuilder {
	b.authorizationSupporting = cloneList(v)
	return b
}

func (b *CoverageEligibilityResponseInsuranceItemBuilder) AuthorizationUrl(v *Uri) *CoverageEligibilityResponseInsuranceItemBuilder {
	b.authorizationUrl = v
	return b
}

// Build validates the builder contents and returns the node.
func (b *CoverageEligibilityResponseInsuranceItemBuilder) Build() (*CoverageEligibilityResponseInsuranceItem, error) {
	opts := b.options()
	base, errs := b.buildBase()
	errs = append(errs,
		validation.RequireNoNilElements(b.modifier, "modifier"),
		validation.RequireNoNilElements(b.benefit, "benefit"),
		validation.RequireNoNilElements(b.authorizationSupporting, "authorizationSupporting"),
	)
	if opts.ReferenceTypes {
		errs = append(errs, checkReference(b.provider, "provider", "Practitioner", "PractitionerRole"))
	}
	r := &CoverageEligibilityResponseInsuranceItem{
		backboneElement:         base,
		category:                b.category,
		productOrService:        b.productOrService,
		modifier:                cloneList(b.modifier),
		provider:                b.provider,
		excluded:                b.excluded,
		name:                    b.name,
		description:             b.description,
		network:                 b.network,
		unit:                    b.unit,
		term:                    b.term,
		benefit:                 cloneList(b.benefit),
		authorizationRequired:   b.authorizationRequired,
		authorizationSupporting: cloneList(b.authorizationSupporting),
		authorizationUrl:        b.authorizationUrl,
	}
	errs = append(errs, validation.RequireValueOrChildren(r))
	if err := validation.Join("CoverageEligibilityResponse.insurance.item", errs...); err != nil {
		return nil, err
	}
	return r, nil
}

type CoverageEligibilityResponseInsuranceItemBenefit struct {
	backboneElement
	typ     *CodeableConcept
	allowed CoverageEligibilityResponseInsuranceItemBenefitAllowed
	used    CoverageEligibilityResponseInsuranceItemBenefitUsed
}

// CoverageEligibilityResponseInsuranceItemBenefitAllowed is the type of
// CoverageEligibilityResponse.insurance.item.benefit.allowed[x]: one of unsignedInt, string, Money.
type CoverageEligibilityResponseInsuranceItemBenefitAllowed interface {
	model.Element
	isCoverageEligibilityResponseInsuranceItemBenefitAllowed()
}

func (r *UnsignedInt) isCoverageEligibilityResponseInsuranceItemBenefitAllowed() {}
func (r *String) isCoverageEligibilityResponseInsuranceItemBenefitAllowed()      {}
func (r *Money) isCoverageEligibilityResponseInsuranceItemBenefitAllowed()       {}

// CoverageEligibilityResponseInsuranceItemBenefitUsed is the type of
// CoverageEligibilityResponse.insurance.item.benefit.used[x]: one of unsignedInt, string, Money.
type CoverageEligibilityResponseInsuranceItemBenefitUsed interface {
	model.Element
	isCoverageEligibilityResponseInsuranceItemBenefitUsed()
}

func (r *UnsignedInt) isCoverageEligibilityResponseInsuranceItemBenefitUsed() {}
func (r *String) isCoverageEligibilityResponseInsuranceItemBenefitUsed()      {}
func (r *Money) isCoverageEligibilityResponseInsuranceItemBenefitUsed()       {}

func (r *CoverageEligibilityResponseInsuranceItemBenefit) TypeName() string {
	return "CoverageEligibilityResponse.insurance.item.benefit"
}

func (r *CoverageEligibilityResponseInsuranceItemBenefit) Type() *CodeableConcept {
	return r.typ
}

func (r *CoverageEligibilityResponseInsuranceItemBenefit) Allowed() CoverageEligibilityResponseInsuranceItemBenefitAllowed {
	return r.allowed
}

func (r *CoverageEligibilityResponseInsuranceItemBenefit) Used() CoverageEligibilityResponseInsuranceItemBenefitUsed {
	return r.used
}

func (r *CoverageEligibilityResponseInsuranceItemBenefit) HasChildren() bool {
	return r.hasBaseChildren() ||
		r.typ != nil ||
		r.allowed != nil ||
		r.used != nil
}

func (r *CoverageEligibilityResponseInsuranceItemBenefit) Accept(name string, index int, v model.Visitor) {
	if !v.PreVisit(r) {
		return
	}
	v.VisitStart(name, index, r)
	if v.Visit(name, index, r) {
		r.visitBase(v)
		if r.typ != nil {
			r.typ.Accept("type", -1, v)
		}
		model.AcceptChoice(v, "allowed", r.allowed)
		model.AcceptChoice(v, "used", r.used)
	}
	v.VisitEnd(name, index, r)
	v.PostVisit(r)
}

func (r *CoverageEligibilityResponseInsuranceItemBenefit) String() string {
	return visit.Sprint(r)
}

// ToBuilder returns a builder initialized with the contents of r.
func (r *CoverageEligibilityResponseInsuranceItemBenefit) ToBuilder() *CoverageEligibilityResponseInsuranceItemBenefitBuilder {
	b := NewCoverageEligibilityResponseInsuranceItemBenefitBuilder(r.typ)
	b.initBase(&r.backboneElement)
	b.allowed = r.allowed
	b.used = r.used
	return b
}

// CoverageEligibilityResponseInsuranceItemBenefitBuilder builds [CoverageEligibilityResponseInsuranceItemBenefit] nodes.
type CoverageEligibilityResponseInsuranceItemBenefitBuilder struct {
	backboneElementBuilder[CoverageEligibilityResponseInsuranceItemBenefitBuilder]
	typ     *CodeableConcept
	allowed model.Element
	used    model.Element
}

// NewCoverageEligibilityResponseInsuranceItemBenefitBuilder returns a builder for [CoverageEligibilityResponseInsuranceItemBenefit] with the required elements set.
func NewCoverageEligibilityResponseInsuranceItemBenefitBuilder(typ *CodeableConcept) *CoverageEligibilityResponseInsuranceItemBenefitBuilder {
	b := &CoverageEligibilityResponseInsuranceItemBenefitBuilder{
		typ: typ,
	}
	b.self = b
	return b
}

func (b *CoverageEligibilityResponseInsuranceItemBenefitBuilder) Type(v *CodeableConcept) *CoverageEligibilityResponseInsuranceItemBenefitBuilder {
	b.typ = v
	return b
}

func (b *CoverageEligibilityResponseInsuranceItemBenefitBuilder) Allowed(v CoverageEligibilityResponseInsuranceItemBenefitAllowed) *CoverageEligibilityResponseInsuranceItemBenefitBuilder {
	b.allowed = v
	return b
}

// AllowedElement sets allowed without static type check, Build fails unless it is one of unsignedInt, string, Money.
func (b *CoverageEligibilityResponseInsuranceItemBenefitBuilder) AllowedElement(v model.Element) *CoverageEligibilityResponseInsuranceItemBenefitBuilder {
	b.allowed = v
	return b
}

func (b *CoverageEligibilityResponseInsuranceItemBenefitBuilder) Used(v CoverageEligibilityResponseInsuranceItemBenefitUsed) *CoverageEligibilityResponseInsuranceItemBenefitBuilder {
	b.used = v
	return b
}

// UsedElement sets used without static type check, Build fails unless it is one of unsignedInt, string, Money.
func (b *CoverageEligibilityResponseInsuranceItemBenefitBuilder) UsedElement(v model.Element) *CoverageEligibilityResponseInsuranceItemBenefitBuilder {
	b.used = v
	return b
}

// Build validates the builder contents and returns the node.
func (b *CoverageEligibilityResponseInsuranceItemBenefitBuilder) Build() (*CoverageEligibilityResponseInsuranceItemBenefit, error) {
	base, errs := b.buildBase()
	allowed, err := validation.ChoiceElement[CoverageEligibilityResponseInsuranceItemBenefitAllowed](b.allowed, "allowed", "unsignedInt", "string", "Money")
	errs = append(errs, err)
	used, err := validation.ChoiceElement[CoverageEligibilityResponseInsuranceItemBenefitUsed](b.used, "used", "unsignedInt", "string", "Money")
	errs = append(errs, err)
	errs = append(errs,
		validation.RequireNonNull(b.typ, "type"),
	)
	r := &CoverageEligibilityResponseInsuranceItemBenefit{
		backboneElement: base,
		typ:             b.typ,
		allowed:         allowed,
		used:            used,
	}
	errs = append(errs, validation.RequireValueOrChildren(r))
	if err := validation.Join("CoverageEligibilityResponse.insurance.item.benefit", errs...); err != nil {
		return nil, err
	}
	return r, nil
}

type CoverageEligibilityResponseError struct {
	backboneElement
	code *CodeableConcept
}

func (r *CoverageEligibilityResponseError) TypeName() string {
	return "CoverageEligibilityResponse.error"
}

func (r *CoverageEligibilityResponseError) Code() *CodeableConcept {
	return r.code
}

func (r *CoverageEligibilityResponseError) HasChildren() bool {
	return r.hasBaseChildren() ||
		r.code != nil
}

func (r *CoverageEligibilityResponseError) Accept(name string, index int, v model.Visitor) {
	if !v.PreVisit(r) {
		return
	}
	v.VisitStart(name, index, r)
	if v.Visit(name, index, r) {
		r.visitBase(v)
		if r.code != nil {
			r.code.Accept("code", -1, v)
		}
	}
	v.VisitEnd(name, index, r)
	v.PostVisit(r)
}

func (r *CoverageEligibilityResponseError) String() string {
	return visit.Sprint(r)
}

// ToBuilder returns a builder initialized with the contents of r.
func (r *CoverageEligibilityResponseError) ToBuilder() *CoverageEligibilityResponseErrorBuilder {
	b := NewCoverageEligibilityResponseErrorBuilder(r.code)
	b.initBase(&r.backboneElement)
	return b
}

// CoverageEligibilityResponseErrorBuilder builds [CoverageEligibilityResponseError] nodes.
type CoverageEligibilityResponseErrorBuilder struct {
	backboneElementBuilder[CoverageEligibilityResponseErrorBuilder]
	code *CodeableConcept
}

// NewCoverageEligibilityResponseErrorBuilder returns a builder for [CoverageEligibilityResponseError] with the required elements set.
func NewCoverageEligibilityResponseErrorBuilder(code *CodeableConcept) *CoverageEligibilityResponseErrorBuilder {
	b := &CoverageEligibilityResponseErrorBuilder{
		code: code,
	}
	b.self = b
	return b
}

func (b *CoverageEligibilityResponseErrorBuilder) Code(v *CodeableConcept) *CoverageEligibilityResponseErrorBuilder {
	b.code = v
	return b
}

// Build validates the builder contents and returns the node.
func (b *CoverageEligibilityResponseErrorBuilder) Build() (*CoverageEligibilityResponseError, error) {
	base, errs := b.buildBase()
	errs = append(errs,
		validation.RequireNonNull(b.code, "code"),
	)
	r := &CoverageEligibilityResponseError{
		backboneElement: base,
		code:            b.code,
	}
	errs = append(errs, validation.RequireValueOrChildren(r))
	if err := validation.Join("CoverageEligibilityResponse.error", errs...); err != nil {
		return nil, err
	}
	return r, nil
}
