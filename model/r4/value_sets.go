package r4

// Value set constants for required bindings

// AdverseEventActuality tells whether an adverse event actually happened or was a near miss.
//
// Value set: http://hl7.org/fhir/ValueSet/adverse-event-actuality
type AdverseEventActuality string

const (
	AdverseEventActualityActual    AdverseEventActuality = "actual"
	AdverseEventActualityPotential AdverseEventActuality = "potential"
)

var adverseEventActualityValues = []AdverseEventActuality{
	AdverseEventActualityActual,
	AdverseEventActualityPotential,
}

// ParseAdverseEventActuality converts s to a AdverseEventActuality code.
func ParseAdverseEventActuality(s string) (*Coded[AdverseEventActuality], error) {
	return parseCoded("http://hl7.org/fhir/ValueSet/adverse-event-actuality", s, adverseEventActualityValues)
}

// CarePlanActivityKind is the resource type a planned activity will result in.
//
// Value set: http://hl7.org/fhir/ValueSet/care-plan-activity-kind
type CarePlanActivityKind string

const (
	CarePlanActivityKindAppointment          CarePlanActivityKind = "Appointment"
	CarePlanActivityKindCommunicationRequest CarePlanActivityKind = "CommunicationRequest"
	CarePlanActivityKindDeviceRequest        CarePlanActivityKind = "DeviceRequest"
	CarePlanActivityKindMedicationRequest    CarePlanActivityKind = "MedicationRequest"
	CarePlanActivityKindNutritionOrder       CarePlanActivityKind = "NutritionOrder"
	CarePlanActivityKindTask                 CarePlanActivityKind = "Task"
	CarePlanActivityKindServiceRequest       CarePlanActivityKind = "ServiceRequest"
	CarePlanActivityKindVisionPrescription   CarePlanActivityKind = "VisionPrescription"
)

var carePlanActivityKindValues = []CarePlanActivityKind{
	CarePlanActivityKindAppointment,
	CarePlanActivityKindCommunicationRequest,
	CarePlanActivityKindDeviceRequest,
	CarePlanActivityKindMedicationRequest,
	CarePlanActivityKindNutritionOrder,
	CarePlanActivityKindTask,
	CarePlanActivityKindServiceRequest,
	CarePlanActivityKindVisionPrescription,
}

// ParseCarePlanActivityKind converts s to a CarePlanActivityKind code.
func ParseCarePlanActivityKind(s string) (*Coded[CarePlanActivityKind], error) {
	return parseCoded("http://hl7.org/fhir/ValueSet/care-plan-activity-kind", s, carePlanActivityKindValues)
}

// CarePlanActivityStatus is the progress of a care plan activity.
//
// Value set: http://hl7.org/fhir/ValueSet/care-plan-activity-status
type CarePlanActivityStatus string

const (
	CarePlanActivityStatusNotStarted     CarePlanActivityStatus = "not-started"
	CarePlanActivityStatusScheduled      CarePlanActivityStatus = "scheduled"
	CarePlanActivityStatusInProgress     CarePlanActivityStatus = "in-progress"
	CarePlanActivityStatusOnHold         CarePlanActivityStatus = "on-hold"
	CarePlanActivityStatusCompleted      CarePlanActivityStatus = "completed"
	CarePlanActivityStatusCancelled      CarePlanActivityStatus = "cancelled"
	CarePlanActivityStatusStopped        CarePlanActivityStatus = "stopped"
	CarePlanActivityStatusUnknown        CarePlanActivityStatus = "unknown"
	CarePlanActivityStatusEnteredInError CarePlanActivityStatus = "entered-in-error"
)

var carePlanActivityStatusValues = []CarePlanActivityStatus{
	CarePlanActivityStatusNotStarted,
	CarePlanActivityStatusScheduled,
	CarePlanActivityStatusInProgress,
	CarePlanActivityStatusOnHold,
	CarePlanActivityStatusCompleted,
	CarePlanActivityStatusCancelled,
	CarePlanActivityStatusStopped,
	CarePlanActivityStatusUnknown,
	CarePlanActivityStatusEnteredInError,
}

// ParseCarePlanActivityStatus converts s to a CarePlanActivityStatus code.
func ParseCarePlanActivityStatus(s string) (*Coded[CarePlanActivityStatus], error) {
	return parseCoded("http://hl7.org/fhir/ValueSet/care-plan-activity-status", s, carePlanActivityStatusValues)
}

// CarePlanIntent is the level of authority of a care plan.
//
// Value set: http://hl7.org/fhir/ValueSet/care-plan-intent
type CarePlanIntent string

const (
	CarePlanIntentProposal CarePlanIntent = "proposal"
	CarePlanIntentPlan     CarePlanIntent = "plan"
	CarePlanIntentOrder    CarePlanIntent = "order"
	CarePlanIntentOption   CarePlanIntent = "option"
)

var carePlanIntentValues = []CarePlanIntent{
	CarePlanIntentProposal,
	CarePlanIntentPlan,
	CarePlanIntentOrder,
	CarePlanIntentOption,
}

// ParseCarePlanIntent converts s to a CarePlanIntent code.
func ParseCarePlanIntent(s string) (*Coded[CarePlanIntent], error) {
	return parseCoded("http://hl7.org/fhir/ValueSet/care-plan-intent", s, carePlanIntentValues)
}

// CodeSystemContentMode tells how much of a code system is represented by the resource.
//
// Value set: http://hl7.org/fhir/ValueSet/codesystem-content-mode
type CodeSystemContentMode string

const (
	CodeSystemContentModeNotPresent CodeSystemContentMode = "not-present"
	CodeSystemContentModeExample    CodeSystemContentMode = "example"
	CodeSystemContentModeFragment   CodeSystemContentMode = "fragment"
	CodeSystemContentModeComplete   CodeSystemContentMode = "complete"
	CodeSystemContentModeSupplement CodeSystemContentMode = "supplement"
)

var codeSystemContentModeValues = []CodeSystemContentMode{
	CodeSystemContentModeNotPresent,
	CodeSystemContentModeExample,
	CodeSystemContentModeFragment,
	CodeSystemContentModeComplete,
	CodeSystemContentModeSupplement,
}

// ParseCodeSystemContentMode converts s to a CodeSystemContentMode code.
func ParseCodeSystemContentMode(s string) (*Coded[CodeSystemContentMode], error) {
	return parseCoded("http://hl7.org/fhir/ValueSet/codesystem-content-mode", s, codeSystemContentModeValues)
}

// CodeSystemHierarchyMeaning is the meaning of the hierarchy of concepts in a code system.
//
// Value set: http://hl7.org/fhir/ValueSet/codesystem-hierarchy-meaning
type CodeSystemHierarchyMeaning string

const (
	CodeSystemHierarchyMeaningGroupedBy      CodeSystemHierarchyMeaning = "grouped-by"
	CodeSystemHierarchyMeaningIsA            CodeSystemHierarchyMeaning = "is-a"
	CodeSystemHierarchyMeaningPartOf         CodeSystemHierarchyMeaning = "part-of"
	CodeSystemHierarchyMeaningClassifiedWith CodeSystemHierarchyMeaning = "classified-with"
)

var codeSystemHierarchyMeaningValues = []CodeSystemHierarchyMeaning{
	CodeSystemHierarchyMeaningGroupedBy,
	CodeSystemHierarchyMeaningIsA,
	CodeSystemHierarchyMeaningPartOf,
	CodeSystemHierarchyMeaningClassifiedWith,
}

// ParseCodeSystemHierarchyMeaning converts s to a CodeSystemHierarchyMeaning code.
func ParseCodeSystemHierarchyMeaning(s string) (*Coded[CodeSystemHierarchyMeaning], error) {
	return parseCoded("http://hl7.org/fhir/ValueSet/codesystem-hierarchy-meaning", s, codeSystemHierarchyMeaningValues)
}

// ContactPointSystem codes of value set http://hl7.org/fhir/ValueSet/contact-point-system
type ContactPointSystem string

const (
	ContactPointSystemPhone ContactPointSystem = "phone"
	ContactPointSystemFax   ContactPointSystem = "fax"
	ContactPointSystemEmail ContactPointSystem = "email"
	ContactPointSystemPager ContactPointSystem = "pager"
	ContactPointSystemUrl   ContactPointSystem = "url"
	ContactPointSystemSms   ContactPointSystem = "sms"
	ContactPointSystemOther ContactPointSystem = "other"
)

var contactPointSystemValues = []ContactPointSystem{
	ContactPointSystemPhone,
	ContactPointSystemFax,
	ContactPointSystemEmail,
	ContactPointSystemPager,
	ContactPointSystemUrl,
	ContactPointSystemSms,
	ContactPointSystemOther,
}

// ParseContactPointSystem converts s to a ContactPointSystem code.
func ParseContactPointSystem(s string) (*Coded[ContactPointSystem], error) {
	return parseCoded("http://hl7.org/fhir/ValueSet/contact-point-system", s, contactPointSystemValues)
}

// ContactPointUse codes of value set http://hl7.org/fhir/ValueSet/contact-point-use
type ContactPointUse string

const (
	ContactPointUseHome   ContactPointUse = "home"
	ContactPointUseWork   ContactPointUse = "work"
	ContactPointUseTemp   ContactPointUse = "temp"
	ContactPointUseOld    ContactPointUse = "old"
	ContactPointUseMobile ContactPointUse = "mobile"
)

var contactPointUseValues = []ContactPointUse{
	ContactPointUseHome,
	ContactPointUseWork,
	ContactPointUseTemp,
	ContactPointUseOld,
	ContactPointUseMobile,
}

// ParseContactPointUse converts s to a ContactPointUse code.
func ParseContactPointUse(s string) (*Coded[ContactPointUse], error) {
	return parseCoded("http://hl7.org/fhir/ValueSet/contact-point-use", s, contactPointUseValues)
}

// DaysOfWeek codes of value set http://hl7.org/fhir/ValueSet/days-of-week
type DaysOfWeek string

const (
	DaysOfWeekMon DaysOfWeek = "mon"
	DaysOfWeekTue DaysOfWeek = "tue"
	DaysOfWeekWed DaysOfWeek = "wed"
	DaysOfWeekThu DaysOfWeek = "thu"
	DaysOfWeekFri DaysOfWeek = "fri"
	DaysOfWeekSat DaysOfWeek = "sat"
	DaysOfWeekSun DaysOfWeek = "sun"
)

var daysOfWeekValues = []DaysOfWeek{
	DaysOfWeekMon,
	DaysOfWeekTue,
	DaysOfWeekWed,
	DaysOfWeekThu,
	DaysOfWeekFri,
	DaysOfWeekSat,
	DaysOfWeekSun,
}

// ParseDaysOfWeek converts s to a DaysOfWeek code.
func ParseDaysOfWeek(s string) (*Coded[DaysOfWeek], error) {
	return parseCoded("http://hl7.org/fhir/ValueSet/days-of-week", s, daysOfWeekValues)
}

// EligibilityResponsePurpose is the kind of information a coverage eligibility response provides.
//
// Value set: http://hl7.org/fhir/ValueSet/eligibilityresponse-purpose
type EligibilityResponsePurpose string

const (
	EligibilityResponsePurposeAuthRequirements EligibilityResponsePurpose = "auth-requirements"
	EligibilityResponsePurposeBenefits         EligibilityResponsePurpose = "benefits"
	EligibilityResponsePurposeDiscovery        EligibilityResponsePurpose = "discovery"
	EligibilityResponsePurposeValidation       EligibilityResponsePurpose = "validation"
)

var eligibilityResponsePurposeValues = []EligibilityResponsePurpose{
	EligibilityResponsePurposeAuthRequirements,
	EligibilityResponsePurposeBenefits,
	EligibilityResponsePurposeDiscovery,
	EligibilityResponsePurposeValidation,
}

// ParseEligibilityResponsePurpose converts s to a EligibilityResponsePurpose code.
func ParseEligibilityResponsePurpose(s string) (*Coded[EligibilityResponsePurpose], error) {
	return parseCoded("http://hl7.org/fhir/ValueSet/eligibilityresponse-purpose", s, eligibilityResponsePurposeValues)
}

// EventTiming is a real world event relating to the schedule of a timing.
//
// Value set: http://hl7.org/fhir/ValueSet/event-timing
type EventTiming string

const (
	EventTimingMorn      EventTiming = "MORN"
	EventTimingMornEarly EventTiming = "MORN.early"
	EventTimingMornLate  EventTiming = "MORN.late"
	EventTimingNoon      EventTiming = "NOON"
	EventTimingAft       EventTiming = "AFT"
	EventTimingAftEarly  EventTiming = "AFT.early"
	EventTimingAftLate   EventTiming = "AFT.late"
	EventTimingEve       EventTiming = "EVE"
	EventTimingEveEarly  EventTiming = "EVE.early"
	EventTimingEveLate   EventTiming = "EVE.late"
	EventTimingNight     EventTiming = "NIGHT"
	EventTimingPhs       EventTiming = "PHS"
	EventTimingHs        EventTiming = "HS"
	EventTimingWake      EventTiming = "WAKE"
	EventTimingC         EventTiming = "C"
	EventTimingCm        EventTiming = "CM"
	EventTimingCd        EventTiming = "CD"
	EventTimingCv        EventTiming = "CV"
	EventTimingAc        EventTiming = "AC"
	EventTimingAcm       EventTiming = "ACM"
	EventTimingAcd       EventTiming = "ACD"
	EventTimingAcv       EventTiming = "ACV"
	EventTimingPc        EventTiming = "PC"
	EventTimingPcm       EventTiming = "PCM"
	EventTimingPcd       EventTiming = "PCD"
	EventTimingPcv       EventTiming = "PCV"
)

var eventTimingValues = []EventTiming{
	EventTimingMorn,
	EventTimingMornEarly,
	EventTimingMornLate,
	EventTimingNoon,
	EventTimingAft,
	EventTimingAftEarly,
	EventTimingAftLate,
	EventTimingEve,
	EventTimingEveEarly,
	EventTimingEveLate,
	EventTimingNight,
	EventTimingPhs,
	EventTimingHs,
	EventTimingWake,
	EventTimingC,
	EventTimingCm,
	EventTimingCd,
	EventTimingCv,
	EventTimingAc,
	EventTimingAcm,
	EventTimingAcd,
	EventTimingAcv,
	EventTimingPc,
	EventTimingPcm,
	EventTimingPcd,
	EventTimingPcv,
}

// ParseEventTiming converts s to a EventTiming code.
func ParseEventTiming(s string) (*Coded[EventTiming], error) {
	return parseCoded("http://hl7.org/fhir/ValueSet/event-timing", s, eventTimingValues)
}

// FilterOperator is an operator that can be used in a code system filter.
//
// Value set: http://hl7.org/fhir/ValueSet/filter-operator
type FilterOperator string

const (
	FilterOperatorEqualTo      FilterOperator = "="
	FilterOperatorIsA          FilterOperator = "is-a"
	FilterOperatorDescendentOf FilterOperator = "descendent-of"
	FilterOperatorIsNotA       FilterOperator = "is-not-a"
	FilterOperatorRegex        FilterOperator = "regex"
	FilterOperatorIn           FilterOperator = "in"
	FilterOperatorNotIn        FilterOperator = "not-in"
	FilterOperatorGeneralizes  FilterOperator = "generalizes"
	FilterOperatorExists       FilterOperator = "exists"
)

var filterOperatorValues = []FilterOperator{
	FilterOperatorEqualTo,
	FilterOperatorIsA,
	FilterOperatorDescendentOf,
	FilterOperatorIsNotA,
	FilterOperatorRegex,
	FilterOperatorIn,
	FilterOperatorNotIn,
	FilterOperatorGeneralizes,
	FilterOperatorExists,
}

// ParseFilterOperator converts s to a FilterOperator code.
func ParseFilterOperator(s string) (*Coded[FilterOperator], error) {
	return parseCoded("http://hl7.org/fhir/ValueSet/filter-operator", s, filterOperatorValues)
}

// FinancialResourceStatusCodes is the status of financial resources.
//
// Value set: http://hl7.org/fhir/ValueSet/fm-status
type FinancialResourceStatusCodes string

const (
	FinancialResourceStatusCodesActive         FinancialResourceStatusCodes = "active"
	FinancialResourceStatusCodesCancelled      FinancialResourceStatusCodes = "cancelled"
	FinancialResourceStatusCodesDraft          FinancialResourceStatusCodes = "draft"
	FinancialResourceStatusCodesEnteredInError FinancialResourceStatusCodes = "entered-in-error"
)

var financialResourceStatusCodesValues = []FinancialResourceStatusCodes{
	FinancialResourceStatusCodesActive,
	FinancialResourceStatusCodesCancelled,
	FinancialResourceStatusCodesDraft,
	FinancialResourceStatusCodesEnteredInError,
}

// ParseFinancialResourceStatusCodes converts s to a FinancialResourceStatusCodes code.
func ParseFinancialResourceStatusCodes(s string) (*Coded[FinancialResourceStatusCodes], error) {
	return parseCoded("http://hl7.org/fhir/ValueSet/fm-status", s, financialResourceStatusCodesValues)
}

// IdentifierUse codes of value set http://hl7.org/fhir/ValueSet/identifier-use
type IdentifierUse string

const (
	IdentifierUseUsual     IdentifierUse = "usual"
	IdentifierUseOfficial  IdentifierUse = "official"
	IdentifierUseTemp      IdentifierUse = "temp"
	IdentifierUseSecondary IdentifierUse = "secondary"
	IdentifierUseOld       IdentifierUse = "old"
)

var identifierUseValues = []IdentifierUse{
	IdentifierUseUsual,
	IdentifierUseOfficial,
	IdentifierUseTemp,
	IdentifierUseSecondary,
	IdentifierUseOld,
}

// ParseIdentifierUse converts s to a IdentifierUse code.
func ParseIdentifierUse(s string) (*Coded[IdentifierUse], error) {
	return parseCoded("http://hl7.org/fhir/ValueSet/identifier-use", s, identifierUseValues)
}

// MeasureReportStatus codes of value set http://hl7.org/fhir/ValueSet/measure-report-status
type MeasureReportStatus string

const (
	MeasureReportStatusComplete MeasureReportStatus = "complete"
	MeasureReportStatusPending  MeasureReportStatus = "pending"
	MeasureReportStatusError    MeasureReportStatus = "error"
)

var measureReportStatusValues = []MeasureReportStatus{
	MeasureReportStatusComplete,
	MeasureReportStatusPending,
	MeasureReportStatusError,
}

// ParseMeasureReportStatus converts s to a MeasureReportStatus code.
func ParseMeasureReportStatus(s string) (*Coded[MeasureReportStatus], error) {
	return parseCoded("http://hl7.org/fhir/ValueSet/measure-report-status", s, measureReportStatusValues)
}

// MeasureReportType is the kind of data contained in a measure report.
//
// Value set: http://hl7.org/fhir/ValueSet/measure-report-type
type MeasureReportType string

const (
	MeasureReportTypeIndividual     MeasureReportType = "individual"
	MeasureReportTypeSubjectList    MeasureReportType = "subject-list"
	MeasureReportTypeSummary        MeasureReportType = "summary"
	MeasureReportTypeDataCollection MeasureReportType = "data-collection"
)

var measureReportTypeValues = []MeasureReportType{
	MeasureReportTypeIndividual,
	MeasureReportTypeSubjectList,
	MeasureReportTypeSummary,
	MeasureReportTypeDataCollection,
}

// ParseMeasureReportType converts s to a MeasureReportType code.
func ParseMeasureReportType(s string) (*Coded[MeasureReportType], error) {
	return parseCoded("http://hl7.org/fhir/ValueSet/measure-report-type", s, measureReportTypeValues)
}

// NarrativeStatus codes of value set http://hl7.org/fhir/ValueSet/narrative-status
type NarrativeStatus string

const (
	NarrativeStatusGenerated  NarrativeStatus = "generated"
	NarrativeStatusExtensions NarrativeStatus = "extensions"
	NarrativeStatusAdditional NarrativeStatus = "additional"
	NarrativeStatusEmpty      NarrativeStatus = "empty"
)

var narrativeStatusValues = []NarrativeStatus{
	NarrativeStatusGenerated,
	NarrativeStatusExtensions,
	NarrativeStatusAdditional,
	NarrativeStatusEmpty,
}

// ParseNarrativeStatus converts s to a NarrativeStatus code.
func ParseNarrativeStatus(s string) (*Coded[NarrativeStatus], error) {
	return parseCoded("http://hl7.org/fhir/ValueSet/narrative-status", s, narrativeStatusValues)
}

// PropertyType is the type of a code system concept property value.
//
// Value set: http://hl7.org/fhir/ValueSet/concept-property-type
type PropertyType string

const (
	PropertyTypeCode     PropertyType = "code"
	PropertyTypeCoding   PropertyType = "Coding"
	PropertyTypeString   PropertyType = "string"
	PropertyTypeInteger  PropertyType = "integer"
	PropertyTypeBoolean  PropertyType = "boolean"
	PropertyTypeDateTime PropertyType = "dateTime"
	PropertyTypeDecimal  PropertyType = "decimal"
)

var propertyTypeValues = []PropertyType{
	PropertyTypeCode,
	PropertyTypeCoding,
	PropertyTypeString,
	PropertyTypeInteger,
	PropertyTypeBoolean,
	PropertyTypeDateTime,
	PropertyTypeDecimal,
}

// ParsePropertyType converts s to a PropertyType code.
func ParsePropertyType(s string) (*Coded[PropertyType], error) {
	return parseCoded("http://hl7.org/fhir/ValueSet/concept-property-type", s, propertyTypeValues)
}

// PublicationStatus is the lifecycle status of a conformance or knowledge artifact.
//
// Value set: http://hl7.org/fhir/ValueSet/publication-status
type PublicationStatus string

const (
	PublicationStatusDraft   PublicationStatus = "draft"
	PublicationStatusActive  PublicationStatus = "active"
	PublicationStatusRetired PublicationStatus = "retired"
	PublicationStatusUnknown PublicationStatus = "unknown"
)

var publicationStatusValues = []PublicationStatus{
	PublicationStatusDraft,
	PublicationStatusActive,
	PublicationStatusRetired,
	PublicationStatusUnknown,
}

// ParsePublicationStatus converts s to a PublicationStatus code.
func ParsePublicationStatus(s string) (*Coded[PublicationStatus], error) {
	return parseCoded("http://hl7.org/fhir/ValueSet/publication-status", s, publicationStatusValues)
}

// QuantityComparator tells how a quantity value should be understood.
//
// Value set: http://hl7.org/fhir/ValueSet/quantity-comparator
type QuantityComparator string

const (
	QuantityComparatorLessThan             QuantityComparator = "<"
	QuantityComparatorLessThanOrEqualTo    QuantityComparator = "<="
	QuantityComparatorGreaterThanOrEqualTo QuantityComparator = ">="
	QuantityComparatorGreaterThan          QuantityComparator = ">"
)

var quantityComparatorValues = []QuantityComparator{
	QuantityComparatorLessThan,
	QuantityComparatorLessThanOrEqualTo,
	QuantityComparatorGreaterThanOrEqualTo,
	QuantityComparatorGreaterThan,
}

// ParseQuantityComparator converts s to a QuantityComparator code.
func ParseQuantityComparator(s string) (*Coded[QuantityComparator], error) {
	return parseCoded("http://hl7.org/fhir/ValueSet/quantity-comparator", s, quantityComparatorValues)
}

// RemittanceOutcome is the result of processing a request.
//
// Value set: http://hl7.org/fhir/ValueSet/remittance-outcome
type RemittanceOutcome string

const (
	RemittanceOutcomeQueued   RemittanceOutcome = "queued"
	RemittanceOutcomeComplete RemittanceOutcome = "complete"
	RemittanceOutcomeError    RemittanceOutcome = "error"
	RemittanceOutcomePartial  RemittanceOutcome = "partial"
)

var remittanceOutcomeValues = []RemittanceOutcome{
	RemittanceOutcomeQueued,
	RemittanceOutcomeComplete,
	RemittanceOutcomeError,
	RemittanceOutcomePartial,
}

// ParseRemittanceOutcome converts s to a RemittanceOutcome code.
func ParseRemittanceOutcome(s string) (*Coded[RemittanceOutcome], error) {
	return parseCoded("http://hl7.org/fhir/ValueSet/remittance-outcome", s, remittanceOutcomeValues)
}

// RequestStatus codes of value set http://hl7.org/fhir/ValueSet/request-status
type RequestStatus string

const (
	RequestStatusDraft          RequestStatus = "draft"
	RequestStatusActive         RequestStatus = "active"
	RequestStatusOnHold         RequestStatus = "on-hold"
	RequestStatusRevoked        RequestStatus = "revoked"
	RequestStatusCompleted      RequestStatus = "completed"
	RequestStatusEnteredInError RequestStatus = "entered-in-error"
	RequestStatusUnknown        RequestStatus = "unknown"
)

var requestStatusValues = []RequestStatus{
	RequestStatusDraft,
	RequestStatusActive,
	RequestStatusOnHold,
	RequestStatusRevoked,
	RequestStatusCompleted,
	RequestStatusEnteredInError,
	RequestStatusUnknown,
}

// ParseRequestStatus converts s to a RequestStatus code.
func ParseRequestStatus(s string) (*Coded[RequestStatus], error) {
	return parseCoded("http://hl7.org/fhir/ValueSet/request-status", s, requestStatusValues)
}

// UnitsOfTime are the UCUM units of time used by timings.
//
// Value set: http://hl7.org/fhir/ValueSet/units-of-time
type UnitsOfTime string

const (
	UnitsOfTimeS   UnitsOfTime = "s"
	UnitsOfTimeMin UnitsOfTime = "min"
	UnitsOfTimeH   UnitsOfTime = "h"
	UnitsOfTimeD   UnitsOfTime = "d"
	UnitsOfTimeWk  UnitsOfTime = "wk"
	UnitsOfTimeMo  UnitsOfTime = "mo"
	UnitsOfTimeA   UnitsOfTime = "a"
)

var unitsOfTimeValues = []UnitsOfTime{
	UnitsOfTimeS,
	UnitsOfTimeMin,
	UnitsOfTimeH,
	UnitsOfTimeD,
	UnitsOfTimeWk,
	UnitsOfTimeMo,
	UnitsOfTimeA,
}

// ParseUnitsOfTime converts s to a UnitsOfTime code.
func ParseUnitsOfTime(s string) (*Coded[UnitsOfTime], error) {
	return parseCoded("http://hl7.org/fhir/ValueSet/units-of-time", s, unitsOfTimeValues)
}
