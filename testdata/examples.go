// Package testdata provides sample resources shared by the tests of this module.
package testdata

import (
	"github.com/damedic/fhir-model-go/model"
	"github.com/damedic/fhir-model-go/model/r4"
)

func str(s string) *r4.String {
	return r4.Must(r4.NewString(s))
}

func ref(literal string) *r4.Reference {
	return r4.Must(r4.NewReferenceBuilder().Reference(str(literal)).Build())
}

func code(c string) *r4.Code {
	return r4.Must(r4.NewCode(c))
}

func dateTime(s string) *r4.DateTime {
	return r4.Must(r4.NewDateTime(s))
}

func decimal(s string) *r4.Decimal {
	return r4.Must(r4.ParseDecimal(s))
}

func concept(system, c, display string) *r4.CodeableConcept {
	coding := r4.NewCodingBuilder().
		System(r4.Must(r4.NewUri(system))).
		Code(code(c))
	if display != "" {
		coding.Display(str(display))
	}
	return r4.Must(r4.NewCodeableConceptBuilder().Coding(r4.Must(coding.Build())).Build())
}

func narrative(text string) *r4.Narrative {
	div := r4.Must(r4.NewXhtml(`<div xmlns="http://www.w3.org/1999/xhtml">` + text + `</div>`))
	return r4.Must(r4.NewNarrativeBuilder(r4.NewCoded(r4.NarrativeStatusGenerated), div).Build())
}

// Examples returns one valid sample per supported resource type, keyed by a file like name.
//
// Every call builds new instances.
func Examples() map[string]model.Resource {
	return map[string]model.Resource{
		"adverseevent-example":                AdverseEvent(),
		"careplan-example":                    CarePlan(),
		"codesystem-example":                  CodeSystem(),
		"coverageeligibilityresponse-example": CoverageEligibilityResponse(),
		"measurereport-example":               MeasureReport(),
	}
}

func AdverseEvent() *r4.AdverseEvent {
	causality := r4.Must(r4.NewAdverseEventSuspectEntityCausalityBuilder().
		Assessment(concept("http://terminology.hl7.org/CodeSystem/adverse-event-causality-assess", "probably-likely", "Probably/Likely")).
		Author(ref("Practitioner/example")).
		Build())

	return r4.Must(r4.NewAdverseEventBuilder(r4.NewCoded(r4.AdverseEventActualityActual), ref("Patient/example")).
		Id("example").
		Text(narrative("Intolerance after the first dose")).
		Category(concept("http://terminology.hl7.org/CodeSystem/adverse-event-category", "product-use-error", "Product Use Error")).
		Event(concept("http://snomed.info/sct", "304386008", "O/E - itchy rash")).
		Date(dateTime("2017-01-29T12:34:56+00:00")).
		Seriousness(concept("http://terminology.hl7.org/CodeSystem/adverse-event-seriousness", "Non-serious", "Non-serious")).
		Severity(concept("http://terminology.hl7.org/CodeSystem/adverse-event-severity", "mild", "Mild")).
		Recorder(ref("Practitioner/example")).
		SuspectEntity(r4.Must(r4.NewAdverseEventSuspectEntityBuilder(ref("Medication/example")).
			Causality(causality).
			Build())).
		Build())
}

func CarePlan() *r4.CarePlan {
	repeat := r4.Must(r4.NewTimingRepeatBuilder().
		Frequency(r4.Must(r4.NewPositiveInt(2))).
		Period(decimal("1")).
		PeriodUnit(r4.NewCoded(r4.UnitsOfTimeD)).
		DayOfWeek(r4.NewCoded(r4.DaysOfWeekMon), r4.NewCoded(r4.DaysOfWeekThu)).
		Build())
	detail := r4.Must(r4.NewCarePlanActivityDetailBuilder(r4.NewCoded(r4.CarePlanActivityStatusScheduled)).
		Kind(r4.NewCoded(r4.CarePlanActivityKindServiceRequest)).
		Code(concept("http://snomed.info/sct", "229065009", "Exercise therapy")).
		Scheduled(r4.Must(r4.NewTimingBuilder().Repeat(repeat).Build())).
		Performer(ref("Practitioner/example")).
		Description(str("Supervised walking")).
		Build())
	note := r4.Must(r4.NewAnnotationBuilder(r4.Must(r4.NewMarkdown("Patient is *motivated*"))).
		Author(ref("Practitioner/example")).
		Build())

	return r4.Must(r4.NewCarePlanBuilder(r4.NewCoded(r4.RequestStatusActive), r4.NewCoded(r4.CarePlanIntentPlan), ref("Patient/example")).
		Id("example").
		Title(str("Rehabilitation")).
		Period(r4.Must(r4.NewPeriodBuilder().Start(dateTime("2024-03-01")).End(dateTime("2024-06-01")).Build())).
		Addresses(ref("Condition/example")).
		Activity(r4.Must(r4.NewCarePlanActivityBuilder().Detail(detail).Build())).
		Note(note).
		Build())
}

func CodeSystem() *r4.CodeSystem {
	child := r4.Must(r4.NewCodeSystemConceptBuilder(code("chol-mmol")).
		Display(str("SChol (mmol/L)")).
		Property(r4.Must(r4.NewCodeSystemConceptPropertyBuilder(code("unit"), str("mmol/L")).Build())).
		Build())
	parent := r4.Must(r4.NewCodeSystemConceptBuilder(code("chol")).
		Display(str("SChol")).
		Definition(str("Serum Cholesterol")).
		Designation(r4.Must(r4.NewCodeSystemConceptDesignationBuilder(str("Cholesterol")).Language(code("en")).Build())).
		Concept(child).
		Build())

	return r4.Must(r4.NewCodeSystemBuilder(r4.NewCoded(r4.PublicationStatusDraft), r4.NewCoded(r4.CodeSystemContentModeComplete)).
		Id("example").
		Url(r4.Must(r4.NewUri("http://hl7.org/fhir/CodeSystem/example"))).
		Name(str("ACMECholCodesBlood")).
		CaseSensitive(r4.Must(r4.NewBoolean(true))).
		HierarchyMeaning(r4.NewCoded(r4.CodeSystemHierarchyMeaningIsA)).
		Count(r4.Must(r4.NewUnsignedInt(2))).
		Filter(r4.Must(r4.NewCodeSystemFilterBuilder(code("acme-plasma"), []*r4.Coded[r4.FilterOperator]{r4.NewCoded(r4.FilterOperatorEqualTo)}, str("true")).Build())).
		Property(r4.Must(r4.NewCodeSystemPropertyBuilder(code("unit"), r4.NewCoded(r4.PropertyTypeString)).Build())).
		Concept(parent).
		Build())
}

func CoverageEligibilityResponse() *r4.CoverageEligibilityResponse {
	money := r4.Must(r4.NewMoneyBuilder().Value(decimal("500.00")).Currency(code("USD")).Build())
	benefit := r4.Must(r4.NewCoverageEligibilityResponseInsuranceItemBenefitBuilder(concept("http://terminology.hl7.org/CodeSystem/benefit-type", "benefit", "Benefit")).
		Allowed(money).
		Build())
	item := r4.Must(r4.NewCoverageEligibilityResponseInsuranceItemBuilder().
		Category(concept("http://terminology.hl7.org/CodeSystem/ex-benefitcategory", "30", "Health Benefit Plan Coverage")).
		Benefit(benefit).
		Build())
	insurance := r4.Must(r4.NewCoverageEligibilityResponseInsuranceBuilder(ref("Coverage/9876B1")).
		Inforce(r4.Must(r4.NewBoolean(true))).
		Item(item).
		Build())

	return r4.Must(r4.NewCoverageEligibilityResponseBuilder(
		r4.NewCoded(r4.FinancialResourceStatusCodesActive),
		[]*r4.Coded[r4.EligibilityResponsePurpose]{r4.NewCoded(r4.EligibilityResponsePurposeBenefits)},
		ref("Patient/pat1"),
		dateTime("2014-08-16"),
		ref("CoverageEligibilityRequest/52345"),
		r4.NewCoded(r4.RemittanceOutcomeComplete),
		ref("Organization/2"),
	).
		Id("E2500").
		Disposition(str("Policy is currently in-force.")).
		Insurance(insurance).
		Build())
}

func MeasureReport() *r4.MeasureReport {
	population := func(c string, count int32) *r4.MeasureReportGroupPopulation {
		return r4.Must(r4.NewMeasureReportGroupPopulationBuilder().
			Code(concept("http://terminology.hl7.org/CodeSystem/measure-population", c, "")).
			Count(r4.Must(r4.NewInteger(count))).
			Build())
	}
	group := r4.Must(r4.NewMeasureReportGroupBuilder().
		Population(population("initial-population", 1), population("numerator", 0)).
		MeasureScore(r4.Must(r4.NewQuantityBuilder().Value(decimal("0.0")).Build())).
		Build())
	period := r4.Must(r4.NewPeriodBuilder().Start(dateTime("2014-01-01")).End(dateTime("2014-03-31")).Build())

	return r4.Must(r4.NewMeasureReportBuilder(
		r4.NewCoded(r4.MeasureReportStatusComplete),
		r4.NewCoded(r4.MeasureReportTypeIndividual),
		r4.Must(r4.NewCanonical("http://hl7.org/fhir/Measure/measure-predecessor-example")),
		period,
	).
		Id("measurereport-cms146-cat1-example").
		Subject(ref("Patient/Patient-6")).
		Reporter(ref("Organization/Organization-1")).
		ImprovementNotation(concept("http://terminology.hl7.org/CodeSystem/measure-improvement-notation", "increase", "Increased score indicates improvement")).
		Group(group).
		Build())
}
