package r4_test

import (
	"testing"

	"github.com/damedic/fhir-model-go/model/r4"
	"github.com/damedic/fhir-model-go/model/validation"
)

func TestMissingRequiredField(t *testing.T) {
	var (
		str      = func(s string) *r4.String { return r4.Must(r4.NewString(s)) }
		code     = func(c string) *r4.Code { return r4.Must(r4.NewCode(c)) }
		created  = r4.Must(r4.NewDateTime("2024-01-01"))
		measure  = r4.Must(r4.NewCanonical("http://example.org/Measure/m1"))
		period   = r4.Must(r4.NewPeriodBuilder().Start(created).Build())
		div      = r4.Must(r4.NewXhtml(`<div xmlns="http://www.w3.org/1999/xhtml">text</div>`))
		coding   = r4.Must(r4.NewCodingBuilder().System(r4.Must(r4.NewUri("http://example.org"))).Code(code("a")).Build())
		cc       = concept("http://example.org", "a")
		operator = []*r4.Coded[r4.FilterOperator]{r4.NewCoded(r4.FilterOperatorEqualTo)}
		purpose  = []*r4.Coded[r4.EligibilityResponsePurpose]{r4.NewCoded(r4.EligibilityResponsePurposeBenefits)}
		active   = r4.NewCoded(r4.RequestStatusActive)
		intent   = r4.NewCoded(r4.CarePlanIntentPlan)
		draft    = r4.NewCoded(r4.PublicationStatusDraft)
		complete = r4.NewCoded(r4.CodeSystemContentModeComplete)
		status   = r4.NewCoded(r4.FinancialResourceStatusCodesActive)
		outcome  = r4.NewCoded(r4.RemittanceOutcomeComplete)
	)
	patient := reference("Patient/1")
	request := reference("CoverageEligibilityRequest/1")
	insurer := reference("Organization/1")

	coverageEligibilityResponse := func(
		status *r4.Coded[r4.FinancialResourceStatusCodes],
		purpose []*r4.Coded[r4.EligibilityResponsePurpose],
		patient *r4.Reference,
		created *r4.DateTime,
		request *r4.Reference,
		outcome *r4.Coded[r4.RemittanceOutcome],
		insurer *r4.Reference,
	) func() error {
		return func() error {
			_, err := r4.NewCoverageEligibilityResponseBuilder(status, purpose, patient, created, request, outcome, insurer).Build()
			return err
		}
	}
	measureReport := func(status *r4.Coded[r4.MeasureReportStatus], typ *r4.Coded[r4.MeasureReportType], measure *r4.Canonical, period *r4.Period) func() error {
		return func() error {
			_, err := r4.NewMeasureReportBuilder(status, typ, measure, period).Build()
			return err
		}
	}
	mrStatus := r4.NewCoded(r4.MeasureReportStatusComplete)
	mrType := r4.NewCoded(r4.MeasureReportTypeIndividual)

	tests := []struct {
		typ   string
		field string
		build func() error
	}{
		{"AdverseEvent", "actuality", func() error {
			_, err := r4.NewAdverseEventBuilder(nil, patient).Build()
			return err
		}},
		{"AdverseEvent", "subject", func() error {
			_, err := r4.NewAdverseEventBuilder(r4.NewCoded(r4.AdverseEventActualityActual), nil).Build()
			return err
		}},
		{"AdverseEvent.suspectEntity", "instance", func() error {
			_, err := r4.NewAdverseEventSuspectEntityBuilder(nil).Build()
			return err
		}},
		{"Annotation", "text", func() error {
			_, err := r4.NewAnnotationBuilder(nil).Build()
			return err
		}},
		{"CarePlan", "status", func() error {
			_, err := r4.NewCarePlanBuilder(nil, intent, patient).Build()
			return err
		}},
		{"CarePlan", "intent", func() error {
			_, err := r4.NewCarePlanBuilder(active, nil, patient).Build()
			return err
		}},
		{"CarePlan", "subject", func() error {
			_, err := r4.NewCarePlanBuilder(active, intent, nil).Build()
			return err
		}},
		{"CarePlan.activity.detail", "status", func() error {
			_, err := r4.NewCarePlanActivityDetailBuilder(nil).Build()
			return err
		}},
		{"CodeSystem", "status", func() error {
			_, err := r4.NewCodeSystemBuilder(nil, complete).Build()
			return err
		}},
		{"CodeSystem", "content", func() error {
			_, err := r4.NewCodeSystemBuilder(draft, nil).Build()
			return err
		}},
		{"CodeSystem.filter", "code", func() error {
			_, err := r4.NewCodeSystemFilterBuilder(nil, operator, str("x")).Build()
			return err
		}},
		{"CodeSystem.filter", "operator", func() error {
			_, err := r4.NewCodeSystemFilterBuilder(code("f"), nil, str("x")).Build()
			return err
		}},
		{"CodeSystem.filter", "value", func() error {
			_, err := r4.NewCodeSystemFilterBuilder(code("f"), operator, nil).Build()
			return err
		}},
		{"CodeSystem.property", "code", func() error {
			_, err := r4.NewCodeSystemPropertyBuilder(nil, r4.NewCoded(r4.PropertyTypeString)).Build()
			return err
		}},
		{"CodeSystem.property", "type", func() error {
			_, err := r4.NewCodeSystemPropertyBuilder(code("p"), nil).Build()
			return err
		}},
		{"CodeSystem.concept", "code", func() error {
			_, err := r4.NewCodeSystemConceptBuilder(nil).Display(str("x")).Build()
			return err
		}},
		{"CodeSystem.concept.designation", "value", func() error {
			_, err := r4.NewCodeSystemConceptDesignationBuilder(nil).Language(code("en")).Build()
			return err
		}},
		{"CodeSystem.concept.property", "code", func() error {
			_, err := r4.NewCodeSystemConceptPropertyBuilder(nil, str("x")).Build()
			return err
		}},
		{"CodeSystem.concept.property", "value", func() error {
			_, err := r4.NewCodeSystemConceptPropertyBuilder(code("p"), nil).Build()
			return err
		}},
		{"CoverageEligibilityResponse", "status", coverageEligibilityResponse(nil, purpose, patient, created, request, outcome, insurer)},
		{"CoverageEligibilityResponse", "purpose", coverageEligibilityResponse(status, nil, patient, created, request, outcome, insurer)},
		{"CoverageEligibilityResponse", "patient", coverageEligibilityResponse(status, purpose, nil, created, request, outcome, insurer)},
		{"CoverageEligibilityResponse", "created", coverageEligibilityResponse(status, purpose, patient, nil, request, outcome, insurer)},
		{"CoverageEligibilityResponse", "request", coverageEligibilityResponse(status, purpose, patient, created, nil, outcome, insurer)},
		{"CoverageEligibilityResponse", "outcome", coverageEligibilityResponse(status, purpose, patient, created, request, nil, insurer)},
		{"CoverageEligibilityResponse", "insurer", coverageEligibilityResponse(status, purpose, patient, created, request, outcome, nil)},
		{"CoverageEligibilityResponse.insurance", "coverage", func() error {
			_, err := r4.NewCoverageEligibilityResponseInsuranceBuilder(nil).Build()
			return err
		}},
		{"CoverageEligibilityResponse.insurance.item.benefit", "type", func() error {
			_, err := r4.NewCoverageEligibilityResponseInsuranceItemBenefitBuilder(nil).Build()
			return err
		}},
		{"CoverageEligibilityResponse.error", "code", func() error {
			_, err := r4.NewCoverageEligibilityResponseErrorBuilder(nil).Build()
			return err
		}},
		{"Extension", "url", func() error {
			_, err := r4.NewExtensionBuilder("").Value(r4.Must(r4.NewBoolean(true))).Build()
			return err
		}},
		{"MeasureReport", "status", measureReport(nil, mrType, measure, period)},
		{"MeasureReport", "type", measureReport(mrStatus, nil, measure, period)},
		{"MeasureReport", "measure", measureReport(mrStatus, mrType, nil, period)},
		{"MeasureReport", "period", measureReport(mrStatus, mrType, measure, nil)},
		{"MeasureReport.group.stratifier.stratum.component", "code", func() error {
			_, err := r4.NewMeasureReportGroupStratifierStratumComponentBuilder(nil, cc).Build()
			return err
		}},
		{"MeasureReport.group.stratifier.stratum.component", "value", func() error {
			_, err := r4.NewMeasureReportGroupStratifierStratumComponentBuilder(cc, nil).Build()
			return err
		}},
		{"Narrative", "status", func() error {
			_, err := r4.NewNarrativeBuilder(nil, div).Build()
			return err
		}},
		{"Narrative", "div", func() error {
			_, err := r4.NewNarrativeBuilder(r4.NewCoded(r4.NarrativeStatusGenerated), nil).Build()
			return err
		}},
		{"UsageContext", "code", func() error {
			_, err := r4.NewUsageContextBuilder(nil, cc).Build()
			return err
		}},
		{"UsageContext", "value", func() error {
			_, err := r4.NewUsageContextBuilder(coding, nil).Build()
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.typ+"."+tt.field, func(t *testing.T) {
			assertError(t, tt.build(), validation.ErrMissingRequiredField, tt.typ, tt.field)
		})
	}
}
