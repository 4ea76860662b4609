package r4_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/damedic/fhir-model-go/model"
	"github.com/damedic/fhir-model-go/model/r4"
	"github.com/damedic/fhir-model-go/model/validation"
	"github.com/damedic/fhir-model-go/model/visit"
)

// findError returns the first validation error of the given kind in the tree of err.
func findError(err error, kind error) *validation.Error {
	if err == nil {
		return nil
	}
	if verr, ok := err.(*validation.Error); ok && errors.Is(verr.Kind, kind) {
		return verr
	}
	if multi, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range multi.Unwrap() {
			if verr := findError(e, kind); verr != nil {
				return verr
			}
		}
	}
	return nil
}

func assertError(t *testing.T, err error, kind error, typ, field string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v, got no error", kind)
	}
	verr := findError(err, kind)
	if verr == nil {
		t.Fatalf("expected %v, got %v", kind, err)
	}
	if verr.Type != typ || verr.Field != field {
		t.Errorf("expected error for %s.%s, got %s.%s", typ, field, verr.Type, verr.Field)
	}
}

func reference(literal string) *r4.Reference {
	return r4.Must(r4.NewReferenceBuilder().Reference(r4.Must(r4.NewString(literal))).Build())
}

func concept(system, code string) *r4.CodeableConcept {
	return r4.Must(r4.NewCodeableConceptBuilder().
		Coding(r4.Must(r4.NewCodingBuilder().
			System(r4.Must(r4.NewUri(system))).
			Code(r4.Must(r4.NewCode(code))).
			Build())).
		Build())
}

func adverseEvent(subject string) *r4.AdverseEventBuilder {
	return r4.NewAdverseEventBuilder(r4.NewCoded(r4.AdverseEventActualityActual), reference(subject))
}

func TestAdverseEvent(t *testing.T) {
	ae, err := adverseEvent("Patient/123").Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got, _ := ae.Actuality().Value(); got != r4.AdverseEventActualityActual {
		t.Errorf("Actuality() = %q", got)
	}
	if literal, _ := ae.Subject().Literal(); literal != "Patient/123" {
		t.Errorf("Subject() = %q", literal)
	}
	if ae.Category() == nil || len(ae.Category()) != 0 {
		t.Errorf("expected empty non-nil category, got %#v", ae.Category())
	}
	if ae.ResourceType() != "AdverseEvent" {
		t.Errorf("ResourceType() = %q", ae.ResourceType())
	}
	if _, ok := ae.ResourceId(); ok {
		t.Errorf("expected no resource id")
	}
}

func TestAdverseEventMissingSubject(t *testing.T) {
	_, err := r4.NewAdverseEventBuilder(r4.NewCoded(r4.AdverseEventActualityActual), nil).Build()
	assertError(t, err, validation.ErrMissingRequiredField, "AdverseEvent", "subject")
}

func TestReferenceTypes(t *testing.T) {
	tests := []struct {
		name    string
		subject string
		opts    []validation.Option
		wantErr bool
	}{
		{name: "allowed type", subject: "Patient/123"},
		{name: "other allowed type", subject: "Group/g1/_history/2"},
		{name: "disallowed type", subject: "Observation/1", wantErr: true},
		{name: "unknown type", subject: "Patients/1", wantErr: true},
		{name: "checks disabled", subject: "Observation/1", opts: []validation.Option{validation.WithReferenceTypeChecks(false)}},
		{name: "absolute url", subject: "http://example.org/fhir/Observation/1"},
		{name: "contained", subject: "#p1"},
		{name: "conditional", subject: "Patient?identifier=http://example.org|123"},
		{name: "conditional with wrong type", subject: "Device?identifier=123", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := adverseEvent(tt.subject).Validation(tt.opts...).Build()
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			assertError(t, err, validation.ErrInvalidReferenceType, "AdverseEvent", "subject")
		})
	}
}

func TestReferenceTypeOfTypedReference(t *testing.T) {
	ref := r4.Must(r4.NewReferenceBuilder().
		Type(r4.Must(r4.NewUri("Device"))).
		Display(r4.Must(r4.NewString("infusion pump"))).
		Build())
	_, err := r4.NewAdverseEventBuilder(r4.NewCoded(r4.AdverseEventActualityActual), ref).Build()
	assertError(t, err, validation.ErrInvalidReferenceType, "AdverseEvent", "subject")
}

func TestSeverityBinding(t *testing.T) {
	const system = "http://terminology.hl7.org/CodeSystem/adverse-event-severity"
	tests := []struct {
		name     string
		severity *r4.CodeableConcept
		opts     []validation.Option
		wantErr  bool
	}{
		{name: "bound code", severity: concept(system, "severe")},
		{name: "unknown code", severity: concept(system, "extreme"), wantErr: true},
		{name: "other system", severity: concept("http://snomed.info/sct", "24484000"), wantErr: true},
		{name: "text only", severity: r4.Must(r4.NewCodeableConceptBuilder().Text(r4.Must(r4.NewString("bad"))).Build())},
		{name: "checks disabled", severity: concept(system, "extreme"), opts: []validation.Option{validation.WithValueSetBindingChecks(false)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := adverseEvent("Patient/1").Severity(tt.severity).Validation(tt.opts...).Build()
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			assertError(t, err, validation.ErrValueSetBinding, "AdverseEvent", "severity")
		})
	}
}

func TestCodeSystemFilter(t *testing.T) {
	code := r4.Must(r4.NewCode("exists"))
	value := r4.Must(r4.NewString("true"))

	f, err := r4.NewCodeSystemFilterBuilder(code, []*r4.Coded[r4.FilterOperator]{r4.NewCoded(r4.FilterOperatorExists)}, value).Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if op, _ := f.Operator()[0].Value(); op != r4.FilterOperatorExists {
		t.Errorf("Operator()[0] = %q", op)
	}

	_, err = r4.NewCodeSystemFilterBuilder(code, nil, value).Build()
	assertError(t, err, validation.ErrMissingRequiredField, "CodeSystem.filter", "operator")

	_, err = r4.NewCodeSystemFilterBuilder(code, []*r4.Coded[r4.FilterOperator]{nil}, value).Build()
	assertError(t, err, validation.ErrInvalidValue, "CodeSystem.filter", "operator")
}

func TestChoiceElement(t *testing.T) {
	code := r4.Must(r4.NewCode("parent"))

	prop, err := r4.NewCodeSystemConceptPropertyBuilder(code, r4.Must(r4.NewCode("A"))).Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := prop.Value().(*r4.Code); !ok {
		t.Errorf("Value() = %T, want *r4.Code", prop.Value())
	}
	want := []string{
		"CodeSystem.concept.property",
		"CodeSystem.concept.property.code",
		"CodeSystem.concept.property.valueCode",
	}
	if diff := cmp.Diff(want, visit.Paths(prop)); diff != "" {
		t.Errorf("unexpected paths (-want +got):\n%s", diff)
	}

	period := r4.Must(r4.NewPeriodBuilder().Start(r4.Must(r4.NewDateTime("2024"))).Build())
	_, err = r4.NewCodeSystemConceptPropertyBuilder(code, nil).ValueElement(period).Build()
	assertError(t, err, validation.ErrInvalidChoiceType, "CodeSystem.concept.property", "value")

	_, err = r4.NewCodeSystemConceptPropertyBuilder(code, nil).Build()
	assertError(t, err, validation.ErrMissingRequiredField, "CodeSystem.concept.property", "value")
}

func TestVacuousElement(t *testing.T) {
	tests := []struct {
		name  string
		build func() error
		typ   string
	}{
		{"backbone element", func() error { _, err := r4.NewCarePlanActivityBuilder().Build(); return err }, "CarePlan.activity"},
		{"datatype", func() error { _, err := r4.NewPeriodBuilder().Build(); return err }, "Period"},
		{"primitive", func() error { _, err := r4.NewStringBuilder().Build(); return err }, "string"},
		{"code", func() error { _, err := r4.NewCodedBuilder[r4.FilterOperator]().Build(); return err }, "code"},
		{"extension", func() error { _, err := r4.NewExtensionBuilder("http://example.org/ext").Build(); return err }, "Extension"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertError(t, tt.build(), validation.ErrVacuousElement, tt.typ, "")
		})
	}
}

func TestElementWithIdOnly(t *testing.T) {
	tests := []struct {
		name  string
		build func() (model.Element, error)
	}{
		{"primitive", func() (model.Element, error) { return r4.NewStringBuilder().Id("a1").Build() }},
		{"datatype", func() (model.Element, error) { return r4.NewPeriodBuilder().Id("p1").Build() }},
		{"backbone element", func() (model.Element, error) { return r4.NewCarePlanActivityBuilder().Id("x").Build() }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := tt.build()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !e.HasChildren() {
				t.Errorf("expected the id to count as a child")
			}
		})
	}
}

func TestPrimitiveWithExtensionOnly(t *testing.T) {
	ext := r4.Must(r4.NewExtensionBuilder("http://hl7.org/fhir/StructureDefinition/data-absent-reason").
		Value(r4.NewCoded(r4.FilterOperatorExists)).
		Build())
	s, err := r4.NewStringBuilder().Extension(ext).Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := s.Value(); ok {
		t.Errorf("expected no value")
	}
	if !s.HasChildren() {
		t.Errorf("expected children")
	}
}

func TestProhibitedComparator(t *testing.T) {
	low := r4.Must(r4.NewQuantityBuilder().
		Value(r4.Must(r4.ParseDecimal("5"))).
		Comparator(r4.NewCoded(r4.QuantityComparatorLessThan)).
		Build())
	_, err := r4.NewRangeBuilder().Low(low).Build()
	assertError(t, err, validation.ErrProhibitedElement, "Range", "low.comparator")

	_, err = r4.NewCarePlanActivityDetailBuilder(r4.NewCoded(r4.CarePlanActivityStatusScheduled)).DailyAmount(low).Build()
	assertError(t, err, validation.ErrProhibitedElement, "CarePlan.activity.detail", "dailyAmount.comparator")
}

func TestResourceId(t *testing.T) {
	ae, err := adverseEvent("Patient/1").Id("ae-1").Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id, ok := ae.ResourceId(); !ok || id != "ae-1" {
		t.Errorf("ResourceId() = %q, %v", id, ok)
	}

	_, err = adverseEvent("Patient/1").Id("not an id").Build()
	assertError(t, err, validation.ErrInvalidValue, "AdverseEvent", "id")
}

func TestContained(t *testing.T) {
	inner := r4.Must(adverseEvent("Patient/1").Id("inner").Build())
	outer, err := adverseEvent("#inner").Contained(inner).Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(outer.Contained()) != 1 {
		t.Fatalf("expected one contained resource, got %d", len(outer.Contained()))
	}

	_, err = adverseEvent("Patient/1").Contained(nil).Build()
	assertError(t, err, validation.ErrInvalidValue, "AdverseEvent", "contained")
}

func TestErrorsAreCollected(t *testing.T) {
	_, err := r4.NewAdverseEventBuilder(nil, reference("Observation/1")).
		Severity(concept("http://terminology.hl7.org/CodeSystem/adverse-event-severity", "extreme")).
		Build()
	for _, kind := range []error{
		validation.ErrMissingRequiredField,
		validation.ErrInvalidReferenceType,
		validation.ErrValueSetBinding,
	} {
		if !errors.Is(err, kind) {
			t.Errorf("expected %v in %v", kind, err)
		}
	}
}

func TestToBuilder(t *testing.T) {
	original := r4.Must(adverseEvent("Patient/1").
		Category(concept("http://terminology.hl7.org/CodeSystem/adverse-event-category", "medication-mishap")).
		Build())

	rebuilt, err := original.ToBuilder().Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !visit.Equal(original, rebuilt) {
		t.Errorf("rebuilt node differs:\n%s\n%s", original, rebuilt)
	}
	if visit.Hash(original) != visit.Hash(rebuilt) {
		t.Errorf("rebuilt node has a different hash")
	}

	modified := r4.Must(original.ToBuilder().
		Category(concept("http://terminology.hl7.org/CodeSystem/adverse-event-category", "wrong-body-site")).
		Build())
	if len(original.Category()) != 1 {
		t.Errorf("original was modified, has %d categories", len(original.Category()))
	}
	if len(modified.Category()) != 2 {
		t.Errorf("expected 2 categories, got %d", len(modified.Category()))
	}
	if visit.Equal(original, modified) {
		t.Errorf("expected modified node to differ")
	}
}

func TestGettersReturnCopies(t *testing.T) {
	ae := r4.Must(adverseEvent("Patient/1").
		Category(concept("http://terminology.hl7.org/CodeSystem/adverse-event-category", "medication-mishap")).
		Build())

	categories := ae.Category()
	categories[0] = nil
	if ae.Category()[0] == nil {
		t.Errorf("getter exposed the internal list")
	}
}

func TestBuilderCopiesLists(t *testing.T) {
	categories := []*r4.CodeableConcept{concept("http://example.org", "a")}
	b := adverseEvent("Patient/1").SetCategory(categories)
	categories[0] = nil

	ae, err := b.Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ae.Category()[0] == nil {
		t.Errorf("builder kept a reference to the caller's list")
	}
}

func TestAccept(t *testing.T) {
	ext := r4.Must(r4.NewExtensionBuilder("http://example.org/ext").Value(r4.Must(r4.NewBoolean(true))).Build())
	ae := r4.Must(adverseEvent("Patient/1").
		Id("ae-1").
		Extension(ext).
		Build())

	var got []string
	visit.Walk(ae, visit.Funcs{
		OnVisitStart: func(name string, index int, e model.Element) {
			got = append(got, "node "+name)
		},
		OnVisitValue: func(name string, value any) {
			got = append(got, "value "+name)
		},
	})
	want := []string{
		"node AdverseEvent",
		"value id",
		"node extension",
		"value url",
		"node valueBoolean",
		"value value",
		"node actuality",
		"value value",
		"node subject",
		"node reference",
		"value value",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected traversal (-want +got):\n%s", diff)
	}
}
