package model_test

import (
	"testing"

	"github.com/damedic/fhir-model-go/model"
	"github.com/damedic/fhir-model-go/model/r4"
	"github.com/damedic/fhir-model-go/model/visit"
	"github.com/damedic/fhir-model-go/testdata"
	"github.com/damedic/fhir-model-go/testdata/assert"
)

func TestRoundtripBuilder(t *testing.T) {
	for name, in := range testdata.Examples() {
		in := in
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var (
				out model.Resource
				err error
			)
			switch r := in.(type) {
			case *r4.AdverseEvent:
				out, err = r.ToBuilder().Build()
			case *r4.CarePlan:
				out, err = r.ToBuilder().Build()
			case *r4.CodeSystem:
				out, err = r.ToBuilder().Build()
			case *r4.CoverageEligibilityResponse:
				out, err = r.ToBuilder().Build()
			case *r4.MeasureReport:
				out, err = r.ToBuilder().Build()
			default:
				t.Fatalf("no builder for %T", in)
			}
			if err != nil {
				t.Fatalf("rebuilding failed: %v", err)
			}

			assert.ElementEqual(t, in, out)
			if visit.Hash(in) != visit.Hash(out) {
				t.Errorf("hash changed after rebuilding")
			}
			if in.String() != out.String() {
				t.Errorf("printed form changed after rebuilding")
			}
		})
	}
}

func TestRoundtripIndependentCopies(t *testing.T) {
	a, b := testdata.CarePlan(), testdata.CarePlan()
	assert.ElementEqual(t, a, b)

	modified := r4.Must(a.ToBuilder().Title(r4.Must(r4.NewString("Changed"))).Build())
	assert.ElementEqual(t, b, a)
	if visit.Equal(a, modified) {
		t.Errorf("expected modified copy to differ")
	}
}

func TestResourceIds(t *testing.T) {
	for name, r := range testdata.Examples() {
		id, ok := r.ResourceId()
		if !ok || id == "" {
			t.Errorf("%s: expected resource id", name)
		}
		if !r4.IsResourceType(r.ResourceType()) {
			t.Errorf("%s: unknown resource type %q", name, r.ResourceType())
		}
	}
}
