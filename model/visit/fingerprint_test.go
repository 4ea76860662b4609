package visit_test

import (
	"testing"

	"github.com/cockroachdb/apd/v3"

	"github.com/damedic/fhir-model-go/model"
	"github.com/damedic/fhir-model-go/model/r4"
	"github.com/damedic/fhir-model-go/model/visit"
)

func quantity(value string) *r4.Quantity {
	return r4.Must(r4.NewQuantityBuilder().
		Value(r4.Must(r4.ParseDecimal(value))).
		Unit(r4.Must(r4.NewString("mg"))).
		Build())
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b model.Element
		want bool
	}{
		{"same content", concept(), concept(), true},
		{"different code", coding("http://loinc.org", "1234-5"), coding("http://loinc.org", "1234-6"), false},
		{"different system", coding("http://loinc.org", "1234-5"), coding("http://snomed.info/sct", "1234-5"), false},
		{"same decimal", quantity("1.0"), quantity("1.0"), true},
		{"decimal scale", quantity("1.0"), quantity("1.00"), false},
		{"element id", r4.Must(r4.NewStringBuilder().Value("a").Id("x").Build()), r4.Must(r4.NewString("a")), false},
		{"both nil", nil, nil, true},
		{"one nil", concept(), nil, false},
		{"typed nil", (*r4.AdverseEvent)(nil), nil, true},
		{"typed nil and value", (*r4.Coding)(nil), coding("http://loinc.org", "1234-5"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := visit.Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
			if tt.want && visit.Hash(tt.a) != visit.Hash(tt.b) {
				t.Errorf("equal elements have different hashes")
			}
		})
	}
}

func TestHashDiffers(t *testing.T) {
	if visit.Hash(quantity("1.0")) == visit.Hash(quantity("2.0")) {
		t.Errorf("expected different hashes")
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		value any
		want  string
	}{
		{"a\"b", `"a\"b"`},
		{true, "true"},
		{int32(-7), "-7"},
		{int64(1) << 40, "1099511627776"},
		{uint32(42), "42"},
		{apd.New(3140, -3), "3.140"},
		{[]byte("hi"), "aGk="},
	}
	for _, tt := range tests {
		if got := visit.FormatValue(tt.value); got != tt.want {
			t.Errorf("FormatValue(%v) = %q, want %q", tt.value, got, tt.want)
		}
	}
}
