package validation_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/damedic/fhir-model-go/model/validation"
)

type reference struct {
	literal, typ string
}

func (r reference) Literal() (string, bool)    { return r.literal, r.literal != "" }
func (r reference) TargetType() (string, bool) { return r.typ, r.typ != "" }

func isResourceType(name string) bool {
	return slices.Contains([]string{"Patient", "Group", "Practitioner", "Observation"}, name)
}

func TestResourceTypeOf(t *testing.T) {
	tests := []struct {
		reference     string
		wantType      string
		wantCheckable bool
		wantValid     bool
	}{
		{reference: "Patient/123", wantType: "Patient", wantCheckable: true, wantValid: true},
		{reference: "Patient/123/_history/2", wantType: "Patient", wantCheckable: true, wantValid: true},
		{reference: "Patient?identifier=http://acme.org|1", wantType: "Patient", wantCheckable: true, wantValid: true},
		{reference: "#contained", wantValid: true},
		{reference: "http://example.org/fhir/Patient/123", wantValid: true},
		{reference: "urn:uuid:c757873d-ec9a-4326-a141-556f43239520", wantValid: true},
		{reference: "123", wantCheckable: true},
		{reference: "?identifier=1", wantCheckable: true},
	}
	for _, tt := range tests {
		t.Run(tt.reference, func(t *testing.T) {
			typ, checkable, valid := validation.ResourceTypeOf(tt.reference)
			if typ != tt.wantType || checkable != tt.wantCheckable || valid != tt.wantValid {
				t.Errorf("ResourceTypeOf(%q) = %q, %v, %v, want %q, %v, %v",
					tt.reference, typ, checkable, valid, tt.wantType, tt.wantCheckable, tt.wantValid)
			}
		})
	}
}

func TestCheckReferenceType(t *testing.T) {
	tests := []struct {
		name      string
		reference reference
		wantErr   bool
	}{
		{name: "allowed", reference: reference{literal: "Patient/123"}},
		{name: "allowed with matching type", reference: reference{literal: "Patient/123", typ: "Patient"}},
		{name: "local", reference: reference{literal: "#p1"}},
		{name: "absolute", reference: reference{literal: "http://example.org/fhir/Observation/1"}},
		{name: "type only", reference: reference{typ: "Group"}},
		{name: "display only", reference: reference{}},
		{name: "not allowed", reference: reference{literal: "Practitioner/1"}, wantErr: true},
		{name: "unknown type", reference: reference{literal: "Foo/1"}, wantErr: true},
		{name: "no type", reference: reference{literal: "123"}, wantErr: true},
		{name: "type not allowed", reference: reference{typ: "Practitioner"}, wantErr: true},
		{name: "type mismatch", reference: reference{literal: "Patient/1", typ: "Group"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.CheckReferenceType(tt.reference, "subject", isResourceType, "Patient", "Group")
			if tt.wantErr != errors.Is(err, validation.ErrInvalidReferenceType) {
				t.Errorf("CheckReferenceType() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
