package validation_test

import (
	"errors"
	"testing"

	"github.com/damedic/fhir-model-go/model"
	"github.com/damedic/fhir-model-go/model/validation"
	"github.com/damedic/fhir-model-go/utils/ptr"
	"github.com/google/go-cmp/cmp"
)

type node struct {
	typeName string
	value    *string
	children bool
}

func (n *node) TypeName() string                               { return n.typeName }
func (n *node) HasChildren() bool                              { return n.children }
func (n *node) HasValue() bool                                 { return n.value != nil }
func (n *node) Accept(name string, index int, v model.Visitor) {}
func (n *node) String() string                                 { return n.typeName }

type stringChoice interface {
	model.Element
	isStringChoice()
}

type choiceString struct{ node }

func (choiceString) isStringChoice() {}

func TestRequireNonNull(t *testing.T) {
	if err := validation.RequireNonNull(ptr.To("x"), "code"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	err := validation.RequireNonNull[string](nil, "code")
	if !errors.Is(err, validation.ErrMissingRequiredField) {
		t.Fatalf("expected ErrMissingRequiredField, got %v", err)
	}
	var verr *validation.Error
	if !errors.As(err, &verr) || verr.Field != "code" {
		t.Errorf("expected error for field code, got %v", err)
	}
}

func TestRequireNonEmpty(t *testing.T) {
	if err := validation.RequireNonEmpty([]int{1}, "operator"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	for _, s := range [][]int{nil, {}} {
		if err := validation.RequireNonEmpty(s, "operator"); !errors.Is(err, validation.ErrMissingRequiredField) {
			t.Errorf("expected ErrMissingRequiredField for %v, got %v", s, err)
		}
	}
}

func TestRequireValueOrChildren(t *testing.T) {
	tests := []struct {
		name    string
		node    *node
		wantErr bool
	}{
		{name: "value", node: &node{value: ptr.To("a")}},
		{name: "children", node: &node{children: true}},
		{name: "vacuous", node: &node{}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.RequireValueOrChildren(tt.node)
			if tt.wantErr != errors.Is(err, validation.ErrVacuousElement) {
				t.Errorf("RequireValueOrChildren() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestChoiceElement(t *testing.T) {
	allowed := &choiceString{node{typeName: "string", value: ptr.To("a")}}
	got, err := validation.ChoiceElement[stringChoice](allowed, "value", "string")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != stringChoice(allowed) {
		t.Errorf("expected the passed value to be returned")
	}

	_, err = validation.ChoiceElement[stringChoice](&node{typeName: "boolean"}, "value", "string")
	if !errors.Is(err, validation.ErrInvalidChoiceType) {
		t.Errorf("expected ErrInvalidChoiceType, got %v", err)
	}

	var typedNil *choiceString
	got, err = validation.ChoiceElement[stringChoice](typedNil, "value", "string")
	if err != nil || got != nil {
		t.Errorf("expected nil pointer to be absent, got %v, %v", got, err)
	}

	_, err = validation.RequireChoiceElement[stringChoice](nil, "value", "string")
	if !errors.Is(err, validation.ErrMissingRequiredField) {
		t.Errorf("expected ErrMissingRequiredField, got %v", err)
	}
}

func TestProhibited(t *testing.T) {
	if err := validation.Prohibited[string](nil, "comparator"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := validation.Prohibited(ptr.To("<"), "comparator"); !errors.Is(err, validation.ErrProhibitedElement) {
		t.Errorf("expected ErrProhibitedElement, got %v", err)
	}
}

func TestJoin(t *testing.T) {
	if err := validation.Join("CodeSystem.filter", nil, nil); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}

	err := validation.Join("CodeSystem.filter",
		validation.RequireNonNull[string](nil, "code"),
		nil,
		validation.RequireNonEmpty([]string(nil), "operator"),
	)
	want := "CodeSystem.filter.code: missing required field\nCodeSystem.filter.operator: missing required field"
	if diff := cmp.Diff(want, err.Error()); diff != "" {
		t.Errorf("unexpected message (-want +got):\n%s", diff)
	}
	if !errors.Is(err, validation.ErrMissingRequiredField) {
		t.Errorf("expected joined error to match ErrMissingRequiredField")
	}
}

type coding struct {
	system, code string
}

func (c coding) SystemAndCode() (string, string, bool) {
	return c.system, c.code, c.system != "" && c.code != ""
}

func TestCheckValueSetBinding(t *testing.T) {
	const (
		vs     = "http://hl7.org/fhir/ValueSet/adverse-event-severity"
		system = "http://terminology.hl7.org/CodeSystem/adverse-event-severity"
	)
	tests := []struct {
		name    string
		codings []coding
		wantErr bool
	}{
		{name: "no codings"},
		{name: "coding without system", codings: []coding{{code: "mild"}}},
		{name: "matching", codings: []coding{{system: system, code: "mild"}}},
		{name: "one of several matching", codings: []coding{{system: "http://snomed.info/sct", code: "255604002"}, {system: system, code: "severe"}}},
		{name: "unknown code", codings: []coding{{system: system, code: "fatal"}}, wantErr: true},
		{name: "other system", codings: []coding{{system: "http://snomed.info/sct", code: "mild"}}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.CheckValueSetBinding(tt.codings, "severity", vs, system, "mild", "moderate", "severe")
			if tt.wantErr != errors.Is(err, validation.ErrValueSetBinding) {
				t.Errorf("CheckValueSetBinding() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestOptions(t *testing.T) {
	got := validation.NewOptions(validation.WithReferenceTypeChecks(false))
	want := validation.Options{ReferenceTypes: false, ValueSetBindings: true}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected options (-want +got):\n%s", diff)
	}
}
