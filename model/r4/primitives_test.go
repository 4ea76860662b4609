package r4_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/damedic/fhir-model-go/model/r4"
	"github.com/damedic/fhir-model-go/model/validation"
	"github.com/damedic/fhir-model-go/model/visit"
)

func TestPrimitives(t *testing.T) {
	tests := []struct {
		name    string
		build   func() error
		wantErr bool
	}{
		{"string", func() error { _, err := r4.NewString("Hello"); return err }, false},
		{"invalid utf8 string", func() error { _, err := r4.NewString("ok\xffbad"); return err }, true},
		{"blank string", func() error { _, err := r4.NewString("  "); return err }, true},
		{"code", func() error { _, err := r4.NewCode("not-started"); return err }, false},
		{"code with outer whitespace", func() error { _, err := r4.NewCode(" x"); return err }, true},
		{"id", func() error { _, err := r4.NewId("a-1.b"); return err }, false},
		{"long id", func() error { _, err := r4.NewId(strings.Repeat("a", 65)); return err }, true},
		{"date", func() error { _, err := r4.NewDate("2024-02"); return err }, false},
		{"malformed date", func() error { _, err := r4.NewDate("2024-1-01"); return err }, true},
		{"dateTime", func() error { _, err := r4.NewDateTime("2024-02-29T10:00:00+01:00"); return err }, false},
		{"dateTime without zone", func() error { _, err := r4.NewDateTime("2024-02-29T10:00:00"); return err }, true},
		{"instant", func() error { _, err := r4.NewInstant("2024-02-29T10:00:00.123Z"); return err }, false},
		{"partial instant", func() error { _, err := r4.NewInstant("2024-02-29"); return err }, true},
		{"time", func() error { _, err := r4.NewTime("23:59:59"); return err }, false},
		{"oid", func() error { _, err := r4.NewOid("urn:oid:2.16.840.1"); return err }, false},
		{"malformed oid", func() error { _, err := r4.NewOid("2.16.840.1"); return err }, true},
		{"uuid", func() error { _, err := r4.NewUuid("urn:uuid:c757873d-ec9a-4326-a141-556f43239520"); return err }, false},
		{"positiveInt", func() error { _, err := r4.NewPositiveInt(1); return err }, false},
		{"zero positiveInt", func() error { _, err := r4.NewPositiveInt(0); return err }, true},
		{"base64Binary", func() error { _, err := r4.NewBase64Binary([]byte("data")); return err }, false},
		{"xhtml", func() error { _, err := r4.NewXhtml(`<div xmlns="http://www.w3.org/1999/xhtml"><p>text</p></div>`); return err }, false},
		{"xhtml without div", func() error { _, err := r4.NewXhtml(`<p>text</p>`); return err }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.build()
			if tt.wantErr {
				if !errors.Is(err, validation.ErrInvalidValue) {
					t.Errorf("expected invalid value, got %v", err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestPrimitiveValueIsCopied(t *testing.T) {
	data := []byte("data")
	b := r4.Must(r4.NewBase64Binary(data))
	data[0] = 'X'

	got, _ := b.Value()
	if !bytes.Equal(got, []byte("data")) {
		t.Errorf("Value() = %q", got)
	}
	got[0] = 'Y'
	if again, _ := b.Value(); !bytes.Equal(again, []byte("data")) {
		t.Errorf("Value() exposed internal bytes")
	}
}

func TestParseDecimal(t *testing.T) {
	d, err := r4.ParseDecimal("1.50")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, _ := d.Value()
	if v.String() != "1.50" {
		t.Errorf("expected scale to be kept, got %s", v)
	}
	if !visit.Equal(d, r4.Must(r4.ParseDecimal("1.50"))) {
		t.Errorf("expected equal decimals")
	}
	if visit.Equal(d, r4.Must(r4.ParseDecimal("1.5"))) {
		t.Errorf("expected decimals of different scale to differ")
	}

	for _, s := range []string{"abc", "NaN", "Infinity"} {
		if _, err := r4.ParseDecimal(s); !errors.Is(err, validation.ErrInvalidValue) {
			t.Errorf("ParseDecimal(%q) = %v, want invalid value", s, err)
		}
	}
}

func TestParseValueSet(t *testing.T) {
	c, err := r4.ParseFilterOperator("=")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v, _ := c.Value(); v != r4.FilterOperatorEqualTo {
		t.Errorf("Value() = %q", v)
	}
	if c.TypeName() != "code" {
		t.Errorf("TypeName() = %q", c.TypeName())
	}

	_, err = r4.ParseAdverseEventActuality("probable")
	if !errors.Is(err, validation.ErrInvalidValue) {
		t.Errorf("expected invalid value, got %v", err)
	}
}

func TestCodedToBuilder(t *testing.T) {
	c := r4.NewCoded(r4.PublicationStatusActive)
	withId := r4.Must(c.ToBuilder().Id("s1").Build())

	if id, ok := withId.Id(); !ok || id != "s1" {
		t.Errorf("Id() = %q, %v", id, ok)
	}
	if _, ok := c.Id(); ok {
		t.Errorf("original was modified")
	}
	if v, _ := withId.Value(); v != r4.PublicationStatusActive {
		t.Errorf("Value() = %q", v)
	}
}

func TestNewRandomUuid(t *testing.T) {
	a, _ := r4.NewRandomUuid().Value()
	b, _ := r4.NewRandomUuid().Value()
	if !strings.HasPrefix(a, "urn:uuid:") {
		t.Errorf("unexpected uuid %q", a)
	}
	if a == b {
		t.Errorf("expected distinct uuids")
	}
}

func TestIsResourceType(t *testing.T) {
	for _, typ := range []string{"Patient", "AdverseEvent", "VisionPrescription"} {
		if !r4.IsResourceType(typ) {
			t.Errorf("%s should be a resource type", typ)
		}
	}
	for _, typ := range []string{"patient", "Element", ""} {
		if r4.IsResourceType(typ) {
			t.Errorf("%q should not be a resource type", typ)
		}
	}
}
