package validation_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/damedic/fhir-model-go/model/validation"
)

func TestPrimitiveChecks(t *testing.T) {
	tests := []struct {
		name    string
		check   func(string) error
		value   string
		wantErr bool
	}{
		{name: "string", check: validation.CheckString, value: "Hello\tWorld\n"},
		{name: "string whitespace only", check: validation.CheckString, value: " \t", wantErr: true},
		{name: "string empty", check: validation.CheckString, value: "", wantErr: true},
		{name: "string control char", check: validation.CheckString, value: "a\x01b", wantErr: true},
		{name: "string non breaking space", check: validation.CheckString, value: "a\u00a0b", wantErr: true},
		{name: "string invalid utf8", check: validation.CheckString, value: "ok\xffbad", wantErr: true},
		{name: "string too long", check: validation.CheckString, value: strings.Repeat("a", validation.MaxStringLength+1), wantErr: true},

		{name: "code", check: validation.CheckCode, value: "entered-in-error"},
		{name: "code with single spaces", check: validation.CheckCode, value: "a b c"},
		{name: "code leading space", check: validation.CheckCode, value: " a", wantErr: true},
		{name: "code trailing space", check: validation.CheckCode, value: "a ", wantErr: true},
		{name: "code double space", check: validation.CheckCode, value: "a  b", wantErr: true},
		{name: "code tab", check: validation.CheckCode, value: "a\tb", wantErr: true},
		{name: "code invalid utf8", check: validation.CheckCode, value: "a\xc3", wantErr: true},
		{name: "code empty", check: validation.CheckCode, value: "", wantErr: true},

		{name: "id", check: validation.CheckId, value: "example-1.2"},
		{name: "id max length", check: validation.CheckId, value: strings.Repeat("a", 64)},
		{name: "id too long", check: validation.CheckId, value: strings.Repeat("a", 65), wantErr: true},
		{name: "id slash", check: validation.CheckId, value: "a/b", wantErr: true},
		{name: "id underscore", check: validation.CheckId, value: "a_b", wantErr: true},

		{name: "uri", check: validation.CheckUri, value: "http://hl7.org/fhir"},
		{name: "uri invalid utf8", check: validation.CheckUri, value: "http://hl7.org/\xfe", wantErr: true},
		{name: "uri whitespace", check: validation.CheckUri, value: "http://hl7.org/ fhir", wantErr: true},

		{name: "oid", check: validation.CheckOid, value: "urn:oid:1.2.3.4"},
		{name: "oid without prefix", check: validation.CheckOid, value: "1.2.3.4", wantErr: true},
		{name: "uuid", check: validation.CheckUuid, value: "urn:uuid:c757873d-ec9a-4326-a141-556f43239520"},
		{name: "uuid without prefix", check: validation.CheckUuid, value: "c757873d-ec9a-4326-a141-556f43239520", wantErr: true},
		{name: "uuid not hex", check: validation.CheckUuid, value: "urn:uuid:c757873d-ec9a-4326-a141-556f4323952g", wantErr: true},
		{name: "uuid misplaced dash", check: validation.CheckUuid, value: "urn:uuid:c757873dec9a-4326-a141-556f4323-9520", wantErr: true},
		{name: "uuid braced", check: validation.CheckUuid, value: "urn:uuid:{c757873d-ec9a-4326-a141-556f43239520}", wantErr: true},
		{name: "xhtml invalid utf8", check: validation.CheckXhtml, value: "<div>\xff</div>", wantErr: true},

		{name: "date year", check: validation.CheckDate, value: "2024"},
		{name: "date month", check: validation.CheckDate, value: "2024-02"},
		{name: "date full", check: validation.CheckDate, value: "2024-02-29"},
		{name: "date invalid month", check: validation.CheckDate, value: "2024-13", wantErr: true},
		{name: "dateTime", check: validation.CheckDateTime, value: "2024-02-29T10:00:00+01:00"},
		{name: "dateTime partial", check: validation.CheckDateTime, value: "2024-02"},
		{name: "dateTime missing timezone", check: validation.CheckDateTime, value: "2024-02-29T10:00:00", wantErr: true},
		{name: "instant", check: validation.CheckInstant, value: "2024-02-29T10:00:00.123Z"},
		{name: "instant partial", check: validation.CheckInstant, value: "2024-02-29", wantErr: true},
		{name: "time", check: validation.CheckTime, value: "23:59:59"},
		{name: "time hours only", check: validation.CheckTime, value: "23", wantErr: true},

		{name: "xhtml", check: validation.CheckXhtml, value: `<div xmlns="http://www.w3.org/1999/xhtml"><p>Hello&nbsp;World</p></div>`},
		{name: "xhtml not a div", check: validation.CheckXhtml, value: `<p>Hello</p>`, wantErr: true},
		{name: "xhtml unbalanced", check: validation.CheckXhtml, value: `<div><p>Hello</div>`, wantErr: true},
		{name: "xhtml text", check: validation.CheckXhtml, value: `Hello`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.check(tt.value)
			if tt.wantErr != (err != nil) {
				t.Fatalf("check(%q) = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, validation.ErrInvalidValue) {
				t.Errorf("expected ErrInvalidValue, got %v", err)
			}
		})
	}
}

func TestIntegerRanges(t *testing.T) {
	if err := validation.CheckPositiveInt(0); err == nil {
		t.Errorf("expected 0 to be rejected as positiveInt")
	}
	if err := validation.CheckPositiveInt(1); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := validation.CheckUnsignedInt(0); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := validation.CheckUnsignedInt(1 << 31); err == nil {
		t.Errorf("expected 2^31 to be rejected as unsignedInt")
	}
}

func TestDecodeBase64(t *testing.T) {
	b, err := validation.DecodeBase64("aGVsbG8=")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(b) != "hello" {
		t.Errorf("expected hello, got %q", b)
	}
	if _, err := validation.DecodeBase64("not base64!"); !errors.Is(err, validation.ErrInvalidValue) {
		t.Errorf("expected ErrInvalidValue, got %v", err)
	}
}
