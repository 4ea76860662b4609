package validation

import (
	"encoding/base64"
	"encoding/xml"
	"errors"
	"io"
	"math"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cockroachdb/apd/v3"
	"github.com/google/uuid"
)

// MaxStringLength is the maximum length in characters of string based primitives.
const MaxStringLength = 1024 * 1024

var (
	oidPattern      = regexp.MustCompile(`^urn:oid:[012](\.(0|[1-9]\d*))+$`)
	datePattern     = regexp.MustCompile(`^(\d{4})(-(0[1-9]|1[012])(-(0[1-9]|[12]\d|3[01]))?)?$`)
	dateTimePattern = regexp.MustCompile(`^(\d{4})(-(0[1-9]|1[012])(-(0[1-9]|[12]\d|3[01])(T([01]\d|2[0-3]):[0-5]\d:([0-5]\d|60)(\.\d+)?(Z|[+-]((0\d|1[0-3]):[0-5]\d|14:00)))?)?)?$`)
	instantPattern  = regexp.MustCompile(`^(\d{4})-(0[1-9]|1[012])-(0[1-9]|[12]\d|3[01])T([01]\d|2[0-3]):[0-5]\d:([0-5]\d|60)(\.\d+)?(Z|[+-]((0\d|1[0-3]):[0-5]\d|14:00))$`)
	timePattern     = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d:([0-5]\d|60)(\.\d+)?$`)
)

func invalid(format string, args ...any) error {
	return newError(ErrInvalidValue, "value", format, args...)
}

func checkLength(s string) error {
	if !utf8.ValidString(s) {
		return invalid("%q is not valid UTF-8", s)
	}
	if n := utf8.RuneCountInString(s); n > MaxStringLength {
		return invalid("length %d exceeds maximum of %d", n, MaxStringLength)
	}
	return nil
}

func unsupportedControl(r rune) bool {
	return r < 32 && r != '\t' && r != '\r' && r != '\n'
}

// CheckString checks a FHIR string: at least one non whitespace character,
// no whitespace except space, tab, carriage return and line feed and no other control characters.
func CheckString(s string) error {
	if err := checkLength(s); err != nil {
		return err
	}
	var count int
	for _, r := range s {
		switch {
		case unsupportedControl(r):
			return invalid("string %q contains unsupported control characters", s)
		case unicode.IsSpace(r):
			if r != ' ' && r != '\t' && r != '\r' && r != '\n' {
				return invalid("string %q contains illegal whitespace", s)
			}
		default:
			count++
		}
	}
	if count == 0 {
		return invalid("string must contain at least one non-whitespace character")
	}
	return nil
}

// CheckCode checks a FHIR code: no leading or trailing whitespace
// and no whitespace other than single spaces.
func CheckCode(s string) error {
	if s == "" {
		return invalid("code must not be empty")
	}
	if err := checkLength(s); err != nil {
		return err
	}
	first, _ := utf8.DecodeRuneInString(s)
	last, _ := utf8.DecodeLastRuneInString(s)
	if unicode.IsSpace(first) || unicode.IsSpace(last) {
		return invalid("code %q must not begin or end with whitespace", s)
	}
	var prevSpace bool
	for _, r := range s {
		if unicode.IsSpace(r) {
			if r != ' ' {
				return invalid("code %q must not contain whitespace other than a single space", s)
			}
			if prevSpace {
				return invalid("code %q must not contain consecutive spaces", s)
			}
			prevSpace = true
			continue
		}
		if unsupportedControl(r) {
			return invalid("code %q contains unsupported control characters", s)
		}
		prevSpace = false
	}
	return nil
}

// CheckId checks a FHIR id: 1 to 64 letters, digits, '-' or '.'.
func CheckId(s string) error {
	if s == "" {
		return invalid("id must not be empty")
	}
	if len(s) > 64 {
		return invalid("id length %d exceeds maximum of 64", len(s))
	}
	for _, c := range []byte(s) {
		switch {
		case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9', c == '-', c == '.':
		default:
			return invalid("id %q contains invalid character %q", s, rune(c))
		}
	}
	return nil
}

// CheckUri checks a FHIR uri, which must not contain whitespace.
// uri is also the base of canonical and url.
func CheckUri(s string) error {
	if err := checkLength(s); err != nil {
		return err
	}
	for _, r := range s {
		if unsupportedControl(r) {
			return invalid("uri %q contains unsupported control characters", s)
		}
		if unicode.IsSpace(r) {
			return invalid("uri %q must not contain whitespace", s)
		}
	}
	return nil
}

func CheckOid(s string) error {
	if !oidPattern.MatchString(s) {
		return invalid("%q is not an oid", s)
	}
	return nil
}

// CheckUuid checks a FHIR uuid, the urn:uuid: prefix followed by the 36 character hex form.
func CheckUuid(s string) error {
	id, ok := strings.CutPrefix(s, "urn:uuid:")
	if !ok || len(id) != 36 {
		return invalid("%q is not a uuid", s)
	}
	if _, err := uuid.Parse(id); err != nil {
		return invalid("%q is not a uuid: %v", s, err)
	}
	return nil
}

func CheckDate(s string) error {
	if !datePattern.MatchString(s) {
		return invalid("%q is not a date", s)
	}
	return nil
}

// CheckDateTime checks a FHIR dateTime. A time requires a timezone.
func CheckDateTime(s string) error {
	if !dateTimePattern.MatchString(s) {
		return invalid("%q is not a dateTime", s)
	}
	return nil
}

func CheckInstant(s string) error {
	if !instantPattern.MatchString(s) {
		return invalid("%q is not an instant", s)
	}
	return nil
}

func CheckTime(s string) error {
	if !timePattern.MatchString(s) {
		return invalid("%q is not a time", s)
	}
	return nil
}

// CheckBase64Binary checks that b holds decoded binary data.
// Encoded input must be decoded before, see [DecodeBase64].
func CheckBase64Binary(b []byte) error {
	if len(b) == 0 {
		return invalid("base64Binary must not be empty")
	}
	return nil
}

// DecodeBase64 decodes the lexical form of a base64Binary.
func DecodeBase64(s string) ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, invalid("%q is not base64 encoded: %v", s, err)
	}
	return b, nil
}

// CheckDecimal checks that d is a finite number.
func CheckDecimal(d *apd.Decimal) error {
	if d == nil {
		return invalid("decimal must not be nil")
	}
	if d.Form != apd.Finite {
		return invalid("%s is not a finite decimal", d.String())
	}
	return nil
}

// CheckPositiveInt checks that v is within the range of positiveInt.
func CheckPositiveInt(v uint32) error {
	if v < 1 || v > math.MaxInt32 {
		return invalid("%d is not a positiveInt", v)
	}
	return nil
}

// CheckUnsignedInt checks that v is within the range of unsignedInt.
func CheckUnsignedInt(v uint32) error {
	if v > math.MaxInt32 {
		return invalid("%d is not an unsignedInt", v)
	}
	return nil
}

// CheckXhtml checks the narrative div: well formed XML with a single div root element.
func CheckXhtml(s string) error {
	if err := checkLength(s); err != nil {
		return err
	}
	d := xml.NewDecoder(strings.NewReader(s))
	d.Entity = xml.HTMLEntity
	var (
		depth int
		roots int
	)
	for {
		tok, err := d.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return invalid("xhtml is not well formed: %v", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if depth == 0 {
				roots++
				if t.Name.Local != "div" {
					return invalid("xhtml root element must be div, got %s", t.Name.Local)
				}
			}
			depth++
		case xml.EndElement:
			depth--
		case xml.CharData:
			if depth == 0 && strings.TrimSpace(string(t)) != "" {
				return invalid("xhtml must not contain text outside the div")
			}
		}
	}
	if roots != 1 {
		return invalid("xhtml must contain exactly one div, got %d", roots)
	}
	return nil
}
