package r4

import (
	"github.com/cockroachdb/apd/v3"

	"github.com/damedic/fhir-model-go/model/validation"
)

// ParseDecimal returns a decimal holding the value of s, e.g. "1.50".
//
// The scale of s is kept.
func ParseDecimal(s string) (*Decimal, error) {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return nil, validation.Join("decimal", &validation.Error{
			Kind:   validation.ErrInvalidValue,
			Field:  "value",
			Detail: err.Error(),
		})
	}
	return NewDecimal(d)
}

func copyDecimal(d *apd.Decimal) *apd.Decimal {
	if d == nil {
		return nil
	}
	return new(apd.Decimal).Set(d)
}
