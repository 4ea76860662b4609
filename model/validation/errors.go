package validation

import (
	"errors"
	"fmt"
	"strings"
)

// Kinds of validation failures. Use [errors.Is] on the error returned by a builder to test for them.
var (
	ErrMissingRequiredField = errors.New("missing required field")
	ErrVacuousElement       = errors.New("element must have a value or children")
	ErrInvalidChoiceType    = errors.New("invalid choice type")
	ErrInvalidValue         = errors.New("invalid value")
	ErrProhibitedElement    = errors.New("prohibited element")
	ErrInvalidReferenceType = errors.New("invalid reference type")
	ErrValueSetBinding      = errors.New("value set binding violated")
)

// Error describes a single failed check.
type Error struct {
	// Kind is one of the Err* sentinels of this package.
	Kind error
	// Type is the path of the node type the check ran for, e.g. "CodeSystem.filter".
	Type string
	// Field is the element name, empty for checks of the node as a whole.
	Field  string
	Detail string
}

func (e *Error) Error() string {
	var b strings.Builder
	if e.Type != "" {
		b.WriteString(e.Type)
	}
	if e.Field != "" {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(e.Field)
	}
	if b.Len() > 0 {
		b.WriteString(": ")
	}
	b.WriteString(e.Kind.Error())
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func newError(kind error, field string, format string, args ...any) *Error {
	err := &Error{Kind: kind, Field: field}
	if format != "" {
		err.Detail = fmt.Sprintf(format, args...)
	}
	return err
}

// WithField attributes err to field if it is an [*Error]. Other errors are returned unchanged.
func WithField(field string, err error) error {
	var verr *Error
	if errors.As(err, &verr) && verr.Field != field {
		tagged := *verr
		tagged.Field = field
		return &tagged
	}
	return err
}

// Join tags all errors with the node type they were raised for and joins them.
//
// Nil errors are discarded and joined errors are flattened.
// Join returns nil if no error remains.
func Join(typeName string, errs ...error) error {
	var joined []error
	for _, err := range flatten(errs) {
		var verr *Error
		if errors.As(err, &verr) && verr.Type == "" {
			tagged := *verr
			tagged.Type = typeName
			err = &tagged
		}
		joined = append(joined, err)
	}
	if len(joined) == 0 {
		return nil
	}
	return errors.Join(joined...)
}

func flatten(errs []error) []error {
	var flat []error
	for _, err := range errs {
		if err == nil {
			continue
		}
		if multi, ok := err.(interface{ Unwrap() []error }); ok {
			flat = append(flat, flatten(multi.Unwrap())...)
			continue
		}
		flat = append(flat, err)
	}
	return flat
}
