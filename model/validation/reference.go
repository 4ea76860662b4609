package validation

import (
	"regexp"
	"slices"
	"strings"
)

// relative literal reference, optionally version specific
var relativeReference = regexp.MustCompile(`^([A-Za-z]+)/[A-Za-z0-9\-.]{1,64}(?:/_history/[A-Za-z0-9\-.]{1,64})?$`)

// Referencer is implemented by the Reference datatype.
// Implementations must accept a nil receiver and report no values then.
type Referencer interface {
	// Literal returns the value of Reference.reference.
	Literal() (string, bool)
	// TargetType returns the value of Reference.type.
	TargetType() (string, bool)
}

// ResourceTypeOf extracts the resource type from a literal reference.
//
// Local references ("#id") and references carrying a URI scheme (absolute URLs, URNs)
// do not name a type that can be checked, checkable is false for them.
// Conditional references ("Patient?identifier=x") yield the part before the query.
// valid is false if a checkable reference does not contain a type.
func ResourceTypeOf(reference string) (resourceType string, checkable bool, valid bool) {
	if reference == "" || strings.HasPrefix(reference, "#") || hasScheme(reference) {
		return "", false, true
	}
	if i := strings.IndexByte(reference, '?'); i != -1 {
		return reference[:i], true, i > 0
	}
	m := relativeReference.FindStringSubmatch(reference)
	if m == nil {
		return "", true, false
	}
	return m[1], true, true
}

func hasScheme(s string) bool {
	i := strings.IndexByte(s, ':')
	return i > 0 && len(s) > i+1 && !strings.ContainsAny(s[:i], "/?")
}

// CheckReferenceType checks that a reference targets one of the allowed resource types.
//
// The type found in the literal reference and an explicit Reference.type must both be
// known resource types (as reported by isResourceType), must be allowed and must agree.
func CheckReferenceType(r Referencer, field string, isResourceType func(string) bool, allowed ...string) error {
	literal, hasLiteral := r.Literal()
	var (
		found     string
		checkable bool
	)
	if hasLiteral {
		var valid bool
		found, checkable, valid = ResourceTypeOf(literal)
		if !valid {
			return newError(ErrInvalidReferenceType, field,
				"resource type not found in reference %q", literal)
		}
		if checkable {
			if !isResourceType(found) {
				return newError(ErrInvalidReferenceType, field,
					"%q in reference %q is not a resource type", found, literal)
			}
			if !slices.Contains(allowed, found) {
				return newError(ErrInvalidReferenceType, field,
					"%q in reference %q must be one of %s", found, literal, quoteAll(allowed))
			}
		}
	}

	typ, hasType := r.TargetType()
	if !hasType {
		return nil
	}
	if !isResourceType(typ) {
		return newError(ErrInvalidReferenceType, field, "type %q is not a resource type", typ)
	}
	if !slices.Contains(allowed, typ) {
		return newError(ErrInvalidReferenceType, field, "type %q must be one of %s", typ, quoteAll(allowed))
	}
	if checkable && found != typ {
		return newError(ErrInvalidReferenceType, field,
			"reference %q does not match type %q", literal, typ)
	}
	return nil
}
