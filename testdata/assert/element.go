// Package assert contains test helpers comparing nodes of the object model.
package assert

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/damedic/fhir-model-go/model"
	"github.com/damedic/fhir-model-go/model/visit"
)

// ElementEqual fails the test if expected and actual are not structurally equal,
// reporting the difference of their printed trees.
func ElementEqual(t *testing.T, expected, actual model.Element) {
	t.Helper()
	if visit.Equal(expected, actual) {
		return
	}
	t.Errorf("elements differ (-expected +actual):\n%s", cmp.Diff(sprint(expected), sprint(actual)))
}

func sprint(e model.Element) string {
	if e == nil {
		return "<nil>"
	}
	return visit.Sprint(e)
}
