package visit

import (
	"encoding/base64"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/cockroachdb/apd/v3"

	"github.com/damedic/fhir-model-go/model"
)

// fingerprint writes a canonical serialization of the traversal events.
// Two trees produce the same fingerprint if and only if they are structurally equal.
type fingerprint struct {
	Default
	w io.StringWriter
}

func (f fingerprint) write(parts ...string) {
	for _, p := range parts {
		_, _ = f.w.WriteString(p)
	}
}

func (f fingerprint) VisitStart(name string, index int, e model.Element) {
	f.write("(", strconv.Quote(name), " ", strconv.Itoa(index), " ", e.TypeName())
}

func (f fingerprint) VisitEnd(name string, index int, e model.Element) {
	f.write(")")
}

func (f fingerprint) VisitListStart(name string, n int, typeName string) {
	f.write("[", strconv.Quote(name), " ", strconv.Itoa(n), " ", typeName)
}

func (f fingerprint) VisitListEnd(name string, n int, typeName string) {
	f.write("]")
}

func (f fingerprint) VisitValue(name string, value any) {
	f.write("<", strconv.Quote(name), " ", fmt.Sprintf("%T", value), " ", FormatValue(value), ">")
}

// Equal reports whether a and b are structurally equal: same types, same children in the
// same order and the same primitive values, ids and extensions.
//
// Decimals are compared including their scale, 1.0 and 1.00 are not equal.
func Equal(a, b model.Element) bool {
	if model.IsNil(a) || model.IsNil(b) {
		return model.IsNil(a) && model.IsNil(b)
	}
	var fa, fb strings.Builder
	Walk(a, fingerprint{w: &fa})
	Walk(b, fingerprint{w: &fb})
	return fa.String() == fb.String()
}

// Hash returns a hash code consistent with [Equal].
func Hash(e model.Element) uint64 {
	d := xxhash.New()
	Walk(e, fingerprint{w: d})
	return d.Sum64()
}

// FormatValue renders a primitive value as reported by [model.Visitor.VisitValue].
func FormatValue(value any) string {
	switch v := value.(type) {
	case string:
		return strconv.Quote(v)
	case bool:
		return strconv.FormatBool(v)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case *apd.Decimal:
		if v == nil {
			return "null"
		}
		return v.String()
	case []byte:
		return base64.StdEncoding.EncodeToString(v)
	default:
		return fmt.Sprint(v)
	}
}
