package visit_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/damedic/fhir-model-go/model"
	"github.com/damedic/fhir-model-go/model/r4"
	"github.com/damedic/fhir-model-go/model/visit"
	"github.com/damedic/fhir-model-go/testdata"
)

func coding(system, code string) *r4.Coding {
	return r4.Must(r4.NewCodingBuilder().
		System(r4.Must(r4.NewUri(system))).
		Code(r4.Must(r4.NewCode(code))).
		Build())
}

func concept() *r4.CodeableConcept {
	return r4.Must(r4.NewCodeableConceptBuilder().
		Coding(
			coding("http://loinc.org", "1234-5"),
			coding("http://snomed.info/sct", "404684003"),
		).
		Text(r4.Must(r4.NewString("finding"))).
		Build())
}

type recorder struct {
	events []string
	skip   string
	prune  string
}

func (r *recorder) visitor() visit.Funcs {
	return visit.Funcs{
		OnPreVisit: func(e model.Element) bool {
			return e.TypeName() != r.skip
		},
		OnVisitStart: func(name string, index int, e model.Element) {
			r.events = append(r.events, fmt.Sprintf("start %s %d %s", name, index, e.TypeName()))
		},
		OnVisit: func(name string, index int, e model.Element) bool {
			return e.TypeName() != r.prune
		},
		OnVisitEnd: func(name string, index int, e model.Element) {
			r.events = append(r.events, "end "+name)
		},
		OnPostVisit: func(e model.Element) {
			r.events = append(r.events, "post "+e.TypeName())
		},
		OnVisitListStart: func(name string, n int, typeName string) {
			r.events = append(r.events, fmt.Sprintf("list %s %d %s", name, n, typeName))
		},
		OnVisitListEnd: func(name string, n int, typeName string) {
			r.events = append(r.events, "end list "+name)
		},
		OnVisitValue: func(name string, value any) {
			r.events = append(r.events, fmt.Sprintf("value %s %v", name, value))
		},
	}
}

func TestWalk(t *testing.T) {
	tests := []struct {
		name  string
		skip  string
		prune string
		want  []string
	}{
		{
			name: "full",
			want: []string{
				"start CodeableConcept -1 CodeableConcept",
				"list coding 2 Coding",
				"start coding 0 Coding",
				"start system -1 uri",
				"value value http://loinc.org",
				"end system",
				"post uri",
				"start code -1 code",
				"value value 1234-5",
				"end code",
				"post code",
				"end coding",
				"post Coding",
				"start coding 1 Coding",
				"start system -1 uri",
				"value value http://snomed.info/sct",
				"end system",
				"post uri",
				"start code -1 code",
				"value value 404684003",
				"end code",
				"post code",
				"end coding",
				"post Coding",
				"end list coding",
				"start text -1 string",
				"value value finding",
				"end text",
				"post string",
				"end CodeableConcept",
				"post CodeableConcept",
			},
		},
		{
			name:  "pruned children",
			prune: "Coding",
			want: []string{
				"start CodeableConcept -1 CodeableConcept",
				"list coding 2 Coding",
				"start coding 0 Coding",
				"end coding",
				"post Coding",
				"start coding 1 Coding",
				"end coding",
				"post Coding",
				"end list coding",
				"start text -1 string",
				"value value finding",
				"end text",
				"post string",
				"end CodeableConcept",
				"post CodeableConcept",
			},
		},
		{
			name: "skipped nodes",
			skip: "Coding",
			want: []string{
				"start CodeableConcept -1 CodeableConcept",
				"list coding 2 Coding",
				"end list coding",
				"start text -1 string",
				"value value finding",
				"end text",
				"post string",
				"end CodeableConcept",
				"post CodeableConcept",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &recorder{skip: tt.skip, prune: tt.prune}
			visit.Walk(concept(), r.visitor())
			if diff := cmp.Diff(tt.want, r.events); diff != "" {
				t.Errorf("unexpected events (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWalkNil(t *testing.T) {
	r := &recorder{}
	visit.Walk(nil, r.visitor())
	visit.Walk((*r4.AdverseEvent)(nil), r.visitor())
	if len(r.events) != 0 {
		t.Errorf("expected no events, got %v", r.events)
	}
}

func TestCollect(t *testing.T) {
	codings := visit.Collect[*r4.Coding](concept())
	if len(codings) != 2 {
		t.Fatalf("expected 2 codings, got %d", len(codings))
	}
	if code, _ := codings[1].Code().Value(); code != "404684003" {
		t.Errorf("unexpected order, second code is %q", code)
	}

	roots := visit.Collect[*r4.CodeableConcept](concept())
	if len(roots) != 1 {
		t.Errorf("expected the root to be collected, got %d", len(roots))
	}
}

func TestPaths(t *testing.T) {
	ext := r4.Must(r4.NewExtensionBuilder("http://example.org/fhir/StructureDefinition/origin").
		Value(r4.Must(r4.NewString("lab"))).
		Build())
	code := r4.Must(r4.NewCodeBuilder().Value("1234-5").Extension(ext).Build())
	c := r4.Must(r4.NewCodingBuilder().
		System(r4.Must(r4.NewUri("http://loinc.org"))).
		Code(code).
		Build())

	want := []string{
		"Coding",
		"Coding.system",
		"Coding.code",
		"Coding.code.extension[0]",
		"Coding.code.extension[0].valueString",
	}
	if diff := cmp.Diff(want, visit.Paths(c)); diff != "" {
		t.Errorf("unexpected paths (-want +got):\n%s", diff)
	}
}

func TestPathsFollowFieldOrder(t *testing.T) {
	want := []string{
		"CodeSystem",
		"CodeSystem.url",
		"CodeSystem.name",
		"CodeSystem.status",
		"CodeSystem.caseSensitive",
		"CodeSystem.hierarchyMeaning",
		"CodeSystem.content",
		"CodeSystem.count",
		"CodeSystem.filter[0]",
		"CodeSystem.filter[0].code",
		"CodeSystem.filter[0].operator[0]",
		"CodeSystem.filter[0].value",
		"CodeSystem.property[0]",
		"CodeSystem.property[0].code",
		"CodeSystem.property[0].type",
		"CodeSystem.concept[0]",
		"CodeSystem.concept[0].code",
		"CodeSystem.concept[0].display",
		"CodeSystem.concept[0].definition",
		"CodeSystem.concept[0].designation[0]",
		"CodeSystem.concept[0].designation[0].language",
		"CodeSystem.concept[0].designation[0].value",
		"CodeSystem.concept[0].concept[0]",
		"CodeSystem.concept[0].concept[0].code",
		"CodeSystem.concept[0].concept[0].display",
		"CodeSystem.concept[0].concept[0].property[0]",
		"CodeSystem.concept[0].concept[0].property[0].code",
		"CodeSystem.concept[0].concept[0].property[0].valueString",
	}
	if diff := cmp.Diff(want, visit.Paths(testdata.CodeSystem())); diff != "" {
		t.Errorf("unexpected paths (-want +got):\n%s", diff)
	}
}

func TestPath(t *testing.T) {
	var p visit.Path
	if got := p.Child("concept"); got != "concept" {
		t.Errorf("Child of empty path = %q", got)
	}
	p.Push("CodeSystem", -1)
	p.Push("concept", 3)
	if got, want := p.String(), "CodeSystem.concept[3]"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got, want := p.Child("code"), "CodeSystem.concept[3].code"; got != want {
		t.Errorf("Child() = %q, want %q", got, want)
	}
	p.Pop()
	p.Pop()
	p.Pop()
	if p.Depth() != 0 {
		t.Errorf("expected empty path, got depth %d", p.Depth())
	}
}

func TestSprint(t *testing.T) {
	want := `Coding
  system: uri
    value = "http://loinc.org"
  code: code
    value = "1234-5"`
	got := coding("http://loinc.org", "1234-5").String()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected rendering (-want +got):\n%s", diff)
	}
}
