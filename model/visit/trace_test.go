package visit_test

import (
	"bufio"
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"

	"github.com/damedic/fhir-model-go/model/r4"
	"github.com/damedic/fhir-model-go/model/visit"
)

func TestTrace(t *testing.T) {
	level := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	t.Cleanup(func() { zerolog.SetGlobalLevel(level) })

	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.TraceLevel)

	period := r4.Must(r4.NewPeriodBuilder().
		Start(r4.Must(r4.NewDateTime("2024-01-01"))).
		Build())
	visit.Walk(period, visit.Trace(log))

	type event struct {
		Message string `json:"message"`
		Path    string `json:"path"`
		Depth   int    `json:"depth"`
		Value   string `json:"value,omitempty"`
	}
	var got []event
	scanner := bufio.NewScanner(&buf)
	for scanner.Scan() {
		var e event
		if err := json.Unmarshal(scanner.Bytes(), &e); err != nil {
			t.Fatalf("invalid log line %q: %v", scanner.Text(), err)
		}
		got = append(got, e)
	}

	want := []event{
		{Message: "pre_visit", Path: "", Depth: 0},
		{Message: "visit_start", Path: "Period", Depth: 1},
		{Message: "visit", Path: "Period", Depth: 1},
		{Message: "pre_visit", Path: "Period", Depth: 1},
		{Message: "visit_start", Path: "Period.start", Depth: 2},
		{Message: "visit", Path: "Period.start", Depth: 2},
		{Message: "value", Path: "Period.start.value", Depth: 2, Value: `"2024-01-01"`},
		{Message: "visit_end", Path: "Period.start", Depth: 2},
		{Message: "post_visit", Path: "Period", Depth: 1},
		{Message: "visit_end", Path: "Period", Depth: 1},
		{Message: "post_visit", Path: "", Depth: 0},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected trace (-want +got):\n%s", diff)
	}
}

func TestTraceDisabled(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.InfoLevel)
	visit.Walk(concept(), visit.Trace(log))
	if buf.Len() != 0 {
		t.Errorf("expected no output above trace level, got %q", buf.String())
	}
}
