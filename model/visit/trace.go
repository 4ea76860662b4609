package visit

import (
	"github.com/rs/zerolog"

	"github.com/damedic/fhir-model-go/model"
)

type tracer struct {
	log  zerolog.Logger
	path Path
}

// Trace returns a visitor that logs every callback as a trace level event.
//
// Each event carries the element name and index, the node type, the path and the depth.
func Trace(log zerolog.Logger) model.Visitor {
	return &tracer{log: log}
}

func (t *tracer) event(msg string, name string, index int, e model.Element) {
	ev := t.log.Trace().
		Str("element", name).
		Int("index", index).
		Str("path", t.path.String()).
		Int("depth", t.path.Depth())
	if e != nil {
		ev = ev.Str("type", e.TypeName())
	}
	ev.Msg(msg)
}

func (t *tracer) PreVisit(e model.Element) bool {
	t.log.Trace().
		Str("type", e.TypeName()).
		Str("path", t.path.String()).
		Int("depth", t.path.Depth()).
		Msg("pre_visit")
	return true
}

func (t *tracer) VisitStart(name string, index int, e model.Element) {
	t.path.Push(name, index)
	t.event("visit_start", name, index, e)
}

func (t *tracer) Visit(name string, index int, e model.Element) bool {
	t.event("visit", name, index, e)
	return true
}

func (t *tracer) VisitEnd(name string, index int, e model.Element) {
	t.event("visit_end", name, index, e)
	t.path.Pop()
}

func (t *tracer) PostVisit(e model.Element) {
	t.log.Trace().
		Str("type", e.TypeName()).
		Str("path", t.path.String()).
		Int("depth", t.path.Depth()).
		Msg("post_visit")
}

func (t *tracer) VisitListStart(name string, n int, typeName string) {
	t.log.Trace().
		Str("element", name).
		Int("size", n).
		Str("type", typeName).
		Str("path", t.path.Child(name)).
		Int("depth", t.path.Depth()).
		Msg("list_start")
}

func (t *tracer) VisitListEnd(name string, n int, typeName string) {
	t.log.Trace().
		Str("element", name).
		Int("size", n).
		Str("type", typeName).
		Str("path", t.path.Child(name)).
		Int("depth", t.path.Depth()).
		Msg("list_end")
}

func (t *tracer) VisitValue(name string, value any) {
	t.log.Trace().
		Str("element", name).
		Str("value", FormatValue(value)).
		Str("path", t.path.Child(name)).
		Int("depth", t.path.Depth()).
		Msg("value")
}
