package visit

import (
	"strconv"
	"strings"

	"github.com/damedic/fhir-model-go/model"
)

type printer struct {
	Default
	b     strings.Builder
	depth int
}

func (p *printer) indent() {
	p.b.WriteString(strings.Repeat("  ", p.depth))
}

func (p *printer) VisitStart(name string, index int, e model.Element) {
	p.indent()
	if p.depth == 0 {
		p.b.WriteString(e.TypeName())
	} else {
		p.b.WriteString(name)
		if index >= 0 {
			p.b.WriteString("[" + strconv.Itoa(index) + "]")
		}
		p.b.WriteString(": ")
		p.b.WriteString(e.TypeName())
	}
	p.b.WriteByte('\n')
	p.depth++
}

func (p *printer) VisitEnd(name string, index int, e model.Element) {
	p.depth--
}

func (p *printer) VisitValue(name string, value any) {
	p.indent()
	p.b.WriteString(name)
	p.b.WriteString(" = ")
	p.b.WriteString(FormatValue(value))
	p.b.WriteByte('\n')
}

// Sprint renders the tree rooted at e as an indented listing of its nodes and values.
func Sprint(e model.Element) string {
	var p printer
	Walk(e, &p)
	return strings.TrimSuffix(p.b.String(), "\n")
}
