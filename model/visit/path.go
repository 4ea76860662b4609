package visit

import (
	"strconv"
	"strings"

	"github.com/damedic/fhir-model-go/model"
)

// Path tracks the location of the node currently visited, e.g. "CodeSystem.concept[0].property[1].valueCode".
//
// Push in VisitStart and Pop in VisitEnd.
type Path struct {
	segments []string
}

func (p *Path) Push(name string, index int) {
	if index >= 0 {
		name += "[" + strconv.Itoa(index) + "]"
	}
	p.segments = append(p.segments, name)
}

func (p *Path) Pop() {
	if len(p.segments) > 0 {
		p.segments = p.segments[:len(p.segments)-1]
	}
}

// Depth is the number of nodes on the path, 0 outside of any node.
func (p *Path) Depth() int {
	return len(p.segments)
}

// Child returns the path of a child with the given name without modifying p.
func (p *Path) Child(name string) string {
	if len(p.segments) == 0 {
		return name
	}
	return p.String() + "." + name
}

func (p *Path) String() string {
	return strings.Join(p.segments, ".")
}

// Paths returns the path of every node in the tree rooted at root, in traversal order.
func Paths(root model.Element) []string {
	var (
		path  Path
		paths []string
	)
	Walk(root, Funcs{
		OnVisitStart: func(name string, index int, e model.Element) {
			path.Push(name, index)
			paths = append(paths, path.String())
		},
		OnVisitEnd: func(name string, index int, e model.Element) {
			path.Pop()
		},
	})
	return paths
}
