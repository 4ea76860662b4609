// Package visit contains ready to use implementations of [model.Visitor].
//
// Walk a tree with one of them, or assemble a visitor from functions with [Funcs]:
//
//	var codes int
//	visit.Walk(resource, visit.Funcs{
//		OnVisitStart: func(name string, index int, e model.Element) {
//			if e.TypeName() == "code" {
//				codes++
//			}
//		},
//	})
package visit

import "github.com/damedic/fhir-model-go/model"

// Walk traverses the tree rooted at root with v.
//
// The root is announced under its type name with index -1.
// A nil root, including a typed nil pointer, is not visited.
func Walk(root model.Element, v model.Visitor) {
	if model.IsNil(root) {
		return
	}
	root.Accept(root.TypeName(), -1, v)
}

// Default descends into every node and ignores all callbacks.
//
// Embed it to implement only the callbacks of interest.
type Default struct{}

func (Default) PreVisit(e model.Element) bool                      { return true }
func (Default) VisitStart(name string, index int, e model.Element) {}
func (Default) Visit(name string, index int, e model.Element) bool { return true }
func (Default) VisitEnd(name string, index int, e model.Element)   {}
func (Default) PostVisit(e model.Element)                          {}
func (Default) VisitListStart(name string, n int, typeName string) {}
func (Default) VisitListEnd(name string, n int, typeName string)   {}
func (Default) VisitValue(name string, value any)                  {}

// Funcs is a [model.Visitor] calling the configured hooks.
// Nil hooks behave like [Default].
type Funcs struct {
	OnPreVisit       func(e model.Element) bool
	OnVisitStart     func(name string, index int, e model.Element)
	OnVisit          func(name string, index int, e model.Element) bool
	OnVisitEnd       func(name string, index int, e model.Element)
	OnPostVisit      func(e model.Element)
	OnVisitListStart func(name string, n int, typeName string)
	OnVisitListEnd   func(name string, n int, typeName string)
	OnVisitValue     func(name string, value any)
}

func (f Funcs) PreVisit(e model.Element) bool {
	if f.OnPreVisit == nil {
		return true
	}
	return f.OnPreVisit(e)
}

func (f Funcs) VisitStart(name string, index int, e model.Element) {
	if f.OnVisitStart != nil {
		f.OnVisitStart(name, index, e)
	}
}

func (f Funcs) Visit(name string, index int, e model.Element) bool {
	if f.OnVisit == nil {
		return true
	}
	return f.OnVisit(name, index, e)
}

func (f Funcs) VisitEnd(name string, index int, e model.Element) {
	if f.OnVisitEnd != nil {
		f.OnVisitEnd(name, index, e)
	}
}

func (f Funcs) PostVisit(e model.Element) {
	if f.OnPostVisit != nil {
		f.OnPostVisit(e)
	}
}

func (f Funcs) VisitListStart(name string, n int, typeName string) {
	if f.OnVisitListStart != nil {
		f.OnVisitListStart(name, n, typeName)
	}
}

func (f Funcs) VisitListEnd(name string, n int, typeName string) {
	if f.OnVisitListEnd != nil {
		f.OnVisitListEnd(name, n, typeName)
	}
}

func (f Funcs) VisitValue(name string, value any) {
	if f.OnVisitValue != nil {
		f.OnVisitValue(name, value)
	}
}

// Collect returns all nodes of type T in the tree rooted at root, in traversal order.
// The root itself is included if it is a T.
func Collect[T model.Element](root model.Element) []T {
	var found []T
	Walk(root, Funcs{
		OnVisitStart: func(name string, index int, e model.Element) {
			if t, ok := e.(T); ok {
				found = append(found, t)
			}
		},
	})
	return found
}
