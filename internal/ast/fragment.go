package ast

import (
	"gqlcheck/internal/source"
)

// FragmentDefinition declares a named fragment on a type condition.
type FragmentDefinition struct {
	Base
	Name          string
	NameSpan      source.Span
	TypeCondition string
	Directives    []*Directive
	SelectionSet  *SelectionSet
}

func (f *FragmentDefinition) Children() []Node {
	out := make([]Node, 0, len(f.Directives)+1)
	for _, d := range f.Directives {
		out = append(out, d)
	}
	if f.SelectionSet != nil {
		out = append(out, f.SelectionSet)
	}
	return out
}
