package ast

import (
	"gqlcheck/internal/source"
)

// SelectionSet is a braced group of selections.
type SelectionSet struct {
	Base
	Selections []Selection
}

func (s *SelectionSet) Children() []Node {
	out := make([]Node, len(s.Selections))
	for i, sel := range s.Selections {
		out[i] = sel
	}
	return out
}

// Selection is a Field, FragmentSpread, or InlineFragment.
type Selection interface {
	Node
	selectionNode()
}

// Field is one field selection, possibly aliased and nested.
type Field struct {
	Base
	Alias        string // empty when not aliased
	Name         string
	NameSpan     source.Span
	Arguments    []*Argument
	Directives   []*Directive
	SelectionSet *SelectionSet // nil for leaf fields
}

func (f *Field) selectionNode() {}

func (f *Field) Children() []Node {
	out := make([]Node, 0, len(f.Arguments)+len(f.Directives)+1)
	for _, a := range f.Arguments {
		out = append(out, a)
	}
	for _, d := range f.Directives {
		out = append(out, d)
	}
	if f.SelectionSet != nil {
		out = append(out, f.SelectionSet)
	}
	return out
}

// ResponseKey returns the alias when present, the field name otherwise.
func (f *Field) ResponseKey() string {
	if f.Alias != "" {
		return f.Alias
	}
	return f.Name
}

// FragmentSpread references a named fragment (...Name).
type FragmentSpread struct {
	Base
	Name       string
	NameSpan   source.Span
	Directives []*Directive
}

func (f *FragmentSpread) selectionNode() {}

func (f *FragmentSpread) Children() []Node {
	out := make([]Node, 0, len(f.Directives))
	for _, d := range f.Directives {
		out = append(out, d)
	}
	return out
}

// InlineFragment is an anonymous fragment (... on Type { ... }).
type InlineFragment struct {
	Base
	TypeCondition string // empty when absent
	Directives    []*Directive
	SelectionSet  *SelectionSet
}

func (f *InlineFragment) selectionNode() {}

func (f *InlineFragment) Children() []Node {
	out := make([]Node, 0, len(f.Directives)+1)
	for _, d := range f.Directives {
		out = append(out, d)
	}
	if f.SelectionSet != nil {
		out = append(out, f.SelectionSet)
	}
	return out
}
