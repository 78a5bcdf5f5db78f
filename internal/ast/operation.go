package ast

import (
	"gqlcheck/internal/source"
)

// OperationType distinguishes query, mutation, and subscription.
type OperationType uint8

const (
	Query OperationType = iota
	Mutation
	Subscription
)

func (t OperationType) String() string {
	switch t {
	case Query:
		return "query"
	case Mutation:
		return "mutation"
	case Subscription:
		return "subscription"
	}
	return "unknown"
}

// OperationDefinition is one query/mutation/subscription definition.
type OperationDefinition struct {
	Base
	Op           OperationType
	Name         string // empty for anonymous operations
	NameSpan     source.Span
	Variables    []*VariableDefinition
	Directives   []*Directive
	SelectionSet *SelectionSet
}

func (o *OperationDefinition) Children() []Node {
	out := make([]Node, 0, len(o.Variables)+len(o.Directives)+1)
	for _, v := range o.Variables {
		out = append(out, v)
	}
	for _, d := range o.Directives {
		out = append(out, d)
	}
	if o.SelectionSet != nil {
		out = append(out, o.SelectionSet)
	}
	return out
}

// VariableDefinition declares one operation variable ($name: Type = default).
type VariableDefinition struct {
	Base
	Name       string
	Type       Type
	Default    Value // nil when absent
	Directives []*Directive
}

func (v *VariableDefinition) Children() []Node {
	out := make([]Node, 0, 2+len(v.Directives))
	if v.Type != nil {
		out = append(out, v.Type)
	}
	if v.Default != nil {
		out = append(out, v.Default)
	}
	for _, d := range v.Directives {
		out = append(out, d)
	}
	return out
}

// Directive is an applied directive (@name(args)).
type Directive struct {
	Base
	Name      string
	Arguments []*Argument
}

func (d *Directive) Children() []Node {
	out := make([]Node, 0, len(d.Arguments))
	for _, a := range d.Arguments {
		out = append(out, a)
	}
	return out
}

// Argument is one name:value pair.
type Argument struct {
	Base
	Name  string
	Value Value
}

func (a *Argument) Children() []Node {
	if a.Value == nil {
		return nil
	}
	return []Node{a.Value}
}
