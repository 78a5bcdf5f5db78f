package ast

import (
	"gqlcheck/internal/source"
)

// Node is implemented by every AST node.
type Node interface {
	Span() source.Span
	// Children returns structural children in source order.
	Children() []Node
}

// Base carries the source span shared by all nodes.
type Base struct {
	Loc source.Span
}

func (b Base) Span() source.Span { return b.Loc }
