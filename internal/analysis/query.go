package analysis

import (
	"gqlcheck/internal/ast"
	"gqlcheck/internal/source"
)

// Query is one request to analyze a single operation of a parsed document.
// Created by the driver after parsing/validation; its AnalysisErrors slot
// is written exactly once, by AnalyzeMultiplex.
type Query struct {
	Doc           *ast.Document
	OperationName string // empty selects the single anonymous operation
	File          *source.File

	// Valid is computed upstream by the validator. Invalid queries are
	// never traversed.
	Valid bool

	// Analyzers are this query's query-scoped analyzer constructors, in
	// registration order.
	Analyzers []QueryAnalyzerFunc

	// AnalysisErrors is set once per batch: batch-level errors followed by
	// this query's own rescued errors.
	AnalysisErrors []*Error
}

// Operation resolves the operation this query targets.
func (q *Query) Operation() (*ast.OperationDefinition, bool) {
	if q.Doc == nil {
		return nil, false
	}
	return q.Doc.Operation(q.OperationName)
}

// Multiplex is an ordered batch of queries sharing one execution context
// and one set of multiplex-scoped analyzers.
type Multiplex struct {
	Queries []*Query

	// Analyzers are the multiplex-scoped analyzer constructors supplied by
	// the caller, in registration order.
	Analyzers []MultiplexAnalyzerFunc

	// Context carries batch-wide values shared by analyzers.
	Context map[string]any
}
