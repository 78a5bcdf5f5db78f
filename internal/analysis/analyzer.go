package analysis

import (
	"gqlcheck/internal/ast"
)

// Analyzer is one analysis pass bound to a single scope (a Query or a
// Multiplex). Hooks accumulate private state; returning a non-nil error
// from Enter or Leave aborts the traversal for the current query.
type Analyzer interface {
	// Analyze decides participation. Consulted only for query-scoped
	// instances; multiplex-scoped instances always run.
	Analyze() bool

	// Enter is invoked before a node's children are visited.
	Enter(n ast.Node) error

	// Leave is invoked after a node's children are visited.
	Leave(n ast.Node) error

	// Result finalizes the pass, exactly once per scope lifetime.
	Result() any
}

// QueryAnalyzerFunc constructs a query-scoped analyzer bound to q.
type QueryAnalyzerFunc func(q *Query) Analyzer

// MultiplexAnalyzerFunc constructs a multiplex-scoped analyzer bound to m.
type MultiplexAnalyzerFunc func(m *Multiplex) Analyzer
