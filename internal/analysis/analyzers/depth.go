package analyzers

import (
	"fmt"

	"gqlcheck/internal/analysis"
	"gqlcheck/internal/ast"
	"gqlcheck/internal/diag"
)

// QueryDepth measures the maximum field nesting of one query. Fields
// reached through fragment spreads count at the depth of the spread.
type QueryDepth struct {
	query   *analysis.Query
	current int
	max     int
}

// NewQueryDepth is the query-scoped constructor.
func NewQueryDepth(q *analysis.Query) analysis.Analyzer {
	return &QueryDepth{query: q}
}

func (a *QueryDepth) Analyze() bool { return true }

func (a *QueryDepth) Enter(n ast.Node) error {
	if _, ok := n.(*ast.Field); ok {
		a.current++
		if a.current > a.max {
			a.max = a.current
		}
	}
	return nil
}

func (a *QueryDepth) Leave(n ast.Node) error {
	if _, ok := n.(*ast.Field); ok {
		a.current--
	}
	return nil
}

func (a *QueryDepth) Result() any {
	return a.max
}

// MaxQueryDepth is QueryDepth with a limit: its result is the measured
// depth, or an analysis error once the limit is exceeded.
type MaxQueryDepth struct {
	QueryDepth
	limit int
}

// NewMaxQueryDepth returns a query-scoped constructor enforcing limit.
// A limit of zero disables the analyzer entirely.
func NewMaxQueryDepth(limit int) analysis.QueryAnalyzerFunc {
	return func(q *analysis.Query) analysis.Analyzer {
		return &MaxQueryDepth{QueryDepth: QueryDepth{query: q}, limit: limit}
	}
}

func (a *MaxQueryDepth) Analyze() bool { return a.limit > 0 }

func (a *MaxQueryDepth) Result() any {
	if a.max > a.limit {
		return analysis.NewError(diag.AnaDepthLimit, opSpan(a.query),
			fmt.Sprintf("query depth %d exceeds maximum of %d", a.max, a.limit))
	}
	return a.max
}
