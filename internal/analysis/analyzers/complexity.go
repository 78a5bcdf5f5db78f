package analyzers

import (
	"fmt"

	"gqlcheck/internal/analysis"
	"gqlcheck/internal/ast"
	"gqlcheck/internal/diag"
)

// QueryComplexity counts the fields a query selects, including fields
// reached through fragment spreads. Without a schema every field costs
// one unit; the count is a structural proxy for execution cost.
type QueryComplexity struct {
	query *analysis.Query
	cost  int
}

// NewQueryComplexity is the query-scoped constructor.
func NewQueryComplexity(q *analysis.Query) analysis.Analyzer {
	return &QueryComplexity{query: q}
}

func (a *QueryComplexity) Analyze() bool { return true }

func (a *QueryComplexity) Enter(n ast.Node) error {
	if _, ok := n.(*ast.Field); ok {
		a.cost++
	}
	return nil
}

func (a *QueryComplexity) Leave(n ast.Node) error { return nil }

func (a *QueryComplexity) Result() any {
	return a.cost
}

// MaxQueryComplexity is QueryComplexity with a limit enforced at the
// end of the traversal.
type MaxQueryComplexity struct {
	QueryComplexity
	limit int
}

// NewMaxQueryComplexity returns a query-scoped constructor enforcing
// limit. A limit of zero disables the analyzer.
func NewMaxQueryComplexity(limit int) analysis.QueryAnalyzerFunc {
	return func(q *analysis.Query) analysis.Analyzer {
		return &MaxQueryComplexity{QueryComplexity: QueryComplexity{query: q}, limit: limit}
	}
}

func (a *MaxQueryComplexity) Analyze() bool { return a.limit > 0 }

func (a *MaxQueryComplexity) Result() any {
	if a.cost > a.limit {
		return analysis.NewError(diag.AnaComplexityLimit, opSpan(a.query),
			fmt.Sprintf("query complexity %d exceeds maximum of %d", a.cost, a.limit))
	}
	return a.cost
}
