package analyzers

import (
	"fmt"

	"gqlcheck/internal/analysis"
	"gqlcheck/internal/ast"
	"gqlcheck/internal/diag"
)

// AliasCount counts field aliases without enforcing anything.
type AliasCount struct {
	query *analysis.Query
	seen  int
}

// NewAliasCount is the query-scoped constructor.
func NewAliasCount(q *analysis.Query) analysis.Analyzer {
	return &AliasCount{query: q}
}

func (a *AliasCount) Analyze() bool { return true }

func (a *AliasCount) Enter(n ast.Node) error {
	if f, ok := n.(*ast.Field); ok && f.Alias != "" {
		a.seen++
	}
	return nil
}

func (a *AliasCount) Leave(n ast.Node) error { return nil }

func (a *AliasCount) Result() any { return a.seen }

// MaxAliases rejects queries that use more than limit field aliases.
// Unlike the depth and complexity limits it fails fast: the error is
// raised from Enter as soon as the limit is crossed, which aborts the
// traversal for every analyzer in the pass.
type MaxAliases struct {
	query *analysis.Query
	limit int
	seen  int
}

// NewMaxAliases returns a query-scoped constructor enforcing limit.
// A limit of zero disables the analyzer.
func NewMaxAliases(limit int) analysis.QueryAnalyzerFunc {
	return func(q *analysis.Query) analysis.Analyzer {
		return &MaxAliases{query: q, limit: limit}
	}
}

func (a *MaxAliases) Analyze() bool { return a.limit > 0 }

func (a *MaxAliases) Enter(n ast.Node) error {
	f, ok := n.(*ast.Field)
	if !ok || f.Alias == "" {
		return nil
	}
	a.seen++
	if a.seen > a.limit {
		return analysis.NewError(diag.AnaAliasLimit, f.Span(),
			fmt.Sprintf("query uses more than %d aliases", a.limit))
	}
	return nil
}

func (a *MaxAliases) Leave(n ast.Node) error { return nil }

func (a *MaxAliases) Result() any {
	return a.seen
}
