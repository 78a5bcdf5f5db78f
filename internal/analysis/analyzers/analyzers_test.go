package analyzers

import (
	"testing"

	"gqlcheck/internal/analysis"
	"gqlcheck/internal/diag"
	"gqlcheck/internal/parser"
	"gqlcheck/internal/source"
)

func buildQuery(t *testing.T, src string, ctors ...analysis.QueryAnalyzerFunc) *analysis.Query {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.graphql", []byte(src))
	bag := diag.NewBag(32)
	file := fs.Get(id)
	doc := parser.ParseDocument(file, parser.Options{Reporter: diag.BagReporter{Bag: bag}})
	if bag.HasErrors() {
		t.Fatalf("unexpected parse errors: %v", bag.Items())
	}
	return &analysis.Query{
		Doc:       doc,
		File:      file,
		Valid:     true,
		Analyzers: ctors,
	}
}

func runOne(t *testing.T, q *analysis.Query) ([]any, []*analysis.Error) {
	t.Helper()
	return analysis.NewRunner().AnalyzeQuery(q, nil)
}

func TestQueryDepthCountsNestedFields(t *testing.T) {
	q := buildQuery(t, `{ hero { friends { name pet { name } } } }`, NewQueryDepth)
	results, errs := runOne(t, q)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if got := results[0].(int); got != 4 {
		t.Fatalf("depth = %d, want 4", got)
	}
}

func TestQueryDepthFollowsFragmentSpreads(t *testing.T) {
	q := buildQuery(t, `
		query { hero { ...Deep } }
		fragment Deep on Character { friends { name } }
	`, NewQueryDepth)
	results, errs := runOne(t, q)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	// hero(1) -> friends(2, at spread depth) -> name(3)
	if got := results[0].(int); got != 3 {
		t.Fatalf("depth = %d, want 3", got)
	}
}

func TestMaxQueryDepthUnderLimit(t *testing.T) {
	q := buildQuery(t, `{ hero { name } }`, NewMaxQueryDepth(5))
	results, errs := runOne(t, q)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if got := results[0].(int); got != 2 {
		t.Fatalf("depth = %d, want 2", got)
	}
}

func TestMaxQueryDepthOverLimit(t *testing.T) {
	q := buildQuery(t, `{ a { b { c { d } } } }`, NewMaxQueryDepth(2))
	results, errs := runOne(t, q)
	if len(errs) != 0 {
		t.Fatalf("limit errors surface in results, not rescues: %v", errs)
	}
	aerr, ok := results[0].(*analysis.Error)
	if !ok {
		t.Fatalf("expected *analysis.Error, got %T", results[0])
	}
	if aerr.Code != diag.AnaDepthLimit {
		t.Fatalf("code = %v, want AnaDepthLimit", aerr.Code)
	}
}

func TestMaxQueryDepthZeroDisables(t *testing.T) {
	q := buildQuery(t, `{ a { b } }`, NewMaxQueryDepth(0))
	results, errs := runOne(t, q)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(results) != 0 {
		t.Fatalf("disabled analyzer still produced results: %v", results)
	}
}

func TestQueryComplexityCountsEveryField(t *testing.T) {
	q := buildQuery(t, `{ hero { name friends { name } } }`, NewQueryComplexity)
	results, errs := runOne(t, q)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if got := results[0].(int); got != 4 {
		t.Fatalf("complexity = %d, want 4", got)
	}
}

func TestMaxQueryComplexityOverLimit(t *testing.T) {
	q := buildQuery(t, `{ a b c d }`, NewMaxQueryComplexity(3))
	results, _ := runOne(t, q)
	aerr, ok := results[0].(*analysis.Error)
	if !ok {
		t.Fatalf("expected *analysis.Error, got %T", results[0])
	}
	if aerr.Code != diag.AnaComplexityLimit {
		t.Fatalf("code = %v, want AnaComplexityLimit", aerr.Code)
	}
}

func TestMaxAliasesAbortsTraversal(t *testing.T) {
	q := buildQuery(t, `{ a: hero b: hero c: hero }`,
		NewMaxAliases(2),
		NewQueryComplexity,
	)
	results, errs := runOne(t, q)
	if results != nil {
		t.Fatalf("aborted pass must not deliver results, got %v", results)
	}
	if len(errs) != 1 {
		t.Fatalf("expected 1 rescued error, got %d", len(errs))
	}
	if errs[0].Code != diag.AnaAliasLimit {
		t.Fatalf("code = %v, want AnaAliasLimit", errs[0].Code)
	}
}

func TestMaxAliasesUnderLimit(t *testing.T) {
	q := buildQuery(t, `{ a: hero b: hero plain }`, NewMaxAliases(5))
	results, errs := runOne(t, q)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if got := results[0].(int); got != 2 {
		t.Fatalf("alias count = %d, want 2", got)
	}
}

func TestFieldUsageAccumulatesAcrossBatch(t *testing.T) {
	q1 := buildQuery(t, `{ hero { name } }`)
	q2 := buildQuery(t, `{ hero { id } }`)
	m := &analysis.Multiplex{
		Queries:   []*analysis.Query{q1, q2},
		Analyzers: []analysis.MultiplexAnalyzerFunc{NewFieldUsage},
	}
	results := analysis.NewRunner().AnalyzeMultiplex(m)
	counts, ok := results[0].(map[string]int)
	if !ok {
		t.Fatalf("expected map[string]int, got %T", results[0])
	}
	if counts["hero"] != 2 || counts["name"] != 1 || counts["id"] != 1 {
		t.Fatalf("unexpected counts: %v", counts)
	}
	for _, q := range m.Queries {
		if len(q.AnalysisErrors) != 0 {
			t.Fatalf("unexpected analysis errors: %v", q.AnalysisErrors)
		}
	}
}

func TestFieldUsageTopFields(t *testing.T) {
	q := buildQuery(t, `{ hero { name } villain { name } }`)
	m := &analysis.Multiplex{Queries: []*analysis.Query{q}}
	fu := NewFieldUsage(m).(*FieldUsage)
	analysis.NewRunner().AnalyzeQuery(q, []analysis.Analyzer{fu})
	top := fu.TopFields(2)
	if len(top) != 2 || top[0] != "name" {
		t.Fatalf("unexpected top fields: %v", top)
	}
}
