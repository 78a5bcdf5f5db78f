package analysis

// Runner drives analysis at both scopes. The execution layer holds one
// Runner instance and passes it to the batch call site; wrap it with
// NewTracedRunner for instrumentation.
type Runner interface {
	// AnalyzeQuery runs one shared traversal pass for q, observed by q's
	// participating query-scoped analyzers plus the already-constructed
	// multiplex-scoped instances. It returns either the rescued errors
	// (results discarded) or each query-scoped analyzer's final result, in
	// registration order. Multiplex-scoped results are not returned here;
	// AnalyzeMultiplex reads them once, after all queries.
	AnalyzeQuery(q *Query, multiplexAnalyzers []Analyzer) ([]any, []*Error)

	// AnalyzeMultiplex runs analysis for every query in the batch, writes
	// each query's AnalysisErrors slot, and returns the multiplex-scoped
	// analyzers' raw results, unfiltered.
	AnalyzeMultiplex(m *Multiplex) []any
}

// NewRunner returns the plain, untraced runner.
func NewRunner() Runner {
	return runner{}
}

type runner struct{}

func (r runner) AnalyzeQuery(q *Query, multiplexAnalyzers []Analyzer) ([]any, []*Error) {
	return analyzeQuery(q, multiplexAnalyzers)
}

func (r runner) AnalyzeMultiplex(m *Multiplex) []any {
	return analyzeMultiplex(r, m)
}

func analyzeQuery(q *Query, multiplexAnalyzers []Analyzer) ([]any, []*Error) {
	queryAnalyzers := make([]Analyzer, 0, len(q.Analyzers))
	for _, construct := range q.Analyzers {
		a := construct(q)
		if a.Analyze() {
			queryAnalyzers = append(queryAnalyzers, a)
		}
	}

	observers := make([]Analyzer, 0, len(queryAnalyzers)+len(multiplexAnalyzers))
	observers = append(observers, queryAnalyzers...)
	observers = append(observers, multiplexAnalyzers...)

	// No observer cares: skip the walk entirely.
	if len(observers) == 0 {
		return []any{}, nil
	}

	visitor := NewVisitor(q, observers)
	visitor.Visit()

	if errs := visitor.RescuedErrors(); len(errs) > 0 {
		// A failed pass yields only errors, never partial metrics.
		return nil, errs
	}

	results := make([]any, 0, len(queryAnalyzers))
	for _, a := range queryAnalyzers {
		results = append(results, a.Result())
	}
	return results, nil
}

// analyzeMultiplex takes the Runner so per-query calls flow back through a
// tracing wrapper when one is installed.
func analyzeMultiplex(r Runner, m *Multiplex) []any {
	multiplexAnalyzers := make([]Analyzer, 0, len(m.Analyzers))
	for _, construct := range m.Analyzers {
		// No participation guard at the multiplex level: these always run.
		multiplexAnalyzers = append(multiplexAnalyzers, construct(m))
	}

	queryErrs := make([][]*Error, len(m.Queries))
	for i, q := range m.Queries {
		if !q.Valid {
			continue
		}
		_, errs := r.AnalyzeQuery(q, multiplexAnalyzers)
		queryErrs[i] = errs
	}

	multiplexResults := make([]any, 0, len(multiplexAnalyzers))
	for _, a := range multiplexAnalyzers {
		multiplexResults = append(multiplexResults, a.Result())
	}
	batchErrs := ExtractErrors(multiplexResults)

	for i, q := range m.Queries {
		combined := make([]*Error, 0, len(batchErrs)+len(queryErrs[i]))
		combined = append(combined, batchErrs...)
		combined = append(combined, queryErrs[i]...)
		q.AnalysisErrors = combined
	}

	return multiplexResults
}
