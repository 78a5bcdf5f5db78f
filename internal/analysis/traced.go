package analysis

import (
	"strconv"

	"gqlcheck/internal/trace"
)

// tracedRunner decorates a Runner with named, timed trace spans around each
// orchestration call. It never alters control flow, ordering, or error
// content.
type tracedRunner struct {
	inner  Runner
	tracer trace.Tracer
	parent uint64
}

// NewTracedRunner wraps inner so that AnalyzeMultiplex and every
// AnalyzeQuery it performs open a span on t. parent is the enclosing span
// ID (0 for root).
func NewTracedRunner(inner Runner, t trace.Tracer, parent uint64) Runner {
	if t == nil || !t.Enabled() {
		return inner
	}
	return &tracedRunner{inner: inner, tracer: t, parent: parent}
}

func (r *tracedRunner) AnalyzeQuery(q *Query, multiplexAnalyzers []Analyzer) ([]any, []*Error) {
	span := trace.Begin(r.tracer, trace.ScopeQuery, "analyze_query", r.parent).
		WithExtra("operation", q.OperationName)
	results, errs := r.inner.AnalyzeQuery(q, multiplexAnalyzers)
	span.WithExtra("errors", strconv.Itoa(len(errs)))
	span.End("")
	return results, errs
}

func (r *tracedRunner) AnalyzeMultiplex(m *Multiplex) []any {
	span := trace.Begin(r.tracer, trace.ScopePass, "analyze_multiplex", r.parent).
		WithExtra("queries", strconv.Itoa(len(m.Queries)))

	var results []any
	if _, ok := r.inner.(runner); ok {
		// The default orchestrator issues its per-query calls through
		// whatever Runner it is handed; route them back through this
		// wrapper so each query gets its own child span.
		sub := &tracedRunner{inner: r.inner, tracer: r.tracer, parent: span.ID()}
		results = analyzeMultiplex(sub, m)
	} else {
		// A custom Runner keeps its own multiplex logic; its queries
		// share the pass span instead of getting children.
		results = r.inner.AnalyzeMultiplex(m)
	}

	span.End("")
	return results
}
