package analysis

import (
	"testing"

	"gqlcheck/internal/diag"
	"gqlcheck/internal/source"
	"gqlcheck/internal/trace"
)

func TestNewTracedRunnerDisabledReturnsInner(t *testing.T) {
	inner := NewRunner()
	if got := NewTracedRunner(inner, nil, 0); got != inner {
		t.Fatalf("nil tracer must not wrap")
	}
	if got := NewTracedRunner(inner, trace.Nop, 0); got != inner {
		t.Fatalf("disabled tracer must not wrap")
	}
}

func TestTracedRunnerIsTransparent(t *testing.T) {
	batchErr := NewError(diag.AnaComplexityLimit, source.Span{}, "batch")
	build := func() *Multiplex {
		q1 := parseQuery(t, `{ a b }`)
		q2 := parseQuery(t, `{ c }`)
		q2.Valid = false
		return &Multiplex{
			Queries: []*Query{q1, q2},
			Analyzers: []MultiplexAnalyzerFunc{
				func(m *Multiplex) Analyzer {
					return &recorder{label: "m", events: new([]string), result: batchErr}
				},
			},
		}
	}

	plain := build()
	NewRunner().AnalyzeMultiplex(plain)

	ring := trace.NewRingTracer(64, trace.LevelDebug)
	traced := build()
	NewTracedRunner(NewRunner(), ring, 0).AnalyzeMultiplex(traced)

	for i := range plain.Queries {
		p, q := plain.Queries[i], traced.Queries[i]
		if len(p.AnalysisErrors) != len(q.AnalysisErrors) {
			t.Fatalf("query %d: plain %v vs traced %v", i, p.AnalysisErrors, q.AnalysisErrors)
		}
		for j := range p.AnalysisErrors {
			if p.AnalysisErrors[j].Code != q.AnalysisErrors[j].Code {
				t.Fatalf("query %d error %d differs", i, j)
			}
		}
	}
}

func TestTracedRunnerEmitsNestedSpans(t *testing.T) {
	ring := trace.NewRingTracer(64, trace.LevelDebug)
	q1 := parseQuery(t, `{ a }`)
	q1.Analyzers = []QueryAnalyzerFunc{ctor(&recorder{label: "r", events: new([]string), on: true})}
	q2 := parseQuery(t, `{ b }`)
	q2.Valid = false
	m := &Multiplex{Queries: []*Query{q1, q2}}

	NewTracedRunner(NewRunner(), ring, 0).AnalyzeMultiplex(m)

	events := ring.Snapshot()
	var multiplexID uint64
	queries := 0
	for _, ev := range events {
		switch {
		case ev.Name == "analyze_multiplex" && ev.Kind == trace.KindSpanBegin:
			multiplexID = ev.SpanID
		case ev.Name == "analyze_multiplex" && ev.Kind == trace.KindSpanEnd:
			if ev.Extra["queries"] != "2" {
				t.Fatalf("queries extra = %q", ev.Extra["queries"])
			}
		}
	}
	if multiplexID == 0 {
		t.Fatalf("no multiplex span: %v", events)
	}
	for _, ev := range events {
		if ev.Name == "analyze_query" && ev.Kind == trace.KindSpanBegin {
			queries++
			if ev.ParentID != multiplexID {
				t.Fatalf("query span parent = %d, want %d", ev.ParentID, multiplexID)
			}
		}
	}
	// Only the valid query gets a span.
	if queries != 1 {
		t.Fatalf("saw %d query spans, want 1", queries)
	}
}

type stampRunner struct {
	multiplexCalls int
}

func (s *stampRunner) AnalyzeQuery(q *Query, multiplexAnalyzers []Analyzer) ([]any, []*Error) {
	return analyzeQuery(q, multiplexAnalyzers)
}

func (s *stampRunner) AnalyzeMultiplex(m *Multiplex) []any {
	s.multiplexCalls++
	return []any{"stamped"}
}

func TestTracedRunnerDelegatesCustomMultiplex(t *testing.T) {
	ring := trace.NewRingTracer(64, trace.LevelDebug)
	inner := &stampRunner{}
	r := NewTracedRunner(inner, ring, 0)

	m := &Multiplex{Queries: []*Query{parseQuery(t, `{ a }`)}}
	results := r.AnalyzeMultiplex(m)

	if inner.multiplexCalls != 1 {
		t.Fatalf("wrapped runner's multiplex logic ran %d times, want 1", inner.multiplexCalls)
	}
	if len(results) != 1 || results[0] != "stamped" {
		t.Fatalf("results not passed through: %v", results)
	}
}
