package analysis

import (
	"errors"
	"fmt"
	"testing"

	"gqlcheck/internal/ast"
	"gqlcheck/internal/diag"
	"gqlcheck/internal/parser"
	"gqlcheck/internal/source"
)

func parseQuery(t *testing.T, src string) *Query {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.graphql", []byte(src))
	bag := diag.NewBag(32)
	file := fs.Get(id)
	doc := parser.ParseDocument(file, parser.Options{Reporter: diag.BagReporter{Bag: bag}})
	if bag.HasErrors() {
		t.Fatalf("unexpected parse errors: %v", bag.Items())
	}
	return &Query{Doc: doc, File: file, Valid: true}
}

// recorder logs every hook invocation, shared across instances via events.
type recorder struct {
	label  string
	events *[]string
	on     bool

	enterErr error // returned from Enter on the named field
	errField string

	resultOnce int
	result     any
}

func (r *recorder) Analyze() bool { return r.on }

func (r *recorder) Enter(n ast.Node) error {
	if f, ok := n.(*ast.Field); ok {
		*r.events = append(*r.events, r.label+":enter:"+f.Name)
		if r.enterErr != nil && f.Name == r.errField {
			return r.enterErr
		}
	}
	return nil
}

func (r *recorder) Leave(n ast.Node) error {
	if f, ok := n.(*ast.Field); ok {
		*r.events = append(*r.events, r.label+":leave:"+f.Name)
	}
	return nil
}

func (r *recorder) Result() any {
	r.resultOnce++
	*r.events = append(*r.events, r.label+":result")
	return r.result
}

func ctor(r *recorder) QueryAnalyzerFunc {
	return func(q *Query) Analyzer { return r }
}

func TestVisitorEnterLeaveOrdering(t *testing.T) {
	q := parseQuery(t, `{ hero { name } }`)
	var events []string
	a := &recorder{label: "a", events: &events, on: true}
	b := &recorder{label: "b", events: &events, on: true}
	q.Analyzers = []QueryAnalyzerFunc{ctor(a), ctor(b)}

	_, errs := NewRunner().AnalyzeQuery(q, nil)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}

	want := []string{
		"a:enter:hero", "b:enter:hero",
		"a:enter:name", "b:enter:name",
		"a:leave:name", "b:leave:name",
		"a:leave:hero", "b:leave:hero",
		"a:result", "b:result",
	}
	if len(events) != len(want) {
		t.Fatalf("events = %v, want %v", events, want)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Fatalf("events[%d] = %q, want %q (all: %v)", i, events[i], want[i], events)
		}
	}
}

func TestAnalyzeQuerySkipsNonParticipating(t *testing.T) {
	q := parseQuery(t, `{ hero }`)
	var events []string
	off := &recorder{label: "off", events: &events, on: false, result: 1}
	on := &recorder{label: "on", events: &events, on: true, result: 2}
	q.Analyzers = []QueryAnalyzerFunc{ctor(off), ctor(on)}

	results, errs := NewRunner().AnalyzeQuery(q, nil)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(results) != 1 || results[0] != 2 {
		t.Fatalf("results = %v, want [2]", results)
	}
	for _, ev := range events {
		if ev == "off:enter:hero" {
			t.Fatalf("non-participating analyzer observed the walk: %v", events)
		}
	}
}

func TestAnalyzeQueryNoObserversSkipsWalk(t *testing.T) {
	q := parseQuery(t, `{ hero }`)
	results, errs := NewRunner().AnalyzeQuery(q, nil)
	if errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if results == nil || len(results) != 0 {
		t.Fatalf("results = %v, want empty non-nil slice", results)
	}
}

func TestAnalyzeQueryAbortsOnRescuedError(t *testing.T) {
	q := parseQuery(t, `{ first second third }`)
	var events []string
	boom := NewError(diag.AnaAliasLimit, source.Span{}, "too much")
	a := &recorder{label: "a", events: &events, on: true, enterErr: boom, errField: "second"}
	b := &recorder{label: "b", events: &events, on: true}
	q.Analyzers = []QueryAnalyzerFunc{ctor(a), ctor(b)}

	results, errs := NewRunner().AnalyzeQuery(q, nil)
	if results != nil {
		t.Fatalf("aborted pass returned results: %v", results)
	}
	if len(errs) != 1 || errs[0] != boom {
		t.Fatalf("errs = %v, want the raised error verbatim", errs)
	}
	for _, ev := range events {
		if ev == "b:enter:second" || ev == "a:enter:third" {
			t.Fatalf("walk continued past the error: %v", events)
		}
		if ev == "a:result" || ev == "b:result" {
			t.Fatalf("Result fired on an aborted pass: %v", events)
		}
	}
}

func TestHookErrorWrappedAsInternal(t *testing.T) {
	q := parseQuery(t, `{ hero }`)
	var events []string
	plain := errors.New("unexpected failure")
	a := &recorder{label: "a", events: &events, on: true, enterErr: plain, errField: "hero"}
	q.Analyzers = []QueryAnalyzerFunc{ctor(a)}

	_, errs := NewRunner().AnalyzeQuery(q, nil)
	if len(errs) != 1 {
		t.Fatalf("expected one rescued error, got %v", errs)
	}
	if errs[0].Code != diag.AnaInternal || errs[0].Message != "unexpected failure" {
		t.Fatalf("wrapped error = %+v", errs[0])
	}
}

func TestExtractErrorsFlattensOneLevel(t *testing.T) {
	e1 := NewError(diag.AnaDepthLimit, source.Span{}, "one")
	e2 := NewError(diag.AnaComplexityLimit, source.Span{}, "two")
	e3 := NewError(diag.AnaAliasLimit, source.Span{}, "three")

	results := []any{
		42,
		e1,
		[]any{"mixed", e2, 7},
		[]any{[]any{e3}}, // second level stays buried
		"tail",
	}
	got := ExtractErrors(results)
	if len(got) != 2 || got[0] != e1 || got[1] != e2 {
		t.Fatalf("ExtractErrors = %v, want [one two]", got)
	}
}

func TestExtractErrorsEmpty(t *testing.T) {
	if got := ExtractErrors(nil); len(got) != 0 {
		t.Fatalf("ExtractErrors(nil) = %v", got)
	}
	if got := ExtractErrors([]any{1, "x", []any{2}}); len(got) != 0 {
		t.Fatalf("expected no errors, got %v", got)
	}
}

func TestMultiplexSkipsInvalidAndClearsErrors(t *testing.T) {
	q1 := parseQuery(t, `{ a }`)
	q2 := parseQuery(t, `{ b }`)
	q2.Valid = false
	q3 := parseQuery(t, `{ c }`)

	var events []string
	q2.Analyzers = []QueryAnalyzerFunc{ctor(&recorder{label: "q2", events: &events, on: true})}

	m := &Multiplex{Queries: []*Query{q1, q2, q3}}
	results := NewRunner().AnalyzeMultiplex(m)
	if len(results) != 0 {
		t.Fatalf("no multiplex analyzers registered, results = %v", results)
	}
	if len(events) != 0 {
		t.Fatalf("invalid query was traversed: %v", events)
	}
	for i, q := range m.Queries {
		if q.AnalysisErrors == nil || len(q.AnalysisErrors) != 0 {
			t.Fatalf("query %d AnalysisErrors = %v, want empty non-nil", i, q.AnalysisErrors)
		}
	}
}

func TestMultiplexMixedValidityCleanRun(t *testing.T) {
	var events []string
	q1 := parseQuery(t, `{ a }`)
	q1.Analyzers = []QueryAnalyzerFunc{ctor(&recorder{label: "q1", events: &events, on: true, result: 1})}
	q2 := parseQuery(t, `{ b }`)
	q2.Valid = false
	q3 := parseQuery(t, `{ c }`)
	q3.Analyzers = []QueryAnalyzerFunc{ctor(&recorder{label: "q3", events: &events, on: true, result: 3})}

	m := &Multiplex{Queries: []*Query{q1, q2, q3}}
	results := NewRunner().AnalyzeMultiplex(m)

	if len(results) != 0 {
		t.Fatalf("batch return = %v, want empty", results)
	}
	for i, q := range m.Queries {
		if q.AnalysisErrors == nil || len(q.AnalysisErrors) != 0 {
			t.Fatalf("query %d AnalysisErrors = %v, want empty", i, q.AnalysisErrors)
		}
	}
	for _, ev := range events {
		if ev == "q1:enter:b" || ev == "q3:enter:b" {
			t.Fatalf("invalid query traversed: %v", events)
		}
	}
}

func TestMultiplexZeroValidQueries(t *testing.T) {
	q1 := parseQuery(t, `{ a }`)
	q1.Valid = false
	q2 := parseQuery(t, `{ b }`)
	q2.Valid = false

	var events []string
	mrec := &recorder{label: "m", events: &events, result: "usage"}
	m := &Multiplex{
		Queries:   []*Query{q1, q2},
		Analyzers: []MultiplexAnalyzerFunc{func(m *Multiplex) Analyzer { return mrec }},
	}

	results := NewRunner().AnalyzeMultiplex(m)
	if mrec.resultOnce != 1 {
		t.Fatalf("Result fired %d times, want exactly 1", mrec.resultOnce)
	}
	if len(results) != 1 || results[0] != any("usage") {
		t.Fatalf("results = %v", results)
	}
	for _, ev := range events {
		if ev != "m:result" {
			t.Fatalf("no traversal should have happened: %v", events)
		}
	}
}

func TestMultiplexErrorReachesEveryQuery(t *testing.T) {
	q1 := parseQuery(t, `{ a }`)
	q2 := parseQuery(t, `{ b }`)
	q2.Valid = false

	batchErr := NewError(diag.AnaComplexityLimit, source.Span{}, "batch too heavy")
	var events []string
	mrec := &recorder{label: "m", events: &events, on: false, result: batchErr}
	m := &Multiplex{
		Queries:   []*Query{q1, q2},
		Analyzers: []MultiplexAnalyzerFunc{func(m *Multiplex) Analyzer { return mrec }},
	}

	results := NewRunner().AnalyzeMultiplex(m)

	// Multiplex-scoped analyzers run regardless of their Analyze() answer,
	// observe only valid queries, and finalize exactly once.
	if mrec.resultOnce != 1 {
		t.Fatalf("Result fired %d times, want 1", mrec.resultOnce)
	}
	sawA := false
	for _, ev := range events {
		if ev == "m:enter:a" {
			sawA = true
		}
		if ev == "m:enter:b" {
			t.Fatalf("multiplex analyzer observed an invalid query: %v", events)
		}
	}
	if !sawA {
		t.Fatalf("multiplex analyzer missed the valid query: %v", events)
	}

	// Raw results come back unfiltered; every query, valid or not, carries
	// the batch error.
	if len(results) != 1 || results[0] != any(batchErr) {
		t.Fatalf("results = %v, want raw [batchErr]", results)
	}
	for i, q := range m.Queries {
		if len(q.AnalysisErrors) != 1 || q.AnalysisErrors[0] != batchErr {
			t.Fatalf("query %d AnalysisErrors = %v, want [batchErr]", i, q.AnalysisErrors)
		}
	}
}

func TestMultiplexCombinesBatchAndQueryErrors(t *testing.T) {
	q1 := parseQuery(t, `{ stop }`)
	q2 := parseQuery(t, `{ fine }`)

	ownErr := NewError(diag.AnaAliasLimit, source.Span{}, "q1 only")
	var events []string
	q1.Analyzers = []QueryAnalyzerFunc{
		ctor(&recorder{label: "q1", events: &events, on: true, enterErr: ownErr, errField: "stop"}),
	}

	batchErr := NewError(diag.AnaComplexityLimit, source.Span{}, "whole batch")
	m := &Multiplex{
		Queries: []*Query{q1, q2},
		Analyzers: []MultiplexAnalyzerFunc{
			func(m *Multiplex) Analyzer {
				return &recorder{label: "m", events: &events, on: true, result: batchErr}
			},
		},
	}
	NewRunner().AnalyzeMultiplex(m)

	if len(q1.AnalysisErrors) != 2 || q1.AnalysisErrors[0] != batchErr || q1.AnalysisErrors[1] != ownErr {
		t.Fatalf("q1 errors = %v, want [batch, own]", q1.AnalysisErrors)
	}
	if len(q2.AnalysisErrors) != 1 || q2.AnalysisErrors[0] != batchErr {
		t.Fatalf("q2 errors = %v, want [batch]", q2.AnalysisErrors)
	}
}

func TestMultiplexSharedAccumulation(t *testing.T) {
	q1 := parseQuery(t, `{ hero }`)
	q2 := parseQuery(t, `{ hero villain }`)

	var events []string
	c := &recorder{label: "c", events: &events}
	m := &Multiplex{
		Queries: []*Query{q1, q2},
		Analyzers: []MultiplexAnalyzerFunc{
			func(m *Multiplex) Analyzer { return c },
		},
	}
	NewRunner().AnalyzeMultiplex(m)

	got := 0
	for _, ev := range events {
		if len(ev) > 8 && ev[:8] == "c:enter:" {
			got++
		}
	}
	if got != 3 {
		t.Fatalf("multiplex analyzer saw %d fields across the batch, want 3", got)
	}
}

func TestAnonymousOperationResolution(t *testing.T) {
	q := parseQuery(t, `
		{ onlyAnon }
		fragment F on T { x }
	`)
	op, ok := q.Operation()
	if !ok || op == nil {
		t.Fatalf("single anonymous operation should resolve")
	}

	multi := parseQuery(t, `
		query A { a }
		query B { b }
	`)
	if _, ok := multi.Operation(); ok {
		t.Fatalf("empty name must not resolve among multiple named operations")
	}
	multi.OperationName = "B"
	op, ok = multi.Operation()
	if !ok || op.Name != "B" {
		t.Fatalf("named lookup failed: %v %v", op, ok)
	}
}

func TestVisitorFragmentCycleGuard(t *testing.T) {
	q := parseQuery(t, `
		query { ...A }
		fragment A on T { a ...B }
		fragment B on T { b ...A }
	`)
	var events []string
	rec := &recorder{label: "r", events: &events, on: true}
	q.Analyzers = []QueryAnalyzerFunc{ctor(rec)}

	_, errs := NewRunner().AnalyzeQuery(q, nil)
	if len(errs) != 0 {
		t.Fatalf("cycle must not raise: %v", errs)
	}
	enters := map[string]int{}
	for _, ev := range events {
		if len(ev) > 8 && ev[:8] == "r:enter:" {
			enters[ev[8:]]++
		}
	}
	if enters["a"] != 1 || enters["b"] != 1 {
		t.Fatalf("cyclic spread revisited fields: %v", enters)
	}
}

func TestErrorDiagnosticConversion(t *testing.T) {
	sp := source.Span{Start: 3, End: 9}
	e := NewError(diag.AnaDepthLimit, sp, "deep")
	d := e.Diagnostic()
	if d.Code != diag.AnaDepthLimit || d.Severity != diag.SevError || d.Primary != sp {
		t.Fatalf("diagnostic = %+v", d)
	}
	var err error = e
	if err.Error() != "deep" {
		t.Fatalf("Error() = %q", err.Error())
	}
	if fmt.Sprintf("%v", err) != "deep" {
		t.Fatalf("format = %q", fmt.Sprintf("%v", err))
	}
}
