// Package driver wires the pipeline together: load, lex+parse, validate,
// analyze, report. One document file forms one analysis batch whose
// queries are its operations; directories fan out file-level work across
// goroutines while each batch stays sequential inside.
package driver

import (
	"sort"

	"gqlcheck/internal/analysis"
	"gqlcheck/internal/analysis/analyzers"
	"gqlcheck/internal/cache"
	"gqlcheck/internal/config"
	"gqlcheck/internal/diag"
	"gqlcheck/internal/observ"
	"gqlcheck/internal/parser"
	"gqlcheck/internal/source"
	"gqlcheck/internal/trace"
	"gqlcheck/internal/validate"
)

// Options configures a driver run.
type Options struct {
	Config config.Config
	Tracer trace.Tracer // nil disables tracing
	Cache  *cache.Store // nil disables caching

	EnableTimings bool
}

func (o Options) maxDiagnostics() int {
	if o.Config.Limits.MaxDiagnostics > 0 {
		return o.Config.Limits.MaxDiagnostics
	}
	return config.Default().Limits.MaxDiagnostics
}

// AnalyzeFile runs the full pipeline for one document file.
func AnalyzeFile(path string, opts Options) (*FileReport, error) {
	fs := source.NewFileSet()

	var timer *observ.Timer
	if opts.EnableTimings {
		timer = observ.NewTimer()
	}
	begin := func(name string) int {
		if timer == nil {
			return -1
		}
		return timer.Begin(name)
	}
	end := func(idx int, note string) {
		if timer != nil {
			timer.End(idx, note)
		}
	}

	phase := begin("read")
	id, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(id)
	end(phase, "")

	digest := cache.Hash(file.Content)
	if opts.Cache != nil {
		var payload cache.Payload
		if hit, err := opts.Cache.Get(digest, &payload); err == nil && hit {
			return reportFromPayload(path, digest, &payload), nil
		}
	}

	report := analyzeDocument(fs, file, opts, begin, end)
	report.Path = path
	report.Digest = digest
	if timer != nil {
		t := timer.Report()
		report.Timing = &t
	}

	if opts.Cache != nil {
		// Best effort: a failed write never fails the run.
		_ = opts.Cache.Put(digest, report.toPayload())
	}
	return report, nil
}

// AnalyzeSource runs the pipeline over in-memory content, bypassing the
// cache. Used for stdin and tests.
func AnalyzeSource(name string, content []byte, opts Options) *FileReport {
	fs := source.NewFileSet()
	id := fs.AddVirtual(name, content)
	file := fs.Get(id)

	begin := func(string) int { return -1 }
	end := func(int, string) {}
	report := analyzeDocument(fs, file, opts, begin, end)
	report.Path = name
	report.Digest = cache.Hash(content)
	return report
}

func analyzeDocument(fs *source.FileSet, file *source.File, opts Options,
	begin func(string) int, end func(int, string)) *FileReport {

	report := &FileReport{}
	bag := diag.NewBag(opts.maxDiagnostics())
	reporter := diag.BagReporter{Bag: bag}

	phase := begin("parse")
	doc := parser.ParseDocument(file, parser.Options{Reporter: reporter})
	end(phase, "")

	if bag.HasErrors() {
		// Analysis needs a syntactically sound document.
		report.Findings = findingsFromBag(fs, bag)
		sortFindings(report.Findings)
		return report
	}

	phase = begin("validate")
	res := validate.Document(doc, reporter)
	end(phase, "")

	phase = begin("analyze")
	limits := opts.Config.Limits
	runner := analysis.NewTracedRunner(analysis.NewRunner(), opts.Tracer, 0)

	// Shared batch pass: one FieldUsage instance accumulates across every
	// operation, and the alias limit aborts a query's walk mid-flight.
	m := &analysis.Multiplex{
		Analyzers: []analysis.MultiplexAnalyzerFunc{analyzers.NewFieldUsage},
	}
	for _, op := range doc.Operations {
		var ctors []analysis.QueryAnalyzerFunc
		if limits.MaxAliases > 0 {
			ctors = append(ctors, analyzers.NewMaxAliases(limits.MaxAliases))
		}
		m.Queries = append(m.Queries, &analysis.Query{
			Doc:           doc,
			OperationName: op.Name,
			File:          file,
			Valid:         res.OperationValid(op.Name),
			Analyzers:     ctors,
		})
	}
	multiplexResults := runner.AnalyzeMultiplex(m)

	report.Findings = findingsFromBag(fs, bag)
	for i, q := range m.Queries {
		for _, aerr := range q.AnalysisErrors {
			report.Findings = append(report.Findings, newFinding(fs, aerr.Diagnostic()))
		}
		if !q.Valid {
			continue
		}

		op := doc.Operations[i]
		metrics, limitErrs := measure(runner, q, limits)
		for _, aerr := range limitErrs {
			report.Findings = append(report.Findings, newFinding(fs, aerr.Diagnostic()))
		}
		report.Metrics = append(report.Metrics, OperationMetrics{
			Operation:  op.Name,
			Depth:      metrics[0],
			Complexity: metrics[1],
			Aliases:    metrics[2],
		})
	}
	sortFindings(report.Findings)
	end(phase, "")

	for _, r := range multiplexResults {
		if usage, ok := r.(map[string]int); ok {
			report.FieldUsage = usage
		}
	}
	return report
}

// measure runs one private pass per operation: plain counters for the
// metrics plus the depth/complexity limits, whose failures come back in
// the result list rather than as rescued errors.
func measure(r analysis.Runner, q *analysis.Query, limits config.Limits) ([3]int, []*analysis.Error) {
	ctors := []analysis.QueryAnalyzerFunc{
		analyzers.NewQueryDepth,
		analyzers.NewQueryComplexity,
		analyzers.NewAliasCount,
	}
	if limits.MaxDepth > 0 {
		ctors = append(ctors, analyzers.NewMaxQueryDepth(limits.MaxDepth))
	}
	if limits.MaxComplexity > 0 {
		ctors = append(ctors, analyzers.NewMaxQueryComplexity(limits.MaxComplexity))
	}

	probe := &analysis.Query{
		Doc:           q.Doc,
		OperationName: q.OperationName,
		File:          q.File,
		Valid:         true,
		Analyzers:     ctors,
	}
	results, errs := r.AnalyzeQuery(probe, nil)
	if len(errs) > 0 || len(results) < 3 {
		return [3]int{}, errs
	}

	var out [3]int
	for i := range out {
		if v, ok := results[i].(int); ok {
			out[i] = v
		}
	}
	return out, analysis.ExtractErrors(results)
}

func findingsFromBag(fs *source.FileSet, bag *diag.Bag) []Finding {
	items := bag.Items()
	out := make([]Finding, 0, len(items))
	for _, d := range items {
		out = append(out, newFinding(fs, d))
	}
	return out
}

func sortFindings(findings []Finding) {
	sort.SliceStable(findings, func(i, j int) bool {
		if findings[i].Line != findings[j].Line {
			return findings[i].Line < findings[j].Line
		}
		return findings[i].Col < findings[j].Col
	})
}
