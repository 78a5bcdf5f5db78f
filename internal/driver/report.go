package driver

import (
	"gqlcheck/internal/cache"
	"gqlcheck/internal/diag"
	"gqlcheck/internal/observ"
	"gqlcheck/internal/source"
)

// Finding is one reported problem with its position already resolved, so
// reports survive caching without the originating FileSet.
type Finding struct {
	Code     diag.Code
	Severity diag.Severity
	Message  string
	Line     uint32
	Col      uint32
}

// OperationMetrics carries the measured values for one operation.
type OperationMetrics struct {
	Operation  string // "" for the anonymous operation
	Depth      int
	Complexity int
	Aliases    int
}

// FileReport is the analysis outcome for one document.
type FileReport struct {
	Path      string
	Digest    cache.Digest
	FromCache bool

	Findings   []Finding
	Metrics    []OperationMetrics
	FieldUsage map[string]int

	Timing *observ.Report
}

// HasErrors reports whether any finding is an error.
func (r *FileReport) HasErrors() bool {
	for _, f := range r.Findings {
		if f.Severity == diag.SevError {
			return true
		}
	}
	return false
}

func newFinding(fs *source.FileSet, d diag.Diagnostic) Finding {
	start, _ := fs.Resolve(d.Primary)
	return Finding{
		Code:     d.Code,
		Severity: d.Severity,
		Message:  d.Message,
		Line:     start.Line,
		Col:      start.Col,
	}
}

func (r *FileReport) toPayload() *cache.Payload {
	p := &cache.Payload{
		Path:       r.Path,
		FieldUsage: r.FieldUsage,
	}
	p.Diagnostics = make([]cache.DiagRecord, len(r.Findings))
	for i, f := range r.Findings {
		p.Diagnostics[i] = cache.DiagRecord{
			Code:     uint16(f.Code),
			Severity: uint8(f.Severity),
			Message:  f.Message,
			Line:     f.Line,
			Col:      f.Col,
		}
	}
	p.Metrics = make([]cache.MetricRecord, len(r.Metrics))
	for i, m := range r.Metrics {
		p.Metrics[i] = cache.MetricRecord{
			Operation:  m.Operation,
			Depth:      m.Depth,
			Complexity: m.Complexity,
			Aliases:    m.Aliases,
		}
	}
	return p
}

func reportFromPayload(path string, digest cache.Digest, p *cache.Payload) *FileReport {
	r := &FileReport{
		Path:       path,
		Digest:     digest,
		FromCache:  true,
		FieldUsage: p.FieldUsage,
	}
	r.Findings = make([]Finding, len(p.Diagnostics))
	for i, d := range p.Diagnostics {
		r.Findings[i] = Finding{
			Code:     diag.Code(d.Code),
			Severity: diag.Severity(d.Severity),
			Message:  d.Message,
			Line:     d.Line,
			Col:      d.Col,
		}
	}
	r.Metrics = make([]OperationMetrics, len(p.Metrics))
	for i, m := range p.Metrics {
		r.Metrics[i] = OperationMetrics{
			Operation:  m.Operation,
			Depth:      m.Depth,
			Complexity: m.Complexity,
			Aliases:    m.Aliases,
		}
	}
	return r
}
