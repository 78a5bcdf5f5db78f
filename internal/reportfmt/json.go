package reportfmt

import (
	"encoding/json"
	"io"

	"gqlcheck/internal/diag"
	"gqlcheck/internal/driver"
	"gqlcheck/internal/observ"
)

// FindingJSON is one rendered finding.
type FindingJSON struct {
	Severity string `json:"severity"`
	Code     string `json:"code"`
	Message  string `json:"message"`
	Line     uint32 `json:"line"`
	Col      uint32 `json:"col"`
}

// MetricsJSON is one operation's measured values.
type MetricsJSON struct {
	Operation  string `json:"operation,omitempty"`
	Depth      int    `json:"depth"`
	Complexity int    `json:"complexity"`
	Aliases    int    `json:"aliases"`
}

// FileJSON is the rendered report of one document.
type FileJSON struct {
	Path       string          `json:"path"`
	FromCache  bool            `json:"from_cache,omitempty"`
	Findings   []FindingJSON   `json:"findings"`
	Metrics    []MetricsJSON   `json:"metrics,omitempty"`
	FieldUsage map[string]int  `json:"field_usage,omitempty"`
	Timing     *observ.Report  `json:"timing,omitempty"`
}

// RunJSON is the root object of the JSON output.
type RunJSON struct {
	Files  []FileJSON `json:"files"`
	Errors int        `json:"errors"`
}

func fileJSON(report *driver.FileReport, opts Options) FileJSON {
	out := FileJSON{
		Path:      report.Path,
		FromCache: report.FromCache,
		Findings:  make([]FindingJSON, len(report.Findings)),
		Timing:    report.Timing,
	}
	for i, f := range report.Findings {
		out.Findings[i] = FindingJSON{
			Severity: f.Severity.String(),
			Code:     f.Code.String(),
			Message:  f.Message,
			Line:     f.Line,
			Col:      f.Col,
		}
	}
	if opts.ShowMetrics {
		out.Metrics = make([]MetricsJSON, len(report.Metrics))
		for i, m := range report.Metrics {
			out.Metrics[i] = MetricsJSON{
				Operation:  m.Operation,
				Depth:      m.Depth,
				Complexity: m.Complexity,
				Aliases:    m.Aliases,
			}
		}
	}
	if opts.ShowUsage {
		out.FieldUsage = report.FieldUsage
	}
	return out
}

// JSON renders every report as one indented JSON document.
func JSON(w io.Writer, reports []*driver.FileReport, opts Options) error {
	run := RunJSON{Files: make([]FileJSON, len(reports))}
	for i, r := range reports {
		run.Files[i] = fileJSON(r, opts)
		for _, f := range r.Findings {
			if f.Severity == diag.SevError {
				run.Errors++
			}
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(run)
}
