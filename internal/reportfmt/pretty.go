package reportfmt

import (
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"

	"gqlcheck/internal/diag"
	"gqlcheck/internal/driver"
)

var (
	errColor  = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow, color.Bold)
	infoColor = color.New(color.FgCyan)
	okColor   = color.New(color.FgGreen, color.Bold)
	pathColor = color.New(color.Bold)
	dimColor  = color.New(color.Faint)
)

func sevLabel(sev diag.Severity, useColor bool) string {
	label := sev.String()
	if !useColor {
		return label
	}
	switch sev {
	case diag.SevError:
		return errColor.Sprint(label)
	case diag.SevWarning:
		return warnColor.Sprint(label)
	default:
		return infoColor.Sprint(label)
	}
}

// Pretty renders one report in the form
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//
// followed by optional metrics and field-usage blocks.
func Pretty(w io.Writer, report *driver.FileReport, opts Options) {
	path := report.Path
	if opts.Color {
		path = pathColor.Sprint(path)
	}

	for _, f := range report.Findings {
		fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
			path, f.Line, f.Col, sevLabel(f.Severity, opts.Color), f.Code, f.Message)
	}

	if len(report.Findings) == 0 && !opts.Quiet {
		ok := "OK"
		if opts.Color {
			ok = okColor.Sprint(ok)
		}
		suffix := ""
		if report.FromCache {
			suffix = " (cached)"
			if opts.Color {
				suffix = dimColor.Sprint(suffix)
			}
		}
		fmt.Fprintf(w, "%s: %s%s\n", path, ok, suffix)
	}

	if opts.ShowMetrics {
		for _, m := range report.Metrics {
			name := m.Operation
			if name == "" {
				name = "(anonymous)"
			}
			fmt.Fprintf(w, "  %-24s depth=%d complexity=%d aliases=%d\n",
				name, m.Depth, m.Complexity, m.Aliases)
		}
	}

	if opts.ShowUsage && len(report.FieldUsage) > 0 {
		names := make([]string, 0, len(report.FieldUsage))
		for name := range report.FieldUsage {
			names = append(names, name)
		}
		sort.Slice(names, func(i, j int) bool {
			if report.FieldUsage[names[i]] != report.FieldUsage[names[j]] {
				return report.FieldUsage[names[i]] > report.FieldUsage[names[j]]
			}
			return names[i] < names[j]
		})
		fmt.Fprintf(w, "  field usage:\n")
		for _, name := range names {
			fmt.Fprintf(w, "    %-22s %d\n", name, report.FieldUsage[name])
		}
	}

	if report.Timing != nil {
		fmt.Fprintf(w, "  total %.2f ms\n", report.Timing.TotalMS)
	}
}

// PrettyAll renders every report followed by a one-line summary.
func PrettyAll(w io.Writer, reports []*driver.FileReport, opts Options) {
	files, bad := 0, 0
	for _, r := range reports {
		Pretty(w, r, opts)
		files++
		if r.HasErrors() {
			bad++
		}
	}
	if files > 1 && !opts.Quiet {
		fmt.Fprintf(w, "%d files checked, %d with errors\n", files, bad)
	}
}
