// Package reportfmt renders analysis reports for terminals and machines.
package reportfmt

// Mode selects the output format of the analyze command.
type Mode uint8

const (
	// ModePretty renders human-readable colored text.
	ModePretty Mode = iota
	// ModeJSON renders one JSON document for the whole run.
	ModeJSON
)

// Options configures rendering.
type Options struct {
	Color       bool
	ShowMetrics bool
	ShowUsage   bool
	Quiet       bool // findings only, no per-file OK lines
}
