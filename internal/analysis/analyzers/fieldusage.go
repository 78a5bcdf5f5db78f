package analyzers

import (
	"sort"

	"gqlcheck/internal/analysis"
	"gqlcheck/internal/ast"
)

// FieldUsage accumulates field-name occurrence counts across every
// query of a batch. Multiplex-scoped: one instance observes all
// traversals and reports the merged counts once.
type FieldUsage struct {
	mp     *analysis.Multiplex
	counts map[string]int
}

// NewFieldUsage is the multiplex-scoped constructor.
func NewFieldUsage(m *analysis.Multiplex) analysis.Analyzer {
	return &FieldUsage{mp: m, counts: make(map[string]int)}
}

func (a *FieldUsage) Analyze() bool { return true }

func (a *FieldUsage) Enter(n ast.Node) error {
	if f, ok := n.(*ast.Field); ok {
		a.counts[f.Name]++
	}
	return nil
}

func (a *FieldUsage) Leave(n ast.Node) error { return nil }

// Result returns a copy of the accumulated counts so later mutation of
// the analyzer cannot leak into the batch results.
func (a *FieldUsage) Result() any {
	out := make(map[string]int, len(a.counts))
	for k, v := range a.counts {
		out[k] = v
	}
	return out
}

// TopFields returns the n most used field names in descending count
// order, ties broken alphabetically.
func (a *FieldUsage) TopFields(n int) []string {
	names := make([]string, 0, len(a.counts))
	for k := range a.counts {
		names = append(names, k)
	}
	sort.Slice(names, func(i, j int) bool {
		if a.counts[names[i]] != a.counts[names[j]] {
			return a.counts[names[i]] > a.counts[names[j]]
		}
		return names[i] < names[j]
	})
	if n < len(names) {
		names = names[:n]
	}
	return names
}
