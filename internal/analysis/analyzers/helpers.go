package analyzers

import (
	"gqlcheck/internal/analysis"
	"gqlcheck/internal/source"
)

// opSpan locates the selected operation of q, falling back to the
// document span when no operation matches.
func opSpan(q *analysis.Query) source.Span {
	if op, ok := q.Operation(); ok {
		return op.Span()
	}
	if q.Doc != nil {
		return q.Doc.Span()
	}
	return source.Span{}
}
