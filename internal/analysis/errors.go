package analysis

import (
	"errors"

	"gqlcheck/internal/diag"
	"gqlcheck/internal/source"
)

// Error is the distinguished analysis failure value. Analyzers return it
// from a hook to abort a query's pass, or from Result() to mark the whole
// batch; either way it travels as data, never as a panic.
type Error struct {
	Code    diag.Code
	Message string
	Span    source.Span
}

func (e *Error) Error() string {
	return e.Message
}

// Diagnostic converts the analysis error for unified reporting.
func (e *Error) Diagnostic() diag.Diagnostic {
	return diag.NewError(e.Code, e.Span, e.Message)
}

// NewError builds an analysis error.
func NewError(code diag.Code, sp source.Span, msg string) *Error {
	return &Error{Code: code, Message: msg, Span: sp}
}

// asAnalysisError classifies an arbitrary error from an analyzer hook.
// Anything that is not already an *Error is wrapped under AnaInternal so a
// misbehaving analyzer still cannot take down sibling queries.
func asAnalysisError(err error) *Error {
	var aerr *Error
	if errors.As(err, &aerr) {
		return aerr
	}
	return &Error{Code: diag.AnaInternal, Message: err.Error()}
}

// ExtractErrors flattens the result collection exactly one level and keeps
// only analysis errors, preserving relative order. Result collections may
// nest because an analyzer's Result() may itself return a []any.
func ExtractErrors(results []any) []*Error {
	var out []*Error
	for _, r := range results {
		switch v := r.(type) {
		case *Error:
			out = append(out, v)
		case []any:
			for _, inner := range v {
				if e, ok := inner.(*Error); ok {
					out = append(out, e)
				}
			}
		}
	}
	return out
}
