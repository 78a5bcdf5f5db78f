package lexer

import (
	"gqlcheck/internal/diag"
	"gqlcheck/internal/source"
)

// Options configures a Lexer.
type Options struct {
	// Reporter receives lexical diagnostics. May be nil; lexing continues
	// either way, producing Invalid tokens for bad input.
	Reporter diag.Reporter
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}
