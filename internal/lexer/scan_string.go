package lexer

import (
	"gqlcheck/internal/diag"
	"gqlcheck/internal/token"
)

// scanString handles "..." and """...""" literals. Escapes are consumed but
// not decoded here; analysis never needs the cooked value.
func (lx *Lexer) scanString() token.Token {
	if b0, b1, b2, ok := lx.cursor.Peek3(); ok && b0 == '"' && b1 == '"' && b2 == '"' {
		return lx.scanBlockString()
	}

	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '"' {
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.StringValue, Span: sp, Text: lx.text(sp)}
		}
		if b == '\\' {
			lx.cursor.Bump()
			if lx.cursor.EOF() {
				break
			}
			if !isEscape(lx.cursor.Peek()) {
				sp := lx.cursor.SpanFrom(start)
				lx.errLex(diag.LexBadEscape, sp, "invalid escape sequence")
			}
			lx.cursor.Bump()
			continue
		}
		if b == '\n' {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexUnterminatedString, sp, "newline in string literal")
			return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedString, sp, "unterminated string literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}

func isEscape(b byte) bool {
	switch b {
	case '"', '\\', '/', 'b', 'f', 'n', 'r', 't', 'u':
		return true
	default:
		return false
	}
}

func (lx *Lexer) scanBlockString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	lx.cursor.Bump()
	lx.cursor.Bump() // opening '"""'

	for !lx.cursor.EOF() {
		if b0, b1, b2, ok := lx.cursor.Peek3(); ok && b0 == '"' && b1 == '"' && b2 == '"' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.BlockStringValue, Span: sp, Text: lx.text(sp)}
		}
		if lx.cursor.Peek() == '\\' {
			// \""" is the only meaningful escape inside a block string.
			lx.cursor.Bump()
			if b0, b1, b2, ok := lx.cursor.Peek3(); ok && b0 == '"' && b1 == '"' && b2 == '"' {
				lx.cursor.Bump()
				lx.cursor.Bump()
				lx.cursor.Bump()
			}
			continue
		}
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedBlockStr, sp, "unterminated block string")
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}
