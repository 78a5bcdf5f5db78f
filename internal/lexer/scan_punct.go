package lexer

import (
	"fmt"

	"gqlcheck/internal/diag"
	"gqlcheck/internal/token"
)

func (lx *Lexer) scanPunct() token.Token {
	start := lx.cursor.Mark()
	b := lx.cursor.Bump()

	var kind token.Kind
	switch b {
	case '!':
		kind = token.Bang
	case '$':
		kind = token.Dollar
	case '&':
		kind = token.Amp
	case '(':
		kind = token.LParen
	case ')':
		kind = token.RParen
	case ':':
		kind = token.Colon
	case '=':
		kind = token.Equals
	case '@':
		kind = token.At
	case '[':
		kind = token.LBracket
	case ']':
		kind = token.RBracket
	case '{':
		kind = token.LBrace
	case '}':
		kind = token.RBrace
	case '|':
		kind = token.Pipe
	case '.':
		// Only '...' is legal; lone or doubled dots are an error.
		if lx.cursor.Eat('.') && lx.cursor.Eat('.') {
			kind = token.Spread
		} else {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexBadSpread, sp, "expected '...'")
			return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
		}
	default:
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexUnknownChar, sp, fmt.Sprintf("unexpected character %q", rune(b)))
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: lx.text(sp)}
}
