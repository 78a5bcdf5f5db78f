package lexer

import (
	"gqlcheck/internal/token"
)

// Name :: [_A-Za-z][_0-9A-Za-z]*
func isNameStart(b byte) bool {
	return b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isNameContinue(b byte) bool {
	return isNameStart(b) || isDec(b)
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }

func (lx *Lexer) scanName() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	for !lx.cursor.EOF() && isNameContinue(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.Name, Span: sp, Text: lx.text(sp)}
}
