package lexer

import (
	"gqlcheck/internal/diag"
	"gqlcheck/internal/token"
)

// IntValue :: -? (0 | [1-9][0-9]*)
// FloatValue :: IntValue ('.' [0-9]+)? (('e'|'E') ('+'|'-')? [0-9]+)?
// with at least one of fraction or exponent present.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	lx.cursor.Eat('-')

	if lx.cursor.EOF() || !isDec(lx.cursor.Peek()) {
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexBadNumber, sp, "expected digit after '-'")
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
	}

	if lx.cursor.Peek() == '0' {
		lx.cursor.Bump()
		if !lx.cursor.EOF() && isDec(lx.cursor.Peek()) {
			// Leading zeros are forbidden: consume the run and report once.
			for !lx.cursor.EOF() && isDec(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexBadNumber, sp, "integer cannot have a leading zero")
			return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
		}
	} else {
		for !lx.cursor.EOF() && isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}

	isFloat := false

	if lx.cursor.Peek() == '.' {
		if b0, b1, ok := lx.cursor.Peek2(); !ok || b0 != '.' || !isDec(b1) {
			// '.' not followed by a digit belongs to a spread or is an error;
			// finish the integer here.
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.IntValue, Span: sp, Text: lx.text(sp)}
		}
		isFloat = true
		lx.cursor.Bump() // '.'
		for !lx.cursor.EOF() && isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}

	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		mark := lx.cursor.Mark()
		lx.cursor.Bump()
		if b2 := lx.cursor.Peek(); b2 == '+' || b2 == '-' {
			lx.cursor.Bump()
		}
		if lx.cursor.EOF() || !isDec(lx.cursor.Peek()) {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexBadNumber, sp, "exponent requires at least one digit")
			lx.cursor.Reset(mark)
			return token.Token{Kind: token.Invalid, Span: lx.cursor.SpanFrom(start), Text: lx.text(lx.cursor.SpanFrom(start))}
		}
		isFloat = true
		for !lx.cursor.EOF() && isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}

	// A number must not run straight into a name ("123abc").
	if !lx.cursor.EOF() && isNameStart(lx.cursor.Peek()) {
		for !lx.cursor.EOF() && isNameContinue(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexBadNumber, sp, "number cannot be followed by a name character")
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
	}

	sp := lx.cursor.SpanFrom(start)
	kind := token.IntValue
	if isFloat {
		kind = token.FloatValue
	}
	return token.Token{Kind: kind, Span: sp, Text: lx.text(sp)}
}
