package lexer

import (
	"gqlcheck/internal/token"
)

// collectLeadingTrivia gathers consecutive insignificant fragments before a
// significant token:
//   - runs of ' ' and '\t' coalesce into one TriviaSpace
//   - runs of '\n'/'\r' coalesce into one TriviaNewline
//   - each ',' becomes a TriviaComma (commas are insignificant in GraphQL)
//   - '#' up to end of line becomes a TriviaComment
func (lx *Lexer) collectLeadingTrivia() {
	lx.hold = lx.hold[:0]
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()
		b := lx.cursor.Peek()

		if b == ' ' || b == '\t' {
			for {
				b2 := lx.cursor.Peek()
				if b2 != ' ' && b2 != '\t' {
					break
				}
				lx.cursor.Bump()
			}
			sp := lx.cursor.SpanFrom(start)
			lx.hold = append(lx.hold, token.Trivia{
				Kind: token.TriviaSpace,
				Span: sp,
				Text: lx.text(sp),
			})
			continue
		}

		if b == '\n' || b == '\r' {
			for lx.cursor.Peek() == '\n' || lx.cursor.Peek() == '\r' {
				lx.cursor.Bump()
			}
			sp := lx.cursor.SpanFrom(start)
			lx.hold = append(lx.hold, token.Trivia{
				Kind: token.TriviaNewline,
				Span: sp,
				Text: lx.text(sp),
			})
			continue
		}

		if b == ',' {
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			lx.hold = append(lx.hold, token.Trivia{
				Kind: token.TriviaComma,
				Span: sp,
				Text: lx.text(sp),
			})
			continue
		}

		if b == '#' {
			for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
				lx.cursor.Bump()
			}
			sp := lx.cursor.SpanFrom(start)
			lx.hold = append(lx.hold, token.Trivia{
				Kind: token.TriviaComment,
				Span: sp,
				Text: lx.text(sp),
			})
			continue
		}

		break
	}
}
