package token

import (
	"gqlcheck/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsLiteral reports whether the token is a scalar literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntValue, FloatValue, StringValue, BlockStringValue:
		return true
	default:
		return false
	}
}

// IsPunct reports whether the token is a punctuator.
func (t Token) IsPunct() bool {
	switch t.Kind {
	case Bang, Dollar, Amp, LParen, RParen, Spread, Colon, Equals,
		At, LBracket, RBracket, LBrace, RBrace, Pipe:
		return true
	default:
		return false
	}
}

// IsName reports whether the token is a name with the given text.
func (t Token) IsName(text string) bool {
	return t.Kind == Name && t.Text == text
}
