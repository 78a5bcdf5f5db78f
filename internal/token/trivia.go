package token

import "gqlcheck/internal/source"

// TriviaKind classifies insignificant source fragments.
type TriviaKind uint8

const (
	TriviaSpace TriviaKind = iota
	TriviaNewline
	TriviaComma
	TriviaComment
)

func (k TriviaKind) String() string {
	switch k {
	case TriviaSpace:
		return "Space"
	case TriviaNewline:
		return "Newline"
	case TriviaComma:
		return "Comma"
	case TriviaComment:
		return "Comment"
	}
	return "Unknown"
}

// Trivia is an insignificant fragment attached to the following token.
type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}
