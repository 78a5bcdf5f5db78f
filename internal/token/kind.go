package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Name represents a GraphQL name ([_A-Za-z][_0-9A-Za-z]*).
	Name
	// IntValue represents an integer literal.
	IntValue
	// FloatValue represents a float literal.
	FloatValue
	// StringValue represents a single-quoted "..." string literal.
	StringValue
	// BlockStringValue represents a """...""" block string literal.
	BlockStringValue

	// Bang represents '!'.
	Bang
	// Dollar represents '$'.
	Dollar
	// Amp represents '&'.
	Amp
	// LParen represents '('.
	LParen
	// RParen represents ')'.
	RParen
	// Spread represents '...'.
	Spread
	// Colon represents ':'.
	Colon
	// Equals represents '='.
	Equals
	// At represents '@'.
	At
	// LBracket represents '['.
	LBracket
	// RBracket represents ']'.
	RBracket
	// LBrace represents '{'.
	LBrace
	// RBrace represents '}'.
	RBrace
	// Pipe represents '|'.
	Pipe
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "Invalid"
	case EOF:
		return "EOF"
	case Name:
		return "Name"
	case IntValue:
		return "IntValue"
	case FloatValue:
		return "FloatValue"
	case StringValue:
		return "StringValue"
	case BlockStringValue:
		return "BlockStringValue"
	case Bang:
		return "!"
	case Dollar:
		return "$"
	case Amp:
		return "&"
	case LParen:
		return "("
	case RParen:
		return ")"
	case Spread:
		return "..."
	case Colon:
		return ":"
	case Equals:
		return "="
	case At:
		return "@"
	case LBracket:
		return "["
	case RBracket:
		return "]"
	case LBrace:
		return "{"
	case RBrace:
		return "}"
	case Pipe:
		return "|"
	}
	return "Unknown"
}
