package diag

import (
	"fmt"
)

type Code uint16

const (
	// UnknownCode is the fallback for unclassified failures.
	UnknownCode Code = 0

	// Lexical
	LexUnknownChar           Code = 1001
	LexUnterminatedString    Code = 1002
	LexBadEscape             Code = 1003
	LexBadNumber             Code = 1004
	LexUnterminatedBlockStr  Code = 1005
	LexBadSpread             Code = 1006

	// Syntax
	SynUnexpectedToken    Code = 2001
	SynExpectName         Code = 2002
	SynExpectSelectionSet Code = 2003
	SynUnclosedBrace      Code = 2004
	SynUnclosedParen      Code = 2005
	SynUnclosedBracket    Code = 2006
	SynEmptySelectionSet  Code = 2007
	SynExpectValue        Code = 2008
	SynExpectType         Code = 2009
	SynExpectOn           Code = 2010
	SynBadFragmentName    Code = 2011
	SynExpectDefinition   Code = 2012

	// Validation
	ValDuplicateOperation   Code = 3001
	ValDuplicateFragment    Code = 3002
	ValUndefinedFragment    Code = 3003
	ValUnusedFragment       Code = 3004
	ValFragmentCycle        Code = 3005
	ValAnonymousNotAlone    Code = 3006
	ValUnknownOperation     Code = 3007
	ValNoOperations         Code = 3008
	ValDuplicateVariable    Code = 3009

	// Analysis
	AnaDepthLimit      Code = 4001
	AnaComplexityLimit Code = 4002
	AnaAliasLimit      Code = 4003
	AnaInternal        Code = 4999
)

func (c Code) String() string {
	switch {
	case c == UnknownCode:
		return "GQL0000"
	case c >= 1000 && c < 2000:
		return fmt.Sprintf("LEX%04d", uint16(c)-1000)
	case c >= 2000 && c < 3000:
		return fmt.Sprintf("SYN%04d", uint16(c)-2000)
	case c >= 3000 && c < 4000:
		return fmt.Sprintf("VAL%04d", uint16(c)-3000)
	case c >= 4000 && c < 5000:
		return fmt.Sprintf("ANA%04d", uint16(c)-4000)
	default:
		return fmt.Sprintf("GQL%04d", uint16(c))
	}
}
