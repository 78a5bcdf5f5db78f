package parser

import (
	"gqlcheck/internal/ast"
	"gqlcheck/internal/diag"
	"gqlcheck/internal/token"
)

// parseType parses NamedType, ListType, and NonNullType references.
func (p *Parser) parseType() (ast.Type, bool) {
	var inner ast.Type

	switch {
	case p.at(token.LBracket):
		open := p.advance()
		elem, ok := p.parseType()
		if !ok {
			return nil, false
		}
		closeTok, ok := p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ']' to close list type")
		if !ok {
			return nil, false
		}
		lt := &ast.ListType{Elem: elem}
		lt.Loc = open.Span.Cover(closeTok.Span)
		inner = lt

	case p.at(token.Name):
		nameTok := p.advance()
		nt := &ast.NamedType{Ident: nameTok.Text}
		nt.Loc = nameTok.Span
		inner = nt

	default:
		p.err(diag.SynExpectType, p.lx.Peek().Span, "expected a type reference")
		return nil, false
	}

	if p.at(token.Bang) {
		bang := p.advance()
		nn := &ast.NonNullType{Inner: inner}
		nn.Loc = inner.Span().Cover(bang.Span)
		return nn, true
	}
	return inner, true
}
