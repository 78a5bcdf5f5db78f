package parser

import (
	"fmt"

	"gqlcheck/internal/ast"
	"gqlcheck/internal/diag"
	"gqlcheck/internal/token"
)

// parseValue parses an input value. constOnly forbids variable references
// (used inside default values).
func (p *Parser) parseValue(constOnly bool) (ast.Value, bool) {
	tok := p.lx.Peek()

	switch tok.Kind {
	case token.Dollar:
		if constOnly {
			p.err(diag.SynExpectValue, tok.Span, "variables are not allowed in this position")
			return nil, false
		}
		p.advance()
		nameTok, ok := p.expectName("expected variable name after '$'")
		if !ok {
			return nil, false
		}
		v := &ast.Variable{Name: nameTok.Text}
		v.Loc = tok.Span.Cover(nameTok.Span)
		return v, true

	case token.IntValue:
		p.advance()
		v := &ast.IntValue{Raw: tok.Text}
		v.Loc = tok.Span
		return v, true

	case token.FloatValue:
		p.advance()
		v := &ast.FloatValue{Raw: tok.Text}
		v.Loc = tok.Span
		return v, true

	case token.StringValue, token.BlockStringValue:
		p.advance()
		v := &ast.StringValue{Raw: tok.Text, Block: tok.Kind == token.BlockStringValue}
		v.Loc = tok.Span
		return v, true

	case token.Name:
		p.advance()
		switch tok.Text {
		case "true", "false":
			v := &ast.BooleanValue{Value: tok.Text == "true"}
			v.Loc = tok.Span
			return v, true
		case "null":
			v := &ast.NullValue{}
			v.Loc = tok.Span
			return v, true
		default:
			v := &ast.EnumValue{Name: tok.Text}
			v.Loc = tok.Span
			return v, true
		}

	case token.LBracket:
		return p.parseListValue(constOnly)

	case token.LBrace:
		return p.parseObjectValue(constOnly)

	default:
		p.err(diag.SynExpectValue, tok.Span, fmt.Sprintf("expected a value, found %s", describe(tok)))
		return nil, false
	}
}

func (p *Parser) parseListValue(constOnly bool) (ast.Value, bool) {
	open := p.advance() // '['
	v := &ast.ListValue{}
	v.Loc = open.Span

	for !p.at(token.RBracket) {
		if p.at(token.EOF) {
			p.err(diag.SynUnclosedBracket, open.Span, "unclosed '[' in list value")
			return nil, false
		}
		elem, ok := p.parseValue(constOnly)
		if !ok {
			return nil, false
		}
		v.Values = append(v.Values, elem)
	}

	closeTok := p.advance()
	v.Loc = v.Loc.Cover(closeTok.Span)
	return v, true
}

func (p *Parser) parseObjectValue(constOnly bool) (ast.Value, bool) {
	open := p.advance() // '{'
	v := &ast.ObjectValue{}
	v.Loc = open.Span

	for !p.at(token.RBrace) {
		if p.at(token.EOF) {
			p.err(diag.SynUnclosedBrace, open.Span, "unclosed '{' in object value")
			return nil, false
		}

		nameTok, ok := p.expectName("expected object field name")
		if !ok {
			return nil, false
		}
		if _, ok := p.expect(token.Colon, diag.SynUnexpectedToken, "expected ':' after object field name"); !ok {
			return nil, false
		}
		val, ok := p.parseValue(constOnly)
		if !ok {
			return nil, false
		}

		f := &ast.ObjectField{Name: nameTok.Text, Value: val}
		f.Loc = nameTok.Span.Cover(val.Span())
		v.Fields = append(v.Fields, f)
	}

	closeTok := p.advance()
	v.Loc = v.Loc.Cover(closeTok.Span)
	return v, true
}
