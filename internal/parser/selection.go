package parser

import (
	"gqlcheck/internal/ast"
	"gqlcheck/internal/diag"
	"gqlcheck/internal/token"
)

func (p *Parser) parseSelectionSet() (*ast.SelectionSet, bool) {
	open, ok := p.expect(token.LBrace, diag.SynExpectSelectionSet, "expected '{' to start a selection set")
	if !ok {
		return nil, false
	}

	set := &ast.SelectionSet{}
	set.Loc = open.Span

	for !p.at(token.RBrace) {
		if p.at(token.EOF) {
			p.err(diag.SynUnclosedBrace, open.Span, "unclosed '{' in selection set")
			return nil, false
		}
		sel, ok := p.parseSelection()
		if !ok {
			return nil, false
		}
		set.Selections = append(set.Selections, sel)
	}

	closeTok := p.advance() // '}'
	set.Loc = set.Loc.Cover(closeTok.Span)

	if len(set.Selections) == 0 {
		p.err(diag.SynEmptySelectionSet, set.Loc, "selection set cannot be empty")
		return nil, false
	}
	return set, true
}

func (p *Parser) parseSelection() (ast.Selection, bool) {
	if p.at(token.Spread) {
		return p.parseSpreadOrInline()
	}
	return p.parseField()
}

func (p *Parser) parseField() (*ast.Field, bool) {
	nameTok, ok := p.expectName("expected a field name")
	if !ok {
		return nil, false
	}

	f := &ast.Field{}
	f.Loc = nameTok.Span
	f.Name = nameTok.Text
	f.NameSpan = nameTok.Span

	// alias: name ':' name
	if p.at(token.Colon) {
		p.advance()
		realTok, ok := p.expectName("expected field name after alias")
		if !ok {
			return nil, false
		}
		f.Alias = nameTok.Text
		f.Name = realTok.Text
		f.NameSpan = realTok.Span
		f.Loc = f.Loc.Cover(realTok.Span)
	}

	if p.at(token.LParen) {
		args, ok := p.parseArguments()
		if !ok {
			return nil, false
		}
		f.Arguments = args
		f.Loc = f.Loc.Cover(p.lastSpan)
	}

	dirs, ok := p.parseDirectives()
	if !ok {
		return nil, false
	}
	f.Directives = dirs

	if p.at(token.LBrace) {
		set, ok := p.parseSelectionSet()
		if !ok {
			return nil, false
		}
		f.SelectionSet = set
		f.Loc = f.Loc.Cover(set.Span())
	}

	return f, true
}

func (p *Parser) parseSpreadOrInline() (ast.Selection, bool) {
	spread := p.advance() // '...'

	// "... on Type { ... }" or "... @dir { ... }" or "... { ... }" → inline fragment.
	if p.atName("on") || p.at(token.At) || p.at(token.LBrace) {
		inline := &ast.InlineFragment{}
		inline.Loc = spread.Span

		if p.atName("on") {
			p.advance()
			condTok, ok := p.expectName("expected type condition after 'on'")
			if !ok {
				return nil, false
			}
			inline.TypeCondition = condTok.Text
		}

		dirs, ok := p.parseDirectives()
		if !ok {
			return nil, false
		}
		inline.Directives = dirs

		set, ok := p.parseSelectionSet()
		if !ok {
			return nil, false
		}
		inline.SelectionSet = set
		inline.Loc = inline.Loc.Cover(set.Span())
		return inline, true
	}

	nameTok, ok := p.expectName("expected fragment name after '...'")
	if !ok {
		return nil, false
	}

	fs := &ast.FragmentSpread{}
	fs.Loc = spread.Span.Cover(nameTok.Span)
	fs.Name = nameTok.Text
	fs.NameSpan = nameTok.Span

	dirs, ok := p.parseDirectives()
	if !ok {
		return nil, false
	}
	fs.Directives = dirs
	return fs, true
}

func (p *Parser) parseArguments() ([]*ast.Argument, bool) {
	open := p.advance() // '('
	var out []*ast.Argument

	for !p.at(token.RParen) {
		if p.at(token.EOF) {
			p.err(diag.SynUnclosedParen, open.Span, "unclosed '(' in arguments")
			return nil, false
		}

		nameTok, ok := p.expectName("expected argument name")
		if !ok {
			return nil, false
		}
		if _, ok := p.expect(token.Colon, diag.SynUnexpectedToken, "expected ':' after argument name"); !ok {
			return nil, false
		}
		val, ok := p.parseValue(false)
		if !ok {
			return nil, false
		}

		arg := &ast.Argument{}
		arg.Loc = nameTok.Span.Cover(val.Span())
		arg.Name = nameTok.Text
		arg.Value = val
		out = append(out, arg)
	}

	p.advance() // ')'
	return out, true
}
