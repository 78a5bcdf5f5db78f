package parser

import (
	"fmt"

	"gqlcheck/internal/ast"
	"gqlcheck/internal/diag"
	"gqlcheck/internal/token"
)

// parseDocument is the top-level loop: definitions until EOF.
func (p *Parser) parseDocument() *ast.Document {
	doc := &ast.Document{}
	startSpan := p.lx.Peek().Span

	for !p.at(token.EOF) {
		if !p.parseDefinition(doc) {
			p.resyncTop()
		}
	}

	doc.Loc = startSpan.Cover(p.lastSpan)
	return doc
}

// parseDefinition dispatches on the first token of a definition.
func (p *Parser) parseDefinition(doc *ast.Document) bool {
	tok := p.lx.Peek()

	switch {
	case tok.Kind == token.LBrace:
		// Anonymous query shorthand.
		op := &ast.OperationDefinition{Op: ast.Query}
		op.Loc = tok.Span
		set, ok := p.parseSelectionSet()
		if !ok {
			return false
		}
		op.SelectionSet = set
		op.Loc = op.Loc.Cover(set.Span())
		doc.Operations = append(doc.Operations, op)
		return true

	case tok.IsName("query"), tok.IsName("mutation"), tok.IsName("subscription"):
		return p.parseOperation(doc)

	case tok.IsName("fragment"):
		return p.parseFragment(doc)

	default:
		p.err(diag.SynExpectDefinition, tok.Span,
			fmt.Sprintf("expected an operation or fragment definition, found %s", describe(tok)))
		return false
	}
}

func (p *Parser) parseOperation(doc *ast.Document) bool {
	kw := p.advance()
	op := &ast.OperationDefinition{}
	op.Loc = kw.Span

	switch kw.Text {
	case "query":
		op.Op = ast.Query
	case "mutation":
		op.Op = ast.Mutation
	case "subscription":
		op.Op = ast.Subscription
	}

	if p.at(token.Name) {
		nameTok := p.advance()
		op.Name = nameTok.Text
		op.NameSpan = nameTok.Span
	}

	if p.at(token.LParen) {
		vars, ok := p.parseVariableDefinitions()
		if !ok {
			return false
		}
		op.Variables = vars
	}

	dirs, ok := p.parseDirectives()
	if !ok {
		return false
	}
	op.Directives = dirs

	set, ok := p.parseSelectionSet()
	if !ok {
		return false
	}
	op.SelectionSet = set
	op.Loc = op.Loc.Cover(set.Span())

	doc.Operations = append(doc.Operations, op)
	return true
}

func (p *Parser) parseFragment(doc *ast.Document) bool {
	kw := p.advance()
	fr := &ast.FragmentDefinition{}
	fr.Loc = kw.Span

	nameTok, ok := p.expectName("expected fragment name")
	if !ok {
		return false
	}
	if nameTok.Text == "on" {
		p.err(diag.SynBadFragmentName, nameTok.Span, "fragment name cannot be 'on'")
		return false
	}
	fr.Name = nameTok.Text
	fr.NameSpan = nameTok.Span

	if !p.atName("on") {
		p.err(diag.SynExpectOn, p.lx.Peek().Span, "expected 'on' after fragment name")
		return false
	}
	p.advance()

	condTok, ok := p.expectName("expected type condition")
	if !ok {
		return false
	}
	fr.TypeCondition = condTok.Text

	dirs, ok := p.parseDirectives()
	if !ok {
		return false
	}
	fr.Directives = dirs

	set, ok := p.parseSelectionSet()
	if !ok {
		return false
	}
	fr.SelectionSet = set
	fr.Loc = fr.Loc.Cover(set.Span())

	doc.Fragments = append(doc.Fragments, fr)
	return true
}

func (p *Parser) parseVariableDefinitions() ([]*ast.VariableDefinition, bool) {
	open := p.advance() // '('
	var out []*ast.VariableDefinition

	for !p.at(token.RParen) {
		if p.at(token.EOF) {
			p.err(diag.SynUnclosedParen, open.Span, "unclosed '(' in variable definitions")
			return nil, false
		}

		v := &ast.VariableDefinition{}
		dollar, ok := p.expect(token.Dollar, diag.SynUnexpectedToken, "expected '$' to start a variable definition")
		if !ok {
			return nil, false
		}
		v.Loc = dollar.Span

		nameTok, ok := p.expectName("expected variable name")
		if !ok {
			return nil, false
		}
		v.Name = nameTok.Text

		if _, ok := p.expect(token.Colon, diag.SynUnexpectedToken, "expected ':' after variable name"); !ok {
			return nil, false
		}

		typ, ok := p.parseType()
		if !ok {
			return nil, false
		}
		v.Type = typ
		v.Loc = v.Loc.Cover(typ.Span())

		if p.at(token.Equals) {
			p.advance()
			def, ok := p.parseValue(true)
			if !ok {
				return nil, false
			}
			v.Default = def
			v.Loc = v.Loc.Cover(def.Span())
		}

		dirs, ok := p.parseDirectives()
		if !ok {
			return nil, false
		}
		v.Directives = dirs

		out = append(out, v)
	}

	p.advance() // ')'
	return out, true
}

func (p *Parser) parseDirectives() ([]*ast.Directive, bool) {
	var out []*ast.Directive
	for p.at(token.At) {
		at := p.advance()
		d := &ast.Directive{}
		d.Loc = at.Span

		nameTok, ok := p.expectName("expected directive name after '@'")
		if !ok {
			return nil, false
		}
		d.Name = nameTok.Text
		d.Loc = d.Loc.Cover(nameTok.Span)

		if p.at(token.LParen) {
			args, ok := p.parseArguments()
			if !ok {
				return nil, false
			}
			d.Arguments = args
			d.Loc = d.Loc.Cover(p.lastSpan)
		}

		out = append(out, d)
	}
	return out, true
}

func describe(tok token.Token) string {
	switch tok.Kind {
	case token.EOF:
		return "end of input"
	case token.Name:
		return fmt.Sprintf("%q", tok.Text)
	default:
		return fmt.Sprintf("%q", tok.Kind.String())
	}
}
