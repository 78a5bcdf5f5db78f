package parser

import (
	"slices"

	"gqlcheck/internal/ast"
	"gqlcheck/internal/diag"
	"gqlcheck/internal/lexer"
	"gqlcheck/internal/source"
	"gqlcheck/internal/token"
)

type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough reports whether the error budget is exhausted.
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

// Parser holds the state for parsing one executable document.
type Parser struct {
	lx       *lexer.Lexer
	file     *source.File
	opts     Options
	lastSpan source.Span // span of the last consumed token
}

// ParseDocument parses one executable document. Syntax errors are reported
// through opts.Reporter; the returned document holds everything that parsed
// cleanly before or between errors.
func ParseDocument(file *source.File, opts Options) *ast.Document {
	p := Parser{
		lx:   lexer.New(file, lexer.Options{Reporter: opts.Reporter}),
		file: file,
		opts: opts,
		lastSpan: source.Span{
			File: file.ID,
		},
	}
	return p.parseDocument()
}

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

func (p *Parser) atName(text string) bool {
	tok := p.lx.Peek()
	return tok.Kind == token.Name && tok.Text == text
}

func (p *Parser) atAny(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.lx.Peek().Kind)
}

func (p *Parser) advance() token.Token {
	tok := p.lx.Next()
	p.lastSpan = tok.Span
	return tok
}

func (p *Parser) err(code diag.Code, sp source.Span, msg string) {
	p.opts.CurrentErrors++
	if p.opts.Reporter != nil && !p.enoughAlready() {
		p.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}

func (p *Parser) enoughAlready() bool {
	if p.opts.MaxErrors == 0 {
		return false
	}
	return p.opts.CurrentErrors > p.opts.MaxErrors
}

// expect consumes the next token when it matches, reporting otherwise.
func (p *Parser) expect(k token.Kind, code diag.Code, msg string) (token.Token, bool) {
	tok := p.lx.Peek()
	if tok.Kind != k {
		p.err(code, tok.Span, msg)
		return tok, false
	}
	return p.advance(), true
}

// expectName consumes a Name token, reporting otherwise.
func (p *Parser) expectName(msg string) (token.Token, bool) {
	return p.expect(token.Name, diag.SynExpectName, msg)
}

// resyncTop skips tokens until a plausible definition start or EOF.
func (p *Parser) resyncTop() {
	for {
		tok := p.lx.Peek()
		if tok.Kind == token.EOF {
			return
		}
		if tok.Kind == token.LBrace {
			return
		}
		if tok.Kind == token.Name {
			switch tok.Text {
			case "query", "mutation", "subscription", "fragment":
				return
			}
		}
		p.advance()
	}
}
