package parser

import (
	"fmt"

	"github.com/mica-lang/mica/internal/ast"
	"github.com/mica-lang/mica/internal/diagnostics"
	"github.com/mica-lang/mica/internal/lexer"
	"github.com/mica-lang/mica/internal/token"
)

// Parser is a hand-written recursive-descent parser. It never fails hard:
// malformed declarations produce nodes with missing children plus
// diagnostics, and parsing resumes at the next top-level keyword.
type Parser struct {
	l *lexer.Lexer

	curToken  token.Token
	peekToken token.Token

	errors []*diagnostics.Diagnostic
}

func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}
	// Fill curToken and peekToken.
	p.nextToken()
	p.nextToken()
	return p
}

// Errors returns the diagnostics accumulated so far.
func (p *Parser) Errors() []*diagnostics.Diagnostic { return p.errors }

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) curTokenIs(t token.Type) bool  { return p.curToken.Type == t }
func (p *Parser) peekTokenIs(t token.Type) bool { return p.peekToken.Type == t }

// expectPeek advances when the next token matches, otherwise records an
// error and stays put.
func (p *Parser) expectPeek(t token.Type) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.peekError(t)
	return false
}

func (p *Parser) peekError(t token.Type) {
	p.errors = append(p.errors, diagnostics.NewError(
		diagnostics.ErrP001,
		p.peekToken,
		fmt.Sprintf("expected %s, found %q", t, p.peekToken.Lexeme),
	))
}

func (p *Parser) errorAt(tok token.Token, code, msg string) {
	p.errors = append(p.errors, diagnostics.NewError(code, tok, msg))
}

// ParseFile parses a whole source file.
func (p *Parser) ParseFile(path string) *ast.File {
	file := &ast.File{Path: path}
	for !p.curTokenIs(token.EOF) {
		if item := p.parseItem(); item != nil {
			file.Items = append(file.Items, item)
		}
	}
	return file
}

// itemSync is the recovery set: tokens that can start a top-level item.
func itemStart(t token.Type) bool {
	switch t {
	case token.FN, token.STRUCT, token.TYPE, token.CONST, token.PUB, token.EXTERN, token.EOF:
		return true
	}
	return false
}

// skipToItemStart consumes tokens until the next plausible item start.
func (p *Parser) skipToItemStart() {
	p.nextToken()
	for !itemStart(p.curToken.Type) {
		p.nextToken()
	}
}
