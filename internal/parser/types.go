package parser

import (
	"fmt"

	"github.com/mica-lang/mica/internal/ast"
	"github.com/mica-lang/mica/internal/diagnostics"
	"github.com/mica-lang/mica/internal/token"
)

// parseType parses a type expression with curToken on its first token.
// Returns nil on a malformed type; the caller lowers nil to an error
// sentinel.
func (p *Parser) parseType() ast.Type {
	switch p.curToken.Type {
	case token.IDENT:
		return p.parsePathType()
	case token.LPAREN:
		return p.parseTupleType()
	case token.BANG:
		return &ast.NeverType{Token: p.curToken}
	case token.FN:
		return p.parseFnPointerType()
	default:
		p.errorAt(p.curToken, diagnostics.ErrP001,
			fmt.Sprintf("expected a type, found %q", p.curToken.Lexeme))
		return nil
	}
}

func (p *Parser) parsePathType() ast.Type {
	pt := &ast.PathType{Token: p.curToken, Segments: []string{p.curToken.Lexeme}}
	for p.peekTokenIs(token.DOT) {
		p.nextToken()
		if !p.expectPeek(token.IDENT) {
			break
		}
		pt.Segments = append(pt.Segments, p.curToken.Lexeme)
	}
	return pt
}

func (p *Parser) parseTupleType() ast.Type {
	tt := &ast.TupleType{Token: p.curToken}
	for !p.peekTokenIs(token.RPAREN) && !p.peekTokenIs(token.EOF) {
		p.nextToken()
		if el := p.parseType(); el != nil {
			tt.Elements = append(tt.Elements, el)
		}
		if !p.peekTokenIs(token.RPAREN) && !p.expectPeek(token.COMMA) {
			break
		}
	}
	p.expectPeek(token.RPAREN)
	return tt
}

func (p *Parser) parseFnPointerType() ast.Type {
	ft := &ast.FnPointerType{Token: p.curToken}
	if !p.expectPeek(token.LPAREN) {
		return ft
	}
	for !p.peekTokenIs(token.RPAREN) && !p.peekTokenIs(token.EOF) {
		p.nextToken()
		if param := p.parseType(); param != nil {
			ft.Params = append(ft.Params, param)
		}
		if !p.peekTokenIs(token.RPAREN) && !p.expectPeek(token.COMMA) {
			break
		}
	}
	p.expectPeek(token.RPAREN)
	if p.peekTokenIs(token.ARROW) {
		p.nextToken()
		p.nextToken()
		ft.Ret = p.parseType()
	}
	return ft
}
