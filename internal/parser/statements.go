package parser

import (
	"github.com/mica-lang/mica/internal/ast"
	"github.com/mica-lang/mica/internal/token"
)

// parseBlock parses `{ stmt* }` with curToken on '{', leaving curToken on
// the closing '}'.
func (p *Parser) parseBlock() *ast.Block {
	block := &ast.Block{Token: p.curToken}
	p.nextToken()
	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		if stmt := p.parseStatement(); stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.nextToken()
	}
	return block
}

func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Type {
	case token.LET:
		return p.parseLetStatement()
	case token.RETURN:
		return p.parseReturnStatement()
	case token.SEMICOLON:
		return nil
	default:
		return p.parseExprStatement()
	}
}

func (p *Parser) parseLetStatement() ast.Statement {
	ls := &ast.LetStatement{Token: p.curToken}

	if p.peekTokenIs(token.MUT) {
		ls.Mut = true
		p.nextToken()
	}
	if p.peekTokenIs(token.IDENT) {
		p.nextToken()
		ls.Name = &ast.Name{Token: p.curToken, Value: p.curToken.Lexeme}
	} else {
		p.peekError(token.IDENT)
	}

	if p.peekTokenIs(token.COLON) {
		p.nextToken()
		p.nextToken()
		ls.Ascribed = p.parseType()
	}
	if p.peekTokenIs(token.ASSIGN) {
		p.nextToken()
		p.nextToken()
		ls.Value = p.parseExpression(precLowest)
	}
	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}
	return ls
}

func (p *Parser) parseReturnStatement() ast.Statement {
	rs := &ast.ReturnStatement{Token: p.curToken}
	if !p.peekTokenIs(token.SEMICOLON) && !p.peekTokenIs(token.RBRACE) {
		p.nextToken()
		rs.Value = p.parseExpression(precLowest)
	}
	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}
	return rs
}

func (p *Parser) parseExprStatement() ast.Statement {
	es := &ast.ExprStatement{Token: p.curToken}
	es.Expr = p.parseExpression(precLowest)
	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}
	return es
}
