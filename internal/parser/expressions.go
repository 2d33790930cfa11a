package parser

import (
	"fmt"
	"strconv"

	"github.com/mica-lang/mica/internal/ast"
	"github.com/mica-lang/mica/internal/diagnostics"
	"github.com/mica-lang/mica/internal/token"
)

// Operator precedence levels, lowest binds loosest.
const (
	precLowest = iota
	precAssign
	precEquality
	precComparison
	precSum
	precProduct
	precPostfix
)

var precedences = map[token.Type]int{
	token.ASSIGN: precAssign,
	token.EQ:     precEquality,
	token.NOT_EQ: precEquality,
	token.LT:     precComparison,
	token.GT:     precComparison,
	token.PLUS:   precSum,
	token.MINUS:  precSum,
	token.STAR:   precProduct,
	token.SLASH:  precProduct,
	token.DOT:    precPostfix,
	token.LPAREN: precPostfix,
}

func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peekToken.Type]; ok {
		return prec
	}
	return precLowest
}

// parseExpression parses with curToken on the expression's first token,
// leaving curToken on its last token.
func (p *Parser) parseExpression(precedence int) ast.Expression {
	left := p.parsePrimary()
	if left == nil {
		return nil
	}

	for precedence < p.peekPrecedence() {
		switch p.peekToken.Type {
		case token.DOT:
			p.nextToken()
			left = p.parseFieldExpr(left)
		case token.LPAREN:
			p.nextToken()
			left = p.parseCallExpr(left)
		case token.ASSIGN:
			p.nextToken()
			left = p.parseAssignExpr(left)
		default:
			p.nextToken()
			left = p.parseBinaryExpr(left)
		}
	}
	return left
}

func (p *Parser) parsePrimary() ast.Expression {
	switch p.curToken.Type {
	case token.IDENT:
		return &ast.PathExpr{Token: p.curToken, Segments: []string{p.curToken.Lexeme}}
	case token.INT:
		return p.parseIntegerLiteral()
	case token.FLOAT:
		return p.parseFloatLiteral()
	case token.STRING:
		return p.parseStringLiteral()
	case token.TRUE:
		return &ast.BooleanLiteral{Token: p.curToken, Value: true}
	case token.FALSE:
		return &ast.BooleanLiteral{Token: p.curToken, Value: false}
	case token.LPAREN:
		p.nextToken()
		expr := p.parseExpression(precLowest)
		p.expectPeek(token.RPAREN)
		return expr
	default:
		p.errorAt(p.curToken, diagnostics.ErrP001,
			fmt.Sprintf("expected an expression, found %q", p.curToken.Lexeme))
		return nil
	}
}

func (p *Parser) parseIntegerLiteral() ast.Expression {
	lit := &ast.IntegerLiteral{Token: p.curToken}
	value, err := strconv.ParseInt(stripUnderscores(p.curToken.Lexeme), 10, 64)
	if err != nil {
		p.errorAt(p.curToken, diagnostics.ErrP001,
			fmt.Sprintf("cannot parse %q as an integer", p.curToken.Lexeme))
	}
	lit.Value = value
	return lit
}

func (p *Parser) parseFloatLiteral() ast.Expression {
	lit := &ast.FloatLiteral{Token: p.curToken}
	value, err := strconv.ParseFloat(stripUnderscores(p.curToken.Lexeme), 64)
	if err != nil {
		p.errorAt(p.curToken, diagnostics.ErrP001,
			fmt.Sprintf("cannot parse %q as a float", p.curToken.Lexeme))
	}
	lit.Value = value
	return lit
}

func (p *Parser) parseStringLiteral() ast.Expression {
	lit := &ast.StringLiteral{Token: p.curToken}
	if value, err := strconv.Unquote(p.curToken.Lexeme); err == nil {
		lit.Value = value
	} else {
		lit.Value = p.curToken.Lexeme
	}
	return lit
}

// parseFieldExpr parses `.name` or `.0` with curToken on '.'.
func (p *Parser) parseFieldExpr(base ast.Expression) ast.Expression {
	fe := &ast.FieldExpr{Token: p.curToken, Base: base}
	if p.peekTokenIs(token.IDENT) || p.peekTokenIs(token.INT) {
		p.nextToken()
		fe.Field = &ast.Name{Token: p.curToken, Value: p.curToken.Lexeme}
	} else {
		p.peekError(token.IDENT)
	}
	return fe
}

// parseCallExpr parses `(args)` with curToken on '('.
func (p *Parser) parseCallExpr(callee ast.Expression) ast.Expression {
	ce := &ast.CallExpr{Token: p.curToken, Callee: callee}
	for !p.peekTokenIs(token.RPAREN) && !p.peekTokenIs(token.EOF) {
		p.nextToken()
		if arg := p.parseExpression(precLowest); arg != nil {
			ce.Args = append(ce.Args, arg)
		}
		if !p.peekTokenIs(token.RPAREN) && !p.expectPeek(token.COMMA) {
			break
		}
	}
	p.expectPeek(token.RPAREN)
	return ce
}

// parseAssignExpr parses `= value` with curToken on '='. Right-associative.
func (p *Parser) parseAssignExpr(target ast.Expression) ast.Expression {
	ae := &ast.AssignExpr{Token: p.curToken, Target: target}
	p.nextToken()
	ae.Value = p.parseExpression(precAssign - 1)
	return ae
}

// parseBinaryExpr parses `op right` with curToken on the operator.
func (p *Parser) parseBinaryExpr(left ast.Expression) ast.Expression {
	be := &ast.BinaryExpr{Token: p.curToken, Op: p.curToken.Lexeme, Left: left}
	precedence := precedences[p.curToken.Type]
	p.nextToken()
	be.Right = p.parseExpression(precedence)
	return be
}

func stripUnderscores(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '_' {
			out = append(out, s[i])
		}
	}
	return string(out)
}
