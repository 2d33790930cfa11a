package parser

import (
	"fmt"

	"github.com/mica-lang/mica/internal/ast"
	"github.com/mica-lang/mica/internal/diagnostics"
	"github.com/mica-lang/mica/internal/token"
)

// parseItem parses one top-level declaration, or skips to the next item
// start on an unrecognized token.
func (p *Parser) parseItem() ast.Item {
	var vis *ast.VisibilityMarker
	if p.curTokenIs(token.PUB) {
		vis = &ast.VisibilityMarker{Token: p.curToken}
		p.nextToken()
	}

	switch p.curToken.Type {
	case token.EXTERN, token.FN:
		return p.parseFunctionDef(vis)
	case token.STRUCT:
		return p.parseStructDef(vis)
	case token.TYPE:
		return p.parseTypeAliasDef(vis)
	case token.CONST:
		return p.parseConstDef(vis)
	default:
		p.errorAt(p.curToken, diagnostics.ErrP002,
			fmt.Sprintf("expected a declaration, found %q", p.curToken.Lexeme))
		p.skipToItemStart()
		return nil
	}
}

func (p *Parser) parseFunctionDef(vis *ast.VisibilityMarker) *ast.FunctionDef {
	fn := &ast.FunctionDef{Vis: vis}

	if p.curTokenIs(token.EXTERN) {
		fn.IsExtern = true
		p.nextToken()
		if !p.curTokenIs(token.FN) {
			p.errorAt(p.curToken, diagnostics.ErrP002, "expected `fn` after `extern`")
			p.skipToItemStart()
			return fn
		}
	}
	fn.Token = p.curToken // the 'fn' token

	if p.peekTokenIs(token.IDENT) {
		p.nextToken()
		fn.Name = &ast.Name{Token: p.curToken, Value: p.curToken.Lexeme}
	} else {
		p.peekError(token.IDENT)
	}

	if !p.expectPeek(token.LPAREN) {
		p.skipToItemStart()
		return fn
	}
	fn.Params = p.parseParamList()

	if p.peekTokenIs(token.ARROW) {
		p.nextToken()
		p.nextToken()
		fn.RetType = p.parseType()
	}

	switch {
	case p.peekTokenIs(token.LBRACE):
		p.nextToken()
		fn.Body = p.parseBlock()
	case p.peekTokenIs(token.SEMICOLON):
		p.nextToken()
	default:
		p.peekError(token.LBRACE)
		p.skipToItemStart()
		return fn
	}

	p.nextToken()
	return fn
}

// parseParamList parses `( param, ... )` with curToken on '('.
func (p *Parser) parseParamList() []*ast.Param {
	var params []*ast.Param
	for !p.peekTokenIs(token.RPAREN) && !p.peekTokenIs(token.EOF) {
		p.nextToken()
		param := &ast.Param{Token: p.curToken}
		if p.curTokenIs(token.MUT) {
			param.Mut = true
			p.nextToken()
		}
		if p.curTokenIs(token.IDENT) {
			param.Name = &ast.Name{Token: p.curToken, Value: p.curToken.Lexeme}
		} else {
			p.errorAt(p.curToken, diagnostics.ErrP001,
				fmt.Sprintf("expected a parameter name, found %q", p.curToken.Lexeme))
		}
		if p.peekTokenIs(token.COLON) {
			p.nextToken()
			p.nextToken()
			param.Ascribed = p.parseType()
		}
		params = append(params, param)
		if !p.peekTokenIs(token.RPAREN) && !p.expectPeek(token.COMMA) {
			break
		}
	}
	p.expectPeek(token.RPAREN)
	return params
}

func (p *Parser) parseStructDef(vis *ast.VisibilityMarker) *ast.StructDef {
	sd := &ast.StructDef{Token: p.curToken, Vis: vis, Kind: ast.StructUnit}

	// Optional memory specifier: struct(gc) / struct(value).
	if p.peekTokenIs(token.LPAREN) {
		p.nextToken()
		p.nextToken()
		switch p.curToken.Lexeme {
		case "gc":
			sd.Memory = ast.MemoryGC
		case "value":
			sd.Memory = ast.MemoryValue
		default:
			p.errorAt(p.curToken, diagnostics.ErrP001, "expected memory specifier `gc` or `value`")
		}
		p.expectPeek(token.RPAREN)
	}

	if p.peekTokenIs(token.IDENT) {
		p.nextToken()
		sd.Name = &ast.Name{Token: p.curToken, Value: p.curToken.Lexeme}
	} else {
		p.peekError(token.IDENT)
	}

	switch {
	case p.peekTokenIs(token.LBRACE):
		p.nextToken()
		sd.Kind = ast.StructRecord
		sd.RecordFields = p.parseRecordFields()
	case p.peekTokenIs(token.LPAREN):
		p.nextToken()
		sd.Kind = ast.StructTuple
		sd.TupleFields = p.parseTupleFields()
		if p.peekTokenIs(token.SEMICOLON) {
			p.nextToken()
		}
	case p.peekTokenIs(token.SEMICOLON):
		p.nextToken()
	default:
		p.errorAt(p.peekToken, diagnostics.ErrP001, "expected `;`, `{`, or `(`")
	}

	p.nextToken()
	return sd
}

// parseRecordFields parses `{ name: type, ... }` with curToken on '{'.
func (p *Parser) parseRecordFields() []*ast.RecordFieldDef {
	var fields []*ast.RecordFieldDef
	for !p.peekTokenIs(token.RBRACE) && !p.peekTokenIs(token.EOF) {
		p.nextToken()
		field := &ast.RecordFieldDef{Token: p.curToken}
		if p.curTokenIs(token.IDENT) {
			field.Name = &ast.Name{Token: p.curToken, Value: p.curToken.Lexeme}
		} else {
			p.errorAt(p.curToken, diagnostics.ErrP001,
				fmt.Sprintf("expected a field name, found %q", p.curToken.Lexeme))
		}
		if p.expectPeek(token.COLON) {
			p.nextToken()
			field.Ascribed = p.parseType()
		}
		fields = append(fields, field)
		if !p.peekTokenIs(token.RBRACE) && !p.expectPeek(token.COMMA) {
			break
		}
	}
	p.expectPeek(token.RBRACE)
	return fields
}

// parseTupleFields parses `( type, ... )` with curToken on '('.
func (p *Parser) parseTupleFields() []*ast.TupleFieldDef {
	var fields []*ast.TupleFieldDef
	for !p.peekTokenIs(token.RPAREN) && !p.peekTokenIs(token.EOF) {
		p.nextToken()
		fields = append(fields, &ast.TupleFieldDef{Token: p.curToken, TypeRef: p.parseType()})
		if !p.peekTokenIs(token.RPAREN) && !p.expectPeek(token.COMMA) {
			break
		}
	}
	p.expectPeek(token.RPAREN)
	return fields
}

func (p *Parser) parseTypeAliasDef(vis *ast.VisibilityMarker) *ast.TypeAliasDef {
	ta := &ast.TypeAliasDef{Token: p.curToken, Vis: vis}

	if p.peekTokenIs(token.IDENT) {
		p.nextToken()
		ta.Name = &ast.Name{Token: p.curToken, Value: p.curToken.Lexeme}
	} else {
		p.peekError(token.IDENT)
	}

	if p.peekTokenIs(token.ASSIGN) {
		p.nextToken()
		p.nextToken()
		ta.TypeRef = p.parseType()
	}
	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}

	p.nextToken()
	return ta
}

func (p *Parser) parseConstDef(vis *ast.VisibilityMarker) *ast.ConstDef {
	cd := &ast.ConstDef{Token: p.curToken, Vis: vis}

	if p.peekTokenIs(token.IDENT) {
		p.nextToken()
		cd.Name = &ast.Name{Token: p.curToken, Value: p.curToken.Lexeme}
	} else {
		p.peekError(token.IDENT)
	}

	if p.peekTokenIs(token.COLON) {
		p.nextToken()
		p.nextToken()
		cd.Ascribed = p.parseType()
	}

	if p.expectPeek(token.ASSIGN) {
		p.nextToken()
		cd.Value = p.parseExpression(precLowest)
	}
	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}

	p.nextToken()
	return cd
}
