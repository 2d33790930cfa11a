package hir

import (
	"github.com/mica-lang/mica/internal/ast"
)

// bodyCollector lowers one function's syntax body into a Body plus its
// source map. Like the item-tree builder it never fails: malformed
// sub-expressions lower to ExprMissing.
type bodyCollector struct {
	body *Body
	src  *BodySourceMap
}

// LowerBody lowers the body of fn. Extern functions get an empty root block.
func LowerBody(db DefDB, fn FunctionID) (*Body, *BodySourceMap) {
	c := &bodyCollector{
		body: &Body{Owner: fn},
		src: &BodySourceMap{
			exprNodes: make(map[ExprID]ast.Expression),
			exprIDs:   make(map[ast.Expression]ExprID),
			patNodes:  make(map[PatID]ast.Node),
		},
	}

	node := FunctionSource(db, fn).Value

	for _, param := range node.Params {
		c.body.Params = append(c.body.Params, c.lowerParam(param))
	}

	if node.Body == nil {
		c.body.Root = c.body.Exprs.Alloc(Expr{Kind: ExprBlock})
	} else {
		c.body.Root = c.lowerBlock(node.Body)
	}
	return c.body, c.src
}

func (c *bodyCollector) lowerParam(param *ast.Param) PatID {
	pat := Pat{Kind: PatMissing}
	if param.Name != nil {
		pat = Pat{Kind: PatBind, Name: Name(param.Name.Value)}
		if param.Mut {
			pat.Mode = BindingMutable
		}
	}
	id := c.body.Pats.Alloc(pat)
	c.src.patNodes[id] = param
	return id
}

func (c *bodyCollector) lowerBlock(block *ast.Block) ExprID {
	stmts := make([]Stmt, 0, len(block.Statements))
	for _, stmt := range block.Statements {
		switch s := stmt.(type) {
		case *ast.LetStatement:
			pat := Pat{Kind: PatMissing}
			if s.Name != nil {
				pat = Pat{Kind: PatBind, Name: Name(s.Name.Value)}
				if s.Mut {
					pat.Mode = BindingMutable
				}
			}
			patID := c.body.Pats.Alloc(pat)
			c.src.patNodes[patID] = s
			stmts = append(stmts, Stmt{Kind: StmtLet, Pat: patID, Expr: c.lowerExprOpt(s.Value)})
		case *ast.ReturnStatement:
			stmts = append(stmts, Stmt{Kind: StmtReturn, Expr: c.lowerExprOpt(s.Value)})
		case *ast.ExprStatement:
			stmts = append(stmts, Stmt{Kind: StmtExpr, Expr: c.lowerExprOpt(s.Expr)})
		}
	}
	return c.body.Exprs.Alloc(Expr{Kind: ExprBlock, Statements: stmts})
}

func (c *bodyCollector) lowerExprOpt(node ast.Expression) ExprID {
	if node == nil {
		return c.body.Exprs.Alloc(Expr{Kind: ExprMissing})
	}
	return c.lowerExpr(node)
}

func (c *bodyCollector) lowerExpr(node ast.Expression) ExprID {
	var expr Expr
	switch n := node.(type) {
	case *ast.PathExpr:
		expr = Expr{Kind: ExprPath, Path: Path{Segments: n.Segments}}
	case *ast.FieldExpr:
		name := MissingName
		if n.Field != nil {
			name = Name(n.Field.Value)
		}
		expr = Expr{Kind: ExprField, Base: c.lowerExprOpt(n.Base), FieldName: name}
	case *ast.CallExpr:
		args := make([]ExprID, 0, len(n.Args))
		for _, arg := range n.Args {
			args = append(args, c.lowerExprOpt(arg))
		}
		expr = Expr{Kind: ExprCall, Callee: c.lowerExprOpt(n.Callee), Args: args}
	case *ast.AssignExpr:
		expr = Expr{Kind: ExprBinary, Op: "=", Lhs: c.lowerExprOpt(n.Target), Rhs: c.lowerExprOpt(n.Value)}
	case *ast.BinaryExpr:
		expr = Expr{Kind: ExprBinary, Op: n.Op, Lhs: c.lowerExprOpt(n.Left), Rhs: c.lowerExprOpt(n.Right)}
	case *ast.IntegerLiteral:
		expr = Expr{Kind: ExprLiteral, Lit: Literal{Kind: LitInt, Int: n.Value}}
	case *ast.FloatLiteral:
		expr = Expr{Kind: ExprLiteral, Lit: Literal{Kind: LitFloat, Float: n.Value}}
	case *ast.BooleanLiteral:
		expr = Expr{Kind: ExprLiteral, Lit: Literal{Kind: LitBool, Bool: n.Value}}
	case *ast.StringLiteral:
		expr = Expr{Kind: ExprLiteral, Lit: Literal{Kind: LitString, String: n.Value}}
	default:
		expr = Expr{Kind: ExprMissing}
	}

	id := c.body.Exprs.Alloc(expr)
	c.src.exprNodes[id] = node
	c.src.exprIDs[node] = id
	return id
}
