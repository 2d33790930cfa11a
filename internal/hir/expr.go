package hir

import (
	"github.com/mica-lang/mica/internal/arena"
	"github.com/mica-lang/mica/internal/ast"
)

// ExprID identifies one expression within a Body.
type ExprID = arena.Idx[Expr]

// PatID identifies one pattern within a Body.
type PatID = arena.Idx[Pat]

// ExprKind tags the closed set of lowered expression forms.
type ExprKind uint8

const (
	ExprMissing ExprKind = iota
	ExprPath
	ExprField
	ExprCall
	ExprBinary
	ExprLiteral
	ExprBlock
)

// LiteralKind tags literal expressions.
type LiteralKind uint8

const (
	LitInt LiteralKind = iota
	LitFloat
	LitBool
	LitString
)

// Literal is the lowered value of a literal expression.
type Literal struct {
	Kind   LiteralKind
	Int    int64
	Float  float64
	Bool   bool
	String string
}

// Expr is one lowered expression. Which fields are meaningful depends on
// Kind; the union is closed and matched exhaustively.
type Expr struct {
	Kind ExprKind

	Path Path // ExprPath

	Base      ExprID // ExprField
	FieldName Name   // ExprField

	Callee ExprID   // ExprCall
	Args   []ExprID // ExprCall

	Op  string // ExprBinary; "=" is assignment
	Lhs ExprID // ExprBinary
	Rhs ExprID // ExprBinary

	Lit Literal // ExprLiteral

	Statements []Stmt // ExprBlock
}

// IsAssignment reports whether the expression is an assignment operation.
func (e *Expr) IsAssignment() bool { return e.Kind == ExprBinary && e.Op == "=" }

// StmtKind tags block statements.
type StmtKind uint8

const (
	StmtLet StmtKind = iota
	StmtExpr
	StmtReturn
)

// Stmt is one statement inside a lowered block.
type Stmt struct {
	Kind StmtKind
	Pat  PatID  // StmtLet binding
	Expr ExprID // initializer, expression, or return value
}

// PatKind tags lowered patterns.
type PatKind uint8

const (
	PatMissing PatKind = iota
	PatWild
	PatBind
)

// BindingAnnotation is the declared binding mode of a PatBind.
type BindingAnnotation uint8

const (
	BindingUnannotated BindingAnnotation = iota
	BindingMutable
)

// Pat is one lowered pattern.
type Pat struct {
	Kind PatKind
	Name Name // PatBind
	Mode BindingAnnotation
}

// Body is the lowered expression body of a function: expression and pattern
// arenas, the parameter bindings, and the root block.
type Body struct {
	Owner  FunctionID
	Exprs  arena.Arena[Expr]
	Pats   arena.Arena[Pat]
	Params []PatID
	Root   ExprID
}

// Expr returns the expression for id.
func (b *Body) Expr(id ExprID) *Expr { return b.Exprs.Get(id) }

// Pat returns the pattern for id.
func (b *Body) Pat(id PatID) *Pat { return b.Pats.Get(id) }

// BodySourceMap correlates lowered expressions and patterns with their
// originating syntax nodes. Produced next to the Body and kept separate from
// it so the body itself stays independent of a live syntax tree.
type BodySourceMap struct {
	exprNodes map[ExprID]ast.Expression
	exprIDs   map[ast.Expression]ExprID
	patNodes  map[PatID]ast.Node
}

// ExprNode returns the syntax node that produced id.
func (m *BodySourceMap) ExprNode(id ExprID) (ast.Expression, bool) {
	n, ok := m.exprNodes[id]
	return n, ok
}

// ExprID returns the lowered id for a syntax expression.
func (m *BodySourceMap) ExprID(node ast.Expression) (ExprID, bool) {
	id, ok := m.exprIDs[node]
	return id, ok
}

// PatNode returns the syntax node that produced a pattern.
func (m *BodySourceMap) PatNode(id PatID) (ast.Node, bool) {
	n, ok := m.patNodes[id]
	return n, ok
}
