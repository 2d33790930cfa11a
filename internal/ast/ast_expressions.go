package ast

import (
	"github.com/mica-lang/mica/internal/token"
)

// Block represents a brace-delimited statement list.
type Block struct {
	Token      token.Token // the '{' token
	Statements []Statement
}

func (b *Block) TokenLiteral() string { return b.Token.Lexeme }
func (b *Block) GetToken() token.Token {
	if b == nil {
		return token.Token{}
	}
	return b.Token
}

// LetStatement represents a local binding, e.g. `let mut x: i32 = 0;`.
type LetStatement struct {
	Token    token.Token // the 'let' token
	Mut      bool
	Name     *Name
	Ascribed Type       // optional
	Value    Expression // optional
}

func (ls *LetStatement) statementNode()       {}
func (ls *LetStatement) TokenLiteral() string { return ls.Token.Lexeme }
func (ls *LetStatement) GetToken() token.Token {
	if ls == nil {
		return token.Token{}
	}
	return ls.Token
}

// ReturnStatement represents `return expr;`.
type ReturnStatement struct {
	Token token.Token // the 'return' token
	Value Expression  // optional
}

func (rs *ReturnStatement) statementNode()       {}
func (rs *ReturnStatement) TokenLiteral() string { return rs.Token.Lexeme }
func (rs *ReturnStatement) GetToken() token.Token {
	if rs == nil {
		return token.Token{}
	}
	return rs.Token
}

// ExprStatement wraps an expression used in statement position.
type ExprStatement struct {
	Token token.Token
	Expr  Expression
}

func (es *ExprStatement) statementNode()       {}
func (es *ExprStatement) TokenLiteral() string { return es.Token.Lexeme }
func (es *ExprStatement) GetToken() token.Token {
	if es == nil {
		return token.Token{}
	}
	return es.Token
}

// PathExpr references a named value, e.g. `x` or `geometry.ORIGIN`.
type PathExpr struct {
	Token    token.Token // first segment token
	Segments []string
}

func (pe *PathExpr) expressionNode()      {}
func (pe *PathExpr) TokenLiteral() string { return pe.Token.Lexeme }
func (pe *PathExpr) GetToken() token.Token {
	if pe == nil {
		return token.Token{}
	}
	return pe.Token
}

// FieldExpr represents a field projection, e.g. `base.f` or `pair.0`.
type FieldExpr struct {
	Token token.Token // the '.' token
	Base  Expression
	Field *Name
}

func (fe *FieldExpr) expressionNode()      {}
func (fe *FieldExpr) TokenLiteral() string { return fe.Token.Lexeme }
func (fe *FieldExpr) GetToken() token.Token {
	if fe == nil {
		return token.Token{}
	}
	return fe.Token
}

// CallExpr represents a call, e.g. `f(1, 2)`.
type CallExpr struct {
	Token  token.Token // the '(' token
	Callee Expression
	Args   []Expression
}

func (ce *CallExpr) expressionNode()      {}
func (ce *CallExpr) TokenLiteral() string { return ce.Token.Lexeme }
func (ce *CallExpr) GetToken() token.Token {
	if ce == nil {
		return token.Token{}
	}
	return ce.Token
}

// AssignExpr represents an assignment, e.g. `x.f = 1`.
type AssignExpr struct {
	Token  token.Token // the '=' token
	Target Expression
	Value  Expression
}

func (ae *AssignExpr) expressionNode()      {}
func (ae *AssignExpr) TokenLiteral() string { return ae.Token.Lexeme }
func (ae *AssignExpr) GetToken() token.Token {
	if ae == nil {
		return token.Token{}
	}
	return ae.Token
}

// BinaryExpr represents an infix operation, e.g. `a + b`.
type BinaryExpr struct {
	Token token.Token // the operator token
	Op    string
	Left  Expression
	Right Expression
}

func (be *BinaryExpr) expressionNode()      {}
func (be *BinaryExpr) TokenLiteral() string { return be.Token.Lexeme }
func (be *BinaryExpr) GetToken() token.Token {
	if be == nil {
		return token.Token{}
	}
	return be.Token
}

// IntegerLiteral represents an integer literal.
type IntegerLiteral struct {
	Token token.Token
	Value int64
}

func (il *IntegerLiteral) expressionNode()      {}
func (il *IntegerLiteral) TokenLiteral() string { return il.Token.Lexeme }
func (il *IntegerLiteral) GetToken() token.Token {
	if il == nil {
		return token.Token{}
	}
	return il.Token
}

// FloatLiteral represents a floating point literal.
type FloatLiteral struct {
	Token token.Token
	Value float64
}

func (fl *FloatLiteral) expressionNode()      {}
func (fl *FloatLiteral) TokenLiteral() string { return fl.Token.Lexeme }
func (fl *FloatLiteral) GetToken() token.Token {
	if fl == nil {
		return token.Token{}
	}
	return fl.Token
}

// BooleanLiteral represents `true` or `false`.
type BooleanLiteral struct {
	Token token.Token
	Value bool
}

func (bl *BooleanLiteral) expressionNode()      {}
func (bl *BooleanLiteral) TokenLiteral() string { return bl.Token.Lexeme }
func (bl *BooleanLiteral) GetToken() token.Token {
	if bl == nil {
		return token.Token{}
	}
	return bl.Token
}

// StringLiteral represents a string literal, e.g. `"hello"`.
type StringLiteral struct {
	Token token.Token
	Value string
}

func (sl *StringLiteral) expressionNode()      {}
func (sl *StringLiteral) TokenLiteral() string { return sl.Token.Lexeme }
func (sl *StringLiteral) GetToken() token.Token {
	if sl == nil {
		return token.Token{}
	}
	return sl.Token
}
