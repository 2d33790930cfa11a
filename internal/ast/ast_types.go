package ast

import (
	"github.com/mica-lang/mica/internal/token"
)

// PathType represents a named type reference, e.g. `i32` or `geometry.Point`.
type PathType struct {
	Token    token.Token // first segment token
	Segments []string
}

func (pt *PathType) typeNode()            {}
func (pt *PathType) TokenLiteral() string { return pt.Token.Lexeme }
func (pt *PathType) GetToken() token.Token {
	if pt == nil {
		return token.Token{}
	}
	return pt.Token
}

// TupleType represents a tuple type, e.g. `(i32, bool)`.
// The empty tuple `()` is the unit type.
type TupleType struct {
	Token    token.Token // the '(' token
	Elements []Type
}

func (tt *TupleType) typeNode()            {}
func (tt *TupleType) TokenLiteral() string { return tt.Token.Lexeme }
func (tt *TupleType) GetToken() token.Token {
	if tt == nil {
		return token.Token{}
	}
	return tt.Token
}

// NeverType represents the `!` type of diverging expressions.
type NeverType struct {
	Token token.Token // the '!' token
}

func (nt *NeverType) typeNode()            {}
func (nt *NeverType) TokenLiteral() string { return nt.Token.Lexeme }
func (nt *NeverType) GetToken() token.Token {
	if nt == nil {
		return token.Token{}
	}
	return nt.Token
}

// FnPointerType represents a function pointer type, e.g. `fn(i32) -> bool`.
type FnPointerType struct {
	Token  token.Token // the 'fn' token
	Params []Type
	Ret    Type // nil if no `->` clause
}

func (ft *FnPointerType) typeNode()            {}
func (ft *FnPointerType) TokenLiteral() string { return ft.Token.Lexeme }
func (ft *FnPointerType) GetToken() token.Token {
	if ft == nil {
		return token.Token{}
	}
	return ft.Token
}
