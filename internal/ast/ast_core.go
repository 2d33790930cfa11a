package ast

import (
	"github.com/mica-lang/mica/internal/token"
)

// Node is the base interface for all AST nodes.
type Node interface {
	TokenLiteral() string
	GetToken() token.Token
}

// Item is a Node that represents a top-level declaration.
type Item interface {
	Node
	itemNode()
}

// Statement is a Node that represents a statement inside a function body.
type Statement interface {
	Node
	statementNode()
}

// Expression is a Node that represents an expression.
type Expression interface {
	Node
	expressionNode()
}

// Type is a Node that represents a type expression.
type Type interface {
	Node
	typeNode()
}

// File is the root node of every syntax tree our parser produces.
type File struct {
	Path  string // source file path
	Items []Item
}

func (f *File) TokenLiteral() string {
	if len(f.Items) > 0 {
		return f.Items[0].TokenLiteral()
	}
	return ""
}

func (f *File) GetToken() token.Token {
	if len(f.Items) > 0 {
		return f.Items[0].GetToken()
	}
	return token.Token{}
}

// Name represents a declared or referenced identifier.
type Name struct {
	Token token.Token // the token.IDENT token
	Value string
}

func (n *Name) TokenLiteral() string { return n.Token.Lexeme }
func (n *Name) GetToken() token.Token {
	if n == nil {
		return token.Token{}
	}
	return n.Token
}

// VisibilityMarker represents a `pub` marker on a declaration.
// A nil marker means the declaration is module-private.
type VisibilityMarker struct {
	Token token.Token // the 'pub' token
}

func (v *VisibilityMarker) TokenLiteral() string { return v.Token.Lexeme }
func (v *VisibilityMarker) GetToken() token.Token {
	if v == nil {
		return token.Token{}
	}
	return v.Token
}

// Param represents a single function parameter, e.g. `mut x: i32`.
type Param struct {
	Token    token.Token // first token of the parameter
	Mut      bool
	Name     *Name
	Ascribed Type // nil if the ascription is missing (malformed source)
}

func (p *Param) TokenLiteral() string { return p.Token.Lexeme }
func (p *Param) GetToken() token.Token {
	if p == nil {
		return token.Token{}
	}
	return p.Token
}

// FunctionDef represents a function declaration.
// fn add(a: i32, b: i32) -> i32 { ... }
type FunctionDef struct {
	Token    token.Token // the 'fn' token
	Vis      *VisibilityMarker
	IsExtern bool
	Name     *Name // nil if the declaration is malformed
	Params   []*Param
	RetType  Type   // nil if no `->` clause
	Body     *Block // nil for extern functions
}

func (fd *FunctionDef) itemNode()            {}
func (fd *FunctionDef) TokenLiteral() string { return fd.Token.Lexeme }
func (fd *FunctionDef) GetToken() token.Token {
	if fd == nil {
		return token.Token{}
	}
	return fd.Token
}

// StructKind distinguishes the three syntactic struct flavors.
type StructKind int

const (
	StructRecord StructKind = iota // struct Foo { a: i32 }
	StructTuple                    // struct Foo(i32, i32)
	StructUnit                     // struct Foo;
)

// MemoryKind is the optional memory specifier on a struct: `struct(gc) Foo`.
type MemoryKind int

const (
	MemoryGC MemoryKind = iota // default
	MemoryValue
)

// RecordFieldDef represents a named struct field, e.g. `a: i32`.
type RecordFieldDef struct {
	Token    token.Token
	Name     *Name
	Ascribed Type
}

func (rf *RecordFieldDef) TokenLiteral() string { return rf.Token.Lexeme }
func (rf *RecordFieldDef) GetToken() token.Token {
	if rf == nil {
		return token.Token{}
	}
	return rf.Token
}

// TupleFieldDef represents a positional struct field, e.g. the `i32` in
// `struct Pair(i32, i32)`.
type TupleFieldDef struct {
	Token   token.Token
	TypeRef Type
}

func (tf *TupleFieldDef) TokenLiteral() string { return tf.Token.Lexeme }
func (tf *TupleFieldDef) GetToken() token.Token {
	if tf == nil {
		return token.Token{}
	}
	return tf.Token
}

// StructDef represents a struct declaration in any of its three kinds.
type StructDef struct {
	Token        token.Token // the 'struct' token
	Vis          *VisibilityMarker
	Memory       MemoryKind
	Name         *Name
	Kind         StructKind
	RecordFields []*RecordFieldDef // populated when Kind == StructRecord
	TupleFields  []*TupleFieldDef  // populated when Kind == StructTuple
}

func (sd *StructDef) itemNode()            {}
func (sd *StructDef) TokenLiteral() string { return sd.Token.Lexeme }
func (sd *StructDef) GetToken() token.Token {
	if sd == nil {
		return token.Token{}
	}
	return sd.Token
}

// TypeAliasDef represents a type alias declaration.
// type Meters = f64
type TypeAliasDef struct {
	Token   token.Token // the 'type' token
	Vis     *VisibilityMarker
	Name    *Name
	TypeRef Type // nil if the right-hand side is missing
}

func (ta *TypeAliasDef) itemNode()            {}
func (ta *TypeAliasDef) TokenLiteral() string { return ta.Token.Lexeme }
func (ta *TypeAliasDef) GetToken() token.Token {
	if ta == nil {
		return token.Token{}
	}
	return ta.Token
}

// ConstDef represents a constant declaration.
// const MAX: i32 = 255
type ConstDef struct {
	Token    token.Token // the 'const' token
	Vis      *VisibilityMarker
	Name     *Name
	Ascribed Type // nil if no ascription
	Value    Expression
}

func (cd *ConstDef) itemNode()            {}
func (cd *ConstDef) TokenLiteral() string { return cd.Token.Lexeme }
func (cd *ConstDef) GetToken() token.Token {
	if cd == nil {
		return token.Token{}
	}
	return cd.Token
}
