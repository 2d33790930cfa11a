package token

// Type identifies the lexical class of a token.
type Type string

// Token is a single lexical unit with its source position.
type Token struct {
	Type   Type
	Lexeme string // the exact source text of the token
	Line   int    // 1-based
	Column int    // 1-based
}

const (
	ILLEGAL Type = "ILLEGAL"
	EOF     Type = "EOF"

	IDENT  Type = "IDENT"
	INT    Type = "INT"
	FLOAT  Type = "FLOAT"
	STRING Type = "STRING"

	ASSIGN    Type = "="
	PLUS      Type = "+"
	MINUS     Type = "-"
	STAR      Type = "*"
	SLASH     Type = "/"
	EQ        Type = "=="
	NOT_EQ    Type = "!="
	LT        Type = "<"
	GT        Type = ">"
	BANG      Type = "!"
	DOT       Type = "."
	COLON     Type = ":"
	SEMICOLON Type = ";"
	COMMA     Type = ","
	ARROW     Type = "->"

	LPAREN Type = "("
	RPAREN Type = ")"
	LBRACE Type = "{"
	RBRACE Type = "}"

	FN      Type = "FN"
	STRUCT  Type = "STRUCT"
	TYPE    Type = "TYPE"
	CONST   Type = "CONST"
	LET     Type = "LET"
	MUT     Type = "MUT"
	PUB     Type = "PUB"
	EXTERN  Type = "EXTERN"
	RETURN  Type = "RETURN"
	TRUE    Type = "TRUE"
	FALSE   Type = "FALSE"
	PACKAGE Type = "PACKAGE"
	NEVER   Type = "NEVER" // the ! return type
)

var keywords = map[string]Type{
	"fn":      FN,
	"struct":  STRUCT,
	"type":    TYPE,
	"const":   CONST,
	"let":     LET,
	"mut":     MUT,
	"pub":     PUB,
	"extern":  EXTERN,
	"return":  RETURN,
	"true":    TRUE,
	"false":   FALSE,
	"package": PACKAGE,
}

// LookupIdent returns the keyword type for ident, or IDENT.
func LookupIdent(ident string) Type {
	if t, ok := keywords[ident]; ok {
		return t
	}
	return IDENT
}
