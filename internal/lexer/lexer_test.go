package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mica-lang/mica/internal/lexer"
	"github.com/mica-lang/mica/internal/token"
)

func TestNextTokenBasicItems(t *testing.T) {
	input := `pub fn add(a: i32, b: i32) -> i32 {
    return a + b;
}`

	expected := []struct {
		typ    token.Type
		lexeme string
	}{
		{token.PUB, "pub"},
		{token.FN, "fn"},
		{token.IDENT, "add"},
		{token.LPAREN, "("},
		{token.IDENT, "a"},
		{token.COLON, ":"},
		{token.IDENT, "i32"},
		{token.COMMA, ","},
		{token.IDENT, "b"},
		{token.COLON, ":"},
		{token.IDENT, "i32"},
		{token.RPAREN, ")"},
		{token.ARROW, "->"},
		{token.IDENT, "i32"},
		{token.LBRACE, "{"},
		{token.RETURN, "return"},
		{token.IDENT, "a"},
		{token.PLUS, "+"},
		{token.IDENT, "b"},
		{token.SEMICOLON, ";"},
		{token.RBRACE, "}"},
		{token.EOF, ""},
	}

	l := lexer.New(input)
	for i, exp := range expected {
		tok := l.NextToken()
		assert.Equal(t, exp.typ, tok.Type, "token %d type", i)
		assert.Equal(t, exp.lexeme, tok.Lexeme, "token %d lexeme", i)
	}
}

func TestNextTokenOperatorsAndLiterals(t *testing.T) {
	input := `let mut x = 1_000; x == 2.5 != true . "hi" !`

	expected := []token.Type{
		token.LET, token.MUT, token.IDENT, token.ASSIGN, token.INT, token.SEMICOLON,
		token.IDENT, token.EQ, token.FLOAT, token.NOT_EQ, token.TRUE, token.DOT,
		token.STRING, token.BANG, token.EOF,
	}

	l := lexer.New(input)
	for i, typ := range expected {
		tok := l.NextToken()
		assert.Equal(t, typ, tok.Type, "token %d", i)
	}
}

func TestNextTokenSkipsLineComments(t *testing.T) {
	input := `// leading comment
fn main() {} // trailing`

	l := lexer.New(input)
	tok := l.NextToken()
	assert.Equal(t, token.FN, tok.Type)
	assert.Equal(t, 2, tok.Line)
	assert.Equal(t, 1, tok.Column)

	for tok.Type != token.EOF {
		tok = l.NextToken()
		assert.NotEqual(t, token.SLASH, tok.Type)
	}
}

func TestNextTokenPositions(t *testing.T) {
	input := "fn main\n  struct"

	l := lexer.New(input)

	tok := l.NextToken()
	assert.Equal(t, 1, tok.Line)
	assert.Equal(t, 1, tok.Column)

	tok = l.NextToken()
	assert.Equal(t, 1, tok.Line)
	assert.Equal(t, 4, tok.Column)

	tok = l.NextToken()
	assert.Equal(t, token.STRUCT, tok.Type)
	assert.Equal(t, 2, tok.Line)
	assert.Equal(t, 3, tok.Column)
}

func TestNextTokenUnterminatedString(t *testing.T) {
	l := lexer.New(`"abc`)
	tok := l.NextToken()
	assert.Equal(t, token.ILLEGAL, tok.Type)
}

func TestNextTokenIllegalCharacter(t *testing.T) {
	l := lexer.New("@")
	tok := l.NextToken()
	assert.Equal(t, token.ILLEGAL, tok.Type)
	assert.Equal(t, "@", tok.Lexeme)
}
