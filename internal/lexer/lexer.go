package lexer

import (
	"unicode"
	"unicode/utf8"

	"github.com/mica-lang/mica/internal/token"
)

type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           rune // current char under examination
	line         int  // current line number
	column       int  // current column number
}

func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1, column: 0}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}

	if l.readPosition >= len(l.input) {
		l.ch = 0
		l.position = l.readPosition
		l.readPosition++
		l.column++
		return
	}

	r, w := utf8.DecodeRuneInString(l.input[l.readPosition:])
	l.ch = r
	l.position = l.readPosition
	l.readPosition += w
	l.column++
}

func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	return r
}

func (l *Lexer) NextToken() token.Token {
	l.skipWhitespaceAndComments()

	var tok token.Token

	switch l.ch {
	case '=':
		if l.peekChar() == '=' {
			line, col := l.line, l.column
			l.readChar()
			tok = token.Token{Type: token.EQ, Lexeme: "==", Line: line, Column: col}
		} else {
			tok = l.newToken(token.ASSIGN)
		}
	case '!':
		if l.peekChar() == '=' {
			line, col := l.line, l.column
			l.readChar()
			tok = token.Token{Type: token.NOT_EQ, Lexeme: "!=", Line: line, Column: col}
		} else {
			tok = l.newToken(token.BANG)
		}
	case '-':
		if l.peekChar() == '>' {
			line, col := l.line, l.column
			l.readChar()
			tok = token.Token{Type: token.ARROW, Lexeme: "->", Line: line, Column: col}
		} else {
			tok = l.newToken(token.MINUS)
		}
	case '+':
		tok = l.newToken(token.PLUS)
	case '*':
		tok = l.newToken(token.STAR)
	case '/':
		tok = l.newToken(token.SLASH)
	case '<':
		tok = l.newToken(token.LT)
	case '>':
		tok = l.newToken(token.GT)
	case '.':
		tok = l.newToken(token.DOT)
	case ':':
		tok = l.newToken(token.COLON)
	case ';':
		tok = l.newToken(token.SEMICOLON)
	case ',':
		tok = l.newToken(token.COMMA)
	case '(':
		tok = l.newToken(token.LPAREN)
	case ')':
		tok = l.newToken(token.RPAREN)
	case '{':
		tok = l.newToken(token.LBRACE)
	case '}':
		tok = l.newToken(token.RBRACE)
	case '"':
		return l.readString()
	case 0:
		tok = token.Token{Type: token.EOF, Lexeme: "", Line: l.line, Column: l.column}
	default:
		if isLetter(l.ch) {
			return l.readIdentifier()
		}
		if unicode.IsDigit(l.ch) {
			return l.readNumber()
		}
		tok = l.newToken(token.ILLEGAL)
	}

	l.readChar()
	return tok
}

func (l *Lexer) newToken(t token.Type) token.Token {
	return token.Token{Type: t, Lexeme: string(l.ch), Line: l.line, Column: l.column}
}

func (l *Lexer) skipWhitespaceAndComments() {
	for {
		for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n' {
			l.readChar()
		}
		if l.ch == '/' && l.peekChar() == '/' {
			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}
			continue
		}
		return
	}
}

func (l *Lexer) readIdentifier() token.Token {
	line, col := l.line, l.column
	start := l.position
	for isLetter(l.ch) || unicode.IsDigit(l.ch) {
		l.readChar()
	}
	lexeme := l.input[start:l.position]
	return token.Token{Type: token.LookupIdent(lexeme), Lexeme: lexeme, Line: line, Column: col}
}

func (l *Lexer) readNumber() token.Token {
	line, col := l.line, l.column
	start := l.position
	typ := token.INT
	for unicode.IsDigit(l.ch) || l.ch == '_' {
		l.readChar()
	}
	if l.ch == '.' && unicode.IsDigit(l.peekChar()) {
		typ = token.FLOAT
		l.readChar()
		for unicode.IsDigit(l.ch) || l.ch == '_' {
			l.readChar()
		}
	}
	return token.Token{Type: typ, Lexeme: l.input[start:l.position], Line: line, Column: col}
}

func (l *Lexer) readString() token.Token {
	line, col := l.line, l.column
	start := l.position
	l.readChar() // opening quote
	for l.ch != '"' && l.ch != 0 {
		if l.ch == '\\' {
			l.readChar()
		}
		l.readChar()
	}
	if l.ch == 0 {
		return token.Token{Type: token.ILLEGAL, Lexeme: l.input[start:l.position], Line: line, Column: col}
	}
	l.readChar() // closing quote
	return token.Token{Type: token.STRING, Lexeme: l.input[start:l.position], Line: line, Column: col}
}

func isLetter(ch rune) bool {
	return unicode.IsLetter(ch) || ch == '_'
}
