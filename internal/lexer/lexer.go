package lexer

import (
	"unicode"
	"unicode/utf8"

	"github.com/sxgraph/sxgraph/internal/token"
)

// Lexer scans expression text into tokens.
type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           rune // current char under examination
	line         int
	column       int
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
	l.skipWhitespace()

	var tok token.Token
	switch l.ch {
	case '+':
		tok = l.newToken(token.PLUS)
	case '-':
		tok = l.newToken(token.MINUS)
	case '*':
		tok = l.newToken(token.STAR)
	case '/':
		tok = l.newToken(token.SLASH)
	case '^':
		tok = l.newToken(token.CARET)
	case '(':
		tok = l.newToken(token.LPAREN)
	case ')':
		tok = l.newToken(token.RPAREN)
	case ',':
		tok = l.newToken(token.COMMA)
	case '<':
		if l.peekChar() == '=' {
			tok = l.newTwoCharToken(token.LE)
		} else {
			tok = l.newToken(token.LT)
		}
	case '>':
		if l.peekChar() == '=' {
			tok = l.newTwoCharToken(token.GE)
		} else {
			tok = l.newToken(token.GT)
		}
	case '=':
		if l.peekChar() == '=' {
			tok = l.newTwoCharToken(token.EQ)
		} else {
			tok = l.illegalToken()
		}
	case '!':
		if l.peekChar() == '=' {
			tok = l.newTwoCharToken(token.NE)
		} else {
			tok = l.newToken(token.BANG)
		}
	case '&':
		if l.peekChar() == '&' {
			tok = l.newTwoCharToken(token.AND)
		} else {
			tok = l.illegalToken()
		}
	case '|':
		if l.peekChar() == '|' {
			tok = l.newTwoCharToken(token.OR)
		} else {
			tok = l.illegalToken()
		}
	case 0:
		tok = token.Token{Type: token.EOF, Lexeme: "", Line: l.line, Column: l.column}
	default:
		if isDigit(l.ch) || (l.ch == '.' && isDigit(l.peekChar())) {
			return l.readNumber()
		}
		if isIdentStart(l.ch) {
			return l.readIdentifier()
		}
		tok = l.illegalToken()
	}

	l.readChar()
	return tok
}

func (l *Lexer) newToken(t token.Type) token.Token {
	return token.Token{Type: t, Lexeme: string(l.ch), Line: l.line, Column: l.column}
}

func (l *Lexer) newTwoCharToken(t token.Type) token.Token {
	line, col := l.line, l.column
	first := l.ch
	l.readChar()
	return token.Token{Type: t, Lexeme: string(first) + string(l.ch), Line: line, Column: col}
}

func (l *Lexer) illegalToken() token.Token {
	return token.Token{Type: token.ILLEGAL, Lexeme: string(l.ch), Line: l.line, Column: l.column}
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// readNumber scans integer, decimal and exponent forms (1, 0.5, 1e-3).
func (l *Lexer) readNumber() token.Token {
	line, col := l.line, l.column
	start := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' && isDigit(l.peekChar()) {
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	if l.ch == 'e' || l.ch == 'E' {
		if next := l.peekChar(); isDigit(next) || next == '+' || next == '-' {
			l.readChar()
			if l.ch == '+' || l.ch == '-' {
				l.readChar()
			}
			for isDigit(l.ch) {
				l.readChar()
			}
		}
	}
	return token.Token{Type: token.NUMBER, Lexeme: l.input[start:l.position], Line: line, Column: col}
}

func (l *Lexer) readIdentifier() token.Token {
	line, col := l.line, l.column
	start := l.position
	for isIdentStart(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return token.Token{Type: token.IDENT, Lexeme: l.input[start:l.position], Line: line, Column: col}
}

func isDigit(ch rune) bool { return ch >= '0' && ch <= '9' }

func isIdentStart(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch)
}
