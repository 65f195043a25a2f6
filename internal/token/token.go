package token

// Type identifies a lexical token kind in expression text.
type Type int

const (
	ILLEGAL Type = iota
	EOF

	NUMBER
	IDENT

	PLUS
	MINUS
	STAR
	SLASH
	CARET
	BANG

	LT
	LE
	GT
	GE
	EQ
	NE
	AND
	OR

	LPAREN
	RPAREN
	COMMA
)

var names = map[Type]string{
	ILLEGAL: "ILLEGAL",
	EOF:     "EOF",
	NUMBER:  "NUMBER",
	IDENT:   "IDENT",
	PLUS:    "+",
	MINUS:   "-",
	STAR:    "*",
	SLASH:   "/",
	CARET:   "^",
	BANG:    "!",
	LT:      "<",
	LE:      "<=",
	GT:      ">",
	GE:      ">=",
	EQ:      "==",
	NE:      "!=",
	AND:     "&&",
	OR:      "||",
	LPAREN:  "(",
	RPAREN:  ")",
	COMMA:   ",",
}

func (t Type) String() string {
	if s, ok := names[t]; ok {
		return s
	}
	return "UNKNOWN"
}

// Token is one lexeme with its source position, for error reporting.
type Token struct {
	Type   Type
	Lexeme string
	Line   int
	Column int
}
