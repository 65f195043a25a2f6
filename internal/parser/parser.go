package parser

import (
	"fmt"
	"strconv"

	"github.com/sxgraph/sxgraph/internal/lexer"
	"github.com/sxgraph/sxgraph/internal/token"
	"github.com/sxgraph/sxgraph/pkg/sx"
)

// Operator binding powers, lowest first.
const (
	_ int = iota
	LOWEST
	LOGIC_OR   // ||
	LOGIC_AND  // &&
	EQUALITY   // == !=
	COMPARISON // < <= > >=
	SUM        // + -
	PRODUCT    // * /
	PREFIX     // -x !x
	POWER      // ^ (right-associative)
	CALL       // f(x)
)

var precedences = map[token.Type]int{
	token.OR:     LOGIC_OR,
	token.AND:    LOGIC_AND,
	token.EQ:     EQUALITY,
	token.NE:     EQUALITY,
	token.LT:     COMPARISON,
	token.LE:     COMPARISON,
	token.GT:     COMPARISON,
	token.GE:     COMPARISON,
	token.PLUS:   SUM,
	token.MINUS:  SUM,
	token.STAR:   PRODUCT,
	token.SLASH:  PRODUCT,
	token.CARET:  POWER,
	token.LPAREN: CALL,
}

// Parser turns expression text into sx graphs. Free identifiers become
// context symbols, interned per parser so one name is one node within a
// parse; identifiers followed by '(' must name a built-in function.
type Parser struct {
	l    *lexer.Lexer
	ctx  *sx.Context
	cur  token.Token
	peek token.Token
	syms map[string]sx.Expr
}

func New(ctx *sx.Context, src string) *Parser {
	p := &Parser{
		l:    lexer.New(src),
		ctx:  ctx,
		syms: make(map[string]sx.Expr),
	}
	p.nextToken()
	p.nextToken()
	return p
}

// Parse parses src as a single expression against ctx.
func Parse(ctx *sx.Context, src string) (sx.Expr, error) {
	p := New(ctx, src)
	return p.ParseExpr()
}

// ParseExpr consumes the whole input as one expression.
func (p *Parser) ParseExpr() (sx.Expr, error) {
	e, err := p.parseExpression(LOWEST)
	if err != nil {
		return sx.Expr{}, err
	}
	if p.peek.Type != token.EOF {
		return sx.Expr{}, p.errorAt(p.peek, "unexpected %q after expression", p.peek.Lexeme)
	}
	return e, nil
}

// Symbols returns the symbols interned during parsing, by name.
func (p *Parser) Symbols() map[string]sx.Expr {
	out := make(map[string]sx.Expr, len(p.syms))
	for k, v := range p.syms {
		out[k] = v
	}
	return out
}

func (p *Parser) nextToken() {
	p.cur = p.peek
	p.peek = p.l.NextToken()
}

func (p *Parser) errorAt(tok token.Token, format string, args ...any) error {
	pos := fmt.Sprintf("%d:%d: ", tok.Line, tok.Column)
	return fmt.Errorf("parse error at "+pos+format, args...)
}

func (p *Parser) parseExpression(precedence int) (sx.Expr, error) {
	left, err := p.parsePrefix()
	if err != nil {
		return sx.Expr{}, err
	}

	for p.peek.Type != token.EOF && precedence < precedences[p.peek.Type] {
		op := p.peek
		if op.Type == token.LPAREN {
			break // calls are handled in parsePrefix off identifiers
		}
		p.nextToken()
		p.nextToken()

		// right-associativity for ^: bind the right side one level looser
		prec := precedences[op.Type]
		if op.Type == token.CARET {
			prec--
		}
		right, err := p.parseExpression(prec)
		if err != nil {
			return sx.Expr{}, err
		}
		left, err = applyInfix(op, left, right)
		if err != nil {
			return sx.Expr{}, err
		}
	}
	return left, nil
}

func applyInfix(op token.Token, left, right sx.Expr) (sx.Expr, error) {
	switch op.Type {
	case token.PLUS:
		return left.Add(right), nil
	case token.MINUS:
		return left.Sub(right), nil
	case token.STAR:
		return left.Mul(right), nil
	case token.SLASH:
		return left.Div(right), nil
	case token.CARET:
		return left.Pow(right), nil
	case token.LT:
		return left.Lt(right), nil
	case token.LE:
		return left.Le(right), nil
	case token.GT:
		return left.Gt(right), nil
	case token.GE:
		return left.Ge(right), nil
	case token.EQ:
		return left.Eq(right), nil
	case token.NE:
		return left.Ne(right), nil
	case token.AND:
		return left.And(right), nil
	case token.OR:
		return left.Or(right), nil
	}
	return sx.Expr{}, fmt.Errorf("parse error at %d:%d: %q is not an infix operator", op.Line, op.Column, op.Lexeme)
}

func (p *Parser) parsePrefix() (sx.Expr, error) {
	switch p.cur.Type {
	case token.NUMBER:
		v, err := strconv.ParseFloat(p.cur.Lexeme, 64)
		if err != nil {
			return sx.Expr{}, p.errorAt(p.cur, "bad number %q", p.cur.Lexeme)
		}
		return p.ctx.Lit(v), nil

	case token.IDENT:
		if p.peek.Type == token.LPAREN {
			return p.parseCall()
		}
		return p.internSymbol(p.cur.Lexeme), nil

	case token.MINUS:
		p.nextToken()
		operand, err := p.parseExpression(PREFIX)
		if err != nil {
			return sx.Expr{}, err
		}
		return operand.Neg(), nil

	case token.BANG:
		p.nextToken()
		operand, err := p.parseExpression(PREFIX)
		if err != nil {
			return sx.Expr{}, err
		}
		return operand.Not(), nil

	case token.LPAREN:
		p.nextToken()
		e, err := p.parseExpression(LOWEST)
		if err != nil {
			return sx.Expr{}, err
		}
		if p.peek.Type != token.RPAREN {
			return sx.Expr{}, p.errorAt(p.peek, "expected ')', got %q", p.peek.Lexeme)
		}
		p.nextToken()
		return e, nil

	case token.ILLEGAL:
		return sx.Expr{}, p.errorAt(p.cur, "illegal character %q", p.cur.Lexeme)
	}
	return sx.Expr{}, p.errorAt(p.cur, "unexpected %q", p.cur.Lexeme)
}

func (p *Parser) internSymbol(name string) sx.Expr {
	if s, ok := p.syms[name]; ok {
		return s
	}
	s := p.ctx.Symbol(name)
	p.syms[name] = s
	return s
}

func (p *Parser) parseCall() (sx.Expr, error) {
	name := p.cur
	fn, ok := functions[name.Lexeme]
	if !ok {
		return sx.Expr{}, p.errorAt(name, "unknown function %q", name.Lexeme)
	}
	p.nextToken() // onto '('

	var args []sx.Expr
	if p.peek.Type == token.RPAREN {
		p.nextToken()
	} else {
		for {
			p.nextToken()
			arg, err := p.parseExpression(LOWEST)
			if err != nil {
				return sx.Expr{}, err
			}
			args = append(args, arg)
			if p.peek.Type == token.COMMA {
				p.nextToken()
				continue
			}
			break
		}
		if p.peek.Type != token.RPAREN {
			return sx.Expr{}, p.errorAt(p.peek, "expected ')' in call to %s, got %q", name.Lexeme, p.peek.Lexeme)
		}
		p.nextToken()
	}

	if len(args) != fn.arity {
		return sx.Expr{}, p.errorAt(name, "%s expects %d argument(s), got %d", name.Lexeme, fn.arity, len(args))
	}
	return fn.build(args), nil
}
