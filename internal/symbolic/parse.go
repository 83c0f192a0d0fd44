package symbolic

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrParse wraps every syntax error returned by Parse.
var ErrParse = errors.New("invalid expression")

// Parse reads an expression such as "2*x*exp(x^2) + 1". The grammar
// covers + - * / ^ with the usual precedence, unary minus, integer and
// decimal literals (kept exact), parentheses, variables, and the known
// function names sin, cos, tan, asin, acos, atan, exp, log (alias ln)
// and sqrt. ^ is right-associative and binds tighter than unary minus,
// so -x^2 is -(x^2).
func Parse(src string) (Expr, error) {
	p := &parser{src: src}
	e, err := p.parseSum()
	if err != nil {
		return nil, err
	}
	if c := p.peek(); c != 0 {
		return nil, fmt.Errorf("%w: unexpected %q at offset %d", ErrParse, c, p.pos)
	}
	return e, nil
}

// MustParse is Parse for fixed inputs; it panics on error.
func MustParse(src string) Expr {
	e, err := Parse(src)
	if err != nil {
		panic(err)
	}
	return e
}

type parser struct {
	src string
	pos int
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

// peek skips whitespace and returns the next byte, or 0 at the end.
func (p *parser) peek() byte {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) parseSum() (Expr, error) {
	first, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	terms := []Expr{first}
	for {
		switch p.peek() {
		case '+':
			p.pos++
			t, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			terms = append(terms, t)
		case '-':
			p.pos++
			t, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			terms = append(terms, Mul(N(-1), t))
		default:
			if len(terms) == 1 {
				return terms[0], nil
			}
			return Add(terms...), nil
		}
	}
}

func (p *parser) parseTerm() (Expr, error) {
	first, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	factors := []Expr{first}
	for {
		switch p.peek() {
		case '*':
			p.pos++
			f, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			factors = append(factors, f)
		case '/':
			p.pos++
			f, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			factors = append(factors, Pow(f, N(-1)))
		default:
			if len(factors) == 1 {
				return factors[0], nil
			}
			return Mul(factors...), nil
		}
	}
}

func (p *parser) parseUnary() (Expr, error) {
	switch p.peek() {
	case '+':
		p.pos++
		return p.parseUnary()
	case '-':
		p.pos++
		e, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return Mul(N(-1), e), nil
	}
	return p.parseFactor()
}

func (p *parser) parseFactor() (Expr, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if p.peek() != '^' {
		return base, nil
	}
	p.pos++
	exp, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return Pow(base, exp), nil
}

func (p *parser) parsePrimary() (Expr, error) {
	c := p.peek()
	switch {
	case c == '(':
		p.pos++
		e, err := p.parseSum()
		if err != nil {
			return nil, err
		}
		if p.peek() != ')' {
			return nil, fmt.Errorf("%w: missing closing parenthesis", ErrParse)
		}
		p.pos++
		return e, nil
	case c >= '0' && c <= '9' || c == '.':
		return p.parseNumber()
	case isAlpha(c):
		return p.parseIdent()
	case c == 0:
		return nil, fmt.Errorf("%w: unexpected end of input", ErrParse)
	default:
		return nil, fmt.Errorf("%w: unexpected %q at offset %d", ErrParse, c, p.pos)
	}
}

func (p *parser) parseNumber() (Expr, error) {
	start := p.pos
	for p.pos < len(p.src) && (p.src[p.pos] >= '0' && p.src[p.pos] <= '9' || p.src[p.pos] == '.') {
		p.pos++
	}
	lit := p.src[start:p.pos]
	r, ok := new(big.Rat).SetString(lit)
	if !ok {
		return nil, fmt.Errorf("%w: bad number %q", ErrParse, lit)
	}
	return newNum(r), nil
}

func (p *parser) parseIdent() (Expr, error) {
	start := p.pos
	for p.pos < len(p.src) && isAlnum(p.src[p.pos]) {
		p.pos++
	}
	name := p.src[start:p.pos]
	if p.peek() != '(' {
		return S(name), nil
	}
	p.pos++
	arg, err := p.parseSum()
	if err != nil {
		return nil, err
	}
	if p.peek() != ')' {
		return nil, fmt.Errorf("%w: missing closing parenthesis", ErrParse)
	}
	p.pos++
	switch name {
	case "sin", "cos", "tan", "asin", "acos", "atan", "exp":
		return Fn(name, arg), nil
	case "log", "ln":
		return Log(arg), nil
	case "sqrt":
		return Sqrt(arg), nil
	default:
		return nil, fmt.Errorf("%w: unknown function %q", ErrParse, name)
	}
}

func isAlpha(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_'
}

func isAlnum(c byte) bool {
	return isAlpha(c) || c >= '0' && c <= '9'
}
