// Package arith evaluates validated formulas.
package arith

import (
	"errors"
	"fmt"

	"github.com/elves/formula/pkg/formula"
)

// Lookup returns the value of a variable. Names are passed in their
// normalized form.
type Lookup func(name string) (float64, error)

// ErrDivisionByZero is returned when a divisor evaluates to zero.
var ErrDivisionByZero = errors.New("division by zero")

// LookupError wraps an error returned by a Lookup.
type LookupError struct {
	Name string
	Err  error
}

func (err *LookupError) Error() string {
	return fmt.Sprintf("looking up %s: %v", err.Name, err.Err)
}

func (err *LookupError) Unwrap() error { return err.Err }

// Eval evaluates f, calling lookup for each variable occurrence. The usual
// precedence rules apply and operators of the same precedence associate to
// the left.
func Eval(f *formula.Formula, lookup Lookup) (float64, error) {
	p := parser{tokens: f.Tokens(), lookup: lookup}
	result, err := p.expr()
	if err == nil && !p.eof() {
		// Can't happen for a validated formula.
		err = fmt.Errorf("trailing token %v", p.tokens[p.pos])
	}
	return result, err
}

type parser struct {
	tokens []formula.Token
	pos    int
	lookup Lookup
}

func (p *parser) eof() bool { return p.pos >= len(p.tokens) }

func (p *parser) next() formula.Token {
	tok := p.tokens[p.pos]
	p.pos++
	return tok
}

// Consumes the next token if it is one of the given operators.
func (p *parser) consumeOperatorIn(ops ...string) string {
	if p.eof() || p.tokens[p.pos].Kind != formula.Operator {
		return ""
	}
	for _, op := range ops {
		if p.tokens[p.pos].Text == op {
			p.pos++
			return op
		}
	}
	return ""
}

func (p *parser) expr() (float64, error) {
	acc := 0.0
	op := "+"
	for op != "" {
		t, err := p.term()
		if err != nil {
			return acc, err
		}
		switch op {
		case "+":
			acc += t
		case "-":
			acc -= t
		}
		op = p.consumeOperatorIn("+", "-")
	}
	return acc, nil
}

func (p *parser) term() (float64, error) {
	acc := 1.0
	op := "*"
	for op != "" {
		f, err := p.factor()
		if err != nil {
			return acc, err
		}
		switch op {
		case "*":
			acc *= f
		case "/":
			if f == 0 {
				return acc, ErrDivisionByZero
			}
			acc /= f
		}
		op = p.consumeOperatorIn("*", "/")
	}
	return acc, nil
}

func (p *parser) factor() (float64, error) {
	if p.eof() {
		return 0, errors.New("unexpected end of formula")
	}
	tok := p.next()
	switch tok.Kind {
	case formula.Number:
		return formula.ParseNumber(tok.Text), nil
	case formula.Variable:
		name := formula.NormalizeVariable(tok.Text)
		v, err := p.lookup(name)
		if err != nil {
			return 0, &LookupError{name, err}
		}
		return v, nil
	case formula.OpenParen:
		// '(' expr ')'
		v, err := p.expr()
		if err != nil {
			return v, err
		}
		if p.eof() || p.next().Kind != formula.CloseParen {
			return v, errors.New("unclosed (")
		}
		return v, nil
	default:
		return 0, fmt.Errorf("unexpected token %v", tok)
	}
}
