// Package expr evaluates the arithmetic expressions used by
// order-of-operations exercises.
//
// Grammar:
//
//	expr   = term { ("+" | "-") term }
//	term   = factor { ("×" | "*" | "÷" | "/") factor }
//	factor = number | "(" expr ")" | "-" factor
//
// Multiplication and division bind tighter than addition and subtraction,
// operators of equal precedence associate left to right, and parentheses
// override both.
package expr

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"unicode"
)

var (
	// ErrSyntax is returned for malformed expressions.
	ErrSyntax = errors.New("syntax error")

	// ErrDivisionByZero is returned when a divisor evaluates to zero.
	ErrDivisionByZero = errors.New("division by zero")
)

// Evaluate parses and evaluates expression.
func Evaluate(expression string) (float64, error) {
	toks, err := tokenize(expression)
	if err != nil {
		return 0, err
	}
	p := &parser{toks: toks}
	v, err := p.expr()
	if err != nil {
		return 0, err
	}
	if p.pos != len(p.toks) {
		return 0, fmt.Errorf("%w: unexpected %q at offset %d", ErrSyntax, p.toks[p.pos].text, p.toks[p.pos].offset)
	}
	return v, nil
}

// Round2 rounds v to two decimal places.
func Round2(v float64) float64 {
	r := math.Round(v*100) / 100
	if r == 0 {
		return 0 // drop negative zero
	}
	return r
}

type tokenKind int

const (
	tokNumber tokenKind = iota
	tokOp
	tokLParen
	tokRParen
)

type token struct {
	kind   tokenKind
	text   string
	value  float64
	offset int
}

func tokenize(s string) ([]token, error) {
	var toks []token
	runes := []rune(s)
	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case unicode.IsDigit(r) || r == '.':
			start := i
			for i < len(runes) && (unicode.IsDigit(runes[i]) || runes[i] == '.') {
				i++
			}
			text := string(runes[start:i])
			v, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: bad number %q", ErrSyntax, text)
			}
			toks = append(toks, token{kind: tokNumber, text: text, value: v, offset: start})
		case r == '+' || r == '-' || r == '*' || r == '/' || r == '×' || r == '÷':
			toks = append(toks, token{kind: tokOp, text: string(normalizeOp(r)), offset: i})
			i++
		case r == '(':
			toks = append(toks, token{kind: tokLParen, text: "(", offset: i})
			i++
		case r == ')':
			toks = append(toks, token{kind: tokRParen, text: ")", offset: i})
			i++
		default:
			return nil, fmt.Errorf("%w: unexpected character %q at offset %d", ErrSyntax, r, i)
		}
	}
	if len(toks) == 0 {
		return nil, fmt.Errorf("%w: empty expression", ErrSyntax)
	}
	return toks, nil
}

// normalizeOp maps the display symbols to their ASCII forms.
func normalizeOp(r rune) rune {
	switch r {
	case '×':
		return '*'
	case '÷':
		return '/'
	default:
		return r
	}
}

type parser struct {
	toks []token
	pos  int
}

func (p *parser) peekOp() (string, bool) {
	if p.pos < len(p.toks) && p.toks[p.pos].kind == tokOp {
		return p.toks[p.pos].text, true
	}
	return "", false
}

func (p *parser) expr() (float64, error) {
	left, err := p.term()
	if err != nil {
		return 0, err
	}
	for {
		op, ok := p.peekOp()
		if !ok || (op != "+" && op != "-") {
			return left, nil
		}
		p.pos++
		right, err := p.term()
		if err != nil {
			return 0, err
		}
		if op == "+" {
			left += right
		} else {
			left -= right
		}
	}
}

func (p *parser) term() (float64, error) {
	left, err := p.factor()
	if err != nil {
		return 0, err
	}
	for {
		op, ok := p.peekOp()
		if !ok || (op != "*" && op != "/") {
			return left, nil
		}
		p.pos++
		right, err := p.factor()
		if err != nil {
			return 0, err
		}
		if op == "*" {
			left *= right
			continue
		}
		if right == 0 {
			return 0, ErrDivisionByZero
		}
		left /= right
	}
}

func (p *parser) factor() (float64, error) {
	if p.pos >= len(p.toks) {
		return 0, fmt.Errorf("%w: unexpected end of expression", ErrSyntax)
	}
	tok := p.toks[p.pos]
	switch {
	case tok.kind == tokNumber:
		p.pos++
		return tok.value, nil
	case tok.kind == tokOp && tok.text == "-":
		p.pos++
		v, err := p.factor()
		return -v, err
	case tok.kind == tokLParen:
		p.pos++
		v, err := p.expr()
		if err != nil {
			return 0, err
		}
		if p.pos >= len(p.toks) || p.toks[p.pos].kind != tokRParen {
			return 0, fmt.Errorf("%w: missing closing parenthesis", ErrSyntax)
		}
		p.pos++
		return v, nil
	default:
		return 0, fmt.Errorf("%w: unexpected %q at offset %d", ErrSyntax, tok.text, tok.offset)
	}
}
