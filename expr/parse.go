// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// A Func describes a prefix function for Parse.
type Func struct {
	// Arity is the number of arguments the function takes.
	Arity int

	// Build returns the call node for args. len(args) == Arity.
	Build func(args []Expr) Expr
}

// A FuncTable maps function names to their descriptions.
type FuncTable map[string]Func

var (
	// ErrUnknownFunction is wrapped by syntax errors for calls to
	// names not in the FuncTable.
	ErrUnknownFunction = errors.New("unknown function")

	// ErrArity is wrapped by syntax errors for calls with the
	// wrong number of arguments.
	ErrArity = errors.New("wrong number of arguments")
)

// A SyntaxError reports a malformed expression.
type SyntaxError struct {
	Offset int // byte offset in the input
	Msg    string
	Err    error // underlying sentinel, if any
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("offset %d: %s", e.Offset, e.Msg)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// Parse parses the textual form of an expression.
//
// The grammar is
//
//	expr    = "-" expr | primary
//	primary = number [ "/" number ] | "undef" | "inf"
//	        | ident | ident "(" [ expr { "," expr } ] ")"
//	        | "(" expr ")"
//	        | "{" [ expr { "," expr } ] "}"
//	        | "[" row { row } "]"
//	row     = "[" expr { "," expr } "]"
//
// where number is a decimal with optional fraction and exponent.
// Calls are resolved in funcs.
func Parse(s string, funcs FuncTable) (Expr, error) {
	p := &parser{s: s, funcs: funcs}
	e, err := p.expr()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos < len(p.s) {
		return nil, p.errorf("unexpected %q", p.s[p.pos])
	}
	return e, nil
}

type parser struct {
	s     string
	pos   int
	funcs FuncTable
}

func (p *parser) errorf(format string, args ...any) *SyntaxError {
	return &SyntaxError{Offset: p.pos, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) skipSpace() {
	for p.pos < len(p.s) && strings.IndexByte(" \t\r\n", p.s[p.pos]) >= 0 {
		p.pos++
	}
}

// peek returns the next non-space byte, or 0 at the end of input.
func (p *parser) peek() byte {
	p.skipSpace()
	if p.pos >= len(p.s) {
		return 0
	}
	return p.s[p.pos]
}

func (p *parser) expect(c byte) error {
	if got := p.peek(); got != c {
		if got == 0 {
			return p.errorf("expected %q, found end of input", c)
		}
		return p.errorf("expected %q, found %q", c, got)
	}
	p.pos++
	return nil
}

func (p *parser) expr() (Expr, error) {
	if p.peek() == '-' {
		p.pos++
		e, err := p.expr()
		if err != nil {
			return nil, err
		}
		return Neg(e), nil
	}
	return p.primary()
}

func (p *parser) primary() (Expr, error) {
	switch c := p.peek(); {
	case c == 0:
		return nil, p.errorf("unexpected end of input")
	case isDigit(c) || c == '.':
		return p.number()
	case isLetter(c):
		return p.identOrCall()
	case c == '(':
		p.pos++
		e, err := p.expr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(')'); err != nil {
			return nil, err
		}
		return e, nil
	case c == '{':
		p.pos++
		elems, err := p.exprs('}')
		if err != nil {
			return nil, err
		}
		return NewList(elems...), nil
	case c == '[':
		return p.matrix()
	default:
		return nil, p.errorf("unexpected %q", c)
	}
}

// exprs parses a possibly empty comma-separated list ending in close.
func (p *parser) exprs(close byte) ([]Expr, error) {
	var list []Expr
	if p.peek() == close {
		p.pos++
		return list, nil
	}
	for {
		e, err := p.expr()
		if err != nil {
			return nil, err
		}
		list = append(list, e)
		switch p.peek() {
		case ',':
			p.pos++
		case close:
			p.pos++
			return list, nil
		default:
			return nil, p.errorf("expected ',' or %q", close)
		}
	}
}

func (p *parser) decimal() (*big.Rat, error) {
	start := p.pos
	for p.pos < len(p.s) && (isDigit(p.s[p.pos]) || p.s[p.pos] == '.') {
		p.pos++
	}
	if p.pos < len(p.s) && (p.s[p.pos] == 'e' || p.s[p.pos] == 'E') {
		p.pos++
		if p.pos < len(p.s) && (p.s[p.pos] == '+' || p.s[p.pos] == '-') {
			p.pos++
		}
		for p.pos < len(p.s) && isDigit(p.s[p.pos]) {
			p.pos++
		}
	}
	r, ok := new(big.Rat).SetString(p.s[start:p.pos])
	if !ok {
		p.pos = start
		return nil, p.errorf("malformed number")
	}
	return r, nil
}

func (p *parser) number() (Expr, error) {
	num, err := p.decimal()
	if err != nil {
		return nil, err
	}
	if p.peek() != '/' {
		return RationalFromRat(num), nil
	}
	p.pos++
	if c := p.peek(); !isDigit(c) && c != '.' {
		return nil, p.errorf("expected denominator")
	}
	at := p.pos
	den, err := p.decimal()
	if err != nil {
		return nil, err
	}
	if den.Sign() == 0 {
		p.pos = at
		return nil, p.errorf("zero denominator")
	}
	return RationalFromRat(num.Quo(num, den)), nil
}

func (p *parser) identOrCall() (Expr, error) {
	start := p.pos
	for p.pos < len(p.s) && (isLetter(p.s[p.pos]) || isDigit(p.s[p.pos])) {
		p.pos++
	}
	name := p.s[start:p.pos]
	if p.peek() != '(' {
		switch name {
		case "undef":
			return Undefined{}, nil
		case "inf":
			return Infinity{}, nil
		}
		if _, ok := p.funcs[name]; ok {
			return nil, &SyntaxError{Offset: start, Msg: fmt.Sprintf("%s used without arguments", name), Err: ErrArity}
		}
		return Sym(name), nil
	}
	f, ok := p.funcs[name]
	if !ok {
		return nil, &SyntaxError{Offset: start, Msg: fmt.Sprintf("unknown function %s", name), Err: ErrUnknownFunction}
	}
	p.pos++
	args, err := p.exprs(')')
	if err != nil {
		return nil, err
	}
	if len(args) != f.Arity {
		return nil, &SyntaxError{Offset: start, Msg: fmt.Sprintf("%s takes %d arguments, got %d", name, f.Arity, len(args)), Err: ErrArity}
	}
	return f.Build(args), nil
}

func (p *parser) matrix() (Expr, error) {
	start := p.pos
	p.pos++ // [
	var entries []Expr
	rows, cols := 0, 0
	for p.peek() == '[' {
		p.pos++
		row, err := p.exprs(']')
		if err != nil {
			return nil, err
		}
		if len(row) == 0 {
			return nil, p.errorf("empty matrix row")
		}
		if rows > 0 && len(row) != cols {
			return nil, p.errorf("matrix row has %d entries, want %d", len(row), cols)
		}
		cols = len(row)
		rows++
		entries = append(entries, row...)
	}
	if err := p.expect(']'); err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, &SyntaxError{Offset: start, Msg: "empty matrix"}
	}
	return NewMatrix(rows, cols, entries...), nil
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c == '_'
}
