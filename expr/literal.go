// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import "math/big"

// A Rational is an exact rational literal. Rationals are immutable.
type Rational struct {
	v big.Rat
}

// NewRational returns the rational num/den. It panics if den is 0.
func NewRational(num, den int64) *Rational {
	if den == 0 {
		panic("expr: zero denominator")
	}
	r := new(Rational)
	r.v.SetFrac64(num, den)
	return r
}

// Int returns the rational n.
func Int(n int64) *Rational {
	return NewRational(n, 1)
}

// RationalFromRat returns a Rational equal to x.
func RationalFromRat(x *big.Rat) *Rational {
	r := new(Rational)
	r.v.Set(x)
	return r
}

// Rat returns a copy of r's value.
func (r *Rational) Rat() *big.Rat {
	return new(big.Rat).Set(&r.v)
}

// Float64 returns the nearest float64 to r.
func (r *Rational) Float64() float64 {
	f, _ := r.v.Float64()
	return f
}

// Cmp compares r with num/den and returns -1, 0 or +1.
func (r *Rational) Cmp(num, den int64) int {
	return r.v.Cmp(big.NewRat(num, den))
}

func (r *Rational) IsZero() bool {
	return r.v.Sign() == 0
}

func (r *Rational) IsNegative() bool {
	return r.v.Sign() < 0
}

func (r *Rational) String() string {
	if r.v.IsInt() {
		return r.v.Num().String()
	}
	return r.v.RatString()
}

func (r *Rational) Equal(other Expr) bool {
	o, ok := other.(*Rational)
	return ok && r.v.Cmp(&o.v) == 0
}

func (r *Rational) Sign(*Context) Sign {
	if r.v.Sign() < 0 {
		return SignNegative
	}
	return SignPositive
}

func (r *Rational) IsReal(*Context) bool {
	return true
}

// Infinity is positive or negative infinity.
type Infinity struct {
	Negative bool
}

func (i Infinity) String() string {
	if i.Negative {
		return "-inf"
	}
	return "inf"
}

func (i Infinity) Equal(other Expr) bool {
	o, ok := other.(Infinity)
	return ok && o == i
}

func (i Infinity) Sign(*Context) Sign {
	if i.Negative {
		return SignNegative
	}
	return SignPositive
}

func (i Infinity) IsReal(*Context) bool {
	return true
}

// Undefined is the result of an undefined operation.
type Undefined struct{}

func (Undefined) String() string {
	return "undef"
}

func (Undefined) Equal(other Expr) bool {
	_, ok := other.(Undefined)
	return ok
}

// A Symbol is a named variable. During reduction a symbol bound in
// the Context is replaced by a copy of its binding; unbound symbols
// stay as they are.
type Symbol struct {
	Name string
}

// Sym returns the symbol called name.
func Sym(name string) *Symbol {
	return &Symbol{Name: name}
}

func (s *Symbol) String() string {
	return s.Name
}

func (s *Symbol) Equal(other Expr) bool {
	o, ok := other.(*Symbol)
	return ok && o.Name == s.Name
}

func (s *Symbol) ShallowReduce(ctx *Context) Reduction {
	if e, ok := ctx.Lookup(s.Name); ok {
		return Reduction{Expr: Clone(e), Status: Reduced}
	}
	return Reduction{Expr: s, Status: Reduced}
}

// Opposite is the negation of a non-literal expression. Use Neg to
// build one.
type Opposite struct {
	operand Expr
}

// Neg returns the negation of e. Negated literals fold into literals
// and double negations cancel, so Opposite never wraps a Rational,
// an Infinity or another Opposite.
func Neg(e Expr) Expr {
	switch e := e.(type) {
	case *Rational:
		r := new(Rational)
		r.v.Neg(&e.v)
		return r
	case Infinity:
		return Infinity{Negative: !e.Negative}
	case Undefined:
		return e
	case *Opposite:
		return e.operand
	}
	return &Opposite{operand: e}
}

func (o *Opposite) String() string {
	return "-" + o.operand.String()
}

func (o *Opposite) Equal(other Expr) bool {
	p, ok := other.(*Opposite)
	return ok && o.operand.Equal(p.operand)
}

func (o *Opposite) NumChildren() int { return 1 }

func (o *Opposite) Child(i int) Expr {
	if i != 0 {
		panic("expr: child index out of range")
	}
	return o.operand
}

func (o *Opposite) SetChild(i int, e Expr) {
	if i != 0 {
		panic("expr: child index out of range")
	}
	o.operand = e
}

func (o *Opposite) Clone() Expr {
	return &Opposite{operand: Clone(o.operand)}
}

// ShallowReduce folds the negation once the operand has reduced to
// a literal.
func (o *Opposite) ShallowReduce(ctx *Context) Reduction {
	e := Neg(o.operand)
	if _, ok := e.(Undefined); ok {
		return Reduction{Expr: e, Status: Invalid}
	}
	if _, ok := e.(*Opposite); ok {
		// Nothing folded; keep the node we have.
		return Reduction{Expr: o, Status: Reduced}
	}
	return Reduction{Expr: e, Status: Reduced}
}

// Sign is only known for negative operands. A non-negative operand
// may be zero, whose opposite is not negative.
func (o *Opposite) Sign(ctx *Context) Sign {
	if SignOf(o.operand, ctx) == SignNegative {
		return SignPositive
	}
	return SignUnknown
}

func (o *Opposite) IsReal(ctx *Context) bool {
	return IsReal(o.operand, ctx)
}
