// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distribution

import (
	"fmt"
	"strings"

	"github.com/aclements/go-distcalc/expr"
	"github.com/aclements/go-distcalc/stats"
)

// A Dispatcher is an expression node computing one method of one
// distribution family, such as fishercdf(x, d1, d2). Its children are
// the method's abscissae followed by the family's parameters.
type Dispatcher struct {
	kind     Kind
	method   Method
	nabs     int
	nparams  int
	children [maxChildren]expr.Expr
}

// NewDispatcher returns the node for method m of family k applied to
// children. It panics if the pair is not registered or the number of
// children is wrong.
func NewDispatcher(k Kind, m Method, children ...expr.Expr) *Dispatcher {
	if Name(k, m) == "" {
		panic(fmt.Sprintf("distribution: %v %v is not registered", k, m))
	}
	d := &Dispatcher{
		kind:    k,
		method:  m,
		nabs:    m.Descriptor().NumAbscissae(),
		nparams: k.Descriptor().NumParams(),
	}
	if len(children) != d.nabs+d.nparams {
		panic(fmt.Sprintf("distribution: %s takes %d arguments, got %d", Name(k, m), d.nabs+d.nparams, len(children)))
	}
	for i, c := range children {
		if c == nil {
			panic("distribution: nil child")
		}
		d.children[i] = c
	}
	return d
}

func (d *Dispatcher) Kind() Kind     { return d.kind }
func (d *Dispatcher) Method() Method { return d.method }

// Abscissae returns the abscissa children. The slice aliases the node.
func (d *Dispatcher) Abscissae() []expr.Expr {
	return d.children[:d.nabs]
}

// Params returns the parameter children. The slice aliases the node.
func (d *Dispatcher) Params() []expr.Expr {
	return d.children[d.nabs : d.nabs+d.nparams]
}

func (d *Dispatcher) NumChildren() int { return d.nabs + d.nparams }

func (d *Dispatcher) Child(i int) expr.Expr {
	if i < 0 || i >= d.NumChildren() {
		panic("distribution: child index out of range")
	}
	return d.children[i]
}

func (d *Dispatcher) SetChild(i int, e expr.Expr) {
	if i < 0 || i >= d.NumChildren() {
		panic("distribution: child index out of range")
	}
	d.children[i] = e
}

func (d *Dispatcher) Clone() expr.Expr {
	c := *d
	for i := 0; i < c.NumChildren(); i++ {
		c.children[i] = expr.Clone(d.children[i])
	}
	return &c
}

func (d *Dispatcher) String() string {
	var b strings.Builder
	b.WriteString(names[d.kind][d.method])
	b.WriteByte('(')
	for i := 0; i < d.NumChildren(); i++ {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(d.children[i].String())
	}
	b.WriteByte(')')
	return b.String()
}

func (d *Dispatcher) Equal(other expr.Expr) bool {
	o, ok := other.(*Dispatcher)
	if !ok || o.kind != d.kind || o.method != d.method {
		return false
	}
	for i := 0; i < d.NumChildren(); i++ {
		if !d.children[i].Equal(o.children[i]) {
			return false
		}
	}
	return true
}

// ShallowReduce simplifies the node once its children are reduced.
//
// An undefined or matrix child makes the node undefined, and list
// children distribute the node over their elements. Otherwise the
// parameters are checked: if their validity cannot be decided yet,
// the node is left alone but reported as NotYetReducible, and invalid
// parameters make it undefined. Valid nodes get a method-specific
// simplification where one applies, and are otherwise left for
// numeric approximation.
func (d *Dispatcher) ShallowReduce(ctx *expr.Context) expr.Reduction {
	if r, ok := expr.DefaultShallowReduce(d); ok {
		return r
	}
	if r, ok := expr.UndefinedOnMatrix(d, ctx); ok {
		return r
	}
	if r, ok := expr.DistributeOverLists(d); ok {
		return r
	}
	switch d.kind.Descriptor().CheckParameters(d.Params(), ctx) {
	case Indeterminate:
		return expr.Reduction{Expr: d, Status: expr.NotYetReducible}
	case Invalid:
		return expr.Reduction{Expr: expr.Undefined{}, Status: expr.Invalid}
	}
	if e, ok := d.method.Descriptor().reduce(d, ctx); ok {
		if _, undef := e.(expr.Undefined); undef {
			return expr.Reduction{Expr: e, Status: expr.Invalid}
		}
		return expr.Reduction{Expr: e, Status: expr.Reduced}
	}
	return expr.Reduction{Expr: d, Status: expr.Reduced}
}

func (d *Dispatcher) Approximate32(ctx *expr.Context) expr.Complex[float32] {
	return approximate[float32](d, ctx)
}

func (d *Dispatcher) Approximate64(ctx *expr.Context) expr.Complex[float64] {
	return approximate[float64](d, ctx)
}

func approximate[T stats.Float](d *Dispatcher, ctx *expr.Context) expr.Complex[T] {
	var x [MaxAbscissae]T
	var p [MaxParams]T
	for i := 0; i < d.nabs; i++ {
		x[i] = expr.Approximate[T](d.children[i], ctx).Scalar()
	}
	for i := 0; i < d.nparams; i++ {
		p[i] = expr.Approximate[T](d.children[d.nabs+i], ctx).Scalar()
	}
	return expr.Real(evaluate(d.kind, d.method, &x, &p, solverFor(ctx)))
}

// solverFor returns the solver overrides carried by ctx. Zero fields
// leave the family defaults in place.
func solverFor(ctx *expr.Context) stats.Solver {
	if ctx == nil {
		return stats.Solver{}
	}
	return stats.Solver{Tolerance: ctx.InverseTolerance, UpperBound: ctx.InverseUpperBound}
}
