// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

// maxReduceDepth bounds the nesting of reductions, including the
// re-reduction of symbol bindings. Deeper trees, and cyclic
// bindings, reduce to Undefined.
const maxReduceDepth = 256

// Reduce reduces e bottom-up: every child is reduced before its
// parent, and a node whose replacement is a new expression has that
// replacement reduced in turn. It returns the reduced expression and
// the most severe status encountered.
//
// Reduce mutates e. Callers keep only the returned expression.
func Reduce(e Expr, ctx *Context) (Expr, Status) {
	return reduce(e, ctx, 0)
}

func reduce(e Expr, ctx *Context, depth int) (Expr, Status) {
	if depth > maxReduceDepth {
		ctx.Log().Warn("reduction too deep", "expr", e.String())
		return Undefined{}, Invalid
	}
	status := Reduced
	if n, ok := e.(Node); ok {
		for i := 0; i < n.NumChildren(); i++ {
			c, s := reduce(n.Child(i), ctx, depth+1)
			n.SetChild(i, c)
			status = worse(status, s)
		}
	}
	r, ok := e.(Reducer)
	if !ok {
		return e, status
	}
	red := r.ShallowReduce(ctx)
	if red.Status != Reduced {
		ctx.Log().Debug("shallow reduce", "expr", e.String(), "status", red.Status)
	}
	status = worse(status, red.Status)
	if red.Expr == e || red.Status == Invalid {
		return red.Expr, status
	}
	next, s := reduce(red.Expr, ctx, depth+1)
	return next, worse(status, s)
}

// DefaultShallowReduce is the first step of every function node's
// ShallowReduce. If any child of n is Undefined, it returns an
// Invalid reduction to Undefined and true. It panics if a child is
// missing.
func DefaultShallowReduce(n Node) (Reduction, bool) {
	for i := 0; i < n.NumChildren(); i++ {
		switch n.Child(i).(type) {
		case nil:
			panic("expr: missing child")
		case Undefined:
			return Reduction{Expr: Undefined{}, Status: Invalid}, true
		}
	}
	return Reduction{}, false
}

// UndefinedOnMatrix returns an Invalid reduction to Undefined and
// true if any child of n is a matrix.
func UndefinedOnMatrix(n Node, ctx *Context) (Reduction, bool) {
	for i := 0; i < n.NumChildren(); i++ {
		if IsMatrix(n.Child(i), ctx) {
			return Reduction{Expr: Undefined{}, Status: Invalid}, true
		}
	}
	return Reduction{}, false
}

// DistributeOverLists maps n element-wise over its list children.
// Non-list children are copied into every element. If n has list
// children, it returns the list of per-element copies of n, or
// Undefined if the lists differ in length, and true. It returns
// false if n has no list children.
//
// The elements are not reduced; Reduce does that.
func DistributeOverLists(n Node) (Reduction, bool) {
	length := -1
	for i := 0; i < n.NumChildren(); i++ {
		l, ok := n.Child(i).(*List)
		if !ok {
			continue
		}
		if length >= 0 && l.Len() != length {
			return Reduction{Expr: Undefined{}, Status: Invalid}, true
		}
		length = l.Len()
	}
	if length < 0 {
		return Reduction{}, false
	}
	elems := make([]Expr, length)
	for j := range elems {
		c := shallowCopy(n)
		for i := 0; i < n.NumChildren(); i++ {
			if l, ok := n.Child(i).(*List); ok {
				c.SetChild(i, Clone(l.elems[j]))
			} else {
				c.SetChild(i, Clone(n.Child(i)))
			}
		}
		elems[j] = c
	}
	return Reduction{Expr: NewList(elems...), Status: Reduced}, true
}

// shallowCopy returns a copy of n whose children are to be replaced.
// It clones n with its children temporarily detached so that list
// children are not deep-copied needlessly.
func shallowCopy(n Node) Node {
	saved := make([]Expr, n.NumChildren())
	for i := range saved {
		saved[i] = n.Child(i)
		n.SetChild(i, Undefined{})
	}
	c := n.Clone().(Node)
	for i, e := range saved {
		n.SetChild(i, e)
	}
	return c
}
