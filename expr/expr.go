// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package expr is a small symbolic expression engine: literal
// numbers, symbols, lists and matrices, a bottom-up reduction driver,
// a numeric evaluator at two precisions, and a parser for the textual
// form produced by String.
//
// Function-call nodes are supplied by other packages. They implement
// Node to expose their children, Reducer to take part in reduction,
// and Approximator to take part in numeric evaluation, and they are
// made parseable by listing them in a FuncTable.
//
// Reduction mutates nodes in place. An expression tree has a single
// owner, so a subtree must not be shared between two trees; use Clone
// to copy one.
package expr // import "github.com/aclements/go-distcalc/expr"

import "fmt"

// An Expr is a node of an expression tree.
//
// Implementations must be comparable with ==; in practice they are
// pointers or small structs.
type Expr interface {
	// String returns the textual form of the expression, which
	// Parse accepts and turns back into an equal expression.
	String() string

	// Equal reports whether the expression is structurally
	// identical to other.
	Equal(other Expr) bool
}

// A Node is an Expr with child expressions.
type Node interface {
	Expr

	NumChildren() int
	Child(i int) Expr

	// SetChild replaces the i'th child in place.
	SetChild(i int, e Expr)

	// Clone returns a deep copy of the node.
	Clone() Expr
}

// A Reducer is an Expr that can simplify itself once its children
// are reduced.
type Reducer interface {
	Expr

	// ShallowReduce reduces the node, assuming its children are
	// already reduced. It returns the replacement expression,
	// which may be the node itself.
	ShallowReduce(ctx *Context) Reduction
}

// Status is the outcome of a reduction step.
type Status int

const (
	// Reduced means the expression is as reduced as it will get
	// symbolically. It may still need numeric approximation.
	Reduced Status = iota

	// NotYetReducible means not enough is known about the
	// expression's operands to reduce it. The expression is left
	// unchanged and a later reduction, with more known, may
	// succeed.
	NotYetReducible

	// Invalid means the expression is undefined. The replacement
	// is Undefined.
	Invalid
)

func (s Status) String() string {
	switch s {
	case Reduced:
		return "reduced"
	case NotYetReducible:
		return "not yet reducible"
	case Invalid:
		return "invalid"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// worse returns the more severe of two statuses.
func worse(a, b Status) Status {
	if b > a {
		return b
	}
	return a
}

// A Reduction is the result of ShallowReduce.
type Reduction struct {
	Expr   Expr
	Status Status
}

// Sign is what is known about the sign of an expression.
type Sign int

const (
	SignUnknown Sign = iota

	// SignNegative means the expression is < 0.
	SignNegative

	// SignPositive means the expression is >= 0. Zero reports
	// SignPositive, so code that needs strict positivity must
	// also rule out a zero literal.
	SignPositive
)

func (s Sign) String() string {
	switch s {
	case SignUnknown:
		return "unknown"
	case SignNegative:
		return "negative"
	case SignPositive:
		return "positive"
	}
	return fmt.Sprintf("Sign(%d)", int(s))
}

// A Signer is an Expr that knows something about its own sign.
type Signer interface {
	Sign(ctx *Context) Sign
}

// A Realer is an Expr that can tell whether it is a real number.
type Realer interface {
	IsReal(ctx *Context) bool
}

// Clone returns a deep copy of e. Leaves are immutable and returned
// as is.
func Clone(e Expr) Expr {
	if n, ok := e.(Node); ok {
		return n.Clone()
	}
	return e
}

func equalChildren(a, b Node) bool {
	if a.NumChildren() != b.NumChildren() {
		return false
	}
	for i := 0; i < a.NumChildren(); i++ {
		if !a.Child(i).Equal(b.Child(i)) {
			return false
		}
	}
	return true
}
