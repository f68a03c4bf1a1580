// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"math"
	"strconv"
)

// Float is the set of precisions expressions approximate in.
type Float interface {
	float32 | float64
}

// A Complex is an approximated value in precision T.
type Complex[T Float] struct {
	Re, Im T
}

// Real returns the complex value x+0i.
func Real[T Float](x T) Complex[T] {
	return Complex[T]{Re: x}
}

// Undef returns the approximation of Undefined.
func Undef[T Float]() Complex[T] {
	return Complex[T]{Re: T(math.NaN())}
}

// Scalar returns c as a real number, or NaN if c has an imaginary
// part.
func (c Complex[T]) Scalar() T {
	if c.Im != 0 {
		return T(math.NaN())
	}
	return c.Re
}

// Format formats c's real part with digits significant digits.
func (c Complex[T]) Format(digits int) string {
	x := float64(c.Scalar())
	switch {
	case math.IsNaN(x):
		return "undef"
	case math.IsInf(x, 1):
		return "inf"
	case math.IsInf(x, -1):
		return "-inf"
	}
	bits := 64
	if _, ok := any(c.Re).(float32); ok {
		bits = 32
	}
	return strconv.FormatFloat(x, 'g', digits, bits)
}

// An Approximator is an Expr that can evaluate itself numerically.
type Approximator interface {
	Approximate32(ctx *Context) Complex[float32]
	Approximate64(ctx *Context) Complex[float64]
}

// maxApproxDepth bounds symbol expansion during approximation.
const maxApproxDepth = 64

// Approximate evaluates e numerically in precision T. Unbound
// symbols, lists, matrices and Undefined approximate to NaN.
func Approximate[T Float](e Expr, ctx *Context) Complex[T] {
	switch e := e.(type) {
	case *Rational:
		if _, ok := any(T(0)).(float32); ok {
			f, _ := e.v.Float32()
			return Real(T(f))
		}
		return Real(T(e.Float64()))
	case Infinity:
		if e.Negative {
			return Real(T(math.Inf(-1)))
		}
		return Real(T(math.Inf(1)))
	case *Symbol:
		b, ok := ctx.Lookup(e.Name)
		if !ok || ctx.approxDepth >= maxApproxDepth {
			return Undef[T]()
		}
		ctx.approxDepth++
		defer func() { ctx.approxDepth-- }()
		return Approximate[T](b, ctx)
	case *Opposite:
		c := Approximate[T](e.operand, ctx)
		return Complex[T]{Re: -c.Re, Im: -c.Im}
	case Approximator:
		var z T
		switch any(z).(type) {
		case float32:
			return any(e.Approximate32(ctx)).(Complex[T])
		default:
			return any(e.Approximate64(ctx)).(Complex[T])
		}
	}
	return Undef[T]()
}
