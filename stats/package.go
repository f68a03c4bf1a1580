// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats implements the probability distributions a calculator
// exposes as prefix calls: their validity predicates, density and
// cumulative functions, and inverse cumulative functions.
//
// Every distribution is a small value type parameterized by the
// floating-point precision it evaluates in. The float32 instantiation
// serves interactive redraw paths; the float64 instantiation produces
// displayed answers. Both run the same algorithm. Arithmetic on the
// operands happens in the instantiated precision, while special
// functions (error function, log-gamma, the regularized incomplete
// beta and gamma functions) are evaluated in float64 and rounded.
//
// Invalid inputs never panic. Any NaN or infinite argument, any
// parameter outside its family's domain, and any unreachable inverse
// produce NaN.
package stats // import "github.com/aclements/go-distcalc/stats"

import "math"

// Float is the set of precisions distributions evaluate in.
type Float interface {
	float32 | float64
}

var inf = math.Inf(1)
var nan = math.NaN()

// NaN returns the not-a-number sentinel in precision T.
func NaN[T Float]() T {
	return T(nan)
}

// Inf returns positive infinity if sign >= 0 and negative infinity
// otherwise, in precision T.
func Inf[T Float](sign int) T {
	return T(math.Inf(sign))
}

func isNaN[T Float](x T) bool {
	return x != x
}

func isInf[T Float](x T) bool {
	return math.IsInf(float64(x), 0)
}

// isBad reports whether any of xs is NaN or infinite.
func isBad[T Float](xs ...T) bool {
	for _, x := range xs {
		if isNaN(x) || isInf(x) {
			return true
		}
	}
	return false
}

func isInteger[T Float](x T) bool {
	return x == T(math.Floor(float64(x)))
}

func floor[T Float](x T) T {
	return T(math.Floor(float64(x)))
}

func lgamma(x float64) float64 {
	y, _ := math.Lgamma(x)
	return y
}
