// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"gonum.org/v1/gonum/mathext"
)

// A PoissonDist is a Poisson distribution with rate Lambda.
type PoissonDist[T Float] struct {
	Lambda T
}

func (d PoissonDist[T]) ParamsOK() bool {
	return IsPositive(d.Lambda)
}

// PDF returns Pr[X = k]. It is 0 for non-integer k.
func (d PoissonDist[T]) PDF(k T) T {
	if isBad(k) || !d.ParamsOK() || k < 0 {
		return NaN[T]()
	}
	if !isInteger(k) {
		return 0
	}
	kf, l := float64(k), float64(d.Lambda)
	return T(math.Exp(kf*math.Log(l) - l - lgamma(kf+1)))
}

// CDF returns Pr[X <= ⌊k⌋], which is the upper regularized incomplete
// gamma function Q(⌊k⌋+1, Lambda).
func (d PoissonDist[T]) CDF(k T) T {
	if isBad(k) || !d.ParamsOK() {
		return NaN[T]()
	}
	k = floor(k)
	if k < 0 {
		return 0
	}
	return T(mathext.GammaIncRegComp(float64(k+1), float64(d.Lambda)))
}

func (d PoissonDist[T]) CDFRange(a, b T) T {
	return discreteRange(d.CDF, a, b)
}

func (d PoissonDist[T]) Bounds() (T, T) {
	// Mean and variance are both Lambda.
	hi := d.Lambda + 4*T(math.Sqrt(float64(d.Lambda))) + 4
	return 0, floor(hi)
}
