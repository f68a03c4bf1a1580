// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"gonum.org/v1/gonum/mathext"
)

// A FisherDist is Fisher's F-distribution with D1 and D2 degrees of
// freedom.
type FisherDist[T Float] struct {
	D1, D2 T

	// Solver configures InvCDF. Zero fields select DefaultSolver.
	Solver Solver
}

func (d FisherDist[T]) ParamsOK() bool {
	return IsPositive(d.D1) && IsPositive(d.D2)
}

func (d FisherDist[T]) PDF(x T) T {
	if isBad(x) || !d.ParamsOK() || x < 0 {
		return NaN[T]()
	}
	if x == 0 {
		// The density behaves like x^(d1/2-1) near 0, so its limit
		// diverges for d1 < 2, is 1 for d1 = 2 and vanishes above.
		// The log form below would give 0/0.
		switch {
		case d.D1 < 2:
			return Inf[T](1)
		case d.D1 == 2:
			return 1
		}
		return 0
	}
	// f = d1·x/(d1·x+d2). The density is
	//
	//   f^(d1/2) · (1-f)^(d2/2) / (x · B(d1/2, d2/2))
	//
	// evaluated in log space so large degrees of freedom don't
	// underflow the Beta function.
	a, b := float64(d.D1/2), float64(d.D2/2)
	dx := float64(d.D1 * x)
	s := float64(d.D1*x + d.D2)
	logF := math.Log(dx) - math.Log(s)
	log1F := math.Log(float64(d.D2)) - math.Log(s)
	return T(math.Exp(a*logF + b*log1F - math.Log(float64(x)) - mathext.Lbeta(a, b)))
}

func (d FisherDist[T]) CDF(x T) T {
	if isBad(x) || !d.ParamsOK() {
		return NaN[T]()
	}
	if x <= 0 {
		return 0
	}
	f := 1 / (1 + d.D2/(d.D1*x))
	return T(mathext.RegIncBeta(float64(d.D1/2), float64(d.D2/2), float64(f)))
}

func (d FisherDist[T]) CDFRange(a, b T) T {
	return continuousRange(d.CDF, a, b)
}

// InvCDF inverts the CDF by bisection over [0, d.Solver.UpperBound].
// Probabilities whose quantile lies beyond the upper bound yield NaN.
func (d FisherDist[T]) InvCDF(y T) T {
	if isBad(y) || badProbability(y) || !d.ParamsOK() {
		return NaN[T]()
	}
	switch y {
	case 0:
		return 0
	case 1:
		return Inf[T](1)
	}
	x, _ := Solve(y, d.CDF, d.Solver)
	return x
}

func (d FisherDist[T]) Bounds() (T, T) {
	hi := d.InvCDF(0.99)
	if isBad(hi) {
		hi = T(d.Solver.withDefaults(DefaultSolver).UpperBound)
	}
	return 0, hi
}
