// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"gonum.org/v1/gonum/mathext"
)

// A StudentDist is a Student's t-distribution with V degrees of
// freedom.
type StudentDist[T Float] struct {
	V T

	// Solver configures InvCDF. Zero fields select StudentSolver.
	Solver Solver
}

// StudentSolver is the default inverse configuration for
// StudentDist. The t-distribution has heavy tails at low V, so its
// search interval is much wider than DefaultSolver's.
var StudentSolver = Solver{UpperBound: 1e6}.withDefaults(DefaultSolver)

func (d StudentDist[T]) ParamsOK() bool {
	return IsPositive(d.V)
}

func (d StudentDist[T]) PDF(x T) T {
	if isBad(x) || !d.ParamsOK() {
		return NaN[T]()
	}
	v := float64(d.V)
	factor := T(math.Exp(lgamma((v+1)/2)-lgamma(v/2)) / math.Sqrt(v*math.Pi))
	return factor * T(math.Pow(float64(1+x*x/d.V), -(v+1)/2))
}

func (d StudentDist[T]) CDF(x T) T {
	if isBad(x) || !d.ParamsOK() {
		return NaN[T]()
	}
	if x == 0 {
		return 0.5
	}
	// The tail beyond |x| is I_{V/(V+x²)}(V/2, 1/2) / 2.
	tail := T(0.5 * mathext.RegIncBeta(float64(d.V/2), 0.5, float64(d.V/(d.V+x*x))))
	if x > 0 {
		return 1 - tail
	}
	return tail
}

func (d StudentDist[T]) CDFRange(a, b T) T {
	return continuousRange(d.CDF, a, b)
}

// InvCDF inverts the CDF by bisection on the non-negative half-line,
// using the distribution's symmetry about 0 for y < 1/2.
func (d StudentDist[T]) InvCDF(y T) T {
	if isBad(y) || badProbability(y) || !d.ParamsOK() {
		return NaN[T]()
	}
	switch {
	case y == 0:
		return Inf[T](-1)
	case y == 1:
		return Inf[T](1)
	case y == 0.5:
		return 0
	case y < 0.5:
		x, _ := Solve(1-y, d.CDF, d.Solver.withDefaults(StudentSolver))
		return -x
	}
	x, _ := Solve(y, d.CDF, d.Solver.withDefaults(StudentSolver))
	return x
}

func (d StudentDist[T]) Bounds() (T, T) {
	return -4, 4
}
