// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"gonum.org/v1/gonum/mathext"
)

// NormalDist is a normal (Gaussian) distribution with mean Mu and
// standard deviation Sigma.
type NormalDist[T Float] struct {
	Mu, Sigma T
}

// 1/sqrt(2 * pi)
const invSqrt2Pi = 0.39894228040143267793994605993438186847585863116493465766592583

func (d NormalDist[T]) ParamsOK() bool {
	return IsFinite(d.Mu) && IsPositive(d.Sigma)
}

func (d NormalDist[T]) PDF(x T) T {
	if isBad(x) || !d.ParamsOK() {
		return NaN[T]()
	}
	z := (x - d.Mu) / d.Sigma
	return T(math.Exp(float64(-z*z/2))) * T(invSqrt2Pi) / d.Sigma
}

func (d NormalDist[T]) CDF(x T) T {
	if isBad(x) || !d.ParamsOK() {
		return NaN[T]()
	}
	z := (x - d.Mu) / d.Sigma
	return (1 + T(math.Erf(float64(z)/math.Sqrt2))) / 2
}

func (d NormalDist[T]) CDFRange(a, b T) T {
	return continuousRange(d.CDF, a, b)
}

// InvCDF returns the quantile of d at y in closed form.
func (d NormalDist[T]) InvCDF(y T) T {
	if isBad(y) || badProbability(y) || !d.ParamsOK() {
		return NaN[T]()
	}
	switch y {
	case 0:
		return Inf[T](-1)
	case 1:
		return Inf[T](1)
	}
	return d.Mu + d.Sigma*T(mathext.NormalQuantile(float64(y)))
}

func (d NormalDist[T]) Bounds() (T, T) {
	const stddevs = 3
	return d.Mu - stddevs*d.Sigma, d.Mu + stddevs*d.Sigma
}
