// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// A GeometricDist is the distribution of the number of Bernoulli
// trials with success probability P needed to get one success. Its
// support is {1, 2, ...}.
type GeometricDist[T Float] struct {
	P T
}

func (d GeometricDist[T]) ParamsOK() bool {
	return IsPositiveProbability(d.P)
}

// PDF returns Pr[X = k] = (1-P)^(k-1)·P. It is 0 for non-integer k.
func (d GeometricDist[T]) PDF(k T) T {
	if isBad(k) || !d.ParamsOK() || k < 1 {
		return NaN[T]()
	}
	if !isInteger(k) {
		return 0
	}
	if d.P == 1 {
		if k == 1 {
			return 1
		}
		return 0
	}
	return T(math.Exp(float64(k-1)*math.Log1p(float64(-d.P)))) * d.P
}

// CDF returns Pr[X <= ⌊k⌋] = 1 - (1-P)^⌊k⌋.
func (d GeometricDist[T]) CDF(k T) T {
	if isBad(k) || !d.ParamsOK() {
		return NaN[T]()
	}
	k = floor(k)
	if k < 1 {
		return 0
	}
	return T(-math.Expm1(float64(k) * math.Log1p(float64(-d.P))))
}

func (d GeometricDist[T]) CDFRange(a, b T) T {
	return discreteRange(d.CDF, a, b)
}

// InvCDF returns the smallest number of trials k such that
// CDF(k) >= y.
func (d GeometricDist[T]) InvCDF(y T) T {
	if isBad(y) || badProbability(y) || !d.ParamsOK() {
		return NaN[T]()
	}
	if y == 1 && d.P < 1 {
		return Inf[T](1)
	}
	// Closed form, then correct for rounding in either direction.
	// The correction is at most a step or two; the limit keeps
	// this bounded where k exceeds T's integer precision.
	const maxCorrection = 4
	k := T(math.Ceil(math.Log1p(float64(-y)) / math.Log1p(float64(-d.P))))
	if isNaN(k) || k < 1 {
		k = 1
	}
	for i := 0; i < maxCorrection && k > 1 && d.CDF(k-1) >= y; i++ {
		k--
	}
	for i := 0; i < maxCorrection && d.CDF(k) < y; i++ {
		k++
	}
	return k
}

func (d GeometricDist[T]) Bounds() (T, T) {
	hi := d.InvCDF(0.999)
	if isBad(hi) {
		hi = 1
	}
	return 1, hi
}
