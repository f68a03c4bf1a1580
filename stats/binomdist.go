// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"gonum.org/v1/gonum/mathext"
)

// BinomialDist is a binomial distribution.
type BinomialDist[T Float] struct {
	// N is the number of independent Bernoulli trials. N must be
	// a non-negative integer.
	//
	// If N=1, this is equivalent to the Bernoulli distribution.
	N T

	// P is the probability of success in each trial. 0 <= P <= 1.
	P T
}

func (d BinomialDist[T]) ParamsOK() bool {
	return IsNonNegativeInteger(d.N) && IsProbability(d.P)
}

// PDF is the probability of getting exactly k successes in d.N
// independent Bernoulli trials with probability d.P. It is 0 for
// non-integer k and for k > d.N.
func (d BinomialDist[T]) PDF(k T) T {
	if isBad(k) || !d.ParamsOK() || k < 0 {
		return NaN[T]()
	}
	if !isInteger(k) || k > d.N {
		return 0
	}
	// Handle the degenerate distributions exactly; the log form
	// below would compute 0·log(0).
	switch {
	case d.P == 0:
		if k == 0 {
			return 1
		}
		return 0
	case d.P == 1:
		if k == d.N {
			return 1
		}
		return 0
	}
	n, kf, p := float64(d.N), float64(k), float64(d.P)
	return T(math.Exp(lchoose(n, kf) + kf*math.Log(p) + (n-kf)*math.Log1p(-p)))
}

// CDF is the probability of getting ⌊k⌋ or fewer successes in d.N
// independent Bernoulli trials with probability d.P.
func (d BinomialDist[T]) CDF(k T) T {
	if isBad(k) || !d.ParamsOK() {
		return NaN[T]()
	}
	k = floor(k)
	if k < 0 {
		return 0
	} else if k >= d.N {
		return 1
	}
	return T(mathext.RegIncBeta(float64(d.N-k), float64(k+1), float64(1-d.P)))
}

func (d BinomialDist[T]) CDFRange(a, b T) T {
	return discreteRange(d.CDF, a, b)
}

// InvCDF returns the smallest number of successes k such that
// CDF(k) >= y.
func (d BinomialDist[T]) InvCDF(y T) T {
	if isBad(y) || badProbability(y) || !d.ParamsOK() {
		return NaN[T]()
	}
	k, _ := SolveDiscrete(y, 0, d.N, d.CDF)
	return k
}

func (d BinomialDist[T]) Bounds() (T, T) {
	return 0, d.N
}

// lchoose returns math.Log of the binomial coefficient of n and k.
func lchoose(n, k float64) float64 {
	return lgamma(n+1) - lgamma(k+1) - lgamma(n-k+1)
}
