// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

// A Dist is a statistical distribution evaluated in precision T.
//
// For discrete distributions, PDF is the probability mass function
// and CDF(x) is Pr[X <= ⌊x⌋].
type Dist[T Float] interface {
	// ParamsOK reports whether the distribution's parameters are
	// in its domain. All other methods return NaN if it is false.
	ParamsOK() bool

	// PDF returns the value of the probability density (or mass)
	// function at x. It is NaN below the support.
	PDF(x T) T

	// CDF returns the value of the cumulative distribution
	// function at x.
	CDF(x T) T

	// CDFRange returns Pr[a < X <= b] for continuous
	// distributions and Pr[a <= X <= b] for discrete ones.
	CDFRange(a, b T) T

	// Bounds returns reasonable bounds for plotting this
	// distribution's PDF and CDF. The total weight outside of
	// these bounds should be approximately 0.
	Bounds() (T, T)
}

// An InvDist is a Dist with an inverse cumulative distribution
// function.
type InvDist[T Float] interface {
	Dist[T]

	// InvCDF returns the inverse of the CDF for y. That is,
	// InvCDF(CDF(x)) = x for x inside the support. For discrete
	// distributions, it returns the smallest k with CDF(k) >= y.
	// y must be in [0, 1].
	InvCDF(y T) T
}

// continuousRange implements CDFRange for continuous distributions.
func continuousRange[T Float](cdf func(T) T, a, b T) T {
	if isNaN(a) || isNaN(b) {
		return NaN[T]()
	}
	if b <= a {
		return 0
	}
	return cdf(b) - cdf(a)
}

// discreteRange implements CDFRange for integer-valued distributions.
// The lower end is inclusive: Pr[⌈a⌉ <= X <= ⌊b⌋].
func discreteRange[T Float](cdf func(T) T, a, b T) T {
	if isNaN(a) || isNaN(b) {
		return NaN[T]()
	}
	if b < a {
		return 0
	}
	return cdf(b) - cdf(-floor(-a)-1)
}

// badProbability reports whether y cannot be inverted.
func badProbability[T Float](y T) bool {
	return !IsProbability(y)
}
