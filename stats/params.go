// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

// Parameter constraints. Each distribution's ParamsOK is the
// conjunction of these predicates over its parameters, and symbolic
// validity checks apply exactly the same predicates to literal
// parameter values.

// IsFinite reports whether x is neither NaN nor infinite.
func IsFinite[T Float](x T) bool {
	return !isBad(x)
}

// IsPositive reports whether x is finite and strictly positive.
func IsPositive[T Float](x T) bool {
	return IsFinite(x) && x > 0
}

// IsNonNegativeInteger reports whether x is a finite integer >= 0.
func IsNonNegativeInteger[T Float](x T) bool {
	return IsFinite(x) && x >= 0 && isInteger(x)
}

// IsProbability reports whether x is in [0, 1].
func IsProbability[T Float](x T) bool {
	return IsFinite(x) && 0 <= x && x <= 1
}

// IsPositiveProbability reports whether x is in (0, 1].
func IsPositiveProbability[T Float](x T) bool {
	return IsFinite(x) && 0 < x && x <= 1
}
