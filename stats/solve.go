// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "fmt"

// A Solver configures Solve.
//
// The zero value of each field selects the corresponding field of
// DefaultSolver. The defaults are calculator-grade choices, not
// guarantees: a root beyond UpperBound is reported as Unreachable
// rather than approximated.
type Solver struct {
	// Tolerance is the width of the bracketing interval at which
	// Solve stops.
	Tolerance float64

	// UpperBound is the upper end of the search interval
	// [0, UpperBound].
	UpperBound float64

	// MaxIterations bounds the number of bisection steps, and
	// with it the latency of a single inversion.
	MaxIterations int
}

// DefaultSolver is the configuration used for zero Solver fields.
var DefaultSolver = Solver{
	Tolerance:     0x1p-52, // DBL_EPSILON
	UpperBound:    100,
	MaxIterations: 200,
}

// withDefaults returns s with zero fields replaced by those of def.
func (s Solver) withDefaults(def Solver) Solver {
	if s.Tolerance == 0 {
		s.Tolerance = def.Tolerance
	}
	if s.UpperBound == 0 {
		s.UpperBound = def.UpperBound
	}
	if s.MaxIterations == 0 {
		s.MaxIterations = def.MaxIterations
	}
	return s
}

// SolveStatus describes how Solve terminated.
type SolveStatus int

const (
	// Converged means the bracketing interval shrank below the
	// tolerance, or to adjacent floating-point values.
	Converged SolveStatus = iota

	// IterationLimit means Solve ran MaxIterations steps and
	// returned the midpoint of the remaining interval.
	IterationLimit

	// Unreachable means the target lies outside
	// [forward(0), forward(UpperBound)] and Solve returned NaN.
	Unreachable
)

func (s SolveStatus) String() string {
	switch s {
	case Converged:
		return "converged"
	case IterationLimit:
		return "iteration limit"
	case Unreachable:
		return "unreachable"
	}
	return fmt.Sprintf("SolveStatus(%d)", int(s))
}

// Solve returns an x in [0, s.UpperBound] such that forward(x) ≈
// target, using bisection.
//
// forward must be monotone increasing over the search interval. This
// is not verified. If the target is not bracketed by forward(0) and
// forward(s.UpperBound), Solve returns NaN and Unreachable.
func Solve[T Float](target T, forward func(T) T, s Solver) (T, SolveStatus) {
	s = s.withDefaults(DefaultSolver)
	if isNaN(target) {
		return NaN[T](), Unreachable
	}
	low, high := T(0), T(s.UpperBound)
	flow, fhigh := forward(low), forward(high)
	if flow > target || fhigh < target || isNaN(flow) || isNaN(fhigh) {
		return NaN[T](), Unreachable
	}
	if flow == target {
		return low, Converged
	}
	for i := 0; i < s.MaxIterations; i++ {
		if float64(high-low) < s.Tolerance {
			return (low + high) / 2, Converged
		}
		mid := (low + high) / 2
		if mid == low || mid == high {
			return mid, Converged
		}
		// Invariant: forward(low) <= target <= forward(high).
		if forward(mid) < target {
			low = mid
		} else {
			high = mid
		}
	}
	return (low + high) / 2, IterationLimit
}

// maxDiscreteSteps bounds SolveDiscrete. Each step at least halves
// [lo, hi], so this covers every float32 range and float64 ranges up
// to 2^128.
const maxDiscreteSteps = 128

// SolveDiscrete returns the smallest integer k in [lo, hi] such that
// cdf(k) >= target, using binary search. lo and hi must be integers
// and cdf must be non-decreasing.
//
// If cdf(hi) < target, SolveDiscrete returns NaN and Unreachable.
// Beyond T's exact-integer range the search stops once [lo, hi] can
// no longer be split and returns hi, the smallest representable k
// known to satisfy the target.
func SolveDiscrete[T Float](target, lo, hi T, cdf func(T) T) (T, SolveStatus) {
	if isNaN(target) || !(cdf(hi) >= target) {
		return NaN[T](), Unreachable
	}
	// Invariant: cdf(hi) >= target, and cdf(k) < target for
	// every integer k < lo.
	for i := 0; lo < hi; i++ {
		if i == maxDiscreteSteps {
			return hi, IterationLimit
		}
		mid := floor(lo + (hi-lo)/2)
		if cdf(mid) >= target {
			if mid >= hi {
				return hi, Converged
			}
			hi = mid
		} else {
			next := mid + 1
			if next <= lo {
				return hi, Converged
			}
			lo = next
		}
	}
	return lo, Converged
}
