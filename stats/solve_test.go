// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"testing"
	"time"
)

func TestSolve(t *testing.T) {
	f := FisherDist[float64]{D1: 2, D2: 3}
	for _, target := range []float64{0, 0.01, 0.25, 0.5, 0.9, 0.99} {
		x, status := Solve(target, f.CDF, Solver{})
		if status != Converged {
			t.Errorf("Solve(%v): status %v, want %v", target, status, Converged)
		}
		if got := f.CDF(x); math.Abs(got-target) > 1e-12 {
			t.Errorf("CDF(Solve(%v)) = %v", target, got)
		}
	}
}

func TestSolveUnreachable(t *testing.T) {
	// fishercdf(100, 2, 3) ≈ 0.9982, so no root lies in [0, 100].
	f := FisherDist[float64]{D1: 2, D2: 3}
	x, status := Solve(0.999999, f.CDF, Solver{Tolerance: 1e-12, UpperBound: 100})
	if !math.IsNaN(x) || status != Unreachable {
		t.Errorf("Solve(0.999999) = %v, %v; want NaN, %v", x, status, Unreachable)
	}
	// Widening the bound makes the same target reachable.
	x, status = Solve(0.999999, f.CDF, Solver{Tolerance: 1e-12, UpperBound: 1e6})
	if status != Converged || math.Abs(f.CDF(x)-0.999999) > 1e-9 {
		t.Errorf("Solve(0.999999) with bound 1e6 = %v, %v", x, status)
	}
	// Targets below forward(0) are unreachable too.
	if x, status := Solve(-0.5, f.CDF, Solver{}); !math.IsNaN(x) || status != Unreachable {
		t.Errorf("Solve(-0.5) = %v, %v; want NaN, %v", x, status, Unreachable)
	}
	if x, status := Solve(nan, f.CDF, Solver{}); !math.IsNaN(x) || status != Unreachable {
		t.Errorf("Solve(NaN) = %v, %v; want NaN, %v", x, status, Unreachable)
	}
}

func TestSolveIterationLimit(t *testing.T) {
	identity := func(x float64) float64 { return x }
	x, status := Solve(30, identity, Solver{MaxIterations: 2})
	if status != IterationLimit {
		t.Errorf("status %v, want %v", status, IterationLimit)
	}
	// [0,100] → [0,50] → [25,50], midpoint 37.5.
	if x != 37.5 {
		t.Errorf("Solve = %v, want 37.5", x)
	}
}

func TestSolveTolerance(t *testing.T) {
	identity := func(x float32) float32 { return x }
	x, status := Solve[float32](0.3, identity, Solver{Tolerance: 0.1, UpperBound: 1})
	if status != Converged || math.Abs(float64(x)-0.3) > 0.1 {
		t.Errorf("Solve = %v, %v", x, status)
	}
}

func TestSolveDiscrete(t *testing.T) {
	steps := func(k float64) float64 { return math.Min(1, math.Max(0, k)/10) }
	for target, want := range map[float64]float64{
		0:    0,
		0.05: 1,
		0.1:  1,
		0.55: 6,
		1:    10,
	} {
		if got, status := SolveDiscrete(target, 0, 20, steps); got != want || status != Converged {
			t.Errorf("SolveDiscrete(%v) = %v, %v; want %v", target, got, status, want)
		}
	}
	if got, status := SolveDiscrete(0.5, 0, 3, steps); !math.IsNaN(got) || status != Unreachable {
		t.Errorf("SolveDiscrete past hi = %v, %v", got, status)
	}
}

func TestSolveDiscreteLargeBounds(t *testing.T) {
	// Past 2^24, float32 integers are 32 apart near 5e8.
	linear32 := func(k float32) float32 { return k / 1e9 }
	var got32 float32
	var status32 SolveStatus
	returnsWithin(t, 10*time.Second, func() {
		got32, status32 = SolveDiscrete[float32](0.5, 0, 1e9, linear32)
	})
	if status32 != Converged || math.Abs(float64(got32)-5e8) > 64 {
		t.Errorf("SolveDiscrete[float32] = %v, %v; want ≈5e8, %v", got32, status32, Converged)
	}

	const n = 1 << 60
	linear64 := func(k float64) float64 { return k / n }
	var got64 float64
	var status64 SolveStatus
	returnsWithin(t, 10*time.Second, func() {
		got64, status64 = SolveDiscrete(0.5, 0, n, linear64)
	})
	if status64 != Converged || got64 != n/2 {
		t.Errorf("SolveDiscrete[float64] = %v, %v; want %v, %v", got64, status64, float64(n/2), Converged)
	}
}

func TestSolveDiscreteStepLimit(t *testing.T) {
	// The root is near 2^10 in a range of 2^200, more halvings
	// than the search allows.
	hi := math.Ldexp(1, 200)
	target := math.Ldexp(1, -190)
	linear := func(k float64) float64 { return k / hi }
	got, status := SolveDiscrete(target, 0, hi, linear)
	if status != IterationLimit {
		t.Errorf("status %v, want %v", status, IterationLimit)
	}
	if linear(got) < target {
		t.Errorf("SolveDiscrete = %v, below the target", got)
	}
}

func TestSolveStatusString(t *testing.T) {
	for s, want := range map[SolveStatus]string{
		Converged:      "converged",
		IterationLimit: "iteration limit",
		Unreachable:    "unreachable",
		SolveStatus(9): "SolveStatus(9)",
	} {
		if got := s.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", int(s), got, want)
		}
	}
}
