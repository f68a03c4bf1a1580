// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"sort"
	"testing"
	"time"
)

func aeq(expect, got float64) bool {
	if math.IsNaN(expect) || math.IsInf(expect, 0) {
		return expect == got || math.IsNaN(expect) && math.IsNaN(got)
	}
	return math.Abs(expect-got) < 0.00001
}

// testFunc checks f against a table of expected values.
func testFunc(t *testing.T, name string, f func(float64) float64, vals map[float64]float64) {
	t.Helper()
	xs := make([]float64, 0, len(vals))
	for x := range vals {
		xs = append(xs, x)
	}
	sort.Float64s(xs)
	for _, x := range xs {
		want, got := vals[x], f(x)
		if !aeq(want, got) {
			t.Errorf("%s(%v) = %v, want %v", name, x, got, want)
		}
	}
}

// discreteDist is the subset of a discrete Dist testDiscreteCDF uses.
type discreteDist interface {
	PDF(k float64) float64
	CDF(k float64) float64
	Bounds() (float64, float64)
}

// testDiscreteCDF checks that dist.CDF is the running sum of
// dist.PDF over dist's bounds, and that it is a step function.
func testDiscreteCDF(t *testing.T, name string, dist discreteDist) {
	t.Helper()
	lo, hi := dist.Bounds()
	if want, got := 0.0, dist.CDF(lo-1); !aeq(want, got) {
		t.Errorf("%s(%v) = %v, want %v", name, lo-1, got, want)
	}
	sum := 0.0
	for k := lo; k <= hi; k++ {
		sum += dist.PDF(k)
		if got := dist.CDF(k); !aeq(sum, got) {
			t.Errorf("%s(%v) = %v, want %v", name, k, got, sum)
		}
		if got := dist.CDF(k + 0.5); !aeq(sum, got) {
			t.Errorf("%s(%v) = %v, want %v", name, k+0.5, got, sum)
		}
	}
}

// testInvCDF checks that InvCDF inverts CDF at each of xs.
func testInvCDF(t *testing.T, name string, dist InvDist[float64], xs []float64, tolerance float64) {
	t.Helper()
	for _, x := range xs {
		y := dist.CDF(x)
		if got := dist.InvCDF(y); math.Abs(got-x) > tolerance {
			t.Errorf("%s.InvCDF(CDF(%v) = %v) = %v, want %v", name, x, y, got, x)
		}
	}
}

// returnsWithin fails t if f has not returned after d.
func returnsWithin(t *testing.T, d time.Duration, f func()) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		defer close(done)
		f()
	}()
	select {
	case <-done:
	case <-time.After(d):
		t.Fatalf("did not return in %v", d)
	}
}
