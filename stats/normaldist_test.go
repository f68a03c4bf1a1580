// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/stat/distuv"
)

func TestStdNormal(t *testing.T) {
	d := NormalDist[float64]{0, 1}
	if e, g := 1/math.Sqrt(2*math.Pi), d.PDF(0); !aeq(e, g) {
		t.Errorf("bad value at 0: expected %g, got %g", e, g)
	}
	if e, g := 1/math.Sqrt(2*math.Pi)*math.Exp(-0.5), d.PDF(1); !aeq(e, g) {
		t.Errorf("bad value at 1: expected %g, got %g", e, g)
	}
	if e, g := 1/math.Sqrt(2*math.Pi)*math.Exp(-0.5), d.PDF(-1); !aeq(e, g) {
		t.Errorf("bad value at -1: expected %g, got %g", e, g)
	}
	if e, g := 0.0, d.PDF(-10000); !aeq(e, g) {
		t.Errorf("bad value at low tail: expected %g, got %g", e, g)
	}
	if e, g := 0.0, d.PDF(10000); !aeq(e, g) {
		t.Errorf("bad value at high tail: expected %g, got %g", e, g)
	}
}

func TestStdNormalIntegral(t *testing.T) {
	d := NormalDist[float64]{0, 1}
	if e, g := 0.5, d.CDF(0); !aeq(e, g) {
		t.Errorf("bad value at 0: expected %g, got %g", e, g)
	}
	if e, g := 0.0, d.CDF(-10000); !aeq(e, g) {
		t.Errorf("bad value at low tail: expected %g, got %g", e, g)
	}
	if e, g := 1.0, d.CDF(10000); !aeq(e, g) {
		t.Errorf("bad value at high tail: expected %g, got %g", e, g)
	}
}

func TestNormalReference(t *testing.T) {
	d := NormalDist[float64]{Mu: 1.5, Sigma: 2}
	ref := distuv.Normal{Mu: 1.5, Sigma: 2}
	for _, x := range []float64{-5, -1, 0, 1.5, 2, 7} {
		if e, g := ref.Prob(x), d.PDF(x); math.Abs(e-g) > 1e-12 {
			t.Errorf("PDF(%v): expected %g, got %g", x, e, g)
		}
		if e, g := ref.CDF(x), d.CDF(x); math.Abs(e-g) > 1e-12 {
			t.Errorf("CDF(%v): expected %g, got %g", x, e, g)
		}
	}
	for _, y := range []float64{0.001, 0.1, 0.5, 0.8, 0.999} {
		if e, g := ref.Quantile(y), d.InvCDF(y); math.Abs(e-g) > 1e-9 {
			t.Errorf("InvCDF(%v): expected %g, got %g", y, e, g)
		}
	}
}

func TestNormalInvalid(t *testing.T) {
	for _, d := range []NormalDist[float64]{
		{Mu: 0, Sigma: 0},
		{Mu: 0, Sigma: -1},
		{Mu: inf, Sigma: 1},
		{Mu: nan, Sigma: 1},
		{Mu: 0, Sigma: inf},
	} {
		if g := d.PDF(0); !math.IsNaN(g) {
			t.Errorf("%+v.PDF(0) = %v, want NaN", d, g)
		}
		if g := d.CDF(0); !math.IsNaN(g) {
			t.Errorf("%+v.CDF(0) = %v, want NaN", d, g)
		}
		if g := d.InvCDF(0.5); !math.IsNaN(g) {
			t.Errorf("%+v.InvCDF(0.5) = %v, want NaN", d, g)
		}
	}
	d := NormalDist[float64]{0, 1}
	testFunc(t, "InvCDF", d.InvCDF, map[float64]float64{
		-0.5: nan,
		0:    math.Inf(-1),
		0.5:  0,
		1:    math.Inf(1),
		1.5:  nan,
	})
	testFunc(t, "PDF", d.PDF, map[float64]float64{
		math.Inf(1):  nan,
		math.Inf(-1): nan,
	})
}
