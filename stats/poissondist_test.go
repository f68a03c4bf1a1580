// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"
	"testing"

	"gonum.org/v1/gonum/stat/distuv"
)

func TestPoissonDist(t *testing.T) {
	dist := PoissonDist[float64]{Lambda: 2}
	testFunc(t, fmt.Sprintf("%+v.PDF", dist), dist.PDF,
		map[float64]float64{
			-1:  nan,
			0:   math.Exp(-2),
			1:   2 * math.Exp(-2),
			2:   2 * math.Exp(-2),
			2.5: 0,
			3:   4.0 / 3 * math.Exp(-2),
		})
	testDiscreteCDF(t, fmt.Sprintf("%+v.CDF", dist), dist)

	for _, l := range []float64{0.1, 3.5, 40} {
		dist := PoissonDist[float64]{Lambda: l}
		ref := distuv.Poisson{Lambda: l}
		for k := 0.0; k < 60; k++ {
			if e, g := ref.Prob(k), dist.PDF(k); math.Abs(e-g) > 1e-12 {
				t.Errorf("%+v.PDF(%v): expected %g, got %g", dist, k, e, g)
			}
			if e, g := ref.CDF(k), dist.CDF(k); math.Abs(e-g) > 1e-12 {
				t.Errorf("%+v.CDF(%v): expected %g, got %g", dist, k, e, g)
			}
		}
	}
}
