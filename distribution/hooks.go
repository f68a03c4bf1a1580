// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distribution

import (
	"math"

	"github.com/aclements/go-distcalc/expr"
)

// The hooks below run from ShallowReduce after the parameters have
// been found valid. They consult only the node and the family table.

func reducePDF(d *Dispatcher, ctx *expr.Context) (expr.Expr, bool) {
	return nil, false
}

// reduceCDF folds a literal abscissa below the support to 0.
func reduceCDF(d *Dispatcher, ctx *expr.Context) (expr.Expr, bool) {
	f := d.kind.Descriptor()
	if r, ok := expr.AsRational(d.children[0]); ok && r.Float64() < f.supportMin {
		return expr.Int(0), true
	}
	return nil, false
}

// reduceCDFRange folds an empty continuous interval to 0.
func reduceCDFRange(d *Dispatcher, ctx *expr.Context) (expr.Expr, bool) {
	if d.kind.Descriptor().continuous && d.children[0].Equal(d.children[1]) {
		return expr.Int(0), true
	}
	return nil, false
}

func reduceInverseCDF(d *Dispatcher, ctx *expr.Context) (expr.Expr, bool) {
	f := d.kind.Descriptor()
	if x, ok := inverseOfCDF(d, ctx); ok {
		return x, true
	}
	r, ok := expr.AsRational(d.children[0])
	if !ok {
		return nil, false
	}
	switch {
	case r.IsNegative() || r.Cmp(1, 1) > 0:
		return expr.Undefined{}, true
	case r.IsZero():
		if math.IsInf(f.supportMin, -1) {
			return expr.Infinity{Negative: true}, true
		}
		return expr.Int(int64(f.supportMin)), true
	case r.Cmp(1, 1) == 0 && f.continuous:
		return expr.Infinity{}, true
	case r.Cmp(1, 2) == 0 && f.symmetric:
		if d.kind == Normal {
			return d.Params()[0], true
		}
		return expr.Int(0), true
	}
	return nil, false
}

// inverseOfCDF simplifies invX(Xcdf(x, θ), θ) to x for continuous
// families. The F distribution is only invertible on x ≥ 0.
func inverseOfCDF(d *Dispatcher, ctx *expr.Context) (expr.Expr, bool) {
	inner, ok := d.children[0].(*Dispatcher)
	if !ok || inner.kind != d.kind || inner.method != CDF || !d.kind.Descriptor().continuous {
		return nil, false
	}
	outer := d.Params()
	for i, p := range inner.Params() {
		if !p.Equal(outer[i]) {
			return nil, false
		}
	}
	x := inner.children[0]
	if d.kind == Fisher && expr.SignOf(x, ctx) != expr.SignPositive {
		return nil, false
	}
	return x, true
}
