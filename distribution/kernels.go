// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distribution

import (
	"fmt"

	"github.com/aclements/go-distcalc/stats"
)

// kernels holds a family's numeric functions in precision T, with the
// parameters passed positionally.
type kernels[T stats.Float] struct {
	ok  func(p *[MaxParams]T) bool
	pdf func(x T, p *[MaxParams]T) T
	cdf func(x T, p *[MaxParams]T) T
	rng func(a, b T, p *[MaxParams]T) T
	inv func(y T, p *[MaxParams]T, s stats.Solver) T // nil without an inverse
	bnd func(p *[MaxParams]T) (T, T)
}

func fwdKernels[T stats.Float, D stats.Dist[T]](mk func(p *[MaxParams]T, s stats.Solver) D) kernels[T] {
	var none stats.Solver
	return kernels[T]{
		ok:  func(p *[MaxParams]T) bool { return mk(p, none).ParamsOK() },
		pdf: func(x T, p *[MaxParams]T) T { return mk(p, none).PDF(x) },
		cdf: func(x T, p *[MaxParams]T) T { return mk(p, none).CDF(x) },
		rng: func(a, b T, p *[MaxParams]T) T { return mk(p, none).CDFRange(a, b) },
		bnd: func(p *[MaxParams]T) (T, T) { return mk(p, none).Bounds() },
	}
}

func invKernels[T stats.Float, D stats.InvDist[T]](mk func(p *[MaxParams]T, s stats.Solver) D) kernels[T] {
	k := fwdKernels(mk)
	k.inv = func(y T, p *[MaxParams]T, s stats.Solver) T { return mk(p, s).InvCDF(y) }
	return k
}

func normalDist[T stats.Float](p *[MaxParams]T, _ stats.Solver) stats.NormalDist[T] {
	return stats.NormalDist[T]{Mu: p[0], Sigma: p[1]}
}

func studentDist[T stats.Float](p *[MaxParams]T, s stats.Solver) stats.StudentDist[T] {
	return stats.StudentDist[T]{V: p[0], Solver: s}
}

func poissonDist[T stats.Float](p *[MaxParams]T, _ stats.Solver) stats.PoissonDist[T] {
	return stats.PoissonDist[T]{Lambda: p[0]}
}

func binomialDist[T stats.Float](p *[MaxParams]T, _ stats.Solver) stats.BinomialDist[T] {
	return stats.BinomialDist[T]{N: p[0], P: p[1]}
}

func geometricDist[T stats.Float](p *[MaxParams]T, _ stats.Solver) stats.GeometricDist[T] {
	return stats.GeometricDist[T]{P: p[0]}
}

func fisherDist[T stats.Float](p *[MaxParams]T, s stats.Solver) stats.FisherDist[T] {
	return stats.FisherDist[T]{D1: p[0], D2: p[1], Solver: s}
}

// kernelsFor returns f's kernels in precision T.
func kernelsFor[T stats.Float](f *Descriptor) *kernels[T] {
	var z T
	switch any(z).(type) {
	case float32:
		return any(&f.k32).(*kernels[T])
	default:
		return any(&f.k64).(*kernels[T])
	}
}

// evaluate runs method m of family k on fixed-size argument arrays.
// Unused trailing entries are ignored.
func evaluate[T stats.Float](k Kind, m Method, x *[MaxAbscissae]T, p *[MaxParams]T, s stats.Solver) T {
	kern := kernelsFor[T](k.Descriptor())
	switch m {
	case PDF:
		return kern.pdf(x[0], p)
	case CDF:
		return kern.cdf(x[0], p)
	case CDFRange:
		return kern.rng(x[0], x[1], p)
	case InverseCDF:
		if kern.inv == nil {
			return stats.NaN[T]()
		}
		return kern.inv(x[0], p, s)
	}
	panic(fmt.Sprintf("distribution: unknown method %d", int(m)))
}

// Evaluate computes method m of family k numerically in precision T.
// s configures the inverse solver; its zero fields take the family's
// defaults. It panics if the argument counts do not match the pair.
//
// Evaluate is the numeric path without an expression tree, for
// callers such as plotters that sample a function many times.
func Evaluate[T stats.Float](k Kind, m Method, abscissae, params []T, s stats.Solver) T {
	f := k.Descriptor()
	if len(abscissae) != m.Descriptor().NumAbscissae() || len(params) != f.NumParams() {
		panic(fmt.Sprintf("distribution: %v %v takes %d abscissae and %d parameters, got %d and %d",
			k, m, m.Descriptor().NumAbscissae(), f.NumParams(), len(abscissae), len(params)))
	}
	var x [MaxAbscissae]T
	var p [MaxParams]T
	copy(x[:], abscissae)
	copy(p[:], params)
	return evaluate(k, m, &x, &p, s)
}

// ParamsOK reports whether params are in the domain of family k.
func ParamsOK[T stats.Float](k Kind, params ...T) bool {
	f := k.Descriptor()
	if len(params) != f.NumParams() {
		return false
	}
	var p [MaxParams]T
	copy(p[:], params)
	return kernelsFor[T](f).ok(&p)
}

// Bounds returns a range outside of which family k with params has
// negligible weight. Discrete families return integer bounds.
func Bounds[T stats.Float](k Kind, params ...T) (lo, hi T) {
	f := k.Descriptor()
	if len(params) != f.NumParams() {
		panic(fmt.Sprintf("distribution: %v takes %d parameters, got %d", k, f.NumParams(), len(params)))
	}
	var p [MaxParams]T
	copy(p[:], params)
	return kernelsFor[T](f).bnd(&p)
}
