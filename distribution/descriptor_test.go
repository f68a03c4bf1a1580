// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distribution

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mathext"

	"github.com/aclements/go-distcalc/expr"
	"github.com/aclements/go-distcalc/stats"
)

func TestRegistry(t *testing.T) {
	pairs := Pairs()
	assert.Len(t, pairs, 21)
	seen := map[string]bool{}
	for _, p := range pairs {
		name := Name(p.Kind, p.Method)
		require.NotEmpty(t, name)
		assert.False(t, seen[name], "duplicate name %s", name)
		seen[name] = true

		k, m, ok := Lookup(name)
		assert.True(t, ok, name)
		assert.Equal(t, p, Pair{k, m}, name)
	}
	assert.Len(t, Functions(), len(pairs))

	_, _, ok := Lookup("poissoninv")
	assert.False(t, ok)
	_, _, ok = Lookup("")
	assert.False(t, ok)
	assert.Equal(t, "", Name(Poisson, InverseCDF))
	assert.Equal(t, "", Name(Binomial, CDFRange))
	assert.False(t, Poisson.Descriptor().HasInverse())
	assert.True(t, Binomial.Descriptor().HasInverse())
}

func TestUnknownTags(t *testing.T) {
	assert.Panics(t, func() { Kind(99).Descriptor() })
	assert.Panics(t, func() { Kind(-1).Descriptor() })
	assert.Panics(t, func() { Method(4).Descriptor() })
	assert.Panics(t, func() { Name(numKinds, PDF) })
	assert.Panics(t, func() { Signature(Poisson, InverseCDF) })
	assert.Equal(t, "Kind(99)", Kind(99).String())
	assert.Equal(t, "Method(7)", Method(7).String())
}

func TestDescriptors(t *testing.T) {
	for _, k := range Kinds {
		f := k.Descriptor()
		assert.Equal(t, k, f.Kind())
		assert.Equal(t, k.String(), f.Name())
		assert.Contains(t, []int{1, 2}, f.NumParams(), "%v", k)
		assert.LessOrEqual(t, f.NumParams(), MaxParams)

		back, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, back)
	}
	for _, m := range Methods {
		assert.LessOrEqual(t, m.Descriptor().NumAbscissae(), MaxAbscissae)
	}
	_, err := ParseKind("gamma")
	assert.Error(t, err)

	assert.Equal(t, 2, CDFRange.Descriptor().NumAbscissae())
	assert.Equal(t, []string{"d1", "d2"}, Fisher.Descriptor().ParamNames())
	assert.Equal(t, math.Inf(-1), Normal.Descriptor().SupportMin())
	assert.Equal(t, 1.0, Geometric.Descriptor().SupportMin())
	assert.Equal(t, 1e6, Student.Descriptor().Solver().UpperBound)
	assert.Equal(t, 100.0, Fisher.Descriptor().Solver().UpperBound)
}

func TestSignature(t *testing.T) {
	assert.Equal(t, "fishercdf(x, d1, d2)", Signature(Fisher, CDF))
	assert.Equal(t, "normcdfrange(x1, x2, mu, sigma)", Signature(Normal, CDFRange))
	assert.Equal(t, "invbinom(a, n, p)", Signature(Binomial, InverseCDF))
	assert.Equal(t, "tpdf(x, k)", Signature(Student, PDF))
}

func TestCheckParameters(t *testing.T) {
	ctx := expr.NewContext()
	ctx.Bind("neg", expr.Int(-2))
	ctx.Bind("pos", expr.Int(2))
	ctx.Bind("m", expr.NewMatrix(1, 1, expr.Int(1)))

	r := func(num, den int64) expr.Expr { return expr.NewRational(num, den) }
	for _, test := range []struct {
		kind   Kind
		params []expr.Expr
		want   Validity
	}{
		{Fisher, []expr.Expr{r(-3, 1), r(5, 1)}, Invalid},
		{Fisher, []expr.Expr{expr.Sym("d1"), r(5, 1)}, Indeterminate},
		{Fisher, []expr.Expr{r(2, 1), r(3, 1)}, Valid},
		{Fisher, []expr.Expr{r(0, 1), r(3, 1)}, Invalid},

		// Stage order: matrices and infinities beat indeterminacy.
		{Fisher, []expr.Expr{expr.Sym("d1"), expr.Infinity{}}, Invalid},
		{Fisher, []expr.Expr{expr.Sym("d1"), expr.Sym("m")}, Invalid},
		{Fisher, []expr.Expr{expr.Sym("d1"), expr.Undefined{}}, Invalid},
		// Unknown reality beats a known bad sign.
		{Fisher, []expr.Expr{expr.Sym("d1"), r(-1, 1)}, Indeterminate},
		// A known bad sign beats a non-literal.
		{Fisher, []expr.Expr{expr.Sym("pos"), expr.Sym("neg")}, Invalid},
		{Fisher, []expr.Expr{expr.Sym("pos"), r(1, 1)}, Indeterminate},
		{Fisher, []expr.Expr{expr.Neg(expr.Sym("neg")), r(1, 1)}, Indeterminate},

		{Normal, []expr.Expr{r(-3, 1), r(1, 2)}, Valid},
		{Normal, []expr.Expr{r(0, 1), r(0, 1)}, Invalid},
		{Normal, []expr.Expr{expr.Sym("mu"), r(1, 1)}, Indeterminate},
		{Normal, []expr.Expr{expr.Sym("neg"), r(1, 1)}, Valid},
		{Normal, []expr.Expr{expr.Infinity{Negative: true}, r(1, 1)}, Invalid},

		{Student, []expr.Expr{r(1, 3)}, Valid},
		{Student, []expr.Expr{r(0, 1)}, Invalid},
		{Student, []expr.Expr{expr.Sym("neg")}, Invalid},

		{Poisson, []expr.Expr{r(7, 2)}, Valid},
		{Poisson, []expr.Expr{r(0, 1)}, Invalid},

		{Binomial, []expr.Expr{r(10, 1), r(1, 2)}, Valid},
		{Binomial, []expr.Expr{r(0, 1), r(0, 1)}, Valid},
		{Binomial, []expr.Expr{r(0, 1), r(1, 1)}, Valid},
		{Binomial, []expr.Expr{r(5, 2), r(1, 2)}, Invalid},
		{Binomial, []expr.Expr{r(-1, 1), r(1, 2)}, Invalid},
		{Binomial, []expr.Expr{r(4, 1), r(3, 2)}, Invalid},

		{Geometric, []expr.Expr{r(1, 1)}, Valid},
		{Geometric, []expr.Expr{r(1, 4)}, Valid},
		{Geometric, []expr.Expr{r(0, 1)}, Invalid},
		{Geometric, []expr.Expr{r(5, 4)}, Invalid},
	} {
		got := test.kind.Descriptor().CheckParameters(test.params, ctx)
		assert.Equal(t, test.want, got, "%v%v", test.kind, test.params)
	}
	assert.Panics(t, func() { Fisher.Descriptor().CheckParameters([]expr.Expr{expr.Int(1)}, ctx) })
}

func TestCheckParametersAgreesWithParamsOK(t *testing.T) {
	// Literal parameters are never judged differently symbolically
	// and numerically.
	grid := []*big.Rat{
		big.NewRat(-3, 2), big.NewRat(-1, 1), big.NewRat(0, 1), big.NewRat(1, 3),
		big.NewRat(1, 2), big.NewRat(1, 1), big.NewRat(3, 2), big.NewRat(2, 1), big.NewRat(7, 1),
	}
	for _, k := range Kinds {
		f := k.Descriptor()
		var each func(prefix []*big.Rat)
		each = func(prefix []*big.Rat) {
			if len(prefix) == f.NumParams() {
				params := make([]expr.Expr, len(prefix))
				values := make([]float64, len(prefix))
				for i, v := range prefix {
					params[i] = expr.RationalFromRat(v)
					values[i], _ = v.Float64()
				}
				want := Invalid
				if ParamsOK(k, values...) {
					want = Valid
				}
				assert.Equal(t, want, f.CheckParameters(params, nil), "%v%v", k, values)
				return
			}
			for _, v := range grid {
				each(append(prefix[:len(prefix):len(prefix)], v))
			}
		}
		each(nil)
	}
}

func TestEvaluate(t *testing.T) {
	got := Evaluate(Fisher, CDF, []float64{1}, []float64{2, 3}, stats.Solver{})
	assert.InDelta(t, mathext.RegIncBeta(1, 1.5, 0.4), got, 1e-12)

	single := Evaluate(Fisher, CDF, []float32{1}, []float32{2, 3}, stats.Solver{})
	assert.InDelta(t, got, float64(single), 1e-6)

	assert.True(t, math.IsNaN(Evaluate(Poisson, InverseCDF, []float64{0.5}, []float64{2}, stats.Solver{})))
	assert.Panics(t, func() { Evaluate(Fisher, CDF, []float64{1, 2}, []float64{2, 3}, stats.Solver{}) })

	assert.True(t, ParamsOK(Binomial, 3.0, 0.5))
	assert.False(t, ParamsOK(Binomial, 3.5, 0.5))
	assert.False(t, ParamsOK[float64](Binomial, 3))
}

func TestStrings(t *testing.T) {
	assert.Equal(t, "fisher", Fisher.String())
	assert.Equal(t, "inverse cdf", InverseCDF.String())
	assert.Equal(t, "indeterminate", Indeterminate.String())
	assert.Equal(t, "Validity(9)", Validity(9).String())
}
