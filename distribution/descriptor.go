// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distribution

import (
	"fmt"
	"math"
	"strings"

	"github.com/aclements/go-distcalc/expr"
	"github.com/aclements/go-distcalc/stats"
)

// A Descriptor is the immutable description of a distribution
// family.
type Descriptor struct {
	kind        Kind
	name        string
	params      []string
	constraints []constraint
	continuous  bool
	symmetric   bool

	// supportMin is the lower end of the support. It is -Inf for
	// families supported on all of ℝ.
	supportMin float64

	solver stats.Solver

	k32 kernels[float32]
	k64 kernels[float64]
}

var families = [numKinds]Descriptor{
	Normal: {
		kind:        Normal,
		name:        "normal",
		params:      []string{"mu", "sigma"},
		constraints: []constraint{finite, positive},
		continuous:  true,
		symmetric:   true,
		supportMin:  math.Inf(-1),
		solver:      stats.DefaultSolver,
		k32:         invKernels(normalDist[float32]),
		k64:         invKernels(normalDist[float64]),
	},
	Student: {
		kind:        Student,
		name:        "student",
		params:      []string{"k"},
		constraints: []constraint{positive},
		continuous:  true,
		symmetric:   true,
		supportMin:  math.Inf(-1),
		solver:      stats.StudentSolver,
		k32:         invKernels(studentDist[float32]),
		k64:         invKernels(studentDist[float64]),
	},
	Poisson: {
		kind:        Poisson,
		name:        "poisson",
		params:      []string{"lambda"},
		constraints: []constraint{positive},
		supportMin:  0,
		solver:      stats.DefaultSolver,
		k32:         fwdKernels(poissonDist[float32]),
		k64:         fwdKernels(poissonDist[float64]),
	},
	Binomial: {
		kind:        Binomial,
		name:        "binomial",
		params:      []string{"n", "p"},
		constraints: []constraint{nonNegativeInteger, probability},
		supportMin:  0,
		solver:      stats.DefaultSolver,
		k32:         invKernels(binomialDist[float32]),
		k64:         invKernels(binomialDist[float64]),
	},
	Geometric: {
		kind:        Geometric,
		name:        "geometric",
		params:      []string{"p"},
		constraints: []constraint{positiveProbability},
		supportMin:  1,
		solver:      stats.DefaultSolver,
		k32:         invKernels(geometricDist[float32]),
		k64:         invKernels(geometricDist[float64]),
	},
	Fisher: {
		kind:        Fisher,
		name:        "fisher",
		params:      []string{"d1", "d2"},
		constraints: []constraint{positive, positive},
		continuous:  true,
		supportMin:  0,
		solver:      stats.DefaultSolver,
		k32:         invKernels(fisherDist[float32]),
		k64:         invKernels(fisherDist[float64]),
	},
}

// Descriptor returns the description of family k. It panics if k is
// not a family.
func (k Kind) Descriptor() *Descriptor {
	if k < 0 || k >= numKinds {
		panic(fmt.Sprintf("distribution: unknown kind %d", int(k)))
	}
	return &families[k]
}

// Kind returns the family f describes.
func (f *Descriptor) Kind() Kind {
	return f.kind
}

func (f *Descriptor) Name() string { return f.name }

// NumParams returns the number of parameters of the family.
func (f *Descriptor) NumParams() int { return len(f.params) }

// ParamNames returns the names of the family's parameters in order.
func (f *Descriptor) ParamNames() []string {
	return append([]string(nil), f.params...)
}

// IsContinuous reports whether the family has a density, as opposed
// to an integer-valued mass function.
func (f *Descriptor) IsContinuous() bool { return f.continuous }

// IsSymmetric reports whether the family is symmetric about its
// first parameter (or 0 if it has no location parameter).
func (f *Descriptor) IsSymmetric() bool { return f.symmetric }

// SupportMin returns the lower end of the family's support.
func (f *Descriptor) SupportMin() float64 { return f.supportMin }

// Solver returns the family's default inverse solver configuration.
func (f *Descriptor) Solver() stats.Solver { return f.solver }

// HasInverse reports whether the family implements InverseCDF.
func (f *Descriptor) HasInverse() bool { return f.k64.inv != nil }

// A MethodDescriptor is the immutable description of a method.
type MethodDescriptor struct {
	abscissae []string

	// reduce is the method-specific symbolic simplification. It
	// runs once the node's parameters are known to be valid and
	// returns the replacement, or false to keep the node.
	reduce func(d *Dispatcher, ctx *expr.Context) (expr.Expr, bool)
}

var methods = [numMethods]MethodDescriptor{
	PDF:        {abscissae: []string{"x"}, reduce: reducePDF},
	CDF:        {abscissae: []string{"x"}, reduce: reduceCDF},
	CDFRange:   {abscissae: []string{"x1", "x2"}, reduce: reduceCDFRange},
	InverseCDF: {abscissae: []string{"a"}, reduce: reduceInverseCDF},
}

// Descriptor returns the description of method m. It panics if m is
// not a method.
func (m Method) Descriptor() *MethodDescriptor {
	if m < 0 || m >= numMethods {
		panic(fmt.Sprintf("distribution: unknown method %d", int(m)))
	}
	return &methods[m]
}

// NumAbscissae returns the number of abscissa arguments of the
// method.
func (m *MethodDescriptor) NumAbscissae() int { return len(m.abscissae) }

// AbscissaNames returns the names of the method's abscissae.
func (m *MethodDescriptor) AbscissaNames() []string {
	return append([]string(nil), m.abscissae...)
}

// names holds the prefix-call name of every registered pair. An
// empty name means the pair is not registered.
var names = [numKinds][numMethods]string{
	Normal:    {PDF: "normpdf", CDF: "normcdf", CDFRange: "normcdfrange", InverseCDF: "invnorm"},
	Student:   {PDF: "tpdf", CDF: "tcdf", CDFRange: "tcdfrange", InverseCDF: "invt"},
	Poisson:   {PDF: "poissonpdf", CDF: "poissoncdf"},
	Binomial:  {PDF: "binompdf", CDF: "binomcdf", InverseCDF: "invbinom"},
	Geometric: {PDF: "geompdf", CDF: "geomcdf", CDFRange: "geomcdfrange", InverseCDF: "invgeom"},
	Fisher:    {PDF: "fisherpdf", CDF: "fishercdf", CDFRange: "fishercdfrange", InverseCDF: "invfisher"},
}

// Name returns the prefix-call name of (k, m), or "" if the pair is
// not registered.
func Name(k Kind, m Method) string {
	k.Descriptor()
	m.Descriptor()
	return names[k][m]
}

// Lookup returns the pair registered under name.
func Lookup(name string) (k Kind, m Method, ok bool) {
	for _, k := range Kinds {
		for _, m := range Methods {
			if names[k][m] != "" && names[k][m] == name {
				return k, m, true
			}
		}
	}
	return 0, 0, false
}

// Signature returns the call signature of (k, m), such as
// "fishercdf(x, d1, d2)". It panics if the pair is not registered.
func Signature(k Kind, m Method) string {
	name := Name(k, m)
	if name == "" {
		panic(fmt.Sprintf("distribution: %v %v is not registered", k, m))
	}
	args := append(m.Descriptor().AbscissaNames(), k.Descriptor().params...)
	return name + "(" + strings.Join(args, ", ") + ")"
}

// A Pair is a registered (family, method) combination.
type Pair struct {
	Kind   Kind
	Method Method
}

// Pairs returns every registered pair, family-major in table order.
func Pairs() []Pair {
	var ps []Pair
	for _, k := range Kinds {
		for _, m := range Methods {
			if names[k][m] != "" {
				ps = append(ps, Pair{k, m})
			}
		}
	}
	return ps
}

// Functions returns a parser function table containing every
// registered pair.
func Functions() expr.FuncTable {
	funcs := make(expr.FuncTable)
	for _, p := range Pairs() {
		funcs[names[p.Kind][p.Method]] = expr.Func{
			Arity: p.Method.Descriptor().NumAbscissae() + p.Kind.Descriptor().NumParams(),
			Build: func(args []expr.Expr) expr.Expr {
				return NewDispatcher(p.Kind, p.Method, args...)
			},
		}
	}
	return funcs
}
