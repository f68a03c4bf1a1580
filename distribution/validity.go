// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distribution

import (
	"fmt"

	"github.com/aclements/go-distcalc/expr"
	"github.com/aclements/go-distcalc/stats"
)

// Validity is the outcome of checking parameters symbolically.
type Validity int

const (
	// Indeterminate means the parameters are not yet known well
	// enough to decide.
	Indeterminate Validity = iota

	Valid
	Invalid
)

func (v Validity) String() string {
	switch v {
	case Indeterminate:
		return "indeterminate"
	case Valid:
		return "valid"
	case Invalid:
		return "invalid"
	}
	return fmt.Sprintf("Validity(%d)", int(v))
}

// A constraint is the domain of one distribution parameter.
type constraint int

const (
	finite constraint = iota
	positive
	nonNegativeInteger
	probability
	positiveProbability
)

// ok is the numeric predicate for c. The same predicates back every
// family's ParamsOK.
func (c constraint) ok(x float64) bool {
	switch c {
	case finite:
		return stats.IsFinite(x)
	case positive:
		return stats.IsPositive(x)
	case nonNegativeInteger:
		return stats.IsNonNegativeInteger(x)
	case probability:
		return stats.IsProbability(x)
	case positiveProbability:
		return stats.IsPositiveProbability(x)
	}
	panic(fmt.Sprintf("distribution: unknown constraint %d", int(c)))
}

// nonNegative reports whether c excludes negative values.
func (c constraint) nonNegative() bool {
	return c != finite
}

// CheckParameters decides symbolically whether params, the parameter
// children of a node of family f, are in the family's domain. It
// panics if len(params) is not f.NumParams().
//
// The checks run in a fixed order and the first decisive one wins: a
// matrix, undefined or infinite parameter is invalid; a parameter not
// known to be real is indeterminate; a parameter that must be
// non-negative is invalid if known negative and indeterminate if its
// sign is unknown; finally every constrained parameter must be a
// rational literal, which is then checked numerically.
func (f *Descriptor) CheckParameters(params []expr.Expr, ctx *expr.Context) Validity {
	if len(params) != len(f.params) {
		panic(fmt.Sprintf("distribution: %s takes %d parameters, got %d", f.name, len(f.params), len(params)))
	}
	for _, p := range params {
		if expr.IsMatrix(p, ctx) || expr.IsUndefined(p, ctx) || expr.IsInfinity(p, ctx) {
			return Invalid
		}
	}
	for _, p := range params {
		if !expr.IsReal(p, ctx) {
			return Indeterminate
		}
	}
	for i, p := range params {
		if !f.constraints[i].nonNegative() {
			continue
		}
		switch expr.SignOf(p, ctx) {
		case expr.SignNegative:
			return Invalid
		case expr.SignUnknown:
			return Indeterminate
		}
	}
	for i, p := range params {
		c := f.constraints[i]
		if c == finite {
			continue
		}
		r, ok := expr.AsRational(p)
		if !ok {
			return Indeterminate
		}
		if !c.ok(r.Float64()) {
			return Invalid
		}
	}
	return Valid
}
