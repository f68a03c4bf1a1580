// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package distribution provides probability distributions as
// expression-tree nodes.
//
// A single node type, Dispatcher, stands for every (family, method)
// pair a calculator exposes as a prefix call, such as fishercdf or
// invnorm. Family-specific behaviour lives in static Descriptor and
// MethodDescriptor tables that the node consults through its Kind and
// Method tags. Numeric evaluation is delegated to the kernels in
// package stats.
package distribution // import "github.com/aclements/go-distcalc/distribution"

import "fmt"

// Kind identifies a distribution family.
type Kind int

const (
	Normal Kind = iota
	Student
	Poisson
	Binomial
	Geometric
	Fisher

	numKinds
)

// Kinds lists every family in table order.
var Kinds = [...]Kind{Normal, Student, Poisson, Binomial, Geometric, Fisher}

func (k Kind) String() string {
	if k < 0 || k >= numKinds {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return families[k].name
}

// ParseKind returns the family called name, as printed by String.
func ParseKind(name string) (Kind, error) {
	for _, k := range Kinds {
		if families[k].name == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown distribution %q", name)
}

// Method identifies a function computed on a distribution.
type Method int

const (
	PDF Method = iota
	CDF
	CDFRange
	InverseCDF

	numMethods
)

// Methods lists every method in table order.
var Methods = [...]Method{PDF, CDF, CDFRange, InverseCDF}

func (m Method) String() string {
	switch m {
	case PDF:
		return "pdf"
	case CDF:
		return "cdf"
	case CDFRange:
		return "cdfrange"
	case InverseCDF:
		return "inverse cdf"
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

const (
	// MaxParams is the largest parameter count of any family.
	MaxParams = 2

	// MaxAbscissae is the largest abscissa count of any method.
	MaxAbscissae = 2

	maxChildren = MaxAbscissae + MaxParams
)
