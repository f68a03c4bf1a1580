// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/aclements/go-distcalc/distribution"
	"github.com/aclements/go-distcalc/expr"
	"github.com/aclements/go-distcalc/stats"
)

// SolveOptions holds flags for the solve command.
type SolveOptions struct {
	*RootOptions
	Target        float64
	Tolerance     float64
	UpperBound    float64
	MaxIterations int
}

// NewSolveCommand creates the solve command.
func NewSolveCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SolveOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "solve <family> <param>... --target y",
		Short: "Find x with CDF(x) = y by bisection",
		Long: `Run the bisection root-finder on a family's CDF over [0, upper-bound]
and print the root followed by how the search ended: converged,
iteration limit, or unreachable when the target lies outside
[CDF(0), CDF(upper-bound)]. An unreachable target exits with status 1.

Families: normal, student, poisson, binomial, geometric, fisher.`,
		Example: `  distcalc solve fisher 2 3 --target 0.95
  distcalc solve student 4 --target 0.975 --upper-bound 10`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, opts, args)
		},
	}

	cmd.Flags().Float64Var(&opts.Target, "target", 0, "target probability y")
	cmd.Flags().Float64Var(&opts.Tolerance, "tolerance", 0, "bracket width at which to stop (default: family default)")
	cmd.Flags().Float64Var(&opts.UpperBound, "upper-bound", 0, "upper end of the search interval (default: family default)")
	cmd.Flags().IntVar(&opts.MaxIterations, "max-iterations", 0, "bisection step limit (default: family default)")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}

func runSolve(cmd *cobra.Command, opts *SolveOptions, args []string) error {
	kind, params, err := parseFamily(args)
	if err != nil {
		return err
	}
	s := opts.solver(kind.Descriptor().Solver())
	if opts.Tolerance != 0 {
		s.Tolerance = opts.Tolerance
	}
	if opts.UpperBound != 0 {
		s.UpperBound = opts.UpperBound
	}
	if opts.MaxIterations != 0 {
		s.MaxIterations = opts.MaxIterations
	}

	x := []float64{0}
	forward := func(v float64) float64 {
		x[0] = v
		return distribution.Evaluate(kind, distribution.CDF, x, params, s)
	}
	root, status := stats.Solve(opts.Target, forward, s)

	log := opts.Logger.With("family", kind.String(), "target", opts.Target, "upper_bound", s.UpperBound)
	switch status {
	case stats.Converged:
		log.Debug("solve converged", "root", root)
	case stats.IterationLimit:
		log.Warn("solve stopped at iteration limit", "root", root, "max_iterations", s.MaxIterations)
	case stats.Unreachable:
		log.Warn("solve target unreachable")
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", expr.Real(root).Format(opts.Config.SignificantDigits), status)
	if status == stats.Unreachable {
		return failuref("%s CDF does not reach %v on [0, %v]", kind, opts.Target, s.UpperBound)
	}
	return nil
}

// parseFamily parses "<family> <param>..." arguments and checks the
// parameters against the family's domain.
func parseFamily(args []string) (distribution.Kind, []float64, error) {
	kind, err := distribution.ParseKind(args[0])
	if err != nil {
		return 0, nil, usageErrorf("invalid family: %w", err)
	}
	f := kind.Descriptor()
	if len(args)-1 != f.NumParams() {
		return 0, nil, usageErrorf("%s takes %d parameters %v, got %d", kind, f.NumParams(), f.ParamNames(), len(args)-1)
	}
	params := make([]float64, len(args)-1)
	for i, a := range args[1:] {
		if params[i], err = strconv.ParseFloat(a, 64); err != nil {
			return 0, nil, usageErrorf("parameter %s: %w", f.ParamNames()[i], err)
		}
	}
	if !distribution.ParamsOK(kind, params...) {
		return 0, nil, usageErrorf("parameters %v outside the domain of %s", params, kind)
	}
	return kind, params, nil
}
