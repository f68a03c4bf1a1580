// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli implements the distcalc command tree.
package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/aclements/go-distcalc/expr"
	"github.com/aclements/go-distcalc/stats"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
	Verbose    bool
	Precision  string // "single" | "double"
	Digits     int

	// Resolved by the root command before any subcommand runs.
	Config Config
	Logger *slog.Logger
}

// NewRootCommand creates the root command for the distcalc CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "distcalc",
		Short: "distcalc - probability distributions as calculator functions",
		Long: "Evaluate and simplify calculator-style distribution calls such as\n" +
			"normcdf(x, mu, sigma), invt(a, k) and fishercdfrange(x1, x2, d1, d2).",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd)
		},
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "YAML configuration file")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log reduction diagnostics")
	cmd.PersistentFlags().StringVar(&opts.Precision, "precision", "double", "evaluation precision (single|double)")
	cmd.PersistentFlags().IntVar(&opts.Digits, "digits", 10, "significant digits in results")

	// Add subcommands
	cmd.AddCommand(NewEvalCommand(opts))
	cmd.AddCommand(NewReduceCommand(opts))
	cmd.AddCommand(NewSolveCommand(opts))
	cmd.AddCommand(NewTableCommand(opts))
	cmd.AddCommand(NewFunctionsCommand(opts))

	return cmd
}

// resolve merges the configuration file with explicitly set flags and
// installs the logger.
func (o *RootOptions) resolve(cmd *cobra.Command) error {
	cfg := DefaultConfig()
	if o.ConfigPath != "" {
		var err error
		if cfg, err = LoadConfig(o.ConfigPath); err != nil {
			return usageErrorf("loading configuration: %w", err)
		}
	}
	flags := cmd.Flags()
	if flags.Changed("precision") {
		cfg.Precision = o.Precision
	}
	if flags.Changed("digits") {
		cfg.SignificantDigits = o.Digits
	}
	if o.Verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return usageErrorf("invalid options: %w", err)
	}
	level, _ := cfg.level()
	o.Config = cfg
	o.Logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	return nil
}

// newContext returns an expression context configured from o.
func (o *RootOptions) newContext() *expr.Context {
	ctx := expr.NewContext()
	ctx.SignificantDigits = o.Config.SignificantDigits
	ctx.InverseTolerance = o.Config.Solver.Tolerance
	ctx.InverseUpperBound = o.Config.Solver.UpperBound
	ctx.Logger = o.Logger
	return ctx
}

// solver overlays the configured solver settings on base.
func (o *RootOptions) solver(base stats.Solver) stats.Solver {
	if s := o.Config.Solver; s.Tolerance != 0 {
		base.Tolerance = s.Tolerance
	}
	if s := o.Config.Solver; s.UpperBound != 0 {
		base.UpperBound = s.UpperBound
	}
	if s := o.Config.Solver; s.MaxIterations != 0 {
		base.MaxIterations = s.MaxIterations
	}
	return base
}
