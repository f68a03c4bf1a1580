// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aclements/go-distcalc/distribution"
	"github.com/aclements/go-distcalc/expr"
)

// ReduceOptions holds flags for the reduce command.
type ReduceOptions struct {
	*RootOptions
	Bindings []string
}

// NewReduceCommand creates the reduce command.
func NewReduceCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ReduceOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "reduce <expression>...",
		Short: "Simplify expressions symbolically",
		Long: `Reduce each expression without approximating it, printing the
reduced expression and the reduction status, one per line:

  reduced            fully simplified; numeric evaluation remains
  not yet reducible  depends on symbols whose values are unknown
  invalid            undefined for the given arguments`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			funcs := distribution.Functions()
			ctx, err := bindAll(opts.newContext(), opts.Bindings, funcs)
			if err != nil {
				return err
			}
			for _, src := range args {
				e, err := parseExpr(src, funcs)
				if err != nil {
					return err
				}
				reduced, status := expr.Reduce(e, ctx)
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", reduced, status)
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&opts.Bindings, "bind", "b", nil, "bind a symbol, as name=expression (repeatable)")

	return cmd
}
