// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aclements/go-distcalc/distribution"
)

// NewFunctionsCommand creates the functions command.
func NewFunctionsCommand(rootOpts *RootOptions) *cobra.Command {
	var family string

	cmd := &cobra.Command{
		Use:   "functions",
		Short: "List the distribution functions expressions can call",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var only *distribution.Kind
			if family != "" {
				k, err := distribution.ParseKind(family)
				if err != nil {
					return usageErrorf("invalid family: %w", err)
				}
				only = &k
			}
			for _, p := range distribution.Pairs() {
				if only != nil && p.Kind != *only {
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), distribution.Signature(p.Kind, p.Method))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&family, "family", "", "list only this family's functions")

	return cmd
}
