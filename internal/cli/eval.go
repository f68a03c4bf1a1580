// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aclements/go-distcalc/distribution"
	"github.com/aclements/go-distcalc/expr"
)

// EvalOptions holds flags for the eval command.
type EvalOptions struct {
	*RootOptions
	Bindings []string // name=expression
}

// NewEvalCommand creates the eval command.
func NewEvalCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EvalOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "eval [expression...]",
		Short: "Reduce and numerically evaluate expressions",
		Long: `Reduce each expression symbolically, then approximate it in the
configured precision. Without arguments, eval reads newline-separated
expressions from standard input. Undefined results print as "undef".`,
		Example: `  distcalc eval "fishercdf(1, 2, 3)"
  distcalc eval --bind k=4 "invt(0.975, k)"
  echo "normcdf({0,1}, 0, 1)" | distcalc eval`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(cmd, opts, args)
		},
	}

	cmd.Flags().StringArrayVarP(&opts.Bindings, "bind", "b", nil, "bind a symbol, as name=expression (repeatable)")

	return cmd
}

func runEval(cmd *cobra.Command, opts *EvalOptions, args []string) error {
	funcs := distribution.Functions()
	ctx, err := bindAll(opts.newContext(), opts.Bindings, funcs)
	if err != nil {
		return err
	}
	sources := args
	if len(sources) == 0 {
		if sources, err = readLines(cmd.InOrStdin()); err != nil {
			return usageErrorf("reading input: %w", err)
		}
	}

	out := cmd.OutOrStdout()
	for _, src := range sources {
		e, err := parseExpr(src, funcs)
		if err != nil {
			return err
		}
		reduced, status := expr.Reduce(e, ctx)
		opts.Logger.Debug("reduced", "input", src, "result", reduced.String(), "status", status)
		fmt.Fprintln(out, opts.formatValue(reduced, ctx))
	}
	return nil
}

// parseExpr parses a command-line expression.
func parseExpr(src string, funcs expr.FuncTable) (expr.Expr, error) {
	e, err := expr.Parse(src, funcs)
	if err != nil {
		return nil, usageErrorf("parsing %q: %w", src, err)
	}
	return e, nil
}

// bindAll parses name=expression bindings into ctx.
func bindAll(ctx *expr.Context, bindings []string, funcs expr.FuncTable) (*expr.Context, error) {
	for _, b := range bindings {
		name, src, ok := strings.Cut(b, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, usageErrorf("invalid binding %q: want name=expression", b)
		}
		e, err := parseExpr(src, funcs)
		if err != nil {
			return nil, err
		}
		if _, isSym := e.(*expr.Symbol); isSym && e.String() == name {
			return nil, usageErrorf("binding %q refers to itself", b)
		}
		ctx.Bind(name, e)
	}
	return ctx, nil
}

// readLines returns the non-blank lines of r.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if l := strings.TrimSpace(scanner.Text()); l != "" {
			lines = append(lines, l)
		}
	}
	return lines, scanner.Err()
}
