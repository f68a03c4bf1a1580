// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aclements/go-distcalc/distribution"
	"github.com/aclements/go-distcalc/expr"
)

// barWidth is the width of the widest PDF bar.
const barWidth = 40

// TableOptions holds flags for the table command.
type TableOptions struct {
	*RootOptions
	Points int
}

// NewTableCommand creates the table command.
func NewTableCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TableOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "table <family> <param>...",
		Short: "Print PDF and CDF samples across a family's bounds",
		Long: `Sample the PDF and CDF of a family over the range where its weight
lies, in single precision, and print one tab-separated row per sample
with a bar proportional to the PDF. Discrete families are sampled at
integers.`,
		Example: `  distcalc table binomial 10 0.3
  distcalc table normal 0 1 --points 21`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, params, err := parseFamily(args)
			if err != nil {
				return err
			}
			if opts.Points < 2 {
				return usageErrorf("invalid --points %d: need at least 2", opts.Points)
			}
			single := make([]float32, len(params))
			for i, p := range params {
				single[i] = float32(p)
			}
			return printTable(cmd.OutOrStdout(), kind, single, opts.Points, opts.Config.SignificantDigits)
		},
	}

	cmd.Flags().IntVar(&opts.Points, "points", 50, "number of samples")

	return cmd
}

// printTable samples kind with params in float32.
func printTable(w io.Writer, kind distribution.Kind, params []float32, points, digits int) error {
	xs := samplePoints(kind, params, points)

	pdf := make([]float32, len(xs))
	peak := float32(0)
	for i, x := range xs {
		pdf[i] = distribution.Evaluate(kind, distribution.PDF, []float32{x}, params, kind.Descriptor().Solver())
		if pdf[i] > peak && !math.IsInf(float64(pdf[i]), 0) {
			peak = pdf[i]
		}
	}

	if _, err := fmt.Fprintln(w, "x\tpdf\tcdf"); err != nil {
		return err
	}
	for i, x := range xs {
		cdf := distribution.Evaluate(kind, distribution.CDF, []float32{x}, params, kind.Descriptor().Solver())
		bar := 0
		if peak > 0 && !math.IsNaN(float64(pdf[i])) {
			bar = int(math.Round(math.Min(float64(pdf[i]/peak), 1) * barWidth))
		}
		_, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			expr.Real(x).Format(digits), expr.Real(pdf[i]).Format(digits), expr.Real(cdf).Format(digits),
			strings.Repeat("*", bar))
		if err != nil {
			return err
		}
	}
	return nil
}

// samplePoints returns at most points increasing abscissae across the
// bounds of kind. Discrete families are sampled at integers.
func samplePoints(kind distribution.Kind, params []float32, points int) []float32 {
	lo, hi := distribution.Bounds(kind, params...)
	var xs []float32
	if kind.Descriptor().IsContinuous() {
		for i := 0; i < points; i++ {
			xs = append(xs, lo+(hi-lo)*float32(i)/float32(points-1))
		}
		return xs
	}
	// Past float32's exact integers lo+i*step can repeat a
	// sample, so count samples instead of stepping k.
	step := math.Ceil(float64(hi-lo+1) / float64(points))
	for i := 0; i < points; i++ {
		k := float32(float64(lo) + float64(i)*step)
		if k > hi {
			break
		}
		if n := len(xs); n > 0 && xs[n-1] == k {
			continue
		}
		xs = append(xs, k)
	}
	return xs
}
