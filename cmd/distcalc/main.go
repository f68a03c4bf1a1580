// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// distcalc evaluates calculator-style probability distribution calls.
//
// Usage:
//
//	distcalc eval "fishercdf(1, 2, 3)"
//	echo "invnorm(0.975, 0, 1)" | distcalc eval
//	distcalc reduce "invnorm(normcdf(x, 2, 3), 2, 3)"
//	distcalc solve fisher 2 3 --target 0.95
//	distcalc table binomial 10 0.3
//	distcalc functions
package main

import (
	"os"

	"github.com/aclements/go-distcalc/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
