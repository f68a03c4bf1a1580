// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aclements/go-distcalc/expr"
)

// Process exit codes. Success is 0.
const (
	// ExitFailure means the command ran but its computation
	// failed, such as a solve target outside the CDF's range.
	ExitFailure = 1

	// ExitUsage means the command could not run: a malformed
	// expression, bad flags or a bad configuration file.
	ExitUsage = 2
)

// An ExitError is an error that selects the process exit code.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string { return e.Err.Error() }
func (e *ExitError) Unwrap() error { return e.Err }

// usageErrorf formats an ExitUsage error. Like fmt.Errorf, a %w verb
// wraps its operand.
func usageErrorf(format string, args ...any) error {
	return &ExitError{Code: ExitUsage, Err: fmt.Errorf(format, args...)}
}

// failuref formats an ExitFailure error.
func failuref(format string, args ...any) error {
	return &ExitError{Code: ExitFailure, Err: fmt.Errorf(format, args...)}
}

// ExitCode returns the process exit code for err: 0 for nil, the code
// of the first ExitError in err's chain, and ExitFailure otherwise.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var e *ExitError
	if errors.As(err, &e) {
		return e.Code
	}
	return ExitFailure
}

// formatValue approximates e in the configured precision. Lists are
// approximated element-wise.
func (o *RootOptions) formatValue(e expr.Expr, ctx *expr.Context) string {
	if l, ok := e.(*expr.List); ok {
		parts := make([]string, l.Len())
		for i := range parts {
			parts[i] = o.formatValue(l.Child(i), ctx)
		}
		return "{" + strings.Join(parts, ",") + "}"
	}
	if o.Config.Precision == "single" {
		return expr.Approximate[float32](e, ctx).Format(ctx.Digits())
	}
	return expr.Approximate[float64](e, ctx).Format(ctx.Digits())
}
