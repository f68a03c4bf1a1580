// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"io"
	"log/slog"
)

// A Context carries what reduction and approximation need to know
// beyond the tree itself. A nil *Context is an empty context.
//
// A Context is not safe for concurrent use.
type Context struct {
	// SignificantDigits is the number of significant digits a
	// caller displays approximations with. Zero means 10.
	SignificantDigits int

	// InverseTolerance and InverseUpperBound, when non-zero,
	// override the bisection tolerance and search bound used to
	// invert distributions without a closed-form inverse.
	InverseTolerance  float64
	InverseUpperBound float64

	// Logger receives reduction diagnostics. Nil discards them.
	Logger *slog.Logger

	symbols map[string]Expr

	// approxDepth bounds symbol expansion during approximation.
	approxDepth int
}

// NewContext returns an empty context.
func NewContext() *Context {
	return &Context{}
}

// Bind binds the symbol called name to e. Reduction replaces the
// symbol with a copy of e.
func (c *Context) Bind(name string, e Expr) {
	if c.symbols == nil {
		c.symbols = make(map[string]Expr)
	}
	c.symbols[name] = e
}

// Lookup returns the binding of the symbol called name.
func (c *Context) Lookup(name string) (Expr, bool) {
	if c == nil {
		return nil, false
	}
	e, ok := c.symbols[name]
	return e, ok
}

// Digits returns the effective number of significant digits.
func (c *Context) Digits() int {
	if c == nil || c.SignificantDigits <= 0 {
		return 10
	}
	return c.SignificantDigits
}

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

// Log returns the context's logger, which is never nil.
func (c *Context) Log() *slog.Logger {
	if c == nil || c.Logger == nil {
		return discard
	}
	return c.Logger
}
