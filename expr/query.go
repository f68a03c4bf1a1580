// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

// maxResolve bounds how many symbol bindings the queries below follow.
const maxResolve = 16

// resolve follows symbol bindings from e.
func resolve(e Expr, ctx *Context) Expr {
	for i := 0; i < maxResolve; i++ {
		s, ok := e.(*Symbol)
		if !ok {
			return e
		}
		b, ok := ctx.Lookup(s.Name)
		if !ok {
			return e
		}
		e = b
	}
	return e
}

// SignOf reports what is known about the sign of e.
func SignOf(e Expr, ctx *Context) Sign {
	if s, ok := resolve(e, ctx).(Signer); ok {
		return s.Sign(ctx)
	}
	return SignUnknown
}

// IsReal reports whether e is known to be a real number. Infinities
// are real. Unbound symbols are not known to be real.
func IsReal(e Expr, ctx *Context) bool {
	if r, ok := resolve(e, ctx).(Realer); ok {
		return r.IsReal(ctx)
	}
	return false
}

func IsMatrix(e Expr, ctx *Context) bool {
	_, ok := resolve(e, ctx).(*Matrix)
	return ok
}

func IsList(e Expr, ctx *Context) bool {
	_, ok := resolve(e, ctx).(*List)
	return ok
}

func IsUndefined(e Expr, ctx *Context) bool {
	_, ok := resolve(e, ctx).(Undefined)
	return ok
}

func IsInfinity(e Expr, ctx *Context) bool {
	_, ok := resolve(e, ctx).(Infinity)
	return ok
}

// AsRational returns e as a rational literal, if it is one.
func AsRational(e Expr) (*Rational, bool) {
	r, ok := e.(*Rational)
	return r, ok
}
