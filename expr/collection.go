// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import "strings"

// A List is an ordered collection of expressions, written {a,b,c}.
type List struct {
	elems []Expr
}

// NewList returns a list of elems. The list takes ownership of elems.
func NewList(elems ...Expr) *List {
	return &List{elems: elems}
}

func (l *List) Len() int { return len(l.elems) }

func (l *List) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, e := range l.elems {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(e.String())
	}
	b.WriteByte('}')
	return b.String()
}

func (l *List) Equal(other Expr) bool {
	o, ok := other.(*List)
	return ok && equalChildren(l, o)
}

func (l *List) NumChildren() int       { return len(l.elems) }
func (l *List) Child(i int) Expr       { return l.elems[i] }
func (l *List) SetChild(i int, e Expr) { l.elems[i] = e }

func (l *List) Clone() Expr {
	elems := make([]Expr, len(l.elems))
	for i, e := range l.elems {
		elems[i] = Clone(e)
	}
	return &List{elems: elems}
}

// A Matrix is a rectangular array of expressions, written
// [[a,b][c,d]]. Its children are its entries in row-major order.
type Matrix struct {
	rows, cols int
	entries    []Expr
}

// NewMatrix returns a rows×cols matrix of entries in row-major order.
// It panics if len(entries) != rows*cols or the matrix is empty.
func NewMatrix(rows, cols int, entries ...Expr) *Matrix {
	if rows <= 0 || cols <= 0 || len(entries) != rows*cols {
		panic("expr: bad matrix dimensions")
	}
	return &Matrix{rows: rows, cols: cols, entries: entries}
}

// Dims returns the number of rows and columns of m.
func (m *Matrix) Dims() (rows, cols int) {
	return m.rows, m.cols
}

// At returns the entry at row i, column j.
func (m *Matrix) At(i, j int) Expr {
	return m.entries[i*m.cols+j]
}

func (m *Matrix) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < m.rows; i++ {
		b.WriteByte('[')
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				b.WriteByte(',')
			}
			b.WriteString(m.At(i, j).String())
		}
		b.WriteByte(']')
	}
	b.WriteByte(']')
	return b.String()
}

func (m *Matrix) Equal(other Expr) bool {
	o, ok := other.(*Matrix)
	return ok && m.rows == o.rows && m.cols == o.cols && equalChildren(m, o)
}

func (m *Matrix) NumChildren() int       { return len(m.entries) }
func (m *Matrix) Child(i int) Expr       { return m.entries[i] }
func (m *Matrix) SetChild(i int, e Expr) { m.entries[i] = e }

func (m *Matrix) Clone() Expr {
	entries := make([]Expr, len(m.entries))
	for i, e := range m.entries {
		entries[i] = Clone(e)
	}
	return &Matrix{rows: m.rows, cols: m.cols, entries: entries}
}
