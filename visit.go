// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sum

import (
	"reflect"
	"strconv"
)

// Case is one handler arm of a visitor, pairing an alternative type with
// the function to run on its payload. Build cases with [When].
type Case[R any] struct {
	typ reflect.Type
	fn  func(any) R
}

// When builds the handler arm for alternative type T. The payload reaches
// fn through a typed assertion captured here, so the dispatch loop stays
// free of per-call reflection.
//
// The assertion tolerates a nil payload: visiting a moved-from cell whose
// alternative is interface-typed hands fn the zero value.
func When[T, R any](fn func(T) R) Case[R] {
	return Case[R]{
		typ: reflect.TypeFor[T](),
		fn: func(v any) R {
			t, _ := v.(T)
			return fn(t)
		},
	}
}

// Visitor is a validated handler table for one schema, reusable across any
// number of cells. Build it once with [NewVisitor] where the case list is
// checked against the schema, then dispatch with [Visitor.Visit] in
// constant time.
//
// A Visitor is safe for concurrent use after construction.
type Visitor[R any] struct {
	schema *Schema
	arms   []func(any) R
}

// NewVisitor validates cases against the schema and builds the dispatch
// table. Cases are given in declaration order and must cover the schema's
// alternatives exactly: a missing, extra, or mismatched case is a usage
// error and panics. Errors or panics raised by a case function itself are
// never intercepted; they propagate to the Visit caller unchanged.
func NewVisitor[R any](s *Schema, cases ...Case[R]) *Visitor[R] {
	if s == nil {
		panic("sum: visitor of nil schema")
	}
	n := len(s.byTag)
	if len(cases) != n {
		panic("sum: visitor covers " + strconv.Itoa(len(cases)) +
			" cases, schema " + s.String() + " declares " + strconv.Itoa(n))
	}
	arms := make([]func(any) R, n)
	for i, c := range cases {
		tag := n - 1 - i
		if alt := s.byTag[tag]; c.typ != alt.typ {
			panic("sum: case " + c.typ.String() + " does not match alternative " +
				alt.typ.String() + " of " + s.String())
		}
		arms[tag] = c.fn
	}
	return &Visitor[R]{schema: s, arms: arms}
}

// Visit dispatches the cell's payload to the arm selected by its tag and
// returns the arm's result. Visiting an empty cell is a fatal usage error,
// as is visiting a cell of a different schema shape.
func (v *Visitor[R]) Visit(c Cell) R {
	if c.mark == 0 {
		emptyVariant()
	}
	if c.schema != v.schema && !v.schema.equalShape(c.schema) {
		panic("sum: cell of " + c.schema.String() + " visited with visitor of " + v.schema.String())
	}
	return v.arms[c.mark-1](c.slot)
}

// Match is one-shot dispatch: it validates cases against the cell's schema
// and visits in a single call. Use a [Visitor] when the same case list runs
// against many cells.
func Match[R any](c Cell, cases ...Case[R]) R {
	if c.schema == nil {
		emptyVariant()
	}
	return NewVisitor(c.schema, cases...).Visit(c)
}
