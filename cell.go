// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sum

import "reflect"

// Cell is single-payload tagged storage for one schema. It holds either
// nothing or exactly one value of one alternative, and its tag always
// identifies which. The zero Cell is an empty cell of the nil schema: it
// can be tested, cleared, and cloned, but it cannot hold a value and
// dispatching it is a fatal error.
//
// The internal mark is the tag biased by one so that the zero value of the
// struct reads as empty; [Cell.Tag] always reports the schema's tag values
// or [None]. Both fields are unexported, which keeps a live payload and a
// stale tag from ever being observed together.
//
// A Cell has no internal synchronization. Concurrent reads are safe only
// while no goroutine mutates the cell; callers serialize [Store], [Take],
// and [Cell.Clear] themselves.
type Cell struct {
	schema *Schema
	mark   uint8
	slot   any
}

// New returns an empty cell of this schema.
func (s *Schema) New() Cell {
	return Cell{schema: s}
}

// Wrap builds a cell of schema s holding v. The alternative is selected by
// the static type T, never by the dynamic type of v, so an interface-typed
// alternative receives the concrete values stored through it intact. T not
// declaring an alternative of s is a usage error and panics.
func Wrap[T any](s *Schema, v T) Cell {
	t := reflect.TypeFor[T]()
	tag, ok := s.lookup(t)
	if !ok {
		panic("sum: " + t.String() + " is not an alternative of " + s.String())
	}
	return Cell{schema: s, mark: uint8(tag) + 1, slot: v}
}

// Schema returns the schema this cell stores alternatives of. It is nil for
// the zero Cell.
func (c Cell) Schema() *Schema {
	return c.schema
}

// Empty reports whether the cell holds no payload.
func (c Cell) Empty() bool {
	return c.mark == 0
}

// Tag returns the tag of the live alternative, or [None] when empty.
func (c Cell) Tag() Tag {
	if c.mark == 0 {
		return None
	}
	return Tag(c.mark - 1)
}

// Clone returns a cell holding a copy of the payload. Alternatives with a
// [Cloner] hook are copied through it; the rest are copied by assignment.
// Cloning an empty cell is legal and yields an empty cell. A panicking
// Clone hook propagates unchanged and leaves the source untouched.
func (c Cell) Clone() Cell {
	if c.mark == 0 {
		return Cell{schema: c.schema}
	}
	slot := c.slot
	if alt := c.schema.byTag[c.mark-1]; alt.clone != nil {
		slot = alt.clone(slot)
	}
	return Cell{schema: c.schema, mark: c.mark, slot: slot}
}

// Take transfers the payload out of the cell. The source keeps its tag and
// is left holding the alternative's zero value, so clearing or overwriting
// it afterwards never runs a teardown hook against the transferred payload.
// Taking from an empty cell yields an empty cell.
func (c *Cell) Take() Cell {
	out := Cell{schema: c.schema, mark: c.mark, slot: c.slot}
	if c.mark != 0 {
		c.slot = c.schema.byTag[c.mark-1].zero
	}
	return out
}

// Store replaces the cell's payload with v, selecting the alternative by
// the static type T exactly like [Wrap]. The current payload's [Disposer]
// hook runs before the new value is installed. T not declaring an
// alternative of the cell's schema is a usage error and panics, and the
// cell is not modified.
func Store[T any](c *Cell, v T) {
	t := reflect.TypeFor[T]()
	tag, ok := c.schema.lookup(t)
	if !ok {
		panic("sum: " + t.String() + " is not an alternative of " + c.schema.String())
	}
	c.Clear()
	c.mark = uint8(tag) + 1
	c.slot = v
}

// Clear empties the cell, running the payload's [Disposer] hook if it has
// one. Clear is idempotent: clearing an empty cell does nothing, and the
// hook runs exactly once per stored payload. The cell is reset before the
// hook runs, so a panicking Dispose still leaves the cell empty.
func (c *Cell) Clear() {
	if c.mark == 0 {
		return
	}
	alt := c.schema.byTag[c.mark-1]
	held := c.slot
	c.mark = 0
	c.slot = nil
	if alt.drop != nil {
		alt.drop(held)
	}
}

// Get returns the payload when the live alternative is exactly T. The
// selection is tag-driven: a value of another alternative that happens to
// satisfy an interface-typed T is not returned.
func Get[T any](c Cell) (T, bool) {
	var zero T
	if c.mark == 0 {
		return zero, false
	}
	tag, ok := c.schema.lookup(reflect.TypeFor[T]())
	if !ok || tag != Tag(c.mark-1) {
		return zero, false
	}
	v, _ := c.slot.(T)
	return v, true
}

// Is reports whether the live alternative is exactly T.
func Is[T any](c Cell) bool {
	if c.mark == 0 {
		return false
	}
	tag, ok := c.schema.lookup(reflect.TypeFor[T]())
	return ok && tag == Tag(c.mark-1)
}
