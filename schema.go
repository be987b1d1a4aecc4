// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sum

import (
	"reflect"
	"strconv"
	"strings"
)

// Schema is a resolved, closed list of alternatives. Once built it is
// immutable: alternatives cannot be added, removed, or reordered, and the
// tag of each alternative never changes.
//
// Tag assignment follows the declaration list from the end: with N
// alternatives, the first declared gets tag N-1 and the last gets tag 0.
// [None] is reserved for empty cells and never collides with an assigned
// tag, which [NewSchema] guarantees by rejecting lists longer than
// [MaxAlternatives].
//
// A Schema is safe for concurrent use; it is read-only after construction.
type Schema struct {
	byTag []Alternative
	index map[reflect.Type]Tag
}

// NewSchema resolves an ordered alternative list into a schema.
//
// The list is validated at definition time: a duplicate alternative type or
// a list longer than [MaxAlternatives] is a usage error and panics. An
// empty list is legal and yields the degenerate schema whose cells can only
// ever be empty.
func NewSchema(alts ...Alternative) *Schema {
	if len(alts) > MaxAlternatives {
		panic("sum: tag type is too small for this schema")
	}
	s := &Schema{
		byTag: make([]Alternative, len(alts)),
		index: make(map[reflect.Type]Tag, len(alts)),
	}
	n := len(alts)
	for i, alt := range alts {
		if alt.typ == nil {
			panic("sum: invalid alternative at position " + strconv.Itoa(i))
		}
		if _, dup := s.index[alt.typ]; dup {
			panic("sum: duplicate alternative " + alt.typ.String())
		}
		tag := Tag(n - 1 - i)
		s.byTag[tag] = alt
		s.index[alt.typ] = tag
	}
	return s
}

// Len returns the number of alternatives.
func (s *Schema) Len() int {
	if s == nil {
		return 0
	}
	return len(s.byTag)
}

// Type returns the alternative type assigned the given tag, or nil when the
// tag is out of range.
func (s *Schema) Type(tag Tag) reflect.Type {
	if s == nil || int(tag) >= len(s.byTag) {
		return nil
	}
	return s.byTag[tag].typ
}

// String lists the alternatives in declaration order.
func (s *Schema) String() string {
	if s == nil {
		return "Schema(nil)"
	}
	var b strings.Builder
	b.WriteString("Schema(")
	for i := len(s.byTag) - 1; i >= 0; i-- {
		if i != len(s.byTag)-1 {
			b.WriteString(" | ")
		}
		b.WriteString(s.byTag[i].typ.String())
	}
	b.WriteByte(')')
	return b.String()
}

// lookup resolves a type to its tag. A miss is always (None, false) so the
// result never collides with tag 0 of the last declared alternative.
func (s *Schema) lookup(t reflect.Type) (Tag, bool) {
	if s == nil {
		return None, false
	}
	tag, ok := s.index[t]
	if !ok {
		return None, false
	}
	return tag, true
}

// equalShape reports whether two schemas declare the same alternative types
// in the same order. Visitors and bridges accept shape-equal schemas so that
// independently constructed schemas of the same alternatives interoperate.
func (s *Schema) equalShape(o *Schema) bool {
	if s == o {
		return true
	}
	if s == nil || o == nil || len(s.byTag) != len(o.byTag) {
		return false
	}
	for i := range s.byTag {
		if s.byTag[i].typ != o.byTag[i].typ {
			return false
		}
	}
	return true
}

// TagOf returns the tag assigned to alternative type T, or (None, false)
// when the schema does not declare T.
func TagOf[T any](s *Schema) (Tag, bool) {
	return s.lookup(reflect.TypeFor[T]())
}
