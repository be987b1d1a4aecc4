// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sum

import "reflect"

// The two representations convert at runtime: Lift moves a statically typed
// variant into a schema's erased cell, and Narrow is the inverse. Both
// directions validate against the schema so a lifted value always lands on
// the alternative with the same position and tag it had in the typed world.

// shapeError panics with the shape mismatch diagnostic for bridge
// conversions.
//
//go:noinline
func shapeError(s *Schema, want ...reflect.Type) {
	msg := "sum: schema " + s.String() + " does not declare exactly ("
	for i, t := range want {
		if i > 0 {
			msg += " | "
		}
		msg += t.String()
	}
	panic(msg + ")")
}

// assertShape validates that the schema declares exactly the given
// alternative types in declaration order.
func assertShape(s *Schema, want ...reflect.Type) {
	if s.Len() != len(want) {
		shapeError(s, want...)
	}
	n := len(want)
	for i, t := range want {
		if s.byTag[n-1-i].typ != t {
			shapeError(s, want...)
		}
	}
}

// Lift converts the typed variant into a cell of schema s. The schema must
// declare exactly (T0 | T1); anything else is a usage error and panics.
// An empty variant lifts to an empty cell.
func (u Of2[T0, T1]) Lift(s *Schema) Cell {
	assertShape(s, reflect.TypeFor[T0](), reflect.TypeFor[T1]())
	if u.mark == 0 {
		return Cell{schema: s}
	}
	return Cell{schema: s, mark: uint8(3 - u.mark), slot: u.slot()}
}

// Lift converts the typed variant into a cell of schema s. The schema must
// declare exactly (T0 | T1 | T2); anything else is a usage error and panics.
func (u Of3[T0, T1, T2]) Lift(s *Schema) Cell {
	assertShape(s, reflect.TypeFor[T0](), reflect.TypeFor[T1](), reflect.TypeFor[T2]())
	if u.mark == 0 {
		return Cell{schema: s}
	}
	return Cell{schema: s, mark: uint8(4 - u.mark), slot: u.slot()}
}

// Lift converts the typed variant into a cell of schema s. The schema must
// declare exactly (T0 | T1 | T2 | T3); anything else is a usage error and
// panics.
func (u Of4[T0, T1, T2, T3]) Lift(s *Schema) Cell {
	assertShape(s, reflect.TypeFor[T0](), reflect.TypeFor[T1](), reflect.TypeFor[T2](), reflect.TypeFor[T3]())
	if u.mark == 0 {
		return Cell{schema: s}
	}
	return Cell{schema: s, mark: uint8(5 - u.mark), slot: u.slot()}
}

// slot erases the held payload for lifting.
func (u Of2[T0, T1]) slot() any {
	if u.mark == 1 {
		return u.v0
	}
	return u.v1
}

func (u Of3[T0, T1, T2]) slot() any {
	switch u.mark {
	case 1:
		return u.v0
	case 2:
		return u.v1
	}
	return u.v2
}

func (u Of4[T0, T1, T2, T3]) slot() any {
	switch u.mark {
	case 1:
		return u.v0
	case 2:
		return u.v1
	case 3:
		return u.v2
	}
	return u.v3
}

// Narrow2 converts a cell back into a typed two-alternative variant. The
// cell's schema must declare exactly (T0 | T1); anything else is a usage
// error and panics. An empty cell narrows to an empty variant.
func Narrow2[T0, T1 any](c Cell) Of2[T0, T1] {
	assertShape(c.schema, reflect.TypeFor[T0](), reflect.TypeFor[T1]())
	switch c.mark {
	case 0:
		return Of2[T0, T1]{}
	case 2:
		v, _ := c.slot.(T0)
		return First2[T0, T1](v)
	default:
		v, _ := c.slot.(T1)
		return Second2[T0, T1](v)
	}
}

// Narrow3 converts a cell back into a typed three-alternative variant. The
// cell's schema must declare exactly (T0 | T1 | T2); anything else is a
// usage error and panics.
func Narrow3[T0, T1, T2 any](c Cell) Of3[T0, T1, T2] {
	assertShape(c.schema, reflect.TypeFor[T0](), reflect.TypeFor[T1](), reflect.TypeFor[T2]())
	switch c.mark {
	case 0:
		return Of3[T0, T1, T2]{}
	case 3:
		v, _ := c.slot.(T0)
		return First3[T0, T1, T2](v)
	case 2:
		v, _ := c.slot.(T1)
		return Second3[T0, T1, T2](v)
	default:
		v, _ := c.slot.(T2)
		return Third3[T0, T1, T2](v)
	}
}

// Narrow4 converts a cell back into a typed four-alternative variant. The
// cell's schema must declare exactly (T0 | T1 | T2 | T3); anything else is
// a usage error and panics.
func Narrow4[T0, T1, T2, T3 any](c Cell) Of4[T0, T1, T2, T3] {
	assertShape(c.schema, reflect.TypeFor[T0](), reflect.TypeFor[T1](), reflect.TypeFor[T2](), reflect.TypeFor[T3]())
	switch c.mark {
	case 0:
		return Of4[T0, T1, T2, T3]{}
	case 4:
		v, _ := c.slot.(T0)
		return First4[T0, T1, T2, T3](v)
	case 3:
		v, _ := c.slot.(T1)
		return Second4[T0, T1, T2, T3](v)
	case 2:
		v, _ := c.slot.(T2)
		return Third4[T0, T1, T2, T3](v)
	default:
		v, _ := c.slot.(T3)
		return Fourth4[T0, T1, T2, T3](v)
	}
}
