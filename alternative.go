// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sum

import "reflect"

// Cloner is the deep-copy hook for alternative payloads. An alternative
// whose type implements Cloner[T] is copied through Clone whenever a cell
// holding it is cloned, giving the two cells independent payloads.
// Alternatives without the hook are copied by plain assignment, so payloads
// with reference semantics (pointers, slices, maps) alias after a clone.
type Cloner[T any] interface {
	Clone() T
}

// Disposer is the teardown hook for alternative payloads. An alternative
// whose type implements Disposer has Dispose called exactly once when the
// payload is replaced by [Store] or discarded by [Cell.Clear]. The hook
// never runs implicitly: dropping a cell without clearing it leaves payload
// teardown to the garbage collector.
type Disposer interface {
	Dispose()
}

// Alternative describes one member type of a schema. Descriptors are built
// by [Of] and consumed by [NewSchema]; the zero Alternative is not valid.
type Alternative struct {
	typ   reflect.Type
	zero  any
	clone func(any) any
	drop  func(any)
}

// Of declares an alternative of type T.
//
// Hook detection is static: the [Cloner] and [Disposer] hooks are looked up
// on T itself when the descriptor is built, through the same structural
// assertions handlers use for dispatch. An interface-typed alternative
// therefore carries no hooks even when the concrete values stored in it
// would satisfy them.
func Of[T any]() Alternative {
	var zero T
	alt := Alternative{typ: reflect.TypeFor[T](), zero: zero}
	if _, ok := any(zero).(Cloner[T]); ok {
		alt.clone = func(v any) any {
			return v.(Cloner[T]).Clone()
		}
	}
	if _, ok := any(zero).(Disposer); ok {
		alt.drop = func(v any) {
			v.(Disposer).Dispose()
		}
	}
	return alt
}

// Type returns the alternative's type.
func (a Alternative) Type() reflect.Type {
	return a.typ
}

// String returns the alternative's type name.
func (a Alternative) String() string {
	if a.typ == nil {
		return "<invalid>"
	}
	return a.typ.String()
}
