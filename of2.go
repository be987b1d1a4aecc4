// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sum

// Of2 is a closed sum of two alternatives with plain value semantics. The
// zero value is empty. Unlike [Cell], the alternatives are statically typed,
// so construction and matching are checked by the compiler and carry no
// schema. Lifecycle hooks do not apply here; they belong to the erased
// world.
type Of2[T0, T1 any] struct {
	mark uint8
	v0   T0
	v1   T1
}

// First2 creates an Of2 holding a first-alternative value.
func First2[T0, T1 any](v T0) Of2[T0, T1] {
	return Of2[T0, T1]{mark: 1, v0: v}
}

// Second2 creates an Of2 holding a second-alternative value.
func Second2[T0, T1 any](v T1) Of2[T0, T1] {
	return Of2[T0, T1]{mark: 2, v1: v}
}

// Empty reports whether no alternative is held.
func (u Of2[T0, T1]) Empty() bool {
	return u.mark == 0
}

// Tag returns the positional tag of the held alternative, or [None] when
// empty. Tags count from the end of the alternative list: the first
// alternative of an Of2 is tag 1 and the second is tag 0.
func (u Of2[T0, T1]) Tag() Tag {
	if u.mark == 0 {
		return None
	}
	return Tag(2 - u.mark)
}

// IsFirst reports whether the first alternative is held.
func (u Of2[T0, T1]) IsFirst() bool {
	return u.mark == 1
}

// IsSecond reports whether the second alternative is held.
func (u Of2[T0, T1]) IsSecond() bool {
	return u.mark == 2
}

// First returns the first-alternative value and true, or zero and false.
func (u Of2[T0, T1]) First() (T0, bool) {
	if u.mark == 1 {
		return u.v0, true
	}
	var zero T0
	return zero, false
}

// Second returns the second-alternative value and true, or zero and false.
func (u Of2[T0, T1]) Second() (T1, bool) {
	if u.mark == 2 {
		return u.v1, true
	}
	var zero T1
	return zero, false
}

// SetFirst replaces the contents with a first-alternative value. The other
// slot is zeroed so the variant does not retain a stale payload.
func (u *Of2[T0, T1]) SetFirst(v T0) {
	*u = Of2[T0, T1]{mark: 1, v0: v}
}

// SetSecond replaces the contents with a second-alternative value.
func (u *Of2[T0, T1]) SetSecond(v T1) {
	*u = Of2[T0, T1]{mark: 2, v1: v}
}

// Clear empties the variant.
func (u *Of2[T0, T1]) Clear() {
	*u = Of2[T0, T1]{}
}

// Match2 pattern matches on the variant, calling the handler of the held
// alternative. Matching an empty variant is a fatal usage error.
func Match2[T0, T1, R any](u Of2[T0, T1], onFirst func(T0) R, onSecond func(T1) R) R {
	switch u.mark {
	case 1:
		return onFirst(u.v0)
	case 2:
		return onSecond(u.v1)
	}
	emptyVariant()
	var zero R
	return zero
}
