// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sum

// Of3 is a closed sum of three alternatives with plain value semantics.
// The zero value is empty.
type Of3[T0, T1, T2 any] struct {
	mark uint8
	v0   T0
	v1   T1
	v2   T2
}

// First3 creates an Of3 holding a first-alternative value.
func First3[T0, T1, T2 any](v T0) Of3[T0, T1, T2] {
	return Of3[T0, T1, T2]{mark: 1, v0: v}
}

// Second3 creates an Of3 holding a second-alternative value.
func Second3[T0, T1, T2 any](v T1) Of3[T0, T1, T2] {
	return Of3[T0, T1, T2]{mark: 2, v1: v}
}

// Third3 creates an Of3 holding a third-alternative value.
func Third3[T0, T1, T2 any](v T2) Of3[T0, T1, T2] {
	return Of3[T0, T1, T2]{mark: 3, v2: v}
}

// Empty reports whether no alternative is held.
func (u Of3[T0, T1, T2]) Empty() bool {
	return u.mark == 0
}

// Tag returns the positional tag of the held alternative, or [None] when
// empty.
func (u Of3[T0, T1, T2]) Tag() Tag {
	if u.mark == 0 {
		return None
	}
	return Tag(3 - u.mark)
}

// IsFirst reports whether the first alternative is held.
func (u Of3[T0, T1, T2]) IsFirst() bool {
	return u.mark == 1
}

// IsSecond reports whether the second alternative is held.
func (u Of3[T0, T1, T2]) IsSecond() bool {
	return u.mark == 2
}

// IsThird reports whether the third alternative is held.
func (u Of3[T0, T1, T2]) IsThird() bool {
	return u.mark == 3
}

// First returns the first-alternative value and true, or zero and false.
func (u Of3[T0, T1, T2]) First() (T0, bool) {
	if u.mark == 1 {
		return u.v0, true
	}
	var zero T0
	return zero, false
}

// Second returns the second-alternative value and true, or zero and false.
func (u Of3[T0, T1, T2]) Second() (T1, bool) {
	if u.mark == 2 {
		return u.v1, true
	}
	var zero T1
	return zero, false
}

// Third returns the third-alternative value and true, or zero and false.
func (u Of3[T0, T1, T2]) Third() (T2, bool) {
	if u.mark == 3 {
		return u.v2, true
	}
	var zero T2
	return zero, false
}

// SetFirst replaces the contents with a first-alternative value.
func (u *Of3[T0, T1, T2]) SetFirst(v T0) {
	*u = Of3[T0, T1, T2]{mark: 1, v0: v}
}

// SetSecond replaces the contents with a second-alternative value.
func (u *Of3[T0, T1, T2]) SetSecond(v T1) {
	*u = Of3[T0, T1, T2]{mark: 2, v1: v}
}

// SetThird replaces the contents with a third-alternative value.
func (u *Of3[T0, T1, T2]) SetThird(v T2) {
	*u = Of3[T0, T1, T2]{mark: 3, v2: v}
}

// Clear empties the variant.
func (u *Of3[T0, T1, T2]) Clear() {
	*u = Of3[T0, T1, T2]{}
}

// Match3 pattern matches on the variant, calling the handler of the held
// alternative. Matching an empty variant is a fatal usage error.
func Match3[T0, T1, T2, R any](u Of3[T0, T1, T2], onFirst func(T0) R, onSecond func(T1) R, onThird func(T2) R) R {
	switch u.mark {
	case 1:
		return onFirst(u.v0)
	case 2:
		return onSecond(u.v1)
	case 3:
		return onThird(u.v2)
	}
	emptyVariant()
	var zero R
	return zero
}
