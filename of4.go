// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sum

// Of4 is a closed sum of four alternatives with plain value semantics. The
// zero value is empty. Sums wider than four alternatives use the erased
// world ([NewSchema], [Cell]).
type Of4[T0, T1, T2, T3 any] struct {
	mark uint8
	v0   T0
	v1   T1
	v2   T2
	v3   T3
}

// First4 creates an Of4 holding a first-alternative value.
func First4[T0, T1, T2, T3 any](v T0) Of4[T0, T1, T2, T3] {
	return Of4[T0, T1, T2, T3]{mark: 1, v0: v}
}

// Second4 creates an Of4 holding a second-alternative value.
func Second4[T0, T1, T2, T3 any](v T1) Of4[T0, T1, T2, T3] {
	return Of4[T0, T1, T2, T3]{mark: 2, v1: v}
}

// Third4 creates an Of4 holding a third-alternative value.
func Third4[T0, T1, T2, T3 any](v T2) Of4[T0, T1, T2, T3] {
	return Of4[T0, T1, T2, T3]{mark: 3, v2: v}
}

// Fourth4 creates an Of4 holding a fourth-alternative value.
func Fourth4[T0, T1, T2, T3 any](v T3) Of4[T0, T1, T2, T3] {
	return Of4[T0, T1, T2, T3]{mark: 4, v3: v}
}

// Empty reports whether no alternative is held.
func (u Of4[T0, T1, T2, T3]) Empty() bool {
	return u.mark == 0
}

// Tag returns the positional tag of the held alternative, or [None] when
// empty.
func (u Of4[T0, T1, T2, T3]) Tag() Tag {
	if u.mark == 0 {
		return None
	}
	return Tag(4 - u.mark)
}

// IsFirst reports whether the first alternative is held.
func (u Of4[T0, T1, T2, T3]) IsFirst() bool {
	return u.mark == 1
}

// IsSecond reports whether the second alternative is held.
func (u Of4[T0, T1, T2, T3]) IsSecond() bool {
	return u.mark == 2
}

// IsThird reports whether the third alternative is held.
func (u Of4[T0, T1, T2, T3]) IsThird() bool {
	return u.mark == 3
}

// IsFourth reports whether the fourth alternative is held.
func (u Of4[T0, T1, T2, T3]) IsFourth() bool {
	return u.mark == 4
}

// First returns the first-alternative value and true, or zero and false.
func (u Of4[T0, T1, T2, T3]) First() (T0, bool) {
	if u.mark == 1 {
		return u.v0, true
	}
	var zero T0
	return zero, false
}

// Second returns the second-alternative value and true, or zero and false.
func (u Of4[T0, T1, T2, T3]) Second() (T1, bool) {
	if u.mark == 2 {
		return u.v1, true
	}
	var zero T1
	return zero, false
}

// Third returns the third-alternative value and true, or zero and false.
func (u Of4[T0, T1, T2, T3]) Third() (T2, bool) {
	if u.mark == 3 {
		return u.v2, true
	}
	var zero T2
	return zero, false
}

// Fourth returns the fourth-alternative value and true, or zero and false.
func (u Of4[T0, T1, T2, T3]) Fourth() (T3, bool) {
	if u.mark == 4 {
		return u.v3, true
	}
	var zero T3
	return zero, false
}

// SetFirst replaces the contents with a first-alternative value.
func (u *Of4[T0, T1, T2, T3]) SetFirst(v T0) {
	*u = Of4[T0, T1, T2, T3]{mark: 1, v0: v}
}

// SetSecond replaces the contents with a second-alternative value.
func (u *Of4[T0, T1, T2, T3]) SetSecond(v T1) {
	*u = Of4[T0, T1, T2, T3]{mark: 2, v1: v}
}

// SetThird replaces the contents with a third-alternative value.
func (u *Of4[T0, T1, T2, T3]) SetThird(v T2) {
	*u = Of4[T0, T1, T2, T3]{mark: 3, v2: v}
}

// SetFourth replaces the contents with a fourth-alternative value.
func (u *Of4[T0, T1, T2, T3]) SetFourth(v T3) {
	*u = Of4[T0, T1, T2, T3]{mark: 4, v3: v}
}

// Clear empties the variant.
func (u *Of4[T0, T1, T2, T3]) Clear() {
	*u = Of4[T0, T1, T2, T3]{}
}

// Match4 pattern matches on the variant, calling the handler of the held
// alternative. Matching an empty variant is a fatal usage error.
func Match4[T0, T1, T2, T3, R any](u Of4[T0, T1, T2, T3], onFirst func(T0) R, onSecond func(T1) R, onThird func(T2) R, onFourth func(T3) R) R {
	switch u.mark {
	case 1:
		return onFirst(u.v0)
	case 2:
		return onSecond(u.v1)
	case 3:
		return onThird(u.v2)
	case 4:
		return onFourth(u.v3)
	}
	emptyVariant()
	var zero R
	return zero
}
