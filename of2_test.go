// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sum_test

import (
	"testing"
	"testing/quick"

	"code.hybscloud.com/sum"
)

func TestOf2First(t *testing.T) {
	u := sum.First2[int, string](42)

	if u.Empty() {
		t.Fatal("expected a held alternative")
	}
	if !u.IsFirst() || u.IsSecond() {
		t.Fatal("expected IsFirst")
	}
	v, ok := u.First()
	if !ok || v != 42 {
		t.Fatalf("First() = (%d, %v), want (42, true)", v, ok)
	}
	if _, ok := u.Second(); ok {
		t.Fatal("Second() must not report a value")
	}
	if u.Tag() != 1 {
		t.Fatalf("Tag() = %v, want 1", u.Tag())
	}
}

func TestOf2Second(t *testing.T) {
	u := sum.Second2[int, string]("hello")

	if !u.IsSecond() || u.IsFirst() {
		t.Fatal("expected IsSecond")
	}
	v, ok := u.Second()
	if !ok || v != "hello" {
		t.Fatalf("Second() = (%q, %v), want (hello, true)", v, ok)
	}
	if u.Tag() != 0 {
		t.Fatalf("Tag() = %v, want 0", u.Tag())
	}
}

func TestOf2ZeroValueIsEmpty(t *testing.T) {
	var u sum.Of2[int, string]

	if !u.Empty() {
		t.Fatal("zero value must be empty")
	}
	if u.Tag() != sum.None {
		t.Fatalf("Tag() = %v, want None", u.Tag())
	}
	if u.IsFirst() || u.IsSecond() {
		t.Fatal("empty variant holds nothing")
	}
	if _, ok := u.First(); ok {
		t.Fatal("First() must not report a value")
	}
	if _, ok := u.Second(); ok {
		t.Fatal("Second() must not report a value")
	}
}

func TestOf2Set(t *testing.T) {
	var u sum.Of2[int, string]

	u.SetFirst(7)
	if v, ok := u.First(); !ok || v != 7 {
		t.Fatalf("First() = (%d, %v), want (7, true)", v, ok)
	}

	u.SetSecond("seven")
	if v, ok := u.Second(); !ok || v != "seven" {
		t.Fatalf("Second() = (%q, %v), want (seven, true)", v, ok)
	}
	if _, ok := u.First(); ok {
		t.Fatal("SetSecond must displace the first alternative")
	}
}

func TestOf2Clear(t *testing.T) {
	u := sum.First2[int, string](1)
	u.Clear()
	if !u.Empty() {
		t.Fatal("expected empty after Clear")
	}
	u.Clear() // idempotent
	if !u.Empty() {
		t.Fatal("expected empty after second Clear")
	}
}

func TestMatch2(t *testing.T) {
	double := func(x int) int { return x * 2 }
	length := func(s string) int { return len(s) }

	if got := sum.Match2(sum.First2[int, string](21), double, length); got != 42 {
		t.Fatalf("Match2 first = %d, want 42", got)
	}
	if got := sum.Match2(sum.Second2[int, string]("four"), double, length); got != 4 {
		t.Fatalf("Match2 second = %d, want 4", got)
	}
}

func TestMatch2EmptyPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r != "sum: attempted to visit empty variant" {
			t.Fatalf("recovered %v", r)
		}
	}()
	var u sum.Of2[int, string]
	sum.Match2(u, func(int) int { return 0 }, func(string) int { return 0 })
	t.Fatal("expected panic")
}

func TestOf2QuickRoundTrip(t *testing.T) {
	roundTrip := func(x int, s string, pickFirst bool) bool {
		if pickFirst {
			u := sum.First2[int, string](x)
			v, ok := u.First()
			return ok && v == x && u.Tag() == 1
		}
		u := sum.Second2[int, string](s)
		v, ok := u.Second()
		return ok && v == s && u.Tag() == 0
	}
	if err := quick.Check(roundTrip, nil); err != nil {
		t.Fatal(err)
	}
}
