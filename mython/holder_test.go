package mython

import "testing"

func TestEmptyHolderIsNone(t *testing.T) {
	h := None()
	if !h.IsEmpty() {
		t.Fatalf("expected None() to be empty")
	}
	if _, ok := h.TryNumber(); ok {
		t.Fatalf("empty holder should not yield a number")
	}
}

func TestOwnRoundTripsByKind(t *testing.T) {
	if n, ok := Own(numberObject(42)).TryNumber(); !ok || n != 42 {
		t.Fatalf("got (%d, %v), want (42, true)", n, ok)
	}
	if s, ok := Own(stringObject("hi")).TryString(); !ok || s != "hi" {
		t.Fatalf("got (%q, %v), want (\"hi\", true)", s, ok)
	}
	if b, ok := Own(boolObject(true)).TryBool(); !ok || !b {
		t.Fatalf("got (%v, %v), want (true, true)", b, ok)
	}
}

func TestShareWrapsInstanceAsBorrowed(t *testing.T) {
	cls := NewClassDescriptor("T", nil, nil)
	inst := newInstance(cls)
	h := Share(inst)
	got, ok := h.TryInstance()
	if !ok || got != inst {
		t.Fatalf("Share should yield the same instance pointer")
	}
}

func TestIsTruthy(t *testing.T) {
	cases := []struct {
		h    ObjectHolder
		want bool
	}{
		{None(), false},
		{Own(boolObject(false)), false},
		{Own(boolObject(true)), true},
		{Own(numberObject(0)), false},
		{Own(numberObject(1)), true},
		{Own(stringObject("")), false},
		{Own(stringObject("x")), true},
	}
	for _, c := range cases {
		if got := isTruthy(c.h); got != c.want {
			t.Fatalf("isTruthy(%+v) = %v, want %v", c.h, got, c.want)
		}
	}
}
