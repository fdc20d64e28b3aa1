// SPDX-License-Identifier: Unlicense OR MIT

package pointer

import (
	"image"
	"testing"
)

func TestModifiersString(t *testing.T) {
	for _, tc := range []struct {
		mods Modifiers
		res  string
	}{
		{0, ""},
		{ModShift, "Shift"},
		{ModCtrl, "Ctrl"},
		{ModAlt, "Alt"},
		{ModSuper, "Super"},
		{ModCapsLock, "CapsLock"},
		{ModNumLock, "NumLock"},
		{ModShift | ModCtrl, "Shift|Ctrl"},
		{ModNumLock | ModAlt | ModShift, "Shift|Alt|NumLock"},
	} {
		t.Run(tc.res, func(t *testing.T) {
			if want, got := tc.res, tc.mods.String(); want != got {
				t.Errorf("got %q; want %q", got, want)
			}
		})
	}
}

// The numeric values are passed through from GLFW without translation.
func TestGLFWValues(t *testing.T) {
	buttons := []struct {
		b    Button
		want uint8
	}{
		{ButtonLeft, 0},
		{ButtonRight, 1},
		{ButtonMiddle, 2},
		{Button8, 7},
	}
	for _, tc := range buttons {
		if uint8(tc.b) != tc.want {
			t.Errorf("%v = %d; want %d", tc.b, uint8(tc.b), tc.want)
		}
	}
	if Release != 0 || Press != 1 || Repeat != 2 {
		t.Errorf("actions = %d %d %d; want 0 1 2", Release, Press, Repeat)
	}
	mods := []Modifiers{ModShift, ModCtrl, ModAlt, ModSuper, ModCapsLock, ModNumLock}
	for i, m := range mods {
		if want := Modifiers(1 << i); m != want {
			t.Errorf("%v = %d; want %d", m, m, want)
		}
	}
}

func TestClickEventString(t *testing.T) {
	e := ClickEvent{Button: ButtonMiddle, Action: Press, Modifiers: ModCtrl | ModAlt}
	if got, want := e.String(), "Middle Press Ctrl|Alt"; got != want {
		t.Errorf("got %q; want %q", got, want)
	}
	e = ClickEvent{Button: Button4, Action: Release}
	if got, want := e.String(), "Button4 Release"; got != want {
		t.Errorf("got %q; want %q", got, want)
	}
}

func TestMoveDelta(t *testing.T) {
	e := MoveEvent{Previous: image.Pt(3, 4), Current: image.Pt(1, 10)}
	if got, want := e.Delta(), image.Pt(-2, 6); got != want {
		t.Errorf("got %v; want %v", got, want)
	}
}
