// SPDX-License-Identifier: Unlicense OR MIT

//go:build !android && !ios && !js
// +build !android,!ios,!js

package glfwinput

import (
	"image"
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"

	"hitroute.org/io/input"
	"hitroute.org/io/pointer"
)

func TestConversions(t *testing.T) {
	buttons := map[glfw.MouseButton]pointer.Button{
		glfw.MouseButtonLeft:   pointer.ButtonLeft,
		glfw.MouseButtonRight:  pointer.ButtonRight,
		glfw.MouseButtonMiddle: pointer.ButtonMiddle,
		glfw.MouseButton4:      pointer.Button4,
		glfw.MouseButton8:      pointer.Button8,
	}
	for g, want := range buttons {
		if got := Button(g); got != want {
			t.Errorf("Button(%d) = %v; want %v", g, got, want)
		}
	}
	actions := map[glfw.Action]pointer.Action{
		glfw.Release: pointer.Release,
		glfw.Press:   pointer.Press,
		glfw.Repeat:  pointer.Repeat,
	}
	for g, want := range actions {
		if got := Action(g); got != want {
			t.Errorf("Action(%d) = %v; want %v", g, got, want)
		}
	}
	mods := map[glfw.ModifierKey]pointer.Modifiers{
		glfw.ModShift:    pointer.ModShift,
		glfw.ModControl:  pointer.ModCtrl,
		glfw.ModAlt:      pointer.ModAlt,
		glfw.ModSuper:    pointer.ModSuper,
		glfw.ModCapsLock: pointer.ModCapsLock,
		glfw.ModNumLock:  pointer.ModNumLock,
		glfw.ModShift | glfw.ModSuper: pointer.ModShift | pointer.ModSuper,
	}
	for g, want := range mods {
		if got := Modifiers(g); got != want {
			t.Errorf("Modifiers(%d) = %v; want %v", g, got, want)
		}
	}
}

func TestCursorRounding(t *testing.T) {
	for _, tc := range []struct {
		x, y float64
		want image.Point
	}{
		{0.4, 0.6, image.Pt(0, 1)},
		{10.5, -2.5, image.Pt(11, -3)},
		{-0.4, 99.49, image.Pt(0, 99)},
	} {
		if got := cursorPoint(tc.x, tc.y); got != tc.want {
			t.Errorf("cursorPoint(%v, %v) = %v; want %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestScrollRemainder(t *testing.T) {
	w := &Window{ctx: new(input.Context)}
	w.scrollY = -0.5
	if _, ok := w.takeScroll(); ok {
		t.Fatal("half a step reported")
	}
	w.scrollX += 2
	w.scrollY -= 0.75
	s, ok := w.takeScroll()
	if !ok || s != image.Pt(2, -1) {
		t.Fatalf("scroll %v, %v; want (2,-1)", s, ok)
	}
	if w.scrollX != 0 || w.scrollY != -0.25 {
		t.Errorf("remainder (%v, %v); want (0, -0.25)", w.scrollX, w.scrollY)
	}
}
