// SPDX-License-Identifier: Unlicense OR MIT

//go:build !android && !ios && !js
// +build !android,!ios,!js

// Package glfwinput feeds the mouse events of a GLFW window to an
// input.Context.
//
// The mouse button, action and modifier values of package pointer equal
// the GLFW values, so they are converted without a table.
//
// Typical use from the main thread:
//
//	var ctx input.Context
//	w := glfwinput.Attach(window, &ctx)
//	for !window.ShouldClose() {
//		w.Poll()
//		// Lay out and draw.
//		window.SwapBuffers()
//	}
package glfwinput

import (
	"image"
	"math"

	"github.com/go-gl/glfw/v3.3/glfw"

	"hitroute.org/internal/clock"
	"hitroute.org/io/input"
	"hitroute.org/io/pointer"
)

// Window connects a GLFW window to an input.Context. Its methods must
// be called from the main thread, like the GLFW functions they call.
type Window struct {
	win *glfw.Window
	ctx *input.Context

	// scrollX and scrollY accumulate the scroll distance not yet
	// reported.
	scrollX, scrollY float64
}

// Attach installs the cursor, button, scroll, enter and focus callbacks
// of w, replacing any previous callbacks, and copies the current window
// state to ctx.
func Attach(w *glfw.Window, ctx *input.Context) *Window {
	win := &Window{win: w, ctx: ctx}
	w.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		ctx.SetCursor(cursorPoint(x, y))
	})
	w.SetMouseButtonCallback(func(_ *glfw.Window, b glfw.MouseButton, a glfw.Action, mods glfw.ModifierKey) {
		ctx.SetMouseButton(Button(b), Action(a), Modifiers(mods))
	})
	w.SetScrollCallback(func(_ *glfw.Window, x, y float64) {
		win.scrollX += x
		win.scrollY += y
	})
	w.SetCursorEnterCallback(func(_ *glfw.Window, entered bool) {
		ctx.SetEnter(entered)
	})
	w.SetFocusCallback(func(_ *glfw.Window, focused bool) {
		ctx.SetFocus(focused)
	})

	ctx.SetCursor(cursorPoint(w.GetCursorPos()))
	ctx.SetFocus(w.GetAttrib(glfw.Focused) == glfw.True)
	ctx.SetEnter(w.GetAttrib(glfw.Hovered) == glfw.True)
	return win
}

// Detach removes the callbacks installed by Attach.
func (w *Window) Detach() {
	w.win.SetCursorPosCallback(nil)
	w.win.SetMouseButtonCallback(nil)
	w.win.SetScrollCallback(nil)
	w.win.SetCursorEnterCallback(nil)
	w.win.SetFocusCallback(nil)
}

// Context returns the context fed by w.
func (w *Window) Context() *input.Context {
	return w.ctx
}

// Poll runs one input frame: it processes the pending GLFW events and
// dispatches them to the elements of the context.
func (w *Window) Poll() {
	w.frame(glfw.PollEvents)
}

// Wait is like Poll but blocks until at least one event is available or
// the timeout, in seconds, expires.
func (w *Window) Wait(timeout float64) {
	w.frame(func() {
		glfw.WaitEventsTimeout(timeout)
	})
}

func (w *Window) frame(poll func()) {
	w.ctx.PrePoll()
	w.ctx.SetTime(clock.Now())
	poll()
	if s, ok := w.takeScroll(); ok {
		w.ctx.SetScroll(s)
	}
	w.ctx.PostPoll()
}

// takeScroll returns the whole scroll steps of the frame and keeps the
// fractional remainder for the next frame. Trackpads report fractions.
func (w *Window) takeScroll() (image.Point, bool) {
	sx, sy := math.Trunc(w.scrollX), math.Trunc(w.scrollY)
	if sx == 0 && sy == 0 {
		return image.Point{}, false
	}
	w.scrollX -= sx
	w.scrollY -= sy
	return image.Pt(int(sx), int(sy)), true
}

func cursorPoint(x, y float64) image.Point {
	return image.Pt(int(math.Round(x)), int(math.Round(y)))
}

// Button converts a GLFW mouse button.
func Button(b glfw.MouseButton) pointer.Button {
	return pointer.Button(b)
}

// Action converts a GLFW button action.
func Action(a glfw.Action) pointer.Action {
	return pointer.Action(a)
}

// Modifiers converts a GLFW modifier key set.
func Modifiers(m glfw.ModifierKey) pointer.Modifiers {
	return pointer.Modifiers(m)
}
