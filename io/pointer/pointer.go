// SPDX-License-Identifier: Unlicense OR MIT

/*
Package pointer defines the mouse events delivered to input elements and
the results elements return from their handlers.

Button, Action and Modifiers share their numeric values with the GLFW
constants of the same meaning, so a backend built on GLFW can convert
its callback arguments with plain type conversions.

Positions are image.Point values. Positions in MoveEvent are in the
local coordinate space of the receiving element.
*/
package pointer

import (
	"fmt"
	"image"
	"strings"
)

// Button identifies a mouse button.
type Button uint8

// Action is the state change of a mouse button.
type Action uint8

// Modifiers is a set of modifier keys active during a button change.
type Modifiers uint8

const (
	// ButtonLeft is the left button, usually the primary button.
	ButtonLeft Button = iota
	// ButtonRight is the right button.
	ButtonRight
	// ButtonMiddle is the middle button, often the scroll wheel.
	ButtonMiddle
	Button4
	Button5
	Button6
	Button7
	Button8
)

const (
	// Release of a button.
	Release Action = iota
	// Press of a button.
	Press
	// Repeat is reported by some backends while a button is held.
	Repeat
)

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
	// ModSuper is the Windows, Command or Super key.
	ModSuper
	ModCapsLock
	ModNumLock
)

// EnterEvent is delivered when the cursor enters an element.
type EnterEvent struct{}

// EnterResult is returned from an enter handler.
type EnterResult struct{}

// ExitEvent is delivered when the cursor leaves an element, or the
// element loses the entered state because the cursor left the surface.
type ExitEvent struct{}

// ExitResult is returned from an exit handler.
type ExitResult struct{}

// ClickEvent describes a button change over an element.
type ClickEvent struct {
	Button    Button
	Action    Action
	Modifiers Modifiers
}

// ClickResult is returned from a click handler.
type ClickResult struct {
	// Claim requests that the element receives all further input until
	// it returns a ClickResult with Claim set to false.
	Claim bool
}

// MoveEvent describes a cursor movement. Both positions are in the
// local space of the receiving element.
type MoveEvent struct {
	Previous image.Point
	Current  image.Point
}

// MoveResult is returned from a move handler.
type MoveResult struct{}

// ScrollEvent describes a scroll over an element.
type ScrollEvent struct {
	// Scroll is the horizontal and vertical scroll distance.
	Scroll image.Point
}

// ScrollResult is returned from a scroll handler.
type ScrollResult struct{}

// Delta returns the distance the cursor moved.
func (e MoveEvent) Delta() image.Point {
	return e.Current.Sub(e.Previous)
}

func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "Left"
	case ButtonRight:
		return "Right"
	case ButtonMiddle:
		return "Middle"
	case Button4, Button5, Button6, Button7, Button8:
		return fmt.Sprintf("Button%d", int(b)+1)
	default:
		panic("unknown button")
	}
}

func (a Action) String() string {
	switch a {
	case Release:
		return "Release"
	case Press:
		return "Press"
	case Repeat:
		return "Repeat"
	default:
		panic("unknown action")
	}
}

// Contain reports whether m contains all modifiers in m2.
func (m Modifiers) Contain(m2 Modifiers) bool {
	return m&m2 == m2
}

func (m Modifiers) String() string {
	var strs []string
	for mm := ModShift; mm <= ModNumLock; mm <<= 1 {
		if m.Contain(mm) {
			strs = append(strs, mm.string())
		}
	}
	return strings.Join(strs, "|")
}

func (m Modifiers) string() string {
	switch m {
	case ModShift:
		return "Shift"
	case ModCtrl:
		return "Ctrl"
	case ModAlt:
		return "Alt"
	case ModSuper:
		return "Super"
	case ModCapsLock:
		return "CapsLock"
	case ModNumLock:
		return "NumLock"
	default:
		panic("unknown modifier")
	}
}

func (e ClickEvent) String() string {
	s := e.Button.String() + " " + e.Action.String()
	if e.Modifiers != 0 {
		s += " " + e.Modifiers.String()
	}
	return s
}
