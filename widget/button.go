// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"hitroute.org/io/pointer"
)

// Clickable represents a clickable area. A press claims the input
// until the matching release, and the release counts as a click if the
// cursor is still over the area.
type Clickable struct {
	Area
	// Button is the mouse button that clicks.
	Button pointer.Button
	// Clock, if set, timestamps the presses in History.
	Clock Clock

	hovered bool
	pressed bool
	clicks  []Click
	history []Press
}

// Clock supplies the time of the current frame. *input.Context
// implements Clock.
type Clock interface {
	Time() int64
}

// Click represents a click.
type Click struct {
	Modifiers pointer.Modifiers
}

// Press represents a past press.
type Press struct {
	// Time is the time of the press as set on the input context.
	Time int64
	// Cancelled is set if the press was released outside the area.
	Cancelled bool
}

// Clicked reports whether there are pending clicks. If so, Clicked
// removes the earliest click.
func (b *Clickable) Clicked() bool {
	if len(b.clicks) == 0 {
		return false
	}
	n := copy(b.clicks, b.clicks[1:])
	b.clicks = b.clicks[:n]
	return true
}

// Clicks returns and clears the clicks since the last call to Clicks.
func (b *Clickable) Clicks() []Click {
	clicks := b.clicks
	b.clicks = nil
	return clicks
}

// Hovered reports whether the cursor is over the area.
func (b *Clickable) Hovered() bool {
	return b.hovered
}

// Pressed reports whether the button is held down after a press
// inside the area.
func (b *Clickable) Pressed() bool {
	return b.pressed
}

// History is the past presses, oldest first.
func (b *Clickable) History() []Press {
	return b.history
}

// Trim drops the history older than t.
func (b *Clickable) Trim(t int64) {
	for len(b.history) > 0 && b.history[0].Time < t {
		n := copy(b.history, b.history[1:])
		b.history = b.history[:n]
	}
}

func (b *Clickable) MouseEnter(pointer.EnterEvent) pointer.EnterResult {
	b.hovered = true
	return pointer.EnterResult{}
}

func (b *Clickable) MouseExit(pointer.ExitEvent) pointer.ExitResult {
	b.hovered = false
	return pointer.ExitResult{}
}

func (b *Clickable) MouseClick(e pointer.ClickEvent) pointer.ClickResult {
	if e.Button != b.Button {
		return pointer.ClickResult{Claim: b.pressed}
	}
	switch e.Action {
	case pointer.Press:
		b.pressed = true
		b.history = append(b.history, Press{Time: b.now()})
	case pointer.Release:
		if !b.pressed {
			break
		}
		b.pressed = false
		if b.hovered {
			b.clicks = append(b.clicks, Click{Modifiers: e.Modifiers})
		} else if n := len(b.history); n > 0 {
			b.history[n-1].Cancelled = true
		}
	}
	return pointer.ClickResult{Claim: b.pressed}
}

func (b *Clickable) now() int64 {
	if b.Clock == nil {
		return 0
	}
	return b.Clock.Time()
}
