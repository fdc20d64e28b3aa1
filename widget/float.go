// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"hitroute.org/io/pointer"
)

// Float is for selecting a value in a range by dragging along the
// area. The drag claims the input, so it continues when the cursor
// leaves the area.
type Float struct {
	Area
	Axis     Axis
	Min, Max float32
	Value    float32

	// pos is valid only if hasPos is set. It is cleared on enter,
	// because an area can become entered by moving under a still
	// cursor, which delivers no move.
	pos      int
	hasPos   bool
	dragging bool
	changed  bool
}

func (f *Float) MouseEnter(pointer.EnterEvent) pointer.EnterResult {
	f.hasPos = false
	return pointer.EnterResult{}
}

func (f *Float) MouseMove(e pointer.MoveEvent) pointer.MoveResult {
	f.pos = f.Axis.Convert(e.Current.Sub(f.Bounds.Min)).X
	f.hasPos = true
	if f.dragging {
		f.update()
	}
	return pointer.MoveResult{}
}

func (f *Float) MouseClick(e pointer.ClickEvent) pointer.ClickResult {
	if e.Button != pointer.ButtonLeft {
		return pointer.ClickResult{Claim: f.dragging}
	}
	switch e.Action {
	case pointer.Press:
		f.dragging = true
		f.update()
	case pointer.Release:
		f.dragging = false
	}
	return pointer.ClickResult{Claim: f.dragging}
}

// Dragging reports whether a drag is in progress.
func (f *Float) Dragging() bool {
	return f.dragging
}

// Pos reports the selected position along the axis, relative to the
// start of the bounds.
func (f *Float) Pos() float32 {
	length := f.length()
	if f.Min == f.Max || length == 0 {
		return 0
	}
	return (f.Value - f.Min) / (f.Max - f.Min) * float32(length)
}

// Changed reports whether the value has changed since
// the last call to Changed.
func (f *Float) Changed() bool {
	changed := f.changed
	f.changed = false
	return changed
}

func (f *Float) length() int {
	return f.Axis.Convert(f.Bounds.Size()).X
}

func (f *Float) update() {
	if !f.hasPos {
		return
	}
	length := f.length()
	if length <= 0 {
		return
	}
	pos := float32(f.pos) / float32(length)
	f.setValue(f.Min + (f.Max-f.Min)*pos)
}

func (f *Float) setValue(value float32) {
	min, max := f.Min, f.Max
	if min > max {
		min, max = max, min
	}
	if value < min {
		value = min
	} else if value > max {
		value = max
	}
	if f.Value != value {
		f.Value = value
		f.changed = true
	}
}
