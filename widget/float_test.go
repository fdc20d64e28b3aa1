// SPDX-License-Identifier: Unlicense OR MIT

package widget_test

import (
	"image"
	"testing"

	"hitroute.org/io/input"
	"hitroute.org/widget"
)

func TestFloatDrag(t *testing.T) {
	var ctx input.Context
	f := &widget.Float{Min: 0, Max: 10}
	f.Bounds = image.Rect(0, 0, 100, 20)
	f.Offset = image.Pt(100, 100)
	ctx.AddElement(f)

	frame(&ctx, 0, image.Pt(125, 110), press)
	if got, want := f.Value, float32(2.5); got != want {
		t.Errorf("value after press %v; want %v", got, want)
	}
	if !f.Changed() || f.Changed() {
		t.Error("Changed must report one change")
	}
	if !f.Dragging() {
		t.Error("press did not start a drag")
	}

	// Dragging past the end clamps.
	frame(&ctx, 0, image.Pt(400, 300))
	if got, want := f.Value, float32(10); got != want {
		t.Errorf("value after drag %v; want %v", got, want)
	}
	if got, want := f.Pos(), float32(100); got != want {
		t.Errorf("pos %v; want %v", got, want)
	}

	frame(&ctx, 0, image.Pt(400, 300), release)
	if f.Dragging() || ctx.Claimed() != nil {
		t.Error("release did not end the drag")
	}
	f.Changed()
	// Moving after the drag does not change the value.
	frame(&ctx, 0, image.Pt(150, 110))
	if f.Changed() {
		t.Errorf("value changed to %v without a drag", f.Value)
	}
}

func TestFloatVertical(t *testing.T) {
	var ctx input.Context
	f := &widget.Float{Axis: widget.Vertical, Min: 1, Max: 0}
	f.Bounds = image.Rect(0, 0, 10, 50)
	ctx.AddElement(f)

	frame(&ctx, 0, image.Pt(5, 10), press)
	if got, want := f.Value, float32(0.8); got != want {
		t.Errorf("value %v; want %v", got, want)
	}
}

func TestFloatPressWithoutMove(t *testing.T) {
	var ctx input.Context
	f := &widget.Float{Min: 0, Max: 10, Value: 5}
	f.Bounds = image.Rect(0, 0, 100, 20)
	f.Offset = image.Pt(500, 0)
	ctx.AddElement(f)

	frame(&ctx, 0, image.Pt(80, 10))
	// Move the slider under the resting cursor.
	f.Offset = image.Point{}
	frame(&ctx, 0, image.Pt(80, 10))
	if ctx.Entered() != input.Element(f) {
		t.Fatal("slider not entered")
	}
	frame(&ctx, 0, image.Pt(80, 10), press)
	if !f.Dragging() {
		t.Fatal("press did not start a drag")
	}
	if f.Value != 5 || f.Changed() {
		t.Errorf("press without a known position changed the value to %v", f.Value)
	}
	frame(&ctx, 0, image.Pt(20, 10))
	if got, want := f.Value, float32(2); got != want {
		t.Errorf("value after move %v; want %v", got, want)
	}
}
