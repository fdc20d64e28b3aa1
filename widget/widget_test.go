// SPDX-License-Identifier: Unlicense OR MIT

package widget_test

import (
	"image"
	"testing"

	"hitroute.org/io/input"
	"hitroute.org/widget"
)

func TestBool(t *testing.T) {
	var (
		ctx input.Context
		b   widget.Bool
	)
	b.Bounds = image.Rect(0, 0, 100, 100)
	ctx.AddElement(&b)

	frame(&ctx, 0, image.Pt(50, 50), press)
	frame(&ctx, 0, image.Pt(50, 50), release)
	if !b.Value || !b.Changed() {
		t.Error("click did not select")
	}
	if b.Changed() {
		t.Error("change reported twice")
	}
	if b.Clicked() {
		t.Error("toggling click left pending")
	}

	// Releasing outside does not toggle.
	frame(&ctx, 0, image.Pt(50, 50), press)
	frame(&ctx, 0, image.Pt(150, 50), release)
	if !b.Value || b.Changed() {
		t.Error("cancelled click toggled")
	}
}

func TestEnum(t *testing.T) {
	var (
		ctx input.Context
		e   widget.Enum
	)
	for i, key := range []string{"a", "b", "c"} {
		o := e.Option(key)
		o.Offset = image.Pt(i*20, 0)
		o.Bounds = image.Rect(0, 0, 20, 20)
		ctx.AddElement(o)
	}
	if e.Option("b") != e.Option("b") || e.Option("b").Key() != "b" {
		t.Fatal("Option does not return the same area for a key")
	}

	frame(&ctx, 0, image.Pt(30, 10))
	if k, ok := e.Hovered(); !ok || k != "b" {
		t.Errorf("hovered %q, %v; want b", k, ok)
	}
	frame(&ctx, 0, image.Pt(30, 10), press)
	frame(&ctx, 0, image.Pt(30, 10), release)
	if e.Value != "b" || !e.Changed() {
		t.Errorf("value %q; want b", e.Value)
	}
	frame(&ctx, 0, image.Pt(30, 10), press)
	frame(&ctx, 0, image.Pt(30, 10), release)
	if e.Changed() {
		t.Error("clicking the selected option changed the value")
	}

	frame(&ctx, 0, image.Pt(100, 10))
	if _, ok := e.Hovered(); ok {
		t.Error("option hovered with the cursor outside")
	}
}
