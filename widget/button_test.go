// SPDX-License-Identifier: Unlicense OR MIT

package widget_test

import (
	"image"
	"testing"

	"hitroute.org/io/input"
	"hitroute.org/io/pointer"
	"hitroute.org/widget"
)

func frame(ctx *input.Context, t int64, cursor image.Point, setters ...func(*input.Context)) {
	ctx.PrePoll()
	ctx.SetTime(t)
	ctx.SetEnter(true)
	ctx.SetCursor(cursor)
	for _, s := range setters {
		s(ctx)
	}
	ctx.PostPoll()
}

func button(b pointer.Button, a pointer.Action) func(*input.Context) {
	return func(ctx *input.Context) { ctx.SetMouseButton(b, a, 0) }
}

var (
	press   = button(pointer.ButtonLeft, pointer.Press)
	release = button(pointer.ButtonLeft, pointer.Release)
)

func TestClickable(t *testing.T) {
	var ctx input.Context
	b := &widget.Clickable{Clock: &ctx}
	b.Bounds = image.Rect(0, 0, 100, 100)
	ctx.AddElement(b)

	frame(&ctx, 1, image.Pt(50, 50))
	if !b.Hovered() {
		t.Error("button not hovered")
	}
	frame(&ctx, 2, image.Pt(50, 50), press)
	if !b.Pressed() || ctx.Claimed() != input.Element(b) {
		t.Error("press did not claim input")
	}
	if b.Clicked() {
		t.Error("clicked before release")
	}
	frame(&ctx, 3, image.Pt(60, 50), release)
	if !b.Clicked() {
		t.Error("button did not get clicked on press & release")
	}
	if b.Clicked() {
		t.Error("single click reported twice")
	}
	if ctx.Claimed() != nil {
		t.Error("release did not release the claim")
	}
	if h := b.History(); len(h) != 1 || h[0].Time != 2 || h[0].Cancelled {
		t.Errorf("history %+v; want one press at time 2", h)
	}
	b.Trim(3)
	if len(b.History()) != 0 {
		t.Error("Trim kept an old press")
	}
}

func TestClickableCancel(t *testing.T) {
	var ctx input.Context
	b := new(widget.Clickable)
	b.Bounds = image.Rect(0, 0, 100, 100)
	other := new(widget.Clickable)
	other.Bounds = image.Rect(200, 0, 300, 100)
	ctx.AddElement(b)
	ctx.AddElement(other)

	frame(&ctx, 0, image.Pt(50, 50), press)
	// Releasing over another button clicks neither.
	frame(&ctx, 0, image.Pt(250, 50))
	if b.Hovered() || other.Hovered() {
		t.Error("hover changed during a press")
	}
	frame(&ctx, 0, image.Pt(250, 50), release)
	if b.Clicked() || other.Clicked() {
		t.Error("release outside the pressed button clicked")
	}
	if h := b.History(); len(h) != 1 || !h[0].Cancelled {
		t.Errorf("history %+v; want one cancelled press", h)
	}
	frame(&ctx, 0, image.Pt(250, 50))
	if !other.Hovered() {
		t.Error("hover did not resume after release")
	}
}

func TestClickableButtonFilter(t *testing.T) {
	var ctx input.Context
	b := &widget.Clickable{Button: pointer.ButtonRight}
	b.Bounds = image.Rect(0, 0, 10, 10)
	ctx.AddElement(b)

	frame(&ctx, 0, image.Pt(5, 5), press)
	frame(&ctx, 0, image.Pt(5, 5), release)
	if b.Clicked() {
		t.Error("left button clicked a right button clickable")
	}
	frame(&ctx, 0, image.Pt(5, 5), button(pointer.ButtonRight, pointer.Press))
	// Other buttons keep the claim while pressed.
	frame(&ctx, 0, image.Pt(5, 5), press)
	if ctx.Claimed() == nil {
		t.Error("claim lost to another button")
	}
	frame(&ctx, 0, image.Pt(5, 5), func(ctx *input.Context) {
		ctx.SetMouseButton(pointer.ButtonRight, pointer.Release, pointer.ModCtrl)
	})
	clicks := b.Clicks()
	if len(clicks) != 1 || clicks[0].Modifiers != pointer.ModCtrl {
		t.Errorf("clicks %+v; want one click with Ctrl", clicks)
	}
}
