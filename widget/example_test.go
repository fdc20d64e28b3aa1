// SPDX-License-Identifier: Unlicense OR MIT

package widget_test

import (
	"fmt"
	"image"

	"hitroute.org/io/input"
	"hitroute.org/io/pointer"
	"hitroute.org/widget"
)

func ExampleClickable_overlap() {
	// When clickable widgets overlap, only the topmost one is
	// entered and receives the clicks.
	var ctx input.Context
	var button1, button2 widget.Clickable
	button1.Bounds = image.Rect(0, 0, 100, 100)
	button2.Bounds = image.Rect(0, 0, 100, 100)
	button2.Layer = 1
	ctx.AddElement(&button1)
	ctx.AddElement(&button2)

	ctx.SetEnter(true)
	ctx.SetCursor(image.Pt(50, 50))
	// Simulate one click by sending a press and a release in two frames.
	for _, a := range []pointer.Action{pointer.Press, pointer.Release} {
		ctx.PrePoll()
		ctx.SetMouseButton(pointer.ButtonLeft, a, 0)
		ctx.PostPoll()
	}

	fmt.Println("button1 clicked:", button1.Clicked())
	fmt.Println("button2 clicked:", button2.Clicked())

	// Output:
	// button1 clicked: false
	// button2 clicked: true
}

func ExampleFloat() {
	var ctx input.Context
	f := &widget.Float{Max: 100}
	f.Bounds = image.Rect(0, 0, 200, 10)
	ctx.AddElement(f)

	ctx.SetEnter(true)
	for _, x := range []int{50, 150} {
		ctx.PrePoll()
		ctx.SetCursor(image.Pt(x, 5))
		if x == 50 {
			ctx.SetMouseButton(pointer.ButtonLeft, pointer.Press, 0)
		}
		ctx.PostPoll()
		fmt.Printf("value: %.0f\n", f.Value)
	}

	// Output:
	// value: 25
	// value: 75
}
