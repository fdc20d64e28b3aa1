// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"

	"hitroute.org/io/input"
)

// Shape is the outline of an Area.
type Shape uint8

const (
	Rect Shape = iota
	// Ellipse is the ellipse inscribed in the bounds.
	Ellipse
)

// Axis is the direction of a Float or Scroller.
type Axis uint8

const (
	Horizontal Axis = iota
	Vertical
)

// Area is an input element covering a shape. It has no handlers.
type Area struct {
	input.Node
	Shape Shape
	// Bounds of the shape in local coordinates.
	Bounds image.Rectangle
}

func (a *Area) Intersect(p image.Point) bool {
	if !p.In(a.Bounds) {
		return false
	}
	switch a.Shape {
	case Rect:
		return true
	case Ellipse:
		size := a.Bounds.Size()
		pos := p.Sub(a.Bounds.Min)
		rx := float32(size.X) / 2
		ry := float32(size.Y) / 2
		xh := float32(pos.X) + .5 - rx
		yk := float32(pos.Y) + .5 - ry
		return (xh*xh)/(rx*rx)+(yk*yk)/(ry*ry) <= 1
	default:
		panic("invalid shape")
	}
}

func (s Shape) String() string {
	switch s {
	case Rect:
		return "Rect"
	case Ellipse:
		return "Ellipse"
	default:
		panic("invalid shape")
	}
}

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		panic("invalid axis")
	}
}

// Convert a point in (x, y) coordinates to (main, cross) coordinates,
// or vice versa.
func (a Axis) Convert(pt image.Point) image.Point {
	if a == Horizontal {
		return pt
	}
	return image.Pt(pt.Y, pt.X)
}
