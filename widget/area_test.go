// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"
	"testing"
)

func TestAreaIntersect(t *testing.T) {
	for _, tc := range []struct {
		shape Shape
		p     image.Point
		hit   bool
	}{
		{Rect, image.Pt(10, 10), true},
		{Rect, image.Pt(49, 29), true},
		{Rect, image.Pt(50, 20), false},
		{Rect, image.Pt(9, 20), false},
		{Ellipse, image.Pt(30, 20), true},
		{Ellipse, image.Pt(11, 20), true},
		{Ellipse, image.Pt(10, 10), false},
		{Ellipse, image.Pt(49, 29), false},
		{Ellipse, image.Pt(60, 20), false},
	} {
		a := Area{Shape: tc.shape, Bounds: image.Rect(10, 10, 50, 30)}
		if got := a.Intersect(tc.p); got != tc.hit {
			t.Errorf("%v.Intersect(%v) = %v; want %v", tc.shape, tc.p, got, tc.hit)
		}
	}
}

func TestEmptyEllipse(t *testing.T) {
	a := Area{Shape: Ellipse}
	if a.Intersect(image.Point{}) {
		t.Error("empty ellipse hit")
	}
}
