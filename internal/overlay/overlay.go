// SPDX-License-Identifier: Unlicense OR MIT

// Package overlay renders the hit areas of an input.Context to an
// image, for debugging element layouts and replayed scenes.
package overlay

import (
	"image"
	"image/color"

	"golang.org/x/image/colornames"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"hitroute.org/io/input"
)

// Options control the rendering.
type Options struct {
	// Label, if set, returns the text drawn at the top left corner of
	// each element hit area.
	Label func(e input.Element) string
	// Scale is the integer upscaling factor of the output. Values below
	// 1 mean 1.
	Scale int
	// NoCursor disables the cursor crosshair.
	NoCursor bool
}

var (
	// Background is the color of pixels not covered by any element.
	Background = colornames.Black
	// Claimed is the color of the element that has claimed input.
	Claimed = colornames.Red
	// Outline is the color of the outline of the entered element.
	Outline = colornames.White
	// Cursor is the color of the cursor crosshair.
	Cursor = colornames.Yellow
)

// palette colors the elements in stacking order.
var palette = []color.RGBA{
	colornames.Steelblue,
	colornames.Seagreen,
	colornames.Darkorange,
	colornames.Mediumpurple,
	colornames.Teal,
	colornames.Goldenrod,
	colornames.Slategray,
	colornames.Indianred,
	colornames.Olivedrab,
	colornames.Orchid,
}

// Render draws the topmost element under every pixel of a window of the
// given size, in the order of the most recent ctx.PostPoll.
func Render(ctx *input.Context, size image.Point, opts Options) *image.RGBA {
	elems := ctx.Elements()
	colors := make(map[input.Element]color.RGBA, len(elems))
	for i, e := range elems {
		colors[e] = palette[i%len(palette)]
	}
	if c := ctx.Claimed(); c != nil {
		colors[c] = Claimed
	}

	img := image.NewRGBA(image.Rectangle{Max: size})
	draw.Draw(img, img.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)
	owners := make([]input.Element, size.X*size.Y)
	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			e := ctx.ElementAt(image.Pt(x, y))
			if e == nil {
				continue
			}
			owners[y*size.X+x] = e
			img.SetRGBA(x, y, colors[e])
		}
	}
	if en := ctx.Entered(); en != nil {
		outline(img, owners, size, en)
	}
	if opts.Label != nil {
		labels(img, owners, size, opts.Label)
	}
	if !opts.NoCursor && ctx.Inside() {
		crosshair(img, ctx.Cursor())
	}
	if opts.Scale <= 1 {
		return img
	}
	scaled := image.NewRGBA(image.Rectangle{Max: size.Mul(opts.Scale)})
	draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), img, img.Bounds(), draw.Src, nil)
	return scaled
}

// outline marks the visible pixels of e that border a pixel owned by
// another element or the window edge.
func outline(img *image.RGBA, owners []input.Element, size image.Point, e input.Element) {
	owner := func(x, y int) input.Element {
		if x < 0 || y < 0 || x >= size.X || y >= size.Y {
			return nil
		}
		return owners[y*size.X+x]
	}
	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			if owner(x, y) != e {
				continue
			}
			if owner(x-1, y) != e || owner(x+1, y) != e || owner(x, y-1) != e || owner(x, y+1) != e {
				img.SetRGBA(x, y, Outline)
			}
		}
	}
}

// labels draws the label of every visible element at its first visible
// pixel in scan order.
func labels(img *image.RGBA, owners []input.Element, size image.Point, label func(input.Element) string) {
	seen := make(map[input.Element]bool)
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(colornames.White),
		Face: basicfont.Face7x13,
	}
	ascent := basicfont.Face7x13.Metrics().Ascent.Ceil()
	for i, e := range owners {
		if e == nil || seen[e] {
			continue
		}
		seen[e] = true
		s := label(e)
		if s == "" {
			continue
		}
		d.Dot = fixed.P(i%size.X+1, i/size.X+ascent)
		d.DrawString(s)
	}
}

func crosshair(img *image.RGBA, p image.Point) {
	const arm = 3
	b := img.Bounds()
	for i := -arm; i <= arm; i++ {
		for _, q := range []image.Point{p.Add(image.Pt(i, 0)), p.Add(image.Pt(0, i))} {
			if q.In(b) {
				img.SetRGBA(q.X, q.Y, Cursor)
			}
		}
	}
}
