// SPDX-License-Identifier: Unlicense OR MIT

//go:build !openbsd && !freebsd && !android && !ios && !js
// +build !openbsd,!freebsd,!android,!ios,!js

// Command glfw shows the hit areas of a few widgets in a GLFW window
// and logs their input.
package main

import (
	"image"
	"log"
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"hitroute.org/app/glfwinput"
	"hitroute.org/internal/overlay"
	"hitroute.org/io/input"
	"hitroute.org/io/pointer"
	"hitroute.org/widget"
)

func main() {
	// Required by the OpenGL threading model.
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		log.Fatal(err)
	}
	defer glfw.Terminate()
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(640, 400, "hitroute + GLFW", nil, nil)
	if err != nil {
		log.Fatal(err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)
	if err := gl.Init(); err != nil {
		log.Fatal(err)
	}

	var ctx input.Context
	u := newUI(&ctx)
	in := glfwinput.Attach(window, &ctx)
	defer in.Detach()
	b := newBlitter()
	for !window.ShouldClose() {
		in.Poll()
		u.update()
		// The cursor is in window coordinates; the framebuffer may be
		// larger on high density displays.
		ww, wh := window.GetSize()
		fw, fh := window.GetFramebufferSize()
		img := overlay.Render(&ctx, image.Pt(ww, wh), overlay.Options{Label: u.label})
		b.blit(img, fw, fh)
		window.SwapBuffers()
	}
}

type ui struct {
	ctx    *input.Context
	labels map[input.Element]string

	panel  widget.Area
	ok     widget.Clickable
	round  widget.Clickable
	tip    widget.Area
	slider widget.Float
	list   widget.Scroller
	items  [8]widget.Clickable

	tipShown bool
}

func newUI(ctx *input.Context) *ui {
	u := &ui{ctx: ctx, labels: make(map[input.Element]string)}
	add := func(e input.Element, label string) {
		u.labels[e] = label
		ctx.AddElement(e)
	}

	u.panel.Offset = image.Pt(10, 10)
	u.panel.Bounds = image.Rect(0, 0, 620, 380)
	add(&u.panel, "panel")

	u.ok.Parent = &u.panel
	u.ok.Offset = image.Pt(20, 20)
	u.ok.Bounds = image.Rect(0, 0, 120, 40)
	u.ok.Clock = ctx
	add(&u.ok, "ok")

	u.round.Parent = &u.panel
	u.round.Offset = image.Pt(160, 10)
	u.round.Bounds = image.Rect(0, 0, 60, 60)
	u.round.Shape = widget.Ellipse
	u.round.Button = pointer.ButtonRight
	add(&u.round, "round (right click)")

	// The tooltip is a child of ok, so it covers the slider even with a
	// low layer.
	u.tip.Parent = &u.ok
	u.tip.Offset = image.Pt(40, 50)
	u.tip.Bounds = image.Rect(0, 0, 160, 30)
	u.tip.Layer = -1
	u.labels[&u.tip] = "tooltip"

	u.slider.Parent = &u.panel
	u.slider.Offset = image.Pt(20, 90)
	u.slider.Bounds = image.Rect(0, 0, 300, 20)
	u.slider.Max = 100
	add(&u.slider, "slider")

	u.list.Parent = &u.panel
	u.list.Offset = image.Pt(360, 20)
	u.list.Bounds = image.Rect(0, 0, 240, 340)
	u.list.Axis = widget.Vertical
	u.list.Step = 20
	u.list.Limit = len(u.items)*50 - 340
	add(&u.list, "list")
	for i := range u.items {
		it := &u.items[i]
		it.Parent = &u.list
		it.Layer = 1
		it.Bounds = image.Rect(0, 0, 220, 40)
		add(it, "item "+string(rune('A'+i)))
	}
	u.layoutItems()
	return u
}

func (u *ui) label(e input.Element) string {
	return u.labels[e]
}

// update handles the widget state changes of the last frame.
func (u *ui) update() {
	for _, c := range u.ok.Clicks() {
		log.Printf("ok clicked (modifiers %v)", c.Modifiers)
	}
	u.ok.Trim(u.ctx.Time() - 1e6)
	if u.round.Clicked() {
		log.Print("round clicked")
	}
	if u.slider.Changed() {
		log.Printf("slider: %.1f", u.slider.Value)
	}
	if u.list.Changed() {
		u.layoutItems()
	}
	for i := range u.items {
		if u.items[i].Clicked() {
			log.Printf("item %c clicked", 'A'+i)
		}
	}

	if show := u.ok.Hovered() || u.ok.Pressed(); show != u.tipShown {
		u.tipShown = show
		if show {
			u.ctx.AddElement(&u.tip)
		} else {
			u.ctx.RemoveElement(&u.tip)
		}
	}
}

func (u *ui) layoutItems() {
	for i := range u.items {
		u.items[i].Offset = image.Pt(10, 10+i*50-u.list.Offset())
	}
}

// blitter copies images to the default framebuffer.
type blitter struct {
	tex, fbo uint32
}

func newBlitter() *blitter {
	b := new(blitter)
	gl.GenTextures(1, &b.tex)
	gl.BindTexture(gl.TEXTURE_2D, b.tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.GenFramebuffers(1, &b.fbo)
	return b
}

func (b *blitter) blit(img *image.RGBA, width, height int) {
	sz := img.Bounds().Size()
	if sz.X == 0 || sz.Y == 0 {
		return
	}
	gl.BindTexture(gl.TEXTURE_2D, b.tex)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(sz.X), int32(sz.Y), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, b.fbo)
	gl.FramebufferTexture2D(gl.READ_FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, b.tex, 0)
	gl.BindFramebuffer(gl.DRAW_FRAMEBUFFER, 0)
	// Image rows are top down, framebuffer rows bottom up.
	gl.BlitFramebuffer(0, 0, int32(sz.X), int32(sz.Y), 0, int32(height), int32(width), 0, gl.COLOR_BUFFER_BIT, gl.NEAREST)
}
