// SPDX-License-Identifier: Unlicense OR MIT

package scene

import (
	"errors"
	"fmt"
	"image"
	"log"
	"reflect"
	"strings"

	"hitroute.org/io/input"
	"hitroute.org/io/pointer"
	"hitroute.org/widget"
)

// ErrMismatch is returned when a frame does not produce its expected
// trace.
var ErrMismatch = errors.New("trace mismatch")

// Player replays the frames of a scene against its own input.Context.
// The frame index is used as the context time.
type Player struct {
	// Log, if set, receives the trace of every frame.
	Log *log.Logger

	ctx      input.Context
	scene    *Scene
	elements map[string]*element
	labels   map[input.Element]string
	next     int
	trace    []string
}

// Result is the trace of a replayed scene, one entry per frame.
type Result struct {
	Name   string
	Frames [][]string
}

type element struct {
	widget.Area
	id   string
	drag bool
	p    *Player
}

// NewPlayer creates the elements of s and registers them in scene
// order. The scene must be valid.
func NewPlayer(s *Scene) *Player {
	p := &Player{
		scene:    s,
		elements: make(map[string]*element),
		labels:   make(map[input.Element]string),
	}
	for _, d := range s.Elements {
		shape, err := parseShape(d.Shape)
		if err != nil {
			panic(err)
		}
		e := &element{id: d.ID, drag: d.Drag, p: p}
		e.Shape = shape
		e.Bounds = rect(d.Bounds)
		e.Offset = point(d.Offset)
		e.Layer = d.Layer
		p.elements[d.ID] = e
		p.labels[e] = d.ID
	}
	for _, d := range s.Elements {
		if d.Parent != "" {
			p.elements[d.ID].Parent = p.elements[d.Parent]
		}
		p.ctx.AddElement(p.elements[d.ID])
	}
	return p
}

// Context returns the input context driven by p.
func (p *Player) Context() *input.Context {
	return &p.ctx
}

// Label returns the scene id of e.
func (p *Player) Label(e input.Element) string {
	return p.labels[e]
}

// Size returns the window size of the scene, or the union of the
// element bounds if the scene has no size.
func (p *Player) Size() image.Point {
	if len(p.scene.Size) == 2 {
		return image.Pt(p.scene.Size[0], p.scene.Size[1])
	}
	var r image.Rectangle
	for _, e := range p.elements {
		r = r.Union(e.Bounds.Add(input.GlobalOffset(e)))
	}
	return r.Max
}

// Done reports whether every frame has been replayed.
func (p *Player) Done() bool {
	return p.next >= len(p.scene.Frames)
}

// Step replays the next frame and returns its trace.
func (p *Player) Step() ([]string, error) {
	if p.Done() {
		return nil, errors.New("scene: no frames left")
	}
	i := p.next
	f := &p.scene.Frames[i]
	p.next++

	for _, c := range f.Geometry {
		e := p.elements[c.ID]
		if len(c.Offset) == 2 {
			e.Offset = point(c.Offset)
		}
		if c.Layer != nil {
			e.Layer = *c.Layer
		}
		if len(c.Bounds) == 4 {
			e.Bounds = rect(c.Bounds)
		}
	}
	for _, id := range f.Remove {
		p.ctx.RemoveElement(p.elements[id])
	}
	for _, id := range f.Add {
		p.ctx.AddElement(p.elements[id])
	}

	p.trace = nil
	ctx := &p.ctx
	ctx.PrePoll()
	ctx.SetTime(int64(i))
	ctx.SetFocus(f.Focus == nil || *f.Focus)
	ctx.SetEnter(f.Inside == nil || *f.Inside)
	ctx.SetCursor(point(f.Cursor))
	if f.Click != nil {
		ev, err := f.Click.event()
		if err != nil {
			return nil, fmt.Errorf("scene: frame %d: %w", i, err)
		}
		ctx.SetMouseButton(ev.Button, ev.Action, ev.Modifiers)
	}
	if len(f.Scroll) == 2 {
		ctx.SetScroll(point(f.Scroll))
	}
	ctx.PostPoll()

	trace := p.trace
	if p.Log != nil {
		p.Log.Printf("%s: frame %d: %s", p.scene.Name, i, strings.Join(trace, "; "))
	}
	if f.Expect != nil && !equalTrace(trace, f.Expect) {
		return trace, fmt.Errorf("%w: %s: frame %d: got %q, want %q", ErrMismatch, p.scene.Name, i, trace, f.Expect)
	}
	return trace, nil
}

// Run replays the remaining frames, at most n if n is not negative.
func (p *Player) Run(n int) ([][]string, error) {
	var frames [][]string
	for !p.Done() && (n < 0 || len(frames) < n) {
		trace, err := p.Step()
		frames = append(frames, trace)
		if err != nil {
			return frames, err
		}
	}
	return frames, nil
}

// Replay replays all frames of s. The trace is returned even if a frame
// does not match its expectation.
func Replay(s *Scene, l *log.Logger) (Result, error) {
	p := NewPlayer(s)
	p.Log = l
	frames, err := p.Run(-1)
	return Result{Name: s.Name, Frames: frames}, err
}

func equalTrace(got, want []string) bool {
	if len(got) == 0 && len(want) == 0 {
		return true
	}
	return reflect.DeepEqual(got, want)
}

func parseShape(s string) (widget.Shape, error) {
	switch strings.ToLower(s) {
	case "", "rect":
		return widget.Rect, nil
	case "ellipse":
		return widget.Ellipse, nil
	default:
		return 0, fmt.Errorf("unknown shape %q", s)
	}
}

func (e *element) record(format string, args ...interface{}) {
	e.p.trace = append(e.p.trace, fmt.Sprintf(format, args...))
}

func (e *element) MouseEnter(pointer.EnterEvent) pointer.EnterResult {
	e.record("enter %s", e.id)
	return pointer.EnterResult{}
}

func (e *element) MouseExit(pointer.ExitEvent) pointer.ExitResult {
	e.record("exit %s", e.id)
	return pointer.ExitResult{}
}

func (e *element) MouseClick(ev pointer.ClickEvent) pointer.ClickResult {
	claim := e.drag && ev.Action != pointer.Release
	e.record("click %s %v claim=%v", e.id, ev, claim)
	return pointer.ClickResult{Claim: claim}
}

func (e *element) MouseMove(ev pointer.MoveEvent) pointer.MoveResult {
	e.record("move %s (%d,%d)->(%d,%d)", e.id, ev.Previous.X, ev.Previous.Y, ev.Current.X, ev.Current.Y)
	return pointer.MoveResult{}
}

func (e *element) MouseScroll(ev pointer.ScrollEvent) pointer.ScrollResult {
	e.record("scroll %s (%d,%d)", e.id, ev.Scroll.X, ev.Scroll.Y)
	return pointer.ScrollResult{}
}
