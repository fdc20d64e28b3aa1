// SPDX-License-Identifier: Unlicense OR MIT

package input

import (
	"image"

	"hitroute.org/io/pointer"
)

// Element is a node that can receive mouse input.
//
// Elements are compared with ==, so implementations should be
// pointer types. A Context never owns its elements: an element must be
// removed from every Context it was added to before it is discarded.
//
// The remaining capabilities of an element are optional and are
// detected through the Parenter, Layerer, Offsetter and handler
// interfaces. Geometry methods may be called many times per frame and
// must not have side effects.
type Element interface {
	// Intersect reports whether p, in the local coordinate space of
	// the element, is inside the element.
	Intersect(p image.Point) bool
}

// Parenter is implemented by elements nested in another element.
type Parenter interface {
	// InputParent returns the parent element, or nil for a root.
	InputParent() Element
}

// Layerer is implemented by elements with a stacking layer. Among
// elements with the same parent, higher layers are on top. Elements
// without a layer are on layer 0.
type Layerer interface {
	InputLayer() int32
}

// Offsetter is implemented by elements whose local space is translated
// relative to their parent, or to the window for roots.
type Offsetter interface {
	InputOffset() image.Point
}

type EnterHandler interface {
	MouseEnter(e pointer.EnterEvent) pointer.EnterResult
}

type ExitHandler interface {
	MouseExit(e pointer.ExitEvent) pointer.ExitResult
}

type ClickHandler interface {
	MouseClick(e pointer.ClickEvent) pointer.ClickResult
}

type MoveHandler interface {
	MouseMove(e pointer.MoveEvent) pointer.MoveResult
}

type ScrollHandler interface {
	MouseScroll(e pointer.ScrollEvent) pointer.ScrollResult
}

// Node implements Parenter, Layerer and Offsetter from plain fields.
// Embed it in a widget to place the widget in the input hierarchy.
type Node struct {
	Parent Element
	Layer  int32
	Offset image.Point
}

func (n *Node) InputParent() Element     { return n.Parent }
func (n *Node) InputLayer() int32        { return n.Layer }
func (n *Node) InputOffset() image.Point { return n.Offset }

// maxDepth bounds parent chains. Deeper chains are assumed to be cyclic.
const maxDepth = 1 << 12

func parentOf(e Element) Element {
	if p, ok := e.(Parenter); ok {
		return p.InputParent()
	}
	return nil
}

func layerOf(e Element) int32 {
	if l, ok := e.(Layerer); ok {
		return l.InputLayer()
	}
	return 0
}

func offsetOf(e Element) image.Point {
	if o, ok := e.(Offsetter); ok {
		return o.InputOffset()
	}
	return image.Point{}
}

// GlobalOffset returns the translation from the local space of e to
// window space, the sum of the offsets of e and all its ancestors.
func GlobalOffset(e Element) image.Point {
	var off image.Point
	depth := 0
	for ; e != nil; e = parentOf(e) {
		if depth++; depth > maxDepth {
			panic("input: element parent chain is cyclic")
		}
		off = off.Add(offsetOf(e))
	}
	return off
}

// LocalPoint transforms p from window space to the local space of e.
func LocalPoint(e Element, p image.Point) image.Point {
	return p.Sub(GlobalOffset(e))
}

func hit(e Element, p image.Point) bool {
	return e.Intersect(LocalPoint(e, p))
}

func enter(e Element) {
	if h, ok := e.(EnterHandler); ok {
		h.MouseEnter(pointer.EnterEvent{})
	}
}

func exit(e Element) {
	if h, ok := e.(ExitHandler); ok {
		h.MouseExit(pointer.ExitEvent{})
	}
}

func click(e Element, ev pointer.ClickEvent) pointer.ClickResult {
	if h, ok := e.(ClickHandler); ok {
		return h.MouseClick(ev)
	}
	return pointer.ClickResult{}
}

func move(e Element, ev pointer.MoveEvent) {
	if h, ok := e.(MoveHandler); ok {
		h.MouseMove(ev)
	}
}

func scroll(e Element, ev pointer.ScrollEvent) {
	if h, ok := e.(ScrollHandler); ok {
		h.MouseScroll(ev)
	}
}
