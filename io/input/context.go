// SPDX-License-Identifier: Unlicense OR MIT

package input

import (
	"image"

	"golang.org/x/exp/slices"

	"hitroute.org/io/pointer"
)

// Context tracks the mouse state of a window and routes events to the
// registered elements. The zero value is ready to use.
type Context struct {
	time   int64
	focus  bool
	inside bool

	cursor     image.Point
	prevCursor image.Point

	// elements is the registry, sorted from top to bottom by the most
	// recent PostPoll.
	elements []Element
	sorter   sorter
	path     []int32

	// entered is the element that contains the cursor.
	entered Element
	// claimed is the element that has claimed input.
	claimed Element

	pendingClick  *pointer.ClickEvent
	pendingScroll *pointer.ScrollEvent
	click         pointer.ClickEvent
	scroll        pointer.ScrollEvent

	// dispatching is set while PostPoll delivers events.
	dispatching bool
	// removals are the elements removed during dispatch.
	removals []Element
}

// Time returns the time set by SetTime.
func (c *Context) Time() int64 {
	return c.time
}

// Focus reports whether the window has input focus.
func (c *Context) Focus() bool {
	return c.focus
}

// Inside reports whether the cursor is inside the window.
func (c *Context) Inside() bool {
	return c.inside
}

// Cursor returns the cursor position in window space.
func (c *Context) Cursor() image.Point {
	return c.cursor
}

// PreviousCursor returns the cursor position of the previous frame.
func (c *Context) PreviousCursor() image.Point {
	return c.prevCursor
}

// Entered returns the element that contains the cursor, or nil.
func (c *Context) Entered() Element {
	return c.entered
}

// Claimed returns the element that has claimed input, or nil.
func (c *Context) Claimed() Element {
	return c.claimed
}

// Elements returns a copy of the registered elements, ordered from top
// to bottom as of the most recent PostPoll. Elements added since then
// are last.
func (c *Context) Elements() []Element {
	return slices.Clone(c.elements)
}

// SetTime sets the monotonic clock value of the current frame.
func (c *Context) SetTime(t int64) {
	c.time = t
}

// SetFocus sets whether the window has input focus.
func (c *Context) SetFocus(f bool) {
	c.focus = f
}

// SetEnter sets whether the cursor is inside the window. While the
// cursor is outside, no element is entered and the move, click and
// scroll events of the frame are dropped.
func (c *Context) SetEnter(e bool) {
	c.inside = e
}

// SetCursor sets the cursor position in window space.
func (c *Context) SetCursor(p image.Point) {
	c.cursor = p
}

// SetMouseButton sets the button change of the current frame,
// replacing any earlier change in the same frame.
func (c *Context) SetMouseButton(b pointer.Button, a pointer.Action, mods pointer.Modifiers) {
	c.click = pointer.ClickEvent{Button: b, Action: a, Modifiers: mods}
	c.pendingClick = &c.click
}

// SetScroll sets the scroll distance of the current frame, replacing
// any earlier scroll in the same frame.
func (c *Context) SetScroll(s image.Point) {
	c.scroll = pointer.ScrollEvent{Scroll: s}
	c.pendingScroll = &c.scroll
}

// ClearMouseButton discards the pending button change and scroll.
func (c *Context) ClearMouseButton() {
	c.pendingClick = nil
	c.pendingScroll = nil
}

// AddElement registers e. Registering an element twice makes it
// receive events twice and is not detected.
func (c *Context) AddElement(e Element) {
	c.elements = append(c.elements, e)
}

// RemoveElement unregisters e and reports whether it was registered.
// If e is entered or has claimed input, it loses that state without
// receiving an exit event.
//
// Removals from inside an event handler take effect at the end of
// PostPoll. Until then the element is neither entered nor receives any
// further event of the frame.
func (c *Context) RemoveElement(e Element) bool {
	i := slices.Index(c.elements, e)
	if i == -1 {
		return false
	}
	if c.dispatching {
		if slices.Contains(c.removals, e) {
			return false
		}
		c.removals = append(c.removals, e)
		return true
	}
	c.elements = slices.Delete(c.elements, i, i+1)
	c.forget(e)
	return true
}

// forget clears references to a removed element.
func (c *Context) forget(e Element) {
	if c.entered == e {
		c.entered = nil
	}
	if c.claimed == e {
		c.claimed = nil
	}
}

// ElementAt returns the topmost registered element containing p, in
// window space, or nil. It uses the order of the most recent PostPoll
// and ignores any claim.
func (c *Context) ElementAt(p image.Point) Element {
	for _, e := range c.elements {
		if hit(e, p) {
			return e
		}
	}
	return nil
}

// PrePoll clears the events of the previous frame. Call it before
// polling the window system for events.
func (c *Context) PrePoll() {
	c.ClearMouseButton()
}

// PostPoll processes the events of the current frame. Call it after
// polling the window system for events and passing them to c.
func (c *Context) PostPoll() {
	c.dispatching = true
	c.sorter.sort(c.elements)
	// Leaving the window drops the events of the frame, even for a
	// claimed element. The claim itself survives.
	if c.enterEvents() {
		c.moveEvents()
		c.clickEvents()
		c.scrollEvents()
	}
	c.prevCursor = c.cursor
	c.ClearMouseButton()
	c.dispatching = false

	for _, e := range c.removals {
		if i := slices.Index(c.elements, e); i != -1 {
			c.elements = slices.Delete(c.elements, i, i+1)
		}
		c.forget(e)
	}
	c.removals = c.removals[:0]
}

// enterEvents resolves the entered element and reports whether the
// cursor is inside the window.
func (c *Context) enterEvents() bool {
	if !c.inside {
		if c.entered != nil {
			exit(c.entered)
			c.entered = nil
		}
		return false
	}

	stillInside := false
	if c.entered != nil {
		if hit(c.entered, c.cursor) {
			stillInside = true
		} else {
			exit(c.entered)
			c.entered = nil
		}
	}

	// A claim restricts entering to the claiming element.
	if c.claimed != nil {
		if c.entered == nil && !c.removed(c.claimed) && hit(c.claimed, c.cursor) {
			c.entered = c.claimed
			enter(c.entered)
		}
		return true
	}

	if stillInside {
		c.path = appendPath(c.path[:0], c.entered)
	}
	for _, en := range c.sorter.entries {
		e := en.elem
		if e == c.entered || c.removed(e) {
			continue
		}
		// The list is sorted, so no later element is above the entered
		// element either.
		if stillInside && comparePaths(c.sorter.path(en), c.path) <= 0 {
			break
		}
		if hit(e, c.cursor) {
			if c.entered != nil {
				exit(c.entered)
			}
			c.entered = e
			enter(e)
			break
		}
	}
	return true
}

func (c *Context) moveEvents() {
	if c.prevCursor == c.cursor {
		return
	}
	e := c.target()
	if e == nil {
		return
	}
	off := GlobalOffset(e)
	move(e, pointer.MoveEvent{
		Previous: c.prevCursor.Sub(off),
		Current:  c.cursor.Sub(off),
	})
}

func (c *Context) clickEvents() {
	if c.pendingClick == nil {
		return
	}
	ev := *c.pendingClick
	switch {
	case c.claimed != nil && c.removed(c.claimed):
	case c.claimed != nil:
		if !click(c.claimed, ev).Claim {
			c.claimed = nil
		}
	case c.entered != nil && !c.removed(c.entered):
		e := c.entered
		if click(e, ev).Claim {
			c.claimed = e
		}
	}
}

func (c *Context) scrollEvents() {
	if c.pendingScroll == nil {
		return
	}
	if e := c.target(); e != nil {
		scroll(e, *c.pendingScroll)
	}
}

// target returns the element that receives move and scroll events.
func (c *Context) target() Element {
	e := c.entered
	if c.claimed != nil {
		e = c.claimed
	}
	if e == nil || c.removed(e) {
		return nil
	}
	return e
}

// removed reports whether e is removed at the end of the current
// PostPoll.
func (c *Context) removed(e Element) bool {
	return c.dispatching && slices.Contains(c.removals, e)
}
