// SPDX-License-Identifier: Unlicense OR MIT

/*
Package input routes mouse input to the elements of a user interface.

An [Element] is any value that can report whether a point lies inside
it. Elements form a forest through optional parent references and are
stacked by per-parent layers; [Above] defines the resulting order,
where a descendant is always on top of its ancestors.

A [Context] holds the input state of one window. A backend drives it
once per frame:

	ctx.PrePoll()
	// Poll native events, calling SetTime, SetFocus, SetEnter,
	// SetCursor, SetMouseButton and SetScroll as they arrive.
	ctx.PostPoll()

PostPoll sorts the registered elements, resolves which element is
entered, and delivers move, click and scroll events, in that order.
A click handler may claim the input, after which every event goes to
the claiming element until one of its click handlers releases the
claim.

Contexts are not safe for concurrent use. Handlers run synchronously
inside PostPoll.
*/
package input
