// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"hitroute.org/io/pointer"
)

// Bool is a clickable area that toggles Value on every click. Its
// clicks are consumed by the toggling.
type Bool struct {
	Clickable
	Value bool

	changed bool
}

// Changed reports whether Value has changed since the last
// call to Changed.
func (b *Bool) Changed() bool {
	changed := b.changed
	b.changed = false
	return changed
}

func (b *Bool) MouseClick(e pointer.ClickEvent) pointer.ClickResult {
	res := b.Clickable.MouseClick(e)
	for b.Clickable.Clicked() {
		b.Value = !b.Value
		b.changed = true
	}
	return res
}
