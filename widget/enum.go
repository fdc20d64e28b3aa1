// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"golang.org/x/exp/slices"

	"hitroute.org/io/pointer"
)

// Enum selects one of a set of keyed options. Every option is a
// clickable area that must be placed and added to a context by the
// caller.
type Enum struct {
	Value string

	changed bool
	keys    []string
	options []*EnumOption
}

// EnumOption is the clickable area of one key of an Enum.
type EnumOption struct {
	Clickable

	enum *Enum
	key  string
}

// Option returns the area for key, creating it on first use.
func (e *Enum) Option(key string) *EnumOption {
	if i := slices.Index(e.keys, key); i != -1 {
		return e.options[i]
	}
	o := &EnumOption{enum: e, key: key}
	e.keys = append(e.keys, key)
	e.options = append(e.options, o)
	return o
}

// Changed reports whether Value has changed by user interaction since
// the last call to Changed.
func (e *Enum) Changed() bool {
	changed := e.changed
	e.changed = false
	return changed
}

// Hovered returns the key of the hovered option, if any.
func (e *Enum) Hovered() (string, bool) {
	for i, o := range e.options {
		if o.Hovered() {
			return e.keys[i], true
		}
	}
	return "", false
}

// Key returns the key of the option.
func (o *EnumOption) Key() string {
	return o.key
}

func (o *EnumOption) MouseClick(ev pointer.ClickEvent) pointer.ClickResult {
	res := o.Clickable.MouseClick(ev)
	clicked := false
	for o.Clickable.Clicked() {
		clicked = true
	}
	if clicked && o.enum.Value != o.key {
		o.enum.Value = o.key
		o.enum.changed = true
	}
	return res
}
