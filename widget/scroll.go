// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"hitroute.org/io/pointer"
)

// Scroller accumulates scrolling over its area into a content offset.
type Scroller struct {
	Area
	Axis Axis
	// Step is the distance of one scroll unit. Zero means 1.
	Step int
	// Limit is the largest Offset when positive. Offset is never negative.
	Limit int

	offset  int
	changed bool
}

func (s *Scroller) MouseScroll(e pointer.ScrollEvent) pointer.ScrollResult {
	step := s.Step
	if step == 0 {
		step = 1
	}
	// Positive scroll distances move towards the start of the content.
	off := s.offset - s.Axis.Convert(e.Scroll).X*step
	if off < 0 {
		off = 0
	}
	if s.Limit > 0 && off > s.Limit {
		off = s.Limit
	}
	if off != s.offset {
		s.offset = off
		s.changed = true
	}
	return pointer.ScrollResult{}
}

// Offset returns the scroll position.
func (s *Scroller) Offset() int {
	return s.offset
}

// Changed reports whether the offset has changed since
// the last call to Changed.
func (s *Scroller) Changed() bool {
	changed := s.changed
	s.changed = false
	return changed
}
