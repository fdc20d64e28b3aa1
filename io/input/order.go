// SPDX-License-Identifier: Unlicense OR MIT

package input

import (
	"golang.org/x/exp/slices"
)

// Above reports whether a is on top of b.
//
// Elements with the same parent, or two roots, are ordered by layer.
// A descendant is on top of all its ancestors regardless of layers.
// Otherwise the elements are ordered by their ancestors that are
// children of their nearest common ancestor, or by their roots if they
// are in different trees. Ties are broken by continuing down both
// ancestor chains, so that Above is a strict weak order.
func Above(a, b Element) bool {
	return comparePaths(appendPath(nil, a), appendPath(nil, b)) > 0
}

// Sort stably sorts elems from top to bottom according to Above.
func Sort(elems []Element) {
	var s sorter
	s.sort(elems)
}

// sorter caches the layer paths computed for one sort.
type sorter struct {
	entries []sortEntry
	layers  []int32
}

type sortEntry struct {
	elem       Element
	start, end int
}

func (s *sorter) sort(elems []Element) {
	s.entries = s.entries[:0]
	s.layers = s.layers[:0]
	for _, e := range elems {
		start := len(s.layers)
		s.layers = appendPath(s.layers, e)
		s.entries = append(s.entries, sortEntry{elem: e, start: start, end: len(s.layers)})
	}
	slices.SortStableFunc(s.entries, func(a, b sortEntry) int {
		// Descending.
		return comparePaths(s.path(b), s.path(a))
	})
	for i, en := range s.entries {
		elems[i] = en.elem
	}
}

func (s *sorter) path(en sortEntry) []int32 {
	return s.layers[en.start:en.end]
}

// appendPath appends the layers of the ancestor chain of e to buf,
// root first and e last.
func appendPath(buf []int32, e Element) []int32 {
	start := len(buf)
	for ; e != nil; e = parentOf(e) {
		if len(buf)-start >= maxDepth {
			panic("input: element parent chain is cyclic")
		}
		buf = append(buf, layerOf(e))
	}
	p := buf[start:]
	for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
		p[i], p[j] = p[j], p[i]
	}
	return buf
}

// comparePaths compares two layer paths lexicographically. A path that
// is a strict prefix of the other belongs to an ancestor and compares
// lower.
func comparePaths(a, b []int32) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		switch {
		case a[i] > b[i]:
			return 1
		case a[i] < b[i]:
			return -1
		}
	}
	switch {
	case len(a) > len(b):
		return 1
	case len(a) < len(b):
		return -1
	}
	return 0
}
