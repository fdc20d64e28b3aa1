// SPDX-License-Identifier: Unlicense OR MIT

// Package scene loads descriptions of input element forests together
// with scripted input frames, and replays them against an
// input.Context. Scenes are YAML or TOML documents.
package scene

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"hitroute.org/io/pointer"
)

// Scene is a forest of elements and the frames to replay over it.
type Scene struct {
	Name string `yaml:"name" toml:"name"`
	// Size is the width and height of the window.
	Size     []int     `yaml:"size" toml:"size"`
	Elements []Element `yaml:"elements" toml:"elements"`
	Frames   []Frame   `yaml:"frames" toml:"frames"`
}

// Element describes one input element.
type Element struct {
	ID string `yaml:"id" toml:"id"`
	// Bounds is min x, min y, max x, max y in local coordinates.
	Bounds []int `yaml:"bounds" toml:"bounds"`
	// Shape is "rect" (the default) or "ellipse".
	Shape  string `yaml:"shape" toml:"shape"`
	Offset []int  `yaml:"offset" toml:"offset"`
	Layer  int32  `yaml:"layer" toml:"layer"`
	Parent string `yaml:"parent" toml:"parent"`
	// Drag makes the element claim input on press and release it on
	// release.
	Drag bool `yaml:"drag" toml:"drag"`
}

// Frame is the input of one frame.
type Frame struct {
	Cursor []int `yaml:"cursor" toml:"cursor"`
	// Inside reports whether the cursor is in the window. The default
	// is true.
	Inside *bool `yaml:"inside" toml:"inside"`
	// Focus is the window focus. The default is true.
	Focus  *bool  `yaml:"focus" toml:"focus"`
	Click  *Click `yaml:"click" toml:"click"`
	Scroll []int  `yaml:"scroll" toml:"scroll"`
	// Geometry changes are applied before the frame.
	Geometry []Change `yaml:"geometry" toml:"geometry"`
	// Remove and Add unregister and register elements before the frame.
	Remove []string `yaml:"remove" toml:"remove"`
	Add    []string `yaml:"add" toml:"add"`
	// Expect, if set, is the exact trace the frame must produce.
	Expect []string `yaml:"expect" toml:"expect"`
}

// Click is a button change.
type Click struct {
	Button string   `yaml:"button" toml:"button"`
	Action string   `yaml:"action" toml:"action"`
	Mods   []string `yaml:"mods" toml:"mods"`
}

// Change modifies the geometry of an element.
type Change struct {
	ID     string `yaml:"id" toml:"id"`
	Offset []int  `yaml:"offset" toml:"offset"`
	Layer  *int32 `yaml:"layer" toml:"layer"`
	Bounds []int  `yaml:"bounds" toml:"bounds"`
}

// Format is a scene file format.
type Format uint8

const (
	YAML Format = iota
	TOML
)

var buttons = map[string]pointer.Button{
	"left":    pointer.ButtonLeft,
	"right":   pointer.ButtonRight,
	"middle":  pointer.ButtonMiddle,
	"button4": pointer.Button4,
	"button5": pointer.Button5,
	"button6": pointer.Button6,
	"button7": pointer.Button7,
	"button8": pointer.Button8,
}

var actions = map[string]pointer.Action{
	"press":   pointer.Press,
	"release": pointer.Release,
	"repeat":  pointer.Repeat,
}

var modifiers = map[string]pointer.Modifiers{
	"shift":    pointer.ModShift,
	"ctrl":     pointer.ModCtrl,
	"alt":      pointer.ModAlt,
	"super":    pointer.ModSuper,
	"capslock": pointer.ModCapsLock,
	"numlock":  pointer.ModNumLock,
}

// FormatOf returns the format of a scene file from its extension.
func FormatOf(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	default:
		return 0, fmt.Errorf("scene: unknown file extension %q", ext)
	}
}

// Load reads and validates a scene file. A scene without a name is
// named after the file.
func Load(path string) (*Scene, error) {
	f, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	s, err := Parse(data, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return s, nil
}

// Parse decodes and validates a scene. Unknown fields are errors.
func Parse(data []byte, f Format) (*Scene, error) {
	s := new(Scene)
	var err error
	switch f {
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(s)
		if errors.Is(err, io.EOF) {
			err = errors.New("empty document")
		}
	case TOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(s)
	default:
		panic("invalid format")
	}
	if err != nil {
		return nil, fmt.Errorf("scene: parse: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks the scene for malformed values, unknown references
// and parent cycles.
func (s *Scene) Validate() error {
	if err := checkLen("size", s.Size, 2); err != nil {
		return fmt.Errorf("scene: %w", err)
	}
	ids := make(map[string]*Element)
	for i := range s.Elements {
		e := &s.Elements[i]
		if e.ID == "" {
			return fmt.Errorf("scene: element %d has no id", i)
		}
		if _, dup := ids[e.ID]; dup {
			return fmt.Errorf("scene: duplicate element id %q", e.ID)
		}
		ids[e.ID] = e
		if len(e.Bounds) != 4 {
			return fmt.Errorf("scene: element %q: bounds must have 4 values, got %d", e.ID, len(e.Bounds))
		}
		if err := checkLen("offset", e.Offset, 2); err != nil {
			return fmt.Errorf("scene: element %q: %w", e.ID, err)
		}
		if _, err := parseShape(e.Shape); err != nil {
			return fmt.Errorf("scene: element %q: %w", e.ID, err)
		}
	}
	for _, e := range s.Elements {
		depth := 0
		for p := e.Parent; p != ""; p = ids[p].Parent {
			if _, ok := ids[p]; !ok {
				return fmt.Errorf("scene: element %q: unknown parent %q", e.ID, p)
			}
			if depth++; depth > len(s.Elements) {
				return fmt.Errorf("scene: element %q: parent cycle", e.ID)
			}
		}
	}
	for i, f := range s.Frames {
		if err := f.validate(ids); err != nil {
			return fmt.Errorf("scene: frame %d: %w", i, err)
		}
	}
	return nil
}

func (f *Frame) validate(ids map[string]*Element) error {
	if err := checkLen("cursor", f.Cursor, 2); err != nil {
		return err
	}
	if err := checkLen("scroll", f.Scroll, 2); err != nil {
		return err
	}
	if c := f.Click; c != nil {
		if _, err := c.event(); err != nil {
			return err
		}
	}
	for _, c := range f.Geometry {
		if _, ok := ids[c.ID]; !ok {
			return fmt.Errorf("geometry: unknown element %q", c.ID)
		}
		if err := checkLen("geometry offset", c.Offset, 2); err != nil {
			return err
		}
		if len(c.Bounds) != 0 && len(c.Bounds) != 4 {
			return fmt.Errorf("geometry bounds must have 4 values, got %d", len(c.Bounds))
		}
	}
	for _, id := range append(append([]string(nil), f.Remove...), f.Add...) {
		if _, ok := ids[id]; !ok {
			return fmt.Errorf("unknown element %q", id)
		}
	}
	return nil
}

func (c *Click) event() (pointer.ClickEvent, error) {
	var e pointer.ClickEvent
	b, ok := buttons[strings.ToLower(c.Button)]
	if !ok {
		return e, fmt.Errorf("unknown button %q", c.Button)
	}
	a, ok := actions[strings.ToLower(c.Action)]
	if !ok {
		return e, fmt.Errorf("unknown action %q", c.Action)
	}
	var mods pointer.Modifiers
	for _, m := range c.Mods {
		mod, ok := modifiers[strings.ToLower(m)]
		if !ok {
			return e, fmt.Errorf("unknown modifier %q", m)
		}
		mods |= mod
	}
	return pointer.ClickEvent{Button: b, Action: a, Modifiers: mods}, nil
}

// checkLen checks that an optional array has n values.
func checkLen(name string, v []int, n int) error {
	if len(v) != 0 && len(v) != n {
		return fmt.Errorf("%s must have %d values, got %d", name, n, len(v))
	}
	return nil
}

func point(v []int) image.Point {
	if len(v) == 0 {
		return image.Point{}
	}
	return image.Pt(v[0], v[1])
}

func rect(v []int) image.Rectangle {
	return image.Rect(v[0], v[1], v[2], v[3])
}
