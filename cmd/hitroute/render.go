// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"hitroute.org/internal/overlay"
	"hitroute.org/internal/scene"
)

func render(args []string) error {
	fs := newFlagSet("render")
	frames := fs.Int("frame", -1, "number of frames to replay before rendering, -1 for all")
	scale := fs.Int("scale", 1, "integer scale of the output image")
	labels := fs.Bool("labels", true, "draw element ids")
	dest := fs.String("o", "", "output file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("render: specify one scene")
	}
	if *scale < 1 {
		return fmt.Errorf("render: invalid -scale %d", *scale)
	}
	path := fs.Arg(0)
	s, err := scene.Load(path)
	if err != nil {
		return err
	}
	p := scene.NewPlayer(s)
	if _, err := p.Run(*frames); err != nil {
		if !errors.Is(err, scene.ErrMismatch) {
			return err
		}
		// The image shows the state after the mismatching frame.
		fmt.Fprintf(os.Stderr, "hitroute: %v\n", err)
	}
	opts := overlay.Options{Scale: *scale}
	if *labels {
		opts.Label = p.Label
	}
	img := overlay.Render(p.Context(), p.Size(), opts)

	out := *dest
	if out == "" {
		out = strings.TrimSuffix(path, filepath.Ext(path)) + ".png"
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return err
	}
	return os.WriteFile(out, buf.Bytes(), 0o666)
}
