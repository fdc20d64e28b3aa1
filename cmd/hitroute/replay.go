// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"

	"hitroute.org/internal/scene"
)

func replay(args []string, out io.Writer) error {
	fs := newFlagSet("replay")
	verbose := fs.Bool("v", false, "log every frame as it is replayed")
	if err := fs.Parse(args); err != nil {
		return err
	}
	files := fs.Args()
	if len(files) == 0 {
		return errors.New("replay: specify at least one scene")
	}
	var logger *log.Logger
	if *verbose {
		logger = log.New(os.Stderr, "", log.Lmicroseconds)
	}

	results := make([]scene.Result, len(files))
	mismatches := make([]error, len(files))
	var g errgroup.Group
	for i, f := range files {
		i, f := i, f
		g.Go(func() error {
			s, err := scene.Load(f)
			if err != nil {
				return err
			}
			res, err := scene.Replay(s, logger)
			results[i] = res
			if err != nil && !errors.Is(err, scene.ErrMismatch) {
				return err
			}
			mismatches[i] = err
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	failed := 0
	for i, res := range results {
		fmt.Fprintf(out, "%s\n", res.Name)
		for j, trace := range res.Frames {
			fmt.Fprintf(out, "\t%d: %s\n", j, strings.Join(trace, "; "))
		}
		if err := mismatches[i]; err != nil {
			fmt.Fprintf(out, "\tFAIL: %v\n", err)
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d scenes failed", failed, len(files))
	}
	return nil
}
