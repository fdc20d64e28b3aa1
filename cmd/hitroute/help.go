// SPDX-License-Identifier: Unlicense OR MIT

package main

const mainUsage = `The hitroute command replays and renders input routing scenes.

Usage:

	hitroute <command> [flags] [arguments]

A scene is a YAML (.yaml, .yml) or TOML (.toml) file describing a forest of
input elements and the input frames to replay over it. Every frame lists the
cursor position and optionally a button change, a scroll, geometry changes,
element removals and additions, and the trace it is expected to produce.

The commands are:

	replay [-v] scene...

Replay the scenes concurrently and print the trace of every frame, in
argument order. The -v flag also logs every frame to standard error as it
is replayed. replay fails if a scene cannot be loaded or a frame does not
produce its expected trace.

	render [-frame n] [-scale s] [-labels=false] [-o out.png] scene

Replay the first n frames of the scene, all by default, and write an image
of the element hit areas. The topmost element under each pixel determines
its color. The entered element is outlined, the element that has claimed
input is red and the cursor is a yellow crosshair. The -o flag sets the
output file, by default the scene file name with a .png extension.

	help

Print this message.
`
