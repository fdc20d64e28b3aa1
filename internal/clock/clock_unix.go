// SPDX-License-Identifier: Unlicense OR MIT

//go:build linux || darwin || freebsd || netbsd || openbsd

package clock

import "golang.org/x/sys/unix"

func now() int64 {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts); err != nil {
		return sinceStart()
	}
	return ts.Nano() / 1e3
}
