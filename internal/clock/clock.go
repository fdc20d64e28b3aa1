// SPDX-License-Identifier: Unlicense OR MIT

// Package clock provides the monotonic time used to stamp input frames.
package clock

import "time"

var start = time.Now()

// Now returns a monotonic time in microseconds from an arbitrary base.
func Now() int64 {
	return now()
}

func sinceStart() int64 {
	return time.Since(start).Microseconds()
}
