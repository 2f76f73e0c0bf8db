// Copyright 2024 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package clock computes the values displayed by the DST clock and
// drives their periodic refresh.
package clock

import (
	"fmt"
	"time"

	"github.com/cosnicolaou/dstclock/dst"
)

// Countdown is the non-negative time remaining until a DST transition
// broken down into whole days, the whole hours remaining in the last
// day and the whole minutes remaining in the last hour.
type Countdown struct {
	Remaining time.Duration
	Days      int
	Hours     int
	Minutes   int
}

// NewCountdown returns the Countdown for d, negative durations are
// treated as zero.
func NewCountdown(d time.Duration) Countdown {
	if d < 0 {
		d = 0
	}
	day := 24 * time.Hour
	return Countdown{
		Remaining: d,
		Days:      int(d / day),
		Hours:     int((d % day) / time.Hour),
		Minutes:   int((d % time.Hour) / time.Minute),
	}
}

// Alert returns true if fewer than days whole days remain.
func (c Countdown) Alert(days int) bool {
	return c.Days < days
}

func (c Countdown) String() string {
	return fmt.Sprintf("%d days, %d hours, %d minutes", c.Days, c.Hours, c.Minutes)
}

// Snapshot holds everything displayed for a single instant.
type Snapshot struct {
	Local      time.Time
	UTC        time.Time
	Unix       int64
	DSTActive  bool // as reported by the timezone database
	Window     dst.Window
	NextChange time.Time
	Countdown  Countdown
	// Consistent is false when the timezone database's DST flag
	// disagrees with the window computed by the EU rule.
	Consistent bool
}

// Compute returns the Snapshot for now in loc. The DST flag is taken
// from the timezone database whereas the window, next transition and
// countdown are derived from the EU rule.
func Compute(now time.Time, loc *time.Location) Snapshot {
	if loc == nil {
		loc = time.UTC
	}
	local := now.In(loc)
	next, window := dst.Next(local)
	active := local.IsDST()
	return Snapshot{
		Local:      local,
		UTC:        now.UTC(),
		Unix:       now.Unix(),
		DSTActive:  active,
		Window:     window,
		NextChange: next,
		Countdown:  NewCountdown(next.Sub(local)),
		Consistent: active == window.Contains(local),
	}
}
