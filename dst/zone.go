// Copyright 2024 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dst

import (
	"time"
)

// Transition is a change in UTC offset recorded by the timezone database.
type Transition struct {
	At         time.Time // first instant with the new offset, in the zone
	FromOffset int       // seconds east of UTC
	ToOffset   int
	ToDST      bool
}

// Shift returns the change in offset, positive when clocks move forward.
func (t Transition) Shift() time.Duration {
	return time.Duration(t.ToOffset-t.FromOffset) * time.Second
}

func offset(t time.Time) int {
	_, off := t.Zone()
	return off
}

// ZoneTransitions returns the offset changes that the timezone database
// records for loc during year. The year is scanned a day at a time and
// each change is then located to the second by bisection.
func ZoneTransitions(loc *time.Location, year int) []Transition {
	if loc == nil || loc == time.UTC {
		return nil
	}
	var transitions []Transition
	prev := time.Date(year, 1, 1, 0, 0, 0, 0, loc)
	end := time.Date(year+1, 1, 1, 0, 0, 0, 0, loc)
	for prev.Before(end) {
		next := prev.Add(24 * time.Hour)
		if next.After(end) {
			next = end
		}
		if offset(prev) != offset(next) {
			at := bisect(prev, next)
			transitions = append(transitions, Transition{
				At:         at,
				FromOffset: offset(at.Add(-time.Second)),
				ToOffset:   offset(at),
				ToDST:      at.IsDST(),
			})
		}
		prev = next
	}
	return transitions
}

// bisect returns the first second in (lo, hi] whose offset differs from
// that of lo.
func bisect(lo, hi time.Time) time.Time {
	want := offset(lo)
	for hi.Sub(lo) > time.Second {
		mid := lo.Add(hi.Sub(lo) / 2).Truncate(time.Second)
		if !mid.After(lo) {
			mid = lo.Add(time.Second)
		}
		if offset(mid) == want {
			lo = mid
		} else {
			hi = mid
		}
	}
	return hi
}

// Agrees returns true if the timezone database records exactly one
// transition into DST at w.Start and one out of DST at w.End for the
// window's year.
func (w Window) Agrees(loc *time.Location) bool {
	trs := ZoneTransitions(loc, w.Year)
	if len(trs) != 2 {
		return false
	}
	return trs[0].ToDST && trs[0].At.Equal(w.Start) &&
		!trs[1].ToDST && trs[1].At.Equal(w.End)
}
