// Copyright 2024 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package dst computes daylight saving time windows for a hardcoded
// regional rule and compares them against the transitions recorded in
// the IANA timezone database.
//
// The rule implemented here is the European Union one: summer time
// starts on the last Sunday of March at 01:00 UTC and ends on the last
// Sunday of October at 01:00 UTC. For Central European Time this means
// the local clock jumps from 02:00 to 03:00 in March and falls back from
// 03:00 to 02:00 in October. The rule is not a general DST engine, it
// does not know about other regions nor about historical or future
// changes to the law; the zone database remains the authority on
// offsets and on whether DST is in effect.
package dst

import (
	"fmt"
	"time"

	"cloudeng.io/datetime"
)

// Rule describes a DST regime whose transitions occur on the last
// occurrence of a weekday in a start and end month, at a fixed UTC
// time of day.
type Rule struct {
	StartMonth time.Month
	EndMonth   time.Month
	Weekday    time.Weekday
	At         datetime.TimeOfDay // UTC
}

// EU is the rule used by the member states of the European Union.
var EU = Rule{
	StartMonth: time.March,
	EndMonth:   time.October,
	Weekday:    time.Sunday,
	At:         datetime.NewTimeOfDay(1, 0, 0),
}

// Window is the DST period for a single year. Start and End are
// expressed in the location the window was computed for.
type Window struct {
	Year  int
	Start time.Time
	End   time.Time
}

// Contains returns true if t lies within the window, ie. at or after
// Start and strictly before End.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// Duration returns the length of the window.
func (w Window) Duration() time.Duration {
	return w.End.Sub(w.Start)
}

func (w Window) String() string {
	return fmt.Sprintf("%v: %v - %v", w.Year, w.Start.Format(time.RFC3339), w.End.Format(time.RFC3339))
}

// LastWeekday returns the date of the last occurrence of weekday in the
// specified month. It starts from the last day of the month and walks
// backwards one day at a time, which takes at most six steps.
func LastWeekday(year int, month time.Month, weekday time.Weekday) datetime.CalendarDate {
	// Day 0 of the following month is the last day of this one.
	day := time.Date(year, month+1, 0, 12, 0, 0, 0, time.UTC)
	for day.Weekday() != weekday {
		day = day.AddDate(0, 0, -1)
	}
	return datetime.CalendarDateFromTime(day)
}

func (r Rule) transition(year int, month time.Month, loc *time.Location) time.Time {
	cd := LastWeekday(year, month, r.Weekday)
	utc := time.Date(cd.Year(), time.Month(cd.Month()), cd.Day(),
		r.At.Hour(), r.At.Minute(), r.At.Second(), 0, time.UTC)
	return utc.In(loc)
}

// Window returns the DST window for year with both boundaries converted
// to loc. A nil loc is treated as UTC.
func (r Rule) Window(year int, loc *time.Location) Window {
	if loc == nil {
		loc = time.UTC
	}
	return Window{
		Year:  year,
		Start: r.transition(year, r.StartMonth, loc),
		End:   r.transition(year, r.EndMonth, loc),
	}
}

// Next returns the next DST boundary following now together with the
// window for the year of now. If now precedes the start of this year's
// window the start is returned, if it lies within the window the end is
// returned, otherwise the start of the following year's window is
// returned. The year is taken from now in its own location.
func (r Rule) Next(now time.Time) (time.Time, Window) {
	loc := now.Location()
	w := r.Window(now.Year(), loc)
	switch {
	case now.Before(w.Start):
		return w.Start, w
	case now.Before(w.End):
		return w.End, w
	}
	return r.Window(now.Year()+1, loc).Start, w
}

// WindowFor returns the EU DST window for year in loc.
func WindowFor(year int, loc *time.Location) Window {
	return EU.Window(year, loc)
}

// Next returns the next EU DST boundary following now.
func Next(now time.Time) (time.Time, Window) {
	return EU.Next(now)
}
