// Copyright 2024 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package clock_test

import (
	"testing"
	"time"

	"github.com/cosnicolaou/dstclock/clock"
	"github.com/cosnicolaou/dstclock/dst"
)

func berlin(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Fatalf("failed to load timezone: %v", err)
	}
	return loc
}

func TestCountdown(t *testing.T) {
	for i, tc := range []struct {
		d                    time.Duration
		days, hours, minutes int
	}{
		{0, 0, 0, 0},
		{-time.Hour, 0, 0, 0},
		{59 * time.Second, 0, 0, 0},
		{time.Minute, 0, 0, 1},
		{25*time.Hour + 61*time.Minute, 1, 2, 1},
		{90*24*time.Hour + 2*time.Hour + 59*time.Minute + 59*time.Second, 90, 2, 59},
	} {
		c := clock.NewCountdown(tc.d)
		if got, want := c.Days, tc.days; got != want {
			t.Errorf("%v: days: got %v, want %v", i, got, want)
		}
		if got, want := c.Hours, tc.hours; got != want {
			t.Errorf("%v: hours: got %v, want %v", i, got, want)
		}
		if got, want := c.Minutes, tc.minutes; got != want {
			t.Errorf("%v: minutes: got %v, want %v", i, got, want)
		}
		if c.Remaining < 0 {
			t.Errorf("%v: negative countdown: %v", i, c.Remaining)
		}
	}
	c := clock.NewCountdown(29*24*time.Hour + 23*time.Hour)
	if !c.Alert(30) {
		t.Errorf("expected alert for %v", c)
	}
	c = clock.NewCountdown(30 * 24 * time.Hour)
	if c.Alert(30) {
		t.Errorf("unexpected alert for %v", c)
	}
	if got, want := c.String(), "30 days, 0 hours, 0 minutes"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestCompute(t *testing.T) {
	loc := berlin(t)
	w24 := dst.WindowFor(2024, loc)
	w25 := dst.WindowFor(2025, loc)

	for i, tc := range []struct {
		now     time.Time
		active  bool
		next    time.Time
		days    int
		hours   int
		minutes int
	}{
		// Midnight CET is 23:00 UTC the day before, the start is at
		// 01:00 UTC on March 31st.
		{time.Date(2024, 1, 1, 0, 0, 0, 0, loc), false, w24.Start, 90, 2, 0},
		{time.Date(2024, 7, 1, 12, 0, 0, 0, loc), true, w24.End, 117, 15, 0},
		{time.Date(2024, 11, 1, 0, 0, 0, 0, loc), false, w25.Start, 149, 2, 0},
		{w24.Start.Add(-time.Minute), false, w24.Start, 0, 0, 1},
	} {
		s := clock.Compute(tc.now, loc)
		if got, want := s.DSTActive, tc.active; got != want {
			t.Errorf("%v: active: got %v, want %v", i, got, want)
		}
		if !s.NextChange.Equal(tc.next) {
			t.Errorf("%v: next: got %v, want %v", i, s.NextChange, tc.next)
		}
		c := s.Countdown
		if c.Days != tc.days || c.Hours != tc.hours || c.Minutes != tc.minutes {
			t.Errorf("%v: countdown: got %v, want %v days, %v hours, %v minutes", i, c, tc.days, tc.hours, tc.minutes)
		}
		if !s.Consistent {
			t.Errorf("%v: expected the zone database and rule to agree", i)
		}
		if got, want := s.Unix, tc.now.Unix(); got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
		if got, want := s.UTC.Location(), time.UTC; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
		if got, want := s.Local.Location(), loc; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
		if got, want := s.Window.Year, tc.now.Year(); got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
	}
}

func TestCountdownDecreases(t *testing.T) {
	loc := berlin(t)
	w24 := dst.WindowFor(2024, loc)
	w25 := dst.WindowFor(2025, loc)
	now := w24.End.Add(-10 * time.Second)
	prev := clock.Compute(now, loc)
	for range 9 {
		now = now.Add(time.Second)
		s := clock.Compute(now, loc)
		if s.Countdown.Remaining >= prev.Countdown.Remaining {
			t.Errorf("%v: countdown did not decrease: %v >= %v", now, s.Countdown.Remaining, prev.Countdown.Remaining)
		}
		if s.Countdown.Remaining <= 0 {
			t.Errorf("%v: countdown not positive: %v", now, s.Countdown.Remaining)
		}
		prev = s
	}
	// Crossing the boundary switches to next year's start.
	s := clock.Compute(w24.End, loc)
	if !s.NextChange.Equal(w25.Start) {
		t.Errorf("got %v, want %v", s.NextChange, w25.Start)
	}
	if got, want := s.Countdown.Remaining, w25.Start.Sub(w24.End); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestComputeNilLocation(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	s := clock.Compute(now, nil)
	if s.DSTActive {
		t.Errorf("UTC never observes DST")
	}
	if s.Consistent {
		t.Errorf("UTC is not described by the EU rule")
	}
}
