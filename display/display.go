// Copyright 2024 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package display formats a clock.Snapshot as the seven labelled lines
// shown by the clock and defines the interface implemented by the
// terminal and desktop renderers.
package display

import (
	"context"
	"fmt"
	"time"

	"github.com/cosnicolaou/dstclock/clock"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Role identifies a line of the display, renderers use it to select
// colors and fonts.
type Role int

const (
	RoleLocal Role = iota
	RoleUTC
	RoleUnix
	RoleStatus
	RoleStart
	RoleEnd
	RoleCountdown
)

// NumLines is the number of lines in a display.
const NumLines = int(RoleCountdown) + 1

var roleNames = [NumLines]string{"local", "utc", "unix", "status", "start", "end", "countdown"}

func (r Role) String() string {
	if r < 0 || int(r) >= NumLines {
		return fmt.Sprintf("role(%d)", int(r))
	}
	return roleNames[r]
}

// Roles returns all roles in display order.
func Roles() []Role {
	roles := make([]Role, NumLines)
	for i := range roles {
		roles[i] = Role(i)
	}
	return roles
}

// Line is a single line of the display.
type Line struct {
	Role  Role
	Text  string
	Alert bool // only ever set for RoleCountdown
}

// Format controls how a snapshot is turned into lines.
type Format struct {
	// Label names the local zone, eg. CET.
	Label string
	// AlertDays is the threshold below which the countdown is flagged.
	AlertDays int
}

const (
	DefaultLabel     = "CET"
	DefaultAlertDays = 30
)

// DefaultFormat returns the default Format.
func DefaultFormat() Format {
	return Format{Label: DefaultLabel, AlertDays: DefaultAlertDays}
}

var upper = cases.Upper(language.English)

func status(active bool) string {
	if active {
		return upper.String("active")
	}
	return upper.String("not active")
}

// Lines returns the display lines for s.
func Lines(s clock.Snapshot, f Format) []Line {
	label := f.Label
	if label == "" {
		label = DefaultLabel
	}
	return []Line{
		{Role: RoleLocal, Text: fmt.Sprintf("%s Time: %s", label, s.Local.Format(time.DateTime))},
		{Role: RoleUTC, Text: fmt.Sprintf("UTC Time: %s", s.UTC.Format(time.DateTime))},
		{Role: RoleUnix, Text: fmt.Sprintf("Unix Time: %d", s.Unix)},
		{Role: RoleStatus, Text: fmt.Sprintf("Daylight Saving Time Status: %s", status(s.DSTActive))},
		{Role: RoleStart, Text: fmt.Sprintf("DST starts this year on: %s +1 hour: 02:00 -> 03:00", s.Window.Start.Format(time.DateTime))},
		{Role: RoleEnd, Text: fmt.Sprintf("DST ends this year on: %s -1 hour 03:00 -> 02:00", s.Window.End.Format(time.DateTime))},
		{Role: RoleCountdown, Text: fmt.Sprintf("Next DST change in: %v", s.Countdown), Alert: s.Countdown.Alert(f.AlertDays)},
	}
}

// Presenter renders a set of lines.
type Presenter interface {
	Present(ctx context.Context, lines []Line) error
}

// Sink adapts a Presenter to a clock.Sink.
type Sink struct {
	Presenter Presenter
	Format    Format
}

func (s Sink) Update(ctx context.Context, snap clock.Snapshot) error {
	return s.Presenter.Present(ctx, Lines(snap, s.Format))
}
