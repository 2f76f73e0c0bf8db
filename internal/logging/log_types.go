// Copyright 2025 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package logging provides JSON encodings for clock snapshots that are
// used both for machine readable output and in log entries.
package logging

import (
	"strconv"
	"strings"
	"time"

	"cloudeng.io/datetime"
	"github.com/cosnicolaou/dstclock/clock"
)

const (
	TimeWithTZ = "2006-01-02T15:04:05 MST"
)

type Time time.Time

func (lt Time) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(time.Time(lt).Format(TimeWithTZ))), nil
}

func (lt *Time) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return err
	}
	t, err := time.Parse(TimeWithTZ, s)
	if err != nil {
		return err
	}
	*lt = Time(t)
	return nil
}

type Duration time.Duration

func (ld Duration) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(time.Duration(ld).String())), nil
}

func (ld *Duration) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return err
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*ld = Duration(d)
	return nil
}

type Date datetime.CalendarDate

func (ld Date) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(datetime.CalendarDate(ld).String())), nil
}

func (ld *Date) UnmarshalJSON(data []byte) error {
	return (*datetime.CalendarDate)(ld).Parse(strings.Trim(string(data), `"`))
}

// Countdown is the JSON form of clock.Countdown.
type Countdown struct {
	Remaining Duration `json:"remaining"`
	Days      int      `json:"days"`
	Hours     int      `json:"hours"`
	Minutes   int      `json:"minutes"`
}

// Record is the JSON form of clock.Snapshot.
type Record struct {
	Local      Time      `json:"local"`
	UTC        Time      `json:"utc"`
	Unix       int64     `json:"unix"`
	DSTActive  bool      `json:"dst_active"`
	DSTStart   Time      `json:"dst_start"`
	DSTEnd     Time      `json:"dst_end"`
	StartDate  Date      `json:"dst_start_date"`
	EndDate    Date      `json:"dst_end_date"`
	NextChange Time      `json:"next_change"`
	Countdown  Countdown `json:"countdown"`
	Consistent bool      `json:"consistent"`
}

// NewRecord creates a Record for s.
func NewRecord(s clock.Snapshot) Record {
	return Record{
		Local:      Time(s.Local),
		UTC:        Time(s.UTC),
		Unix:       s.Unix,
		DSTActive:  s.DSTActive,
		DSTStart:   Time(s.Window.Start),
		DSTEnd:     Time(s.Window.End),
		StartDate:  Date(datetime.CalendarDateFromTime(s.Window.Start)),
		EndDate:    Date(datetime.CalendarDateFromTime(s.Window.End)),
		NextChange: Time(s.NextChange),
		Countdown: Countdown{
			Remaining: Duration(s.Countdown.Remaining),
			Days:      s.Countdown.Days,
			Hours:     s.Countdown.Hours,
			Minutes:   s.Countdown.Minutes,
		},
		Consistent: s.Consistent,
	}
}
