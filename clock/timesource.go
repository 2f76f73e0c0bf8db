// Copyright 2024 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package clock

import "time"

// TimeSource is an interface that provides the current time in a specific
// location and is intended for testing purposes. It is called once per
// refresh.
type TimeSource interface {
	NowIn(in *time.Location) time.Time
}

type SystemTimeSource struct{}

func (SystemTimeSource) NowIn(loc *time.Location) time.Time {
	return time.Now().In(loc)
}

// FixedTimeSource always returns the same instant. It is used to render
// a clock for a time other than now.
type FixedTimeSource time.Time

func (f FixedTimeSource) NowIn(loc *time.Location) time.Time {
	return time.Time(f).In(loc)
}
