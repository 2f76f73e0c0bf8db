// Copyright 2024 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package clock

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// DefaultInterval is the default refresh interval.
const DefaultInterval = time.Second

// Sink receives a new Snapshot on every refresh.
type Sink interface {
	Update(ctx context.Context, s Snapshot) error
}

// SinkFunc allows a function to be used as a Sink.
type SinkFunc func(ctx context.Context, s Snapshot) error

func (f SinkFunc) Update(ctx context.Context, s Snapshot) error {
	return f(ctx, s)
}

type Option func(o *options)

type options struct {
	timeSource TimeSource
	logger     *slog.Logger
	interval   time.Duration
	ticks      <-chan time.Time
}

// WithTimeSource sets the time source to be used by the refresher and
// is primarily intended for testing purposes.
func WithTimeSource(ts TimeSource) Option {
	return func(o *options) {
		o.timeSource = ts
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithInterval sets the refresh interval, values <= 0 are ignored.
func WithInterval(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.interval = d
		}
	}
}

// WithTicks supplies the channel that triggers each refresh in place of
// an internal ticker. Run returns when the channel is closed.
func WithTicks(ch <-chan time.Time) Option {
	return func(o *options) {
		o.ticks = ch
	}
}

// Refresher periodically computes a Snapshot for a location and hands
// it to a Sink.
type Refresher struct {
	options
	loc  *time.Location
	sink Sink

	consistent bool
}

// NewRefresher creates a Refresher for the specified location.
func NewRefresher(loc *time.Location, sink Sink, opts ...Option) *Refresher {
	r := &Refresher{
		loc:        loc,
		sink:       sink,
		consistent: true,
	}
	for _, opt := range opts {
		opt(&r.options)
	}
	if r.timeSource == nil {
		r.timeSource = SystemTimeSource{}
	}
	if r.logger == nil {
		r.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	if r.interval == 0 {
		r.interval = DefaultInterval
	}
	if r.loc == nil {
		r.loc = time.UTC
	}
	r.logger = r.logger.With("mod", "clock", "tz", r.loc.String())
	return r
}

// Interval returns the refresh interval.
func (r *Refresher) Interval() time.Duration {
	return r.interval
}

// Refresh computes and delivers a single Snapshot.
func (r *Refresher) Refresh(ctx context.Context) (Snapshot, error) {
	s := Compute(r.timeSource.NowIn(r.loc), r.loc)
	if s.Consistent != r.consistent {
		r.logger.Info("dst flag and rule", "consistent", s.Consistent, "local", s.Local, "dst", s.DSTActive, "start", s.Window.Start, "end", s.Window.End)
		r.consistent = s.Consistent
	}
	r.logger.Debug("refresh", "local", s.Local, "next", s.NextChange, "remaining", s.Countdown.Remaining.String())
	return s, r.sink.Update(ctx, s)
}

// Run refreshes immediately and then on every tick until the context is
// canceled, the tick channel is closed or the Sink returns an error.
func (r *Refresher) Run(ctx context.Context) error {
	ticks := r.ticks
	if ticks == nil {
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()
		ticks = ticker.C
	}
	r.logger.Info("starting", "interval", r.interval.String())
	if _, err := r.Refresh(ctx); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			r.logger.Info("stopped", "cause", context.Cause(ctx))
			return ctx.Err()
		case _, ok := <-ticks:
			if !ok {
				return nil
			}
			if _, err := r.Refresh(ctx); err != nil {
				r.logger.Warn("refresh failed", "err", err)
				return err
			}
		}
	}
}
