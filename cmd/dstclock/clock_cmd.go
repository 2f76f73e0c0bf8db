// Copyright 2024 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/sync/errgroup"
	"fyne.io/fyne/v2/app"
	"github.com/cosnicolaou/dstclock/clock"
	"github.com/cosnicolaou/dstclock/config"
	"github.com/cosnicolaou/dstclock/display"
	"github.com/cosnicolaou/dstclock/display/desktop"
	"github.com/cosnicolaou/dstclock/display/terminal"
	"github.com/cosnicolaou/dstclock/internal/logging"
)

type WindowFlags struct {
	ConfigFileFlags
	LogFlags
}

type WatchFlags struct {
	ConfigFileFlags
	LogFlags
	NoColor bool `subcmd:"no-color,false,disable ANSI colors"`
}

type NowFlags struct {
	ConfigFileFlags
	At      string `subcmd:"at,,time to display in RFC3339 format instead of now"`
	JSON    bool   `subcmd:"json,false,print the clock in JSON format"`
	NoColor bool   `subcmd:"no-color,false,disable ANSI colors"`
}

type Clock struct {
	out io.Writer
}

func desktopStyle(cfg config.Config) (desktop.Style, error) {
	palette, err := cfg.Colors.Parse()
	if err != nil {
		return desktop.Style{}, err
	}
	style := desktop.DefaultStyle()
	style.Width = cfg.Window.Width
	style.Height = cfg.Window.Height
	style.Background = palette.Background
	style.Colors = palette.Lines
	style.Alert = palette.Alert
	style.Normal = palette.Normal
	return style, nil
}

func (c *Clock) Window(ctx context.Context, flags any, _ []string) error {
	fv := flags.(*WindowFlags)
	ctx, cleanup, err := setupLogging(ctx, fv.LogFile, os.Stderr)
	if err != nil {
		return err
	}
	defer cleanup()
	cfg, loc, err := loadConfig(ctx, &fv.ConfigFileFlags)
	if err != nil {
		return err
	}
	style, err := desktopStyle(cfg)
	if err != nil {
		return err
	}
	ctxlog.Info(ctx, "starting window", "tz", loc.String(), "refresh", cfg.Refresh.String())

	win := desktop.New(app.New(), style)
	refresher := clock.NewRefresher(loc,
		display.Sink{Presenter: win, Format: cfg.Format()},
		clock.WithInterval(cfg.Refresh),
		clock.WithLogger(ctxlog.Logger(ctx)))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	var g errgroup.T
	g.Go(func() error {
		return ignoreStopped(refresher.Run(ctx))
	})
	// The window's event loop must run on the main goroutine, it returns
	// when the window is closed.
	win.Run(ctx)
	cancel()
	return g.Wait()
}

func (c *Clock) Watch(ctx context.Context, flags any, _ []string) error {
	fv := flags.(*WatchFlags)
	// The terminal owns stdout, so logs are discarded unless a log file
	// is specified.
	ctx, cleanup, err := setupLogging(ctx, fv.LogFile, io.Discard)
	if err != nil {
		return err
	}
	defer cleanup()
	cfg, loc, err := loadConfig(ctx, &fv.ConfigFileFlags)
	if err != nil {
		return err
	}
	term := terminal.New(c.out,
		terminal.WithRedraw(true),
		terminal.WithColors(!fv.NoColor))
	refresher := clock.NewRefresher(loc,
		display.Sink{Presenter: term, Format: cfg.Format()},
		clock.WithInterval(cfg.Refresh),
		clock.WithLogger(ctxlog.Logger(ctx)))
	return ignoreStopped(refresher.Run(ctx))
}

func parseAt(at string) (clock.TimeSource, error) {
	if len(at) == 0 {
		return clock.SystemTimeSource{}, nil
	}
	t, err := time.Parse(time.RFC3339, at)
	if err != nil {
		return nil, fmt.Errorf("invalid time: %q: %w", at, err)
	}
	return clock.FixedTimeSource(t), nil
}

func (c *Clock) Now(ctx context.Context, flags any, _ []string) error {
	fv := flags.(*NowFlags)
	ctx = ctxlog.NewJSONLogger(ctx, os.Stderr, nil)
	cfg, loc, err := loadConfig(ctx, &fv.ConfigFileFlags)
	if err != nil {
		return err
	}
	ts, err := parseAt(fv.At)
	if err != nil {
		return err
	}
	var sink clock.Sink
	if fv.JSON {
		enc := json.NewEncoder(c.out)
		enc.SetIndent("", "  ")
		sink = clock.SinkFunc(func(_ context.Context, s clock.Snapshot) error {
			return enc.Encode(logging.NewRecord(s))
		})
	} else {
		term := terminal.New(c.out, terminal.WithColors(!fv.NoColor))
		sink = display.Sink{Presenter: term, Format: cfg.Format()}
	}
	refresher := clock.NewRefresher(loc, sink,
		clock.WithTimeSource(ts),
		clock.WithLogger(ctxlog.Logger(ctx)))
	_, err = refresher.Refresh(ctx)
	return err
}
