// Copyright 2024 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"cloudeng.io/logging/ctxlog"
	"github.com/cosnicolaou/dstclock/config"
	"github.com/cosnicolaou/dstclock/display/desktop"
)

type ConfigFileFlags struct {
	ConfigFile string        `subcmd:"config,$HOME/.dstclock.yaml,path to the configuration file; defaults are used if it does not exist"`
	TZ         string        `subcmd:"tz,,timezone to display; overrides the configuration file"`
	Refresh    time.Duration `subcmd:"refresh,0s,refresh interval; overrides the configuration file"`
}

type LogFlags struct {
	LogFile string `subcmd:"log-file,,log file"`
}

func loadConfig(ctx context.Context, fv *ConfigFileFlags) (config.Config, *time.Location, error) {
	cfg, err := config.ParseConfigFile(ctx, fv.ConfigFile)
	if err != nil {
		return config.Config{}, nil, err
	}
	if fv.TZ != "" {
		cfg.Timezone = fv.TZ
	}
	if fv.Refresh > 0 {
		cfg.Refresh = fv.Refresh
	}
	loc, err := cfg.Location()
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, loc, nil
}

func newLogfile(filename string) (*os.File, error) {
	f, err := os.OpenFile(filename, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %q: %w", filename, err)
	}
	return f, nil
}

// setupLogging returns a context carrying a JSON logger that writes to
// logfile if specified and to def otherwise.
func setupLogging(ctx context.Context, logfile string, def io.Writer) (context.Context, func(), error) {
	if len(logfile) == 0 {
		return ctxlog.NewJSONLogger(ctx, def, nil), func() {}, nil
	}
	f, err := newLogfile(logfile)
	if err != nil {
		return nil, func() {}, err
	}
	return ctxlog.NewJSONLogger(ctx, f, nil), func() { f.Close() }, nil
}

// ignoreStopped treats the clock being stopped, via the context or by
// closing its window, as a normal exit.
func ignoreStopped(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, desktop.ErrClosed) {
		return nil
	}
	return err
}
