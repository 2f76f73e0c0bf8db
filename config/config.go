// Copyright 2024 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package config provides the YAML configuration for the DST clock.
package config

import (
	"context"
	"fmt"
	"image/color"
	"os"
	"time"

	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/errors"
	"github.com/cosnicolaou/dstclock/clock"
	"github.com/cosnicolaou/dstclock/display"
	"gopkg.in/yaml.v3"
)

const (
	DefaultTimezone = "Europe/Berlin"
	DefaultWidth    = 650
	DefaultHeight   = 350
)

type Window struct {
	Width  float32 `yaml:"width" cmd:"width of the desktop window"`
	Height float32 `yaml:"height" cmd:"height of the desktop window"`
}

type Colors struct {
	Local      string `yaml:"local" cmd:"color of the local time"`
	UTC        string `yaml:"utc" cmd:"color of the UTC time"`
	Unix       string `yaml:"unix" cmd:"color of the unix time"`
	Status     string `yaml:"status" cmd:"color of the DST status"`
	Start      string `yaml:"start" cmd:"color of the DST start date"`
	End        string `yaml:"end" cmd:"color of the DST end date"`
	Countdown  string `yaml:"countdown" cmd:"initial color of the countdown"`
	Alert      string `yaml:"alert" cmd:"color of the countdown when a transition is near"`
	Normal     string `yaml:"normal" cmd:"color of the countdown otherwise"`
	Background string `yaml:"background" cmd:"window background color"`
}

// Config is the clock's configuration.
type Config struct {
	Timezone  string        `yaml:"timezone" cmd:"IANA timezone displayed by the clock"`
	Label     string        `yaml:"label" cmd:"label used for the local time"`
	Refresh   time.Duration `yaml:"refresh" cmd:"interval between refreshes"`
	AlertDays int           `yaml:"alert_days" cmd:"highlight the countdown when fewer than this many days remain"`
	Window    Window        `yaml:"window" cmd:"desktop window size"`
	Colors    Colors        `yaml:"colors" cmd:"colors used by the desktop window"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Timezone:  DefaultTimezone,
		Label:     display.DefaultLabel,
		Refresh:   clock.DefaultInterval,
		AlertDays: display.DefaultAlertDays,
		Window:    Window{Width: DefaultWidth, Height: DefaultHeight},
		Colors: Colors{
			Local:      "#00bfff",
			UTC:        "#00ff7f",
			Unix:       "#ff4500",
			Status:     "#9370db",
			Start:      "#98fb98",
			End:        "#ffa07a",
			Countdown:  "#ff6347",
			Alert:      "#ff0000",
			Normal:     "#a52a2a",
			Background: "#000000",
		},
	}
}

func setIfEmpty(v *string, def string) {
	if *v == "" {
		*v = def
	}
}

// Normalize fills in missing values from the defaults so that partially
// specified configurations behave as expected.
func (c *Config) Normalize() {
	def := Default()
	setIfEmpty(&c.Timezone, def.Timezone)
	setIfEmpty(&c.Label, def.Label)
	if c.Refresh == 0 {
		c.Refresh = def.Refresh
	}
	if c.AlertDays == 0 {
		c.AlertDays = def.AlertDays
	}
	if c.Window.Width == 0 {
		c.Window.Width = def.Window.Width
	}
	if c.Window.Height == 0 {
		c.Window.Height = def.Window.Height
	}
	dc, cc := def.Colors, &c.Colors
	setIfEmpty(&cc.Local, dc.Local)
	setIfEmpty(&cc.UTC, dc.UTC)
	setIfEmpty(&cc.Unix, dc.Unix)
	setIfEmpty(&cc.Status, dc.Status)
	setIfEmpty(&cc.Start, dc.Start)
	setIfEmpty(&cc.End, dc.End)
	setIfEmpty(&cc.Countdown, dc.Countdown)
	setIfEmpty(&cc.Alert, dc.Alert)
	setIfEmpty(&cc.Normal, dc.Normal)
	setIfEmpty(&cc.Background, dc.Background)
}

// Validate returns all of the problems found with the configuration.
func (c Config) Validate() error {
	var errs errors.M
	if _, err := c.Location(); err != nil {
		errs.Append(err)
	}
	if c.Refresh < 0 {
		errs.Append(fmt.Errorf("refresh interval must be positive: %v", c.Refresh))
	}
	if c.AlertDays < 0 {
		errs.Append(fmt.Errorf("alert_days must not be negative: %v", c.AlertDays))
	}
	if c.Window.Width < 0 || c.Window.Height < 0 {
		errs.Append(fmt.Errorf("invalid window size: %vx%v", c.Window.Width, c.Window.Height))
	}
	if _, err := c.Colors.Parse(); err != nil {
		errs.Append(err)
	}
	return errs.Err()
}

// Location loads the configured timezone.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Format returns the display format for the configuration.
func (c Config) Format() display.Format {
	return display.Format{Label: c.Label, AlertDays: c.AlertDays}
}

// Palette holds parsed colors.
type Palette struct {
	Lines      map[display.Role]color.Color
	Alert      color.Color
	Normal     color.Color
	Background color.Color
}

// Parse parses all of the configured colors.
func (c Colors) Parse() (Palette, error) {
	var errs errors.M
	parse := func(name, v string) color.Color {
		col, err := display.ParseColor(v)
		if err != nil {
			errs.Append(fmt.Errorf("colors.%v: %w", name, err))
		}
		return col
	}
	p := Palette{
		Lines: map[display.Role]color.Color{
			display.RoleLocal:     parse("local", c.Local),
			display.RoleUTC:       parse("utc", c.UTC),
			display.RoleUnix:      parse("unix", c.Unix),
			display.RoleStatus:    parse("status", c.Status),
			display.RoleStart:     parse("start", c.Start),
			display.RoleEnd:       parse("end", c.End),
			display.RoleCountdown: parse("countdown", c.Countdown),
		},
		Alert:      parse("alert", c.Alert),
		Normal:     parse("normal", c.Normal),
		Background: parse("background", c.Background),
	}
	if err := errs.Err(); err != nil {
		return Palette{}, err
	}
	return p, nil
}

// ParseConfig parses and normalizes a YAML configuration.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	cfg.Normalize()
	return cfg, cfg.Validate()
}

// ParseConfigFile reads, normalizes and validates the configuration in
// cfgFile. A missing file results in the default configuration.
func ParseConfigFile(ctx context.Context, cfgFile string) (Config, error) {
	if cfgFile == "" {
		return Default(), nil
	}
	cfgFile = os.ExpandEnv(cfgFile)
	if _, err := os.Stat(cfgFile); os.IsNotExist(err) {
		return Default(), nil
	}
	var cfg Config
	if err := cmdyaml.ParseConfigFile(ctx, cfgFile, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file: %q: %w", cfgFile, err)
	}
	cfg.Normalize()
	return cfg, cfg.Validate()
}

// String returns the configuration in YAML format.
func (c Config) String() string {
	p, err := yaml.Marshal(c)
	if err != nil {
		return err.Error()
	}
	return string(p)
}
