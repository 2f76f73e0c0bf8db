// Copyright 2024 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package terminal renders the clock display to a terminal using ANSI
// colors and, optionally, redraws it in place on every update.
package terminal

import (
	"context"
	"io"
	"strings"
	"sync"

	"github.com/cosnicolaou/dstclock/display"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Palette returns the ANSI colors used for each role, approximating the
// colors of the desktop window.
func Palette() map[display.Role]text.Colors {
	return map[display.Role]text.Colors{
		display.RoleLocal:     {text.FgHiCyan, text.Bold},
		display.RoleUTC:       {text.FgHiGreen, text.Bold},
		display.RoleUnix:      {text.FgHiRed, text.Bold},
		display.RoleStatus:    {text.FgHiMagenta, text.Bold},
		display.RoleStart:     {text.FgGreen},
		display.RoleEnd:       {text.FgHiYellow},
		display.RoleCountdown: {text.FgYellow, text.Bold},
	}
}

// AlertColors are used for the countdown when it is alerting.
var AlertColors = text.Colors{text.FgRed, text.Bold}

type Option func(o *options)

type options struct {
	plain  bool
	redraw bool
}

// WithColors enables or disables ANSI colors, they are enabled by default.
func WithColors(v bool) Option {
	return func(o *options) {
		o.plain = !v
	}
}

// WithRedraw causes every update after the first to overwrite the
// previously rendered lines rather than appending to them.
func WithRedraw(v bool) Option {
	return func(o *options) {
		o.redraw = v
	}
}

// Terminal is a display.Presenter that writes to an io.Writer.
type Terminal struct {
	options
	mu      sync.Mutex
	out     io.Writer
	palette map[display.Role]text.Colors
	drawn   int
}

// New returns a Terminal that writes to out.
func New(out io.Writer, opts ...Option) *Terminal {
	t := &Terminal{
		out:     out,
		palette: Palette(),
	}
	for _, opt := range opts {
		opt(&t.options)
	}
	return t
}

func (t *Terminal) colorize(l display.Line) string {
	if t.plain {
		return l.Text
	}
	if l.Alert {
		return AlertColors.Sprint(l.Text)
	}
	return t.palette[l.Role].Sprint(l.Text)
}

// Render returns the text for lines without any cursor movement.
func (t *Terminal) Render(lines []display.Line) string {
	var out strings.Builder
	for _, l := range lines {
		out.WriteString(t.colorize(l))
		out.WriteByte('\n')
	}
	return out.String()
}

// Present implements display.Presenter.
func (t *Terminal) Present(_ context.Context, lines []display.Line) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	var out strings.Builder
	if t.redraw && t.drawn > 0 && !t.plain {
		out.WriteString(text.CursorUp.Sprintn(t.drawn))
	}
	for _, l := range lines {
		if t.redraw && !t.plain {
			out.WriteString(text.EraseLine.Sprint())
		}
		out.WriteString(t.colorize(l))
		out.WriteByte('\n')
	}
	t.drawn = len(lines)
	_, err := io.WriteString(t.out, out.String())
	return err
}
