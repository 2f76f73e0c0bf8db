// Copyright 2024 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package desktop renders the clock display in a desktop window.
package desktop

import (
	"context"
	"errors"
	"image/color"
	"sync/atomic"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"github.com/cosnicolaou/dstclock/display"
)

// ErrClosed is returned by Present once the window has been closed.
var ErrClosed = errors.New("window closed")

// Style configures the window.
type Style struct {
	Title      string
	Width      float32
	Height     float32
	Background color.Color
	// Colors holds the color of each line, the countdown line uses
	// Alert or Normal once it has been updated.
	Colors map[display.Role]color.Color
	Alert  color.Color
	Normal color.Color
}

// DefaultStyle returns the colors and size of the original clock.
func DefaultStyle() Style {
	rgb := func(r, g, b uint8) color.Color { return color.NRGBA{R: r, G: g, B: b, A: 0xff} }
	return Style{
		Title:      "World Clock with DST Info",
		Width:      650,
		Height:     350,
		Background: color.Black,
		Colors: map[display.Role]color.Color{
			display.RoleLocal:     rgb(0x00, 0xbf, 0xff),
			display.RoleUTC:       rgb(0x00, 0xff, 0x7f),
			display.RoleUnix:      rgb(0xff, 0x45, 0x00),
			display.RoleStatus:    rgb(0x93, 0x70, 0xdb),
			display.RoleStart:     rgb(0x98, 0xfb, 0x98),
			display.RoleEnd:       rgb(0xff, 0xa0, 0x7a),
			display.RoleCountdown: rgb(0xff, 0x63, 0x47),
		},
		Alert:  rgb(0xff, 0x00, 0x00),
		Normal: rgb(0xa5, 0x2a, 0x2a),
	}
}

func font(r display.Role) (float32, fyne.TextStyle) {
	switch r {
	case display.RoleStart, display.RoleEnd:
		return 14, fyne.TextStyle{}
	case display.RoleCountdown:
		return 14, fyne.TextStyle{Bold: true}
	}
	return 16, fyne.TextStyle{Bold: true}
}

// Window is a display.Presenter backed by a fyne window. Its widgets
// are only modified on the fyne event loop.
type Window struct {
	app    fyne.App
	win    fyne.Window
	style  Style
	texts  [display.NumLines]*canvas.Text
	closed atomic.Bool
}

// New creates the window, it is not shown until Run is called.
func New(app fyne.App, style Style) *Window {
	w := &Window{
		app:   app,
		win:   app.NewWindow(style.Title),
		style: style,
	}
	objs := make([]fyne.CanvasObject, 0, display.NumLines)
	for _, r := range display.Roles() {
		t := canvas.NewText("", style.Colors[r])
		t.TextSize, t.TextStyle = font(r)
		t.Alignment = fyne.TextAlignCenter
		w.texts[r] = t
		objs = append(objs, t)
	}
	bg := canvas.NewRectangle(style.Background)
	w.win.SetContent(container.NewStack(bg, container.NewPadded(container.NewVBox(objs...))))
	w.win.Resize(fyne.NewSize(style.Width, style.Height))
	w.win.SetOnClosed(func() {
		w.closed.Store(true)
	})
	return w
}

// Present implements display.Presenter.
func (w *Window) Present(_ context.Context, lines []display.Line) error {
	if w.closed.Load() {
		return ErrClosed
	}
	fyne.Do(func() {
		w.apply(lines)
	})
	return nil
}

func (w *Window) apply(lines []display.Line) {
	for _, l := range lines {
		if l.Role < 0 || int(l.Role) >= display.NumLines {
			continue
		}
		t := w.texts[l.Role]
		t.Text = l.Text
		if l.Role == display.RoleCountdown {
			t.Color = w.style.Normal
			if l.Alert {
				t.Color = w.style.Alert
			}
		}
		t.Refresh()
	}
}

// Run shows the window and runs the event loop until the window is
// closed or ctx is canceled. It must be called from the main goroutine.
func (w *Window) Run(ctx context.Context) {
	stop := context.AfterFunc(ctx, func() {
		fyne.Do(w.app.Quit)
	})
	defer stop()
	w.win.ShowAndRun()
	w.closed.Store(true)
}
