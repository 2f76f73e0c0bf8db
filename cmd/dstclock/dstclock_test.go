// Copyright 2024 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/cosnicolaou/dstclock/internal/logging"
)

func TestParseYears(t *testing.T) {
	now := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	for i, tc := range []struct {
		in       string
		from, to int
	}{
		{"", 2026, 2031},
		{"2024", 2024, 2024},
		{"2024:2030", 2024, 2030},
		{" 2024 : 2025 ", 2024, 2025},
	} {
		from, to, err := parseYears(tc.in, now)
		if err != nil {
			t.Errorf("%v: %v", i, err)
			continue
		}
		if from != tc.from || to != tc.to {
			t.Errorf("%v: got %v:%v, want %v:%v", i, from, to, tc.from, tc.to)
		}
	}
	for _, in := range []string{"x", "2024:", "2030:2024"} {
		if _, _, err := parseYears(in, now); err == nil {
			t.Errorf("%q: expected an error", in)
		}
	}
}

func TestNow(t *testing.T) {
	ctx := context.Background()
	out := &bytes.Buffer{}
	clk := &Clock{out: out}
	fv := &NowFlags{At: "2024-01-01T00:00:00+01:00", NoColor: true}
	if err := clk.Now(ctx, fv, nil); err != nil {
		t.Fatal(err)
	}
	want := `CET Time: 2024-01-01 00:00:00
UTC Time: 2023-12-31 23:00:00
Unix Time: 1704063600
Daylight Saving Time Status: NOT ACTIVE
DST starts this year on: 2024-03-31 03:00:00 +1 hour: 02:00 -> 03:00
DST ends this year on: 2024-10-27 02:00:00 -1 hour 03:00 -> 02:00
Next DST change in: 90 days, 2 hours, 0 minutes
`
	if got := out.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	out.Reset()
	fv = &NowFlags{At: "2024-11-01T00:00:00Z", JSON: true}
	if err := clk.Now(ctx, fv, nil); err != nil {
		t.Fatal(err)
	}
	var rec logging.Record
	if err := json.Unmarshal(out.Bytes(), &rec); err != nil {
		t.Fatal(err)
	}
	if got, want := time.Time(rec.NextChange).Format(time.DateTime), "2025-03-30 03:00:00"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	fv = &NowFlags{At: "yesterday"}
	if err := clk.Now(ctx, fv, nil); err == nil {
		t.Errorf("expected an error")
	}
	fv = &NowFlags{ConfigFileFlags: ConfigFileFlags{TZ: "Not/AZone"}}
	if err := clk.Now(ctx, fv, nil); err == nil {
		t.Errorf("expected an error")
	}
}

func TestNowWithConfig(t *testing.T) {
	ctx := context.Background()
	cfgFile := filepath.Join(t.TempDir(), "dstclock.yaml")
	if err := os.WriteFile(cfgFile, []byte("timezone: Europe/Paris\nlabel: Paris\n"), 0600); err != nil {
		t.Fatal(err)
	}
	out := &bytes.Buffer{}
	fv := &NowFlags{
		ConfigFileFlags: ConfigFileFlags{ConfigFile: cfgFile},
		At:              "2024-07-01T10:00:00Z",
		NoColor:         true,
	}
	if err := (&Clock{out: out}).Now(ctx, fv, nil); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out.String(), "Paris Time: 2024-07-01 12:00:00\n") {
		t.Errorf("unexpected output: %q", out.String())
	}
	if !strings.Contains(out.String(), "Status: ACTIVE\n") {
		t.Errorf("unexpected output: %q", out.String())
	}
}

func TestTransitions(t *testing.T) {
	ctx := context.Background()
	out := &bytes.Buffer{}
	tr := &Transitions{out: out}
	if err := tr.Print(ctx, &TransitionsFlags{Years: "2024:2026"}, nil); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"DST transitions for Europe/Berlin",
		"2024-03-31 03:00:00 CEST (1h0m0s)",
		"2024-10-27 02:00:00 CET (-1h0m0s)",
		"2026-10-25 02:00:00 CET (-1h0m0s)",
		"03:00:00 CEST",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("%q does not contain %q", out.String(), want)
		}
	}
	if strings.Contains(out.String(), "false") {
		t.Errorf("rule and zone database should agree: %v", out.String())
	}

	out.Reset()
	if err := tr.Print(ctx, &TransitionsFlags{Years: "2024", HTML: true}, nil); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "<table class=\"table\">") {
		t.Errorf("expected html output: %v", out.String())
	}
}

func TestConfigDisplay(t *testing.T) {
	ctx := context.Background()
	out := &bytes.Buffer{}
	c := &Config{out: out}
	if err := c.Display(ctx, &ConfigFlags{ConfigFileFlags{TZ: "Europe/Vienna"}}, nil); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"  timezone: Europe/Vienna",
		"Location: Europe/Vienna",
		"DST Rule: last Sunday of March and October at",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("%q does not contain %q", out.String(), want)
		}
	}
}
