// Copyright 2025 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

type TransitionsFlags struct {
	ConfigFileFlags
	Years string `subcmd:"years,,range of years in <from>:<to> or <year> format; defaults to this year and the next five"`
	HTML  bool   `subcmd:"html,false,render the table as html"`
}

type Transitions struct {
	out io.Writer
}

func parseYears(years string, now time.Time) (from, to int, err error) {
	if len(years) == 0 {
		return now.Year(), now.Year() + 5, nil
	}
	f, t, ok := strings.Cut(years, ":")
	if from, err = strconv.Atoi(strings.TrimSpace(f)); err != nil {
		return 0, 0, fmt.Errorf("invalid year: %q: %w", f, err)
	}
	if !ok {
		return from, from, nil
	}
	if to, err = strconv.Atoi(strings.TrimSpace(t)); err != nil {
		return 0, 0, fmt.Errorf("invalid year: %q: %w", t, err)
	}
	if to < from {
		return 0, 0, fmt.Errorf("invalid year range: %v", years)
	}
	return from, to, nil
}

func (tr *Transitions) Print(ctx context.Context, flags any, _ []string) error {
	fv := flags.(*TransitionsFlags)
	_, loc, err := loadConfig(ctx, &fv.ConfigFileFlags)
	if err != nil {
		return err
	}
	from, to, err := parseYears(fv.Years, time.Now().In(loc))
	if err != nil {
		return err
	}
	tm := tableManager{html: fv.HTML}
	fmt.Fprintln(tr.out, tm.Render(tm.Transitions(loc, from, to)))
	return nil
}
