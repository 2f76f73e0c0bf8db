// Copyright 2024 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"os"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
)

const cmdSpec = `name: dstclock
summary: dstclock displays the local, UTC and unix time together with the daylight saving time status and a countdown to the next transition
commands:
  - name: window
    summary: display the clock in a desktop window
  - name: watch
    summary: display the clock in the terminal, refreshing it in place
  - name: now
    summary: print the clock once, for the current time or the time specified by --at
  - name: transitions
    summary: |
      print the daylight saving time windows for a range of years together
      with the transitions recorded in the timezone database
  - name: config
    summary: query/inspect the configuration file
    commands:
      - name: display
`

func cli() *subcmd.CommandSetYAML {
	cmd := subcmd.MustFromYAML(cmdSpec)

	clk := &Clock{out: os.Stdout}
	cmd.Set("window").MustRunner(clk.Window, &WindowFlags{})
	cmd.Set("watch").MustRunner(clk.Watch, &WatchFlags{})
	cmd.Set("now").MustRunner(clk.Now, &NowFlags{})

	tr := &Transitions{out: os.Stdout}
	cmd.Set("transitions").MustRunner(tr.Print, &TransitionsFlags{})

	config := &Config{out: os.Stdout}
	cmd.Set("config", "display").MustRunner(config.Display, &ConfigFlags{})
	return cmd
}

var errInterrupt = errors.New("interrupt")

func main() {
	ctx := context.Background()
	ctx, cancel := context.WithCancelCause(ctx)
	cmdutil.HandleSignals(func() { cancel(errInterrupt) }, os.Interrupt)
	err := cli().Dispatch(ctx)
	if context.Cause(ctx) == errInterrupt {
		return
	}
	if err != nil {
		cmdutil.Exit("%v", err)
	}
}
