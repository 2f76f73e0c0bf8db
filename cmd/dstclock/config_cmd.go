// Copyright 2024 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/cosnicolaou/dstclock/dst"
)

type ConfigFlags struct {
	ConfigFileFlags
}

type Config struct {
	out io.Writer
}

func indentBlock(indent, block string) string {
	lines := strings.Split(block, "\n")
	indented := make([]string, 0, len(lines))
	for i, line := range lines {
		if len(line) == 0 && i == len(lines)-1 {
			continue
		}
		indented = append(indented, indent+line)
	}
	return strings.Join(indented, "\n")
}

func (c *Config) Display(ctx context.Context, flags any, _ []string) error {
	fv := flags.(*ConfigFlags)
	cfg, loc, err := loadConfig(ctx, &fv.ConfigFileFlags)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Config File: %v\n", fv.ConfigFile)
	fmt.Fprintf(c.out, "Config:\n%v\n", indentBlock("  ", cfg.String()))
	fmt.Fprintf(c.out, "\nLocation: %v\n", loc)
	fmt.Fprintf(c.out, "DST Rule: last %v of %v and %v at %v UTC\n",
		dst.EU.Weekday, dst.EU.StartMonth, dst.EU.EndMonth, dst.EU.At)
	return nil
}
