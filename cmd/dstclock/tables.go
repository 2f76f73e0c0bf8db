// Copyright 2025 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"
	"time"

	"cloudeng.io/datetime"
	"github.com/cosnicolaou/dstclock/dst"
	"github.com/jedib0t/go-pretty/v6/table"
)

type tableManager struct {
	html bool
}

func formatTransitions(trs []dst.Transition) string {
	if len(trs) == 0 {
		return "none"
	}
	parts := make([]string, len(trs))
	for i, tr := range trs {
		parts[i] = fmt.Sprintf("%v (%v)", tr.At.Format(time.DateTime+" MST"), tr.Shift())
	}
	return strings.Join(parts, "\n")
}

// Transitions returns a table with the DST window computed by the EU
// rule for each year in [from, to] alongside the transitions recorded in the
// timezone database.
func (tm tableManager) Transitions(loc *time.Location, from, to int) table.Writer {
	tw := table.NewWriter()
	tw.SetTitle(fmt.Sprintf("DST transitions for %v", loc))
	tw.AppendHeader(table.Row{"Year", "Start Date", "Starts", "End Date", "Ends", "Timezone Database", "Agrees"})
	for year := from; year <= to; year++ {
		w := dst.WindowFor(year, loc)
		trs := dst.ZoneTransitions(loc, year)
		tw.AppendRow(table.Row{
			year,
			datetime.CalendarDateFromTime(w.Start),
			w.Start.Format(time.TimeOnly + " MST"),
			datetime.CalendarDateFromTime(w.End),
			w.End.Format(time.TimeOnly + " MST"),
			formatTransitions(trs),
			w.Agrees(loc),
		})
		tw.AppendSeparator()
	}
	return tw
}

func (tm tableManager) RenderHTML(tw table.Writer) string {
	tw.SetStyle(table.Style{
		HTML: table.HTMLOptions{
			CSSClass:    "table",
			EmptyColumn: "&nbsp;",
			EscapeText:  false,
			Newline:     "<br/>",
		}})
	return tw.RenderHTML()
}

func (tm tableManager) Render(tw table.Writer) string {
	if tm.html {
		return tm.RenderHTML(tw)
	}
	return tw.Render()
}
