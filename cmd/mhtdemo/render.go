package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
)

// kindColor maps an event kind to the color its row is rendered in,
// matching the pack's use of fatih/color for pass/fail-style CLI output
// (grounded on cmd/uast/validate.go's color.New(color.FgX) calls).
var kindColor = map[string]*color.Color{
	"start":       color.New(color.FgGreen),
	"continue":    color.New(color.FgCyan),
	"skip":        color.New(color.FgYellow),
	"end":         color.New(color.FgBlue),
	"false_alarm": color.New(color.FgRed),
}

// renderEvents writes events as a go-pretty table, one row per committed
// decision, colorizing the kind column unless noColor is set.
func renderEvents(w io.Writer, events []event, noColor bool) {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Scan", "Track", "Kind", "Detail"})

	for _, e := range events {
		trackCol := "-"
		if e.kind != "false_alarm" {
			trackCol = fmt.Sprintf("%d", e.trackID)
		}

		kindCol := e.kind
		if !noColor {
			if c, ok := kindColor[e.kind]; ok {
				kindCol = c.Sprint(e.kind)
			}
		}

		tbl.AppendRow(table.Row{e.scan, trackCol, kindCol, e.detail})
	}

	tbl.AppendFooter(table.Row{"", "", "Total", len(events)})
	tbl.Render()
}
