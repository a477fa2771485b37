// Package report prints the turn history as a text table for headless runs.
package report

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"turnchart/internal/history"
)

// WriteHistory renders one row per snapshot with a column per metric,
// followed by a one-line summary of the selected metric's change.
func WriteHistory(w io.Writer, title string, entries []history.Snapshot, selected history.Metric) error {
	if _, err := color.New(color.FgCyan, color.Bold).Fprintf(w, "%s\n", title); err != nil {
		return err
	}
	if len(entries) == 0 {
		_, err := color.New(color.FgYellow).Fprintln(w, "No history recorded.")
		return err
	}

	table := tablewriter.NewWriter(w)
	headers := []string{"Turn"}
	for _, m := range history.Metrics() {
		headers = append(headers, m.String())
	}
	table.Header(headers)
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, s := range entries {
		row := []string{humanize.Comma(int64(s.Turn))}
		for _, m := range history.Metrics() {
			row = append(row, humanize.Comma(s.Value(m)))
		}
		data = append(data, row)
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	_, err := fmt.Fprintln(w, Summary(entries, selected))
	return err
}

// Summary describes how the selected metric moved across the history.
func Summary(entries []history.Snapshot, m history.Metric) string {
	if len(entries) == 0 {
		return fmt.Sprintf("%s: no data", m)
	}
	first, last := entries[0], entries[len(entries)-1]
	delta := last.Value(m) - first.Value(m)
	sign := "+"
	paint := color.New(color.FgGreen).SprintFunc()
	if delta < 0 {
		sign = "-"
		delta = -delta
		paint = color.New(color.FgRed).SprintFunc()
	}
	return fmt.Sprintf("%s: %s -> %s over turns %d-%d (%s)",
		m,
		humanize.Comma(first.Value(m)),
		humanize.Comma(last.Value(m)),
		first.Turn, last.Turn,
		paint(sign+humanize.Comma(delta)))
}
