package main

import (
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
)

// summaryRow is one line of the run summary: a list, its record count and
// the file it was written to.
type summaryRow struct {
	list  string
	cards int
	file  string
}

func renderSummary(rows []summaryRow) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"List", "Cards", "File"})
	for _, r := range rows {
		tw.AppendRow(table.Row{r.list, r.cards, r.file})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Cards", Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
