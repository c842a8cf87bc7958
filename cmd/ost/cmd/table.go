package cmd

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// renderTable renders rows with a leading line-number column.
func renderTable(headers []string, rows [][]string) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, 0, len(headers)+1)
	header = append(header, "#")
	for _, h := range headers {
		header = append(header, h)
	}
	tw.AppendHeader(header)

	for i, row := range rows {
		r := make(table.Row, 0, len(headers)+1)
		r = append(r, i+1)
		for _, cell := range row {
			r = append(r, cell)
		}
		tw.AppendRow(r)
	}

	configs := make([]table.ColumnConfig, 0, len(headers)+1)
	configs = append(configs, table.ColumnConfig{Number: 1, Align: text.AlignRight})
	for i := range headers {
		configs = append(configs, table.ColumnConfig{
			Number:      i + 2,
			Align:       text.AlignLeft,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(configs)

	return tw.Render()
}
