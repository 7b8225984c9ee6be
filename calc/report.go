package calc

import (
	"github.com/jedib0t/go-pretty/v6/table"
)

// RenderTable pretty prints batch results
func RenderTable(results []Result) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "op", "base", "exponent", "policy", "value", "error"})
	for i, r := range results {
		var value interface{} = r.Value
		if r.Err != nil {
			value = "-"
		}
		t.AppendRow(table.Row{i, r.Op, r.Base, r.Exponent, r.Policy, value, r.Error})
	}
	return t.Render()
}
