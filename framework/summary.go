package framework

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// FormatSuccessRate renders a success rate the way the summary shows it: one decimal place,
// or "0%" if no tests ran.
func (s Summary) FormatSuccessRate() string {
	if s.Total == 0 {
		return "0%"
	}
	return fmt.Sprintf("%.1f%%", s.SuccessRate)
}

// PrintResults writes the test counts, followed by a table of the failed tests if there were any.
func PrintResults(out io.Writer, results Results) {
	summary := results.Summary()

	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	t.SetTitle("TEST SUMMARY")
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
	})
	t.AppendRows([]table.Row{
		{"Total Tests", summary.Total},
		{"Passed", summary.Passed},
		{"Failed", summary.Failed},
		{"Skipped", len(results.Skipped)},
		{"Success Rate", summary.FormatSuccessRate()},
	})
	t.Render()

	if len(results.Failures) == 0 {
		return
	}
	fmt.Fprintf(out, "\nFailed Tests (%d)\n", len(results.Failures))
	ft := table.NewWriter()
	ft.SetOutputMirror(out)
	ft.SetStyle(table.StyleLight)
	ft.AppendHeader(table.Row{"Test", "Error"})
	ft.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Error", WidthMax: 80},
	})
	for _, f := range results.Failures {
		ft.AppendRow(table.Row{f.TestID.String(), f.ErrorMessage()})
	}
	ft.Render()
}
