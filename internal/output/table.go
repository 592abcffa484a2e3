package output

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/jonathan/grammar-scorer/internal/types"
)

// RenderBatchTable writes a formatted summary table of batch outcomes.
func RenderBatchTable(w io.Writer, batch *types.BatchResult) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"File", "Score", "Grade", "Errors", "Words", "Status"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Score", Align: text.AlignRight},
		{Name: "Errors", Align: text.AlignRight},
		{Name: "Words", Align: text.AlignRight},
	})

	for _, item := range batch.Items {
		if item.Failure != nil {
			t.AppendRow(table.Row{item.Identifier, "-", "-", "-", "-", string(item.Failure.Stage) + " failed"})
			continue
		}
		t.AppendRow(table.Row{
			item.Identifier,
			fmt.Sprintf("%.2f", item.Result.Score),
			string(item.Result.Grade),
			item.Result.ErrorCount,
			item.Result.WordCount,
			"ok",
		})
	}

	if batch.Summary.MeanScore != nil {
		t.AppendFooter(table.Row{
			"mean", fmt.Sprintf("%.2f", *batch.Summary.MeanScore), "",
			batch.Summary.TotalErrors, "", fmt.Sprintf("%d ok / %d failed", batch.Summary.CountOK, batch.Summary.CountFailed),
		})
	} else {
		t.AppendFooter(table.Row{
			"mean", "n/a", "", batch.Summary.TotalErrors, "",
			fmt.Sprintf("%d ok / %d failed", batch.Summary.CountOK, batch.Summary.CountFailed),
		})
	}

	t.Render()
}
