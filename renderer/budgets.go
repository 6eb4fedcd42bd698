package renderer

import (
	"bytes"
	"fmt"

	"github.com/findash/findash"
	md "github.com/nao1215/markdown"
)

// BudgetsMarkdown renders a budget report: stored limits against the spending
// recomputed live for the report's window.
func BudgetsMarkdown(r *findash.BudgetReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Budgets (last %s)", r.Period.Name()))

	rows := make([][]string, 0, len(r.Budgets))
	for _, line := range r.Budgets {
		rows = append(rows, []string{
			line.Category,
			line.Period.String(),
			line.Limit.String(),
			line.Actual.String(),
			usageCell(line),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Category", "Period", "Limit", "Spent", "Usage"},
		Rows:   rows,
	})

	return doc.String()
}
