package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/findash/findash"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the top-level dashboard view.
func SummaryMarkdown(s *findash.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Dashboard on %s", s.Date))
	doc.PlainText(fmt.Sprintf("Total Balance: %s", s.TotalBalance))

	doc.H2("Accounts")
	accountRows := make([][]string, 0, len(s.Accounts))
	for _, line := range s.Accounts {
		accountRows = append(accountRows, []string{
			line.Name,
			string(line.Type),
			line.Balance.String(),
			strconv.Itoa(line.TxCount),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Name", "Type", "Balance", "Activity"},
		Rows:   accountRows,
	})

	doc.H2("Budgets")
	budgetRows := make([][]string, 0, len(s.Budgets))
	for _, line := range s.Budgets {
		budgetRows = append(budgetRows, []string{
			line.Category,
			line.Period.String(),
			line.Limit.String(),
			line.Actual.String(),
			usageCell(line),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Category", "Period", "Limit", "Spent", "Usage"},
		Rows:   budgetRows,
	})

	return doc.String()
}
