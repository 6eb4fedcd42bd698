package renderer

import (
	"bytes"
	"fmt"

	"github.com/findash/findash"
	md "github.com/nao1215/markdown"
)

// TransactionsMarkdown renders transactions to a markdown table, in the order
// given. Orphaned transactions keep their row with an absent account name.
func TransactionsMarkdown(txs []findash.Transaction, names map[string]string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Transactions")

	rows := make([][]string, 0, len(txs))
	for _, t := range txs {
		rows = append(rows, []string{
			t.Date.String(),
			accountName(names, t.AccountID),
			t.Description,
			t.Category,
			string(t.Type),
			t.Amount.SignedString(),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Date", "Account", "Description", "Category", "Type", "Amount"},
		Rows:   rows,
	})

	doc.PlainText(fmt.Sprintf("%d transaction(s)", len(txs)))

	return doc.String()
}
