package renderer

import (
	"bytes"
	"fmt"

	"github.com/findash/findash"
	md "github.com/nao1215/markdown"
)

// AccountsMarkdown renders the account list to a markdown string.
func AccountsMarkdown(accounts []findash.Account) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Accounts")

	rows := make([][]string, 0, len(accounts))
	for _, a := range accounts {
		rows = append(rows, []string{a.ID, a.Name, string(a.Type), a.Balance.String()})
	}
	doc.Table(md.TableSet{
		Header: []string{"ID", "Name", "Type", "Balance"},
		Rows:   rows,
	})

	doc.PlainText(fmt.Sprintf("%d account(s)", len(accounts)))

	return doc.String()
}
