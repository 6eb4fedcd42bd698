// Package renderer turns dashboard reports into markdown. It is a consuming
// view: it resolves account names (tolerating orphans), formats usage ratios
// computed upstream, and never mutates the store.
package renderer

import (
	"github.com/findash/findash"
)

// absentAccount is rendered in place of an account name when a transaction
// references an account that does not exist.
const absentAccount = "-"

// accountName resolves an account id to its display name, or absentAccount
// for an orphaned reference.
func accountName(names map[string]string, id string) string {
	if name, ok := names[id]; ok {
		return name
	}
	return absentAccount
}

// AccountNames builds the id-to-name index the transaction views use.
func AccountNames(accounts []findash.Account) map[string]string {
	names := make(map[string]string, len(accounts))
	for _, a := range accounts {
		names[a.ID] = a.Name
	}
	return names
}

// usageCell renders a budget usage ratio, or a dash when the ratio is
// undefined because the limit is zero.
func usageCell(line findash.BudgetLine) string {
	if line.Unbounded {
		return absentAccount
	}
	return line.Usage.String()
}
