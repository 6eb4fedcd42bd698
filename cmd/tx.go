package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/findash/findash"
	"github.com/findash/findash/renderer"
	"github.com/google/subcommands"
)

type txCmd struct {
	account  string
	category string
	txType   string
	head     int
	tail     int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list transactions" }
func (*txCmd) Usage() string {
	return `fds tx [-account <id>] [-category <name>] [-type <type>] [-head <n> | -tail <n>]

  Lists transactions in stored order, with options for filtering and limiting
  the output. All given filters must match.
`
}

func (p *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.account, "account", "", "Show only transactions on this account id.")
	f.StringVar(&p.category, "category", "", "Show only transactions with this exact category.")
	f.StringVar(&p.txType, "type", "", "Show only transactions of this type (income, expense, transfer).")
	f.IntVar(&p.head, "head", 0, "Show only the first N transactions.")
	f.IntVar(&p.tail, "tail", 0, "Show only the last N transactions.")
}

func (p *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.head > 0 && p.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var filters []func(findash.Transaction) bool
	if p.account != "" {
		filters = append(filters, findash.ByAccount(p.account))
	}
	if p.category != "" {
		filters = append(filters, findash.ByCategory(p.category))
	}
	if p.txType != "" {
		typ, err := findash.ParseTransactionType(p.txType)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		filters = append(filters, findash.ByType(typ))
	}

	var transactions []findash.Transaction
	for _, tx := range store.Transactions() {
		accept := true
		for _, filter := range filters {
			if !filter(tx) {
				accept = false
				break
			}
		}
		if accept {
			transactions = append(transactions, tx)
		}
	}

	if p.head > 0 && len(transactions) > p.head {
		transactions = transactions[:p.head]
	}
	if p.tail > 0 && len(transactions) > p.tail {
		transactions = transactions[len(transactions)-p.tail:]
	}

	printMarkdown(renderer.TransactionsMarkdown(transactions, renderer.AccountNames(store.Accounts())))

	return subcommands.ExitSuccess
}
