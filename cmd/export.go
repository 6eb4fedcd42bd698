package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/findash/findash"
	"github.com/google/subcommands"
)

type exportCmd struct{}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write the full dashboard snapshot to stdout" }
func (*exportCmd) Usage() string {
	return `fds export

  Writes the dashboard data as a single JSON document, in the exact shape of
  the snapshot file.
`
}

func (*exportCmd) SetFlags(*flag.FlagSet) {}

func (*exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var transactions []findash.Transaction
	for _, tx := range store.Transactions() {
		transactions = append(transactions, tx)
	}
	snap := &findash.Snapshot{
		Accounts:     store.Accounts(),
		Transactions: transactions,
		Budgets:      store.Budgets(),
	}

	if err := findash.EncodeSnapshot(os.Stdout, snap); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}
