package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/findash/findash/renderer"
	"github.com/google/subcommands"
)

type accountsCmd struct{}

func (*accountsCmd) Name() string     { return "accounts" }
func (*accountsCmd) Synopsis() string { return "list all accounts and their balances" }
func (*accountsCmd) Usage() string {
	return `fds accounts

  Lists every account with its type and current balance.
`
}

func (*accountsCmd) SetFlags(*flag.FlagSet) {}

func (*accountsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.AccountsMarkdown(store.Accounts()))

	return subcommands.ExitSuccess
}
