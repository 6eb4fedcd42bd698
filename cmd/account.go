package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/findash/findash"
	"github.com/google/subcommands"
)

// --- Add Account Command ---

type addAccountCmd struct {
	name     string
	accType  string
	balance  float64
	currency string
}

func (*addAccountCmd) Name() string     { return "add-account" }
func (*addAccountCmd) Synopsis() string { return "create a new account" }
func (*addAccountCmd) Usage() string {
	return `fds add-account -name <name> -type <type> [-balance <amount>] [-c <currency>]

  Creates an account. The type is one of checking, savings, investment, credit.
`
}

func (c *addAccountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Account name")
	f.StringVar(&c.accType, "type", "checking", "Account type (checking, savings, investment, credit)")
	f.Float64Var(&c.balance, "balance", 0, "Opening balance")
	f.StringVar(&c.currency, "c", "USD", "Currency of the account (e.g., USD, EUR)")
}

func (c *addAccountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	typ, err := findash.ParseAccountType(c.accType)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	created := store.AddAccount(findash.Account{
		Name:    c.name,
		Type:    typ,
		Balance: findash.M(c.balance, c.currency),
	})
	fmt.Printf("Created account %q (%s)\n", created.Name, created.ID)

	return subcommands.ExitSuccess
}

// --- Update Account Command ---

type updateAccountCmd struct {
	id       string
	name     string
	accType  string
	balance  float64
	currency string
}

func (*updateAccountCmd) Name() string     { return "update-account" }
func (*updateAccountCmd) Synopsis() string { return "update fields of an existing account" }
func (*updateAccountCmd) Usage() string {
	return `fds update-account -id <id> [-name <name>] [-type <type>] [-balance <amount> [-c <currency>]]

  Updates the given fields of an account; omitted flags are left untouched.
  An unknown id is silently ignored.
`
}

func (c *updateAccountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Account id to update")
	f.StringVar(&c.name, "name", "", "New account name")
	f.StringVar(&c.accType, "type", "", "New account type (checking, savings, investment, credit)")
	f.Float64Var(&c.balance, "balance", 0, "New balance")
	f.StringVar(&c.currency, "c", "USD", "Currency used with -balance")
}

func (c *updateAccountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}

	// Only flags the user actually set end up in the patch.
	var patch findash.AccountPatch
	var bad error
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "name":
			patch.Name = &c.name
		case "type":
			typ, err := findash.ParseAccountType(c.accType)
			if err != nil {
				bad = err
				return
			}
			patch.Type = &typ
		case "balance":
			balance := findash.M(c.balance, c.currency)
			patch.Balance = &balance
		}
	})
	if bad != nil {
		fmt.Fprintln(os.Stderr, bad)
		return subcommands.ExitUsageError
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	store.UpdateAccount(c.id, patch)
	fmt.Printf("Updated account %s\n", c.id)

	return subcommands.ExitSuccess
}

// --- Delete Account Command ---

type deleteAccountCmd struct {
	id string
}

func (*deleteAccountCmd) Name() string     { return "delete-account" }
func (*deleteAccountCmd) Synopsis() string { return "delete an account" }
func (*deleteAccountCmd) Usage() string {
	return `fds delete-account -id <id>

  Deletes an account. Its transactions are kept and rendered without an
  account name. An unknown id is silently ignored.
`
}

func (c *deleteAccountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Account id to delete")
}

func (c *deleteAccountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	store.DeleteAccount(c.id)
	fmt.Printf("Deleted account %s\n", c.id)

	return subcommands.ExitSuccess
}
