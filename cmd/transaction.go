package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/findash/findash"
	"github.com/google/subcommands"
)

// --- Add Transaction Command ---

type addTxCmd struct {
	account     string
	amount      float64
	description string
	category    string
	date        string
	txType      string
}

func (*addTxCmd) Name() string     { return "add-tx" }
func (*addTxCmd) Synopsis() string { return "record a transaction on an account" }
func (*addTxCmd) Usage() string {
	return `fds add-tx -account <id> -a <amount> [-m <description>] [-category <name>] [-d <date>] [-type <type>]

  Records a transaction. The signed amount is added to the account balance:
  negative for money going out. Without -type, the sign decides between
  income and expense.
`
}

func (c *addTxCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "account", "", "Account id the transaction is booked on")
	f.Float64Var(&c.amount, "a", 0, "Signed amount (negative for expenses)")
	f.StringVar(&c.description, "m", "", "Description of the transaction")
	f.StringVar(&c.category, "category", "", "Category, matched against budgets by exact name")
	f.StringVar(&c.date, "d", findash.Today().String(), "Transaction date. Accepts relative forms like -3d.")
	f.StringVar(&c.txType, "type", "", "Transaction type (income, expense, transfer). Defaults from the amount sign.")
}

func (c *addTxCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.account == "" || c.amount == 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}

	day, err := findash.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	typ := findash.Income
	if c.amount < 0 {
		typ = findash.Expense
	}
	if c.txType != "" {
		typ, err = findash.ParseTransactionType(c.txType)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	created := store.AddTransaction(findash.Transaction{
		AccountID:   c.account,
		Amount:      findash.M(c.amount, ""),
		Description: c.description,
		Category:    c.category,
		Date:        day,
		Type:        typ,
	})
	fmt.Printf("Recorded transaction %s\n", created.ID)

	return subcommands.ExitSuccess
}

// --- Update Transaction Command ---

type updateTxCmd struct {
	id          string
	account     string
	amount      float64
	description string
	category    string
	date        string
	txType      string
}

func (*updateTxCmd) Name() string     { return "update-tx" }
func (*updateTxCmd) Synopsis() string { return "update fields of an existing transaction" }
func (*updateTxCmd) Usage() string {
	return `fds update-tx -id <id> [-account <id>] [-a <amount>] [-m <description>] [-category <name>] [-d <date>] [-type <type>]

  Updates the given fields of a transaction; omitted flags are left untouched.
  Account balances are never adjusted by an update, even when the amount
  changes. An unknown id is silently ignored.
`
}

func (c *updateTxCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Transaction id to update")
	f.StringVar(&c.account, "account", "", "New account id")
	f.Float64Var(&c.amount, "a", 0, "New signed amount")
	f.StringVar(&c.description, "m", "", "New description")
	f.StringVar(&c.category, "category", "", "New category")
	f.StringVar(&c.date, "d", "", "New date. Accepts relative forms like -3d.")
	f.StringVar(&c.txType, "type", "", "New type (income, expense, transfer)")
}

func (c *updateTxCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}

	var patch findash.TransactionPatch
	var bad error
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "account":
			patch.AccountID = &c.account
		case "a":
			amount := findash.M(c.amount, "")
			patch.Amount = &amount
		case "m":
			patch.Description = &c.description
		case "category":
			patch.Category = &c.category
		case "d":
			day, err := findash.ParseDate(c.date)
			if err != nil {
				bad = err
				return
			}
			patch.Date = &day
		case "type":
			typ, err := findash.ParseTransactionType(c.txType)
			if err != nil {
				bad = err
				return
			}
			patch.Type = &typ
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

	store.UpdateTransaction(c.id, patch)
	fmt.Printf("Updated transaction %s\n", c.id)

	return subcommands.ExitSuccess
}

// --- Delete Transaction Command ---

type deleteTxCmd struct {
	id string
}

func (*deleteTxCmd) Name() string     { return "delete-tx" }
func (*deleteTxCmd) Synopsis() string { return "delete a transaction" }
func (*deleteTxCmd) Usage() string {
	return `fds delete-tx -id <id>

  Deletes a transaction. The balance adjustment made when it was recorded is
  not reversed. An unknown id is silently ignored.
`
}

func (c *deleteTxCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Transaction id to delete")
}

func (c *deleteTxCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	store.DeleteTransaction(c.id)
	fmt.Printf("Deleted transaction %s\n", c.id)

	return subcommands.ExitSuccess
}
