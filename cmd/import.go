package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/findash/findash"
	"github.com/google/subcommands"
)

type importCmd struct {
	file    string
	account string
	path    string

	amountKey      string
	descriptionKey string
	categoryKey    string
	dateKey        string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import transactions from a bank JSON export" }
func (*importCmd) Usage() string {
	return `fds import -f <file> -account <id> [-path <jsonpath>] [-amount-key <k>] [-description-key <k>] [-category-key <k>] [-date-key <k>]

  Imports transactions from a JSON export. Banks disagree on the shape of
  their exports, so -path points at the list of movements and the -*-key
  flags name the fields to read. Unreadable records are skipped with a
  warning. Each imported transaction adjusts the account balance exactly as
  if it had been recorded with add-tx.

Usage Examples:
# Import the default shape (a top-level array of movements).
$ fds import -f export.json -account 1

# Import a nested export with custom field names.
$ fds import -f export.json -account 1 -path '$.result.movements[*]' -amount-key value
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "JSON export file to import")
	f.StringVar(&c.account, "account", "", "Account id the imported movements are booked on")
	f.StringVar(&c.path, "path", "", "jsonpath selecting the records (defaults to a top-level array)")
	f.StringVar(&c.amountKey, "amount-key", "", "Record key holding the amount (defaults to amount)")
	f.StringVar(&c.descriptionKey, "description-key", "", "Record key holding the description (defaults to description)")
	f.StringVar(&c.categoryKey, "category-key", "", "Record key holding the category (defaults to category)")
	f.StringVar(&c.dateKey, "date-key", "", "Record key holding the date (defaults to date)")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" || c.account == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}

	in, err := os.Open(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening export file %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	txs, err := findash.ImportTransactions(in, findash.ImportSpec{
		Path:           c.path,
		AccountID:      c.account,
		AmountKey:      c.amountKey,
		DescriptionKey: c.descriptionKey,
		CategoryKey:    c.categoryKey,
		DateKey:        c.dateKey,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	for _, tx := range txs {
		store.AddTransaction(tx)
	}
	fmt.Printf("Imported %d transaction(s) from %s\n", len(txs), c.file)

	return subcommands.ExitSuccess
}
