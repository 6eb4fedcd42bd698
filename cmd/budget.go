package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/findash/findash"
	"github.com/google/subcommands"
)

// --- Add Budget Command ---

type addBudgetCmd struct {
	category string
	limit    float64
	currency string
	period   string
}

func (*addBudgetCmd) Name() string     { return "add-budget" }
func (*addBudgetCmd) Synopsis() string { return "create a spending budget for a category" }
func (*addBudgetCmd) Usage() string {
	return `fds add-budget -category <name> -limit <amount> [-c <currency>] [-p <period>]

  Creates a budget. The category is matched against transaction categories by
  exact name. The period is a label (week, month, year); views pick the
  actual spending window.
`
}

func (c *addBudgetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.category, "category", "", "Category the budget applies to")
	f.Float64Var(&c.limit, "limit", 0, "Spending ceiling")
	f.StringVar(&c.currency, "c", "USD", "Currency of the limit")
	f.StringVar(&c.period, "p", "month", "Budget period label (week, month, year)")
}

func (c *addBudgetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.category == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	created := store.AddBudget(findash.Budget{
		Category: c.category,
		Limit:    findash.M(c.limit, c.currency),
		Period:   findash.ParsePeriod(c.period),
	})
	fmt.Printf("Created budget %q (%s)\n", created.Category, created.ID)

	return subcommands.ExitSuccess
}

// --- Update Budget Command ---

type updateBudgetCmd struct {
	id       string
	category string
	limit    float64
	spent    float64
	currency string
	period   string
}

func (*updateBudgetCmd) Name() string     { return "update-budget" }
func (*updateBudgetCmd) Synopsis() string { return "update fields of an existing budget" }
func (*updateBudgetCmd) Usage() string {
	return `fds update-budget -id <id> [-category <name>] [-limit <amount>] [-spent <amount>] [-c <currency>] [-p <period>]

  Updates the given fields of a budget; omitted flags are left untouched.
  An unknown id is silently ignored.
`
}

func (c *updateBudgetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Budget id to update")
	f.StringVar(&c.category, "category", "", "New category")
	f.Float64Var(&c.limit, "limit", 0, "New spending ceiling")
	f.Float64Var(&c.spent, "spent", 0, "New stored spent amount")
	f.StringVar(&c.currency, "c", "USD", "Currency used with -limit and -spent")
	f.StringVar(&c.period, "p", "", "New period label (week, month, year)")
}

func (c *updateBudgetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}

	var patch findash.BudgetPatch
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "category":
			patch.Category = &c.category
		case "limit":
			limit := findash.M(c.limit, c.currency)
			patch.Limit = &limit
		case "spent":
			spent := findash.M(c.spent, c.currency)
			patch.Spent = &spent
		case "p":
			period := findash.ParsePeriod(c.period)
			patch.Period = &period
		}
	})

	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	store.UpdateBudget(c.id, patch)
	fmt.Printf("Updated budget %s\n", c.id)

	return subcommands.ExitSuccess
}

// --- Delete Budget Command ---

type deleteBudgetCmd struct {
	id string
}

func (*deleteBudgetCmd) Name() string     { return "delete-budget" }
func (*deleteBudgetCmd) Synopsis() string { return "delete a budget" }
func (*deleteBudgetCmd) Usage() string {
	return `fds delete-budget -id <id>

  Deletes a budget. Transactions in its category are unaffected. An unknown
  id is silently ignored.
`
}

func (c *deleteBudgetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Budget id to delete")
}

func (c *deleteBudgetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	store.DeleteBudget(c.id)
	fmt.Printf("Deleted budget %s\n", c.id)

	return subcommands.ExitSuccess
}
