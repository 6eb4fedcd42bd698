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

type budgetsCmd struct {
	period string
}

func (*budgetsCmd) Name() string     { return "budgets" }
func (*budgetsCmd) Synopsis() string { return "display budget usage for a spending window" }
func (*budgetsCmd) Usage() string {
	return `fds budgets [-p <period>]

  Displays every budget with the spending recomputed over the given window
  (week, month or year). Anything unrecognized means a month.
`
}

func (c *budgetsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "p", "month", "Spending window (week, month, year).")
}

func (c *budgetsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	report := findash.NewBudgetReport(store, findash.ParsePeriod(c.period))
	printMarkdown(renderer.BudgetsMarkdown(report))

	return subcommands.ExitSuccess
}
