package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/findash/findash/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion hook: when invoked by the shell's completion machinery
	// this prints candidates and exits, otherwise it is a no-op.
	completer := &complete.Command{
		Flags: map[string]complete.Predictor{
			"data-file": predict.Files("*.json"),
		},
		Sub: map[string]*complete.Command{
			"summary":        {Flags: map[string]complete.Predictor{"d": predict.Something}},
			"accounts":       {},
			"tx":             {Flags: map[string]complete.Predictor{"account": predict.Something, "category": predict.Something, "type": predict.Set{"income", "expense", "transfer"}}},
			"budgets":        {Flags: map[string]complete.Predictor{"p": predict.Set{"week", "month", "year"}}},
			"add-account":    {Flags: map[string]complete.Predictor{"type": predict.Set{"checking", "savings", "investment", "credit"}}},
			"update-account": {Flags: map[string]complete.Predictor{"type": predict.Set{"checking", "savings", "investment", "credit"}}},
			"delete-account": {},
			"add-tx":         {Flags: map[string]complete.Predictor{"type": predict.Set{"income", "expense", "transfer"}}},
			"update-tx":      {Flags: map[string]complete.Predictor{"type": predict.Set{"income", "expense", "transfer"}}},
			"delete-tx":      {},
			"add-budget":     {Flags: map[string]complete.Predictor{"p": predict.Set{"week", "month", "year"}}},
			"update-budget":  {Flags: map[string]complete.Predictor{"p": predict.Set{"week", "month", "year"}}},
			"delete-budget":  {},
			"import":         {Flags: map[string]complete.Predictor{"f": predict.Files("*.json")}},
			"export":         {},
		},
	}
	completer.Complete("fds")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
