// Package cmd implements the CLI application to manage the finance dashboard.
package cmd

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v8"
	"github.com/charmbracelet/glamour"
	"github.com/findash/findash"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&summaryCmd{}, "views")
	c.Register(&accountsCmd{}, "views")
	c.Register(&txCmd{}, "views")
	c.Register(&budgetsCmd{}, "views")

	c.Register(&addAccountCmd{}, "mutations")
	c.Register(&updateAccountCmd{}, "mutations")
	c.Register(&deleteAccountCmd{}, "mutations")
	c.Register(&addTxCmd{}, "mutations")
	c.Register(&updateTxCmd{}, "mutations")
	c.Register(&deleteTxCmd{}, "mutations")
	c.Register(&addBudgetCmd{}, "mutations")
	c.Register(&updateBudgetCmd{}, "mutations")
	c.Register(&deleteBudgetCmd{}, "mutations")

	c.Register(&importCmd{}, "data")
	c.Register(&exportCmd{}, "data")
}

// appConfig holds the environment-driven settings. Flags override it.
type appConfig struct {
	DataFile string `env:"FINDASH_FILE" envDefault:"findash.json"`
	LogLevel string `env:"FINDASH_LOG_LEVEL" envDefault:"warning"`
}

func loadConfig() appConfig {
	// A missing .env file is the normal case.
	_ = godotenv.Load()

	var cfg appConfig
	if err := env.Parse(&cfg); err != nil {
		logrus.WithError(err).Warn("could not read environment, using defaults")
		cfg = appConfig{DataFile: "findash.json", LogLevel: "warning"}
	}
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(level)
	}
	return cfg
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataFile = flag.String("data-file", loadConfig().DataFile, "Path to the dashboard snapshot file (JSON)")

// openStore opens the dashboard store backed by the app snapshot file,
// seeding it with the sample data on first use.
func openStore() (*findash.Store, error) {
	return findash.Open(findash.NewFileStorage(*dataFile))
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when the renderer cannot cope.
func printMarkdown(markdown string) {
	out, err := glamour.Render(markdown, "auto")
	if err != nil {
		fmt.Print(markdown)
		return
	}
	fmt.Print(out)
}
