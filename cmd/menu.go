package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/finance/console"
	"github.com/google/subcommands"
)

type menuCmd struct {
	attempts int
}

func (*menuCmd) Name() string     { return "menu" }
func (*menuCmd) Synopsis() string { return "manage the ledger from an interactive menu (default)" }
func (*menuCmd) Usage() string {
	return `fin menu [-attempts <n>]

  Presents a numbered menu to add, list, and delete transactions, show the
  balance, and change the currency of new transactions. Every change is
  saved to the ledger file immediately.

  This is the command run when fin is called without any subcommand.
`
}

func (c *menuCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.attempts, "attempts", 0, "Number of invalid answers before an action is cancelled (0 asks forever)")
}

func (c *menuCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger := OpenLedger()

	m := console.NewMenu(ledger, os.Stdin, os.Stdout)
	m.Prompter().MaxAttempts = c.attempts
	if err := m.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
