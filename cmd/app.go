// Package cmd implements the CLI application to manage a personal finance ledger.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/log"
	"github.com/etnz/finance"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&menuCmd{}, "")

	c.Register(&addCmd{}, "transactions")
	c.Register(&listCmd{}, "transactions")
	c.Register(&balanceCmd{}, "transactions")
	c.Register(&deleteCmd{}, "transactions")

	c.Register(&fmtCmd{}, "ledger")
	c.Register(&queryCmd{}, "ledger")
	c.Register(&watchCmd{}, "ledger")

	c.Register(&topicCmd{}, "help")
	c.Register(&assistCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

const defaultLedgerFile = "transactions.txt"

var ledgerFile = flag.String("ledger-file", defaultLedgerFile, "Path to the ledger file containing transactions")
var currency = flag.String("currency", finance.DefaultCurrency, "Currency of the transactions added in this session")
var configFile = flag.String("config", "fin.yaml", "Path to an optional YAML configuration file")

// Verbose enables debug logs.
var Verbose = flag.Bool("v", false, "Print debug logs")

// OpenLedger opens the application ledger file.
//
// A file that cannot be fully read is reported as a warning: the returned
// ledger holds the transactions read before the failure.
func OpenLedger() *finance.Ledger {
	ledger, err := finance.OpenLedger(*ledgerFile, *currency)
	if err != nil {
		log.Warn("ledger could not be fully loaded", "err", err)
	}
	if ledger.Len() == 0 {
		if _, err := os.Stat(*ledgerFile); errors.Is(err, fs.ErrNotExist) {
			log.Info("ledger does not exist, starting empty", "path", *ledgerFile)
		}
	}
	return ledger
}

// OpenLedgerStrict opens the application ledger file and fails if any record is invalid.
func OpenLedgerStrict() (*finance.Ledger, error) {
	ledger, err := finance.OpenLedger(*ledgerFile, *currency)
	if err != nil {
		return nil, err
	}
	return ledger, nil
}

// printMarkdown renders md for the terminal, and falls back to the raw text.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		log.Debug("could not render markdown", "err", err)
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
