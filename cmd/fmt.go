package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/finance"
	"github.com/google/subcommands"
)

type fmtCmd struct {
	check bool
}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the ledger file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `fin fmt [-check]

  Validates and formats the ledger file. This command reads all records,
  drops the lines that are not records (wrong number of fields, blank lines),
  and writes the remaining records back in canonical form.

  The file is left untouched if a record holds an invalid ID, amount, or date.

Usage Examples:
# Rewrites the default ledger file.
$ fin fmt

# Only reports the lines that would be dropped.
$ fin fmt -check
`
}

func (p *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.check, "check", false, "Report what would change, do not write the file")
}

func (p *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := finance.OpenLedger(*ledgerFile, *currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Fprintf(os.Stderr, "Ledger %q: %d transactions, %d dropped lines, next ID %d.\n",
		*ledgerFile, ledger.Len(), ledger.Skipped(), ledger.NextID())
	if p.check {
		if ledger.Skipped() > 0 {
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	if err := ledger.Save(); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving formatted ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Ledger file '%s' has been formatted.\n", *ledgerFile)
	return subcommands.ExitSuccess
}
