package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type queryCmd struct {
	indent bool
}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "select transactions with a JSONPath expression" }
func (*queryCmd) Usage() string {
	return `fin query [-indent] <jsonpath>

  Evaluates a JSONPath expression against the transactions, as a JSON array
  of objects with the keys id, amount, date, description and currency.
  Prints the result as JSON.

Usage Examples:
# All descriptions.
$ fin query '$[*].description'

# Expenses.
$ fin query '$[?(@.amount < 0)]'
`
}

func (c *queryCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.indent, "indent", false, "Indent the JSON output")
}

func (c *queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		f.Usage()
		return subcommands.ExitUsageError
	}

	ledger := OpenLedger()
	result, err := ledger.Query(f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	enc := json.NewEncoder(os.Stdout)
	if c.indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(result); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
