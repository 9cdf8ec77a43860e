package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/finance"
	"github.com/etnz/finance/date"
	"github.com/etnz/finance/renderer"
	"github.com/google/subcommands"
)

// --- Add Command ---

type addCmd struct {
	amount      string
	date        string
	description string
	currency    string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a transaction" }
func (*addCmd) Usage() string {
	return `fin add -a <amount> [-d <MM.DD.YYYY>] [-m <description>] [-c <currency>]

  Records a transaction and saves the ledger. Use a negative amount for an
  expense. The transaction gets the next available ID.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "a", "", "Amount of the transaction, '.' as decimal separator")
	f.StringVar(&c.date, "d", date.Today().String(), "Transaction date (MM.DD.YYYY)")
	f.StringVar(&c.description, "m", "", "Description of the transaction")
	f.StringVar(&c.currency, "c", "", "Currency of the transaction, defaults to the session currency")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.amount == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	amount, err := finance.ParseAmount(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
		return subcommands.ExitUsageError
	}
	day, err := finance.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	if err := finance.ValidateDescription(c.description); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	ledger, err := OpenLedgerStrict()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if c.currency != "" {
		if err := ledger.SetCurrency(c.currency); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
	}

	tx, err := ledger.Add(amount, day, c.description)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error saving transaction: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Transaction with ID %d added.\n", tx.ID)
	return subcommands.ExitSuccess
}

// --- List Command ---

type listCmd struct {
	rangeFlags
	markdown bool
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list all transactions" }
func (*listCmd) Usage() string {
	return `fin list [-md] [-p <period> | -s <start>] [-d <date>]

  Lists all transactions in the order they were recorded, or only the ones
  of a range of dates.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	c.rangeFlags.SetFlags(f)
	f.BoolVar(&c.markdown, "md", false, "Render a markdown table for the terminal")
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, filtered, err := c.Range()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	ledger := OpenLedger()
	txs := ledger.Transactions()
	if filtered {
		txs = ledger.Between(r)
	}

	if c.markdown {
		printMarkdown(renderer.TransactionsMarkdown(txs))
		return subcommands.ExitSuccess
	}

	if len(txs) == 0 {
		fmt.Println("No transactions.")
		return subcommands.ExitSuccess
	}
	fmt.Print(renderer.Transactions(txs))
	return subcommands.ExitSuccess
}

// --- Balance Command ---

type balanceCmd struct {
	rangeFlags
	markdown bool
}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "show the sum of all transactions" }
func (*balanceCmd) Usage() string {
	return `fin balance [-md] [-p <period> | -s <start>] [-d <date>]

  Shows the sum of all transaction amounts, labelled with the session
  currency. Amounts are summed as they are, whatever their currency.

  With -p or -s, shows the sum of the transactions of a range of dates only.
`
}

func (c *balanceCmd) SetFlags(f *flag.FlagSet) {
	c.rangeFlags.SetFlags(f)
	f.BoolVar(&c.markdown, "md", false, "Render markdown for the terminal")
}

func (c *balanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, filtered, err := c.Range()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	ledger := OpenLedger()
	balance := ledger.BalanceMoney()
	if filtered {
		sum := finance.M(finance.Sum(ledger.Between(r)), ledger.Currency())
		if c.markdown {
			printMarkdown(renderer.BalanceMarkdown(sum))
			return subcommands.ExitSuccess
		}
		fmt.Print(renderer.RangeBalance(r, sum))
		return subcommands.ExitSuccess
	}

	if c.markdown {
		printMarkdown(renderer.BalanceMarkdown(balance))
		return subcommands.ExitSuccess
	}
	fmt.Print(renderer.Balance(balance))
	return subcommands.ExitSuccess
}

// --- Delete Command ---

type deleteCmd struct {
	id string
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete a transaction" }
func (*deleteCmd) Usage() string {
	return `fin delete -id <id>

  Deletes the transaction with the given ID and saves the ledger. The next
  ID is computed from the last record when the file is read again.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "ID of the transaction to delete")
}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	id, err := finance.ParseID(c.id)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	ledger, err := OpenLedgerStrict()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if _, err := ledger.Delete(id); err != nil {
		if errors.Is(err, finance.ErrNotFound) {
			fmt.Fprintln(os.Stderr, "Transaction not found.")
			return subcommands.ExitFailure
		}
		fmt.Fprintf(os.Stderr, "Error saving ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Transaction with ID %d deleted.\n", id)
	return subcommands.ExitSuccess
}
