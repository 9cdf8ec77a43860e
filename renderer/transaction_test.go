package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/etnz/finance"
	"github.com/etnz/finance/date"
	"github.com/shopspring/decimal"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

func groceries() finance.Transaction {
	return finance.NewTransaction(3, decimal.RequireFromString("125.50"), date.New(2024, time.March, 15), "Groceries", "USD")
}

func TestTransaction(t *testing.T) {
	want := "\n" +
		"========================================================\n" +
		"|  ID: |     Amount:   |     Date:     |  Description: |\n" +
		"-------|---------------|---------------|---------------|\n" +
		"|  3   |  125.50 USD   |  03/15/2024   |  Groceries     |" + strings.Repeat(" ", 14) + "\n" +
		"========================================================"

	if got := Transaction(groceries()); got != want {
		t.Errorf("Transaction() mismatch\ngot:\n%q\nwant:\n%q", got, want)
	}
}

func TestTransactions(t *testing.T) {
	txs := []finance.Transaction{groceries(), groceries()}
	got := Transactions(txs)
	if n := strings.Count(got, blockHead); n != 2 {
		t.Errorf("Transactions() rendered %d blocks, want 2", n)
	}
	if Transactions(nil) != "" {
		t.Errorf("Transactions(nil) = %q, want empty", Transactions(nil))
	}
}

func TestBalance(t *testing.T) {
	want := "\n" +
		"====================================\n" +
		"| Current balance: 130.00 USD        |\n" +
		"====================================\n"
	if got := Balance(finance.M(decimal.RequireFromString("130.00"), "USD")); got != want {
		t.Errorf("Balance() mismatch\ngot:\n%q\nwant:\n%q", got, want)
	}
}

func TestTransactionsMarkdown(t *testing.T) {
	lunch := finance.NewTransaction(4, decimal.NewFromInt(-20), date.New(2024, time.March, 16), "Lunch | team", "USD")
	got := TransactionsMarkdown([]finance.Transaction{groceries(), lunch})

	want := "| ID | Date | Description | Amount |\n" +
		"|---:|:-----|:------------|-------:|\n" +
		"| 3 | 03/15/2024 | Groceries | $125.50 |\n" +
		`| 4 | 03/16/2024 | Lunch \| team | -$20.00 |` + "\n" +
		"\n" +
		"**2 transactions**\n"
	if got != want {
		t.Errorf("TransactionsMarkdown() mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}

	// The output must be a valid markdown table with one row per transaction.
	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	root := md.Parser().Parse(text.NewReader([]byte(got)))
	rows := 0
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering && n.Kind() == extast.KindTableRow {
			rows++
		}
		return ast.WalkContinue, nil
	})
	if rows != 2 {
		t.Errorf("TransactionsMarkdown() table has %d rows, want 2", rows)
	}
}

func TestTransactionsMarkdown_Empty(t *testing.T) {
	if got, want := TransactionsMarkdown(nil), "No transactions.\n"; got != want {
		t.Errorf("TransactionsMarkdown(nil) = %q, want %q", got, want)
	}
}

func TestBalanceMarkdown(t *testing.T) {
	got := BalanceMarkdown(finance.M(decimal.RequireFromString("-1250.5"), "USD"))
	if want := "**Current balance:** -$1,250.50\n"; got != want {
		t.Errorf("BalanceMarkdown() = %q, want %q", got, want)
	}
}

func TestRangeBalance(t *testing.T) {
	r := date.NewRange(date.New(2024, time.March, 15), date.Monthly)
	got := RangeBalance(r, finance.M(decimal.RequireFromString("-25.50"), "USD"))
	line := "| Balance 03.01.2024 - 03.31.2024: -25.50 USD        |"
	want := "\n" + strings.Repeat("=", len(line)) + "\n" + line + "\n" + strings.Repeat("=", len(line)) + "\n"
	if got != want {
		t.Errorf("RangeBalance() =\n%q\nwant\n%q", got, want)
	}
}
