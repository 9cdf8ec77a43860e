package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/finance"
	"github.com/etnz/finance/date"
)

const (
	blockRule   = "========================================================"
	blockHead   = "|  ID: |     Amount:   |     Date:     |  Description: |"
	blockSep    = "-------|---------------|---------------|---------------|"
	balanceRule = "===================================="
)

// Transaction renders a transaction as a fixed-width block.
func Transaction(tx finance.Transaction) string {
	id := fmt.Sprintf("%-5s", fmt.Sprintf("|  %d  ", tx.ID))
	amount := fmt.Sprintf("%-15s", fmt.Sprintf("|  %s ", tx.Money().Plain()))
	on := fmt.Sprintf("%-15s", "|  "+tx.Date.Short())
	description := fmt.Sprintf("%-30s", "|  "+tx.Description+"     |")

	return "\n" + blockRule + "\n" +
		blockHead + "\n" +
		blockSep + "\n" +
		id + " " + amount + " " + on + " " + description + "  \n" +
		blockRule
}

// Transactions renders each transaction as a block, one after the other.
func Transactions(txs []finance.Transaction) string {
	var b strings.Builder
	for _, tx := range txs {
		b.WriteString(Transaction(tx))
		b.WriteString("\n")
	}
	return b.String()
}

// Balance renders the balance in a box.
func Balance(m finance.Money) string {
	return "\n" + balanceRule + "\n" +
		"| Current balance: " + m.Plain() + "        |\n" +
		balanceRule + "\n"
}

// transactionRow is the view of a transaction in markdown tables.
type transactionRow struct {
	ID          int
	Date        string
	Description string
	Amount      string
}

// TransactionsMarkdown renders transactions as a markdown table.
func TransactionsMarkdown(txs []finance.Transaction) string {
	data := struct {
		Rows  []transactionRow
		Count int
	}{Count: len(txs)}
	for _, tx := range txs {
		data.Rows = append(data.Rows, transactionRow{
			ID:          tx.ID,
			Date:        tx.Date.Short(),
			Description: strings.ReplaceAll(tx.Description, "|", `\|`),
			Amount:      tx.Money().String(),
		})
	}
	partials := map[string]string{
		"transaction_row": "transaction_row.md",
	}
	return renderTemplate("transactions", "transactions.md", partials, data)
}

// BalanceMarkdown renders the balance as a markdown paragraph.
func BalanceMarkdown(m finance.Money) string {
	return renderTemplate("balance", "balance.md", nil, m)
}

// RangeBalance renders the sum of the transactions of a range of dates in a box.
func RangeBalance(r date.Range, m finance.Money) string {
	line := "| Balance " + r.String() + ": " + m.Plain() + "        |"
	rule := strings.Repeat("=", max(len(balanceRule), len(line)))
	return "\n" + rule + "\n" + line + "\n" + rule + "\n"
}
