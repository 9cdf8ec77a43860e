package finance

import (
	"fmt"
	"slices"

	"github.com/etnz/finance/date"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency of a ledger when none is configured.
const DefaultCurrency = "UAH"

// Ledger represents the list of transactions, in insertion order.
//
// A Ledger opened with [OpenLedger] is bound to a file, and every change is
// followed by a full rewrite of that file.
type Ledger struct {
	transactions []Transaction
	nextID       int    // ID of the next added transaction
	currency     string // currency of the next added transactions
	path         string // empty for an in-memory ledger
	skipped      int    // lines that were not records on load
}

// NewLedger creates an empty in-memory ledger.
func NewLedger(currency string) *Ledger {
	return &Ledger{
		transactions: make([]Transaction, 0),
		nextID:       1,
		currency:     currency,
	}
}

// Path returns the file the ledger is saved to, or "" for an in-memory ledger.
func (l *Ledger) Path() string { return l.path }

// Currency returns the currency applied to newly added transactions.
func (l *Ledger) Currency() string { return l.currency }

// SetCurrency changes the currency applied to transactions added from now
// on. Existing transactions keep their own currency.
func (l *Ledger) SetCurrency(label string) error {
	cur, err := ParseCurrency(label)
	if err != nil {
		return err
	}
	l.currency = cur
	return nil
}

// NextID returns the ID that the next added transaction will get.
func (l *Ledger) NextID() int { return l.nextID }

// Skipped returns the number of lines that were dropped on load because they
// were not records.
func (l *Ledger) Skipped() int { return l.skipped }

// Len returns the number of transactions.
func (l *Ledger) Len() int { return len(l.transactions) }

// Transactions returns a copy of all transactions in insertion order.
func (l *Ledger) Transactions() []Transaction { return slices.Clone(l.transactions) }

// Transaction returns the first transaction with this id.
func (l *Ledger) Transaction(id int) (Transaction, bool) {
	i := l.index(id)
	if i < 0 {
		return Transaction{}, false
	}
	return l.transactions[i], true
}

func (l *Ledger) index(id int) int {
	return slices.IndexFunc(l.transactions, func(tx Transaction) bool { return tx.ID == id })
}

// Between returns the transactions dated within r, in insertion order.
func (l *Ledger) Between(r date.Range) []Transaction {
	var txs []Transaction
	for _, tx := range l.transactions {
		if r.Contains(tx.Date) {
			txs = append(txs, tx)
		}
	}
	return txs
}

// Balance returns the sum of all amounts, whatever their currency.
func (l *Ledger) Balance() decimal.Decimal { return Sum(l.transactions) }

// Sum returns the sum of the amounts of txs.
func Sum(txs []Transaction) decimal.Decimal {
	sum := decimal.Zero
	for _, tx := range txs {
		sum = sum.Add(tx.Amount)
	}
	return sum
}

// BalanceMoney returns the balance labelled with the current currency.
func (l *Ledger) BalanceMoney() Money { return M(l.Balance(), l.currency) }

// Add records a new transaction with the next ID and the current currency,
// and saves the ledger.
//
// If saving fails the transaction is kept in memory and the returned error
// wraps [ErrPersist].
func (l *Ledger) Add(amount decimal.Decimal, on date.Date, description string) (Transaction, error) {
	if err := ValidateDescription(description); err != nil {
		return Transaction{}, err
	}
	tx := NewTransaction(l.nextID, amount, on, description, l.currency)
	l.nextID++
	l.transactions = append(l.transactions, tx)
	return tx, l.Save()
}

// Delete removes the first transaction with this id and saves the ledger.
// The next ID is never changed.
//
// It returns an error wrapping [ErrNotFound] if there is no such
// transaction, and [ErrPersist] if saving fails (the transaction is removed
// from memory anyway).
func (l *Ledger) Delete(id int) (Transaction, error) {
	i := l.index(id)
	if i < 0 {
		return Transaction{}, fmt.Errorf("%w: ID %d", ErrNotFound, id)
	}
	tx := l.transactions[i]
	l.transactions = slices.Delete(l.transactions, i, i+1)
	return tx, l.Save()
}
