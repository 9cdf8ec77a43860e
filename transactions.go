package finance

import (
	"github.com/etnz/finance/date"
	"github.com/shopspring/decimal"
)

// Transaction is a single ledger entry.
//
// Negative amounts are expenses, positive ones are income. The currency is a
// free-form label copied from the ledger when the transaction is added.
type Transaction struct {
	ID          int
	Amount      decimal.Decimal
	Date        date.Date
	Description string
	Currency    string
}

// NewTransaction creates a transaction. It does not validate its fields, use
// [Ledger.Add] to record a new transaction.
func NewTransaction(id int, amount decimal.Decimal, on date.Date, description, currency string) Transaction {
	return Transaction{
		ID:          id,
		Amount:      amount,
		Date:        on,
		Description: description,
		Currency:    currency,
	}
}

// Money returns the transaction amount labelled with its currency.
func (tx Transaction) Money() Money { return M(tx.Amount, tx.Currency) }

// Equal reports whether tx and o have the same fields. Amounts are compared by value.
func (tx Transaction) Equal(o Transaction) bool {
	return tx.ID == o.ID &&
		tx.Amount.Equal(o.Amount) &&
		tx.Date == o.Date &&
		tx.Description == o.Description &&
		tx.Currency == o.Currency
}

// MarshalJSON writes the transaction as a JSON object with a stable key order.
func (tx Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", tx.ID)
	w.Append("amount", tx.Amount)
	w.Append("date", tx.Date)
	w.Append("description", tx.Description)
	w.Optional("currency", tx.Currency)
	return w.MarshalJSON()
}
