package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/etnz/finance"
	"github.com/etnz/finance/date"
	"github.com/etnz/finance/renderer"
	"github.com/shopspring/decimal"
)

const menu = `
Menu:

1. Add transaction
2. List transactions
3. Show balance
4. Set currency
5. Delete transaction
6. Exit

`

// Menu is the interactive menu over a ledger.
type Menu struct {
	ledger *finance.Ledger
	p      *Prompter
	w      io.Writer
}

// NewMenu creates a menu on ledger, reading the user's input from r and printing to w.
func NewMenu(ledger *finance.Ledger, r io.Reader, w io.Writer) *Menu {
	return &Menu{
		ledger: ledger,
		p:      NewPrompter(r, w),
		w:      w,
	}
}

// Prompter returns the prompter used by the menu, to change its retry policy.
func (m *Menu) Prompter() *Prompter { return m.p }

// Run presents the menu after every action until the user exits, the input
// is exhausted or ctx is done. Invalid input and persistence errors are
// reported to the user and do not stop the menu.
func (m *Menu) Run(ctx context.Context) error {
	for ctx.Err() == nil {
		fmt.Fprint(m.w, menu)
		choice, err := m.p.Line("Choose an action: ")
		if err != nil {
			return ignoreEOF(err)
		}

		switch strings.TrimSpace(choice) {
		case "1":
			err = m.add()
		case "2":
			m.list()
		case "3":
			m.balance()
		case "4":
			err = m.setCurrency()
		case "5":
			err = m.delete()
		case "6":
			return nil
		default:
			fmt.Fprintln(m.w, "Invalid choice. Try again.")
		}

		if errors.Is(err, ErrTooManyAttempts) {
			fmt.Fprintln(m.w, "Action cancelled.")
			continue
		}
		if err != nil {
			return ignoreEOF(err)
		}
	}
	return nil
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (m *Menu) add() error {
	amount, err := Ask(m.p, "Enter amount: ", finance.ParseAmount)
	if err != nil {
		return err
	}
	on, err := Ask(m.p, "Enter date (MM.DD.YYYY): ", finance.ParseDate)
	if err != nil {
		return err
	}
	description, err := Ask(m.p, "Enter description: ", func(s string) (string, error) {
		return s, finance.ValidateDescription(s)
	})
	if err != nil {
		return err
	}
	m.record(amount, on, description)
	return nil
}

func (m *Menu) record(amount decimal.Decimal, on date.Date, description string) {
	tx, err := m.ledger.Add(amount, on, description)
	if err != nil {
		fmt.Fprintf(m.w, "An error occurred while saving the transaction: %v\n", err)
		return
	}
	fmt.Fprintf(m.w, "Transaction with ID %d added.\n", tx.ID)
}

func (m *Menu) list() {
	if m.ledger.Len() == 0 {
		fmt.Fprintln(m.w, "No transactions.")
		return
	}
	fmt.Fprint(m.w, renderer.Transactions(m.ledger.Transactions()))
}

func (m *Menu) balance() {
	fmt.Fprint(m.w, renderer.Balance(m.ledger.BalanceMoney()))
}

func (m *Menu) setCurrency() error {
	label, err := m.p.Line("Enter the new currency (e.g., USD, EUR, UAH): ")
	if err != nil {
		return err
	}
	if err := m.ledger.SetCurrency(label); err != nil {
		fmt.Fprintf(m.w, "%v.\n", err)
		return nil
	}
	fmt.Fprintf(m.w, "Currency set to %s.\n", m.ledger.Currency())
	return nil
}

func (m *Menu) delete() error {
	id, err := Ask(m.p, "Enter the ID of the transaction to delete: ", finance.ParseID)
	if err != nil {
		return err
	}
	_, err = m.ledger.Delete(id)
	switch {
	case errors.Is(err, finance.ErrNotFound):
		fmt.Fprintln(m.w, "Transaction not found.")
	case err != nil:
		fmt.Fprintf(m.w, "An error occurred while saving the ledger: %v\n", err)
	default:
		fmt.Fprintf(m.w, "Transaction with ID %d deleted.\n", id)
	}
	return nil
}
