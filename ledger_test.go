package finance

import (
	"errors"
	"testing"

	"github.com/etnz/finance/date"
	"github.com/google/go-cmp/cmp"
)

// add is a test helper that adds a transaction and fails the test on error.
func add(t *testing.T, l *Ledger, amount, on, description string) Transaction {
	t.Helper()
	tx, err := l.Add(D(amount), date.MustParse(on), description)
	if err != nil {
		t.Fatalf("Add(%s, %s, %q) unexpected error: %v", amount, on, description, err)
	}
	return tx
}

func TestLedger_AddFirst(t *testing.T) {
	l := NewLedger("USD")
	got := add(t, l, "100.00", "01.01.2024", "Salary")

	want := tx(1, "100.00", "01.01.2024", "Salary", "USD")
	if diff := cmp.Diff(want, got, txOpts); diff != "" {
		t.Errorf("Add() mismatch (-want +got):\n%s", diff)
	}
	if l.Len() != 1 {
		t.Errorf("Len() = %d, want 1", l.Len())
	}
	if !l.Balance().Equal(D("100")) {
		t.Errorf("Balance() = %v, want 100", l.Balance())
	}
}

func TestLedger_IDsStrictlyIncreasing(t *testing.T) {
	l := NewLedger("USD")
	prev := 0
	for i := 0; i < 20; i++ {
		tx := add(t, l, "1", "01.01.2024", "")
		if tx.ID <= prev {
			t.Fatalf("Add() #%d got ID %d, want greater than %d", i, tx.ID, prev)
		}
		prev = tx.ID
		// Deleting does not make IDs reusable.
		if i%3 == 0 {
			if _, err := l.Delete(tx.ID); err != nil {
				t.Fatalf("Delete(%d) unexpected error: %v", tx.ID, err)
			}
		}
	}
}

func TestLedger_DeleteAndBalance(t *testing.T) {
	l := NewLedger("USD")
	add(t, l, "50", "01.01.2024", "Gift")
	add(t, l, "-20", "01.02.2024", "Lunch")

	deleted, err := l.Delete(1)
	if err != nil {
		t.Fatalf("Delete(1) unexpected error: %v", err)
	}
	if deleted.ID != 1 {
		t.Errorf("Delete(1) returned ID %d", deleted.ID)
	}

	if !l.Balance().Equal(D("-20")) {
		t.Errorf("Balance() = %v, want -20", l.Balance())
	}
	want := []Transaction{tx(2, "-20", "01.02.2024", "Lunch", "USD")}
	if diff := cmp.Diff(want, l.Transactions(), txOpts); diff != "" {
		t.Errorf("Transactions() mismatch (-want +got):\n%s", diff)
	}
	if l.NextID() != 3 {
		t.Errorf("NextID() = %d, want 3", l.NextID())
	}
}

func TestLedger_DeleteNotFound(t *testing.T) {
	l := NewLedger("USD")
	add(t, l, "50", "01.01.2024", "Gift")
	before := l.Transactions()

	_, err := l.Delete(42)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Delete(42) error = %v, want ErrNotFound", err)
	}
	if diff := cmp.Diff(before, l.Transactions(), txOpts); diff != "" {
		t.Errorf("Delete(42) changed transactions (-before +after):\n%s", diff)
	}
	if l.NextID() != 2 {
		t.Errorf("NextID() = %d, want 2", l.NextID())
	}
}

func TestLedger_BalanceIgnoresCurrency(t *testing.T) {
	l := NewLedger("USD")
	add(t, l, "10.25", "01.01.2024", "a")
	if err := l.SetCurrency("eur"); err != nil {
		t.Fatalf("SetCurrency() unexpected error: %v", err)
	}
	add(t, l, "-0.25", "01.02.2024", "b")

	if !l.Balance().Equal(D("10")) {
		t.Errorf("Balance() = %v, want 10", l.Balance())
	}
	if got := l.BalanceMoney(); !got.Equal(M(D("10"), "EUR")) {
		t.Errorf("BalanceMoney() = %v, want 10 EUR", got.Plain())
	}
}

func TestLedger_SetCurrencyIsNotRetroactive(t *testing.T) {
	l := NewLedger(DefaultCurrency)
	add(t, l, "1", "01.01.2024", "a")
	if err := l.SetCurrency(" usd"); err != nil {
		t.Fatalf("SetCurrency() unexpected error: %v", err)
	}
	add(t, l, "1", "01.01.2024", "b")

	if l.Currency() != "USD" {
		t.Errorf("Currency() = %q, want USD", l.Currency())
	}
	txs := l.Transactions()
	if txs[0].Currency != DefaultCurrency || txs[1].Currency != "USD" {
		t.Errorf("currencies = %q, %q, want %q, USD", txs[0].Currency, txs[1].Currency, DefaultCurrency)
	}
	if err := l.SetCurrency(""); !errors.Is(err, ErrInvalidCurrency) {
		t.Errorf("SetCurrency(\"\") error = %v, want ErrInvalidCurrency", err)
	}
	if l.Currency() != "USD" {
		t.Errorf("Currency() = %q after invalid SetCurrency, want USD", l.Currency())
	}
}

func TestLedger_AddInvalidDescription(t *testing.T) {
	l := NewLedger("USD")
	_, err := l.Add(D("1"), date.MustParse("01.01.2024"), "Milk, eggs")
	if !errors.Is(err, ErrInvalidDescription) {
		t.Fatalf("Add() error = %v, want ErrInvalidDescription", err)
	}
	if l.Len() != 0 || l.NextID() != 1 {
		t.Errorf("Add() changed the ledger: Len() = %d, NextID() = %d", l.Len(), l.NextID())
	}
}

func TestLedger_TransactionsIsACopy(t *testing.T) {
	l := NewLedger("USD")
	add(t, l, "1", "01.01.2024", "a")
	txs := l.Transactions()
	txs[0].Description = "changed"
	if got, _ := l.Transaction(1); got.Description != "a" {
		t.Errorf("Transaction(1).Description = %q, want %q", got.Description, "a")
	}
	if _, ok := l.Transaction(2); ok {
		t.Error("Transaction(2) found, want not found")
	}
}

func TestLedger_Between(t *testing.T) {
	l := NewLedger("USD")
	add(t, l, "100.00", "02.28.2024", "Salary")
	add(t, l, "-20.00", "03.01.2024", "Lunch")
	add(t, l, "-5.50", "03.31.2024", "Coffee")
	add(t, l, "50", "04.01.2024", "Gift")

	march := date.NewRange(dateOf("03.15.2024"), date.Monthly)
	got := l.Between(march)

	want := []Transaction{
		tx(2, "-20.00", "03.01.2024", "Lunch", "USD"),
		tx(3, "-5.50", "03.31.2024", "Coffee", "USD"),
	}
	if diff := cmp.Diff(want, got, txOpts); diff != "" {
		t.Errorf("Between() mismatch (-want +got):\n%s", diff)
	}
	if sum := Sum(got); !sum.Equal(D("-25.50")) {
		t.Errorf("Sum() = %v, want -25.50", sum)
	}
	if got := l.Between(date.NewRange(dateOf("01.15.2024"), date.Monthly)); len(got) != 0 {
		t.Errorf("Between(January) = %v, want none", got)
	}
}
