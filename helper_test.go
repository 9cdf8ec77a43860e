package finance

import (
	"github.com/etnz/finance/date"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

// txOpts compares transactions field by field, amounts by value.
var txOpts = cmp.Options{
	cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) }),
	cmp.Comparer(func(a, b date.Date) bool { return a == b }),
}

// D is a helper for test to create a decimal from a const.
func D(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// tx is a helper for test to create a transaction from consts.
func tx(id int, amount, on, description, currency string) Transaction {
	return NewTransaction(id, D(amount), date.MustParse(on), description, currency)
}

func dateOf(s string) date.Date { return date.MustParse(s) }
