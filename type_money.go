package finance

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float64 | int | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// Money represents a monetary value labelled with a currency code.
//
// The currency is a label only, no conversion ever happens.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

func M[T float64 | int | int64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

func (m Money) Currency() string         { return m.cur }
func (m Money) Decimal() decimal.Decimal { return m.value }
func (m Money) Equal(n Money) bool       { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsNegative() bool         { return m.value.IsNegative() }

// String returns the localized representation of the money value (e.g. "$1,250.50")
// when the currency is a known ISO code, and the plain representation otherwise.
func (m Money) String() string {
	cur := money.GetCurrency(m.cur)
	if cur == nil {
		return m.Plain()
	}
	dec := m.value.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// Plain returns the amount in record notation followed by the currency code.
func (m Money) Plain() string {
	if m.cur == "" {
		return FormatAmount(m.value)
	}
	return FormatAmount(m.value) + " " + m.cur
}
