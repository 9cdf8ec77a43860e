package finance

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/etnz/finance/date"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound           = errors.New("transaction not found")
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrInvalidDate        = errors.New("invalid date")
	ErrInvalidID          = errors.New("invalid transaction ID")
	ErrInvalidCurrency    = errors.New("invalid currency")
	ErrInvalidDescription = errors.New("invalid description")
	ErrPersist            = errors.New("could not persist ledger")
)

// ParseAmount parses a decimal amount in invariant notation: an optional
// sign, digits and at most one '.'. Surrounding spaces are ignored.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if !isPlainDecimal(s) {
		return decimal.Zero, fmt.Errorf("%w %q: want a decimal number like -12.50", ErrInvalidAmount, s)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w %q: %w", ErrInvalidAmount, s, err)
	}
	return d, nil
}

// isPlainDecimal reports whether s is made of an optional sign, digits and at
// most one '.', with at least one digit. Exponents are not allowed.
func isPlainDecimal(s string) bool {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "-"), "+")
	digits, dots := 0, 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '.':
			dots++
		default:
			return false
		}
	}
	return digits > 0 && dots <= 1
}

// ParseDate parses a date in MM.DD.YYYY format.
func ParseDate(s string) (date.Date, error) {
	d, err := date.Parse(strings.TrimSpace(s))
	if err != nil {
		return date.Date{}, fmt.Errorf("%w: %w", ErrInvalidDate, err)
	}
	return d, nil
}

// ParseID parses a transaction ID.
func ParseID(s string) (int, error) {
	s = strings.TrimSpace(s)
	id, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w %q: number is too large", ErrInvalidID, s)
		}
		return 0, fmt.Errorf("%w %q: want an integer", ErrInvalidID, s)
	}
	return int(id), nil
}

// ParseCurrency normalizes a currency label: trimmed and upper-cased.
// Labels are not checked against any currency list.
func ParseCurrency(s string) (string, error) {
	cur := strings.ToUpper(strings.TrimSpace(s))
	if cur == "" {
		return "", fmt.Errorf("%w: empty currency code", ErrInvalidCurrency)
	}
	if strings.ContainsAny(cur, fieldSeparator+"\r\n") {
		return "", fmt.Errorf("%w %q: must not contain %q or line breaks", ErrInvalidCurrency, cur, fieldSeparator)
	}
	return cur, nil
}

// ValidateDescription checks that a description can be stored in a record.
// An empty description is valid.
func ValidateDescription(s string) error {
	if strings.ContainsAny(s, fieldSeparator+"\r\n") {
		return fmt.Errorf("%w %q: must not contain %q or line breaks", ErrInvalidDescription, s, fieldSeparator)
	}
	return nil
}
