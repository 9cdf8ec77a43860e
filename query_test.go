package finance

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLedger_Query(t *testing.T) {
	l := NewLedger("USD")
	l.transactions = []Transaction{
		tx(1, "100", "01.01.2024", "Salary", "USD"),
		tx(2, "-20", "01.02.2024", "Lunch", "USD"),
		tx(4, "-5.5", "01.03.2024", "Coffee", "EUR"),
	}

	tests := []struct {
		path string
		want any
	}{
		{"$[*].description", []any{"Salary", "Lunch", "Coffee"}},
		{"$[1].id", float64(2)},
		{"$[2].date", "01.03.2024"},
		{"$[?(@.amount < 0)].description", []any{"Lunch", "Coffee"}},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := l.Query(tt.path)
			if err != nil {
				t.Fatalf("Query(%q) unexpected error: %v", tt.path, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Query(%q) mismatch (-want +got):\n%s", tt.path, diff)
			}
		})
	}
}

func TestLedger_QueryInvalid(t *testing.T) {
	l := NewLedger("USD")
	if _, err := l.Query("$[?("); err == nil {
		t.Error("Query() expected an error for an invalid expression")
	}
}
