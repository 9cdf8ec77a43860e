package finance

import (
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
)

// Query evaluates a JSONPath expression against the ledger seen as a JSON
// array of transactions, e.g. "$[?(@.amount < 0)].description".
//
// Amounts are JSON numbers, so the result may lose precision on very large
// or very precise amounts.
func (l *Ledger) Query(path string) (any, error) {
	raw, err := json.Marshal(l.transactions)
	if err != nil {
		return nil, fmt.Errorf("could not marshal ledger: %w", err)
	}
	var jobj any
	if err := json.Unmarshal(raw, &jobj); err != nil {
		return nil, fmt.Errorf("could not unmarshal ledger: %w", err)
	}
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", path, err)
	}
	return jval, nil
}
