package finance

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// OpenLedger loads the ledger stored in the file at path.
//
// A missing file is an empty ledger. If the file cannot be read or holds an
// invalid record, the returned ledger contains the transactions read before
// the failure, together with the error. In every case the ledger is bound to
// path and uses currency for new transactions.
func OpenLedger(path, currency string) (*Ledger, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Debug("ledger file does not exist, starting empty", "path", path)
		return bind(NewLedger(currency), path, currency), nil
	}
	if err != nil {
		return bind(NewLedger(currency), path, currency), fmt.Errorf("could not open ledger file %q: %w", path, err)
	}
	defer f.Close()

	ledger, err := DecodeLedger(f)
	bind(ledger, path, currency)
	if err != nil {
		return ledger, fmt.Errorf("could not decode ledger file %q: %w", path, err)
	}
	log.Debug("ledger loaded", "path", path, "transactions", ledger.Len(), "skipped", ledger.Skipped())
	return ledger, nil
}

func bind(l *Ledger, path, currency string) *Ledger {
	l.path = path
	l.currency = currency
	return l
}

// Save rewrites the whole ledger file. It does nothing for an in-memory ledger.
// Errors wrap [ErrPersist].
func (l *Ledger) Save() (err error) {
	if l.path == "" {
		return nil
	}
	// Ensure the directory for the ledger file exists.
	if err := os.MkdirAll(filepath.Dir(l.path), 0755); err != nil {
		return fmt.Errorf("%w: could not create directory for ledger %q: %w", ErrPersist, l.path, err)
	}

	file, err := os.Create(l.path)
	if err != nil {
		return fmt.Errorf("%w: error opening ledger file %q for writing: %w", ErrPersist, l.path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: error closing ledger file %q: %w", ErrPersist, l.path, cerr)
		}
	}()

	if err := EncodeLedger(file, l); err != nil {
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	return nil
}
