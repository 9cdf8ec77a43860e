package finance

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// fieldSeparator separates the fields of a record. It is not escaped, so it
// cannot appear in any field.
const fieldSeparator = ","

// recordFields is the number of fields of a record: id, amount, date, description, currency.
const recordFields = 5

// FormatAmount formats an amount in invariant notation: '.' as decimal
// separator, no grouping, and the scale of the value preserved ("125.50"
// stays "125.50").
func FormatAmount(d decimal.Decimal) string {
	if exp := d.Exponent(); exp < 0 {
		return d.StringFixed(-exp)
	}
	return d.StringFixed(0)
}

// EncodeTransaction writes a single transaction as a record line:
//
//	<id>,<amount>,<MM.dd.yyyy>,<description>,<currency>
func EncodeTransaction(w io.Writer, tx Transaction) error {
	line := strings.Join([]string{
		fmt.Sprint(tx.ID),
		FormatAmount(tx.Amount),
		tx.Date.String(),
		tx.Description,
		tx.Currency,
	}, fieldSeparator)
	if _, err := io.WriteString(w, line+"\n"); err != nil {
		return fmt.Errorf("failed to write transaction %d: %w", tx.ID, err)
	}
	return nil
}

// DecodeTransaction decodes a single record line.
//
// A line that does not have exactly five fields is not a record: ok is false
// and err is nil. A record with an invalid id, amount or date returns an error.
func DecodeTransaction(line string) (tx Transaction, ok bool, err error) {
	fields := strings.Split(line, fieldSeparator)
	if len(fields) != recordFields {
		return Transaction{}, false, nil
	}
	id, err := ParseID(fields[0])
	if err != nil {
		return Transaction{}, false, fmt.Errorf("invalid record %q: %w", line, err)
	}
	amount, err := ParseAmount(fields[1])
	if err != nil {
		return Transaction{}, false, fmt.Errorf("invalid record %q: %w", line, err)
	}
	on, err := ParseDate(fields[2])
	if err != nil {
		return Transaction{}, false, fmt.Errorf("invalid record %q: %w", line, err)
	}
	return NewTransaction(id, amount, on, fields[3], fields[4]), true, nil
}

// Decoder reads transactions from a stream of record lines.
type Decoder struct {
	scanner *bufio.Scanner
	line    int
	skipped int
}

// NewDecoder returns a Decoder reading from r. Records have no length limit.
func NewDecoder(r io.Reader) *Decoder {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
	return &Decoder{scanner: scanner}
}

// Decode returns the next transaction in the stream, or io.EOF when there is
// none left. Lines that are not records are skipped.
func (d *Decoder) Decode() (Transaction, error) {
	for d.scanner.Scan() {
		d.line++
		text := d.scanner.Text()
		tx, ok, err := DecodeTransaction(text)
		if err != nil {
			return Transaction{}, fmt.Errorf("line %d: %w", d.line, err)
		}
		if !ok {
			d.skipped++
			log.Debug("skipping malformed record", "line", d.line, "record", text)
			continue
		}
		return tx, nil
	}
	if err := d.scanner.Err(); err != nil {
		return Transaction{}, fmt.Errorf("error reading from input: %w", err)
	}
	return Transaction{}, io.EOF
}

// Skipped returns the number of lines skipped so far because they were not records.
func (d *Decoder) Skipped() int { return d.skipped }

// DecodeLedger decodes all the records from r into a new ledger, in file order.
//
// Decoding stops at the first record with an invalid field: the ledger
// holding the transactions decoded so far is returned along with the error.
// The next ID is computed from the last record only when the whole stream
// was read.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := NewLedger(DefaultCurrency)
	dec := NewDecoder(r)
	for {
		tx, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			ledger.skipped = dec.Skipped()
			return ledger, err
		}
		ledger.transactions = append(ledger.transactions, tx)
	}
	ledger.skipped = dec.Skipped()
	if n := len(ledger.transactions); n > 0 {
		// The counter follows the last record, not the highest ID.
		ledger.nextID = ledger.transactions[n-1].ID + 1
	}
	return ledger, nil
}

// EncodeLedger writes all the transactions of the ledger to w, in ledger order.
func EncodeLedger(w io.Writer, ledger *Ledger) error {
	for _, tx := range ledger.transactions {
		if err := EncodeTransaction(w, tx); err != nil {
			return err
		}
	}
	return nil
}
