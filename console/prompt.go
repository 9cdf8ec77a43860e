// Package console implements the interactive menu of the ledger: it reads
// choices and values from an input stream and prints to an output stream.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrTooManyAttempts is returned by Ask when the input was invalid too many times.
var ErrTooManyAttempts = errors.New("too many invalid attempts")

// Prompter prints prompts and reads the answers, one per line.
type Prompter struct {
	r *bufio.Reader
	w io.Writer
	// MaxAttempts is the number of invalid answers Ask accepts before giving
	// up. Zero means Ask asks again until the answer is valid.
	MaxAttempts int
}

// NewPrompter creates a Prompter reading answers from r and writing prompts to w.
func NewPrompter(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{r: bufio.NewReader(r), w: w}
}

// Line prints the label and returns the next input line without its line
// break. It returns io.EOF when the input is exhausted.
func (p *Prompter) Line(label string) (string, error) {
	fmt.Fprint(p.w, label)
	line, err := p.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Ask prompts for a value until parse accepts it, printing the parse error
// after every invalid answer.
func Ask[T any](p *Prompter, label string, parse func(string) (T, error)) (T, error) {
	var zero T
	for attempt := 1; ; attempt++ {
		line, err := p.Line(label)
		if err != nil {
			return zero, err
		}
		v, err := parse(line)
		if err == nil {
			return v, nil
		}
		fmt.Fprintf(p.w, "%v. Please try again.\n", err)
		if p.MaxAttempts > 0 && attempt >= p.MaxAttempts {
			return zero, fmt.Errorf("%w: %w", ErrTooManyAttempts, err)
		}
	}
}
