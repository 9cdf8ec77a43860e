package cmd

import (
	"flag"
	"fmt"

	"github.com/etnz/finance"
	"github.com/etnz/finance/date"
)

// rangeFlags selects an optional range of dates: a standard period around a
// day, or a custom range.
type rangeFlags struct {
	period string
	start  string
	day    string
}

func (r *rangeFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&r.period, "p", "", "Only the transactions of a period (day, week, month, quarter, year) containing -d.")
	f.StringVar(&r.start, "s", "", "Only the transactions from this date (MM.DD.YYYY) to -d. Overrides -p.")
	f.StringVar(&r.day, "d", date.Today().String(), "Reference date (MM.DD.YYYY) for -p and -s.")
}

// Range returns the selected range, ok is false when no range is selected.
func (r *rangeFlags) Range() (rng date.Range, ok bool, err error) {
	if r.period == "" && r.start == "" {
		return date.Range{}, false, nil
	}
	day, err := finance.ParseDate(r.day)
	if err != nil {
		return date.Range{}, false, err
	}
	if r.start != "" {
		start, err := finance.ParseDate(r.start)
		if err != nil {
			return date.Range{}, false, err
		}
		if start.After(day) {
			return date.Range{}, false, fmt.Errorf("start date %s is after %s", start, day)
		}
		return date.Range{From: start, To: day}, true, nil
	}
	period, err := date.ParsePeriod(r.period)
	if err != nil {
		return date.Range{}, false, err
	}
	return date.NewRange(day, period), true, nil
}
