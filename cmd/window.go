package cmd

import (
	"flag"
	"fmt"

	"github.com/jmcampos/networth"
)

// windowFlags holds the -from/-to pair shared by the reporting commands.
type windowFlags struct {
	from string
	to   string
}

func (w *windowFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&w.from, "from", "", "Start of the window (YYYY-MM-DD), oldest record when empty.")
	f.StringVar(&w.to, "to", "", "End of the window (YYYY-MM-DD), today when empty.")
}

// window resolves the flag pair against the ledger's extent.
func (w *windowFlags) window(l *networth.Ledger) (start, end networth.Date, err error) {
	start = l.OldestDate()
	end = networth.Today()
	if w.from != "" {
		if start, err = networth.ParseDate(w.from); err != nil {
			return start, end, fmt.Errorf("parsing -from: %w", err)
		}
	}
	if w.to != "" {
		if end, err = networth.ParseDate(w.to); err != nil {
			return start, end, fmt.Errorf("parsing -to: %w", err)
		}
	}
	if start.IsZero() {
		return start, end, fmt.Errorf("no records in the ledger")
	}
	return start, end, nil
}

// normalizedPoints converts the ledger's raw records to USD.
func normalizedPoints(l *networth.Ledger) ([]networth.NormalizedPoint, error) {
	var records []networth.ValueRecord
	for rec := range l.All() {
		records = append(records, rec)
	}
	return networth.NormalizeRecords(records, Rates().Rate)
}
