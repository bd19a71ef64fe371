package cmd

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/jmcampos/networth"
)

type bulkCmd struct {
	file string
}

func (*bulkCmd) Name() string     { return "bulk" }
func (*bulkCmd) Synopsis() string { return "import account values from a CSV file" }
func (*bulkCmd) Usage() string {
	return `nwt bulk -f <file.csv>

  Imports values from a CSV with columns date,account,currency,value (with
  a header row). Rows are applied in file order as individual writes, so
  carry-forward and the income/expense ledger behave as if each row had
  been entered by hand.

Usage Examples:
# Import a broker export.
$ nwt bulk -f export.csv

`
}

func (p *bulkCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.file, "f", "", "CSV file to import (use - for stdin).")
}

func (p *bulkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var in io.Reader
	switch p.file {
	case "":
		fmt.Fprintln(os.Stderr, "Error: -f is required")
		return subcommands.ExitUsageError
	case "-":
		in = os.Stdin
	default:
		file, err := os.Open(p.file)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		in = file
	}

	records, err := readCSVRecords(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", p.file, err)
		return subcommands.ExitFailure
	}

	store, _, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	if err := store.Bulk(records); err != nil {
		fmt.Fprintf(os.Stderr, "Error importing: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Imported %d records from %s\n", len(records), p.file)
	return subcommands.ExitSuccess
}

// readCSVRecords parses date,account,currency,value rows, skipping the
// header.
func readCSVRecords(in io.Reader) ([]networth.ValueRecord, error) {
	cr := csv.NewReader(in)
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("no data rows")
	}
	var records []networth.ValueRecord
	for i, row := range rows[1:] {
		if len(row) != 4 {
			return nil, fmt.Errorf("row %d: expected 4 columns, got %d", i+2, len(row))
		}
		on, err := networth.ParseDate(row[0])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		value, err := decimal.NewFromString(row[3])
		if err != nil {
			return nil, fmt.Errorf("row %d: value %q: %w", i+2, row[3], err)
		}
		records = append(records, networth.ValueRecord{
			Date:     on,
			Account:  row[1],
			Currency: row[2],
			Amount:   value,
		})
	}
	return records, nil
}
