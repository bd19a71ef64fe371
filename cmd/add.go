package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/jmcampos/networth"
)

type addCmd struct {
	date     string
	currency string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record an account value for a date" }
func (*addCmd) Usage() string {
	return `nwt add [-d <date>] [-c <currency>] <account> <value>

  Records the value of an account on a date (today by default). The first
  entry for a new date carries every other account's latest value forward,
  so any date can be reported in full. The daily income/expense ledger is
  updated as part of the same write.

Usage Examples:
# Record today's checking balance.
$ nwt add Checking 2450.10

# Record a euro savings value for a past date.
$ nwt add -d 2024-03-01 -c EUR Savings 12000

`
}

func (p *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.date, "d", networth.Today().String(), "Date of the value (YYYY-MM-DD).")
	f.StringVar(&p.currency, "c", "USD", "Currency of the value.")
}

func (p *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: expected <account> and <value> arguments")
		return subcommands.ExitUsageError
	}
	on, err := networth.ParseDate(p.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitFailure
	}
	value, err := decimal.NewFromString(f.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing value %q: %v\n", f.Arg(1), err)
		return subcommands.ExitFailure
	}

	store, _, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	if err := store.Add(on, f.Arg(0), p.currency, value); err != nil {
		fmt.Fprintf(os.Stderr, "Error recording value: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded %s = %s %s on %s\n", f.Arg(0), value, p.currency, on)
	return subcommands.ExitSuccess
}
