package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/google/subcommands"

	"github.com/jmcampos/networth"
	"github.com/jmcampos/networth/renderer"
)

type relativeCmd struct {
	windowFlags
	reference string
	accounts  string
}

func (*relativeCmd) Name() string     { return "relative" }
func (*relativeCmd) Synopsis() string { return "compare account returns against a reference account" }
func (*relativeCmd) Usage() string {
	return `nwt relative -r <account> [-a <accounts>] [-from <date>] [-to <date>]

  Shows each account's cumulative return minus the reference account's
  cumulative return over the window. The reference itself plots flat at
  zero.

Usage Examples:
# Everything against the brokerage account.
$ nwt relative -r Brokerage

# Two accounts against cash, over a year.
$ nwt relative -r Cash -a Brokerage,Crypto -from 2025-01-01 -to 2025-12-31

`
}

func (p *relativeCmd) SetFlags(f *flag.FlagSet) {
	p.windowFlags.SetFlags(f)
	f.StringVar(&p.reference, "r", "", "Reference account.")
	f.StringVar(&p.accounts, "a", "", "Comma separated accounts to compare, all when empty.")
}

func (p *relativeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.reference == "" {
		fmt.Fprintln(os.Stderr, "Error: -r is required")
		return subcommands.ExitUsageError
	}

	store, _, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	ledger := store.Ledger()
	start, end, err := p.window(ledger)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	points, err := normalizedPoints(ledger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error converting values: %v\n", err)
		return subcommands.ExitFailure
	}

	accounts := slices.Collect(ledger.Accounts())
	if p.accounts != "" {
		accounts = strings.Split(p.accounts, ",")
	}

	curves := networth.RelativePerformance(points, accounts, p.reference, start, end)
	if len(curves) == 0 {
		fmt.Fprintf(os.Stderr, "No observations for reference %q in the window\n", p.reference)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.RelativeMarkdown(p.reference, curves))
	return subcommands.ExitSuccess
}
