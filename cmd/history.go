package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/jmcampos/networth"
	"github.com/jmcampos/networth/renderer"
)

type historyCmd struct {
	windowFlags
	account string
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "show the USD value over business days" }
func (*historyCmd) Usage() string {
	return `nwt history [-a <account>] [-from <date>] [-to <date>]

  Shows the daily USD value of one account, or of the whole portfolio when
  no account is given. Values are aligned to business days and carried
  forward between observations.

Usage Examples:
# Whole portfolio this year.
$ nwt history -from 2026-01-01

# One account over a quarter.
$ nwt history -a Brokerage -from 2026-01-01 -to 2026-03-31

`
}

func (p *historyCmd) SetFlags(f *flag.FlagSet) {
	p.windowFlags.SetFlags(f)
	f.StringVar(&p.account, "a", "", "Account to show, the whole portfolio when empty.")
}

func (p *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	var series *networth.AlignedSeries
	if p.account == "" {
		series = networth.AlignTotal(points, start, end)
	} else {
		series = networth.Align(points, p.account, start, end)
	}
	if series == nil {
		fmt.Fprintln(os.Stderr, "No observations in the window")
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.HistoryMarkdown(series))
	return subcommands.ExitSuccess
}
