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

type summaryCmd struct {
	date string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "show every account value and the USD total" }
func (*summaryCmd) Usage() string {
	return `nwt summary [-d <date>]

  Shows each account at its value as of the given date (today by default),
  its USD equivalent, and the change since its previous observation.

Usage Examples:
# Current state of the portfolio.
$ nwt summary

# State at the end of last year.
$ nwt summary -d 2025-12-31

`
}

func (p *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.date, "d", networth.Today().String(), "Date of the summary (YYYY-MM-DD).")
}

func (p *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := networth.ParseDate(p.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitFailure
	}

	store, _, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	ledger := store.Ledger()
	snap := networth.NewSnapshot(ledger, Rates().Rate, on)

	total, err := snap.TotalUSD()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error converting values: %v\n", err)
		return subcommands.ExitFailure
	}

	// changes since the previous observation, in USD
	deltas := make(map[string]*float64)
	if !on.Before(ledger.NewestDate()) {
		for _, d := range ledger.LatestDeltas() {
			if !d.HasPrevious {
				continue
			}
			if v, err := networth.Normalize(d.Delta(), d.Currency, Rates().Rate); err == nil {
				deltas[d.Account] = &v
			}
		}
	} else {
		for account := range snap.Accounts() {
			rec, ok := ledger.AsOf(on, account)
			if !ok {
				continue
			}
			prev, ok := ledger.AsOf(rec.Date.Add(-1), account)
			if !ok {
				continue
			}
			if v, err := networth.Normalize(rec.Amount.Sub(prev.Amount), rec.Currency, Rates().Rate); err == nil {
				deltas[account] = &v
			}
		}
	}

	s := renderer.Summary{Date: on, TotalUSD: total}
	for account := range snap.Accounts() {
		valueUSD, err := snap.ValueUSD(account)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error converting %s: %v\n", account, err)
			return subcommands.ExitFailure
		}
		s.Accounts = append(s.Accounts, renderer.SummaryAccount{
			Account:  account,
			Value:    snap.Value(account),
			ValueUSD: valueUSD,
			Delta:    deltas[account],
		})
	}

	printMarkdown(renderer.SummaryMarkdown(&s))
	return subcommands.ExitSuccess
}
