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

type cashflowCmd struct {
	windowFlags
}

func (*cashflowCmd) Name() string     { return "cashflow" }
func (*cashflowCmd) Synopsis() string { return "separate deposits and withdrawals from market growth" }
func (*cashflowCmd) Usage() string {
	return `nwt cashflow [-from <date>] [-to <date>]

  Infers the external deposits and withdrawals hidden inside value changes
  by comparing each account's move against the portfolio's own return.
  Reports the contribution versus growth split, the money weighted return,
  and the time weighted return.

Usage Examples:
# Over everything recorded.
$ nwt cashflow

`
}

func (p *cashflowCmd) SetFlags(f *flag.FlagSet) {
	p.windowFlags.SetFlags(f)
}

func (p *cashflowCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	events := networth.InferCashFlows(points)
	total := networth.AlignTotal(points, start, end)
	if total == nil {
		fmt.Fprintln(os.Stderr, "No observations in the window")
		return subcommands.ExitFailure
	}

	_, current := total.Last()
	analysis := networth.ContributionVsGrowth(events, current)
	mwr := networth.PortfolioMoneyWeightedReturn(events)
	twr := networth.TimeWeightedReturn(total)

	printMarkdown(renderer.CashFlowMarkdown(events, analysis, mwr, twr))
	return subcommands.ExitSuccess
}
