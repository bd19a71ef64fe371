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

type correlationCmd struct {
	windowFlags
	pair    string
	rolling int
}

func (*correlationCmd) Name() string     { return "correlation" }
func (*correlationCmd) Synopsis() string { return "show how account returns move together" }
func (*correlationCmd) Usage() string {
	return `nwt correlation [-pair <a,b> [-rolling <days>]] [-from <date>] [-to <date>]

  Computes the pairwise correlation of daily account returns over the
  window, a diversification score weighted by current account values, and
  the most and least correlated pairs. With -pair the command instead
  tracks one pair's correlation over a sliding window.

Usage Examples:
# Over everything recorded.
$ nwt correlation

# How two accounts have moved together, month by month.
$ nwt correlation -pair Brokerage,Crypto -rolling 21

`
}

func (p *correlationCmd) SetFlags(f *flag.FlagSet) {
	p.windowFlags.SetFlags(f)
	f.StringVar(&p.pair, "pair", "", "Two comma separated accounts for a rolling correlation.")
	f.IntVar(&p.rolling, "rolling", 21, "Sliding window in business days, used with -pair.")
}

func (p *correlationCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	if p.pair != "" {
		pair := strings.Split(p.pair, ",")
		if len(pair) != 2 {
			fmt.Fprintln(os.Stderr, "Error: -pair wants exactly two comma separated accounts")
			return subcommands.ExitUsageError
		}
		rolling := networth.RollingCorrelation(points, pair[0], pair[1], p.rolling, start, end)
		printMarkdown(renderer.RollingCorrelationMarkdown(pair[0], pair[1], p.rolling, rolling))
		return subcommands.ExitSuccess
	}

	accounts := slices.Collect(ledger.Accounts())
	m := networth.NewCorrelationMatrix(points, accounts, start, end)
	if m == nil {
		fmt.Fprintln(os.Stderr, "Not enough overlapping observations to correlate")
		return subcommands.ExitFailure
	}

	// weight the score by current values so a tiny account cannot
	// dominate it
	snap := networth.NewSnapshot(ledger, Rates().Rate, end)
	weights, err := snap.Weights()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing weights: %v\n", err)
		return subcommands.ExitFailure
	}
	score := networth.DiversificationScore(m, weights)

	printMarkdown(renderer.CorrelationMarkdown(m, score))
	return subcommands.ExitSuccess
}
