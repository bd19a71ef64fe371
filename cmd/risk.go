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

type riskCmd struct {
	windowFlags
	account   string
	benchmark string
	riskFree  float64
}

func (*riskCmd) Name() string     { return "risk" }
func (*riskCmd) Synopsis() string { return "compute volatility, drawdown and risk-adjusted returns" }
func (*riskCmd) Usage() string {
	return `nwt risk [-a <account>] [-b <benchmark>] [-rf <rate>] [-from <date>] [-to <date>]

  Computes the risk profile of one account, or of the whole portfolio when
  no account is given: volatility, Sharpe and Sortino ratios, value at
  risk, and the maximum drawdown. With -b the report also includes beta
  and alpha against the benchmark, plus a side-by-side comparison.

  The benchmark is one of the standard names (see below) or a raw symbol.

Usage Examples:
# Portfolio risk over everything recorded.
$ nwt risk

# Brokerage against the S&P 500.
$ nwt risk -a Brokerage -b "S&P 500"

`
}

func (p *riskCmd) SetFlags(f *flag.FlagSet) {
	p.windowFlags.SetFlags(f)
	f.StringVar(&p.account, "a", "", "Account to analyze, the whole portfolio when empty.")
	f.StringVar(&p.benchmark, "b", "", "Benchmark name or symbol to compare against.")
	f.Float64Var(&p.riskFree, "rf", 0.02, "Annual risk free rate used by Sharpe and Sortino.")
}

func (p *riskCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	name := "Portfolio"
	var series *networth.AlignedSeries
	if p.account == "" {
		series = networth.AlignTotal(points, start, end)
	} else {
		name = p.account
		series = networth.Align(points, p.account, start, end)
	}
	if series == nil || series.Len() < 2 {
		fmt.Fprintln(os.Stderr, "Not enough observations in the window")
		return subcommands.ExitFailure
	}

	var bench *networth.AlignedSeries
	if p.benchmark != "" {
		bench, err = fetchBenchmark(p.benchmark, start, end)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error fetching benchmark: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	report := networth.NewRiskReport(series, bench, p.riskFree)
	printMarkdown(renderer.RiskMarkdown(name, report))

	if bench != nil {
		if c, ok := networth.Compare(series, bench); ok {
			printMarkdown(renderer.ComparisonMarkdown(p.benchmark, c))
		}
	}
	return subcommands.ExitSuccess
}

// fetchBenchmark downloads the benchmark price history for the window,
// resolving a standard name to its symbol first.
func fetchBenchmark(name string, start, end networth.Date) (*networth.AlignedSeries, error) {
	symbol, ok := networth.StandardBenchmarks[name]
	if !ok {
		symbol = name
	}
	prices, err := Prices()(symbol, start, end)
	if err != nil {
		return nil, err
	}
	series := networth.BenchmarkSeries(symbol, prices)
	if series == nil || series.Len() < 2 {
		return nil, fmt.Errorf("no prices for %q in the window", name)
	}
	return series, nil
}
