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

type chartCmd struct {
	windowFlags
	account string
	output  string
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "render the value history as a PNG chart" }
func (*chartCmd) Usage() string {
	return `nwt chart [-a <account>] [-o <file.png>] [-from <date>] [-to <date>]

  Renders the daily USD value of one account, or of the whole portfolio
  when no account is given, as a PNG line chart.

Usage Examples:
# Portfolio chart for this year.
$ nwt chart -from 2026-01-01 -o networth.png

`
}

func (p *chartCmd) SetFlags(f *flag.FlagSet) {
	p.windowFlags.SetFlags(f)
	f.StringVar(&p.account, "a", "", "Account to chart, the whole portfolio when empty.")
	f.StringVar(&p.output, "o", "networth.png", "Output PNG file.")
}

func (p *chartCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	title := "Net Worth"
	var series *networth.AlignedSeries
	if p.account == "" {
		series = networth.AlignTotal(points, start, end)
	} else {
		title = p.account
		series = networth.Align(points, p.account, start, end)
	}
	if series == nil {
		fmt.Fprintln(os.Stderr, "No observations in the window")
		return subcommands.ExitFailure
	}

	png, err := renderer.ValueChart(title, series)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering chart: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := os.WriteFile(p.output, png, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", p.output, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Wrote %s (%d bytes)\n", p.output, len(png))
	return subcommands.ExitSuccess
}
