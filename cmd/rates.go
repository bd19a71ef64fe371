package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/jmcampos/networth/renderer"
)

type ratesCmd struct{}

func (*ratesCmd) Name() string     { return "rates" }
func (*ratesCmd) Synopsis() string { return "show the exchange rates in use" }
func (*ratesCmd) Usage() string {
	return `nwt rates

  Shows the USD conversion rate of every currency recorded in the ledger.
  Rates come from ExchangeRate-API when ` + "`EXCHANGERATE_API_KEY`" + ` is set, and
  from a built-in table otherwise.

Usage Examples:
$ nwt rates

`
}

func (*ratesCmd) SetFlags(*flag.FlagSet) {}

func (*ratesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, _, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	rates := make(map[string]float64)
	for cur := range store.Ledger().Currencies() {
		r, err := Rates().Rate(cur)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error fetching rate for %s: %v\n", cur, err)
			return subcommands.ExitFailure
		}
		rates[cur] = r
	}
	if len(rates) == 0 {
		rates["USD"] = 1.0
	}

	printMarkdown(renderer.RatesMarkdown(rates))
	return subcommands.ExitSuccess
}
