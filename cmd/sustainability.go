package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/jmcampos/networth/renderer"
)

type sustainabilityCmd struct {
	windowFlags
}

func (*sustainabilityCmd) Name() string { return "sustainability" }
func (*sustainabilityCmd) Synopsis() string {
	return "show the daily income versus expenses ledger"
}
func (*sustainabilityCmd) Usage() string {
	return `nwt sustainability [-from <date>] [-to <date>]

  Shows the daily income, expenses and net delta derived from account
  writes: drops of the spending account count as expenses, growth of the
  other accounts counts as income. A positive total delta means the
  lifestyle is sustainable over the window.

Usage Examples:
# This year so far.
$ nwt sustainability -from 2026-01-01

`
}

func (p *sustainabilityCmd) SetFlags(f *flag.FlagSet) {
	p.windowFlags.SetFlags(f)
}

func (p *sustainabilityCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, eng, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	start, end, err := p.window(store.Ledger())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	rows, err := eng.Rows(start, end)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading the ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.SustainabilityMarkdown(rows))
	return subcommands.ExitSuccess
}

type backfillCmd struct{}

func (*backfillCmd) Name() string     { return "backfill" }
func (*backfillCmd) Synopsis() string { return "rebuild the income/expense ledger from scratch" }
func (*backfillCmd) Usage() string {
	return `nwt backfill

  Recomputes the daily income/expense ledger from the recorded account
  values and replaces the stored rows. Safe to run repeatedly; use it
  after a bulk import or after changing -spending-account.

Usage Examples:
$ nwt backfill

`
}

func (*backfillCmd) SetFlags(*flag.FlagSet) {}

func (*backfillCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, eng, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	if err := eng.Backfill(store.Ledger()); err != nil {
		fmt.Fprintf(os.Stderr, "Error backfilling: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println("Income/expense ledger rebuilt")
	return subcommands.ExitSuccess
}
