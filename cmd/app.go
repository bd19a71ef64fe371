// Package cmd implements the CLI application to track and analyze net
// worth.
package cmd

import (
	"flag"
	"net/http"
	"time"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"

	"github.com/jmcampos/networth"
)

// Commands lists every subcommand available for registration by main.
var Commands = []subcommands.Command{
	&addCmd{},
	&bulkCmd{},
	&summaryCmd{},
	&historyCmd{},
	&relativeCmd{},
	&riskCmd{},
	&correlationCmd{},
	&cashflowCmd{},
	&sustainabilityCmd{},
	&backfillCmd{},
	&chartCmd{},
	&ratesCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var storeFile = flag.String("store-file", "networth.db", "Path to the SQLite ledger database")
var spendingAccount = flag.String("spending-account", "Checking", "Name of the distinguished spending account")
var includeSpendingIncome = flag.Bool("include-spending-income", false, "Count increases of the spending account as income")

func init() {
	// .env is optional, environment variables win either way
	godotenv.Load()
}

// OpenStore opens the ledger store and wires the sustainability engine to
// its write hook.
func OpenStore() (*networth.Store, *networth.Sustainability, error) {
	store, err := networth.Open(*storeFile)
	if err != nil {
		return nil, nil, err
	}
	eng := networth.NewSustainability(store, Rates().Rate, *spendingAccount)
	eng.IncludeSpendingIncome = *includeSpendingIncome
	store.OnWrite(eng.OnWrite)
	return store, eng, nil
}

// Rates returns the shared exchange rate cache, refreshed daily.
func Rates() *networth.RateCache {
	if rateCache == nil {
		rateCache = networth.NewRateCache(httpClient(), "", 24*time.Hour)
	}
	return rateCache
}

var rateCache *networth.RateCache

// Prices returns the shared benchmark price provider.
func Prices() networth.PriceFunc {
	return networth.NewStooq(httpClient()).Prices
}

// httpClient returns the shared disk-cached client used for every remote
// call.
func httpClient() *http.Client {
	if cachedClient == nil {
		cachedClient = networth.DailyClient()
	}
	return cachedClient
}

var cachedClient *http.Client
