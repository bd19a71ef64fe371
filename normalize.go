package networth

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// RateFunc converts a currency code into the multiplier to the USD base
// unit. Implementations must return exactly 1.0 for "USD". Caching, fallback
// values and staleness policies are the collaborator's business, not the
// core's.
type RateFunc func(currency string) (float64, error)

// UnitRate is a RateFunc that treats every currency as USD. Useful in tests
// and for single-currency ledgers.
func UnitRate(string) (float64, error) { return 1.0, nil }

// Normalize converts an amount in the given currency to USD using the
// supplied rate lookup. A rate error propagates unmodified: substituting a
// guessed rate would silently corrupt every statistic downstream.
func Normalize(amount decimal.Decimal, currency string, rate RateFunc) (float64, error) {
	r, err := rate(currency)
	if err != nil {
		return 0, fmt.Errorf("no rate for %q: %w", currency, err)
	}
	return amount.InexactFloat64() * r, nil
}

// NormalizedPoint is a record converted to the USD base unit. Derived, never
// persisted.
type NormalizedPoint struct {
	Date    Date
	Account string
	Value   float64 // USD
}

// NormalizeRecords converts a batch of records to USD points, preserving
// order. It fails on the first record whose currency has no rate.
func NormalizeRecords(records []ValueRecord, rate RateFunc) ([]NormalizedPoint, error) {
	points := make([]NormalizedPoint, 0, len(records))
	for _, rec := range records {
		v, err := Normalize(rec.Amount, rec.Currency, rate)
		if err != nil {
			return nil, err
		}
		points = append(points, NormalizedPoint{Date: rec.Date, Account: rec.Account, Value: v})
	}
	return points, nil
}
