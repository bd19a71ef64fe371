package networth

import "github.com/shopspring/decimal"

// D is a helper for tests to parse a date from const.
func D(s string) Date { return MustParseDate(s) }

// USD is a helper for tests to create a usd record.
func USD(on, account string, v float64) ValueRecord {
	return ValueRecord{Date: D(on), Account: account, Currency: "USD", Amount: decimal.NewFromFloat(v)}
}

// EUR is a helper for tests to create a euro record.
func EUR(on, account string, v float64) ValueRecord {
	return ValueRecord{Date: D(on), Account: account, Currency: "EUR", Amount: decimal.NewFromFloat(v)}
}

// points normalizes records with the unit rate, panicking on error since
// test fixtures are all well-formed.
func points(records ...ValueRecord) []NormalizedPoint {
	pts, err := NormalizeRecords(records, UnitRate)
	if err != nil {
		panic(err)
	}
	return pts
}

// near reports whether two floats agree within a small tolerance.
func near(got, want float64) bool {
	const eps = 1e-6
	d := got - want
	return d < eps && d > -eps
}
