package networth

import "iter"

// Snapshot represents a view of the portfolio at a single point in time.
// It is a stateless calculator over the ledger: every value is the latest
// record on or before its 'on' date, converted on demand.
type Snapshot struct {
	ledger *Ledger
	rate   RateFunc
	on     Date
}

// NewSnapshot returns a snapshot of the ledger as of 'on'.
func NewSnapshot(l *Ledger, rate RateFunc, on Date) *Snapshot {
	return &Snapshot{ledger: l, rate: rate, on: on}
}

// On returns the date of the snapshot.
func (s *Snapshot) On() Date { return s.on }

// Accounts returns the accounts that have a value as of the snapshot date.
func (s *Snapshot) Accounts() iter.Seq[string] {
	return func(yield func(string) bool) {
		for account := range s.ledger.Accounts() {
			if _, ok := s.ledger.AsOf(s.on, account); !ok {
				continue
			}
			if !yield(account) {
				return
			}
		}
	}
}

// Value returns the account's value as of the snapshot date, in its own
// currency. Zero Money when the account has no value yet.
func (s *Snapshot) Value(account string) Money {
	rec, ok := s.ledger.AsOf(s.on, account)
	if !ok {
		return Money{}
	}
	return Money{value: rec.Amount, cur: rec.Currency}
}

// ValueUSD returns the account's value as of the snapshot date, converted.
func (s *Snapshot) ValueUSD(account string) (float64, error) {
	rec, ok := s.ledger.AsOf(s.on, account)
	if !ok {
		return 0, nil
	}
	return Normalize(rec.Amount, rec.Currency, s.rate)
}

// TotalUSD sums every account's converted value as of the snapshot date.
func (s *Snapshot) TotalUSD() (float64, error) {
	var total float64
	for account := range s.Accounts() {
		v, err := s.ValueUSD(account)
		if err != nil {
			return 0, err
		}
		total += v
	}
	return total, nil
}

// Weights returns each account's share of the total converted value, for
// use as diversification weights. Nil when the total is zero.
func (s *Snapshot) Weights() (map[string]float64, error) {
	total, err := s.TotalUSD()
	if err != nil {
		return nil, err
	}
	if total == 0 {
		return nil, nil
	}
	weights := make(map[string]float64)
	for account := range s.Accounts() {
		v, err := s.ValueUSD(account)
		if err != nil {
			return nil, err
		}
		weights[account] = v / total
	}
	return weights, nil
}
