package networth

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// SustainabilityRow is the persisted daily income/expense bookkeeping.
// Amounts are USD.
type SustainabilityRow struct {
	Date          Date    `json:"date"`
	TotalIncome   float64 `json:"total_income_usd"`
	TotalExpenses float64 `json:"total_expenses_usd"`
	Delta         float64 `json:"delta_usd"`
}

// SustainabilityStore persists SustainabilityRows keyed by date.
type SustainabilityStore interface {
	Row(on Date) (SustainabilityRow, bool, error)
	UpsertRow(row SustainabilityRow) error
	Rows(from, to Date) ([]SustainabilityRow, error)
	// ReplaceRows atomically swaps the whole table, used by backfill.
	ReplaceRows(rows []SustainabilityRow) error
}

// Sustainability maintains the daily income/expense ledger. One
// distinguished account is the spending account: its decreases accumulate
// as expenses, and its increases count as income only when
// IncludeSpendingIncome is set.
//
// Writes to a given date must be serialized by the caller (one write
// transaction per entry). The engine itself holds no locks.
type Sustainability struct {
	store SustainabilityStore
	rate  RateFunc

	Spending              string
	IncludeSpendingIncome bool
}

// NewSustainability returns an engine writing rows through store and
// converting amounts with rate.
func NewSustainability(store SustainabilityStore, rate RateFunc, spending string) *Sustainability {
	return &Sustainability{store: store, rate: rate, Spending: spending}
}

// incomeOn recomputes the date's total income from scratch: for every
// account with a value on the date, the USD delta against its latest prior
// value. The spending account contributes only positive deltas, and only
// when income inclusion is enabled, so that spend-down never shows up as
// negative income.
func (s *Sustainability) incomeOn(l *Ledger, on Date) (float64, error) {
	var income float64
	for account := range l.Accounts() {
		rec, ok := l.Get(on, account)
		if !ok {
			continue
		}
		delta := decimal.Zero // no prior value, no income
		if prior, ok := l.AsOf(on.Add(-1), account); ok {
			delta = rec.Amount.Sub(prior.Amount)
		}
		if account == s.Spending {
			if !s.IncludeSpendingIncome || !delta.IsPositive() {
				continue
			}
		}
		r, err := s.rate(rec.Currency)
		if err != nil {
			return 0, fmt.Errorf("income on %s: %w", on, err)
		}
		income += delta.InexactFloat64() * r
	}
	return income, nil
}

// OnWrite is the ledger write hook. It must be invoked exactly once per
// logical write, after the ValueRecord upsert is durable. previous is the
// value the record replaced on that date, nil when the write created the
// date's first value for the account.
func (s *Sustainability) OnWrite(l *Ledger, on Date, account, currency string, value decimal.Decimal, previous *decimal.Decimal) error {
	row, _, err := s.store.Row(on)
	if err != nil {
		return fmt.Errorf("sustainability row %s: %w", on, err)
	}
	row.Date = on

	// income is cheap to rebuild and every account's write can move it
	if row.TotalIncome, err = s.incomeOn(l, on); err != nil {
		return err
	}

	// expenses accumulate: each spending-account decrease adds its
	// increment, so several same-date writes stack rather than overwrite
	if account == s.Spending && previous != nil && previous.GreaterThan(value) {
		r, err := s.rate(currency)
		if err != nil {
			return fmt.Errorf("expense on %s: %w", on, err)
		}
		row.TotalExpenses += previous.Sub(value).InexactFloat64() * r
	}

	row.Delta = row.TotalIncome - row.TotalExpenses
	if err := s.store.UpsertRow(row); err != nil {
		return fmt.Errorf("sustainability upsert %s: %w", on, err)
	}
	return nil
}

// Rows returns the persisted rows in [from, to].
func (s *Sustainability) Rows(from, to Date) ([]SustainabilityRow, error) {
	return s.store.Rows(from, to)
}

// Backfill rebuilds the whole table from ledger history and replaces it.
// Income is recomputed per date as in OnWrite; expenses are the
// day-over-day decreases of the spending account. Running it twice on the
// same ledger produces identical tables. Use it to recover from corruption
// or after a bookkeeping change.
func (s *Sustainability) Backfill(l *Ledger) error {
	var dates []Date
	for on := range l.Dates() {
		dates = append(dates, on)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	rows := make([]SustainabilityRow, 0, len(dates))
	for _, on := range dates {
		row := SustainabilityRow{Date: on}
		var err error
		if row.TotalIncome, err = s.incomeOn(l, on); err != nil {
			return fmt.Errorf("backfill: %w", err)
		}
		if rec, ok := l.Get(on, s.Spending); ok {
			if prior, ok := l.AsOf(on.Add(-1), s.Spending); ok && prior.Amount.GreaterThan(rec.Amount) {
				r, err := s.rate(rec.Currency)
				if err != nil {
					return fmt.Errorf("backfill: %w", err)
				}
				row.TotalExpenses = prior.Amount.Sub(rec.Amount).InexactFloat64() * r
			}
		}
		row.Delta = row.TotalIncome - row.TotalExpenses
		rows = append(rows, row)
	}
	if err := s.store.ReplaceRows(rows); err != nil {
		return fmt.Errorf("backfill replace: %w", err)
	}
	return nil
}
