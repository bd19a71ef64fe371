package networth

import (
	"iter"
	"maps"
	"slices"
	"sort"

	"github.com/shopspring/decimal"
)

// ValueRecord is one observed balance of one account on one date.
//
// At most one record exists per (date, account); a later write for the same
// key replaces the earlier one. Records are never deleted, only superseded.
type ValueRecord struct {
	Date     Date            `json:"date"`
	Account  string          `json:"account"`
	Currency string          `json:"currency"`
	Amount   decimal.Decimal `json:"amount"`
}

// Ledger holds the observed value records, the single source of truth every
// analytic in this package derives from.
//
// In a Ledger records are always in chronological order.
type Ledger struct {
	records    []ValueRecord
	currencies map[string]string // last known currency per account
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{currencies: make(map[string]string)}
}

// Len returns the number of records in the ledger.
func (l *Ledger) Len() int { return len(l.records) }

// Upsert inserts records, replacing any existing record with the same
// (date, account) key, and maintains the chronological order.
func (l *Ledger) Upsert(records ...ValueRecord) {
	for _, rec := range records {
		replaced := false
		for i, existing := range l.records {
			if existing.Date == rec.Date && existing.Account == rec.Account {
				l.records[i] = rec
				replaced = true
				break
			}
		}
		if !replaced {
			l.records = append(l.records, rec)
		}
		if l.currencies == nil {
			l.currencies = make(map[string]string)
		}
		l.currencies[rec.Account] = rec.Currency
	}
	l.stableSort()
}

// stableSort sorts the ledger by record date. The sort is stable, so records
// on the same day maintain their original relative order.
func (l *Ledger) stableSort() {
	sort.SliceStable(l.records, func(i, j int) bool {
		return l.records[i].Date.Before(l.records[j].Date)
	})
}

// Records returns the records matching the given filters, in chronological
// order. An empty account matches every account; zero dates leave that bound
// open.
func (l *Ledger) Records(account string, from, to Date) []ValueRecord {
	out := make([]ValueRecord, 0, len(l.records))
	for _, rec := range l.records {
		if account != "" && rec.Account != account {
			continue
		}
		if !from.IsZero() && rec.Date.Before(from) {
			continue
		}
		if !to.IsZero() && rec.Date.After(to) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// All returns an iterator over every record in chronological order.
func (l *Ledger) All() iter.Seq[ValueRecord] {
	return func(yield func(ValueRecord) bool) {
		for _, rec := range l.records {
			if !yield(rec) {
				return
			}
		}
	}
}

// Get returns the record for (date, account) if one exists.
func (l *Ledger) Get(on Date, account string) (ValueRecord, bool) {
	for _, rec := range l.records {
		if rec.Date == on && rec.Account == account {
			return rec, true
		}
		if rec.Date.After(on) {
			break // the ledger is sorted by date
		}
	}
	return ValueRecord{}, false
}

// AsOf returns the latest record for account at or before the given date.
func (l *Ledger) AsOf(on Date, account string) (ValueRecord, bool) {
	var found ValueRecord
	var ok bool
	for _, rec := range l.records {
		if rec.Date.After(on) {
			break
		}
		if rec.Account == account {
			found, ok = rec, true
		}
	}
	return found, ok
}

// Accounts returns a sorted iterator over all account names in the ledger.
func (l *Ledger) Accounts() iter.Seq[string] {
	return func(yield func(string) bool) {
		visited := make(map[string]struct{})
		for _, rec := range l.records {
			visited[rec.Account] = struct{}{}
		}
		accounts := slices.Collect(maps.Keys(visited))
		slices.Sort(accounts)
		for _, account := range accounts {
			if !yield(account) {
				return
			}
		}
	}
}

// Currency returns the last known currency for an account, defaulting to USD
// for accounts the ledger has never seen.
func (l *Ledger) Currency(account string) string {
	if cur, ok := l.currencies[account]; ok {
		return cur
	}
	return "USD"
}

// Currencies returns a sorted iterator over all currencies that appear in
// the ledger.
func (l *Ledger) Currencies() iter.Seq[string] {
	return func(yield func(string) bool) {
		visited := make(map[string]struct{})
		for _, rec := range l.records {
			visited[rec.Currency] = struct{}{}
		}
		currencies := slices.Collect(maps.Keys(visited))
		slices.Sort(currencies)
		for _, cur := range currencies {
			if !yield(cur) {
				return
			}
		}
	}
}

// Dates returns a sorted iterator over the distinct observation dates.
func (l *Ledger) Dates() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		previous := Date{}
		for _, rec := range l.records {
			if rec.Date == previous {
				continue
			}
			previous = rec.Date
			if !yield(rec.Date) {
				return
			}
		}
	}
}

// OldestDate returns the date of the earliest record in the ledger, or the
// zero date when the ledger is empty.
func (l *Ledger) OldestDate() Date {
	if len(l.records) == 0 {
		return Date{}
	}
	return l.records[0].Date
}

// NewestDate returns the date of the latest record in the ledger, or the
// zero date when the ledger is empty.
func (l *Ledger) NewestDate() Date {
	if len(l.records) == 0 {
		return Date{}
	}
	return l.records[len(l.records)-1].Date
}

// AccountDelta describes how one account moved between its two most recent
// observations.
type AccountDelta struct {
	Account       string
	Currency      string
	Date          Date
	Value         decimal.Decimal
	PreviousDate  Date
	PreviousValue decimal.Decimal
	HasPrevious   bool
}

// Delta returns the change between the two observations, zero when no prior
// observation exists.
func (d AccountDelta) Delta() decimal.Decimal {
	if !d.HasPrevious {
		return decimal.Zero
	}
	return d.Value.Sub(d.PreviousValue)
}

// LatestDeltas reports, for every account present on the most recent ledger
// date, its value there and the previous observed value.
func (l *Ledger) LatestDeltas() []AccountDelta {
	latest := l.NewestDate()
	if latest.IsZero() {
		return nil
	}
	var out []AccountDelta
	for account := range l.Accounts() {
		rec, ok := l.Get(latest, account)
		if !ok {
			continue
		}
		d := AccountDelta{
			Account:  account,
			Currency: rec.Currency,
			Date:     rec.Date,
			Value:    rec.Amount,
		}
		if prev, ok := l.AsOf(latest.Add(-1), account); ok {
			d.PreviousDate = prev.Date
			d.PreviousValue = prev.Amount
			d.HasPrevious = true
		}
		out = append(out, d)
	}
	return out
}
