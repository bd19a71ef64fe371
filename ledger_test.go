package networth

import (
	"slices"
	"testing"

	"github.com/shopspring/decimal"
)

func TestLedger_Upsert(t *testing.T) {
	l := NewLedger()
	l.Upsert(USD("2024-01-10", "ETF", 100))
	l.Upsert(USD("2024-01-10", "ETF", 120)) // same date+account replaces
	l.Upsert(USD("2024-01-05", "ETF", 90))  // earlier date sorts first

	if l.Len() != 2 {
		t.Fatalf("Len = %d, want 2", l.Len())
	}
	rec, ok := l.Get(D("2024-01-10"), "ETF")
	if !ok || !rec.Amount.Equal(decimal.NewFromInt(120)) {
		t.Errorf("Get = %v, %v; want 120", rec.Amount, ok)
	}
	var dates []Date
	for on := range l.Dates() {
		dates = append(dates, on)
	}
	if !slices.Equal(dates, []Date{D("2024-01-05"), D("2024-01-10")}) {
		t.Errorf("Dates = %v, not chronological", dates)
	}
}

func TestLedger_AsOf(t *testing.T) {
	l := NewLedger()
	l.Upsert(USD("2024-01-10", "ETF", 100), USD("2024-01-20", "ETF", 200))

	if _, ok := l.AsOf(D("2024-01-09"), "ETF"); ok {
		t.Error("AsOf before the first record should not resolve")
	}
	rec, ok := l.AsOf(D("2024-01-15"), "ETF")
	if !ok || !rec.Amount.Equal(decimal.NewFromInt(100)) {
		t.Errorf("AsOf(2024-01-15) = %v, %v; want 100", rec.Amount, ok)
	}
}

func TestLedger_Records_Window(t *testing.T) {
	l := NewLedger()
	l.Upsert(
		USD("2024-01-05", "ETF", 90),
		USD("2024-01-10", "ETF", 100),
		USD("2024-01-20", "ETF", 200),
		USD("2024-01-10", "Cash", 50),
	)
	got := l.Records("ETF", D("2024-01-10"), D("2024-01-20"))
	if len(got) != 2 {
		t.Fatalf("Records = %d entries, want 2", len(got))
	}
	if got[0].Date != D("2024-01-10") || got[1].Date != D("2024-01-20") {
		t.Errorf("Records out of window: %v", got)
	}
}

func TestLedger_Currency(t *testing.T) {
	l := NewLedger()
	l.Upsert(EUR("2024-01-10", "Savings", 1000))
	if got := l.Currency("Savings"); got != "EUR" {
		t.Errorf("Currency = %q, want EUR", got)
	}
	if got := l.Currency("Unknown"); got != "USD" {
		t.Errorf("Currency of unknown account = %q, want the USD default", got)
	}
}

func TestLedger_LatestDeltas(t *testing.T) {
	l := NewLedger()
	l.Upsert(
		USD("2024-01-10", "ETF", 100),
		USD("2024-01-20", "ETF", 150),
		USD("2024-01-20", "Cash", 50),
	)
	deltas := l.LatestDeltas()
	byAccount := make(map[string]AccountDelta)
	for _, d := range deltas {
		byAccount[d.Account] = d
	}

	etf := byAccount["ETF"]
	if !etf.HasPrevious || !etf.Delta().Equal(decimal.NewFromInt(50)) {
		t.Errorf("ETF delta = %v (hasPrevious=%v), want +50", etf.Delta(), etf.HasPrevious)
	}
	if cash := byAccount["Cash"]; cash.HasPrevious {
		t.Errorf("Cash has a single record, HasPrevious should be false")
	}
}
