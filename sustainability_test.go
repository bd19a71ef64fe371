package networth

import (
	"testing"

	"github.com/shopspring/decimal"
)

// memRows is an in-memory SustainabilityStore for engine tests.
type memRows struct {
	rows map[Date]SustainabilityRow
}

func newMemRows() *memRows { return &memRows{rows: make(map[Date]SustainabilityRow)} }

func (m *memRows) Row(on Date) (SustainabilityRow, bool, error) {
	row, ok := m.rows[on]
	return row, ok, nil
}

func (m *memRows) UpsertRow(row SustainabilityRow) error {
	m.rows[row.Date] = row
	return nil
}

func (m *memRows) Rows(from, to Date) ([]SustainabilityRow, error) {
	var out []SustainabilityRow
	for on, row := range m.rows {
		if !from.IsZero() && on.Before(from) {
			continue
		}
		if !to.IsZero() && on.After(to) {
			continue
		}
		out = append(out, row)
	}
	return out, nil
}

func (m *memRows) ReplaceRows(rows []SustainabilityRow) error {
	m.rows = make(map[Date]SustainabilityRow, len(rows))
	for _, row := range rows {
		m.rows[row.Date] = row
	}
	return nil
}

func dec(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func TestSustainability_SpendingDecreaseIsExpense(t *testing.T) {
	l := NewLedger()
	store := newMemRows()
	eng := NewSustainability(store, UnitRate, "Checking")

	l.Upsert(USD("2024-01-01", "Checking", 500))
	if err := eng.OnWrite(l, D("2024-01-01"), "Checking", "USD", dec(500), nil); err != nil {
		t.Fatal(err)
	}

	// intraday drop 500 -> 300 with income inclusion disabled
	l.Upsert(USD("2024-01-01", "Checking", 300))
	prev := dec(500)
	if err := eng.OnWrite(l, D("2024-01-01"), "Checking", "USD", dec(300), &prev); err != nil {
		t.Fatal(err)
	}

	row, ok, _ := store.Row(D("2024-01-01"))
	if !ok {
		t.Fatal("no row written")
	}
	if !near(row.TotalExpenses, 200) {
		t.Errorf("expenses = %v, want 200", row.TotalExpenses)
	}
	if row.TotalIncome != 0 {
		t.Errorf("income = %v, the spending account must not contribute", row.TotalIncome)
	}
	if !near(row.Delta, -200) {
		t.Errorf("delta = %v, want -200", row.Delta)
	}
}

func TestSustainability_ExpensesAccumulate(t *testing.T) {
	l := NewLedger()
	store := newMemRows()
	eng := NewSustainability(store, UnitRate, "Checking")

	l.Upsert(USD("2024-01-01", "Checking", 500))
	eng.OnWrite(l, D("2024-01-01"), "Checking", "USD", dec(500), nil)

	for _, step := range []struct{ from, to float64 }{{500, 450}, {450, 400}} {
		l.Upsert(USD("2024-01-01", "Checking", step.to))
		prev := dec(step.from)
		if err := eng.OnWrite(l, D("2024-01-01"), "Checking", "USD", dec(step.to), &prev); err != nil {
			t.Fatal(err)
		}
	}

	row, _, _ := store.Row(D("2024-01-01"))
	if !near(row.TotalExpenses, 100) {
		t.Errorf("expenses = %v, want the two decreases to stack to 100", row.TotalExpenses)
	}
}

func TestSustainability_IncomeFromGrowth(t *testing.T) {
	l := NewLedger()
	store := newMemRows()
	eng := NewSustainability(store, UnitRate, "Checking")

	l.Upsert(USD("2024-01-01", "ETF", 1000))
	eng.OnWrite(l, D("2024-01-01"), "ETF", "USD", dec(1000), nil)
	l.Upsert(USD("2024-01-02", "ETF", 1100))
	if err := eng.OnWrite(l, D("2024-01-02"), "ETF", "USD", dec(1100), nil); err != nil {
		t.Fatal(err)
	}

	row, ok, _ := store.Row(D("2024-01-02"))
	if !ok || !near(row.TotalIncome, 100) {
		t.Errorf("income = %v (ok=%v), want the 100 growth", row.TotalIncome, ok)
	}
}

func TestSustainability_SpendingIncomeToggle(t *testing.T) {
	l := NewLedger()
	store := newMemRows()
	eng := NewSustainability(store, UnitRate, "Checking")

	l.Upsert(USD("2024-01-01", "Checking", 500))
	eng.OnWrite(l, D("2024-01-01"), "Checking", "USD", dec(500), nil)
	l.Upsert(USD("2024-01-02", "Checking", 800)) // salary arrives

	if err := eng.OnWrite(l, D("2024-01-02"), "Checking", "USD", dec(800), nil); err != nil {
		t.Fatal(err)
	}
	row, _, _ := store.Row(D("2024-01-02"))
	if row.TotalIncome != 0 {
		t.Errorf("income with inclusion disabled = %v, want 0", row.TotalIncome)
	}

	eng.IncludeSpendingIncome = true
	if err := eng.OnWrite(l, D("2024-01-02"), "Checking", "USD", dec(800), nil); err != nil {
		t.Fatal(err)
	}
	row, _, _ = store.Row(D("2024-01-02"))
	if !near(row.TotalIncome, 300) {
		t.Errorf("income with inclusion enabled = %v, want 300", row.TotalIncome)
	}
}

func TestSustainability_BackfillIdempotent(t *testing.T) {
	l := NewLedger()
	l.Upsert(
		USD("2024-01-01", "ETF", 1000),
		USD("2024-01-02", "ETF", 1100),
		USD("2024-01-01", "Checking", 500),
		USD("2024-01-02", "Checking", 400),
	)
	store := newMemRows()
	eng := NewSustainability(store, UnitRate, "Checking")

	if err := eng.Backfill(l); err != nil {
		t.Fatal(err)
	}
	first, _ := store.Rows(Date{}, Date{})
	if err := eng.Backfill(l); err != nil {
		t.Fatal(err)
	}
	second, _ := store.Rows(Date{}, Date{})

	byDate := func(rows []SustainabilityRow) map[Date]SustainabilityRow {
		m := make(map[Date]SustainabilityRow)
		for _, r := range rows {
			m[r.Date] = r
		}
		return m
	}
	f, s := byDate(first), byDate(second)
	if len(f) != len(s) {
		t.Fatalf("row counts differ: %d vs %d", len(f), len(s))
	}
	for on, row := range f {
		if s[on] != row {
			t.Errorf("row %s differs between runs: %+v vs %+v", on, row, s[on])
		}
	}

	day2 := f[D("2024-01-02")]
	if !near(day2.TotalIncome, 100) || !near(day2.TotalExpenses, 100) || !near(day2.Delta, 0) {
		t.Errorf("day 2 = %+v, want income 100, expenses 100, delta 0", day2)
	}
}
