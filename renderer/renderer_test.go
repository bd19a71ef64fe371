package renderer

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/jmcampos/networth"
)

func TestSummaryMarkdown(t *testing.T) {
	delta := 25.0
	s := &Summary{
		Date:     networth.MustParseDate("2024-01-31"),
		TotalUSD: 1525,
		Accounts: []SummaryAccount{
			{Account: "ETF", ValueUSD: 1025, Delta: &delta},
			{Account: "Cash", ValueUSD: 500},
		},
	}
	out := SummaryMarkdown(s)
	for _, want := range []string{"Net Worth Summary on 2024-01-31", "1525.00 USD", "ETF", "+25.00", "n/a"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary output missing %q:\n%s", want, out)
		}
	}
}

func TestRiskMarkdown(t *testing.T) {
	r := networth.RiskReport{
		VolatilityAnnual: 12.5,
		SharpeRatio:      1.2,
		AnnualizedReturn: 8,
	}
	out := RiskMarkdown("Portfolio", r)
	for _, want := range []string{"Risk Report: Portfolio", "Sharpe Ratio", "1.20", "+8.00%"} {
		if !strings.Contains(out, want) {
			t.Errorf("risk output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Versus Benchmark") {
		t.Error("benchmark section rendered without a benchmark")
	}
}

func TestCorrelationMarkdown_NilMatrix(t *testing.T) {
	out := CorrelationMarkdown(nil, 0)
	if !strings.Contains(out, "Not enough overlapping history") {
		t.Errorf("nil matrix output:\n%s", out)
	}
}

func TestSustainabilityMarkdown(t *testing.T) {
	rows := []networth.SustainabilityRow{
		{Date: networth.MustParseDate("2024-01-01"), TotalIncome: 100, TotalExpenses: 40, Delta: 60},
		{Date: networth.MustParseDate("2024-01-02"), TotalIncome: 0, TotalExpenses: 10, Delta: -10},
	}
	out := SustainabilityMarkdown(rows)
	for _, want := range []string{"Sustainability", "100.00", "50.00", "+50.00", "was sustainable"} {
		if !strings.Contains(out, want) {
			t.Errorf("sustainability output missing %q:\n%s", want, out)
		}
	}
}

func TestRelativeMarkdown_Empty(t *testing.T) {
	out := RelativeMarkdown("Ghost", nil)
	if !strings.Contains(out, `No data for reference "Ghost"`) {
		t.Errorf("empty relative output:\n%s", out)
	}
}

func TestRatesMarkdown(t *testing.T) {
	out := RatesMarkdown(map[string]float64{"USD": 1, "EUR": 1.0 / 0.92})
	for _, want := range []string{"Exchange Rates", "EUR", "1.0870", "USD", "1.0000"} {
		if !strings.Contains(out, want) {
			t.Errorf("rates output missing %q:\n%s", want, out)
		}
	}
}

func TestRollingCorrelationMarkdown(t *testing.T) {
	points := []networth.RollingCorrelationPoint{
		{Date: networth.MustParseDate("2024-01-05"), Correlation: 0.42},
	}
	out := RollingCorrelationMarkdown("ETF", "Crypto", 21, points)
	for _, want := range []string{"ETF / Crypto", "21-day window", "2024-01-05", "0.42"} {
		if !strings.Contains(out, want) {
			t.Errorf("rolling output missing %q:\n%s", want, out)
		}
	}

	if out := RollingCorrelationMarkdown("A", "B", 21, nil); !strings.Contains(out, "Not enough overlapping history") {
		t.Errorf("empty rolling output:\n%s", out)
	}
}

func TestCashFlowMarkdown_Empty(t *testing.T) {
	out := CashFlowMarkdown(nil, networth.ContributionAnalysis{}, 0, 0)
	if !strings.Contains(out, "Not enough history") {
		t.Errorf("empty cashflow output:\n%s", out)
	}
}

func TestValueChart(t *testing.T) {
	if _, err := ValueChart("Net Worth", nil); err == nil {
		t.Error("expected an error for a nil series")
	}

	records := []networth.ValueRecord{
		{Date: networth.MustParseDate("2024-01-01"), Account: "ETF", Currency: "USD", Amount: decimal.NewFromInt(100)},
		{Date: networth.MustParseDate("2024-01-05"), Account: "ETF", Currency: "USD", Amount: decimal.NewFromInt(110)},
	}
	points, err := networth.NormalizeRecords(records, networth.UnitRate)
	if err != nil {
		t.Fatal(err)
	}
	s := networth.Align(points, "ETF", networth.MustParseDate("2024-01-01"), networth.MustParseDate("2024-01-05"))
	png, err := ValueChart("ETF", s)
	if err != nil {
		t.Fatal(err)
	}
	if len(png) < 8 || string(png[1:4]) != "PNG" {
		t.Errorf("expected PNG bytes, got %d bytes", len(png))
	}
}
