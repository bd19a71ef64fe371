package networth

import (
	"math"
	"testing"
)

func TestVolatility(t *testing.T) {
	// sample std of {0.01, -0.01, 0.01, -0.01} is ~0.011547
	returns := []float64{0.01, -0.01, 0.01, -0.01}
	got := Volatility(returns, false, PeriodsPerYear)
	if !near(float64(got), 1.1547005) {
		t.Errorf("Volatility = %v, want ~1.1547%%", got)
	}
	annualized := Volatility(returns, true, PeriodsPerYear)
	if !near(float64(annualized), 1.1547005*math.Sqrt(252)) {
		t.Errorf("annualized Volatility = %v", annualized)
	}
}

func TestVolatility_InsufficientData(t *testing.T) {
	if got := Volatility([]float64{0.01}, true, PeriodsPerYear); got != 0 {
		t.Errorf("Volatility with one observation = %v, want 0", got)
	}
	if got := Sharpe([]float64{0.01}, DefaultRiskFreeRate, PeriodsPerYear); got != 0 {
		t.Errorf("Sharpe with one observation = %v, want 0", got)
	}
	if got := Sortino([]float64{0.01}, DefaultRiskFreeRate, PeriodsPerYear); got != 0 {
		t.Errorf("Sortino with one observation = %v, want 0", got)
	}
}

func TestSortino_NoDownside(t *testing.T) {
	// all excess returns positive: no downside deviation to divide by
	returns := []float64{0.01, 0.02, 0.03}
	if got := Sortino(returns, 0, PeriodsPerYear); got != 0 {
		t.Errorf("Sortino without downside = %v, want 0", got)
	}
}

func TestMaxDrawdown(t *testing.T) {
	pts := points(
		USD("2024-01-01", "ETF", 100),
		USD("2024-01-08", "ETF", 120), // peak
		USD("2024-01-15", "ETF", 90),  // trough, -25%
		USD("2024-01-22", "ETF", 125), // recovery
	)
	s := Align(pts, "ETF", D("2024-01-01"), D("2024-01-31"))
	dd := MaxDrawdown(s)

	if !dd.MaxDrawdown.Equal(Percent(-25)) {
		t.Errorf("MaxDrawdown = %v, want -25%%", dd.MaxDrawdown)
	}
	if dd.PeakDate != D("2024-01-12") {
		// the peak value 120 holds (forward-filled) through Fri the 12th
		t.Errorf("PeakDate = %v, want 2024-01-12", dd.PeakDate)
	}
	if dd.TroughDate != D("2024-01-15") {
		t.Errorf("TroughDate = %v, want 2024-01-15", dd.TroughDate)
	}
	if !dd.Recovered || dd.Recovery != D("2024-01-22") {
		t.Errorf("Recovery = %v (recovered=%v), want 2024-01-22", dd.Recovery, dd.Recovered)
	}
	if !dd.PeakDate.Before(dd.TroughDate) || !dd.TroughDate.Before(dd.Recovery) {
		t.Error("drawdown dates out of order")
	}
}

func TestMaxDrawdown_Monotone(t *testing.T) {
	pts := points(
		USD("2024-01-01", "ETF", 100),
		USD("2024-01-31", "ETF", 200),
	)
	s := Align(pts, "ETF", D("2024-01-01"), D("2024-01-31"))
	if dd := MaxDrawdown(s); dd != (Drawdown{}) {
		t.Errorf("monotone series drawdown = %+v, want all zero", dd)
	}
}

func TestVaR_LinearInterpolation(t *testing.T) {
	returns := []float64{-0.04, -0.03, -0.02, -0.01, 0, 0.01, 0.02, 0.03, 0.04, 0.05}
	// 5th percentile of 10 sorted points interpolates between the two
	// lowest: -0.04 + 0.45*(0.01) = -0.0355
	got := VaR(returns, 0.95)
	if !near(float64(got), -3.55) {
		t.Errorf("VaR = %v, want -3.55%%", got)
	}
	cvar := CVaR(returns, 0.95)
	if !near(float64(cvar), -4) {
		// only -0.04 sits at or below the threshold
		t.Errorf("CVaR = %v, want -4%%", cvar)
	}
}

func TestBetaAlpha(t *testing.T) {
	pts := points(
		USD("2024-01-01", "ETF", 100),
		USD("2024-01-02", "ETF", 102),
		USD("2024-01-03", "ETF", 100),
		USD("2024-01-04", "ETF", 104),
		USD("2024-01-01", "IDX", 100),
		USD("2024-01-02", "IDX", 101),
		USD("2024-01-03", "IDX", 100),
		USD("2024-01-04", "IDX", 102),
	)
	start, end := D("2024-01-01"), D("2024-01-04")
	asset := Returns(Align(pts, "ETF", start, end))
	bench := Returns(Align(pts, "IDX", start, end))

	beta := Beta(asset, bench)
	if beta <= 1 {
		// the asset moves roughly twice the benchmark
		t.Errorf("Beta = %v, want > 1", beta)
	}

	identical := Beta(bench, bench)
	if !near(identical, 1) {
		t.Errorf("Beta against itself = %v, want 1", identical)
	}
}

func TestAnnualizedReturn(t *testing.T) {
	pts := points(
		USD("2024-01-01", "ETF", 100),
		USD("2024-12-31", "ETF", 110),
	)
	s := Align(pts, "ETF", D("2024-01-01"), D("2024-12-31"))
	got := AnnualizedReturn(s)
	if got < 9.5 || got > 10.5 {
		t.Errorf("AnnualizedReturn = %v, want ~10%%", got)
	}
}

func TestNewRiskReport_SinglePoint(t *testing.T) {
	pts := points(USD("2024-01-01", "ETF", 100))
	s := Align(pts, "ETF", D("2024-01-01"), D("2024-01-01"))
	report := NewRiskReport(s, nil, DefaultRiskFreeRate)

	if report.VolatilityAnnual != 0 || report.SharpeRatio != 0 || report.SortinoRatio != 0 {
		t.Errorf("single point should yield neutral risk metrics: %+v", report)
	}
	if report.Drawdown != (Drawdown{}) {
		t.Errorf("single point drawdown = %+v, want zero", report.Drawdown)
	}
	if report.HasBenchmark {
		t.Error("no benchmark was supplied")
	}
}

func TestRiskCategory(t *testing.T) {
	testCases := []struct {
		sharpe float64
		want   string
	}{
		{sharpe: 2.5, want: "Excellent"},
		{sharpe: 1.5, want: "Very Good"},
		{sharpe: 0.7, want: "Good"},
		{sharpe: 0.2, want: "Below Average"},
		{sharpe: -0.5, want: "Poor (Negative Risk-Adjusted Return)"},
	}
	for _, tc := range testCases {
		if got := RiskCategory(tc.sharpe); got != tc.want {
			t.Errorf("RiskCategory(%v) = %q, want %q", tc.sharpe, got, tc.want)
		}
	}
}
