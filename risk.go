package networth

import (
	"math"
	"sort"
)

// PeriodsPerYear is the default number of trading periods per year for
// daily observations.
const PeriodsPerYear = 252

// DefaultRiskFreeRate is the annual risk-free rate used when the caller
// does not supply one.
const DefaultRiskFreeRate = 0.02

// --- estimator primitives ---

// mean returns the arithmetic mean, 0 for an empty slice.
func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// stdDev returns the sample standard deviation (n-1 denominator), 0 with
// fewer than two observations.
func stdDev(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	m := mean(xs)
	var ss float64
	for _, x := range xs {
		d := x - m
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(xs)-1))
}

// popStdDev returns the population standard deviation (n denominator), 0
// for an empty slice.
func popStdDev(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	m := mean(xs)
	var ss float64
	for _, x := range xs {
		d := x - m
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(xs)))
}

// covariance returns the sample covariance of two equal-length slices.
func covariance(xs, ys []float64) float64 {
	n := len(xs)
	if n < 2 || n != len(ys) {
		return 0
	}
	mx, my := mean(xs), mean(ys)
	var sum float64
	for i := range xs {
		sum += (xs[i] - mx) * (ys[i] - my)
	}
	return sum / float64(n-1)
}

// percentile computes the p-th percentile (0-100) with linear interpolation
// between closest ranks, the same estimator numpy uses by default.
func percentile(xs []float64, p float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)
	if p <= 0 {
		return sorted[0]
	}
	if p >= 100 {
		return sorted[len(sorted)-1]
	}
	rank := p / 100 * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo]
	}
	frac := rank - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}

// --- metrics ---

// Volatility is the standard deviation of the returns as a Percent,
// annualized by sqrt(periodsPerYear) when requested. 0 with fewer than two
// observations.
func Volatility(returns []float64, annualize bool, periodsPerYear int) Percent {
	if len(returns) < 2 {
		return 0
	}
	v := stdDev(returns)
	if annualize {
		v *= math.Sqrt(float64(periodsPerYear))
	}
	return Percent(v * 100)
}

// Sharpe is the annualized risk-adjusted return over the risk-free rate:
// sqrt(ppy) * mean(excess) / std(excess). 0 with fewer than two
// observations or zero excess deviation.
func Sharpe(returns []float64, riskFreeAnnual float64, periodsPerYear int) float64 {
	if len(returns) < 2 {
		return 0
	}
	excess := excessReturns(returns, riskFreeAnnual, periodsPerYear)
	sd := stdDev(excess)
	if sd == 0 {
		return 0
	}
	return math.Sqrt(float64(periodsPerYear)) * mean(excess) / sd
}

// Sortino is like Sharpe but only penalizes downside deviation: the
// denominator is the standard deviation of the negative excess returns. 0
// when there are no negative excess observations.
func Sortino(returns []float64, riskFreeAnnual float64, periodsPerYear int) float64 {
	if len(returns) < 2 {
		return 0
	}
	excess := excessReturns(returns, riskFreeAnnual, periodsPerYear)
	var downside []float64
	for _, e := range excess {
		if e < 0 {
			downside = append(downside, e)
		}
	}
	sd := stdDev(downside)
	if len(downside) == 0 || sd == 0 {
		return 0
	}
	return math.Sqrt(float64(periodsPerYear)) * mean(excess) / sd
}

func excessReturns(returns []float64, riskFreeAnnual float64, periodsPerYear int) []float64 {
	perPeriod := riskFreeAnnual / float64(periodsPerYear)
	out := make([]float64, len(returns))
	for i, r := range returns {
		out[i] = r - perPeriod
	}
	return out
}

// Drawdown describes the largest peak-to-trough decline of a value series.
type Drawdown struct {
	MaxDrawdown   Percent // negative
	PeakDate      Date    // last date at the pre-drawdown peak
	TroughDate    Date
	Recovery      Date // first date the value regains the peak; zero when not yet recovered
	Recovered     bool
	DaysToRecover int
}

// MaxDrawdown scans the series for the deepest decline from a running
// maximum, the peak preceding it, and the first date the value reaches the
// pre-drawdown peak again. With fewer than two points every field is zero.
func MaxDrawdown(s *AlignedSeries) Drawdown {
	if s == nil || s.Len() < 2 {
		return Drawdown{}
	}
	var dd Drawdown
	runningMax := math.Inf(-1)
	worst := 0.0
	troughIdx := -1
	for i := 0; i < s.Len(); i++ {
		_, v := s.At(i)
		if v > runningMax {
			runningMax = v
		}
		if runningMax == 0 {
			continue
		}
		d := (v - runningMax) / runningMax
		if d < worst {
			worst = d
			troughIdx = i
		}
	}
	if troughIdx < 0 {
		// monotone series: no decline at all
		return Drawdown{}
	}
	dd.MaxDrawdown = Percent(worst * 100)
	troughDate, _ := s.At(troughIdx)
	dd.TroughDate = troughDate

	// peak: last date at or before the trough where value equals the
	// running maximum of that prefix.
	peak := math.Inf(-1)
	for i := 0; i <= troughIdx; i++ {
		if _, v := s.At(i); v > peak {
			peak = v
		}
	}
	for i := troughIdx; i >= 0; i-- {
		if on, v := s.At(i); v == peak {
			dd.PeakDate = on
			break
		}
	}

	// recovery: first date after the trough reaching the peak value again.
	for i := troughIdx + 1; i < s.Len(); i++ {
		if on, v := s.At(i); v >= peak {
			dd.Recovery = on
			dd.Recovered = true
			dd.DaysToRecover = on.Sub(troughDate)
			break
		}
	}
	return dd
}

// VaR is the historical Value at Risk at the given confidence level: the
// (1-confidence) percentile of the returns, as a Percent (negative = loss).
// 0 with fewer than two observations.
func VaR(returns []float64, confidence float64) Percent {
	if len(returns) < 2 {
		return 0
	}
	return Percent(percentile(returns, (1-confidence)*100) * 100)
}

// CVaR is the conditional VaR (expected shortfall): the mean of the returns
// at or below the VaR threshold, as a Percent. 0 with fewer than two
// observations.
func CVaR(returns []float64, confidence float64) Percent {
	if len(returns) < 2 {
		return 0
	}
	threshold := percentile(returns, (1-confidence)*100)
	var tail []float64
	for _, r := range returns {
		if r <= threshold {
			tail = append(tail, r)
		}
	}
	if len(tail) == 0 {
		return 0
	}
	return Percent(mean(tail) * 100)
}

// innerJoin pairs up the two return series on dates present in both,
// dropping undefined observations on either side.
func innerJoin(asset, benchmark *ReturnSeries) (a, b []float64) {
	for i := range asset.days {
		on, av := asset.DailyAt(i)
		if math.IsNaN(av) {
			continue
		}
		bv, ok := benchmark.DailyOn(on)
		if !ok {
			continue
		}
		a = append(a, av)
		b = append(b, bv)
	}
	return a, b
}

// Beta is the sensitivity of the asset to benchmark movements:
// cov(asset, benchmark) / var(benchmark), computed on the inner join of the
// two series. 0 with fewer than two joined observations or a flat
// benchmark.
func Beta(asset, benchmark *ReturnSeries) float64 {
	a, b := innerJoin(asset, benchmark)
	if len(a) < 2 {
		return 0
	}
	sd := stdDev(b)
	variance := sd * sd
	if variance == 0 {
		return 0
	}
	return covariance(a, b) / variance
}

// Alpha is the CAPM excess return over what beta predicts, annualized by
// mean(daily)*ppy, as a Percent. 0 with fewer than two joined observations.
func Alpha(asset, benchmark *ReturnSeries, riskFreeAnnual float64, periodsPerYear int) Percent {
	a, b := innerJoin(asset, benchmark)
	if len(a) < 2 {
		return 0
	}
	beta := Beta(asset, benchmark)
	assetAnnual := mean(a) * float64(periodsPerYear)
	benchAnnual := mean(b) * float64(periodsPerYear)
	alpha := assetAnnual - (riskFreeAnnual + beta*(benchAnnual-riskFreeAnnual))
	return Percent(alpha * 100)
}

// AnnualizedReturn compounds the first-to-last growth of the series over
// the elapsed calendar days: (last/first)^(365.25/days) - 1, as a Percent.
// 0 when the series spans no time or has fewer than two points.
func AnnualizedReturn(s *AlignedSeries) Percent {
	if s == nil || s.Len() < 2 {
		return 0
	}
	firstDay, first := s.First()
	lastDay, last := s.Last()
	days := float64(lastDay.Sub(firstDay))
	if days <= 0 || first <= 0 {
		return 0
	}
	total := last/first - 1
	return Percent((math.Pow(1+total, 365.25/days) - 1) * 100)
}

// RiskReport aggregates every risk statistic for one value series, with an
// optional benchmark.
type RiskReport struct {
	VolatilityDaily  Percent
	VolatilityAnnual Percent
	SharpeRatio      float64
	SortinoRatio     float64
	VaR95            Percent
	CVaR95           Percent
	Drawdown         Drawdown
	AnnualizedReturn Percent
	Beta             float64 // zero value when no benchmark was supplied
	Alpha            Percent
	HasBenchmark     bool
}

// NewRiskReport computes the comprehensive risk metrics for a series, and
// against the benchmark series when one is supplied (nil means none).
func NewRiskReport(s *AlignedSeries, benchmark *AlignedSeries, riskFreeAnnual float64) RiskReport {
	r := Returns(s)
	daily := r.Daily()
	report := RiskReport{
		VolatilityDaily:  Volatility(daily, false, PeriodsPerYear),
		VolatilityAnnual: Volatility(daily, true, PeriodsPerYear),
		SharpeRatio:      Sharpe(daily, riskFreeAnnual, PeriodsPerYear),
		SortinoRatio:     Sortino(daily, riskFreeAnnual, PeriodsPerYear),
		VaR95:            VaR(daily, 0.95),
		CVaR95:           CVaR(daily, 0.95),
		Drawdown:         MaxDrawdown(s),
		AnnualizedReturn: AnnualizedReturn(s),
	}
	if benchmark != nil && benchmark.Len() >= 2 {
		br := Returns(benchmark)
		if len(br.Daily()) >= 2 {
			report.Beta = Beta(r, br)
			report.Alpha = Alpha(r, br, riskFreeAnnual, PeriodsPerYear)
			report.HasBenchmark = true
		}
	}
	return report
}

// RiskCategory labels an investment by its Sharpe ratio.
func RiskCategory(sharpe float64) string {
	switch {
	case sharpe < 0:
		return "Poor (Negative Risk-Adjusted Return)"
	case sharpe < 0.5:
		return "Below Average"
	case sharpe < 1.0:
		return "Good"
	case sharpe < 2.0:
		return "Very Good"
	default:
		return "Excellent"
	}
}
