package networth

import (
	"math"
	"sort"
)

// PriceFunc returns daily closing prices for a symbol over [start, end],
// ascending by date. Errors are propagated unmodified: a missing benchmark
// is never treated as zero.
type PriceFunc func(symbol string, start, end Date) ([]PricePoint, error)

// PricePoint is one daily close.
type PricePoint struct {
	Date  Date
	Close float64
}

// StandardBenchmarks maps the common benchmark names to their symbols.
var StandardBenchmarks = map[string]string{
	"S&P 500":             "^GSPC",
	"NASDAQ Composite":    "^IXIC",
	"Dow Jones":           "^DJI",
	"Russell 2000":        "^RUT",
	"FTSE 100":            "^FTSE",
	"DAX":                 "^GDAXI",
	"Nikkei 225":          "^N225",
	"Bitcoin":             "BTC-USD",
	"Gold":                "GC=F",
	"10-Yr Treasury Yield": "^TNX",
}

// BenchmarkNames returns the standard benchmark names, sorted.
func BenchmarkNames() []string {
	names := make([]string, 0, len(StandardBenchmarks))
	for name := range StandardBenchmarks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// BenchmarkSeries shapes daily closes into an aligned value series so the
// return and risk machinery applies unchanged.
func BenchmarkSeries(symbol string, prices []PricePoint) *AlignedSeries {
	if len(prices) == 0 {
		return nil
	}
	s := &AlignedSeries{Account: symbol}
	for _, p := range prices {
		s.days = append(s.days, p.Date)
		s.values = append(s.values, p.Close)
	}
	return s
}

// Comparison holds portfolio-versus-benchmark metrics over their shared
// dates. NaN fields mean "not enough data", distinct from a computed zero.
type Comparison struct {
	PortfolioReturn     Percent // cumulative over the shared window
	BenchmarkReturn     Percent
	ExcessReturn        Percent
	PortfolioVolatility Percent // annualized, population estimator
	BenchmarkVolatility Percent
	Beta                float64
	TrackingError       Percent // annualized stdev of daily excess returns
	InformationRatio    float64
}

// Compare intersects the two series on their shared dates, rebases each in
// the shared window, and computes the comparison statistics. Zero value
// when the windows do not overlap. Population (n denominator) estimators
// throughout, so two shared observations are enough.
func Compare(portfolio, benchmark *AlignedSeries) (Comparison, bool) {
	if portfolio == nil || benchmark == nil {
		return Comparison{}, false
	}

	var pv, bv []float64
	for i := 0; i < portfolio.Len(); i++ {
		on, v := portfolio.At(i)
		b, ok := benchmark.Get(on)
		if !ok {
			continue
		}
		pv = append(pv, v)
		bv = append(bv, b)
	}
	if len(pv) < 2 || pv[0] == 0 || bv[0] == 0 {
		return Comparison{}, false
	}

	var c Comparison
	c.PortfolioReturn = Percent((pv[len(pv)-1]/pv[0] - 1) * 100)
	c.BenchmarkReturn = Percent((bv[len(bv)-1]/bv[0] - 1) * 100)
	c.ExcessReturn = c.PortfolioReturn - c.BenchmarkReturn

	pr := dailyChanges(pv)
	br := dailyChanges(bv)
	root := math.Sqrt(PeriodsPerYear)

	c.PortfolioVolatility = Percent(popStdDev(pr) * root * 100)
	c.BenchmarkVolatility = Percent(popStdDev(br) * root * 100)

	if v := popVariance(br); v != 0 {
		c.Beta = popCovariance(pr, br) / v
	} else {
		c.Beta = math.NaN()
	}

	diff := make([]float64, len(pr))
	for i := range pr {
		diff[i] = pr[i] - br[i]
	}
	c.TrackingError = Percent(popStdDev(diff) * root * 100)
	if c.TrackingError != 0 {
		c.InformationRatio = float64(c.ExcessReturn) / float64(c.TrackingError)
	} else {
		c.InformationRatio = math.NaN()
	}
	return c, true
}

// dailyChanges returns the fractional day-over-day changes, skipping
// zero-denominator steps.
func dailyChanges(values []float64) []float64 {
	var out []float64
	for i := 1; i < len(values); i++ {
		if values[i-1] == 0 {
			continue
		}
		out = append(out, values[i]/values[i-1]-1)
	}
	return out
}

// popVariance returns the population variance, 0 with fewer than two
// observations.
func popVariance(xs []float64) float64 {
	s := popStdDev(xs)
	return s * s
}

// popCovariance returns the population covariance of two equal-length
// slices.
func popCovariance(xs, ys []float64) float64 {
	if len(xs) < 2 || len(xs) != len(ys) {
		return 0
	}
	mx, my := mean(xs), mean(ys)
	var sum float64
	for i := range xs {
		sum += (xs[i] - mx) * (ys[i] - my)
	}
	return sum / float64(len(xs))
}
