package networth

import "math"

// ReturnSeries holds the daily and cumulative returns derived from an
// aligned series. The first index has no prior point, so its daily return
// is "no observation" (NaN), never zero: statistics must drop it, not
// count it.
type ReturnSeries struct {
	Account    string
	days       []Date
	daily      []float64 // fraction; NaN at index 0
	cumulative []float64 // fraction vs the anchor
}

// Len returns the number of points in the series.
func (r *ReturnSeries) Len() int { return len(r.days) }

// Daily returns the daily return observations, dropping the undefined first
// point and any NaN.
func (r *ReturnSeries) Daily() []float64 {
	out := make([]float64, 0, len(r.daily))
	for _, v := range r.daily {
		if math.IsNaN(v) {
			continue
		}
		out = append(out, v)
	}
	return out
}

// DailyAt returns the date and daily return at index i; the return is NaN
// at index 0.
func (r *ReturnSeries) DailyAt(i int) (Date, float64) { return r.days[i], r.daily[i] }

// CumulativeAt returns the date and cumulative return at index i.
func (r *ReturnSeries) CumulativeAt(i int) (Date, float64) { return r.days[i], r.cumulative[i] }

// DailyOn returns the daily return on a date, false when the date is not in
// the index or the return there is undefined.
func (r *ReturnSeries) DailyOn(on Date) (float64, bool) {
	for i, d := range r.days {
		if d == on {
			if math.IsNaN(r.daily[i]) {
				return 0, false
			}
			return r.daily[i], true
		}
	}
	return 0, false
}

// Final returns the last cumulative return as a fraction, 0 for an empty
// series.
func (r *ReturnSeries) Final() float64 {
	if len(r.cumulative) == 0 {
		return 0
	}
	return r.cumulative[len(r.cumulative)-1]
}

// Returns derives the return series from an aligned series:
//
//	daily[t]      = value[t]/value[t-1] - 1
//	cumulative[t] = value[t]/anchor - 1
//
// where the anchor is the first value of the series.
func Returns(s *AlignedSeries) *ReturnSeries {
	if s == nil || s.Len() == 0 {
		return &ReturnSeries{}
	}
	r := &ReturnSeries{Account: s.Account}
	_, anchor := s.First()
	prev := math.NaN()
	for on, v := range s.Values() {
		r.days = append(r.days, on)
		if math.IsNaN(prev) || prev == 0 {
			r.daily = append(r.daily, math.NaN())
		} else {
			r.daily = append(r.daily, v/prev-1)
		}
		if anchor == 0 {
			r.cumulative = append(r.cumulative, math.NaN())
		} else {
			r.cumulative = append(r.cumulative, v/anchor-1)
		}
		prev = v
	}
	return r
}

// PerformancePoint is one date of a relative-performance curve.
type PerformancePoint struct {
	Date        Date
	AbsolutePct Percent // cumulative return vs the account's own anchor
	RelativePct Percent // AbsolutePct minus the reference's AbsolutePct
}

// RelativePerformance computes, for every account, its cumulative
// performance anchored to its own last-known value at or before start, and
// that performance relative to a reference account.
//
// The reference account's relative curve is identically zero. An account
// with no anchor in the window is absent from the result; if the reference
// itself has no anchor the whole result is empty, since there is no
// baseline to compare against.
func RelativePerformance(points []NormalizedPoint, accounts []string, reference string, start, end Date) map[string][]PerformancePoint {
	ref := Align(points, reference, start, end)
	if ref == nil {
		return map[string][]PerformancePoint{}
	}
	if _, anchor := ref.First(); anchor == 0 {
		// a zero baseline cannot seed a percentage curve
		return map[string][]PerformancePoint{}
	}
	refReturns := Returns(ref)
	refAbs := make(map[Date]float64, refReturns.Len())
	for i := range refReturns.days {
		on, cum := refReturns.CumulativeAt(i)
		refAbs[on] = cum
	}

	all := accounts
	if !contains(all, reference) {
		all = append([]string{reference}, all...)
	}

	result := make(map[string][]PerformancePoint)
	for _, account := range all {
		s := Align(points, account, start, end)
		if s == nil {
			continue
		}
		if _, anchor := s.First(); anchor == 0 {
			continue
		}
		r := Returns(s)
		var curve []PerformancePoint
		for i := range r.days {
			on, cum := r.CumulativeAt(i)
			refCum, ok := refAbs[on]
			if !ok {
				continue // relative performance is defined only where both series have values
			}
			p := PerformancePoint{Date: on, AbsolutePct: Percent(cum * 100)}
			if account == reference {
				p.RelativePct = 0
			} else {
				p.RelativePct = Percent((cum - refCum) * 100)
			}
			curve = append(curve, p)
		}
		result[account] = curve
	}
	return result
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// MoneyWeightedReturn approximates the annualized money-weighted return
// from inferred contributions and a final value.
//
// This is deliberately not a true IRR solve: it compounds the simple ratio
// of final value over total contributions across the elapsed years, which
// matches historical reported figures. Contributions are the inferred cash
// flows (deposits positive); years is the elapsed period. Returns a Percent
// on the 0-100 scale, 0 when nothing was invested.
func MoneyWeightedReturn(contributions []float64, finalValue, years float64) Percent {
	var invested float64
	for _, c := range contributions {
		invested += c
	}
	if invested <= 0 {
		return 0
	}
	if years > 0 {
		return Percent((math.Pow(finalValue/invested, 1/years) - 1) * 100)
	}
	return Percent((finalValue/invested - 1) * 100)
}

// TimeWeightedReturn annualizes the geometric compounding of the daily
// returns over the elapsed calendar days, removing the distorting effect of
// cash flows. Returns a Percent on the 0-100 scale, 0 with fewer than two
// points.
func TimeWeightedReturn(s *AlignedSeries) Percent {
	if s == nil || s.Len() < 2 {
		return 0
	}
	r := Returns(s)
	compounded := 1.0
	for _, d := range r.Daily() {
		compounded *= 1 + d
	}
	first, _ := s.First()
	last, _ := s.Last()
	days := float64(last.Sub(first))
	if days <= 0 {
		return Percent((compounded - 1) * 100)
	}
	annualized := math.Pow(compounded, 365.25/days) - 1
	return Percent(annualized * 100)
}
