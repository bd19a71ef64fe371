package networth

import "iter"

// AlignedSeries is a dense business-day series for one account (or the
// portfolio aggregate) over a window, produced by forward-filling sparse
// observations and anchored to the latest observation at or before the
// window start.
type AlignedSeries struct {
	Account string
	days    []Date
	values  []float64
}

// Len returns the number of points in the series.
func (s *AlignedSeries) Len() int { return len(s.days) }

// First returns the first date and value (the anchor value by construction).
func (s *AlignedSeries) First() (Date, float64) {
	if len(s.days) == 0 {
		return Date{}, 0
	}
	return s.days[0], s.values[0]
}

// Last returns the last date and value.
func (s *AlignedSeries) Last() (Date, float64) {
	if len(s.days) == 0 {
		return Date{}, 0
	}
	return s.days[len(s.days)-1], s.values[len(s.days)-1]
}

// At returns the i-th date and value.
func (s *AlignedSeries) At(i int) (Date, float64) { return s.days[i], s.values[i] }

// Values returns an iterator over all date/value pairs in chronological order.
func (s *AlignedSeries) Values() iter.Seq2[Date, float64] {
	return func(yield func(Date, float64) bool) {
		for i, on := range s.days {
			if !yield(on, s.values[i]) {
				return
			}
		}
	}
}

// Get returns the value at the given date and true, or 0 and false when the
// date is not part of the index.
func (s *AlignedSeries) Get(on Date) (float64, bool) {
	for i, d := range s.days {
		if d == on {
			return s.values[i], true
		}
		if d.After(on) {
			break
		}
	}
	return 0, false
}

// Truncate returns the prefix of the series up to and including the given
// date. The result shares no memory with the receiver.
func (s *AlignedSeries) Truncate(to Date) *AlignedSeries {
	out := &AlignedSeries{Account: s.Account}
	for i, d := range s.days {
		if d.After(to) {
			break
		}
		out.days = append(out.days, d)
		out.values = append(out.values, s.values[i])
	}
	return out
}

// Align builds the dense business-day series for one account over
// [start, end].
//
// The anchor is the latest point at or before start; when no anchor exists
// the account has no data as of the window start and nil is returned —
// the caller must exclude the account rather than assume a zero value.
// Each business day carries the most recent observation at or before it,
// and a gap extending past the last observation keeps the last known value
// through end.
func Align(points []NormalizedPoint, account string, start, end Date) *AlignedSeries {
	if end.Before(start) {
		return nil
	}
	var h History[float64]
	for _, p := range points {
		if p.Account != account || p.Date.After(end) {
			continue
		}
		h.Append(p.Date, p.Value)
	}
	if _, ok := h.ValueAsOf(start); !ok {
		return nil // no anchor
	}
	s := &AlignedSeries{Account: account}
	for day := range NewRange(start, end).BusinessDays() {
		v, _ := h.ValueAsOf(day) // anchored, so every business day has a value
		s.days = append(s.days, day)
		s.values = append(s.values, v)
	}
	if len(s.days) == 0 {
		return nil // window contains no business day
	}
	return s
}

// AlignTotal builds the aligned series of the summed USD value across all
// accounts that have an anchor for the window. Accounts without an anchor
// are excluded entirely, never defaulted to zero.
func AlignTotal(points []NormalizedPoint, start, end Date) *AlignedSeries {
	accounts := make(map[string]struct{})
	for _, p := range points {
		accounts[p.Account] = struct{}{}
	}
	var total *AlignedSeries
	for account := range accounts {
		s := Align(points, account, start, end)
		if s == nil {
			continue
		}
		if total == nil {
			total = &AlignedSeries{Account: "total"}
			total.days = append(total.days, s.days...)
			total.values = append(total.values, s.values...)
			continue
		}
		for i := range total.values {
			total.values[i] += s.values[i]
		}
	}
	return total
}
