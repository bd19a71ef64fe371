package networth

import (
	"math"
	"sort"
)

// CorrelationMatrix is a symmetric Pearson correlation matrix over the
// daily returns of a set of accounts.
type CorrelationMatrix struct {
	accounts []string
	index    map[string]int
	data     [][]float64
}

// Accounts returns the account names, in matrix order.
func (m *CorrelationMatrix) Accounts() []string { return m.accounts }

// Len returns the number of accounts in the matrix.
func (m *CorrelationMatrix) Len() int { return len(m.accounts) }

// At returns the correlation between the i-th and j-th accounts.
func (m *CorrelationMatrix) At(i, j int) float64 { return m.data[i][j] }

// Corr returns the correlation between two accounts by name, false when
// either account is not part of the matrix.
func (m *CorrelationMatrix) Corr(a, b string) (float64, bool) {
	i, ok1 := m.index[a]
	j, ok2 := m.index[b]
	if !ok1 || !ok2 {
		return 0, false
	}
	return m.data[i][j], true
}

// pearson computes the Pearson correlation coefficient of two equal-length
// slices, NaN when either side is constant.
func pearson(xs, ys []float64) float64 {
	sx, sy := stdDev(xs), stdDev(ys)
	if sx == 0 || sy == 0 {
		return math.NaN()
	}
	return covariance(xs, ys) / (sx * sy)
}

// returnColumns builds the complete-case daily-return columns across
// accounts: a wide table of forward-filled values (accounts joining later
// have leading gaps, never zeros), converted to percentage returns, with
// the undefined first row and every incomplete row dropped. Correlation
// needs a complete-case matrix across all included accounts. days holds
// the date of each surviving row.
func returnColumns(points []NormalizedPoint, accounts []string, start, end Date) (kept []string, days []Date, cols [][]float64) {
	type column struct {
		account string
		hist    History[float64]
		first   Date
	}
	var columns []*column
	for _, account := range accounts {
		c := &column{account: account}
		for _, p := range points {
			if p.Account != account || p.Date.Before(start) || p.Date.After(end) {
				continue
			}
			c.hist.Append(p.Date, p.Value)
		}
		if c.hist.Len() < 2 {
			continue // cannot produce a single return
		}
		for on := range c.hist.Values() {
			c.first = on
			break
		}
		columns = append(columns, c)
	}
	if len(columns) < 2 {
		return nil, nil, nil
	}

	// union of observation dates across the kept columns
	var dates History[float64]
	for _, c := range columns {
		for on := range c.hist.Values() {
			dates.Append(on, 0)
		}
	}

	// forward-filled wide values; a date before a column's first
	// observation is a gap, never a zero
	values := make([][]float64, len(columns))
	for i, c := range columns {
		for on := range dates.Values() {
			if on.Before(c.first) {
				values[i] = append(values[i], math.NaN())
				continue
			}
			v, _ := c.hist.ValueAsOf(on)
			values[i] = append(values[i], v)
		}
	}

	// percentage returns per column, then complete-case rows only
	cols = make([][]float64, len(columns))
	for row := 1; row < dates.Len(); row++ {
		complete := true
		rets := make([]float64, len(columns))
		for i := range columns {
			prev, cur := values[i][row-1], values[i][row]
			if math.IsNaN(prev) || math.IsNaN(cur) || prev == 0 {
				complete = false
				break
			}
			rets[i] = cur/prev - 1
		}
		if !complete {
			continue
		}
		days = append(days, dates.days[row])
		for i := range columns {
			cols[i] = append(cols[i], rets[i])
		}
	}
	for _, c := range columns {
		kept = append(kept, c.account)
	}
	return kept, days, cols
}

// NewCorrelationMatrix builds the return-correlation matrix across accounts
// for the window. It returns nil when fewer than two accounts have usable
// series or fewer than two complete-case observations remain.
func NewCorrelationMatrix(points []NormalizedPoint, accounts []string, start, end Date) *CorrelationMatrix {
	kept, _, cols := returnColumns(points, accounts, start, end)
	if len(kept) < 2 || len(cols[0]) < 2 {
		return nil
	}
	m := &CorrelationMatrix{
		accounts: kept,
		index:    make(map[string]int, len(kept)),
		data:     make([][]float64, len(kept)),
	}
	for i, account := range kept {
		m.index[account] = i
		m.data[i] = make([]float64, len(kept))
	}
	for i := range kept {
		m.data[i][i] = 1.0
		for j := i + 1; j < len(kept); j++ {
			c := pearson(cols[i], cols[j])
			m.data[i][j] = c
			m.data[j][i] = c
		}
	}
	return m
}

// DiversificationScore maps the weighted average off-diagonal correlation
// to a 0-100 score (higher = lower co-movement = better diversified).
// Equal weights are used when weights is nil. A degenerate matrix (fewer
// than two accounts) scores 0.
func DiversificationScore(m *CorrelationMatrix, weights map[string]float64) float64 {
	if m == nil || m.Len() < 2 {
		return 0
	}
	if weights == nil {
		weights = make(map[string]float64, m.Len())
		for _, account := range m.accounts {
			weights[account] = 1 / float64(m.Len())
		}
	}
	var weighted, total float64
	for i, a := range m.accounts {
		for j, b := range m.accounts {
			if i == j {
				continue
			}
			w := weights[a] * weights[b]
			weighted += w * m.data[i][j]
			total += w
		}
	}
	if total == 0 {
		return 0
	}
	score := (1 - weighted/total) * 50
	return math.Max(0, math.Min(100, score))
}

// CorrelatedPair is one account pair flagged by a correlation threshold.
type CorrelatedPair struct {
	A, B        string
	Correlation float64
}

// HighlyCorrelatedPairs enumerates the upper triangle once and returns the
// pairs with |corr| >= threshold, strongest first.
func HighlyCorrelatedPairs(m *CorrelationMatrix, threshold float64) []CorrelatedPair {
	return filterPairs(m, func(c float64) bool { return math.Abs(c) >= threshold }, func(p []CorrelatedPair) {
		sort.Slice(p, func(i, j int) bool {
			return math.Abs(p[i].Correlation) > math.Abs(p[j].Correlation)
		})
	})
}

// UncorrelatedPairs returns the pairs with |corr| <= threshold, weakest
// first.
func UncorrelatedPairs(m *CorrelationMatrix, threshold float64) []CorrelatedPair {
	return filterPairs(m, func(c float64) bool { return math.Abs(c) <= threshold }, func(p []CorrelatedPair) {
		sort.Slice(p, func(i, j int) bool {
			return math.Abs(p[i].Correlation) < math.Abs(p[j].Correlation)
		})
	})
}

func filterPairs(m *CorrelationMatrix, keep func(float64) bool, order func([]CorrelatedPair)) []CorrelatedPair {
	if m == nil {
		return nil
	}
	var pairs []CorrelatedPair
	for i := 0; i < m.Len(); i++ {
		for j := i + 1; j < m.Len(); j++ {
			c := m.data[i][j]
			if math.IsNaN(c) || !keep(c) {
				continue
			}
			pairs = append(pairs, CorrelatedPair{A: m.accounts[i], B: m.accounts[j], Correlation: c})
		}
	}
	order(pairs)
	return pairs
}

// RollingCorrelationPoint is the correlation of two accounts over one
// trailing window.
type RollingCorrelationPoint struct {
	Date        Date
	Correlation float64
}

// RollingCorrelation computes the trailing-window correlation between two
// accounts' daily returns over their joined observation dates. Windows with
// a constant side are skipped. Returns nil when the window is not positive
// or fewer observations than the window exist.
func RollingCorrelation(points []NormalizedPoint, a, b string, window int, start, end Date) []RollingCorrelationPoint {
	if window < 1 {
		return nil
	}
	kept, days, cols := returnColumns(points, []string{a, b}, start, end)
	if len(kept) != 2 || len(cols[0]) < window {
		return nil
	}
	var out []RollingCorrelationPoint
	for i := window; i <= len(cols[0]); i++ {
		c := pearson(cols[0][i-window:i], cols[1][i-window:i])
		if math.IsNaN(c) {
			continue
		}
		out = append(out, RollingCorrelationPoint{Date: days[i-1], Correlation: c})
	}
	return out
}
