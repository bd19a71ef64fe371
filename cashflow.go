package networth

import (
	"math"
	"sort"
)

// CashFlowEvent is one inferred deposit or withdrawal for an account on a
// date. Derived on demand, never persisted.
type CashFlowEvent struct {
	Date       Date
	Account    string
	CashFlow   float64 // inferred, USD; positive = deposit
	TotalValue float64 // the account's USD value on that date
}

// InferCashFlows estimates deposits and withdrawals from value changes net
// of an expected organic-return component. The expected change of an
// account is its previous value times the day-over-day return of the summed
// portfolio value; whatever remains of the actual change is treated as new
// money in or out. The first observation of an account counts wholly as an
// initial deposit. This is a documented approximation: it assumes every
// account earns the portfolio's blended return.
func InferCashFlows(points []NormalizedPoint) []CashFlowEvent {
	if len(points) == 0 {
		return nil
	}

	// day-over-day return of the summed portfolio value
	var totals History[float64]
	for _, p := range points {
		v, _ := totals.Get(p.Date)
		totals.Append(p.Date, v+p.Value)
	}
	portfolioReturn := make(map[Date]float64, totals.Len())
	prev := math.NaN()
	for on, total := range totals.Values() {
		if !math.IsNaN(prev) && prev != 0 {
			portfolioReturn[on] = total/prev - 1
		} else {
			portfolioReturn[on] = math.NaN()
		}
		prev = total
	}

	byAccount := make(map[string]*History[float64])
	var accounts []string
	for _, p := range points {
		h, ok := byAccount[p.Account]
		if !ok {
			h = &History[float64]{}
			byAccount[p.Account] = h
			accounts = append(accounts, p.Account)
		}
		h.Append(p.Date, p.Value)
	}
	sort.Strings(accounts)

	var events []CashFlowEvent
	for _, account := range accounts {
		h := byAccount[account]
		if h.Len() < 2 {
			continue
		}
		first := true
		prevValue := 0.0
		for on, value := range h.Values() {
			if first {
				events = append(events, CashFlowEvent{Date: on, Account: account, CashFlow: value, TotalValue: value})
				prevValue = value
				first = false
				continue
			}
			r := portfolioReturn[on]
			if math.IsNaN(r) {
				prevValue = value
				continue
			}
			expected := prevValue * r
			events = append(events, CashFlowEvent{
				Date:       on,
				Account:    account,
				CashFlow:   (value - prevValue) - expected,
				TotalValue: value,
			})
			prevValue = value
		}
	}
	return events
}

// ContributionAnalysis splits the current portfolio value into new money
// and organic growth.
type ContributionAnalysis struct {
	TotalContributions float64
	TotalGrowth        float64
	CurrentValue       float64
	GrowthPct          Percent // growth relative to contributions
}

// ContributionVsGrowth sums the inferred cash flows and attributes the rest
// of the current value to investment growth. Zero-valued when no events or
// no current value exist.
func ContributionVsGrowth(events []CashFlowEvent, currentValue float64) ContributionAnalysis {
	if len(events) == 0 || currentValue == 0 {
		return ContributionAnalysis{}
	}
	var contributions float64
	for _, e := range events {
		contributions += e.CashFlow
	}
	growth := currentValue - contributions
	a := ContributionAnalysis{
		TotalContributions: contributions,
		TotalGrowth:        growth,
		CurrentValue:       currentValue,
	}
	if contributions > 0 {
		a.GrowthPct = Percent(growth / contributions * 100)
	}
	return a
}

// PortfolioMoneyWeightedReturn aggregates inferred cash flows and hands
// them to the money-weighted approximation over the events' date span.
func PortfolioMoneyWeightedReturn(events []CashFlowEvent) Percent {
	if len(events) < 2 {
		return 0
	}
	sorted := make([]CashFlowEvent, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date.Before(sorted[j].Date) })

	contributions := make([]float64, len(sorted))
	for i, e := range sorted {
		contributions[i] = e.CashFlow
	}
	// the documented approximation: the last event's account value stands
	// in for the final portfolio value
	final := sorted[len(sorted)-1].TotalValue
	days := sorted[len(sorted)-1].Date.Sub(sorted[0].Date)
	return MoneyWeightedReturn(contributions, final, float64(days)/365.25)
}
