package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/jmcampos/networth"
)

// SustainabilityMarkdown renders the daily income/expense ledger with
// period totals.
func SustainabilityMarkdown(rows []networth.SustainabilityRow) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Sustainability")
	if len(rows) == 0 {
		doc.PlainText("No sustainability data for the period.")
		return doc.String()
	}

	var income, expenses float64
	table := md.TableSet{
		Header: []string{"Date", "Income", "Expenses", "Delta"},
	}
	for _, row := range rows {
		income += row.TotalIncome
		expenses += row.TotalExpenses
		table.Rows = append(table.Rows, []string{
			row.Date.String(),
			fmt.Sprintf("%.2f", row.TotalIncome),
			fmt.Sprintf("%.2f", row.TotalExpenses),
			fmt.Sprintf("%+.2f", row.Delta),
		})
	}
	doc.Table(table)

	doc.H2("Period Totals")
	doc.Table(md.TableSet{
		Header: []string{"Total", "USD"},
		Rows: [][]string{
			{"Income", fmt.Sprintf("%.2f", income)},
			{"Expenses", fmt.Sprintf("%.2f", expenses)},
			{"Delta", fmt.Sprintf("%+.2f", income-expenses)},
		},
	})
	if income-expenses >= 0 {
		doc.PlainText("The period was sustainable: income covered expenses.")
	} else {
		doc.PlainText("The period was not sustainable: expenses exceeded income.")
	}

	return doc.String()
}

// CashFlowMarkdown renders inferred cash flows and the contribution split.
func CashFlowMarkdown(events []networth.CashFlowEvent, analysis networth.ContributionAnalysis, mwr, twr networth.Percent) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Cash Flow Analysis")
	if len(events) == 0 {
		doc.PlainText("Not enough history to infer cash flows.")
		return doc.String()
	}

	doc.H2("Inferred Flows")
	table := md.TableSet{
		Header: []string{"Date", "Account", "Cash Flow", "Value"},
	}
	for _, e := range events {
		table.Rows = append(table.Rows, []string{
			e.Date.String(),
			e.Account,
			fmt.Sprintf("%+.2f", e.CashFlow),
			fmt.Sprintf("%.2f", e.TotalValue),
		})
	}
	doc.Table(table)

	doc.H2("Contributions vs Growth")
	doc.Table(md.TableSet{
		Header: []string{"Split", "Value"},
		Rows: [][]string{
			{"Contributions", usd(analysis.TotalContributions)},
			{"Growth", usd(analysis.TotalGrowth)},
			{"Current Value", usd(analysis.CurrentValue)},
			{"Growth vs Contributions", analysis.GrowthPct.SignedString()},
		},
	})

	doc.H2("Returns")
	doc.Table(md.TableSet{
		Header: []string{"Measure", "Annualized"},
		Rows: [][]string{
			{"Money-Weighted (approx.)", mwr.SignedString()},
			{"Time-Weighted", twr.SignedString()},
		},
	})

	return doc.String()
}
