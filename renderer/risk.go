package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/jmcampos/networth"
)

// RiskMarkdown renders a risk report for one account or the whole
// portfolio.
func RiskMarkdown(name string, r networth.RiskReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Risk Report: %s", name))
	doc.Table(md.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Annualized Return", r.AnnualizedReturn.SignedString()},
			{"Volatility (annualized)", r.VolatilityAnnual.String()},
			{"Volatility (daily)", r.VolatilityDaily.String()},
			{"Sharpe Ratio", ratio(r.SharpeRatio)},
			{"Sortino Ratio", ratio(r.SortinoRatio)},
			{"VaR 95%", r.VaR95.SignedString()},
			{"CVaR 95%", r.CVaR95.SignedString()},
		},
	})
	doc.PlainText(fmt.Sprintf("Rating: %s", networth.RiskCategory(r.SharpeRatio)))

	dd := r.Drawdown
	if dd != (networth.Drawdown{}) {
		doc.H2("Maximum Drawdown")
		rows := [][]string{
			{"Depth", dd.MaxDrawdown.SignedString()},
			{"Peak", dd.PeakDate.String()},
			{"Trough", dd.TroughDate.String()},
		}
		if dd.Recovered {
			rows = append(rows,
				[]string{"Recovered", dd.Recovery.String()},
				[]string{"Days to Recover", fmt.Sprintf("%d", dd.DaysToRecover)},
			)
		} else {
			rows = append(rows, []string{"Recovered", "not yet"})
		}
		doc.Table(md.TableSet{
			Header: []string{"Drawdown", "Value"},
			Rows:   rows,
		})
	}

	if r.HasBenchmark {
		doc.H2("Versus Benchmark")
		doc.Table(md.TableSet{
			Header: []string{"Metric", "Value"},
			Rows: [][]string{
				{"Beta", ratio(r.Beta)},
				{"Alpha", r.Alpha.SignedString()},
			},
		})
	}

	return doc.String()
}

// ComparisonMarkdown renders a portfolio-versus-benchmark comparison.
func ComparisonMarkdown(benchmark string, c networth.Comparison) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Benchmark Comparison: %s", benchmark))
	doc.Table(md.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Portfolio Return", c.PortfolioReturn.SignedString()},
			{"Benchmark Return", c.BenchmarkReturn.SignedString()},
			{"Excess Return", c.ExcessReturn.SignedString()},
			{"Portfolio Volatility", c.PortfolioVolatility.String()},
			{"Benchmark Volatility", c.BenchmarkVolatility.String()},
			{"Beta", ratio(c.Beta)},
			{"Tracking Error", c.TrackingError.String()},
			{"Information Ratio", ratio(c.InformationRatio)},
		},
	})

	return doc.String()
}
