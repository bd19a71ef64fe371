package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/jmcampos/networth"
)

// CorrelationMarkdown renders the correlation matrix, the diversification
// score, and the flagged pairs.
func CorrelationMarkdown(m *networth.CorrelationMatrix, score float64) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Correlation Analysis")
	if m == nil {
		doc.PlainText("Not enough overlapping history to correlate accounts.")
		return doc.String()
	}

	accounts := m.Accounts()
	table := md.TableSet{Header: append([]string{""}, accounts...)}
	for i, a := range accounts {
		row := []string{a}
		for j := range accounts {
			row = append(row, fmt.Sprintf("%.2f", m.At(i, j)))
		}
		table.Rows = append(table.Rows, row)
	}
	doc.Table(table)

	doc.H2("Diversification")
	doc.PlainText(fmt.Sprintf("Score: %.0f / 100 (higher is better diversified)", score))

	if high := networth.HighlyCorrelatedPairs(m, 0.7); len(high) > 0 {
		doc.H2("Highly Correlated Pairs")
		pairs := md.TableSet{Header: []string{"Pair", "Correlation"}}
		for _, p := range high {
			pairs.Rows = append(pairs.Rows, []string{
				fmt.Sprintf("%s / %s", p.A, p.B),
				fmt.Sprintf("%.2f", p.Correlation),
			})
		}
		doc.Table(pairs)
	}
	if low := networth.UncorrelatedPairs(m, 0.3); len(low) > 0 {
		doc.H2("Diversifying Pairs")
		pairs := md.TableSet{Header: []string{"Pair", "Correlation"}}
		for _, p := range low {
			pairs.Rows = append(pairs.Rows, []string{
				fmt.Sprintf("%s / %s", p.A, p.B),
				fmt.Sprintf("%.2f", p.Correlation),
			})
		}
		doc.Table(pairs)
	}

	return doc.String()
}

// RollingCorrelationMarkdown renders the correlation of one pair over a
// sliding window.
func RollingCorrelationMarkdown(a, b string, window int, points []networth.RollingCorrelationPoint) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Rolling Correlation: %s / %s (%d-day window)", a, b, window))
	if len(points) == 0 {
		doc.PlainText("Not enough overlapping history for the window.")
		return doc.String()
	}

	table := md.TableSet{
		Header: []string{"Date", "Correlation"},
	}
	for _, p := range points {
		table.Rows = append(table.Rows, []string{
			p.Date.String(),
			fmt.Sprintf("%.2f", p.Correlation),
		})
	}
	doc.Table(table)

	return doc.String()
}
