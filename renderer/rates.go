package renderer

import (
	"bytes"
	"fmt"
	"sort"

	md "github.com/nao1215/markdown"
)

// RatesMarkdown renders the USD conversion rate of each currency.
func RatesMarkdown(rates map[string]float64) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Exchange Rates")

	currencies := make([]string, 0, len(rates))
	for cur := range rates {
		currencies = append(currencies, cur)
	}
	sort.Strings(currencies)

	table := md.TableSet{
		Header: []string{"Currency", "USD per unit"},
	}
	for _, cur := range currencies {
		table.Rows = append(table.Rows, []string{cur, fmt.Sprintf("%.4f", rates[cur])})
	}
	doc.Table(table)

	return doc.String()
}
