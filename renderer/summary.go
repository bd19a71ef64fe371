package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/jmcampos/networth"
)

// Summary holds everything the summary report shows for one date.
type Summary struct {
	Date     networth.Date
	TotalUSD float64
	Accounts []SummaryAccount
}

// SummaryAccount is one account line of the summary.
type SummaryAccount struct {
	Account  string
	Value    networth.Money
	ValueUSD float64
	Delta    *float64 // USD change since the previous observation, nil when none
}

// SummaryMarkdown renders the portfolio summary.
func SummaryMarkdown(s *Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Net Worth Summary on %s", s.Date))
	doc.PlainText(fmt.Sprintf("Total Value: %s", usd(s.TotalUSD)))

	if len(s.Accounts) > 0 {
		doc.H2("Accounts")
		table := md.TableSet{
			Header: []string{"Account", "Value", "USD", "Change"},
		}
		for _, a := range s.Accounts {
			change := "n/a"
			if a.Delta != nil {
				change = fmt.Sprintf("%+.2f", *a.Delta)
			}
			table.Rows = append(table.Rows, []string{
				a.Account,
				a.Value.String(),
				fmt.Sprintf("%.2f", a.ValueUSD),
				change,
			})
		}
		doc.Table(table)
	}

	return doc.String()
}
