package renderer

import (
	"bytes"
	"fmt"
	"sort"

	md "github.com/nao1215/markdown"

	"github.com/jmcampos/networth"
)

// RelativeMarkdown renders the relative-performance comparison: each
// account's cumulative performance and its spread against the reference,
// at the end of the window.
func RelativeMarkdown(reference string, curves map[string][]networth.PerformancePoint) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Performance Relative to %s", reference))
	if len(curves) == 0 {
		doc.PlainText(fmt.Sprintf("No data for reference %q in the window.", reference))
		return doc.String()
	}

	accounts := make([]string, 0, len(curves))
	for account := range curves {
		accounts = append(accounts, account)
	}
	sort.Strings(accounts)

	table := md.TableSet{
		Header: []string{"Account", "Absolute", "Relative"},
	}
	for _, account := range accounts {
		curve := curves[account]
		if len(curve) == 0 {
			continue
		}
		last := curve[len(curve)-1]
		table.Rows = append(table.Rows, []string{
			account,
			last.AbsolutePct.SignedString(),
			last.RelativePct.SignedString(),
		})
	}
	doc.Table(table)

	return doc.String()
}

// HistoryMarkdown renders one account's aligned value history.
func HistoryMarkdown(s *networth.AlignedSeries) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	if s == nil || s.Len() == 0 {
		doc.H1("History")
		doc.PlainText("No data in the window.")
		return doc.String()
	}

	doc.H1(fmt.Sprintf("History: %s", s.Account))
	r := networth.Returns(s)
	table := md.TableSet{
		Header: []string{"Date", "Value (USD)", "Cumulative"},
	}
	for i := 0; i < s.Len(); i++ {
		on, v := s.At(i)
		_, cum := r.CumulativeAt(i)
		table.Rows = append(table.Rows, []string{
			on.String(),
			fmt.Sprintf("%.2f", v),
			pct(cum * 100),
		})
	}
	doc.Table(table)

	return doc.String()
}
