// Package renderer turns analytics results into markdown reports.
package renderer

import "fmt"

// pct formats a 0-100 scale percentage with a sign.
func pct(v float64) string { return fmt.Sprintf("%+.2f%%", v) }

// ratio formats a unitless ratio.
func ratio(v float64) string { return fmt.Sprintf("%.2f", v) }

// usd formats a USD amount.
func usd(v float64) string { return fmt.Sprintf("%.2f USD", v) }
