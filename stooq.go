package networth

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
)

// Stooq fetches daily closing prices from stooq.com, which serves
// historical CSV without an API key. Symbols follow stooq conventions
// ("^spx", "btc.v"); StooqSymbol translates the standard benchmark
// symbols.
type Stooq struct {
	client *http.Client
}

// NewStooq returns a provider using client (http.DefaultClient when nil).
func NewStooq(client *http.Client) *Stooq {
	if client == nil {
		client = http.DefaultClient
	}
	return &Stooq{client: client}
}

// stooqSymbols maps the standard benchmark symbols to stooq tickers.
var stooqSymbols = map[string]string{
	"^GSPC":   "^spx",
	"^IXIC":   "^ndq",
	"^DJI":    "^dji",
	"^FTSE":   "^ftm",
	"^GDAXI":  "^dax",
	"^N225":   "^nkx",
	"BTC-USD": "btc.v",
	"GC=F":    "xauusd",
}

// StooqSymbol translates a standard benchmark symbol to its stooq ticker,
// passing unknown symbols through lowercased.
func StooqSymbol(symbol string) string {
	if s, ok := stooqSymbols[symbol]; ok {
		return s
	}
	return strings.ToLower(symbol)
}

// Prices implements PriceFunc: daily closes for [start, end], ascending.
func (s *Stooq) Prices(symbol string, start, end Date) ([]PricePoint, error) {
	url := fmt.Sprintf("https://stooq.com/q/d/l/?s=%s&d1=%s&d2=%s&i=d",
		StooqSymbol(symbol), start.Format("20060102"), end.Format("20060102"))
	resp, err := s.client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetch %s prices: %w", symbol, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s prices: %s", symbol, resp.Status)
	}
	points, err := parseStooqCSV(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse %s prices: %w", symbol, err)
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("no prices for %s in [%s, %s]", symbol, start, end)
	}
	return points, nil
}

// parseStooqCSV reads the Date,Open,High,Low,Close[,Volume] layout stooq
// serves, tolerating the trailing columns it sometimes omits.
func parseStooqCSV(r io.Reader) ([]PricePoint, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, err
	}
	closeCol := -1
	for i, name := range header {
		if strings.EqualFold(name, "Close") {
			closeCol = i
		}
	}
	if closeCol < 0 {
		return nil, fmt.Errorf("no Close column in %q", strings.Join(header, ","))
	}

	var points []PricePoint
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(row) <= closeCol {
			continue
		}
		on, err := ParseDate(row[0])
		if err != nil {
			return nil, fmt.Errorf("row date %q: %w", row[0], err)
		}
		c, err := strconv.ParseFloat(row[closeCol], 64)
		if err != nil {
			return nil, fmt.Errorf("row close %q: %w", row[closeCol], err)
		}
		points = append(points, PricePoint{Date: on, Close: c})
	}
	return points, nil
}
