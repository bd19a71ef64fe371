package networth

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"sync"
	"time"
)

const exchangerateAPIKey = "EXCHANGERATE_API_KEY"

// fallbackRates are approximate USD-to-currency rates used when no API key
// is configured, so the tool stays usable offline.
var fallbackRates = map[string]float64{
	"USD": 1.0, "EUR": 0.92, "GBP": 0.78, "CAD": 1.35, "AUD": 1.45,
	"JPY": 108.0, "CHF": 0.87, "CNY": 7.1, "INR": 83.5, "BRL": 5.2,
	"MXN": 19.8, "SGD": 1.34, "NZD": 1.55, "SEK": 10.2, "NOK": 10.5,
	"DKK": 6.85, "PLN": 4.2, "CLP": 850.0,
}

// RateCache caches USD conversion rates from the ExchangeRate API (v6)
// with a TTL. The returned rate is currency-to-USD, so a normalized value
// is amount * rate. USD is pinned to 1.0 and never hits the network.
//
// The zero TTL means never expire; now is injectable for tests.
type RateCache struct {
	client *http.Client
	apiKey string
	ttl    time.Duration
	now    func() time.Time

	mu      sync.Mutex
	rates   map[string]float64 // USD to currency, as the API returns them
	fetched time.Time
}

// NewRateCache returns a cache fetching with client (http.DefaultClient
// when nil). The API key comes from the EXCHANGERATE_API_KEY environment
// variable when apiKey is empty; with no key at all the fallback table
// serves instead of the network.
func NewRateCache(client *http.Client, apiKey string, ttl time.Duration) *RateCache {
	if client == nil {
		client = http.DefaultClient
	}
	if apiKey == "" {
		apiKey = os.Getenv(exchangerateAPIKey)
	}
	return &RateCache{client: client, apiKey: apiKey, ttl: ttl, now: time.Now}
}

// Rate returns the currency-to-USD conversion rate. Unknown currencies and
// upstream failures are errors, never guessed rates.
func (c *RateCache) Rate(currency string) (float64, error) {
	if currency == "USD" {
		return 1.0, nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.rates == nil || (c.ttl > 0 && c.now().Sub(c.fetched) >= c.ttl) {
		if err := c.refresh(); err != nil {
			return 0, err
		}
	}
	r, ok := c.rates[currency]
	if !ok || r == 0 {
		return 0, fmt.Errorf("no exchange rate for %q", currency)
	}
	// the API quotes USD to currency, invert for currency to USD
	return 1.0 / r, nil
}

// refresh repopulates the rate table, from the fallback table when no API
// key is configured. Callers hold the mutex.
func (c *RateCache) refresh() error {
	if c.apiKey == "" {
		c.rates = fallbackRates
		c.fetched = c.now()
		return nil
	}

	url := fmt.Sprintf("https://v6.exchangerate-api.com/v6/%s/latest/USD", c.apiKey)
	resp, err := c.client.Get(url)
	if err != nil {
		return fmt.Errorf("fetch exchange rates: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetch exchange rates: %s", resp.Status)
	}

	var payload struct {
		Result          string             `json:"result"`
		ErrorType       string             `json:"error-type"`
		ConversionRates map[string]float64 `json:"conversion_rates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return fmt.Errorf("decode exchange rates: %w", err)
	}
	if payload.Result != "success" {
		return fmt.Errorf("exchange rate api: %s", payload.ErrorType)
	}
	c.rates = payload.ConversionRates
	c.fetched = c.now()
	return nil
}
