package market

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// tickerResponse represents the MEXC spot ticker response.
// The price comes string-encoded.
type tickerResponse struct {
	Symbol string `json:"symbol"`
	Price  string `json:"price"`
}

// MEXC is a client for the exchange spot ticker endpoint.
type MEXC struct {
	baseURL string
	symbol  string
	client  *http.Client
}

// NewMEXC creates a MEXC client for a fixed trading symbol.
func NewMEXC(baseURL, symbol string, timeout time.Duration) *MEXC {
	return &MEXC{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		symbol:  symbol,
		client:  &http.Client{Timeout: timeout},
	}
}

// TickerPrice fetches the last traded price for the configured symbol.
func (m *MEXC) TickerPrice(ctx context.Context) (float64, error) {
	endpoint := fmt.Sprintf("%s/api/v3/ticker/price?symbol=%s", m.baseURL, url.QueryEscape(m.symbol))

	body, err := httpGet(ctx, m.client, endpoint)
	if err != nil {
		return 0, fmt.Errorf("ticker request failed: %w", err)
	}

	var ticker tickerResponse
	if err := json.Unmarshal(body, &ticker); err != nil {
		return 0, fmt.Errorf("unexpected ticker response: %w", err)
	}

	if ticker.Price == "" {
		return 0, fmt.Errorf("ticker response missing price field")
	}

	price, err := strconv.ParseFloat(ticker.Price, 64)
	if err != nil {
		return 0, fmt.Errorf("unparseable ticker price %q: %w", ticker.Price, err)
	}

	return price, nil
}
