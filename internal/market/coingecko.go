package market

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// marketsEntry is one element of the CoinGecko coins/markets array. Pointer
// fields distinguish an absent field from a zero value.
type marketsEntry struct {
	ID                string   `json:"id"`
	CurrentPrice      *float64 `json:"current_price"`
	CirculatingSupply *float64 `json:"circulating_supply"`
}

// CoinGecko is a client for the aggregator's coins/markets endpoint. It
// backs the secondary tier of both the price and the supply chains.
type CoinGecko struct {
	baseURL string
	assetID string
	client  *http.Client
}

// NewCoinGecko creates a CoinGecko client for a fixed asset id.
func NewCoinGecko(baseURL, assetID string, timeout time.Duration) *CoinGecko {
	return &CoinGecko{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		assetID: assetID,
		client:  &http.Client{Timeout: timeout},
	}
}

func (c *CoinGecko) markets(ctx context.Context) ([]marketsEntry, error) {
	params := url.Values{}
	params.Set("vs_currency", "usd")
	params.Set("ids", c.assetID)
	endpoint := fmt.Sprintf("%s/coins/markets?%s", c.baseURL, params.Encode())

	body, err := httpGet(ctx, c.client, endpoint)
	if err != nil {
		return nil, fmt.Errorf("markets request failed: %w", err)
	}

	var entries []marketsEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("unexpected markets response: %w", err)
	}

	return entries, nil
}

// CurrentPrice fetches the aggregator price of the first markets entry.
func (c *CoinGecko) CurrentPrice(ctx context.Context) (float64, error) {
	entries, err := c.markets(ctx)
	if err != nil {
		return 0, err
	}

	if len(entries) == 0 || entries[0].CurrentPrice == nil {
		return 0, fmt.Errorf("markets response missing current_price")
	}

	return *entries[0].CurrentPrice, nil
}

// CirculatingSupply fetches the circulating supply of the first markets entry.
func (c *CoinGecko) CirculatingSupply(ctx context.Context) (int64, error) {
	entries, err := c.markets(ctx)
	if err != nil {
		return 0, err
	}

	if len(entries) == 0 || entries[0].CirculatingSupply == nil {
		return 0, fmt.Errorf("markets response missing circulating_supply")
	}

	return int64(*entries[0].CirculatingSupply), nil
}
