package market

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Explorer is a client for the block explorer coinsupply endpoint.
type Explorer struct {
	supplyURL string
	client    *http.Client
}

// NewExplorer creates an explorer client for a fixed coinsupply URL.
func NewExplorer(supplyURL string, timeout time.Duration) *Explorer {
	return &Explorer{
		supplyURL: supplyURL,
		client:    &http.Client{Timeout: timeout},
	}
}

// CoinSupply fetches the circulating supply reported by the explorer. The
// endpoint's response format is inconsistent: sometimes a JSON number,
// sometimes a bare integer with surrounding whitespace. Both forms are
// accepted, JSON first.
func (e *Explorer) CoinSupply(ctx context.Context) (int64, error) {
	body, err := httpGet(ctx, e.client, e.supplyURL)
	if err != nil {
		return 0, fmt.Errorf("coinsupply request failed: %w", err)
	}

	var number float64
	if err := json.Unmarshal(body, &number); err == nil {
		return int64(number), nil
	}

	supply, err := strconv.ParseInt(strings.TrimSpace(string(body)), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("unparseable coinsupply response %q", strings.TrimSpace(string(body)))
	}

	return supply, nil
}
