// Package market resolves the asset price and circulating supply from
// upstream REST APIs through fixed-priority fallback chains.
package market

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// httpGet performs a single GET request and returns the response body.
// Non-2xx statuses are errors; the caller decides whether to fall back.
func httpGet(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	res, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", res.Status)
	}

	return io.ReadAll(res.Body)
}
