package market

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func explorerServer(t *testing.T, body string, status int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestExplorer_CoinSupplyJSONNumber(t *testing.T) {
	srv := explorerServer(t, `8000000000000`, http.StatusOK)

	client := NewExplorer(srv.URL, time.Second)
	supply, err := client.CoinSupply(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(8_000_000_000_000), supply)
}

func TestExplorer_CoinSupplyTextWithWhitespace(t *testing.T) {
	srv := explorerServer(t, "  8000000000000\n", http.StatusOK)

	client := NewExplorer(srv.URL, time.Second)
	supply, err := client.CoinSupply(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(8_000_000_000_000), supply)
}

func TestExplorer_CoinSupplyLeadingZeros(t *testing.T) {
	// Not valid JSON, only the plain-text parse accepts it
	srv := explorerServer(t, "0008000000000000", http.StatusOK)

	client := NewExplorer(srv.URL, time.Second)
	supply, err := client.CoinSupply(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(8_000_000_000_000), supply)
}

func TestExplorer_CoinSupplyGarbage(t *testing.T) {
	srv := explorerServer(t, "supply unavailable", http.StatusOK)

	client := NewExplorer(srv.URL, time.Second)
	_, err := client.CoinSupply(context.Background())
	require.ErrorContains(t, err, "unparseable coinsupply")
}

func TestExplorer_CoinSupplyUpstreamError(t *testing.T) {
	srv := explorerServer(t, "", http.StatusServiceUnavailable)

	client := NewExplorer(srv.URL, time.Second)
	_, err := client.CoinSupply(context.Background())
	require.ErrorContains(t, err, "unexpected status")
}
