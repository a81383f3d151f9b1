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

const marketsBody = `[{"id":"nexa","current_price":0.00012345,"circulating_supply":8000000000000}]`

func coinGeckoServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/coins/markets", r.URL.Path)
		require.Equal(t, "usd", r.URL.Query().Get("vs_currency"))
		require.Equal(t, "nexa", r.URL.Query().Get("ids"))
		fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestCoinGecko_CurrentPrice(t *testing.T) {
	srv := coinGeckoServer(t, marketsBody)

	client := NewCoinGecko(srv.URL, "nexa", time.Second)
	price, err := client.CurrentPrice(context.Background())
	require.NoError(t, err)
	require.Equal(t, 0.00012345, price)
}

func TestCoinGecko_CirculatingSupply(t *testing.T) {
	srv := coinGeckoServer(t, marketsBody)

	client := NewCoinGecko(srv.URL, "nexa", time.Second)
	supply, err := client.CirculatingSupply(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(8_000_000_000_000), supply)
}

func TestCoinGecko_EmptyMarkets(t *testing.T) {
	srv := coinGeckoServer(t, `[]`)

	client := NewCoinGecko(srv.URL, "nexa", time.Second)

	_, err := client.CurrentPrice(context.Background())
	require.ErrorContains(t, err, "missing current_price")

	_, err = client.CirculatingSupply(context.Background())
	require.ErrorContains(t, err, "missing circulating_supply")
}

func TestCoinGecko_MissingFields(t *testing.T) {
	srv := coinGeckoServer(t, `[{"id":"nexa"}]`)

	client := NewCoinGecko(srv.URL, "nexa", time.Second)

	_, err := client.CurrentPrice(context.Background())
	require.ErrorContains(t, err, "missing current_price")

	_, err = client.CirculatingSupply(context.Background())
	require.ErrorContains(t, err, "missing circulating_supply")
}

func TestCoinGecko_MalformedBody(t *testing.T) {
	srv := coinGeckoServer(t, `{"error":"rate limited"}`)

	client := NewCoinGecko(srv.URL, "nexa", time.Second)
	_, err := client.CurrentPrice(context.Background())
	require.ErrorContains(t, err, "unexpected markets response")
}
