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

func TestMEXC_TickerPrice(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v3/ticker/price", r.URL.Path)
		require.Equal(t, "NEXAUSDT", r.URL.Query().Get("symbol"))
		fmt.Fprint(w, `{"symbol":"NEXAUSDT","price":"0.00012345"}`)
	}))
	defer srv.Close()

	client := NewMEXC(srv.URL, "NEXAUSDT", time.Second)
	price, err := client.TickerPrice(context.Background())
	require.NoError(t, err)
	require.Equal(t, 0.00012345, price)
}

func TestMEXC_TickerPriceMissingField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"symbol":"NEXAUSDT"}`)
	}))
	defer srv.Close()

	client := NewMEXC(srv.URL, "NEXAUSDT", time.Second)
	_, err := client.TickerPrice(context.Background())
	require.ErrorContains(t, err, "missing price")
}

func TestMEXC_TickerPriceMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `<html>maintenance</html>`)
	}))
	defer srv.Close()

	client := NewMEXC(srv.URL, "NEXAUSDT", time.Second)
	_, err := client.TickerPrice(context.Background())
	require.Error(t, err)
}

func TestMEXC_TickerPriceUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewMEXC(srv.URL, "NEXAUSDT", time.Second)
	_, err := client.TickerPrice(context.Background())
	require.ErrorContains(t, err, "unexpected status")
}
