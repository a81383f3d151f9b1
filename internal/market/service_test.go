package market

import (
	"context"
	"errors"
	"testing"

	"github.com/raykavin/nexabot/pkg/logger"
	zerologger "github.com/raykavin/nexabot/pkg/logger/zerolog"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

const manualSupply = int64(8_000_000_000_000)

func nopLogger() logger.Logger {
	z := zerolog.Nop()
	return zerologger.NewAdapter(&z)
}

func fixedPrice(name string, value float64) PriceSource {
	return PriceSource{Name: name, Fetch: func(context.Context) (float64, error) {
		return value, nil
	}}
}

func failingPrice(name string) PriceSource {
	return PriceSource{Name: name, Fetch: func(context.Context) (float64, error) {
		return 0, errors.New("source down")
	}}
}

func fixedSupply(name string, value int64) SupplySource {
	return SupplySource{Name: name, Fetch: func(context.Context) (int64, error) {
		return value, nil
	}}
}

func failingSupply(name string) SupplySource {
	return SupplySource{Name: name, Fetch: func(context.Context) (int64, error) {
		return 0, errors.New("source down")
	}}
}

func TestService_PricePrimaryWins(t *testing.T) {
	svc := NewServiceWithSources(
		[]PriceSource{fixedPrice("MEXC", 0.00012345), fixedPrice("CoinGecko", 0.00099999)},
		nil, manualSupply, nopLogger(),
	)

	quote, err := svc.Price(context.Background())
	require.NoError(t, err)
	require.Equal(t, 0.00012345, quote.Price)
	require.Equal(t, "MEXC", quote.Source)
}

func TestService_PriceFallsBackToSecondary(t *testing.T) {
	svc := NewServiceWithSources(
		[]PriceSource{failingPrice("MEXC"), fixedPrice("CoinGecko", 0.00012345)},
		nil, manualSupply, nopLogger(),
	)

	quote, err := svc.Price(context.Background())
	require.NoError(t, err)
	require.Equal(t, 0.00012345, quote.Price)
	require.Equal(t, "CoinGecko", quote.Source)
}

func TestService_PriceAllSourcesFail(t *testing.T) {
	svc := NewServiceWithSources(
		[]PriceSource{failingPrice("MEXC"), failingPrice("CoinGecko")},
		nil, manualSupply, nopLogger(),
	)

	_, err := svc.Price(context.Background())
	require.ErrorIs(t, err, ErrPriceUnavailable)
}

func TestService_SupplyPrimaryWins(t *testing.T) {
	svc := NewServiceWithSources(
		nil,
		[]SupplySource{fixedSupply("explorer", 7_000_000_000_000), fixedSupply("CoinGecko", 1)},
		manualSupply, nopLogger(),
	)

	require.Equal(t, int64(7_000_000_000_000), svc.Supply(context.Background()))
}

func TestService_SupplyFallsBackToSecondary(t *testing.T) {
	svc := NewServiceWithSources(
		nil,
		[]SupplySource{failingSupply("explorer"), fixedSupply("CoinGecko", 7_500_000_000_000)},
		manualSupply, nopLogger(),
	)

	require.Equal(t, int64(7_500_000_000_000), svc.Supply(context.Background()))
}

func TestService_SupplyFallsBackToManual(t *testing.T) {
	svc := NewServiceWithSources(
		nil,
		[]SupplySource{failingSupply("explorer"), failingSupply("CoinGecko")},
		manualSupply, nopLogger(),
	)

	// Supply never fails, it bottoms out on the manual constant
	require.Equal(t, manualSupply, svc.Supply(context.Background()))
}

func TestService_PriceSourceNames(t *testing.T) {
	svc := NewServiceWithSources(
		[]PriceSource{failingPrice("MEXC"), failingPrice("CoinGecko")},
		nil, manualSupply, nopLogger(),
	)

	require.Equal(t, []string{"MEXC", "CoinGecko"}, svc.PriceSourceNames())
}
