package market

import (
	"context"
	"errors"
	"time"

	"github.com/raykavin/nexabot/pkg/core"
	"github.com/raykavin/nexabot/pkg/logger"

	"github.com/samber/lo"
)

// ErrPriceUnavailable reports that every price tier failed; the price is
// genuinely unknown and no report can be produced.
var ErrPriceUnavailable = errors.New("price unavailable from all sources")

// PriceSource is one tier of the price fallback chain.
type PriceSource struct {
	Name  string
	Fetch func(ctx context.Context) (float64, error)
}

// SupplySource is one tier of the supply fallback chain.
type SupplySource struct {
	Name  string
	Fetch func(ctx context.Context) (int64, error)
}

// Service resolves price and circulating supply through fixed-priority
// fallback chains. Tiers are attempted strictly in order, one attempt each;
// the first usable value wins. No error from a tier ever escapes: price
// exhaustion collapses into ErrPriceUnavailable and supply exhaustion into
// the manual constant.
type Service struct {
	log           logger.Logger
	priceSources  []PriceSource
	supplySources []SupplySource
	manualSupply  int64
}

// NewService builds the default chains: MEXC then CoinGecko for the price,
// explorer then CoinGecko for the supply.
func NewService(settings core.MarketSettings, timeout time.Duration, log logger.Logger) *Service {
	mexc := NewMEXC(settings.MEXCBaseURL, settings.TickerSymbol, timeout)
	gecko := NewCoinGecko(settings.CoinGeckoBaseURL, settings.CoinGeckoID, timeout)
	explorer := NewExplorer(settings.ExplorerSupplyURL, timeout)

	return NewServiceWithSources(
		[]PriceSource{
			{Name: "MEXC", Fetch: mexc.TickerPrice},
			{Name: "CoinGecko", Fetch: gecko.CurrentPrice},
		},
		[]SupplySource{
			{Name: "explorer", Fetch: explorer.CoinSupply},
			{Name: "CoinGecko", Fetch: gecko.CirculatingSupply},
		},
		settings.ManualSupply,
		log,
	)
}

// NewServiceWithSources builds a service over custom chains.
func NewServiceWithSources(price []PriceSource, supply []SupplySource, manualSupply int64, log logger.Logger) *Service {
	return &Service{
		log:           log,
		priceSources:  price,
		supplySources: supply,
		manualSupply:  manualSupply,
	}
}

// PriceSourceNames returns the labels of the price tiers in priority order.
func (s *Service) PriceSourceNames() []string {
	return lo.Map(s.priceSources, func(source PriceSource, _ int) string {
		return source.Name
	})
}

// Price resolves the unit price through the price chain and reports which
// source produced it.
func (s *Service) Price(ctx context.Context) (core.Quote, error) {
	for i, source := range s.priceSources {
		price, err := source.Fetch(ctx)
		if err != nil {
			s.log.WithError(err).WithField("source", source.Name).Warn("price source failed")
			if i+1 < len(s.priceSources) {
				s.log.Infof("falling back to %s for price", s.priceSources[i+1].Name)
			}
			continue
		}

		return core.Quote{Price: price, Source: source.Name}, nil
	}

	return core.Quote{}, ErrPriceUnavailable
}

// Supply resolves the circulating supply through the supply chain. It never
// fails: when every live tier is exhausted the manual constant is returned.
func (s *Service) Supply(ctx context.Context) int64 {
	for i, source := range s.supplySources {
		supply, err := source.Fetch(ctx)
		if err != nil {
			s.log.WithError(err).WithField("source", source.Name).Warn("supply source failed")
			continue
		}

		if i > 0 {
			s.log.Infof("using %s supply: %d", source.Name, supply)
		}
		return supply
	}

	s.log.Warnf("falling back to manual supply: %d", s.manualSupply)
	return s.manualSupply
}
