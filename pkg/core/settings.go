package core

import "time"

// Settings represents the main configuration for the application
type Settings struct {
	Telegram    TelegramSettings // Telegram transport settings
	Market      MarketSettings   // Upstream market data sources
	HTTPTimeout time.Duration    // Per-request timeout applied to every upstream call
}

// TelegramSettings holds configuration for Telegram integration
type TelegramSettings struct {
	Token string // Telegram bot token
}

// MarketSettings holds the asset identity and the upstream endpoints used by
// the price and supply fallback chains.
type MarketSettings struct {
	AssetName    string // Asset display name, e.g. NEXA
	DisplayPair  string // Pair shown in reports, e.g. NEXA/USDT
	TickerSymbol string // Exchange ticker symbol, e.g. NEXAUSDT
	CoinGeckoID  string // CoinGecko asset id, e.g. nexa

	MEXCBaseURL       string // Exchange REST base URL
	CoinGeckoBaseURL  string // Aggregator REST base URL
	ExplorerSupplyURL string // Block explorer coinsupply endpoint

	ManualSupply int64 // Last-resort circulating supply constant
}
