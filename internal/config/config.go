// Package config handles application configuration management using Viper
package config

import (
	"fmt"

	"github.com/raykavin/nexabot/pkg/core"

	"github.com/spf13/viper"
	str2duration "github.com/xhit/go-str2duration/v2"
)

// Defaults for every tunable. Only the bot token has no default: the
// transport cannot start without it.
const (
	DefaultHTTPTimeout  = "5s"
	DefaultManualSupply = int64(8_000_000_000_000)

	DefaultAssetName    = "NEXA"
	DefaultDisplayPair  = "NEXA/USDT"
	DefaultTickerSymbol = "NEXAUSDT"
	DefaultCoinGeckoID  = "nexa"

	DefaultMEXCBaseURL       = "https://api.mexc.com"
	DefaultCoinGeckoBaseURL  = "https://api.coingecko.com/api/v3"
	DefaultExplorerSupplyURL = "https://explorer.nexa.org/api/coinsupply"
)

// Load builds core.Settings from environment variables using Viper
func Load() (core.Settings, error) {
	viper.AutomaticEnv()

	viper.SetDefault("HTTP_TIMEOUT", DefaultHTTPTimeout)
	viper.SetDefault("MANUAL_CIRC_SUPPLY", DefaultManualSupply)
	viper.SetDefault("ASSET_NAME", DefaultAssetName)
	viper.SetDefault("DISPLAY_PAIR", DefaultDisplayPair)
	viper.SetDefault("TICKER_SYMBOL", DefaultTickerSymbol)
	viper.SetDefault("COINGECKO_ID", DefaultCoinGeckoID)
	viper.SetDefault("MEXC_BASE_URL", DefaultMEXCBaseURL)
	viper.SetDefault("COINGECKO_BASE_URL", DefaultCoinGeckoBaseURL)
	viper.SetDefault("EXPLORER_SUPPLY_URL", DefaultExplorerSupplyURL)

	token := viper.GetString("TELEGRAM_BOT_TOKEN")
	if token == "" {
		return core.Settings{}, fmt.Errorf("TELEGRAM_BOT_TOKEN is required")
	}

	timeout, err := str2duration.ParseDuration(viper.GetString("HTTP_TIMEOUT"))
	if err != nil {
		return core.Settings{}, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}

	return core.Settings{
		Telegram: core.TelegramSettings{
			Token: token,
		},
		Market: core.MarketSettings{
			AssetName:         viper.GetString("ASSET_NAME"),
			DisplayPair:       viper.GetString("DISPLAY_PAIR"),
			TickerSymbol:      viper.GetString("TICKER_SYMBOL"),
			CoinGeckoID:       viper.GetString("COINGECKO_ID"),
			MEXCBaseURL:       viper.GetString("MEXC_BASE_URL"),
			CoinGeckoBaseURL:  viper.GetString("COINGECKO_BASE_URL"),
			ExplorerSupplyURL: viper.GetString("EXPLORER_SUPPLY_URL"),
			ManualSupply:      viper.GetInt64("MANUAL_CIRC_SUPPLY"),
		},
		HTTPTimeout: timeout,
	}, nil
}
