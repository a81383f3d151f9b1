// Package nexabot assembles the market data fallback chains, the report
// builder and the Telegram transport into a runnable bot.
package nexabot

import (
	"context"

	"github.com/raykavin/nexabot/internal/market"
	"github.com/raykavin/nexabot/internal/notification"
	"github.com/raykavin/nexabot/internal/report"
	"github.com/raykavin/nexabot/pkg/core"
	"github.com/raykavin/nexabot/pkg/logger"
)

type Nexabot struct {
	settings core.Settings
	logger   logger.Logger

	market   *market.Service
	report   *report.Builder
	telegram *notification.Telegram
}

type Option func(*Nexabot)

// NewBot creates a new bot instance with the provided settings
func NewBot(settings core.Settings, options ...Option) (*Nexabot, error) {
	bot := &Nexabot{
		settings: settings,
		logger:   DefaultLog,
	}

	// Apply custom options if provided
	for _, option := range options {
		option(bot)
	}

	if bot.market == nil {
		bot.market = market.NewService(settings.Market, settings.HTTPTimeout, bot.logger)
	}

	bot.report = report.NewBuilder(
		bot.market,
		settings.Market.AssetName,
		settings.Market.DisplayPair,
		bot.logger,
	)

	telegram, err := notification.NewTelegram(
		settings.Telegram.Token,
		settings.Market.AssetName,
		bot.report,
		bot.logger,
	)
	if err != nil {
		return nil, err
	}
	bot.telegram = telegram

	return bot, nil
}

// WithLogger replaces the default logger
func WithLogger(log logger.Logger) Option {
	return func(n *Nexabot) {
		n.logger = log
	}
}

// WithLogLevel sets the log level. eg: logger.DebugLevel, logger.InfoLevel
func WithLogLevel(level logger.Level) Option {
	return func(n *Nexabot) {
		n.logger.SetLevel(level)
	}
}

// WithMarketService replaces the default fallback chains
func WithMarketService(svc *market.Service) Option {
	return func(n *Nexabot) {
		n.market = svc
	}
}

// Run starts long polling and blocks until the context is cancelled.
func (n *Nexabot) Run(ctx context.Context) error {
	n.logger.Infof("starting %s price bot", n.settings.Market.AssetName)

	go func() {
		<-ctx.Done()
		n.telegram.Stop()
	}()

	n.telegram.Start()
	return nil
}
