// Package notification provides the Telegram transport for the bot
package notification

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/raykavin/nexabot/internal/report"
	"github.com/raykavin/nexabot/pkg/logger"

	"github.com/samber/lo"
	tb "gopkg.in/tucnak/telebot.v2"
)

const pollingTimeout = 10 * time.Second

// Telegram wires the report builder to the chat command surface. Replies
// always use MarkdownV2, matching the escaping applied by the report package.
type Telegram struct {
	report *report.Builder
	client *tb.Bot
	asset  string
	log    logger.Logger
}

// NewTelegram creates and initializes the Telegram service
func NewTelegram(token, asset string, builder *report.Builder, log logger.Logger) (*Telegram, error) {
	client, err := tb.NewBot(tb.Settings{
		ParseMode: tb.ModeMarkdownV2,
		Token:     token,
		Poller:    &tb.LongPoller{Timeout: pollingTimeout},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	bot := &Telegram{
		report: builder,
		client: client,
		asset:  asset,
		log:    log,
	}

	if err := setupCommands(client); err != nil {
		return nil, fmt.Errorf("failed to set commands: %w", err)
	}

	registerHandlers(client, bot)

	return bot, nil
}

// setupCommands configures available bot commands
func setupCommands(client *tb.Bot) error {
	return client.SetCommands([]tb.Command{
		{Text: "price", Description: "Current price and market cap"},
		{Text: "p", Description: "Alias for price"},
		{Text: "help", Description: "Display help instructions"},
		{Text: "start", Description: "Introduction message"},
	})
}

// registerHandlers registers all command handlers
func registerHandlers(client *tb.Bot, bot *Telegram) {
	client.Handle("/price", bot.PriceHandle)
	client.Handle("/p", bot.PriceHandle)
	client.Handle("/help", bot.HelpHandle)
	client.Handle("/start", bot.StartHandle)
}

// Start begins long polling. It blocks until Stop is called.
func (t *Telegram) Start() {
	t.client.Start()
}

// Stop terminates long polling.
func (t *Telegram) Stop() {
	t.client.Stop()
}

// Command handlers
// ---------------

// PriceHandle answers /price and /p with the full market report.
func (t *Telegram) PriceHandle(m *tb.Message) {
	t.log.WithFields(map[string]any{
		"chat":    m.Chat.ID,
		"command": m.Text,
	}).Info("price requested")

	t.sendMessage(m.Chat, t.report.Build(context.Background()))
}

// HelpHandle displays available commands
func (t *Telegram) HelpHandle(m *tb.Message) {
	commands, err := t.client.GetCommands()
	if err != nil {
		t.log.WithError(err).Error("failed to get commands")
		return
	}

	lines := lo.Map(commands, func(command tb.Command, _ int) string {
		return fmt.Sprintf("/%s - %s", command.Text, command.Description)
	})

	t.sendMessage(m.Chat, report.EscapeMarkdownV2(strings.Join(lines, "\n")))
}

// StartHandle greets a new chat
func (t *Telegram) StartHandle(m *tb.Message) {
	greeting := fmt.Sprintf("Send /price or /p to get the current %s price and market cap.", t.asset)
	t.sendMessage(m.Chat, report.EscapeMarkdownV2(greeting))
}

// sendMessage replies in the originating chat. Send failures are logged,
// never retried; delivery is the transport's responsibility.
func (t *Telegram) sendMessage(to tb.Recipient, text string) {
	if _, err := t.client.Send(to, text); err != nil {
		t.log.WithError(err).Error("failed to send message")
	}
}
