// Package report renders the price and market-cap message sent back to the
// chat, including Telegram MarkdownV2 escaping.
package report

import (
	"context"
	"fmt"
	"strings"

	"github.com/raykavin/nexabot/internal/market"
	"github.com/raykavin/nexabot/pkg/logger"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// markdownV2Escaper prefixes every character the MarkdownV2 renderer treats
// as markup with a single backslash. The set is fixed by Telegram; keep it
// in sync with the parse mode used by the transport.
var markdownV2Escaper = strings.NewReplacer(
	"_", `\_`, "*", `\*`, "[", `\[`, "]", `\]`,
	"(", `\(`, ")", `\)`, "~", `\~`, "`", "\\`",
	">", `\>`, "#", `\#`, "+", `\+`, "-", `\-`,
	"=", `\=`, "|", `\|`, "{", `\{`, "}", `\}`,
	".", `\.`, "!", `\!`,
)

// EscapeMarkdownV2 escapes Telegram MarkdownV2 special characters across the
// whole string, dots inside numbers included. It must be applied exactly
// once, to the final rendered message; escaping intermediate fragments would
// double-escape the output.
func EscapeMarkdownV2(text string) string {
	return markdownV2Escaper.Replace(text)
}

// Builder renders the market report for one asset.
type Builder struct {
	market  *market.Service
	log     logger.Logger
	asset   string
	pair    string
	printer *message.Printer
}

// NewBuilder creates a report builder on top of the given market service.
func NewBuilder(svc *market.Service, asset, pair string, log logger.Logger) *Builder {
	return &Builder{
		market:  svc,
		log:     log,
		asset:   asset,
		pair:    pair,
		printer: message.NewPrinter(language.English),
	}
}

// Build resolves price and supply and renders the escaped report. When no
// price tier is usable it returns a marked error message instead; the supply
// chain is not consulted in that case.
func (b *Builder) Build(ctx context.Context) string {
	quote, err := b.market.Price(ctx)
	if err != nil {
		b.log.WithError(err).Error("report: price unavailable")
		// Composed without MarkdownV2-reserved characters, so it is sent as-is
		return fmt.Sprintf("🚨 Error: unable to fetch %s price from %s",
			b.asset, strings.Join(b.market.PriceSourceNames(), " or "))
	}

	supply := b.market.Supply(ctx)
	marketCap := quote.MarketCap(supply)

	supplyTrillions := float64(supply) / 1e12
	marketCapMillions := marketCap / 1e6
	pricePerMillion := quote.Price * 1e6
	pricePerBillion := quote.Price * 1e9

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s Price (%s)\n\n", b.pair, quote.Source)
	fmt.Fprintf(&sb, "%.8f$ per %s\n", quote.Price, b.asset)
	b.printer.Fprintf(&sb, "%.2f$ per 1M %s\n", pricePerMillion, b.asset)
	b.printer.Fprintf(&sb, "%.0f$ per 1B %s\n\n", pricePerBillion, b.asset)
	b.printer.Fprintf(&sb, "Market Cap: $%.2fM\n", marketCapMillions)
	fmt.Fprintf(&sb, "Circ Supply: %.3fT %s", supplyTrillions, b.asset)

	return EscapeMarkdownV2(sb.String())
}
