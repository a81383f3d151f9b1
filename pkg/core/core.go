// Package core holds the transient domain values shared between the market
// fetchers, the report builder and the Telegram transport. Nothing here
// outlives a single command invocation.
package core

// Quote is a unit price resolved from exactly one market data source.
type Quote struct {
	Price  float64 // currency units per token
	Source string  // label of the source actually used, for display only
}

// MarketCap derives the market capitalization for the given circulating
// supply. It is always computed, never fetched.
func (q Quote) MarketCap(supply int64) float64 {
	return q.Price * float64(supply)
}
