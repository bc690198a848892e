package invtrack

import (
	"time"

	"github.com/invtrack/invtrack/date"
)

// tradeOn builds a validated trade event at noon UTC on the given day, all
// amounts in USD. Tests that need intra-day ordering shift the time.
func tradeOn(day, asset string, side Side, quantity, price, fees float64) TradeEvent {
	at := date.MustParse(day).Time().Add(12 * time.Hour)
	return NewTradeEvent(at, asset, side, Q(quantity), M(price, "USD"), M(fees, "USD"))
}

func usd(v float64) Money { return M(v, "USD") }

func mustDate(s string) date.Date { return date.MustParse(s) }
