package cmd

import (
	"flag"
	"fmt"
	"time"

	"github.com/invtrack/invtrack"
	"github.com/shopspring/decimal"
)

// tradeFlags holds the flags shared by the buy and sell commands.
type tradeFlags struct {
	asset    string
	quantity string
	price    string
	fees     string
	when     string
	order    string
	note     string
}

func (c *tradeFlags) set(f *flag.FlagSet) {
	f.StringVar(&c.asset, "a", "", "Asset symbol (e.g. BTC, AAPL). Required.")
	f.StringVar(&c.quantity, "q", "", "Quantity traded. Required.")
	f.StringVar(&c.price, "p", "", "Per-unit price. Required.")
	f.StringVar(&c.fees, "fees", "", "Fee amount. Defaults to the configured default fee.")
	f.StringVar(&c.when, "d", "", "Time of the trade (RFC 3339, '2006-01-02 15:04:05', or a plain date). Defaults to now.")
	f.StringVar(&c.order, "order", "", "Order type: maker or taker. Informational.")
	f.StringVar(&c.note, "note", "", "Free-form note attached to the trade.")
}

// event builds the trade event from the flags, amounts in the configured
// currency. Validation proper happens in recordTradeEvent.
func (c *tradeFlags) event(side invtrack.Side) (invtrack.TradeEvent, error) {
	var ev invtrack.TradeEvent

	cfg, err := appConfig()
	if err != nil {
		return ev, err
	}

	quantity, err := parseDecimal(c.quantity, "-q")
	if err != nil {
		return ev, err
	}
	price, err := parseDecimal(c.price, "-p")
	if err != nil {
		return ev, err
	}

	fees := decimal.NewFromFloat(cfg.DefaultFee)
	if c.fees != "" {
		if fees, err = parseDecimal(c.fees, "-fees"); err != nil {
			return ev, err
		}
	}

	at := time.Now().UTC()
	if c.when != "" {
		if at, err = parseTime(c.when); err != nil {
			return ev, err
		}
	}

	ev = invtrack.NewTradeEvent(at, c.asset, side,
		invtrack.Q(quantity),
		invtrack.M(price, cfg.Currency),
		invtrack.M(fees, cfg.Currency))
	ev.Order = invtrack.OrderType(c.order)
	ev.Notes = c.note
	return ev, nil
}

func parseDecimal(value, flagName string) (decimal.Decimal, error) {
	if value == "" {
		return decimal.Zero, fmt.Errorf("flag %s is required", flagName)
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("flag %s: %w", flagName, err)
	}
	return d, nil
}

var timeLayouts = []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"}

func parseTime(value string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if at, err := time.Parse(layout, value); err == nil {
			return at.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("time %q matches none of the layouts %v", value, timeLayouts)
}
