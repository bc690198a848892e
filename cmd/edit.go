package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/invtrack/invtrack"
)

// editCmd replaces fields of an existing trade event. An edit keeps the
// event's id; every derived figure is recomputed on the next report.
type editCmd struct {
	id string
	tradeFlags
	side string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "edit an existing trade" }
func (*editCmd) Usage() string {
	return `itk edit -id <id> [-side buy|sell] [-a <asset>] [-q <quantity>] [-p <price>] [-fees <amount>] [-d <time>] [-order maker|taker] [-note <text>]

  Replaces the given fields of the trade with that id; omitted flags keep
  their current value. Find ids with 'itk trades'.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Id of the trade to edit. Required; a unique prefix is enough.")
	f.StringVar(&c.side, "side", "", "New side: buy or sell.")
	c.tradeFlags.set(f)
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: flag -id is required")
		return subcommands.ExitUsageError
	}

	log, cfg, err := loadTradeLog()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	ev, err := findTradeEvent(log, c.id)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	if c.side != "" {
		side, err := invtrack.ParseSide(c.side)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		ev.Side = side
	}
	if c.asset != "" {
		ev.Asset = c.asset
	}
	if c.quantity != "" {
		q, err := parseDecimal(c.quantity, "-q")
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		ev.Quantity = invtrack.Q(q)
	}
	if c.price != "" {
		p, err := parseDecimal(c.price, "-p")
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		ev.Price = invtrack.M(p, cfg.Currency)
	}
	if c.fees != "" {
		fees, err := parseDecimal(c.fees, "-fees")
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		ev.Fees = invtrack.M(fees, cfg.Currency)
	}
	if c.when != "" {
		at, err := parseTime(c.when)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		ev.Time = at
	}
	if c.order != "" {
		ev.Order = invtrack.OrderType(c.order)
	}
	if c.note != "" {
		ev.Notes = c.note
	}

	if ev, err = ev.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	if err := log.Replace(ev); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := invtrack.SaveTradeLog(cfg.StorageDir, log); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Updated trade %s\n", ev.ID)
	return subcommands.ExitSuccess
}

// findTradeEvent resolves an id or unique id prefix into its event.
func findTradeEvent(log *invtrack.TradeLog, id string) (invtrack.TradeEvent, error) {
	if ev, ok := log.Get(id); ok {
		return ev, nil
	}

	var matches []invtrack.TradeEvent
	for ev := range log.All() {
		if len(ev.ID) >= len(id) && ev.ID[:len(id)] == id {
			matches = append(matches, ev)
		}
	}
	switch len(matches) {
	case 0:
		return invtrack.TradeEvent{}, fmt.Errorf("no trade with id %q", id)
	case 1:
		return matches[0], nil
	default:
		return invtrack.TradeEvent{}, fmt.Errorf("id prefix %q is ambiguous (%d matches)", id, len(matches))
	}
}
