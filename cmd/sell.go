package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/invtrack/invtrack"
)

// sellCmd records a sell trade event.
type sellCmd struct {
	tradeFlags
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record a sell trade" }
func (*sellCmd) Usage() string {
	return `itk sell -a <asset> -q <quantity> -p <price> [-fees <amount>] [-d <time>] [-order maker|taker] [-note <text>]

  Records a sell in the trade log and realizes the profit or loss against the
  average cost of the position. Selling more than held closes the position.

Usage Examples:
$ itk sell -a BTC -q 0.5 -p 101000
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) { c.tradeFlags.set(f) }

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ev, err := c.tradeFlags.event(invtrack.Sell)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	return recordTradeEvent(ev)
}
