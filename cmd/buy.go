package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/invtrack/invtrack"
)

// buyCmd records a buy trade event.
type buyCmd struct {
	tradeFlags
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "record a buy trade" }
func (*buyCmd) Usage() string {
	return `itk buy -a <asset> -q <quantity> -p <price> [-fees <amount>] [-d <time>] [-order maker|taker] [-note <text>]

  Records a buy in the trade log. The cost basis of the position grows by
  quantity times price plus fees.

Usage Examples:
$ itk buy -a BTC -q 0.5 -p 94000 -fees 12.5
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) { c.tradeFlags.set(f) }

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ev, err := c.tradeFlags.event(invtrack.Buy)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	return recordTradeEvent(ev)
}
