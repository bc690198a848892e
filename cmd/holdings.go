package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/invtrack/invtrack"
	"github.com/invtrack/invtrack/renderer"
)

// holdingsCmd reports the currently held positions.
type holdingsCmd struct{}

func (*holdingsCmd) Name() string     { return "holdings" }
func (*holdingsCmd) Synopsis() string { return "current positions with unrealized profit and loss" }
func (*holdingsCmd) Usage() string {
	return `itk holdings

  Replays the trade log and reports each open position: quantity, average
  cost, value at the last traded price, and unrealized profit and loss.
`
}

func (*holdingsCmd) SetFlags(f *flag.FlagSet) {}

func (c *holdingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	log, _, err := loadTradeLog()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	positions := invtrack.ProjectHoldings(log.Events())
	printMarkdown(renderer.HoldingsMarkdown(positions))
	return subcommands.ExitSuccess
}
