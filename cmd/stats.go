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

// statsCmd reports win/loss statistics over realized closes.
type statsCmd struct{}

func (*statsCmd) Name() string     { return "stats" }
func (*statsCmd) Synopsis() string { return "win/loss statistics over closed trades" }
func (*statsCmd) Usage() string {
	return `itk stats

  Reports win rate, win/loss ratio, average win and loss, profit factor, and
  maximum drawdown, over the realized closes of the trade log.
`
}

func (*statsCmd) SetFlags(f *flag.FlagSet) {}

func (c *statsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	log, _, err := loadTradeLog()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	stats := invtrack.ComputeTradingStatistics(log.Events())
	printMarkdown(renderer.StatisticsMarkdown(stats))
	return subcommands.ExitSuccess
}
