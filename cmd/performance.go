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

// performanceCmd reports portfolio-wide performance metrics.
type performanceCmd struct{}

func (*performanceCmd) Name() string     { return "performance" }
func (*performanceCmd) Synopsis() string { return "portfolio performance metrics" }
func (*performanceCmd) Usage() string {
	return `itk performance

  Reports total profit and loss, return on investment, growth rate, fees
  paid, and the cumulative cash-flow series, all recomputed from the log.
  See 'itk topic model' for how each figure is derived.
`
}

func (*performanceCmd) SetFlags(f *flag.FlagSet) {}

func (c *performanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	log, _, err := loadTradeLog()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	metrics := invtrack.ComputePerformance(log.Events())
	printMarkdown(renderer.PerformanceMarkdown(metrics))
	return subcommands.ExitSuccess
}
