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

// tradesCmd lists the trade log.
type tradesCmd struct {
	asset string
	head  int
	tail  int
}

func (*tradesCmd) Name() string     { return "trades" }
func (*tradesCmd) Synopsis() string { return "list trades in the log" }
func (*tradesCmd) Usage() string {
	return `itk trades [-a <asset>] [-head <n> | -tail <n>]

  Lists trades in chronological order, optionally filtered by asset or
  limited to the first or last N.
`
}

func (c *tradesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.asset, "a", "", "Only list trades for this asset.")
	f.IntVar(&c.head, "head", 0, "Show only the first N trades.")
	f.IntVar(&c.tail, "tail", 0, "Show only the last N trades.")
}

func (c *tradesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.head > 0 && c.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
	}

	log, _, err := loadTradeLog()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	if c.head > 0 || c.tail > 0 {
		events := log.Events()
		if c.asset != "" {
			filtered := events[:0]
			for _, ev := range events {
				if ev.Asset == c.asset {
					filtered = append(filtered, ev)
				}
			}
			events = filtered
		}
		if c.head > 0 && len(events) > c.head {
			events = events[:c.head]
		}
		if c.tail > 0 && len(events) > c.tail {
			events = events[len(events)-c.tail:]
		}
		limited := invtrack.NewTradeLog()
		limited.Append(events...)
		log = limited
		// asset filter already applied
		printMarkdown(renderer.TradesMarkdown(log, ""))
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.TradesMarkdown(log, c.asset))
	return subcommands.ExitSuccess
}
