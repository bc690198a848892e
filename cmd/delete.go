package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/invtrack/invtrack"
)

// deleteCmd removes a trade event from the log.
type deleteCmd struct {
	id string
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete a trade from the log" }
func (*deleteCmd) Usage() string {
	return `itk delete -id <id>

  Removes the trade with that id from the log. Every derived figure is
  recomputed from the remaining trades on the next report.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Id of the trade to delete. Required; a unique prefix is enough.")
}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	if err := log.Delete(ev.ID); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := invtrack.SaveTradeLog(cfg.StorageDir, log); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Deleted trade %s (%s %s %s)\n", ev.ID, ev.Side, ev.Quantity, ev.Asset)
	return subcommands.ExitSuccess
}
