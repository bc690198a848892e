package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/invtrack/invtrack"
)

// fmtCmd rewrites the storage files in canonical form.
type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the storage files into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `itk fmt

  Reads the trade log and the goals, validates every record, and writes both
  files back sorted in a canonical JSONL form. Run it after hand-editing the
  files to keep diffs clean.
`
}

func (*fmtCmd) SetFlags(f *flag.FlagSet) {}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := appConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	log, err := invtrack.LoadTradeLog(cfg.StorageDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load trade log: %v\n", err)
		return subcommands.ExitFailure
	}
	for ev := range log.All() {
		if _, err := ev.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid trade %s: %v\n", ev.ID, err)
			return subcommands.ExitFailure
		}
	}
	if err := invtrack.SaveTradeLog(cfg.StorageDir, log); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not save trade log: %v\n", err)
		return subcommands.ExitFailure
	}

	goals, err := invtrack.LoadGoalList(cfg.StorageDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load goals: %v\n", err)
		return subcommands.ExitFailure
	}
	for g := range goals.All() {
		if _, err := g.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid goal %s: %v\n", g.ID, err)
			return subcommands.ExitFailure
		}
	}
	if err := invtrack.SaveGoalList(cfg.StorageDir, goals); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not save goals: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Fprintf(os.Stderr, "Formatted %d trades and %d goals.\n", log.Len(), goals.Len())
	return subcommands.ExitSuccess
}
