// Package cmd implements the CLI application to manage an investment tracker.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/invtrack/invtrack"
)

// Register registers all subcommands on the commander. A main package calls
// Register, then Execute on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&buyCmd{}, "recording")
	c.Register(&sellCmd{}, "recording")
	c.Register(&editCmd{}, "recording")
	c.Register(&deleteCmd{}, "recording")
	c.Register(&importCmd{}, "recording")

	c.Register(&tradesCmd{}, "reports")
	c.Register(&holdingsCmd{}, "reports")
	c.Register(&performanceCmd{}, "reports")
	c.Register(&statsCmd{}, "reports")

	c.Register(&addGoalCmd{}, "goals")
	c.Register(&setGoalCmd{}, "goals")
	c.Register(&deleteGoalCmd{}, "goals")
	c.Register(&goalsCmd{}, "goals")
	c.Register(&insightsCmd{}, "goals")

	c.Register(&fmtCmd{}, "tools")
	c.Register(&topicCmd{}, "tools")
	c.Register(&assistCmd{}, "tools")
}

// Names returns every registered command name, for shell completion.
func Names() []string {
	return []string{
		"buy", "sell", "edit", "delete", "import",
		"trades", "holdings", "performance", "stats",
		"add-goal", "set-goal", "delete-goal", "goals", "insights",
		"fmt", "topic", "assist",
	}
}

// As a CLI application with a short-lived lifecycle, global flags are fine.

var (
	storageDirFlag = flag.String("storage-dir", "", "Directory holding the trade log and goals (overrides the config file)")
	configFlag     = flag.String("config", invtrack.ConfigFilename, "Path to the configuration file")
)

// appConfig resolves the effective configuration: flags over file over
// defaults.
func appConfig() (invtrack.Config, error) {
	cfg, err := invtrack.LoadConfig(*configFlag)
	if err != nil {
		return cfg, err
	}
	if *storageDirFlag != "" {
		cfg.StorageDir = *storageDirFlag
	}
	return cfg, nil
}

// loadTradeLog loads the trade log from the configured storage directory.
func loadTradeLog() (*invtrack.TradeLog, invtrack.Config, error) {
	cfg, err := appConfig()
	if err != nil {
		return nil, cfg, err
	}
	log, err := invtrack.LoadTradeLog(cfg.StorageDir)
	return log, cfg, err
}

// loadGoalList loads the goals from the configured storage directory.
func loadGoalList() (*invtrack.GoalList, invtrack.Config, error) {
	cfg, err := appConfig()
	if err != nil {
		return nil, cfg, err
	}
	list, err := invtrack.LoadGoalList(cfg.StorageDir)
	return list, cfg, err
}

// recordTradeEvent validates and appends a single event to the trade log
// file. The cheap path for the most frequent operation.
func recordTradeEvent(ev invtrack.TradeEvent) subcommands.ExitStatus {
	cfg, err := appConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	ev, err = ev.Validate()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	if err := invtrack.AppendTradeEvent(cfg.StorageDir, ev); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Recorded %s %s %s at %s (id %s)\n", ev.Side, ev.Quantity, ev.Asset, ev.Price, ev.ID)
	return subcommands.ExitSuccess
}
