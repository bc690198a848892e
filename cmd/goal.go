package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/invtrack/invtrack"
	"github.com/invtrack/invtrack/date"
)

// addGoalCmd creates an investment goal.
type addGoalCmd struct {
	name     string
	target   string
	current  string
	deadline string
	assets   string
}

func (*addGoalCmd) Name() string     { return "add-goal" }
func (*addGoalCmd) Synopsis() string { return "create an investment goal" }
func (*addGoalCmd) Usage() string {
	return `itk add-goal -name <name> -target <amount> -deadline <date> [-current <amount>] [-assets <a,b,c>]

  Creates a goal: a target amount to reach by a deadline, optionally tagged
  with the assets funding it.

Usage Examples:
$ itk add-goal -name "House deposit" -target 50000 -deadline 2027-12-31
`
}

func (c *addGoalCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Goal name. Required.")
	f.StringVar(&c.target, "target", "", "Target amount. Required.")
	f.StringVar(&c.current, "current", "0", "Amount already saved.")
	f.StringVar(&c.deadline, "deadline", "", "Deadline date (YYYY-MM-DD). Required.")
	f.StringVar(&c.assets, "assets", "", "Comma-separated asset symbols assigned to this goal.")
}

func (c *addGoalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	list, cfg, err := loadGoalList()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	target, err := parseDecimal(c.target, "-target")
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	current, err := parseDecimal(c.current, "-current")
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	deadline, err := date.Parse(c.deadline)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	goal := invtrack.NewInvestmentGoal(c.name,
		invtrack.M(target, cfg.Currency),
		invtrack.M(current, cfg.Currency),
		deadline, splitAssets(c.assets)...)
	if goal, err = goal.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	list.Append(goal)
	if err := invtrack.SaveGoalList(cfg.StorageDir, list); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Created goal %q (id %s)\n", goal.Name, goal.ID)
	return subcommands.ExitSuccess
}

// setGoalCmd updates fields of an existing goal.
type setGoalCmd struct {
	id       string
	name     string
	target   string
	current  string
	deadline string
	assets   string
}

func (*setGoalCmd) Name() string     { return "set-goal" }
func (*setGoalCmd) Synopsis() string { return "update an investment goal" }
func (*setGoalCmd) Usage() string {
	return `itk set-goal -id <id> [-name <name>] [-target <amount>] [-current <amount>] [-deadline <date>] [-assets <a,b,c>]

  Replaces the given fields of the goal with that id; omitted flags keep
  their current value. The usual move is bumping -current as savings grow.
`
}

func (c *setGoalCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Id of the goal to update. Required.")
	f.StringVar(&c.name, "name", "", "New goal name.")
	f.StringVar(&c.target, "target", "", "New target amount.")
	f.StringVar(&c.current, "current", "", "New saved amount.")
	f.StringVar(&c.deadline, "deadline", "", "New deadline date (YYYY-MM-DD).")
	f.StringVar(&c.assets, "assets", "", "New comma-separated assigned assets.")
}

func (c *setGoalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: flag -id is required")
		return subcommands.ExitUsageError
	}

	list, cfg, err := loadGoalList()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	goal, ok := list.Get(c.id)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no goal with id %q\n", c.id)
		return subcommands.ExitFailure
	}

	if c.name != "" {
		goal.Name = c.name
	}
	if c.target != "" {
		target, err := parseDecimal(c.target, "-target")
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		goal.TargetAmount = invtrack.M(target, cfg.Currency)
	}
	if c.current != "" {
		current, err := parseDecimal(c.current, "-current")
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		goal.CurrentAmount = invtrack.M(current, cfg.Currency)
	}
	if c.deadline != "" {
		deadline, err := date.Parse(c.deadline)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		goal.Deadline = deadline
	}
	if c.assets != "" {
		goal.AssignedAssets = splitAssets(c.assets)
	}

	if goal, err = goal.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	if err := list.Replace(goal); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := invtrack.SaveGoalList(cfg.StorageDir, list); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Updated goal %q\n", goal.Name)
	return subcommands.ExitSuccess
}

// deleteGoalCmd removes a goal.
type deleteGoalCmd struct {
	id string
}

func (*deleteGoalCmd) Name() string     { return "delete-goal" }
func (*deleteGoalCmd) Synopsis() string { return "delete an investment goal" }
func (*deleteGoalCmd) Usage() string {
	return `itk delete-goal -id <id>

  Removes the goal with that id.
`
}

func (c *deleteGoalCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Id of the goal to delete. Required.")
}

func (c *deleteGoalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: flag -id is required")
		return subcommands.ExitUsageError
	}

	list, cfg, err := loadGoalList()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	goal, ok := list.Get(c.id)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no goal with id %q\n", c.id)
		return subcommands.ExitFailure
	}

	if err := list.Delete(goal.ID); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := invtrack.SaveGoalList(cfg.StorageDir, list); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Deleted goal %q\n", goal.Name)
	return subcommands.ExitSuccess
}

func splitAssets(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	assets := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			assets = append(assets, p)
		}
	}
	return assets
}
