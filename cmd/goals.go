package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/invtrack/invtrack"
	"github.com/invtrack/invtrack/date"
	"github.com/invtrack/invtrack/renderer"
)

// goalsCmd lists goals with their pacing analysis.
type goalsCmd struct {
	on string
}

func (*goalsCmd) Name() string     { return "goals" }
func (*goalsCmd) Synopsis() string { return "list goals with pacing analysis" }
func (*goalsCmd) Usage() string {
	return `itk goals [-d <date>]

  Lists each goal with its progress, the progress required to be on pace,
  the projected completion, and the recommended monthly contribution when
  behind. See 'itk topic pacing' for the model.
`
}

func (c *goalsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.on, "d", "", "Evaluation date (YYYY-MM-DD). Defaults to today.")
}

func (c *goalsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	list, _, err := loadGoalList()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	on, status := evalDate(c.on)
	if status != subcommands.ExitSuccess {
		return status
	}

	goals := list.Goals()
	analyses := invtrack.AnalyzeGoals(goals, on)
	printMarkdown(renderer.GoalsMarkdown(goals, analyses))
	return subcommands.ExitSuccess
}

// insightsCmd reports the strategic rollup over all goals.
type insightsCmd struct {
	on string
}

func (*insightsCmd) Name() string     { return "insights" }
func (*insightsCmd) Synopsis() string { return "strategic rollup over all goals" }
func (*insightsCmd) Usage() string {
	return `itk insights [-d <date>]

  Rolls every goal up into one view: priority, achievable, and at-risk
  goals, overall health, and the total monthly contribution needed.
`
}

func (c *insightsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.on, "d", "", "Evaluation date (YYYY-MM-DD). Defaults to today.")
}

func (c *insightsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	list, _, err := loadGoalList()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	on, status := evalDate(c.on)
	if status != subcommands.ExitSuccess {
		return status
	}

	goals := list.Goals()
	analyses := invtrack.AnalyzeGoals(goals, on)
	insights := invtrack.SummarizeGoalInsights(goals, analyses)
	metrics := invtrack.ComputeGoalMetrics(goals, on)
	printMarkdown(renderer.InsightsMarkdown(goals, insights, metrics))
	return subcommands.ExitSuccess
}

func evalDate(flagValue string) (date.Date, subcommands.ExitStatus) {
	if flagValue == "" {
		return date.Today(), subcommands.ExitSuccess
	}
	on, err := date.Parse(flagValue)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return on, subcommands.ExitUsageError
	}
	return on, subcommands.ExitSuccess
}
