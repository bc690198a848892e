package renderer

import (
	"fmt"
	"strings"

	"github.com/invtrack/invtrack"
)

// GoalsMarkdown renders each goal with its pacing analysis, one table row per
// goal. goals and analyses are parallel slices.
func GoalsMarkdown(goals []invtrack.InvestmentGoal, analyses []invtrack.GoalProgressAnalysis) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Goals\n\n")
	if len(goals) == 0 {
		fmt.Fprintln(&b, "No goals defined.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Goal | Current | Target | Progress | Required | On Track | Days Left | Projected | Monthly Rec. |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|:---:|---:|---:|---:|")

	for i, g := range goals {
		a := analyses[i]
		onTrack := " "
		if a.IsOnTrack {
			onTrack = "X"
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %d | %s | %s |\n",
			g.Name,
			g.CurrentAmount,
			g.TargetAmount,
			clampDisplay(a.CurrentProgress),
			a.RequiredProgress,
			onTrack,
			a.DaysRemaining,
			a.ProjectedCompletion,
			a.RecommendedMonthlyContribution,
		)
	}
	return b.String()
}

// InsightsMarkdown renders the strategic rollup and the flat goal counters.
func InsightsMarkdown(goals []invtrack.InvestmentGoal, insights invtrack.StrategicInsights, metrics invtrack.GoalMetrics) string {
	var b strings.Builder

	names := make(map[string]string, len(goals))
	for _, g := range goals {
		names[g.ID] = g.Name
	}

	fmt.Fprintf(&b, "# Strategic Insights\n\n")
	fmt.Fprintf(&b, "Overall health: **%s** (%d of %d goals on track)\n\n",
		insights.OverallHealth, metrics.OnTrackGoals, metrics.TotalGoals)

	fmt.Fprintln(&b, "| Metric | Value |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Total Monthly Contribution Needed | %s |\n", insights.TotalRecommendedMonthlyContribution)
	fmt.Fprintf(&b, "| Projected Completion Rate | %s |\n", insights.ProjectedCompletionRate)
	fmt.Fprintf(&b, "| Overall Completion | %s |\n", metrics.OverallCompletionRate)
	fmt.Fprintf(&b, "| Average Progress | %s |\n", metrics.AverageProgress)
	fmt.Fprintf(&b, "| Active / Completed | %d / %d |\n", metrics.ActiveGoals, metrics.CompletedGoals)
	fmt.Fprintf(&b, "| Needing Attention | %d |\n", metrics.GoalsNeedingAttention)

	goalList(&b, "Priority Goals", insights.PriorityGoals, names)
	goalList(&b, "Achievable Goals", insights.AchievableGoals, names)
	goalList(&b, "At-Risk Goals", insights.AtRiskGoals, names)

	return b.String()
}

func goalList(b *strings.Builder, title string, ids []string, names map[string]string) {
	if len(ids) == 0 {
		return
	}
	fmt.Fprintf(b, "\n## %s\n\n", title)
	for _, id := range ids {
		name := names[id]
		if name == "" {
			name = id
		}
		fmt.Fprintf(b, "- %s\n", name)
	}
}

// clampDisplay caps a progress percentage at 100 for display; the raw value
// still drives the pacing math.
func clampDisplay(p invtrack.Percent) invtrack.Percent {
	if p > 100 {
		return 100
	}
	return p
}
