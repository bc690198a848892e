package invtrack

import (
	"sort"

	"github.com/invtrack/invtrack/date"
)

// GoalProgressAnalysis compares a goal's actual progress against the progress
// a linear pacing model expects, and extrapolates where the goal will land.
//
// The pacing model anchors elapsed time at January 1 of the evaluation year,
// not at the goal's creation date (which is not tracked). This is an
// inherited simplification: the model's meaning drifts depending on when the
// analysis runs. See docs/pacing.md.
type GoalProgressAnalysis struct {
	GoalID           string
	GoalName         string
	CurrentProgress  Percent
	RequiredProgress Percent // linear pace from Jan 1 to the deadline; not clamped above 100
	IsOnTrack        bool
	DaysRemaining    int
	// ProjectedCompletion extrapolates the observed progress-per-day over the
	// remaining days, capped at 100.
	ProjectedCompletion Percent
	// RecommendedMonthlyContribution is non-zero only for an off-track goal
	// with a shortfall and time left: shortfall spread over the remaining
	// 30-day months.
	RecommendedMonthlyContribution Money
}

// AnalyzeGoalProgress evaluates one goal against the linear pacing model on
// the given date.
func AnalyzeGoalProgress(goal InvestmentGoal, now date.Date) GoalProgressAnalysis {
	a := GoalProgressAnalysis{
		GoalID:          goal.ID,
		GoalName:        goal.Name,
		CurrentProgress: goal.Progress(),
	}

	if d := goal.Deadline.Sub(now); d > 0 {
		a.DaysRemaining = d
	}

	startOfYear := now.StartOfYear()
	daysSinceStart := now.Sub(startOfYear)
	if totalDays := goal.Deadline.Sub(startOfYear); totalDays > 0 {
		a.RequiredProgress = Percent(float64(daysSinceStart) / float64(totalDays) * 100)
	}
	a.IsOnTrack = a.CurrentProgress >= a.RequiredProgress

	progressPerDay := 0.0
	if daysSinceStart > 0 {
		progressPerDay = float64(a.CurrentProgress) / float64(daysSinceStart)
	}
	if progressPerDay > 0 {
		a.ProjectedCompletion = Percent(min(100, float64(a.CurrentProgress)+float64(a.DaysRemaining)*progressPerDay))
	} else {
		a.ProjectedCompletion = a.CurrentProgress
	}

	if !a.IsOnTrack && goal.TargetAmount.GreaterThan(goal.CurrentAmount) && a.DaysRemaining > 0 {
		shortfall := goal.TargetAmount.Sub(goal.CurrentAmount)
		monthsRemaining := float64(a.DaysRemaining) / 30
		if monthsRemaining > 0 {
			a.RecommendedMonthlyContribution = shortfall.Div(Q(monthsRemaining))
		} else {
			a.RecommendedMonthlyContribution = shortfall
		}
	}

	return a
}

// AnalyzeGoals evaluates every goal on the given date.
func AnalyzeGoals(goals []InvestmentGoal, now date.Date) []GoalProgressAnalysis {
	analyses := make([]GoalProgressAnalysis, 0, len(goals))
	for _, g := range goals {
		analyses = append(analyses, AnalyzeGoalProgress(g, now))
	}
	return analyses
}

// GoalHealth classifies the overall state of the goal set by the share of
// goals that are on track.
type GoalHealth string

const (
	HealthExcellent GoalHealth = "excellent" // at least 80% on track
	HealthGood      GoalHealth = "good"      // at least 60%
	HealthFair      GoalHealth = "fair"      // at least 40%
	HealthPoor      GoalHealth = "poor"
)

// StrategicInsights is the portfolio-wide rollup over all goal analyses.
type StrategicInsights struct {
	TotalRecommendedMonthlyContribution Money
	// PriorityGoals holds the ids of the up-to-three most urgent goals,
	// closest deadline first, lowest progress breaking ties.
	PriorityGoals []string
	// AchievableGoals are on track or projected to land at 90% or better.
	AchievableGoals []string
	// AtRiskGoals are off track and projected to land below 70%.
	AtRiskGoals             []string
	OverallHealth           GoalHealth
	ProjectedCompletionRate Percent // mean projected completion across analyses
}

// SummarizeGoalInsights rolls the per-goal analyses up into portfolio-wide
// strategic insights.
func SummarizeGoalInsights(goals []InvestmentGoal, analyses []GoalProgressAnalysis) StrategicInsights {
	var s StrategicInsights

	for _, a := range analyses {
		s.TotalRecommendedMonthlyContribution = s.TotalRecommendedMonthlyContribution.Add(a.RecommendedMonthlyContribution)
	}

	byUrgency := make([]GoalProgressAnalysis, len(analyses))
	copy(byUrgency, analyses)
	sort.SliceStable(byUrgency, func(i, j int) bool {
		if byUrgency[i].DaysRemaining != byUrgency[j].DaysRemaining {
			return byUrgency[i].DaysRemaining < byUrgency[j].DaysRemaining
		}
		return byUrgency[i].CurrentProgress < byUrgency[j].CurrentProgress
	})
	for i, a := range byUrgency {
		if i == 3 {
			break
		}
		s.PriorityGoals = append(s.PriorityGoals, a.GoalID)
	}

	onTrack := 0
	totalProjected := 0.0
	for _, a := range analyses {
		if a.IsOnTrack {
			onTrack++
		}
		totalProjected += float64(a.ProjectedCompletion)
		if a.IsOnTrack || a.ProjectedCompletion >= 90 {
			s.AchievableGoals = append(s.AchievableGoals, a.GoalID)
		}
		if !a.IsOnTrack && a.ProjectedCompletion < 70 {
			s.AtRiskGoals = append(s.AtRiskGoals, a.GoalID)
		}
	}

	healthRatio := 0.0
	if len(goals) > 0 {
		healthRatio = float64(onTrack) / float64(len(goals))
	}
	switch {
	case healthRatio >= 0.8:
		s.OverallHealth = HealthExcellent
	case healthRatio >= 0.6:
		s.OverallHealth = HealthGood
	case healthRatio >= 0.4:
		s.OverallHealth = HealthFair
	default:
		s.OverallHealth = HealthPoor
	}

	if len(analyses) > 0 {
		s.ProjectedCompletionRate = Percent(totalProjected / float64(len(analyses)))
	}
	return s
}

// GoalMetrics is the flat counters rollup over the goal set.
type GoalMetrics struct {
	TotalGoals            int
	ActiveGoals           int // deadline still in the future
	CompletedGoals        int // deadline passed or target reached
	AverageProgress       Percent
	TotalTargetAmount     Money
	TotalCurrentAmount    Money
	OverallCompletionRate Percent // total current over total target
	// GoalsNeedingAttention counts goals under 50% progress with more than
	// half of their pacing window already elapsed.
	GoalsNeedingAttention int
	OnTrackGoals          int
	OffTrackGoals         int
}

// ComputeGoalMetrics derives the flat goal counters on the given date.
func ComputeGoalMetrics(goals []InvestmentGoal, now date.Date) GoalMetrics {
	m := GoalMetrics{TotalGoals: len(goals)}

	totalProgress := 0.0
	for _, g := range goals {
		if g.Deadline.After(now) {
			m.ActiveGoals++
		}
		if !g.Deadline.After(now) || g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount) {
			m.CompletedGoals++
		}

		progress := g.Progress()
		totalProgress += float64(progress)
		m.TotalTargetAmount = m.TotalTargetAmount.Add(g.TargetAmount)
		m.TotalCurrentAmount = m.TotalCurrentAmount.Add(g.CurrentAmount)

		a := AnalyzeGoalProgress(g, now)
		if a.IsOnTrack {
			m.OnTrackGoals++
		}
		if progress < 50 && a.RequiredProgress > 50 {
			m.GoalsNeedingAttention++
		}
	}
	m.OffTrackGoals = m.TotalGoals - m.OnTrackGoals

	if m.TotalGoals > 0 {
		m.AverageProgress = Percent(totalProgress / float64(m.TotalGoals))
	}
	if m.TotalTargetAmount.IsPositive() {
		m.OverallCompletionRate = Percent(m.TotalCurrentAmount.AsFloat() / m.TotalTargetAmount.AsFloat() * 100)
	}
	return m
}
