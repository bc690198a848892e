package agent

import (
	"context"
	"fmt"

	"github.com/invtrack/invtrack"
	"github.com/invtrack/invtrack/date"
	"github.com/invtrack/invtrack/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// newFacilitator creates the expert in charge of the conversation itself.
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclarations(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert skills available in the Tools and ask them questions.
			They are at your service and keep the context of your previous questions.

			The user tracks a personal investment portfolio: trades, holdings,
			performance, and savings goals. Consult the Analyst before answering
			anything about the portfolio; never guess figures.

			Devise a plan of questions for the experts and come up with the best
			response to the user's request.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewAnalyst creates the expert wired to the trade log and goals stored in
// dir. Its functions recompute every report from the log on each call.
func NewAnalyst(dir string) *Expert {
	lib := []Function{
		reportFunc("Holdings",
			"Holdings lists the currently held positions with quantity, average cost, value, and unrealized profit and loss.",
			func() (string, error) {
				log, err := invtrack.LoadTradeLog(dir)
				if err != nil {
					return "", err
				}
				return renderer.HoldingsMarkdown(invtrack.ProjectHoldings(log.Events())), nil
			}),
		reportFunc("Performance",
			"Performance reports portfolio-wide profit and loss, return on investment, growth rate, fees paid, and the cumulative cash-flow series.",
			func() (string, error) {
				log, err := invtrack.LoadTradeLog(dir)
				if err != nil {
					return "", err
				}
				return renderer.PerformanceMarkdown(invtrack.ComputePerformance(log.Events())), nil
			}),
		reportFunc("Statistics",
			"Statistics reports win/loss counts, win rate, profit factor, average win and loss, and maximum drawdown over closed trades.",
			func() (string, error) {
				log, err := invtrack.LoadTradeLog(dir)
				if err != nil {
					return "", err
				}
				return renderer.StatisticsMarkdown(invtrack.ComputeTradingStatistics(log.Events())), nil
			}),
		reportFunc("Goals",
			"Goals lists the investment goals with their pacing analysis, plus the portfolio-wide strategic insights.",
			func() (string, error) {
				list, err := invtrack.LoadGoalList(dir)
				if err != nil {
					return "", err
				}
				goals := list.Goals()
				today := date.Today()
				analyses := invtrack.AnalyzeGoals(goals, today)
				out := renderer.GoalsMarkdown(goals, analyses)
				out += "\n" + renderer.InsightsMarkdown(goals,
					invtrack.SummarizeGoalInsights(goals, analyses),
					invtrack.ComputeGoalMetrics(goals, today))
				return out, nil
			}),
	}

	return &Expert{
		Name: "Analyst",
		Description: `This is the Analyst. It reads the user's trade log and goals and
		computes every figure about the portfolio: holdings, performance, trading
		statistics, and goal pacing. Ask it whenever a portfolio number is needed.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclarations(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are an analyst in charge of the user's investment trade log.
				Use the available tools to compute reports, and answer strictly from
				their output. Figures come from the tools, never from memory.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// reportFunc wraps a no-argument markdown report as a callable function.
func reportFunc(name, description string, report func() (string, error)) Function {
	return &reportFunction{name: name, description: description, report: report}
}

type reportFunction struct {
	name        string
	description string
	report      func() (string, error)
}

func (f *reportFunction) Declaration() *genai.FunctionDeclaration {
	return &genai.FunctionDeclaration{
		Name:        f.name,
		Description: f.description,
		Parameters:  &genai.Schema{Type: genai.TypeObject},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown-formatted report.",
		},
	}
}

func (f *reportFunction) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	fresp := &genai.FunctionResponse{ID: id, Name: f.name, Response: map[string]any{}}
	out, err := f.report()
	if err != nil {
		fresp.Response["error"] = fmt.Sprintf("report failed: %v", err)
		return fresp
	}
	fresp.Response["output"] = out
	return fresp
}
