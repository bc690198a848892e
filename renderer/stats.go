package renderer

import (
	"fmt"
	"strings"

	"github.com/invtrack/invtrack"
)

// StatisticsMarkdown renders the win/loss statistics over realized closes.
func StatisticsMarkdown(s invtrack.TradingStatistics) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Trading Statistics\n\n")
	if s.TotalCloses == 0 {
		fmt.Fprintln(&b, "No closed trades yet.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Metric | Value |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Closed Trades | %d |\n", s.TotalCloses)
	fmt.Fprintf(&b, "| Wins | %d |\n", s.Wins)
	fmt.Fprintf(&b, "| Losses | %d |\n", s.Losses)
	fmt.Fprintf(&b, "| Win Rate | %s |\n", s.WinRate)
	fmt.Fprintf(&b, "| Win/Loss Ratio | %.2f |\n", s.WinLossRatio)
	fmt.Fprintf(&b, "| Average Win | %s |\n", s.AverageWin)
	fmt.Fprintf(&b, "| Average Loss | %s |\n", s.AverageLoss)
	fmt.Fprintf(&b, "| Profit Factor | %.2f |\n", s.ProfitFactor)
	fmt.Fprintf(&b, "| Max Drawdown | %s |\n", s.MaxDrawdown)

	return b.String()
}
