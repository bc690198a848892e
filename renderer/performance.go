package renderer

import (
	"fmt"
	"strings"

	"github.com/invtrack/invtrack"
)

// PerformanceMarkdown renders the portfolio-wide performance metrics, with the
// tail of the daily cumulative cash-flow series.
func PerformanceMarkdown(m invtrack.PerformanceMetrics) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Performance\n\n")
	fmt.Fprintln(&b, "| Metric | Value |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Total Trades | %d |\n", m.TotalTrades)
	fmt.Fprintf(&b, "| Total P&L | %s |\n", m.TotalProfitLoss.SignedString())
	fmt.Fprintf(&b, "| Total Invested | %s |\n", m.TotalInvestment)
	fmt.Fprintf(&b, "| Total Fees | %s |\n", m.TotalFeesPaid)
	fmt.Fprintf(&b, "| ROI | %s |\n", m.ROI.SignedString())
	fmt.Fprintf(&b, "| CAGR | %s |\n", m.CAGR.SignedString())

	if len(m.DailyReturns) > 0 {
		fmt.Fprintf(&b, "\n## Cumulative Cash Flow (last %d days)\n\n", min(len(m.DailyReturns), 10))
		fmt.Fprintln(&b, "| Day | Cumulative |")
		fmt.Fprintln(&b, "|:---|---:|")
		tail := m.DailyReturns
		if len(tail) > 10 {
			tail = tail[len(tail)-10:]
		}
		for _, s := range tail {
			fmt.Fprintf(&b, "| %s | %s |\n", s.Day, s.Cumulative.SignedString())
		}
	}

	return b.String()
}
