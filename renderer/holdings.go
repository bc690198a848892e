package renderer

import (
	"fmt"
	"strings"

	"github.com/invtrack/invtrack"
)

// HoldingsMarkdown renders the currently held positions as a markdown table,
// with a portfolio total row.
func HoldingsMarkdown(positions []invtrack.Position) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Holdings\n\n")
	if len(positions) == 0 {
		fmt.Fprintln(&b, "No open positions.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Asset | Quantity | Avg Cost | Total Cost | Value | Unrealized | % |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|---:|---:|")

	var totalCost, totalValue, totalPnL invtrack.Money
	for _, p := range positions {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s |\n",
			p.Asset,
			p.Quantity,
			p.AverageCost,
			p.TotalCost,
			p.CurrentValue,
			p.UnrealizedPnL.SignedString(),
			p.UnrealizedPnLPct.SignedString(),
		)
		totalCost = totalCost.Add(p.TotalCost)
		totalValue = totalValue.Add(p.CurrentValue)
		totalPnL = totalPnL.Add(p.UnrealizedPnL)
	}
	fmt.Fprintf(&b, "| **Total** | | | **%s** | **%s** | **%s** | |\n",
		totalCost, totalValue, totalPnL.SignedString())

	return b.String()
}
