package renderer

import (
	"fmt"
	"strings"

	"github.com/invtrack/invtrack"
)

// TradesMarkdown renders the trade log in chronological order. When asset is
// non-empty, only that asset's trades are listed.
func TradesMarkdown(log *invtrack.TradeLog, asset string) string {
	var b strings.Builder

	if asset != "" {
		fmt.Fprintf(&b, "# Trades for %s\n\n", asset)
	} else {
		fmt.Fprintf(&b, "# Trades\n\n")
	}

	fmt.Fprintln(&b, "| Time | Asset | Side | Quantity | Price | Fees | Id |")
	fmt.Fprintln(&b, "|:---|:---|:---|---:|---:|---:|:---|")

	count := 0
	for ev := range log.All() {
		if asset != "" && ev.Asset != asset {
			continue
		}
		count++
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s |\n",
			ev.Time.Format("2006-01-02 15:04"),
			ev.Asset,
			ev.Side,
			ev.Quantity,
			ev.Price,
			ev.Fees,
			shortID(ev.ID),
		)
	}
	if count == 0 {
		return "# Trades\n\nNo trades recorded.\n"
	}
	return b.String()
}

// shortID keeps the first uuid group, enough to disambiguate in a personal log.
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}
