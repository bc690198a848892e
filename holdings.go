package invtrack

import "sort"

// ProjectHoldings derives the current holdings snapshot from the full trade
// log: events are grouped per asset, each group is replayed through the
// weighted-average-cost ledger, and only positions still holding quantity are
// returned, sorted by asset for stable output.
//
// This is a pure projection: the same log always yields the same snapshot,
// and an empty log yields an empty snapshot.
func ProjectHoldings(events []TradeEvent) []Position {
	groups := groupByAsset(events)

	positions := make([]Position, 0, len(groups))
	for asset, group := range groups {
		pos, _ := replayAsset(asset, sortedByTime(group))
		if pos.Quantity.IsPositive() {
			positions = append(positions, pos)
		}
	}

	sort.Slice(positions, func(i, j int) bool { return positions[i].Asset < positions[j].Asset })
	return positions
}

// realizedCloses replays every asset and returns the combined sequence of
// realized closes, ordered chronologically across assets.
func realizedCloses(events []TradeEvent) []RealizedClose {
	groups := groupByAsset(events)

	var closes []RealizedClose
	for asset, group := range groups {
		_, assetCloses := replayAsset(asset, sortedByTime(group))
		closes = append(closes, assetCloses...)
	}

	sort.SliceStable(closes, func(i, j int) bool { return closes[i].Time.Before(closes[j].Time) })
	return closes
}
