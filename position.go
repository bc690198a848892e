package invtrack

import "time"

// Position is the weighted-average-cost state of one asset after replaying
// all of its trade events.
//
// AverageCost is derived (TotalCost / Quantity) and therefore never changes
// on a sell: a sell shrinks Quantity and TotalCost proportionally.
type Position struct {
	Asset            string
	Quantity         Quantity
	TotalCost        Money   // cost basis of the currently held quantity
	AverageCost      Money   // TotalCost / Quantity, zero when flat
	CurrentValue     Money   // Quantity × last observed trade price
	UnrealizedPnL    Money   // CurrentValue − TotalCost
	UnrealizedPnLPct Percent // UnrealizedPnL / TotalCost × 100, zero on zero basis
}

// RealizedClose is the profit or loss locked in by one sell event that
// matched previously held quantity. It is an intermediate feed for trading
// statistics, never persisted.
type RealizedClose struct {
	Asset      string
	Time       time.Time
	ProfitLoss Money
}

// replayAsset runs the weighted-average-cost replay over one asset's events,
// which must already be in chronological order. It returns the final position
// and one RealizedClose per sell that matched held quantity.
//
// A sell of more than the held quantity clamps the position to empty rather
// than rejecting or going short. A sell with nothing held is a no-op on the
// ledger: no close, no error.
func replayAsset(asset string, events []TradeEvent) (Position, []RealizedClose) {
	var quantity Quantity
	var totalCost Money
	var lastPrice Money
	var closes []RealizedClose

	for _, e := range events {
		lastPrice = e.Price
		switch e.Side {
		case Buy:
			quantity = quantity.Add(e.Quantity)
			totalCost = totalCost.Add(e.Price.Mul(e.Quantity)).Add(e.Fees)
		case Sell:
			if !quantity.IsPositive() {
				continue
			}
			avgCost := totalCost.Div(quantity)
			proceeds := e.Price.Mul(e.Quantity).Sub(e.Fees)
			costRemoved := avgCost.Mul(e.Quantity)
			closes = append(closes, RealizedClose{
				Asset:      asset,
				Time:       e.Time,
				ProfitLoss: proceeds.Sub(costRemoved),
			})

			remaining := quantity.Sub(e.Quantity)
			if remaining.IsPositive() {
				quantity = remaining
				totalCost = totalCost.Sub(costRemoved).Floor0()
			} else {
				quantity = Quantity{}
				totalCost = M(0, totalCost.Currency())
			}
		}
	}

	pos := Position{
		Asset:     asset,
		Quantity:  quantity,
		TotalCost: totalCost,
	}
	if quantity.IsPositive() {
		pos.AverageCost = totalCost.Div(quantity)
	}
	pos.CurrentValue = lastPrice.Mul(quantity)
	pos.UnrealizedPnL = pos.CurrentValue.Sub(pos.TotalCost)
	if pos.TotalCost.IsPositive() {
		pos.UnrealizedPnLPct = Percent(pos.UnrealizedPnL.AsFloat() / pos.TotalCost.AsFloat() * 100)
	}
	return pos, closes
}
