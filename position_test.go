package invtrack

import "testing"

func TestReplayAsset_AverageCost(t *testing.T) {
	// Buy 10 @ 10 with 1 fee: basis 101, average 10.1.
	// Sell 5 @ 15 with 0.5 fee: proceeds 74.5, cost removed 50.5, close +24.
	// The average cost of the remainder must not move.
	events := []TradeEvent{
		tradeOn("2025-01-01", "BTC", Buy, 10, 10, 1),
		tradeOn("2025-01-02", "BTC", Sell, 5, 15, 0.5),
	}

	pos, closes := replayAsset("BTC", events)

	if !pos.Quantity.Equal(Q(5)) {
		t.Errorf("quantity = %s, want 5", pos.Quantity)
	}
	if !pos.TotalCost.Equal(usd(50.5)) {
		t.Errorf("total cost = %s, want $50.50", pos.TotalCost)
	}
	if !pos.AverageCost.Equal(usd(10.1)) {
		t.Errorf("average cost = %s, want $10.10", pos.AverageCost)
	}
	if len(closes) != 1 {
		t.Fatalf("got %d closes, want 1", len(closes))
	}
	if !closes[0].ProfitLoss.Equal(usd(24)) {
		t.Errorf("close P&L = %s, want $24.00", closes[0].ProfitLoss)
	}

	// Remainder marked at the last trade price (15).
	if !pos.CurrentValue.Equal(usd(75)) {
		t.Errorf("current value = %s, want $75.00", pos.CurrentValue)
	}
	if !pos.UnrealizedPnL.Equal(usd(24.5)) {
		t.Errorf("unrealized = %s, want $24.50", pos.UnrealizedPnL)
	}
}

func TestReplayAsset_OversellClosesPosition(t *testing.T) {
	// Selling more than held clamps to empty instead of rejecting or going
	// short. The close is still computed over the full sell quantity.
	events := []TradeEvent{
		tradeOn("2025-01-01", "ETH", Buy, 2, 10, 0),
		tradeOn("2025-01-02", "ETH", Sell, 5, 12, 0),
	}

	pos, closes := replayAsset("ETH", events)

	if !pos.Quantity.IsZero() {
		t.Errorf("quantity = %s, want 0", pos.Quantity)
	}
	if !pos.TotalCost.IsZero() {
		t.Errorf("total cost = %s, want zero", pos.TotalCost)
	}
	if len(closes) != 1 {
		t.Fatalf("got %d closes, want 1", len(closes))
	}
	// proceeds 60, cost removed 5 × avg 10 = 50
	if !closes[0].ProfitLoss.Equal(usd(10)) {
		t.Errorf("close P&L = %s, want $10.00", closes[0].ProfitLoss)
	}
}

func TestReplayAsset_SellWithNothingHeld(t *testing.T) {
	// A sell on an empty position is a no-op: no close, no error.
	events := []TradeEvent{
		tradeOn("2025-01-01", "DOGE", Sell, 3, 2, 0),
	}

	pos, closes := replayAsset("DOGE", events)

	if len(closes) != 0 {
		t.Errorf("got %d closes, want 0", len(closes))
	}
	if !pos.Quantity.IsZero() || !pos.TotalCost.IsZero() {
		t.Errorf("position not empty: quantity %s cost %s", pos.Quantity, pos.TotalCost)
	}
}

func TestReplayAsset_SellAllZeroesBasis(t *testing.T) {
	events := []TradeEvent{
		tradeOn("2025-01-01", "BTC", Buy, 3, 100, 0),
		tradeOn("2025-01-02", "BTC", Sell, 3, 90, 0),
	}

	pos, closes := replayAsset("BTC", events)

	if !pos.Quantity.IsZero() || !pos.TotalCost.IsZero() {
		t.Errorf("position not flat: quantity %s cost %s", pos.Quantity, pos.TotalCost)
	}
	if len(closes) != 1 {
		t.Fatalf("got %d closes, want 1", len(closes))
	}
	if !closes[0].ProfitLoss.Equal(usd(-30)) {
		t.Errorf("close P&L = %s, want -$30.00", closes[0].ProfitLoss)
	}
}

func TestProjectHoldings(t *testing.T) {
	events := []TradeEvent{
		tradeOn("2025-01-01", "ETH", Buy, 4, 50, 0),
		tradeOn("2025-01-02", "BTC", Buy, 1, 100, 0),
		tradeOn("2025-01-03", "ETH", Sell, 4, 55, 0), // ETH fully closed
	}

	positions := ProjectHoldings(events)

	// Fully closed positions are filtered out, survivors sorted by asset.
	if len(positions) != 1 {
		t.Fatalf("got %d positions, want 1", len(positions))
	}
	if positions[0].Asset != "BTC" {
		t.Errorf("asset = %q, want BTC", positions[0].Asset)
	}
}

func TestProjectHoldings_SortedByAsset(t *testing.T) {
	events := []TradeEvent{
		tradeOn("2025-01-01", "ZEC", Buy, 1, 10, 0),
		tradeOn("2025-01-02", "AAPL", Buy, 1, 10, 0),
		tradeOn("2025-01-03", "MSFT", Buy, 1, 10, 0),
	}

	positions := ProjectHoldings(events)

	want := []string{"AAPL", "MSFT", "ZEC"}
	if len(positions) != len(want) {
		t.Fatalf("got %d positions, want %d", len(positions), len(want))
	}
	for i, asset := range want {
		if positions[i].Asset != asset {
			t.Errorf("positions[%d] = %q, want %q", i, positions[i].Asset, asset)
		}
	}
}

func TestRealizedCloses_ChronologicalAcrossAssets(t *testing.T) {
	events := []TradeEvent{
		tradeOn("2025-01-01", "BTC", Buy, 1, 100, 0),
		tradeOn("2025-01-01", "ETH", Buy, 1, 10, 0),
		tradeOn("2025-01-05", "BTC", Sell, 1, 110, 0),
		tradeOn("2025-01-03", "ETH", Sell, 1, 12, 0),
	}

	closes := realizedCloses(events)

	if len(closes) != 2 {
		t.Fatalf("got %d closes, want 2", len(closes))
	}
	if closes[0].Asset != "ETH" || closes[1].Asset != "BTC" {
		t.Errorf("closes out of order: %s then %s, want ETH then BTC", closes[0].Asset, closes[1].Asset)
	}
}
