package invtrack

import (
	"math"
	"testing"
)

func TestComputeTradingStatistics(t *testing.T) {
	// Three closed round trips: +50, -20, +30.
	events := []TradeEvent{
		tradeOn("2025-01-01", "BTC", Buy, 1, 100, 0),
		tradeOn("2025-01-02", "BTC", Sell, 1, 150, 0),
		tradeOn("2025-01-03", "BTC", Buy, 1, 100, 0),
		tradeOn("2025-01-04", "BTC", Sell, 1, 80, 0),
		tradeOn("2025-01-05", "BTC", Buy, 1, 100, 0),
		tradeOn("2025-01-06", "BTC", Sell, 1, 130, 0),
	}

	s := ComputeTradingStatistics(events)

	if s.TotalCloses != 3 {
		t.Fatalf("closes = %d, want 3", s.TotalCloses)
	}
	if s.Wins != 2 || s.Losses != 1 {
		t.Errorf("wins/losses = %d/%d, want 2/1", s.Wins, s.Losses)
	}
	if s.WinLossRatio != 2 {
		t.Errorf("win/loss ratio = %v, want 2", s.WinLossRatio)
	}
	if !s.AverageWin.Equal(usd(40)) {
		t.Errorf("average win = %s, want $40.00", s.AverageWin)
	}
	if !s.AverageLoss.Equal(usd(20)) {
		t.Errorf("average loss = %s, want $20.00", s.AverageLoss)
	}
	if s.ProfitFactor != 4 {
		t.Errorf("profit factor = %v, want 4", s.ProfitFactor)
	}
	if !s.WinRate.Equal(Percent(200.0 / 3)) {
		t.Errorf("win rate = %s, want %.4f", s.WinRate, 200.0/3)
	}
	// Curve 50, 30, 60: the dip from peak 50 down to 30.
	if !s.MaxDrawdown.Equal(usd(20)) {
		t.Errorf("max drawdown = %s, want $20.00", s.MaxDrawdown)
	}
}

func TestComputeTradingStatistics_NoLosses(t *testing.T) {
	events := []TradeEvent{
		tradeOn("2025-01-01", "BTC", Buy, 1, 100, 0),
		tradeOn("2025-01-02", "BTC", Sell, 1, 150, 0),
	}

	s := ComputeTradingStatistics(events)

	// With no losses the ratio degenerates to the win count and the profit
	// factor to the gross profit.
	if s.WinLossRatio != 1 {
		t.Errorf("win/loss ratio = %v, want 1", s.WinLossRatio)
	}
	if s.ProfitFactor != 50 {
		t.Errorf("profit factor = %v, want 50", s.ProfitFactor)
	}
	if s.WinRate != 100 {
		t.Errorf("win rate = %s, want 100%%", s.WinRate)
	}
	if !s.MaxDrawdown.IsZero() {
		t.Errorf("max drawdown = %s, want zero", s.MaxDrawdown)
	}
}

func TestComputeTradingStatistics_Empty(t *testing.T) {
	s := ComputeTradingStatistics(nil)

	if s.TotalCloses != 0 || s.Wins != 0 || s.Losses != 0 {
		t.Errorf("unexpected counters: %+v", s)
	}
	if s.WinRate != 0 || s.WinLossRatio != 0 || s.ProfitFactor != 0 {
		t.Errorf("unexpected ratios: %+v", s)
	}
}

func TestMaxDrawdown_MonotoneCurve(t *testing.T) {
	closes := []RealizedClose{
		{ProfitLoss: usd(10)},
		{ProfitLoss: usd(5)},
		{ProfitLoss: usd(20)},
	}
	if dd := maxDrawdown(closes); !dd.IsZero() {
		t.Errorf("drawdown = %s, want zero for a rising curve", dd)
	}
}

func TestMaxDrawdown_NeverNegative(t *testing.T) {
	closes := []RealizedClose{
		{ProfitLoss: usd(-30)},
		{ProfitLoss: usd(-10)},
		{ProfitLoss: usd(50)},
	}
	dd := maxDrawdown(closes)
	if dd.IsNegative() {
		t.Fatalf("drawdown = %s, must never be negative", dd)
	}
	// Peak starts at 0, trough at -40.
	if !dd.Equal(usd(40)) {
		t.Errorf("drawdown = %s, want $40.00", dd)
	}
	if math.Signbit(dd.AsFloat()) {
		t.Errorf("drawdown = %v, want positive", dd.AsFloat())
	}
}
