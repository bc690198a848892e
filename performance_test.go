package invtrack

import (
	"math"
	"testing"

	"github.com/invtrack/invtrack/date"
)

func TestComputePerformance(t *testing.T) {
	events := []TradeEvent{
		tradeOn("2025-01-01", "BTC", Buy, 10, 100, 1),
		tradeOn("2025-01-02", "BTC", Sell, 5, 120, 1),
	}

	m := ComputePerformance(events)

	if m.TotalTrades != 2 {
		t.Errorf("total trades = %d, want 2", m.TotalTrades)
	}
	if !m.TotalFeesPaid.Equal(usd(2)) {
		t.Errorf("fees = %s, want $2.00", m.TotalFeesPaid)
	}
	if !m.TotalInvestment.Equal(usd(1001)) {
		t.Errorf("investment = %s, want $1001.00", m.TotalInvestment)
	}

	// revenue 599 + residual value 5 × 120 = 600, minus cost 1001
	if !m.TotalProfitLoss.Equal(usd(198)) {
		t.Errorf("total P&L = %s, want $198.00", m.TotalProfitLoss)
	}

	wantROI := Percent(198.0 / 1001.0 * 100)
	if !m.ROI.Equal(wantROI) {
		t.Errorf("ROI = %s, want %s", m.ROI, wantROI)
	}
	// Over the assumed one-year horizon CAGR equals ROI.
	if !m.CAGR.Equal(wantROI) {
		t.Errorf("CAGR = %s, want %s", m.CAGR, wantROI)
	}
}

func TestComputePerformance_Empty(t *testing.T) {
	m := ComputePerformance(nil)

	if m.TotalTrades != 0 {
		t.Errorf("total trades = %d, want 0", m.TotalTrades)
	}
	if m.ROI != 0 || m.CAGR != 0 {
		t.Errorf("ROI/CAGR = %s/%s, want 0/0", m.ROI, m.CAGR)
	}
	if len(m.DailyReturns) != 0 {
		t.Errorf("got %d daily samples, want 0", len(m.DailyReturns))
	}
}

func TestComputePerformance_CAGRAnnualized(t *testing.T) {
	// Sanity check the formula itself: final/initial of 1.21 over one year.
	events := []TradeEvent{
		tradeOn("2025-01-01", "BTC", Buy, 1, 100, 0),
		tradeOn("2025-06-01", "BTC", Sell, 1, 121, 0),
	}

	m := ComputePerformance(events)

	want := Percent((math.Pow(1.21, 1) - 1) * 100)
	if !m.CAGR.Equal(want) {
		t.Errorf("CAGR = %s, want %s", m.CAGR, want)
	}
}

func TestDailyReturns(t *testing.T) {
	events := []TradeEvent{
		tradeOn("2025-01-01", "BTC", Buy, 10, 100, 1),  // flow -1001
		tradeOn("2025-01-01", "ETH", Buy, 1, 50, 0),    // same day, flow -50
		tradeOn("2025-01-03", "BTC", Sell, 5, 120, 1),  // flow +599
	}

	samples := dailyReturns(events)

	if len(samples) != 2 {
		t.Fatalf("got %d samples, want 2", len(samples))
	}
	if samples[0].Day != date.MustParse("2025-01-01") {
		t.Errorf("first day = %s, want 2025-01-01", samples[0].Day)
	}
	if !samples[0].Cumulative.Equal(usd(-1051)) {
		t.Errorf("day 1 cumulative = %s, want -$1051.00", samples[0].Cumulative)
	}
	if !samples[1].Cumulative.Equal(usd(-452)) {
		t.Errorf("day 2 cumulative = %s, want -$452.00", samples[1].Cumulative)
	}
}

func TestSampleEvery(t *testing.T) {
	samples := make([]ReturnSample, 16)
	for i := range samples {
		samples[i].Day = date.New(2025, 1, 1+i)
	}

	weekly := sampleEvery(samples, 7)
	if len(weekly) != 3 {
		t.Fatalf("got %d weekly samples, want 3", len(weekly))
	}
	// indices 0, 7, 14
	if weekly[1].Day != date.New(2025, 1, 8) {
		t.Errorf("second weekly sample on %s, want 2025-01-08", weekly[1].Day)
	}

	if got := sampleEvery(samples, 30); len(got) != 1 {
		t.Errorf("got %d monthly samples, want 1", len(got))
	}
	if got := sampleEvery(nil, 7); got != nil {
		t.Errorf("got %v for empty input, want nil", got)
	}
}
