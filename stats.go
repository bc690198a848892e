package invtrack

// TradingStatistics summarizes the realized closes produced by the
// weighted-average-cost replay, one close per sell that matched held
// quantity.
type TradingStatistics struct {
	TotalCloses  int
	Wins         int
	Losses       int
	WinLossRatio float64 // wins / losses; the raw win count when there are no losses
	AverageWin   Money   // mean positive close, zero when none
	AverageLoss  Money   // mean magnitude of negative closes, zero when none
	ProfitFactor float64 // gross profit / gross loss; gross profit when there are no losses
	WinRate      Percent // winning closes over all closes, in [0, 100]
	MaxDrawdown  Money   // largest peak-to-trough decline of the cumulative realized P&L curve
}

// ComputeTradingStatistics derives win/loss statistics from the full trade
// log. The closes are ordered chronologically across assets before the
// drawdown curve is formed.
func ComputeTradingStatistics(events []TradeEvent) TradingStatistics {
	return statisticsFromCloses(realizedCloses(events))
}

func statisticsFromCloses(closes []RealizedClose) TradingStatistics {
	s := TradingStatistics{TotalCloses: len(closes)}

	var grossProfit, grossLoss Money
	for _, c := range closes {
		switch {
		case c.ProfitLoss.IsPositive():
			s.Wins++
			grossProfit = grossProfit.Add(c.ProfitLoss)
		case c.ProfitLoss.IsNegative():
			s.Losses++
			grossLoss = grossLoss.Add(c.ProfitLoss.Abs())
		}
	}

	if s.Losses == 0 {
		s.WinLossRatio = float64(s.Wins)
		s.ProfitFactor = grossProfit.AsFloat()
	} else {
		s.WinLossRatio = float64(s.Wins) / float64(s.Losses)
		s.ProfitFactor = grossProfit.AsFloat() / grossLoss.AsFloat()
	}

	if s.Wins > 0 {
		s.AverageWin = grossProfit.Div(Q(s.Wins))
	}
	if s.Losses > 0 {
		s.AverageLoss = grossLoss.Div(Q(s.Losses))
	}
	if s.TotalCloses > 0 {
		s.WinRate = Percent(float64(s.Wins) / float64(s.TotalCloses) * 100)
	}

	s.MaxDrawdown = maxDrawdown(closes)
	return s
}

// maxDrawdown forms the cumulative sum of closes (already chronologically
// sorted) and returns the largest peak-to-current decline observed. The
// result is a non-negative magnitude, zero for a non-decreasing curve.
func maxDrawdown(closes []RealizedClose) Money {
	var running, peak, maxDD Money
	for _, c := range closes {
		running = running.Add(c.ProfitLoss)
		if running.GreaterThan(peak) {
			peak = running
		}
		if dd := peak.Sub(running); dd.GreaterThan(maxDD) {
			maxDD = dd
		}
	}
	return maxDD
}
