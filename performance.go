package invtrack

import (
	"math"

	"github.com/invtrack/invtrack/date"
)

// ReturnSample is one point of a cumulative profit-and-loss series.
type ReturnSample struct {
	Day        date.Date
	Cumulative Money
}

// PerformanceMetrics is the whole-portfolio read model derived from the full
// trade log.
type PerformanceMetrics struct {
	TotalTrades     int
	TotalProfitLoss Money // realized proceeds plus mark-to-market, minus all cost incurred
	TotalFeesPaid   Money
	TotalInvestment Money // sum of buy cost including fees
	ROI             Percent
	CAGR            Percent
	// DailyReturns holds one cumulative net-cash-flow sample per calendar day
	// present in the log; days without trades are not synthesized.
	DailyReturns []ReturnSample
	// WeeklyReturns and MonthlyReturns sub-sample the daily series at fixed
	// strides of 7 and 30 entries. This is sampling by index, not calendar
	// resampling.
	WeeklyReturns  []ReturnSample
	MonthlyReturns []ReturnSample
}

// cagrYears is the holding period assumed by the CAGR computation. The
// original tracker never measured the actual trade date range, so CAGR
// degenerates to ROI; kept for output compatibility. See docs/model.md.
const cagrYears = 1.0

// ComputePerformance derives the portfolio-wide performance metrics from the
// full trade log. It is a pure function: no input is mutated and the same log
// always yields the same metrics.
func ComputePerformance(events []TradeEvent) PerformanceMetrics {
	m := PerformanceMetrics{TotalTrades: len(events)}

	for _, e := range events {
		m.TotalFeesPaid = m.TotalFeesPaid.Add(e.Fees)
		if e.Side == Buy {
			m.TotalInvestment = m.TotalInvestment.Add(e.Price.Mul(e.Quantity)).Add(e.Fees)
		}
	}

	m.TotalProfitLoss = totalProfitLoss(events)

	// ROI and CAGR compare the invested total against the invested total plus
	// profit, guarded when nothing was ever invested.
	if invested := m.TotalInvestment.AsFloat(); invested != 0 {
		final := invested + m.TotalProfitLoss.AsFloat()
		m.ROI = Percent((final - invested) / invested * 100)
		m.CAGR = Percent((math.Pow(final/invested, 1/cagrYears) - 1) * 100)
	}

	m.DailyReturns = dailyReturns(events)
	m.WeeklyReturns = sampleEvery(m.DailyReturns, 7)
	m.MonthlyReturns = sampleEvery(m.DailyReturns, 30)
	return m
}

// totalProfitLoss computes, per asset, realized sell revenue plus the
// mark-to-market value of whatever quantity remains (at the asset's last
// trade price), minus every cost ever incurred, and sums across assets.
func totalProfitLoss(events []TradeEvent) Money {
	var total Money
	for _, group := range groupByAsset(events) {
		sorted := sortedByTime(group)

		var cost, revenue Money
		var quantity Quantity
		for _, e := range sorted {
			if e.Side == Buy {
				cost = cost.Add(e.Price.Mul(e.Quantity)).Add(e.Fees)
				quantity = quantity.Add(e.Quantity)
			} else {
				revenue = revenue.Add(e.Price.Mul(e.Quantity)).Sub(e.Fees)
				quantity = quantity.Sub(e.Quantity)
			}
		}

		lastPrice := sorted[len(sorted)-1].Price
		currentValue := lastPrice.Mul(quantity)
		total = total.Add(revenue).Add(currentValue).Sub(cost)
	}
	return total
}

// dailyReturns buckets events by calendar day and accumulates each day's net
// cash flow (sell proceeds minus buy cost, fees reducing both) into a
// running cumulative series, one sample per day present in the log.
func dailyReturns(events []TradeEvent) []ReturnSample {
	var perDay date.History[Money]
	for _, e := range events {
		flow := e.Price.Mul(e.Quantity)
		if e.Side == Buy {
			flow = flow.Neg().Sub(e.Fees)
		} else {
			flow = flow.Sub(e.Fees)
		}
		perDay.Merge(date.Of(e.Time.UTC()), flow, func(old, new Money) Money { return old.Add(new) })
	}

	samples := make([]ReturnSample, 0, perDay.Len())
	var cumulative Money
	for day, flow := range perDay.Values() {
		cumulative = cumulative.Add(flow)
		samples = append(samples, ReturnSample{Day: day, Cumulative: cumulative})
	}
	return samples
}

// sampleEvery keeps every n-th sample starting from the first.
func sampleEvery(samples []ReturnSample, n int) []ReturnSample {
	var out []ReturnSample
	for i, s := range samples {
		if i%n == 0 {
			out = append(out, s)
		}
	}
	return out
}
