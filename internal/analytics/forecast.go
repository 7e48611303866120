package analytics

import (
	"sort"

	"github.com/lokesh-122/SmartMoney/internal/core"
)

// Trend classifies the direction of monthly spending relative to a noise
// threshold.
type Trend string

const (
	TrendIncreasing Trend = "increasing"
	TrendDecreasing Trend = "decreasing"
	TrendStable     Trend = "stable"
)

// trendThreshold is the fraction of mean monthly spending the fitted slope
// must exceed before a trend is reported. Keeps month-to-month noise from
// showing up as a direction.
const trendThreshold = 0.05

// minRegressionPoints is the smallest series the regression is trusted on;
// below it the forecast falls back to the arithmetic mean.
const minRegressionPoints = 3

// MonthlyExpenseSeries returns total expenses per calendar month, ordered
// chronologically by month key, with one entry per month that has at least
// one expense transaction. Months without expenses are skipped rather than
// zero-filled: an artificial zero month would drag the fitted slope toward
// "decreasing" in sparse histories.
func MonthlyExpenseSeries(txs []core.Transaction) []float64 {
	totals := make(map[string]float64)
	for _, tx := range txs {
		if tx.Type != core.Expense {
			continue
		}
		totals[monthKey(tx.Date)] += sanitizeAmount(tx.Amount)
	}

	keys := make([]string, 0, len(totals))
	for k := range totals {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	series := make([]float64, len(keys))
	for i, k := range keys {
		series[i] = totals[k]
	}
	return series
}

// linearFit runs ordinary least squares over x = 1..n against the series
// values. A series of one point or fewer degenerates to a flat line through
// the available value.
func linearFit(series []float64) (slope, intercept float64) {
	n := len(series)
	if n <= 1 {
		if n == 1 {
			return 0, series[0]
		}
		return 0, 0
	}

	meanX := float64(n+1) / 2
	meanY := mean(series)

	var numerator, denominator float64
	for i, y := range series {
		x := float64(i + 1)
		numerator += (x - meanX) * (y - meanY)
		denominator += (x - meanX) * (x - meanX)
	}

	slope = numerator / denominator
	intercept = meanY - slope*meanX
	return slope, intercept
}

// PredictNextMonthExpense forecasts the coming month's total expenses. With
// fewer than three months of data it returns the mean of what exists (0 with
// no data); otherwise it evaluates the fitted line one step past the series.
// The result is clamped at zero: a spending forecast cannot go negative.
func PredictNextMonthExpense(txs []core.Transaction) float64 {
	series := MonthlyExpenseSeries(txs)
	if len(series) < minRegressionPoints {
		return mean(series)
	}

	slope, intercept := linearFit(series)
	predicted := intercept + slope*float64(len(series)+1)
	if predicted < 0 {
		return 0
	}
	return predicted
}

// SpendingTrend classifies the slope of monthly expenses as increasing,
// decreasing, or stable. Fewer than two data points is always stable. The
// slope must clear 5% of the mean monthly spend to count as a trend.
func SpendingTrend(txs []core.Transaction) Trend {
	series := MonthlyExpenseSeries(txs)
	if len(series) < 2 {
		return TrendStable
	}

	slope, _ := linearFit(series)
	threshold := trendThreshold * mean(series)

	switch {
	case slope > threshold:
		return TrendIncreasing
	case slope < -threshold:
		return TrendDecreasing
	default:
		return TrendStable
	}
}
