package analytics

import (
	"testing"
	"time"

	"github.com/lokesh-122/SmartMoney/internal/core"
)

// monthlyExpenses builds one expense transaction per value, in consecutive
// months starting January 2025.
func monthlyExpenses(values ...float64) []core.Transaction {
	txs := make([]core.Transaction, 0, len(values))
	for i, v := range values {
		txs = append(txs, expense(core.CategoryFood, v, 2025, time.January+time.Month(i), 10))
	}
	return txs
}

func TestMonthlyExpenseSeriesSkipsEmptyMonths(t *testing.T) {
	// Expenses in January and March only; February has income but no
	// expenses and must NOT appear as a zero point.
	txs := []core.Transaction{
		expense(core.CategoryFood, 100, 2025, time.January, 5),
		income(core.CategorySalary, 999, 2025, time.February, 5),
		expense(core.CategoryFood, 300, 2025, time.March, 5),
	}
	got := MonthlyExpenseSeries(txs)
	if len(got) != 2 {
		t.Fatalf("series length = %d, want 2 (empty months skipped)", len(got))
	}
	if !approx(got[0], 100) || !approx(got[1], 300) {
		t.Errorf("series = %v, want [100 300]", got)
	}
}

func TestMonthlyExpenseSeriesChronological(t *testing.T) {
	// Transactions out of order, spanning a year boundary.
	txs := []core.Transaction{
		expense(core.CategoryFood, 300, 2025, time.February, 1),
		expense(core.CategoryFood, 100, 2024, time.December, 1),
		expense(core.CategoryFood, 200, 2025, time.January, 1),
	}
	got := MonthlyExpenseSeries(txs)
	want := []float64{100, 200, 300}
	for i := range want {
		if !approx(got[i], want[i]) {
			t.Fatalf("series = %v, want %v", got, want)
		}
	}
}

func TestLinearFit(t *testing.T) {
	tests := []struct {
		name          string
		series        []float64
		wantSlope     float64
		wantIntercept float64
	}{
		{name: "empty", series: nil, wantSlope: 0, wantIntercept: 0},
		{name: "single point", series: []float64{120}, wantSlope: 0, wantIntercept: 120},
		{name: "flat", series: []float64{100, 100, 100}, wantSlope: 0, wantIntercept: 100},
		{name: "exact line", series: []float64{100, 150, 200, 250}, wantSlope: 50, wantIntercept: 50},
		{name: "exact decline", series: []float64{300, 200, 100}, wantSlope: -100, wantIntercept: 400},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slope, intercept := linearFit(tt.series)
			if !approx(slope, tt.wantSlope) || !approx(intercept, tt.wantIntercept) {
				t.Errorf("linearFit(%v) = %v, %v; want %v, %v",
					tt.series, slope, intercept, tt.wantSlope, tt.wantIntercept)
			}
		})
	}
}

func TestPredictNextMonthExpense(t *testing.T) {
	tests := []struct {
		name string
		txs  []core.Transaction
		want float64
	}{
		{name: "no data", txs: nil, want: 0},
		{name: "one month returns it", txs: monthlyExpenses(140), want: 140},
		{name: "two months returns mean not extrapolation", txs: monthlyExpenses(100, 200), want: 150},
		{name: "three months extrapolates", txs: monthlyExpenses(100, 150, 200), want: 250},
		{name: "declining line clamps at zero", txs: monthlyExpenses(300, 200, 100), want: 0},
		{name: "steep decline stays non-negative", txs: monthlyExpenses(500, 300, 100), want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PredictNextMonthExpense(tt.txs)
			if !approx(got, tt.want) {
				t.Errorf("PredictNextMonthExpense() = %v, want %v", got, tt.want)
			}
			if got < 0 {
				t.Errorf("prediction must never be negative, got %v", got)
			}
		})
	}
}

func TestPredictIgnoresIncome(t *testing.T) {
	txs := append(monthlyExpenses(100, 200),
		income(core.CategorySalary, 10000, 2025, time.March, 1))
	if got := PredictNextMonthExpense(txs); !approx(got, 150) {
		t.Errorf("PredictNextMonthExpense() = %v, want 150 (income must not enter the series)", got)
	}
}

func TestSpendingTrend(t *testing.T) {
	tests := []struct {
		name string
		txs  []core.Transaction
		want Trend
	}{
		{name: "no data", txs: nil, want: TrendStable},
		{name: "single month", txs: monthlyExpenses(100), want: TrendStable},
		{name: "strictly increasing", txs: monthlyExpenses(100, 150, 200, 250), want: TrendIncreasing},
		{name: "flat", txs: monthlyExpenses(100, 100, 100, 100), want: TrendStable},
		{name: "strictly decreasing", txs: monthlyExpenses(300, 250, 200, 150), want: TrendDecreasing},
		{name: "noise below threshold", txs: monthlyExpenses(100, 102, 99, 101), want: TrendStable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SpendingTrend(tt.txs); got != tt.want {
				t.Errorf("SpendingTrend() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestForecastIdempotence(t *testing.T) {
	txs := monthlyExpenses(120, 180, 90, 210)
	if a, b := PredictNextMonthExpense(txs), PredictNextMonthExpense(txs); a != b {
		t.Errorf("prediction not deterministic: %v vs %v", a, b)
	}
	if a, b := SpendingTrend(txs), SpendingTrend(txs); a != b {
		t.Errorf("trend not deterministic: %q vs %q", a, b)
	}
}
