// Package analytics transforms a raw transaction history into the derived
// data the dashboard displays: category aggregates, monthly rollups, totals,
// and a trend-based expense forecast.
//
// Every function here is pure and synchronous. Anything that depends on the
// current date takes an explicit reference time, so callers (and tests)
// control the clock. Empty input yields zero-valued output, never an error.
package analytics

import (
	"sort"
	"time"

	"github.com/lokesh-122/SmartMoney/internal/core"
)

// DefaultRollupMonths is the trailing window the dashboard trend chart shows.
const DefaultRollupMonths = 6

// CategorySpend is one category's share of total expenses.
type CategorySpend struct {
	Category   core.Category `json:"category"`
	Amount     float64       `json:"amount"`
	Percentage float64       `json:"percentage"`
}

// Totals summarizes income and expenses all-time and for the reference
// calendar month.
type Totals struct {
	TotalIncome     float64 `json:"totalIncome"`
	TotalExpenses   float64 `json:"totalExpenses"`
	MonthlyIncome   float64 `json:"monthlyIncome"`
	MonthlyExpenses float64 `json:"monthlyExpenses"`
	TotalSavings    float64 `json:"totalSavings"`
	SavingsRate     float64 `json:"savingsRate"`
}

// expenseCategory files a transaction's category for aggregation, routing
// unknown values into the "other" bucket.
func expenseCategory(tx core.Transaction) core.Category {
	return core.NormalizeCategory(string(tx.Category))
}

// SpendingByCategory sums expense transactions per category and computes each
// category's percentage of total spending. The result is ordered by amount
// descending; ties keep first-encountered category order.
func SpendingByCategory(txs []core.Transaction) []CategorySpend {
	sums := make(map[core.Category]float64)
	var order []core.Category
	var total float64

	for _, tx := range txs {
		if tx.Type != core.Expense {
			continue
		}
		amount := sanitizeAmount(tx.Amount)
		cat := expenseCategory(tx)
		if _, seen := sums[cat]; !seen {
			order = append(order, cat)
		}
		sums[cat] += amount
		total += amount
	}

	out := make([]CategorySpend, 0, len(order))
	for _, cat := range order {
		out = append(out, CategorySpend{
			Category:   cat,
			Amount:     sums[cat],
			Percentage: percentOf(sums[cat], total),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Amount > out[j].Amount
	})
	return out
}

// MonthlyRollup buckets transactions into the trailing monthCount calendar
// months ending at now's month, inclusive. Months without transactions stay
// present with zero values so chart series have no gaps. Output is ordered
// chronologically ascending. A non-positive monthCount falls back to
// DefaultRollupMonths.
func MonthlyRollup(txs []core.Transaction, monthCount int, now time.Time) []MonthlyBucket {
	if monthCount <= 0 {
		monthCount = DefaultRollupMonths
	}

	buckets := make([]MonthlyBucket, monthCount)
	index := make(map[string]int, monthCount)
	for i := 0; i < monthCount; i++ {
		key := monthKey(monthStart(now, i-monthCount+1))
		buckets[i] = MonthlyBucket{Month: key}
		index[key] = i
	}

	for _, tx := range txs {
		i, ok := index[monthKey(tx.Date)]
		if !ok {
			continue
		}
		amount := sanitizeAmount(tx.Amount)
		if tx.Type == core.Income {
			buckets[i].Income += amount
		} else {
			buckets[i].Expenses += amount
		}
	}

	for i := range buckets {
		buckets[i].Savings = buckets[i].Income - buckets[i].Expenses
	}
	return buckets
}

// FinancialTotals sums income and expenses all-time plus for the calendar
// month containing now. SavingsRate is 0 when there is no income.
func FinancialTotals(txs []core.Transaction, now time.Time) Totals {
	monthStart := firstOfMonth(now)

	var t Totals
	for _, tx := range txs {
		amount := sanitizeAmount(tx.Amount)
		inMonth := !tx.Date.Before(monthStart)
		if tx.Type == core.Income {
			t.TotalIncome += amount
			if inMonth {
				t.MonthlyIncome += amount
			}
		} else {
			t.TotalExpenses += amount
			if inMonth {
				t.MonthlyExpenses += amount
			}
		}
	}

	t.TotalSavings = t.TotalIncome - t.TotalExpenses
	if t.TotalIncome > 0 {
		t.SavingsRate = t.TotalSavings / t.TotalIncome * 100
	}
	return t
}

// TopSpendingCategory returns the expense category with the largest summed
// amount. Ties keep the first-encountered category. The second return is
// false when there are no expense transactions.
func TopSpendingCategory(txs []core.Transaction) (core.Category, bool) {
	sums := make(map[core.Category]float64)
	var order []core.Category

	for _, tx := range txs {
		if tx.Type != core.Expense {
			continue
		}
		cat := expenseCategory(tx)
		if _, seen := sums[cat]; !seen {
			order = append(order, cat)
		}
		sums[cat] += sanitizeAmount(tx.Amount)
	}
	if len(order) == 0 {
		return "", false
	}

	top := order[0]
	for _, cat := range order[1:] {
		if sums[cat] > sums[top] {
			top = cat
		}
	}
	return top, true
}

// UserExpenseCategories returns the distinct categories the user has expense
// transactions in, first-encountered order.
func UserExpenseCategories(txs []core.Transaction) []core.Category {
	seen := make(map[core.Category]struct{})
	var out []core.Category
	for _, tx := range txs {
		if tx.Type != core.Expense {
			continue
		}
		cat := expenseCategory(tx)
		if _, ok := seen[cat]; ok {
			continue
		}
		seen[cat] = struct{}{}
		out = append(out, cat)
	}
	return out
}
