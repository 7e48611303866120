// Package advisor implements the rule-based recommendation engine: investment
// options ranked by risk appetite and affordability, and saving tips matched
// to where the user actually spends. Both selectors are pure functions over
// static catalogs; nothing here performs I/O or holds state.
package advisor

import (
	"math"
	"sort"
	"time"

	"github.com/lokesh-122/SmartMoney/internal/analytics"
	"github.com/lokesh-122/SmartMoney/internal/core"
)

// maxRecommendations caps every selector's result.
const maxRecommendations = 3

// savingsGoalReserve is the fraction of the user's savings goal held back
// from the investable amount each month.
const savingsGoalReserve = 0.1

// riskAdmits reports whether an option at optRisk suits a user with the given
// appetite: an exact match, or exactly one level below it. A low-appetite
// user admits only low-risk options.
func riskAdmits(appetite, optRisk core.RiskLevel) bool {
	if appetite == optRisk {
		return true
	}
	switch appetite {
	case core.RiskHigh:
		return optRisk == core.RiskMedium
	case core.RiskMedium:
		return optRisk == core.RiskLow
	}
	return false
}

// RecommendInvestments selects up to three catalog options for the given
// investable amount and risk appetite. Options must be affordable and within
// the admitted risk band; exact risk matches rank first, then higher average
// return. When the band filter matches nothing, the three cheapest affordable
// options are returned instead so an affordable catalog always yields a
// recommendation. An unaffordable catalog yields an empty result.
func RecommendInvestments(investable float64, appetite core.RiskLevel) []InvestmentOption {
	var matched []InvestmentOption
	for _, opt := range investmentOptions {
		if opt.MinAmount <= investable && riskAdmits(appetite, opt.RiskLevel) {
			matched = append(matched, opt)
		}
	}

	if len(matched) == 0 {
		var affordable []InvestmentOption
		for _, opt := range investmentOptions {
			if opt.MinAmount <= investable {
				affordable = append(affordable, opt)
			}
		}
		sort.SliceStable(affordable, func(i, j int) bool {
			return affordable[i].MinAmount < affordable[j].MinAmount
		})
		return capResults(affordable)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		iExact := matched[i].RiskLevel == appetite
		jExact := matched[j].RiskLevel == appetite
		if iExact != jExact {
			return iExact
		}
		return matched[i].AverageReturn > matched[j].AverageReturn
	})
	return capResults(matched)
}

// RecommendTips selects up to three saving tips for the user's expense
// categories. With no categories and no top category it cold-starts on the
// first three catalog tips. Tips matching the top spending category rank
// before other matches; when fewer than three tips match, general budgeting
// and saving tips fill the remainder.
func RecommendTips(categories []core.Category, topCategory core.Category, haveTop bool) []SavingTip {
	if len(categories) == 0 && !haveTop {
		return capResults(TipCatalog())
	}

	inCategories := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		inCategories[string(c)] = struct{}{}
	}

	var topMatches, otherMatches []SavingTip
	for _, tip := range savingTips {
		if haveTop && tip.Category == string(topCategory) {
			topMatches = append(topMatches, tip)
			continue
		}
		if _, ok := inCategories[tip.Category]; ok {
			otherMatches = append(otherMatches, tip)
		}
	}
	selected := append(topMatches, otherMatches...)

	if len(selected) < maxRecommendations {
		chosen := make(map[int]struct{}, len(selected))
		for _, tip := range selected {
			chosen[tip.ID] = struct{}{}
		}
		for _, tip := range savingTips {
			if len(selected) >= maxRecommendations {
				break
			}
			if tip.Category != tipCategoryBudgeting && tip.Category != tipCategorySaving {
				continue
			}
			if _, ok := chosen[tip.ID]; ok {
				continue
			}
			chosen[tip.ID] = struct{}{}
			selected = append(selected, tip)
		}
	}

	return capResults(selected)
}

// InvestableAmount estimates the monthly disposable income available for
// investing: the reference month's savings minus a tenth of the savings goal,
// floored at zero and rounded to a whole amount.
func InvestableAmount(profile core.UserProfile, txs []core.Transaction, now time.Time) float64 {
	totals := analytics.FinancialTotals(txs, now)
	monthlySavings := totals.MonthlyIncome - totals.MonthlyExpenses
	disposable := monthlySavings - profile.SavingsGoal*savingsGoalReserve
	if disposable < 0 {
		return 0
	}
	return math.Round(disposable)
}

func capResults[T any](in []T) []T {
	if len(in) > maxRecommendations {
		return in[:maxRecommendations]
	}
	return in
}
