// Package core defines the domain types shared across the service:
// transactions, categories, and user profiles.
package core

import "strings"

// Category is the closed enumeration a transaction is filed under. The set is
// partitioned into expense and income categories; "other" belongs to both.
type Category string

const (
	CategoryHousing        Category = "housing"
	CategoryFood           Category = "food"
	CategoryTransportation Category = "transportation"
	CategoryUtilities      Category = "utilities"
	CategoryInsurance      Category = "insurance"
	CategoryHealthcare     Category = "healthcare"
	CategoryDebt           Category = "debt"
	CategoryPersonal       Category = "personal"
	CategoryEntertainment  Category = "entertainment"
	CategoryEducation      Category = "education"
	CategorySavings        Category = "savings"
	CategoryGifts          Category = "gifts"
	CategoryOther          Category = "other"

	CategorySalary     Category = "salary"
	CategoryInvestment Category = "investment"
	CategoryBonus      Category = "bonus"
)

// ExpenseCategories lists the valid categories for expense transactions,
// in display order.
var ExpenseCategories = []Category{
	CategoryHousing,
	CategoryFood,
	CategoryTransportation,
	CategoryUtilities,
	CategoryInsurance,
	CategoryHealthcare,
	CategoryDebt,
	CategoryPersonal,
	CategoryEntertainment,
	CategoryEducation,
	CategorySavings,
	CategoryGifts,
	CategoryOther,
}

// IncomeCategories lists the valid categories for income transactions.
var IncomeCategories = []Category{
	CategorySalary,
	CategoryInvestment,
	CategoryBonus,
	CategoryOther,
}

var knownCategories = func() map[Category]struct{} {
	m := make(map[Category]struct{})
	for _, c := range ExpenseCategories {
		m[c] = struct{}{}
	}
	for _, c := range IncomeCategories {
		m[c] = struct{}{}
	}
	return m
}()

// IsKnown reports whether c is a member of the category enumeration.
func (c Category) IsKnown() bool {
	_, ok := knownCategories[c]
	return ok
}

// ValidFor reports whether c belongs to the partition for the given
// transaction type. The UI enforces this pairing; the analytics layer only
// tolerates violations, it never fails on them.
func (c Category) ValidFor(t TransactionType) bool {
	var set []Category
	switch t {
	case Income:
		set = IncomeCategories
	case Expense:
		set = ExpenseCategories
	default:
		return false
	}
	for _, v := range set {
		if v == c {
			return true
		}
	}
	return false
}

// NormalizeCategory maps a raw category string onto the enumeration. Unknown
// or malformed values collapse into CategoryOther so aggregation never fails
// on bad input.
func NormalizeCategory(raw string) Category {
	c := Category(strings.ToLower(strings.TrimSpace(raw)))
	if c.IsKnown() {
		return c
	}
	return CategoryOther
}
