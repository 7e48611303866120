package advisor

// SavingTip is one entry of the static saving-tip catalog. Tip categories are
// a superset of the transaction categories (some tips target shopping habits
// or budgeting in general rather than a ledger category).
type SavingTip struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// General tip categories used to top up recommendations when too few
// category-specific tips match.
const (
	tipCategoryBudgeting = "budgeting"
	tipCategorySaving    = "saving"
)

var savingTips = []SavingTip{
	{
		ID:          1,
		Title:       "50/30/20 Rule",
		Description: "Allocate 50% of your income to needs, 30% to wants, and 20% to savings and debt repayment.",
		Category:    tipCategoryBudgeting,
	},
	{
		ID:          2,
		Title:       "Cook at Home",
		Description: "Eating out less and cooking at home can save you up to 70% on food expenses.",
		Category:    "food",
	},
	{
		ID:          3,
		Title:       "Automatic Savings",
		Description: "Set up automatic transfers to your savings account on payday to ensure consistent saving.",
		Category:    tipCategorySaving,
	},
	{
		ID:          4,
		Title:       "Energy Audit",
		Description: "Conduct an energy audit of your home to identify ways to reduce utility bills.",
		Category:    "utilities",
	},
	{
		ID:          5,
		Title:       "Debt Snowball",
		Description: "Pay off your smallest debts first to build momentum and motivation for larger ones.",
		Category:    "debt",
	},
	{
		ID:          6,
		Title:       "24-Hour Rule",
		Description: "Wait 24 hours before making non-essential purchases to avoid impulse buying.",
		Category:    "shopping",
	},
	{
		ID:          7,
		Title:       "Use Public Transportation",
		Description: "Using public transport instead of driving can save on gas, maintenance, and parking costs.",
		Category:    "transportation",
	},
	{
		ID:          8,
		Title:       "Buy Generic",
		Description: "Choose generic or store-brand products over name brands to save 20-30% on groceries.",
		Category:    "shopping",
	},
	{
		ID:          9,
		Title:       "Cancel Unused Subscriptions",
		Description: "Review and cancel subscriptions and memberships you're not actively using.",
		Category:    "entertainment",
	},
	{
		ID:          10,
		Title:       "Emergency Fund",
		Description: "Build an emergency fund that covers 3-6 months of essential expenses.",
		Category:    tipCategorySaving,
	},
}

// TipCatalog returns a copy of the static catalog in catalog order.
func TipCatalog() []SavingTip {
	out := make([]SavingTip, len(savingTips))
	copy(out, savingTips)
	return out
}
