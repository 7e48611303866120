package analytics

import "time"

// monthKeyLayout renders a calendar month as "YYYY-MM". Keys compare
// chronologically under plain string ordering.
const monthKeyLayout = "2006-01"

// MonthlyBucket aggregates one calendar month of activity. Derived on every
// call, never persisted.
type MonthlyBucket struct {
	Month    string  `json:"month"`
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
	Savings  float64 `json:"savings"`
}

func monthKey(t time.Time) string {
	return t.Format(monthKeyLayout)
}

// firstOfMonth returns midnight on the first day of t's calendar month.
func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// monthStart returns the first day of the month `offset` months away from t's
// month. Negative offsets go back in time. time.Date normalizes out-of-range
// months, which keeps the arithmetic safe on 29th-31st reference dates.
func monthStart(t time.Time, offset int) time.Time {
	return time.Date(t.Year(), t.Month()+time.Month(offset), 1, 0, 0, 0, 0, t.Location())
}
