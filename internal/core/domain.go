package core

import (
	"errors"
	"math"
	"strings"
	"time"
)

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

type (
	TransactionType string

	RiskLevel string

	// Transaction is a single recorded income or expense. Amount is always a
	// non-negative magnitude; direction is carried by Type, never by sign.
	Transaction struct {
		ID          string          `json:"id"`
		UserID      string          `json:"userId"`
		Amount      float64         `json:"amount"`
		Category    Category        `json:"category"`
		Type        TransactionType `json:"type"`
		Date        time.Time       `json:"date"`
		Description string          `json:"description"`
	}

	// UserProfile holds the financial profile driving recommendations.
	// The analytics and advisor layers never mutate it.
	UserProfile struct {
		Income       float64   `json:"income"`
		SavingsGoal  float64   `json:"savingsGoal"`
		RiskAppetite RiskLevel `json:"riskAppetite"`
	}
)

var (
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrInvalidType      = errors.New("invalid transaction type")
	ErrInvalidDate      = errors.New("invalid date")
	ErrEmptyDescription = errors.New("empty description")
	ErrInvalidRisk      = errors.New("invalid risk level")
)

func (t TransactionType) Validate() error {
	switch t {
	case Income, Expense:
		return nil
	}
	return ErrInvalidType
}

func (r RiskLevel) Validate() error {
	switch r {
	case RiskLow, RiskMedium, RiskHigh:
		return nil
	}
	return ErrInvalidRisk
}

// ParseRiskLevel normalizes a user-supplied risk string.
func ParseRiskLevel(s string) (RiskLevel, error) {
	r := RiskLevel(strings.ToLower(strings.TrimSpace(s)))
	if err := r.Validate(); err != nil {
		return "", err
	}
	return r, nil
}

func (t Transaction) Validate() error {
	if err := t.Type.Validate(); err != nil {
		return err
	}
	if t.Amount < 0 || math.IsNaN(t.Amount) || math.IsInf(t.Amount, 0) {
		return ErrInvalidAmount
	}
	if t.Date.IsZero() {
		return ErrInvalidDate
	}
	if len(strings.TrimSpace(t.Description)) == 0 {
		return ErrEmptyDescription
	}
	if len(t.Description) > 200 {
		return errors.New("description too long (max 200 characters)")
	}
	return nil
}

func (p UserProfile) Validate() error {
	if p.Income < 0 || math.IsNaN(p.Income) || math.IsInf(p.Income, 0) {
		return errors.New("invalid income")
	}
	if p.SavingsGoal < 0 || math.IsNaN(p.SavingsGoal) || math.IsInf(p.SavingsGoal, 0) {
		return errors.New("invalid savings goal")
	}
	return p.RiskAppetite.Validate()
}
