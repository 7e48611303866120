package core

import (
	"math"
	"testing"
	"time"
)

func TestTransactionValidate(t *testing.T) {
	good := Transaction{
		ID:          "t1",
		UserID:      "u1",
		Amount:      42.50,
		Category:    CategoryFood,
		Type:        Expense,
		Date:        time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Description: "groceries",
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	bads := []Transaction{
		func(tx Transaction) Transaction { tx.Amount = -1; return tx }(good),
		func(tx Transaction) Transaction { tx.Amount = math.NaN(); return tx }(good),
		func(tx Transaction) Transaction { tx.Amount = math.Inf(1); return tx }(good),
		func(tx Transaction) Transaction { tx.Type = "transfer"; return tx }(good),
		func(tx Transaction) Transaction { tx.Date = time.Time{}; return tx }(good),
		func(tx Transaction) Transaction { tx.Description = "  "; return tx }(good),
	}
	for i, tx := range bads {
		if err := tx.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestNormalizeCategory(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Category
	}{
		{name: "known expense", raw: "food", want: CategoryFood},
		{name: "known income", raw: "salary", want: CategorySalary},
		{name: "mixed case with spaces", raw: "  Housing ", want: CategoryHousing},
		{name: "unknown", raw: "lottery", want: CategoryOther},
		{name: "empty", raw: "", want: CategoryOther},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeCategory(tt.raw); got != tt.want {
				t.Errorf("NormalizeCategory(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestCategoryValidFor(t *testing.T) {
	tests := []struct {
		name string
		c    Category
		typ  TransactionType
		want bool
	}{
		{name: "expense category for expense", c: CategoryHousing, typ: Expense, want: true},
		{name: "income category for income", c: CategorySalary, typ: Income, want: true},
		{name: "income category for expense", c: CategorySalary, typ: Expense, want: false},
		{name: "expense category for income", c: CategoryFood, typ: Income, want: false},
		{name: "other valid for both", c: CategoryOther, typ: Income, want: true},
		{name: "unknown type", c: CategoryFood, typ: "transfer", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.ValidFor(tt.typ); got != tt.want {
				t.Errorf("%q.ValidFor(%q) = %v, want %v", tt.c, tt.typ, got, tt.want)
			}
		})
	}
}

func TestParseRiskLevel(t *testing.T) {
	if r, err := ParseRiskLevel(" Medium "); err != nil || r != RiskMedium {
		t.Fatalf("ParseRiskLevel(Medium) = %q, %v; want medium, nil", r, err)
	}
	if _, err := ParseRiskLevel("reckless"); err == nil {
		t.Fatalf("expected error for unknown risk level")
	}
}
