package services

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/lokesh-122/SmartMoney/internal/core"
	"github.com/lokesh-122/SmartMoney/internal/storage"
)

func newTestTransactionService(t *testing.T) *TransactionService {
	t.Helper()
	repo, err := storage.NewSQLiteRepository(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("NewSQLiteRepository() error = %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	// nil AMQP client: publishing is skipped, writes stay local.
	return NewTransactionService(repo, nil)
}

func draftTransaction() core.Transaction {
	return core.Transaction{
		UserID:      "u1",
		Amount:      25,
		Category:    core.CategoryFood,
		Type:        core.Expense,
		Date:        time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		Description: "lunch",
	}
}

func TestCreateTransactionAssignsID(t *testing.T) {
	svc := newTestTransactionService(t)
	ctx := context.Background()

	created, err := svc.CreateTransaction(ctx, draftTransaction())
	if err != nil {
		t.Fatalf("CreateTransaction() error = %v", err)
	}
	if created.ID == "" {
		t.Fatal("CreateTransaction() should assign an ID")
	}

	txs, err := svc.ListTransactions(ctx, "u1")
	if err != nil {
		t.Fatalf("ListTransactions() error = %v", err)
	}
	if len(txs) != 1 || txs[0].ID != created.ID {
		t.Errorf("stored transactions = %+v, want the created one", txs)
	}
}

func TestCreateTransactionRejectsInvalid(t *testing.T) {
	svc := newTestTransactionService(t)

	tx := draftTransaction()
	tx.Description = ""
	if _, err := svc.CreateTransaction(context.Background(), tx); !errors.Is(err, core.ErrEmptyDescription) {
		t.Errorf("error = %v, want ErrEmptyDescription", err)
	}
}

func TestDeleteTransaction(t *testing.T) {
	svc := newTestTransactionService(t)
	ctx := context.Background()

	created, err := svc.CreateTransaction(ctx, draftTransaction())
	if err != nil {
		t.Fatalf("CreateTransaction() error = %v", err)
	}

	if err := svc.DeleteTransaction(ctx, created.ID); err != nil {
		t.Fatalf("DeleteTransaction() error = %v", err)
	}

	txs, err := svc.ListTransactions(ctx, "u1")
	if err != nil {
		t.Fatalf("ListTransactions() error = %v", err)
	}
	if len(txs) != 0 {
		t.Errorf("transactions after delete = %+v, want none", txs)
	}

	if err := svc.DeleteTransaction(ctx, "missing"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("delete missing error = %v, want ErrNotFound", err)
	}
}

func TestWriteCallbackFires(t *testing.T) {
	svc := newTestTransactionService(t)
	ctx := context.Background()

	var invalidated []string
	svc.OnWrite(func(userID string) { invalidated = append(invalidated, userID) })

	created, err := svc.CreateTransaction(ctx, draftTransaction())
	if err != nil {
		t.Fatalf("CreateTransaction() error = %v", err)
	}
	if err := svc.DeleteTransaction(ctx, created.ID); err != nil {
		t.Fatalf("DeleteTransaction() error = %v", err)
	}
	if err := svc.SaveProfile(ctx, "u1", core.UserProfile{Income: 1000, RiskAppetite: core.RiskLow}); err != nil {
		t.Fatalf("SaveProfile() error = %v", err)
	}

	if len(invalidated) != 3 {
		t.Fatalf("callback fired %d times, want 3", len(invalidated))
	}
	for i, uid := range invalidated {
		if uid != "u1" {
			t.Errorf("invalidated[%d] = %q, want u1", i, uid)
		}
	}
}

func TestSaveAndGetProfile(t *testing.T) {
	svc := newTestTransactionService(t)
	ctx := context.Background()

	want := core.UserProfile{Income: 4500, SavingsGoal: 800, RiskAppetite: core.RiskMedium}
	if err := svc.SaveProfile(ctx, "u1", want); err != nil {
		t.Fatalf("SaveProfile() error = %v", err)
	}

	got, err := svc.GetProfile(ctx, "u1")
	if err != nil {
		t.Fatalf("GetProfile() error = %v", err)
	}
	if got != want {
		t.Errorf("profile = %+v, want %+v", got, want)
	}

	bad := want
	bad.RiskAppetite = "reckless"
	if err := svc.SaveProfile(ctx, "u1", bad); !errors.Is(err, core.ErrInvalidRisk) {
		t.Errorf("invalid risk error = %v, want ErrInvalidRisk", err)
	}
}
