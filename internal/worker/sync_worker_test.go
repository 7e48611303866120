package worker

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/lokesh-122/SmartMoney/internal/amqp"
	"github.com/lokesh-122/SmartMoney/internal/core"
	ledgermem "github.com/lokesh-122/SmartMoney/internal/ledger/memory"
	"github.com/lokesh-122/SmartMoney/internal/storage"
)

func newTestRepository(t *testing.T) *storage.SQLiteRepository {
	t.Helper()
	repo, err := storage.NewSQLiteRepository(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("NewSQLiteRepository() error = %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func seedTransaction(t *testing.T, repo *storage.SQLiteRepository, id string) core.Transaction {
	t.Helper()
	tx := core.Transaction{
		ID:          id,
		UserID:      "user-1",
		Amount:      120,
		Category:    core.CategoryFood,
		Type:        core.Expense,
		Date:        time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		Description: "groceries",
	}
	if err := repo.CreateTransaction(context.Background(), tx); err != nil {
		t.Fatalf("CreateTransaction() error = %v", err)
	}
	return tx
}

func TestHandleSyncMessage(t *testing.T) {
	repo := newTestRepository(t)
	store := ledgermem.New()
	w := NewSyncWorker(repo, store, store, 10)
	ctx := context.Background()

	seedTransaction(t, repo, "tx-1")

	if err := w.HandleMessage(ctx, amqp.NewTransactionSyncMessage("tx-1")); err != nil {
		t.Fatalf("HandleMessage() error = %v", err)
	}

	entries := store.Entries()
	if len(entries) != 1 || entries[0].ID != "tx-1" {
		t.Fatalf("ledger entries = %+v, want single tx-1", entries)
	}

	pending, err := repo.GetPendingSyncTransactions(ctx, 10)
	if err != nil {
		t.Fatalf("GetPendingSyncTransactions() error = %v", err)
	}
	if len(pending) != 0 {
		t.Errorf("pending after sync = %d, want 0", len(pending))
	}
}

func TestHandleSyncMessageMissingTransaction(t *testing.T) {
	repo := newTestRepository(t)
	store := ledgermem.New()
	w := NewSyncWorker(repo, store, store, 10)

	// A message for a row that no longer exists is dropped, not requeued.
	if err := w.HandleSyncMessage(context.Background(), amqp.NewTransactionSyncMessage("gone")); err != nil {
		t.Fatalf("HandleSyncMessage() error = %v", err)
	}
	if len(store.Entries()) != 0 {
		t.Error("nothing should be mirrored for a missing transaction")
	}
}

func TestHandleDeleteMessage(t *testing.T) {
	repo := newTestRepository(t)
	store := ledgermem.New()
	w := NewSyncWorker(repo, store, store, 10)
	ctx := context.Background()

	seedTransaction(t, repo, "tx-1")
	if err := w.HandleSyncMessage(ctx, amqp.NewTransactionSyncMessage("tx-1")); err != nil {
		t.Fatalf("HandleSyncMessage() error = %v", err)
	}
	if err := repo.SoftDeleteTransaction(ctx, "tx-1"); err != nil {
		t.Fatalf("SoftDeleteTransaction() error = %v", err)
	}

	if err := w.HandleMessage(ctx, amqp.NewTransactionDeleteMessage("tx-1")); err != nil {
		t.Fatalf("HandleMessage() error = %v", err)
	}

	if entries := store.Entries(); len(entries) != 0 {
		t.Errorf("ledger entries after delete = %+v, want none", entries)
	}
}

func TestHandleMessageUnknownKind(t *testing.T) {
	repo := newTestRepository(t)
	store := ledgermem.New()
	w := NewSyncWorker(repo, store, store, 10)

	msg := &amqp.TransactionSyncMessage{Kind: "bogus", ID: "tx-1"}
	if err := w.HandleMessage(context.Background(), msg); err == nil {
		t.Error("HandleMessage() should fail for unknown kind")
	}
}

func TestProcessPendingTransactions(t *testing.T) {
	repo := newTestRepository(t)
	store := ledgermem.New()
	w := NewSyncWorker(repo, store, store, 10)
	ctx := context.Background()

	seedTransaction(t, repo, "tx-1")
	seedTransaction(t, repo, "tx-2")

	if err := w.ProcessPendingTransactions(ctx); err != nil {
		t.Fatalf("ProcessPendingTransactions() error = %v", err)
	}

	if entries := store.Entries(); len(entries) != 2 {
		t.Fatalf("ledger entries = %d, want 2", len(entries))
	}

	pending, err := repo.GetPendingSyncTransactions(ctx, 10)
	if err != nil {
		t.Fatalf("GetPendingSyncTransactions() error = %v", err)
	}
	if len(pending) != 0 {
		t.Errorf("pending after catch-up = %d, want 0", len(pending))
	}

	// Second pass is a no-op.
	if err := w.ProcessPendingTransactions(ctx); err != nil {
		t.Fatalf("ProcessPendingTransactions() second pass error = %v", err)
	}
	if entries := store.Entries(); len(entries) != 2 {
		t.Errorf("ledger entries after second pass = %d, want 2", len(entries))
	}
}

func TestProcessPendingSkipsSoftDeleted(t *testing.T) {
	repo := newTestRepository(t)
	store := ledgermem.New()
	w := NewSyncWorker(repo, store, store, 10)
	ctx := context.Background()

	seedTransaction(t, repo, "tx-1")
	if err := repo.SoftDeleteTransaction(ctx, "tx-1"); err != nil {
		t.Fatalf("SoftDeleteTransaction() error = %v", err)
	}

	if err := w.ProcessPendingTransactions(ctx); err != nil {
		t.Fatalf("ProcessPendingTransactions() error = %v", err)
	}
	if entries := store.Entries(); len(entries) != 0 {
		t.Errorf("soft-deleted row should not be mirrored, got %+v", entries)
	}
}
