// Package worker mirrors locally stored transactions to the external ledger,
// driven by AMQP messages with a periodic catch-up pass for anything missed.
package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/lokesh-122/SmartMoney/internal/amqp"
	"github.com/lokesh-122/SmartMoney/internal/ledger"
	"github.com/lokesh-122/SmartMoney/internal/storage"
)

// SyncWorker handles synchronization of transactions from SQLite to the
// ledger mirror.
type SyncWorker struct {
	storage   *storage.SQLiteRepository
	writer    ledger.TransactionWriter
	deleter   ledger.TransactionDeleter
	batchSize int
}

func NewSyncWorker(storage *storage.SQLiteRepository, writer ledger.TransactionWriter, deleter ledger.TransactionDeleter, batchSize int) *SyncWorker {
	return &SyncWorker{
		storage:   storage,
		writer:    writer,
		deleter:   deleter,
		batchSize: batchSize,
	}
}

// HandleMessage dispatches a queue message to the matching handler.
func (w *SyncWorker) HandleMessage(ctx context.Context, msg *amqp.TransactionSyncMessage) error {
	switch msg.Kind {
	case amqp.KindTransactionSync:
		return w.HandleSyncMessage(ctx, msg)
	case amqp.KindTransactionDelete:
		return w.HandleDeleteMessage(ctx, msg)
	default:
		return fmt.Errorf("unknown message kind: %s", msg.Kind)
	}
}

// HandleSyncMessage mirrors a single transaction to the ledger.
func (w *SyncWorker) HandleSyncMessage(ctx context.Context, msg *amqp.TransactionSyncMessage) error {
	slog.InfoContext(ctx, "Processing sync message", "id", msg.ID)

	tx, err := w.storage.GetTransaction(ctx, msg.ID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			// Row is gone; nothing to mirror, drop the message.
			slog.WarnContext(ctx, "Transaction no longer exists, skipping sync", "id", msg.ID)
			return nil
		}
		return fmt.Errorf("get transaction from storage: %w", err)
	}

	ref, err := w.writer.Append(ctx, tx)
	if err != nil {
		if markErr := w.storage.MarkSyncError(ctx, msg.ID); markErr != nil {
			slog.ErrorContext(ctx, "Failed to mark sync error", "id", msg.ID, "error", markErr)
		}
		return fmt.Errorf("append to ledger: %w", err)
	}

	if err := w.storage.MarkSynced(ctx, msg.ID); err != nil {
		// The mirror succeeded; the flag will be fixed by the catch-up pass.
		slog.WarnContext(ctx, "Failed to mark transaction as synced", "id", msg.ID, "error", err)
	}

	slog.InfoContext(ctx, "Transaction mirrored to ledger", "id", msg.ID, "ledger_ref", ref)
	return nil
}

// HandleDeleteMessage propagates a transaction deletion to the ledger.
func (w *SyncWorker) HandleDeleteMessage(ctx context.Context, msg *amqp.TransactionSyncMessage) error {
	slog.InfoContext(ctx, "Processing delete message", "id", msg.ID)

	if w.deleter == nil {
		slog.WarnContext(ctx, "No ledger deleter configured, skipping deletion", "id", msg.ID)
		return nil
	}

	if err := w.deleter.Delete(ctx, msg.ID); err != nil {
		return fmt.Errorf("delete from ledger: %w", err)
	}

	if err := w.storage.MarkSynced(ctx, msg.ID); err != nil {
		slog.WarnContext(ctx, "Failed to mark deletion as synced", "id", msg.ID, "error", err)
	}

	slog.InfoContext(ctx, "Transaction deletion mirrored to ledger", "id", msg.ID)
	return nil
}

// ProcessPendingTransactions is the catch-up pass: it mirrors rows that were
// written while the broker was unavailable or whose messages were lost.
func (w *SyncWorker) ProcessPendingTransactions(ctx context.Context) error {
	pending, err := w.storage.GetPendingSyncTransactions(ctx, w.batchSize)
	if err != nil {
		return fmt.Errorf("get pending sync transactions: %w", err)
	}

	if len(pending) == 0 {
		return nil
	}

	slog.InfoContext(ctx, "Processing pending transactions", "count", len(pending))

	var failed int
	for _, p := range pending {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		ref, err := w.writer.Append(ctx, p.Transaction)
		if err != nil {
			failed++
			slog.ErrorContext(ctx, "Failed to mirror pending transaction",
				"id", p.Transaction.ID, "error", err)
			if markErr := w.storage.MarkSyncError(ctx, p.Transaction.ID); markErr != nil {
				slog.ErrorContext(ctx, "Failed to mark sync error",
					"id", p.Transaction.ID, "error", markErr)
			}
			continue
		}

		if err := w.storage.MarkSynced(ctx, p.Transaction.ID); err != nil {
			slog.WarnContext(ctx, "Failed to mark transaction as synced",
				"id", p.Transaction.ID, "error", err)
		}

		slog.InfoContext(ctx, "Pending transaction mirrored",
			"id", p.Transaction.ID, "ledger_ref", ref)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d pending transactions failed to sync", failed, len(pending))
	}
	return nil
}
