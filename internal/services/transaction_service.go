package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/lokesh-122/SmartMoney/internal/amqp"
	"github.com/lokesh-122/SmartMoney/internal/core"
	"github.com/lokesh-122/SmartMoney/internal/storage"
)

// TransactionService orchestrates transaction writes across SQLite and AMQP.
type TransactionService struct {
	storage    *storage.SQLiteRepository
	amqpClient *amqp.Client
	onWrite    func(userID string)
}

func NewTransactionService(storage *storage.SQLiteRepository, amqpClient *amqp.Client) *TransactionService {
	return &TransactionService{
		storage:    storage,
		amqpClient: amqpClient,
	}
}

// OnWrite registers a callback invoked after every successful write for a
// user. The insights service uses it to drop stale cache entries.
func (s *TransactionService) OnWrite(fn func(userID string)) {
	s.onWrite = fn
}

// CreateTransaction assigns an ID, saves the transaction locally and
// publishes a sync message for the ledger mirror.
func (s *TransactionService) CreateTransaction(ctx context.Context, tx core.Transaction) (core.Transaction, error) {
	if tx.ID == "" {
		tx.ID = uuid.NewString()
	}
	if err := tx.Validate(); err != nil {
		return core.Transaction{}, fmt.Errorf("validate transaction: %w", err)
	}

	// Save to SQLite first (fast, reliable)
	if err := s.storage.CreateTransaction(ctx, tx); err != nil {
		return core.Transaction{}, fmt.Errorf("save transaction: %w", err)
	}

	// Publish async sync message (non-blocking)
	if err := s.publishSyncMessage(ctx, tx.ID); err != nil {
		slog.ErrorContext(ctx, "Failed to publish sync message",
			"id", tx.ID, "error", err)
		// Don't fail the request - transaction is saved locally
	}

	s.notifyWrite(tx.UserID)
	return tx, nil
}

// DeleteTransaction soft deletes a transaction locally and publishes a
// delete message for the ledger mirror.
func (s *TransactionService) DeleteTransaction(ctx context.Context, id string) error {
	tx, err := s.storage.GetTransaction(ctx, id)
	if err != nil {
		return fmt.Errorf("get transaction: %w", err)
	}

	if err := s.storage.SoftDeleteTransaction(ctx, id); err != nil {
		return fmt.Errorf("soft delete transaction: %w", err)
	}

	if err := s.publishDeleteMessage(ctx, id); err != nil {
		slog.ErrorContext(ctx, "Failed to publish delete message",
			"id", id, "error", err)
		// Don't fail the request - transaction is deleted locally
	}

	s.notifyWrite(tx.UserID)
	return nil
}

// ListTransactions returns all live transactions for a user, newest first.
func (s *TransactionService) ListTransactions(ctx context.Context, userID string) ([]core.Transaction, error) {
	return s.storage.ListTransactions(ctx, userID)
}

// SaveProfile creates or replaces a user's financial profile.
func (s *TransactionService) SaveProfile(ctx context.Context, userID string, p core.UserProfile) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("validate profile: %w", err)
	}
	if err := s.storage.UpsertProfile(ctx, userID, p); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	s.notifyWrite(userID)
	return nil
}

// GetProfile returns the stored profile for a user.
func (s *TransactionService) GetProfile(ctx context.Context, userID string) (core.UserProfile, error) {
	return s.storage.GetProfile(ctx, userID)
}

func (s *TransactionService) publishSyncMessage(ctx context.Context, id string) error {
	if s.amqpClient == nil {
		slog.WarnContext(ctx, "AMQP client not available, skipping sync message")
		return nil
	}
	return s.amqpClient.PublishTransactionSync(ctx, id)
}

func (s *TransactionService) publishDeleteMessage(ctx context.Context, id string) error {
	if s.amqpClient == nil {
		slog.WarnContext(ctx, "AMQP client not available, skipping delete message")
		return nil
	}
	return s.amqpClient.PublishTransactionDelete(ctx, id)
}

func (s *TransactionService) notifyWrite(userID string) {
	if s.onWrite != nil {
		s.onWrite(userID)
	}
}

// Close closes the AMQP connection if present.
func (s *TransactionService) Close() error {
	if s.amqpClient != nil {
		return s.amqpClient.Close()
	}
	return nil
}
