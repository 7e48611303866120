// Package storage persists transactions and user profiles in SQLite. Dates
// are stored as RFC 3339 text so month bucketing on read is exact regardless
// of driver time handling.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/lokesh-122/SmartMoney/internal/core"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

type SQLiteRepository struct {
	db *sql.DB
}

// PendingSyncTransaction is a transaction row awaiting mirror to the ledger.
type PendingSyncTransaction struct {
	Transaction core.Transaction
	CreatedAt   time.Time
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// CreateTransaction inserts a transaction row, unsynced.
func (r *SQLiteRepository) CreateTransaction(ctx context.Context, tx core.Transaction) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO transactions (id, user_id, amount, category, type, date, description)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		tx.ID, tx.UserID, tx.Amount, string(tx.Category), string(tx.Type),
		tx.Date.UTC().Format(time.RFC3339), tx.Description)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}

	slog.InfoContext(ctx, "Transaction saved",
		"id", tx.ID,
		"user_id", tx.UserID,
		"type", tx.Type,
		"category", tx.Category,
		"amount", tx.Amount)
	return nil
}

// GetTransaction returns a single transaction by ID, soft-deleted rows
// included (the worker needs them to mirror deletions).
func (r *SQLiteRepository) GetTransaction(ctx context.Context, id string) (core.Transaction, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, amount, category, type, date, description
		FROM transactions WHERE id = ?`, id)
	tx, err := scanTransaction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Transaction{}, ErrNotFound
	}
	if err != nil {
		return core.Transaction{}, fmt.Errorf("get transaction: %w", err)
	}
	return tx, nil
}

// ListTransactions returns all live transactions for a user, newest first.
func (r *SQLiteRepository) ListTransactions(ctx context.Context, userID string) ([]core.Transaction, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, amount, category, type, date, description
		FROM transactions
		WHERE user_id = ? AND deleted_at IS NULL
		ORDER BY date DESC, id`, userID)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var out []core.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		out = append(out, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return out, nil
}

// SoftDeleteTransaction marks a transaction deleted and queues it for the
// mirror to pick up the deletion.
func (r *SQLiteRepository) SoftDeleteTransaction(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE transactions
		SET deleted_at = ?, synced = 0
		WHERE id = ? AND deleted_at IS NULL`,
		time.Now().UTC().Format(time.RFC3339), id)
	if err != nil {
		return fmt.Errorf("soft delete transaction: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	slog.InfoContext(ctx, "Transaction soft deleted", "id", id)
	return nil
}

// GetPendingSyncTransactions returns live rows not yet mirrored to the
// ledger. Soft-deleted rows are excluded; their removal travels only via
// delete messages.
func (r *SQLiteRepository) GetPendingSyncTransactions(ctx context.Context, limit int) ([]PendingSyncTransaction, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, amount, category, type, date, description, created_at
		FROM transactions
		WHERE synced = 0 AND sync_error = 0 AND deleted_at IS NULL
		ORDER BY created_at
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("get pending sync transactions: %w", err)
	}
	defer rows.Close()

	var out []PendingSyncTransaction
	for rows.Next() {
		var (
			tx                 core.Transaction
			category, typ      string
			dateStr, createdAt string
		)
		if err := rows.Scan(&tx.ID, &tx.UserID, &tx.Amount, &category, &typ,
			&dateStr, &tx.Description, &createdAt); err != nil {
			return nil, fmt.Errorf("scan pending transaction: %w", err)
		}
		tx.Category = core.Category(category)
		tx.Type = core.TransactionType(typ)
		if tx.Date, err = time.Parse(time.RFC3339, dateStr); err != nil {
			return nil, fmt.Errorf("parse transaction date %q: %w", dateStr, err)
		}
		created, err := time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse created_at %q: %w", createdAt, err)
		}
		out = append(out, PendingSyncTransaction{Transaction: tx, CreatedAt: created})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate pending transactions: %w", err)
	}
	return out, nil
}

// MarkSynced marks a transaction as successfully mirrored.
func (r *SQLiteRepository) MarkSynced(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx,
		`UPDATE transactions SET synced = 1, sync_error = 0 WHERE id = ?`, id); err != nil {
		return fmt.Errorf("mark transaction synced: %w", err)
	}
	slog.InfoContext(ctx, "Transaction marked as synced", "id", id)
	return nil
}

// MarkSyncError flags a transaction so repeated mirror failures stop
// blocking the pending queue.
func (r *SQLiteRepository) MarkSyncError(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx,
		`UPDATE transactions SET sync_error = 1 WHERE id = ?`, id); err != nil {
		return fmt.Errorf("mark transaction sync error: %w", err)
	}
	return nil
}

// GetProfile returns the stored profile for a user.
func (r *SQLiteRepository) GetProfile(ctx context.Context, userID string) (core.UserProfile, error) {
	var (
		p    core.UserProfile
		risk string
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT income, savings_goal, risk_appetite
		FROM user_profiles WHERE user_id = ?`, userID).
		Scan(&p.Income, &p.SavingsGoal, &risk)
	if errors.Is(err, sql.ErrNoRows) {
		return core.UserProfile{}, ErrNotFound
	}
	if err != nil {
		return core.UserProfile{}, fmt.Errorf("get profile: %w", err)
	}
	p.RiskAppetite = core.RiskLevel(risk)
	return p, nil
}

// UpsertProfile creates or replaces a user's profile.
func (r *SQLiteRepository) UpsertProfile(ctx context.Context, userID string, p core.UserProfile) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO user_profiles (user_id, income, savings_goal, risk_appetite, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE SET
			income = excluded.income,
			savings_goal = excluded.savings_goal,
			risk_appetite = excluded.risk_appetite,
			updated_at = excluded.updated_at`,
		userID, p.Income, p.SavingsGoal, string(p.RiskAppetite),
		time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}

	slog.InfoContext(ctx, "Profile saved", "user_id", userID, "risk_appetite", p.RiskAppetite)
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row rowScanner) (core.Transaction, error) {
	var (
		tx            core.Transaction
		category, typ string
		dateStr       string
	)
	if err := row.Scan(&tx.ID, &tx.UserID, &tx.Amount, &category, &typ,
		&dateStr, &tx.Description); err != nil {
		return core.Transaction{}, err
	}
	tx.Category = core.Category(category)
	tx.Type = core.TransactionType(typ)
	date, err := time.Parse(time.RFC3339, dateStr)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("parse transaction date %q: %w", dateStr, err)
	}
	tx.Date = date
	return tx, nil
}
