// Package ledger defines the outbound ports for mirroring transactions to an
// external ledger, plus adapters implementing them.
package ledger

import (
	"context"

	"github.com/lokesh-122/SmartMoney/internal/core"
)

// Ports for outbound adapters.
type (
	TransactionWriter interface {
		Append(ctx context.Context, tx core.Transaction) (rowRef string, err error)
	}

	// TransactionDeleter marks a previously mirrored transaction as deleted.
	TransactionDeleter interface {
		Delete(ctx context.Context, id string) error
	}
)
