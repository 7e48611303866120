// Package memory is an in-memory ledger adapter used in tests and local runs
// without Google credentials.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/lokesh-122/SmartMoney/internal/core"
)

type entry struct {
	tx      core.Transaction
	deleted bool
}

type Store struct {
	mu    sync.Mutex
	items []entry
}

func New() *Store {
	return &Store{}
}

// Append stores the transaction and returns a synthetic row reference.
func (s *Store) Append(_ context.Context, tx core.Transaction) (string, error) {
	if err := tx.Validate(); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, entry{tx: tx})
	return fmt.Sprintf("mem:%d", len(s.items)), nil
}

// Delete marks the stored transaction as deleted.
func (s *Store) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].tx.ID == id {
			s.items[i].deleted = true
			return nil
		}
	}
	return fmt.Errorf("transaction %s not found in ledger", id)
}

// Entries returns a snapshot of live transactions, oldest first.
func (s *Store) Entries() []core.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Transaction, 0, len(s.items))
	for _, e := range s.items {
		if !e.deleted {
			out = append(out, e.tx)
		}
	}
	return out
}
