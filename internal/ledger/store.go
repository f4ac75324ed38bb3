// Package ledger holds per-user ordered transaction lists, most recent
// first. The owner is an explicit parameter resolved once by the caller,
// so one operation never observes two different sessions.
package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"smartspend/internal/core"
	"smartspend/internal/kv"
)

// AnonymousOwner scopes writes made without a logged-in user. Kept for
// compatibility with data written before authentication was required.
const AnonymousOwner = "anon"

const keyPrefix = "ss_transactions_"

// Store rewrites a whole per-owner list on every save. Per-owner locks
// serialize the read-modify-write cycle.
type Store struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
	kv    kv.Store
}

func NewStore(store kv.Store) *Store {
	return &Store{
		locks: make(map[string]*sync.Mutex),
		kv:    store,
	}
}

// Key returns the storage key scoping owner's transaction list.
func Key(owner string) string {
	if owner == "" {
		owner = AnonymousOwner
	}
	return keyPrefix + owner
}

func (s *Store) ownerLock(owner string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.locks[owner]
	if !ok {
		l = &sync.Mutex{}
		s.locks[owner] = l
	}
	return l
}

// Transactions returns owner's list, most recent first. An absent key or
// malformed stored value yields an empty list, never an error.
func (s *Store) Transactions(ctx context.Context, owner string) ([]core.Transaction, error) {
	raw, err := s.kv.Get(ctx, Key(owner))
	if errors.Is(err, kv.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read transactions: %w", err)
	}

	var list []core.Transaction
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		slog.WarnContext(ctx, "Stored transaction list is malformed, treating as empty",
			"owner", owner, "error", err)
		return nil, nil
	}
	return list, nil
}

// Save validates tx and prepends it to owner's list. The list keeps
// reverse-chronological insertion order; it is not re-sorted by date.
func (s *Store) Save(ctx context.Context, owner string, tx core.Transaction) error {
	if err := tx.Validate(); err != nil {
		return err
	}

	lock := s.ownerLock(owner)
	lock.Lock()
	defer lock.Unlock()

	list, err := s.Transactions(ctx, owner)
	if err != nil {
		return err
	}

	list = append([]core.Transaction{tx}, list...)

	raw, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("encode transactions: %w", err)
	}
	if err := s.kv.Set(ctx, Key(owner), string(raw)); err != nil {
		return fmt.Errorf("write transactions: %w", err)
	}

	slog.InfoContext(ctx, "Transaction saved",
		"owner", owner,
		"id", tx.ID,
		"type", tx.Type,
		"amount", tx.Amount,
		"category", tx.Category)
	return nil
}

// Clear removes owner's stored list entirely.
func (s *Store) Clear(ctx context.Context, owner string) error {
	lock := s.ownerLock(owner)
	lock.Lock()
	defer lock.Unlock()

	if err := s.kv.Delete(ctx, Key(owner)); err != nil {
		return fmt.Errorf("clear transactions: %w", err)
	}
	return nil
}
