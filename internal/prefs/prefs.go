// Package prefs folds the profile screen's scattered preference flags
// into one entity with a single accessor.
package prefs

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"smartspend/internal/core"
	"smartspend/internal/kv"
)

// Keys match the flags the profile screen historically wrote directly.
const (
	currencyKey      = "pref_currency"
	weekStartKey     = "pref_weekstart"
	confirmDeleteKey = "pref_confirm_delete"
)

type Store struct {
	mu sync.Mutex
	kv kv.Store
}

func NewStore(store kv.Store) *Store {
	return &Store{kv: store}
}

// Load reads the three flags. Absent or unrecognized values fall back to
// the defaults, the same way the screen ignored anything it did not expect.
func (s *Store) Load(ctx context.Context) (core.Preferences, error) {
	p := core.DefaultPreferences()

	currency, err := s.get(ctx, currencyKey)
	if err != nil {
		return p, err
	}
	switch currency {
	case core.CurrencyCAD, core.CurrencyUSD, core.CurrencyEUR:
		p.Currency = currency
	}

	weekStart, err := s.get(ctx, weekStartKey)
	if err != nil {
		return p, err
	}
	switch weekStart {
	case core.WeekStartMonday, core.WeekStartSunday:
		p.WeekStart = weekStart
	}

	confirm, err := s.get(ctx, confirmDeleteKey)
	if err != nil {
		return p, err
	}
	switch confirm {
	case "true", "false":
		p.ConfirmDelete = confirm == "true"
	}

	return p, nil
}

// Save validates and writes all three flags. The keys are independent;
// there is no atomicity across them.
func (s *Store) Save(ctx context.Context, p core.Preferences) error {
	if err := p.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.kv.Set(ctx, currencyKey, p.Currency); err != nil {
		return fmt.Errorf("write currency: %w", err)
	}
	if err := s.kv.Set(ctx, weekStartKey, p.WeekStart); err != nil {
		return fmt.Errorf("write week start: %w", err)
	}
	if err := s.kv.Set(ctx, confirmDeleteKey, strconv.FormatBool(p.ConfirmDelete)); err != nil {
		return fmt.Errorf("write confirm delete: %w", err)
	}
	return nil
}

func (s *Store) get(ctx context.Context, key string) (string, error) {
	value, err := s.kv.Get(ctx, key)
	if errors.Is(err, kv.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", key, err)
	}
	return value, nil
}
