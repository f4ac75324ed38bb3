// Package accounts holds the durable user registry and the single active
// session pointer.
package accounts

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

const (
	usersKey   = "ss_users"
	sessionKey = "ss_session"
)

// Store reads and writes the whole user list under one key. A mutex
// serializes the read-modify-write cycles so interleaved writers cannot
// drop each other's updates.
type Store struct {
	mu sync.Mutex
	kv kv.Store
}

func NewStore(store kv.Store) *Store {
	return &Store{kv: store}
}

// users loads the stored list. An absent key yields an empty list; a
// stored value that is not a JSON array is normalized to an empty list.
func (s *Store) users(ctx context.Context) ([]core.User, error) {
	raw, err := s.kv.Get(ctx, usersKey)
	if errors.Is(err, kv.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read user list: %w", err)
	}

	var list []core.User
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		slog.WarnContext(ctx, "Stored user list is not an array, treating as empty", "error", err)
		return nil, nil
	}
	return list, nil
}

func (s *Store) setUsers(ctx context.Context, list []core.User) error {
	raw, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("encode user list: %w", err)
	}
	if err := s.kv.Set(ctx, usersKey, string(raw)); err != nil {
		return fmt.Errorf("write user list: %w", err)
	}
	return nil
}

// FindUser looks up a user by case-insensitive email.
func (s *Store) FindUser(ctx context.Context, email string) (core.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.findUser(ctx, email)
}

func (s *Store) findUser(ctx context.Context, email string) (core.User, error) {
	list, err := s.users(ctx)
	if err != nil {
		return core.User{}, err
	}

	want := core.NormalizeEmail(email)
	for _, u := range list {
		if core.NormalizeEmail(u.Email) == want {
			return u, nil
		}
	}
	return core.User{}, core.ErrUserNotFound
}

// CreateUser registers a new account. The email must be unique under
// case-insensitive comparison; name and password are not checked for
// uniqueness.
func (s *Store) CreateUser(ctx context.Context, user core.User) error {
	if err := user.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.users(ctx)
	if err != nil {
		return err
	}

	want := core.NormalizeEmail(user.Email)
	for _, u := range list {
		if core.NormalizeEmail(u.Email) == want {
			return core.ErrDuplicateAccount
		}
	}

	if err := s.setUsers(ctx, append(list, user)); err != nil {
		return err
	}

	slog.InfoContext(ctx, "User created", "email", want, "users", len(list)+1)
	return nil
}

// UpdateUser merges the given changes over the record matching email.
// The stored email is always preserved. Returns core.ErrUserNotFound when
// no record matches.
func (s *Store) UpdateUser(ctx context.Context, email string, changes core.UserChanges) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.users(ctx)
	if err != nil {
		return err
	}

	want := core.NormalizeEmail(email)
	for i, u := range list {
		if core.NormalizeEmail(u.Email) != want {
			continue
		}
		if changes.Name != "" {
			u.Name = changes.Name
		}
		if changes.Password != "" {
			u.Password = changes.Password
		}
		list[i] = u
		return s.setUsers(ctx, list)
	}

	return core.ErrUserNotFound
}

// SetLoggedIn persists email as the active session. An empty email clears
// the session entirely.
func (s *Store) SetLoggedIn(ctx context.Context, email string) error {
	if email == "" {
		if err := s.kv.Delete(ctx, sessionKey); err != nil {
			return fmt.Errorf("clear session: %w", err)
		}
		return nil
	}
	if err := s.kv.Set(ctx, sessionKey, email); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

// Session returns the email of the logged-in user, or core.ErrNoSession.
func (s *Store) Session(ctx context.Context) (string, error) {
	email, err := s.kv.Get(ctx, sessionKey)
	if errors.Is(err, kv.ErrNotFound) {
		return "", core.ErrNoSession
	}
	if err != nil {
		return "", fmt.Errorf("read session: %w", err)
	}
	if email == "" {
		return "", core.ErrNoSession
	}
	return email, nil
}

// CurrentUser resolves the session and looks up the matching record.
// Returns core.ErrNoSession without a session, core.ErrUserNotFound when
// the account behind the session no longer exists.
func (s *Store) CurrentUser(ctx context.Context) (core.User, error) {
	email, err := s.Session(ctx)
	if err != nil {
		return core.User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.findUser(ctx, email)
}

func (s *Store) SignOut(ctx context.Context) error {
	return s.SetLoggedIn(ctx, "")
}
