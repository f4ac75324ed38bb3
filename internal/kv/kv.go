// Package kv is the flat key-value substrate the stores persist into.
// It mirrors the single-namespace string store the app data was designed
// around: whole values are read and written atomically under one key.
package kv

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get for keys that were never set or were deleted.
var ErrNotFound = errors.New("key not found")

// Store is a durable string-to-string mapping. Implementations must be
// safe for concurrent use; serialization of read-modify-write cycles is
// the caller's responsibility.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error

	// Delete removes a key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	Close() error
}
