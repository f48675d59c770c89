// Package store persists small named snapshots for the client: the
// current session and the recent-analysis history. It is the browser
// localStorage analog: a same-profile key-value area with text values,
// last-write-wins, and no coordination between concurrent writers.
package store

import "context"

// Store defines the interface for snapshot storage operations.
type Store interface {
	// Load retrieves the value stored under key.
	// Returns ErrNotFound when the key is absent.
	Load(ctx context.Context, key string) ([]byte, error)

	// Save writes value under key, replacing any previous value.
	Save(ctx context.Context, key string, value []byte) error

	// Delete removes the value under key. Deleting an absent key is not
	// an error.
	Delete(ctx context.Context, key string) error

	// Close closes the store and releases any resources.
	Close() error
}
