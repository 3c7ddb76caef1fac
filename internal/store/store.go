// Package store provides the key-value persistence interface and its SQLite
// and in-memory implementations.
package store

import (
	"context"
	"errors"
)

// ErrClosed is returned by operations on a closed store.
var ErrClosed = errors.New("store closed")

// KV is the per-key read/write surface. Values are JSON documents.
type KV interface {
	// Get returns the raw value stored under key and whether it exists.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set replaces the value stored under key.
	Set(ctx context.Context, key string, value []byte) error

	// Append adds elem to the JSON array stored under key. A missing or
	// non-array value is treated as an empty array.
	Append(ctx context.Context, key string, elem []byte) error

	// Keys lists every stored key in ascending order.
	Keys(ctx context.Context) ([]string, error)
}

// Store defines the durable storage interface.
type Store interface {
	KV

	// Update runs fn against a transactional view. Writes made through the
	// view become visible atomically when fn returns nil and are discarded
	// otherwise.
	Update(ctx context.Context, fn func(kv KV) error) error

	// Reset removes every key.
	Reset(ctx context.Context) error

	// Close closes the store.
	Close() error
}
