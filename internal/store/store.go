// Package store defines the key-value contract the item layer persists through.
package store

import "context"

// KV is an embedded ordered key-value store holding one encoded record per
// item, keyed by the item id. Implementations must be safe for concurrent
// use; each Put and Delete is durable before it returns.
type KV interface {
	// Get returns the value stored under key, or model.ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put stores value under key, overwriting any previous value.
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes key. It returns model.ErrNotFound when the key
	// did not exist, so callers can distinguish the two outcomes.
	Delete(ctx context.Context, key string) error

	// Scan calls fn for every stored pair in store-native order. The
	// order is not part of the contract. A non-nil error from fn stops
	// the scan and is returned as-is.
	Scan(ctx context.Context, fn func(key string, value []byte) error) error

	// Ping verifies the store is reachable.
	Ping(ctx context.Context) error

	// Close releases the underlying handle.
	Close() error
}
