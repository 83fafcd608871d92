package storage

import "context"

// KV is the flat key-value store the application persists into. It is the
// local analogue of browser localStorage: string keys, opaque string-ish
// values, no transactions spanning keys. Writes are last-writer-wins at the
// granularity of a single key.
type KV interface {
	// Get returns the value stored under key.
	// Returns ErrKeyNotFound if the key does not exist.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put stores value under key, overwriting any previous value.
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Keys returns all stored keys, in no particular order.
	Keys(ctx context.Context) ([]string, error)

	// Close releases the underlying store.
	Close() error
}
