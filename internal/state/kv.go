package state

import "context"

// KV is the persistent key-value layer completion records live in. A
// backend only stores opaque text; all record semantics stay in Store.
type KV interface {
	// Get returns the raw value for a key and whether it exists.
	Get(ctx context.Context, key string) (string, bool, error)
	// Put overwrites the full value for a key.
	Put(ctx context.Context, key, value string) error
	// Close releases backend resources.
	Close() error
}
