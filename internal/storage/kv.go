package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Load when the key has never been saved or has
// been removed.
var ErrNotFound = errors.New("storage: key not found")

// KV is the durable key-value port the cart relies on. Remove is distinct
// from saving an empty value: after checkout the cart key must be gone, not
// merely empty.
type KV interface {
	Save(ctx context.Context, key string, value []byte) error
	Load(ctx context.Context, key string) ([]byte, error)
	Remove(ctx context.Context, key string) error
}
