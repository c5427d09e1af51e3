// Package metadata is the local key/value store of the client. It backs the
// persisted credentials (access token and user snapshot).
package metadata

import (
	"context"
)

// Repository stores opaque byte values under string keys.
// Get returns (nil, nil) when the key is absent.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
}
