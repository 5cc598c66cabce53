// internal/infrastructure/storage/storage.go
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Load when no value exists for the key
var ErrNotFound = errors.New("storage: key not found")

// Store is the persistence port for session collections. Values are
// JSON-encoded under string keys. Implementations must treat Delete of a
// missing key as a no-op.
type Store interface {
	Load(ctx context.Context, key string, dest interface{}) error
	Save(ctx context.Context, key string, value interface{}) error
	Delete(ctx context.Context, key string) error
}
