// Package storage is the persistence boundary of the API. Every repository
// reads and writes JSON blobs under namespaced string keys (for example
// "addresses:<userId>"), so the backend can be swapped between the in-memory
// store, the file store, or something heavier without touching services.
package storage

import (
	"context"
	"encoding/json"
)

//go:generate mockgen -source=storage.go -destination=../../mock/storage/storage_mock.go -package=mock
type Store interface {
	// Load returns the raw value for key. The second return reports whether
	// the key exists; a missing key is a normal outcome, not an error.
	Load(ctx context.Context, key string) ([]byte, bool, error)
	Save(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// LoadJSON unmarshals the value at key into out. Returns false when the key
// does not exist, leaving out untouched.
func LoadJSON(ctx context.Context, s Store, key string, out any) (bool, error) {
	raw, ok, err := s.Load(ctx, key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, err
	}
	return true, nil
}

// SaveJSON marshals value and writes it at key. Writes are eager: every state
// change hits the store immediately, last writer wins.
func SaveJSON(ctx context.Context, s Store, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.Save(ctx, key, raw)
}
