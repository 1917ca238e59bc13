package storage

import (
	"context"
	"encoding/base32"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// FileStore persists one JSON file per key under dir. Keys contain characters
// that are not filesystem-safe (":" namespacing), so each key is encoded to a
// flat file name.
type FileStore struct {
	mu  sync.Mutex
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

var fileEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

func (f *FileStore) path(key string) string {
	name := strings.ToLower(fileEncoding.EncodeToString([]byte(key)))
	return filepath.Join(f.dir, name+".json")
}

func (f *FileStore) Load(_ context.Context, key string) ([]byte, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	raw, err := os.ReadFile(f.path(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return raw, true, nil
}

func (f *FileStore) Save(_ context.Context, key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	// Write-then-rename so a crash mid-write never leaves a torn value.
	tmp := f.path(key) + ".tmp"
	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, f.path(key))
}

func (f *FileStore) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	err := os.Remove(f.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

var _ Store = (*FileStore)(nil)
