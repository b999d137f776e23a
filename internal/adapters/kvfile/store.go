// Package kvfile is a single-blob key-value store on the local filesystem:
// each key maps to one JSON file inside a data directory.
package kvfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

type Store struct {
	dir string
}

// New ensures dir exists and returns a store rooted there.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir %q: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Read returns the stored value and whether the key exists.
func (s *Store) Read(key string) ([]byte, bool, error) {
	raw, err := os.ReadFile(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read %q: %w", key, err)
	}
	return raw, true, nil
}

// Write replaces the stored value atomically via a rename.
func (s *Store) Write(key string, value []byte) error {
	tmp, err := os.CreateTemp(s.dir, key+".*")
	if err != nil {
		return fmt.Errorf("write %q: %w", key, err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err = tmp.Write(value); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %q: %w", key, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("write %q: %w", key, err)
	}
	if err = os.Rename(tmp.Name(), s.path(key)); err != nil {
		return fmt.Errorf("write %q: %w", key, err)
	}
	return nil
}
