package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// fileStore implements Store with one file per key under a state
// directory. This is the persistence layer that lets a session survive
// process restarts, the way localStorage survives a page reload.
type fileStore struct {
	dir string
}

func newFileStore(dir string) (*fileStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}
	return &fileStore{dir: dir}, nil
}

// path maps a key to its snapshot file. Keys must be plain names, not
// paths.
func (s *fileStore) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", fmt.Errorf("%w: bad key %q", ErrInvalidConfig, key)
	}
	return filepath.Join(s.dir, key+".json"), nil
}

// Load implements Store.
func (s *fileStore) Load(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p, err := s.path(key)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(p)
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Save implements Store.
func (s *fileStore) Save(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p, err := s.path(key)
	if err != nil {
		return err
	}
	return os.WriteFile(p, value, 0o600)
}

// Delete implements Store.
func (s *fileStore) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Close implements Store.
func (s *fileStore) Close() error { return nil }

// DefaultDir returns the default state directory (~/.cybershield),
// creating it if needed. CYBERSHIELD_HOME overrides the location, which
// keeps tests away from the real home directory.
func DefaultDir() (string, error) {
	if custom := os.Getenv("CYBERSHIELD_HOME"); custom != "" {
		if err := os.MkdirAll(custom, 0o700); err != nil {
			return "", err
		}
		return custom, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine user home: %w", err)
	}
	dir := filepath.Join(home, ".cybershield")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}
	return dir, nil
}
