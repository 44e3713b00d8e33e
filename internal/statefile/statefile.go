package statefile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Store persists small JSON state blobs, one file per key. Implementations
// must treat missing or unreadable blobs as absent state rather than errors
// so engines can fall back to defaults.
type Store interface {
	// Load unmarshals the blob for key into dest. The bool reports whether a
	// usable blob existed. A corrupt blob is reported as absent.
	Load(key string, dest any) (bool, error)
	// Save marshals v and overwrites the blob for key wholesale.
	Save(key string, v any) error
	// Clear removes the blob for key. Clearing an absent key is not an error.
	Clear(key string) error
}

// DirStore keeps one <key>.json file per state object under a directory.
type DirStore struct {
	dir string
}

// NewDirStore returns a DirStore rooted at dir, creating it if needed.
func NewDirStore(dir string) (*DirStore, error) {
	trimmed := strings.TrimSpace(dir)
	if trimmed == "" {
		return nil, fmt.Errorf("state dir is empty")
	}
	if err := os.MkdirAll(trimmed, 0o755); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}
	return &DirStore{dir: trimmed}, nil
}

// Load reads and unmarshals the blob for key. Missing files and malformed
// JSON both report absent state; only unexpected I/O failures return an error.
func (s *DirStore) Load(key string, dest any) (bool, error) {
	if s == nil {
		return false, fmt.Errorf("store is nil")
	}
	path, err := s.path(key)
	if err != nil {
		return false, err
	}
	bytes, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("read state %q: %w", key, err)
	}
	if err := json.Unmarshal(bytes, dest); err != nil {
		// Corrupt blob. Treat as no prior state.
		return false, nil
	}
	return true, nil
}

// Save overwrites the blob for key with the JSON encoding of v.
func (s *DirStore) Save(key string, v any) error {
	if s == nil {
		return fmt.Errorf("store is nil")
	}
	path, err := s.path(key)
	if err != nil {
		return err
	}
	bytes, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal state %q: %w", key, err)
	}
	if err := os.WriteFile(path, bytes, 0o644); err != nil {
		return fmt.Errorf("write state %q: %w", key, err)
	}
	return nil
}

// Clear removes the blob for key.
func (s *DirStore) Clear(key string) error {
	if s == nil {
		return fmt.Errorf("store is nil")
	}
	path, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("clear state %q: %w", key, err)
	}
	return nil
}

func (s *DirStore) path(key string) (string, error) {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return "", fmt.Errorf("state key is empty")
	}
	return filepath.Join(s.dir, trimmed+".json"), nil
}

// MemStore is an in-memory Store used by tests and as the degraded mode when
// the data directory is unavailable.
type MemStore struct {
	blobs map[string][]byte
}

// NewMemStore returns an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{blobs: make(map[string][]byte)}
}

// Load unmarshals the stored blob for key into dest.
func (s *MemStore) Load(key string, dest any) (bool, error) {
	bytes, ok := s.blobs[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(bytes, dest); err != nil {
		return false, nil
	}
	return true, nil
}

// Save stores the JSON encoding of v under key.
func (s *MemStore) Save(key string, v any) error {
	bytes, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal state %q: %w", key, err)
	}
	s.blobs[key] = bytes
	return nil
}

// Clear removes the blob for key.
func (s *MemStore) Clear(key string) error {
	delete(s.blobs, key)
	return nil
}

var (
	_ Store = (*DirStore)(nil)
	_ Store = (*MemStore)(nil)
)
