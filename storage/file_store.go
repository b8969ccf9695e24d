package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore keeps every key in one JSON document on disk and rewrites the
// whole document on each Put.
type FileStore struct {
	path   string
	values map[string][]byte
}

// NewFileStore loads path, creating its directory if needed. A missing file
// is an empty store.
func NewFileStore(path string) (*FileStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create store directory: %w", err)
		}
	}

	s := &FileStore{
		path:   path,
		values: make(map[string][]byte),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *FileStore) load() error {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read store %s: %w", s.path, err)
	}
	if len(data) == 0 {
		return nil
	}
	// []byte values are base64 strings in JSON.
	if err := json.Unmarshal(data, &s.values); err != nil {
		return fmt.Errorf("decode store %s: %w", s.path, err)
	}
	return nil
}

func (s *FileStore) save() error {
	data, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return fmt.Errorf("encode store: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write store %s: %w", s.path, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace store %s: %w", s.path, err)
	}
	return nil
}

func (s *FileStore) Get(key string) ([]byte, bool, error) {
	v, ok := s.values[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (s *FileStore) Put(key string, value []byte) error {
	s.values[key] = append([]byte(nil), value...)
	return s.save()
}

func (s *FileStore) Close() error {
	return nil
}
