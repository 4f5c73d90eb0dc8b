package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage dataset documents in a directory on disk
type LocalStorage struct {
	root string
}

// NewLocalStorage open root as a document directory, creating it when missing
func NewLocalStorage(root string) (*LocalStorage, error) {
	if root == "" {
		root = "./data"
	}
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("failed to prepare document directory %s: %w", root, err)
	}
	return &LocalStorage{root: root}, nil
}

// documentPath key as a path under root. Keys that climb out of root are refused.
func (s *LocalStorage) documentPath(key string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(key))
	if key == "" || filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: document key %q", ErrInvalid, key)
	}
	return filepath.Join(s.root, clean), nil
}

// Save write the document through a temp file so readers never see half of it
func (s *LocalStorage) Save(key string, data []byte) error {
	target, err := s.documentPath(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return fmt.Errorf("failed to prepare directory for %s: %w", key, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), ".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to stage %s: %w", key, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to stage %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to stage %s: %w", key, err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("failed to publish %s: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		return fmt.Errorf("failed to publish %s: %w", key, err)
	}
	return nil
}

func (s *LocalStorage) Get(key string) ([]byte, error) {
	target, err := s.documentPath(key)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(target)
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return data, nil
}

// Exists regular files only, a directory named like the key does not count
func (s *LocalStorage) Exists(key string) bool {
	target, err := s.documentPath(key)
	if err != nil {
		return false
	}
	info, err := os.Stat(target)
	return err == nil && info.Mode().IsRegular()
}
