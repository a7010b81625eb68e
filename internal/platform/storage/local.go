// Package storage provides the file store behind image uploads.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// FileStore persists raw file bytes under opaque names.
type FileStore interface {
	// Save writes content under name and returns the number of bytes written.
	Save(ctx context.Context, name string, content io.Reader) (int64, error)

	// Remove deletes the named file. Removing a missing file is not an error.
	Remove(ctx context.Context, name string) error
}

// LocalFileStore stores files in a single directory on local disk.
type LocalFileStore struct {
	dir string
}

// NewLocalFileStore creates the directory if needed and returns the store.
func NewLocalFileStore(dir string) (*LocalFileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory %s: %w", dir, err)
	}
	return &LocalFileStore{dir: dir}, nil
}

func (s *LocalFileStore) Save(ctx context.Context, name string, content io.Reader) (int64, error) {
	if err := validName(name); err != nil {
		return 0, err
	}

	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return 0, fmt.Errorf("failed to create file %s: %w", name, err)
	}

	written, err := io.Copy(f, content)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(filepath.Join(s.dir, name))
		return 0, fmt.Errorf("failed to write file %s: %w", name, err)
	}
	return written, nil
}

func (s *LocalFileStore) Remove(ctx context.Context, name string) error {
	if err := validName(name); err != nil {
		return err
	}
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove file %s: %w", name, err)
	}
	return nil
}

func validName(name string) error {
	if name == "" || strings.ContainsAny(name, "/\\") || name != filepath.Base(name) {
		return fmt.Errorf("invalid file name %q", name)
	}
	return nil
}
