package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

type FileStore interface {
	EnsureDir(ctx context.Context, dir string) error
	WriteFile(ctx context.Context, path string, r io.Reader) error
	Remove(ctx context.Context, path string) error
}

// WriteError is returned for any failed filesystem operation.
type WriteError struct {
	Op   string
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("storage %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// LocalFileStore resolves relative paths against Root.
type LocalFileStore struct {
	Root string
}

func NewLocalFileStore(root string) *LocalFileStore {
	return &LocalFileStore{Root: root}
}

func (s *LocalFileStore) resolve(p string) string {
	if filepath.IsAbs(p) || s.Root == "" {
		return filepath.Clean(p)
	}
	return filepath.Join(s.Root, p)
}

func (s *LocalFileStore) EnsureDir(ctx context.Context, dir string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	full := s.resolve(dir)
	// MkdirAll is a no-op for an existing directory, so concurrent callers don't conflict.
	if err := os.MkdirAll(full, 0o755); err != nil {
		return &WriteError{Op: "mkdir", Path: full, Err: err}
	}
	return nil
}

func (s *LocalFileStore) WriteFile(ctx context.Context, path string, r io.Reader) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}
	full := s.resolve(path)

	f, err := os.OpenFile(full, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return &WriteError{Op: "open", Path: full, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &WriteError{Op: "close", Path: full, Err: cerr}
		}
	}()

	if _, err := io.Copy(f, r); err != nil {
		return &WriteError{Op: "write", Path: full, Err: err}
	}
	if err := f.Sync(); err != nil {
		return &WriteError{Op: "sync", Path: full, Err: err}
	}
	return nil
}

// Remove deletes a file; a file that is already gone is not an error.
func (s *LocalFileStore) Remove(ctx context.Context, path string) error {
	full := s.resolve(path)
	if err := os.Remove(full); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return &WriteError{Op: "remove", Path: full, Err: err}
	}
	return nil
}
