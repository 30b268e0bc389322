package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// FSStorage implements Storage on top of an afero filesystem. Keys map to
// paths below root; keys with a ".." segment are rejected as ErrNotFound. It
// backs local development (STORAGE_DRIVER=fs) and tests (afero.NewMemMapFs).
type FSStorage struct {
	fs   afero.Fs
	root string
}

// NewFSStorage creates a filesystem storage rooted at root.
func NewFSStorage(fsys afero.Fs, root string) *FSStorage {
	return &FSStorage{fs: fsys, root: filepath.Clean(root)}
}

func (s *FSStorage) path(key string) (string, error) {
	for _, seg := range strings.FieldsFunc(key, isSeparator) {
		if seg == ".." {
			return "", fmt.Errorf("key %q escapes storage root: %w", key, ErrNotFound)
		}
	}
	return filepath.Join(s.root, filepath.FromSlash(key)), nil
}

func isSeparator(r rune) bool {
	return r == '/' || r == '\\'
}

// Put writes reader to the file for key, creating parent directories.
func (s *FSStorage) Put(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (*Object, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p, err := s.path(key)
	if err != nil {
		return nil, err
	}
	if err := s.fs.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return nil, fmt.Errorf("create directory for %q: %w", key, err)
	}

	f, err := s.fs.Create(p)
	if err != nil {
		return nil, fmt.Errorf("create file %q: %w", key, err)
	}
	written, err := io.Copy(f, reader)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = s.fs.Remove(p)
		return nil, fmt.Errorf("write file %q: %w", key, err)
	}

	info, err := s.fs.Stat(p)
	if err != nil {
		return nil, fmt.Errorf("stat file %q: %w", key, err)
	}
	return &Object{
		Key:          key,
		Size:         written,
		LastModified: info.ModTime(),
		ContentType:  contentType,
	}, nil
}

// Get opens the file for key.
func (s *FSStorage) Get(ctx context.Context, key string) (io.ReadCloser, *Object, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	p, err := s.path(key)
	if err != nil {
		return nil, nil, err
	}
	f, err := s.fs.Open(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil, fmt.Errorf("open file %q: %w", key, ErrNotFound)
		}
		return nil, nil, fmt.Errorf("open file %q: %w", key, err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("stat file %q: %w", key, err)
	}
	if info.IsDir() {
		f.Close()
		return nil, nil, fmt.Errorf("open file %q: %w", key, ErrNotFound)
	}
	return f, &Object{Key: key, Size: info.Size(), LastModified: info.ModTime()}, nil
}

// List walks the directory tree below prefix.
func (s *FSStorage) List(ctx context.Context, prefix string) ([]Object, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	dir, err := s.path(strings.TrimSuffix(prefix, "/"))
	if err != nil {
		return nil, err
	}
	if _, err := s.fs.Stat(dir); errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}

	var objects []Object
	err = afero.Walk(s.fs, dir, func(p string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(s.root, p)
		if err != nil {
			return err
		}
		key := filepath.ToSlash(rel)
		if !strings.HasPrefix(key, prefix) {
			return nil
		}
		objects = append(objects, Object{Key: key, Size: info.Size(), LastModified: info.ModTime()})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list %q: %w", prefix, err)
	}
	return objects, nil
}

// Delete removes the file for key.
func (s *FSStorage) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p, err := s.path(key)
	if err != nil {
		return err
	}
	if err := s.fs.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove file %q: %w", key, err)
	}
	return nil
}

// DeleteMany removes every key, collecting failures.
func (s *FSStorage) DeleteMany(ctx context.Context, keys []string) error {
	var errs []error
	for _, k := range keys {
		if err := s.Delete(ctx, k); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
