// Package storagetest provides storage doubles for handler tests.
package storagetest

import (
	"context"
	"io"
	"sync"

	"github.com/spf13/afero"

	"github.com/xblinx/attachments/internal/storage"
)

// Spy wraps a Storage and counts every call made through it.
type Spy struct {
	storage.Storage

	mu    sync.Mutex
	calls map[string]int
	// Err, when set, is returned by every call instead of delegating.
	Err error
}

// NewSpy returns a Spy over an in-memory filesystem store.
func NewSpy() *Spy {
	return &Spy{
		Storage: storage.NewFSStorage(afero.NewMemMapFs(), "/bucket"),
		calls:   make(map[string]int),
	}
}

func (s *Spy) record(op string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls[op]++
	return s.Err
}

// Calls returns how many times op was invoked.
func (s *Spy) Calls(op string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[op]
}

// Total returns the number of calls across every operation.
func (s *Spy) Total() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, c := range s.calls {
		n += c
	}
	return n
}

func (s *Spy) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (*storage.Object, error) {
	if err := s.record("Put"); err != nil {
		return nil, err
	}
	return s.Storage.Put(ctx, key, r, size, contentType)
}

func (s *Spy) Get(ctx context.Context, key string) (io.ReadCloser, *storage.Object, error) {
	if err := s.record("Get"); err != nil {
		return nil, nil, err
	}
	return s.Storage.Get(ctx, key)
}

func (s *Spy) List(ctx context.Context, prefix string) ([]storage.Object, error) {
	if err := s.record("List"); err != nil {
		return nil, err
	}
	return s.Storage.List(ctx, prefix)
}

func (s *Spy) Delete(ctx context.Context, key string) error {
	if err := s.record("Delete"); err != nil {
		return err
	}
	return s.Storage.Delete(ctx, key)
}

func (s *Spy) DeleteMany(ctx context.Context, keys []string) error {
	if err := s.record("DeleteMany"); err != nil {
		return err
	}
	return s.Storage.DeleteMany(ctx, keys)
}
