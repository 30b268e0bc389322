// Package storage defines the interface for object storage operations.
// Swap implementations by changing the concrete type injected at startup:
// MinioStorage talks to any S3-compatible provider (MinIO, AWS S3), FSStorage
// keeps objects on a local or in-memory filesystem.
package storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"
)

// ErrNotFound is returned when no object exists under the requested key.
var ErrNotFound = errors.New("object not found")

// Object is the metadata the backend reports for a stored object.
type Object struct {
	Key          string
	Size         int64
	LastModified time.Time
	ContentType  string
}

// Name returns the last path segment of the object key.
func (o Object) Name() string {
	return o.Key[strings.LastIndex(o.Key, "/")+1:]
}

// Storage is the interface for storing, fetching, listing and removing objects.
type Storage interface {
	// Put streams data to the store under key. size may be -1 when unknown.
	Put(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (*Object, error)
	// Get opens the object at key. The caller closes the returned reader.
	Get(ctx context.Context, key string) (io.ReadCloser, *Object, error)
	// List returns every object whose key starts with prefix.
	List(ctx context.Context, prefix string) ([]Object, error)
	// Delete removes the object at key. Missing objects are not an error.
	Delete(ctx context.Context, key string) error
	// DeleteMany removes all keys in a single batch.
	DeleteMany(ctx context.Context, keys []string) error
}

// Key joins the non-empty segments with "/".
func Key(segments ...string) string {
	parts := make([]string, 0, len(segments))
	for _, s := range segments {
		s = strings.Trim(s, "/")
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "/")
}

// Prefix is Key with a trailing slash, suitable for listing a "directory".
func Prefix(segments ...string) string {
	k := Key(segments...)
	if k == "" {
		return ""
	}
	return k + "/"
}

// SanitizeName replaces spaces with underscores so keys stay shell and URL friendly.
func SanitizeName(name string) string {
	return strings.ReplaceAll(name, " ", "_")
}
