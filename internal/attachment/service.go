// Package attachment stores, lists, streams and removes files attached to
// an entity (an expense, an album, a candidate) in object storage.
package attachment

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"sort"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/xblinx/attachments/internal/logging"
	"github.com/xblinx/attachments/internal/storage"
)

// ErrNoFiles is returned when an upload request carries no file parts.
var ErrNoFiles = errors.New("no file found in request")

// Ref identifies the "directory" a set of files belongs to.
// Keys are laid out as entity/user_id/entity_id[/group_id]/file_name.
type Ref struct {
	Entity   string
	EntityID string
	UserID   string
	GroupID  string
}

// Prefix returns the key prefix shared by every file of the entity,
// including files stored under a group.
func (r Ref) Prefix() string {
	return storage.Prefix(r.Entity, r.UserID, r.EntityID)
}

// Key returns the object key for name, with spaces turned into underscores.
func (r Ref) Key(name string) string {
	return storage.Key(r.Entity, r.UserID, r.EntityID, r.GroupID, storage.SanitizeName(name))
}

// Upload is one file to store.
type Upload struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
}

// Service contains the file operations exposed over HTTP.
type Service struct {
	store storage.Storage
	loc   *time.Location
}

// NewService creates a Service on top of store. Listing timestamps are
// rendered in the server's local time zone.
func NewService(store storage.Storage) *Service {
	return &Service{store: store, loc: time.Local}
}

// Upload stores a single file under ref.
func (s *Service) Upload(ctx context.Context, ref Ref, u Upload) (*storage.Object, error) {
	key := ref.Key(u.Name)
	obj, err := s.store.Put(ctx, key, u.Body, u.Size, u.ContentType)
	if err != nil {
		return nil, fmt.Errorf("upload %q: %w", u.Name, err)
	}
	logging.Debug("stored object", "key", key, "size", humanize.Bytes(uint64(max(u.Size, 0))), "content_type", u.ContentType)
	return obj, nil
}

// UploadFiles stores every multipart file under ref in order and returns the
// last stored object. Earlier files stay stored if a later one fails.
func (s *Service) UploadFiles(ctx context.Context, ref Ref, files []*multipart.FileHeader) (*storage.Object, error) {
	if len(files) == 0 {
		return nil, ErrNoFiles
	}
	var last *storage.Object
	for _, fh := range files {
		obj, err := s.uploadPart(ctx, ref, fh)
		if err != nil {
			return nil, err
		}
		last = obj
	}
	return last, nil
}

func (s *Service) uploadPart(ctx context.Context, ref Ref, fh *multipart.FileHeader) (*storage.Object, error) {
	u, closer, err := FromMultipart(fh)
	if err != nil {
		return nil, err
	}
	defer closer.Close()
	return s.Upload(ctx, ref, u)
}

// List returns the files stored under ref, newest first.
func (s *Service) List(ctx context.Context, ref Ref) (*Listing, error) {
	objects, err := s.store.List(ctx, ref.Prefix())
	if err != nil {
		return nil, fmt.Errorf("list %q: %w", ref.Prefix(), err)
	}
	return buildListing(objects, s.loc), nil
}

// Open returns a reader over the stored file. The caller closes it.
func (s *Service) Open(ctx context.Context, ref Ref, name string) (io.ReadCloser, *storage.Object, error) {
	rc, obj, err := s.store.Get(ctx, ref.Key(name))
	if err != nil {
		return nil, nil, fmt.Errorf("open %q: %w", name, err)
	}
	return rc, obj, nil
}

// Delete removes one stored file.
func (s *Service) Delete(ctx context.Context, ref Ref, name string) error {
	if err := s.store.Delete(ctx, ref.Key(name)); err != nil {
		return fmt.Errorf("delete %q: %w", name, err)
	}
	return nil
}

// DeleteAll removes every listed file under ref with one batch request and
// reports how many keys were sent.
func (s *Service) DeleteAll(ctx context.Context, ref Ref) (int, error) {
	objects, err := s.store.List(ctx, ref.Prefix())
	if err != nil {
		return 0, fmt.Errorf("list %q: %w", ref.Prefix(), err)
	}

	keys := make([]string, 0, len(objects))
	for _, o := range objects {
		if listable(o) && o.Key != "" {
			keys = append(keys, o.Key)
		}
	}
	if len(keys) == 0 {
		return 0, nil
	}
	sort.Strings(keys)

	if err := s.store.DeleteMany(ctx, keys); err != nil {
		return 0, fmt.Errorf("delete all under %q: %w", ref.Prefix(), err)
	}
	return len(keys), nil
}
