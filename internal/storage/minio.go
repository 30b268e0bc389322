package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/xblinx/attachments/internal/logging"
)

// MinioStorage implements Storage using a MinIO (or any S3-compatible) backend.
// To switch to AWS S3, change STORAGE_ENDPOINT and credentials; no code changes
// are needed.
type MinioStorage struct {
	client *minio.Client
	bucket string

	mu    sync.Mutex
	ready bool
}

// NewMinioStorage creates a MinIO client and tries to make sure the bucket exists.
// A bucket check that fails here is retried on the next operation.
func NewMinioStorage(endpoint, accessKey, secretKey, bucket string, useSSL bool) (*MinioStorage, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	s := &MinioStorage{client: client, bucket: bucket}
	if err := s.ensureBucket(context.Background()); err != nil {
		logging.Warn("storage: bucket not ready, will retry lazily", "bucket", bucket, "error", err)
	}
	return s, nil
}

// ensureBucket creates the bucket on first use and remembers success.
func (s *MinioStorage) ensureBucket(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ready {
		return nil
	}

	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("check bucket existence: %w", err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("create bucket %q: %w", s.bucket, err)
		}
		logging.Info("storage: created bucket", "bucket", s.bucket)
	}
	s.ready = true
	return nil
}

// Put streams reader to MinIO under key. size must be the exact byte count
// (pass -1 only if the size is genuinely unknown; MinIO will buffer it).
func (s *MinioStorage) Put(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (*Object, error) {
	if err := s.ensureBucket(ctx); err != nil {
		return nil, err
	}
	info, err := s.client.PutObject(ctx, s.bucket, key, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return nil, fmt.Errorf("put object %q: %w", key, err)
	}
	return &Object{
		Key:          info.Key,
		Size:         info.Size,
		LastModified: info.LastModified,
		ContentType:  contentType,
	}, nil
}

// Get opens the object at key. GetObject is lazy, so the object is stat'ed
// first to surface a missing key before any bytes are written to a client.
func (s *MinioStorage) Get(ctx context.Context, key string) (io.ReadCloser, *Object, error) {
	if err := s.ensureBucket(ctx); err != nil {
		return nil, nil, err
	}
	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, nil, translate(key, "get object", err)
	}
	info, err := obj.Stat()
	if err != nil {
		obj.Close()
		return nil, nil, translate(key, "stat object", err)
	}
	return obj, &Object{
		Key:          info.Key,
		Size:         info.Size,
		LastModified: info.LastModified,
		ContentType:  info.ContentType,
	}, nil
}

// List walks every object under prefix, including nested "directories".
func (s *MinioStorage) List(ctx context.Context, prefix string) ([]Object, error) {
	if err := s.ensureBucket(ctx); err != nil {
		return nil, err
	}
	var objects []Object
	for info := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if info.Err != nil {
			return nil, fmt.Errorf("list objects %q: %w", prefix, info.Err)
		}
		objects = append(objects, Object{
			Key:          info.Key,
			Size:         info.Size,
			LastModified: info.LastModified,
			ContentType:  info.ContentType,
		})
	}
	return objects, nil
}

// Delete removes the object at key from the bucket.
func (s *MinioStorage) Delete(ctx context.Context, key string) error {
	if err := s.ensureBucket(ctx); err != nil {
		return err
	}
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("remove object %q: %w", key, err)
	}
	return nil
}

// DeleteMany removes keys with a single multi-object delete request.
func (s *MinioStorage) DeleteMany(ctx context.Context, keys []string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := s.ensureBucket(ctx); err != nil {
		return err
	}

	objectsCh := make(chan minio.ObjectInfo, len(keys))
	for _, k := range keys {
		objectsCh <- minio.ObjectInfo{Key: k}
	}
	close(objectsCh)

	var errs []error
	for rerr := range s.client.RemoveObjects(ctx, s.bucket, objectsCh, minio.RemoveObjectsOptions{}) {
		errs = append(errs, fmt.Errorf("remove object %q: %w", rerr.ObjectName, rerr.Err))
	}
	return errors.Join(errs...)
}

// translate maps a missing-key response onto ErrNotFound.
func translate(key, op string, err error) error {
	switch minio.ToErrorResponse(err).Code {
	case "NoSuchKey", "NoSuchObject":
		return fmt.Errorf("%s %q: %w", op, key, ErrNotFound)
	}
	return fmt.Errorf("%s %q: %w", op, key, err)
}
