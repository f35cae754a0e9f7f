// Package storage writes uploaded files to a gocloud blob bucket.
package storage

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"strings"

	"marketplace/internal/domain/service"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"
)

type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// NewBlobStorage creates a FileStorage on top of an opened bucket
func NewBlobStorage(bucket *blob.Bucket, publicBaseURL string, logger *slog.Logger) service.FileStorage {
	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimSuffix(publicBaseURL, "/"),
		logger:        logger,
	}
}

func (s *blobStorage) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string, progress service.ProgressFunc) (*service.StoredObject, error) {
	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open blob writer")
	}

	written, err := io.Copy(w, &progressReader{reader: r, total: size, progress: progress})
	if err != nil {
		// Close after a failed copy discards the partial object.
		_ = w.Close()

		return nil, errors.Wrap(err, "failed to write blob")
	}
	if err := w.Close(); err != nil {
		return nil, errors.Wrap(err, "failed to commit blob")
	}

	s.logger.Debug("[BlobStorage] Object stored",
		slog.String("key", key),
		slog.Int64("size", written),
	)

	return &service.StoredObject{
		Key:         key,
		URL:         s.objectURL(key),
		ContentType: contentType,
		Size:        written,
	}, nil
}

func (s *blobStorage) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrap(err, "failed to delete blob")
	}

	return nil
}

func (s *blobStorage) objectURL(key string) string {
	segments := strings.Split(key, "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}

	return s.publicBaseURL + "/" + strings.Join(segments, "/")
}

// progressReader reports the running byte count after every read.
type progressReader struct {
	reader   io.Reader
	total    int64
	written  int64
	progress service.ProgressFunc
}

func (r *progressReader) Read(p []byte) (int, error) {
	n, err := r.reader.Read(p)
	if n > 0 {
		r.written += int64(n)
		if r.progress != nil {
			r.progress(r.written, r.total)
		}
	}

	return n, err
}
