package service

import (
	"context"
	"io"
)

// ProgressFunc is called as bytes are written, with the running and total counts.
type ProgressFunc func(written, total int64)

// StoredObject describes an uploaded file.
type StoredObject struct {
	Key         string `json:"key"`
	URL         string `json:"url"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

// FileStorage writes binary objects to a bucket.
type FileStorage interface {
	// Put writes r under key and returns its public location.
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string, progress ProgressFunc) (*StoredObject, error)

	// Delete removes the object at key.
	Delete(ctx context.Context, key string) error
}
