package storage

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestBlobStorage_PutReportsProgressAndURL(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	storage := NewBlobStorage(bucket, "https://cdn.example.com/files/", slog.New(slog.NewTextHandler(io.Discard, nil)))
	payload := bytes.Repeat([]byte("a"), 64*1024)

	var reports []int64
	obj, err := storage.Put(context.Background(), "u1/menu card.png", bytes.NewReader(payload), int64(len(payload)), "image/png",
		func(written, total int64) {
			assert.Equal(t, int64(len(payload)), total)
			reports = append(reports, written)
		})
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.example.com/files/u1/menu%20card.png", obj.URL)
	assert.Equal(t, int64(len(payload)), obj.Size)
	require.NotEmpty(t, reports)
	assert.Equal(t, int64(len(payload)), reports[len(reports)-1])
	assert.IsIncreasing(t, reports)

	stored, err := bucket.ReadAll(context.Background(), "u1/menu card.png")
	require.NoError(t, err)
	assert.Equal(t, payload, stored)

	attrs, err := bucket.Attributes(context.Background(), "u1/menu card.png")
	require.NoError(t, err)
	assert.Equal(t, "image/png", attrs.ContentType)
}

func TestBlobStorage_DeleteMissingIsNotAnError(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	storage := NewBlobStorage(bucket, "", slog.New(slog.NewTextHandler(io.Discard, nil)))

	assert.NoError(t, storage.Delete(context.Background(), "missing"))
}
