package impl

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"marketplace/internal/domain/service"
	mockService "marketplace/internal/mocks/service"
	"marketplace/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestUploadService(t *testing.T) (usecase.UploadUsecase, *mockService.MockFileStorage) {
	storage := mockService.NewMockFileStorage(t)

	return NewUploadService(UploadServiceParams{
		Config:  newTestConfig(),
		Storage: storage,
		Logger:  newDiscardLogger(),
	}), storage
}

func pngBytes(size int) []byte {
	data := make([]byte, size)
	copy(data, []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"))

	return data
}

func TestUploadService_Upload_StoresFullContent(t *testing.T) {
	svc, storage := createTestUploadService(t)
	ctx := context.Background()
	content := pngBytes(5000)

	var written []byte
	storage.EXPECT().
		Put(ctx, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "u1/") && strings.HasSuffix(key, ".png")
		}), mock.Anything, int64(len(content)), "image/png", mock.Anything).
		RunAndReturn(func(_ context.Context, key string, r io.Reader, size int64, contentType string, _ service.ProgressFunc) (*service.StoredObject, error) {
			var err error
			written, err = io.ReadAll(r)

			return &service.StoredObject{Key: key, URL: "http://files/" + key, ContentType: contentType, Size: size}, err
		})

	obj, err := svc.Upload(ctx, &usecase.UploadInput{
		OwnerID:  "u1",
		FileName: "menu.PNG",
		Size:     int64(len(content)),
		Content:  bytes.NewReader(content),
	})
	require.NoError(t, err)
	assert.Equal(t, "image/png", obj.ContentType)
	assert.Equal(t, content, written)
}

func TestUploadService_Upload_RejectsOversizedFile(t *testing.T) {
	svc, _ := createTestUploadService(t)

	_, err := svc.Upload(context.Background(), &usecase.UploadInput{
		OwnerID:  "u1",
		FileName: "big.png",
		Size:     10<<20 + 1,
		Content:  bytes.NewReader(pngBytes(16)),
	})
	assert.Equal(t, "FILE_TOO_LARGE", errorCode(err))
}

func TestUploadService_Upload_AcceptsExactLimit(t *testing.T) {
	svc, storage := createTestUploadService(t)
	ctx := context.Background()
	content := pngBytes(10 << 20)

	storage.EXPECT().
		Put(ctx, mock.Anything, mock.Anything, int64(10<<20), "image/png", mock.Anything).
		Return(&service.StoredObject{Key: "k"}, nil)

	_, err := svc.Upload(ctx, &usecase.UploadInput{
		OwnerID: "u1",
		Size:    int64(len(content)),
		Content: bytes.NewReader(content),
	})
	require.NoError(t, err)
}

func TestUploadService_Upload_RejectsDisallowedType(t *testing.T) {
	svc, _ := createTestUploadService(t)
	content := []byte("#!/bin/sh\necho pwned\n")

	_, err := svc.Upload(context.Background(), &usecase.UploadInput{
		OwnerID:  "u1",
		FileName: "photo.png",
		Size:     int64(len(content)),
		Content:  bytes.NewReader(content),
	})
	assert.Equal(t, "UNSUPPORTED_MEDIA_TYPE", errorCode(err))
}

func TestUploadService_Upload_EmptyFile(t *testing.T) {
	svc, _ := createTestUploadService(t)

	_, err := svc.Upload(context.Background(), &usecase.UploadInput{OwnerID: "u1", Content: bytes.NewReader(nil)})
	assert.Equal(t, "VALIDATION_FAILED", errorCode(err))
}

func TestUploadService_Upload_StorageFailure(t *testing.T) {
	svc, storage := createTestUploadService(t)
	ctx := context.Background()
	content := pngBytes(100)

	storage.EXPECT().
		Put(ctx, mock.Anything, mock.Anything, int64(100), "image/png", mock.Anything).
		Return(nil, io.ErrClosedPipe).
		Once()

	_, err := svc.Upload(ctx, &usecase.UploadInput{OwnerID: "u1", Size: 100, Content: bytes.NewReader(content)})
	assert.Equal(t, "UPLOAD_FAILED", errorCode(err))
}
