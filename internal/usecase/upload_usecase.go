package usecase

import (
	"context"
	"io"

	"marketplace/internal/domain/service"
)

// UploadInput describes a file received from a client.
type UploadInput struct {
	OwnerID  string
	FileName string
	Size     int64
	Content  io.Reader
	Progress service.ProgressFunc
}

// UploadUsecase validates and stores user files.
type UploadUsecase interface {
	// Upload checks size and content type before anything is written.
	Upload(ctx context.Context, input *UploadInput) (*service.StoredObject, error)
}
