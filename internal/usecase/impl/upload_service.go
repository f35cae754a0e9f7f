package impl

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"path"
	"strings"

	"marketplace/config"
	deliverycontext "marketplace/internal/delivery/context"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/service"
	"marketplace/internal/usecase"
	"marketplace/internal/util"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sniffLen is the number of leading bytes inspected to detect the content type.
const sniffLen = 3072

type uploadService struct {
	storage      service.FileStorage
	maxSize      int64
	allowedTypes []string
	logger       *slog.Logger
}

// UploadServiceParams holds dependencies for UploadService, injected by Fx.
type UploadServiceParams struct {
	fx.In

	Config  *config.Config
	Storage service.FileStorage
	Logger  *slog.Logger
}

// NewUploadService is the constructor for uploadService.
func NewUploadService(params UploadServiceParams) usecase.UploadUsecase {
	return &uploadService{
		storage:      params.Storage,
		maxSize:      params.Config.Storage.MaxUploadSize,
		allowedTypes: params.Config.Storage.AllowedMimeTypes,
		logger:       params.Logger,
	}
}

func (srv *uploadService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Upload stores a user file after checking its size and sniffed content type.
// Nothing is written when a check fails, and a failed write is not retried.
func (srv *uploadService) Upload(ctx context.Context, input *usecase.UploadInput) (*service.StoredObject, error) {
	if input.Content == nil || input.Size <= 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "file is empty")
	}
	if input.Size > srv.maxSize {
		return nil, domainerrors.ErrFileTooLarge.WithDetails(
			"file is " + util.FormatBytes(input.Size) + ", the limit is " + util.FormatBytes(srv.maxSize),
		)
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(input.Content, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, "failed to read upload")
	}
	head = head[:n]

	detected := mimetype.Detect(head)
	if !srv.isAllowed(detected) {
		return nil, domainerrors.ErrUnsupportedMediaType.WithDetails(detected.String())
	}

	contentType := detected.String()
	if i := strings.IndexByte(contentType, ';'); i >= 0 {
		contentType = contentType[:i]
	}

	key := input.OwnerID + "/" + uuid.New().String() + objectExtension(detected, input.FileName)
	body := io.LimitReader(io.MultiReader(bytes.NewReader(head), input.Content), input.Size)

	obj, err := srv.storage.Put(ctx, key, body, input.Size, contentType, input.Progress)
	if err != nil {
		srv.log(ctx).Error("Upload failed",
			slog.String("key", key),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrUploadFailed.WithDetails(err.Error())
	}

	srv.log(ctx).Info("File uploaded",
		slog.String("ownerID", input.OwnerID),
		slog.String("key", obj.Key),
		slog.String("contentType", obj.ContentType),
		slog.Int64("size", obj.Size),
	)

	return obj, nil
}

func (srv *uploadService) isAllowed(detected *mimetype.MIME) bool {
	for _, allowed := range srv.allowedTypes {
		if detected.Is(allowed) {
			return true
		}
	}

	return false
}

// objectExtension prefers the extension of the detected type over the client's file name.
func objectExtension(detected *mimetype.MIME, fileName string) string {
	if ext := detected.Extension(); ext != "" {
		return ext
	}

	return strings.ToLower(path.Ext(fileName))
}
