package handler

import (
	"log/slog"
	"net/http"

	"marketplace/internal/delivery/api/middleware"
	"marketplace/internal/delivery/api/response"
	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UploadHandlerParams holds dependencies for UploadHandler, injected by Fx.
type UploadHandlerParams struct {
	fx.In

	UploadUC usecase.UploadUsecase
	Logger   *slog.Logger
}

// UploadHandler accepts multipart file uploads.
type UploadHandler struct {
	uploadUC usecase.UploadUsecase
	logger   *slog.Logger
}

// NewUploadHandler is the constructor for UploadHandler.
func NewUploadHandler(params UploadHandlerParams) *UploadHandler {
	return &UploadHandler{
		uploadUC: params.UploadUC,
		logger:   params.Logger,
	}
}

// Upload stores the "file" form field under the caller's prefix.
func (h *UploadHandler) Upload(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return missingUser(c)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "MISSING_FILE", "Form field \"file\" is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.BadRequest(c, "INVALID_FILE", "Uploaded file could not be read")
	}
	defer file.Close()

	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	object, err := h.uploadUC.Upload(ctx, &usecase.UploadInput{
		OwnerID:  userID,
		FileName: fileHeader.Filename,
		Size:     fileHeader.Size,
		Content:  file,
		Progress: func(written, total int64) {
			logger.Debug("Upload progress", slog.Int64("written", written), slog.Int64("total", total))
		},
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, object)
}
