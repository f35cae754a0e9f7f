package handler

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"marketplace/internal/delivery/api/middleware"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/service"
	mockUsecase "marketplace/internal/mocks/usecase"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func multipartUpload(t *testing.T, field, name string, content []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile(field, name)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/uploads", &body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())

	return req
}

func TestUploadHandler_Upload(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\n0000")

	t.Run("stores the file", func(t *testing.T) {
		uploads := mockUsecase.NewMockUploadUsecase(t)
		h := NewUploadHandler(UploadHandlerParams{UploadUC: uploads, Logger: newDiscardLogger()})

		uploads.EXPECT().
			Upload(mock.Anything, mock.MatchedBy(func(in *usecase.UploadInput) bool {
				got, err := io.ReadAll(in.Content)

				return err == nil && in.OwnerID == "user-1" && in.FileName == "menu.png" &&
					in.Size == int64(len(png)) && bytes.Equal(got, png)
			})).
			Return(&service.StoredObject{Key: "user-1/abc.png", ContentType: "image/png", Size: int64(len(png))}, nil)

		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(multipartUpload(t, "file", "menu.png", png), rec)
		middleware.SetProfile(c, customer)

		require.NoError(t, h.Upload(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"key":"user-1/abc.png"`)
	})

	t.Run("missing file field", func(t *testing.T) {
		h := NewUploadHandler(UploadHandlerParams{UploadUC: mockUsecase.NewMockUploadUsecase(t), Logger: newDiscardLogger()})

		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(multipartUpload(t, "attachment", "menu.png", png), rec)
		middleware.SetProfile(c, customer)

		require.NoError(t, h.Upload(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("too large", func(t *testing.T) {
		uploads := mockUsecase.NewMockUploadUsecase(t)
		h := NewUploadHandler(UploadHandlerParams{UploadUC: uploads, Logger: newDiscardLogger()})
		uploads.EXPECT().Upload(mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrFileTooLarge.WithDetails("10.0 MB limit"))

		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(multipartUpload(t, "file", "menu.png", png), rec)
		middleware.SetProfile(c, customer)

		require.NoError(t, h.Upload(c))
		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
		assert.Equal(t, "FILE_TOO_LARGE", decodeEnvelope(t, rec).Error.Code)
	})
}
