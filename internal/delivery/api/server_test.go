package api

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"marketplace/config"
	"marketplace/internal/delivery/api/middleware"
	"marketplace/internal/delivery/api/router"
	"marketplace/internal/delivery/api/router/handler"
	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	mockUsecase "marketplace/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type testAPI struct {
	echo       *echo.Echo
	identityUC *mockUsecase.MockIdentityUsecase
	profileUC  *mockUsecase.MockProfileUsecase
}

func newTestAPI(t *testing.T) *testAPI {
	cfg := &config.Config{
		Reconciler: &config.ReconcilerConfig{BatchSize: 50},
		RateLimit:  &config.RateLimitConfig{Enabled: true, RequestsPerSecond: 1, Burst: 1},
	}
	cfg.Env.ServiceName = "marketplace"
	cfg.HTTP.MaxRequestBodySize = "1M"
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	identityUC := mockUsecase.NewMockIdentityUsecase(t)
	profileUC := mockUsecase.NewMockProfileUsecase(t)
	applicationUC := mockUsecase.NewMockApplicationUsecase(t)
	sessionUC := mockUsecase.NewMockAdminSessionUsecase(t)

	routerParams := router.RouterParams{
		AuthHandler:        handler.NewAuthHandler(handler.AuthHandlerParams{IdentityUC: identityUC, Logger: logger}),
		ProfileHandler:     handler.NewProfileHandler(handler.ProfileHandlerParams{ProfileUC: profileUC, Logger: logger}),
		ApplicationHandler: handler.NewApplicationHandler(handler.ApplicationHandlerParams{ApplicationUC: applicationUC, Logger: logger}),
		AdminHandler: handler.NewAdminHandler(handler.AdminHandlerParams{
			Config:        cfg,
			ApplicationUC: applicationUC,
			ProfileUC:     profileUC,
			SessionUC:     sessionUC,
			Logger:        logger,
		}),
		NotificationHandler: handler.NewNotificationHandler(handler.NotificationHandlerParams{SessionUC: sessionUC, Logger: logger}),
		RecordHandler:       handler.NewRecordHandler(handler.RecordHandlerParams{DocumentUC: mockUsecase.NewMockDocumentUsecase(t), Logger: logger}),
		UploadHandler:       handler.NewUploadHandler(handler.UploadHandlerParams{UploadUC: mockUsecase.NewMockUploadUsecase(t), Logger: logger}),
		DeviceHandler:       handler.NewDeviceHandler(handler.DeviceHandlerParams{DeviceUC: mockUsecase.NewMockDeviceUsecase(t), Logger: logger}),
		AuthMiddleware:      middleware.NewAuthMiddleware(identityUC),
		Config:              cfg,
	}

	return &testAPI{
		echo:       newEcho(cfg, logger, routerParams),
		identityUC: identityUC,
		profileUC:  profileUC,
	}
}

func (api *testAPI) do(method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-1")
	rec := httptest.NewRecorder()
	api.echo.ServeHTTP(rec, req)

	return rec
}

func TestAPI_Health(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-1", rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestAPI_ProfileRequiresToken(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodGet, "/api/v1/profile", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"request_id":"req-1"`)
}

func TestAPI_ProfileOfCaller(t *testing.T) {
	api := newTestAPI(t)
	customer := &entity.UserProfile{ID: "user-1", Email: "ann@example.com", Role: entity.RoleCustomer}
	api.identityUC.EXPECT().Authenticate(mock.Anything, "token-1").Return(customer, nil)
	api.profileUC.EXPECT().GetProfile(mock.Anything, "user-1").Return(customer, nil)

	rec := api.do(http.MethodGet, "/api/v1/profile", "token-1")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ann@example.com")
}

func TestAPI_AdminRoutesRejectCustomers(t *testing.T) {
	api := newTestAPI(t)
	customer := &entity.UserProfile{ID: "user-1", Role: entity.RoleCustomer}
	api.identityUC.EXPECT().Authenticate(mock.Anything, "token-1").Return(customer, nil)

	rec := api.do(http.MethodGet, "/api/v1/admin/users", "token-1")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "FORBIDDEN"))
}

func TestAPI_AuthRoutesAreThrottled(t *testing.T) {
	api := newTestAPI(t)

	// Empty bodies fail validation before reaching the identity provider
	first := api.do(http.MethodPost, "/auth/password-reset", "")
	second := api.do(http.MethodPost, "/auth/password-reset", "")

	assert.Equal(t, http.StatusBadRequest, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}
