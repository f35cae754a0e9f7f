package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	mockUsecase "marketplace/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func errorCodeOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body.Error.Code
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	profile := &entity.UserProfile{ID: "user-1", Role: entity.RoleRestaurantOwner}

	tests := []struct {
		name       string
		setup      func(req *http.Request)
		mockSetup  func(m *mockUsecase.MockIdentityUsecase)
		wantStatus int
		wantCode   string
	}{
		{
			name:  "bearer token",
			setup: func(req *http.Request) { req.Header.Set(echo.HeaderAuthorization, "Bearer good") },
			mockSetup: func(m *mockUsecase.MockIdentityUsecase) {
				m.EXPECT().Authenticate(mock.Anything, "good").Return(profile, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "query token for event streams",
			setup: func(req *http.Request) {
				q := req.URL.Query()
				q.Set("access_token", "good")
				req.URL.RawQuery = q.Encode()
			},
			mockSetup: func(m *mockUsecase.MockIdentityUsecase) {
				m.EXPECT().Authenticate(mock.Anything, "good").Return(profile, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing header",
			setup:      func(*http.Request) {},
			mockSetup:  func(*mockUsecase.MockIdentityUsecase) {},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "UNAUTHORIZED",
		},
		{
			name:       "not a bearer token",
			setup:      func(req *http.Request) { req.Header.Set(echo.HeaderAuthorization, "Basic abc") },
			mockSetup:  func(*mockUsecase.MockIdentityUsecase) {},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "UNAUTHORIZED",
		},
		{
			name:  "suspended account",
			setup: func(req *http.Request) { req.Header.Set(echo.HeaderAuthorization, "Bearer good") },
			mockSetup: func(m *mockUsecase.MockIdentityUsecase) {
				m.EXPECT().Authenticate(mock.Anything, "good").
					Return(nil, errors.Wrap(domainerrors.ErrUserSuspended, "profile suspended"))
			},
			wantStatus: http.StatusForbidden,
			wantCode:   "USER_SUSPENDED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identity := mockUsecase.NewMockIdentityUsecase(t)
			tt.mockSetup(identity)
			m := NewAuthMiddleware(identity)

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
			tt.setup(req)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var gotUserID, gotCtxUserID string
			var gotRole entity.Role
			err := m.Authenticate(func(c echo.Context) error {
				gotUserID, _ = GetUserID(c)
				gotRole, _ = GetRole(c)
				gotCtxUserID = deliverycontext.GetUserIDFromContext(c.Request().Context())

				return c.NoContent(http.StatusOK)
			})(c)
			require.NoError(t, err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, errorCodeOf(t, rec))

				return
			}
			assert.Equal(t, "user-1", gotUserID)
			assert.Equal(t, "user-1", gotCtxUserID)
			assert.Equal(t, entity.RoleRestaurantOwner, gotRole)
		})
	}
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	m := NewAuthMiddleware(mockUsecase.NewMockIdentityUsecase(t))
	e := echo.New()

	run := func(role any) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/admin/users", nil), rec)
		if role != nil {
			c.Set(keyRole, role)
		}
		_ = m.RequireRole(entity.RoleAdmin)(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})(c)

		return rec
	}

	assert.Equal(t, http.StatusOK, run(entity.RoleAdmin).Code)
	assert.Equal(t, http.StatusForbidden, run(entity.RoleCustomer).Code)
	assert.Equal(t, http.StatusForbidden, run(nil).Code)
}
