package handler

import (
	"net/http"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	mockUsecase "marketplace/internal/mocks/usecase"
	"marketplace/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestAuthHandler(t *testing.T) (*AuthHandler, *mockUsecase.MockIdentityUsecase) {
	identity := mockUsecase.NewMockIdentityUsecase(t)

	return NewAuthHandler(AuthHandlerParams{IdentityUC: identity, Logger: newDiscardLogger()}), identity
}

func TestAuthHandler_Register(t *testing.T) {
	t.Run("creates the account", func(t *testing.T) {
		h, identity := createTestAuthHandler(t)
		identity.EXPECT().Register(mock.Anything, &usecase.RegisterInput{
			Email: "mei@example.com", Password: "secret1", DisplayName: "Mei",
		}).Return(&entity.UserProfile{ID: "uid-1", Email: "mei@example.com", Role: entity.RoleCustomer}, nil)

		c, rec := newTestContext(t, testRequest{
			method: http.MethodPost,
			path:   "/auth/register",
			body:   `{"email":"mei@example.com","password":"secret1","display_name":"Mei"}`,
		})
		require.NoError(t, h.Register(c))

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"role":"customer"`)
	})

	t.Run("rejects invalid input before calling the provider", func(t *testing.T) {
		h, _ := createTestAuthHandler(t)

		c, rec := newTestContext(t, testRequest{
			method: http.MethodPost,
			path:   "/auth/register",
			body:   `{"email":"not-an-email","password":"123"}`,
		})
		require.NoError(t, h.Register(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		assert.Equal(t, "email", env.Error.Details["email"])
		assert.Equal(t, "min=6", env.Error.Details["password"])
		assert.Equal(t, "required", env.Error.Details["display_name"])
	})

	t.Run("email already registered", func(t *testing.T) {
		h, identity := createTestAuthHandler(t)
		identity.EXPECT().Register(mock.Anything, mock.Anything).
			Return(nil, errors.Wrap(domainerrors.ErrEmailAlreadyExists, "create identity"))

		c, rec := newTestContext(t, testRequest{
			method: http.MethodPost,
			path:   "/auth/register",
			body:   `{"email":"mei@example.com","password":"secret1","display_name":"Mei"}`,
		})
		require.NoError(t, h.Register(c))

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "EMAIL_ALREADY_EXISTS", decodeEnvelope(t, rec).Error.Code)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "success", wantStatus: http.StatusOK},
		{name: "wrong password", err: domainerrors.ErrInvalidCredentials, wantStatus: http.StatusUnauthorized, wantCode: "INVALID_CREDENTIALS"},
		{name: "unverified email", err: domainerrors.ErrEmailNotVerified, wantStatus: http.StatusForbidden, wantCode: "EMAIL_NOT_VERIFIED"},
		{name: "throttled", err: domainerrors.ErrTooManyAttempts, wantStatus: http.StatusTooManyRequests, wantCode: "TOO_MANY_ATTEMPTS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, identity := createTestAuthHandler(t)
			call := identity.EXPECT().SignIn(mock.Anything, &usecase.SignInInput{Email: "mei@example.com", Password: "secret1"})
			if tt.err != nil {
				call.Return(nil, tt.err)
			} else {
				call.Return(&entity.AuthSession{IDToken: "id-token", Profile: customer}, nil)
			}

			c, rec := newTestContext(t, testRequest{
				method: http.MethodPost,
				path:   "/auth/login",
				body:   `{"email":"mei@example.com","password":"secret1"}`,
			})
			require.NoError(t, h.Login(c))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeEnvelope(t, rec).Error.Code)
			} else {
				assert.Contains(t, rec.Body.String(), `"id_token":"id-token"`)
			}
		})
	}
}

func TestAuthHandler_FederatedFirstSignIn(t *testing.T) {
	h, identity := createTestAuthHandler(t)
	identity.EXPECT().SignInWithProvider(mock.Anything, &usecase.FederatedSignInInput{ProviderID: "google.com", IDToken: "g-token"}).
		Return(&entity.AuthSession{IDToken: "id-token", Profile: customer, IsNewUser: true}, nil)

	c, rec := newTestContext(t, testRequest{
		method: http.MethodPost,
		path:   "/auth/federated",
		body:   `{"provider_id":"google.com","id_token":"g-token"}`,
	})
	require.NoError(t, h.Federated(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestAuthHandler_PasswordResetIsAccepted(t *testing.T) {
	h, identity := createTestAuthHandler(t)
	identity.EXPECT().SendPasswordReset(mock.Anything, "ghost@example.com").Return(nil)

	c, rec := newTestContext(t, testRequest{
		method: http.MethodPost,
		path:   "/auth/password-reset",
		body:   `{"email":"ghost@example.com"}`,
	})
	require.NoError(t, h.PasswordReset(c))

	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestAuthHandler_Logout(t *testing.T) {
	h, identity := createTestAuthHandler(t)
	identity.EXPECT().SignOut(mock.Anything, "user-1").Return(nil)

	c, rec := newTestContext(t, testRequest{method: http.MethodPost, path: "/auth/logout", profile: customer})
	require.NoError(t, h.Logout(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}
