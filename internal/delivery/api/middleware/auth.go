package middleware

import (
	"log/slog"
	"slices"
	"strings"

	"marketplace/internal/delivery/api/response"
	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
)

// Context keys set by Authenticate
const (
	keyUserID  = "userID"
	keyRole    = "role"
	keyProfile = "profile"
)

// AuthMiddleware verifies identity provider ID tokens and loads the caller's profile.
type AuthMiddleware struct {
	identity usecase.IdentityUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(identity usecase.IdentityUsecase) *AuthMiddleware {
	return &AuthMiddleware{identity: identity}
}

// Authenticate requires a Bearer ID token. SSE clients that cannot set headers
// may pass it as the access_token query parameter instead.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c)
		if !ok {
			return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), "Authorization header is missing or malformed")
		}

		profile, err := m.identity.Authenticate(c.Request().Context(), token)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		SetProfile(c, profile)

		return next(c)
	}
}

// RequireRole rejects callers whose role is not listed.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := GetRole(c)
			if !ok {
				return response.Forbidden(c, domainerrors.ErrForbidden.ErrorCode(), "Permission denied: role information missing")
			}

			if !slices.Contains(roles, role) {
				return response.Forbidden(c, domainerrors.ErrForbidden.ErrorCode(), "Permission denied: role "+role.String()+" not allowed")
			}

			return next(c)
		}
	}
}

func bearerToken(c echo.Context) (string, bool) {
	const bearerPrefix = "Bearer "

	if header := c.Request().Header.Get(echo.HeaderAuthorization); header != "" {
		token, found := strings.CutPrefix(header, bearerPrefix)
		if !found || token == "" {
			return "", false
		}

		return token, true
	}

	if token := c.QueryParam("access_token"); token != "" {
		return token, true
	}

	return "", false
}

// SetProfile records the authenticated caller on the echo context and tags
// the request context and its logger with the caller's ID.
func SetProfile(c echo.Context, profile *entity.UserProfile) {
	c.Set(keyUserID, profile.ID)
	c.Set(keyRole, profile.Role)
	c.Set(keyProfile, profile)

	ctx := c.Request().Context()
	if logger := deliverycontext.GetLogger(ctx); logger != nil {
		ctx = deliverycontext.WithLogger(ctx, logger.With(slog.String("user_id", profile.ID)))
	}
	c.SetRequest(c.Request().WithContext(deliverycontext.WithUserID(ctx, profile.ID)))
}

// GetUserID returns the authenticated user's ID.
func GetUserID(c echo.Context) (string, bool) {
	userID, ok := c.Get(keyUserID).(string)

	return userID, ok && userID != ""
}

// GetRole returns the authenticated user's role.
func GetRole(c echo.Context) (entity.Role, bool) {
	role, ok := c.Get(keyRole).(entity.Role)

	return role, ok
}

// GetProfile returns the authenticated user's profile.
func GetProfile(c echo.Context) (*entity.UserProfile, bool) {
	profile, ok := c.Get(keyProfile).(*entity.UserProfile)

	return profile, ok && profile != nil
}
