package middleware

import (
	"marketplace/config"
	"marketplace/internal/delivery/api/response"
	domainerrors "marketplace/internal/domain/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// NewRateLimiter throttles requests per client IP with a token bucket.
// A disabled config yields a pass-through middleware.
func NewRateLimiter(cfg *config.RateLimitConfig) echo.MiddlewareFunc {
	if cfg == nil || !cfg.Enabled {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}

	store := echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(cfg.RequestsPerSecond),
		Burst:     cfg.Burst,
		ExpiresIn: cfg.ExpiresIn,
	})

	return echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return response.Forbidden(c, domainerrors.ErrForbidden.ErrorCode(), "Client could not be identified")
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return response.Error(c, domainerrors.ErrTooManyAttempts.HTTPCode(),
				domainerrors.ErrTooManyAttempts.ErrorCode(), domainerrors.ErrTooManyAttempts.Message(), nil)
		},
	})
}
