package middleware

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"marketplace/config"
	deliverycontext "marketplace/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// quietPaths are probed by load balancers and never logged.
var quietPaths = map[string]struct{}{
	"/health": {},
}

// LoggerMiddleware logs one line per request when debug is on.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.debug {
			return next(c)
		}
		if _, quiet := quietPaths[c.Request().URL.Path]; quiet {
			return next(c)
		}

		start := time.Now()
		err := next(c)
		m.logRequest(c, start, err)

		return err
	}
}

func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, err error) {
	req := c.Request()
	res := c.Response()

	fields := []slog.Attr{
		slog.String("request_id", deliverycontext.GetRequestID(c)),
		slog.String("method", req.Method),
		slog.String("uri", req.URL.Path),
		slog.Int("status", res.Status),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
	}

	// Authenticate stores the caller on the request it hands downstream
	if userID := deliverycontext.GetUserIDFromContext(c.Request().Context()); userID != "" {
		fields = append(fields, slog.String("user_id", userID))
	}

	// The access_token of SSE requests must not reach the logs
	if req.URL.RawQuery != "" && !req.URL.Query().Has("access_token") {
		fields = append(fields, slog.String("query", req.URL.RawQuery))
	}

	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	msg := "HTTP Request"
	if strings.HasPrefix(res.Header().Get(echo.HeaderContentType), "text/event-stream") {
		msg = "HTTP Stream closed"
	}

	logLevel := slog.LevelInfo
	switch {
	case res.Status >= 500:
		logLevel = slog.LevelError
	case res.Status >= 400:
		logLevel = slog.LevelWarn
	}

	m.logger.LogAttrs(context.Background(), logLevel, msg, fields...)
}
