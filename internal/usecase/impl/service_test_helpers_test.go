package impl

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"marketplace/config"
	domainerrors "marketplace/internal/domain/errors"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Storage: &config.StorageConfig{
			MaxUploadSize:    10 << 20,
			AllowedMimeTypes: []string{"image/jpeg", "image/png", "image/webp", "application/pdf"},
		},
		AdminNotifications: &config.AdminNotificationsConfig{MaxItems: 100},
	}
	cfg.Env.ServiceName = "marketplace"

	return cfg
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// errorCode returns the application error code carried by err, or "".
func errorCode(err error) string {
	if appErr, ok := domainerrors.AsAppError(err); ok {
		return appErr.ErrorCode()
	}

	return ""
}

func containsAll(s string, parts ...string) bool {
	for _, part := range parts {
		if !strings.Contains(s, part) {
			return false
		}
	}

	return true
}
