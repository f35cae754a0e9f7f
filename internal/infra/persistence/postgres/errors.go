package postgres

import (
	"context"
	"database/sql/driver"
	"net"
	"strings"

	"marketplace/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// TranslateError maps GORM and PostgreSQL failures onto the document store errors.
func TranslateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return repository.ErrDocumentNotFound
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return errors.WithStack(err)
	case isPermissionError(err):
		return errors.Wrap(repository.ErrPermissionDenied, err.Error())
	case isConnectionError(err):
		return errors.Wrap(repository.ErrUnavailable, err.Error())
	default:
		return errors.WithStack(err)
	}
}

func isPermissionError(err error) bool {
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "permission denied") ||
		strings.Contains(errMsg, "42501") || // insufficient_privilege
		strings.Contains(errMsg, "28p01") || // invalid_password
		strings.Contains(errMsg, "28000") // invalid_authorization_specification
}

func isConnectionError(err error) bool {
	if errors.Is(err, driver.ErrBadConn) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "connection refused") ||
		strings.Contains(errMsg, "sqlstate 08") || // connection_exception class
		strings.Contains(errMsg, "57p01") // admin_shutdown
}
