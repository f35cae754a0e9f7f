package errors

import (
	"net/http"

	"marketplace/internal/errors"
)

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "APPLICATION_NOT_FOUND"
	Message string `json:"message"`           // User-friendly error message
	Details any    `json:"details,omitempty"` // Detailed error information (optional)
}

// AsAppError extracts the AppError from err's chain.
func AsAppError(err error) (AppError, bool) {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}

	return nil, false
}

// HTTPStatus returns the HTTP status carried by err, or 500 for plain errors.
func HTTPStatus(err error) int {
	if appErr, ok := AsAppError(err); ok {
		return appErr.HTTPCode()
	}

	return http.StatusInternalServerError
}

// ToErrorInfo renders err for streaming responses, hiding details of 5xx errors.
func ToErrorInfo(err error) *ErrorInfo {
	appErr, ok := AsAppError(err)
	if !ok {
		return &ErrorInfo{Code: ErrInternalError.ErrorCode(), Message: ErrInternalError.Message()}
	}

	info := &ErrorInfo{Code: appErr.ErrorCode(), Message: appErr.Message()}
	if appErr.HTTPCode() < http.StatusInternalServerError && appErr.Details() != "" {
		info.Details = appErr.Details()
	}

	return info
}
