package errors

import (
	"net/http"

	"marketplace/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"找不到該使用者",
		"",
	)

	ErrUserSuspended = NewBaseError(
		http.StatusForbidden,
		"USER_SUSPENDED",
		"此帳號已被停權",
		"",
	)

	ErrInvalidRole = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ROLE",
		"無效的角色",
		"",
	)

	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"電子郵件或密碼錯誤",
		"",
	)

	ErrEmailNotVerified = NewBaseError(
		http.StatusForbidden,
		"EMAIL_NOT_VERIFIED",
		"請先完成電子郵件驗證",
		"",
	)

	ErrTooManyAttempts = NewBaseError(
		http.StatusTooManyRequests,
		"TOO_MANY_ATTEMPTS",
		"嘗試次數過多，請稍後再試",
		"",
	)

	ErrEmailAlreadyExists = NewBaseError(
		http.StatusConflict,
		"EMAIL_ALREADY_EXISTS",
		"此電子郵件已被註冊",
		"",
	)

	ErrUserDisabled = NewBaseError(
		http.StatusForbidden,
		"USER_DISABLED",
		"此帳號已被停用",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"無效或已過期的權杖",
		"",
	)

	ErrFederatedSignInFailed = NewBaseError(
		http.StatusUnauthorized,
		"FEDERATED_SIGN_IN_FAILED",
		"第三方登入失敗",
		"",
	)

	ErrIdentityProviderFailed = NewBaseError(
		http.StatusBadGateway,
		"IDENTITY_PROVIDER_FAILED",
		"認證服務暫時無法使用",
		"",
	)

	// Document store errors
	ErrDocumentNotFound = NewBaseError(
		http.StatusNotFound,
		"DOCUMENT_NOT_FOUND",
		"找不到該文件",
		"",
	)

	ErrPermissionDenied = NewBaseError(
		http.StatusForbidden,
		"PERMISSION_DENIED",
		"沒有存取此資料的權限",
		"",
	)

	ErrStoreUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"STORE_UNAVAILABLE",
		"資料服務暫時無法連線",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"輸入資料驗證失敗",
		"",
	)

	ErrFileTooLarge = NewBaseError(
		http.StatusRequestEntityTooLarge,
		"FILE_TOO_LARGE",
		"檔案大小超過上限",
		"",
	)

	ErrUnsupportedMediaType = NewBaseError(
		http.StatusUnsupportedMediaType,
		"UNSUPPORTED_MEDIA_TYPE",
		"不支援的檔案類型",
		"",
	)

	ErrUploadFailed = NewBaseError(
		http.StatusBadGateway,
		"UPLOAD_FAILED",
		"檔案上傳失敗",
		"",
	)

	// Application workflow errors
	ErrApplicationNotFound = NewBaseError(
		http.StatusNotFound,
		"APPLICATION_NOT_FOUND",
		"找不到該申請",
		"",
	)

	ErrApplicationAlreadyProcessed = NewBaseError(
		http.StatusConflict,
		"APPLICATION_ALREADY_PROCESSED",
		"申請已審核完成，無法重新送出",
		"",
	)

	ErrInvalidStatusTransition = NewBaseError(
		http.StatusConflict,
		"INVALID_STATUS_TRANSITION",
		"不允許的申請狀態變更",
		"",
	)

	ErrProfilePromotionFailed = NewBaseError(
		http.StatusAccepted,
		"PROFILE_PROMOTION_FAILED",
		"申請已送出，帳號角色稍後更新",
		"",
	)

	// Admin session errors
	ErrAdminSessionNotFound = NewBaseError(
		http.StatusNotFound,
		"ADMIN_SESSION_NOT_FOUND",
		"找不到管理員工作階段",
		"",
	)

	ErrNotificationNotFound = NewBaseError(
		http.StatusNotFound,
		"NOTIFICATION_NOT_FOUND",
		"找不到該通知",
		"",
	)

	// Device-related errors
	ErrDeviceNotFound = NewBaseError(
		http.StatusNotFound,
		"DEVICE_NOT_FOUND",
		"找不到該裝置",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"系統內部錯誤",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"存取被拒絕",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"找不到該資源",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"資源衝突",
		"",
	)
)

// StoreExecuteError represents a document store failure, implementing the AppError interface
type StoreExecuteError struct {
	err     error
	details string
}

// NewStoreExecuteError creates a document store related error
func NewStoreExecuteError(err error, details string) AppError {
	return &StoreExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *StoreExecuteError) Error() string {
	return errors.Wrap(e.err, "document store execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *StoreExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *StoreExecuteError) ErrorCode() string {
	return "STORE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *StoreExecuteError) Message() string {
	return "資料存取失敗"
}

// Details returns detailed error information
func (e *StoreExecuteError) Details() string {
	return e.details
}

// Unwrap exposes the underlying store error
func (e *StoreExecuteError) Unwrap() error {
	return e.err
}
