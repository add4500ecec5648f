package errors

import (
	"net/http"

	"passage/internal/errors"
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

// Is matches any BaseError with the same error code, so copies made by
// WithDetails still match the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
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
	// Identity-related errors
	ErrIdentityNotFound = NewBaseError(
		http.StatusNotFound,
		"IDENTITY_NOT_FOUND",
		"找不到該帳號",
		"",
	)

	ErrEmailAlreadyRegistered = NewBaseError(
		http.StatusConflict,
		"EMAIL_ALREADY_REGISTERED",
		"此電子郵件已被註冊",
		"",
	)

	// Local credential errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"電子郵件或密碼錯誤",
		"",
	)

	ErrPasswordNotSet = NewBaseError(
		http.StatusUnauthorized,
		"PASSWORD_NOT_SET",
		"此帳號透過第三方登入註冊，請使用第三方登入後再設定密碼",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"密碼處理錯誤",
		"",
	)

	ErrMalformedHash = NewBaseError(
		http.StatusInternalServerError,
		"MALFORMED_HASH",
		"儲存的密碼格式無法辨識",
		"",
	)

	// Provider linking errors
	ErrProviderAlreadyLinkedElsewhere = NewBaseError(
		http.StatusConflict,
		"PROVIDER_ALREADY_LINKED_ELSEWHERE",
		"此第三方帳號已連結至其他帳號",
		"",
	)

	ErrEmailCollision = NewBaseError(
		http.StatusConflict,
		"EMAIL_COLLISION",
		"此電子郵件已屬於其他帳號，請登入該帳號後再手動連結",
		"",
	)

	ErrProviderNotLinked = NewBaseError(
		http.StatusNotFound,
		"PROVIDER_NOT_LINKED",
		"尚未連結此第三方帳號",
		"",
	)

	ErrLastAuthMethod = NewBaseError(
		http.StatusConflict,
		"LAST_AUTH_METHOD",
		"無法移除最後一個登入方式",
		"",
	)

	ErrUnknownProvider = NewBaseError(
		http.StatusBadRequest,
		"UNKNOWN_PROVIDER",
		"不支援的第三方登入",
		"",
	)

	ErrOAuthStateInvalid = NewBaseError(
		http.StatusBadRequest,
		"OAUTH_STATE_INVALID",
		"無效或已過期的 OAuth 狀態",
		"",
	)

	// Provider credential errors
	ErrReauthRequired = NewBaseError(
		http.StatusUnauthorized,
		"REAUTH_REQUIRED",
		"第三方授權已失效，請重新登入",
		"",
	)

	ErrTransientProvider = NewBaseError(
		http.StatusBadGateway,
		"TRANSIENT_PROVIDER_ERROR",
		"第三方服務暫時無法使用，請稍後再試",
		"",
	)

	// Verification token errors
	ErrTokenInvalid = NewBaseError(
		http.StatusBadRequest,
		"TOKEN_INVALID",
		"無效的驗證權杖",
		"",
	)

	ErrTokenExpired = NewBaseError(
		http.StatusBadRequest,
		"TOKEN_EXPIRED",
		"驗證權杖已過期",
		"",
	)

	// Session errors
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"請先登入",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"輸入資料驗證失敗",
		"",
	)

	ErrPasswordStrength = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_STRENGTH",
		"密碼強度不足",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"系統內部錯誤",
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

// ReauthRequiredError tells the caller which provider's authorize flow must
// be restarted. It matches ErrReauthRequired with errors.Is.
type ReauthRequiredError struct {
	Provider      string
	AuthorizePath string
}

// NewReauthRequiredError builds a ReauthRequiredError pointing at /auth/{provider}.
func NewReauthRequiredError(provider string) *ReauthRequiredError {
	return &ReauthRequiredError{
		Provider:      provider,
		AuthorizePath: "/auth/" + provider,
	}
}

func (e *ReauthRequiredError) Error() string {
	return ErrReauthRequired.Error() + ": " + e.Provider
}

func (e *ReauthRequiredError) Unwrap() error {
	return ErrReauthRequired
}

func (e *ReauthRequiredError) HTTPCode() int     { return ErrReauthRequired.HTTPCode() }
func (e *ReauthRequiredError) ErrorCode() string { return ErrReauthRequired.ErrorCode() }
func (e *ReauthRequiredError) Message() string   { return ErrReauthRequired.Message() }
func (e *ReauthRequiredError) Details() string   { return e.AuthorizePath }

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "資料庫執行失敗"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
