package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode classifies application errors
type ErrorCode string

const (
	// Request errors
	ErrCodeInvalidInput     ErrorCode = "INVALID_INPUT"
	ErrCodeInvalidKey       ErrorCode = "INVALID_NATIONAL_KEY"
	ErrCodeEmployeeNotFound ErrorCode = "EMPLOYEE_NOT_FOUND"
	ErrCodeInactiveEmployee ErrorCode = "INACTIVE_EMPLOYEE"
	ErrCodeInsufficientData ErrorCode = "INSUFFICIENT_DATA"

	// Auth errors
	ErrCodeUnauthorized    ErrorCode = "UNAUTHORIZED"
	ErrCodeInvalidToken    ErrorCode = "INVALID_TOKEN"
	ErrCodeMissingToken    ErrorCode = "MISSING_TOKEN"
	ErrCodeInvalidPassword ErrorCode = "INVALID_PASSWORD"

	// Infrastructure errors
	ErrCodeDataAccess   ErrorCode = "DATA_ACCESS_FAILURE"
	ErrCodeCacheFailure ErrorCode = "CACHE_FAILURE"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
)

// AppError is the application error type
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap exposes the underlying cause so the root error stays reachable
// through errors.Is/As after retry exhaustion.
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsAppError checks whether err is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts the AppError from err, nil if it is not one
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// HTTPStatus maps an error code to the HTTP status the controller returns.
// Anything unlisted is treated as a data-access failure.
func HTTPStatus(code ErrorCode) int {
	switch code {
	case ErrCodeInvalidInput, ErrCodeInvalidKey, ErrCodeValidation, ErrCodeRequiredField, ErrCodeInvalidFormat:
		return http.StatusBadRequest
	case ErrCodeEmployeeNotFound:
		return http.StatusNotFound
	case ErrCodeInactiveEmployee:
		return http.StatusForbidden
	case ErrCodeInsufficientData:
		return http.StatusUnprocessableEntity
	case ErrCodeUnauthorized, ErrCodeInvalidToken, ErrCodeMissingToken, ErrCodeInvalidPassword:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

var (
	// Employee errors
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEmployeeInactive = errors.New("employee is inactive")

	// Validation errors
	ErrInvalidInput    = errors.New("invalid input")
	ErrMissingRequired = errors.New("missing required field")
	ErrInvalidFormat   = errors.New("invalid format")

	// Auth errors
	ErrInvalidPassword = errors.New("invalid password")
	ErrUnauthorized    = errors.New("unauthorized")
)
