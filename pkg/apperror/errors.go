package apperror

import (
	"errors"
	"net/http"
)

// Kind classifies where an error originated
type Kind string

const (
	// KindApplication is an error raised locally (validation, auth, routing)
	KindApplication Kind = "application"
	// KindTransport is a network failure before a backend reply was read
	KindTransport Kind = "transport"
	// KindBackend is a non-2xx reply carrying the backend's message
	KindBackend Kind = "backend"
	// KindMalformed is a reply whose body does not have the expected shape
	KindMalformed Kind = "malformed"
)

// AppError represents an application error with HTTP status code
type AppError struct {
	Code    int          `json:"code"`
	Message string       `json:"message"`
	Kind    Kind         `json:"kind,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
	Err     error        `json:"-"`
}

// FieldError represents a validation error for a specific field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	if e.Message == "" && e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Common errors
var (
	ErrNotFound        = &AppError{Code: http.StatusNotFound, Message: "Resource not found", Kind: KindApplication}
	ErrUnauthorized    = &AppError{Code: http.StatusUnauthorized, Message: "Unauthorized", Kind: KindApplication}
	ErrForbidden       = &AppError{Code: http.StatusForbidden, Message: "Forbidden", Kind: KindApplication}
	ErrBadRequest      = &AppError{Code: http.StatusBadRequest, Message: "Bad request", Kind: KindApplication}
	ErrInternalServer  = &AppError{Code: http.StatusInternalServerError, Message: "Internal server error", Kind: KindApplication}
	ErrConflict        = &AppError{Code: http.StatusConflict, Message: "Resource already exists", Kind: KindApplication}
	ErrUnprocessable   = &AppError{Code: http.StatusUnprocessableEntity, Message: "Unprocessable entity", Kind: KindApplication}
	ErrTokenExpired    = &AppError{Code: http.StatusUnauthorized, Message: "Token has expired", Kind: KindApplication}
	ErrInvalidToken    = &AppError{Code: http.StatusUnauthorized, Message: "Invalid token", Kind: KindApplication}
	ErrTooManyRequests = &AppError{Code: http.StatusTooManyRequests, Message: "Rate limit exceeded. Please try again later.", Kind: KindApplication}
)

// NewAppError creates a new application error
func NewAppError(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Kind:    KindApplication,
	}
}

// NewValidationError creates a new validation error
func NewValidationError(fieldErrors []FieldError) *AppError {
	return &AppError{
		Code:    http.StatusUnprocessableEntity,
		Message: "Validation failed",
		Kind:    KindApplication,
		Errors:  fieldErrors,
	}
}

// NewNotFoundError creates a not found error with a custom message
func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Message: resource + " not found",
		Kind:    KindApplication,
	}
}

// NewConflictError creates a conflict error with a custom message
func NewConflictError(message string) *AppError {
	return &AppError{
		Code:    http.StatusConflict,
		Message: message,
		Kind:    KindApplication,
	}
}

// NewBadRequestError creates a bad request error with a custom message
func NewBadRequestError(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: message,
		Kind:    KindApplication,
	}
}

// NewTransportError wraps a failure to reach the payments backend
func NewTransportError(err error) *AppError {
	return &AppError{
		Code:    http.StatusBadGateway,
		Message: "Payment service unreachable",
		Kind:    KindTransport,
		Err:     err,
	}
}

// NewBackendError carries a non-2xx backend reply. message is the backend's
// own message and may be empty.
func NewBackendError(statusCode int, message string) *AppError {
	return &AppError{
		Code:    statusCode,
		Message: message,
		Kind:    KindBackend,
	}
}

// NewMalformedResponseError wraps a reply that could not be decoded
func NewMalformedResponseError(err error) *AppError {
	return &AppError{
		Code:    http.StatusBadGateway,
		Message: "Unexpected response from payment service",
		Kind:    KindMalformed,
		Err:     err,
	}
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// IsKind reports whether err is an AppError of the given kind
func IsKind(err error, kind Kind) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Kind == kind
}

// GetAppError converts an error to AppError if possible
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		if appErr.Message == "" {
			cp := *appErr
			cp.Message = http.StatusText(appErr.Code)
			return &cp
		}
		return appErr
	}
	return &AppError{
		Code:    http.StatusInternalServerError,
		Message: err.Error(),
		Kind:    KindApplication,
		Err:     err,
	}
}

// UserMessage returns the text to show a user for err: the backend's message
// when the backend sent one, otherwise fallback.
func UserMessage(err error, fallback string) string {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Kind == KindBackend && appErr.Message != "" {
		return appErr.Message
	}
	return fallback
}
