package apperrors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// AppError is the application error type. Services return it (or a wrapped
// plain error) and the HTTP layer maps it onto a status code and the
// {"error": message} body the API speaks.
type AppError struct {
	Code     ErrorCode
	Message  string
	Err      error
	HTTPCode int
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New is the base constructor.
func New(code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: httpCode,
	}
}

// Wrap attaches an underlying error to a new AppError.
func Wrap(err error, code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

// Is is a thin wrapper over the standard errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As is a thin wrapper over the standard errors.As.
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// --- Common factories ---

// InternalError wraps an unknown system error.
func InternalError(err error) *AppError {
	msg := "Internal server error"
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}
	return Wrap(err, CodeInternalError, msg, http.StatusInternalServerError)
}

// NewValidationError creates a 400 for a malformed or invalid request body.
func NewValidationError(message string) *AppError {
	return New(CodeValidationFailed, message, http.StatusBadRequest)
}

// NewUnauthorizedError creates a 401.
func NewUnauthorizedError(message string) *AppError {
	return New(CodeUnauthorized, message, http.StatusUnauthorized)
}

// NewNotFoundError creates a 404.
func NewNotFoundError(message string) *AppError {
	return New(CodeNotFound, message, http.StatusNotFound)
}

// NewConflictError creates a 409.
func NewConflictError(message string) *AppError {
	return New(CodeConflict, message, http.StatusConflict)
}

// NewBadRequestError creates a generic 400.
func NewBadRequestError(message string) *AppError {
	return New(CodeValidationFailed, message, http.StatusBadRequest)
}

// NewExternalServiceError wraps a failure of an upstream dependency.
func NewExternalServiceError(err error, message string) *AppError {
	return Wrap(err, CodeExternalServiceError, message, http.StatusInternalServerError)
}
