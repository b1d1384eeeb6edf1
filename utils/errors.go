package utils

import (
	"errors"
	"net/http"
)

// Error codes for expected outcomes. Handlers translate these into HTTP
// statuses; anything that is not an AppError is treated as internal.
const (
	CodeValidation = "validation"
	CodeNotFound   = "not_found"
	CodeConflict   = "conflict"
	CodeInternal   = "internal"
)

// AppError is an expected, caller-visible failure.
type AppError struct {
	Code    string
	Message string
}

func (e *AppError) Error() string {
	return e.Code + ": " + e.Message
}

func ValidationError(msg string) *AppError {
	return &AppError{Code: CodeValidation, Message: msg}
}

func NotFoundError(msg string) *AppError {
	return &AppError{Code: CodeNotFound, Message: msg}
}

func ConflictError(msg string) *AppError {
	return &AppError{Code: CodeConflict, Message: msg}
}

func InternalError(msg string) *AppError {
	return &AppError{Code: CodeInternal, Message: msg}
}

// ErrorCode extracts the error code, defaulting to internal.
func ErrorCode(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeInternal
}

// HTTPStatus maps an error to the HTTP status handlers should respond with.
func HTTPStatus(err error) int {
	switch ErrorCode(err) {
	case CodeValidation:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
