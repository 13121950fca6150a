// Package errors provides application-level error types and utilities.
// Every AppError maps onto one HTTP status.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrorTypeValidation   ErrorType = "validation_error"
	ErrorTypeNotFound     ErrorType = "not_found"
	ErrorTypeConflict     ErrorType = "conflict"
	ErrorTypeUnauthorized ErrorType = "unauthorized"
	ErrorTypeForbidden    ErrorType = "forbidden"
	ErrorTypeRateLimited  ErrorType = "rate_limited"
	ErrorTypeInternal     ErrorType = "internal_error"
)

var statusByType = map[ErrorType]int{
	ErrorTypeValidation:   http.StatusBadRequest,
	ErrorTypeNotFound:     http.StatusNotFound,
	ErrorTypeConflict:     http.StatusConflict,
	ErrorTypeUnauthorized: http.StatusUnauthorized,
	ErrorTypeForbidden:    http.StatusForbidden,
	ErrorTypeRateLimited:  http.StatusTooManyRequests,
	ErrorTypeInternal:     http.StatusInternalServerError,
}

// AppError represents an application error with additional context.
// Cause is kept for errors.Is/As but never rendered to clients.
type AppError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Code    int       `json:"code"`
	Details string    `json:"details,omitempty"`
	Cause   error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithCause attaches the underlying error
func (e *AppError) WithCause(err error) *AppError {
	e.Cause = err
	return e
}

// New builds an AppError of the given type; only the first detail is kept.
func New(errType ErrorType, message string, details ...string) *AppError {
	appErr := &AppError{
		Type:    errType,
		Message: message,
		Code:    StatusFor(errType),
	}
	if len(details) > 0 {
		appErr.Details = details[0]
	}
	return appErr
}

func NewValidationError(message string, details ...string) *AppError {
	return New(ErrorTypeValidation, message, details...)
}

func NewNotFoundError(message string, details ...string) *AppError {
	return New(ErrorTypeNotFound, message, details...)
}

func NewConflictError(message string, details ...string) *AppError {
	return New(ErrorTypeConflict, message, details...)
}

func NewUnauthorizedError(message string, details ...string) *AppError {
	return New(ErrorTypeUnauthorized, message, details...)
}

func NewForbiddenError(message string, details ...string) *AppError {
	return New(ErrorTypeForbidden, message, details...)
}

// StatusFor returns the HTTP status of an error type; unknown types are 500.
func StatusFor(errType ErrorType) int {
	if code, ok := statusByType[errType]; ok {
		return code
	}
	return http.StatusInternalServerError
}

// TypeForStatus is the inverse of StatusFor for responses written
// without an AppError, such as middleware rejections.
func TypeForStatus(status int) ErrorType {
	for errType, code := range statusByType {
		if code == status {
			return errType
		}
	}
	if status >= http.StatusInternalServerError {
		return ErrorTypeInternal
	}
	return ErrorTypeValidation
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	return GetAppError(err) != nil
}

// GetAppError extracts AppError from error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

func isType(err error, errType ErrorType) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == errType
}

func IsConflictError(err error) bool     { return isType(err, ErrorTypeConflict) }
func IsNotFoundError(err error) bool     { return isType(err, ErrorTypeNotFound) }
func IsValidationError(err error) bool   { return isType(err, ErrorTypeValidation) }
func IsForbiddenError(err error) bool    { return isType(err, ErrorTypeForbidden) }
func IsUnauthorizedError(err error) bool { return isType(err, ErrorTypeUnauthorized) }

// IsDuplicateError checks if the error chain contains a database duplicate key error
func IsDuplicateError(err error) bool {
	return chainContains(err, "Duplicate entry", "duplicate key", "UNIQUE constraint failed")
}

// IsForeignKeyError checks if the error chain contains a database foreign key violation
func IsForeignKeyError(err error) bool {
	// MySQL 1451/1452, SQLite
	return chainContains(err,
		"foreign key constraint fails",
		"FOREIGN KEY constraint failed",
	)
}

func chainContains(err error, fragments ...string) bool {
	for ; err != nil; err = errors.Unwrap(err) {
		msg := err.Error()
		for _, fragment := range fragments {
			if strings.Contains(msg, fragment) {
				return true
			}
		}
	}
	return false
}
