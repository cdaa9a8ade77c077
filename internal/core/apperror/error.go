// Package apperror provides structured error handling for the storefront API.
// All business errors must use AppError so the envelope layer can produce
// consistent responses.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes
const (
	// Infrastructure errors
	CodeUnexpected  = "UNEXPECTED_ERROR"
	CodePersistence = "PERSISTENCE_ERROR"

	// Validation errors
	CodeValidation = "VALIDATION_ERROR"

	// Domain errors
	CodeCustomerNotFound = "CUSTOMER_NOT_FOUND"
	CodeMissingCurrency  = "MISSING_CURRENCY"
	CodeConfiguration    = "CONFIGURATION_ERROR"
	CodeNotEditable      = "DOCUMENT_NOT_EDITABLE"

	// Authorization errors
	CodeUnauthorized = "UNAUTHORIZED"
	CodePermission   = "PERMISSION_DENIED"

	// Not found
	CodeNotFound = "NOT_FOUND"
)

// AppError is the standard error type for the service.
// It implements the error interface and carries structured details.
type AppError struct {
	// Code is a machine-readable error identifier
	Code string `json:"code"`

	// Message is a human-readable error description
	Message string `json:"message"`

	// Details contains additional context (field names, ids, etc.)
	Details map[string]any `json:"details,omitempty"`

	// HTTPStatus is the suggested HTTP status code
	HTTPStatus int `json:"-"`

	// Err is the underlying error (never exposed to clients)
	Err error `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *AppError) Unwrap() error {
	return e.Err
}

// WithDetail adds a key-value pair to error details.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithCause sets the underlying error.
func (e *AppError) WithCause(err error) *AppError {
	e.Err = err
	return e
}

// --- Factory functions ---

// NewValidation creates a validation error.
func NewValidation(message string) *AppError {
	return &AppError{
		Code:       CodeValidation,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NewNotFound creates a not found error.
func NewNotFound(entity string, key any) *AppError {
	return &AppError{
		Code:       CodeNotFound,
		Message:    fmt.Sprintf("%s not found", entity),
		HTTPStatus: http.StatusNotFound,
		Details:    map[string]any{"entity": entity, "id": key},
	}
}

// NewCustomerNotFound is returned when the session user has no linked customer.
// The user-customer link is the single authorization anchor for quotation
// create/update, so this failure aborts assembly before anything is persisted.
func NewCustomerNotFound(user string) *AppError {
	return &AppError{
		Code:       CodeCustomerNotFound,
		Message:    "Customer not found for the current user session",
		HTTPStatus: http.StatusInternalServerError,
		Details:    map[string]any{"user": user},
	}
}

// NewMissingCurrency is returned when a quotation still has no currency after
// defaulting. Should be unreachable while a default currency is configured.
func NewMissingCurrency() *AppError {
	return &AppError{
		Code:       CodeMissingCurrency,
		Message:    "Currency is missing for the quotation",
		HTTPStatus: http.StatusInternalServerError,
	}
}

// NewConfiguration marks a missing required setting (e.g. the storefront
// price list). Surfaced as a user-facing failure, never silently defaulted.
func NewConfiguration(message string) *AppError {
	return &AppError{
		Code:       CodeConfiguration,
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
	}
}

// NewNotEditable is returned when a submitted or cancelled quotation is
// modified.
func NewNotEditable(name string) *AppError {
	return &AppError{
		Code:       CodeNotEditable,
		Message:    "Quotation is no longer editable",
		HTTPStatus: http.StatusUnprocessableEntity,
		Details:    map[string]any{"name": name},
	}
}

// NewPersistence wraps a storage failure.
func NewPersistence(err error) *AppError {
	return &AppError{
		Code:       CodePersistence,
		Message:    "Failed to persist document",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// NewUnexpected creates the catch-all internal error (hides details from client).
func NewUnexpected(err error) *AppError {
	return &AppError{
		Code:       CodeUnexpected,
		Message:    "Internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// NewUnauthorized creates an authentication error.
func NewUnauthorized(message string) *AppError {
	return &AppError{
		Code:       CodeUnauthorized,
		Message:    message,
		HTTPStatus: http.StatusUnauthorized,
	}
}

// NewPermission creates an authorization error with a generic message;
// internals are never exposed to the caller.
func NewPermission(entity string) *AppError {
	return &AppError{
		Code:       CodePermission,
		Message:    fmt.Sprintf("Not permitted for %s", entity),
		HTTPStatus: http.StatusForbidden,
	}
}

// --- Helpers ---

// IsAppError checks if err is an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// AsAppError extracts AppError from the error chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsNotFound checks if err carries CodeNotFound.
func IsNotFound(err error) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code == CodeNotFound
	}
	return false
}

// IsCode checks the error chain for a specific code.
func IsCode(err error, code string) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code == code
	}
	return false
}
