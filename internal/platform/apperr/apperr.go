// Copyright (c) 2026 Newsroom. All rights reserved.

/*
Package apperr defines the centralized error handling framework for Newsroom.

It provides a rich error type that bridges the gap between low-level Storage
errors and high-level HTTP responses.

Architecture:

  - AppError: A struct containing a machine-readable ErrorCode and a client-safe message.
  - Vocabulary: The set of client-facing messages is fixed per endpoint contract
    and asserted verbatim by the endpoint tests.
  - Mapping: Explicit mapping from AppError to standard HTTP Status Codes.

Every error that leaves the service layer should be wrapped as an [AppError] to ensure
consistent API responses.
*/
package apperr

import (
	"errors"
	"net/http"
)

// AppError is the canonical error type for the Newsroom API.
//
// It carries an HTTP status code, a machine-readable code, a client-safe
// message, and an optional slice of field-level validation failures.
//
// # Security
//
// The Cause and Details fields are for server-side logging only and are never
// sent to clients to avoid leaking internal implementation details (e.g., SQL
// queries or driver messages).
type AppError struct {
	// Code is a machine-readable error identifier (e.g. "NOT_FOUND").
	Code string
	// Message is the human-readable string emitted as the "msg" field.
	Message string
	// HTTPStatus is the HTTP response status code.
	HTTPStatus int
	// Cause is the underlying error, used for server-side logging only.
	Cause error
	// Details holds per-field validation failures for server-side logging.
	Details []FieldError
}

// FieldError represents a single field-level validation failure.
type FieldError struct {
	Field   string
	Message string
}

// Error implements the error interface. It returns the client-safe message.
func (e *AppError) Error() string { return e.Message }

// Unwrap allows [errors.Is] and [errors.As] to traverse the cause chain.
func (e *AppError) Unwrap() error { return e.Cause }

// # Client Errors (4xx)

// NotFound creates the 404 [AppError] used whenever a referenced entity is
// absent. The message is always the literal "Not Found".
func NotFound() *AppError {
	return &AppError{
		Code:       "NOT_FOUND",
		Message:    "Not Found",
		HTTPStatus: http.StatusNotFound,
	}
}

// PathNotFound creates the 404 [AppError] for unmatched routes.
func PathNotFound() *AppError {
	return &AppError{
		Code:       "PATH_NOT_FOUND",
		Message:    "Path not found",
		HTTPStatus: http.StatusNotFound,
	}
}

// BadRequest creates the generic 400 [AppError] for malformed identifiers,
// bodies, and constraint violations.
func BadRequest() *AppError {
	return &AppError{
		Code:       "BAD_REQUEST",
		Message:    "Bad Request",
		HTTPStatus: http.StatusBadRequest,
	}
}

// MethodNotAllowed creates the 405 [AppError] for known paths hit with an
// unsupported verb.
func MethodNotAllowed() *AppError {
	return &AppError{
		Code:       "METHOD_NOT_ALLOWED",
		Message:    "Method Not Allowed",
		HTTPStatus: http.StatusMethodNotAllowed,
	}
}

// ValidationError creates a 400 [AppError] carrying per-field failures for
// server-side logging. The client still only ever sees "Bad Request".
func ValidationError(details ...FieldError) *AppError {
	return &AppError{
		Code:       "VALIDATION_ERROR",
		Message:    "Bad Request",
		HTTPStatus: http.StatusBadRequest,
		Details:    details,
	}
}

// # List Query Errors (4xx)
//
// Each list-endpoint query parameter failure has its own fixed message.

// InvalidSortQuery rejects a sort_by value outside the allow-list.
func InvalidSortQuery() *AppError {
	return &AppError{
		Code:       "INVALID_SORT_QUERY",
		Message:    "Invalid Sort Query",
		HTTPStatus: http.StatusBadRequest,
	}
}

// InvalidOrderQuery rejects an order value other than "asc" or "desc".
func InvalidOrderQuery() *AppError {
	return &AppError{
		Code:       "INVALID_ORDER_QUERY",
		Message:    "Invalid Order Query",
		HTTPStatus: http.StatusBadRequest,
	}
}

// InvalidLimit rejects a non-numeric limit query parameter.
func InvalidLimit() *AppError {
	return &AppError{
		Code:       "INVALID_LIMIT",
		Message:    "Invalid Limit",
		HTTPStatus: http.StatusBadRequest,
	}
}

// InvalidPage rejects a non-numeric p query parameter.
func InvalidPage() *AppError {
	return &AppError{
		Code:       "INVALID_PAGE",
		Message:    "Invalid Page",
		HTTPStatus: http.StatusBadRequest,
	}
}

// # Server Errors (5xx)

// Internal creates a 500 [AppError] wrapping an unexpected server-side error.
// The cause is stored for logging but is never sent to the client.
func Internal(cause error) *AppError {
	return &AppError{
		Code:       "INTERNAL_ERROR",
		Message:    "Internal Server Error",
		HTTPStatus: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// # Helpers

// IsAppError reports whether err (or any error in its chain) is an [*AppError].
func IsAppError(err error) bool {
	var ae *AppError
	return errors.As(err, &ae)
}

// As extracts the [*AppError] from err's chain. It returns nil if not found.
func As(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}
