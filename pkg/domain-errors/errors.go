// Package domainerrors provides coded errors for the service layer. Handlers
// translate codes into HTTP status and response envelopes; services translate
// infrastructure sentinels (pkg/platform/sentinel) into these.
package domainerrors

import (
	"errors"
	"net/http"
)

// Code identifies the class of a domain error on the wire.
type Code string

const (
	CodeBadRequest           Code = "bad_request"
	CodeValidation           Code = "validation_failed"
	CodeUnauthorized         Code = "unauthorized"
	CodeNotFound             Code = "not_found"
	CodeDuplicate            Code = "duplicate"
	CodeReferenceUnavailable Code = "reference_unavailable"
	CodeInternal             Code = "internal_error"
)

// Error is a domain error carrying a stable code and a human-readable message.
type Error struct {
	Code    Code
	Message string
	Wrapped error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return string(e.Code)
}

func (e *Error) Unwrap() error {
	return e.Wrapped
}

// New constructs a domain error with the given code and message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap constructs a domain error that preserves the underlying cause for
// errors.Is/errors.As while exposing a clean message to callers.
func Wrap(code Code, message string, err error) *Error {
	return &Error{Code: code, Message: message, Wrapped: err}
}

// CodeOf extracts the domain error code, defaulting to CodeInternal for
// unclassified errors.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// MessageOf extracts the domain error message, empty for unclassified errors
// so internals never leak to clients.
func MessageOf(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Message
	}
	return ""
}

// ToHTTPStatus maps a domain error code to an HTTP status code.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeBadRequest, CodeValidation:
		return http.StatusBadRequest
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeNotFound:
		return http.StatusNotFound
	case CodeDuplicate:
		return http.StatusConflict
	case CodeReferenceUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
