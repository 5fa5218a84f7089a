package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error represents a typed portal error with HTTP awareness. Status is the
// HTTP status observed on (or assigned to) the failure; for network errors
// no response exists and Status is zero.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status,omitempty"`
	Err     error  `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// New creates a new Error instance.
func New(code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message}
}

// Wrap attaches context to an existing error.
func Wrap(err error, code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message, Err: err}
}

// Upstream failure taxonomy: a call to the backend either never produced a
// response (network), produced a non-2xx without a readable envelope
// (server), or produced a well-formed error envelope whose message is shown
// to the user verbatim (application).
const (
	CodeNetwork     = "NETWORK_ERROR"
	CodeServer      = "SERVER_ERROR"
	CodeApplication = "APPLICATION_ERROR"
)

// Predefined errors for common scenarios.
var (
	ErrNetwork      = New(CodeNetwork, 0, "network connection error, please check your internet connection")
	ErrValidation   = New("VALIDATION_ERROR", http.StatusBadRequest, "validation failed")
	ErrUnauthorized = New("UNAUTHORIZED", http.StatusUnauthorized, "unauthorized")
	ErrForbidden    = New("FORBIDDEN", http.StatusForbidden, "forbidden")
	ErrNotFound     = New("NOT_FOUND", http.StatusNotFound, "resource not found")
	ErrInternal     = New("INTERNAL_ERROR", http.StatusInternalServerError, "internal server error")
)

// NetworkError marks a transport failure where no response was received.
func NetworkError(err error) *Error {
	return Wrap(err, CodeNetwork, 0, ErrNetwork.Message)
}

// ServerError marks a non-2xx response whose body carried no usable message.
func ServerError(status int) *Error {
	return New(CodeServer, status, fmt.Sprintf("server error: %d", status))
}

// ApplicationError carries the backend-supplied message verbatim.
func ApplicationError(status int, message string) *Error {
	if message == "" {
		message = "an error occurred"
	}
	return New(CodeApplication, status, message)
}

// IsNetwork reports whether err is a transport-level failure.
func IsNetwork(err error) bool {
	e := FromError(err)
	return e != nil && e.Code == CodeNetwork
}

// IsAuth reports whether err is an upstream 401/403.
func IsAuth(err error) bool {
	e := FromError(err)
	return e != nil && (e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden)
}

// FromError normalises any error into an *Error.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(err, ErrInternal.Code, ErrInternal.Status, ErrInternal.Message)
}

// Clone returns a copy of the error allowing for message overrides.
func Clone(err *Error, message string) *Error {
	if err == nil {
		return nil
	}
	clone := *err
	if message != "" {
		clone.Message = message
	}
	return &clone
}
