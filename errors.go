package rexec

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Error represents a Command Execution API error.
type Error struct {
	Code    string
	Message string
	Status  int
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("rexec: %s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("rexec: %s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches errors by code, so sentinel comparisons with [errors.Is]
// work on errors constructed at call sites.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// Sentinel errors.
var (
	ErrEmptyToken   = &Error{Code: "CONFIG", Message: "access token is empty"}
	ErrPollTimeout  = &Error{Code: "POLL_TIMEOUT", Message: "command did not reach a terminal state in time", Status: 408}
	ErrNotFound     = &Error{Code: "NOT_FOUND", Message: "resource not found", Status: 404}
	ErrTimeout      = &Error{Code: "TIMEOUT", Message: "request timed out", Status: 408}
	ErrUnauthorized = &Error{Code: "UNAUTHORIZED", Message: "invalid credentials", Status: 401}
	ErrBadRequest   = &Error{Code: "BAD_REQUEST", Message: "invalid request", Status: 400}
	ErrInternal     = &Error{Code: "INTERNAL", Message: "internal server error", Status: 500}
)

// newError constructs an *Error.
func newError(code, message string, status int, cause error) *Error {
	return &Error{Code: code, Message: message, Status: status, Cause: cause}
}

// apiError maps a non-success HTTP response to an *Error. The raw body,
// size-capped by the caller, is carried verbatim in the message.
func apiError(status int, body []byte) *Error {
	code := "API_ERROR"
	switch {
	case status == http.StatusBadRequest:
		code = "BAD_REQUEST"
	case status == http.StatusUnauthorized:
		code = "UNAUTHORIZED"
	case status == http.StatusForbidden:
		code = "FORBIDDEN"
	case status == http.StatusNotFound:
		code = "NOT_FOUND"
	case status == http.StatusRequestTimeout:
		code = "TIMEOUT"
	case status >= 500:
		code = "INTERNAL"
	}

	msg := strings.TrimSpace(string(body))
	if msg == "" {
		msg = http.StatusText(status)
	}
	return newError(code, msg, status, nil)
}

// transportError wraps a network-level failure, classifying context
// expiry and cancellation distinctly from other transport faults.
func transportError(err error, message string) *Error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return newError("TIMEOUT", message, 0, err)
	case errors.Is(err, context.Canceled):
		return newError("CANCELLED", message, 0, err)
	default:
		return newError("NETWORK", message, 0, err)
	}
}
