package pkg

import (
	"fmt"
	"os"
	"strings"
)

// AppError is the error shape every HTTP handler returns to clients.
// Code is a stable machine-readable identifier, Message is safe to show,
// and Err keeps the underlying cause for logs without exposing it.
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
}

// HTTPError is the JSON failure envelope written to the response body.
// Detail carries the wrapped cause and is only set when DEBUG_ERRORS
// is enabled.
type HTTPError struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Code    string `json:"code"`
	Detail  string `json:"detail,omitempty"`
}

// DebugErrorsEnabled reports whether DEBUG_ERRORS is set to a truthy
// value. Meant for local debugging only; never enable it where
// responses reach untrusted clients.
func DebugErrorsEnabled() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("DEBUG_ERRORS"))) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// NewDomainErrorSimple builds an AppError with no wrapped cause.
func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return NewDomainError(code, message, nil, httpStatus)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// ToHTTPError strips the internal cause so it never leaks to clients,
// unless DEBUG_ERRORS is enabled.
func (e *AppError) ToHTTPError() HTTPError {
	out := HTTPError{
		Success: false,
		Message: e.Message,
		Code:    e.Code,
	}
	if e.Err != nil && DebugErrorsEnabled() {
		out.Detail = e.Err.Error()
	}
	return out
}
