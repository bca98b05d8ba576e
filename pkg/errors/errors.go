package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Configuration errors: a bad derive spec or option set. Raised at
	// registration time, always fatal, never absorbed by safe mode.
	ErrConfigLoad    ErrorCode = "CONFIG_LOAD"
	ErrConfigInvalid ErrorCode = "CONFIG_INVALID"

	// Render errors: a per-type renderer failed during an inspect call.
	// Recoverable when the call runs in safe mode.
	ErrRenderFailure ErrorCode = "RENDER_FAILURE"

	// Input decoding errors (CLI only)
	ErrDecodeFailure ErrorCode = "DECODE_FAILURE"
)

// InspectError represents a structured error with code and details
type InspectError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *InspectError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *InspectError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *InspectError) Is(target error) bool {
	var targetErr *InspectError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new InspectError with the given code and message
func New(code ErrorCode, message string) *InspectError {
	return &InspectError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new InspectError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *InspectError {
	return &InspectError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an InspectError
func Wrap(err error, code ErrorCode, message string) *InspectError {
	if err == nil {
		return nil
	}
	return &InspectError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *InspectError {
	if err == nil {
		return nil
	}
	return &InspectError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *InspectError) WithDetail(key string, value interface{}) *InspectError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// Detail returns a detail by key, or nil when absent
func (e *InspectError) Detail(key string) interface{} {
	if e.Details == nil {
		return nil
	}
	return e.Details[key]
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var inspErr *InspectError
	if errors.As(err, &inspErr) {
		return inspErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an InspectError
func GetErrorCode(err error) ErrorCode {
	var inspErr *InspectError
	if errors.As(err, &inspErr) {
		return inspErr.Code
	}
	return ErrUnknown
}

// AsInspectError returns the underlying *InspectError when err carries one
func AsInspectError(err error) (*InspectError, bool) {
	var inspErr *InspectError
	if errors.As(err, &inspErr) {
		return inspErr, true
	}
	return nil, false
}
