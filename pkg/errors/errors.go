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
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Header parsing errors. Both are expected per-file outcomes: the
	// batch records them against the file and keeps going.
	ErrMissingIncludeGuard ErrorCode = "MISSING_INCLUDE_GUARD"
	ErrMissingIncludeRoot  ErrorCode = "MISSING_INCLUDE_ROOT"

	// FileSystem errors
	ErrFileRead  ErrorCode = "FILE_READ"
	ErrFileWrite ErrorCode = "FILE_WRITE"
	ErrScan      ErrorCode = "SCAN"
)

// AliasError represents a structured error with code and details
type AliasError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *AliasError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *AliasError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *AliasError) Is(target error) bool {
	var targetErr *AliasError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new AliasError with the given code and message
func New(code ErrorCode, message string) *AliasError {
	return &AliasError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new AliasError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *AliasError {
	return &AliasError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an AliasError
func Wrap(err error, code ErrorCode, message string) *AliasError {
	if err == nil {
		return nil
	}
	return &AliasError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *AliasError {
	if err == nil {
		return nil
	}
	return &AliasError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *AliasError) WithDetail(key string, value interface{}) *AliasError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var aliasErr *AliasError
	if errors.As(err, &aliasErr) {
		return aliasErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an AliasError
func GetErrorCode(err error) ErrorCode {
	var aliasErr *AliasError
	if errors.As(err, &aliasErr) {
		return aliasErr.Code
	}
	return ErrUnknown
}
