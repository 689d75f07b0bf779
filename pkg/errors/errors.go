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

	// Topic errors
	ErrUnknownTopic ErrorCode = "UNKNOWN_TOPIC"

	// Console stream errors
	ErrOutput ErrorCode = "OUTPUT"
	ErrInput  ErrorCode = "INPUT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// FileSystem errors
	ErrFileWrite ErrorCode = "FILE_WRITE"
)

// HilfsbuchError represents a structured error with code and details
type HilfsbuchError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *HilfsbuchError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *HilfsbuchError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *HilfsbuchError) Is(target error) bool {
	var targetErr *HilfsbuchError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new HilfsbuchError with the given code and message
func New(code ErrorCode, message string) *HilfsbuchError {
	return &HilfsbuchError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new HilfsbuchError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *HilfsbuchError {
	return &HilfsbuchError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a HilfsbuchError
func Wrap(err error, code ErrorCode, message string) *HilfsbuchError {
	if err == nil {
		return nil
	}
	return &HilfsbuchError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *HilfsbuchError {
	if err == nil {
		return nil
	}
	return &HilfsbuchError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *HilfsbuchError) WithDetail(key string, value interface{}) *HilfsbuchError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var hbErr *HilfsbuchError
	if errors.As(err, &hbErr) {
		return hbErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a HilfsbuchError
func GetErrorCode(err error) ErrorCode {
	var hbErr *HilfsbuchError
	if errors.As(err, &hbErr) {
		return hbErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a HilfsbuchError
func GetErrorDetails(err error) map[string]interface{} {
	var hbErr *HilfsbuchError
	if errors.As(err, &hbErr) {
		return hbErr.Details
	}
	return nil
}
