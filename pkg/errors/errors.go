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
	ErrUnknown  ErrorCode = "UNKNOWN"
	ErrInternal ErrorCode = "INTERNAL"

	// Styling errors
	ErrInvalidColor     ErrorCode = "INVALID_COLOR"
	ErrInvalidAttribute ErrorCode = "INVALID_ATTRIBUTE"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Theme errors
	ErrThemeParse        ErrorCode = "THEME_PARSE"
	ErrThemeUnknownStyle ErrorCode = "THEME_UNKNOWN_STYLE"
)

// TermstyleError represents a structured error with code and details
type TermstyleError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *TermstyleError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *TermstyleError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *TermstyleError) Is(target error) bool {
	var targetErr *TermstyleError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new TermstyleError with the given code and message
func New(code ErrorCode, message string) *TermstyleError {
	return &TermstyleError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new TermstyleError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *TermstyleError {
	return &TermstyleError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a TermstyleError
func Wrap(err error, code ErrorCode, message string) *TermstyleError {
	if err == nil {
		return nil
	}
	return &TermstyleError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *TermstyleError {
	if err == nil {
		return nil
	}
	return &TermstyleError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *TermstyleError) WithDetail(key string, value interface{}) *TermstyleError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var tsErr *TermstyleError
	if errors.As(err, &tsErr) {
		return tsErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a TermstyleError
func GetErrorCode(err error) ErrorCode {
	var tsErr *TermstyleError
	if errors.As(err, &tsErr) {
		return tsErr.Code
	}
	return ErrUnknown
}
