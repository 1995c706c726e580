package errors

import (
	stderrors "errors"
	"fmt"
)

// Application error types organized by category for better error handling

type ErrorType int

// Domain/Business Logic Errors - errors related to user input and verification rules
const (
	ErrorTypeUnknown ErrorType = iota
	ErrorTypeInvalidInput
	ErrorTypeNotFound
	ErrorTypeCodeMismatch

	// Infrastructure Errors - errors related to external systems and services
	ErrorTypeDatabase
	ErrorTypeCache
	ErrorTypeDeliveryFailed

	// System/Configuration Errors - errors related to system setup and configuration
	ErrorTypeConfiguration
	ErrorTypeConfigurationMissing
)

// String returns the string representation of error type
func (e ErrorType) String() string {
	switch e {
	case ErrorTypeInvalidInput:
		return "INVALID_INPUT"
	case ErrorTypeNotFound:
		return "NOT_FOUND"
	case ErrorTypeCodeMismatch:
		return "CODE_MISMATCH"
	case ErrorTypeDatabase:
		return "DATABASE_ERROR"
	case ErrorTypeCache:
		return "CACHE_ERROR"
	case ErrorTypeDeliveryFailed:
		return "DELIVERY_FAILED"
	case ErrorTypeConfiguration:
		return "CONFIGURATION_ERROR"
	case ErrorTypeConfigurationMissing:
		return "CONFIGURATION_MISSING"
	default:
		return "UNKNOWN_ERROR"
	}
}

// AppError is the error value carried across layers. Reason holds a
// provider-assigned code (for example an SES error code) when one exists.
type AppError struct {
	Type    ErrorType
	Message string
	Reason  string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type.String(), e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type.String(), e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func New(errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
	}
}

func Wrap(errorType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

// Domain/Business Logic Error Constructors
func NewInvalidInputError(message string) *AppError {
	return New(ErrorTypeInvalidInput, message)
}

func NewNotFoundError(message string) *AppError {
	return New(ErrorTypeNotFound, message)
}

func NewCodeMismatchError(message string) *AppError {
	return New(ErrorTypeCodeMismatch, message)
}

// Infrastructure Error Constructors
func NewDatabaseError(message string, cause error) *AppError {
	return Wrap(ErrorTypeDatabase, message, cause)
}

func NewCacheError(message string, cause error) *AppError {
	return Wrap(ErrorTypeCache, message, cause)
}

func NewDeliveryFailedError(message, reason string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeDeliveryFailed,
		Message: message,
		Reason:  reason,
		Cause:   cause,
	}
}

// System/Configuration Error Constructors
func NewConfigurationError(message string, cause error) *AppError {
	return Wrap(ErrorTypeConfiguration, message, cause)
}

func NewConfigurationMissingError(message string) *AppError {
	return New(ErrorTypeConfigurationMissing, message)
}

// TypeOf returns the type of the first AppError in err's chain.
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrorTypeUnknown
}

// Helper functions for error type checking
func IsInvalidInputError(err error) bool {
	return TypeOf(err) == ErrorTypeInvalidInput
}

func IsNotFoundError(err error) bool {
	return TypeOf(err) == ErrorTypeNotFound
}

func IsCodeMismatchError(err error) bool {
	return TypeOf(err) == ErrorTypeCodeMismatch
}

func IsDeliveryFailedError(err error) bool {
	return TypeOf(err) == ErrorTypeDeliveryFailed
}

func IsConfigurationError(err error) bool {
	t := TypeOf(err)
	return t == ErrorTypeConfiguration || t == ErrorTypeConfigurationMissing
}
