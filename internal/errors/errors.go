package errors

import (
	"errors"
	"fmt"
)

// NewUnknownCommandError creates an error for an unrecognised command keyword
func NewUnknownCommandError(keyword string) *AppError {
	message := fmt.Sprintf("I'm sorry, but I don't know what %q means", keyword)
	if keyword == "" {
		message = "I'm sorry, but you didn't give me a command"
	}
	return &AppError{
		Type:    ErrorTypeUnknownCommand,
		Message: message,
		Code:    "UNKNOWN_COMMAND",
		Context: map[string]interface{}{
			"keyword": keyword,
		},
	}
}

// NewValidationError creates a new validation error
func NewValidationError(message string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: message,
		Code:    "VALIDATION_FAILED",
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// NewOutOfRangeError creates an error for a task number outside 1..size
func NewOutOfRangeError(number, size int) *AppError {
	message := fmt.Sprintf("task %d does not exist, the list has %d tasks", number, size)
	if size == 0 {
		message = fmt.Sprintf("task %d does not exist, the list is empty", number)
	}
	return &AppError{
		Type:    ErrorTypeOutOfRange,
		Message: message,
		Code:    "OUT_OF_RANGE",
		Context: map[string]interface{}{
			"number": number,
			"size":   size,
		},
	}
}

// NewCorruptRecordError creates an error for an unreadable persisted line
func NewCorruptRecordError(lineNumber int, line string, reason string) *AppError {
	return &AppError{
		Type:    ErrorTypeCorruptRecord,
		Message: fmt.Sprintf("corrupt record on line %d: %s", lineNumber, reason),
		Code:    "CORRUPT_RECORD",
		Context: map[string]interface{}{
			"line_number": lineNumber,
			"line":        line,
			"reason":      reason,
		},
	}
}

// NewPersistenceError creates an error for a read or write failure at the storage boundary
func NewPersistenceError(operation string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypePersistence,
		Message: fmt.Sprintf("storage operation failed: %s", operation),
		Code:    "PERSISTENCE_ERROR",
		Cause:   cause,
		Context: map[string]interface{}{
			"operation": operation,
		},
	}
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsErrorType checks if the error is of the specified type
func IsErrorType(err error, errorType ErrorType) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.IsType(errorType)
	}
	return false
}

// GetUserMessage returns a user-friendly error message
func GetUserMessage(err error) string {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeUnknownCommand, ErrorTypeValidation, ErrorTypeOutOfRange:
			return appErr.Message
		case ErrorTypeCorruptRecord:
			return "Some saved tasks could not be read."
		case ErrorTypePersistence:
			return "Seems like there was a problem saving your updated list!"
		default:
			return "An unexpected error occurred. Please try again."
		}
	}
	return err.Error()
}

// GetErrorCode returns the error code for the error
func GetErrorCode(err error) string {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return "UNKNOWN_ERROR"
}

// ShouldLogError determines if an error should be logged based on its type
func ShouldLogError(err error) bool {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeUnknownCommand, ErrorTypeValidation, ErrorTypeOutOfRange:
			return false // user errors
		case ErrorTypeCorruptRecord, ErrorTypePersistence:
			return true
		default:
			return true
		}
	}
	return true
}
