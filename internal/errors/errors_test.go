package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNewUnknownCommandError(t *testing.T) {
	err := NewUnknownCommandError("blah")

	if err.Type != ErrorTypeUnknownCommand {
		t.Errorf("NewUnknownCommandError type = %v, want %v", err.Type, ErrorTypeUnknownCommand)
	}
	if err.Message != `I'm sorry, but I don't know what "blah" means` {
		t.Errorf("NewUnknownCommandError message = %v", err.Message)
	}
	if err.Code != "UNKNOWN_COMMAND" {
		t.Errorf("NewUnknownCommandError code = %v, want %v", err.Code, "UNKNOWN_COMMAND")
	}

	keyword, ok := err.Context["keyword"]
	if !ok || keyword != "blah" {
		t.Errorf("NewUnknownCommandError should set keyword context")
	}

	empty := NewUnknownCommandError("")
	if empty.Message != "I'm sorry, but you didn't give me a command" {
		t.Errorf("NewUnknownCommandError(\"\") message = %v", empty.Message)
	}
}

func TestNewValidationError(t *testing.T) {
	cause := errors.New("field is required")
	err := NewValidationError("validation failed", cause)

	if err.Type != ErrorTypeValidation {
		t.Errorf("NewValidationError type = %v, want %v", err.Type, ErrorTypeValidation)
	}
	if err.Message != "validation failed" {
		t.Errorf("NewValidationError message = %v, want %v", err.Message, "validation failed")
	}
	if err.Code != "VALIDATION_FAILED" {
		t.Errorf("NewValidationError code = %v, want %v", err.Code, "VALIDATION_FAILED")
	}
	if err.Cause != cause {
		t.Errorf("NewValidationError cause = %v, want %v", err.Cause, cause)
	}
}

func TestNewOutOfRangeError(t *testing.T) {
	err := NewOutOfRangeError(5, 3)

	if err.Type != ErrorTypeOutOfRange {
		t.Errorf("NewOutOfRangeError type = %v, want %v", err.Type, ErrorTypeOutOfRange)
	}
	if err.Message != "task 5 does not exist, the list has 3 tasks" {
		t.Errorf("NewOutOfRangeError message = %v", err.Message)
	}

	number, ok := err.Context["number"]
	if !ok || number != 5 {
		t.Errorf("NewOutOfRangeError should set number context")
	}

	empty := NewOutOfRangeError(1, 0)
	if empty.Message != "task 1 does not exist, the list is empty" {
		t.Errorf("NewOutOfRangeError(1, 0) message = %v", empty.Message)
	}
}

func TestNewCorruptRecordError(t *testing.T) {
	err := NewCorruptRecordError(4, "X | 0 | nope", "unknown type tag")

	if err.Type != ErrorTypeCorruptRecord {
		t.Errorf("NewCorruptRecordError type = %v, want %v", err.Type, ErrorTypeCorruptRecord)
	}
	if err.Message != "corrupt record on line 4: unknown type tag" {
		t.Errorf("NewCorruptRecordError message = %v", err.Message)
	}
	line, ok := err.Context["line"]
	if !ok || line != "X | 0 | nope" {
		t.Errorf("NewCorruptRecordError should set line context")
	}
}

func TestNewPersistenceError(t *testing.T) {
	cause := errors.New("permission denied")
	err := NewPersistenceError("write tasks", cause)

	if err.Type != ErrorTypePersistence {
		t.Errorf("NewPersistenceError type = %v, want %v", err.Type, ErrorTypePersistence)
	}
	if err.Message != "storage operation failed: write tasks" {
		t.Errorf("NewPersistenceError message = %v", err.Message)
	}
	if err.Cause != cause {
		t.Errorf("NewPersistenceError cause = %v, want %v", err.Cause, cause)
	}
}

func TestAsAppError(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", NewValidationError("inner", nil))

	appErr, ok := AsAppError(wrapped)
	if !ok {
		t.Fatal("AsAppError should unwrap a wrapped AppError")
	}
	if appErr.Message != "inner" {
		t.Errorf("AsAppError message = %v, want inner", appErr.Message)
	}

	if _, ok := AsAppError(errors.New("plain")); ok {
		t.Error("AsAppError should reject a plain error")
	}
	if IsAppError(errors.New("plain")) {
		t.Error("IsAppError should reject a plain error")
	}
}

func TestIsErrorType(t *testing.T) {
	err := fmt.Errorf("complete: %w", NewOutOfRangeError(0, 2))

	if !IsErrorType(err, ErrorTypeOutOfRange) {
		t.Error("IsErrorType should match out of range")
	}
	if IsErrorType(err, ErrorTypeValidation) {
		t.Error("IsErrorType should not match validation")
	}
	if IsErrorType(errors.New("plain"), ErrorTypeValidation) {
		t.Error("IsErrorType should not match a plain error")
	}
}

func TestGetUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"Unknown command", NewUnknownCommandError("foo"), `I'm sorry, but I don't know what "foo" means`},
		{"Validation", NewValidationError("description empty", nil), "description empty"},
		{"Out of range", NewOutOfRangeError(2, 1), "task 2 does not exist, the list has 1 tasks"},
		{"Corrupt record", NewCorruptRecordError(1, "?", "bad"), "Some saved tasks could not be read."},
		{"Persistence", NewPersistenceError("write", errors.New("x")), "Seems like there was a problem saving your updated list!"},
		{"Unknown type", &AppError{Type: ErrorType(42)}, "An unexpected error occurred. Please try again."},
		{"Plain error", errors.New("plain"), "plain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetUserMessage(tt.err); got != tt.expected {
				t.Errorf("GetUserMessage() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	if code := GetErrorCode(NewOutOfRangeError(1, 0)); code != "OUT_OF_RANGE" {
		t.Errorf("GetErrorCode() = %v, want OUT_OF_RANGE", code)
	}
	if code := GetErrorCode(errors.New("plain")); code != "UNKNOWN_ERROR" {
		t.Errorf("GetErrorCode() = %v, want UNKNOWN_ERROR", code)
	}
}

func TestShouldLogError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"Unknown command", NewUnknownCommandError("x"), false},
		{"Validation", NewValidationError("x", nil), false},
		{"Out of range", NewOutOfRangeError(1, 0), false},
		{"Corrupt record", NewCorruptRecordError(1, "", ""), true},
		{"Persistence", NewPersistenceError("x", nil), true},
		{"Plain", errors.New("x"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShouldLogError(tt.err); got != tt.expected {
				t.Errorf("ShouldLogError() = %v, want %v", got, tt.expected)
			}
		})
	}
}
