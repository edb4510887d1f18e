package validation

import (
	"errors"
	"strings"
	"testing"
)

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name        string
		errors      []FieldError
		expectError string
	}{
		{"No errors", []FieldError{}, "validation error"},
		{"Single error", []FieldError{{Field: "description", Message: "is required"}}, "validation error for field 'description': is required"},
		{"Multiple errors", []FieldError{
			{Field: "description", Message: "is required"},
			{Field: "task number", Message: "must be positive"},
		}, "multiple validation errors"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ve := &ValidationError{Errors: tt.errors}
			result := ve.Error()

			if tt.name == "Multiple errors" {
				if !strings.Contains(result, tt.expectError) {
					t.Errorf("ValidationError.Error() = %v, expected to contain %v", result, tt.expectError)
				}
			} else if result != tt.expectError {
				t.Errorf("ValidationError.Error() = %v, expected %v", result, tt.expectError)
			}
		})
	}
}

func TestValidationError_HasErrors(t *testing.T) {
	ve := NewValidationError()
	if ve.HasErrors() {
		t.Error("new ValidationError should have no errors")
	}

	ve.AddRequiredError("description")
	if !ve.HasErrors() {
		t.Error("ValidationError should have errors after AddRequiredError")
	}
}

func TestValidationError_AddHelpers(t *testing.T) {
	tests := []struct {
		name        string
		add         func(ve *ValidationError)
		wantType    ValidationErrorType
		wantMessage string
	}{
		{
			name:        "required",
			add:         func(ve *ValidationError) { ve.AddRequiredError("description") },
			wantType:    ErrorTypeRequired,
			wantMessage: "the description cannot be empty",
		},
		{
			name:        "invalid format",
			add:         func(ve *ValidationError) { ve.AddInvalidFormatError("deadline", "tomorrow", "yyyy-MM-dd") },
			wantType:    ErrorTypeInvalidFormat,
			wantMessage: "the deadline has the wrong format, expected: yyyy-MM-dd",
		},
		{
			name:        "invalid length",
			add:         func(ve *ValidationError) { ve.AddInvalidLengthError("description", "xxx", 2) },
			wantType:    ErrorTypeInvalidLength,
			wantMessage: "the description must be at most 2 characters long",
		},
		{
			name:        "invalid value",
			add:         func(ve *ValidationError) { ve.AddInvalidValueError("task number", "abc", "must be a positive whole number") },
			wantType:    ErrorTypeInvalidValue,
			wantMessage: "the task number must be a positive whole number",
		},
		{
			name:        "invalid character",
			add:         func(ve *ValidationError) { ve.AddInvalidCharacterError("description", "a|b", "|") },
			wantType:    ErrorTypeInvalidCharacter,
			wantMessage: `the description cannot contain "|"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ve := NewValidationError()
			tt.add(ve)

			if len(ve.Errors) != 1 {
				t.Fatalf("expected 1 error, got %d", len(ve.Errors))
			}
			if ve.Errors[0].Type != tt.wantType {
				t.Errorf("type = %v, want %v", ve.Errors[0].Type, tt.wantType)
			}
			if ve.Errors[0].Message != tt.wantMessage {
				t.Errorf("message = %q, want %q", ve.Errors[0].Message, tt.wantMessage)
			}
		})
	}
}

func TestValidationError_GetUserFriendlyMessage(t *testing.T) {
	if msg := NewValidationError().GetUserFriendlyMessage(); msg != "Input validation failed" {
		t.Errorf("empty message = %q", msg)
	}

	ve := NewValidationError()
	ve.AddInvalidLengthError("description", "x", 1)
	ve.AddInvalidCharacterError("description", "x", "|")
	want := `the description must be at most 1 characters long; the description cannot contain "|"`
	if msg := ve.GetUserFriendlyMessage(); msg != want {
		t.Errorf("GetUserFriendlyMessage() = %q, want %q", msg, want)
	}
}

func TestIsValidationError(t *testing.T) {
	if !IsValidationError(NewValidationError()) {
		t.Error("IsValidationError should accept *ValidationError")
	}
	if IsValidationError(errors.New("plain")) {
		t.Error("IsValidationError should reject plain errors")
	}
}
