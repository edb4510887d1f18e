package validation

import (
	"strings"
	"testing"

	"duke/internal/config"
)

func TestValidator_IsNonEmptyString(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		input    string
		expected bool
	}{
		{"read book", true},
		{"", false},
		{"   ", false},
		{"\t\n", false},
		{" a ", true},
	}

	for _, tt := range tests {
		if got := v.IsNonEmptyString(tt.input); got != tt.expected {
			t.Errorf("IsNonEmptyString(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestValidator_IsValidDescriptionLength(t *testing.T) {
	v := NewValidator()
	if !v.IsValidDescriptionLength(strings.Repeat("a", 255)) {
		t.Error("255 characters should be valid by default")
	}
	if v.IsValidDescriptionLength(strings.Repeat("a", 256)) {
		t.Error("256 characters should be invalid by default")
	}

	cfg := config.NewConfig()
	cfg.Validation.DescriptionMaxLength = 5
	v = NewValidatorWithConfig(cfg)
	if v.IsValidDescriptionLength("abcdef") {
		t.Error("configured maximum should be honoured")
	}
	if !v.IsValidDescriptionLength("  abcde  ") {
		t.Error("length should be measured after trimming")
	}
}

func TestValidator_ContainsDelimiter(t *testing.T) {
	v := NewValidator()
	if !v.ContainsDelimiter("a | b") {
		t.Error("ContainsDelimiter should detect the record delimiter")
	}
	if v.ContainsDelimiter("a / b") {
		t.Error("ContainsDelimiter should ignore other characters")
	}
}

func TestValidator_FindControlCharacter(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		input string
		want  rune
		found bool
	}{
		{"read book", 0, false},
		{"café ☕", 0, false},
		{"a\nb", '\n', true},
		{"a\r\nb", '\r', true},
		{"é\x7f", '\x7f', true},
	}

	for _, tt := range tests {
		got, found := v.FindControlCharacter(tt.input)
		if found != tt.found || got != tt.want {
			t.Errorf("FindControlCharacter(%q) = %q, %v, want %q, %v", tt.input, got, found, tt.want, tt.found)
		}
	}
}

func TestValidator_ParsePositiveInt(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		input  string
		want   int
		wantOK bool
	}{
		{"1", 1, true},
		{" 42 ", 42, true},
		{"0", 0, false},
		{"-3", 0, false},
		{"two", 0, false},
		{"1 2", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, ok := v.ParsePositiveInt(tt.input)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParsePositiveInt(%q) = %d, %v; want %d, %v", tt.input, got, ok, tt.want, tt.wantOK)
		}
	}
}
