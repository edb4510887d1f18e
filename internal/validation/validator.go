package validation

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"duke/internal/config"
)

// RecordDelimiter separates fields of a persisted record and so cannot appear
// inside a description.
const RecordDelimiter = "|"

// Validator provides common validation utilities
type Validator struct {
	config *config.Config
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		config: nil, // Use defaults
	}
}

// NewValidatorWithConfig creates a new validator instance with configuration
func NewValidatorWithConfig(cfg *config.Config) *Validator {
	return &Validator{
		config: cfg,
	}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidDescriptionLength checks the trimmed description against the configured maximum
func (v *Validator) IsValidDescriptionLength(s string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(s)) <= v.getDescriptionMaxLength()
}

// ContainsDelimiter reports whether s would break the persisted record format
func (v *Validator) ContainsDelimiter(s string) bool {
	return strings.Contains(s, RecordDelimiter)
}

// FindControlCharacter returns the first control character in s, such as a
// line break that would split a persisted record
func (v *Validator) FindControlCharacter(s string) (rune, bool) {
	i := strings.IndexFunc(s, unicode.IsControl)
	if i < 0 {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return r, true
}

// ParsePositiveInt parses a strictly positive base-10 integer
func (v *Validator) ParsePositiveInt(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}

// getDescriptionMaxLength returns configured maximum description length or default
func (v *Validator) getDescriptionMaxLength() int {
	if v.config != nil {
		return v.config.Validation.DescriptionMaxLength
	}
	return 255 // Default maximum
}
