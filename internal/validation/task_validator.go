package validation

import (
	"duke/internal/config"
)

// TaskValidator provides validation for task descriptions and task numbers
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// NewTaskValidatorWithConfig creates a task validator that honours configured limits
func NewTaskValidatorWithConfig(cfg *config.Config) *TaskValidator {
	return &TaskValidator{
		validator: NewValidatorWithConfig(cfg),
	}
}

// ValidateDescription validates a task description
func (tv *TaskValidator) ValidateDescription(description string) error {
	validationError := NewValidationError()

	trimmed := tv.validator.TrimAndValidateString(description)

	if !tv.validator.IsNonEmptyString(trimmed) {
		validationError.AddRequiredError("description")
		return validationError
	}

	if !tv.validator.IsValidDescriptionLength(trimmed) {
		validationError.AddInvalidLengthError("description", trimmed, tv.validator.getDescriptionMaxLength())
	}

	if tv.validator.ContainsDelimiter(trimmed) {
		validationError.AddInvalidCharacterError("description", trimmed, RecordDelimiter)
	}

	if r, found := tv.validator.FindControlCharacter(trimmed); found {
		validationError.AddInvalidCharacterError("description", trimmed, string(r))
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// GetValidDescription returns a trimmed description if valid
func (tv *TaskValidator) GetValidDescription(description string) (string, error) {
	if err := tv.ValidateDescription(description); err != nil {
		return "", err
	}
	return tv.validator.TrimAndValidateString(description), nil
}

// ValidateTaskNumber parses the task number typed after done/delete
func (tv *TaskValidator) ValidateTaskNumber(raw string) (int, error) {
	trimmed := tv.validator.TrimAndValidateString(raw)
	if trimmed == "" {
		validationError := NewValidationError()
		validationError.AddRequiredError("task number")
		return 0, validationError
	}

	n, ok := tv.validator.ParsePositiveInt(trimmed)
	if !ok {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("task number", trimmed, "must be a positive whole number")
		return 0, validationError
	}
	return n, nil
}
