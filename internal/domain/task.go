package domain

import (
	"fmt"

	apperrors "duke/internal/errors"
	"duke/internal/validation"
)

// Kind tags the task variant. The value doubles as the display glyph and the
// persisted type tag.
type Kind string

const (
	KindToDo     Kind = "T"
	KindDeadline Kind = "D"
	KindEvent    Kind = "E"
)

// Task represents one trackable item of work.
// DueAt is only set for deadlines, StartAt and EndAt only for events.
type Task struct {
	Kind        Kind
	Description string
	Done        bool
	DueAt       Moment
	StartAt     Moment
	EndAt       Moment
}

var descriptionValidator = validation.NewValidator()

// NewToDo creates a to-do with the given description.
func NewToDo(description string) (*Task, error) {
	description, err := checkDescription(description)
	if err != nil {
		return nil, err
	}
	return &Task{Kind: KindToDo, Description: description}, nil
}

// NewDeadline creates a task that is due at dueAt.
func NewDeadline(description string, dueAt Moment) (*Task, error) {
	description, err := checkDescription(description)
	if err != nil {
		return nil, err
	}
	if dueAt.IsZero() {
		return nil, apperrors.NewValidationError("a deadline needs a due date", nil)
	}
	return &Task{Kind: KindDeadline, Description: description, DueAt: dueAt}, nil
}

// NewEvent creates a task spanning startAt to endAt. The order of the two is
// not checked.
func NewEvent(description string, startAt, endAt Moment) (*Task, error) {
	description, err := checkDescription(description)
	if err != nil {
		return nil, err
	}
	if startAt.IsZero() || endAt.IsZero() {
		return nil, apperrors.NewValidationError("an event needs a start and an end", nil)
	}
	return &Task{Kind: KindEvent, Description: description, StartAt: startAt, EndAt: endAt}, nil
}

// NewDeadlineFromString parses dueAt before creating the deadline.
func NewDeadlineFromString(description, dueAt string) (*Task, error) {
	due, err := ParseMoment(dueAt)
	if err != nil {
		return nil, err
	}
	return NewDeadline(description, due)
}

// NewEventFromStrings parses both moments before creating the event.
func NewEventFromStrings(description, startAt, endAt string) (*Task, error) {
	start, err := ParseMoment(startAt)
	if err != nil {
		return nil, err
	}
	end, err := ParseMoment(endAt)
	if err != nil {
		return nil, err
	}
	return NewEvent(description, start, end)
}

func checkDescription(description string) (string, error) {
	trimmed := descriptionValidator.TrimAndValidateString(description)
	if !descriptionValidator.IsNonEmptyString(trimmed) {
		return "", apperrors.NewValidationError("the description of a task cannot be empty", nil)
	}
	if descriptionValidator.ContainsDelimiter(trimmed) {
		return "", apperrors.NewValidationError(
			fmt.Sprintf("the description of a task cannot contain %q", validation.RecordDelimiter), nil,
		)
	}
	if r, found := descriptionValidator.FindControlCharacter(trimmed); found {
		return "", apperrors.NewValidationError(
			fmt.Sprintf("the description of a task cannot contain %q", string(r)), nil,
		)
	}
	return trimmed, nil
}

// IsDone reports whether the task has been completed.
func (t *Task) IsDone() bool {
	return t.Done
}

// MarkDone completes the task. Marking a completed task again does nothing.
func (t *Task) MarkDone() {
	t.Done = true
}

// StatusIcon returns "X" for a completed task and a space otherwise.
func (t *Task) StatusIcon() string {
	if t.Done {
		return "X"
	}
	return " "
}

// String renders the task for display, e.g. "[D][ ] submit essay (by: Dec 1 2019)".
func (t *Task) String() string {
	head := fmt.Sprintf("[%s][%s] %s", t.Kind, t.StatusIcon(), t.Description)
	switch t.Kind {
	case KindDeadline:
		return fmt.Sprintf("%s (by: %s)", head, t.DueAt)
	case KindEvent:
		return fmt.Sprintf("%s (at: %s - %s)", head, t.StartAt, t.EndAt)
	default:
		return head
	}
}
