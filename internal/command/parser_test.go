package command

import (
	"strings"
	"testing"

	"duke/internal/config"
	apperrors "duke/internal/errors"
	"duke/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_Parse(t *testing.T) {
	parser := NewParser(nil)

	tests := []struct {
		name     string
		input    string
		kind     Kind
		rendered string
		number   int
		query    string
	}{
		{name: "todo", input: "todo read book", kind: KindAddToDo, rendered: "[T][ ] read book"},
		{name: "keyword is case insensitive", input: "  TODO   read book  ", kind: KindAddToDo, rendered: "[T][ ] read book"},
		{name: "deadline", input: "deadline submit essay /by 2019-12-01", kind: KindAddDeadline, rendered: "[D][ ] submit essay (by: Dec 1 2019)"},
		{name: "deadline with time", input: "deadline return book /by 2019-12-02 1800", kind: KindAddDeadline, rendered: "[D][ ] return book (by: Dec 2 2019 6:00PM)"},
		{
			name:     "event with dates",
			input:    "event trip /at 2020-01-01-2020-01-05",
			kind:     KindAddEvent,
			rendered: "[E][ ] trip (at: Jan 1 2020 - Jan 5 2020)",
		},
		{
			name:     "event with spaced range",
			input:    "event party /at 2019-12-01 1800 - 2019-12-01 2200",
			kind:     KindAddEvent,
			rendered: "[E][ ] party (at: Dec 1 2019 6:00PM - Dec 1 2019 10:00PM)",
		},
		{
			name:     "event end on same day",
			input:    "event party /at 2019-12-01 1800-2200",
			kind:     KindAddEvent,
			rendered: "[E][ ] party (at: Dec 1 2019 6:00PM - Dec 1 2019 10:00PM)",
		},
		{name: "list", input: "list", kind: KindList},
		{name: "list ignores trailing text", input: "list everything please", kind: KindList},
		{name: "done", input: "done 2", kind: KindComplete, number: 2},
		{name: "delete", input: "Delete 10", kind: KindDelete, number: 10},
		{name: "find", input: "find  book ", kind: KindFind, query: "book"},
		{name: "find empty", input: "find", kind: KindFind, query: ""},
		{name: "save", input: "save", kind: KindSave},
		{name: "help", input: "help me", kind: KindHelp},
		{name: "bye", input: "bye", kind: KindExit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := parser.Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, cmd.Kind)
			assert.Equal(t, tt.number, cmd.Number)
			assert.Equal(t, tt.query, cmd.Query)
			if tt.rendered != "" {
				require.NotNil(t, cmd.Task)
				assert.Equal(t, tt.rendered, cmd.Task.String())
			}
		})
	}
}

func TestParser_ValidationErrors(t *testing.T) {
	parser := NewParser(nil)

	tests := []struct {
		name    string
		input   string
		message string
	}{
		{name: "todo without description", input: "todo   ", message: "description cannot be empty"},
		{name: "todo with delimiter", input: "todo a | b", message: `cannot contain "|"`},
		{name: "todo with line break", input: "todo a\nb", message: `cannot contain "\n"`},
		{name: "todo with carriage return", input: "todo a\r\nb", message: `cannot contain "\r"`},
		{name: "deadline with line break", input: "deadline a\nb /by 2019-12-01", message: `cannot contain "\n"`},
		{name: "event with line break", input: "event a\nb /at 2019-12-01 1800-2200", message: `cannot contain "\n"`},
		{name: "deadline alone", input: "deadline", message: "a deadline needs a description and a due date"},
		{name: "deadline without marker", input: "deadline submit essay", message: "a deadline needs"},
		{name: "deadline without date", input: "deadline submit essay /by  ", message: "a deadline needs"},
		{name: "deadline without description", input: "deadline /by 2019-12-01", message: "a deadline needs"},
		{name: "deadline bad date", input: "deadline essay /by tomorrow", message: "is not a date I understand"},
		{name: "event alone", input: "event", message: "an event needs a description"},
		{name: "deadline splits on first marker", input: "deadline a /by 2019-12-01 /by later", message: "is not a date I understand"},
		{name: "event without range", input: "event party /at 1800", message: "needs both a start and an end"},
		{name: "event date only", input: "event party /at 2019-12-01", message: "wrong format"},
		{name: "event bad range", input: "event party /at monday-tuesday", message: "wrong format"},
		{name: "event clock end needs start clock", input: "event party /at 2019-12-01-2200", message: "wrong format"},
		{name: "done without number", input: "done", message: "the task number cannot be empty"},
		{name: "done with text", input: "done first", message: "positive whole number"},
		{name: "delete zero", input: "delete 0", message: "positive whole number"},
		{name: "delete negative", input: "delete -3", message: "positive whole number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.Parse(tt.input)
			require.Error(t, err)
			assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeValidation), "got %v", err)
			assert.Contains(t, apperrors.GetUserMessage(err), tt.message)
		})
	}
}

func TestParser_UnknownCommand(t *testing.T) {
	parser := NewParser(nil)

	_, err := parser.Parse("blah foo")
	require.Error(t, err)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeUnknownCommand))
	assert.Contains(t, apperrors.GetUserMessage(err), `"blah"`)

	_, err = parser.Parse("   ")
	require.Error(t, err)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeUnknownCommand))
}

func TestParser_DescriptionMaxLength(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Validation.DescriptionMaxLength = 5
	parser := NewParser(validation.NewTaskValidatorWithConfig(cfg))

	_, err := parser.Parse("todo short")
	require.NoError(t, err)

	_, err = parser.Parse("todo " + strings.Repeat("x", 6))
	require.Error(t, err)
	assert.Contains(t, apperrors.GetUserMessage(err), "at most 5 characters")
}
