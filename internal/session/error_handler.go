package session

import (
	"errors"

	apperrors "duke/internal/errors"
	"duke/internal/logging"
	"duke/internal/validation"
)

// ErrorPrefix starts every message produced for a failed command.
const ErrorPrefix = "OOPS!!! "

// ErrorHandler converts command failures into the single message shown to
// the user.
type ErrorHandler struct{}

// NewErrorHandler creates a new error handler
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

// Message returns the user-facing text for err
func (eh *ErrorHandler) Message(err error) string {
	if eh.ShouldLog(err) {
		logging.Warnf("%v", err)
	}

	var validationErr *validation.ValidationError
	if errors.As(err, &validationErr) && !apperrors.IsAppError(err) {
		return ErrorPrefix + validationErr.GetUserFriendlyMessage()
	}

	if _, ok := apperrors.AsAppError(err); ok {
		return ErrorPrefix + apperrors.GetUserMessage(err)
	}

	return ErrorPrefix + err.Error()
}

// ShouldLog reports whether err is worth a warning beyond the user message
func (eh *ErrorHandler) ShouldLog(err error) bool {
	return apperrors.IsAppError(err) && apperrors.ShouldLogError(err)
}

// GetErrorCode returns a stable code for err, for front ends that report
// failures to programs rather than people
func (eh *ErrorHandler) GetErrorCode(err error) string {
	if errors.Is(err, ErrSessionClosed) {
		return "SESSION_CLOSED"
	}
	return apperrors.GetErrorCode(err)
}
