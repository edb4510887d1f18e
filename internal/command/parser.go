package command

import (
	"errors"
	"strings"
	"unicode"

	"duke/internal/domain"
	apperrors "duke/internal/errors"
	"duke/internal/logging"
	"duke/internal/validation"
)

const (
	byMarker    = "/by"
	atMarker    = "/at"
	rangeMarker = "-"
)

var keywords = map[string]Kind{
	"todo":     KindAddToDo,
	"deadline": KindAddDeadline,
	"event":    KindAddEvent,
	"list":     KindList,
	"done":     KindComplete,
	"delete":   KindDelete,
	"find":     KindFind,
	"save":     KindSave,
	"help":     KindHelp,
	"bye":      KindExit,
}

// Parser turns one line of user input into a Command.
type Parser struct {
	validator *validation.TaskValidator
}

// NewParser creates a parser that checks descriptions and task numbers with
// validator. A nil validator uses the default limits.
func NewParser(validator *validation.TaskValidator) *Parser {
	if validator == nil {
		validator = validation.NewTaskValidator()
	}
	return &Parser{validator: validator}
}

// Parse reads line as "<keyword> [arguments]". The keyword is matched
// case-insensitively. Trailing text after list, save, help and bye is ignored.
func (p *Parser) Parse(line string) (Command, error) {
	keyword, rest := splitKeyword(line)
	logging.Debugf("parse: keyword=%q rest=%q\n", keyword, rest)

	kind, ok := keywords[strings.ToLower(keyword)]
	if !ok {
		return Command{}, apperrors.NewUnknownCommandError(keyword)
	}

	switch kind {
	case KindAddToDo:
		return p.parseToDo(rest)
	case KindAddDeadline:
		return p.parseDeadline(rest)
	case KindAddEvent:
		return p.parseEvent(rest)
	case KindComplete, KindDelete:
		n, err := p.validator.ValidateTaskNumber(rest)
		if err != nil {
			return Command{}, toAppError(err)
		}
		return Command{Kind: kind, Number: n}, nil
	case KindFind:
		return Command{Kind: KindFind, Query: strings.TrimSpace(rest)}, nil
	default:
		return Command{Kind: kind}, nil
	}
}

func (p *Parser) parseToDo(rest string) (Command, error) {
	description, err := p.description(rest)
	if err != nil {
		return Command{}, err
	}
	task, err := domain.NewToDo(description)
	if err != nil {
		return Command{}, err
	}
	return Command{Kind: KindAddToDo, Task: task}, nil
}

func (p *Parser) parseDeadline(rest string) (Command, error) {
	description, when, found := strings.Cut(rest, byMarker)
	description, when = strings.TrimSpace(description), strings.TrimSpace(when)
	if !found || description == "" || when == "" {
		return Command{}, apperrors.NewValidationError(
			"a deadline needs a description and a due date, e.g. deadline submit essay /by 2019-12-01", nil,
		)
	}

	description, err := p.description(description)
	if err != nil {
		return Command{}, err
	}
	task, err := domain.NewDeadlineFromString(description, when)
	if err != nil {
		return Command{}, err
	}
	return Command{Kind: KindAddDeadline, Task: task}, nil
}

func (p *Parser) parseEvent(rest string) (Command, error) {
	description, span, found := strings.Cut(rest, atMarker)
	description, span = strings.TrimSpace(description), strings.TrimSpace(span)
	if !found || description == "" || span == "" {
		return Command{}, apperrors.NewValidationError(
			"an event needs a description and a time span, e.g. event party /at 2019-12-01 1800-2200", nil,
		)
	}

	description, err := p.description(description)
	if err != nil {
		return Command{}, err
	}
	start, end, err := splitSpan(span)
	if err != nil {
		return Command{}, err
	}
	task, err := domain.NewEvent(description, start, end)
	if err != nil {
		return Command{}, err
	}
	return Command{Kind: KindAddEvent, Task: task}, nil
}

func (p *Parser) description(raw string) (string, error) {
	description, err := p.validator.GetValidDescription(raw)
	if err != nil {
		return "", toAppError(err)
	}
	return description, nil
}

// splitSpan separates "<start>-<end>". Dates contain hyphens themselves, so
// the separator is the first hyphen at which both sides are valid moments.
// The end may be a bare HHmm when the start has a clock time, in which case
// it falls on the start's date.
func splitSpan(span string) (domain.Moment, domain.Moment, error) {
	sawBothSides := false
	for i := 0; i < len(span); i++ {
		if !strings.HasPrefix(span[i:], rangeMarker) {
			continue
		}
		left := strings.TrimSpace(span[:i])
		right := strings.TrimSpace(span[i+len(rangeMarker):])
		if left == "" || right == "" {
			continue
		}
		sawBothSides = true

		start, err := domain.ParseMoment(left)
		if err != nil {
			continue
		}
		if end, err := domain.ParseMoment(right); err == nil {
			return start, end, nil
		}
		if start.HasClock() {
			if end, err := start.AtClock(right); err == nil {
				return start, end, nil
			}
		}
	}

	if !sawBothSides {
		return domain.Moment{}, domain.Moment{}, apperrors.NewValidationError(
			"an event needs both a start and an end, separated by "+rangeMarker, nil,
		)
	}
	validationError := validation.NewValidationError()
	validationError.AddInvalidFormatError("time span of an event", span, "<start>-<end> with "+domain.MomentFormatHint)
	return domain.Moment{}, domain.Moment{}, toAppError(validationError)
}

func splitKeyword(line string) (string, string) {
	line = strings.TrimSpace(line)
	i := strings.IndexFunc(line, unicode.IsSpace)
	if i < 0 {
		return line, ""
	}
	return line[:i], strings.TrimSpace(line[i:])
}

// toAppError lifts field validation failures into the application taxonomy.
func toAppError(err error) error {
	var ve *validation.ValidationError
	if errors.As(err, &ve) {
		return apperrors.NewValidationError(ve.GetUserFriendlyMessage(), ve)
	}
	return err
}
