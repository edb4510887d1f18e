// Package codec converts tasks to and from the pipe-delimited line format
// used by every storage backend:
//
//	T | 0 | read book
//	D | 1 | submit essay | 2019-12-01
//	E | 0 | party | 2019-12-01 1800 | 2019-12-01 2200
package codec

import (
	"strings"

	"duke/internal/domain"
	apperrors "duke/internal/errors"
	"duke/internal/validation"
)

const fieldSeparator = " " + validation.RecordDelimiter + " "

const (
	doneFlag    = "1"
	pendingFlag = "0"
)

// Encode renders task as a single persisted line.
func Encode(task *domain.Task) string {
	flag := pendingFlag
	if task.IsDone() {
		flag = doneFlag
	}

	fields := []string{string(task.Kind), flag, task.Description}
	switch task.Kind {
	case domain.KindDeadline:
		fields = append(fields, task.DueAt.Format())
	case domain.KindEvent:
		fields = append(fields, task.StartAt.Format(), task.EndAt.Format())
	}
	return strings.Join(fields, fieldSeparator)
}

// Decode rebuilds a task from one persisted line. lineNumber is 1-based and
// only used to describe failures.
func Decode(lineNumber int, line string) (*domain.Task, error) {
	fields := strings.Split(line, validation.RecordDelimiter)
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	corrupt := func(reason string) error {
		return apperrors.NewCorruptRecordError(lineNumber, line, reason)
	}

	if len(fields) < 3 {
		return nil, corrupt("expected at least 3 fields")
	}

	kind := domain.Kind(fields[0])
	want, ok := fieldCounts[kind]
	if !ok {
		return nil, corrupt("unknown task type " + fields[0])
	}
	if len(fields) != want {
		return nil, corrupt("wrong number of fields for type " + fields[0])
	}

	var done bool
	switch fields[1] {
	case doneFlag:
		done = true
	case pendingFlag:
	default:
		return nil, corrupt("done flag must be 0 or 1")
	}

	var (
		task *domain.Task
		err  error
	)
	switch kind {
	case domain.KindToDo:
		task, err = domain.NewToDo(fields[2])
	case domain.KindDeadline:
		task, err = domain.NewDeadlineFromString(fields[2], fields[3])
	case domain.KindEvent:
		task, err = domain.NewEventFromStrings(fields[2], fields[3], fields[4])
	}
	if err != nil {
		return nil, corrupt(apperrors.GetUserMessage(err))
	}

	if done {
		task.MarkDone()
	}
	return task, nil
}

var fieldCounts = map[domain.Kind]int{
	domain.KindToDo:     3,
	domain.KindDeadline: 4,
	domain.KindEvent:    5,
}
