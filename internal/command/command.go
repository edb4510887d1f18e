// Package command turns input lines into typed commands and runs them
// against a task list.
package command

import "duke/internal/domain"

// Kind identifies a command variant.
type Kind int

const (
	KindAddToDo Kind = iota
	KindAddDeadline
	KindAddEvent
	KindList
	KindComplete
	KindDelete
	KindFind
	KindSave
	KindHelp
	KindExit
)

// String returns the keyword-style name of the command kind
func (k Kind) String() string {
	switch k {
	case KindAddToDo:
		return "todo"
	case KindAddDeadline:
		return "deadline"
	case KindAddEvent:
		return "event"
	case KindList:
		return "list"
	case KindComplete:
		return "done"
	case KindDelete:
		return "delete"
	case KindFind:
		return "find"
	case KindSave:
		return "save"
	case KindHelp:
		return "help"
	case KindExit:
		return "bye"
	default:
		return "unknown"
	}
}

// Command is one validated user instruction. Only the fields of its Kind
// are set: Task for the add variants, Number for Complete and Delete,
// Query for Find.
type Command struct {
	Kind   Kind
	Task   *domain.Task
	Number int
	Query  string
}

// Mutates reports whether running the command changes the task list.
func (c Command) Mutates() bool {
	switch c.Kind {
	case KindAddToDo, KindAddDeadline, KindAddEvent, KindComplete, KindDelete:
		return true
	default:
		return false
	}
}
