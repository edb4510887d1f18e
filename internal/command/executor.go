package command

import (
	"context"
	"fmt"
	"iter"
	"strings"

	"duke/internal/domain"
	"duke/internal/logging"
)

// Saver persists the full task list.
type Saver interface {
	Save(ctx context.Context, list *domain.TaskList) error
}

// Result is the outcome of one executed command.
type Result struct {
	Response string
	Exit     bool
}

// Executor runs commands against a task list and writes the list through
// after every change.
type Executor struct {
	saver         Saver
	caseSensitive bool
}

// NewExecutor creates an executor that persists through saver.
func NewExecutor(saver Saver, caseSensitive bool) *Executor {
	return &Executor{saver: saver, caseSensitive: caseSensitive}
}

// Execute runs cmd against list. When the change cannot be persisted the
// list keeps it, and both the response and the persistence error are
// returned.
func (e *Executor) Execute(ctx context.Context, cmd Command, list *domain.TaskList) (Result, error) {
	logging.Debugf("execute: %s\n", cmd.Kind)

	result, err := e.apply(cmd, list)
	if err != nil {
		return Result{}, err
	}
	if !cmd.Mutates() && cmd.Kind != KindSave {
		return result, nil
	}
	if e.saver == nil {
		return result, nil
	}
	if err := e.saver.Save(ctx, list); err != nil {
		return result, fmt.Errorf("persist task list: %w", err)
	}
	return result, nil
}

func (e *Executor) apply(cmd Command, list *domain.TaskList) (Result, error) {
	switch cmd.Kind {
	case KindAddToDo, KindAddDeadline, KindAddEvent:
		size := list.Add(cmd.Task)
		return Result{Response: lines(
			"Got it. I've added this task:",
			indent(cmd.Task.String()),
			countLine(size),
		)}, nil

	case KindComplete:
		task, err := list.Complete(cmd.Number)
		if err != nil {
			return Result{}, err
		}
		return Result{Response: lines(
			"Nice! I've marked this task as done:",
			indent(task.String()),
		)}, nil

	case KindDelete:
		task, err := list.Delete(cmd.Number)
		if err != nil {
			return Result{}, err
		}
		return Result{Response: lines(
			"Noted. I've removed this task:",
			indent(task.String()),
			countLine(list.Len()),
		)}, nil

	case KindList:
		return Result{Response: numbered(
			"Here are the tasks in your list:",
			"There are no tasks in your list.",
			list.Numbered(),
		)}, nil

	case KindFind:
		return Result{Response: numbered(
			"Here are the matching tasks in your list:",
			"There are no matching tasks in your list.",
			list.Find(cmd.Query, e.caseSensitive),
		)}, nil

	case KindSave:
		return Result{Response: fmt.Sprintf("Your list of %s has been saved.", taskCount(list.Len()))}, nil

	case KindHelp:
		return Result{Response: helpText}, nil

	case KindExit:
		return Result{Response: "Bye. Hope to see you again soon!", Exit: true}, nil

	default:
		return Result{}, fmt.Errorf("unhandled command kind %d", cmd.Kind)
	}
}

func numbered(header, empty string, tasks iter.Seq2[int, *domain.Task]) string {
	var b strings.Builder
	b.WriteString(header)
	matched := false
	for n, task := range tasks {
		matched = true
		fmt.Fprintf(&b, "\n%d. %s", n, task)
	}
	if !matched {
		return empty
	}
	return b.String()
}

func lines(parts ...string) string {
	return strings.Join(parts, "\n")
}

func indent(s string) string {
	return "  " + s
}

func countLine(n int) string {
	return fmt.Sprintf("Now you have %s in the list.", taskCount(n))
}

func taskCount(n int) string {
	if n == 1 {
		return "1 task"
	}
	return fmt.Sprintf("%d tasks", n)
}

const helpText = `Here are the commands I understand:
  todo <description>
  deadline <description> /by <yyyy-MM-dd [HHmm]>
  event <description> /at <start>-<end>
  list
  done <task number>
  delete <task number>
  find <text>
  save
  help
  bye`
