package domain

import (
	"iter"
	"slices"
	"strings"

	apperrors "duke/internal/errors"
)

// TaskList is the ordered task collection of a session. A task's number is
// its 1-based position and changes when earlier tasks are deleted.
type TaskList struct {
	tasks []*Task
}

// NewTaskList creates a list holding tasks in the given order.
func NewTaskList(tasks []*Task) *TaskList {
	list := &TaskList{tasks: make([]*Task, 0, len(tasks))}
	list.tasks = append(list.tasks, tasks...)
	return list
}

// Len returns the number of tasks.
func (l *TaskList) Len() int {
	return len(l.tasks)
}

// Add appends task and returns the new size.
func (l *TaskList) Add(task *Task) int {
	l.tasks = append(l.tasks, task)
	return len(l.tasks)
}

// Get returns task number n.
func (l *TaskList) Get(n int) (*Task, error) {
	if err := l.checkRange(n); err != nil {
		return nil, err
	}
	return l.tasks[n-1], nil
}

// Complete marks task number n as done and returns it.
func (l *TaskList) Complete(n int) (*Task, error) {
	task, err := l.Get(n)
	if err != nil {
		return nil, err
	}
	task.MarkDone()
	return task, nil
}

// Delete removes task number n and returns it. Later tasks move up one place.
func (l *TaskList) Delete(n int) (*Task, error) {
	task, err := l.Get(n)
	if err != nil {
		return nil, err
	}
	l.tasks = slices.Delete(l.tasks, n-1, n)
	return task, nil
}

// All returns the tasks in order. The slice is a copy; the tasks are not.
func (l *TaskList) All() []*Task {
	out := make([]*Task, len(l.tasks))
	copy(out, l.tasks)
	return out
}

// Numbered yields every task with its task number.
func (l *TaskList) Numbered() iter.Seq2[int, *Task] {
	return l.Find("", true)
}

// Find yields the tasks whose description contains query, paired with their
// task numbers in the full list. An empty query matches every task. The
// sequence reads the list when iterated, so it can be ranged over again.
func (l *TaskList) Find(query string, caseSensitive bool) iter.Seq2[int, *Task] {
	if !caseSensitive {
		query = strings.ToLower(query)
	}
	return func(yield func(int, *Task) bool) {
		for i, task := range l.tasks {
			description := task.Description
			if !caseSensitive {
				description = strings.ToLower(description)
			}
			if !strings.Contains(description, query) {
				continue
			}
			if !yield(i+1, task) {
				return
			}
		}
	}
}

func (l *TaskList) checkRange(n int) error {
	if n < 1 || n > len(l.tasks) {
		return apperrors.NewOutOfRangeError(n, len(l.tasks))
	}
	return nil
}
