package codec

import (
	"context"
	"errors"
	"strings"

	"duke/internal/config"
	"duke/internal/domain"
	apperrors "duke/internal/errors"
	"duke/internal/logging"
	"duke/internal/storage"
)

// Persistence loads and saves a task list through a line store.
type Persistence struct {
	store     storage.Store
	onCorrupt string
}

// NewPersistence creates a Persistence over store. onCorrupt is one of
// config.OnCorruptSkip or config.OnCorruptReset; anything else means skip.
func NewPersistence(store storage.Store, onCorrupt string) *Persistence {
	if onCorrupt != config.OnCorruptReset {
		onCorrupt = config.OnCorruptSkip
	}
	return &Persistence{store: store, onCorrupt: onCorrupt}
}

// Load reads the saved task list. Nothing saved yet is an empty list.
// Corrupt lines never fail the load: they are returned as warnings and,
// depending on the policy, either dropped or cause an empty list.
// The error is only set when the store itself cannot be read.
func (p *Persistence) Load(ctx context.Context) (*domain.TaskList, []error, error) {
	lines, err := p.store.ReadLines(ctx)
	if errors.Is(err, storage.ErrNotExist) {
		logging.Debugln("no saved tasks found, starting with an empty list")
		return domain.NewTaskList(nil), nil, nil
	}
	if err != nil {
		return domain.NewTaskList(nil), nil, err
	}

	var (
		tasks    []*domain.Task
		warnings []error
	)
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		task, err := Decode(i+1, line)
		if err != nil {
			logging.Warnf("%v", err)
			warnings = append(warnings, err)
			if p.onCorrupt == config.OnCorruptReset {
				logging.Warnf("discarding all saved tasks")
				return domain.NewTaskList(nil), warnings, nil
			}
			continue
		}
		tasks = append(tasks, task)
	}

	logging.Debugf("loaded %d tasks\n", len(tasks))
	return domain.NewTaskList(tasks), warnings, nil
}

// Save replaces the stored lines with the encoded tasks of list.
func (p *Persistence) Save(ctx context.Context, list *domain.TaskList) error {
	tasks := list.All()
	lines := make([]string, 0, len(tasks))
	for _, task := range tasks {
		lines = append(lines, Encode(task))
	}

	if err := p.store.WriteLines(ctx, lines); err != nil {
		if apperrors.IsErrorType(err, apperrors.ErrorTypePersistence) {
			return err
		}
		return apperrors.NewPersistenceError("save tasks", err)
	}
	logging.Debugf("saved %d tasks\n", len(lines))
	return nil
}

// Close releases the underlying store.
func (p *Persistence) Close() error {
	return p.store.Close()
}
