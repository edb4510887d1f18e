// Package session owns the running task list and drives each input line
// through parsing, execution and persistence.
package session

import (
	"context"
	"errors"
	"slices"
	"sync"

	"duke/internal/codec"
	"duke/internal/command"
	"duke/internal/config"
	"duke/internal/domain"
	"duke/internal/logging"
	"duke/internal/storage"
	"duke/internal/validation"
)

// ErrSessionClosed is reported for input that arrives after bye.
var ErrSessionClosed = errors.New("this session has ended, start a new one to keep going")

// State is the lifecycle position of a session.
type State int

const (
	StateRunning State = iota
	StateExited
)

// Reply is what a front end shows for one input line. Failed is set when
// the text carries an error message, and Code then names the failure.
type Reply struct {
	Text   string
	Exit   bool
	Failed bool
	Code   string
}

// Session is a single user's conversation with the task list. It is safe
// for concurrent use; calls to Respond are serialized.
type Session struct {
	mu          sync.Mutex
	state       State
	done        chan struct{}
	list        *domain.TaskList
	warnings    []error
	parser      *command.Parser
	executor    *command.Executor
	persistence *codec.Persistence
	handler     *ErrorHandler
}

// Open loads the saved task list from store and starts a running session.
// Unreadable records become warnings; a store that cannot be read at all
// is an error.
func Open(ctx context.Context, cfg *config.Config, store storage.Store) (*Session, error) {
	persistence := codec.NewPersistence(store, cfg.Storage.OnCorrupt)

	list, warnings, err := persistence.Load(ctx)
	if err != nil {
		return nil, err
	}
	logging.Debugf("session opened with %d tasks and %d warnings\n", list.Len(), len(warnings))

	return &Session{
		state:       StateRunning,
		done:        make(chan struct{}),
		list:        list,
		warnings:    warnings,
		parser:      command.NewParser(validation.NewTaskValidatorWithConfig(cfg)),
		executor:    command.NewExecutor(persistence, cfg.Search.CaseSensitive),
		persistence: persistence,
		handler:     NewErrorHandler(),
	}, nil
}

// Respond runs one input line and returns the text to show. Errors are
// folded into the reply text; they never end the session.
func (s *Session) Respond(ctx context.Context, line string) Reply {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateExited {
		reply := s.failure(ErrSessionClosed, "")
		reply.Exit = true
		return reply
	}

	cmd, err := s.parser.Parse(line)
	if err != nil {
		return s.failure(err, "")
	}

	result, err := s.executor.Execute(ctx, cmd, s.list)
	if err != nil {
		// the change stays in memory even though it was not saved
		return s.failure(err, result.Response)
	}

	if result.Exit {
		s.state = StateExited
		close(s.done)
	}
	return Reply{Text: result.Response, Exit: result.Exit}
}

func (s *Session) failure(err error, response string) Reply {
	text := s.handler.Message(err)
	if response != "" {
		text = response + "\n" + text
	}
	return Reply{Text: text, Failed: true, Code: s.handler.GetErrorCode(err)}
}

// Done is closed once the session has exited.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Len returns the number of tasks in the list.
func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.list.Len()
}

// Warnings returns the problems found while loading the saved list.
func (s *Session) Warnings() []error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.warnings)
}

// Close releases the underlying store. It does not save.
func (s *Session) Close() error {
	return s.persistence.Close()
}
