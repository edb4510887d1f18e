package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"duke/internal/config"
	apperrors "duke/internal/errors"
	"duke/internal/session"
)

// ErrCommandFailed is returned when a command ran but its reply reported a
// failure. The reply has already been printed.
var ErrCommandFailed = errors.New("command failed")

const divider = "\t____________________________________________________________"

// App carries what every front end needs: configuration and the streams
// it talks to.
type App struct {
	config *config.Config
	in     io.Reader
	out    io.Writer
	errOut io.Writer
}

// NewApp creates a new CLI application instance
func NewApp(cfg *config.Config, in io.Reader, out io.Writer, errOut io.Writer) *App {
	return &App{config: cfg, in: in, out: out, errOut: errOut}
}

// openSession opens the configured store and loads the saved tasks
func (a *App) openSession(ctx context.Context) (*session.Session, error) {
	store, err := config.CreateStore(ctx, a.config)
	if err != nil {
		return nil, err
	}

	sess, err := session.Open(ctx, a.config, store)
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("failed to load saved tasks: %w", err)
	}
	return sess, nil
}

// printFramed writes text between dividers, one tab-indented line at a time
func (a *App) printFramed(text string) {
	fmt.Fprintln(a.out, divider)
	for _, line := range strings.Split(text, "\n") {
		fmt.Fprintln(a.out, "\t"+line)
	}
	fmt.Fprintln(a.out, divider)
}

// loadWarningText describes the saved records that could not be loaded
func (a *App) loadWarningText(warnings []error) string {
	lines := []string{session.ErrorPrefix + "Some saved tasks could not be read:"}
	for _, w := range warnings {
		if appErr, ok := apperrors.AsAppError(w); ok {
			lines = append(lines, "  "+appErr.Message)
			continue
		}
		lines = append(lines, "  "+w.Error())
	}
	if a.config.Storage.OnCorrupt == config.OnCorruptReset {
		lines = append(lines, "Starting over with an empty list.")
	} else {
		lines = append(lines, "The unreadable tasks were left out.")
	}
	return strings.Join(lines, "\n")
}
