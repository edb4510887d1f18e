package cli

import (
	"context"
	"fmt"
	"strings"
)

// ExecCommand runs a single command line, for scripts
type ExecCommand struct {
	app *App
}

// NewExecCommand creates a new exec command handler
func NewExecCommand(app *App) *ExecCommand {
	return &ExecCommand{app: app}
}

// Execute joins args into one command line and prints the reply unframed
func (c *ExecCommand) Execute(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("exec needs a command, e.g. duke exec todo read book")
	}

	sess, err := c.app.openSession(ctx)
	if err != nil {
		return err
	}
	defer sess.Close()

	reply := sess.Respond(ctx, strings.Join(args, " "))
	fmt.Fprintln(c.app.out, reply.Text)
	if reply.Failed {
		return ErrCommandFailed
	}
	return nil
}
