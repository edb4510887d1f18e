package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ConsoleCommand runs the interactive read-respond loop
type ConsoleCommand struct {
	app *App
}

// NewConsoleCommand creates a new console command handler
func NewConsoleCommand(app *App) *ConsoleCommand {
	return &ConsoleCommand{app: app}
}

// Execute reads commands line by line until bye or end of input
func (c *ConsoleCommand) Execute(ctx context.Context, args []string) error {
	sess, err := c.app.openSession(ctx)
	if err != nil {
		return err
	}
	defer sess.Close()

	if warnings := sess.Warnings(); len(warnings) > 0 {
		c.app.printFramed(c.app.loadWarningText(warnings))
	}

	// lines have no length limit here; overlong input is rejected by validation
	reader := bufio.NewReader(c.app.in)
	for {
		line, readErr := reader.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return fmt.Errorf("failed to read input: %w", readErr)
		}
		if line == "" && readErr != nil {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		reply := sess.Respond(ctx, strings.TrimRight(line, "\r\n"))
		c.app.printFramed(reply.Text)
		if reply.Exit || readErr != nil {
			return nil
		}
	}
}
