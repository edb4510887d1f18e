package cli

import (
	"context"
	"fmt"

	"duke/internal/chat"
)

// ChatCommand serves the session over the chat HTTP API
type ChatCommand struct {
	app *App
}

// NewChatCommand creates a new chat command handler
func NewChatCommand(app *App) *ChatCommand {
	return &ChatCommand{app: app}
}

// Execute blocks until the session says bye or the process is signalled
func (c *ChatCommand) Execute(ctx context.Context, args []string) error {
	sess, err := c.app.openSession(ctx)
	if err != nil {
		return err
	}
	defer sess.Close()

	server := chat.NewServer(c.app.config.Chat, sess)
	fmt.Fprintf(c.app.out, "chat server listening on http://%s (POST /api/v1/messages, GET /ws)\n", c.app.config.Chat.Addr)
	return server.Run(ctx)
}
