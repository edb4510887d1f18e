// Package chat serves the task session as a small chat-style HTTP API.
package chat

import (
	"context"
	"fmt"
	"strings"
	"time"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"duke/internal/config"
	"duke/internal/logging"
	"duke/internal/session"
)

// startupGrace is how long Run waits for an immediate listen failure.
const startupGrace = 100 * time.Millisecond

// Responder answers one line of chat input.
type Responder interface {
	Respond(ctx context.Context, line string) session.Reply
	Len() int
	Warnings() []error
	Done() <-chan struct{}
}

// MessageRequest is the body of POST /api/v1/messages.
type MessageRequest struct {
	Input string `json:"input"`
}

// MessageResponse is the reply to one message.
type MessageResponse struct {
	Response string `json:"response"`
	Exit     bool   `json:"exit"`
	Failed   bool   `json:"failed"`
	Code     string `json:"code,omitempty"`
}

func newMessageResponse(reply session.Reply) MessageResponse {
	return MessageResponse{
		Response: reply.Text,
		Exit:     reply.Exit,
		Failed:   reply.Failed,
		Code:     reply.Code,
	}
}

// Server is the chat front end.
type Server struct {
	app             *fiber.App
	addr            string
	shutdownTimeout time.Duration
	responder       Responder
}

// NewServer creates a server for responder. Routes are registered
// immediately so the app can be exercised without listening.
func NewServer(cfg config.ChatConfig, responder Responder) *Server {
	s := &Server{
		addr:            cfg.Addr,
		shutdownTimeout: cfg.ShutdownTimeout,
		responder:       responder,
	}

	s.app = fiber.New(fiber.Config{
		AppName:               "duke",
		DisableStartupMessage: true,
		ErrorHandler:          s.errorHandler,
	})
	s.app.Use(recover.New())
	s.app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} ${method} ${path} ${latency}\n",
		Next: func(c *fiber.Ctx) bool {
			return !logging.DebugEnabled()
		},
	}))
	s.registerRoutes()

	return s
}

// App exposes the underlying fiber app.
func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) registerRoutes() {
	s.app.Get("/health", s.health)

	api := s.app.Group("/api/v1")
	api.Post("/messages", s.postMessage)

	s.app.Use("/ws", requireUpgrade)
	s.app.Get("/ws", websocket.New(s.handleWebSocket))
}

// Run listens until the session exits, ctx is cancelled, or the process
// receives an interrupt or termination signal.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		if err := s.app.Listen(s.addr); err != nil {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("chat server failed to start: %w", err)
	case <-time.After(startupGrace):
	}
	logging.Debugf("chat server listening on %s\n", s.addr)

	wait := gfshutdown.GracefulShutdown(ctx, s.shutdownTimeout, map[string]gfshutdown.Operation{
		"chat-server": s.Shutdown,
	})

	select {
	case code := <-wait:
		if code != 0 {
			return fmt.Errorf("chat server shutdown exited with code %d", code)
		}
		return nil
	case <-s.responder.Done():
		logging.Debugln("session ended, stopping chat server")
	case <-ctx.Done():
	case err := <-errCh:
		return fmt.Errorf("chat server stopped: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	return s.Shutdown(shutdownCtx)
}

// Shutdown stops accepting requests and waits for in-flight ones.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.app.ShutdownWithContext(ctx); err != nil {
		return fmt.Errorf("failed to shutdown chat server: %w", err)
	}
	return nil
}

func (s *Server) postMessage(c *fiber.Ctx) error {
	var req MessageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
	}
	if strings.TrimSpace(req.Input) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "input is required",
		})
	}

	reply := s.responder.Respond(c.UserContext(), req.Input)
	return c.JSON(newMessageResponse(reply))
}

func (s *Server) health(c *fiber.Ctx) error {
	warnings := s.responder.Warnings()
	messages := make([]string, 0, len(warnings))
	for _, w := range warnings {
		messages = append(messages, w.Error())
	}
	return c.JSON(fiber.Map{
		"status":   "healthy",
		"tasks":    s.responder.Len(),
		"warnings": messages,
	})
}

func (s *Server) errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}
	if code >= fiber.StatusInternalServerError {
		logging.Warnf("chat: %s %s: %v", c.Method(), c.Path(), err)
	}

	return c.Status(code).JSON(fiber.Map{
		"error": message,
	})
}
