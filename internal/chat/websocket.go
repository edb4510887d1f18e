package chat

import (
	"context"
	"encoding/json"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"duke/internal/logging"
)

// requireUpgrade rejects plain HTTP requests to the websocket endpoint
func requireUpgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// handleWebSocket treats every text frame as one MessageRequest and answers
// with a MessageResponse. The connection is closed after bye.
func (s *Server) handleWebSocket(c *websocket.Conn) {
	defer c.Close()
	logging.Debugln("websocket connected")

	for {
		_, msgBytes, err := c.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logging.Warnf("websocket read failed: %v", err)
			}
			return
		}

		var req MessageRequest
		if err := json.Unmarshal(msgBytes, &req); err != nil {
			s.writeJSON(c, fiber.Map{"error": "Invalid message format"})
			continue
		}

		reply := s.responder.Respond(context.Background(), req.Input)
		if !s.writeJSON(c, newMessageResponse(reply)) {
			return
		}
		if reply.Exit {
			_ = c.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, "bye"))
			return
		}
	}
}

func (s *Server) writeJSON(c *websocket.Conn, v any) bool {
	if err := c.WriteJSON(v); err != nil {
		logging.Warnf("websocket write failed: %v", err)
		return false
	}
	return true
}
