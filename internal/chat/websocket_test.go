package chat

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fasthttp/websocket"

	"duke/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebSocket_RequiresUpgrade(t *testing.T) {
	server := NewServer(config.NewConfig().Chat, newTestSession(t))

	resp, err := server.App().Test(httptest.NewRequest("GET", "/ws", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, 426, resp.StatusCode)
}

func TestWebSocket_Conversation(t *testing.T) {
	sess := newTestSession(t)
	cfg := config.NewConfig().Chat
	cfg.Addr = freeAddr(t)
	cfg.ShutdownTimeout = time.Second
	server := NewServer(cfg, sess)

	done := make(chan error, 1)
	go func() { done <- server.Run(context.Background()) }()
	time.Sleep(2 * startupGrace)

	conn, _, err := websocket.DefaultDialer.Dial("ws://"+cfg.Addr+"/ws", nil)
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	var reply MessageResponse
	require.NoError(t, conn.WriteJSON(MessageRequest{Input: "todo read book"}))
	require.NoError(t, conn.ReadJSON(&reply))
	assert.Contains(t, reply.Response, "[T][ ] read book")
	assert.False(t, reply.Failed)

	require.NoError(t, conn.WriteJSON(MessageRequest{Input: "delete 5"}))
	require.NoError(t, conn.ReadJSON(&reply))
	assert.True(t, reply.Failed)
	assert.Equal(t, "OUT_OF_RANGE", reply.Code)
	assert.Contains(t, reply.Response, "OOPS!!!")

	require.NoError(t, conn.WriteJSON(MessageRequest{Input: "bye"}))
	require.NoError(t, conn.ReadJSON(&reply))
	assert.True(t, reply.Exit)

	_, _, err = conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseNormalClosure))

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after bye over websocket")
	}
	assert.Equal(t, 1, sess.Len())
}
