package realtime

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func bareClient(id string, buffer int) *Client {
	return &Client{id: id, send: make(chan []byte, buffer), log: zap.NewNop(), chats: map[uint64]struct{}{}}
}

func decodeFrame(t *testing.T, raw []byte) Frame {
	t.Helper()
	var f Frame
	require.NoError(t, json.Unmarshal(raw, &f))
	return f
}

func TestHub_EmitReachesOnlyRoomMembers(t *testing.T) {
	hub := NewHub(zap.NewNop())
	a, b := bareClient("a", 4), bareClient("b", 4)
	hub.Join("chat:5", a)
	hub.Join("chat:6", b)

	hub.Emit("chat:5", "NEW_MESSAGE", map[string]interface{}{"id": 31})

	require.Len(t, a.send, 1)
	assert.Empty(t, b.send)

	f := decodeFrame(t, <-a.send)
	assert.Equal(t, "NEW_MESSAGE", f.Event)
	assert.JSONEq(t, `{"id":31}`, string(f.Data))
}

func TestHub_EmitWithoutListenersIsDropped(t *testing.T) {
	hub := NewHub(zap.NewNop())
	assert.NotPanics(t, func() {
		hub.Emit("chat:404", "STATUS_UPDATE", map[string]string{"status": "READ"})
	})
}

func TestHub_FullBufferDropsFrame(t *testing.T) {
	hub := NewHub(zap.NewNop())
	slow := bareClient("slow", 1)
	hub.Join("chat:5", slow)

	hub.Emit("chat:5", "typing", map[string]bool{"isTyping": true})
	hub.Emit("chat:5", "typing", map[string]bool{"isTyping": false})

	require.Len(t, slow.send, 1)
	f := decodeFrame(t, <-slow.send)
	assert.JSONEq(t, `{"isTyping":true}`, string(f.Data))
	assert.Equal(t, 1, hub.RoomSize("chat:5"), "slow clients are not evicted")
}

func TestHub_LeaveAndLeaveAll(t *testing.T) {
	hub := NewHub(zap.NewNop())
	c := bareClient("c", 4)
	hub.Join("chat:1", c)
	hub.Join("chat:2", c)
	hub.Join("chat:3", c)

	hub.Leave("chat:1", c)
	assert.Equal(t, 0, hub.RoomSize("chat:1"))

	left := hub.LeaveAll(c)
	assert.ElementsMatch(t, []string{"chat:2", "chat:3"}, left)
	assert.Equal(t, 0, hub.RoomSize("chat:2"))

	hub.Emit("chat:2", "NEW_MESSAGE", nil)
	assert.Empty(t, c.send)
}
