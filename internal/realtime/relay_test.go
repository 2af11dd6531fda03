package realtime

import (
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRedisRelay_HandleDeliversLocally(t *testing.T) {
	hub := NewHub(zap.NewNop())
	c := bareClient("c", 4)
	hub.Join("chat:5", c)
	relay := NewRedisRelay(hub, nil, zap.NewNop())

	relay.handle([]byte(`{"room":"chat:5","event":"STATUS_UPDATE","data":{"messageId":31,"status":"READ"}}`))

	require.Len(t, c.send, 1)
	f := decodeFrame(t, <-c.send)
	assert.Equal(t, "STATUS_UPDATE", f.Event)
	assert.JSONEq(t, `{"messageId":31,"status":"READ"}`, string(f.Data))
}

func TestRedisRelay_HandleDropsMalformed(t *testing.T) {
	hub := NewHub(zap.NewNop())
	c := bareClient("c", 4)
	hub.Join("chat:5", c)
	relay := NewRedisRelay(hub, nil, zap.NewNop())

	relay.handle([]byte(`not json`))
	relay.handle([]byte(`{"room":"","event":"NEW_MESSAGE"}`))

	assert.Empty(t, c.send)
}

func TestRedisRelay_PublishFailureFallsBackToHub(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 200 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer rdb.Close()

	hub := NewHub(zap.NewNop())
	c := bareClient("c", 4)
	hub.Join("chat:5", c)

	NewRedisRelay(hub, rdb, zap.NewNop()).Emit("chat:5", "NEW_MESSAGE", map[string]int{"id": 31})

	require.Len(t, c.send, 1)
	assert.Equal(t, "NEW_MESSAGE", decodeFrame(t, <-c.send).Event)
}

func TestNewEmitter(t *testing.T) {
	hub := NewHub(zap.NewNop())
	assert.Same(t, hub, NewEmitter(hub, nil))

	relay := NewRedisRelay(hub, nil, zap.NewNop())
	assert.Same(t, relay, NewEmitter(hub, relay))
}
