package realtime

import (
	"context"
	"encoding/json"

	"agilefinance/internal/common"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const RelayChannel = "chats:events"

type relayMessage struct {
	Room  string          `json:"room"`
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// RedisRelay publishes every event on a shared channel so clients connected
// to any instance receive it. Each instance delivers what it reads from the
// channel to its own hub, including its own publications.
type RedisRelay struct {
	hub     *Hub
	rdb     *redis.Client
	channel string
	log     *zap.Logger
}

func NewRedisRelay(hub *Hub, rdb *redis.Client, log *zap.Logger) *RedisRelay {
	return &RedisRelay{hub: hub, rdb: rdb, channel: RelayChannel, log: log}
}

func (r *RedisRelay) Emit(room, event string, data interface{}) {
	raw, err := json.Marshal(data)
	if err != nil {
		r.log.Error("encode relay event", zap.String("event", event), zap.Error(err))
		return
	}
	payload, err := json.Marshal(relayMessage{Room: room, Event: event, Data: raw})
	if err != nil {
		r.log.Error("encode relay message", zap.Error(err))
		return
	}

	if err := r.rdb.Publish(context.Background(), r.channel, payload).Err(); err != nil {
		// other instances miss this one, local clients still get it
		r.log.Warn("relay publish failed, delivering locally", zap.String("room", room), zap.Error(err))
		r.hub.deliver(room, event, raw)
	}
}

// Run forwards relayed events to the local hub until ctx is done.
func (r *RedisRelay) Run(ctx context.Context) error {
	sub := r.rdb.Subscribe(ctx, r.channel)
	defer sub.Close()

	if _, err := sub.Receive(ctx); err != nil {
		return err
	}
	r.log.Info("relay subscribed", zap.String("channel", r.channel))

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			r.handle([]byte(msg.Payload))
		}
	}
}

func (r *RedisRelay) handle(payload []byte) {
	var m relayMessage
	if err := json.Unmarshal(payload, &m); err != nil || m.Room == "" || m.Event == "" {
		r.log.Warn("malformed relay message dropped", zap.ByteString("payload", payload))
		return
	}
	r.hub.deliver(m.Room, m.Event, m.Data)
}

// NewEmitter picks the relay when Redis is available and the bare hub
// otherwise.
func NewEmitter(hub *Hub, relay *RedisRelay) common.Emitter {
	if relay != nil {
		return relay
	}
	return hub
}
