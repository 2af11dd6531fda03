package realtime

import (
	"encoding/json"
	"sync"

	"go.uber.org/zap"
)

// Frame is the envelope of every socket message in both directions.
type Frame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
	Ack   *int64          `json:"ack,omitempty"`
}

// Hub tracks which clients sit in which room on this instance.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[*Client]struct{}
	log   *zap.Logger
}

func NewHub(log *zap.Logger) *Hub {
	return &Hub{rooms: make(map[string]map[*Client]struct{}), log: log}
}

func (h *Hub) Join(room string, c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.rooms[room] == nil {
		h.rooms[room] = make(map[*Client]struct{})
	}
	h.rooms[room][c] = struct{}{}
}

func (h *Hub) Leave(room string, c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.leaveLocked(room, c)
}

func (h *Hub) leaveLocked(room string, c *Client) {
	if m := h.rooms[room]; m != nil {
		delete(m, c)
		if len(m) == 0 {
			delete(h.rooms, room)
		}
	}
}

// LeaveAll removes c from every room and returns the rooms it was in. After
// it returns no Emit can reach c.
func (h *Hub) LeaveAll(c *Client) []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	var left []string
	for room, members := range h.rooms {
		if _, ok := members[c]; ok {
			left = append(left, room)
			h.leaveLocked(room, c)
		}
	}
	return left
}

func (h *Hub) RoomSize(room string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[room])
}

// Emit delivers to the clients of room connected to this instance.
func (h *Hub) Emit(room, event string, data interface{}) {
	raw, err := json.Marshal(data)
	if err != nil {
		h.log.Error("encode socket event", zap.String("event", event), zap.Error(err))
		return
	}
	h.deliver(room, event, raw)
}

func (h *Hub) deliver(room, event string, data json.RawMessage) {
	frame, err := json.Marshal(Frame{Event: event, Data: data})
	if err != nil {
		h.log.Error("encode socket frame", zap.String("event", event), zap.Error(err))
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.rooms[room] {
		select {
		case c.send <- frame:
		default:
			h.log.Warn("socket buffer full, frame dropped",
				zap.String("client_id", c.id),
				zap.String("room", room),
				zap.String("event", event),
			)
		}
	}
}
