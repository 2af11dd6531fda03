package realtime

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 64 * 1024
	sendBuffer     = 256
)

// Client is one authenticated socket. The hub writes to send, writePump
// drains it, readPump dispatches incoming frames.
type Client struct {
	id     string
	userID uint64
	conn   *websocket.Conn
	send   chan []byte
	log    *zap.Logger

	mu    sync.Mutex
	chats map[uint64]struct{}
}

func newClient(conn *websocket.Conn, userID uint64, log *zap.Logger) *Client {
	id := uuid.NewString()
	return &Client{
		id:     id,
		userID: userID,
		conn:   conn,
		send:   make(chan []byte, sendBuffer),
		log:    log.With(zap.String("client_id", id), zap.Uint64("user_id", userID)),
		chats:  make(map[uint64]struct{}),
	}
}

func (c *Client) trackChat(chatID uint64, joined bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if joined {
		c.chats[chatID] = struct{}{}
	} else {
		delete(c.chats, chatID)
	}
}

func (c *Client) inChat(chatID uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.chats[chatID]
	return ok
}

func (c *Client) joinedChats() []uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	ids := make([]uint64, 0, len(c.chats))
	for id := range c.chats {
		ids = append(ids, id)
	}
	return ids
}

// queue sends a frame straight to this client. Like room delivery it drops
// when the buffer is full.
func (c *Client) queue(event string, data interface{}, ack *int64) {
	raw, err := json.Marshal(data)
	if err != nil {
		c.log.Error("encode socket reply", zap.String("event", event), zap.Error(err))
		return
	}
	frame, err := json.Marshal(Frame{Event: event, Data: raw, Ack: ack})
	if err != nil {
		c.log.Error("encode socket frame", zap.Error(err))
		return
	}
	select {
	case c.send <- frame:
	default:
		c.log.Warn("socket buffer full, reply dropped", zap.String("event", event))
	}
}

func (c *Client) readPump(dispatch func(*Client, Frame)) {
	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				c.log.Warn("socket read failed", zap.Error(err))
			}
			return
		}

		var f Frame
		if err := json.Unmarshal(raw, &f); err != nil || f.Event == "" {
			c.queue("error", errorPayload{Message: "malformed frame"}, nil)
			continue
		}
		dispatch(c, f)
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
