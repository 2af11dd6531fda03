package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"agilefinance/internal/chat"
	"agilefinance/internal/common"
	"agilefinance/internal/config"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	eventJoinChat    = "joinChat"
	eventLeaveChat   = "leaveChat"
	eventTyping      = "typing"
	eventSendMessage = "send_message"
	eventAck         = "ack"

	handlerTimeout = 30 * time.Second
)

type chatRef struct {
	ChatID uint64 `json:"chatId"`
}

type typingPayload struct {
	ChatID   uint64 `json:"chatId"`
	IsTyping bool   `json:"isTyping"`
}

type sendPayload struct {
	ChatID  uint64 `json:"chatId"`
	Content string `json:"content"`
	Type    string `json:"type"`
}

type ackPayload struct {
	OK      bool        `json:"ok"`
	Message interface{} `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
}

type errorPayload struct {
	Event   string `json:"event,omitempty"`
	Message string `json:"message"`
}

// SocketHandler serves the /chats namespace. The authenticated user id is
// the contact id used for presence.
type SocketHandler struct {
	hub      *Hub
	chats    chat.ChatService
	presence chat.PresenceService
	jwt      *common.JWTManager
	upgrader websocket.Upgrader
	log      *zap.Logger
}

func NewSocketHandler(hub *Hub, chats chat.ChatService, presence chat.PresenceService, jwt *common.JWTManager, server config.ServerConfig, log *zap.Logger) *SocketHandler {
	return &SocketHandler{
		hub:      hub,
		chats:    chats,
		presence: presence,
		jwt:      jwt,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(server.AllowedOrigins),
		},
		log: log,
	}
}

func (h *SocketHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/chats", h.ServeWS).Methods(http.MethodGet)
}

func originChecker(allowed []string) func(*http.Request) bool {
	set := make(map[string]struct{}, len(allowed))
	for _, o := range allowed {
		set[o] = struct{}{}
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		if _, ok := set["*"]; ok {
			return true
		}
		_, ok := set[origin]
		return ok
	}
}

func (h *SocketHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	token := common.ExtractToken(r)
	if token == "" {
		common.WriteError(w, h.log, common.ErrUnauthorized)
		return
	}
	claims, err := h.jwt.ValidateToken(token)
	if err != nil {
		common.WriteError(w, h.log, common.ErrUnauthorized)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	c := newClient(conn, claims.UserID, h.log)
	c.log.Info("socket connected")
	go c.writePump()

	h.rejoinTracked(c)
	go func() {
		c.readPump(h.dispatch)
		h.disconnect(c)
	}()
}

// rejoinTracked puts a reconnecting client back into the chats it had
// presence in.
func (h *SocketHandler) rejoinTracked(c *Client) {
	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()

	ids, err := h.presence.TrackedChats(ctx, c.userID)
	if err != nil {
		c.log.Warn("tracked chats unavailable", zap.Error(err))
		return
	}
	for _, id := range ids {
		h.join(ctx, c, id)
	}
}

func (h *SocketHandler) join(ctx context.Context, c *Client, chatID uint64) {
	h.hub.Join(common.ChatRoom(chatID), c)
	c.trackChat(chatID, true)
	if err := h.presence.MarkOnline(ctx, c.userID, chatID); err != nil {
		c.log.Warn("mark online failed", zap.Uint64("chat_id", chatID), zap.Error(err))
	}
}

func (h *SocketHandler) disconnect(c *Client) {
	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()

	chats := c.joinedChats()
	h.hub.LeaveAll(c)
	for _, id := range chats {
		if err := h.presence.MarkOffline(ctx, c.userID, id); err != nil {
			c.log.Warn("mark offline failed", zap.Uint64("chat_id", id), zap.Error(err))
		}
	}
	close(c.send)
	c.log.Info("socket disconnected", zap.Int("chats", len(chats)))
}

func (h *SocketHandler) dispatch(c *Client, f Frame) {
	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()

	switch f.Event {
	case eventJoinChat:
		var p chatRef
		if !h.decode(c, f, &p) {
			return
		}
		if _, err := h.chats.Chat(ctx, p.ChatID); err != nil {
			h.fail(c, f, err)
			return
		}
		h.join(ctx, c, p.ChatID)
		h.ack(c, f, ackPayload{OK: true})

	case eventLeaveChat:
		var p chatRef
		if !h.decode(c, f, &p) {
			return
		}
		h.hub.Leave(common.ChatRoom(p.ChatID), c)
		c.trackChat(p.ChatID, false)
		h.ack(c, f, ackPayload{OK: true})

	case eventTyping:
		var p typingPayload
		if !h.decode(c, f, &p) {
			return
		}
		if !c.inChat(p.ChatID) {
			if _, err := h.chats.Chat(ctx, p.ChatID); err != nil {
				h.fail(c, f, err)
				return
			}
		}
		if err := h.presence.SetTyping(ctx, c.userID, p.ChatID, p.IsTyping); err != nil {
			h.fail(c, f, err)
			return
		}
		h.ack(c, f, ackPayload{OK: true})

	case eventSendMessage:
		var p sendPayload
		if !h.decode(c, f, &p) {
			return
		}
		m, err := h.chats.SendMessage(ctx, p.ChatID, c.userID, chat.SendMessageRequest{
			Content:     p.Content,
			ContentType: p.Type,
		})
		if err != nil {
			h.fail(c, f, err)
			return
		}
		h.ack(c, f, ackPayload{OK: true, Message: m})

	default:
		c.queue(common.EventError, errorPayload{Event: f.Event, Message: "unknown event"}, nil)
	}
}

// decode reads the frame payload and insists on a chatId.
func (h *SocketHandler) decode(c *Client, f Frame, v interface{}) bool {
	if len(f.Data) == 0 || json.Unmarshal(f.Data, v) != nil {
		h.fail(c, f, common.NewValidationError("data", "is not a valid object"))
		return false
	}
	var ref chatRef
	_ = json.Unmarshal(f.Data, &ref)
	if ref.ChatID == 0 {
		h.fail(c, f, common.NewValidationError("chatId", "is required"))
		return false
	}
	return true
}

func (h *SocketHandler) ack(c *Client, f Frame, p ackPayload) {
	if f.Ack != nil {
		c.queue(eventAck, p, f.Ack)
	}
}

// fail answers through the ack when the client asked for one and through
// an error event otherwise.
func (h *SocketHandler) fail(c *Client, f Frame, err error) {
	msg := publicMessage(err)
	if msg == "internal error" {
		c.log.Error("socket event failed", zap.String("event", f.Event), zap.Error(err))
	}
	if f.Ack != nil {
		c.queue(eventAck, ackPayload{OK: false, Error: msg}, f.Ack)
		return
	}
	c.queue(common.EventError, errorPayload{Event: f.Event, Message: msg}, nil)
}

func publicMessage(err error) string {
	var verr *common.ValidationError
	switch {
	case errors.As(err, &verr):
		return verr.Error()
	case errors.Is(err, common.ErrNotFound):
		return "chat not found"
	case errors.Is(err, common.ErrConflict):
		return err.Error()
	}
	return "internal error"
}
