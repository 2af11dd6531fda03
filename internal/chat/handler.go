package chat

import (
	"errors"
	"io"
	"net/http"
	"time"

	"agilefinance/internal/common"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// webhook bodies may carry base64 media
const maxWebhookBody = 32 << 20

type Handler struct {
	chats    ChatService
	presence PresenceService
	log      *zap.Logger
}

func NewHandler(chats ChatService, presence PresenceService, log *zap.Logger) *Handler {
	return &Handler{chats: chats, presence: presence, log: log}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/chats", h.listChats).Methods(http.MethodGet)
	r.HandleFunc("/chats/{id}", h.getChat).Methods(http.MethodGet)
	r.HandleFunc("/chats/{id}/messages", h.listMessages).Methods(http.MethodGet)
	r.HandleFunc("/chats/{id}/messages", h.sendMessage).Methods(http.MethodPost)
	r.HandleFunc("/chats/{id}/contact-status", h.contactStatus).Methods(http.MethodGet)
	r.HandleFunc("/chat-messages/{id}/statuses", h.listStatuses).Methods(http.MethodGet)
	r.HandleFunc("/chat-messages/{id}/statuses", h.appendStatus).Methods(http.MethodPost)
	r.HandleFunc("/chat-messages/{id}/statuses/latest", h.latestStatus).Methods(http.MethodGet)
	r.HandleFunc("/channels", h.listChannels).Methods(http.MethodGet)
	r.HandleFunc("/channels", h.createChannel).Methods(http.MethodPost)
	r.HandleFunc("/webhooks/evolution", h.evolutionWebhook).Methods(http.MethodPost)
}

func (h *Handler) listChats(w http.ResponseWriter, r *http.Request) {
	page, err := common.ParsePageQuery(r)
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}

	q := r.URL.Query()
	filter := ChatFilter{Status: q.Get("status")}
	if raw := q.Get("contactId"); raw != "" {
		id, err := common.ParseID(raw, "contactId")
		if err != nil {
			common.WriteError(w, h.log, err)
			return
		}
		filter.ContactID = &id
	}
	if raw := q.Get("channelId"); raw != "" {
		id, err := common.ParseID(raw, "channelId")
		if err != nil {
			common.WriteError(w, h.log, err)
			return
		}
		filter.ChannelID = &id
	}

	result, err := h.chats.Chats(r.Context(), filter, page)
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler) getChat(w http.ResponseWriter, r *http.Request) {
	id, err := common.ParseID(mux.Vars(r)["id"], "id")
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}

	c, err := h.chats.Chat(r.Context(), id)
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, c)
}

func (h *Handler) listMessages(w http.ResponseWriter, r *http.Request) {
	id, err := common.ParseID(mux.Vars(r)["id"], "id")
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}
	page, err := common.ParsePageQuery(r)
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}

	result, err := h.chats.Messages(r.Context(), id, page)
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler) sendMessage(w http.ResponseWriter, r *http.Request) {
	id, err := common.ParseID(mux.Vars(r)["id"], "id")
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}
	claims, ok := common.ClaimsFromContext(r.Context())
	if !ok {
		common.WriteError(w, h.log, common.ErrUnauthorized)
		return
	}

	var req SendMessageRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, h.log, err)
		return
	}

	m, err := h.chats.SendMessage(r.Context(), id, claims.UserID, req)
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, m)
}

func (h *Handler) contactStatus(w http.ResponseWriter, r *http.Request) {
	id, err := common.ParseID(mux.Vars(r)["id"], "id")
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}
	if _, err := h.chats.Chat(r.Context(), id); err != nil {
		common.WriteError(w, h.log, err)
		return
	}

	rows, err := h.presence.Presence(r.Context(), id)
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, rows)
}

func (h *Handler) listStatuses(w http.ResponseWriter, r *http.Request) {
	id, err := common.ParseID(mux.Vars(r)["id"], "id")
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}

	rows, err := h.chats.Statuses(r.Context(), id)
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, rows)
}

func (h *Handler) appendStatus(w http.ResponseWriter, r *http.Request) {
	id, err := common.ParseID(mux.Vars(r)["id"], "id")
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}

	var req AppendStatusRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, h.log, err)
		return
	}

	var occurredAt time.Time
	if req.OccurredAt != nil {
		occurredAt = req.OccurredAt.UTC()
	}
	row, err := h.chats.AppendStatus(r.Context(), id, common.MessageStatus(req.Status), occurredAt)
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, row)
}

func (h *Handler) latestStatus(w http.ResponseWriter, r *http.Request) {
	id, err := common.ParseID(mux.Vars(r)["id"], "id")
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}

	row, err := h.chats.LatestStatus(r.Context(), id)
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, row)
}

func (h *Handler) listChannels(w http.ResponseWriter, r *http.Request) {
	channels, err := h.chats.Channels(r.Context())
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, channels)
}

func (h *Handler) createChannel(w http.ResponseWriter, r *http.Request) {
	var req CreateChannelRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, h.log, err)
		return
	}

	ch, err := h.chats.CreateChannel(r.Context(), req)
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, ch)
}

type webhookResult struct {
	Received int `json:"received"`
	Skipped  int `json:"skipped"`
}

// evolutionWebhook is public; every event is authenticated by the apikey
// of the channel it names.
func (h *Handler) evolutionWebhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBody))
	if err != nil {
		common.WriteError(w, h.log, common.NewValidationError("body", "could not be read"))
		return
	}

	events, skipped, err := ParseEvolutionEvents(body)
	if err != nil {
		h.log.Warn("unrecognized webhook payload", zap.Error(err))
		common.WriteError(w, h.log, err)
		return
	}
	for _, e := range skipped {
		h.log.Warn("webhook event skipped", zap.Error(e))
	}

	result := webhookResult{Skipped: len(skipped)}
	for _, ev := range events {
		switch ev := ev.(type) {
		case *InboundMessage:
			_, err = h.chats.ReceiveInbound(r.Context(), ev)
		case *StatusEvent:
			_, err = h.chats.ApplyProviderStatus(r.Context(), ev)
			if errors.Is(err, common.ErrNotFound) {
				// status for a message this system never stored
				h.log.Debug("status for unknown message", zap.String("external_id", ev.MessageID))
				result.Skipped++
				continue
			}
		}
		if err != nil {
			common.WriteError(w, h.log, err)
			return
		}
		result.Received++
	}
	common.WriteJSON(w, http.StatusOK, result)
}
