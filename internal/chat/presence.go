package chat

import (
	"context"
	"time"

	"agilefinance/internal/common"
	"agilefinance/internal/dbsql"

	"go.uber.org/zap"
)

// ChatStatusEvent is the CHAT_STATUS socket payload.
type ChatStatusEvent struct {
	ContactID uint64     `json:"contactId"`
	ChatID    uint64     `json:"chatId"`
	IsOnline  bool       `json:"isOnline"`
	LastSeen  *time.Time `json:"lastSeen"`
}

type TypingEvent struct {
	ContactID uint64 `json:"contactId"`
	ChatID    uint64 `json:"chatId"`
	IsTyping  bool   `json:"isTyping"`
}

// PresenceService keeps one row per (contact, chat). Typing stays on until
// the client says otherwise or disconnects.
type PresenceService interface {
	MarkOnline(ctx context.Context, contactID, chatID uint64) error
	MarkOffline(ctx context.Context, contactID, chatID uint64) error
	SetTyping(ctx context.Context, contactID, chatID uint64, typing bool) error
	Presence(ctx context.Context, chatID uint64) ([]dbsql.ChatContactStatus, error)
	TrackedChats(ctx context.Context, contactID uint64) ([]uint64, error)
}

type presenceService struct {
	repo    PresenceRepository
	emitter common.Emitter
	log     *zap.Logger
}

func NewPresenceService(repo PresenceRepository, emitter common.Emitter, log *zap.Logger) PresenceService {
	return &presenceService{repo: repo, emitter: emitter, log: log}
}

func (s *presenceService) MarkOnline(ctx context.Context, contactID, chatID uint64) error {
	return s.setOnline(ctx, contactID, chatID, true)
}

func (s *presenceService) MarkOffline(ctx context.Context, contactID, chatID uint64) error {
	return s.setOnline(ctx, contactID, chatID, false)
}

func (s *presenceService) setOnline(ctx context.Context, contactID, chatID uint64, online bool) error {
	now := time.Now().UTC()
	row := &dbsql.ChatContactStatus{
		ContactID: contactID,
		ChatID:    chatID,
		IsOnline:  online,
		LastSeen:  &now,
		UpdatedAt: now,
	}
	columns := []string{"is_online", "last_seen", "updated_at"}
	if !online {
		columns = append(columns, "is_typing")
	}
	if err := s.repo.Upsert(ctx, row, columns...); err != nil {
		return err
	}

	s.emitter.Emit(common.ChatRoom(chatID), common.EventChatStatus, ChatStatusEvent{
		ContactID: contactID,
		ChatID:    chatID,
		IsOnline:  online,
		LastSeen:  &now,
	})
	return nil
}

func (s *presenceService) SetTyping(ctx context.Context, contactID, chatID uint64, typing bool) error {
	now := time.Now().UTC()
	row := &dbsql.ChatContactStatus{
		ContactID: contactID,
		ChatID:    chatID,
		IsOnline:  true,
		IsTyping:  typing,
		LastSeen:  &now,
		UpdatedAt: now,
	}
	if err := s.repo.Upsert(ctx, row, "is_typing", "is_online", "updated_at"); err != nil {
		return err
	}

	s.emitter.Emit(common.ChatRoom(chatID), common.EventTyping, TypingEvent{
		ContactID: contactID,
		ChatID:    chatID,
		IsTyping:  typing,
	})
	return nil
}

func (s *presenceService) Presence(ctx context.Context, chatID uint64) ([]dbsql.ChatContactStatus, error) {
	return s.repo.ByChat(ctx, chatID)
}

func (s *presenceService) TrackedChats(ctx context.Context, contactID uint64) ([]uint64, error) {
	return s.repo.TrackedChats(ctx, contactID)
}
