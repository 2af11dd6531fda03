package chat

import (
	"bytes"
	"context"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"agilefinance/internal/common"
	"agilefinance/internal/config"
	"agilefinance/internal/contact"
	"agilefinance/internal/dbsql"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxPushNameLength = 100

type SendMessageRequest struct {
	Content     string `json:"content" validate:"required,max=4096"`
	ContentType string `json:"contentType" validate:"omitempty,oneof=text"`
}

type AppendStatusRequest struct {
	Status     string     `json:"status" validate:"required,oneof=SENT DELIVERED READ"`
	OccurredAt *time.Time `json:"occurredAt"`
}

type CreateChannelRequest struct {
	Name      string `json:"name" validate:"required,max=100"`
	Provider  string `json:"provider" validate:"required,max=50"`
	Instance  string `json:"instance" validate:"required,max=100"`
	ServerURL string `json:"serverUrl" validate:"required,url,max=255"`
	APIKey    string `json:"apiKey" validate:"required,max=255"`
}

// StatusUpdateEvent is the STATUS_UPDATE socket payload.
type StatusUpdateEvent struct {
	MessageID  uint64    `json:"messageId"`
	ChatID     uint64    `json:"chatId"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurredAt"`
}

type ChatService interface {
	ReceiveInbound(ctx context.Context, msg *InboundMessage) (*dbsql.ChatMessage, error)
	SendMessage(ctx context.Context, chatID, senderID uint64, req SendMessageRequest) (*dbsql.ChatMessage, error)
	AppendStatus(ctx context.Context, messageID uint64, status common.MessageStatus, occurredAt time.Time) (*dbsql.ChatMessageStatus, error)
	ApplyProviderStatus(ctx context.Context, ev *StatusEvent) (*dbsql.ChatMessageStatus, error)
	Statuses(ctx context.Context, messageID uint64) ([]dbsql.ChatMessageStatus, error)
	LatestStatus(ctx context.Context, messageID uint64) (*dbsql.ChatMessageStatus, error)
	Messages(ctx context.Context, chatID uint64, page common.PageQuery) (common.Paginated[dbsql.ChatMessage], error)
	Chats(ctx context.Context, filter ChatFilter, page common.PageQuery) (common.Paginated[dbsql.Chat], error)
	Chat(ctx context.Context, id uint64) (*dbsql.Chat, error)
	CreateChannel(ctx context.Context, req CreateChannelRequest) (*dbsql.Channel, error)
	Channels(ctx context.Context) ([]dbsql.Channel, error)
}

type chatService struct {
	repo         ChatRepository
	statuses     StatusRepository
	contacts     contact.ContactService
	sender       Sender
	files        common.FileStore
	emitter      common.Emitter
	filesBaseURL string
	log          *zap.Logger
}

// NewChatService wires the chat core. files may be nil, in which case
// inbound attachments keep only the provider URL.
func NewChatService(
	repo ChatRepository,
	statuses StatusRepository,
	contacts contact.ContactService,
	sender Sender,
	files common.FileStore,
	emitter common.Emitter,
	server config.ServerConfig,
	log *zap.Logger,
) ChatService {
	return &chatService{
		repo:         repo,
		statuses:     statuses,
		contacts:     contacts,
		sender:       sender,
		files:        files,
		emitter:      emitter,
		filesBaseURL: server.FilesBaseURL,
		log:          log,
	}
}

// channelFor resolves the channel an event came from and checks the apikey
// the provider sent along with it.
func (s *chatService) channelFor(ctx context.Context, instance, apiKey string) (*dbsql.Channel, error) {
	if instance == "" {
		return nil, fmt.Errorf("instance missing: %w", common.ErrUnknownChannel)
	}
	ch, err := s.repo.ChannelByInstance(ctx, instance)
	if errors.Is(err, common.ErrNotFound) {
		return nil, fmt.Errorf("instance %q: %w", instance, common.ErrUnknownChannel)
	}
	if err != nil {
		return nil, err
	}
	if !ch.Active {
		return nil, fmt.Errorf("instance %q is inactive: %w", instance, common.ErrUnknownChannel)
	}
	if ch.APIKey != "" && subtle.ConstantTimeCompare([]byte(ch.APIKey), []byte(apiKey)) != 1 {
		return nil, fmt.Errorf("apikey mismatch for instance %q: %w", instance, common.ErrUnauthorized)
	}
	return ch, nil
}

func (s *chatService) ReceiveInbound(ctx context.Context, msg *InboundMessage) (*dbsql.ChatMessage, error) {
	ch, err := s.channelFor(ctx, msg.Instance, msg.APIKey)
	if err != nil {
		return nil, err
	}

	pushName := truncateRunes(strings.TrimSpace(msg.PushName), maxPushNameLength)
	ct, err := s.contacts.FindOrCreateByValue(ctx, common.ContactTypeWhatsApp, jidUser(msg.RemoteJID), pushName)
	if err != nil {
		return nil, fmt.Errorf("resolve contact: %w", err)
	}

	c, err := s.repo.FindOrCreateChat(ctx, ct.ID, ch.ID)
	if err != nil {
		return nil, fmt.Errorf("resolve chat: %w", err)
	}

	direction := common.DirectionInbound
	if msg.FromMe {
		direction = common.DirectionOutbound
	}

	metadata := dbsql.JSONMap{
		"instance":    msg.Instance,
		"messageType": string(msg.Payload.ContentType),
		"remoteJid":   msg.RemoteJID,
	}
	if pushName != "" {
		metadata["pushName"] = pushName
	}
	if len(msg.Payload.FileMetadata) > 0 {
		metadata["file"] = msg.Payload.FileMetadata
	}
	if !msg.SentAt.IsZero() {
		metadata["providerTimestamp"] = msg.SentAt.UTC().Format(time.RFC3339)
	}

	m := &dbsql.ChatMessage{
		ChatID:      c.ID,
		ChannelID:   ch.ID,
		ContactID:   &ct.ID,
		Direction:   string(direction),
		Content:     msg.Payload.Content,
		ContentType: string(msg.Payload.ContentType),
		FileURL:     msg.Payload.FileURL,
		Status:      string(common.MessageStatusSent),
		ExternalID:  msg.MessageID,
		Metadata:    metadata,
	}

	if msg.Payload.Base64 != "" {
		if err := s.storeAttachment(ctx, msg, m); err != nil {
			return nil, err
		}
	}

	if err := s.repo.CreateMessage(ctx, m); err != nil {
		return nil, fmt.Errorf("persist message: %w", err)
	}

	s.log.Info("inbound message stored",
		zap.Uint64("message_id", m.ID),
		zap.Uint64("chat_id", c.ID),
		zap.String("instance", ch.Instance),
		zap.String("direction", m.Direction),
		zap.String("content_type", m.ContentType),
	)
	s.emitter.Emit(common.ChatRoom(c.ID), common.EventNewMessage, m)
	return m, nil
}

func (s *chatService) storeAttachment(ctx context.Context, msg *InboundMessage, m *dbsql.ChatMessage) error {
	if s.files == nil {
		s.log.Warn("file storage disabled, attachment dropped", zap.String("external_id", msg.MessageID))
		return nil
	}

	data, err := decodeBase64(msg.Payload.Base64)
	if err != nil {
		return common.NewValidationError("base64", "is not valid base64")
	}

	mimeType, _ := msg.Payload.FileMetadata["mimetype"].(string)
	if mimeType == "" {
		mimeType = http.DetectContentType(data)
	}
	filename, _ := msg.Payload.FileMetadata["fileName"].(string)
	if filename == "" {
		filename = uuid.NewString()
	}

	stored, err := s.files.Upload(ctx, filename, mimeType, "channel:"+msg.Instance, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("store attachment: %w", err)
	}
	m.FileID = stored.ID
	m.FileURL = s.filesBaseURL + stored.ID
	return nil
}

func (s *chatService) SendMessage(ctx context.Context, chatID, senderID uint64, req SendMessageRequest) (*dbsql.ChatMessage, error) {
	if err := common.Validate(req); err != nil {
		return nil, err
	}

	c, err := s.repo.ChatByID(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if c.Contact == nil {
		return nil, fmt.Errorf("chat %d has no contact", chatID)
	}
	ch, err := s.repo.ChannelByID(ctx, c.ChannelID)
	if err != nil {
		return nil, err
	}
	if !ch.Active {
		return nil, fmt.Errorf("channel %d is inactive: %w", ch.ID, common.ErrConflict)
	}

	externalID, err := s.sender.SendText(ctx, ch, c.Contact.Value, req.Content)
	if err != nil {
		return nil, fmt.Errorf("deliver message: %w", err)
	}

	m := &dbsql.ChatMessage{
		ChatID:      c.ID,
		ChannelID:   ch.ID,
		ContactID:   &c.ContactID,
		UserID:      &senderID,
		Direction:   string(common.DirectionOutbound),
		Content:     req.Content,
		ContentType: string(common.ContentTypeText),
		Status:      string(common.MessageStatusSent),
		ExternalID:  externalID,
	}
	if err := s.repo.CreateMessage(ctx, m); err != nil {
		// the provider already has the message; only our copy is missing
		s.log.Error("outbound message delivered but not stored",
			zap.Uint64("chat_id", c.ID),
			zap.String("external_id", externalID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("persist message: %w", err)
	}

	s.emitter.Emit(common.ChatRoom(c.ID), common.EventNewMessage, m)
	return m, nil
}

func (s *chatService) AppendStatus(ctx context.Context, messageID uint64, status common.MessageStatus, occurredAt time.Time) (*dbsql.ChatMessageStatus, error) {
	if !status.IsValid() {
		return nil, common.NewValidationError("status", "must be one of [SENT DELIVERED READ]")
	}
	if occurredAt.IsZero() {
		occurredAt = time.Now().UTC()
	}

	m, err := s.repo.MessageByID(ctx, messageID)
	if err != nil {
		return nil, err
	}

	row := &dbsql.ChatMessageStatus{
		MessageID:  m.ID,
		Status:     string(status),
		OccurredAt: occurredAt,
	}
	applied, err := s.statuses.Append(ctx, row)
	if err != nil {
		return nil, err
	}

	if applied {
		s.emitter.Emit(common.ChatRoom(m.ChatID), common.EventStatusUpdate, StatusUpdateEvent{
			MessageID:  m.ID,
			ChatID:     m.ChatID,
			Status:     row.Status,
			OccurredAt: row.OccurredAt,
		})
	} else {
		s.log.Debug("stale status kept in history only",
			zap.Uint64("message_id", m.ID),
			zap.String("status", row.Status),
			zap.Time("occurred_at", occurredAt),
		)
	}
	return row, nil
}

func (s *chatService) ApplyProviderStatus(ctx context.Context, ev *StatusEvent) (*dbsql.ChatMessageStatus, error) {
	ch, err := s.channelFor(ctx, ev.Instance, ev.APIKey)
	if err != nil {
		return nil, err
	}
	m, err := s.repo.MessageByExternalID(ctx, ch.ID, ev.MessageID)
	if err != nil {
		return nil, err
	}
	return s.AppendStatus(ctx, m.ID, ev.Status, ev.OccurredAt)
}

func (s *chatService) Statuses(ctx context.Context, messageID uint64) ([]dbsql.ChatMessageStatus, error) {
	if _, err := s.repo.MessageByID(ctx, messageID); err != nil {
		return nil, err
	}
	return s.statuses.ByMessage(ctx, messageID)
}

func (s *chatService) LatestStatus(ctx context.Context, messageID uint64) (*dbsql.ChatMessageStatus, error) {
	return s.statuses.Latest(ctx, messageID)
}

func (s *chatService) Messages(ctx context.Context, chatID uint64, page common.PageQuery) (common.Paginated[dbsql.ChatMessage], error) {
	if _, err := s.repo.ChatByID(ctx, chatID); err != nil {
		return common.Paginated[dbsql.ChatMessage]{}, err
	}
	items, total, err := s.repo.Messages(ctx, chatID, page)
	if err != nil {
		return common.Paginated[dbsql.ChatMessage]{}, err
	}
	return common.NewPaginated(items, total, page), nil
}

func (s *chatService) Chats(ctx context.Context, filter ChatFilter, page common.PageQuery) (common.Paginated[dbsql.Chat], error) {
	items, total, err := s.repo.ListChats(ctx, filter, page)
	if err != nil {
		return common.Paginated[dbsql.Chat]{}, err
	}
	return common.NewPaginated(items, total, page), nil
}

func (s *chatService) Chat(ctx context.Context, id uint64) (*dbsql.Chat, error) {
	return s.repo.ChatByID(ctx, id)
}

func (s *chatService) CreateChannel(ctx context.Context, req CreateChannelRequest) (*dbsql.Channel, error) {
	if err := common.Validate(req); err != nil {
		return nil, err
	}

	_, err := s.repo.ChannelByInstance(ctx, req.Instance)
	if err == nil {
		return nil, fmt.Errorf("instance %q already registered: %w", req.Instance, common.ErrConflict)
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}

	ch := &dbsql.Channel{
		Name:      req.Name,
		Provider:  req.Provider,
		Instance:  req.Instance,
		ServerURL: req.ServerURL,
		APIKey:    req.APIKey,
		Active:    true,
	}
	if err := s.repo.CreateChannel(ctx, ch); err != nil {
		return nil, err
	}
	s.log.Info("channel created", zap.Uint64("channel_id", ch.ID), zap.String("instance", ch.Instance))
	return ch, nil
}

func (s *chatService) Channels(ctx context.Context) ([]dbsql.Channel, error) {
	return s.repo.Channels(ctx)
}

// jidUser strips the server part of a WhatsApp JID.
func jidUser(jid string) string {
	if i := strings.IndexByte(jid, '@'); i >= 0 {
		jid = jid[:i]
	}
	// device suffix, e.g. 5511999999999:12
	if i := strings.IndexByte(jid, ':'); i >= 0 {
		jid = jid[:i]
	}
	return jid
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

func decodeBase64(s string) ([]byte, error) {
	if i := strings.Index(s, ";base64,"); i >= 0 {
		s = s[i+len(";base64,"):]
	}
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return base64.RawStdEncoding.DecodeString(s)
	}
	return data, nil
}
