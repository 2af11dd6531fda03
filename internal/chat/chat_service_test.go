package chat

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"agilefinance/internal/common"
	"agilefinance/internal/config"
	"agilefinance/internal/contact"
	"agilefinance/internal/dbsql"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const filesBase = "http://localhost:3000/api/v1/files/"

type serviceFixture struct {
	repo     *MockChatRepository
	statuses *MockStatusRepository
	contacts *contact.MockContactService
	sender   *MockSender
	files    *common.MockFileStore
	emitter  *common.MockEmitter
	svc      ChatService
}

func newServiceFixture(t *testing.T, statuses StatusRepository) *serviceFixture {
	ctrl := gomock.NewController(t)
	f := &serviceFixture{
		repo:     NewMockChatRepository(ctrl),
		statuses: NewMockStatusRepository(ctrl),
		contacts: contact.NewMockContactService(ctrl),
		sender:   NewMockSender(ctrl),
		files:    common.NewMockFileStore(ctrl),
		emitter:  common.NewMockEmitter(ctrl),
	}
	if statuses == nil {
		statuses = f.statuses
	}
	f.svc = NewChatService(f.repo, statuses, f.contacts, f.sender, f.files, f.emitter,
		config.ServerConfig{FilesBaseURL: filesBase}, zap.NewNop())
	return f
}

func financeChannel() *dbsql.Channel {
	return &dbsql.Channel{ID: 1, Name: "Financeiro", Provider: "evolution", Instance: "finance-wa",
		ServerURL: "https://evo.local", APIKey: "k1", Active: true}
}

func inboundOi() *InboundMessage {
	return &InboundMessage{
		Instance:  "finance-wa",
		APIKey:    "k1",
		RemoteJID: "5511987654321@s.whatsapp.net",
		MessageID: "3EB0A1",
		PushName:  "Ana",
		SentAt:    time.Date(2025, 3, 14, 12, 30, 0, 0, time.UTC),
		Payload:   Payload{Content: "oi", ContentType: common.ContentTypeText},
	}
}

func TestChatService_ReceiveInbound(t *testing.T) {
	ctx := context.Background()
	f := newServiceFixture(t, nil)

	f.repo.EXPECT().ChannelByInstance(ctx, "finance-wa").Return(financeChannel(), nil)
	f.contacts.EXPECT().
		FindOrCreateByValue(ctx, common.ContactTypeWhatsApp, "5511987654321", "Ana").
		Return(&dbsql.Contact{ID: 10, Type: "whatsapp", Value: "5511987654321"}, nil)
	f.repo.EXPECT().FindOrCreateChat(ctx, uint64(10), uint64(1)).
		Return(&dbsql.Chat{ID: 5, ContactID: 10, ChannelID: 1, Status: ChatStatusOpen}, nil)

	var stored *dbsql.ChatMessage
	f.repo.EXPECT().CreateMessage(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, m *dbsql.ChatMessage) error {
			m.ID = 31
			stored = m
			return nil
		})
	f.emitter.EXPECT().Emit("chat:5", common.EventNewMessage, gomock.Any()).Do(
		func(_ string, _ string, data interface{}) {
			assert.Same(t, stored, data)
		})

	m, err := f.svc.ReceiveInbound(ctx, inboundOi())
	require.NoError(t, err)

	assert.Equal(t, uint64(31), m.ID)
	assert.Equal(t, uint64(5), m.ChatID)
	assert.Equal(t, string(common.DirectionInbound), m.Direction)
	assert.Equal(t, string(common.MessageStatusSent), m.Status)
	assert.Equal(t, "oi", m.Content)
	assert.Equal(t, "3EB0A1", m.ExternalID)
	require.NotNil(t, m.ContactID)
	assert.Equal(t, uint64(10), *m.ContactID)
	assert.Equal(t, "Ana", m.Metadata["pushName"])
	assert.Equal(t, "2025-03-14T12:30:00Z", m.Metadata["providerTimestamp"])
	assert.NotContains(t, m.Metadata, "apikey")
}

func TestChatService_ReceiveInbound_FromMeIsOutbound(t *testing.T) {
	ctx := context.Background()
	f := newServiceFixture(t, nil)

	f.repo.EXPECT().ChannelByInstance(ctx, "finance-wa").Return(financeChannel(), nil)
	f.contacts.EXPECT().FindOrCreateByValue(ctx, common.ContactTypeWhatsApp, "5511987654321", "Ana").
		Return(&dbsql.Contact{ID: 10}, nil)
	f.repo.EXPECT().FindOrCreateChat(ctx, uint64(10), uint64(1)).Return(&dbsql.Chat{ID: 5}, nil)
	f.repo.EXPECT().CreateMessage(ctx, gomock.Any()).Return(nil)
	f.emitter.EXPECT().Emit("chat:5", common.EventNewMessage, gomock.Any())

	msg := inboundOi()
	msg.FromMe = true
	m, err := f.svc.ReceiveInbound(ctx, msg)
	require.NoError(t, err)
	assert.Equal(t, string(common.DirectionOutbound), m.Direction)
}

func TestChatService_ReceiveInbound_Rejections(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*InboundMessage)
		setup   func(f *serviceFixture)
		wantErr error
	}{
		{
			name:   "unknown instance",
			mutate: func(m *InboundMessage) { m.Instance = "ghost" },
			setup: func(f *serviceFixture) {
				f.repo.EXPECT().ChannelByInstance(ctx, "ghost").Return(nil, common.ErrNotFound)
			},
			wantErr: common.ErrUnknownChannel,
		},
		{
			name:   "wrong apikey",
			mutate: func(m *InboundMessage) { m.APIKey = "stolen" },
			setup: func(f *serviceFixture) {
				f.repo.EXPECT().ChannelByInstance(ctx, "finance-wa").Return(financeChannel(), nil)
			},
			wantErr: common.ErrUnauthorized,
		},
		{
			name:   "inactive channel",
			mutate: func(m *InboundMessage) {},
			setup: func(f *serviceFixture) {
				ch := financeChannel()
				ch.Active = false
				f.repo.EXPECT().ChannelByInstance(ctx, "finance-wa").Return(ch, nil)
			},
			wantErr: common.ErrUnknownChannel,
		},
		{
			name:   "persistence failure is not emitted",
			mutate: func(m *InboundMessage) {},
			setup: func(f *serviceFixture) {
				f.repo.EXPECT().ChannelByInstance(ctx, "finance-wa").Return(financeChannel(), nil)
				f.contacts.EXPECT().FindOrCreateByValue(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&dbsql.Contact{ID: 10}, nil)
				f.repo.EXPECT().FindOrCreateChat(ctx, uint64(10), uint64(1)).Return(&dbsql.Chat{ID: 5}, nil)
				f.repo.EXPECT().CreateMessage(ctx, gomock.Any()).Return(assert.AnError)
			},
			wantErr: assert.AnError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newServiceFixture(t, nil)
			tt.setup(f)

			msg := inboundOi()
			tt.mutate(msg)
			_, err := f.svc.ReceiveInbound(ctx, msg)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestChatService_ReceiveInbound_StoresAttachment(t *testing.T) {
	ctx := context.Background()
	f := newServiceFixture(t, nil)

	f.repo.EXPECT().ChannelByInstance(ctx, "finance-wa").Return(financeChannel(), nil)
	f.contacts.EXPECT().FindOrCreateByValue(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&dbsql.Contact{ID: 10}, nil)
	f.repo.EXPECT().FindOrCreateChat(ctx, uint64(10), uint64(1)).Return(&dbsql.Chat{ID: 5}, nil)
	f.files.EXPECT().Upload(ctx, "comprovante.pdf", "application/pdf", "channel:finance-wa", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, _ string, r io.Reader) (*common.StoredFile, error) {
			body, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, "hello", string(body))
			return &common.StoredFile{ID: "665f1c"}, nil
		})
	f.repo.EXPECT().CreateMessage(ctx, gomock.Any()).Return(nil)
	f.emitter.EXPECT().Emit("chat:5", common.EventNewMessage, gomock.Any())

	msg := inboundOi()
	msg.Payload = Payload{
		ContentType:  common.ContentTypeDocument,
		Content:      "comprovante.pdf",
		FileURL:      "https://mmg/enc",
		FileMetadata: map[string]interface{}{"mimetype": "application/pdf", "fileName": "comprovante.pdf"},
		Base64:       "aGVsbG8=",
	}
	m, err := f.svc.ReceiveInbound(ctx, msg)
	require.NoError(t, err)
	assert.Equal(t, "665f1c", m.FileID)
	assert.Equal(t, filesBase+"665f1c", m.FileURL)
}

func TestChatService_SendMessage(t *testing.T) {
	ctx := context.Background()
	chat := &dbsql.Chat{ID: 5, ContactID: 10, ChannelID: 1,
		Contact: &dbsql.Contact{ID: 10, Value: "5511987654321"}}

	t.Run("delivered then stored", func(t *testing.T) {
		f := newServiceFixture(t, nil)
		f.repo.EXPECT().ChatByID(ctx, uint64(5)).Return(chat, nil)
		f.repo.EXPECT().ChannelByID(ctx, uint64(1)).Return(financeChannel(), nil)
		f.sender.EXPECT().SendText(ctx, gomock.Any(), "5511987654321", "olá").Return("BAE5F", nil)
		f.repo.EXPECT().CreateMessage(ctx, gomock.Any()).Return(nil)
		f.emitter.EXPECT().Emit("chat:5", common.EventNewMessage, gomock.Any())

		m, err := f.svc.SendMessage(ctx, 5, 7, SendMessageRequest{Content: "olá"})
		require.NoError(t, err)
		assert.Equal(t, string(common.DirectionOutbound), m.Direction)
		assert.Equal(t, "BAE5F", m.ExternalID)
		require.NotNil(t, m.UserID)
		assert.Equal(t, uint64(7), *m.UserID)
	})

	t.Run("provider failure stores nothing", func(t *testing.T) {
		f := newServiceFixture(t, nil)
		f.repo.EXPECT().ChatByID(ctx, uint64(5)).Return(chat, nil)
		f.repo.EXPECT().ChannelByID(ctx, uint64(1)).Return(financeChannel(), nil)
		f.sender.EXPECT().SendText(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("status 500"))

		_, err := f.svc.SendMessage(ctx, 5, 7, SendMessageRequest{Content: "olá"})
		assert.Error(t, err)
	})

	t.Run("only text can be sent", func(t *testing.T) {
		f := newServiceFixture(t, nil)
		_, err := f.svc.SendMessage(ctx, 5, 7, SendMessageRequest{Content: "x", ContentType: "image"})
		var verr *common.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "contentType")
	})

	t.Run("unknown chat", func(t *testing.T) {
		f := newServiceFixture(t, nil)
		f.repo.EXPECT().ChatByID(ctx, uint64(99)).Return(nil, common.ErrNotFound)
		_, err := f.svc.SendMessage(ctx, 99, 7, SendMessageRequest{Content: "x"})
		assert.ErrorIs(t, err, common.ErrNotFound)
	})
}

// memStatuses applies the same last-write-wins guard as the SQL repository.
type memStatuses struct {
	mu      sync.Mutex
	rows    []dbsql.ChatMessageStatus
	current map[uint64]dbsql.ChatMessageStatus
}

func newMemStatuses() *memStatuses {
	return &memStatuses{current: map[uint64]dbsql.ChatMessageStatus{}}
}

func (s *memStatuses) Append(_ context.Context, row *dbsql.ChatMessageStatus) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row.ID = uint64(len(s.rows) + 1)
	s.rows = append(s.rows, *row)
	cur, ok := s.current[row.MessageID]
	if ok && cur.OccurredAt.After(row.OccurredAt) {
		return false, nil
	}
	s.current[row.MessageID] = *row
	return true, nil
}

func (s *memStatuses) ByMessage(_ context.Context, messageID uint64) ([]dbsql.ChatMessageStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []dbsql.ChatMessageStatus
	for _, r := range s.rows {
		if r.MessageID == messageID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *memStatuses) Latest(_ context.Context, messageID uint64) (*dbsql.ChatMessageStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.current[messageID]
	if !ok {
		return nil, common.ErrNotFound
	}
	return &cur, nil
}

func TestChatService_AppendStatus_OutOfOrder(t *testing.T) {
	ctx := context.Background()
	store := newMemStatuses()
	f := newServiceFixture(t, store)

	delivered := time.Date(2024, 5, 29, 12, 0, 0, 0, time.UTC)
	read := delivered.Add(5 * time.Second)

	f.repo.EXPECT().MessageByID(ctx, uint64(31)).Return(&dbsql.ChatMessage{ID: 31, ChatID: 5}, nil).Times(3)
	f.emitter.EXPECT().Emit("chat:5", common.EventStatusUpdate, StatusUpdateEvent{
		MessageID: 31, ChatID: 5, Status: "READ", OccurredAt: read,
	}).Times(1)

	// READ arrives before DELIVERED
	_, err := f.svc.AppendStatus(ctx, 31, common.MessageStatusRead, read)
	require.NoError(t, err)
	_, err = f.svc.AppendStatus(ctx, 31, common.MessageStatusDelivered, delivered)
	require.NoError(t, err)

	latest, err := f.svc.LatestStatus(ctx, 31)
	require.NoError(t, err)
	assert.Equal(t, "READ", latest.Status)

	history, err := f.svc.Statuses(ctx, 31)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "READ", history[0].Status)
	assert.Equal(t, "DELIVERED", history[1].Status)
}

func TestChatService_AppendStatus_Validation(t *testing.T) {
	ctx := context.Background()
	f := newServiceFixture(t, nil)

	_, err := f.svc.AppendStatus(ctx, 31, "LOST", time.Now())
	var verr *common.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "status")

	f.repo.EXPECT().MessageByID(ctx, uint64(404)).Return(nil, common.ErrNotFound)
	_, err = f.svc.AppendStatus(ctx, 404, common.MessageStatusRead, time.Time{})
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestChatService_AppendStatus_DefaultsToNow(t *testing.T) {
	ctx := context.Background()
	f := newServiceFixture(t, nil)

	f.repo.EXPECT().MessageByID(ctx, uint64(31)).Return(&dbsql.ChatMessage{ID: 31, ChatID: 5}, nil)
	f.statuses.EXPECT().Append(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, row *dbsql.ChatMessageStatus) (bool, error) {
			assert.WithinDuration(t, time.Now(), row.OccurredAt, time.Second)
			return true, nil
		})
	f.emitter.EXPECT().Emit("chat:5", common.EventStatusUpdate, gomock.Any())

	_, err := f.svc.AppendStatus(ctx, 31, common.MessageStatusDelivered, time.Time{})
	require.NoError(t, err)
}

func TestChatService_ApplyProviderStatus(t *testing.T) {
	ctx := context.Background()
	f := newServiceFixture(t, nil)
	at := time.Date(2024, 5, 29, 12, 0, 0, 0, time.UTC)

	f.repo.EXPECT().ChannelByInstance(ctx, "finance-wa").Return(financeChannel(), nil)
	f.repo.EXPECT().MessageByExternalID(ctx, uint64(1), "3EB0A1").Return(&dbsql.ChatMessage{ID: 31, ChatID: 5}, nil)
	f.repo.EXPECT().MessageByID(ctx, uint64(31)).Return(&dbsql.ChatMessage{ID: 31, ChatID: 5}, nil)
	f.statuses.EXPECT().Append(ctx, gomock.Any()).Return(true, nil)
	f.emitter.EXPECT().Emit("chat:5", common.EventStatusUpdate, StatusUpdateEvent{
		MessageID: 31, ChatID: 5, Status: "DELIVERED", OccurredAt: at,
	})

	row, err := f.svc.ApplyProviderStatus(ctx, &StatusEvent{
		Instance: "finance-wa", APIKey: "k1", MessageID: "3EB0A1",
		Status: common.MessageStatusDelivered, OccurredAt: at,
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(31), row.MessageID)
}

func TestChatService_CreateChannel(t *testing.T) {
	ctx := context.Background()
	req := CreateChannelRequest{Name: "Financeiro", Provider: "evolution", Instance: "finance-wa",
		ServerURL: "https://evo.local", APIKey: "k1"}

	t.Run("created", func(t *testing.T) {
		f := newServiceFixture(t, nil)
		f.repo.EXPECT().ChannelByInstance(ctx, "finance-wa").Return(nil, common.ErrNotFound)
		f.repo.EXPECT().CreateChannel(ctx, gomock.Any()).Return(nil)

		ch, err := f.svc.CreateChannel(ctx, req)
		require.NoError(t, err)
		assert.True(t, ch.Active)
	})

	t.Run("duplicate instance", func(t *testing.T) {
		f := newServiceFixture(t, nil)
		f.repo.EXPECT().ChannelByInstance(ctx, "finance-wa").Return(financeChannel(), nil)

		_, err := f.svc.CreateChannel(ctx, req)
		assert.ErrorIs(t, err, common.ErrConflict)
	})
}

func TestJIDUser(t *testing.T) {
	assert.Equal(t, "5511987654321", jidUser("5511987654321@s.whatsapp.net"))
	assert.Equal(t, "5511987654321", jidUser("5511987654321:12@s.whatsapp.net"))
	assert.Equal(t, "5511987654321", jidUser("5511987654321"))
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "ção", truncateRunes("ção", 3))
	assert.Equal(t, "çã", truncateRunes("ção", 2))
}
