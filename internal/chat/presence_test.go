package chat

import (
	"context"
	"sort"
	"sync"
	"testing"

	"agilefinance/internal/common"
	"agilefinance/internal/dbsql"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type presenceKey struct{ contact, chat uint64 }

// memPresence mimics the unique (contact_id, chat_id) upsert.
type memPresence struct {
	mu   sync.Mutex
	rows map[presenceKey]dbsql.ChatContactStatus
}

func newMemPresence() *memPresence {
	return &memPresence{rows: map[presenceKey]dbsql.ChatContactStatus{}}
}

func (p *memPresence) Upsert(_ context.Context, row *dbsql.ChatContactStatus, columns ...string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	k := presenceKey{row.ContactID, row.ChatID}
	cur, ok := p.rows[k]
	if !ok {
		p.rows[k] = *row
		return nil
	}
	for _, c := range columns {
		switch c {
		case "is_online":
			cur.IsOnline = row.IsOnline
		case "is_typing":
			cur.IsTyping = row.IsTyping
		case "last_seen":
			cur.LastSeen = row.LastSeen
		case "updated_at":
			cur.UpdatedAt = row.UpdatedAt
		}
	}
	p.rows[k] = cur
	return nil
}

func (p *memPresence) Get(_ context.Context, contactID, chatID uint64) (*dbsql.ChatContactStatus, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	row, ok := p.rows[presenceKey{contactID, chatID}]
	if !ok {
		return nil, common.ErrNotFound
	}
	return &row, nil
}

func (p *memPresence) ByChat(_ context.Context, chatID uint64) ([]dbsql.ChatContactStatus, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []dbsql.ChatContactStatus
	for k, row := range p.rows {
		if k.chat == chatID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (p *memPresence) TrackedChats(_ context.Context, contactID uint64) ([]uint64, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []uint64
	for k := range p.rows {
		if k.contact == contactID {
			out = append(out, k.chat)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

func TestPresenceService_TypingFlip(t *testing.T) {
	ctrl := gomock.NewController(t)
	emitter := common.NewMockEmitter(ctrl)
	store := newMemPresence()
	svc := NewPresenceService(store, emitter, zap.NewNop())
	ctx := context.Background()

	gomock.InOrder(
		emitter.EXPECT().Emit("chat:5", common.EventChatStatus, gomock.Any()),
		emitter.EXPECT().Emit("chat:5", common.EventTyping, TypingEvent{ContactID: 10, ChatID: 5, IsTyping: true}),
		emitter.EXPECT().Emit("chat:5", common.EventTyping, TypingEvent{ContactID: 10, ChatID: 5, IsTyping: false}),
	)

	require.NoError(t, svc.MarkOnline(ctx, 10, 5))
	require.NoError(t, svc.SetTyping(ctx, 10, 5, true))

	row, err := store.Get(ctx, 10, 5)
	require.NoError(t, err)
	assert.True(t, row.IsTyping)
	assert.True(t, row.IsOnline)

	require.NoError(t, svc.SetTyping(ctx, 10, 5, false))
	row, err = store.Get(ctx, 10, 5)
	require.NoError(t, err)
	assert.False(t, row.IsTyping)

	rows, err := svc.Presence(ctx, 5)
	require.NoError(t, err)
	assert.Len(t, rows, 1, "presence stays one row per contact and chat")
}

func TestPresenceService_OfflineClearsTyping(t *testing.T) {
	ctrl := gomock.NewController(t)
	emitter := common.NewMockEmitter(ctrl)
	emitter.EXPECT().Emit(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	store := newMemPresence()
	svc := NewPresenceService(store, emitter, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, svc.SetTyping(ctx, 10, 5, true))
	require.NoError(t, svc.MarkOffline(ctx, 10, 5))

	row, err := store.Get(ctx, 10, 5)
	require.NoError(t, err)
	assert.False(t, row.IsOnline)
	assert.False(t, row.IsTyping)
	require.NotNil(t, row.LastSeen)
}

func TestPresenceService_ChatStatusPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	emitter := common.NewMockEmitter(ctrl)
	svc := NewPresenceService(newMemPresence(), emitter, zap.NewNop())

	emitter.EXPECT().Emit("chat:7", common.EventChatStatus, gomock.Any()).Do(
		func(_ string, _ string, data interface{}) {
			ev, ok := data.(ChatStatusEvent)
			require.True(t, ok)
			assert.Equal(t, uint64(3), ev.ContactID)
			assert.Equal(t, uint64(7), ev.ChatID)
			assert.True(t, ev.IsOnline)
			assert.NotNil(t, ev.LastSeen)
		})

	require.NoError(t, svc.MarkOnline(context.Background(), 3, 7))
}

func TestPresenceService_TrackedChats(t *testing.T) {
	ctrl := gomock.NewController(t)
	emitter := common.NewMockEmitter(ctrl)
	emitter.EXPECT().Emit(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	svc := NewPresenceService(newMemPresence(), emitter, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, svc.MarkOnline(ctx, 10, 8))
	require.NoError(t, svc.MarkOnline(ctx, 10, 3))
	require.NoError(t, svc.MarkOnline(ctx, 11, 4))

	ids, err := svc.TrackedChats(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, []uint64{3, 8}, ids)
}

func TestPresenceService_UpsertFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockPresenceRepository(ctrl)
	emitter := common.NewMockEmitter(ctrl)
	svc := NewPresenceService(repo, emitter, zap.NewNop())

	repo.EXPECT().Upsert(gomock.Any(), gomock.Any(), "is_typing", "is_online", "updated_at").Return(assert.AnError)

	err := svc.SetTyping(context.Background(), 10, 5, true)
	assert.ErrorIs(t, err, assert.AnError)
}
