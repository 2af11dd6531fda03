package chat

import (
	"context"
	"regexp"
	"testing"
	"time"

	"agilefinance/internal/common"
	"agilefinance/internal/dbsql"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return gormDB, mock, func() { db.Close() }
}

var (
	chatColumns    = []string{"id", "contact_id", "channel_id", "last_message_id", "status", "created_at", "updated_at"}
	channelColumns = []string{"id", "name", "provider", "instance", "server_url", "api_key", "active", "created_at", "updated_at"}
	messageColumns = []string{"id", "chat_id", "channel_id", "contact_id", "user_id", "direction", "content", "content_type", "file_url", "file_id", "status", "status_at", "external_id", "metadata", "created_at"}
)

func TestChatRepository_CreateMessageMovesPointer(t *testing.T) {
	tests := []struct {
		name      string
		mockSetup func(sqlmock.Sqlmock)
		wantErr   error
	}{
		{
			name: "insert and pointer update share a transaction",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `chat_messages`")).
					WillReturnResult(sqlmock.NewResult(31, 1))
				mock.ExpectExec(regexp.QuoteMeta("UPDATE `chats` SET `last_message_id`=?")).
					WithArgs(uint64(31), sqlmock.AnyArg(), uint64(5)).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "missing chat rolls the insert back",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `chat_messages`")).
					WillReturnResult(sqlmock.NewResult(31, 1))
				mock.ExpectExec(regexp.QuoteMeta("UPDATE `chats`")).
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectRollback()
			},
			wantErr: common.ErrNotFound,
		},
		{
			name: "insert failure",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `chat_messages`")).
					WillReturnError(assert.AnError)
				mock.ExpectRollback()
			},
			wantErr: assert.AnError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, cleanup := setupTestDB(t)
			defer cleanup()
			tt.mockSetup(mock)

			repo := NewChatRepository(db)
			m := &dbsql.ChatMessage{
				ChatID:      5,
				ChannelID:   1,
				Direction:   string(common.DirectionInbound),
				Content:     "oi",
				ContentType: string(common.ContentTypeText),
				Status:      string(common.MessageStatusSent),
			}
			err := repo.CreateMessage(context.Background(), m)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, uint64(31), m.ID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestChatRepository_FindOrCreateChat(t *testing.T) {
	now := time.Now()

	t.Run("existing chat", func(t *testing.T) {
		db, mock, cleanup := setupTestDB(t)
		defer cleanup()

		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `chats` WHERE `chats`.`contact_id` = ? AND `chats`.`channel_id` = ?")).
			WillReturnRows(sqlmock.NewRows(chatColumns).AddRow(5, 10, 1, nil, ChatStatusOpen, now, now))

		c, err := NewChatRepository(db).FindOrCreateChat(context.Background(), 10, 1)
		require.NoError(t, err)
		assert.Equal(t, uint64(5), c.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("opens a chat when none exists", func(t *testing.T) {
		db, mock, cleanup := setupTestDB(t)
		defer cleanup()

		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `chats`")).
			WillReturnRows(sqlmock.NewRows(chatColumns))
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `chats`")).
			WillReturnResult(sqlmock.NewResult(6, 1))
		mock.ExpectCommit()

		c, err := NewChatRepository(db).FindOrCreateChat(context.Background(), 10, 1)
		require.NoError(t, err)
		assert.Equal(t, uint64(6), c.ID)
		assert.Equal(t, uint64(10), c.ContactID)
		assert.Equal(t, uint64(1), c.ChannelID)
		assert.Equal(t, ChatStatusOpen, c.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestChatRepository_ChatByIDPreloads(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()
	mock.MatchExpectationsInOrder(false)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `chats`")).
		WillReturnRows(sqlmock.NewRows(chatColumns).AddRow(5, 10, 1, 31, ChatStatusOpen, now, now))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `contacts`")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "type", "contact"}).AddRow(10, "whatsapp", "5511987654321"))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `chat_messages`")).
		WillReturnRows(sqlmock.NewRows(messageColumns).
			AddRow(31, 5, 1, 10, nil, "INBOUND", "oi", "text", "", "", "SENT", nil, "3EB0", nil, now))

	c, err := NewChatRepository(db).ChatByID(context.Background(), 5)
	require.NoError(t, err)
	require.NotNil(t, c.Contact)
	require.NotNil(t, c.LastMessage)
	assert.Equal(t, "5511987654321", c.Contact.Value)
	assert.Equal(t, "oi", c.LastMessage.Content)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChatRepository_ChannelByInstance(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `channels` WHERE instance = ?")).
		WillReturnRows(sqlmock.NewRows(channelColumns).
			AddRow(1, "Financeiro", "evolution", "finance-wa", "https://evo.local", "k1", true, now, now))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `channels` WHERE instance = ?")).
		WillReturnRows(sqlmock.NewRows(channelColumns))

	repo := NewChatRepository(db)
	ch, err := repo.ChannelByInstance(context.Background(), "finance-wa")
	require.NoError(t, err)
	assert.Equal(t, "k1", ch.APIKey)

	_, err = repo.ChannelByInstance(context.Background(), "ghost")
	assert.ErrorIs(t, err, common.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChatRepository_Messages(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `chat_messages` WHERE chat_id = ?")).
		WithArgs(uint64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `chat_messages` WHERE chat_id = ? ORDER BY created_at DESC, id DESC LIMIT")).
		WillReturnRows(sqlmock.NewRows(messageColumns).
			AddRow(12, 5, 1, 10, nil, "INBOUND", "b", "text", "", "", "SENT", nil, "", nil, now).
			AddRow(11, 5, 1, 10, nil, "INBOUND", "a", "text", "", "", "READ", now, "", `{"instance":"i"}`, now))

	items, total, err := NewChatRepository(db).Messages(context.Background(), 5, common.PageQuery{Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(12), total)
	require.Len(t, items, 2)
	assert.Equal(t, "i", items[1].Metadata["instance"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChatRepository_MessageByExternalID(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `chat_messages` WHERE channel_id = ? AND external_id = ?")).
		WillReturnRows(sqlmock.NewRows(messageColumns))

	_, err := NewChatRepository(db).MessageByExternalID(context.Background(), 1, "missing")
	assert.ErrorIs(t, err, common.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatusRepository_Append(t *testing.T) {
	at := time.Date(2024, 5, 29, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		affected    int64
		wantApplied bool
	}{
		{name: "newer status moves the message", affected: 1, wantApplied: true},
		{name: "older status only lands in history", affected: 0, wantApplied: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, cleanup := setupTestDB(t)
			defer cleanup()

			mock.ExpectBegin()
			mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `chat_message_statuses`")).
				WillReturnResult(sqlmock.NewResult(3, 1))
			mock.ExpectExec(regexp.QuoteMeta("UPDATE `chat_messages` SET `status`=?,`status_at`=? WHERE id = ? AND (status_at IS NULL OR status_at <= ?)")).
				WithArgs("READ", at, uint64(31), at).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))
			mock.ExpectCommit()

			row := &dbsql.ChatMessageStatus{MessageID: 31, Status: "READ", OccurredAt: at}
			applied, err := NewStatusRepository(db).Append(context.Background(), row)
			require.NoError(t, err)
			assert.Equal(t, tt.wantApplied, applied)
			assert.Equal(t, uint64(3), row.ID)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestStatusRepository_HistoryKeepsEveryRow(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()
	base := time.Date(2024, 5, 29, 12, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "message_id", "status", "occurred_at"})
	statuses := []string{"SENT", "DELIVERED", "READ", "READ"}
	for i, s := range statuses {
		rows.AddRow(i+1, 31, s, base.Add(time.Duration(i)*time.Second))
	}
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `chat_message_statuses` WHERE message_id = ? ORDER BY occurred_at, id")).
		WithArgs(uint64(31)).
		WillReturnRows(rows)
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY occurred_at DESC, id DESC")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "message_id", "status", "occurred_at"}).
			AddRow(4, 31, "READ", base.Add(3*time.Second)))

	repo := NewStatusRepository(db)
	history, err := repo.ByMessage(context.Background(), 31)
	require.NoError(t, err)
	require.Len(t, history, len(statuses))
	for i, row := range history {
		assert.Equal(t, statuses[i], row.Status)
	}

	latest, err := repo.Latest(context.Background(), 31)
	require.NoError(t, err)
	assert.Equal(t, uint64(4), latest.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPresenceRepository_UpsertUpdatesInPlace(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()
	now := time.Now().UTC()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `chat_contact_statuses` .*ON DUPLICATE KEY UPDATE .*`is_typing`.*`updated_at`").
		WillReturnResult(sqlmock.NewResult(1, 2))
	mock.ExpectCommit()

	row := &dbsql.ChatContactStatus{ContactID: 10, ChatID: 5, IsTyping: true, UpdatedAt: now}
	err := NewPresenceRepository(db).Upsert(context.Background(), row, "is_typing", "updated_at")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPresenceRepository_TrackedChats(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT `chat_id` FROM `chat_contact_statuses` WHERE contact_id = ?")).
		WithArgs(uint64(10)).
		WillReturnRows(sqlmock.NewRows([]string{"chat_id"}).AddRow(3).AddRow(5))

	ids, err := NewPresenceRepository(db).TrackedChats(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, []uint64{3, 5}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}
