package chat

import (
	"context"

	"agilefinance/internal/common"
	"agilefinance/internal/dbsql"

	"gorm.io/gorm"
)

const ChatStatusOpen = "OPEN"

type ChatFilter struct {
	ContactID *uint64
	ChannelID *uint64
	Status    string
}

type ChatRepository interface {
	CreateChannel(ctx context.Context, ch *dbsql.Channel) error
	Channels(ctx context.Context) ([]dbsql.Channel, error)
	ChannelByID(ctx context.Context, id uint64) (*dbsql.Channel, error)
	ChannelByInstance(ctx context.Context, instance string) (*dbsql.Channel, error)

	ChatByID(ctx context.Context, id uint64) (*dbsql.Chat, error)
	FindOrCreateChat(ctx context.Context, contactID, channelID uint64) (*dbsql.Chat, error)
	ListChats(ctx context.Context, filter ChatFilter, page common.PageQuery) ([]dbsql.Chat, int64, error)

	CreateMessage(ctx context.Context, m *dbsql.ChatMessage) error
	MessageByID(ctx context.Context, id uint64) (*dbsql.ChatMessage, error)
	MessageByExternalID(ctx context.Context, channelID uint64, externalID string) (*dbsql.ChatMessage, error)
	Messages(ctx context.Context, chatID uint64, page common.PageQuery) ([]dbsql.ChatMessage, int64, error)
}

type chatRepo struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) ChatRepository {
	return &chatRepo{db: db}
}

func (r *chatRepo) CreateChannel(ctx context.Context, ch *dbsql.Channel) error {
	return r.db.WithContext(ctx).Create(ch).Error
}

func (r *chatRepo) Channels(ctx context.Context) ([]dbsql.Channel, error) {
	var channels []dbsql.Channel
	err := r.db.WithContext(ctx).Order("id").Find(&channels).Error
	return channels, err
}

func (r *chatRepo) ChannelByID(ctx context.Context, id uint64) (*dbsql.Channel, error) {
	var ch dbsql.Channel
	if err := r.db.WithContext(ctx).First(&ch, id).Error; err != nil {
		return nil, common.NotFound(err)
	}
	return &ch, nil
}

func (r *chatRepo) ChannelByInstance(ctx context.Context, instance string) (*dbsql.Channel, error) {
	var ch dbsql.Channel
	if err := r.db.WithContext(ctx).Where("instance = ?", instance).First(&ch).Error; err != nil {
		return nil, common.NotFound(err)
	}
	return &ch, nil
}

func (r *chatRepo) ChatByID(ctx context.Context, id uint64) (*dbsql.Chat, error) {
	var c dbsql.Chat
	err := r.db.WithContext(ctx).
		Preload("Contact").
		Preload("LastMessage").
		First(&c, id).Error
	if err != nil {
		return nil, common.NotFound(err)
	}
	return &c, nil
}

// FindOrCreateChat returns the chat of the (contact, channel) pair, opening
// one when none exists yet.
func (r *chatRepo) FindOrCreateChat(ctx context.Context, contactID, channelID uint64) (*dbsql.Chat, error) {
	var c dbsql.Chat
	err := r.db.WithContext(ctx).
		Where(dbsql.Chat{ContactID: contactID, ChannelID: channelID}).
		Attrs(dbsql.Chat{Status: ChatStatusOpen}).
		FirstOrCreate(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *chatRepo) ListChats(ctx context.Context, filter ChatFilter, page common.PageQuery) ([]dbsql.Chat, int64, error) {
	var total int64
	if err := r.filteredChats(ctx, filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var chats []dbsql.Chat
	err := r.filteredChats(ctx, filter).
		Preload("Contact").
		Preload("LastMessage").
		Order("updated_at DESC, id DESC").
		Limit(page.Limit).
		Offset(page.Offset()).
		Find(&chats).Error
	if err != nil {
		return nil, 0, err
	}
	return chats, total, nil
}

func (r *chatRepo) filteredChats(ctx context.Context, filter ChatFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&dbsql.Chat{})
	if filter.ContactID != nil {
		q = q.Where("contact_id = ?", *filter.ContactID)
	}
	if filter.ChannelID != nil {
		q = q.Where("channel_id = ?", *filter.ChannelID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	return q
}

// CreateMessage inserts m and moves the chat's last_message_id to it in one
// transaction.
func (r *chatRepo) CreateMessage(ctx context.Context, m *dbsql.ChatMessage) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		res := tx.Model(&dbsql.Chat{}).
			Where("id = ?", m.ChatID).
			Updates(map[string]interface{}{
				"last_message_id": m.ID,
				"updated_at":      m.CreatedAt,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return common.ErrNotFound
		}
		return nil
	})
}

func (r *chatRepo) MessageByID(ctx context.Context, id uint64) (*dbsql.ChatMessage, error) {
	var m dbsql.ChatMessage
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, common.NotFound(err)
	}
	return &m, nil
}

func (r *chatRepo) MessageByExternalID(ctx context.Context, channelID uint64, externalID string) (*dbsql.ChatMessage, error) {
	var m dbsql.ChatMessage
	err := r.db.WithContext(ctx).
		Where("channel_id = ? AND external_id = ?", channelID, externalID).
		Order("id DESC").
		First(&m).Error
	if err != nil {
		return nil, common.NotFound(err)
	}
	return &m, nil
}

// Messages pages a chat's history newest first.
func (r *chatRepo) Messages(ctx context.Context, chatID uint64, page common.PageQuery) ([]dbsql.ChatMessage, int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&dbsql.ChatMessage{}).
		Where("chat_id = ?", chatID).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var messages []dbsql.ChatMessage
	err = r.db.WithContext(ctx).
		Where("chat_id = ?", chatID).
		Order("created_at DESC, id DESC").
		Limit(page.Limit).
		Offset(page.Offset()).
		Find(&messages).Error
	if err != nil {
		return nil, 0, err
	}
	return messages, total, nil
}
