package chat

import (
	"context"

	"agilefinance/internal/common"
	"agilefinance/internal/dbsql"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PresenceRepository interface {
	// Upsert inserts row or, when the (contact, chat) pair already has one,
	// overwrites only the named columns.
	Upsert(ctx context.Context, row *dbsql.ChatContactStatus, columns ...string) error
	Get(ctx context.Context, contactID, chatID uint64) (*dbsql.ChatContactStatus, error)
	ByChat(ctx context.Context, chatID uint64) ([]dbsql.ChatContactStatus, error)
	TrackedChats(ctx context.Context, contactID uint64) ([]uint64, error)
}

type presenceRepo struct {
	db *gorm.DB
}

func NewPresenceRepository(db *gorm.DB) PresenceRepository {
	return &presenceRepo{db: db}
}

func (r *presenceRepo) Upsert(ctx context.Context, row *dbsql.ChatContactStatus, columns ...string) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "contact_id"}, {Name: "chat_id"}},
			DoUpdates: clause.AssignmentColumns(columns),
		}).
		Create(row).Error
}

func (r *presenceRepo) Get(ctx context.Context, contactID, chatID uint64) (*dbsql.ChatContactStatus, error) {
	var row dbsql.ChatContactStatus
	err := r.db.WithContext(ctx).
		Where("contact_id = ? AND chat_id = ?", contactID, chatID).
		First(&row).Error
	if err != nil {
		return nil, common.NotFound(err)
	}
	return &row, nil
}

func (r *presenceRepo) ByChat(ctx context.Context, chatID uint64) ([]dbsql.ChatContactStatus, error) {
	var rows []dbsql.ChatContactStatus
	err := r.db.WithContext(ctx).
		Where("chat_id = ?", chatID).
		Order("contact_id").
		Find(&rows).Error
	return rows, err
}

func (r *presenceRepo) TrackedChats(ctx context.Context, contactID uint64) ([]uint64, error) {
	var ids []uint64
	err := r.db.WithContext(ctx).Model(&dbsql.ChatContactStatus{}).
		Where("contact_id = ?", contactID).
		Order("chat_id").
		Pluck("chat_id", &ids).Error
	return ids, err
}
